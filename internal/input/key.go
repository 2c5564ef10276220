package input

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/mobile/event/key"
)

// FromKeyEvent classifies a key press. It reports false for releases and
// for keys that have no meaning inside a text box.
func FromKeyEvent(e key.Event) (TextInputEvent, bool) {
	if e.Direction == key.DirRelease {
		return TextInputEvent{}, false
	}
	ctrl := e.Modifiers&key.ModControl != 0
	shift := e.Modifiers&key.ModShift != 0
	switch e.Code {
	case key.CodeReturnEnter, key.CodeKeypadEnter:
		switch {
		case ctrl:
			return Key(EventCtrlEnter), true
		case shift:
			return Key(EventShiftEnter), true
		}
		return Key(EventEnter), true
	case key.CodeDeleteBackspace:
		return Key(EventBackspace), true
	case key.CodeLeftArrow:
		return Key(EventCursorLeft), true
	case key.CodeRightArrow:
		return Key(EventCursorRight), true
	case key.CodeUpArrow:
		return Key(EventCursorUp), true
	case key.CodeDownArrow:
		return Key(EventCursorDown), true
	case key.CodeEscape:
		return Key(EventEscape), true
	}
	if ctrl {
		if e.Code == key.CodeC || e.Rune == 'c' || e.Rune == 'C' {
			return Key(EventCtrlC), true
		}
		return TextInputEvent{}, false
	}
	if e.Rune <= 0 {
		return TextInputEvent{}, false
	}
	return Character(e.Rune), true
}

var namedKeys = map[string]key.Code{
	"enter":     key.CodeReturnEnter,
	"return":    key.CodeReturnEnter,
	"backspace": key.CodeDeleteBackspace,
	"left":      key.CodeLeftArrow,
	"right":     key.CodeRightArrow,
	"up":        key.CodeUpArrow,
	"down":      key.CodeDownArrow,
	"escape":    key.CodeEscape,
	"esc":       key.CodeEscape,
	"space":     key.CodeSpacebar,
	"tab":       key.CodeTab,
}

// ParseKey builds a key press from a description such as "ctrl+enter",
// "shift+enter", "left", "escape", "ctrl+c" or a single character.
func ParseKey(spec string) (key.Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return key.Event{}, fmt.Errorf("key cannot be empty")
	}
	ev := key.Event{Direction: key.DirPress, Rune: -1}
	name := spec
	if utf8.RuneCountInString(spec) > 1 {
		parts := strings.Split(spec, "+")
		name = parts[len(parts)-1]
		if name == "" {
			// "ctrl++" names the plus key
			if len(parts) < 3 || parts[len(parts)-2] != "" {
				return key.Event{}, fmt.Errorf("missing key in %q", spec)
			}
			name = "+"
			parts = parts[:len(parts)-1]
		}
		for _, mod := range parts[:len(parts)-1] {
			switch strings.ToLower(mod) {
			case "ctrl", "control":
				ev.Modifiers |= key.ModControl
			case "shift":
				ev.Modifiers |= key.ModShift
			case "alt":
				ev.Modifiers |= key.ModAlt
			case "meta", "super":
				ev.Modifiers |= key.ModMeta
			case "":
			default:
				return key.Event{}, fmt.Errorf("unknown modifier %q in %q", mod, spec)
			}
		}
	}
	if code, ok := namedKeys[strings.ToLower(name)]; ok {
		ev.Code = code
		switch code {
		case key.CodeSpacebar:
			ev.Rune = ' '
		case key.CodeTab:
			ev.Rune = '\t'
		}
		return ev, nil
	}
	if utf8.RuneCountInString(name) != 1 {
		return key.Event{}, fmt.Errorf("unknown key %q", spec)
	}
	r, _ := utf8.DecodeRuneInString(name)
	if ev.Modifiers&key.ModShift != 0 {
		r = unicode.ToUpper(r)
	}
	ev.Rune = r
	ev.Code = letterCode(r)
	return ev, nil
}

func letterCode(r rune) key.Code {
	switch l := unicode.ToLower(r); {
	case l >= 'a' && l <= 'z':
		return key.CodeA + key.Code(l-'a')
	case r >= '1' && r <= '9':
		return key.Code1 + key.Code(r-'1')
	case r == '0':
		return key.Code0
	}
	return key.CodeUnknown
}
