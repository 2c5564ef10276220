package input

import (
	"testing"

	"golang.org/x/mobile/event/key"
)

func TestResolveTextInput(t *testing.T) {
	tests := []struct {
		ev   TextInputEvent
		want TextInputAction
	}{
		{Character('x'), TextInputAction{Kind: ActionInsertCharacter, Rune: 'x'}},
		{Character('é'), TextInputAction{Kind: ActionInsertCharacter, Rune: 'é'}},
		{Character('\n'), Action(ActionNone)},
		{Key(EventEnter), Action(ActionInsertLineBreak)},
		{Key(EventShiftEnter), Action(ActionInsertLineBreak)},
		{Key(EventCtrlEnter), Action(ActionCommit)},
		{Key(EventBackspace), Action(ActionDeleteBackward)},
		{Key(EventCursorLeft), Action(ActionMoveCursor)},
		{Key(EventCursorRight), Action(ActionMoveCursor)},
		{Key(EventCursorUp), Action(ActionMoveCursor)},
		{Key(EventCursorDown), Action(ActionMoveCursor)},
		{Key(EventEscape), Action(ActionExitFocus)},
		{Key(EventCtrlC), Action(ActionCopyRequested)},
	}
	for _, tt := range tests {
		if got := ResolveTextInput(tt.ev, true); got != tt.want {
			t.Errorf("ResolveTextInput(%v, true) = %v, want %v", tt.ev, got, tt.want)
		}
		if got := ResolveTextInput(tt.ev, false); got.Kind != ActionNoTextTarget {
			t.Errorf("ResolveTextInput(%v, false) = %v, want no text target", tt.ev, got)
		}
	}
}

func TestFromKeyEvent(t *testing.T) {
	press := func(code key.Code, r rune, mods key.Modifiers) key.Event {
		return key.Event{Code: code, Rune: r, Modifiers: mods, Direction: key.DirPress}
	}
	tests := []struct {
		name string
		ev   key.Event
		want TextInputEvent
		ok   bool
	}{
		{"enter", press(key.CodeReturnEnter, -1, 0), Key(EventEnter), true},
		{"keypad enter", press(key.CodeKeypadEnter, -1, 0), Key(EventEnter), true},
		{"shift enter", press(key.CodeReturnEnter, -1, key.ModShift), Key(EventShiftEnter), true},
		{"ctrl enter", press(key.CodeReturnEnter, -1, key.ModControl), Key(EventCtrlEnter), true},
		{"backspace", press(key.CodeDeleteBackspace, -1, 0), Key(EventBackspace), true},
		{"left", press(key.CodeLeftArrow, -1, 0), Key(EventCursorLeft), true},
		{"right", press(key.CodeRightArrow, -1, 0), Key(EventCursorRight), true},
		{"up", press(key.CodeUpArrow, -1, 0), Key(EventCursorUp), true},
		{"down", press(key.CodeDownArrow, -1, 0), Key(EventCursorDown), true},
		{"escape", press(key.CodeEscape, -1, 0), Key(EventEscape), true},
		{"ctrl c", press(key.CodeC, 'c', key.ModControl), Key(EventCtrlC), true},
		{"letter", press(key.CodeA, 'a', 0), Character('a'), true},
		{"shifted letter", press(key.CodeA, 'A', key.ModShift), Character('A'), true},
		{"ctrl other", press(key.CodeV, 'v', key.ModControl), TextInputEvent{}, false},
		{"no rune", press(key.CodeF1, -1, 0), TextInputEvent{}, false},
		{"release", key.Event{Code: key.CodeA, Rune: 'a', Direction: key.DirRelease}, TextInputEvent{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromKeyEvent(tt.ev)
			if ok != tt.ok || got != tt.want {
				t.Errorf("FromKeyEvent = %v, %v; want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		spec string
		want TextInputEvent
	}{
		{"enter", Key(EventEnter)},
		{"Return", Key(EventEnter)},
		{"shift+enter", Key(EventShiftEnter)},
		{"ctrl+enter", Key(EventCtrlEnter)},
		{"control+Enter", Key(EventCtrlEnter)},
		{"backspace", Key(EventBackspace)},
		{"left", Key(EventCursorLeft)},
		{"right", Key(EventCursorRight)},
		{"up", Key(EventCursorUp)},
		{"down", Key(EventCursorDown)},
		{"esc", Key(EventEscape)},
		{"ctrl+c", Key(EventCtrlC)},
		{"ctrl+C", Key(EventCtrlC)},
		{"q", Character('q')},
		{"shift+q", Character('Q')},
		{"space", Character(' ')},
		{"+", Character('+')},
		{"ü", Character('ü')},
	}
	for _, tt := range tests {
		ev, err := ParseKey(tt.spec)
		if err != nil {
			t.Fatalf("ParseKey(%q): %v", tt.spec, err)
		}
		got, ok := FromKeyEvent(ev)
		if !ok || got != tt.want {
			t.Errorf("ParseKey(%q) classified as %v, %v; want %v", tt.spec, got, ok, tt.want)
		}
	}

	for _, bad := range []string{"", "hyper+a", "pagedown", "ctrl+"} {
		if _, err := ParseKey(bad); err == nil {
			t.Errorf("ParseKey(%q) succeeded", bad)
		}
	}
}
