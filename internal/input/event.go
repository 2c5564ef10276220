// Package input turns keyboard input into text editing actions for the
// focused text box.
package input

import "fmt"

// EventKind is one of the key events a text box reacts to.
type EventKind int

const (
	EventCharacter EventKind = iota
	EventEnter
	EventShiftEnter
	EventCtrlEnter
	EventBackspace
	EventCursorLeft
	EventCursorRight
	EventCursorUp
	EventCursorDown
	EventEscape
	EventCtrlC
)

var eventNames = [...]string{
	EventCharacter:   "character",
	EventEnter:       "enter",
	EventShiftEnter:  "shift+enter",
	EventCtrlEnter:   "ctrl+enter",
	EventBackspace:   "backspace",
	EventCursorLeft:  "left",
	EventCursorRight: "right",
	EventCursorUp:    "up",
	EventCursorDown:  "down",
	EventEscape:      "escape",
	EventCtrlC:       "ctrl+c",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
	return eventNames[k]
}

// TextInputEvent is a classified key press. Rune is set for
// EventCharacter only.
type TextInputEvent struct {
	Kind EventKind
	Rune rune
}

// Character is the event for typing r.
func Character(r rune) TextInputEvent {
	return TextInputEvent{Kind: EventCharacter, Rune: r}
}

// Key is the event for a non-character key.
func Key(k EventKind) TextInputEvent {
	return TextInputEvent{Kind: k}
}

func (e TextInputEvent) String() string {
	if e.Kind == EventCharacter {
		return fmt.Sprintf("character %q", e.Rune)
	}
	return e.Kind.String()
}

// ActionKind is what a text box does in response to an event.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionInsertCharacter
	ActionDeleteBackward
	ActionInsertLineBreak
	ActionMoveCursor
	ActionCommit
	ActionExitFocus
	ActionCopyRequested
	ActionNoTextTarget
)

var actionNames = [...]string{
	ActionNone:            "no action",
	ActionInsertCharacter: "insert character",
	ActionDeleteBackward:  "delete backward",
	ActionInsertLineBreak: "insert line break",
	ActionMoveCursor:      "move cursor",
	ActionCommit:          "commit",
	ActionExitFocus:       "exit focus",
	ActionCopyRequested:   "copy requested",
	ActionNoTextTarget:    "no text target",
}

func (k ActionKind) String() string {
	if k < 0 || int(k) >= len(actionNames) {
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
	return actionNames[k]
}

// TextInputAction is the resolved action. Rune is set for
// ActionInsertCharacter only.
type TextInputAction struct {
	Kind ActionKind
	Rune rune
}

func (a TextInputAction) String() string {
	if a.Kind == ActionInsertCharacter {
		return fmt.Sprintf("insert character %q", a.Rune)
	}
	return a.Kind.String()
}

// Action builds an action without a payload.
func Action(k ActionKind) TextInputAction {
	return TextInputAction{Kind: k}
}
