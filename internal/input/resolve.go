package input

import "unicode"

// ResolveTextInput maps an event to the action a focused text box should
// take. Without a target every event resolves to ActionNoTextTarget.
func ResolveTextInput(ev TextInputEvent, hasTarget bool) TextInputAction {
	if !hasTarget {
		return Action(ActionNoTextTarget)
	}
	switch ev.Kind {
	case EventCharacter:
		if ev.Rune < 0 || unicode.IsControl(ev.Rune) {
			return Action(ActionNone)
		}
		return TextInputAction{Kind: ActionInsertCharacter, Rune: ev.Rune}
	case EventEnter, EventShiftEnter:
		return Action(ActionInsertLineBreak)
	case EventCtrlEnter:
		return Action(ActionCommit)
	case EventBackspace:
		return Action(ActionDeleteBackward)
	case EventCursorLeft, EventCursorRight, EventCursorUp, EventCursorDown:
		return Action(ActionMoveCursor)
	case EventEscape:
		return Action(ActionExitFocus)
	case EventCtrlC:
		return Action(ActionCopyRequested)
	}
	return Action(ActionNone)
}
