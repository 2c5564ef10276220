package tools

import "github.com/example/chalkmark/internal/input"

// ApplyTextInput resolves ev against the focused text box and applies it.
// The returned action is what actually happened: cursor moves and
// deletions that hit a boundary report ActionNone.
func (e *Editor) ApplyTextInput(ev input.TextInputEvent) input.TextInputAction {
	action := input.ResolveTextInput(ev, e.activeText.ok)
	if !e.activeText.ok {
		return action
	}
	t, ok := find[*Text](e, e.activeText.id)
	if !ok {
		e.logger.Debug("dropping stale text focus", "id", e.activeText.id)
		e.activeText.clear()
		return input.Action(input.ActionNoTextTarget)
	}
	switch action.Kind {
	case input.ActionInsertCharacter:
		t.InsertChar(action.Rune)
	case input.ActionDeleteBackward:
		if !t.DeleteBackward() {
			return input.Action(input.ActionNone)
		}
	case input.ActionInsertLineBreak:
		t.InsertNewline()
	case input.ActionMoveCursor:
		if !moveTextCursor(t, ev.Kind) {
			return input.Action(input.ActionNone)
		}
	case input.ActionCommit, input.ActionExitFocus:
		e.activeText.clear()
	}
	return action
}

func moveTextCursor(t *Text, k input.EventKind) bool {
	switch k {
	case input.EventCursorLeft:
		return t.MoveCursorLeft()
	case input.EventCursorRight:
		return t.MoveCursorRight()
	case input.EventCursorUp:
		return t.MoveCursorUp()
	case input.EventCursorDown:
		return t.MoveCursorDown()
	}
	return false
}
