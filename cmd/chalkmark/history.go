package main

import "github.com/example/chalkmark/internal/tools"

const defaultHistoryDepth = 100

// snapshot is the object list as it stood before the named command ran.
type snapshot struct {
	command string
	objects []tools.Object
}

// history keeps undo and redo stacks of whole object lists.
type history struct {
	undo  []snapshot
	redo  []snapshot
	depth int
}

func newHistory(depth int) *history {
	if depth <= 0 {
		depth = defaultHistoryDepth
	}
	return &history{depth: depth}
}

// record saves objects as the state to return to when command is undone.
// Any redo states are discarded.
func (h *history) record(command string, objects []tools.Object) {
	h.undo = append(h.undo, snapshot{command: command, objects: objects})
	if len(h.undo) > h.depth {
		h.undo = h.undo[1:]
	}
	h.redo = nil
}

// stepBack pops the last undo state and pushes current onto the redo stack.
func (h *history) stepBack(current []tools.Object) (snapshot, bool) {
	if len(h.undo) == 0 {
		return snapshot{}, false
	}
	last := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, snapshot{command: last.command, objects: current})
	return last, true
}

// stepForward pops the last redo state and pushes current onto the undo stack.
func (h *history) stepForward(current []tools.Object) (snapshot, bool) {
	if len(h.redo) == 0 {
		return snapshot{}, false
	}
	last := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, snapshot{command: last.command, objects: current})
	return last, true
}
