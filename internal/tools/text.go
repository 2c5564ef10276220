package tools

import (
	"fmt"
	"slices"

	"github.com/example/chalkmark/internal/geometry"
)

// Text is an editable text box. The cursor counts characters, not bytes.
type Text struct {
	id      uint64
	X, Y    int32
	Options TextOptions
	content []rune
	cursor  int
}

// NewText builds an empty text box.
func NewText(id uint64, at geometry.Point, opts TextOptions) *Text {
	return &Text{id: id, X: at.X, Y: at.Y, Options: opts}
}

// NewTextWithContent builds a text box holding content with the cursor
// placed after the last character.
func NewTextWithContent(id uint64, at geometry.Point, content string, opts TextOptions) *Text {
	t := NewText(id, at, opts)
	t.content = []rune(content)
	t.cursor = len(t.content)
	return t
}

func (t *Text) ID() uint64     { return t.id }
func (t *Text) Kind() ToolKind { return ToolText }

func (t *Text) clone() Object {
	c := *t
	c.content = slices.Clone(t.content)
	return &c
}

func (t *Text) String() string {
	return fmt.Sprintf("#%d text (%d,%d) %q size=%d weight=%d family=%s color=%s",
		t.id, t.X, t.Y, t.Content(), t.Options.Size, t.Options.Weight, t.Options.Family, t.Options.Color)
}

// Content returns the text as a string.
func (t *Text) Content() string {
	return string(t.content)
}

// Len is the number of characters in the box.
func (t *Text) Len() int {
	return len(t.content)
}

// Cursor returns the character index of the cursor.
func (t *Text) Cursor() int {
	return min(t.cursor, len(t.content))
}

// InsertChar inserts r at the cursor and advances past it.
func (t *Text) InsertChar(r rune) {
	at := t.Cursor()
	t.content = slices.Insert(t.content, at, r)
	t.cursor = at + 1
}

// InsertNewline inserts a line break at the cursor.
func (t *Text) InsertNewline() {
	t.InsertChar('\n')
}

// DeleteBackward removes the character before the cursor. It reports
// false when the cursor is at the start.
func (t *Text) DeleteBackward() bool {
	at := t.Cursor()
	if at == 0 {
		return false
	}
	t.content = slices.Delete(t.content, at-1, at)
	t.cursor = at - 1
	return true
}

func (t *Text) MoveCursorLeft() bool {
	at := t.Cursor()
	if at == 0 {
		return false
	}
	t.cursor = at - 1
	return true
}

func (t *Text) MoveCursorRight() bool {
	at := t.Cursor()
	if at >= len(t.content) {
		return false
	}
	t.cursor = at + 1
	return true
}

func (t *Text) MoveCursorUp() bool   { return t.moveCursorVertical(-1) }
func (t *Text) MoveCursorDown() bool { return t.moveCursorVertical(1) }

// MoveCursorToEnd puts the cursor after the last character.
func (t *Text) MoveCursorToEnd() {
	t.cursor = len(t.content)
}

// LineColumn returns the zero based line and column of the cursor.
func (t *Text) LineColumn() (line, column int) {
	for _, r := range t.content[:t.Cursor()] {
		if r == '\n' {
			line++
			column = 0
			continue
		}
		column++
	}
	return line, column
}

// lineStarts returns the index of the first character of every line.
func (t *Text) lineStarts() []int {
	starts := []int{0}
	for i, r := range t.content {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

func (t *Text) moveCursorVertical(delta int) bool {
	starts := t.lineStarts()
	if len(starts) <= 1 {
		return false
	}
	line, column := t.LineColumn()
	target := line + delta
	if target < 0 || target >= len(starts) {
		return false
	}
	end := len(t.content)
	if target+1 < len(starts) {
		end = starts[target+1] - 1
	}
	next := min(starts[target]+column, end)
	if next == t.Cursor() {
		return false
	}
	t.cursor = next
	return true
}
