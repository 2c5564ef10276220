package tools

import (
	"testing"

	"github.com/example/chalkmark/internal/geometry"
)

func newTestText(content string) *Text {
	return NewTextWithContent(1, geometry.Pt(0, 0), content, DefaultOptions().Text)
}

func TestTextEditing(t *testing.T) {
	txt := newTestText("ab")
	if txt.Cursor() != 2 {
		t.Fatalf("cursor = %d, want 2", txt.Cursor())
	}
	if !txt.MoveCursorLeft() {
		t.Fatal("MoveCursorLeft reported no move")
	}
	txt.InsertChar('X')
	if got := txt.Content(); got != "aXb" {
		t.Errorf("content = %q", got)
	}
	if txt.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2", txt.Cursor())
	}
	if !txt.DeleteBackward() || txt.Content() != "ab" {
		t.Errorf("DeleteBackward left %q", txt.Content())
	}
	txt.MoveCursorLeft()
	if txt.MoveCursorLeft() {
		t.Error("moved left past the start")
	}
	if txt.DeleteBackward() {
		t.Error("deleted before the start")
	}
	txt.MoveCursorToEnd()
	if txt.MoveCursorRight() {
		t.Error("moved right past the end")
	}
}

func TestTextCursorCountsCharacters(t *testing.T) {
	txt := newTestText("héllo, 世界")
	if txt.Len() != 9 || txt.Cursor() != 9 {
		t.Fatalf("len=%d cursor=%d", txt.Len(), txt.Cursor())
	}
	txt.DeleteBackward()
	txt.MoveCursorLeft()
	txt.InsertChar('界')
	if got := txt.Content(); got != "héllo, 界世" {
		t.Errorf("content = %q", got)
	}
	for i := 0; i < 6; i++ {
		txt.MoveCursorLeft()
	}
	txt.DeleteBackward()
	if got := txt.Content(); got != "hllo, 界世" {
		t.Errorf("content = %q", got)
	}
}

func TestTextVerticalMovement(t *testing.T) {
	txt := newTestText("aa\nbbbb")
	if line, col := txt.LineColumn(); line != 1 || col != 4 {
		t.Fatalf("line/column = %d/%d", line, col)
	}
	if !txt.MoveCursorUp() {
		t.Fatal("MoveCursorUp reported no move")
	}
	if line, col := txt.LineColumn(); line != 0 || col != 2 {
		t.Errorf("after up: line/column = %d/%d", line, col)
	}
	txt.InsertChar('X')
	if !txt.MoveCursorDown() {
		t.Fatal("MoveCursorDown reported no move")
	}
	txt.InsertChar('Y')
	if got := txt.Content(); got != "aaX\nbbbYb" {
		t.Errorf("content = %q", got)
	}
	if txt.MoveCursorDown() {
		t.Error("moved below the last line")
	}
}

func TestTextVerticalMovementNoops(t *testing.T) {
	single := newTestText("hello")
	if single.MoveCursorUp() || single.MoveCursorDown() {
		t.Error("single line text should not move vertically")
	}

	top := newTestText("ab\ncd")
	top.cursor = 1
	if top.MoveCursorUp() {
		t.Error("moved above the first line")
	}

	// from the end of "x" on line 1, down lands on the empty last line
	empty := newTestText("x\n")
	empty.cursor = 1
	if !empty.MoveCursorDown() || empty.Cursor() != 2 {
		t.Errorf("cursor = %d", empty.Cursor())
	}
}

func TestTextCursorClampedToContent(t *testing.T) {
	txt := newTestText("abc")
	txt.cursor = 10
	if txt.Cursor() != 3 {
		t.Errorf("Cursor = %d", txt.Cursor())
	}
	txt.InsertChar('d')
	if txt.Content() != "abcd" || txt.Cursor() != 4 {
		t.Errorf("content=%q cursor=%d", txt.Content(), txt.Cursor())
	}
}
