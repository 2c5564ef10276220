package tools

import (
	"errors"
	"testing"

	"github.com/example/chalkmark/internal/geometry"
	"github.com/google/go-cmp/cmp"
)

var canvas100 = geometry.ImageBounds{Width: 100, Height: 100}

func TestPenStrokeLifecycle(t *testing.T) {
	e := New()
	if err := e.AppendPenPoint(1, geometry.Pt(0, 0)); !errors.Is(err, ErrToolNotSelected) {
		t.Fatalf("append without a stroke: got %v", err)
	}

	id := e.BeginPenStroke(geometry.Pt(1, 1))
	if active, ok := e.ActivePenStrokeID(); !ok || active != id {
		t.Fatalf("active stroke = %d %v, want %d", active, ok, id)
	}
	for _, p := range []geometry.Point{geometry.Pt(2, 2), geometry.Pt(3, 3)} {
		if err := e.AppendPenPoint(id, p); err != nil {
			t.Fatalf("AppendPenPoint: %v", err)
		}
	}
	if err := e.AppendPenPoint(id+10, geometry.Pt(4, 4)); !errors.Is(err, ErrPenStrokeNotFound) {
		t.Fatalf("append to unknown stroke: got %v", err)
	}
	if err := e.FinishPenStroke(id); err != nil {
		t.Fatalf("FinishPenStroke: %v", err)
	}
	if _, ok := e.ActivePenStrokeID(); ok {
		t.Error("finishing the active stroke should clear it")
	}

	stroke, _ := e.PenStroke(id)
	want := &PenStroke{
		id:        id,
		Points:    []geometry.Point{geometry.Pt(1, 1), geometry.Pt(2, 2), geometry.Pt(3, 3)},
		Options:   DefaultOptions().Pen,
		Finalized: true,
	}
	if diff := cmp.Diff(want, stroke, allowObjects); diff != "" {
		t.Errorf("stroke mismatch (-want +got):\n%s", diff)
	}

	if err := e.FinishPenStroke(99); !errors.Is(err, ErrPenStrokeNotFound) {
		t.Errorf("finish unknown stroke: got %v", err)
	}
	if err := e.AppendPenPoint(id, geometry.Pt(9, 9)); !errors.Is(err, ErrToolNotSelected) {
		t.Errorf("append after finish: got %v", err)
	}
}

func TestAppendPenPointRequiresStroke(t *testing.T) {
	e := New()
	rect, err := e.AddRectangle(geometry.Pt(0, 0), geometry.Pt(5, 5))
	if err != nil {
		t.Fatalf("AddRectangle: %v", err)
	}
	e.BeginPenStroke(geometry.Pt(0, 0))
	if err := e.AppendPenPoint(rect, geometry.Pt(1, 1)); !errors.Is(err, ErrPenStrokeNotFound) {
		t.Fatalf("append to rectangle: got %v", err)
	}
	if err := e.FinishPenStroke(rect); !errors.Is(err, ErrPenStrokeNotFound) {
		t.Fatalf("finish rectangle: got %v", err)
	}
}

func TestAddPenStroke(t *testing.T) {
	e := New()
	e.SetPenColor(red)
	points := []geometry.Point{geometry.Pt(1, 2), geometry.Pt(3, 4)}
	id, err := e.AddPenStroke(points)
	if err != nil {
		t.Fatalf("AddPenStroke: %v", err)
	}
	points[0] = geometry.Pt(50, 50)
	stroke, _ := e.PenStroke(id)
	if !stroke.Finalized {
		t.Error("stroke should be finalized")
	}
	if stroke.Points[0] != geometry.Pt(1, 2) {
		t.Errorf("stroke aliases the caller's slice: %v", stroke.Points)
	}
	if stroke.Options.Color != red {
		t.Errorf("color = %v", stroke.Options.Color)
	}
	if _, ok := e.ActivePenStrokeID(); ok {
		t.Error("AddPenStroke should not start an active stroke")
	}
}

func TestMovePenStrokeStopsAtEdge(t *testing.T) {
	e := New()
	id, err := e.AddPenStroke([]geometry.Point{geometry.Pt(80, 10), geometry.Pt(90, 20), geometry.Pt(95, 25)})
	if err != nil {
		t.Fatalf("AddPenStroke: %v", err)
	}
	want := []geometry.Point{geometry.Pt(84, 10), geometry.Pt(94, 20), geometry.Pt(99, 25)}
	for i := 0; i < 2; i++ {
		if err := e.MoveObjectBy(id, 10, 0, canvas100); err != nil {
			t.Fatalf("MoveObjectBy: %v", err)
		}
		stroke, _ := e.PenStroke(id)
		if diff := cmp.Diff(want, stroke.Points); diff != "" {
			t.Errorf("move %d mismatch (-want +got):\n%s", i+1, diff)
		}
	}
}

func TestMoveArrowKeepsShape(t *testing.T) {
	e := New()
	id, err := e.AddArrow(geometry.Pt(80, 40), geometry.Pt(95, 70))
	if err != nil {
		t.Fatalf("AddArrow: %v", err)
	}
	if err := e.MoveObjectBy(id, 10, 0, canvas100); err != nil {
		t.Fatalf("MoveObjectBy: %v", err)
	}
	a, _ := e.Arrow(id)
	if a.Start != geometry.Pt(84, 40) || a.End != geometry.Pt(99, 70) {
		t.Errorf("arrow = %v -> %v", a.Start, a.End)
	}
	if err := e.MoveObjectBy(id, -200, -200, canvas100); err != nil {
		t.Fatalf("MoveObjectBy: %v", err)
	}
	a, _ = e.Arrow(id)
	if a.Start != geometry.Pt(0, 0) || a.End != geometry.Pt(15, 30) {
		t.Errorf("arrow = %v -> %v", a.Start, a.End)
	}
}

func TestMoveBoxes(t *testing.T) {
	e := New()
	blur, err := e.AddBlur(BlurRegion{X: 80, Y: 10, Width: 20, Height: 20})
	if err != nil {
		t.Fatalf("AddBlur: %v", err)
	}
	if err := e.MoveObjectBy(blur, 15, 12, canvas100); err != nil {
		t.Fatalf("MoveObjectBy: %v", err)
	}
	b, _ := e.Blur(blur)
	if b.Region.X != 80 || b.Region.Y != 22 {
		t.Errorf("blur region origin = %d,%d", b.Region.X, b.Region.Y)
	}
	if b.Anchor != geometry.Pt(80, 22) {
		t.Errorf("blur anchor = %v", b.Anchor)
	}

	rect, err := e.AddRectangle(geometry.Pt(10, 10), geometry.Pt(30, 30))
	if err != nil {
		t.Fatalf("AddRectangle: %v", err)
	}
	if err := e.MoveObjectBy(rect, -50, 500, canvas100); err != nil {
		t.Fatalf("MoveObjectBy: %v", err)
	}
	r, _ := e.Rectangle(rect)
	if r.X != 0 || r.Y != 80 {
		t.Errorf("rectangle origin = %d,%d", r.X, r.Y)
	}

	crop, err := e.AddCropInBounds(geometry.Pt(0, 0), geometry.Pt(50, 50), 100, 100)
	if err != nil {
		t.Fatalf("AddCropInBounds: %v", err)
	}
	if err := e.MoveObjectBy(crop, 70, 5, canvas100); err != nil {
		t.Fatalf("MoveObjectBy: %v", err)
	}
	c, _ := e.Crop(crop)
	if c.X != 50 || c.Y != 5 {
		t.Errorf("crop origin = %d,%d", c.X, c.Y)
	}
}

func TestMoveTextClampsAnchor(t *testing.T) {
	e := New()
	id := e.AddTextBoxWithText(geometry.Pt(50, 50), "hello")
	if err := e.MoveObjectBy(id, 100, -100, canvas100); err != nil {
		t.Fatalf("MoveObjectBy: %v", err)
	}
	txt, _ := e.Text(id)
	if txt.X != 99 || txt.Y != 0 {
		t.Errorf("text anchor = %d,%d", txt.X, txt.Y)
	}
}

func TestMoveUnknownObject(t *testing.T) {
	e := New()
	if err := e.MoveObjectBy(7, 1, 1, canvas100); !errors.Is(err, ErrObjectNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestResizeBlurClampsToImage(t *testing.T) {
	e := New()
	id, err := e.AddBlur(BlurRegion{X: 10, Y: 10, Width: 20, Height: 20})
	if err != nil {
		t.Fatalf("AddBlur: %v", err)
	}
	if err := e.ResizeBlur(id, geometry.Bounds{X: 90, Y: 95, Width: 50, Height: 40}, canvas100); err != nil {
		t.Fatalf("ResizeBlur: %v", err)
	}
	b, _ := e.Blur(id)
	if diff := cmp.Diff(BlurRegion{X: 90, Y: 95, Width: 10, Height: 5}, b.Region); diff != "" {
		t.Errorf("region mismatch (-want +got):\n%s", diff)
	}
	if b.Anchor != geometry.Pt(90, 95) {
		t.Errorf("anchor = %v", b.Anchor)
	}
	if err := e.ResizeBlur(id, geometry.Bounds{Width: 0, Height: 5}, canvas100); !errors.Is(err, ErrInvalidBlurRegion) {
		t.Errorf("zero width: got %v", err)
	}
}

func TestResizeRectangle(t *testing.T) {
	e := New()
	id, err := e.AddRectangle(geometry.Pt(0, 0), geometry.Pt(10, 10))
	if err != nil {
		t.Fatalf("AddRectangle: %v", err)
	}
	if err := e.ResizeRectangle(id, geometry.Bounds{X: -5, Y: 150, Width: 300, Height: 20}, canvas100); err != nil {
		t.Fatalf("ResizeRectangle: %v", err)
	}
	r, _ := e.Rectangle(id)
	if diff := cmp.Diff(geometry.Bounds{X: 0, Y: 99, Width: 100, Height: 1}, r.Bounds()); diff != "" {
		t.Errorf("bounds mismatch (-want +got):\n%s", diff)
	}

	// validation happens before the lookup
	if err := e.ResizeRectangle(404, geometry.Bounds{Width: 0, Height: 1}, canvas100); !errors.Is(err, ErrInvalidRectangleGeometry) {
		t.Errorf("zero width: got %v", err)
	}
	if err := e.ResizeRectangle(404, geometry.Bounds{Width: 1, Height: 1}, canvas100); !errors.Is(err, ErrObjectNotFound) {
		t.Errorf("unknown id: got %v", err)
	}
	blur, _ := e.AddBlur(BlurRegion{Width: 5, Height: 5})
	if err := e.ResizeRectangle(blur, geometry.Bounds{Width: 1, Height: 1}, canvas100); !errors.Is(err, ErrObjectNotFound) {
		t.Errorf("resize blur as rectangle: got %v", err)
	}
}
