package tools

import (
	"math"

	"github.com/example/chalkmark/internal/geometry"
)

// AddBlur stores a blur over region using the current blur options.
func (e *Editor) AddBlur(region BlurRegion) (uint64, error) {
	if region.Width == 0 || region.Height == 0 {
		return 0, e.reject("add blur", ErrInvalidBlurRegion, "region", region.Bounds())
	}
	id := e.allocateID()
	e.objects = append(e.objects, NewBlur(id, region, e.options.Blur))
	return id, nil
}

// AddArrow stores an arrow from start to end.
func (e *Editor) AddArrow(start, end geometry.Point) (uint64, error) {
	if start == end {
		return 0, e.reject("add arrow", ErrInvalidArrowGeometry, "point", start)
	}
	id := e.allocateID()
	e.objects = append(e.objects, NewArrow(id, start, end, e.options.Arrow))
	return id, nil
}

// AddRectangle stores the rectangle spanned by two opposite corners.
func (e *Editor) AddRectangle(start, end geometry.Point) (uint64, error) {
	b, ok := spanBounds(start, end)
	if !ok {
		return 0, e.reject("add rectangle", ErrInvalidRectangleGeometry, "start", start, "end", end)
	}
	id := e.allocateID()
	e.objects = append(e.objects, NewRectangle(id, b, e.options.Rectangle))
	return id, nil
}

// spanBounds normalizes two corners into a box. It fails when the box is
// empty on either axis.
func spanBounds(start, end geometry.Point) (geometry.Bounds, bool) {
	width := absDiff(start.X, end.X)
	height := absDiff(start.Y, end.Y)
	if width == 0 || height == 0 {
		return geometry.Bounds{}, false
	}
	return geometry.Bounds{
		X:      min(start.X, end.X),
		Y:      min(start.Y, end.Y),
		Width:  width,
		Height: height,
	}, true
}

func absDiff(a, b int32) uint32 {
	d := int64(a) - int64(b)
	if d < 0 {
		d = -d
	}
	return uint32(d)
}

// AddCropInBounds stores a crop box dragged from start to end on an image
// of the given size. Pass Unbounded for both extents when the image size
// is unknown. The box is clipped to the image and, for ratio presets,
// shrunk to the preset's ratio while keeping its top-left corner.
func (e *Editor) AddCropInBounds(start, end geometry.Point, imageWidth, imageHeight uint32) (uint64, error) {
	preset := e.options.Crop.Preset
	b, ok := normalizeCropBox(start, end, imageWidth, imageHeight)
	if !ok {
		return 0, e.reject("add crop", ErrInvalidCropGeometry, "start", start, "end", end)
	}
	bounded := imageWidth != Unbounded && imageHeight != Unbounded
	if preset == CropOriginal && !bounded {
		return 0, e.reject("add crop", ErrInvalidCropGeometry, "preset", preset)
	}
	if rx, ry, ok := preset.ResolveRatio(imageWidth, imageHeight); ok {
		b.Width, b.Height = FitRatio(b.Width, b.Height, rx, ry)
	}
	if b.Width < CropMinSize || b.Height < CropMinSize {
		return 0, e.reject("add crop", ErrInvalidCropGeometry, "bounds", b, "preset", preset)
	}
	id := e.allocateID()
	e.objects = append(e.objects, NewCrop(id, b, e.options.Crop))
	return id, nil
}

func normalizeCropBox(start, end geometry.Point, imageWidth, imageHeight uint32) (geometry.Bounds, bool) {
	left, right := int64(min(start.X, end.X)), int64(max(start.X, end.X))
	top, bottom := int64(min(start.Y, end.Y)), int64(max(start.Y, end.Y))
	maxX, maxY := int64(math.MaxInt64), int64(math.MaxInt64)
	if imageWidth != Unbounded && imageHeight != Unbounded {
		maxX, maxY = int64(imageWidth), int64(imageHeight)
	}
	left, right = clamp64(left, 0, maxX), clamp64(right, 0, maxX)
	top, bottom = clamp64(top, 0, maxY), clamp64(bottom, 0, maxY)
	if right <= left || bottom <= top {
		return geometry.Bounds{}, false
	}
	return geometry.Bounds{
		X:      geometry.ClampInt32(left),
		Y:      geometry.ClampInt32(top),
		Width:  geometry.ClampUint32(right - left),
		Height: geometry.ClampUint32(bottom - top),
	}, true
}

func clamp64(v, lo, hi int64) int64 {
	return min(max(v, lo), hi)
}

// BeginPenStroke starts a stroke at start and makes it the active stroke.
func (e *Editor) BeginPenStroke(start geometry.Point) uint64 {
	id := e.allocateID()
	e.objects = append(e.objects, NewPenStroke(id, []geometry.Point{start}, e.options.Pen))
	e.activePen.set(id)
	return id
}

// AppendPenPoint extends the stroke id with p. A stroke must be in
// progress for points to be accepted.
func (e *Editor) AppendPenPoint(id uint64, p geometry.Point) error {
	if !e.activePen.ok {
		return e.reject("append pen point", ErrToolNotSelected, "id", id)
	}
	stroke, ok := find[*PenStroke](e, id)
	if !ok {
		return e.reject("append pen point", ErrPenStrokeNotFound, "id", id)
	}
	stroke.Points = append(stroke.Points, p)
	return nil
}

// FinishPenStroke finalizes the stroke id. The active stroke is cleared
// when it is the one being finished.
func (e *Editor) FinishPenStroke(id uint64) error {
	stroke, ok := find[*PenStroke](e, id)
	if !ok {
		return e.reject("finish pen stroke", ErrPenStrokeNotFound, "id", id)
	}
	stroke.Finalized = true
	if e.activePen.is(id) {
		e.activePen.clear()
	}
	return nil
}

// AddPenStroke stores a complete, finalized stroke in one call.
func (e *Editor) AddPenStroke(points []geometry.Point) (uint64, error) {
	if len(points) == 0 {
		return 0, e.reject("add pen stroke", ErrEmptyPenStroke)
	}
	id := e.allocateID()
	stroke := NewPenStroke(id, points, e.options.Pen)
	stroke.Finalized = true
	e.objects = append(e.objects, stroke)
	return id, nil
}

// AddTextBox stores an empty text box at the given point, focuses it and
// switches to the text tool.
func (e *Editor) AddTextBox(at geometry.Point) uint64 {
	return e.addText(NewText(e.allocateID(), at, e.options.Text))
}

// AddTextBoxWithText is AddTextBox with initial content. The cursor is
// placed at the end of the content.
func (e *Editor) AddTextBoxWithText(at geometry.Point, content string) uint64 {
	return e.addText(NewTextWithContent(e.allocateID(), at, content, e.options.Text))
}

func (e *Editor) addText(t *Text) uint64 {
	e.objects = append(e.objects, t)
	e.activeText.set(t.id)
	e.tool = ToolText
	return t.id
}

// FocusTextBox makes the text box id the edit target and moves its cursor
// to the end. It reports false when id is not a text box.
func (e *Editor) FocusTextBox(id uint64) bool {
	t, ok := find[*Text](e, id)
	if !ok {
		return false
	}
	t.MoveCursorToEnd()
	e.activeText.set(id)
	return true
}

// FinishTextBox drops the edit target. It reports whether there was one.
func (e *Editor) FinishTextBox() bool {
	had := e.activeText.ok
	e.activeText.clear()
	return had
}
