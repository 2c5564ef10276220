package tools

import "github.com/example/chalkmark/internal/geometry"

// MoveObjectBy translates the object id by (dx, dy) while keeping it on
// an image of the given size. Boxes stop at the image edges, text anchors
// stay on a pixel of the image, and arrows and strokes are moved as a
// whole so their shape never changes.
func (e *Editor) MoveObjectBy(id uint64, dx, dy int32, img geometry.ImageBounds) error {
	i := e.index(id)
	if i < 0 {
		return e.reject("move", ErrObjectNotFound, "id", id)
	}
	maxX := max(int64(img.Width)-1, 0)
	maxY := max(int64(img.Height)-1, 0)
	switch obj := e.objects[i].(type) {
	case *Blur:
		obj.Region.X, obj.Region.Y = moveBox(obj.Region.X, obj.Region.Y, obj.Region.Width, obj.Region.Height, dx, dy, img)
		obj.Anchor = geometry.Pt(obj.Region.X, obj.Region.Y)
	case *Rectangle:
		obj.X, obj.Y = moveBox(obj.X, obj.Y, obj.Width, obj.Height, dx, dy, img)
	case *Crop:
		obj.X, obj.Y = moveBox(obj.X, obj.Y, obj.Width, obj.Height, dx, dy, img)
	case *Text:
		obj.X = geometry.ClampInt32(clamp64(int64(obj.X)+int64(dx), 0, maxX))
		obj.Y = geometry.ClampInt32(clamp64(int64(obj.Y)+int64(dy), 0, maxY))
	case *Arrow:
		ddx := clampTranslation(dx, min(obj.Start.X, obj.End.X), max(obj.Start.X, obj.End.X), maxX)
		ddy := clampTranslation(dy, min(obj.Start.Y, obj.End.Y), max(obj.Start.Y, obj.End.Y), maxY)
		obj.Start = obj.Start.Add(ddx, ddy)
		obj.End = obj.End.Add(ddx, ddy)
	case *PenStroke:
		if len(obj.Points) == 0 {
			return nil
		}
		minX, minY, maxPX, maxPY := obj.extent()
		ddx := clampTranslation(dx, minX, maxPX, maxX)
		ddy := clampTranslation(dy, minY, maxPY, maxY)
		for j := range obj.Points {
			obj.Points[j] = obj.Points[j].Add(ddx, ddy)
		}
	}
	return nil
}

// moveBox returns the new origin of a box moved by (dx, dy) and clamped
// so that the box stays inside the image where it fits.
func moveBox(x, y int32, width, height uint32, dx, dy int32, img geometry.ImageBounds) (int32, int32) {
	limitX := max(int64(img.Width)-int64(width), 0)
	limitY := max(int64(img.Height)-int64(height), 0)
	nx := clamp64(int64(x)+int64(dx), 0, limitX)
	ny := clamp64(int64(y)+int64(dy), 0, limitY)
	return geometry.ClampInt32(nx), geometry.ClampInt32(ny)
}

// clampTranslation limits delta so that the span [lo, hi] stays within
// [0, axisMax]. When the span cannot fit, the low edge wins.
func clampTranslation(delta, lo, hi int32, axisMax int64) int32 {
	minDelta := -int64(lo)
	maxDelta := axisMax - int64(hi)
	d := min(int64(delta), maxDelta)
	d = max(d, minDelta)
	return geometry.ClampInt32(d)
}

// clampBoundsToImage pulls the origin of b onto the image and shrinks its
// extent so it ends at the image edge. Extents never drop below one.
func clampBoundsToImage(b geometry.Bounds, img geometry.ImageBounds) geometry.Bounds {
	maxX := max(int64(img.Width)-1, 0)
	maxY := max(int64(img.Height)-1, 0)
	x := clamp64(int64(b.X), 0, maxX)
	y := clamp64(int64(b.Y), 0, maxY)
	maxWidth := max(int64(img.Width)-x, 1)
	maxHeight := max(int64(img.Height)-y, 1)
	return geometry.Bounds{
		X:      int32(x),
		Y:      int32(y),
		Width:  uint32(min(int64(b.Width), maxWidth)),
		Height: uint32(min(int64(b.Height), maxHeight)),
	}
}

// ResizeRectangle gives the rectangle id new bounds, clipped to the image.
func (e *Editor) ResizeRectangle(id uint64, b geometry.Bounds, img geometry.ImageBounds) error {
	if b.Empty() {
		return e.reject("resize rectangle", ErrInvalidRectangleGeometry, "bounds", b)
	}
	r, ok := find[*Rectangle](e, id)
	if !ok {
		return e.reject("resize rectangle", ErrObjectNotFound, "id", id)
	}
	c := clampBoundsToImage(b, img)
	r.X, r.Y, r.Width, r.Height = c.X, c.Y, c.Width, c.Height
	return nil
}

// ResizeBlur gives the blur id a new region, clipped to the image. The
// anchor follows the region origin.
func (e *Editor) ResizeBlur(id uint64, b geometry.Bounds, img geometry.ImageBounds) error {
	if b.Empty() {
		return e.reject("resize blur", ErrInvalidBlurRegion, "bounds", b)
	}
	blur, ok := find[*Blur](e, id)
	if !ok {
		return e.reject("resize blur", ErrObjectNotFound, "id", id)
	}
	c := clampBoundsToImage(b, img)
	blur.Region = BlurRegion{X: c.X, Y: c.Y, Width: c.Width, Height: c.Height}
	blur.Anchor = geometry.Pt(c.X, c.Y)
	return nil
}

// ResizeCrop gives the crop id new bounds. Both the requested and the
// clipped size must be at least CropMinSize on each axis.
func (e *Editor) ResizeCrop(id uint64, b geometry.Bounds, img geometry.ImageBounds) error {
	if b.Width < CropMinSize || b.Height < CropMinSize {
		return e.reject("resize crop", ErrInvalidCropGeometry, "bounds", b)
	}
	crop, ok := find[*Crop](e, id)
	if !ok {
		return e.reject("resize crop", ErrObjectNotFound, "id", id)
	}
	c := clampBoundsToImage(b, img)
	if c.Width < CropMinSize || c.Height < CropMinSize {
		return e.reject("resize crop", ErrInvalidCropGeometry, "bounds", c)
	}
	crop.X, crop.Y, crop.Width, crop.Height = c.X, c.Y, c.Width, c.Height
	return nil
}
