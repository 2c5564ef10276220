package tools

import (
	"fmt"
	"slices"

	"github.com/example/chalkmark/internal/geometry"
)

// Object is one annotation held by an Editor. The concrete types are
// *Blur, *PenStroke, *Arrow, *Rectangle, *Crop and *Text.
type Object interface {
	ID() uint64
	Kind() ToolKind
	String() string
	clone() Object
}

// BlurRegion is the area a blur covers.
type BlurRegion struct {
	X, Y          int32
	Width, Height uint32
}

// Bounds converts the region into geometry.Bounds.
func (r BlurRegion) Bounds() geometry.Bounds {
	return geometry.Bounds{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// Blur hides part of the image.
type Blur struct {
	id      uint64
	Region  BlurRegion
	Anchor  geometry.Point
	Options BlurOptions
}

// NewBlur builds a blur whose anchor sits on the region origin.
func NewBlur(id uint64, region BlurRegion, opts BlurOptions) *Blur {
	return &Blur{id: id, Region: region, Anchor: geometry.Pt(region.X, region.Y), Options: opts}
}

func (b *Blur) ID() uint64     { return b.id }
func (b *Blur) Kind() ToolKind { return ToolBlur }
func (b *Blur) clone() Object {
	c := *b
	return &c
}

func (b *Blur) String() string {
	return fmt.Sprintf("#%d blur %s intensity=%d", b.id, b.Region.Bounds(), b.Options.Intensity)
}

// PenStroke is a freehand polyline.
type PenStroke struct {
	id        uint64
	Points    []geometry.Point
	Options   PenOptions
	Finalized bool
}

// NewPenStroke builds a stroke from points, which are copied.
func NewPenStroke(id uint64, points []geometry.Point, opts PenOptions) *PenStroke {
	return &PenStroke{id: id, Points: slices.Clone(points), Options: opts}
}

func (p *PenStroke) ID() uint64     { return p.id }
func (p *PenStroke) Kind() ToolKind { return ToolPen }

func (p *PenStroke) clone() Object {
	c := *p
	c.Points = slices.Clone(p.Points)
	return &c
}

func (p *PenStroke) String() string {
	return fmt.Sprintf("#%d pen points=%d color=%s opacity=%d thickness=%d finalized=%t",
		p.id, len(p.Points), p.Options.Color, p.Options.Opacity, p.Options.Thickness, p.Finalized)
}

// extent returns the bounding box of the stroke's points.
func (p *PenStroke) extent() (minX, minY, maxX, maxY int32) {
	if len(p.Points) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = p.Points[0].X, p.Points[0].Y
	maxX, maxY = minX, minY
	for _, pt := range p.Points[1:] {
		minX, maxX = min(minX, pt.X), max(maxX, pt.X)
		minY, maxY = min(minY, pt.Y), max(maxY, pt.Y)
	}
	return minX, minY, maxX, maxY
}

// Arrow points from Start to End.
type Arrow struct {
	id         uint64
	Start, End geometry.Point
	Options    ArrowOptions
}

func NewArrow(id uint64, start, end geometry.Point, opts ArrowOptions) *Arrow {
	return &Arrow{id: id, Start: start, End: end, Options: opts}
}

func (a *Arrow) ID() uint64     { return a.id }
func (a *Arrow) Kind() ToolKind { return ToolArrow }
func (a *Arrow) clone() Object {
	c := *a
	return &c
}

func (a *Arrow) String() string {
	return fmt.Sprintf("#%d arrow %s->%s color=%s thickness=%d head=%d",
		a.id, a.Start, a.End, a.Options.Color, a.Options.Thickness, a.Options.HeadSize)
}

// Rectangle is an outlined or filled box.
type Rectangle struct {
	id            uint64
	X, Y          int32
	Width, Height uint32
	Options       RectangleOptions
}

func NewRectangle(id uint64, b geometry.Bounds, opts RectangleOptions) *Rectangle {
	return &Rectangle{id: id, X: b.X, Y: b.Y, Width: b.Width, Height: b.Height, Options: opts}
}

func (r *Rectangle) ID() uint64     { return r.id }
func (r *Rectangle) Kind() ToolKind { return ToolRectangle }
func (r *Rectangle) clone() Object {
	c := *r
	return &c
}

// Bounds returns the box of the rectangle.
func (r *Rectangle) Bounds() geometry.Bounds {
	return geometry.Bounds{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

func (r *Rectangle) String() string {
	return fmt.Sprintf("#%d rectangle %s color=%s thickness=%d fill=%t radius=%d",
		r.id, r.Bounds(), r.Options.Color, r.Options.Thickness, r.Options.FillEnabled, r.Options.BorderRadius)
}

// Crop is the region the image will be cut down to.
type Crop struct {
	id            uint64
	X, Y          int32
	Width, Height uint32
	Options       CropOptions
}

func NewCrop(id uint64, b geometry.Bounds, opts CropOptions) *Crop {
	return &Crop{id: id, X: b.X, Y: b.Y, Width: b.Width, Height: b.Height, Options: opts}
}

func (c *Crop) ID() uint64     { return c.id }
func (c *Crop) Kind() ToolKind { return ToolCrop }
func (c *Crop) clone() Object {
	d := *c
	return &d
}

func (c *Crop) Bounds() geometry.Bounds {
	return geometry.Bounds{X: c.X, Y: c.Y, Width: c.Width, Height: c.Height}
}

// CornerHandlesOnly reports whether the crop may only be resized from its
// corners, which is the case for every ratio-locked preset.
func (c *Crop) CornerHandlesOnly() bool {
	return c.Options.Preset != CropFree
}

func (c *Crop) String() string {
	return fmt.Sprintf("#%d crop %s preset=%s", c.id, c.Bounds(), c.Options.Preset)
}
