// Package geometry holds the integer value types shared by the annotation
// tools: canvas points, boxes, image extents and solid colors.
package geometry

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// Point is a signed canvas coordinate.
type Point struct {
	X, Y int32
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int32) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by (dx, dy), saturating at the int32 range.
func (p Point) Add(dx, dy int32) Point {
	return Point{X: SaturatingAdd(p.X, dx), Y: SaturatingAdd(p.Y, dy)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Bounds is an origin plus an unsigned extent.
type Bounds struct {
	X, Y          int32
	Width, Height uint32
}

// Rect converts b into an image.Rectangle.
func (b Bounds) Rect() image.Rectangle {
	x0, y0 := int64(b.X), int64(b.Y)
	return image.Rect(int(x0), int(y0), int(x0+int64(b.Width)), int(y0+int64(b.Height)))
}

// Empty reports whether either extent is zero.
func (b Bounds) Empty() bool {
	return b.Width == 0 || b.Height == 0
}

func (b Bounds) String() string {
	return fmt.Sprintf("%d,%d %dx%d", b.X, b.Y, b.Width, b.Height)
}

// ImageBounds is the size of the image being annotated.
type ImageBounds struct {
	Width, Height int32
}

// Size builds an ImageBounds from an image.Rectangle.
func Size(r image.Rectangle) ImageBounds {
	return ImageBounds{Width: ClampInt32(int64(r.Dx())), Height: ClampInt32(int64(r.Dy()))}
}

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// Black is the default stroke color of every tool.
var Black = Color{}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// ColorOf drops the alpha channel of any color.Color.
func ColorOf(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B}
}

func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// SaturatingAdd adds two int32 values without wrapping.
func SaturatingAdd(a, b int32) int32 {
	return ClampInt32(int64(a) + int64(b))
}

// ClampInt32 narrows v to the int32 range.
func ClampInt32(v int64) int32 {
	switch {
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	}
	return int32(v)
}

// ClampUint32 narrows v to the uint32 range.
func ClampUint32(v int64) uint32 {
	switch {
	case v > math.MaxUint32:
		return math.MaxUint32
	case v < 0:
		return 0
	}
	return uint32(v)
}
