package tools

import (
	"fmt"
	"strings"

	"github.com/example/chalkmark/internal/geometry"
)

const (
	DefaultBlurIntensity   uint8  = 55
	DefaultStrokeThickness uint8  = 3
	DefaultPenOpacity      uint8  = 100
	DefaultArrowHeadSize   uint8  = 8
	DefaultBorderRadius    uint16 = 8
	DefaultTextSize        uint16 = 16
	DefaultTextWeight      uint16 = 500

	MinTextWeight uint16 = 100
	MaxTextWeight uint16 = 1000
)

// BlurOptions configures the blur tool.
type BlurOptions struct {
	Intensity uint8
}

// SetIntensity stores v clamped to 1..100.
func (o *BlurOptions) SetIntensity(v uint8) {
	o.Intensity = clampPercent(v)
}

// PenOptions configures freehand strokes.
type PenOptions struct {
	Color     geometry.Color
	Opacity   uint8
	Thickness uint8
}

func (o *PenOptions) SetOpacity(v uint8)   { o.Opacity = clampPercent(v) }
func (o *PenOptions) SetThickness(v uint8) { o.Thickness = clampStroke(v) }

// ArrowOptions configures arrows.
type ArrowOptions struct {
	Color     geometry.Color
	Thickness uint8
	HeadSize  uint8
}

func (o *ArrowOptions) SetThickness(v uint8) { o.Thickness = clampStroke(v) }
func (o *ArrowOptions) SetHeadSize(v uint8)  { o.HeadSize = clampStroke(v) }

// RectangleOptions configures rectangles.
type RectangleOptions struct {
	Color        geometry.Color
	Thickness    uint8
	FillEnabled  bool
	BorderRadius uint16
}

func (o *RectangleOptions) SetThickness(v uint8) { o.Thickness = clampStroke(v) }

// CropOptions configures the crop tool.
type CropOptions struct {
	Preset CropPreset
}

// TextFontFamily selects the face used for text boxes.
type TextFontFamily int

const (
	FontSans TextFontFamily = iota
	FontSerif
)

func (f TextFontFamily) String() string {
	if f == FontSerif {
		return "serif"
	}
	return "sans"
}

// ParseTextFontFamily accepts "sans" or "serif" in any case.
func ParseTextFontFamily(s string) (TextFontFamily, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sans":
		return FontSans, nil
	case "serif":
		return FontSerif, nil
	}
	return FontSans, fmt.Errorf("unknown font family %q", s)
}

// TextOptions configures text boxes.
type TextOptions struct {
	Color  geometry.Color
	Size   uint16
	Weight uint16
	Family TextFontFamily
}

func (o *TextOptions) SetSize(v uint16)   { o.Size = max(v, 1) }
func (o *TextOptions) SetWeight(v uint16) { o.Weight = min(max(v, MinTextWeight), MaxTextWeight) }

// Options is the full set of sticky tool options. New objects copy the
// record of their tool at creation time.
type Options struct {
	Blur      BlurOptions
	Pen       PenOptions
	Arrow     ArrowOptions
	Rectangle RectangleOptions
	Crop      CropOptions
	Text      TextOptions
}

// DefaultOptions returns the options a fresh editor starts with.
func DefaultOptions() Options {
	return Options{
		Blur: BlurOptions{Intensity: DefaultBlurIntensity},
		Pen: PenOptions{
			Color:     geometry.Black,
			Opacity:   DefaultPenOpacity,
			Thickness: DefaultStrokeThickness,
		},
		Arrow: ArrowOptions{
			Color:     geometry.Black,
			Thickness: DefaultStrokeThickness,
			HeadSize:  DefaultArrowHeadSize,
		},
		Rectangle: RectangleOptions{
			Color:        geometry.Black,
			Thickness:    DefaultStrokeThickness,
			BorderRadius: DefaultBorderRadius,
		},
		Crop: CropOptions{Preset: CropFree},
		Text: TextOptions{
			Color:  geometry.Black,
			Size:   DefaultTextSize,
			Weight: DefaultTextWeight,
			Family: FontSans,
		},
	}
}

// Normalized returns o with every value pulled into its valid range.
func (o Options) Normalized() Options {
	o.Blur.SetIntensity(o.Blur.Intensity)
	o.Pen.SetOpacity(o.Pen.Opacity)
	o.Pen.SetThickness(o.Pen.Thickness)
	o.Arrow.SetThickness(o.Arrow.Thickness)
	o.Arrow.SetHeadSize(o.Arrow.HeadSize)
	o.Rectangle.SetThickness(o.Rectangle.Thickness)
	o.Text.SetSize(o.Text.Size)
	o.Text.SetWeight(o.Text.Weight)
	if !o.Crop.Preset.valid() {
		o.Crop.Preset = CropFree
	}
	if o.Text.Family != FontSerif {
		o.Text.Family = FontSans
	}
	return o
}

func clampPercent(v uint8) uint8 {
	return min(max(v, 1), 100)
}

func clampStroke(v uint8) uint8 {
	return max(v, 1)
}
