package config

import (
	"fmt"
	"strings"

	"github.com/example/chalkmark/internal/tools"
)

// Default canvas dimensions used when neither flags, environment nor the
// RC file specify one.
const (
	DefaultCanvasWidth  uint32 = 1280
	DefaultCanvasHeight uint32 = 720
)

// Config holds the application configuration.
type Config struct {
	CanvasWidth  uint32
	CanvasHeight uint32
	Tools        tools.Options
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		CanvasWidth:  DefaultCanvasWidth,
		CanvasHeight: DefaultCanvasHeight,
		Tools:        tools.DefaultOptions(),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "canvas_width = %d\n", c.CanvasWidth)
	fmt.Fprintf(&sb, "canvas_height = %d\n", c.CanvasHeight)
	sb.WriteString("\n")

	o := c.Tools
	sb.WriteString("[blur]\n")
	fmt.Fprintf(&sb, "intensity = %d\n", o.Blur.Intensity)
	sb.WriteString("\n")

	sb.WriteString("[pen]\n")
	fmt.Fprintf(&sb, "color = %s\n", o.Pen.Color)
	fmt.Fprintf(&sb, "opacity = %d\n", o.Pen.Opacity)
	fmt.Fprintf(&sb, "thickness = %d\n", o.Pen.Thickness)
	sb.WriteString("\n")

	sb.WriteString("[arrow]\n")
	fmt.Fprintf(&sb, "color = %s\n", o.Arrow.Color)
	fmt.Fprintf(&sb, "thickness = %d\n", o.Arrow.Thickness)
	fmt.Fprintf(&sb, "head_size = %d\n", o.Arrow.HeadSize)
	sb.WriteString("\n")

	sb.WriteString("[rectangle]\n")
	fmt.Fprintf(&sb, "color = %s\n", o.Rectangle.Color)
	fmt.Fprintf(&sb, "thickness = %d\n", o.Rectangle.Thickness)
	fmt.Fprintf(&sb, "fill = %v\n", o.Rectangle.FillEnabled)
	fmt.Fprintf(&sb, "radius = %d\n", o.Rectangle.BorderRadius)
	sb.WriteString("\n")

	sb.WriteString("[crop]\n")
	fmt.Fprintf(&sb, "preset = %s\n", o.Crop.Preset)
	sb.WriteString("\n")

	sb.WriteString("[text]\n")
	fmt.Fprintf(&sb, "color = %s\n", o.Text.Color)
	fmt.Fprintf(&sb, "size = %d\n", o.Text.Size)
	fmt.Fprintf(&sb, "weight = %d\n", o.Text.Weight)
	fmt.Fprintf(&sb, "family = %s\n", o.Text.Family)

	return sb.String()
}
