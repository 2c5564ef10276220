package config

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/example/chalkmark/internal/geometry"
)

// PaletteColor is a named entry of the drawing palette.
type PaletteColor struct {
	Name  string
	Color geometry.Color
}

var palette = []PaletteColor{
	{"Black", geometry.Color{R: 0, G: 0, B: 0}},
	{"White", geometry.Color{R: 255, G: 255, B: 255}},
	{"Red", geometry.Color{R: 255, G: 0, B: 0}},
	{"Lime", geometry.Color{R: 0, G: 255, B: 0}},
	{"Blue", geometry.Color{R: 0, G: 0, B: 255}},
	{"Yellow", geometry.Color{R: 255, G: 255, B: 0}},
	{"Cyan", geometry.Color{R: 0, G: 255, B: 255}},
	{"Magenta", geometry.Color{R: 255, G: 0, B: 255}},
	{"Maroon", geometry.Color{R: 128, G: 0, B: 0}},
	{"Green", geometry.Color{R: 0, G: 128, B: 0}},
	{"Navy", geometry.Color{R: 0, G: 0, B: 128}},
	{"Olive", geometry.Color{R: 128, G: 128, B: 0}},
	{"Teal", geometry.Color{R: 0, G: 128, B: 128}},
	{"Purple", geometry.Color{R: 128, G: 0, B: 128}},
	{"Silver", geometry.Color{R: 192, G: 192, B: 192}},
	{"Gray", geometry.Color{R: 128, G: 128, B: 128}},
}

// PaletteColors returns the palette entries in display order.
func PaletteColors() []PaletteColor {
	out := make([]PaletteColor, len(palette))
	copy(out, palette)
	return out
}

// ParseColor accepts a palette name, an x/image colornames name or a
// #RRGGBB hex triplet.
func ParseColor(s string) (geometry.Color, error) {
	spec := strings.ToLower(strings.TrimSpace(s))
	if spec == "" {
		return geometry.Color{}, fmt.Errorf("color cannot be empty")
	}
	for _, entry := range palette {
		if strings.EqualFold(entry.Name, spec) {
			return entry.Color, nil
		}
	}
	if c, ok := colornames.Map[spec]; ok {
		return geometry.ColorOf(c), nil
	}
	if strings.HasPrefix(spec, "#") && len(spec) == 7 {
		val, err := strconv.ParseUint(spec[1:], 16, 32)
		if err != nil {
			return geometry.Color{}, fmt.Errorf("invalid color %q", s)
		}
		return geometry.Color{
			R: uint8(val >> 16),
			G: uint8(val >> 8),
			B: uint8(val),
		}, nil
	}
	return geometry.Color{}, fmt.Errorf("invalid color %q", s)
}
