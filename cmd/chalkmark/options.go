package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/example/chalkmark/internal/config"
	"github.com/example/chalkmark/internal/geometry"
	"github.com/example/chalkmark/internal/tools"
)

type optionSetter struct {
	value string
	apply func(e *tools.Editor, v string) error
}

var optionSetters = map[string]optionSetter{
	"color":           {"COLOR", colorSetter((*tools.Editor).SetSharedStrokeColor)},
	"thickness":       {"1-255", uint8Setter((*tools.Editor).SetSharedStrokeThickness)},
	"blur.intensity":  {"1-100", uint8Setter((*tools.Editor).SetBlurIntensity)},
	"pen.color":       {"COLOR", colorSetter((*tools.Editor).SetPenColor)},
	"pen.opacity":     {"1-100", uint8Setter((*tools.Editor).SetPenOpacity)},
	"pen.thickness":   {"1-255", uint8Setter((*tools.Editor).SetPenThickness)},
	"arrow.color":     {"COLOR", colorSetter((*tools.Editor).SetArrowColor)},
	"arrow.thickness": {"1-255", uint8Setter((*tools.Editor).SetArrowThickness)},
	"arrow.head":      {"1-255", uint8Setter((*tools.Editor).SetArrowHeadSize)},
	"rect.color":      {"COLOR", colorSetter((*tools.Editor).SetRectangleColor)},
	"rect.thickness":  {"1-255", uint8Setter((*tools.Editor).SetRectangleThickness)},
	"rect.fill":       {"true|false", setRectangleFill},
	"rect.radius":     {"0-65535", uint16Setter((*tools.Editor).SetRectangleBorderRadius)},
	"crop.preset":     {"PRESET", setCropPreset},
	"text.color":      {"COLOR", colorSetter((*tools.Editor).SetTextColor)},
	"text.size":       {"1-65535", uint16Setter((*tools.Editor).SetTextSize)},
	"text.weight":     {"100-1000", uint16Setter((*tools.Editor).SetTextWeight)},
	"text.family":     {"sans|serif", setTextFamily},
}

func setRectangleFill(e *tools.Editor, v string) error {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid boolean %q", v)
	}
	e.SetRectangleFill(b)
	return nil
}

func setCropPreset(e *tools.Editor, v string) error {
	p, err := tools.ParseCropPreset(v)
	if err != nil {
		return err
	}
	e.SetCropPreset(p)
	return nil
}

func setTextFamily(e *tools.Editor, v string) error {
	f, err := tools.ParseTextFontFamily(v)
	if err != nil {
		return err
	}
	e.SetTextFamily(f)
	return nil
}

func colorSetter(set func(*tools.Editor, geometry.Color)) func(*tools.Editor, string) error {
	return func(e *tools.Editor, v string) error {
		c, err := config.ParseColor(v)
		if err != nil {
			return err
		}
		set(e, c)
		return nil
	}
}

func uint8Setter(set func(*tools.Editor, uint8)) func(*tools.Editor, string) error {
	return func(e *tools.Editor, v string) error {
		n, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			return fmt.Errorf("invalid value %q", v)
		}
		set(e, uint8(n))
		return nil
	}
}

func uint16Setter(set func(*tools.Editor, uint16)) func(*tools.Editor, string) error {
	return func(e *tools.Editor, v string) error {
		n, err := strconv.ParseUint(v, 10, 16)
		if err != nil {
			return fmt.Errorf("invalid value %q", v)
		}
		set(e, uint16(n))
		return nil
	}
}

func (s *session) cmdSet(args []string, _ string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: set KEY VALUE")
	}
	key := strings.ToLower(args[0])
	setter, ok := optionSetters[key]
	if !ok {
		return fmt.Errorf("unknown option %q (try 'help set')", args[0])
	}
	if err := setter.apply(s.editor, args[1]); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return nil
}

func (s *session) printSetHelp() error {
	keys := make([]string, 0, len(optionSetters))
	for k := range optionSetters {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if err := writef(s.stdout, "  %-16s %s\n", k, optionSetters[k].value); err != nil {
			return err
		}
	}
	return nil
}

// describeVisibility names the option controls a tool exposes.
func describeVisibility(k tools.ToolKind) string {
	v := k.OptionVisibility()
	if !v.HasAny() {
		return "no options"
	}
	var parts []string
	if v.Color {
		parts = append(parts, "color")
	}
	if v.StrokeWidth {
		parts = append(parts, "stroke width")
	}
	if v.TextSize {
		parts = append(parts, "text size")
	}
	if v.CropPreset {
		parts = append(parts, "crop preset")
	}
	return strings.Join(parts, ", ")
}
