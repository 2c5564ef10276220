package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/chalkmark/internal/tools"
)

// Parse reads configuration from an io.Reader. Unknown sections and keys
// are ignored; values are pulled into their valid ranges.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	var currentSection string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentSection = strings.ToLower(strings.TrimSpace(line[1 : len(line)-1]))
			continue
		}

		// Key = Value or Key: Value
		var parts []string
		if strings.Contains(line, "=") {
			parts = strings.SplitN(line, "=", 2)
		} else if strings.Contains(line, ":") {
			parts = strings.SplitN(line, ":", 2)
		} else {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(parts[0]))
		value := strings.TrimSpace(parts[1])
		if len(value) >= 2 && strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") {
			value = value[1 : len(value)-1]
		}

		var err error
		switch currentSection {
		case "":
			err = setRootField(cfg, key, value)
		case "blur":
			err = setBlurField(&cfg.Tools.Blur, key, value)
		case "pen":
			err = setPenField(&cfg.Tools.Pen, key, value)
		case "arrow":
			err = setArrowField(&cfg.Tools.Arrow, key, value)
		case "rectangle", "rect":
			err = setRectangleField(&cfg.Tools.Rectangle, key, value)
		case "crop":
			err = setCropField(&cfg.Tools.Crop, key, value)
		case "text":
			err = setTextField(&cfg.Tools.Text, key, value)
		}
		if err != nil {
			if currentSection == "" {
				return nil, fmt.Errorf("error in root section: %w", err)
			}
			return nil, fmt.Errorf("error in section [%s]: %w", currentSection, err)
		}
	}

	return cfg, scanner.Err()
}

func setRootField(cfg *Config, key, value string) error {
	switch key {
	case "canvas_width":
		v, err := parseDimension(key, value)
		if err != nil {
			return err
		}
		cfg.CanvasWidth = v
	case "canvas_height":
		v, err := parseDimension(key, value)
		if err != nil {
			return err
		}
		cfg.CanvasHeight = v
	}
	return nil
}

func setBlurField(o *tools.BlurOptions, key, value string) error {
	if key != "intensity" {
		return nil
	}
	v, err := parseUint8(key, value)
	if err != nil {
		return err
	}
	o.SetIntensity(v)
	return nil
}

func setPenField(o *tools.PenOptions, key, value string) error {
	switch key {
	case "color":
		c, err := ParseColor(value)
		if err != nil {
			return err
		}
		o.Color = c
	case "opacity":
		v, err := parseUint8(key, value)
		if err != nil {
			return err
		}
		o.SetOpacity(v)
	case "thickness":
		v, err := parseUint8(key, value)
		if err != nil {
			return err
		}
		o.SetThickness(v)
	}
	return nil
}

func setArrowField(o *tools.ArrowOptions, key, value string) error {
	switch key {
	case "color":
		c, err := ParseColor(value)
		if err != nil {
			return err
		}
		o.Color = c
	case "thickness":
		v, err := parseUint8(key, value)
		if err != nil {
			return err
		}
		o.SetThickness(v)
	case "head_size":
		v, err := parseUint8(key, value)
		if err != nil {
			return err
		}
		o.SetHeadSize(v)
	}
	return nil
}

func setRectangleField(o *tools.RectangleOptions, key, value string) error {
	switch key {
	case "color":
		c, err := ParseColor(value)
		if err != nil {
			return err
		}
		o.Color = c
	case "thickness":
		v, err := parseUint8(key, value)
		if err != nil {
			return err
		}
		o.SetThickness(v)
	case "fill":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for key %s: %w", key, err)
		}
		o.FillEnabled = b
	case "radius":
		v, err := parseUint16(key, value)
		if err != nil {
			return err
		}
		o.BorderRadius = v
	}
	return nil
}

func setCropField(o *tools.CropOptions, key, value string) error {
	if key != "preset" {
		return nil
	}
	p, err := tools.ParseCropPreset(value)
	if err != nil {
		return err
	}
	o.Preset = p
	return nil
}

func setTextField(o *tools.TextOptions, key, value string) error {
	switch key {
	case "color":
		c, err := ParseColor(value)
		if err != nil {
			return err
		}
		o.Color = c
	case "size":
		v, err := parseUint16(key, value)
		if err != nil {
			return err
		}
		o.SetSize(v)
	case "weight":
		v, err := parseUint16(key, value)
		if err != nil {
			return err
		}
		o.SetWeight(v)
	case "family":
		f, err := tools.ParseTextFontFamily(value)
		if err != nil {
			return err
		}
		o.Family = f
	}
	return nil
}

func parseUint8(key, value string) (uint8, error) {
	v, err := strconv.ParseUint(value, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid number for key %s: %w", key, err)
	}
	return uint8(v), nil
}

func parseUint16(key, value string) (uint16, error) {
	v, err := strconv.ParseUint(value, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid number for key %s: %w", key, err)
	}
	return uint16(v), nil
}

func parseDimension(key, value string) (uint32, error) {
	v, err := strconv.ParseUint(value, 10, 32)
	if err != nil || v == 0 {
		return 0, fmt.Errorf("invalid dimension for key %s: %q", key, value)
	}
	return uint32(v), nil
}
