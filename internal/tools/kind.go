package tools

import (
	"fmt"
	"strings"
)

// ToolKind is the tool currently selected in the editor.
type ToolKind int

const (
	ToolSelect ToolKind = iota
	ToolPan
	ToolBlur
	ToolPen
	ToolArrow
	ToolRectangle
	ToolCrop
	ToolText
	ToolOcr
)

var toolNames = [...]string{
	ToolSelect:    "select",
	ToolPan:       "pan",
	ToolBlur:      "blur",
	ToolPen:       "pen",
	ToolArrow:     "arrow",
	ToolRectangle: "rectangle",
	ToolCrop:      "crop",
	ToolText:      "text",
	ToolOcr:       "ocr",
}

func (k ToolKind) String() string {
	if k < 0 || int(k) >= len(toolNames) {
		return fmt.Sprintf("ToolKind(%d)", int(k))
	}
	return toolNames[k]
}

// AllToolKinds lists every tool in toolbar order.
func AllToolKinds() []ToolKind {
	out := make([]ToolKind, len(toolNames))
	for i := range toolNames {
		out[i] = ToolKind(i)
	}
	return out
}

// ParseToolKind accepts a tool name as printed by String. "rect" is
// accepted for the rectangle tool.
func ParseToolKind(s string) (ToolKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "rect" {
		return ToolRectangle, nil
	}
	for i, n := range toolNames {
		if n == name {
			return ToolKind(i), nil
		}
	}
	return ToolSelect, fmt.Errorf("unknown tool %q", s)
}

// OptionVisibility says which option controls a tool exposes.
type OptionVisibility struct {
	Color       bool
	StrokeWidth bool
	TextSize    bool
	CropPreset  bool
}

// HasAny reports whether the tool has at least one option control.
func (v OptionVisibility) HasAny() bool {
	return v.Color || v.StrokeWidth || v.TextSize || v.CropPreset
}

// OptionVisibility returns the option controls relevant to k.
func (k ToolKind) OptionVisibility() OptionVisibility {
	switch k {
	case ToolPen, ToolArrow, ToolRectangle:
		return OptionVisibility{Color: true, StrokeWidth: true}
	case ToolText:
		return OptionVisibility{Color: true, TextSize: true}
	case ToolCrop:
		return OptionVisibility{CropPreset: true}
	}
	return OptionVisibility{}
}
