package tools

import (
	"fmt"
	"math"
	"strings"
)

// CropMinSize is the smallest width or height a crop box may have.
const CropMinSize uint32 = 16

// Unbounded marks an image extent with no known size.
const Unbounded uint32 = math.MaxUint32

// CropPreset constrains the aspect ratio of a crop box.
type CropPreset int

const (
	CropFree CropPreset = iota
	CropRatio16x9
	CropRatio1x1
	CropRatio9x16
	CropOriginal
)

// AllCropPresets lists the presets in menu order.
var AllCropPresets = []CropPreset{CropFree, CropRatio16x9, CropRatio1x1, CropRatio9x16, CropOriginal}

var cropLabels = [...]string{
	CropFree:      "Free",
	CropRatio16x9: "16:9",
	CropRatio1x1:  "1:1",
	CropRatio9x16: "9:16",
	CropOriginal:  "Original",
}

func (p CropPreset) valid() bool {
	return p >= CropFree && p <= CropOriginal
}

// Label is the human readable preset name.
func (p CropPreset) Label() string {
	if !p.valid() {
		return fmt.Sprintf("CropPreset(%d)", int(p))
	}
	return cropLabels[p]
}

func (p CropPreset) String() string { return p.Label() }

// ParseCropPreset matches a label case-insensitively. "16x9" style
// separators are accepted as well.
func ParseCropPreset(s string) (CropPreset, error) {
	name := strings.ReplaceAll(strings.TrimSpace(s), "x", ":")
	for i, label := range cropLabels {
		if strings.EqualFold(label, name) {
			return CropPreset(i), nil
		}
	}
	return CropFree, fmt.Errorf("unknown crop preset %q", s)
}

// Ratio returns the fixed ratio of the preset. Free and Original have none.
func (p CropPreset) Ratio() (rx, ry uint32, ok bool) {
	switch p {
	case CropRatio16x9:
		return 16, 9, true
	case CropRatio1x1:
		return 1, 1, true
	case CropRatio9x16:
		return 9, 16, true
	}
	return 0, 0, false
}

// ResolveRatio returns the ratio to enforce for an image of the given
// size. Original uses the image's own proportions.
func (p CropPreset) ResolveRatio(width, height uint32) (rx, ry uint32, ok bool) {
	if p == CropOriginal {
		return max(width, 1), max(height, 1), true
	}
	return p.Ratio()
}

// FitRatio returns the largest box of ratio rx:ry that fits inside
// width x height while keeping one side unchanged.
func FitRatio(width, height, rx, ry uint32) (uint32, uint32) {
	targetWidth := scaleDimension(height, rx, ry)
	if targetWidth <= width {
		return targetWidth, height
	}
	return width, scaleDimension(width, ry, rx)
}

func scaleDimension(v, num, den uint32) uint32 {
	if den == 0 {
		return 0
	}
	scaled := uint64(v) * uint64(num) / uint64(den)
	if scaled > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(scaled)
}
