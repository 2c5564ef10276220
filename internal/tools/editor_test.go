package tools

import (
	"errors"
	"testing"

	"github.com/example/chalkmark/internal/geometry"
	"github.com/google/go-cmp/cmp"
)

var allowObjects = cmp.AllowUnexported(Blur{}, PenStroke{}, Arrow{}, Rectangle{}, Crop{}, Text{})

var red = geometry.Color{R: 255}

func TestNewDefaults(t *testing.T) {
	e := New()
	if e.ActiveTool() != ToolSelect {
		t.Errorf("initial tool = %v, want select", e.ActiveTool())
	}
	if e.NextID() != 1 || e.Len() != 0 {
		t.Errorf("fresh editor: next=%d len=%d", e.NextID(), e.Len())
	}
	want := Options{
		Blur:      BlurOptions{Intensity: 55},
		Pen:       PenOptions{Opacity: 100, Thickness: 3},
		Arrow:     ArrowOptions{Thickness: 3, HeadSize: 8},
		Rectangle: RectangleOptions{Thickness: 3, BorderRadius: 8},
		Crop:      CropOptions{Preset: CropFree},
		Text:      TextOptions{Size: 16, Weight: 500, Family: FontSans},
	}
	if diff := cmp.Diff(want, e.ToolOptions()); diff != "" {
		t.Errorf("default options mismatch (-want +got):\n%s", diff)
	}
	if _, ok := e.ActiveTextID(); ok {
		t.Error("fresh editor has a focused text box")
	}
	if _, ok := e.ActivePenStrokeID(); ok {
		t.Error("fresh editor has an active stroke")
	}
}

func TestOptionSettersClamp(t *testing.T) {
	e := New()

	e.SetBlurIntensity(0)
	if got := e.BlurOptions().Intensity; got != 1 {
		t.Errorf("blur intensity 0 -> %d", got)
	}
	e.SetBlurIntensity(84)
	if got := e.BlurOptions().Intensity; got != 84 {
		t.Errorf("blur intensity 84 -> %d", got)
	}
	e.SetBlurIntensity(255)
	if got := e.BlurOptions().Intensity; got != 100 {
		t.Errorf("blur intensity 255 -> %d", got)
	}

	e.SetPenOpacity(0)
	if got := e.PenOptions().Opacity; got != 1 {
		t.Errorf("pen opacity 0 -> %d", got)
	}
	e.SetPenOpacity(200)
	if got := e.PenOptions().Opacity; got != 100 {
		t.Errorf("pen opacity 200 -> %d", got)
	}
	e.SetPenThickness(0)
	if got := e.PenOptions().Thickness; got != 1 {
		t.Errorf("pen thickness 0 -> %d", got)
	}

	e.SetArrowThickness(0)
	e.SetArrowHeadSize(0)
	if got := e.ArrowOptions(); got.Thickness != 1 || got.HeadSize != 1 {
		t.Errorf("arrow options not clamped: %+v", got)
	}
	e.SetRectangleThickness(0)
	if got := e.RectangleOptions().Thickness; got != 1 {
		t.Errorf("rectangle thickness 0 -> %d", got)
	}

	e.SetTextSize(0)
	if got := e.TextOptions().Size; got != 1 {
		t.Errorf("text size 0 -> %d", got)
	}
	e.SetTextWeight(50)
	if got := e.TextOptions().Weight; got != 100 {
		t.Errorf("text weight 50 -> %d", got)
	}
	e.SetTextWeight(2000)
	if got := e.TextOptions().Weight; got != 1000 {
		t.Errorf("text weight 2000 -> %d", got)
	}

	e.SetCropPreset(CropPreset(42))
	if got := e.CropOptions().Preset; got != CropFree {
		t.Errorf("invalid preset stored as %v", got)
	}
}

func TestSharedStrokeStyle(t *testing.T) {
	e := New()
	e.SetSharedStrokeColor(red)
	e.SetSharedStrokeThickness(9)

	opts := e.ToolOptions()
	for name, c := range map[string]geometry.Color{
		"pen":       opts.Pen.Color,
		"arrow":     opts.Arrow.Color,
		"rectangle": opts.Rectangle.Color,
		"text":      opts.Text.Color,
	} {
		if c != red {
			t.Errorf("%s color = %v, want %v", name, c, red)
		}
	}
	if opts.Pen.Thickness != 9 || opts.Arrow.Thickness != 9 || opts.Rectangle.Thickness != 9 {
		t.Errorf("thickness not shared: %+v", opts)
	}
	if opts.Text.Size != DefaultTextSize {
		t.Errorf("text size changed to %d", opts.Text.Size)
	}
}

func TestWithToolOptionsNormalizes(t *testing.T) {
	e := New(WithToolOptions(Options{Crop: CropOptions{Preset: CropPreset(-1)}}))
	opts := e.ToolOptions()
	if opts.Pen.Opacity != 1 || opts.Pen.Thickness != 1 {
		t.Errorf("pen options not normalized: %+v", opts.Pen)
	}
	if opts.Text.Size != 1 || opts.Text.Weight != MinTextWeight {
		t.Errorf("text options not normalized: %+v", opts.Text)
	}
	if opts.Crop.Preset != CropFree {
		t.Errorf("crop preset = %v", opts.Crop.Preset)
	}
	if opts.Blur.Intensity != 1 {
		t.Errorf("blur intensity = %d", opts.Blur.Intensity)
	}
}

func TestStickyOptionsAreCopied(t *testing.T) {
	e := New()
	e.SetBlurIntensity(84)
	id, err := e.AddBlur(BlurRegion{X: 1, Y: 2, Width: 3, Height: 4})
	if err != nil {
		t.Fatalf("AddBlur: %v", err)
	}
	e.SetBlurIntensity(20)
	blur, ok := e.Blur(id)
	if !ok {
		t.Fatalf("blur %d missing", id)
	}
	if blur.Options.Intensity != 84 {
		t.Errorf("stored intensity = %d, want 84", blur.Options.Intensity)
	}
	if blur.Anchor != geometry.Pt(1, 2) {
		t.Errorf("anchor = %v", blur.Anchor)
	}
}

func TestCreationRejectsDegenerateGeometry(t *testing.T) {
	e := New()
	if _, err := e.AddBlur(BlurRegion{Width: 0, Height: 10}); !errors.Is(err, ErrInvalidBlurRegion) {
		t.Errorf("AddBlur: got %v", err)
	}
	if _, err := e.AddArrow(geometry.Pt(5, 5), geometry.Pt(5, 5)); !errors.Is(err, ErrInvalidArrowGeometry) {
		t.Errorf("AddArrow: got %v", err)
	}
	if _, err := e.AddRectangle(geometry.Pt(5, 5), geometry.Pt(5, 20)); !errors.Is(err, ErrInvalidRectangleGeometry) {
		t.Errorf("AddRectangle: got %v", err)
	}
	if _, err := e.AddPenStroke(nil); !errors.Is(err, ErrEmptyPenStroke) {
		t.Errorf("AddPenStroke: got %v", err)
	}
	if e.Len() != 0 || e.NextID() != 1 {
		t.Errorf("rejected creations changed the store: len=%d next=%d", e.Len(), e.NextID())
	}
}

func TestAddRectangleNormalizesCorners(t *testing.T) {
	e := New()
	e.SetRectangleFill(true)
	e.SetRectangleBorderRadius(4)
	id, err := e.AddRectangle(geometry.Pt(30, 40), geometry.Pt(12, 8))
	if err != nil {
		t.Fatalf("AddRectangle: %v", err)
	}
	got, _ := e.Rectangle(id)
	want := NewRectangle(id, geometry.Bounds{X: 12, Y: 8, Width: 18, Height: 32}, RectangleOptions{
		Thickness:    DefaultStrokeThickness,
		FillEnabled:  true,
		BorderRadius: 4,
	})
	if diff := cmp.Diff(want, got, allowObjects); diff != "" {
		t.Errorf("rectangle mismatch (-want +got):\n%s", diff)
	}
}

func TestAddRectangleExtremeCorners(t *testing.T) {
	e := New()
	id, err := e.AddRectangle(geometry.Pt(-2147483648, -2147483648), geometry.Pt(2147483647, 2147483647))
	if err != nil {
		t.Fatalf("AddRectangle: %v", err)
	}
	r, _ := e.Rectangle(id)
	if r.Width != 4294967295 || r.Height != 4294967295 {
		t.Errorf("extent = %dx%d", r.Width, r.Height)
	}
}

func TestIDsAreSequential(t *testing.T) {
	e := New()
	text := e.AddTextBox(geometry.Pt(0, 0))
	if text != 1 {
		t.Fatalf("first id = %d, want 1", text)
	}
	arrow, err := e.AddArrow(geometry.Pt(0, 0), geometry.Pt(1, 1))
	if err != nil {
		t.Fatalf("AddArrow: %v", err)
	}
	if arrow != 2 {
		t.Errorf("second id = %d, want 2", arrow)
	}
	if e.ActiveTool() != ToolText {
		t.Errorf("adding a text box should select the text tool, got %v", e.ActiveTool())
	}
}

func TestToolKindOptionVisibility(t *testing.T) {
	tests := []struct {
		kind ToolKind
		want OptionVisibility
	}{
		{ToolSelect, OptionVisibility{}},
		{ToolPan, OptionVisibility{}},
		{ToolBlur, OptionVisibility{}},
		{ToolOcr, OptionVisibility{}},
		{ToolPen, OptionVisibility{Color: true, StrokeWidth: true}},
		{ToolArrow, OptionVisibility{Color: true, StrokeWidth: true}},
		{ToolRectangle, OptionVisibility{Color: true, StrokeWidth: true}},
		{ToolText, OptionVisibility{Color: true, TextSize: true}},
		{ToolCrop, OptionVisibility{CropPreset: true}},
	}
	for _, tt := range tests {
		got := tt.kind.OptionVisibility()
		if got != tt.want {
			t.Errorf("%v: visibility = %+v, want %+v", tt.kind, got, tt.want)
		}
		if got.HasAny() != (tt.want != OptionVisibility{}) {
			t.Errorf("%v: HasAny = %v", tt.kind, got.HasAny())
		}
	}
}

func TestParseToolKind(t *testing.T) {
	for _, k := range AllToolKinds() {
		got, err := ParseToolKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseToolKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if got, err := ParseToolKind("Rect"); err != nil || got != ToolRectangle {
		t.Errorf("ParseToolKind(Rect) = %v, %v", got, err)
	}
	if _, err := ParseToolKind("lasso"); err == nil {
		t.Error("expected error for unknown tool")
	}
}
