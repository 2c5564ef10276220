// Package tools models the annotations drawn over a captured image: the
// object store, the sticky per-tool options, and the operations that
// create, move, resize, edit and remove objects while keeping them
// consistent with the image bounds.
//
// An Editor is not safe for concurrent use.
package tools

import (
	"log/slog"
	"math"

	"github.com/example/chalkmark/internal/geometry"
)

type activeRef struct {
	id uint64
	ok bool
}

func (a *activeRef) set(id uint64) { *a = activeRef{id: id, ok: true} }
func (a *activeRef) clear()        { *a = activeRef{} }

func (a activeRef) is(id uint64) bool { return a.ok && a.id == id }

// Editor owns the annotation objects of one image.
type Editor struct {
	objects    []Object
	nextID     uint64
	tool       ToolKind
	options    Options
	activePen  activeRef
	activeText activeRef
	logger     *slog.Logger
}

// Option configures an Editor.
type Option func(*Editor)

// WithToolOptions seeds the sticky tool options, for example from the
// user's configuration. Out of range values are clamped.
func WithToolOptions(o Options) Option {
	return func(e *Editor) {
		e.options = o.Normalized()
	}
}

// WithLogger sets the logger used for debug output. A nil logger
// disables logging.
func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) {
		if l == nil {
			l = newNopLogger()
		}
		e.logger = l
	}
}

// New creates an empty editor with the select tool active.
func New(opts ...Option) *Editor {
	e := &Editor{
		nextID:  1,
		tool:    ToolSelect,
		options: DefaultOptions(),
		logger:  newNopLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Editor) allocateID() uint64 {
	id := e.nextID
	if e.nextID < math.MaxUint64 {
		e.nextID++
	}
	return id
}

// NextID is the id the next created object will receive.
func (e *Editor) NextID() uint64 {
	return e.nextID
}

func (e *Editor) reject(op string, err error, args ...any) error {
	e.logger.Debug(op+" rejected", append(args, "err", err)...)
	return err
}

func (e *Editor) index(id uint64) int {
	for i, obj := range e.objects {
		if obj.ID() == id {
			return i
		}
	}
	return -1
}

// find returns the stored object with the given id if it has type T.
func find[T Object](e *Editor, id uint64) (T, bool) {
	var zero T
	i := e.index(id)
	if i < 0 {
		return zero, false
	}
	obj, ok := e.objects[i].(T)
	return obj, ok
}

// SelectTool makes k the active tool.
func (e *Editor) SelectTool(k ToolKind) {
	e.tool = k
}

// ActiveTool returns the selected tool.
func (e *Editor) ActiveTool() ToolKind {
	return e.tool
}

// ToolOptions returns a copy of every tool's options.
func (e *Editor) ToolOptions() Options {
	return e.options
}

func (e *Editor) BlurOptions() BlurOptions           { return e.options.Blur }
func (e *Editor) PenOptions() PenOptions             { return e.options.Pen }
func (e *Editor) ArrowOptions() ArrowOptions         { return e.options.Arrow }
func (e *Editor) RectangleOptions() RectangleOptions { return e.options.Rectangle }
func (e *Editor) CropOptions() CropOptions           { return e.options.Crop }
func (e *Editor) TextOptions() TextOptions           { return e.options.Text }

func (e *Editor) SetBlurIntensity(v uint8)     { e.options.Blur.SetIntensity(v) }
func (e *Editor) SetPenColor(c geometry.Color) { e.options.Pen.Color = c }
func (e *Editor) SetPenOpacity(v uint8)        { e.options.Pen.SetOpacity(v) }
func (e *Editor) SetPenThickness(v uint8)      { e.options.Pen.SetThickness(v) }

func (e *Editor) SetArrowColor(c geometry.Color) { e.options.Arrow.Color = c }
func (e *Editor) SetArrowThickness(v uint8)      { e.options.Arrow.SetThickness(v) }
func (e *Editor) SetArrowHeadSize(v uint8)       { e.options.Arrow.SetHeadSize(v) }

func (e *Editor) SetRectangleColor(c geometry.Color) { e.options.Rectangle.Color = c }
func (e *Editor) SetRectangleThickness(v uint8)      { e.options.Rectangle.SetThickness(v) }
func (e *Editor) SetRectangleFill(fill bool)         { e.options.Rectangle.FillEnabled = fill }
func (e *Editor) SetRectangleBorderRadius(v uint16)  { e.options.Rectangle.BorderRadius = v }

func (e *Editor) SetCropPreset(p CropPreset) {
	if !p.valid() {
		p = CropFree
	}
	e.options.Crop.Preset = p
}

func (e *Editor) SetTextColor(c geometry.Color)  { e.options.Text.Color = c }
func (e *Editor) SetTextSize(v uint16)           { e.options.Text.SetSize(v) }
func (e *Editor) SetTextWeight(v uint16)         { e.options.Text.SetWeight(v) }
func (e *Editor) SetTextFamily(f TextFontFamily) { e.options.Text.Family = f }

// SetSharedStrokeColor applies c to every tool that draws with a color.
func (e *Editor) SetSharedStrokeColor(c geometry.Color) {
	e.options.Pen.Color = c
	e.options.Arrow.Color = c
	e.options.Rectangle.Color = c
	e.options.Text.Color = c
}

// SetSharedStrokeThickness applies v to the pen, arrow and rectangle tools.
func (e *Editor) SetSharedStrokeThickness(v uint8) {
	e.options.Pen.SetThickness(v)
	e.options.Arrow.SetThickness(v)
	e.options.Rectangle.SetThickness(v)
}
