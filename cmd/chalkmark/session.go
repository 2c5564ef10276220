package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/example/chalkmark/internal/clipboard"
	"github.com/example/chalkmark/internal/config"
	"github.com/example/chalkmark/internal/geometry"
	"github.com/example/chalkmark/internal/input"
	"github.com/example/chalkmark/internal/tools"
)

var (
	readClipboardFn  = clipboard.ReadText
	writeClipboardFn = clipboard.WriteText
)

// session interprets editing commands against a single Editor.
type session struct {
	id      string
	editor  *tools.Editor
	width   uint32
	height  uint32
	history *history

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func newSession(cfg *config.Config, width, height uint32, verbose bool) *session {
	if cfg == nil {
		cfg = config.New()
	}
	s := &session{
		id:      uuid.NewString(),
		width:   width,
		height:  height,
		history: newHistory(defaultHistoryDepth),
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
	opts := []tools.Option{tools.WithToolOptions(cfg.Tools)}
	if verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, tools.WithLogger(slog.New(h).With("session", s.id)))
	}
	s.editor = tools.New(opts...)
	return s
}

// withIO swaps the session streams and returns a function restoring them.
// Nil arguments keep the current stream.
func (s *session) withIO(in io.Reader, out, errW io.Writer) func() {
	prevIn, prevOut, prevErr := s.stdin, s.stdout, s.stderr
	if in != nil {
		s.stdin = in
	}
	if out != nil {
		s.stdout = out
	}
	if errW != nil {
		s.stderr = errW
	}
	return func() {
		s.stdin, s.stdout, s.stderr = prevIn, prevOut, prevErr
	}
}

func (s *session) imageBounds() geometry.ImageBounds {
	return geometry.ImageBounds{
		Width:  geometry.ClampInt32(int64(s.width)),
		Height: geometry.ClampInt32(int64(s.height)),
	}
}

type sessionCommand struct {
	usage   string
	summary string
	mutates bool
	run     func(s *session, args []string, rest string) error
}

var sessionCommands map[string]*sessionCommand

var sessionCommandOrder = []string{
	"tool", "set", "canvas",
	"blur", "arrow", "rect", "crop", "pen", "pento", "text",
	"type", "key", "paste", "focus", "done",
	"move", "resize", "remove", "undo", "redo",
	"list", "show", "help", "exit",
}

func init() {
	sessionCommands = map[string]*sessionCommand{
		"tool":   {"tool KIND", "select the active tool", false, (*session).cmdTool},
		"set":    {"set KEY VALUE", "change a sticky tool option (see 'help set')", false, (*session).cmdSet},
		"canvas": {"canvas W H", "set the image size used for clamping", false, (*session).cmdCanvas},
		"blur":   {"blur X Y W H", "add a blur region", true, (*session).cmdBlur},
		"arrow":  {"arrow X0 Y0 X1 Y1", "add an arrow", true, (*session).cmdArrow},
		"rect":   {"rect X0 Y0 X1 Y1", "add a rectangle spanning two corners", true, (*session).cmdRect},
		"crop":   {"crop X0 Y0 X1 Y1", "add a crop box fitted to the preset", true, (*session).cmdCrop},
		"pen":    {"pen X Y [X Y]...", "add a stroke, or begin one from a single point", true, (*session).cmdPen},
		"pento":  {"pento X Y", "extend the active pen stroke", true, (*session).cmdPenTo},
		"text":   {"text X Y [CONTENT...]", "add a focused text box", true, (*session).cmdText},
		"type":   {"type TEXT...", "type into the focused text box (\\n breaks the line)", true, (*session).cmdType},
		"key":    {"key SPEC", "send a key such as enter, ctrl+enter, left, backspace, ctrl+c", true, (*session).cmdKey},
		"paste":  {"paste", "type the clipboard text into the focused text box", true, (*session).cmdPaste},
		"focus":  {"focus ID", "focus an existing text box", false, (*session).cmdFocus},
		"done":   {"done", "finish the active pen stroke and text box", false, (*session).cmdDone},
		"move":   {"move ID DX DY", "move an object, clamped to the canvas", true, (*session).cmdMove},
		"resize": {"resize ID X Y W H", "resize a rectangle, blur or crop", true, (*session).cmdResize},
		"remove": {"remove ID", "delete an object", true, (*session).cmdRemove},
		"undo":   {"undo", "revert the last change", false, (*session).cmdUndo},
		"redo":   {"redo", "reapply the last undone change", false, (*session).cmdRedo},
		"list":   {"list", "print every object in z-order", false, (*session).cmdList},
		"show":   {"show ID", "print one object", false, (*session).cmdShow},
		"help":   {"help [set]", "print this help", false, (*session).cmdHelp},
	}
}

// executeLine runs one command line. done reports that the session
// should end.
func (s *session) executeLine(line string) (done bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false, nil
	}
	name, rest, _ := strings.Cut(line, " ")
	name = strings.ToLower(name)
	if name == "exit" || name == "quit" {
		return true, nil
	}
	cmd, ok := sessionCommands[name]
	if !ok {
		return false, fmt.Errorf("unknown command %q (try 'help')", name)
	}
	var before []tools.Object
	if cmd.mutates {
		before = s.editor.Objects()
	}
	if err := cmd.run(s, strings.Fields(rest), rest); err != nil {
		return false, fmt.Errorf("%s: %w", name, err)
	}
	if cmd.mutates {
		s.history.record(name, before)
	}
	return false, nil
}

func (s *session) printObject(id uint64) error {
	obj, ok := s.editor.Object(id)
	if !ok {
		return tools.ErrObjectNotFound
	}
	return writeln(s.stdout, obj.String())
}

func (s *session) cmdTool(args []string, _ string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: tool KIND")
	}
	k, err := tools.ParseToolKind(args[0])
	if err != nil {
		return err
	}
	s.editor.SelectTool(k)
	return writef(s.stdout, "tool: %s (%s)\n", k, describeVisibility(k))
}

func (s *session) cmdCanvas(args []string, _ string) error {
	vals, err := expectInts(args, 2, "canvas")
	if err != nil {
		return err
	}
	if vals[0] <= 0 || vals[1] <= 0 {
		return fmt.Errorf("canvas dimensions must be positive")
	}
	s.width = geometry.ClampUint32(vals[0])
	s.height = geometry.ClampUint32(vals[1])
	return writef(s.stdout, "canvas: %dx%d\n", s.width, s.height)
}

func (s *session) cmdBlur(args []string, _ string) error {
	vals, err := expectInts(args, 4, "blur")
	if err != nil {
		return err
	}
	id, err := s.editor.AddBlur(tools.BlurRegion{
		X:      geometry.ClampInt32(vals[0]),
		Y:      geometry.ClampInt32(vals[1]),
		Width:  geometry.ClampUint32(vals[2]),
		Height: geometry.ClampUint32(vals[3]),
	})
	if err != nil {
		return err
	}
	return s.printObject(id)
}

func (s *session) cmdArrow(args []string, _ string) error {
	start, end, err := expectSpan(args, "arrow")
	if err != nil {
		return err
	}
	id, err := s.editor.AddArrow(start, end)
	if err != nil {
		return err
	}
	return s.printObject(id)
}

func (s *session) cmdRect(args []string, _ string) error {
	start, end, err := expectSpan(args, "rect")
	if err != nil {
		return err
	}
	id, err := s.editor.AddRectangle(start, end)
	if err != nil {
		return err
	}
	return s.printObject(id)
}

func (s *session) cmdCrop(args []string, _ string) error {
	start, end, err := expectSpan(args, "crop")
	if err != nil {
		return err
	}
	id, err := s.editor.AddCropInBounds(start, end, s.width, s.height)
	if err != nil {
		return err
	}
	return s.printObject(id)
}

func (s *session) cmdPen(args []string, _ string) error {
	if len(args) == 0 || len(args)%2 != 0 {
		return fmt.Errorf("pen requires X Y pairs")
	}
	vals, err := expectInts(args, len(args), "pen")
	if err != nil {
		return err
	}
	points := make([]geometry.Point, 0, len(vals)/2)
	for i := 0; i < len(vals); i += 2 {
		points = append(points, geometry.Pt(geometry.ClampInt32(vals[i]), geometry.ClampInt32(vals[i+1])))
	}
	var id uint64
	if len(points) == 1 {
		id = s.editor.BeginPenStroke(points[0])
	} else {
		id, err = s.editor.AddPenStroke(points)
		if err != nil {
			return err
		}
	}
	return s.printObject(id)
}

func (s *session) cmdPenTo(args []string, _ string) error {
	vals, err := expectInts(args, 2, "pento")
	if err != nil {
		return err
	}
	id, ok := s.editor.ActivePenStrokeID()
	if !ok {
		return tools.ErrToolNotSelected
	}
	p := geometry.Pt(geometry.ClampInt32(vals[0]), geometry.ClampInt32(vals[1]))
	if err := s.editor.AppendPenPoint(id, p); err != nil {
		return err
	}
	return s.printObject(id)
}

func (s *session) cmdText(args []string, _ string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: text X Y [CONTENT...]")
	}
	vals, err := expectInts(args[:2], 2, "text")
	if err != nil {
		return err
	}
	at := geometry.Pt(geometry.ClampInt32(vals[0]), geometry.ClampInt32(vals[1]))
	var id uint64
	if content := strings.Join(args[2:], " "); content != "" {
		id = s.editor.AddTextBoxWithText(at, content)
	} else {
		id = s.editor.AddTextBox(at)
	}
	return s.printObject(id)
}

func (s *session) cmdType(_ []string, rest string) error {
	if rest == "" {
		return fmt.Errorf("usage: type TEXT...")
	}
	return s.typeText(strings.ReplaceAll(rest, `\n`, "\n"))
}

func (s *session) typeText(text string) error {
	if _, ok := s.editor.ActiveTextID(); !ok {
		return fmt.Errorf("no focused text box")
	}
	for _, r := range text {
		ev := input.Character(r)
		if r == '\n' {
			ev = input.Key(input.EventEnter)
		}
		s.editor.ApplyTextInput(ev)
	}
	content, _ := s.editor.ActiveTextContent()
	return writef(s.stdout, "%q\n", content)
}

func (s *session) cmdKey(args []string, _ string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: key SPEC")
	}
	k, err := input.ParseKey(args[0])
	if err != nil {
		return err
	}
	ev, ok := input.FromKeyEvent(k)
	if !ok {
		return writeln(s.stdout, input.Action(input.ActionNone).String())
	}
	action := s.editor.ApplyTextInput(ev)
	if action.Kind == input.ActionCopyRequested {
		return s.copyFocused()
	}
	return writeln(s.stdout, action.String())
}

func (s *session) copyFocused() error {
	content, ok := s.editor.ActiveTextContent()
	if !ok {
		return fmt.Errorf("no focused text box")
	}
	if err := writeClipboardFn(content); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return writef(s.stdout, "copied %d characters\n", len([]rune(content)))
}

func (s *session) cmdPaste(args []string, _ string) error {
	if len(args) != 0 {
		return fmt.Errorf("usage: paste")
	}
	if _, ok := s.editor.ActiveTextID(); !ok {
		return fmt.Errorf("no focused text box")
	}
	text, err := readClipboardFn()
	if err != nil {
		return fmt.Errorf("read clipboard: %w", err)
	}
	return s.typeText(text)
}

func (s *session) cmdFocus(args []string, _ string) error {
	id, err := expectID(args, "focus")
	if err != nil {
		return err
	}
	if !s.editor.FocusTextBox(id) {
		return fmt.Errorf("#%d is not a text box", id)
	}
	return s.printObject(id)
}

func (s *session) cmdDone(args []string, _ string) error {
	if len(args) != 0 {
		return fmt.Errorf("usage: done")
	}
	if id, ok := s.editor.ActivePenStrokeID(); ok {
		if err := s.editor.FinishPenStroke(id); err != nil {
			return err
		}
		if err := writef(s.stdout, "finished pen #%d\n", id); err != nil {
			return err
		}
	}
	if id, ok := s.editor.ActiveTextID(); ok && s.editor.FinishTextBox() {
		return writef(s.stdout, "finished text #%d\n", id)
	}
	return nil
}

func (s *session) cmdMove(args []string, _ string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: move ID DX DY")
	}
	id, err := expectID(args[:1], "move")
	if err != nil {
		return err
	}
	vals, err := expectInts(args[1:], 2, "move")
	if err != nil {
		return err
	}
	if err := s.editor.MoveObjectBy(id, geometry.ClampInt32(vals[0]), geometry.ClampInt32(vals[1]), s.imageBounds()); err != nil {
		return err
	}
	return s.printObject(id)
}

func (s *session) cmdResize(args []string, _ string) error {
	if len(args) != 5 {
		return fmt.Errorf("usage: resize ID X Y W H")
	}
	id, err := expectID(args[:1], "resize")
	if err != nil {
		return err
	}
	vals, err := expectInts(args[1:], 4, "resize")
	if err != nil {
		return err
	}
	b := geometry.Bounds{
		X:      geometry.ClampInt32(vals[0]),
		Y:      geometry.ClampInt32(vals[1]),
		Width:  geometry.ClampUint32(vals[2]),
		Height: geometry.ClampUint32(vals[3]),
	}
	obj, ok := s.editor.Object(id)
	if !ok {
		return tools.ErrObjectNotFound
	}
	switch obj.(type) {
	case *tools.Rectangle:
		err = s.editor.ResizeRectangle(id, b, s.imageBounds())
	case *tools.Blur:
		err = s.editor.ResizeBlur(id, b, s.imageBounds())
	case *tools.Crop:
		err = s.editor.ResizeCrop(id, b, s.imageBounds())
	default:
		return fmt.Errorf("%s objects cannot be resized", obj.Kind())
	}
	if err != nil {
		return err
	}
	return s.printObject(id)
}

func (s *session) cmdRemove(args []string, _ string) error {
	id, err := expectID(args, "remove")
	if err != nil {
		return err
	}
	obj, ok := s.editor.RemoveObject(id)
	if !ok {
		return tools.ErrObjectNotFound
	}
	return writef(s.stdout, "removed %s\n", obj)
}

func (s *session) cmdUndo(args []string, _ string) error {
	if len(args) != 0 {
		return fmt.Errorf("usage: undo")
	}
	prev, ok := s.history.stepBack(s.editor.Objects())
	if !ok {
		return fmt.Errorf("nothing to undo")
	}
	s.editor.ReplaceObjects(prev.objects)
	return writef(s.stdout, "undid %s\n", prev.command)
}

func (s *session) cmdRedo(args []string, _ string) error {
	if len(args) != 0 {
		return fmt.Errorf("usage: redo")
	}
	next, ok := s.history.stepForward(s.editor.Objects())
	if !ok {
		return fmt.Errorf("nothing to redo")
	}
	s.editor.ReplaceObjects(next.objects)
	return writef(s.stdout, "redid %s\n", next.command)
}

func (s *session) cmdList(args []string, _ string) error {
	if len(args) != 0 {
		return fmt.Errorf("usage: list")
	}
	objs := s.editor.Objects()
	if len(objs) == 0 {
		return writeln(s.stdout, "no objects")
	}
	for _, obj := range objs {
		marker := " "
		if id, ok := s.editor.ActiveTextID(); ok && id == obj.ID() {
			marker = "*"
		} else if id, ok := s.editor.ActivePenStrokeID(); ok && id == obj.ID() {
			marker = "*"
		}
		if err := writef(s.stdout, "%s %s\n", marker, obj); err != nil {
			return err
		}
	}
	return nil
}

func (s *session) cmdShow(args []string, _ string) error {
	id, err := expectID(args, "show")
	if err != nil {
		return err
	}
	return s.printObject(id)
}

func (s *session) cmdHelp(args []string, _ string) error {
	if len(args) == 1 && args[0] == "set" {
		return s.printSetHelp()
	}
	for _, name := range sessionCommandOrder {
		if name == "exit" {
			if err := writef(s.stdout, "  %-24s %s\n", "exit", "end the session"); err != nil {
				return err
			}
			continue
		}
		cmd := sessionCommands[name]
		if err := writef(s.stdout, "  %-24s %s\n", cmd.usage, cmd.summary); err != nil {
			return err
		}
	}
	return nil
}

func expectID(args []string, cmd string) (uint64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%s requires an object id", cmd)
	}
	id, err := strconv.ParseUint(strings.TrimPrefix(args[0], "#"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid object id %q", args[0])
	}
	return id, nil
}

func expectSpan(args []string, shape string) (geometry.Point, geometry.Point, error) {
	vals, err := expectInts(args, 4, shape)
	if err != nil {
		return geometry.Point{}, geometry.Point{}, err
	}
	start := geometry.Pt(geometry.ClampInt32(vals[0]), geometry.ClampInt32(vals[1]))
	end := geometry.Pt(geometry.ClampInt32(vals[2]), geometry.ClampInt32(vals[3]))
	return start, end, nil
}

func expectInts(args []string, n int, shape string) ([]int64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%s requires %d integer arguments", shape, n)
	}
	vals := make([]int64, n)
	for i, raw := range args {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", raw)
		}
		vals[i] = v
	}
	return vals, nil
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, msg string) error {
	_, err := fmt.Fprintln(w, msg)
	return err
}
