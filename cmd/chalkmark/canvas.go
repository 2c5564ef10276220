package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/example/chalkmark/internal/config"
)

const canvasEnv = "CHALKMARK_CANVAS"

// canvasFlags are the -width/-height flags shared by session commands.
type canvasFlags struct {
	width  uint
	height uint
}

// resolve applies flag > environment > config precedence per dimension.
func (c canvasFlags) resolve(cfg *config.Config) (uint32, uint32, error) {
	w, h := config.DefaultCanvasWidth, config.DefaultCanvasHeight
	if cfg != nil {
		w, h = cfg.CanvasWidth, cfg.CanvasHeight
	}
	if env := os.Getenv(canvasEnv); env != "" {
		ew, eh, err := parseCanvasSize(env)
		if err != nil {
			return 0, 0, fmt.Errorf("%s: %w", canvasEnv, err)
		}
		w, h = ew, eh
	}
	if c.width > 0 {
		w = uint32(min(c.width, math.MaxUint32))
	}
	if c.height > 0 {
		h = uint32(min(c.height, math.MaxUint32))
	}
	return w, h, nil
}

// parseCanvasSize reads "WxH".
func parseCanvasSize(s string) (uint32, uint32, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("canvas size %q must look like WIDTHxHEIGHT", s)
	}
	w, err := strconv.ParseUint(ws, 10, 32)
	if err != nil || w == 0 {
		return 0, 0, fmt.Errorf("invalid canvas width %q", ws)
	}
	h, err := strconv.ParseUint(hs, 10, 32)
	if err != nil || h == 0 {
		return 0, 0, fmt.Errorf("invalid canvas height %q", hs)
	}
	return uint32(w), uint32(h), nil
}
