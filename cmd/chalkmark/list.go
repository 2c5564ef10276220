package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/example/chalkmark/internal/config"
	"github.com/example/chalkmark/internal/tools"
)

type presetsCmd struct {
	*root
	fs *flag.FlagSet
}

func parsePresetsCmd(args []string, r *root) (*presetsCmd, error) {
	fs := flag.NewFlagSet("presets", flag.ExitOnError)
	cmd := &presetsCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *presetsCmd) Run() error {
	current := c.config.Tools.Crop.Preset
	fmt.Fprintln(os.Stdout, "crop presets (* marks the configured preset):")
	for _, p := range tools.AllCropPresets {
		marker := " "
		if p == current {
			marker = "*"
		}
		ratio := "any"
		if rx, ry, ok := p.Ratio(); ok {
			ratio = fmt.Sprintf("%d:%d", rx, ry)
		} else if p == tools.CropOriginal {
			ratio = "image"
		}
		fmt.Fprintf(os.Stdout, "%s %-10s %s\n", marker, p.Label(), ratio)
	}
	return nil
}

func (c *presetsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

type colorsCmd struct {
	*root
	fs *flag.FlagSet
}

func parseColorsCmd(args []string, r *root) (*colorsCmd, error) {
	fs := flag.NewFlagSet("colors", flag.ExitOnError)
	cmd := &colorsCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *colorsCmd) Run() error {
	palette := config.PaletteColors()
	if len(palette) == 0 {
		fmt.Fprintln(os.Stdout, "no colors available")
		return nil
	}
	fmt.Fprintln(os.Stdout, "available palette colors (* marks the configured pen color):")
	current := c.config.Tools.Pen.Color
	for idx, entry := range palette {
		marker := " "
		if entry.Color == current {
			marker = "*"
		}
		block := fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m", entry.Color.R, entry.Color.G, entry.Color.B)
		fmt.Fprintf(os.Stdout, "%s %2d: %-12s %s %s\n", marker, idx, entry.Name, entry.Color, block)
	}
	return nil
}

func (c *colorsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}
