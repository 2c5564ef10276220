package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

type runCmd struct {
	*root
	fs *flag.FlagSet

	file      string
	keepGoing bool
	canvas    canvasFlags
	session   *session
}

func parseRunCmd(args []string, r *root) (*runCmd, error) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	c := &runCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.file, "file", "", "script to execute, or - for stdin")
	fs.BoolVar(&c.keepGoing, "keep-going", false, "continue after a failing command")
	fs.UintVar(&c.canvas.width, "width", 0, "canvas width used for clamping")
	fs.UintVar(&c.canvas.height, "height", 0, "canvas height used for clamping")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.file == "" || fs.NArg() != 0 {
		return nil, &UsageError{of: c}
	}
	w, h, err := c.canvas.resolve(r.config)
	if err != nil {
		return nil, err
	}
	c.session = newSession(r.config, w, h, r.verbose)
	return c, nil
}

func (c *runCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *runCmd) Run() error {
	var in io.Reader = c.session.stdin
	if c.file != "-" {
		f, err := os.Open(c.file)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				log.Printf("error closing %q: %v", f.Name(), err)
			}
		}()
		in = f
	}
	return c.execute(in)
}

// execute runs every line of in. The first failure is returned; with
// -keep-going failures are logged and the error count is reported at the
// end.
func (c *runCmd) execute(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	failures := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		done, err := c.session.executeLine(scanner.Text())
		if err != nil {
			if !c.keepGoing {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			failures++
			log.Printf("session %s: line %d: %v", c.session.id, lineNo, err)
		}
		if done {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	if failures > 0 {
		return fmt.Errorf("%d command(s) failed", failures)
	}
	return nil
}
