package main

import (
	"flag"
	"strings"
)

type commandList []string

func (c *commandList) String() string {
	return strings.Join(*c, ";")
}

func (c *commandList) Set(value string) error {
	*c = append(*c, value)
	return nil
}

type interactiveCLI struct {
	*interactiveCmd

	fs *flag.FlagSet

	execs commandList
}

func parseInteractiveCmd(args []string, r *root) (*interactiveCLI, error) {
	base := newInteractiveCmd(r)
	fs := flag.NewFlagSet("interactive", flag.ExitOnError)
	cli := &interactiveCLI{interactiveCmd: base, fs: fs}
	fs.Usage = usageFunc(cli)
	fs.Var(&cli.execs, "e", "execute interactive command in immediate mode (may be specified multiple times)")
	fs.UintVar(&base.canvas.width, "width", 0, "canvas width used for clamping")
	fs.UintVar(&base.canvas.height, "height", 0, "canvas height used for clamping")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cli}
	}
	if err := base.start(); err != nil {
		return nil, err
	}
	return cli, nil
}

func (c *interactiveCLI) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *interactiveCLI) Program() string {
	return c.r.Program()
}

func (c *interactiveCLI) Run() error {
	if len(c.execs) > 0 {
		for _, cmd := range c.execs {
			done, err := c.session.executeLine(cmd)
			if err != nil {
				return err
			}
			if done {
				break
			}
		}
		return nil
	}

	return c.interactiveCmd.Run()
}
