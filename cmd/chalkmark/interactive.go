package main

import (
	"bufio"
	"fmt"
)

type interactiveCmd struct {
	r       *root
	canvas  canvasFlags
	session *session
}

func newInteractiveCmd(r *root) *interactiveCmd {
	return &interactiveCmd{r: r}
}

// start builds the session once flags are parsed.
func (i *interactiveCmd) start() error {
	w, h, err := i.canvas.resolve(i.r.config)
	if err != nil {
		return err
	}
	i.session = newSession(i.r.config, w, h, i.r.verbose)
	return nil
}

func (i *interactiveCmd) Run() error {
	s := i.session
	fmt.Fprintf(s.stdout, "session %s on a %dx%d canvas\n", s.id, s.width, s.height)
	fmt.Fprintln(s.stdout, "Enter commands (type 'exit' to quit)")
	scanner := bufio.NewScanner(s.stdin)
	for {
		fmt.Fprint(s.stdout, "> ")
		if !scanner.Scan() {
			break
		}
		done, err := s.executeLine(scanner.Text())
		if err != nil {
			fmt.Fprintln(s.stderr, err)
		}
		if done {
			break
		}
	}
	return scanner.Err()
}
