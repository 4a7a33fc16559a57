package main

import (
	"fmt"
	"io"
	"os"

	"pidsuspend"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	colorError   = color.New(color.FgRed)
	colorWarning = color.New(color.FgYellow)
)

// plainUnlessTerminal turns off diagnostic colouring when f is not a
// terminal. color.NoColor only follows stdout.
func plainUnlessTerminal(f *os.File) {
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return
	}
	colorError.DisableColor()
	colorWarning.DisableColor()
}

type CLI struct {
	Grammar    pidsuspend.Grammar
	Controller pidsuspend.Controller
	Stdout     io.Writer
	Stderr     io.Writer
}

// Run performs one invocation and returns the process exit status.
func (cli *CLI) Run(prog string, args []string) int {
	req, err := cli.Grammar.Parse(prog, args)
	if err != nil {
		return cli.fail(err)
	}

	switch req.Action {
	case pidsuspend.ActionSuspend:
		if err = pidsuspend.Suspend(cli.Controller, req.PID); err != nil {
			return cli.fail(err)
		}
		_, _ = fmt.Fprintf(cli.Stdout, "Successfully suspended process %d\n", req.PID)
	case pidsuspend.ActionResume:
		if err = pidsuspend.Resume(cli.Controller, req.PID); err != nil {
			return cli.fail(err)
		}
		_, _ = fmt.Fprintf(cli.Stdout, "Successfully resumed process %d\n", req.PID)
	case pidsuspend.ActionCheck:
		state, err := pidsuspend.Check(cli.Controller, req.PID)
		if err != nil {
			_, _ = colorWarning.Fprintf(cli.Stderr, "warning: process %d left running: %v\n", req.PID, err)
		}
		_, _ = fmt.Fprintln(cli.Stdout, state)
	default:
		return cli.fail(fmt.Errorf("unhandled action %s", req.Action))
	}
	return 0
}

func (cli *CLI) fail(err error) int {
	_, _ = colorError.Fprintln(cli.Stderr, err)
	return 1
}
