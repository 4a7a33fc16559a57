package main

import (
	"os"
	"path/filepath"
	"strings"

	"pidsuspend"
	"pidsuspend/proc"
)

// grammars selects the command line shape by executable name, so links to
// one binary serve every variant.
var grammars = map[string]pidsuspend.Grammar{
	"pidctl":  pidsuspend.KeywordGrammar,
	"pidstop": pidsuspend.SingleGrammar,
}

func grammarFor(prog string) pidsuspend.Grammar {
	name := strings.TrimSuffix(filepath.Base(prog), ".exe")
	if g, ok := grammars[name]; ok {
		return g
	}
	return pidsuspend.FlagGrammar
}

func main() {
	plainUnlessTerminal(os.Stderr)
	cli := &CLI{
		Grammar:    grammarFor(os.Args[0]),
		Controller: proc.System{},
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
	}
	os.Exit(cli.Run(os.Args[0], os.Args[1:]))
}
