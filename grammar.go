package pidsuspend

import (
	"fmt"
	"strings"
)

// Token binds a literal command-line word to an action.
type Token struct {
	Literal string
	Action  Action
}

// Grammar describes one accepted command line shape. A grammar with an
// Implicit action takes the PID alone; otherwise it takes an action token
// followed by the PID.
type Grammar struct {
	Tokens   []Token
	Implicit Action
}

var (
	// FlagGrammar accepts `prog <--suspend|--resume|--check> <pid>`.
	FlagGrammar = Grammar{Tokens: []Token{
		{"--suspend", ActionSuspend},
		{"--resume", ActionResume},
		{"--check", ActionCheck},
	}}

	// KeywordGrammar accepts `prog <suspend|resume> <pid>`.
	KeywordGrammar = Grammar{Tokens: []Token{
		{"suspend", ActionSuspend},
		{"resume", ActionResume},
	}}

	// SingleGrammar accepts `prog <pid>` and always suspends.
	SingleGrammar = Grammar{Implicit: ActionSuspend}
)

// Request is one parsed invocation.
type Request struct {
	Action Action
	PID    int
}

// Argc is the number of arguments the grammar expects after the program name.
func (g Grammar) Argc() int {
	if g.Implicit != 0 {
		return 1
	}
	return 2
}

// Literals lists the action tokens in the order they are documented.
func (g Grammar) Literals() []string {
	literals := make([]string, len(g.Tokens))
	for i, token := range g.Tokens {
		literals[i] = token.Literal
	}
	return literals
}

// Usage is the line printed when the argument count is wrong.
func (g Grammar) Usage(prog string) string {
	if g.Implicit != 0 {
		return fmt.Sprintf("Usage: %s <pid>", prog)
	}
	return fmt.Sprintf("Usage: %s <%s> <pid>", prog, strings.Join(g.Literals(), "|"))
}

// Parse validates args, which exclude the program name. The argument count is
// checked first, then the PID, then the action token, and the first failure
// is returned.
func (g Grammar) Parse(prog string, args []string) (Request, error) {
	if len(args) != g.Argc() {
		return Request{}, &UsageError{Usage: g.Usage(prog)}
	}

	pid, err := ValidatePID(args[len(args)-1])
	if err != nil {
		return Request{}, err
	}

	if g.Implicit != 0 {
		return Request{Action: g.Implicit, PID: pid}, nil
	}

	for _, token := range g.Tokens {
		if token.Literal == args[0] {
			return Request{Action: token.Action, PID: pid}, nil
		}
	}
	return Request{}, &UnknownActionError{Token: args[0], Valid: g.Literals()}
}
