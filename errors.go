package pidsuspend

import (
	"fmt"
	"strings"
)

// UsageError reports a wrong argument count. Its message is the usage line.
type UsageError struct {
	Usage string
}

func (e *UsageError) Error() string {
	return e.Usage
}

// InvalidPIDError reports an identifier that parses to zero or less.
type InvalidPIDError struct {
	Token string
}

func (e *InvalidPIDError) Error() string {
	return "Invalid PID: " + e.Token
}

// UnknownActionError reports an action token outside the grammar.
type UnknownActionError struct {
	Token string
	Valid []string
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("Unknown action: %s (use %s)", e.Token, quoteList(e.Valid))
}

// OperationError is a failure reported by a suspend or resume primitive.
type OperationError struct {
	Op  string
	PID int
	Err error
}

func (e *OperationError) Error() string {
	return e.Op + " failed: " + e.Err.Error()
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// quoteList renders 'a', 'a' or 'b', and 'a', 'b', or 'c'.
func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = "'" + item + "'"
	}
	switch len(quoted) {
	case 0:
		return ""
	case 1:
		return quoted[0]
	case 2:
		return quoted[0] + " or " + quoted[1]
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
