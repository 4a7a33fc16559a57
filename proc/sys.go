// Package proc wraps the OS primitives that halt and re-enable scheduling of
// a process without terminating it.
package proc

import (
	"errors"
	"fmt"
	"runtime"
)

// Names of the primitives as reported in diagnostics.
const (
	SuspendOp = "pid_suspend"
	ResumeOp  = "pid_resume"
)

// ErrUnsupported is returned by Suspend and Resume on platforms without a
// process suspension primitive.
var ErrUnsupported = fmt.Errorf("process suspension is not available on %s: %w", runtime.GOOS, errors.ErrUnsupported)

// System drives the running kernel's primitives.
type System struct{}

func (System) Suspend(pid int) error {
	return Suspend(pid)
}

func (System) Resume(pid int) error {
	return Resume(pid)
}
