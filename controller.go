package pidsuspend

import "pidsuspend/proc"

// Controller suspends and resumes processes. proc.System is the production
// implementation.
type Controller interface {
	Suspend(pid int) error
	Resume(pid int) error
}

// Suspend halts pid and wraps any failure in an OperationError.
func Suspend(ctl Controller, pid int) error {
	if err := ctl.Suspend(pid); err != nil {
		return &OperationError{Op: proc.SuspendOp, PID: pid, Err: err}
	}
	return nil
}

// Resume re-enables pid and wraps any failure in an OperationError.
func Resume(ctl Controller, pid int) error {
	if err := ctl.Resume(pid); err != nil {
		return &OperationError{Op: proc.ResumeOp, PID: pid, Err: err}
	}
	return nil
}

// Check infers whether pid is suspended. There is no primitive to query the
// state, so it probes with a resume: success means the process was suspended
// and it is suspended again before returning. Any resume failure, including
// a missing process or a permission error, is reported as Running.
//
// The target runs briefly between the probe and the restore. A non-nil error
// with Suspended means the restore failed and the process was left running.
func Check(ctl Controller, pid int) (State, error) {
	if err := ctl.Resume(pid); err != nil {
		return Running, nil
	}
	return Suspended, Suspend(ctl, pid)
}
