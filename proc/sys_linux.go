//go:build linux

package proc

import (
	"time"

	"golang.org/x/sys/unix"
)

const (
	settleTimeout  = 250 * time.Millisecond
	settleInterval = time.Millisecond
)

// Suspend stops the process with SIGSTOP and waits for the kernel to report
// it stopped, so the call returns with the process already halted. A zombie
// accepts the signal but cannot be stopped and yields ESRCH.
func Suspend(pid int) error {
	if err := unix.Kill(pid, unix.SIGSTOP); err != nil {
		return err
	}
	if waitState(pid, ProcessState.Stopped) == StateZombie {
		return unix.ESRCH
	}
	return nil
}

// Resume continues a process stopped by Suspend. Like pid_resume(2) it fails
// with EINVAL when the process is not stopped, and with ESRCH when it does
// not exist.
func Resume(pid int) error {
	process, err := NewProcess(pid)
	if err != nil {
		if !Exists(pid) {
			return unix.ESRCH
		}
		return err
	}
	if !process.State.Stopped() {
		return unix.EINVAL
	}
	if err = unix.Kill(pid, unix.SIGCONT); err != nil {
		return err
	}
	waitState(pid, func(state ProcessState) bool {
		return !state.Stopped()
	})
	return nil
}

// waitState polls /proc/<pid>/stat until done reports true, the process is
// gone, or settleTimeout passes, and returns the last state seen (0 once the
// process is gone). Signal delivery is asynchronous; this only narrows the
// window.
func waitState(pid int, done func(ProcessState) bool) ProcessState {
	deadline := time.Now().Add(settleTimeout)
	for {
		process, err := NewProcess(pid)
		if err != nil {
			return 0
		}
		if done(process.State) || process.State == StateZombie || time.Now().After(deadline) {
			return process.State
		}
		time.Sleep(settleInterval)
	}
}
