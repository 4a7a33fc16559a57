package proc

import "fmt"

// ProcessState is the single-character state field of /proc/<pid>/stat.
//
//	R  Running
//	S  Sleeping in an interruptible wait
//	D  Waiting in uninterruptible disk sleep
//	Z  Zombie
//	T  Stopped (on a signal)
//	t  Tracing stop
//	X  Dead
type ProcessState byte

const (
	StateRunning  ProcessState = 'R'
	StateSleeping ProcessState = 'S'
	StateDisk     ProcessState = 'D'
	StateZombie   ProcessState = 'Z'
	StateStopped  ProcessState = 'T'
	StateTraced   ProcessState = 't'
	StateDead     ProcessState = 'X'
)

func (state ProcessState) String() string {
	return fmt.Sprintf("%c", state)
}

// Stopped reports whether the process was stopped by a signal and can be
// continued with SIGCONT. A tracing stop does not count.
func (state ProcessState) Stopped() bool {
	return state == StateStopped
}
