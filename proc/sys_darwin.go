//go:build darwin

package proc

import "golang.org/x/sys/unix"

// Suspend calls pid_suspend(2). The kernel keeps a suspend count per task, so
// every successful Suspend needs a matching Resume.
func Suspend(pid int) error {
	return pidSyscall(unix.SYS_PID_SUSPEND, pid)
}

// Resume calls pid_resume(2). It fails with EINVAL when the task is not
// suspended.
func Resume(pid int) error {
	return pidSyscall(unix.SYS_PID_RESUME, pid)
}

func pidSyscall(trap uintptr, pid int) error {
	_, _, errno := unix.Syscall(trap, uintptr(pid), 0, 0)
	if errno != 0 {
		return errno
	}
	return nil
}
