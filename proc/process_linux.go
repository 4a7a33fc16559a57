//go:build linux

package proc

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Process is the part of /proc/<pid>/stat the signal backend needs.
type Process struct {
	PID   int
	State ProcessState
}

func NewProcess(pid int) (*Process, error) {
	process := &Process{PID: pid}
	return process, process.Refresh()
}

// Refresh read and parse /proc/pid/stat
func (p *Process) Refresh() error {
	buf, err := os.ReadFile(fmt.Sprintf("/proc/%d/stat", p.PID))
	if err != nil {
		return err
	}

	// comm may itself contain spaces and parentheses
	r := bytes.LastIndexByte(buf, ')')
	if r < 0 || r+2 >= len(buf) {
		return fmt.Errorf("unable to extract State in %q", buf)
	}
	p.State = ProcessState(buf[r+2])
	return nil
}

// Exists sends signal 0 to pid. A process owned by another user still
// exists even though the signal is refused.
func Exists(pid int) bool {
	err := unix.Kill(pid, 0)
	return err == nil || errors.Is(err, unix.EPERM)
}
