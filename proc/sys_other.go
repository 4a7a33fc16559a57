//go:build !darwin && !linux

package proc

func Suspend(pid int) error {
	return ErrUnsupported
}

func Resume(pid int) error {
	return ErrUnsupported
}
