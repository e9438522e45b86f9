package target

import (
	"errors"

	"golang.org/x/sys/unix"
)

var (
	// ErrPermissionDenied means the kernel refused the cross-process
	// operation (ptrace scope, missing CAP_SYS_PTRACE, or YAMA policy).
	ErrPermissionDenied = errors.New("target: permission denied")

	// ErrNoSuchProcess means the target process is gone.
	ErrNoSuchProcess = errors.New("target: no such process")

	// ErrInvalidAddress means the address is not currently mapped in the
	// target, or the region shrank under us.
	ErrInvalidAddress = errors.New("target: address not mapped")

	// ErrPartialIO means the transfer completed but moved fewer bytes than
	// requested.
	ErrPartialIO = errors.New("target: partial transfer")

	// ErrIO covers any other I/O failure talking to the target.
	ErrIO = errors.New("target: i/o error")
)

// classifyErrno maps a kernel errno from process_vm_readv/process_vm_writev
// onto the package's sentinel errors.
func classifyErrno(err error) error {
	var errno unix.Errno
	if !errors.As(err, &errno) {
		return ErrIO
	}
	switch errno {
	case unix.EPERM:
		return ErrPermissionDenied
	case unix.ESRCH:
		return ErrNoSuchProcess
	case unix.EFAULT:
		return ErrInvalidAddress
	default:
		return ErrIO
	}
}
