//go:build linux

package target

import (
	"golang.org/x/sys/unix"
)

// Peek reads up to len(buf) bytes from the target's memory at addr using a
// single process_vm_readv call. It returns the number of bytes transferred.
// A positive count below len(buf) is returned together with ErrPartialIO so
// callers can keep the prefix. Reads are never atomic with respect to the
// target's own memory operations; the target is not stopped.
func Peek(pid int, addr uintptr, buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}

	local := make([]unix.Iovec, 1)
	local[0].Base = &buf[0]
	local[0].SetLen(len(buf))
	remote := []unix.RemoteIovec{{Base: addr, Len: len(buf)}}

	n, err := unix.ProcessVMReadv(pid, local, remote, 0)
	if err != nil {
		return 0, classifyErrno(err)
	}
	if n < len(buf) {
		return n, ErrPartialIO
	}
	return n, nil
}

// Poke writes len(buf) bytes from buf into the target's memory at addr using
// a single process_vm_writev call. Success means the full length was
// transferred; a short write is reported as ErrIO.
func Poke(pid int, addr uintptr, buf []byte) error {
	if len(buf) == 0 {
		return nil
	}

	local := make([]unix.Iovec, 1)
	local[0].Base = &buf[0]
	local[0].SetLen(len(buf))
	remote := []unix.RemoteIovec{{Base: addr, Len: len(buf)}}

	n, err := unix.ProcessVMWritev(pid, local, remote, 0)
	if err != nil {
		return classifyErrno(err)
	}
	if n != len(buf) {
		return ErrIO
	}
	return nil
}
