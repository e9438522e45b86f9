//go:build linux

package target

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

// Alive reports whether the PID refers to a live process. Signalling with
// signal 0 succeeding, or failing with EPERM, both mean the process exists.
func Alive(pid int) bool {
	err := unix.Kill(pid, 0)
	return err == nil || errors.Is(err, unix.EPERM)
}

// Name returns the process name from /proc/<pid>/comm, truncated at the
// first newline. Callers must not rely on the result when an error is
// returned.
func Name(pid int) (string, error) {
	data, err := os.ReadFile(fmt.Sprintf("/proc/%d/comm", pid))
	if err != nil {
		return "", err
	}
	name, _, _ := strings.Cut(string(data), "\n")
	return name, nil
}
