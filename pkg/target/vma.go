//go:build linux

package target

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// VMA is one mapped virtual-memory area of the target process, as reported
// by one line of /proc/<pid>/maps. Start is inclusive, End exclusive. Perms
// is the four-character permission string (e.g. "rw-p"). Path is the backing
// path, a pseudo-name like "[heap]", or empty for anonymous mappings.
type VMA struct {
	Start uintptr
	End   uintptr
	Perms string
	Path  string
}

// Size returns the length of the mapping in bytes.
func (v VMA) Size() int {
	return int(v.End - v.Start)
}

// Readable reports whether the mapping is readable.
func (v VMA) Readable() bool {
	return strings.Contains(v.Perms, "r")
}

// Writable reports whether the mapping is writable.
func (v VMA) Writable() bool {
	return strings.Contains(v.Perms, "w")
}

// ListVMAs parses /proc/<pid>/maps into VMA descriptors. Lines that cannot
// be parsed to at least the address range and permissions are skipped.
// Failing to open the maps file (the PID vanished, or we lack permission)
// returns an error.
func ListVMAs(pid int) ([]VMA, error) {
	f, err := os.Open(fmt.Sprintf("/proc/%d/maps", pid))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	vmas := []VMA{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		vma, ok := parseMapsLine(scanner.Text())
		if !ok {
			continue
		}
		vmas = append(vmas, vma)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return vmas, nil
}

// parseMapsLine parses one maps line of the form
//
//	start-end perms offset dev inode [path]
//
// The path is optional and may contain spaces; the fields after the inode
// are joined with single spaces, so runs of whitespace inside a path collapse
// to one space.
func parseMapsLine(line string) (VMA, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return VMA{}, false
	}

	startStr, endStr, ok := strings.Cut(fields[0], "-")
	if !ok {
		return VMA{}, false
	}
	start, err := strconv.ParseUint(startStr, 16, 64)
	if err != nil {
		return VMA{}, false
	}
	end, err := strconv.ParseUint(endStr, 16, 64)
	if err != nil {
		return VMA{}, false
	}

	path := ""
	if len(fields) >= 6 {
		path = strings.Join(fields[5:], " ")
	}

	return VMA{
		Start: uintptr(start),
		End:   uintptr(end),
		Perms: fields[1],
		Path:  path,
	}, true
}
