package scan

import (
	"unsafe"
)

// HostIsLittleEndian reports whether the host stores integers little-endian.
// Numeric search interprets target memory in host byte order, so the tool
// refuses to run on big-endian hosts.
func HostIsLittleEndian() bool {
	var x uint16 = 1
	return *(*byte)(unsafe.Pointer(&x)) == 1
}
