package scan

import (
	"fmt"
)

// Width is the byte width at which a numeric search interprets memory.
type Width int

const (
	WidthByte  Width = 1
	WidthWord  Width = 2
	WidthDword Width = 4
	WidthQword Width = 8
)

// ParseWidth maps the CLI type names onto widths.
func ParseWidth(s string) (Width, error) {
	switch s {
	case "byte":
		return WidthByte, nil
	case "word":
		return WidthWord, nil
	case "dword":
		return WidthDword, nil
	case "qword":
		return WidthQword, nil
	default:
		return 0, fmt.Errorf("unknown scan type %q (want byte, word, dword or qword)", s)
	}
}

func (w Width) String() string {
	switch w {
	case WidthByte:
		return "byte"
	case WidthWord:
		return "word"
	case WidthDword:
		return "dword"
	case WidthQword:
		return "qword"
	default:
		return fmt.Sprintf("Width(%d)", int(w))
	}
}

// EncodeValue returns the little-endian encoding of value truncated to the
// given width, suitable for writing back into the target.
func EncodeValue(value uint64, w Width) []byte {
	buf := make([]byte, int(w))
	for i := range buf {
		buf[i] = byte(value >> (8 * i))
	}
	return buf
}

// CmpOp selects how a numeric search compares memory against the target
// value. Comparisons are on unsigned little-endian integers of the declared
// width.
type CmpOp int

const (
	CmpEq CmpOp = iota
	CmpNe
	CmpGt
	CmpLt
)

// Hit is one scanner match: the target address and the length in bytes of
// the matched value.
type Hit struct {
	Addr uintptr
	Len  int
}

// Change is one differ result: the target address, the old byte at that
// address (0 when the region did not exist previously), and the new byte.
type Change struct {
	Addr uintptr
	Old  byte
	New  byte
}
