package scan

import (
	"bytes"
	"fmt"

	"github.com/KnightChaser/llce/pkg/snapshot"
)

// initialResultCapacity keeps small result sets from reallocating; append
// doubling takes over beyond it.
const initialResultCapacity = 64

// SearchExact walks every region of the snapshot and reports each offset
// where the pattern bytes match exactly. The stride is one byte, so
// overlapping matches are all reported; alignment is not required. Regions
// without data are skipped.
func SearchExact(s *snapshot.Snapshot, pattern []byte) []Hit {
	hits := make([]Hit, 0, initialResultCapacity)
	if len(pattern) == 0 {
		return hits
	}

	for i := range s.Regions {
		region := &s.Regions[i]
		if !region.HasData() {
			continue
		}
		data := region.Data
		for offset := 0; offset+len(pattern) <= len(data); offset++ {
			if bytes.Equal(data[offset:offset+len(pattern)], pattern) {
				hits = append(hits, Hit{Addr: region.Base + uintptr(offset), Len: len(pattern)})
			}
		}
	}
	return hits
}

// SearchCompare walks every region interpreting each width-sized slot as an
// unsigned little-endian integer and compares it to value under op. The
// stride is the width: numeric values are treated as naturally packed and
// non-overlapping. A slot narrower than the width at the end of a region
// produces no hit.
func SearchCompare(s *snapshot.Snapshot, w Width, op CmpOp, value uint64) ([]Hit, error) {
	switch w {
	case WidthByte, WidthWord, WidthDword, WidthQword:
	default:
		return nil, fmt.Errorf("invalid scan width %d", int(w))
	}

	// the comparison only sees the low bytes of the target value
	value = truncate(value, w)

	hits := make([]Hit, 0, initialResultCapacity)
	for i := range s.Regions {
		region := &s.Regions[i]
		if !region.HasData() {
			continue
		}
		data := region.Data
		for offset := 0; offset+int(w) <= len(data); offset += int(w) {
			slot := loadLE(data[offset:], w)

			hit := false
			switch op {
			case CmpEq:
				hit = slot == value
			case CmpNe:
				hit = slot != value
			case CmpGt:
				hit = slot > value
			case CmpLt:
				hit = slot < value
			default:
				return nil, fmt.Errorf("invalid comparison operator %d", int(op))
			}

			if hit {
				hits = append(hits, Hit{Addr: region.Base + uintptr(offset), Len: int(w)})
			}
		}
	}
	return hits, nil
}

// loadLE reads a little-endian unsigned integer of the given width. The
// caller guarantees len(b) >= int(w).
func loadLE(b []byte, w Width) uint64 {
	var v uint64
	for i := 0; i < int(w); i++ {
		v |= uint64(b[i]) << (8 * i)
	}
	return v
}

func truncate(v uint64, w Width) uint64 {
	if w == WidthQword {
		return v
	}
	return v & (1<<(8*int(w)) - 1)
}
