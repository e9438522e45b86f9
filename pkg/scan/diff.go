package scan

import (
	"github.com/KnightChaser/llce/pkg/snapshot"
)

// DetectChanges compares two snapshots byte by byte and reports every
// address whose content differs, carrying the old and new byte values.
//
// Regions are joined by base address through an index over the old
// snapshot. A new region with no old counterpart (or whose old counterpart
// captured no data) is reported in full as changes from 0 — that is how
// freshly mapped regions surface. Regions present only in the old snapshot
// are ignored: a vanished region is not actionable for writing. When region
// lengths differ only the common prefix is compared; bytes removed by a
// shrunk region are not reported.
//
// Changes come out in new-snapshot region order, ascending offset.
func DetectChanges(oldSnap, newSnap *snapshot.Snapshot) []Change {
	changes := make([]Change, 0, initialResultCapacity)
	index := snapshot.NewIndex(oldSnap)

	for i := range newSnap.Regions {
		newRegion := &newSnap.Regions[i]
		if !newRegion.HasData() {
			continue
		}

		oldRegion, ok := index.Lookup(newRegion.Base)
		if !ok || !oldRegion.HasData() {
			for offset, b := range newRegion.Data {
				changes = append(changes, Change{
					Addr: newRegion.Base + uintptr(offset),
					Old:  0,
					New:  b,
				})
			}
			continue
		}

		length := len(oldRegion.Data)
		if len(newRegion.Data) < length {
			length = len(newRegion.Data)
		}
		for offset := 0; offset < length; offset++ {
			if oldRegion.Data[offset] != newRegion.Data[offset] {
				changes = append(changes, Change{
					Addr: newRegion.Base + uintptr(offset),
					Old:  oldRegion.Data[offset],
					New:  newRegion.Data[offset],
				})
			}
		}
	}
	return changes
}
