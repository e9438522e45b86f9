package snapshot

// Index maps region base addresses to their regions inside one snapshot,
// giving the differ O(1) lookup per region. The index borrows the
// snapshot's regions and must not outlive it; it never owns region buffers.
type Index struct {
	byBase map[uintptr]*Region
}

// NewIndex builds an index over the snapshot's regions. Duplicate bases
// cannot occur in a well-formed snapshot; if one did, the later region wins.
func NewIndex(s *Snapshot) *Index {
	byBase := make(map[uintptr]*Region, len(s.Regions))
	for i := range s.Regions {
		byBase[s.Regions[i].Base] = &s.Regions[i]
	}
	return &Index{byBase: byBase}
}

// Lookup returns the region starting at base, if any.
func (ix *Index) Lookup(base uintptr) (*Region, bool) {
	region, ok := ix.byBase[base]
	return region, ok
}

// Len returns the number of indexed regions.
func (ix *Index) Len() int {
	return len(ix.byBase)
}
