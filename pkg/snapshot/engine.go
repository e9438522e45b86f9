//go:build linux

package snapshot

import (
	"runtime"
	"sync"

	"github.com/KnightChaser/llce/pkg/target"
	"github.com/sirupsen/logrus"
)

// Engine captures snapshots of a target process's writable memory. Workers
// are spawned per capture and joined before Capture returns; the engine
// itself holds no state between captures.
type Engine struct {
	Log *logrus.Entry

	// ChunkSize is the per-read granularity in bytes.
	ChunkSize int

	// MaxWorkers caps the number of capture goroutines. Zero means the
	// online CPU count.
	MaxWorkers int
}

// NewEngine returns an engine with the given tuning; zero values fall back
// to DefaultChunkSize and the CPU count.
func NewEngine(log *logrus.Entry, chunkSize, maxWorkers int) *Engine {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Engine{
		Log:        log,
		ChunkSize:  chunkSize,
		MaxWorkers: maxWorkers,
	}
}

// Capture enumerates the target's VMAs, filters to regions that are both
// readable and writable, and reads them in parallel into owned buffers.
// Per-region read failures are tolerated: a region nothing could be read
// from ends up with a nil buffer, and unreadable chunks inside a region stay
// zeroed. Only failure to enumerate the VMAs fails the capture as a whole.
func (e *Engine) Capture(pid int) (*Snapshot, error) {
	vmas, err := target.ListVMAs(pid)
	if err != nil {
		return nil, err
	}

	filtered := make([]target.VMA, 0, len(vmas))
	for _, vma := range vmas {
		if vma.Readable() && vma.Writable() {
			filtered = append(filtered, vma)
		}
	}

	regions := make([]Region, len(filtered))
	if len(filtered) == 0 {
		return &Snapshot{Regions: regions}, nil
	}

	workers := e.workerCount(len(filtered))
	per := len(filtered) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * per
		hi := lo + per
		if w == workers-1 {
			// the last worker picks up the division remainder
			hi = len(filtered)
		}

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				regions[i] = e.captureRegion(pid, filtered[i])
			}
		}(lo, hi)
	}
	wg.Wait()

	return &Snapshot{Regions: regions}, nil
}

// captureRegion reads one VMA in ChunkSize steps. A short positive read ends
// the loop (end of the readable range); a failed chunk leaves its bytes
// zeroed and moves on, preserving the gap rather than abandoning the region.
func (e *Engine) captureRegion(pid int, vma target.VMA) Region {
	size := vma.Size()
	region := Region{Base: vma.Start, Length: size}
	if size == 0 {
		return region
	}

	buf := make([]byte, size)
	anyRead := false
	for offset := 0; offset < size; offset += e.ChunkSize {
		chunk := buf[offset:min(offset+e.ChunkSize, size)]
		n, err := target.Peek(pid, vma.Start+uintptr(offset), chunk)
		if n > 0 {
			anyRead = true
			if n < len(chunk) {
				break
			}
		} else if err != nil && e.Log != nil {
			e.Log.WithField("base", vma.Start).Debug(err)
		}
	}

	if anyRead {
		region.Data = buf
	}
	return region
}

func (e *Engine) workerCount(regionCount int) int {
	workers := e.MaxWorkers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > regionCount {
		workers = regionCount
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}
