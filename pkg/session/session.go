//go:build linux

package session

import (
	"errors"
	"os"

	"github.com/KnightChaser/llce/pkg/config"
	"github.com/KnightChaser/llce/pkg/scan"
	"github.com/KnightChaser/llce/pkg/snapshot"
	"github.com/KnightChaser/llce/pkg/target"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
)

// Scope selects which snapshot slot a search runs against.
type Scope int

const (
	ScopeInitial Scope = iota
	ScopePrevious
	ScopeCurrent
)

// Session holds the attachment to one target process and the three-slot
// snapshot history: the snapshot taken at attach time, the one that was
// current before the latest capture, and the latest capture itself.
//
// Slot ownership: each snapshot belongs to exactly one slot, except that
// previous aliases initial between the first and second rescan. Every slot
// shift and clear goes through this struct so a snapshot is released exactly
// once.
type Session struct {
	Log    *logrus.Entry
	Config *config.AppConfig

	engine *snapshot.Engine

	mutex    deadlock.Mutex
	pid      int
	procName string
	attached bool
	initial  *snapshot.Snapshot
	previous *snapshot.Snapshot
	current  *snapshot.Snapshot
}

// NewSession creates a detached session
func NewSession(log *logrus.Entry, appConfig *config.AppConfig) *Session {
	scanConfig := appConfig.UserConfig.Scan
	return &Session{
		Log:    log,
		Config: appConfig,
		engine: snapshot.NewEngine(log, scanConfig.ChunkSize, scanConfig.Workers),
	}
}

// Attach detaches from any current target, then attaches to pid and captures
// the initial snapshot. On capture failure the session reverts to detached.
// Returns the number of captured regions.
func (s *Session) Attach(pid int) (int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.detachLocked()

	if !target.Alive(pid) {
		return 0, target.ErrNoSuchProcess
	}

	name, err := target.Name(pid)
	if err != nil {
		name = "unknown"
	}

	snap, err := s.engine.Capture(pid)
	if err != nil {
		s.detachLocked()
		if errors.Is(err, os.ErrPermission) {
			return 0, target.ErrPermissionDenied
		}
		return 0, WrapError(err)
	}

	s.pid = pid
	s.procName = name
	s.attached = true
	s.initial = snap
	return snap.Count(), nil
}

// Rescan captures a new snapshot and shifts the history: the first rescan
// makes previous alias initial; later rescans release the old previous
// (unless it is that alias) and move current into its place. Returns the new
// snapshot's region count.
func (s *Session) Rescan() (int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if !s.attached {
		return 0, NewNotAttachedError()
	}

	snap, err := s.engine.Capture(s.pid)
	if err != nil {
		return 0, WrapError(err)
	}

	if s.current != nil {
		if s.previous != nil && s.previous != s.initial {
			s.previous.Release()
		}
		s.previous = s.current
	} else {
		s.previous = s.initial
	}
	s.current = snap
	return snap.Count(), nil
}

// DetectChanges diffs the previous snapshot against the current one.
func (s *Session) DetectChanges() ([]scan.Change, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.previous == nil || s.current == nil {
		return nil, NewNoScanDataError()
	}
	return scan.DetectChanges(s.previous, s.current), nil
}

// Search runs a typed numeric search against the chosen snapshot slot.
func (s *Session) Search(scope Scope, w scan.Width, op scan.CmpOp, value uint64) ([]scan.Hit, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	snap, err := s.snapshotForLocked(scope)
	if err != nil {
		return nil, err
	}
	return scan.SearchCompare(snap, w, op, value)
}

// SearchNewest searches the most recent snapshot available: the current one,
// or the initial one when no rescan has happened yet.
func (s *Session) SearchNewest(w scan.Width, op scan.CmpOp, value uint64) ([]scan.Hit, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	snap := s.current
	if snap == nil {
		snap = s.initial
	}
	if snap == nil {
		return nil, NewNoScanDataError()
	}
	return scan.SearchCompare(snap, w, op, value)
}

// Poke writes value at the given width into the target's memory at addr.
func (s *Session) Poke(addr uintptr, w scan.Width, value uint64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if !s.attached {
		return NewNotAttachedError()
	}
	return target.Poke(s.pid, addr, scan.EncodeValue(value, w))
}

// Detach releases all snapshot slots (alias-aware, so nothing is released
// twice) and clears the attachment.
func (s *Session) Detach() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.detachLocked()
}

func (s *Session) detachLocked() {
	// previous may alias initial after the first rescan; skip it so the
	// shared snapshot is released once
	if s.previous != nil && s.previous != s.initial {
		s.previous.Release()
	}
	if s.current != nil {
		s.current.Release()
	}
	if s.initial != nil {
		s.initial.Release()
	}
	s.initial, s.previous, s.current = nil, nil, nil
	s.pid = 0
	s.procName = ""
	s.attached = false
}

func (s *Session) snapshotForLocked(scope Scope) (*snapshot.Snapshot, error) {
	var snap *snapshot.Snapshot
	switch scope {
	case ScopeInitial:
		snap = s.initial
	case ScopePrevious:
		snap = s.previous
	case ScopeCurrent:
		snap = s.current
	}
	if snap == nil {
		return nil, NewNoScanDataError()
	}
	return snap, nil
}

// Attached reports whether the session currently has a target.
func (s *Session) Attached() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.attached
}

// PID returns the attached process's PID, or 0.
func (s *Session) PID() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.pid
}

// ProcessName returns the attached process's name, or "".
func (s *Session) ProcessName() string {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.procName
}
