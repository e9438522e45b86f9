//go:build linux

package session

import (
	"os"
	"runtime"
	"testing"
	"unsafe"

	"github.com/KnightChaser/llce/pkg/scan"
	"github.com/KnightChaser/llce/pkg/target"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// the session tests attach to the test process itself: reading and writing
// our own address space needs no ptrace privileges

func TestAttachSelf(t *testing.T) {
	s := NewDummySession()
	defer s.Detach()

	count, err := s.Attach(os.Getpid())
	require.NoError(t, err)
	assert.Greater(t, count, 0)

	assert.True(t, s.Attached())
	assert.EqualValues(t, os.Getpid(), s.PID())
	assert.NotEmpty(t, s.ProcessName())

	assert.NotNil(t, s.initial)
	assert.Nil(t, s.previous)
	assert.Nil(t, s.current)
}

func TestAttachMissingProcess(t *testing.T) {
	s := NewDummySession()

	_, err := s.Attach(1 << 30)
	assert.ErrorIs(t, err, target.ErrNoSuchProcess)
	assert.False(t, s.Attached())
}

func TestRescanAliasesInitial(t *testing.T) {
	s := NewDummySession()
	defer s.Detach()

	_, err := s.Attach(os.Getpid())
	require.NoError(t, err)
	initial := s.initial

	// the first rescan makes previous alias initial
	_, err = s.Rescan()
	require.NoError(t, err)
	assert.Same(t, initial, s.previous)
	assert.NotSame(t, initial, s.current)
	require.NotNil(t, s.current)

	// the second rescan moves current into previous, the alias ends, and
	// the initial snapshot stays alive untouched
	firstCurrent := s.current
	_, err = s.Rescan()
	require.NoError(t, err)
	assert.Same(t, firstCurrent, s.previous)
	assert.NotSame(t, initial, s.previous)
	assert.Same(t, initial, s.initial)
	assert.NotZero(t, initial.Count())
}

func TestRescanRequiresAttach(t *testing.T) {
	s := NewDummySession()

	_, err := s.Rescan()
	assert.True(t, HasErrorCode(err, NotAttached))
}

func TestDetectChangesRequiresTwoScans(t *testing.T) {
	s := NewDummySession()
	defer s.Detach()

	_, err := s.Attach(os.Getpid())
	require.NoError(t, err)

	_, err = s.DetectChanges()
	assert.True(t, HasErrorCode(err, NoScanData))

	_, err = s.Rescan()
	require.NoError(t, err)

	_, err = s.DetectChanges()
	assert.NoError(t, err)
}

func TestDetectChangesSeesMutation(t *testing.T) {
	buf := make([]byte, 8)
	buf[0] = 10

	s := NewDummySession()
	defer s.Detach()

	_, err := s.Attach(os.Getpid())
	require.NoError(t, err)

	buf[0] = 11

	_, err = s.Rescan()
	require.NoError(t, err)

	changes, err := s.DetectChanges()
	require.NoError(t, err)

	addr := uintptr(unsafe.Pointer(&buf[0]))
	assert.Contains(t, changes, scan.Change{Addr: addr, Old: 10, New: 11})
	runtime.KeepAlive(buf)
}

func TestPokeRoundTrip(t *testing.T) {
	buf := make([]byte, 4)

	s := NewDummySession()
	defer s.Detach()

	_, err := s.Attach(os.Getpid())
	require.NoError(t, err)

	addr := uintptr(unsafe.Pointer(&buf[0]))
	require.NoError(t, s.Poke(addr, scan.WidthDword, 0xdeadbeef))
	assert.EqualValues(t, []byte{0xef, 0xbe, 0xad, 0xde}, buf)

	// a fresh capture sees the poked value
	_, err = s.Rescan()
	require.NoError(t, err)

	hits, err := s.SearchNewest(scan.WidthDword, scan.CmpEq, 0xdeadbeef)
	require.NoError(t, err)
	assert.Contains(t, hits, scan.Hit{Addr: addr, Len: 4})
	runtime.KeepAlive(buf)
}

func TestPokeRequiresAttach(t *testing.T) {
	s := NewDummySession()

	err := s.Poke(0x1000, scan.WidthByte, 1)
	assert.True(t, HasErrorCode(err, NotAttached))
}

func TestSearchScopes(t *testing.T) {
	s := NewDummySession()
	defer s.Detach()

	_, err := s.Attach(os.Getpid())
	require.NoError(t, err)

	// only the initial snapshot exists until the first rescan
	_, err = s.Search(ScopeInitial, scan.WidthByte, scan.CmpEq, 0)
	assert.NoError(t, err)

	_, err = s.Search(ScopeCurrent, scan.WidthByte, scan.CmpEq, 0)
	assert.True(t, HasErrorCode(err, NoScanData))

	_, err = s.Search(ScopePrevious, scan.WidthByte, scan.CmpEq, 0)
	assert.True(t, HasErrorCode(err, NoScanData))
}

func TestSearchNewestRequiresScanData(t *testing.T) {
	s := NewDummySession()

	_, err := s.SearchNewest(scan.WidthByte, scan.CmpEq, 0)
	assert.True(t, HasErrorCode(err, NoScanData))
}

func TestDetachClearsEverything(t *testing.T) {
	s := NewDummySession()

	_, err := s.Attach(os.Getpid())
	require.NoError(t, err)
	_, err = s.Rescan()
	require.NoError(t, err)
	_, err = s.Rescan()
	require.NoError(t, err)

	s.Detach()

	assert.False(t, s.Attached())
	assert.Zero(t, s.PID())
	assert.Empty(t, s.ProcessName())
	assert.Nil(t, s.initial)
	assert.Nil(t, s.previous)
	assert.Nil(t, s.current)
}

func TestDetachWithAliasedPrevious(t *testing.T) {
	s := NewDummySession()

	_, err := s.Attach(os.Getpid())
	require.NoError(t, err)
	_, err = s.Rescan()
	require.NoError(t, err)

	// previous aliases initial here; detach must not trip over it
	assert.Same(t, s.initial, s.previous)
	s.Detach()
	assert.Nil(t, s.initial)
	assert.Nil(t, s.previous)
	assert.Nil(t, s.current)
}
