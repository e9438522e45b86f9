//go:build linux

package target

import (
	"os"
	"runtime"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reading and writing our own address space through process_vm_readv and
// process_vm_writev needs no extra privileges, which makes the primitives
// testable without a second process

func TestPeekSelf(t *testing.T) {
	src := []byte{0x11, 0x22, 0x33, 0x44}
	dst := make([]byte, len(src))

	n, err := Peek(os.Getpid(), uintptr(unsafe.Pointer(&src[0])), dst)
	require.NoError(t, err)
	assert.EqualValues(t, len(src), n)
	assert.EqualValues(t, src, dst)
	runtime.KeepAlive(src)
}

func TestPeekEmptyBuffer(t *testing.T) {
	n, err := Peek(os.Getpid(), 0, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
}

func TestPeekUnmappedAddress(t *testing.T) {
	dst := make([]byte, 8)
	// page zero is never mapped in a Go process
	_, err := Peek(os.Getpid(), 0x1, dst)
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestPokeSelfRoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	payload := []byte{0xde, 0xad, 0xbe, 0xef}

	err := Poke(os.Getpid(), uintptr(unsafe.Pointer(&buf[0])), payload)
	require.NoError(t, err)
	assert.EqualValues(t, payload, buf[:len(payload)])
	assert.EqualValues(t, []byte{0, 0, 0, 0}, buf[len(payload):])
	runtime.KeepAlive(buf)
}

func TestPokeUnmappedAddress(t *testing.T) {
	err := Poke(os.Getpid(), 0x1, []byte{1})
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestPokeMissingProcess(t *testing.T) {
	err := Poke(1<<30, 0x1000, []byte{1})
	assert.ErrorIs(t, err, ErrNoSuchProcess)
}
