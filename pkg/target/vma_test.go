//go:build linux

package target

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMapsLine(t *testing.T) {
	type scenario struct {
		line     string
		expected VMA
		ok       bool
	}

	scenarios := []scenario{
		{
			"55aa9f3f5000-55aa9f417000 r--p 00000000 08:02 131219 /usr/bin/cat",
			VMA{Start: 0x55aa9f3f5000, End: 0x55aa9f417000, Perms: "r--p", Path: "/usr/bin/cat"},
			true,
		},
		{
			"7ffd7a0f1000-7ffd7a112000 rw-p 00000000 00:00 0 [stack]",
			VMA{Start: 0x7ffd7a0f1000, End: 0x7ffd7a112000, Perms: "rw-p", Path: "[stack]"},
			true,
		},
		{
			// anonymous mapping: no path field at all
			"7f1c38000000-7f1c38021000 rw-p 00000000 00:00 0",
			VMA{Start: 0x7f1c38000000, End: 0x7f1c38021000, Perms: "rw-p", Path: ""},
			true,
		},
		{
			// a path containing spaces survives intact
			"7f0000000000-7f0000001000 r-xp 00000000 08:02 42 /opt/some dir/lib.so",
			VMA{Start: 0x7f0000000000, End: 0x7f0000001000, Perms: "r-xp", Path: "/opt/some dir/lib.so"},
			true,
		},
		{
			"not a maps line",
			VMA{},
			false,
		},
		{
			"xyz-abc rw-p",
			VMA{},
			false,
		},
		{
			"",
			VMA{},
			false,
		},
	}

	for _, s := range scenarios {
		vma, ok := parseMapsLine(s.line)
		assert.EqualValues(t, s.ok, ok, s.line)
		if s.ok {
			assert.EqualValues(t, s.expected, vma, s.line)
		}
	}
}

func TestVMAPermissions(t *testing.T) {
	type scenario struct {
		perms    string
		readable bool
		writable bool
	}

	scenarios := []scenario{
		{"rw-p", true, true},
		{"r--p", true, false},
		{"-w-s", false, true},
		{"--xp", false, false},
		{"---p", false, false},
	}

	for _, s := range scenarios {
		vma := VMA{Perms: s.perms}
		assert.EqualValues(t, s.readable, vma.Readable(), s.perms)
		assert.EqualValues(t, s.writable, vma.Writable(), s.perms)
	}
}

func TestListVMAsSelf(t *testing.T) {
	vmas, err := ListVMAs(os.Getpid())
	require.NoError(t, err)
	require.NotEmpty(t, vmas)

	for _, vma := range vmas {
		assert.True(t, vma.End >= vma.Start)
	}
}

func TestListVMAsMissingProcess(t *testing.T) {
	// way past any realistic pid_max
	_, err := ListVMAs(1 << 30)
	assert.Error(t, err)
}
