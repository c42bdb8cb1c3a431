//go:build unix

package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMmapSource(t *testing.T) {
	var ms MmapSource

	b, err := ms.Acquire(1 << 16)
	require.NoError(t, err)
	require.Len(t, b, 1<<16)

	b[0], b[len(b)-1] = 0x11, 0x22
	assert.Equal(t, byte(0x11), b[0])
	assert.Equal(t, byte(0x22), b[len(b)-1])

	require.NoError(t, ms.Release(b))

	_, err = ms.Acquire(-1)
	assert.Error(t, err)
}

func TestArenaOverMmapSource(t *testing.T) {
	a, err := NewArenaFrom(MmapSource{}, 1<<16)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, a.Release())
	}()

	// Mapped pages are page-aligned, so even large alignments succeed
	// right at the start of the block.
	p, err := a.Alloc(128, 512)
	require.NoError(t, err)
	require.Zero(t, uintptr(p)%512)
	require.True(t, a.Owns(p))

	b, err := a.AllocBytes(4096)
	require.NoError(t, err)
	for i := range b {
		b[i] = byte(i)
	}

	a.Reset()
	require.Zero(t, a.Used())
	require.Equal(t, 1<<16, a.Available())
}
