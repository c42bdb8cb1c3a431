//go:build unix

package arena

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// MmapSource acquires blocks via anonymous private mappings. Blocks are
// page-aligned and invisible to the garbage collector, and Release
// returns the pages to the OS immediately. Only available on unix.
type MmapSource struct{}

// Acquire maps an n-byte anonymous block. n must be positive.
func (MmapSource) Acquire(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("block size must be positive, got %d", n)
	}
	b, err := unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mmap %d bytes: %w", n, err)
	}
	return b, nil
}

// Release unmaps a block previously returned by Acquire.
func (MmapSource) Release(b []byte) error {
	if b == nil {
		return nil
	}
	return unix.Munmap(b)
}
