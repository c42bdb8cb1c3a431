package arena

import "fmt"

// BlockSource is the primitive an Arena acquires its backing block from.
// Acquire returns a block of exactly n bytes with unspecified contents;
// Release gives a block obtained from the same source back. A source must
// tolerate Release being called on each acquired block exactly once.
type BlockSource interface {
	Acquire(n int) ([]byte, error)
	Release(b []byte) error
}

// HeapSource acquires blocks from the Go heap. It is the default source
// used by NewArena; released blocks are left to the garbage collector.
type HeapSource struct{}

// Acquire returns an n-byte block. n must be positive.
func (HeapSource) Acquire(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("block size must be positive, got %d", n)
	}
	return make([]byte, n), nil
}

// Release is a no-op; the garbage collector reclaims the block once the
// arena drops it.
func (HeapSource) Release([]byte) error { return nil }
