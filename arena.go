// Package arena implements a fixed-capacity bump allocator (memory arena).
// Typical usage: create one arena per frame or request, allocate many
// temporary objects from it, then Reset() at the end for O(1) cleanup.
package arena

import "unsafe"

// ptrAlign is the alignment used by AllocBytes.
const ptrAlign = unsafe.Sizeof(uintptr(0))

// Arena is a fixed-capacity bump allocator. It owns a single contiguous
// block of storage, acquired eagerly at construction, and serves requests
// by advancing an offset through it. There is no individual deallocation
// and the block never grows; Reset reclaims everything at once.
//
// The zero value is a valid empty arena: it owns no storage and every
// allocation fails with ErrOutOfCapacity.
//
// An Arena must not be copied by value; exactly one value is responsible
// for releasing the block. Use MoveFrom to hand the block to another
// arena. Not goroutine-safe: concurrent allocations on the same arena
// need external locking.
type Arena struct {
	buf []byte      // backing block, nil when empty
	pos uintptr     // bytes claimed from the start of buf
	src BlockSource // provider that acquired buf, for release
}

// NewArena creates an arena backed by a capacity-byte block from
// HeapSource. A capacity of 0 yields an empty arena without touching the
// provider; a negative capacity is an error.
func NewArena(capacity int) (*Arena, error) {
	return NewArenaFrom(HeapSource{}, capacity)
}

// NewArenaFrom creates an arena whose block is acquired from src. The full
// capacity is acquired up front; acquisition failure is returned as an
// *AcquireError and no arena is produced.
func NewArenaFrom(src BlockSource, capacity int) (*Arena, error) {
	if capacity == 0 {
		return &Arena{src: src}, nil
	}
	buf, err := src.Acquire(capacity)
	if err != nil {
		return nil, &AcquireError{Capacity: capacity, cause: err}
	}
	return &Arena{buf: buf, src: src}, nil
}

// Alloc claims size bytes aligned to align and returns a pointer to the
// first byte. align must be a power of two and size must be nonzero.
// Alignment applies to the returned address itself, not to its offset
// within the block, so it holds for alignments larger than whatever
// baseline the block source guarantees.
//
// The memory is not zeroed: contents are unspecified on first use and
// stale after a Reset. On failure the arena is unchanged and one of
// ErrInvalidAlignment, ErrZeroSize, ErrSizeOverflow or ErrOutOfCapacity
// is returned.
func (a *Arena) Alloc(size, align uintptr) (unsafe.Pointer, error) {
	if align == 0 || align&(align-1) != 0 {
		return nil, ErrInvalidAlignment
	}
	if size == 0 {
		return nil, ErrZeroSize
	}
	if len(a.buf) == 0 {
		return nil, ErrOutOfCapacity
	}

	base := uintptr(unsafe.Pointer(unsafe.SliceData(a.buf)))
	addr := base + a.pos
	aligned := (addr + align - 1) &^ (align - 1)
	if aligned < addr {
		return nil, ErrSizeOverflow
	}
	off := aligned - base
	end := off + size
	if end < off {
		return nil, ErrSizeOverflow
	}
	if end > uintptr(len(a.buf)) {
		return nil, ErrOutOfCapacity
	}

	a.pos = end
	return unsafe.Add(unsafe.Pointer(unsafe.SliceData(a.buf)), off), nil
}

// AllocBytes claims n bytes at pointer alignment and returns them as a
// slice into the block. The caller must ensure the arena (or whichever
// arena the block is moved to) outlives the slice. n must be positive.
func (a *Arena) AllocBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, ErrZeroSize
	}
	p, err := a.Alloc(uintptr(n), ptrAlign)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(p), n), nil
}

// Reset sets the claimed position back to zero, making the full capacity
// available again. The block is kept and its contents are not cleared;
// pointers handed out before the reset must no longer be used, as later
// allocations will overlap them.
func (a *Arena) Reset() {
	a.pos = 0
}

// Used returns the number of bytes claimed so far, including padding
// inserted for alignment.
func (a *Arena) Used() int {
	return int(a.pos)
}

// Capacity returns the total size of the backing block in bytes.
func (a *Arena) Capacity() int {
	return len(a.buf)
}

// Available returns the number of unclaimed bytes remaining.
func (a *Arena) Available() int {
	return len(a.buf) - int(a.pos)
}

// Owns reports whether p falls inside the backing block. This is a range
// test only: it does not check that p was returned by Alloc or lies on an
// allocation boundary. Always false for an empty arena.
func (a *Arena) Owns(p unsafe.Pointer) bool {
	if len(a.buf) == 0 || p == nil {
		return false
	}
	start := uintptr(unsafe.Pointer(unsafe.SliceData(a.buf)))
	return uintptr(p) >= start && uintptr(p) < start+uintptr(len(a.buf))
}

// MoveFrom transfers the backing block, claimed position and block source
// from src to a. Afterwards src is an empty arena and must no longer be
// used to reach the transferred memory; pointers previously handed out by
// src stay valid through a. If a already owned a block it is released
// first, and any release error is returned (the transfer still happens).
// Moving an arena into itself is a no-op.
func (a *Arena) MoveFrom(src *Arena) error {
	if a == src {
		return nil
	}
	err := a.Release()
	a.buf, a.pos, a.src = src.buf, src.pos, src.src
	src.buf, src.pos, src.src = nil, 0, nil
	return err
}

// Release returns the backing block to its source and leaves the arena
// empty. Releasing an empty arena is a no-op, so a block is released at
// most once no matter how often Release is called.
func (a *Arena) Release() error {
	buf, src := a.buf, a.src
	a.buf, a.pos, a.src = nil, 0, nil
	if buf == nil || src == nil {
		return nil
	}
	return src.Release(buf)
}
