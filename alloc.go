package arena

import (
	"runtime"
	"unsafe"
)

// Alloc returns a pointer to a zeroed T stored inside the arena, aligned
// to T's natural alignment. Fails for zero-sized types (there are no
// zero-size allocations). The pointer is valid until the arena is reset
// or released.
func Alloc[T any](a *Arena) (*T, error) {
	t, err := AllocUninitialized[T](a)
	if err != nil {
		return nil, err
	}
	var zero T
	*t = zero
	return t, nil
}

// AllocUninitialized returns a *T located in the arena without zeroing
// the memory. Faster than Alloc, but the contents are undefined (stale
// data after a Reset); initialize every field before use.
func AllocUninitialized[T any](a *Arena) (*T, error) {
	var zero T
	p, err := a.Alloc(unsafe.Sizeof(zero), unsafe.Alignof(zero))
	if err != nil {
		return nil, err
	}
	return (*T)(p), nil
}

// AllocSlice allocates a slice of n elements of type T inside the arena.
// The elements are not initialized. Fails with ErrSizeOverflow if
// n*sizeof(T) is not representable, before touching the arena.
func AllocSlice[T any](a *Arena, n int) ([]T, error) {
	if n <= 0 {
		return nil, ErrZeroSize
	}
	var zero T
	elemSize := unsafe.Sizeof(zero)
	if elemSize == 0 {
		return nil, ErrZeroSize
	}
	if uintptr(n) > ^uintptr(0)/elemSize {
		return nil, ErrSizeOverflow
	}
	p, err := a.Alloc(elemSize*uintptr(n), unsafe.Alignof(zero))
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(p), n), nil
}

// AllocSliceZeroed allocates a slice of n elements of type T with zeroed
// memory. Slower than AllocSlice but the elements start clean.
func AllocSliceZeroed[T any](a *Arena, n int) ([]T, error) {
	s, err := AllocSlice[T](a, n)
	if err != nil {
		return nil, err
	}
	clear(s)
	return s, nil
}

// PtrAndKeepAlive returns t and calls runtime.KeepAlive on the arena.
// This prevents the arena (and with it a heap-backed block) from being
// collected while the pointer is still in use in unsafe code.
func PtrAndKeepAlive[T any](a *Arena, t *T) *T {
	runtime.KeepAlive(a)
	return t
}
