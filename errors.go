package arena

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAlignment is returned when the requested alignment is not
	// a power of two.
	ErrInvalidAlignment = errors.New("arena: alignment must be a power of two")

	// ErrZeroSize is returned for zero-size (or non-positive) allocation
	// requests.
	ErrZeroSize = errors.New("arena: allocation size must be nonzero")

	// ErrSizeOverflow is returned when computing the end of the requested
	// region overflows the address space.
	ErrSizeOverflow = errors.New("arena: allocation size overflows")

	// ErrOutOfCapacity is returned when the request does not fit in the
	// remaining capacity.
	ErrOutOfCapacity = errors.New("arena: out of capacity")
)

// AcquireError indicates that construction could not obtain a backing
// block of the requested capacity from its BlockSource.
//
// The provider's underlying error can be accessed via errors.Unwrap.
type AcquireError struct {
	Capacity int
	cause    error
}

func (e *AcquireError) Error() string {
	return fmt.Sprintf("arena: acquiring %d-byte block: %v", e.Capacity, e.cause)
}

func (e *AcquireError) Unwrap() error { return e.cause }
