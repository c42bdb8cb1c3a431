// Package arena implements a fixed-capacity bump allocator (memory arena) for Go.
//
// # Overview
//
// A bump allocator serves requests by advancing a single offset through a
// pre-acquired block of storage. There is no per-allocation bookkeeping and
// no individual deallocation; everything is reclaimed at once with Reset.
// This is particularly useful for:
//
//   - Per-frame or per-request scratch memory
//   - Temporary object allocation with batch cleanup
//   - Reducing garbage collection pressure
//   - Workloads needing predictable, very low allocation overhead
//
// # Basic Usage
//
//	a, err := arena.NewArena(1 << 20) // 1 MiB block, acquired up front
//	if err != nil {
//		return err
//	}
//	defer a.Release()
//
//	// Allocate raw memory
//	p, err := a.Alloc(64, 8)
//	buf, err := a.AllocBytes(1024)
//
//	// Allocate typed values
//	ptr, err := arena.Alloc[MyStruct](a)
//	slice, err := arena.AllocSlice[int](a, 100)
//
//	// Reset for reuse (O(1) operation)
//	a.Reset()
//
// # Capacity
//
// The block is acquired eagerly at construction and never grows. When a
// request does not fit the remaining capacity the allocation fails with
// ErrOutOfCapacity and the arena is left unchanged; the arena never rounds
// a request down or retries. Check the error of every allocation.
//
// # Ownership
//
// Each block has exactly one owning Arena. Arenas are not copyable;
// MoveFrom transfers the block to another arena and leaves the source
// empty, and Release returns the block to its source exactly once.
//
// # Storage Providers
//
// Blocks come from a BlockSource. The default HeapSource allocates from
// the Go heap; MmapSource (unix only) maps anonymous pages outside the
// Go heap:
//
//	a, err := arena.NewArenaFrom(arena.MmapSource{}, 1<<20)
//
// # Alignment
//
// Alloc aligns the returned address itself, not its offset within the
// block, so any power-of-two alignment is honored regardless of the
// baseline alignment the block source happens to provide.
//
// # Thread Safety
//
// Arena performs no internal synchronization and is not safe for
// concurrent use; callers that share an arena across goroutines must
// supply their own locking.
//
// # Important Notes
//
//   - Allocated memory is only valid until the arena is reset or released
//   - No individual deallocation - use Reset() or Release() for bulk cleanup
//   - Memory is not zeroed unless using Alloc[T]() or AllocSliceZeroed()
//   - The arena does not run cleanup logic for objects placed in its memory
package arena
