package mem

import "unsafe"

// Resource defines the interface for raw memory allocation and deallocation.
//
// Implementations:
//   - TrackingResource: records every block and frees leftovers on Close
//   - HeapResource: untracked Go-heap blocks, reclaimed by the collector
//   - PageResource: anonymous memory mappings (unix only)
//
// This interface enables different backing strategies while keeping
// containers independent of any concrete resource type.
type Resource interface {
	// Allocate returns a pointer to size bytes of zeroed storage aligned to
	// align. align must be a power of two. On success the pointer is never
	// nil; failure of the backing allocator surfaces as an error wrapping
	// ErrNoMemory and is never retried.
	Allocate(size, align int) (unsafe.Pointer, error)

	// Deallocate returns a block previously obtained from Allocate.
	// Releasing an unknown address, or the same address twice, is a no-op.
	Deallocate(p unsafe.Pointer, size, align int)

	// IsEqual reports whether other is the same resource instance.
	// Comparison is by identity, never structural.
	IsEqual(other Resource) bool
}
