package mem

import (
	"unsafe"

	"github.com/memkit/memkit/internal/align"
)

// HeapResource serves blocks straight from the Go heap with no cleanup
// tracking. The resource pins each block only until Deallocate, at which
// point the collector reclaims it; there is nothing to Close.
//
// This is the process-wide default backing for containers constructed
// without an explicit resource.
type HeapResource struct {
	pinned map[uintptr][]byte
}

// NewHeap returns an empty HeapResource.
func NewHeap() *HeapResource {
	return &HeapResource{pinned: make(map[uintptr][]byte)}
}

// Allocate returns size bytes of zeroed Go-heap storage aligned to align.
func (r *HeapResource) Allocate(size, alignment int) (unsafe.Pointer, error) {
	if size <= 0 {
		return nil, ErrBadSize
	}
	if !align.PowerOfTwo(alignment) {
		return nil, ErrBadAlign
	}
	buf, p := alignedBlock(size, alignment)
	r.pinned[uintptr(p)] = buf
	return p, nil
}

// Deallocate drops the resource's reference to the block at p, handing the
// storage back to the collector. Unknown or repeated addresses are no-ops.
func (r *HeapResource) Deallocate(p unsafe.Pointer, size, alignment int) {
	delete(r.pinned, uintptr(p))
}

// IsEqual reports whether other is this same resource instance.
func (r *HeapResource) IsEqual(other Resource) bool {
	o, ok := other.(*HeapResource)
	return ok && o == r
}

// Live returns the number of blocks currently pinned by the resource.
func (r *HeapResource) Live() int {
	return len(r.pinned)
}

// defaultResource backs every handle constructed with a nil resource.
var defaultResource = NewHeap()

// Default returns the process-wide default resource.
func Default() Resource {
	return defaultResource
}

// Compile-time interface check
var _ Resource = (*HeapResource)(nil)
