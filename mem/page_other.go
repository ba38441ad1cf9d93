//go:build !unix

package mem

import (
	"unsafe"

	"github.com/memkit/memkit/internal/align"
)

// mapping is the bookkeeping entry for one region handed out by a
// PageResource. Entries are appended on Allocate and never removed; live
// flips to false once the region is returned.
type mapping struct {
	addr uintptr
	data []byte
	live bool
}

// PageResource falls back to page-granular Go-heap blocks when anonymous
// mmap is not available. The contract matches the unix implementation:
// whole-page regions, tracked until Deallocate or Close.
type PageResource struct {
	pageSize int
	maps     []mapping
}

// NewPage returns an empty PageResource.
func NewPage() *PageResource {
	return &PageResource{pageSize: 4096}
}

// Allocate returns a fresh zeroed region of whole pages covering size bytes.
// Alignments beyond the page size cannot be served and return ErrBadAlign.
func (r *PageResource) Allocate(size, alignment int) (unsafe.Pointer, error) {
	if size <= 0 {
		return nil, ErrBadSize
	}
	if !align.PowerOfTwo(alignment) || alignment > r.pageSize {
		return nil, ErrBadAlign
	}
	length := align.Up(size, r.pageSize)
	buf, p := alignedBlock(length, r.pageSize)
	r.maps = append(r.maps, mapping{addr: uintptr(p), data: buf, live: true})
	return p, nil
}

// Deallocate releases the region at p. Unknown addresses and regions already
// returned are no-ops.
func (r *PageResource) Deallocate(p unsafe.Pointer, size, alignment int) {
	for i := range r.maps {
		m := &r.maps[i]
		if m.addr == uintptr(p) && m.live {
			m.data = nil
			m.live = false
			return
		}
	}
}

// IsEqual reports whether other is this same resource instance.
func (r *PageResource) IsEqual(other Resource) bool {
	o, ok := other.(*PageResource)
	return ok && o == r
}

// Close releases every still-live region exactly once. Safe to call more
// than once.
func (r *PageResource) Close() error {
	for i := range r.maps {
		if m := &r.maps[i]; m.live {
			m.data = nil
			m.live = false
		}
	}
	return nil
}

// Live returns the number of regions currently outstanding.
func (r *PageResource) Live() int {
	n := 0
	for i := range r.maps {
		if r.maps[i].live {
			n++
		}
	}
	return n
}

// Compile-time interface check
var _ Resource = (*PageResource)(nil)
