//go:build unix

package mem

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/memkit/memkit/internal/align"
)

// mapping is the bookkeeping entry for one anonymous mapping handed out by a
// PageResource. Entries are appended on Allocate and never removed; live
// flips to false once the mapping is returned.
type mapping struct {
	addr uintptr
	data []byte
	live bool
}

// PageResource services allocation requests with anonymous memory mappings.
// Each request maps a fresh whole-page region, so any alignment up to the
// system page size is satisfied for free. Like TrackingResource it records
// every mapping and unmaps leftovers on Close.
type PageResource struct {
	pageSize int
	maps     []mapping
}

// NewPage returns an empty PageResource.
func NewPage() *PageResource {
	return &PageResource{pageSize: os.Getpagesize()}
}

// Allocate maps a fresh zeroed region of whole pages covering size bytes.
// Alignments beyond the system page size cannot be served and return
// ErrBadAlign.
func (r *PageResource) Allocate(size, alignment int) (unsafe.Pointer, error) {
	if size <= 0 {
		return nil, ErrBadSize
	}
	if !align.PowerOfTwo(alignment) || alignment > r.pageSize {
		return nil, ErrBadAlign
	}

	length := align.Up(size, r.pageSize)
	data, err := unix.Mmap(-1, 0, length,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %d bytes: %v", ErrNoMemory, length, err)
	}

	p := unsafe.Pointer(unsafe.SliceData(data))
	r.maps = append(r.maps, mapping{addr: uintptr(p), data: data, live: true})
	return p, nil
}

// Deallocate unmaps the region at p. Unknown addresses and regions already
// returned are no-ops.
func (r *PageResource) Deallocate(p unsafe.Pointer, size, alignment int) {
	for i := range r.maps {
		m := &r.maps[i]
		if m.addr == uintptr(p) && m.live {
			r.unmap(m)
			return
		}
	}
}

// IsEqual reports whether other is this same resource instance.
func (r *PageResource) IsEqual(other Resource) bool {
	o, ok := other.(*PageResource)
	return ok && o == r
}

// Close unmaps every still-live region exactly once. Safe to call more than
// once.
func (r *PageResource) Close() error {
	for i := range r.maps {
		if m := &r.maps[i]; m.live {
			r.unmap(m)
		}
	}
	return nil
}

// Live returns the number of mappings currently outstanding.
func (r *PageResource) Live() int {
	n := 0
	for i := range r.maps {
		if r.maps[i].live {
			n++
		}
	}
	return n
}

func (r *PageResource) unmap(m *mapping) {
	// Munmap of a private anonymous region only fails on a corrupted slice;
	// the record is marked dead regardless so it is never released twice.
	_ = unix.Munmap(m.data)
	m.data = nil
	m.live = false
}

// Compile-time interface check
var _ Resource = (*PageResource)(nil)
