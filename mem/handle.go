package mem

import "unsafe"

// Handle binds a Resource to a single element type T. It is a copyable value
// carrying no allocation state of its own: copies of a handle are
// interchangeable, and a handle never owns the resource it points to. The
// bound resource must outlive every handle referencing it; that is the
// caller's invariant, not something the handle can check.
type Handle[T any] struct {
	r Resource
}

// NewHandle returns a handle binding r to element type T.
// A nil r binds the process-wide default resource.
func NewHandle[T any](r Resource) Handle[T] {
	if r == nil {
		r = Default()
	}
	return Handle[T]{r: r}
}

// New obtains storage for one T from the bound resource and returns it
// zeroed. Allocation failure propagates unchanged.
func (h Handle[T]) New() (*T, error) {
	size, alignment := sizeofT[T]()
	p, err := h.r.Allocate(size, alignment)
	if err != nil {
		return nil, err
	}
	return (*T)(p), nil
}

// Free destroys the value at p and returns its storage to the bound
// resource. A nil p is a no-op.
func (h Handle[T]) Free(p *T) {
	if p == nil {
		return
	}
	var zero T
	*p = zero
	size, alignment := sizeofT[T]()
	h.r.Deallocate(unsafe.Pointer(p), size, alignment)
}

// Resource returns the bound resource.
func (h Handle[T]) Resource() Resource {
	return h.r
}

// IsEqual reports whether other is bound to the same resource instance.
func (h Handle[T]) IsEqual(other Handle[T]) bool {
	return h.r.IsEqual(other.r)
}

// sizeofT returns the allocation geometry for T. Zero-sized types still
// consume one byte so that every allocation has a distinct address.
func sizeofT[T any]() (size, alignment int) {
	var t T
	size = int(unsafe.Sizeof(t))
	if size == 0 {
		size = 1
	}
	return size, int(unsafe.Alignof(t))
}
