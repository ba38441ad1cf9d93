package mem

import "errors"

var (
	// ErrNoMemory indicates the backing system allocator could not satisfy
	// an allocation request.
	ErrNoMemory = errors.New("mem: out of memory")

	// ErrBadAlign indicates a requested alignment that is not a power of two,
	// or one the resource cannot provide.
	ErrBadAlign = errors.New("mem: alignment must be a power of two")

	// ErrBadSize indicates a non-positive allocation size.
	ErrBadSize = errors.New("mem: size must be positive")
)
