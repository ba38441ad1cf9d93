// Package mem provides pluggable memory resources and typed allocator handles.
//
// # Overview
//
// A Resource services raw byte/alignment requests and is the single point
// through which containers in this module obtain storage. The package ships
// three concrete resources:
//
//   - TrackingResource: records every block it hands out and releases all
//     still-live blocks on Close, so nothing leaks even when a caller
//     forgets to deallocate
//   - HeapResource: the process default; backed by the Go heap, with the
//     collector reclaiming a block once Deallocate drops the resource's
//     reference to it
//   - PageResource: backed by anonymous memory mappings (unix only)
//
// Containers never talk to a Resource directly. They hold a Handle, a
// lightweight copyable value binding a resource to one element type, and
// obtain or return typed storage through it:
//
//	r := mem.NewTracking()
//	defer r.Close()
//
//	h := mem.NewHandle[int](r)
//	p, err := h.New()
//	if err != nil {
//	    return err
//	}
//	*p = 42
//	h.Free(p)
//
// # Storage and the collector
//
// Memory served by a Resource is untyped: the collector treats it as
// pointerless and will not trace Go pointers stored inside it. Values placed
// in resource-served storage must therefore not hold the only reference to a
// separate Go-heap object. Plain scalars and pointer-free structs are always
// safe; this is the usual restriction for arena-style allocation in Go.
//
// # Equality
//
// Resources compare by identity, never structurally. Two handles are equal
// exactly when they are bound to the same resource instance.
//
// # Thread safety
//
// Resources and handles are not safe for concurrent use. Callers needing
// shared access must synchronize externally, one lock per resource instance,
// held across every allocation and every mutation of containers bound to it.
package mem
