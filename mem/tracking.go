package mem

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/memkit/memkit/internal/align"
)

// Runtime debug flag for allocation logging - controlled by MEMKIT_LOG_ALLOC env var.
var logAlloc = os.Getenv("MEMKIT_LOG_ALLOC") != ""

// blockRecord is the bookkeeping entry for one block handed out by a
// TrackingResource. Records are appended on Allocate and never removed;
// live flips to false when the block is released.
type blockRecord struct {
	addr  uintptr
	buf   []byte // backing storage; nil once released
	size  int
	align int
	live  bool
}

// TrackingStats holds counters exposed for tests and instrumentation.
type TrackingStats struct {
	AllocCalls    int   // Total Allocate() calls that succeeded
	FreeCalls     int   // Deallocate() calls that released a live block
	LiveBlocks    int   // Blocks currently outstanding
	LiveBytes     int64 // Bytes currently outstanding
	PeakLiveBytes int64 // High-water mark of LiveBytes
	TotalBytes    int64 // Total bytes ever allocated
}

// TrackingResource services allocation requests with fresh Go-heap memory and
// records every block it hands out. It never reuses or coalesces freed
// blocks; the point of the tracking set is that Close can release anything
// the caller left live.
type TrackingResource struct {
	blocks []blockRecord
	stats  TrackingStats
}

// NewTracking returns an empty TrackingResource with zero tracked blocks.
func NewTracking() *TrackingResource {
	return &TrackingResource{}
}

// Allocate obtains size bytes of fresh zeroed storage aligned to align and
// appends a live block record for it. Every address returned is distinct
// from every other currently-live address.
func (r *TrackingResource) Allocate(size, alignment int) (unsafe.Pointer, error) {
	if size <= 0 {
		return nil, ErrBadSize
	}
	if !align.PowerOfTwo(alignment) {
		return nil, ErrBadAlign
	}

	buf, p := alignedBlock(size, alignment)
	r.blocks = append(r.blocks, blockRecord{
		addr:  uintptr(p),
		buf:   buf,
		size:  size,
		align: alignment,
		live:  true,
	})

	r.stats.AllocCalls++
	r.stats.LiveBlocks++
	r.stats.LiveBytes += int64(size)
	r.stats.TotalBytes += int64(size)
	if r.stats.LiveBytes > r.stats.PeakLiveBytes {
		r.stats.PeakLiveBytes = r.stats.LiveBytes
	}

	if logAlloc {
		fmt.Fprintf(os.Stderr, "mem: alloc addr=%#x size=%d align=%d live=%d\n",
			uintptr(p), size, alignment, r.stats.LiveBlocks)
	}

	return p, nil
}

// Deallocate releases the block at p. The lookup uses the geometry recorded
// at allocation time, so a caller passing a mismatched-but-compatible size or
// alignment still releases the right block. An unknown address, or a block
// already released, is a silent no-op and never disturbs other records.
func (r *TrackingResource) Deallocate(p unsafe.Pointer, size, alignment int) {
	rec := r.findBlock(uintptr(p))
	if rec == nil || !rec.live {
		return
	}
	r.release(rec)

	if logAlloc {
		fmt.Fprintf(os.Stderr, "mem: free  addr=%#x size=%d live=%d\n",
			rec.addr, rec.size, r.stats.LiveBlocks)
	}
}

// IsEqual reports whether other is this same resource instance.
func (r *TrackingResource) IsEqual(other Resource) bool {
	o, ok := other.(*TrackingResource)
	return ok && o == r
}

// Close releases every still-live block exactly once. Safe to call with zero
// or many outstanding blocks, and safe to call more than once; the resource
// remains usable afterwards.
func (r *TrackingResource) Close() error {
	for i := range r.blocks {
		if rec := &r.blocks[i]; rec.live {
			r.release(rec)
		}
	}
	return nil
}

// Stats returns a copy of the resource's counters.
func (r *TrackingResource) Stats() TrackingStats {
	return r.stats
}

// release drops a live record's storage and updates counters. The caller has
// already checked rec.live.
func (r *TrackingResource) release(rec *blockRecord) {
	rec.live = false
	rec.buf = nil // storage becomes collectable here
	r.stats.FreeCalls++
	r.stats.LiveBlocks--
	r.stats.LiveBytes -= int64(rec.size)
}

// findBlock scans the tracking set for the record at addr. Linear scan:
// this is a tracking structure, not a hot path. Live blocks have unique
// addresses, but the runtime may hand a fresh block an address some released
// record once held, so a live match wins over a dead one.
func (r *TrackingResource) findBlock(addr uintptr) *blockRecord {
	var dead *blockRecord
	for i := range r.blocks {
		rec := &r.blocks[i]
		if rec.addr != addr {
			continue
		}
		if rec.live {
			return rec
		}
		if dead == nil {
			dead = rec
		}
	}
	return dead
}

// alignedBlock carves an aligned region out of a padded Go-heap slice and
// returns both the backing slice (which keeps the storage reachable) and the
// first aligned address within it.
func alignedBlock(size, alignment int) ([]byte, unsafe.Pointer) {
	buf := make([]byte, size+alignment)
	base := unsafe.Pointer(unsafe.SliceData(buf))
	off := align.Padding(uintptr(base), alignment)
	return buf, unsafe.Add(base, off)
}

// Compile-time interface check
var _ Resource = (*TrackingResource)(nil)
