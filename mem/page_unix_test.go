//go:build unix

package mem

import (
	"os"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPageResource_PageGranular verifies allocations are served on page
// boundaries and are fully writable.
func TestPageResource_PageGranular(t *testing.T) {
	r := NewPage()
	defer r.Close()

	page := os.Getpagesize()

	p, err := r.Allocate(100, 64)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Zero(t, uintptr(p)%uintptr(page), "mapping must start on a page boundary")
	assert.Equal(t, 1, r.Live())

	b := unsafe.Slice((*byte)(p), 100)
	for i := range b {
		b[i] = byte(i)
	}
	assert.Equal(t, byte(99), b[99])
}

// TestPageResource_DeallocateUnmaps verifies release bookkeeping, including
// double and unknown releases.
func TestPageResource_DeallocateUnmaps(t *testing.T) {
	r := NewPage()
	defer r.Close()

	p1, err := r.Allocate(10, 8)
	require.NoError(t, err)
	p2, err := r.Allocate(10, 8)
	require.NoError(t, err)
	require.Equal(t, 2, r.Live())

	r.Deallocate(p1, 10, 8)
	assert.Equal(t, 1, r.Live())

	// Double release is a no-op.
	r.Deallocate(p1, 10, 8)
	assert.Equal(t, 1, r.Live())

	// Unknown address is a no-op.
	var local [8]byte
	r.Deallocate(unsafe.Pointer(&local[0]), 8, 8)
	assert.Equal(t, 1, r.Live())

	r.Deallocate(p2, 10, 8)
	assert.Equal(t, 0, r.Live())
}

// TestPageResource_CloseUnmapsAll verifies teardown with outstanding
// mappings.
func TestPageResource_CloseUnmapsAll(t *testing.T) {
	r := NewPage()

	for i := 0; i < 5; i++ {
		_, err := r.Allocate(64, 8)
		require.NoError(t, err)
	}
	require.Equal(t, 5, r.Live())

	require.NoError(t, r.Close())
	assert.Equal(t, 0, r.Live())

	// Idempotent.
	require.NoError(t, r.Close())
}

// TestPageResource_AlignmentLimit verifies alignments beyond the page size
// are rejected.
func TestPageResource_AlignmentLimit(t *testing.T) {
	r := NewPage()
	defer r.Close()

	_, err := r.Allocate(16, os.Getpagesize()*2)
	assert.ErrorIs(t, err, ErrBadAlign)

	_, err = r.Allocate(0, 8)
	assert.ErrorIs(t, err, ErrBadSize)
}

// TestPageResource_IsEqual verifies identity comparison across resource
// types.
func TestPageResource_IsEqual(t *testing.T) {
	a := NewPage()
	b := NewPage()
	defer a.Close()
	defer b.Close()

	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(Default()))
}
