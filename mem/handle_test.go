package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	A, B int64
}

// TestHandle_NewZeroed verifies handle allocations come back zeroed and
// usable.
func TestHandle_NewZeroed(t *testing.T) {
	r := NewTracking()
	defer r.Close()

	h := NewHandle[pair](r)
	p, err := h.New()
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, pair{}, *p, "fresh storage must be zeroed")

	p.A = 7
	p.B = -3
	assert.Equal(t, pair{A: 7, B: -3}, *p)

	h.Free(p)
	assert.Equal(t, 0, r.Stats().LiveBlocks)
}

// TestHandle_DistinctNodes verifies successive allocations occupy distinct
// storage, including for zero-sized element types.
func TestHandle_DistinctNodes(t *testing.T) {
	r := NewTracking()
	defer r.Close()

	h := NewHandle[struct{}](r)
	a, err := h.New()
	require.NoError(t, err)
	b, err := h.New()
	require.NoError(t, err)
	assert.NotSame(t, a, b, "zero-sized allocations must still be distinct")

	hi := NewHandle[int](r)
	x, err := hi.New()
	require.NoError(t, err)
	y, err := hi.New()
	require.NoError(t, err)
	assert.NotSame(t, x, y)
}

// TestHandle_FreeNil verifies a nil free is a no-op.
func TestHandle_FreeNil(t *testing.T) {
	r := NewTracking()
	defer r.Close()

	h := NewHandle[int](r)
	h.Free(nil)
	assert.Zero(t, r.Stats().FreeCalls)
}

// TestHandle_IsEqual verifies handles compare by resource identity, and
// that copies are interchangeable.
func TestHandle_IsEqual(t *testing.T) {
	r1 := NewTracking()
	r2 := NewTracking()
	defer r1.Close()
	defer r2.Close()

	h1 := NewHandle[int](r1)
	h2 := NewHandle[int](r1)
	h3 := NewHandle[int](r2)

	assert.True(t, h1.IsEqual(h2), "handles on the same resource are equal")
	assert.False(t, h1.IsEqual(h3), "handles on different resources are unequal")

	// A copy of a handle allocates from the same resource.
	cp := h1
	p, err := cp.New()
	require.NoError(t, err)
	assert.Equal(t, 1, r1.Stats().LiveBlocks)
	h1.Free(p)
	assert.Equal(t, 0, r1.Stats().LiveBlocks, "any copy can release what another allocated")
}

// TestHandle_NilResource verifies a nil resource binds the process default.
func TestHandle_NilResource(t *testing.T) {
	h := NewHandle[int](nil)
	assert.True(t, h.Resource().IsEqual(Default()))

	p, err := h.New()
	require.NoError(t, err)
	h.Free(p)
}
