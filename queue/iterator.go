package queue

// Iterator is a forward cursor over a queue's live nodes. Its only state is
// the referenced node; the zero value is the end position. Copying an
// iterator yields an independent cursor: advancing the copy never moves the
// original.
//
// Iterators do not track mutation of the underlying queue. Popping or
// closing the queue invalidates iterators referencing the removed nodes.
type Iterator[T any] struct {
	cur *node[T]
}

// Next advances to the successor node. Advancing from the end position is a
// no-op: the iterator stays at end. (The end position is terminal, so a
// silent stay is well-defined and keeps loops of the begin/end form safe.)
func (it *Iterator[T]) Next() {
	if it.cur != nil {
		it.cur = it.cur.next
	}
}

// Value returns a copy of the current element, or ErrEndIterator at the end
// position.
func (it Iterator[T]) Value() (T, error) {
	if it.cur == nil {
		var zero T
		return zero, ErrEndIterator
	}
	return it.cur.value, nil
}

// Ref returns writable access to the current element in place, or
// ErrEndIterator at the end position.
func (it Iterator[T]) Ref() (*T, error) {
	if it.cur == nil {
		return nil, ErrEndIterator
	}
	return &it.cur.value, nil
}

// Equal reports whether both iterators reference the same node. All end
// iterators compare equal.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.cur == other.cur
}
