package queue

import (
	"fmt"
	"iter"

	"github.com/memkit/memkit/mem"
)

// node is the per-element storage unit: one value and a link to its
// successor. Nodes live in resource-served storage and are created and
// destroyed exactly once each, by Push and by Pop or Close.
type node[T any] struct {
	value T
	next  *node[T]
}

// noCopy triggers go vet's copylocks check on types that embed it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Queue is a FIFO container over resource-served nodes.
//
// Invariants: size is 0 exactly when head and tail are both nil; otherwise
// walking next links from head visits exactly size nodes, the last of which
// is tail, and tail.next is always nil.
//
// A Queue must not be copied after first use.
type Queue[T any] struct {
	noCopy noCopy

	head  *node[T]
	tail  *node[T]
	size  int
	alloc mem.Handle[node[T]]
}

// New returns an empty queue bound to r for its entire lifetime.
// A nil r binds the process-wide default resource.
func New[T any](r mem.Resource) *Queue[T] {
	return &Queue[T]{alloc: mem.NewHandle[node[T]](r)}
}

// Push appends v to the tail of the queue. The node is fully constructed
// before it is spliced into the chain, so a failed allocation leaves the
// queue unchanged.
func (q *Queue[T]) Push(v T) error {
	n, err := q.alloc.New()
	if err != nil {
		return fmt.Errorf("queue: push: %w", err)
	}
	n.value = v
	n.next = nil

	if q.tail == nil {
		q.head = n
		q.tail = n
	} else {
		q.tail.next = n
		q.tail = n
	}
	q.size++
	return nil
}

// Pop detaches and destroys the head element. On an empty queue it reports
// ErrEmpty and leaves the queue untouched.
func (q *Queue[T]) Pop() error {
	if q.head == nil {
		return ErrEmpty
	}
	n := q.head
	q.head = n.next
	if q.head == nil {
		q.tail = nil
	}
	q.size--
	q.alloc.Free(n)
	return nil
}

// Front returns a copy of the head element without removing it.
func (q *Queue[T]) Front() (T, error) {
	if q.head == nil {
		var zero T
		return zero, ErrEmpty
	}
	return q.head.value, nil
}

// FrontRef returns writable access to the head element in place.
func (q *Queue[T]) FrontRef() (*T, error) {
	if q.head == nil {
		return nil, ErrEmpty
	}
	return &q.head.value, nil
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return q.size
}

// Empty reports whether the queue has no elements.
func (q *Queue[T]) Empty() bool {
	return q.head == nil
}

// Begin returns an iterator positioned at the head, or one equal to End on
// an empty queue. Repeated calls reflect the queue state at call time.
func (q *Queue[T]) Begin() Iterator[T] {
	return Iterator[T]{cur: q.head}
}

// End returns the sentinel past-the-last iterator.
func (q *Queue[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// All returns an iterator over the elements currently in the queue, in
// insertion order, for use with range.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := q.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Resource returns the resource the queue was bound to at construction.
func (q *Queue[T]) Resource() mem.Resource {
	return q.alloc.Resource()
}

// Close destroys every remaining element, returning each node's storage
// through the handle one node at a time. The walk is iterative so arbitrarily
// long chains terminate without deep recursion. Close is idempotent and
// leaves an empty queue still bound to its resource.
func (q *Queue[T]) Close() error {
	for q.head != nil {
		n := q.head
		q.head = n.next
		q.alloc.Free(n)
	}
	q.tail = nil
	q.size = 0
	return nil
}
