package queue

import "errors"

var (
	// ErrEmpty indicates Front or Pop was called on a queue with no elements.
	ErrEmpty = errors.New("queue: empty queue")

	// ErrEndIterator indicates a dereference of the end position.
	ErrEndIterator = errors.New("queue: dereference of end iterator")
)
