// Package queue implements a FIFO queue whose node storage comes entirely
// from a mem.Resource.
//
// # Overview
//
// A Queue owns a singly linked chain of nodes, head in, tail out. Storage for
// every node is obtained through a mem.Handle bound at construction time, so
// the queue works against any resource implementation without knowing its
// concrete type:
//
//	r := mem.NewTracking()
//	defer r.Close()
//
//	q := queue.New[int](r)
//	defer q.Close()
//
//	q.Push(10)
//	q.Push(20)
//	for it := q.Begin(); !it.Equal(q.End()); it.Next() {
//	    v, _ := it.Value()
//	    fmt.Println(v)
//	}
//
// One resource may back any number of queues at once; each queue exclusively
// owns its own chain and no node is ever shared between queues.
//
// # Ownership and lifetime
//
// A Queue is bound to one resource for its entire life and is deliberately
// neither copyable nor movable: copying would alias the node chain. To
// transfer contents, re-insert element by element into a new queue. Close
// releases every remaining node through the handle, one node at a time, and
// must be called before the backing resource is torn down.
//
// Element types must not hold the only reference to a separate Go-heap
// object; see the mem package documentation for the storage contract.
//
// # Errors
//
// Front and Pop on an empty queue report ErrEmpty. Dereferencing the end
// iterator reports ErrEndIterator. Both are usage errors: they leave the
// queue untouched and are distinct from allocation failures, which propagate
// from the resource out of Push.
//
// # Thread safety
//
// Queues and their iterators are not safe for concurrent use. Callers must
// synchronize externally, including across all queues sharing one resource.
package queue
