// Package queue provides a FIFO adapter over the doubly linked list
// with an optional capacity bound.
package queue

import (
	"iter"
	"slices"

	"github.com/dagropp/go-dast/errors"
	"github.com/dagropp/go-dast/linkedlist"
)

// Queue is a first-in-first-out container. New values enter at the head
// of the backing list and leave from the tail, so the tail is always
// the oldest value. A bounded queue silently evicts on overflow rather
// than failing: admitting a value into a full queue first dequeues the
// far end.
type Queue[T any] struct {
	list     *linkedlist.List[T]
	capacity int // 0 means unbounded
}

// New creates an unbounded queue. The items are enqueued in argument
// order, so the first one is dequeued first.
func New[T any](items ...T) *Queue[T] {
	queue := &Queue[T]{list: linkedlist.New[T]()}
	queue.Enqueue(items...)

	return queue
}

// NewBounded creates a queue holding at most capacity elements. A
// capacity below 1 means unbounded.
func NewBounded[T any](capacity int, items ...T) *Queue[T] {
	queue := &Queue[T]{list: linkedlist.New[T](), capacity: max(capacity, 0)}
	queue.Enqueue(items...)

	return queue
}

// Enqueue admits items, in argument order, and returns the new size.
// On a full bounded queue each admission first dequeues the oldest
// value; no error is raised.
func (q *Queue[T]) Enqueue(items ...T) int {
	for _, item := range items {
		if q.capacity > 0 && q.list.Len() == q.capacity {
			q.list.Pop()
		}

		q.list.Unshift(item)
	}

	return q.list.Len()
}

// Dequeue removes and returns the oldest value. The second result is
// false when the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	return q.list.Pop()
}

// Peek returns the oldest value without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	return q.list.Tail()
}

// Size returns the number of values in the queue.
func (q *Queue[T]) Size() int {
	return q.list.Len()
}

// Capacity returns the capacity bound, 0 when unbounded.
func (q *Queue[T]) Capacity() int {
	return q.capacity
}

// SetCapacity replaces the capacity bound. Fails with a
// CapacityViolation when the new bound is below the current size;
// 0 removes the bound.
func (q *Queue[T]) SetCapacity(capacity int) error {
	if capacity > 0 && capacity < q.list.Len() {
		return &errors.CapacityViolation{Capacity: capacity, Size: q.list.Len()}
	}

	q.capacity = max(capacity, 0)

	return nil
}

// Clear removes all values from the queue.
func (q *Queue[T]) Clear() {
	q.list.Clear()
}

// Values returns the values oldest-first.
func (q *Queue[T]) Values() []T {
	return slices.Collect(q.list.Backward())
}

// Seq iterates the values oldest to newest. The queue must not be
// mutated while iterating.
func (q *Queue[T]) Seq() iter.Seq[T] {
	return q.list.Backward()
}
