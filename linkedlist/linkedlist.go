// Package linkedlist implements a doubly linked list with O(1)
// insertion and removal at both ends and O(n) indexed access. It is the
// backing structure for the stack and queue adapters.
package linkedlist

import (
	"iter"

	"github.com/dagropp/go-dast/zero"
)

// node is a link in the chain. A node is exclusively owned by the list
// holding it through the head/tail chain; prev and next exist only for
// traversal.
type node[T any] struct {
	value T
	prev  *node[T]
	next  *node[T]
}

// List is a doubly linked chain with head, tail and size. It is not
// safe for concurrent use; callers needing thread safety must add
// external synchronization.
type List[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

// New creates a list holding the given values in order.
func New[T any](values ...T) *List[T] {
	list := &List[T]{}
	list.Push(values...)

	return list
}

// Len returns the number of values in the list.
func (l *List[T]) Len() int {
	return l.size
}

// Push appends values at the tail and returns the new length.
func (l *List[T]) Push(values ...T) int {
	for _, value := range values {
		link := &node[T]{value: value, prev: l.tail}

		if l.tail == nil {
			l.head = link
		} else {
			l.tail.next = link
		}

		l.tail = link
		l.size++
	}

	return l.size
}

// Unshift prepends values at the head, preserving their argument order,
// and returns the new length.
func (l *List[T]) Unshift(values ...T) int {
	for i := len(values) - 1; i >= 0; i-- {
		link := &node[T]{value: values[i], next: l.head}

		if l.head == nil {
			l.tail = link
		} else {
			l.head.prev = link
		}

		l.head = link
		l.size++
	}

	return l.size
}

// Pop removes and returns the tail value. The second result is false
// when the list is empty.
func (l *List[T]) Pop() (T, bool) {
	if l.tail == nil {
		return zero.Value[T](), false
	}

	link := l.tail
	l.tail = link.prev

	if l.tail == nil {
		l.head = nil
	} else {
		l.tail.next = nil
	}

	l.size--

	return link.value, true
}

// Shift removes and returns the head value. The second result is false
// when the list is empty.
func (l *List[T]) Shift() (T, bool) {
	if l.head == nil {
		return zero.Value[T](), false
	}

	link := l.head
	l.head = link.next

	if l.head == nil {
		l.tail = nil
	} else {
		l.head.prev = nil
	}

	l.size--

	return link.value, true
}

// Head returns the head value without removing it.
func (l *List[T]) Head() (T, bool) {
	if l.head == nil {
		return zero.Value[T](), false
	}

	return l.head.value, true
}

// Tail returns the tail value without removing it.
func (l *List[T]) Tail() (T, bool) {
	if l.tail == nil {
		return zero.Value[T](), false
	}

	return l.tail.value, true
}

// Get returns the value at the given index, walking from the head.
// The second result is false when the index is out of range.
func (l *List[T]) Get(index int) (T, bool) {
	link := l.at(index)
	if link == nil {
		return zero.Value[T](), false
	}

	return link.value, true
}

// Set replaces the value at the given index. Returns false when the
// index is out of range.
func (l *List[T]) Set(index int, value T) bool {
	link := l.at(index)
	if link == nil {
		return false
	}

	link.value = value

	return true
}

// Remove unlinks the node at the given index and returns its value.
// Removal patches the neighboring links and decrements the size;
// removing the sole node clears both head and tail.
func (l *List[T]) Remove(index int) (T, bool) {
	link := l.at(index)
	if link == nil {
		return zero.Value[T](), false
	}

	if link.prev == nil {
		l.head = link.next
	} else {
		link.prev.next = link.next
	}

	if link.next == nil {
		l.tail = link.prev
	} else {
		link.next.prev = link.prev
	}

	l.size--

	return link.value, true
}

// Clear removes all values from the list.
func (l *List[T]) Clear() {
	l.head = nil
	l.tail = nil
	l.size = 0
}

// Sort orders the values in place using bubble passes that exchange
// values between adjacent nodes until a full pass makes no swap. Node
// identities and links are untouched. O(n²): this structure targets
// insertion-efficiency use cases, not bulk sorting.
func (l *List[T]) Sort(cmp func(a, b T) int) {
	if l.size < 2 {
		return
	}

	for swapped := true; swapped; {
		swapped = false

		for link := l.head; link.next != nil; link = link.next {
			if cmp(link.value, link.next.value) > 0 {
				link.value, link.next.value = link.next.value, link.value
				swapped = true
			}
		}
	}
}

// Values returns all values as a slice, head to tail.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.size)

	for link := l.head; link != nil; link = link.next {
		values = append(values, link.value)
	}

	return values
}

// Seq iterates the values head to tail. The list must not be mutated
// while iterating.
func (l *List[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for link := l.head; link != nil; link = link.next {
			if !yield(link.value) {
				return
			}
		}
	}
}

// Backward iterates the values tail to head. The list must not be
// mutated while iterating.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for link := l.tail; link != nil; link = link.prev {
			if !yield(link.value) {
				return
			}
		}
	}
}

// Entries iterates index/value pairs head to tail. The list must not be
// mutated while iterating.
func (l *List[T]) Entries() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := 0

		for link := l.head; link != nil; link = link.next {
			if !yield(index, link.value) {
				return
			}

			index++
		}
	}
}

func (l *List[T]) at(index int) *node[T] {
	if index < 0 || index >= l.size {
		return nil
	}

	link := l.head
	for ; index > 0; index-- {
		link = link.next
	}

	return link
}
