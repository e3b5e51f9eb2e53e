// Package stack provides a LIFO adapter over the doubly linked list
// with an optional capacity bound.
package stack

import (
	"iter"
	"slices"

	"github.com/dagropp/go-dast/errors"
	"github.com/dagropp/go-dast/linkedlist"
)

// Stack is a last-in-first-out container. The top of the stack is the
// tail of the backing list. A bounded stack silently evicts on
// overflow rather than failing: pushing onto a full stack pops the
// current top before admitting the new value.
type Stack[T any] struct {
	list     *linkedlist.List[T]
	capacity int // 0 means unbounded
}

// New creates an unbounded stack. The items are pushed in argument
// order, so the last one ends up on top.
func New[T any](items ...T) *Stack[T] {
	stack := &Stack[T]{list: linkedlist.New[T]()}
	stack.Push(items...)

	return stack
}

// NewBounded creates a stack holding at most capacity elements. A
// capacity below 1 means unbounded.
func NewBounded[T any](capacity int, items ...T) *Stack[T] {
	stack := &Stack[T]{list: linkedlist.New[T](), capacity: max(capacity, 0)}
	stack.Push(items...)

	return stack
}

// Push places items on top of the stack, in argument order, and returns
// the new size. On a full bounded stack each push first pops the
// current top; no error is raised.
func (s *Stack[T]) Push(items ...T) int {
	for _, item := range items {
		if s.capacity > 0 && s.list.Len() == s.capacity {
			s.list.Pop()
		}

		s.list.Push(item)
	}

	return s.list.Len()
}

// Pop removes and returns the top value. The second result is false
// when the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	return s.list.Pop()
}

// Peek returns the top value without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	return s.list.Tail()
}

// Size returns the number of values on the stack.
func (s *Stack[T]) Size() int {
	return s.list.Len()
}

// Capacity returns the capacity bound, 0 when unbounded.
func (s *Stack[T]) Capacity() int {
	return s.capacity
}

// SetCapacity replaces the capacity bound. Fails with a
// CapacityViolation when the new bound is below the current size;
// 0 removes the bound.
func (s *Stack[T]) SetCapacity(capacity int) error {
	if capacity > 0 && capacity < s.list.Len() {
		return &errors.CapacityViolation{Capacity: capacity, Size: s.list.Len()}
	}

	s.capacity = max(capacity, 0)

	return nil
}

// Clear removes all values from the stack.
func (s *Stack[T]) Clear() {
	s.list.Clear()
}

// Values returns the values top-first.
func (s *Stack[T]) Values() []T {
	return slices.Collect(s.list.Backward())
}

// Seq iterates the values top to bottom. The stack must not be mutated
// while iterating.
func (s *Stack[T]) Seq() iter.Seq[T] {
	return s.list.Backward()
}
