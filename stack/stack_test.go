package stack

import (
	"testing"

	"github.com/dagropp/go-dast/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLIFO(t *testing.T) {
	t.Parallel()

	stack := New[int]()

	assert.Equal(t, 3, stack.Push(1, 2, 3))

	top, ok := stack.Peek()
	require.True(t, ok)
	assert.Equal(t, 3, top)

	value, ok := stack.Pop()
	require.True(t, ok)
	assert.Equal(t, 3, value)

	value, ok = stack.Pop()
	require.True(t, ok)
	assert.Equal(t, 2, value)

	assert.Equal(t, 1, stack.Size())
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	stack := New[string]()

	_, ok := stack.Pop()
	assert.False(t, ok)

	_, ok = stack.Peek()
	assert.False(t, ok)

	assert.Equal(t, 0, stack.Size())
}

func TestBounded(t *testing.T) {
	t.Parallel()

	t.Run("overflow evicts the top instead of failing", func(t *testing.T) {
		t.Parallel()

		stack := NewBounded[int](2)

		stack.Push(1)
		stack.Push(2)
		stack.Push(3)

		assert.Equal(t, 2, stack.Size())
		assert.Equal(t, []int{3, 1}, stack.Values())
	})

	t.Run("capacity below 1 means unbounded", func(t *testing.T) {
		t.Parallel()

		stack := NewBounded[int](-1, 1, 2, 3)

		assert.Equal(t, 0, stack.Capacity())
		assert.Equal(t, 3, stack.Size())
	})
}

func TestSetCapacity(t *testing.T) {
	t.Parallel()

	t.Run("lowering below current size fails", func(t *testing.T) {
		t.Parallel()

		stack := New(1, 2, 3)

		err := stack.SetCapacity(2)
		require.ErrorIs(t, err, errors.ErrCapacityViolation)

		var violation *errors.CapacityViolation
		require.ErrorAs(t, err, &violation)
		assert.Equal(t, 2, violation.Capacity)
		assert.Equal(t, 3, violation.Size)

		// The failed call left the stack untouched.
		assert.Equal(t, 0, stack.Capacity())
		assert.Equal(t, 3, stack.Size())
	})

	t.Run("raising and removing the bound", func(t *testing.T) {
		t.Parallel()

		stack := NewBounded(2, "a", "b")

		require.NoError(t, stack.SetCapacity(5))
		assert.Equal(t, 5, stack.Capacity())

		require.NoError(t, stack.SetCapacity(0))
		assert.Equal(t, 0, stack.Capacity())
	})
}

func TestValuesAndSeq(t *testing.T) {
	t.Parallel()

	stack := New(1, 2, 3)

	assert.Equal(t, []int{3, 2, 1}, stack.Values())

	var seen []int
	for v := range stack.Seq() {
		seen = append(seen, v)
	}

	assert.Equal(t, []int{3, 2, 1}, seen)
}

func TestClear(t *testing.T) {
	t.Parallel()

	stack := New(1, 2)
	stack.Clear()

	assert.Equal(t, 0, stack.Size())

	stack.Push(3)

	top, ok := stack.Peek()
	require.True(t, ok)
	assert.Equal(t, 3, top)
}
