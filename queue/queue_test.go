package queue

import (
	"testing"

	"github.com/dagropp/go-dast/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFIFO(t *testing.T) {
	t.Parallel()

	queue := New[int]()

	assert.Equal(t, 3, queue.Enqueue(1, 2, 3))

	oldest, ok := queue.Peek()
	require.True(t, ok)
	assert.Equal(t, 1, oldest)

	value, ok := queue.Dequeue()
	require.True(t, ok)
	assert.Equal(t, 1, value)

	value, ok = queue.Dequeue()
	require.True(t, ok)
	assert.Equal(t, 2, value)

	assert.Equal(t, 1, queue.Size())
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	queue := New[string]()

	_, ok := queue.Dequeue()
	assert.False(t, ok)

	_, ok = queue.Peek()
	assert.False(t, ok)

	assert.Equal(t, 0, queue.Size())
}

func TestBounded(t *testing.T) {
	t.Parallel()

	t.Run("overflow evicts the oldest instead of failing", func(t *testing.T) {
		t.Parallel()

		queue := NewBounded[int](2)

		queue.Enqueue(1)
		queue.Enqueue(2)
		queue.Enqueue(3)

		assert.Equal(t, 2, queue.Size())
		assert.Equal(t, []int{2, 3}, queue.Values())

		value, ok := queue.Dequeue()
		require.True(t, ok)
		assert.Equal(t, 2, value)
	})

	t.Run("capacity below 1 means unbounded", func(t *testing.T) {
		t.Parallel()

		queue := NewBounded[int](0, 1, 2, 3)

		assert.Equal(t, 0, queue.Capacity())
		assert.Equal(t, 3, queue.Size())
	})
}

func TestSetCapacity(t *testing.T) {
	t.Parallel()

	t.Run("lowering below current size fails", func(t *testing.T) {
		t.Parallel()

		queue := New(1, 2, 3)

		err := queue.SetCapacity(1)
		require.ErrorIs(t, err, errors.ErrCapacityViolation)

		var violation *errors.CapacityViolation
		require.ErrorAs(t, err, &violation)
		assert.Equal(t, 1, violation.Capacity)
		assert.Equal(t, 3, violation.Size)

		assert.Equal(t, 0, queue.Capacity())
		assert.Equal(t, 3, queue.Size())
	})

	t.Run("new bound takes effect on admission", func(t *testing.T) {
		t.Parallel()

		queue := New("a", "b")

		require.NoError(t, queue.SetCapacity(2))

		queue.Enqueue("c")

		assert.Equal(t, []string{"b", "c"}, queue.Values())
	})
}

func TestValuesAndSeq(t *testing.T) {
	t.Parallel()

	queue := New(1, 2, 3)

	assert.Equal(t, []int{1, 2, 3}, queue.Values())

	var seen []int
	for v := range queue.Seq() {
		seen = append(seen, v)
	}

	assert.Equal(t, []int{1, 2, 3}, seen)
}

func TestClear(t *testing.T) {
	t.Parallel()

	queue := New(1, 2)
	queue.Clear()

	assert.Equal(t, 0, queue.Size())

	queue.Enqueue(3)

	oldest, ok := queue.Peek()
	require.True(t, ok)
	assert.Equal(t, 3, oldest)
}
