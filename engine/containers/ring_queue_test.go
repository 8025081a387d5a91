package containers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingQueueFifoOrder(t *testing.T) {
	rq := NewRingQueue[int](4)

	require.NoError(t, rq.Enqueue(1))
	require.NoError(t, rq.Enqueue(2))
	require.NoError(t, rq.Enqueue(3))
	assert.Equal(t, 3, rq.Len())

	front, err := rq.Peek()
	require.NoError(t, err)
	assert.Equal(t, 1, front)

	for want := 1; want <= 3; want++ {
		got, err := rq.Dequeue()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.True(t, rq.IsEmpty())
}

func TestRingQueueWrapsAround(t *testing.T) {
	rq := NewRingQueue[int](2)

	require.NoError(t, rq.Enqueue(1))
	require.NoError(t, rq.Enqueue(2))
	assert.True(t, rq.IsFull())

	got, err := rq.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	// The freed cell is reused once the write index wraps.
	require.NoError(t, rq.Enqueue(3))
	assert.True(t, rq.IsFull())

	got, err = rq.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 2, got)
	got, err = rq.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestRingQueueFullAndEmptyErrors(t *testing.T) {
	rq := NewRingQueue[int](1)

	_, err := rq.Dequeue()
	assert.Error(t, err)
	_, err = rq.Peek()
	assert.Error(t, err)

	require.NoError(t, rq.Enqueue(1))
	assert.Error(t, rq.Enqueue(2))

	got, err := rq.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}
