package containers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotMapInsertGet(t *testing.T) {
	sm := NewSlotMap[string]()

	first := sm.Insert("first")
	second := sm.Insert("second")

	assert.Equal(t, uint32(0), first.Index())
	assert.Equal(t, uint32(1), second.Index())
	assert.Equal(t, Handle[string]{}, first, "the first handle is the zero handle")

	value, ok := sm.Get(first)
	require.True(t, ok)
	assert.Equal(t, "first", value)

	value, ok = sm.Get(second)
	require.True(t, ok)
	assert.Equal(t, "second", value)

	assert.Equal(t, 2, sm.Len())
	assert.False(t, sm.IsEmpty())
}

func TestSlotMapGetUnknownHandle(t *testing.T) {
	sm := NewSlotMap[int]()

	_, ok := sm.Get(NewHandle[int](7))
	assert.False(t, ok)
	assert.Nil(t, sm.At(NewHandle[int](7)))
}

func TestSlotMapRemoveReusesSlotsInFifoOrder(t *testing.T) {
	sm := NewSlotMap[int]()

	a := sm.Insert(1)
	b := sm.Insert(2)
	c := sm.Insert(3)

	// Free two slots; they must come back in the order they were freed.
	value, ok := sm.Remove(b)
	require.True(t, ok)
	assert.Equal(t, 2, value)
	_, ok = sm.Remove(a)
	require.True(t, ok)

	assert.Equal(t, 1, sm.Len())
	assert.Equal(t, 2, sm.FreeCount())

	reusedB := sm.Insert(20)
	reusedA := sm.Insert(10)
	assert.Equal(t, b, reusedB)
	assert.Equal(t, a, reusedA)
	assert.Equal(t, 0, sm.FreeCount())

	// The untouched slot still holds its value.
	value, ok = sm.Get(c)
	require.True(t, ok)
	assert.Equal(t, 3, value)
}

func TestSlotMapRemoveUnknownHandle(t *testing.T) {
	sm := NewSlotMap[int]()
	sm.Insert(1)

	_, ok := sm.Remove(NewHandle[int](5))
	assert.False(t, ok)
	assert.Equal(t, 1, sm.Len())
}

func TestSlotMapInsertWithSeesFinalHandle(t *testing.T) {
	sm := NewSlotMap[string]()
	sm.Insert("zero")

	var seen Handle[string]
	handle, err := sm.InsertWith(func(h Handle[string]) (string, error) {
		seen = h
		return "one", nil
	})
	require.NoError(t, err)
	assert.Equal(t, handle, seen, "the builder sees the handle the value ends up under")

	value, ok := sm.Get(handle)
	require.True(t, ok)
	assert.Equal(t, "one", value)
}

func TestSlotMapInsertWithRollsBackOnError(t *testing.T) {
	buildErr := errors.New("build failed")

	t.Run("FreshSlot", func(t *testing.T) {
		sm := NewSlotMap[int]()
		sm.Insert(1)

		_, err := sm.InsertWith(func(Handle[int]) (int, error) {
			return 0, buildErr
		})
		assert.ErrorIs(t, err, buildErr)
		assert.Equal(t, 1, sm.Len())
		assert.Equal(t, 1, sm.Cap(), "no slot was created for the failed insert")

		// The slot the failed insert would have used goes to the next value.
		handle := sm.Insert(2)
		assert.Equal(t, uint32(1), handle.Index())
	})

	t.Run("FreeListSlot", func(t *testing.T) {
		sm := NewSlotMap[int]()
		a := sm.Insert(1)
		sm.Insert(2)
		sm.Remove(a)

		_, err := sm.InsertWith(func(Handle[int]) (int, error) {
			return 0, buildErr
		})
		assert.ErrorIs(t, err, buildErr)
		assert.Equal(t, 1, sm.FreeCount(), "the free list slot stays reclaimable")

		handle := sm.Insert(3)
		assert.Equal(t, a, handle, "the freed slot is reused after the failed insert")
	})
}
