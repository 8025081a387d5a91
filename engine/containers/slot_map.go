package containers

import "fmt"

// Handle identifies a value stored in a SlotMap. Handles are small,
// comparable and typed, so a handle for one value type cannot address a
// container of another type. The zero Handle addresses the first slot.
type Handle[T any] struct {
	index uint32
}

// NewHandle creates a handle for the given slot index. Callers normally
// receive handles from Insert or InsertWith instead of building them.
func NewHandle[T any](index uint32) Handle[T] {
	return Handle[T]{index: index}
}

// Index returns the slot index the handle addresses.
func (h Handle[T]) Index() uint32 {
	return h.index
}

func (h Handle[T]) String() string {
	return fmt.Sprintf("Handle(%d)", h.index)
}

// SlotMap stores values of one type in a growable array and addresses them
// with typed handles. Freed slots go onto a free list and are reused in FIFO
// order. Handles carry no generation tag: a handle kept across a Remove
// aliases whatever value occupies the slot next, so code that removes values
// must not hold on to old handles. A SlotMap is not safe for concurrent use;
// callers serialize access at a coarser level.
type SlotMap[T any] struct {
	data     []T
	live     []bool
	freeList []uint32
}

// Create a new SlotMap
func NewSlotMap[T any]() *SlotMap[T] {
	return &SlotMap[T]{}
}

// Insert stores a value and returns the handle that addresses it.
func (sm *SlotMap[T]) Insert(value T) Handle[T] {
	handle, _ := sm.InsertWith(func(Handle[T]) (T, error) {
		return value, nil
	})
	return handle
}

// InsertWith picks the slot a new value would occupy, hands the matching
// handle to build and commits the result only when build succeeds. The handle
// passed to build is final: after InsertWith returns it addresses the built
// value. When build fails, the error is returned unchanged and the container
// is left exactly as it was, free list and slot count included.
func (sm *SlotMap[T]) InsertWith(build func(handle Handle[T]) (T, error)) (Handle[T], error) {
	if len(sm.freeList) > 0 {
		index := sm.freeList[0]
		value, err := build(Handle[T]{index: index})
		if err != nil {
			return Handle[T]{}, err
		}
		sm.freeList = sm.freeList[1:]
		sm.data[index] = value
		sm.live[index] = true
		return Handle[T]{index: index}, nil
	}

	index := uint32(len(sm.data))
	value, err := build(Handle[T]{index: index})
	if err != nil {
		return Handle[T]{}, err
	}
	sm.data = append(sm.data, value)
	sm.live = append(sm.live, true)
	return Handle[T]{index: index}, nil
}

// Get returns a copy of the value the handle addresses.
func (sm *SlotMap[T]) Get(handle Handle[T]) (T, bool) {
	if value := sm.At(handle); value != nil {
		return *value, true
	}
	var zero T
	return zero, false
}

// At returns a pointer to the value the handle addresses for in-place
// mutation. It returns nil when the slot is out of range or not occupied,
// never panics.
func (sm *SlotMap[T]) At(handle Handle[T]) *T {
	index := int(handle.index)
	if index >= len(sm.data) || !sm.live[index] {
		return nil
	}
	return &sm.data[index]
}

// Remove frees the slot the handle addresses and returns its value. The slot
// goes to the back of the free list and a later insert will hand it out
// again.
func (sm *SlotMap[T]) Remove(handle Handle[T]) (T, bool) {
	var zero T
	index := int(handle.index)
	if index >= len(sm.data) || !sm.live[index] {
		return zero, false
	}
	value := sm.data[index]
	sm.data[index] = zero
	sm.live[index] = false
	sm.freeList = append(sm.freeList, handle.index)
	return value, true
}

// Len returns the number of occupied slots.
func (sm *SlotMap[T]) Len() int {
	return len(sm.data) - len(sm.freeList)
}

// IsEmpty checks if the container holds no values
func (sm *SlotMap[T]) IsEmpty() bool {
	return sm.Len() == 0
}

// FreeCount returns the number of reclaimed slots waiting for reuse.
func (sm *SlotMap[T]) FreeCount() int {
	return len(sm.freeList)
}

// Cap returns the total number of slots the container has grown to.
func (sm *SlotMap[T]) Cap() int {
	return len(sm.data)
}
