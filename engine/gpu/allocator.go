package gpu

import (
	"sync"

	"github.com/spaghettifunk/scena/engine/containers"
)

// Allocator hands out GPU array slots for entities of type T. A backend
// exposes one allocator per entity kind it supports. Implementations must be
// safe for concurrent use: slots are allocated from editing goroutines while
// the backend reads allocator state.
type Allocator[T any] interface {
	// Allocate returns the next free slot, or false when the capacity is
	// exhausted.
	Allocate() (Allocation[T], bool)
	// Free returns a slot for reuse. Freeing a slot that is still in use or
	// freeing it twice corrupts the slot bookkeeping; callers own that
	// invariant.
	Free(allocation Allocation[T])
}

var _ Allocator[int] = (*IndexAllocator[int])(nil)

// IndexAllocator allocates slots from a fixed-capacity range. Freed slots are
// recycled in FIFO order, fresh slots are handed out in ascending order. The
// capacity matches the length of the GPU-resident array the slots index, so
// running out of slots is a hard condition the caller must surface.
type IndexAllocator[T any] struct {
	mu        sync.Mutex
	freed     *containers.RingQueue[uint32]
	nextIndex uint32
	capacity  uint32
}

// Create a new IndexAllocator with the given number of slots
func NewIndexAllocator[T any](capacity uint32) *IndexAllocator[T] {
	return &IndexAllocator[T]{
		freed:    containers.NewRingQueue[uint32](int(capacity)),
		capacity: capacity,
	}
}

// Allocate returns the slot at the front of the free queue, or the next fresh
// slot when nothing was freed yet. It returns false when every slot is taken.
func (ia *IndexAllocator[T]) Allocate() (Allocation[T], bool) {
	ia.mu.Lock()
	defer ia.mu.Unlock()

	if index, err := ia.freed.Dequeue(); err == nil {
		return Allocation[T]{index: index}, true
	}
	if ia.nextIndex >= ia.capacity {
		return Allocation[T]{}, false
	}
	index := ia.nextIndex
	ia.nextIndex++
	return Allocation[T]{index: index}, true
}

// Free pushes the slot onto the back of the free queue.
func (ia *IndexAllocator[T]) Free(allocation Allocation[T]) {
	ia.mu.Lock()
	defer ia.mu.Unlock()
	// The queue holds the whole capacity, so it can only overflow when a
	// slot is freed twice.
	if err := ia.freed.Enqueue(allocation.index); err != nil {
		panic("gpu: more slots freed than allocated")
	}
}

// Len returns the number of slots currently allocated.
func (ia *IndexAllocator[T]) Len() int {
	ia.mu.Lock()
	defer ia.mu.Unlock()
	return int(ia.nextIndex) - ia.freed.Len()
}

// IsEmpty checks if no slots are allocated
func (ia *IndexAllocator[T]) IsEmpty() bool {
	return ia.Len() == 0
}

// Cap returns the total number of slots.
func (ia *IndexAllocator[T]) Cap() uint32 {
	return ia.capacity
}
