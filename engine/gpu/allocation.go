package gpu

import "fmt"

// Allocation is an index into the GPU-resident array that holds entities of
// type T. Allocations are typed so that a slot for one entity kind cannot
// address the arrays of another kind.
type Allocation[T any] struct {
	index uint32
}

// NewAllocationUnchecked creates an allocation that was not handed out by an
// allocator. Backends and tests use it to address slots directly.
func NewAllocationUnchecked[T any](index uint32) Allocation[T] {
	return Allocation[T]{index: index}
}

// Index returns the slot in the GPU-resident array.
func (a Allocation[T]) Index() uint32 {
	return a.index
}

func (a Allocation[T]) String() string {
	return fmt.Sprintf("Allocation(%d)", a.index)
}
