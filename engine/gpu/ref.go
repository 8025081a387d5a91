package gpu

import "sync"

// Ref is a non-owning reference to a backend's allocator. The entity groups
// hold a Ref instead of the allocator itself so that the backend stays the
// only owner: when the backend shuts down it revokes the refs it handed out
// and later upgrades fail. Copies of a Ref share the same revocation state.
type Ref[T any] struct {
	state *refState[T]
}

type refState[T any] struct {
	mu        sync.RWMutex
	allocator Allocator[T]
}

// NewRef creates a reference to the given allocator.
func NewRef[T any](allocator Allocator[T]) Ref[T] {
	return Ref[T]{state: &refState[T]{allocator: allocator}}
}

// Upgrade returns the allocator behind the reference. It returns false when
// the reference was revoked or is the zero Ref.
func (r Ref[T]) Upgrade() (Allocator[T], bool) {
	if r.state == nil {
		return nil, false
	}
	r.state.mu.RLock()
	defer r.state.mu.RUnlock()
	if r.state.allocator == nil {
		return nil, false
	}
	return r.state.allocator, true
}

// Revoke severs the reference and every copy of it from the allocator. The
// owner of the allocator calls this when the allocator goes away.
func (r Ref[T]) Revoke() {
	if r.state == nil {
		return
	}
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	r.state.allocator = nil
}
