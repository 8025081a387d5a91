package gpu

import (
	"fmt"
	"reflect"
	"sync"
)

// Provider holds the per-entity-kind allocators of a backend and hands out
// revocable references to them. Group constructors query it for the
// allocator matching their entity type.
type Provider struct {
	mu   sync.Mutex
	refs map[reflect.Type]any
}

// Create a new empty Provider
func NewProvider() *Provider {
	return &Provider{refs: make(map[reflect.Type]any)}
}

// Register adds the allocator for entity type T. Registering a type twice is
// a backend configuration error and panics.
func Register[T any](provider *Provider, allocator Allocator[T]) {
	key := reflect.TypeOf((*T)(nil)).Elem()

	provider.mu.Lock()
	defer provider.mu.Unlock()
	if _, ok := provider.refs[key]; ok {
		panic(fmt.Sprintf("gpu: allocator for %s is already registered", key))
	}
	provider.refs[key] = NewRef(allocator)
}

// RefOf returns a revocable reference to the allocator registered for entity
// type T. Asking for a type the backend never registered is a configuration
// error and panics.
func RefOf[T any](provider *Provider) Ref[T] {
	key := reflect.TypeOf((*T)(nil)).Elem()

	provider.mu.Lock()
	defer provider.mu.Unlock()
	ref, ok := provider.refs[key]
	if !ok {
		panic(fmt.Sprintf("gpu: no allocator registered for %s", key))
	}
	return ref.(Ref[T])
}

// RevokeAll severs every reference the provider handed out. Slots that are
// already allocated stay valid; only new allocations are cut off.
func (p *Provider) RevokeAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, ref := range p.refs {
		ref.(interface{ Revoke() }).Revoke()
	}
}
