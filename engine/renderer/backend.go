package renderer

import (
	"github.com/spaghettifunk/scena/engine/resources"
	"github.com/spaghettifunk/scena/engine/transactions"
)

// Backend is the rendering implementation behind a Renderer. It owns the
// gpu index allocators and the resource event channel, and it applies
// finished transactions between frames.
//
// A conforming backend registers an allocator for every entity kind before
// the Renderer is created and revokes them all in Shutdown; any group that
// tries to allocate afterwards panics.
type Backend interface {
	resources.Backend
	transactions.Processor

	// Shutdown tears the backend down. After it returns the resource event
	// channel is closed and every allocator reference is revoked.
	Shutdown() error
}
