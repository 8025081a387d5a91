package resources

import (
	"github.com/spaghettifunk/scena/engine/core"
	"github.com/spaghettifunk/scena/engine/gpu"
)

// Resource is data on the GPU that doesn't change frequently and is
// referenced by the elements and instances in the scene.
type Resource interface {
	DebugInfo() core.DebugInfo
}

// Receiver is the capability a backend exposes to take delivery of resource
// events. The backend must keep draining the channel for as long as
// producers exist: sends block when the buffer is full, and a send after the
// receiver terminated panics.
type Receiver interface {
	ResourceEvents() chan<- Event
}

// Backend is the slice of a backend the resource tier depends on.
type Backend interface {
	Receiver
	GpuAllocators() *gpu.Provider
}
