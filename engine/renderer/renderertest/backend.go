package renderertest

import (
	"sync"

	"github.com/spaghettifunk/scena/engine/config"
	"github.com/spaghettifunk/scena/engine/elements"
	"github.com/spaghettifunk/scena/engine/gpu"
	"github.com/spaghettifunk/scena/engine/instances"
	"github.com/spaghettifunk/scena/engine/renderer"
	"github.com/spaghettifunk/scena/engine/resources"
	"github.com/spaghettifunk/scena/engine/transactions"
)

var _ renderer.Backend = (*Backend)(nil)

// Backend is an in-memory backend that records everything it is handed. The
// group tests run against it instead of a real rendering implementation.
type Backend struct {
	provider       *gpu.Provider
	resourceEvents chan resources.Event

	mu              sync.Mutex
	receivedEvents  []resources.Event
	processedEvents []transactions.Event

	drained  chan struct{}
	shutdown sync.Once
}

// SmallConfig returns a configuration with tiny capacities so that tests can
// exhaust allocators quickly.
func SmallConfig() *config.Config {
	cfg := config.Default()
	cfg.MaxCameraCount = 4
	cfg.MaxCameraInstanceCount = 4
	cfg.MaxMeshAttributesCount = 4
	cfg.MaxPointCloudAttributesCount = 4
	cfg.MaxInanimateMeshCount = 4
	cfg.MaxRigidMeshCount = 4
	cfg.MaxPointCloudCount = 4
	cfg.MaxRigidMeshInstanceCount = 4
	cfg.MaxPointCloudInstanceCount = 4
	cfg.ResourceEventQueueSize = 16
	return cfg
}

// Create a new recording Backend with one allocator per entity kind, sized
// by the given config
func NewBackend(cfg *config.Config) *Backend {
	if cfg == nil {
		cfg = SmallConfig()
	}
	provider := gpu.NewProvider()
	gpu.Register(provider, gpu.NewIndexAllocator[resources.MeshAttributes](cfg.MaxMeshAttributesCount))
	gpu.Register(provider, gpu.NewIndexAllocator[resources.PointCloudAttributes](cfg.MaxPointCloudAttributesCount))
	gpu.Register(provider, gpu.NewIndexAllocator[elements.Camera](cfg.MaxCameraCount))
	gpu.Register(provider, gpu.NewIndexAllocator[elements.RigidMesh](cfg.MaxRigidMeshCount))
	gpu.Register(provider, gpu.NewIndexAllocator[elements.PointCloud](cfg.MaxPointCloudCount))
	gpu.Register(provider, gpu.NewIndexAllocator[instances.CameraInstance](cfg.MaxCameraInstanceCount))
	gpu.Register(provider, gpu.NewIndexAllocator[instances.RigidMeshInstance](cfg.MaxRigidMeshInstanceCount))
	gpu.Register(provider, gpu.NewIndexAllocator[instances.PointCloudInstance](cfg.MaxPointCloudInstanceCount))

	backend := &Backend{
		provider:       provider,
		resourceEvents: make(chan resources.Event, cfg.ResourceEventQueueSize),
		drained:        make(chan struct{}),
	}
	go backend.drain()
	return backend
}

func (b *Backend) drain() {
	defer close(b.drained)
	for event := range b.resourceEvents {
		b.mu.Lock()
		b.receivedEvents = append(b.receivedEvents, event)
		b.mu.Unlock()
	}
}

// ResourceEvents returns the channel the resource groups send their events
// over.
func (b *Backend) ResourceEvents() chan<- resources.Event {
	return b.resourceEvents
}

// GpuAllocators returns the allocators of the backend.
func (b *Backend) GpuAllocators() *gpu.Provider {
	return b.provider
}

// Process drains the transaction and records its events in order.
func (b *Backend) Process(transaction *transactions.Transaction) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.processedEvents = append(b.processedEvents, transaction.Process()...)
}

// ReceivedResourceEvents returns a snapshot of the resource events consumed
// so far. Call Shutdown first for a complete view.
func (b *Backend) ReceivedResourceEvents() []resources.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	events := make([]resources.Event, len(b.receivedEvents))
	copy(events, b.receivedEvents)
	return events
}

// ProcessedEvents returns a snapshot of the transaction events applied so
// far.
func (b *Backend) ProcessedEvents() []transactions.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	events := make([]transactions.Event, len(b.processedEvents))
	copy(events, b.processedEvents)
	return events
}

// Shutdown revokes every allocator, closes the resource event channel and
// waits until the last queued event is recorded. Sending resource events
// afterwards panics, which is the documented contract for producing into a
// terminated backend.
func (b *Backend) Shutdown() error {
	b.shutdown.Do(func() {
		b.provider.RevokeAll()
		close(b.resourceEvents)
		<-b.drained
	})
	return nil
}
