package testbed

import (
	"sync"

	"github.com/spaghettifunk/scena/engine/config"
	"github.com/spaghettifunk/scena/engine/containers"
	"github.com/spaghettifunk/scena/engine/core"
	"github.com/spaghettifunk/scena/engine/elements"
	"github.com/spaghettifunk/scena/engine/gpu"
	"github.com/spaghettifunk/scena/engine/instances"
	"github.com/spaghettifunk/scena/engine/math"
	"github.com/spaghettifunk/scena/engine/renderer"
	"github.com/spaghettifunk/scena/engine/resources"
	"github.com/spaghettifunk/scena/engine/transactions"
)

var _ renderer.Backend = (*SoftwareBackend)(nil)

// CameraSlot is the per-camera data a backend keeps in its camera array.
type CameraSlot struct {
	Projection math.Mat4
	Near       float32
	Far        float32
}

// CameraInstanceSlot points a view matrix at a camera slot.
type CameraInstanceSlot struct {
	CameraIndex uint32
	View        math.Mat4
}

// RigidMeshSlot points at the mesh attributes slot holding the geometry.
type RigidMeshSlot struct {
	AttributesIndex uint32
	Representation  elements.MeshRepresentation
}

// RigidMeshInstanceSlot places a rigid mesh slot in the world.
type RigidMeshInstanceSlot struct {
	MeshIndex uint32
	Transform math.Mat4
}

// PointCloudSlot points at the point cloud attributes slot holding the
// points.
type PointCloudSlot struct {
	AttributesIndex uint32
	Representation  elements.PointCloudRepresentation
}

// PointCloudInstanceSlot places a point cloud slot in the world.
type PointCloudInstanceSlot struct {
	CloudIndex uint32
	Transform  math.Mat4
}

// FrameState is the backend-side mirror of the scene: one fixed-capacity
// array per entity kind, addressed by the gpu slots the allocators hand out.
// A real backend would keep these arrays in GPU buffers; the testbed keeps
// them on the heap so the demo can run anywhere.
type FrameState struct {
	Cameras             []CameraSlot
	CameraInstances     []CameraInstanceSlot
	RigidMeshes         []RigidMeshSlot
	RigidMeshInstances  []RigidMeshInstanceSlot
	PointClouds         []PointCloudSlot
	PointCloudInstances []PointCloudInstanceSlot

	// Shared attribute payloads by gpu slot.
	MeshAttributes       []*resources.MeshAttributes
	PointCloudAttributes []*resources.PointCloudAttributes

	// Inanimate meshes carry no gpu slot and are tracked by handle.
	InanimateMeshes map[containers.Handle[*resources.InanimateMesh]]InanimateMeshData

	// Counts of what was applied, for the frame log line.
	FramesStarted      int
	LiveRigidInstances int
	LiveCloudInstances int
	LiveCameraViews    int
}

// InanimateMeshData is the uploaded vertex data of one inanimate mesh.
type InanimateMeshData struct {
	VertexPositions []math.Vec3
	VertexNormals   []math.Vec3
	Indices         []uint32
}

// SoftwareBackend implements the backend boundary without a GPU: transaction
// events and resource batches are applied to in-memory arrays. It registers
// one allocator per array so the editing side can address the arrays through
// the usual slot pipeline.
type SoftwareBackend struct {
	provider       *gpu.Provider
	resourceEvents chan resources.Event

	mu    sync.Mutex
	state FrameState

	drained  chan struct{}
	shutdown sync.Once
}

// Create a new SoftwareBackend with arrays and allocators sized by the given
// config
func NewSoftwareBackend(cfg *config.Config) *SoftwareBackend {
	provider := gpu.NewProvider()
	gpu.Register(provider, gpu.NewIndexAllocator[resources.MeshAttributes](cfg.MaxMeshAttributesCount))
	gpu.Register(provider, gpu.NewIndexAllocator[resources.PointCloudAttributes](cfg.MaxPointCloudAttributesCount))
	gpu.Register(provider, gpu.NewIndexAllocator[elements.Camera](cfg.MaxCameraCount))
	gpu.Register(provider, gpu.NewIndexAllocator[elements.RigidMesh](cfg.MaxRigidMeshCount))
	gpu.Register(provider, gpu.NewIndexAllocator[elements.PointCloud](cfg.MaxPointCloudCount))
	gpu.Register(provider, gpu.NewIndexAllocator[instances.CameraInstance](cfg.MaxCameraInstanceCount))
	gpu.Register(provider, gpu.NewIndexAllocator[instances.RigidMeshInstance](cfg.MaxRigidMeshInstanceCount))
	gpu.Register(provider, gpu.NewIndexAllocator[instances.PointCloudInstance](cfg.MaxPointCloudInstanceCount))

	backend := &SoftwareBackend{
		provider:       provider,
		resourceEvents: make(chan resources.Event, cfg.ResourceEventQueueSize),
		state: FrameState{
			Cameras:              make([]CameraSlot, cfg.MaxCameraCount),
			CameraInstances:      make([]CameraInstanceSlot, cfg.MaxCameraInstanceCount),
			RigidMeshes:          make([]RigidMeshSlot, cfg.MaxRigidMeshCount),
			RigidMeshInstances:   make([]RigidMeshInstanceSlot, cfg.MaxRigidMeshInstanceCount),
			PointClouds:          make([]PointCloudSlot, cfg.MaxPointCloudCount),
			PointCloudInstances:  make([]PointCloudInstanceSlot, cfg.MaxPointCloudInstanceCount),
			MeshAttributes:       make([]*resources.MeshAttributes, cfg.MaxMeshAttributesCount),
			PointCloudAttributes: make([]*resources.PointCloudAttributes, cfg.MaxPointCloudAttributesCount),
			InanimateMeshes:      make(map[containers.Handle[*resources.InanimateMesh]]InanimateMeshData),
		},
		drained: make(chan struct{}),
	}
	go backend.drain()
	return backend
}

// ResourceEvents returns the channel the resource groups send their events
// over.
func (b *SoftwareBackend) ResourceEvents() chan<- resources.Event {
	return b.resourceEvents
}

// GpuAllocators returns the allocators of the backend.
func (b *SoftwareBackend) GpuAllocators() *gpu.Provider {
	return b.provider
}

// BeginFrame marks a frame boundary on the resource channel so that resource
// uploads can be ordered against frames.
func (b *SoftwareBackend) BeginFrame() {
	b.resourceEvents <- resources.NewFrameStartEvent()
}

// Process drains the transaction and applies its events to the frame state
// in the order they were recorded.
func (b *SoftwareBackend) Process(transaction *transactions.Transaction) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, event := range transaction.Process() {
		b.apply(event)
	}
}

func (b *SoftwareBackend) apply(event transactions.Event) {
	switch e := event.(type) {
	case elements.CameraEvent:
		switch e.Kind {
		case elements.CameraEventInsert:
			projection := e.Camera.Projection()
			b.state.Cameras[e.Camera.Allocation().Index()] = CameraSlot{
				Projection: projection.Matrix(),
				Near:       projection.NearPlane(),
				Far:        projection.FarPlane(),
			}
		case elements.CameraEventUpdateProjection:
			b.state.Cameras[e.Allocation.Index()] = CameraSlot{
				Projection: e.Projection.Matrix(),
				Near:       e.Projection.NearPlane(),
				Far:        e.Projection.FarPlane(),
			}
		}
	case elements.RigidMeshEvent:
		if e.Kind == elements.RigidMeshEventInsert {
			rigidMesh := e.RigidMesh
			b.state.RigidMeshes[rigidMesh.Allocation().Index()] = RigidMeshSlot{
				AttributesIndex: rigidMesh.MeshAttributes().Allocation().Index(),
				Representation:  rigidMesh.PreferredMeshRepresentation(),
			}
		}
	case elements.PointCloudEvent:
		if e.Kind == elements.PointCloudEventInsert {
			pointCloud := e.PointCloud
			b.state.PointClouds[pointCloud.Allocation().Index()] = PointCloudSlot{
				AttributesIndex: pointCloud.PointCloudAttributes().Allocation().Index(),
				Representation:  pointCloud.PreferredPointCloudRepresentation(),
			}
		}
	case instances.CameraInstanceEvent:
		switch e.Kind {
		case instances.CameraInstanceEventInsert:
			cameraInstance := e.CameraInstance
			b.state.CameraInstances[cameraInstance.Allocation().Index()] = CameraInstanceSlot{
				CameraIndex: cameraInstance.CameraAllocation().Index(),
				View:        cameraInstance.Transform().ViewMatrix(),
			}
			b.state.LiveCameraViews++
		case instances.CameraInstanceEventUpdateViewMatrix:
			b.state.CameraInstances[e.Allocation.Index()].View = e.ViewMatrix
		}
	case instances.RigidMeshInstanceEvent:
		switch e.Kind {
		case instances.RigidMeshInstanceEventInsert:
			rigidMeshInstance := e.RigidMeshInstance
			b.state.RigidMeshInstances[rigidMeshInstance.Allocation().Index()] = RigidMeshInstanceSlot{
				MeshIndex: rigidMeshInstance.RigidMeshAllocation().Index(),
				Transform: rigidMeshInstance.Transform(),
			}
			b.state.LiveRigidInstances++
		case instances.RigidMeshInstanceEventUpdateTransform:
			b.state.RigidMeshInstances[e.Allocation.Index()].Transform = e.Transform
		}
	case instances.PointCloudInstanceEvent:
		switch e.Kind {
		case instances.PointCloudInstanceEventInsert:
			pointCloudInstance := e.PointCloudInstance
			b.state.PointCloudInstances[pointCloudInstance.Allocation().Index()] = PointCloudInstanceSlot{
				CloudIndex: pointCloudInstance.PointCloudAllocation().Index(),
				Transform:  pointCloudInstance.Transform(),
			}
			b.state.LiveCloudInstances++
		case instances.PointCloudInstanceEventUpdateTransform:
			b.state.PointCloudInstances[e.Allocation.Index()].Transform = e.Transform
		}
	default:
		core.LogWarn("software backend dropping unknown event %T", event)
	}
}

func (b *SoftwareBackend) drain() {
	defer close(b.drained)
	for event := range b.resourceEvents {
		b.consume(event)
	}
}

func (b *SoftwareBackend) consume(event resources.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch event.Kind {
	case resources.EventKindFrameStart:
		b.state.FramesStarted++
	case resources.EventKindMeshAttributes:
		for _, e := range event.MeshAttributes {
			if e.Kind == resources.MeshAttributesEventInsert {
				b.state.MeshAttributes[e.MeshAttributes.Allocation().Index()] = e.MeshAttributes
			}
		}
	case resources.EventKindPointCloudAttributes:
		for _, e := range event.PointCloudAttributes {
			if e.Kind == resources.PointCloudAttributesEventInsert {
				b.state.PointCloudAttributes[e.PointCloudAttributes.Allocation().Index()] = e.PointCloudAttributes
			}
		}
	case resources.EventKindInanimateMesh:
		for _, e := range event.InanimateMeshes {
			handle := e.InanimateMesh.Handle()
			switch e.Kind {
			case resources.InanimateMeshEventInsert:
				b.state.InanimateMeshes[handle] = InanimateMeshData{
					VertexPositions: e.VertexPositions,
					VertexNormals:   e.VertexNormals,
					Indices:         e.Indices,
				}
			case resources.InanimateMeshEventSetVertexPositions:
				data := b.state.InanimateMeshes[handle]
				data.VertexPositions = e.VertexPositions
				b.state.InanimateMeshes[handle] = data
			}
		}
	}
}

// Render walks the frame state the way a GPU pass would and logs what it
// would draw.
func (b *SoftwareBackend) Render() {
	b.mu.Lock()
	defer b.mu.Unlock()
	core.LogDebug("frame %d: %d camera views, %d rigid mesh instances, %d point cloud instances",
		b.state.FramesStarted, b.state.LiveCameraViews, b.state.LiveRigidInstances, b.state.LiveCloudInstances)
}

// State returns a copy of the frame state for inspection.
func (b *SoftwareBackend) State() FrameState {
	b.mu.Lock()
	defer b.mu.Unlock()

	state := b.state
	state.Cameras = append([]CameraSlot(nil), b.state.Cameras...)
	state.CameraInstances = append([]CameraInstanceSlot(nil), b.state.CameraInstances...)
	state.RigidMeshes = append([]RigidMeshSlot(nil), b.state.RigidMeshes...)
	state.RigidMeshInstances = append([]RigidMeshInstanceSlot(nil), b.state.RigidMeshInstances...)
	state.PointClouds = append([]PointCloudSlot(nil), b.state.PointClouds...)
	state.PointCloudInstances = append([]PointCloudInstanceSlot(nil), b.state.PointCloudInstances...)
	state.MeshAttributes = append([]*resources.MeshAttributes(nil), b.state.MeshAttributes...)
	state.PointCloudAttributes = append([]*resources.PointCloudAttributes(nil), b.state.PointCloudAttributes...)
	state.InanimateMeshes = make(map[containers.Handle[*resources.InanimateMesh]]InanimateMeshData, len(b.state.InanimateMeshes))
	for handle, data := range b.state.InanimateMeshes {
		state.InanimateMeshes[handle] = data
	}
	return state
}

// Shutdown revokes every allocator, closes the resource event channel and
// waits for the last queued batch to be applied. Groups that try to allocate
// or send afterwards panic by contract.
func (b *SoftwareBackend) Shutdown() error {
	b.shutdown.Do(func() {
		b.provider.RevokeAll()
		close(b.resourceEvents)
		<-b.drained
	})
	return nil
}
