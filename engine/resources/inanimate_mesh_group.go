package resources

import (
	"github.com/spaghettifunk/scena/engine/containers"
	"github.com/spaghettifunk/scena/engine/core"
	"github.com/spaghettifunk/scena/engine/math"
)

// InanimateMeshGroup owns every InanimateMesh of a renderer instance. It is
// not safe for concurrent use; callers wrap the group in a mutex when
// editing from more than one goroutine.
type InanimateMeshGroup struct {
	inanimateMeshes *containers.SlotMap[*InanimateMesh]
	receiver        Receiver
	debugInfo       core.DebugInfo
}

// Create a new InanimateMeshGroup wired to the backend's resource receiver
func NewInanimateMeshGroup(receiver Receiver, debugInfo core.DebugInfo) *InanimateMeshGroup {
	return &InanimateMeshGroup{
		inanimateMeshes: containers.NewSlotMap[*InanimateMesh](),
		receiver:        receiver,
		debugInfo:       debugInfo,
	}
}

// Create returns an InanimateMeshBuilder with the given mesh type, vertex
// positions and vertex normals.
func (g *InanimateMeshGroup) Create(ty MeshType, vertexPositions, vertexNormals []math.Vec3) *InanimateMeshBuilder {
	return &InanimateMeshBuilder{
		group:           g,
		ty:              ty,
		vertexPositions: vertexPositions,
		vertexNormals:   vertexNormals,
	}
}

// Get returns the InanimateMesh the handle addresses.
func (g *InanimateMeshGroup) Get(handle containers.Handle[*InanimateMesh]) (*InanimateMesh, bool) {
	return g.inanimateMeshes.Get(handle)
}

// Len returns the number of stored InanimateMeshes.
func (g *InanimateMeshGroup) Len() int {
	return g.inanimateMeshes.Len()
}

// IsEmpty checks if the group holds no InanimateMeshes
func (g *InanimateMeshGroup) IsEmpty() bool {
	return g.inanimateMeshes.IsEmpty()
}

// DebugInfo returns the identity of the group.
func (g *InanimateMeshGroup) DebugInfo() core.DebugInfo {
	return g.debugInfo
}

// InanimateMeshBuilder assembles an InanimateMesh. Build validates the mesh,
// stores it in the group and announces the insertion to the resource
// receiver.
type InanimateMeshBuilder struct {
	group           *InanimateMeshGroup
	ty              MeshType
	vertexPositions []math.Vec3
	vertexNormals   []math.Vec3
	indices         []uint32
	debugInfo       *core.DebugInfo
}

// WithIndices sets the index buffer. This is an optional attribute.
func (b *InanimateMeshBuilder) WithIndices(indices []uint32) *InanimateMeshBuilder {
	b.indices = indices
	return b
}

// WithDebugInfo names the InanimateMesh. This is an optional attribute.
func (b *InanimateMeshBuilder) WithDebugInfo(debugInfo core.DebugInfo) *InanimateMeshBuilder {
	b.debugInfo = &debugInfo
	return b
}

// Builds the InanimateMesh and returns it
func (b *InanimateMeshBuilder) Build() (*InanimateMesh, error) {
	if err := checkDivisibleVerticesLen(len(b.vertexPositions), b.ty); err != nil {
		return nil, err
	}
	if len(b.vertexNormals) != len(b.vertexPositions) {
		return nil, &WrongSizeError{
			Expected: len(b.vertexPositions),
			Got:      len(b.vertexNormals),
		}
	}
	if err := checkIndices(len(b.vertexPositions), b.indices); err != nil {
		return nil, err
	}

	debugInfo := core.NewDebugInfo("Anonymous-InanimateMesh")
	if b.debugInfo != nil {
		debugInfo = *b.debugInfo
	}

	inanimateMesh := &InanimateMesh{
		ty:              b.ty,
		allocationType:  AllocationTypeStatic,
		vertexPositions: b.vertexPositions,
		vertexNormals:   b.vertexNormals,
		indices:         b.indices,
		sender:          b.group.receiver.ResourceEvents(),
		debugInfo:       debugInfo,
	}
	handle := b.group.inanimateMeshes.Insert(inanimateMesh)
	inanimateMesh.setHandle(handle)

	b.group.receiver.ResourceEvents() <- Event{
		Kind: EventKindInanimateMesh,
		InanimateMeshes: []InanimateMeshEvent{{
			Kind:            InanimateMeshEventInsert,
			InanimateMesh:   inanimateMesh,
			VertexPositions: b.vertexPositions,
			VertexNormals:   b.vertexNormals,
			Indices:         b.indices,
		}},
	}
	return inanimateMesh, nil
}
