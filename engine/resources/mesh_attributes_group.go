package resources

import (
	"github.com/spaghettifunk/scena/engine/containers"
	"github.com/spaghettifunk/scena/engine/core"
	"github.com/spaghettifunk/scena/engine/gpu"
)

// MeshAttributesGroup owns every MeshAttributes of a renderer instance. It is
// not safe for concurrent use; callers wrap the group in a mutex when editing
// from more than one goroutine.
type MeshAttributesGroup struct {
	meshAttributes *containers.SlotMap[*MeshAttributes]
	allocator      gpu.Ref[MeshAttributes]
	receiver       Receiver
	debugInfo      core.DebugInfo
}

// Create a new MeshAttributesGroup wired to the backend's allocator and
// resource receiver
func NewMeshAttributesGroup(receiver Receiver, allocator gpu.Ref[MeshAttributes], debugInfo core.DebugInfo) *MeshAttributesGroup {
	return &MeshAttributesGroup{
		meshAttributes: containers.NewSlotMap[*MeshAttributes](),
		allocator:      allocator,
		receiver:       receiver,
		debugInfo:      debugInfo,
	}
}

// Insert validates and stores the mesh the builder describes and announces
// the insertion to the resource receiver. When the builder fails, the group
// and its allocator are left untouched.
func (g *MeshAttributesGroup) Insert(builder *MeshAttributesBuilder) (*MeshAttributes, error) {
	allocator, ok := g.allocator.Upgrade()
	if !ok {
		panic("the gpu index allocator of the MeshAttributesGroup was revoked")
	}
	allocation, ok := allocator.Allocate()
	if !ok {
		err := &AllocationFailedError{Resource: "MeshAttributes"}
		core.LogWarn(err.Error())
		return nil, err
	}

	handle, err := g.meshAttributes.InsertWith(func(handle containers.Handle[*MeshAttributes]) (*MeshAttributes, error) {
		return builder.build(handle, allocation)
	})
	if err != nil {
		allocator.Free(allocation)
		return nil, err
	}

	meshAttributes, ok := g.meshAttributes.Get(handle)
	if !ok {
		panic("just inserted mesh attributes not found")
	}

	g.receiver.ResourceEvents() <- Event{
		Kind: EventKindMeshAttributes,
		MeshAttributes: []MeshAttributesEvent{{
			Kind:           MeshAttributesEventInsert,
			Handle:         handle,
			MeshAttributes: meshAttributes,
		}},
	}
	return meshAttributes, nil
}

// Get returns the MeshAttributes the handle addresses.
func (g *MeshAttributesGroup) Get(handle containers.Handle[*MeshAttributes]) (*MeshAttributes, bool) {
	return g.meshAttributes.Get(handle)
}

// Len returns the number of stored MeshAttributes.
func (g *MeshAttributesGroup) Len() int {
	return g.meshAttributes.Len()
}

// IsEmpty checks if the group holds no MeshAttributes
func (g *MeshAttributesGroup) IsEmpty() bool {
	return g.meshAttributes.IsEmpty()
}

// DebugInfo returns the identity of the group.
func (g *MeshAttributesGroup) DebugInfo() core.DebugInfo {
	return g.debugInfo
}
