package resources

import (
	"github.com/spaghettifunk/scena/engine/containers"
	"github.com/spaghettifunk/scena/engine/core"
	"github.com/spaghettifunk/scena/engine/gpu"
)

// PointCloudAttributesGroup owns every PointCloudAttributes of a renderer
// instance. It is not safe for concurrent use; callers wrap the group in a
// mutex when editing from more than one goroutine.
type PointCloudAttributesGroup struct {
	pointCloudAttributes *containers.SlotMap[*PointCloudAttributes]
	allocator            gpu.Ref[PointCloudAttributes]
	receiver             Receiver
	debugInfo            core.DebugInfo
}

// Create a new PointCloudAttributesGroup wired to the backend's allocator
// and resource receiver
func NewPointCloudAttributesGroup(receiver Receiver, allocator gpu.Ref[PointCloudAttributes], debugInfo core.DebugInfo) *PointCloudAttributesGroup {
	return &PointCloudAttributesGroup{
		pointCloudAttributes: containers.NewSlotMap[*PointCloudAttributes](),
		allocator:            allocator,
		receiver:             receiver,
		debugInfo:            debugInfo,
	}
}

// Insert validates and stores the point cloud the builder describes and
// announces the insertion to the resource receiver. When the builder fails,
// the group and its allocator are left untouched.
func (g *PointCloudAttributesGroup) Insert(builder *PointCloudAttributesBuilder) (*PointCloudAttributes, error) {
	allocator, ok := g.allocator.Upgrade()
	if !ok {
		panic("the gpu index allocator of the PointCloudAttributesGroup was revoked")
	}
	allocation, ok := allocator.Allocate()
	if !ok {
		err := &AllocationFailedError{Resource: "PointCloudAttributes"}
		core.LogWarn(err.Error())
		return nil, err
	}

	handle, err := g.pointCloudAttributes.InsertWith(func(handle containers.Handle[*PointCloudAttributes]) (*PointCloudAttributes, error) {
		return builder.build(handle, allocation)
	})
	if err != nil {
		allocator.Free(allocation)
		return nil, err
	}

	pointCloudAttributes, ok := g.pointCloudAttributes.Get(handle)
	if !ok {
		panic("just inserted point cloud attributes not found")
	}

	g.receiver.ResourceEvents() <- Event{
		Kind: EventKindPointCloudAttributes,
		PointCloudAttributes: []PointCloudAttributesEvent{{
			Kind:                 PointCloudAttributesEventInsert,
			Handle:               handle,
			PointCloudAttributes: pointCloudAttributes,
		}},
	}
	return pointCloudAttributes, nil
}

// Get returns the PointCloudAttributes the handle addresses.
func (g *PointCloudAttributesGroup) Get(handle containers.Handle[*PointCloudAttributes]) (*PointCloudAttributes, bool) {
	return g.pointCloudAttributes.Get(handle)
}

// Len returns the number of stored PointCloudAttributes.
func (g *PointCloudAttributesGroup) Len() int {
	return g.pointCloudAttributes.Len()
}

// IsEmpty checks if the group holds no PointCloudAttributes
func (g *PointCloudAttributesGroup) IsEmpty() bool {
	return g.pointCloudAttributes.IsEmpty()
}

// DebugInfo returns the identity of the group.
func (g *PointCloudAttributesGroup) DebugInfo() core.DebugInfo {
	return g.debugInfo
}
