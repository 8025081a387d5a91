package instances

import (
	"github.com/spaghettifunk/scena/engine/containers"
	"github.com/spaghettifunk/scena/engine/core"
	"github.com/spaghettifunk/scena/engine/gpu"
	"github.com/spaghettifunk/scena/engine/transactions"
)

// PointCloudInstanceGroup owns every PointCloudInstance of a renderer
// instance.
type PointCloudInstanceGroup struct {
	pointCloudInstances *containers.SlotMap[*PointCloudInstance]
	allocator           gpu.Ref[PointCloudInstance]
	debugInfo           core.DebugInfo
}

// Create a new PointCloudInstanceGroup wired to the backend's allocator
func NewPointCloudInstanceGroup(allocator gpu.Ref[PointCloudInstance], debugInfo core.DebugInfo) *PointCloudInstanceGroup {
	return &PointCloudInstanceGroup{
		pointCloudInstances: containers.NewSlotMap[*PointCloudInstance](),
		allocator:           allocator,
		debugInfo:           debugInfo,
	}
}

// Get returns the PointCloudInstance the handle addresses.
func (g *PointCloudInstanceGroup) Get(handle containers.Handle[*PointCloudInstance]) (*PointCloudInstance, bool) {
	return g.pointCloudInstances.Get(handle)
}

// Len returns the number of stored PointCloudInstances.
func (g *PointCloudInstanceGroup) Len() int {
	return g.pointCloudInstances.Len()
}

// IsEmpty checks if the group holds no PointCloudInstances
func (g *PointCloudInstanceGroup) IsEmpty() bool {
	return g.pointCloudInstances.IsEmpty()
}

// DebugInfo returns the identity of the group.
func (g *PointCloudInstanceGroup) DebugInfo() core.DebugInfo {
	return g.debugInfo
}

// MutateVia returns an accessor that records every change to the group into
// the given transaction.
func (g *PointCloudInstanceGroup) MutateVia(transaction transactions.PushEvent) *PointCloudInstanceGroupAccessMut {
	return &PointCloudInstanceGroupAccessMut{group: g, transaction: transaction}
}

// PointCloudInstanceGroupAccessMut edits a PointCloudInstanceGroup while
// recording the changes.
type PointCloudInstanceGroupAccessMut struct {
	group       *PointCloudInstanceGroup
	transaction transactions.PushEvent
}

// Insert stores the point cloud instance the builder describes and records
// the insertion. When the builder fails, the group and its allocator are
// left untouched.
func (a *PointCloudInstanceGroupAccessMut) Insert(builder *PointCloudInstanceBuilder) (containers.Handle[*PointCloudInstance], error) {
	allocator, ok := a.group.allocator.Upgrade()
	if !ok {
		panic("the gpu index allocator of the PointCloudInstanceGroup was revoked")
	}
	allocation, ok := allocator.Allocate()
	if !ok {
		err := &AllocationFailedError{Instance: "PointCloudInstance"}
		core.LogWarn(err.Error())
		return containers.Handle[*PointCloudInstance]{}, err
	}

	handle, err := a.group.pointCloudInstances.InsertWith(func(handle containers.Handle[*PointCloudInstance]) (*PointCloudInstance, error) {
		return builder.build(handle, allocation)
	})
	if err != nil {
		allocator.Free(allocation)
		return containers.Handle[*PointCloudInstance]{}, err
	}

	pointCloudInstance, ok := a.group.pointCloudInstances.Get(handle)
	if !ok {
		panic("just inserted point cloud instance not found")
	}

	a.transaction.PushEvent(PointCloudInstanceEvent{
		Kind:               PointCloudInstanceEventInsert,
		PointCloudInstance: pointCloudInstance,
	})
	return handle, nil
}
