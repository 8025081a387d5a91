package elements

import (
	"github.com/spaghettifunk/scena/engine/containers"
	"github.com/spaghettifunk/scena/engine/core"
	"github.com/spaghettifunk/scena/engine/gpu"
	"github.com/spaghettifunk/scena/engine/transactions"
)

// PointCloudGroup owns every PointCloud of a renderer instance.
type PointCloudGroup struct {
	pointClouds *containers.SlotMap[*PointCloud]
	allocator   gpu.Ref[PointCloud]
	debugInfo   core.DebugInfo
}

// Create a new PointCloudGroup wired to the backend's allocator
func NewPointCloudGroup(allocator gpu.Ref[PointCloud], debugInfo core.DebugInfo) *PointCloudGroup {
	return &PointCloudGroup{
		pointClouds: containers.NewSlotMap[*PointCloud](),
		allocator:   allocator,
		debugInfo:   debugInfo,
	}
}

// Get returns the PointCloud the handle addresses.
func (g *PointCloudGroup) Get(handle containers.Handle[*PointCloud]) (*PointCloud, bool) {
	return g.pointClouds.Get(handle)
}

// Len returns the number of stored PointClouds.
func (g *PointCloudGroup) Len() int {
	return g.pointClouds.Len()
}

// IsEmpty checks if the group holds no PointClouds
func (g *PointCloudGroup) IsEmpty() bool {
	return g.pointClouds.IsEmpty()
}

// DebugInfo returns the identity of the group.
func (g *PointCloudGroup) DebugInfo() core.DebugInfo {
	return g.debugInfo
}

// MutateVia returns an accessor that records every change to the group into
// the given transaction.
func (g *PointCloudGroup) MutateVia(transaction transactions.PushEvent) *PointCloudGroupAccessMut {
	return &PointCloudGroupAccessMut{group: g, transaction: transaction}
}

// PointCloudGroupAccessMut edits a PointCloudGroup while recording the
// changes.
type PointCloudGroupAccessMut struct {
	group       *PointCloudGroup
	transaction transactions.PushEvent
}

// Insert stores the point cloud the builder describes and records the
// insertion. When the builder fails, the group and its allocator are left
// untouched.
func (a *PointCloudGroupAccessMut) Insert(builder *PointCloudBuilder) (containers.Handle[*PointCloud], error) {
	allocator, ok := a.group.allocator.Upgrade()
	if !ok {
		panic("the gpu index allocator of the PointCloudGroup was revoked")
	}
	allocation, ok := allocator.Allocate()
	if !ok {
		err := &AllocationFailedError{Element: "PointCloud"}
		core.LogWarn(err.Error())
		return containers.Handle[*PointCloud]{}, err
	}

	handle, err := a.group.pointClouds.InsertWith(func(handle containers.Handle[*PointCloud]) (*PointCloud, error) {
		return builder.build(handle, allocation)
	})
	if err != nil {
		allocator.Free(allocation)
		return containers.Handle[*PointCloud]{}, err
	}

	pointCloud, ok := a.group.pointClouds.Get(handle)
	if !ok {
		panic("just inserted point cloud not found")
	}

	a.transaction.PushEvent(PointCloudEvent{
		Kind:       PointCloudEventInsert,
		PointCloud: pointCloud,
	})
	return handle, nil
}
