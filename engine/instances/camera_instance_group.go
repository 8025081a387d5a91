package instances

import (
	"github.com/spaghettifunk/scena/engine/containers"
	"github.com/spaghettifunk/scena/engine/core"
	"github.com/spaghettifunk/scena/engine/gpu"
	"github.com/spaghettifunk/scena/engine/transactions"
)

// CameraInstanceGroup owns every CameraInstance of a renderer instance.
type CameraInstanceGroup struct {
	cameraInstances *containers.SlotMap[*CameraInstance]
	allocator       gpu.Ref[CameraInstance]
	debugInfo       core.DebugInfo
}

// Create a new CameraInstanceGroup wired to the backend's allocator
func NewCameraInstanceGroup(allocator gpu.Ref[CameraInstance], debugInfo core.DebugInfo) *CameraInstanceGroup {
	return &CameraInstanceGroup{
		cameraInstances: containers.NewSlotMap[*CameraInstance](),
		allocator:       allocator,
		debugInfo:       debugInfo,
	}
}

// Get returns the CameraInstance the handle addresses.
func (g *CameraInstanceGroup) Get(handle containers.Handle[*CameraInstance]) (*CameraInstance, bool) {
	return g.cameraInstances.Get(handle)
}

// Len returns the number of stored CameraInstances.
func (g *CameraInstanceGroup) Len() int {
	return g.cameraInstances.Len()
}

// IsEmpty checks if the group holds no CameraInstances
func (g *CameraInstanceGroup) IsEmpty() bool {
	return g.cameraInstances.IsEmpty()
}

// DebugInfo returns the identity of the group.
func (g *CameraInstanceGroup) DebugInfo() core.DebugInfo {
	return g.debugInfo
}

// MutateVia returns an accessor that records every change to the group into
// the given transaction.
func (g *CameraInstanceGroup) MutateVia(transaction transactions.PushEvent) *CameraInstanceGroupAccessMut {
	return &CameraInstanceGroupAccessMut{group: g, transaction: transaction}
}

// CameraInstanceGroupAccessMut edits a CameraInstanceGroup while recording
// the changes.
type CameraInstanceGroupAccessMut struct {
	group       *CameraInstanceGroup
	transaction transactions.PushEvent
}

// Insert stores the camera instance the builder describes and records the
// insertion. When the builder fails, the group and its allocator are left
// untouched.
func (a *CameraInstanceGroupAccessMut) Insert(builder *CameraInstanceBuilder) (containers.Handle[*CameraInstance], error) {
	allocator, ok := a.group.allocator.Upgrade()
	if !ok {
		panic("the gpu index allocator of the CameraInstanceGroup was revoked")
	}
	allocation, ok := allocator.Allocate()
	if !ok {
		err := &AllocationFailedError{Instance: "CameraInstance"}
		core.LogWarn(err.Error())
		return containers.Handle[*CameraInstance]{}, err
	}

	handle, err := a.group.cameraInstances.InsertWith(func(handle containers.Handle[*CameraInstance]) (*CameraInstance, error) {
		return builder.build(handle, allocation)
	})
	if err != nil {
		allocator.Free(allocation)
		return containers.Handle[*CameraInstance]{}, err
	}

	cameraInstance, ok := a.group.cameraInstances.Get(handle)
	if !ok {
		panic("just inserted camera instance not found")
	}

	a.transaction.PushEvent(CameraInstanceEvent{
		Kind:           CameraInstanceEventInsert,
		CameraInstance: cameraInstance,
	})
	return handle, nil
}
