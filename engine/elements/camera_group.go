package elements

import (
	"github.com/spaghettifunk/scena/engine/containers"
	"github.com/spaghettifunk/scena/engine/core"
	"github.com/spaghettifunk/scena/engine/gpu"
	"github.com/spaghettifunk/scena/engine/transactions"
)

// CameraGroup owns every Camera of a renderer instance. All edits go through
// MutateVia so that the backend sees them as transaction events.
type CameraGroup struct {
	cameras   *containers.SlotMap[*Camera]
	allocator gpu.Ref[Camera]
	debugInfo core.DebugInfo
}

// Create a new CameraGroup wired to the backend's allocator
func NewCameraGroup(allocator gpu.Ref[Camera], debugInfo core.DebugInfo) *CameraGroup {
	return &CameraGroup{
		cameras:   containers.NewSlotMap[*Camera](),
		allocator: allocator,
		debugInfo: debugInfo,
	}
}

// Get returns the Camera the handle addresses.
func (g *CameraGroup) Get(handle containers.Handle[*Camera]) (*Camera, bool) {
	return g.cameras.Get(handle)
}

// Len returns the number of stored Cameras.
func (g *CameraGroup) Len() int {
	return g.cameras.Len()
}

// IsEmpty checks if the group holds no Cameras
func (g *CameraGroup) IsEmpty() bool {
	return g.cameras.IsEmpty()
}

// DebugInfo returns the identity of the group.
func (g *CameraGroup) DebugInfo() core.DebugInfo {
	return g.debugInfo
}

// MutateVia returns an accessor that records every change to the group into
// the given transaction.
func (g *CameraGroup) MutateVia(transaction transactions.PushEvent) *CameraGroupAccessMut {
	return &CameraGroupAccessMut{group: g, transaction: transaction}
}

// CameraGroupAccessMut edits a CameraGroup while recording the changes.
type CameraGroupAccessMut struct {
	group       *CameraGroup
	transaction transactions.PushEvent
}

// Insert stores the camera the builder describes and records the insertion.
// When the builder fails, the group and its allocator are left untouched.
func (a *CameraGroupAccessMut) Insert(builder *CameraBuilder) (containers.Handle[*Camera], error) {
	allocator, ok := a.group.allocator.Upgrade()
	if !ok {
		panic("the gpu index allocator of the CameraGroup was revoked")
	}
	allocation, ok := allocator.Allocate()
	if !ok {
		err := &AllocationFailedError{Element: "Camera"}
		core.LogWarn(err.Error())
		return containers.Handle[*Camera]{}, err
	}

	handle, err := a.group.cameras.InsertWith(func(handle containers.Handle[*Camera]) (*Camera, error) {
		return builder.build(handle, allocation)
	})
	if err != nil {
		allocator.Free(allocation)
		return containers.Handle[*Camera]{}, err
	}

	camera, ok := a.group.cameras.Get(handle)
	if !ok {
		panic("just inserted camera not found")
	}

	a.transaction.PushEvent(CameraEvent{
		Kind:   CameraEventInsert,
		Camera: camera,
	})
	return handle, nil
}
