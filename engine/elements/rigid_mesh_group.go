package elements

import (
	"github.com/spaghettifunk/scena/engine/containers"
	"github.com/spaghettifunk/scena/engine/core"
	"github.com/spaghettifunk/scena/engine/gpu"
	"github.com/spaghettifunk/scena/engine/transactions"
)

// RigidMeshGroup owns every RigidMesh of a renderer instance.
type RigidMeshGroup struct {
	rigidMeshes *containers.SlotMap[*RigidMesh]
	allocator   gpu.Ref[RigidMesh]
	debugInfo   core.DebugInfo
}

// Create a new RigidMeshGroup wired to the backend's allocator
func NewRigidMeshGroup(allocator gpu.Ref[RigidMesh], debugInfo core.DebugInfo) *RigidMeshGroup {
	return &RigidMeshGroup{
		rigidMeshes: containers.NewSlotMap[*RigidMesh](),
		allocator:   allocator,
		debugInfo:   debugInfo,
	}
}

// Get returns the RigidMesh the handle addresses.
func (g *RigidMeshGroup) Get(handle containers.Handle[*RigidMesh]) (*RigidMesh, bool) {
	return g.rigidMeshes.Get(handle)
}

// Len returns the number of stored RigidMeshes.
func (g *RigidMeshGroup) Len() int {
	return g.rigidMeshes.Len()
}

// IsEmpty checks if the group holds no RigidMeshes
func (g *RigidMeshGroup) IsEmpty() bool {
	return g.rigidMeshes.IsEmpty()
}

// DebugInfo returns the identity of the group.
func (g *RigidMeshGroup) DebugInfo() core.DebugInfo {
	return g.debugInfo
}

// MutateVia returns an accessor that records every change to the group into
// the given transaction.
func (g *RigidMeshGroup) MutateVia(transaction transactions.PushEvent) *RigidMeshGroupAccessMut {
	return &RigidMeshGroupAccessMut{group: g, transaction: transaction}
}

// RigidMeshGroupAccessMut edits a RigidMeshGroup while recording the changes.
type RigidMeshGroupAccessMut struct {
	group       *RigidMeshGroup
	transaction transactions.PushEvent
}

// Insert stores the rigid mesh the builder describes and records the
// insertion. When the builder fails, the group and its allocator are left
// untouched.
func (a *RigidMeshGroupAccessMut) Insert(builder *RigidMeshBuilder) (containers.Handle[*RigidMesh], error) {
	allocator, ok := a.group.allocator.Upgrade()
	if !ok {
		panic("the gpu index allocator of the RigidMeshGroup was revoked")
	}
	allocation, ok := allocator.Allocate()
	if !ok {
		err := &AllocationFailedError{Element: "RigidMesh"}
		core.LogWarn(err.Error())
		return containers.Handle[*RigidMesh]{}, err
	}

	handle, err := a.group.rigidMeshes.InsertWith(func(handle containers.Handle[*RigidMesh]) (*RigidMesh, error) {
		return builder.build(handle, allocation)
	})
	if err != nil {
		allocator.Free(allocation)
		return containers.Handle[*RigidMesh]{}, err
	}

	rigidMesh, ok := a.group.rigidMeshes.Get(handle)
	if !ok {
		panic("just inserted rigid mesh not found")
	}

	a.transaction.PushEvent(RigidMeshEvent{
		Kind:      RigidMeshEventInsert,
		RigidMesh: rigidMesh,
	})
	return handle, nil
}
