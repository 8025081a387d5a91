package instances

import (
	"github.com/spaghettifunk/scena/engine/containers"
	"github.com/spaghettifunk/scena/engine/core"
	"github.com/spaghettifunk/scena/engine/gpu"
	"github.com/spaghettifunk/scena/engine/transactions"
)

// RigidMeshInstanceGroup owns every RigidMeshInstance of a renderer
// instance.
type RigidMeshInstanceGroup struct {
	rigidMeshInstances *containers.SlotMap[*RigidMeshInstance]
	allocator          gpu.Ref[RigidMeshInstance]
	debugInfo          core.DebugInfo
}

// Create a new RigidMeshInstanceGroup wired to the backend's allocator
func NewRigidMeshInstanceGroup(allocator gpu.Ref[RigidMeshInstance], debugInfo core.DebugInfo) *RigidMeshInstanceGroup {
	return &RigidMeshInstanceGroup{
		rigidMeshInstances: containers.NewSlotMap[*RigidMeshInstance](),
		allocator:          allocator,
		debugInfo:          debugInfo,
	}
}

// Get returns the RigidMeshInstance the handle addresses.
func (g *RigidMeshInstanceGroup) Get(handle containers.Handle[*RigidMeshInstance]) (*RigidMeshInstance, bool) {
	return g.rigidMeshInstances.Get(handle)
}

// Len returns the number of stored RigidMeshInstances.
func (g *RigidMeshInstanceGroup) Len() int {
	return g.rigidMeshInstances.Len()
}

// IsEmpty checks if the group holds no RigidMeshInstances
func (g *RigidMeshInstanceGroup) IsEmpty() bool {
	return g.rigidMeshInstances.IsEmpty()
}

// DebugInfo returns the identity of the group.
func (g *RigidMeshInstanceGroup) DebugInfo() core.DebugInfo {
	return g.debugInfo
}

// MutateVia returns an accessor that records every change to the group into
// the given transaction.
func (g *RigidMeshInstanceGroup) MutateVia(transaction transactions.PushEvent) *RigidMeshInstanceGroupAccessMut {
	return &RigidMeshInstanceGroupAccessMut{group: g, transaction: transaction}
}

// RigidMeshInstanceGroupAccessMut edits a RigidMeshInstanceGroup while
// recording the changes.
type RigidMeshInstanceGroupAccessMut struct {
	group       *RigidMeshInstanceGroup
	transaction transactions.PushEvent
}

// Insert stores the rigid mesh instance the builder describes and records
// the insertion. When the builder fails, the group and its allocator are
// left untouched.
func (a *RigidMeshInstanceGroupAccessMut) Insert(builder *RigidMeshInstanceBuilder) (containers.Handle[*RigidMeshInstance], error) {
	allocator, ok := a.group.allocator.Upgrade()
	if !ok {
		panic("the gpu index allocator of the RigidMeshInstanceGroup was revoked")
	}
	allocation, ok := allocator.Allocate()
	if !ok {
		err := &AllocationFailedError{Instance: "RigidMeshInstance"}
		core.LogWarn(err.Error())
		return containers.Handle[*RigidMeshInstance]{}, err
	}

	handle, err := a.group.rigidMeshInstances.InsertWith(func(handle containers.Handle[*RigidMeshInstance]) (*RigidMeshInstance, error) {
		return builder.build(handle, allocation)
	})
	if err != nil {
		allocator.Free(allocation)
		return containers.Handle[*RigidMeshInstance]{}, err
	}

	rigidMeshInstance, ok := a.group.rigidMeshInstances.Get(handle)
	if !ok {
		panic("just inserted rigid mesh instance not found")
	}

	a.transaction.PushEvent(RigidMeshInstanceEvent{
		Kind:              RigidMeshInstanceEventInsert,
		RigidMeshInstance: rigidMeshInstance,
	})
	return handle, nil
}
