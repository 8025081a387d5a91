package instances

import (
	"github.com/spaghettifunk/scena/engine/containers"
	"github.com/spaghettifunk/scena/engine/core"
	"github.com/spaghettifunk/scena/engine/elements"
	"github.com/spaghettifunk/scena/engine/gpu"
	"github.com/spaghettifunk/scena/engine/math"
	"github.com/spaghettifunk/scena/engine/transactions"
)

// RigidMeshInstance places a RigidMesh in the scene. The rigid mesh is
// captured by handle and gpu slot so the instance stays valid for the
// backend even while the element tier is edited.
type RigidMeshInstance struct {
	rigidMeshHandle     containers.Handle[*elements.RigidMesh]
	rigidMeshAllocation gpu.Allocation[elements.RigidMesh]
	handle              containers.Handle[*RigidMeshInstance]
	allocation          gpu.Allocation[RigidMeshInstance]
	transform           math.Mat4
	debugInfo           core.DebugInfo
}

// RigidMeshHandle returns the handle of the RigidMesh this instance places.
func (r *RigidMeshInstance) RigidMeshHandle() containers.Handle[*elements.RigidMesh] {
	return r.rigidMeshHandle
}

// RigidMeshAllocation returns the gpu index allocation of the RigidMesh this
// instance places.
func (r *RigidMeshInstance) RigidMeshAllocation() gpu.Allocation[elements.RigidMesh] {
	return r.rigidMeshAllocation
}

// Handle returns the handle of the rigid mesh instance.
func (r *RigidMeshInstance) Handle() containers.Handle[*RigidMeshInstance] {
	return r.handle
}

// Allocation returns the gpu index allocation of the rigid mesh instance.
func (r *RigidMeshInstance) Allocation() gpu.Allocation[RigidMeshInstance] {
	return r.allocation
}

// Transform returns the world transform of the rigid mesh instance.
func (r *RigidMeshInstance) Transform() math.Mat4 {
	return r.transform
}

// DebugInfo returns the identity of the rigid mesh instance.
func (r *RigidMeshInstance) DebugInfo() core.DebugInfo {
	return r.debugInfo
}

// MutateVia returns an accessor that records every change to the rigid mesh
// instance into the given transaction.
func (r *RigidMeshInstance) MutateVia(transaction transactions.PushEvent) *RigidMeshInstanceAccessMut {
	return &RigidMeshInstanceAccessMut{rigidMeshInstance: r, transaction: transaction}
}

// RigidMeshInstanceAccessMut mutates a RigidMeshInstance in place while
// recording the change.
type RigidMeshInstanceAccessMut struct {
	rigidMeshInstance *RigidMeshInstance
	transaction       transactions.PushEvent
}

// SetTransform replaces the world transform of the rigid mesh instance and
// records the update addressed by the instance's gpu slot.
func (a *RigidMeshInstanceAccessMut) SetTransform(transform math.Mat4) {
	a.rigidMeshInstance.transform = transform
	a.transaction.PushEvent(RigidMeshInstanceEvent{
		Kind:       RigidMeshInstanceEventUpdateTransform,
		Allocation: a.rigidMeshInstance.allocation,
		Transform:  transform,
	})
}

// RigidMeshInstanceBuilder assembles a RigidMeshInstance; the rigid mesh is
// mandatory.
type RigidMeshInstanceBuilder struct {
	rigidMesh *elements.RigidMesh
	transform *math.Mat4
	debugInfo *core.DebugInfo
}

// Create a new RigidMeshInstanceBuilder
func NewRigidMeshInstanceBuilder() *RigidMeshInstanceBuilder {
	return &RigidMeshInstanceBuilder{}
}

// WithRigidMesh sets the RigidMesh this RigidMeshInstance is an instance of.
func (b *RigidMeshInstanceBuilder) WithRigidMesh(rigidMesh *elements.RigidMesh) *RigidMeshInstanceBuilder {
	b.rigidMesh = rigidMesh
	return b
}

// WithTransform sets the world transform of the RigidMeshInstance.
func (b *RigidMeshInstanceBuilder) WithTransform(transform math.Mat4) *RigidMeshInstanceBuilder {
	b.transform = &transform
	return b
}

// WithDebugInfo sets the DebugInfo of the RigidMeshInstance.
func (b *RigidMeshInstanceBuilder) WithDebugInfo(debugInfo core.DebugInfo) *RigidMeshInstanceBuilder {
	b.debugInfo = &debugInfo
	return b
}

func (b *RigidMeshInstanceBuilder) build(handle containers.Handle[*RigidMeshInstance], allocation gpu.Allocation[RigidMeshInstance]) (*RigidMeshInstance, error) {
	if b.rigidMesh == nil {
		return nil, ErrRigidMeshNotSet
	}
	transform := math.NewMat4Identity()
	if b.transform != nil {
		transform = *b.transform
	}
	debugInfo := core.NewDebugInfo("Anonymous-RigidMeshInstance")
	if b.debugInfo != nil {
		debugInfo = *b.debugInfo
	}
	return &RigidMeshInstance{
		rigidMeshHandle:     b.rigidMesh.Handle(),
		rigidMeshAllocation: b.rigidMesh.Allocation(),
		handle:              handle,
		allocation:          allocation,
		transform:           transform,
		debugInfo:           debugInfo,
	}, nil
}
