package instances

import (
	"github.com/spaghettifunk/scena/engine/containers"
	"github.com/spaghettifunk/scena/engine/core"
	"github.com/spaghettifunk/scena/engine/elements"
	"github.com/spaghettifunk/scena/engine/gpu"
	"github.com/spaghettifunk/scena/engine/math"
	"github.com/spaghettifunk/scena/engine/transactions"
)

// PointCloudInstance places a PointCloud in the scene. The point cloud is
// captured by handle and gpu slot so the instance stays valid for the
// backend even while the element tier is edited.
type PointCloudInstance struct {
	pointCloudHandle     containers.Handle[*elements.PointCloud]
	pointCloudAllocation gpu.Allocation[elements.PointCloud]
	handle               containers.Handle[*PointCloudInstance]
	allocation           gpu.Allocation[PointCloudInstance]
	transform            math.Mat4
	debugInfo            core.DebugInfo
}

// PointCloudHandle returns the handle of the PointCloud this instance
// places.
func (p *PointCloudInstance) PointCloudHandle() containers.Handle[*elements.PointCloud] {
	return p.pointCloudHandle
}

// PointCloudAllocation returns the gpu index allocation of the PointCloud
// this instance places.
func (p *PointCloudInstance) PointCloudAllocation() gpu.Allocation[elements.PointCloud] {
	return p.pointCloudAllocation
}

// Handle returns the handle of the point cloud instance.
func (p *PointCloudInstance) Handle() containers.Handle[*PointCloudInstance] {
	return p.handle
}

// Allocation returns the gpu index allocation of the point cloud instance.
func (p *PointCloudInstance) Allocation() gpu.Allocation[PointCloudInstance] {
	return p.allocation
}

// Transform returns the world transform of the point cloud instance.
func (p *PointCloudInstance) Transform() math.Mat4 {
	return p.transform
}

// DebugInfo returns the identity of the point cloud instance.
func (p *PointCloudInstance) DebugInfo() core.DebugInfo {
	return p.debugInfo
}

// MutateVia returns an accessor that records every change to the point
// cloud instance into the given transaction.
func (p *PointCloudInstance) MutateVia(transaction transactions.PushEvent) *PointCloudInstanceAccessMut {
	return &PointCloudInstanceAccessMut{pointCloudInstance: p, transaction: transaction}
}

// PointCloudInstanceAccessMut mutates a PointCloudInstance in place while
// recording the change.
type PointCloudInstanceAccessMut struct {
	pointCloudInstance *PointCloudInstance
	transaction        transactions.PushEvent
}

// SetTransform replaces the world transform of the point cloud instance and
// records the update addressed by the instance's gpu slot.
func (a *PointCloudInstanceAccessMut) SetTransform(transform math.Mat4) {
	a.pointCloudInstance.transform = transform
	a.transaction.PushEvent(PointCloudInstanceEvent{
		Kind:       PointCloudInstanceEventUpdateTransform,
		Allocation: a.pointCloudInstance.allocation,
		Transform:  transform,
	})
}

// PointCloudInstanceBuilder assembles a PointCloudInstance; the point cloud
// is mandatory.
type PointCloudInstanceBuilder struct {
	pointCloud *elements.PointCloud
	transform  *math.Mat4
	debugInfo  *core.DebugInfo
}

// Create a new PointCloudInstanceBuilder
func NewPointCloudInstanceBuilder() *PointCloudInstanceBuilder {
	return &PointCloudInstanceBuilder{}
}

// WithPointCloud sets the PointCloud this PointCloudInstance is an instance
// of.
func (b *PointCloudInstanceBuilder) WithPointCloud(pointCloud *elements.PointCloud) *PointCloudInstanceBuilder {
	b.pointCloud = pointCloud
	return b
}

// WithTransform sets the world transform of the PointCloudInstance.
func (b *PointCloudInstanceBuilder) WithTransform(transform math.Mat4) *PointCloudInstanceBuilder {
	b.transform = &transform
	return b
}

// WithDebugInfo sets the DebugInfo of the PointCloudInstance.
func (b *PointCloudInstanceBuilder) WithDebugInfo(debugInfo core.DebugInfo) *PointCloudInstanceBuilder {
	b.debugInfo = &debugInfo
	return b
}

func (b *PointCloudInstanceBuilder) build(handle containers.Handle[*PointCloudInstance], allocation gpu.Allocation[PointCloudInstance]) (*PointCloudInstance, error) {
	if b.pointCloud == nil {
		return nil, ErrPointCloudNotSet
	}
	transform := math.NewMat4Identity()
	if b.transform != nil {
		transform = *b.transform
	}
	debugInfo := core.NewDebugInfo("Anonymous-PointCloudInstance")
	if b.debugInfo != nil {
		debugInfo = *b.debugInfo
	}
	return &PointCloudInstance{
		pointCloudHandle:     b.pointCloud.Handle(),
		pointCloudAllocation: b.pointCloud.Allocation(),
		handle:               handle,
		allocation:           allocation,
		transform:            transform,
		debugInfo:            debugInfo,
	}, nil
}
