package instances

import (
	"github.com/spaghettifunk/scena/engine/core"
	"github.com/spaghettifunk/scena/engine/gpu"
)

// Backend is the capability the instance tier needs from a renderer backend.
type Backend interface {
	GpuAllocators() *gpu.Provider
}

// InstanceGroup bundles the instance containers a renderer instance works
// with.
type InstanceGroup struct {
	cameraInstances     *CameraInstanceGroup
	rigidMeshInstances  *RigidMeshInstanceGroup
	pointCloudInstances *PointCloudInstanceGroup
	debugInfo           core.DebugInfo
}

// Create a new InstanceGroup wired to the backend's allocators
func NewInstanceGroup(backend Backend, debugInfo core.DebugInfo) *InstanceGroup {
	provider := backend.GpuAllocators()
	return &InstanceGroup{
		cameraInstances: NewCameraInstanceGroup(
			gpu.RefOf[CameraInstance](provider),
			core.NewDebugInfo(debugInfo.Name()+"-CameraInstanceGroup"),
		),
		rigidMeshInstances: NewRigidMeshInstanceGroup(
			gpu.RefOf[RigidMeshInstance](provider),
			core.NewDebugInfo(debugInfo.Name()+"-RigidMeshInstanceGroup"),
		),
		pointCloudInstances: NewPointCloudInstanceGroup(
			gpu.RefOf[PointCloudInstance](provider),
			core.NewDebugInfo(debugInfo.Name()+"-PointCloudInstanceGroup"),
		),
		debugInfo: debugInfo,
	}
}

// CameraInstances returns the group that stores the CameraInstances.
func (ig *InstanceGroup) CameraInstances() *CameraInstanceGroup {
	return ig.cameraInstances
}

// RigidMeshInstances returns the group that stores the RigidMeshInstances.
func (ig *InstanceGroup) RigidMeshInstances() *RigidMeshInstanceGroup {
	return ig.rigidMeshInstances
}

// PointCloudInstances returns the group that stores the PointCloudInstances.
func (ig *InstanceGroup) PointCloudInstances() *PointCloudInstanceGroup {
	return ig.pointCloudInstances
}

// DebugInfo returns the identity of the group.
func (ig *InstanceGroup) DebugInfo() core.DebugInfo {
	return ig.debugInfo
}
