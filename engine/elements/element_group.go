package elements

import (
	"github.com/spaghettifunk/scena/engine/core"
	"github.com/spaghettifunk/scena/engine/gpu"
)

// Backend is the capability the element tier needs from a renderer backend.
type Backend interface {
	GpuAllocators() *gpu.Provider
}

// ElementGroup bundles the element containers a renderer instance works
// with.
type ElementGroup struct {
	cameras     *CameraGroup
	rigidMeshes *RigidMeshGroup
	pointClouds *PointCloudGroup
	debugInfo   core.DebugInfo
}

// Create a new ElementGroup wired to the backend's allocators
func NewElementGroup(backend Backend, debugInfo core.DebugInfo) *ElementGroup {
	provider := backend.GpuAllocators()
	return &ElementGroup{
		cameras: NewCameraGroup(
			gpu.RefOf[Camera](provider),
			core.NewDebugInfo(debugInfo.Name()+"-CameraGroup"),
		),
		rigidMeshes: NewRigidMeshGroup(
			gpu.RefOf[RigidMesh](provider),
			core.NewDebugInfo(debugInfo.Name()+"-RigidMeshGroup"),
		),
		pointClouds: NewPointCloudGroup(
			gpu.RefOf[PointCloud](provider),
			core.NewDebugInfo(debugInfo.Name()+"-PointCloudGroup"),
		),
		debugInfo: debugInfo,
	}
}

// Cameras returns the group that stores the Cameras.
func (eg *ElementGroup) Cameras() *CameraGroup {
	return eg.cameras
}

// RigidMeshes returns the group that stores the RigidMeshes.
func (eg *ElementGroup) RigidMeshes() *RigidMeshGroup {
	return eg.rigidMeshes
}

// PointClouds returns the group that stores the PointClouds.
func (eg *ElementGroup) PointClouds() *PointCloudGroup {
	return eg.pointClouds
}

// DebugInfo returns the identity of the group.
func (eg *ElementGroup) DebugInfo() core.DebugInfo {
	return eg.debugInfo
}
