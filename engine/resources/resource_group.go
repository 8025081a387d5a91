package resources

import (
	"github.com/spaghettifunk/scena/engine/core"
	"github.com/spaghettifunk/scena/engine/gpu"
)

// ResourceGroup bundles the resource containers a renderer instance works
// with.
type ResourceGroup struct {
	meshAttributes       *MeshAttributesGroup
	pointCloudAttributes *PointCloudAttributesGroup
	inanimateMeshes      *InanimateMeshGroup
	debugInfo            core.DebugInfo
}

// Create a new ResourceGroup wired to the backend's allocators and resource
// receiver
func NewResourceGroup(backend Backend, debugInfo core.DebugInfo) *ResourceGroup {
	provider := backend.GpuAllocators()
	return &ResourceGroup{
		meshAttributes: NewMeshAttributesGroup(
			backend,
			gpu.RefOf[MeshAttributes](provider),
			core.NewDebugInfo(debugInfo.Name()+"-MeshAttributesGroup"),
		),
		pointCloudAttributes: NewPointCloudAttributesGroup(
			backend,
			gpu.RefOf[PointCloudAttributes](provider),
			core.NewDebugInfo(debugInfo.Name()+"-PointCloudAttributesGroup"),
		),
		inanimateMeshes: NewInanimateMeshGroup(
			backend,
			core.NewDebugInfo(debugInfo.Name()+"-InanimateMeshGroup"),
		),
		debugInfo: debugInfo,
	}
}

// MeshAttributes returns the group that stores the MeshAttributes.
func (rg *ResourceGroup) MeshAttributes() *MeshAttributesGroup {
	return rg.meshAttributes
}

// PointCloudAttributes returns the group that stores the
// PointCloudAttributes.
func (rg *ResourceGroup) PointCloudAttributes() *PointCloudAttributesGroup {
	return rg.pointCloudAttributes
}

// InanimateMeshes returns the group that stores the InanimateMeshes.
func (rg *ResourceGroup) InanimateMeshes() *InanimateMeshGroup {
	return rg.inanimateMeshes
}

// DebugInfo returns the identity of the group.
func (rg *ResourceGroup) DebugInfo() core.DebugInfo {
	return rg.debugInfo
}
