package elements

import (
	"github.com/spaghettifunk/scena/engine/containers"
	"github.com/spaghettifunk/scena/engine/core"
	"github.com/spaghettifunk/scena/engine/gpu"
	"github.com/spaghettifunk/scena/engine/resources"
)

// MeshRepresentation determines how a RigidMesh prefers to be rendered when
// its attributes carry meshlets.
type MeshRepresentation int

const (
	// MeshRepresentationMeshlets renders with meshlets when they are present.
	MeshRepresentationMeshlets MeshRepresentation = iota
	// MeshRepresentationSimple renders as a plain indexed mesh even when
	// meshlets are present.
	MeshRepresentationSimple
)

func (r MeshRepresentation) String() string {
	switch r {
	case MeshRepresentationMeshlets:
		return "Meshlets"
	case MeshRepresentationSimple:
		return "Simple"
	default:
		return "Unknown"
	}
}

// RigidMesh is a non-animated scene object that binds mesh attributes to a
// gpu slot. A RigidMesh is not visible by itself; RigidMeshInstances place
// it in the scene.
type RigidMesh struct {
	meshAttributes              *resources.MeshAttributes
	preferredMeshRepresentation MeshRepresentation
	handle                      containers.Handle[*RigidMesh]
	allocation                  gpu.Allocation[RigidMesh]
	debugInfo                   core.DebugInfo
}

// MeshAttributes returns the mesh attributes of the rigid mesh.
func (r *RigidMesh) MeshAttributes() *resources.MeshAttributes {
	return r.meshAttributes
}

// PreferredMeshRepresentation returns the representation the rigid mesh
// prefers to be rendered with.
func (r *RigidMesh) PreferredMeshRepresentation() MeshRepresentation {
	return r.preferredMeshRepresentation
}

// Handle returns the handle of the rigid mesh.
func (r *RigidMesh) Handle() containers.Handle[*RigidMesh] {
	return r.handle
}

// Allocation returns the gpu index allocation of the rigid mesh.
func (r *RigidMesh) Allocation() gpu.Allocation[RigidMesh] {
	return r.allocation
}

// DebugInfo returns the identity of the rigid mesh.
func (r *RigidMesh) DebugInfo() core.DebugInfo {
	return r.debugInfo
}

// RigidMeshBuilder assembles a RigidMesh; the mesh attributes are mandatory.
type RigidMeshBuilder struct {
	meshAttributes              *resources.MeshAttributes
	preferredMeshRepresentation *MeshRepresentation
	debugInfo                   *core.DebugInfo
}

// Create a new RigidMeshBuilder
func NewRigidMeshBuilder() *RigidMeshBuilder {
	return &RigidMeshBuilder{}
}

// WithMeshAttributes sets the MeshAttributes of the RigidMesh.
func (b *RigidMeshBuilder) WithMeshAttributes(meshAttributes *resources.MeshAttributes) *RigidMeshBuilder {
	b.meshAttributes = meshAttributes
	return b
}

// WithPreferredMeshRepresentation sets the preferred MeshRepresentation of
// the RigidMesh.
func (b *RigidMeshBuilder) WithPreferredMeshRepresentation(representation MeshRepresentation) *RigidMeshBuilder {
	b.preferredMeshRepresentation = &representation
	return b
}

// WithDebugInfo sets the DebugInfo of the RigidMesh.
func (b *RigidMeshBuilder) WithDebugInfo(debugInfo core.DebugInfo) *RigidMeshBuilder {
	b.debugInfo = &debugInfo
	return b
}

func (b *RigidMeshBuilder) build(handle containers.Handle[*RigidMesh], allocation gpu.Allocation[RigidMesh]) (*RigidMesh, error) {
	if b.meshAttributes == nil {
		return nil, ErrMeshAttributesNotSet
	}
	representation := MeshRepresentationMeshlets
	if b.preferredMeshRepresentation != nil {
		representation = *b.preferredMeshRepresentation
	}
	debugInfo := core.NewDebugInfo("Anonymous-RigidMesh")
	if b.debugInfo != nil {
		debugInfo = *b.debugInfo
	}
	return &RigidMesh{
		meshAttributes:              b.meshAttributes,
		preferredMeshRepresentation: representation,
		handle:                      handle,
		allocation:                  allocation,
		debugInfo:                   debugInfo,
	}, nil
}
