package resources

import (
	"github.com/spaghettifunk/scena/engine/containers"
	"github.com/spaghettifunk/scena/engine/core"
	"github.com/spaghettifunk/scena/engine/gpu"
	"github.com/spaghettifunk/scena/engine/math"
)

// Meshlet is a small cluster of triangles the renderer can cull as one unit.
// Global indices reference the vertices of the surrounding mesh, local
// indices form triangles over the meshlet's global index list.
type Meshlet struct {
	GlobalIndices []uint32
	LocalIndices  [][3]uint8
}

var _ Resource = (*MeshAttributes)(nil)

// MeshAttributes is the vertex data of a mesh. It is immutable once built
// and shared by every rigid mesh that renders it.
type MeshAttributes struct {
	vertexPositions []math.Vec3
	vertexNormals   []math.Vec3
	indices         []uint32
	meshlets        []Meshlet
	handle          containers.Handle[*MeshAttributes]
	allocation      gpu.Allocation[MeshAttributes]
	debugInfo       core.DebugInfo
}

// VertexPositions returns the vertex positions.
func (ma *MeshAttributes) VertexPositions() []math.Vec3 {
	return ma.vertexPositions
}

// VertexNormals returns the vertex normals.
func (ma *MeshAttributes) VertexNormals() []math.Vec3 {
	return ma.vertexNormals
}

// Indices returns the index buffer, or nil for an unindexed mesh.
func (ma *MeshAttributes) Indices() []uint32 {
	return ma.indices
}

// Meshlets returns the meshlets, or nil when the mesh has none.
func (ma *MeshAttributes) Meshlets() []Meshlet {
	return ma.meshlets
}

// Handle locates the MeshAttributes in the MeshAttributesGroup that stores
// it.
func (ma *MeshAttributes) Handle() containers.Handle[*MeshAttributes] {
	return ma.handle
}

// Allocation returns the slot of the MeshAttributes in the backend's
// mesh attributes arrays.
func (ma *MeshAttributes) Allocation() gpu.Allocation[MeshAttributes] {
	return ma.allocation
}

// DebugInfo returns the identity of the MeshAttributes.
func (ma *MeshAttributes) DebugInfo() core.DebugInfo {
	return ma.debugInfo
}

// MeshAttributesBuilder assembles the vertex data of a mesh. Pass it to
// MeshAttributesGroup.Insert, which validates and builds the MeshAttributes.
type MeshAttributesBuilder struct {
	vertexPositions []math.Vec3
	vertexNormals   []math.Vec3
	indices         []uint32
	meshlets        []Meshlet
	debugInfo       *core.DebugInfo
}

// Create a new MeshAttributesBuilder
func NewMeshAttributesBuilder() *MeshAttributesBuilder {
	return &MeshAttributesBuilder{}
}

// WithVertexPositions sets the vertex positions. This is a required
// attribute.
func (b *MeshAttributesBuilder) WithVertexPositions(vertexPositions []math.Vec3) *MeshAttributesBuilder {
	b.vertexPositions = vertexPositions
	return b
}

// WithVertexNormals sets the vertex normals. This is a required attribute.
func (b *MeshAttributesBuilder) WithVertexNormals(vertexNormals []math.Vec3) *MeshAttributesBuilder {
	b.vertexNormals = vertexNormals
	return b
}

// WithIndices sets the index buffer. This is an optional attribute.
func (b *MeshAttributesBuilder) WithIndices(indices []uint32) *MeshAttributesBuilder {
	b.indices = indices
	return b
}

// WithMeshlets sets the meshlets. This is an optional attribute.
func (b *MeshAttributesBuilder) WithMeshlets(meshlets []Meshlet) *MeshAttributesBuilder {
	b.meshlets = meshlets
	return b
}

// WithDebugInfo names the MeshAttributes. This is an optional attribute.
func (b *MeshAttributesBuilder) WithDebugInfo(debugInfo core.DebugInfo) *MeshAttributesBuilder {
	b.debugInfo = &debugInfo
	return b
}

func (b *MeshAttributesBuilder) build(
	handle containers.Handle[*MeshAttributes],
	allocation gpu.Allocation[MeshAttributes],
) (*MeshAttributes, error) {
	if b.vertexPositions == nil {
		return nil, &MandatoryAttributeMissingError{Attribute: AttributePositions}
	}
	if b.vertexNormals == nil {
		return nil, &MandatoryAttributeMissingError{Attribute: AttributeNormals}
	}

	// The vertex positions determine the expected number of attributes.
	if len(b.vertexNormals) != len(b.vertexPositions) {
		return nil, &WrongSizeError{
			Expected: len(b.vertexPositions),
			Got:      len(b.vertexNormals),
		}
	}

	core.LogDebug("checking every index of %d", len(b.indices))
	for indexIndex, indexValue := range b.indices {
		if int(indexValue) >= len(b.vertexPositions) {
			return nil, &WrongIndexError{
				VerticesLen: len(b.vertexPositions),
				IndexIndex:  indexIndex,
				IndexValue:  indexValue,
			}
		}
	}

	core.LogDebug("checking every index of %d meshlets", len(b.meshlets))
	for meshletIndex, meshlet := range b.meshlets {
		for indexIndex, indexValue := range meshlet.GlobalIndices {
			if int(indexValue) >= len(b.vertexPositions) {
				return nil, &WrongGlobalMeshletIndexError{
					MeshletIndex: meshletIndex,
					IndexIndex:   indexIndex,
					IndexValue:   indexValue,
				}
			}
		}
		for triangleIndex, triangle := range meshlet.LocalIndices {
			for _, localValue := range triangle {
				if int(localValue) >= len(meshlet.GlobalIndices) {
					return nil, &WrongLocalMeshletIndexError{
						MeshletIndex:  meshletIndex,
						TriangleIndex: triangleIndex,
						IndexValue:    localValue,
					}
				}
			}
		}
	}

	debugInfo := core.NewDebugInfo("Anonymous-MeshAttributes")
	if b.debugInfo != nil {
		debugInfo = *b.debugInfo
	}

	return &MeshAttributes{
		vertexPositions: b.vertexPositions,
		vertexNormals:   b.vertexNormals,
		indices:         b.indices,
		meshlets:        b.meshlets,
		handle:          handle,
		allocation:      allocation,
		debugInfo:       debugInfo,
	}, nil
}
