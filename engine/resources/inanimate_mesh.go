package resources

import (
	"sync"

	"github.com/spaghettifunk/scena/engine/containers"
	"github.com/spaghettifunk/scena/engine/core"
	"github.com/spaghettifunk/scena/engine/math"
)

// MeshType declares how the vertices of an inanimate mesh are assembled into
// primitives.
type MeshType uint8

const (
	MeshTypePoints MeshType = iota
	MeshTypeLines
	MeshTypeLineList
	MeshTypeTriangles
	MeshTypeTriangleList
)

// AllocationType declares whether the vertex data of an inanimate mesh may
// change size after the upload.
type AllocationType uint8

const (
	AllocationTypeStatic AllocationType = iota
	AllocationTypeDynamic
)

var _ Resource = (*InanimateMesh)(nil)

// InanimateMesh is a mesh that is rendered as-is, without element and
// instance indirection. Unlike the other resources it can swap its vertex
// positions after the upload, which makes it the cheapest way to stream
// debug geometry.
type InanimateMesh struct {
	mu              sync.Mutex
	ty              MeshType
	allocationType  AllocationType
	vertexPositions []math.Vec3
	vertexNormals   []math.Vec3
	indices         []uint32
	handle          containers.Handle[*InanimateMesh]
	handleSet       bool
	sender          chan<- Event
	debugInfo       core.DebugInfo
}

// Type returns how the vertices are assembled into primitives.
func (im *InanimateMesh) Type() MeshType {
	return im.ty
}

// AllocationType returns whether the vertex data may change size.
func (im *InanimateMesh) AllocationType() AllocationType {
	return im.allocationType
}

// VerticesLen returns the number of vertices.
func (im *InanimateMesh) VerticesLen() int {
	im.mu.Lock()
	defer im.mu.Unlock()
	return len(im.vertexPositions)
}

// IndicesLen returns the number of indices, or 0 for an unindexed mesh.
func (im *InanimateMesh) IndicesLen() int {
	return len(im.indices)
}

// Handle locates the InanimateMesh in the group that stores it. It panics
// when the mesh was never inserted into a group.
func (im *InanimateMesh) Handle() containers.Handle[*InanimateMesh] {
	im.mu.Lock()
	defer im.mu.Unlock()
	if !im.handleSet {
		panic("handle is not initialized")
	}
	return im.handle
}

// DebugInfo returns the identity of the InanimateMesh.
func (im *InanimateMesh) DebugInfo() core.DebugInfo {
	return im.debugInfo
}

// SetVertexPositions replaces the vertex positions and announces the change
// to the resource receiver. A static mesh must keep its vertex count.
func (im *InanimateMesh) SetVertexPositions(vertexPositions []math.Vec3) error {
	if err := checkDivisibleVerticesLen(len(vertexPositions), im.ty); err != nil {
		return err
	}

	im.mu.Lock()
	if im.allocationType == AllocationTypeStatic && len(vertexPositions) != len(im.vertexPositions) {
		expected := len(im.vertexPositions)
		im.mu.Unlock()
		return &WrongSizeError{Expected: expected, Got: len(vertexPositions)}
	}
	im.vertexPositions = vertexPositions
	im.mu.Unlock()

	im.sender <- Event{
		Kind: EventKindInanimateMesh,
		InanimateMeshes: []InanimateMeshEvent{{
			Kind:            InanimateMeshEventSetVertexPositions,
			InanimateMesh:   im,
			VertexPositions: vertexPositions,
		}},
	}
	return nil
}

func (im *InanimateMesh) setHandle(handle containers.Handle[*InanimateMesh]) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.handle = handle
	im.handleSet = true
}

// Checks if the number of vertices is divisible by the number of vertices
// that is expected due to the MeshType
func checkDivisibleVerticesLen(verticesLen int, ty MeshType) error {
	switch ty {
	case MeshTypeLines, MeshTypeLineList:
		if verticesLen%2 != 0 {
			return &NonDivisibleError{Len: verticesLen, Denominator: 2}
		}
	case MeshTypeTriangles, MeshTypeTriangleList:
		if verticesLen%3 != 0 {
			return &NonDivisibleError{Len: verticesLen, Denominator: 3}
		}
	}
	return nil
}

// Checks if the indices are valid for the given number of vertices
func checkIndices(verticesLen int, indices []uint32) error {
	for indexIndex, indexValue := range indices {
		if int(indexValue) >= verticesLen {
			return &WrongIndexError{
				VerticesLen: verticesLen,
				IndexIndex:  indexIndex,
				IndexValue:  indexValue,
			}
		}
	}
	return nil
}
