package resources

import "fmt"

// AttributeType identifies a vertex attribute in validation errors.
type AttributeType uint8

const (
	AttributePositions AttributeType = iota
	AttributeNormals
	AttributePointPositions
	AttributePointColors
)

func (at AttributeType) String() string {
	switch at {
	case AttributePositions:
		return "VertexPositions"
	case AttributeNormals:
		return "VertexNormals"
	case AttributePointPositions:
		return "PointPositions"
	case AttributePointColors:
		return "PointColors"
	default:
		return fmt.Sprintf("AttributeType(%d)", uint8(at))
	}
}

// MandatoryAttributeMissingError reports a builder that was not given a
// required attribute.
type MandatoryAttributeMissingError struct {
	Attribute AttributeType
}

func (e *MandatoryAttributeMissingError) Error() string {
	return fmt.Sprintf("the %s are missing", e.Attribute)
}

// WrongSizeError reports an attribute whose length doesn't match the number
// of vertices.
type WrongSizeError struct {
	Expected int
	Got      int
}

func (e *WrongSizeError) Error() string {
	return fmt.Sprintf("the number of attributes doesn't match the number of vertices: expected %d but got %d", e.Expected, e.Got)
}

// WrongIndexError reports an index that references a vertex that doesn't
// exist.
type WrongIndexError struct {
	VerticesLen int
	IndexIndex  int
	IndexValue  uint32
}

func (e *WrongIndexError) Error() string {
	return fmt.Sprintf("the index %d is out of bounds: the number of vertices is %d but the index is %d", e.IndexIndex, e.VerticesLen, e.IndexValue)
}

// WrongGlobalMeshletIndexError reports a global index in a meshlet that
// references a vertex that doesn't exist.
type WrongGlobalMeshletIndexError struct {
	MeshletIndex int
	IndexIndex   int
	IndexValue   uint32
}

func (e *WrongGlobalMeshletIndexError) Error() string {
	return fmt.Sprintf("global index %d of meshlet %d references vertex %d which doesn't exist", e.IndexIndex, e.MeshletIndex, e.IndexValue)
}

// WrongLocalMeshletIndexError reports a local index in a meshlet that
// references a global index that doesn't exist.
type WrongLocalMeshletIndexError struct {
	MeshletIndex  int
	TriangleIndex int
	IndexValue    uint8
}

func (e *WrongLocalMeshletIndexError) Error() string {
	return fmt.Sprintf("local index %d of meshlet %d references global index %d which doesn't exist", e.TriangleIndex, e.MeshletIndex, e.IndexValue)
}

// NonDivisibleError reports a vertex count that doesn't fit the mesh type.
type NonDivisibleError struct {
	Len         int
	Denominator int
}

func (e *NonDivisibleError) Error() string {
	return fmt.Sprintf("the number of vertices must be divisible by %d but is %d", e.Denominator, e.Len)
}

// AllocationFailedError reports that the backend ran out of GPU array slots
// for a resource kind.
type AllocationFailedError struct {
	Resource string
}

func (e *AllocationFailedError) Error() string {
	return fmt.Sprintf("allocating a gpu index for a %s failed", e.Resource)
}
