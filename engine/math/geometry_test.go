package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNormalsForTriangle(t *testing.T) {
	positions := []Vec3{
		NewVec3(0, 0, 0),
		NewVec3(1, 0, 0),
		NewVec3(0, 1, 0),
	}

	normals := GenerateNormals(positions, []uint32{0, 1, 2})
	require.Len(t, normals, 3)

	// Counter-clockwise winding in the XY plane faces +Z.
	for _, normal := range normals {
		assert.True(t, normal.Compare(NewVec3(0, 0, 1), K_FLOAT_EPSILON), "got %v", normal)
	}
}

func TestGenerateNormalsIgnoresDanglingIndices(t *testing.T) {
	positions := []Vec3{
		NewVec3(0, 0, 0),
		NewVec3(1, 0, 0),
		NewVec3(0, 1, 0),
		NewVec3(2, 2, 2),
	}

	// The trailing index is not a full triangle and must be skipped.
	normals := GenerateNormals(positions, []uint32{0, 1, 2, 3})
	require.Len(t, normals, 4)
	assert.Equal(t, NewVec3Zero(), normals[3])
}

func TestBoundingSphere(t *testing.T) {
	points := []Vec3{
		NewVec3(-1, 0, 0),
		NewVec3(1, 0, 0),
		NewVec3(0, -1, 0),
		NewVec3(0, 1, 0),
	}

	center, radius := BoundingSphere(points)
	assert.True(t, center.Compare(NewVec3Zero(), K_FLOAT_EPSILON))
	assert.InDelta(t, 1.0, radius, float64(K_FLOAT_EPSILON))
}

func TestBoundingSphereEmpty(t *testing.T) {
	center, radius := BoundingSphere(nil)
	assert.Equal(t, NewVec3Zero(), center)
	assert.Equal(t, float32(0), radius)
}
