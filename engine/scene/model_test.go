package scene_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/scena/engine/math"
	"github.com/spaghettifunk/scena/engine/scene"
)

func TestCubeModel(t *testing.T) {
	model := scene.CubeModel("box", 2, 4, 6)

	assert.Equal(t, "box", model.Name)
	require.Len(t, model.Meshes, 1)
	mesh := model.Meshes[0]
	assert.Equal(t, "box-mesh", mesh.Name)

	// Four vertices per face so that every face keeps its own normals.
	assert.Len(t, mesh.VertexPositions, 24)
	assert.Len(t, mesh.VertexNormals, 24)
	assert.Len(t, mesh.Indices, 36)
	for _, index := range mesh.Indices {
		assert.Less(t, index, uint32(24))
	}

	for _, position := range mesh.VertexPositions {
		assert.InDelta(t, 1.0, math.Abs(position.X), 1e-6)
		assert.InDelta(t, 2.0, math.Abs(position.Y), 1e-6)
		assert.InDelta(t, 3.0, math.Abs(position.Z), 1e-6)
	}
}

func TestCubeModelDefaultsZeroDimensionsToUnit(t *testing.T) {
	model := scene.CubeModel("unit", 0, 0, 0)

	for _, position := range model.Meshes[0].VertexPositions {
		assert.InDelta(t, 0.5, math.Abs(position.X), 1e-6)
		assert.InDelta(t, 0.5, math.Abs(position.Y), 1e-6)
		assert.InDelta(t, 0.5, math.Abs(position.Z), 1e-6)
	}
}
