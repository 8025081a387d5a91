package scene

import (
	"github.com/spaghettifunk/scena/engine/math"
	"github.com/spaghettifunk/scena/engine/resources"
)

// ModelMesh is one mesh of a model with the attribute arrays the resource
// tier consumes.
type ModelMesh struct {
	Name            string
	VertexPositions []math.Vec3
	VertexNormals   []math.Vec3
	Indices         []uint32
	Meshlets        []resources.Meshlet
}

// Model is an in-memory multi-mesh asset.
type Model struct {
	Name   string
	Meshes []ModelMesh
}

// CubeModel returns a box model with one mesh of 24 vertices, four per face
// so that every face keeps its own normals.
func CubeModel(name string, width, height, depth float32) *Model {
	if width == 0 {
		width = 1.0
	}
	if height == 0 {
		height = 1.0
	}
	if depth == 0 {
		depth = 1.0
	}

	minX := -width * 0.5
	minY := -height * 0.5
	minZ := -depth * 0.5
	maxX := width * 0.5
	maxY := height * 0.5
	maxZ := depth * 0.5

	positions := []math.Vec3{
		// Front face
		math.NewVec3(minX, minY, maxZ),
		math.NewVec3(maxX, maxY, maxZ),
		math.NewVec3(minX, maxY, maxZ),
		math.NewVec3(maxX, minY, maxZ),
		// Back face
		math.NewVec3(maxX, minY, minZ),
		math.NewVec3(minX, maxY, minZ),
		math.NewVec3(maxX, maxY, minZ),
		math.NewVec3(minX, minY, minZ),
		// Left face
		math.NewVec3(minX, minY, minZ),
		math.NewVec3(minX, maxY, maxZ),
		math.NewVec3(minX, maxY, minZ),
		math.NewVec3(minX, minY, maxZ),
		// Right face
		math.NewVec3(maxX, minY, maxZ),
		math.NewVec3(maxX, maxY, minZ),
		math.NewVec3(maxX, maxY, maxZ),
		math.NewVec3(maxX, minY, minZ),
		// Bottom face
		math.NewVec3(maxX, minY, maxZ),
		math.NewVec3(minX, minY, minZ),
		math.NewVec3(maxX, minY, minZ),
		math.NewVec3(minX, minY, maxZ),
		// Top face
		math.NewVec3(minX, maxY, maxZ),
		math.NewVec3(maxX, maxY, minZ),
		math.NewVec3(minX, maxY, minZ),
		math.NewVec3(maxX, maxY, maxZ),
	}

	indices := make([]uint32, 6*6)
	for i := 0; i < 6; i++ {
		vOffset := uint32(i * 4)
		iOffset := i * 6
		indices[iOffset+0] = vOffset + 0
		indices[iOffset+1] = vOffset + 1
		indices[iOffset+2] = vOffset + 2
		indices[iOffset+3] = vOffset + 0
		indices[iOffset+4] = vOffset + 3
		indices[iOffset+5] = vOffset + 1
	}

	return &Model{
		Name: name,
		Meshes: []ModelMesh{{
			Name:            name + "-mesh",
			VertexPositions: positions,
			VertexNormals:   math.GenerateNormals(positions, indices),
			Indices:         indices,
		}},
	}
}
