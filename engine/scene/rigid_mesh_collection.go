package scene

import (
	"fmt"

	"github.com/spaghettifunk/scena/engine/containers"
	"github.com/spaghettifunk/scena/engine/core"
	"github.com/spaghettifunk/scena/engine/elements"
	"github.com/spaghettifunk/scena/engine/resources"
	"github.com/spaghettifunk/scena/engine/transactions"
)

// RigidMeshCollection is the result of turning every mesh of a model into a
// MeshAttributes plus RigidMesh pair.
type RigidMeshCollection struct {
	meshAttributes []*resources.MeshAttributes
	rigidMeshes    []containers.Handle[*elements.RigidMesh]
}

// Create a new RigidMeshCollection from every mesh of the model
func NewRigidMeshCollection(
	model *Model,
	resourceGroup *resources.ResourceGroup,
	elementGroup *elements.ElementGroup,
	transaction transactions.PushEvent,
) (*RigidMeshCollection, error) {
	collection := &RigidMeshCollection{}
	for i, mesh := range model.Meshes {
		meshAttributesBuilder := resources.NewMeshAttributesBuilder().
			WithDebugInfo(core.NewDebugInfo(fmt.Sprintf("MeshAttributes-Model-%s-Mesh-%d", model.Name, i))).
			WithVertexPositions(mesh.VertexPositions).
			WithVertexNormals(mesh.VertexNormals).
			WithIndices(mesh.Indices).
			WithMeshlets(mesh.Meshlets)
		meshAttributes, err := resourceGroup.MeshAttributes().Insert(meshAttributesBuilder)
		if err != nil {
			return nil, fmt.Errorf("failed to insert mesh attributes for mesh %d of model %s: %w", i, model.Name, err)
		}

		rigidMeshBuilder := elements.NewRigidMeshBuilder().
			WithDebugInfo(core.NewDebugInfo(fmt.Sprintf("RigidMesh-Model-%s-Mesh-%d", model.Name, i))).
			WithPreferredMeshRepresentation(elements.MeshRepresentationSimple).
			WithMeshAttributes(meshAttributes)
		rigidMesh, err := elementGroup.RigidMeshes().MutateVia(transaction).Insert(rigidMeshBuilder)
		if err != nil {
			return nil, fmt.Errorf("failed to insert rigid mesh for mesh %d of model %s: %w", i, model.Name, err)
		}

		collection.meshAttributes = append(collection.meshAttributes, meshAttributes)
		collection.rigidMeshes = append(collection.rigidMeshes, rigidMesh)
	}
	return collection, nil
}

// MeshAttributes returns the inserted MeshAttributes, one per model mesh.
func (c *RigidMeshCollection) MeshAttributes() []*resources.MeshAttributes {
	return c.meshAttributes
}

// RigidMeshes returns the handles of the inserted RigidMeshes, one per model
// mesh.
func (c *RigidMeshCollection) RigidMeshes() []containers.Handle[*elements.RigidMesh] {
	return c.rigidMeshes
}
