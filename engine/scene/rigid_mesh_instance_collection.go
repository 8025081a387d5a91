package scene

import (
	"fmt"

	"github.com/spaghettifunk/scena/engine/containers"
	"github.com/spaghettifunk/scena/engine/core"
	"github.com/spaghettifunk/scena/engine/elements"
	"github.com/spaghettifunk/scena/engine/instances"
	"github.com/spaghettifunk/scena/engine/math"
	"github.com/spaghettifunk/scena/engine/transactions"
)

// RigidMeshInstanceCollection places every rigid mesh of a
// RigidMeshCollection in the scene with a shared transform.
type RigidMeshInstanceCollection struct {
	rigidMeshInstances []containers.Handle[*instances.RigidMeshInstance]
}

// Create a new RigidMeshInstanceCollection from a RigidMeshCollection
func NewRigidMeshInstanceCollection(
	collection *RigidMeshCollection,
	rigidMeshGroup *elements.RigidMeshGroup,
	instanceGroup *instances.InstanceGroup,
	transaction transactions.PushEvent,
	transform math.Mat4,
) (*RigidMeshInstanceCollection, error) {
	instanceCollection := &RigidMeshInstanceCollection{}
	for i, rigidMeshHandle := range collection.RigidMeshes() {
		rigidMesh, ok := rigidMeshGroup.Get(rigidMeshHandle)
		if !ok {
			panic("RigidMesh of the collection not found")
		}
		builder := instances.NewRigidMeshInstanceBuilder().
			WithDebugInfo(core.NewDebugInfo(fmt.Sprintf("RigidMeshInstance-from-RigidMeshCollection-%d", i))).
			WithRigidMesh(rigidMesh).
			WithTransform(transform)
		handle, err := instanceGroup.RigidMeshInstances().MutateVia(transaction).Insert(builder)
		if err != nil {
			return nil, fmt.Errorf("failed to insert rigid mesh instance %d: %w", i, err)
		}
		instanceCollection.rigidMeshInstances = append(instanceCollection.rigidMeshInstances, handle)
	}
	return instanceCollection, nil
}

// RigidMeshInstances returns the handles of the inserted RigidMeshInstances.
func (c *RigidMeshInstanceCollection) RigidMeshInstances() []containers.Handle[*instances.RigidMeshInstance] {
	return c.rigidMeshInstances
}
