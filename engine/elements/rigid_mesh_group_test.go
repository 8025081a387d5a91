package elements_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/scena/engine/core"
	"github.com/spaghettifunk/scena/engine/elements"
	"github.com/spaghettifunk/scena/engine/math"
	"github.com/spaghettifunk/scena/engine/renderer/renderertest"
	"github.com/spaghettifunk/scena/engine/resources"
	"github.com/spaghettifunk/scena/engine/transactions"
)

func newMeshAttributes(t *testing.T, backend *renderertest.Backend) *resources.MeshAttributes {
	t.Helper()
	positions := []math.Vec3{
		math.NewVec3(0, 0, 0),
		math.NewVec3(1, 0, 0),
		math.NewVec3(0, 1, 0),
	}
	group := resources.NewResourceGroup(backend, core.NewDebugInfo("test")).MeshAttributes()
	meshAttributes, err := group.Insert(resources.NewMeshAttributesBuilder().
		WithVertexPositions(positions).
		WithVertexNormals(math.GenerateNormals(positions, []uint32{0, 1, 2})).
		WithIndices([]uint32{0, 1, 2}))
	require.NoError(t, err)
	return meshAttributes
}

func TestRigidMeshInsert(t *testing.T) {
	backend := renderertest.NewBackend(nil)
	defer backend.Shutdown()
	meshAttributes := newMeshAttributes(t, backend)
	group := elements.NewElementGroup(backend, core.NewDebugInfo("test")).RigidMeshes()

	transaction := transactions.New()
	handle, err := group.MutateVia(transaction).Insert(elements.NewRigidMeshBuilder().
		WithMeshAttributes(meshAttributes).
		WithPreferredMeshRepresentation(elements.MeshRepresentationSimple).
		WithDebugInfo(core.NewDebugInfo("cube")))
	require.NoError(t, err)

	rigidMesh, ok := group.Get(handle)
	require.True(t, ok)
	assert.Equal(t, uint32(0), handle.Index())
	assert.Equal(t, uint32(0), rigidMesh.Allocation().Index())
	assert.Same(t, meshAttributes, rigidMesh.MeshAttributes())
	assert.Equal(t, elements.MeshRepresentationSimple, rigidMesh.PreferredMeshRepresentation())
	assert.Equal(t, "cube", rigidMesh.DebugInfo().Name())

	events := transaction.Process()
	require.Len(t, events, 1)
	insert, ok := events[0].(elements.RigidMeshEvent)
	require.True(t, ok)
	assert.Equal(t, elements.RigidMeshEventInsert, insert.Kind)
	assert.Same(t, rigidMesh, insert.RigidMesh)
}

func TestRigidMeshDefaultsToMeshlets(t *testing.T) {
	backend := renderertest.NewBackend(nil)
	defer backend.Shutdown()
	group := elements.NewElementGroup(backend, core.NewDebugInfo("test")).RigidMeshes()

	handle, err := group.MutateVia(transactions.New()).Insert(elements.NewRigidMeshBuilder().
		WithMeshAttributes(newMeshAttributes(t, backend)))
	require.NoError(t, err)

	rigidMesh, ok := group.Get(handle)
	require.True(t, ok)
	assert.Equal(t, elements.MeshRepresentationMeshlets, rigidMesh.PreferredMeshRepresentation())
	assert.Equal(t, "Anonymous-RigidMesh", rigidMesh.DebugInfo().Name())
}

func TestRigidMeshInsertRollsBackTheAllocation(t *testing.T) {
	backend := renderertest.NewBackend(nil)
	defer backend.Shutdown()
	group := elements.NewElementGroup(backend, core.NewDebugInfo("test")).RigidMeshes()

	transaction := transactions.New()
	mut := group.MutateVia(transaction)

	// The mesh attributes are mandatory, so this insert must fail without
	// leaving a trace in the group or the allocator.
	_, err := mut.Insert(elements.NewRigidMeshBuilder())
	require.ErrorIs(t, err, elements.ErrMeshAttributesNotSet)
	assert.Equal(t, 0, group.Len())
	assert.True(t, transaction.IsEmpty())

	handle, err := mut.Insert(elements.NewRigidMeshBuilder().
		WithMeshAttributes(newMeshAttributes(t, backend)))
	require.NoError(t, err)
	rigidMesh, ok := group.Get(handle)
	require.True(t, ok)
	assert.Equal(t, uint32(0), handle.Index())
	assert.Equal(t, uint32(0), rigidMesh.Allocation().Index(), "the rolled back gpu slot is handed out again")
}

func TestRigidMeshAllocatorIsUnaffectedByOtherKinds(t *testing.T) {
	cfg := renderertest.SmallConfig()
	cfg.MaxCameraCount = 1
	backend := renderertest.NewBackend(cfg)
	defer backend.Shutdown()
	elementGroup := elements.NewElementGroup(backend, core.NewDebugInfo("test"))

	transaction := transactions.New()
	cameras := elementGroup.Cameras().MutateVia(transaction)
	_, err := cameras.Insert(elements.NewCameraBuilder())
	require.NoError(t, err)
	_, err = cameras.Insert(elements.NewCameraBuilder())
	var allocationFailed *elements.AllocationFailedError
	require.ErrorAs(t, err, &allocationFailed)

	// An exhausted camera allocator leaves the rigid mesh allocator alone.
	handle, err := elementGroup.RigidMeshes().MutateVia(transaction).Insert(elements.NewRigidMeshBuilder().
		WithMeshAttributes(newMeshAttributes(t, backend)))
	require.NoError(t, err)
	rigidMesh, ok := elementGroup.RigidMeshes().Get(handle)
	require.True(t, ok)
	assert.Equal(t, uint32(0), rigidMesh.Allocation().Index())
}

func TestRigidMeshInsertPanicsAfterShutdown(t *testing.T) {
	backend := renderertest.NewBackend(nil)
	group := elements.NewElementGroup(backend, core.NewDebugInfo("test")).RigidMeshes()
	require.NoError(t, backend.Shutdown())

	assert.PanicsWithValue(t, "the gpu index allocator of the RigidMeshGroup was revoked", func() {
		group.MutateVia(transactions.New()).Insert(elements.NewRigidMeshBuilder())
	})
}

func TestMeshRepresentationString(t *testing.T) {
	assert.Equal(t, "Meshlets", elements.MeshRepresentationMeshlets.String())
	assert.Equal(t, "Simple", elements.MeshRepresentationSimple.String())
}
