package elements_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/scena/engine/core"
	"github.com/spaghettifunk/scena/engine/elements"
	"github.com/spaghettifunk/scena/engine/math"
	"github.com/spaghettifunk/scena/engine/renderer/renderertest"
	"github.com/spaghettifunk/scena/engine/transactions"
)

func TestCameraInsert(t *testing.T) {
	backend := renderertest.NewBackend(nil)
	defer backend.Shutdown()
	group := elements.NewElementGroup(backend, core.NewDebugInfo("test")).Cameras()

	transaction := transactions.New()
	projection := elements.NewPerspectiveProjection(math.K_PI/3.0, 16.0/9.0, 0.1, 100)
	handle, err := group.MutateVia(transaction).Insert(elements.NewCameraBuilder().
		WithProjection(projection).
		WithDebugInfo(core.NewDebugInfo("main-camera")))
	require.NoError(t, err)

	camera, ok := group.Get(handle)
	require.True(t, ok)
	assert.Equal(t, uint32(0), handle.Index())
	assert.Equal(t, handle, camera.Handle())
	assert.Equal(t, uint32(0), camera.Allocation().Index())
	assert.Equal(t, "main-camera", camera.DebugInfo().Name())
	assert.Equal(t, projection, camera.Projection())
	assert.Equal(t, projection.Matrix(), camera.ProjectionMatrix())
	assert.Equal(t, 1, group.Len())

	events := transaction.Process()
	require.Len(t, events, 1)
	insert, ok := events[0].(elements.CameraEvent)
	require.True(t, ok)
	assert.Equal(t, elements.CameraEventInsert, insert.Kind)
	assert.Same(t, camera, insert.Camera)
}

func TestCameraDefaults(t *testing.T) {
	backend := renderertest.NewBackend(nil)
	defer backend.Shutdown()
	group := elements.NewElementGroup(backend, core.NewDebugInfo("test")).Cameras()

	handle, err := group.MutateVia(transactions.New()).Insert(elements.NewCameraBuilder())
	require.NoError(t, err)

	camera, ok := group.Get(handle)
	require.True(t, ok)
	assert.Equal(t, elements.DefaultCameraProjection(), camera.Projection())
	assert.Equal(t, elements.CameraProjectionOrthographic, camera.Projection().Kind)
	assert.Equal(t, "Anonymous-Camera", camera.DebugInfo().Name())
}

func TestCameraSetProjection(t *testing.T) {
	backend := renderertest.NewBackend(nil)
	defer backend.Shutdown()
	group := elements.NewElementGroup(backend, core.NewDebugInfo("test")).Cameras()

	transaction := transactions.New()
	handle, err := group.MutateVia(transaction).Insert(elements.NewCameraBuilder())
	require.NoError(t, err)
	camera, ok := group.Get(handle)
	require.True(t, ok)

	projection := elements.NewPerspectiveProjection(math.K_HALF_PI, 1.0, 0.5, 50)
	camera.MutateVia(transaction).SetProjection(projection)

	assert.Equal(t, projection, camera.Projection())
	assert.Equal(t, projection.Matrix(), camera.ProjectionMatrix())

	events := transaction.Process()
	require.Len(t, events, 2)
	update, ok := events[1].(elements.CameraEvent)
	require.True(t, ok)
	assert.Equal(t, elements.CameraEventUpdateProjection, update.Kind)
	assert.Equal(t, camera.Allocation(), update.Allocation)
	assert.Equal(t, projection, update.Projection)
}

func TestCameraInsertFailsWhenCapacityIsExhausted(t *testing.T) {
	cfg := renderertest.SmallConfig()
	cfg.MaxCameraCount = 2
	backend := renderertest.NewBackend(cfg)
	defer backend.Shutdown()
	group := elements.NewElementGroup(backend, core.NewDebugInfo("test")).Cameras()

	mut := group.MutateVia(transactions.New())
	for i := 0; i < 2; i++ {
		_, err := mut.Insert(elements.NewCameraBuilder())
		require.NoError(t, err)
	}

	_, err := mut.Insert(elements.NewCameraBuilder())
	var allocationFailed *elements.AllocationFailedError
	require.ErrorAs(t, err, &allocationFailed)
	assert.Equal(t, "Camera", allocationFailed.Element)
	assert.EqualError(t, err, "allocating a gpu index for a Camera failed")
	assert.Equal(t, 2, group.Len())
}

func TestCameraInsertPanicsAfterShutdown(t *testing.T) {
	backend := renderertest.NewBackend(nil)
	group := elements.NewElementGroup(backend, core.NewDebugInfo("test")).Cameras()
	require.NoError(t, backend.Shutdown())

	assert.PanicsWithValue(t, "the gpu index allocator of the CameraGroup was revoked", func() {
		group.MutateVia(transactions.New()).Insert(elements.NewCameraBuilder())
	})
}

func TestCameraProjectionKindString(t *testing.T) {
	assert.Equal(t, "Orthographic", elements.CameraProjectionOrthographic.String())
	assert.Equal(t, "Perspective", elements.CameraProjectionPerspective.String())
}
