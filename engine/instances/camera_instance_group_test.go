package instances_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/scena/engine/core"
	"github.com/spaghettifunk/scena/engine/elements"
	"github.com/spaghettifunk/scena/engine/instances"
	"github.com/spaghettifunk/scena/engine/math"
	"github.com/spaghettifunk/scena/engine/renderer/renderertest"
	"github.com/spaghettifunk/scena/engine/transactions"
)

func newCamera(t *testing.T, backend *renderertest.Backend) *elements.Camera {
	t.Helper()
	group := elements.NewElementGroup(backend, core.NewDebugInfo("test")).Cameras()
	handle, err := group.MutateVia(transactions.New()).Insert(elements.NewCameraBuilder())
	require.NoError(t, err)
	camera, ok := group.Get(handle)
	require.True(t, ok)
	return camera
}

func TestCameraInstanceInsert(t *testing.T) {
	backend := renderertest.NewBackend(nil)
	defer backend.Shutdown()
	camera := newCamera(t, backend)
	group := instances.NewInstanceGroup(backend, core.NewDebugInfo("test")).CameraInstances()

	transaction := transactions.New()
	transform := instances.CameraTransform{
		Position: math.NewVec3(0, 0, -5),
		Forward:  math.NewVec3(0, 0, 1),
		Up:       math.NewVec3(0, -1, 0),
	}
	handle, err := group.MutateVia(transaction).Insert(instances.NewCameraInstanceBuilder().
		WithCamera(camera).
		WithTransform(transform).
		WithDebugInfo(core.NewDebugInfo("main-view")))
	require.NoError(t, err)

	instance, ok := group.Get(handle)
	require.True(t, ok)
	assert.Equal(t, uint32(0), handle.Index())
	assert.Equal(t, uint32(0), instance.Allocation().Index())
	assert.Equal(t, camera.Handle(), instance.CameraHandle())
	assert.Equal(t, camera.Allocation(), instance.CameraAllocation())
	assert.Equal(t, transform, instance.Transform())
	assert.Equal(t, "main-view", instance.DebugInfo().Name())
	assert.Equal(t, 1, group.Len())

	events := transaction.Process()
	require.Len(t, events, 1)
	insert, ok := events[0].(instances.CameraInstanceEvent)
	require.True(t, ok)
	assert.Equal(t, instances.CameraInstanceEventInsert, insert.Kind)
	assert.Same(t, instance, insert.CameraInstance)
}

func TestDefaultCameraTransform(t *testing.T) {
	transform := instances.DefaultCameraTransform()
	assert.Equal(t, math.NewVec3Zero(), transform.Position)
	assert.Equal(t, math.NewVec3(0, 0, 1), transform.Forward)
	assert.Equal(t, math.NewVec3(0, -1, 0), transform.Up)
}

func TestCameraTransformViewMatrix(t *testing.T) {
	transform := instances.CameraTransform{
		Position: math.NewVec3(1, 2, 3),
		Forward:  math.NewVec3(0, 0, -1),
		Up:       math.NewVec3(0, 1, 0),
	}
	expected := math.NewMat4LookAt(transform.Position, transform.Position.Add(transform.Forward), transform.Up)
	assert.Equal(t, expected, transform.ViewMatrix())
}

func TestCameraInstanceSetTransform(t *testing.T) {
	backend := renderertest.NewBackend(nil)
	defer backend.Shutdown()
	group := instances.NewInstanceGroup(backend, core.NewDebugInfo("test")).CameraInstances()

	transaction := transactions.New()
	handle, err := group.MutateVia(transaction).Insert(instances.NewCameraInstanceBuilder().
		WithCamera(newCamera(t, backend)))
	require.NoError(t, err)
	instance, ok := group.Get(handle)
	require.True(t, ok)
	assert.Equal(t, instances.DefaultCameraTransform(), instance.Transform())

	moved := instances.CameraTransform{
		Position: math.NewVec3(4, 0, 0),
		Forward:  math.NewVec3(-1, 0, 0),
		Up:       math.NewVec3(0, -1, 0),
	}
	instance.MutateVia(transaction).SetTransform(moved)
	assert.Equal(t, moved, instance.Transform())

	events := transaction.Process()
	require.Len(t, events, 2)
	update, ok := events[1].(instances.CameraInstanceEvent)
	require.True(t, ok)
	assert.Equal(t, instances.CameraInstanceEventUpdateViewMatrix, update.Kind)
	assert.Equal(t, instance.Allocation(), update.Allocation)
	assert.Equal(t, moved.ViewMatrix(), update.ViewMatrix)
}

func TestCameraInstanceRequiresCamera(t *testing.T) {
	backend := renderertest.NewBackend(nil)
	defer backend.Shutdown()
	group := instances.NewInstanceGroup(backend, core.NewDebugInfo("test")).CameraInstances()

	mut := group.MutateVia(transactions.New())
	_, err := mut.Insert(instances.NewCameraInstanceBuilder())
	require.ErrorIs(t, err, instances.ErrCameraNotSet)
	assert.Equal(t, 0, group.Len())

	handle, err := mut.Insert(instances.NewCameraInstanceBuilder().WithCamera(newCamera(t, backend)))
	require.NoError(t, err)
	instance, ok := group.Get(handle)
	require.True(t, ok)
	assert.Equal(t, uint32(0), instance.Allocation().Index(), "the rolled back gpu slot is handed out again")
}

func TestCameraInstanceInsertFailsWhenCapacityIsExhausted(t *testing.T) {
	cfg := renderertest.SmallConfig()
	cfg.MaxCameraInstanceCount = 1
	backend := renderertest.NewBackend(cfg)
	defer backend.Shutdown()
	camera := newCamera(t, backend)
	group := instances.NewInstanceGroup(backend, core.NewDebugInfo("test")).CameraInstances()

	mut := group.MutateVia(transactions.New())
	_, err := mut.Insert(instances.NewCameraInstanceBuilder().WithCamera(camera))
	require.NoError(t, err)

	_, err = mut.Insert(instances.NewCameraInstanceBuilder().WithCamera(camera))
	var allocationFailed *instances.AllocationFailedError
	require.ErrorAs(t, err, &allocationFailed)
	assert.Equal(t, "CameraInstance", allocationFailed.Instance)
	assert.EqualError(t, err, "allocating a gpu index for a CameraInstance failed")
	assert.Equal(t, 1, group.Len())
}

func TestCameraInstanceInsertPanicsAfterShutdown(t *testing.T) {
	backend := renderertest.NewBackend(nil)
	group := instances.NewInstanceGroup(backend, core.NewDebugInfo("test")).CameraInstances()
	require.NoError(t, backend.Shutdown())

	assert.PanicsWithValue(t, "the gpu index allocator of the CameraInstanceGroup was revoked", func() {
		group.MutateVia(transactions.New()).Insert(instances.NewCameraInstanceBuilder())
	})
}
