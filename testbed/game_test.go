package testbed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/scena/engine/config"
	"github.com/spaghettifunk/scena/engine/elements"
	"github.com/spaghettifunk/scena/engine/math"
)

func TestNewGameBuildsTheScene(t *testing.T) {
	game, err := NewGame(config.Default())
	require.NoError(t, err)

	// Shutdown waits until the last resource batch is applied, so the state
	// below is the complete upload.
	require.NoError(t, game.Shutdown())
	state := game.backend.State()

	expected := elements.NewPerspectiveProjection(60.0*math.K_DEG2RAD_MULTIPLIER, 16.0/9.0, 0.1, 100.0)
	assert.Equal(t, expected.Matrix(), state.Cameras[0].Projection)
	assert.InDelta(t, 0.1, state.Cameras[0].Near, 1e-6)
	assert.InDelta(t, 100.0, state.Cameras[0].Far, 1e-6)

	assert.Equal(t, 1, state.LiveCameraViews)
	assert.Equal(t, cubeCount, state.LiveRigidInstances)
	assert.Equal(t, 1, state.LiveCloudInstances)

	// The cubes share one set of mesh attributes in slot 0.
	assert.NotNil(t, state.MeshAttributes[0])
	assert.Equal(t, uint32(0), state.RigidMeshes[0].AttributesIndex)
	assert.NotNil(t, state.PointCloudAttributes[0])
	assert.Len(t, state.PointCloudAttributes[0].PointPositions(), cloudPointCount)

	require.Len(t, state.InanimateMeshes, 1)
	marker := state.InanimateMeshes[game.marker.Handle()]
	assert.Len(t, marker.VertexPositions, 3)
	assert.Equal(t, []uint32{0, 1, 2}, marker.Indices)
}

func TestGameUpdateMovesTheScene(t *testing.T) {
	game, err := NewGame(config.Default())
	require.NoError(t, err)

	before := game.backend.State()
	game.update(1.0)
	after := game.backend.State()

	assert.NotEqual(t, before.CameraInstances[0].View, after.CameraInstances[0].View)
	assert.Equal(t, game.cameraInstance.Transform().ViewMatrix(), after.CameraInstances[0].View)
	assert.NotEqual(t, before.Cameras[0].Projection, after.Cameras[0].Projection)
	for i := range game.cubes {
		assert.NotEqual(t, before.RigidMeshInstances[i].Transform, after.RigidMeshInstances[i].Transform)
	}

	require.NoError(t, game.Shutdown())
}

func TestGameFrameMarkersReachTheBackend(t *testing.T) {
	game, err := NewGame(config.Default())
	require.NoError(t, err)

	game.backend.BeginFrame()
	game.backend.BeginFrame()
	require.NoError(t, game.Shutdown())

	assert.Equal(t, 2, game.backend.State().FramesStarted)
}

func TestGameRunStopsWhenCanceled(t *testing.T) {
	game, err := NewGame(config.Default())
	require.NoError(t, err)
	defer game.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- game.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case runErr := <-done:
		assert.ErrorIs(t, runErr, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after the context was canceled")
	}
}
