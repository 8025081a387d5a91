package resources_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/scena/engine/core"
	"github.com/spaghettifunk/scena/engine/math"
	"github.com/spaghettifunk/scena/engine/renderer/renderertest"
	"github.com/spaghettifunk/scena/engine/resources"
)

func cloudPositions() []math.Vec3 {
	return []math.Vec3{
		math.NewVec3(0, 0, 0),
		math.NewVec3(1, 1, 1),
	}
}

func cloudColors() []math.ByteColor3 {
	return []math.ByteColor3{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
	}
}

func TestPointCloudAttributesInsert(t *testing.T) {
	backend := renderertest.NewBackend(nil)
	group := resources.NewResourceGroup(backend, core.NewDebugInfo("test")).PointCloudAttributes()

	attributes, err := group.Insert(resources.NewPointCloudAttributesBuilder().
		WithPointPositions(cloudPositions()).
		WithPointColors(cloudColors()).
		WithDebugInfo(core.NewDebugInfo("cloud")))
	require.NoError(t, err)

	assert.Equal(t, uint32(0), attributes.Handle().Index())
	assert.Equal(t, uint32(0), attributes.Allocation().Index())
	assert.Equal(t, "cloud", attributes.DebugInfo().Name())
	assert.Len(t, attributes.PointPositions(), 2)
	assert.Equal(t, 1, group.Len())

	require.NoError(t, backend.Shutdown())
	events := backend.ReceivedResourceEvents()
	require.Len(t, events, 1)
	assert.Equal(t, resources.EventKindPointCloudAttributes, events[0].Kind)
	require.Len(t, events[0].PointCloudAttributes, 1)
	assert.Equal(t, resources.PointCloudAttributesEventInsert, events[0].PointCloudAttributes[0].Kind)
	assert.Same(t, attributes, events[0].PointCloudAttributes[0].PointCloudAttributes)
}

func TestPointCloudAttributesBuilderValidation(t *testing.T) {
	t.Run("MissingPositions", func(t *testing.T) {
		backend := renderertest.NewBackend(nil)
		defer backend.Shutdown()
		group := resources.NewResourceGroup(backend, core.NewDebugInfo("test")).PointCloudAttributes()

		_, err := group.Insert(resources.NewPointCloudAttributesBuilder().
			WithPointColors(cloudColors()))
		var missing *resources.MandatoryAttributeMissingError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, resources.AttributePointPositions, missing.Attribute)
		assert.Equal(t, 0, group.Len())
	})

	t.Run("MissingColors", func(t *testing.T) {
		backend := renderertest.NewBackend(nil)
		defer backend.Shutdown()
		group := resources.NewResourceGroup(backend, core.NewDebugInfo("test")).PointCloudAttributes()

		_, err := group.Insert(resources.NewPointCloudAttributesBuilder().
			WithPointPositions(cloudPositions()))
		var missing *resources.MandatoryAttributeMissingError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, resources.AttributePointColors, missing.Attribute)
	})

	t.Run("ColorCountMismatch", func(t *testing.T) {
		backend := renderertest.NewBackend(nil)
		defer backend.Shutdown()
		group := resources.NewResourceGroup(backend, core.NewDebugInfo("test")).PointCloudAttributes()

		_, err := group.Insert(resources.NewPointCloudAttributesBuilder().
			WithPointPositions(cloudPositions()).
			WithPointColors(cloudColors()[:1]))
		var wrongSize *resources.WrongSizeError
		require.ErrorAs(t, err, &wrongSize)
		assert.Equal(t, 2, wrongSize.Expected)
		assert.Equal(t, 1, wrongSize.Got)
	})
}

func TestPointCloudAttributesKeepsClusterPages(t *testing.T) {
	backend := renderertest.NewBackend(nil)
	defer backend.Shutdown()
	group := resources.NewResourceGroup(backend, core.NewDebugInfo("test")).PointCloudAttributes()

	pages := []resources.Page{{
		PointPositions: cloudPositions(),
		PointColors:    cloudColors(),
		Clusters: []resources.Cluster{{
			Center:     math.NewVec3(0.5, 0.5, 0.5),
			Radius:     2,
			PointStart: 0,
			PointCount: 2,
		}},
	}}
	root := resources.ClusterIndex{Page: 0, Cluster: 0}

	attributes, err := group.Insert(resources.NewPointCloudAttributesBuilder().
		WithPointPositions(cloudPositions()).
		WithPointColors(cloudColors()).
		WithPages(pages).
		WithRootClusterIndex(root))
	require.NoError(t, err)

	assert.Len(t, attributes.Pages(), 1)
	assert.Equal(t, root, attributes.RootClusterIndex())
}
