package resources

import (
	"github.com/spaghettifunk/scena/engine/containers"
	"github.com/spaghettifunk/scena/engine/core"
	"github.com/spaghettifunk/scena/engine/gpu"
	"github.com/spaghettifunk/scena/engine/math"
)

// ClusterIndex addresses a cluster within the pages of a point cloud.
type ClusterIndex struct {
	Page    uint32
	Cluster uint32
}

// Cluster groups a contiguous run of points inside a page. Children address
// the finer clusters the cluster splits into.
type Cluster struct {
	Center     math.Vec3
	Radius     float32
	PointStart uint32
	PointCount uint32
	Children   []ClusterIndex
}

// Page is the unit in which clustered point cloud data is streamed to the
// GPU.
type Page struct {
	PointPositions []math.Vec3
	PointColors    []math.ByteColor3
	Clusters       []Cluster
}

var _ Resource = (*PointCloudAttributes)(nil)

// PointCloudAttributes is the point data of a point cloud. It is immutable
// once built and shared by every point cloud that renders it.
type PointCloudAttributes struct {
	pointPositions   []math.Vec3
	pointColors      []math.ByteColor3
	rootClusterIndex ClusterIndex
	pages            []Page
	handle           containers.Handle[*PointCloudAttributes]
	allocation       gpu.Allocation[PointCloudAttributes]
	debugInfo        core.DebugInfo
}

// PointPositions returns the point positions.
func (pca *PointCloudAttributes) PointPositions() []math.Vec3 {
	return pca.pointPositions
}

// PointColors returns the point colors.
func (pca *PointCloudAttributes) PointColors() []math.ByteColor3 {
	return pca.pointColors
}

// Pages returns the pages of the clustered representation, or nil when the
// point cloud is not clustered.
func (pca *PointCloudAttributes) Pages() []Page {
	return pca.pages
}

// RootClusterIndex returns the entry point into the cluster hierarchy.
func (pca *PointCloudAttributes) RootClusterIndex() ClusterIndex {
	return pca.rootClusterIndex
}

// Handle locates the PointCloudAttributes in the group that stores it.
func (pca *PointCloudAttributes) Handle() containers.Handle[*PointCloudAttributes] {
	return pca.handle
}

// Allocation returns the slot of the PointCloudAttributes in the backend's
// point cloud arrays.
func (pca *PointCloudAttributes) Allocation() gpu.Allocation[PointCloudAttributes] {
	return pca.allocation
}

// DebugInfo returns the identity of the PointCloudAttributes.
func (pca *PointCloudAttributes) DebugInfo() core.DebugInfo {
	return pca.debugInfo
}

// PointCloudAttributesBuilder assembles the point data of a point cloud.
// Pass it to PointCloudAttributesGroup.Insert, which validates and builds
// the PointCloudAttributes.
type PointCloudAttributesBuilder struct {
	pointPositions   []math.Vec3
	pointColors      []math.ByteColor3
	pages            []Page
	rootClusterIndex *ClusterIndex
	debugInfo        *core.DebugInfo
}

// Create a new PointCloudAttributesBuilder
func NewPointCloudAttributesBuilder() *PointCloudAttributesBuilder {
	return &PointCloudAttributesBuilder{}
}

// WithPointPositions sets the point positions. This is a required attribute.
func (b *PointCloudAttributesBuilder) WithPointPositions(pointPositions []math.Vec3) *PointCloudAttributesBuilder {
	b.pointPositions = pointPositions
	return b
}

// WithPointColors sets the point colors. This is a required attribute.
func (b *PointCloudAttributesBuilder) WithPointColors(pointColors []math.ByteColor3) *PointCloudAttributesBuilder {
	b.pointColors = pointColors
	return b
}

// WithPages sets the pages of the clustered representation. This is an
// optional attribute.
func (b *PointCloudAttributesBuilder) WithPages(pages []Page) *PointCloudAttributesBuilder {
	b.pages = pages
	return b
}

// WithRootClusterIndex sets the entry point into the cluster hierarchy. This
// is an optional attribute.
func (b *PointCloudAttributesBuilder) WithRootClusterIndex(rootClusterIndex ClusterIndex) *PointCloudAttributesBuilder {
	b.rootClusterIndex = &rootClusterIndex
	return b
}

// WithDebugInfo names the PointCloudAttributes. This is an optional
// attribute.
func (b *PointCloudAttributesBuilder) WithDebugInfo(debugInfo core.DebugInfo) *PointCloudAttributesBuilder {
	b.debugInfo = &debugInfo
	return b
}

func (b *PointCloudAttributesBuilder) build(
	handle containers.Handle[*PointCloudAttributes],
	allocation gpu.Allocation[PointCloudAttributes],
) (*PointCloudAttributes, error) {
	if b.pointPositions == nil {
		return nil, &MandatoryAttributeMissingError{Attribute: AttributePointPositions}
	}
	if b.pointColors == nil {
		return nil, &MandatoryAttributeMissingError{Attribute: AttributePointColors}
	}

	// The point positions determine the expected number of attributes.
	if len(b.pointColors) != len(b.pointPositions) {
		return nil, &WrongSizeError{
			Expected: len(b.pointPositions),
			Got:      len(b.pointColors),
		}
	}

	var rootClusterIndex ClusterIndex
	if b.rootClusterIndex != nil {
		rootClusterIndex = *b.rootClusterIndex
	}

	debugInfo := core.NewDebugInfo("Anonymous-PointCloudAttributes")
	if b.debugInfo != nil {
		debugInfo = *b.debugInfo
	}

	return &PointCloudAttributes{
		pointPositions:   b.pointPositions,
		pointColors:      b.pointColors,
		rootClusterIndex: rootClusterIndex,
		pages:            b.pages,
		handle:           handle,
		allocation:       allocation,
		debugInfo:        debugInfo,
	}, nil
}
