package elements

import (
	"github.com/spaghettifunk/scena/engine/containers"
	"github.com/spaghettifunk/scena/engine/core"
	"github.com/spaghettifunk/scena/engine/gpu"
	"github.com/spaghettifunk/scena/engine/resources"
)

// PointCloudRepresentation determines how a PointCloud prefers to be
// rendered.
type PointCloudRepresentation int

const (
	// PointCloudRepresentationClustered renders page by page through the
	// cluster hierarchy.
	PointCloudRepresentationClustered PointCloudRepresentation = iota
	// PointCloudRepresentationSimple renders the points as one flat list.
	PointCloudRepresentationSimple
)

func (r PointCloudRepresentation) String() string {
	switch r {
	case PointCloudRepresentationClustered:
		return "Clustered"
	case PointCloudRepresentationSimple:
		return "Simple"
	default:
		return "Unknown"
	}
}

// PointCloud is a scene object that binds point cloud attributes to a gpu
// slot. A PointCloud is not visible by itself; PointCloudInstances place it
// in the scene.
type PointCloud struct {
	pointCloudAttributes              *resources.PointCloudAttributes
	preferredPointCloudRepresentation PointCloudRepresentation
	handle                            containers.Handle[*PointCloud]
	allocation                        gpu.Allocation[PointCloud]
	debugInfo                         core.DebugInfo
}

// PointCloudAttributes returns the point cloud attributes of the point
// cloud.
func (p *PointCloud) PointCloudAttributes() *resources.PointCloudAttributes {
	return p.pointCloudAttributes
}

// PreferredPointCloudRepresentation returns the representation the point
// cloud prefers to be rendered with.
func (p *PointCloud) PreferredPointCloudRepresentation() PointCloudRepresentation {
	return p.preferredPointCloudRepresentation
}

// Handle returns the handle of the point cloud.
func (p *PointCloud) Handle() containers.Handle[*PointCloud] {
	return p.handle
}

// Allocation returns the gpu index allocation of the point cloud.
func (p *PointCloud) Allocation() gpu.Allocation[PointCloud] {
	return p.allocation
}

// DebugInfo returns the identity of the point cloud.
func (p *PointCloud) DebugInfo() core.DebugInfo {
	return p.debugInfo
}

// PointCloudBuilder assembles a PointCloud; the point cloud attributes are
// mandatory.
type PointCloudBuilder struct {
	pointCloudAttributes              *resources.PointCloudAttributes
	preferredPointCloudRepresentation *PointCloudRepresentation
	debugInfo                         *core.DebugInfo
}

// Create a new PointCloudBuilder
func NewPointCloudBuilder() *PointCloudBuilder {
	return &PointCloudBuilder{}
}

// WithPointCloudAttributes sets the PointCloudAttributes of the PointCloud.
func (b *PointCloudBuilder) WithPointCloudAttributes(pointCloudAttributes *resources.PointCloudAttributes) *PointCloudBuilder {
	b.pointCloudAttributes = pointCloudAttributes
	return b
}

// WithPreferredPointCloudRepresentation sets the preferred
// PointCloudRepresentation of the PointCloud.
func (b *PointCloudBuilder) WithPreferredPointCloudRepresentation(representation PointCloudRepresentation) *PointCloudBuilder {
	b.preferredPointCloudRepresentation = &representation
	return b
}

// WithDebugInfo sets the DebugInfo of the PointCloud.
func (b *PointCloudBuilder) WithDebugInfo(debugInfo core.DebugInfo) *PointCloudBuilder {
	b.debugInfo = &debugInfo
	return b
}

func (b *PointCloudBuilder) build(handle containers.Handle[*PointCloud], allocation gpu.Allocation[PointCloud]) (*PointCloud, error) {
	if b.pointCloudAttributes == nil {
		return nil, ErrPointCloudAttributesNotSet
	}
	representation := PointCloudRepresentationClustered
	if b.preferredPointCloudRepresentation != nil {
		representation = *b.preferredPointCloudRepresentation
	}
	debugInfo := core.NewDebugInfo("Anonymous-PointCloud")
	if b.debugInfo != nil {
		debugInfo = *b.debugInfo
	}
	return &PointCloud{
		pointCloudAttributes:              b.pointCloudAttributes,
		preferredPointCloudRepresentation: representation,
		handle:                            handle,
		allocation:                        allocation,
		debugInfo:                         debugInfo,
	}, nil
}
