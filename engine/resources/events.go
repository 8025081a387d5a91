package resources

import (
	"github.com/spaghettifunk/scena/engine/containers"
	"github.com/spaghettifunk/scena/engine/math"
)

// EventKind discriminates the messages sent over the resource channel.
type EventKind uint8

const (
	// EventKindFrameStart marks the beginning of a frame so the receiver
	// can time resource uploads against rendering.
	EventKindFrameStart EventKind = iota
	EventKindMeshAttributes
	EventKindPointCloudAttributes
	EventKindInanimateMesh
)

// Event is one message on the resource channel: either a frame marker or a
// batch of changes to a single resource kind. Batches preserve the order in
// which the changes were committed.
type Event struct {
	Kind EventKind

	MeshAttributes       []MeshAttributesEvent
	PointCloudAttributes []PointCloudAttributesEvent
	InanimateMeshes      []InanimateMeshEvent
}

// NewFrameStartEvent creates the marker event that opens a frame.
func NewFrameStartEvent() Event {
	return Event{Kind: EventKindFrameStart}
}

type MeshAttributesEventKind uint8

const (
	MeshAttributesEventInsert MeshAttributesEventKind = iota
)

// MeshAttributesEvent describes one change to the mesh attributes arrays of
// the backend.
type MeshAttributesEvent struct {
	Kind           MeshAttributesEventKind
	Handle         containers.Handle[*MeshAttributes]
	MeshAttributes *MeshAttributes
}

type PointCloudAttributesEventKind uint8

const (
	PointCloudAttributesEventInsert PointCloudAttributesEventKind = iota
)

// PointCloudAttributesEvent describes one change to the point cloud
// attributes arrays of the backend.
type PointCloudAttributesEvent struct {
	Kind                 PointCloudAttributesEventKind
	Handle               containers.Handle[*PointCloudAttributes]
	PointCloudAttributes *PointCloudAttributes
}

type InanimateMeshEventKind uint8

const (
	InanimateMeshEventInsert InanimateMeshEventKind = iota
	InanimateMeshEventSetVertexPositions
)

// InanimateMeshEvent describes one change to an inanimate mesh. Insert
// carries the full vertex data, SetVertexPositions only the new positions.
type InanimateMeshEvent struct {
	Kind            InanimateMeshEventKind
	InanimateMesh   *InanimateMesh
	VertexPositions []math.Vec3
	VertexNormals   []math.Vec3
	Indices         []uint32
}
