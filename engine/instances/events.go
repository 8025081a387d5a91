package instances

import (
	"github.com/spaghettifunk/scena/engine/gpu"
	"github.com/spaghettifunk/scena/engine/math"
	"github.com/spaghettifunk/scena/engine/transactions"
)

// CameraInstanceEventKind enumerates the changes a CameraInstanceGroup
// records.
type CameraInstanceEventKind int

const (
	CameraInstanceEventNoop CameraInstanceEventKind = iota
	CameraInstanceEventInsert
	CameraInstanceEventUpdateViewMatrix
)

// CameraInstanceEvent is recorded into a transaction whenever a camera
// instance is inserted or moved. The update carries the derived view matrix
// addressed by the instance's gpu slot.
type CameraInstanceEvent struct {
	transactions.EventBase
	Kind           CameraInstanceEventKind
	CameraInstance *CameraInstance
	Allocation     gpu.Allocation[CameraInstance]
	ViewMatrix     math.Mat4
}

// RigidMeshInstanceEventKind enumerates the changes a RigidMeshInstanceGroup
// records.
type RigidMeshInstanceEventKind int

const (
	RigidMeshInstanceEventNoop RigidMeshInstanceEventKind = iota
	RigidMeshInstanceEventInsert
	RigidMeshInstanceEventUpdateTransform
)

// RigidMeshInstanceEvent is recorded into a transaction whenever a rigid
// mesh instance is inserted or moved.
type RigidMeshInstanceEvent struct {
	transactions.EventBase
	Kind              RigidMeshInstanceEventKind
	RigidMeshInstance *RigidMeshInstance
	Allocation        gpu.Allocation[RigidMeshInstance]
	Transform         math.Mat4
}

// PointCloudInstanceEventKind enumerates the changes a
// PointCloudInstanceGroup records.
type PointCloudInstanceEventKind int

const (
	PointCloudInstanceEventNoop PointCloudInstanceEventKind = iota
	PointCloudInstanceEventInsert
	PointCloudInstanceEventUpdateTransform
)

// PointCloudInstanceEvent is recorded into a transaction whenever a point
// cloud instance is inserted or moved.
type PointCloudInstanceEvent struct {
	transactions.EventBase
	Kind               PointCloudInstanceEventKind
	PointCloudInstance *PointCloudInstance
	Allocation         gpu.Allocation[PointCloudInstance]
	Transform          math.Mat4
}
