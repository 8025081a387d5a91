package elements

import (
	"github.com/spaghettifunk/scena/engine/gpu"
	"github.com/spaghettifunk/scena/engine/transactions"
)

// CameraEventKind enumerates the changes a CameraGroup records.
type CameraEventKind int

const (
	CameraEventNoop CameraEventKind = iota
	CameraEventInsert
	CameraEventUpdateProjection
)

// CameraEvent is recorded into a transaction whenever a camera is inserted
// or its projection changes. Updates are addressed by the gpu slot rather
// than the handle because the backend's buffers are slot indexed.
type CameraEvent struct {
	transactions.EventBase
	Kind       CameraEventKind
	Camera     *Camera
	Allocation gpu.Allocation[Camera]
	Projection CameraProjection
}

// RigidMeshEventKind enumerates the changes a RigidMeshGroup records.
type RigidMeshEventKind int

const (
	RigidMeshEventNoop RigidMeshEventKind = iota
	RigidMeshEventInsert
)

// RigidMeshEvent is recorded into a transaction whenever a rigid mesh is
// inserted.
type RigidMeshEvent struct {
	transactions.EventBase
	Kind      RigidMeshEventKind
	RigidMesh *RigidMesh
}

// PointCloudEventKind enumerates the changes a PointCloudGroup records.
type PointCloudEventKind int

const (
	PointCloudEventNoop PointCloudEventKind = iota
	PointCloudEventInsert
)

// PointCloudEvent is recorded into a transaction whenever a point cloud is
// inserted.
type PointCloudEvent struct {
	transactions.EventBase
	Kind       PointCloudEventKind
	PointCloud *PointCloud
}
