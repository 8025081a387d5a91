package instances

import (
	"errors"
	"fmt"
)

// ErrCameraNotSet reports that a CameraInstance builder was finished without
// a camera.
var ErrCameraNotSet = errors.New("the Camera of the CameraInstance is not set")

// ErrRigidMeshNotSet reports that a RigidMeshInstance builder was finished
// without a rigid mesh.
var ErrRigidMeshNotSet = errors.New("the RigidMesh of the RigidMeshInstance is not set")

// ErrPointCloudNotSet reports that a PointCloudInstance builder was finished
// without a point cloud.
var ErrPointCloudNotSet = errors.New("the PointCloud of the PointCloudInstance is not set")

// AllocationFailedError reports that the gpu index allocator of an instance
// kind is at capacity. Recoverable by the caller; the insert it failed left
// no trace in the group.
type AllocationFailedError struct {
	Instance string
}

func (e *AllocationFailedError) Error() string {
	return fmt.Sprintf("allocating a gpu index for a %s failed", e.Instance)
}
