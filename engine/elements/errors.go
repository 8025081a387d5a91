package elements

import (
	"errors"
	"fmt"
)

// ErrMeshAttributesNotSet reports that a RigidMesh builder was finished
// without mesh attributes.
var ErrMeshAttributesNotSet = errors.New("the MeshAttributes of the RigidMesh are not set")

// ErrPointCloudAttributesNotSet reports that a PointCloud builder was
// finished without point cloud attributes.
var ErrPointCloudAttributesNotSet = errors.New("the PointCloudAttributes of the PointCloud are not set")

// AllocationFailedError reports that the gpu index allocator of an element
// kind is at capacity. Recoverable by the caller; the insert it failed left
// no trace in the group.
type AllocationFailedError struct {
	Element string
}

func (e *AllocationFailedError) Error() string {
	return fmt.Sprintf("allocating a gpu index for a %s failed", e.Element)
}
