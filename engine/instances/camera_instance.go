package instances

import (
	"github.com/spaghettifunk/scena/engine/containers"
	"github.com/spaghettifunk/scena/engine/core"
	"github.com/spaghettifunk/scena/engine/elements"
	"github.com/spaghettifunk/scena/engine/gpu"
	"github.com/spaghettifunk/scena/engine/math"
	"github.com/spaghettifunk/scena/engine/transactions"
)

// CameraTransform is the position and orientation a CameraInstance views the
// scene from.
type CameraTransform struct {
	Position math.Vec3
	Forward  math.Vec3
	Up       math.Vec3
}

// DefaultCameraTransform returns a camera at the origin looking along the
// positive z axis.
func DefaultCameraTransform() CameraTransform {
	return CameraTransform{
		Position: math.NewVec3Zero(),
		Forward:  math.NewVec3(0.0, 0.0, 1.0),
		Up:       math.NewVec3(0.0, -1.0, 0.0),
	}
}

// ViewMatrix returns the view matrix for the camera transform.
func (t CameraTransform) ViewMatrix() math.Mat4 {
	return math.NewMat4LookAt(t.Position, t.Position.Add(t.Forward), t.Up)
}

// CameraInstance places a Camera in the scene and creates a view onto it.
// The camera is captured by handle and gpu slot so the instance stays valid
// for the backend even while the element tier is edited.
type CameraInstance struct {
	cameraHandle     containers.Handle[*elements.Camera]
	cameraAllocation gpu.Allocation[elements.Camera]
	handle           containers.Handle[*CameraInstance]
	allocation       gpu.Allocation[CameraInstance]
	transform        CameraTransform
	debugInfo        core.DebugInfo
}

// CameraHandle returns the handle of the Camera this instance views through.
func (c *CameraInstance) CameraHandle() containers.Handle[*elements.Camera] {
	return c.cameraHandle
}

// CameraAllocation returns the gpu index allocation of the Camera this
// instance views through.
func (c *CameraInstance) CameraAllocation() gpu.Allocation[elements.Camera] {
	return c.cameraAllocation
}

// Handle returns the handle of the camera instance.
func (c *CameraInstance) Handle() containers.Handle[*CameraInstance] {
	return c.handle
}

// Allocation returns the gpu index allocation of the camera instance.
func (c *CameraInstance) Allocation() gpu.Allocation[CameraInstance] {
	return c.allocation
}

// Transform returns the CameraTransform of the camera instance.
func (c *CameraInstance) Transform() CameraTransform {
	return c.transform
}

// DebugInfo returns the identity of the camera instance.
func (c *CameraInstance) DebugInfo() core.DebugInfo {
	return c.debugInfo
}

// MutateVia returns an accessor that records every change to the camera
// instance into the given transaction.
func (c *CameraInstance) MutateVia(transaction transactions.PushEvent) *CameraInstanceAccessMut {
	return &CameraInstanceAccessMut{cameraInstance: c, transaction: transaction}
}

// CameraInstanceAccessMut mutates a CameraInstance in place while recording
// the change.
type CameraInstanceAccessMut struct {
	cameraInstance *CameraInstance
	transaction    transactions.PushEvent
}

// SetTransform replaces the CameraTransform of the camera instance and
// records the new view matrix addressed by the instance's gpu slot.
func (a *CameraInstanceAccessMut) SetTransform(transform CameraTransform) {
	a.cameraInstance.transform = transform
	a.transaction.PushEvent(CameraInstanceEvent{
		Kind:       CameraInstanceEventUpdateViewMatrix,
		Allocation: a.cameraInstance.allocation,
		ViewMatrix: transform.ViewMatrix(),
	})
}

// CameraInstanceBuilder assembles a CameraInstance; the camera is mandatory.
type CameraInstanceBuilder struct {
	camera    *elements.Camera
	transform *CameraTransform
	debugInfo *core.DebugInfo
}

// Create a new CameraInstanceBuilder
func NewCameraInstanceBuilder() *CameraInstanceBuilder {
	return &CameraInstanceBuilder{}
}

// WithCamera sets the Camera this CameraInstance is an instance of.
func (b *CameraInstanceBuilder) WithCamera(camera *elements.Camera) *CameraInstanceBuilder {
	b.camera = camera
	return b
}

// WithTransform sets the CameraTransform of the CameraInstance.
func (b *CameraInstanceBuilder) WithTransform(transform CameraTransform) *CameraInstanceBuilder {
	b.transform = &transform
	return b
}

// WithDebugInfo sets the DebugInfo of the CameraInstance.
func (b *CameraInstanceBuilder) WithDebugInfo(debugInfo core.DebugInfo) *CameraInstanceBuilder {
	b.debugInfo = &debugInfo
	return b
}

func (b *CameraInstanceBuilder) build(handle containers.Handle[*CameraInstance], allocation gpu.Allocation[CameraInstance]) (*CameraInstance, error) {
	if b.camera == nil {
		return nil, ErrCameraNotSet
	}
	transform := DefaultCameraTransform()
	if b.transform != nil {
		transform = *b.transform
	}
	debugInfo := core.NewDebugInfo("Anonymous-CameraInstance")
	if b.debugInfo != nil {
		debugInfo = *b.debugInfo
	}
	return &CameraInstance{
		cameraHandle:     b.camera.Handle(),
		cameraAllocation: b.camera.Allocation(),
		handle:           handle,
		allocation:       allocation,
		transform:        transform,
		debugInfo:        debugInfo,
	}, nil
}
