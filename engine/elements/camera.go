package elements

import (
	"github.com/spaghettifunk/scena/engine/containers"
	"github.com/spaghettifunk/scena/engine/core"
	"github.com/spaghettifunk/scena/engine/gpu"
	"github.com/spaghettifunk/scena/engine/math"
	"github.com/spaghettifunk/scena/engine/transactions"
)

// CameraProjectionKind selects how a CameraProjection maps the view volume.
type CameraProjectionKind int

const (
	CameraProjectionOrthographic CameraProjectionKind = iota
	CameraProjectionPerspective
)

func (k CameraProjectionKind) String() string {
	switch k {
	case CameraProjectionOrthographic:
		return "Orthographic"
	case CameraProjectionPerspective:
		return "Perspective"
	default:
		return "Unknown"
	}
}

// CameraProjection describes the projection of a camera. Only the fields of
// the active kind are meaningful; Near and Far are shared by both kinds.
type CameraProjection struct {
	Kind   CameraProjectionKind
	Left   float32
	Right  float32
	Bottom float32
	Top    float32
	FovY   float32
	Aspect float32
	Near   float32
	Far    float32
}

// Create a new orthographic CameraProjection
func NewOrthographicProjection(left, right, bottom, top, near, far float32) CameraProjection {
	return CameraProjection{
		Kind:   CameraProjectionOrthographic,
		Left:   left,
		Right:  right,
		Bottom: bottom,
		Top:    top,
		Near:   near,
		Far:    far,
	}
}

// Create a new perspective CameraProjection
func NewPerspectiveProjection(fovY, aspect, near, far float32) CameraProjection {
	return CameraProjection{
		Kind:   CameraProjectionPerspective,
		FovY:   fovY,
		Aspect: aspect,
		Near:   near,
		Far:    far,
	}
}

// DefaultCameraProjection returns the orthographic unit volume that cameras
// start out with.
func DefaultCameraProjection() CameraProjection {
	return NewOrthographicProjection(-1.0, 1.0, 1.0, -1.0, 0.0, 1.0)
}

// Matrix returns the projection matrix for the CameraProjection.
func (p CameraProjection) Matrix() math.Mat4 {
	switch p.Kind {
	case CameraProjectionPerspective:
		return math.NewMat4Perspective(p.FovY, p.Aspect, p.Near, p.Far)
	default:
		return math.NewMat4Orthographic(p.Left, p.Right, p.Bottom, p.Top, p.Near, p.Far)
	}
}

// NearPlane returns the near clipping distance.
func (p CameraProjection) NearPlane() float32 {
	return p.Near
}

// FarPlane returns the far clipping distance.
func (p CameraProjection) FarPlane() float32 {
	return p.Far
}

// Camera defines the projection properties a view onto the scene is rendered
// with. A Camera is not visible by itself; a CameraInstance places it.
type Camera struct {
	projection       CameraProjection
	projectionMatrix math.Mat4
	handle           containers.Handle[*Camera]
	allocation       gpu.Allocation[Camera]
	debugInfo        core.DebugInfo
}

// Projection returns the CameraProjection of the camera.
func (c *Camera) Projection() CameraProjection {
	return c.projection
}

// ProjectionMatrix returns the projection matrix of the camera.
func (c *Camera) ProjectionMatrix() math.Mat4 {
	return c.projectionMatrix
}

// Handle returns the handle of the camera.
func (c *Camera) Handle() containers.Handle[*Camera] {
	return c.handle
}

// Allocation returns the gpu index allocation of the camera.
func (c *Camera) Allocation() gpu.Allocation[Camera] {
	return c.allocation
}

// DebugInfo returns the identity of the camera.
func (c *Camera) DebugInfo() core.DebugInfo {
	return c.debugInfo
}

// MutateVia returns an accessor that records every change to the camera into
// the given transaction.
func (c *Camera) MutateVia(transaction transactions.PushEvent) *CameraAccessMut {
	return &CameraAccessMut{camera: c, transaction: transaction}
}

// CameraAccessMut mutates a Camera in place while recording the change.
type CameraAccessMut struct {
	camera      *Camera
	transaction transactions.PushEvent
}

// SetProjection replaces the projection of the camera and records the update
// addressed by the camera's gpu slot.
func (a *CameraAccessMut) SetProjection(projection CameraProjection) {
	a.camera.projection = projection
	a.camera.projectionMatrix = projection.Matrix()
	a.transaction.PushEvent(CameraEvent{
		Kind:       CameraEventUpdateProjection,
		Allocation: a.camera.allocation,
		Projection: projection,
	})
}

// CameraBuilder assembles a Camera; every field has a default.
type CameraBuilder struct {
	projection *CameraProjection
	debugInfo  *core.DebugInfo
}

// Create a new CameraBuilder
func NewCameraBuilder() *CameraBuilder {
	return &CameraBuilder{}
}

// WithProjection sets the CameraProjection of the Camera.
func (b *CameraBuilder) WithProjection(projection CameraProjection) *CameraBuilder {
	b.projection = &projection
	return b
}

// WithDebugInfo sets the DebugInfo of the Camera.
func (b *CameraBuilder) WithDebugInfo(debugInfo core.DebugInfo) *CameraBuilder {
	b.debugInfo = &debugInfo
	return b
}

func (b *CameraBuilder) build(handle containers.Handle[*Camera], allocation gpu.Allocation[Camera]) (*Camera, error) {
	projection := DefaultCameraProjection()
	if b.projection != nil {
		projection = *b.projection
	}
	debugInfo := core.NewDebugInfo("Anonymous-Camera")
	if b.debugInfo != nil {
		debugInfo = *b.debugInfo
	}
	return &Camera{
		projection:       projection,
		projectionMatrix: projection.Matrix(),
		handle:           handle,
		allocation:       allocation,
		debugInfo:        debugInfo,
	}, nil
}
