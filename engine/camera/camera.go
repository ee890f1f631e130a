package camera

import (
	"sync"

	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	minFov = 10.0
	maxFov = 100.0
)

type cameraImpl struct {
	mu *sync.Mutex

	// fov is the authoritative field of view in degrees, always within [minFov, maxFov].
	fov float32
	// displayFov trails fov through the zoom spring when smoothing is enabled.
	displayFov  float64
	fovVelocity float64

	near float32
	far  float32

	smoothing bool
	spring    harmonica.Spring

	controller CameraController
}

// Camera is the editor's camera rig.
// It wraps a dome CameraController with perspective settings and builds the view and
// projection matrices the renderer consumes each frame.
type Camera interface {
	// Rotate forwards angle deltas to the attached controller.
	//
	// Parameters:
	//   - dYaw: yaw delta in radians
	//   - dPitch: pitch delta in radians (subtracted from pitch)
	//   - dRoll: roll delta in radians
	Rotate(dYaw, dPitch, dRoll float32)

	// Zoom narrows or widens the field of view. The fov is decreased by delta and
	// clamped to [10, 100] degrees, so a positive scroll zooms in.
	//
	// Parameters:
	//   - delta: scroll amount in degrees
	Zoom(delta float32)

	// Update advances the zoom spring by one frame. It is a no-op when smoothing is disabled.
	Update()

	// Fov returns the clamped target field of view in degrees.
	//
	// Returns:
	//   - float32: field of view in degrees
	Fov() float32

	// DisplayFov returns the field of view the projection uses this frame, in degrees.
	// Equals Fov() unless zoom smoothing is enabled and the spring has not settled.
	//
	// Returns:
	//   - float32: field of view in degrees
	DisplayFov() float32

	// Near returns the near clipping plane distance.
	Near() float32

	// Far returns the far clipping plane distance.
	Far() float32

	// Position returns the eye position, used for specular lighting.
	//
	// Returns:
	//   - mgl32.Vec3: world-space camera position
	Position() mgl32.Vec3

	// ViewMatrix returns the look-at matrix built from the controller's position, target and up.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix (column-major)
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the perspective projection for a viewport.
	// A zero or negative dimension falls back to an aspect ratio of 1 instead of dividing by zero.
	//
	// Parameters:
	//   - width: viewport width in pixels
	//   - height: viewport height in pixels
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix (OpenGL clip convention, column-major)
	ProjectionMatrix(width, height int) mgl32.Mat4

	// Controller returns the attached CameraController.
	//
	// Returns:
	//   - CameraController: the dome controller driving position and orientation
	Controller() CameraController
}

var _ Camera = &cameraImpl{}

// NewCamera creates a camera rig. Defaults: fov 70°, near 0.1, far 100 and a dome
// controller from NewCameraController when none is supplied.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:   &sync.Mutex{},
		fov:  70,
		near: 0.1,
		far:  100,
	}
	for _, option := range options {
		option(c)
	}
	if c.controller == nil {
		c.controller = NewCameraController()
	}
	c.fov = mgl32.Clamp(c.fov, minFov, maxFov)
	c.displayFov = float64(c.fov)
	return c
}

func (c *cameraImpl) Rotate(dYaw, dPitch, dRoll float32) {
	c.controller.Rotate(dYaw, dPitch, dRoll)
}

func (c *cameraImpl) Zoom(delta float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = mgl32.Clamp(c.fov-delta, minFov, maxFov)
	if !c.smoothing {
		c.displayFov = float64(c.fov)
	}
}

func (c *cameraImpl) Update() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.smoothing {
		return
	}
	c.displayFov, c.fovVelocity = c.spring.Update(c.displayFov, c.fovVelocity, float64(c.fov))
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) DisplayFov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return mgl32.Clamp(float32(c.displayFov), minFov, maxFov)
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	return c.controller.Position()
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.controller.Position(), c.controller.Target(), c.controller.Up())
}

func (c *cameraImpl) ProjectionMatrix(width, height int) mgl32.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	fov := c.DisplayFov()

	c.mu.Lock()
	defer c.mu.Unlock()
	return mgl32.Perspective(mgl32.DegToRad(fov), aspect, c.near, c.far)
}

func (c *cameraImpl) Controller() CameraController {
	return c.controller
}
