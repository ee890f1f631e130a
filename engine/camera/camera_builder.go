package camera

import "github.com/charmbracelet/harmonica"

type CameraBuilderOption func(*cameraImpl)

// WithFov sets the camera's field of view in degrees. The value is clamped to [10, 100].
//
// Parameters:
//   - fov: field of view in degrees
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's field of view
func WithFov(fov float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fov = fov
	}
}

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the near plane
func WithNear(near float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: functional option to set the far plane
func WithFar(far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.far = far
	}
}

// WithController attaches a controller to the camera.
//
// Parameters:
//   - ctrl: the controller to attach
//
// Returns:
//   - CameraBuilderOption: functional option to set the controller
func WithController(ctrl CameraController) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.controller = ctrl
	}
}

// WithZoomSmoothing eases the displayed field of view towards the zoom target with a
// critically damped spring stepped once per frame. A non-positive fps disables smoothing.
//
// Parameters:
//   - fps: the frame rate Update is called at
//
// Returns:
//   - CameraBuilderOption: functional option to enable zoom smoothing
func WithZoomSmoothing(fps int) CameraBuilderOption {
	return func(c *cameraImpl) {
		if fps <= 0 {
			c.smoothing = false
			return
		}
		c.smoothing = true
		c.spring = harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0)
	}
}
