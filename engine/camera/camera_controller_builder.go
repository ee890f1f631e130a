package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*domeControllerImpl)

// WithInitialPosition sets the position the rig derives its orbit radius from.
// Only the distance to the target along z is kept; the rig immediately re-places
// the camera from its yaw and pitch.
//
// Parameters:
//   - position: initial world-space camera position
//
// Returns:
//   - CameraControllerOption: functional option to set the initial position
func WithInitialPosition(position mgl32.Vec3) CameraControllerOption {
	return func(dc *domeControllerImpl) {
		dc.position = position
	}
}

// WithTarget sets the fixed point the rig orbits.
//
// Parameters:
//   - target: world-space target position
//
// Returns:
//   - CameraControllerOption: functional option to set the target
func WithTarget(target mgl32.Vec3) CameraControllerOption {
	return func(dc *domeControllerImpl) {
		dc.target = target
	}
}

// WithWorldUp sets the world up direction used to derive the right vector.
//
// Parameters:
//   - up: world up direction
//
// Returns:
//   - CameraControllerOption: functional option to set the world up direction
func WithWorldUp(up mgl32.Vec3) CameraControllerOption {
	return func(dc *domeControllerImpl) {
		dc.worldUp = up
	}
}

// WithAngles sets the initial yaw, pitch and roll in degrees.
//
// Parameters:
//   - yaw, pitch, roll: initial angles in degrees
//
// Returns:
//   - CameraControllerOption: functional option to set the initial angles
func WithAngles(yaw, pitch, roll float32) CameraControllerOption {
	return func(dc *domeControllerImpl) {
		dc.yaw = mgl32.DegToRad(yaw)
		dc.pitch = mgl32.DegToRad(pitch)
		dc.roll = mgl32.DegToRad(roll)
	}
}
