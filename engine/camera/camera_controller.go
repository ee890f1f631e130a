package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraController owns the positional state of a dome camera: a fixed target, a fixed orbit
// radius and the yaw/pitch/roll angles that place the camera on the sphere around the target.
// The Camera reads position, target and up from its controller to build the view matrix.
type CameraController interface {
	// Rotate applies angle deltas to the rig and recomputes its vectors.
	// Yaw and roll are added, pitch is subtracted so that moving the pointer up tilts the view up.
	// Pitch is clamped to [-89°, 89°] and roll only rotates the up vector about the front axis.
	//
	// Parameters:
	//   - dYaw: yaw delta in radians
	//   - dPitch: pitch delta in radians (subtracted)
	//   - dRoll: roll delta in radians
	Rotate(dYaw, dPitch, dRoll float32)

	// Position returns the camera's world-space position.
	// It always lies at distance Radius() from Target() along -Front().
	//
	// Returns:
	//   - mgl32.Vec3: world-space camera position
	Position() mgl32.Vec3

	// Target returns the fixed look-at point.
	//
	// Returns:
	//   - mgl32.Vec3: world-space target position
	Target() mgl32.Vec3

	// Up returns the current up vector, including roll.
	//
	// Returns:
	//   - mgl32.Vec3: unit up vector
	Up() mgl32.Vec3

	// Front returns the unit direction from the camera towards the target.
	//
	// Returns:
	//   - mgl32.Vec3: unit front vector
	Front() mgl32.Vec3

	// Radius returns the orbit radius fixed at construction.
	//
	// Returns:
	//   - float32: distance between position and target
	Radius() float32

	// Yaw returns the yaw angle in radians.
	Yaw() float32

	// Pitch returns the pitch angle in radians.
	Pitch() float32

	// Roll returns the roll angle in radians.
	Roll() float32
}
