package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-lumen/common"
	"github.com/go-gl/mathgl/mgl32"
)

var maxPitch = mgl32.DegToRad(89)

// domeControllerImpl is the implementation of CameraController.
// The camera lives on a sphere of fixed radius around the target; yaw and pitch pick
// the point on the sphere and roll spins the up vector about the viewing axis.
type domeControllerImpl struct {
	mu *sync.Mutex

	position mgl32.Vec3
	target   mgl32.Vec3
	worldUp  mgl32.Vec3
	up       mgl32.Vec3
	front    mgl32.Vec3

	yaw   float32
	pitch float32
	roll  float32

	radius float32
}

var _ CameraController = &domeControllerImpl{}

// NewCameraController creates a dome controller.
// Defaults: initial position (0, 1, 10), target at the origin, world up +Y,
// yaw -135°, pitch -25°, roll 0°. The orbit radius is the z distance between the
// initial position and the target, or the full distance when that is zero.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	dc := &domeControllerImpl{
		mu:       &sync.Mutex{},
		position: mgl32.Vec3{0, 1, 10},
		worldUp:  mgl32.Vec3{0, 1, 0},
		yaw:      mgl32.DegToRad(-135),
		pitch:    mgl32.DegToRad(-25),
	}
	for _, option := range options {
		option(dc)
	}

	dc.radius = float32(math.Abs(float64(dc.position.Z() - dc.target.Z())))
	if dc.radius == 0 {
		dc.radius = dc.position.Sub(dc.target).Len()
	}
	dc.pitch = mgl32.Clamp(dc.pitch, -maxPitch, maxPitch)
	dc.updateVectors()
	return dc
}

func (dc *domeControllerImpl) Rotate(dYaw, dPitch, dRoll float32) {
	dc.mu.Lock()
	defer dc.mu.Unlock()

	dc.yaw += dYaw
	dc.pitch -= dPitch
	dc.roll += dRoll
	dc.pitch = mgl32.Clamp(dc.pitch, -maxPitch, maxPitch)
	dc.updateVectors()
}

func (dc *domeControllerImpl) Position() mgl32.Vec3 {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	return dc.position
}

func (dc *domeControllerImpl) Target() mgl32.Vec3 {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	return dc.target
}

func (dc *domeControllerImpl) Up() mgl32.Vec3 {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	return dc.up
}

func (dc *domeControllerImpl) Front() mgl32.Vec3 {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	return dc.front
}

func (dc *domeControllerImpl) Radius() float32 {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	return dc.radius
}

func (dc *domeControllerImpl) Yaw() float32 {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	return dc.yaw
}

func (dc *domeControllerImpl) Pitch() float32 {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	return dc.pitch
}

func (dc *domeControllerImpl) Roll() float32 {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	return dc.roll
}

// updateVectors recomputes front, up and position from the current angles.
// Caller must hold the mutex.
func (dc *domeControllerImpl) updateVectors() {
	cosPitch := float32(math.Cos(float64(dc.pitch)))
	front := mgl32.Vec3{
		float32(math.Cos(float64(dc.yaw))) * cosPitch,
		float32(math.Sin(float64(dc.pitch))),
		float32(math.Sin(float64(dc.yaw))) * cosPitch,
	}
	front = common.SafeNormalize(front)

	right := common.SafeNormalize(front.Cross(dc.worldUp))
	up := common.SafeNormalize(right.Cross(front))

	dc.front = front
	dc.up = common.RotateAround(up, front, dc.roll)
	dc.position = dc.target.Sub(front.Mul(dc.radius))
}
