package camera

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-4

func newEditorCamera(options ...CameraBuilderOption) Camera {
	ctrl := NewCameraController(
		WithInitialPosition(mgl32.Vec3{0, 1, 10}),
		WithTarget(mgl32.Vec3{0, 0, 0}),
		WithWorldUp(mgl32.Vec3{0, 1, 0}),
	)
	return NewCamera(append([]CameraBuilderOption{WithController(ctrl)}, options...)...)
}

func TestDefaults(t *testing.T) {
	c := newEditorCamera()
	if c.Fov() != 70 || c.Near() != 0.1 || c.Far() != 100 {
		t.Fatalf("defaults fov=%v near=%v far=%v", c.Fov(), c.Near(), c.Far())
	}
	ctrl := c.Controller()
	if ctrl.Radius() != 10 {
		t.Fatalf("radius = %v, want 10", ctrl.Radius())
	}
	if math.Abs(float64(ctrl.Yaw()-mgl32.DegToRad(-135))) > eps {
		t.Fatalf("yaw = %v", ctrl.Yaw())
	}
	if math.Abs(float64(ctrl.Pitch()-mgl32.DegToRad(-25))) > eps {
		t.Fatalf("pitch = %v", ctrl.Pitch())
	}
}

func TestRotateKeepsRadiusAndClampsPitch(t *testing.T) {
	c := newEditorCamera()
	ctrl := c.Controller()
	rng := rand.New(rand.NewSource(7))
	limit := float64(mgl32.DegToRad(89)) + eps

	for i := 0; i < 500; i++ {
		dYaw := (rng.Float32() - 0.5) * 4
		dPitch := (rng.Float32() - 0.5) * 4
		dRoll := (rng.Float32() - 0.5) * 4
		c.Rotate(dYaw, dPitch, dRoll)
		c.Zoom((rng.Float32() - 0.5) * 40)

		if p := float64(ctrl.Pitch()); math.Abs(p) > limit {
			t.Fatalf("step %d: pitch %v out of range", i, p)
		}
		dist := c.Position().Sub(ctrl.Target()).Len()
		if math.Abs(float64(dist-ctrl.Radius())) > 1e-3 {
			t.Fatalf("step %d: |position-target| = %v, radius = %v", i, dist, ctrl.Radius())
		}
		if f := c.Fov(); f < 10 || f > 100 {
			t.Fatalf("step %d: fov %v out of range", i, f)
		}
	}
}

func TestRotateQuarterYaw(t *testing.T) {
	c := newEditorCamera()
	before := c.Position()
	c.Rotate(math.Pi/2, 0, 0)
	after := c.Position()

	if math.Abs(float64(after.X()+before.X())) > eps {
		t.Fatalf("x should flip sign: before %v after %v", before, after)
	}
	if math.Abs(float64(after.Z()-before.Z())) > eps || math.Abs(float64(after.Y()-before.Y())) > eps {
		t.Fatalf("y and z should be unchanged: before %v after %v", before, after)
	}
	if d := after.Len(); math.Abs(float64(d-10)) > eps {
		t.Fatalf("radius changed to %v", d)
	}
}

func TestRollOnlyChangesUp(t *testing.T) {
	c := newEditorCamera()
	ctrl := c.Controller()
	pos := c.Position()
	up := ctrl.Up()

	c.Rotate(0, 0, math.Pi/2)

	if !c.Position().ApproxEqualThreshold(pos, eps) {
		t.Fatalf("roll moved the camera: %v -> %v", pos, c.Position())
	}
	rolled := ctrl.Up()
	if math.Abs(float64(rolled.Dot(up))) > eps {
		t.Fatalf("quarter roll should make up orthogonal to the old up, dot=%v", rolled.Dot(up))
	}
	if math.Abs(float64(rolled.Dot(ctrl.Front()))) > eps {
		t.Fatalf("up must stay orthogonal to front")
	}
}

func TestZoomClamps(t *testing.T) {
	c := newEditorCamera()
	c.Zoom(100)
	if c.Fov() != 10 {
		t.Fatalf("fov = %v, want 10", c.Fov())
	}
	c.Zoom(-500)
	if c.Fov() != 100 {
		t.Fatalf("fov = %v, want 100", c.Fov())
	}
	c.Zoom(30)
	if c.Fov() != 70 || c.DisplayFov() != 70 {
		t.Fatalf("fov = %v display = %v, want 70", c.Fov(), c.DisplayFov())
	}
}

func TestZoomSmoothingConverges(t *testing.T) {
	c := newEditorCamera(WithZoomSmoothing(60))
	c.Zoom(30)
	if c.Fov() != 40 {
		t.Fatalf("target fov = %v, want 40", c.Fov())
	}
	if c.DisplayFov() != 70 {
		t.Fatalf("display fov moved before Update: %v", c.DisplayFov())
	}
	c.Update()
	if d := c.DisplayFov(); d >= 70 || d < 40 {
		t.Fatalf("display fov after one step = %v", d)
	}
	for i := 0; i < 600; i++ {
		c.Update()
	}
	if d := c.DisplayFov(); math.Abs(float64(d-40)) > 0.01 {
		t.Fatalf("display fov = %v, want ~40", d)
	}
}

func TestProjectionZeroHeight(t *testing.T) {
	c := newEditorCamera()
	m := c.ProjectionMatrix(1920, 0)
	for i, v := range m {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			t.Fatalf("element %d is %v", i, v)
		}
	}
	square := c.ProjectionMatrix(500, 500)
	if m != square {
		t.Fatalf("degenerate viewport should fall back to aspect 1")
	}
}

func TestViewMatrixLooksAtTarget(t *testing.T) {
	c := newEditorCamera()
	target := c.ViewMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if math.Abs(float64(target.X())) > eps || math.Abs(float64(target.Y())) > eps {
		t.Fatalf("target should sit on the view axis, got %v", target)
	}
	if math.Abs(float64(target.Z()+10)) > eps {
		t.Fatalf("target depth = %v, want -10", target.Z())
	}
}

func TestGPUCameraUniformMarshal(t *testing.T) {
	u := NewGPUCameraUniform(mgl32.Ident4(), mgl32.Vec3{1, 2, 3})
	buf := u.Marshal()
	if len(buf) != 80 || u.Size() != 80 {
		t.Fatalf("size = %d / %d, want 80", len(buf), u.Size())
	}
	if got := math.Float32frombits(uint32(buf[64]) | uint32(buf[65])<<8 | uint32(buf[66])<<16 | uint32(buf[67])<<24); got != 1 {
		t.Fatalf("eye.x = %v", got)
	}
	if got := math.Float32frombits(uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24); got != 1 {
		t.Fatalf("m[0] = %v", got)
	}
}
