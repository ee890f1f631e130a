package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-5

func TestProjectScreenDelta(t *testing.T) {
	tests := []struct {
		name          string
		dx, dy        float64
		width, height int
		k             float32
		wantX, wantY  float32
	}{
		{"horizontal tenth of full hd", 192, 0, 1920, 1080, 10, 2.0, 0},
		{"vertical scaled by ratio", 0, 108, 1920, 1080, 10, 0, 1.125},
		{"square viewport", 50, -50, 100, 100, 1, 1, -1},
		{"zero height", 10, 10, 1920, 0, 10, 0, 0},
		{"zero width", 10, 10, 0, 1080, 10, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotX, gotY := ProjectScreenDelta(tt.dx, tt.dy, tt.width, tt.height, tt.k)
			if math.Abs(float64(gotX-tt.wantX)) > eps || math.Abs(float64(gotY-tt.wantY)) > eps {
				t.Fatalf("ProjectScreenDelta = (%v, %v), want (%v, %v)", gotX, gotY, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestNearPlaneExtents(t *testing.T) {
	w, h := NearPlaneExtents(1920, 1080)
	if w != 2 {
		t.Fatalf("width = %v, want 2", w)
	}
	if math.Abs(float64(h-1.125)) > eps {
		t.Fatalf("height = %v, want 1.125", h)
	}
}

func TestPickColorID(t *testing.T) {
	c := PickColor{1, 2, 3}
	if got := c.ID(); got != 65536+512+3 {
		t.Fatalf("ID = %d", got)
	}
	if back := PickColorFromID(c.ID()); back != c {
		t.Fatalf("PickColorFromID(%d) = %v, want %v", c.ID(), back, c)
	}
	if NoPickColor.ID() != 0 {
		t.Fatalf("NoPickColor id = %d, want 0", NoPickColor.ID())
	}
	v := PickColor{255, 0, 51}.Vec4()
	if v[0] != 1 || v[1] != 0 || math.Abs(float64(v[2]-0.2)) > eps || v[3] != 1 {
		t.Fatalf("Vec4 = %v", v)
	}
}

func TestRotateAround(t *testing.T) {
	got := RotateAround(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 2}, float32(math.Pi/2))
	want := mgl32.Vec3{-1, 0, 0}
	if !got.ApproxEqualThreshold(want, eps) {
		t.Fatalf("RotateAround = %v, want %v", got, want)
	}
	if same := RotateAround(want, mgl32.Vec3{}, 1); same != want {
		t.Fatalf("zero axis should leave the vector untouched, got %v", same)
	}
}

func TestSafeNormalize(t *testing.T) {
	if got := SafeNormalize(mgl32.Vec3{}); got != (mgl32.Vec3{}) {
		t.Fatalf("zero vector normalized to %v", got)
	}
	if got := SafeNormalize(mgl32.Vec3{3, 0, 4}); !got.ApproxEqualThreshold(mgl32.Vec3{0.6, 0, 0.8}, eps) {
		t.Fatalf("SafeNormalize = %v", got)
	}
}

func TestWebGPUClipCorrection(t *testing.T) {
	near := WebGPUClipCorrection.Mul4x1(mgl32.Vec4{0, 0, -1, 1})
	far := WebGPUClipCorrection.Mul4x1(mgl32.Vec4{0, 0, 1, 1})
	if near[2]/near[3] != 0 || far[2]/far[3] != 1 {
		t.Fatalf("clip correction near=%v far=%v", near, far)
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce(0, 0, 3, 4); got != 3 {
		t.Fatalf("Coalesce = %d, want 3", got)
	}
	if got := Coalesce("", ""); got != "" {
		t.Fatalf("Coalesce = %q, want empty", got)
	}
}
