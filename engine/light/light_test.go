package light

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewLightDefaults(t *testing.T) {
	l := NewLight()
	if l.Kind() != KindSpot {
		t.Fatalf("kind = %v, want spotlight", l.Kind())
	}
	if l.Color() != (mgl32.Vec3{1, 0, 1}) {
		t.Fatalf("color = %v", l.Color())
	}
	if l.CutOff() != 10.5 || l.OuterCutOff() != 12.5 {
		t.Fatalf("cutoffs = %v/%v", l.CutOff(), l.OuterCutOff())
	}
	if l.Linear() != 0.09 || l.Quadratic() != 0.032 || l.Intensity() != 1 {
		t.Fatalf("attenuation = %v/%v intensity %v", l.Linear(), l.Quadratic(), l.Intensity())
	}
	if !l.Enabled() {
		t.Fatalf("new lights should be on")
	}
}

func TestCutOffOrdering(t *testing.T) {
	tests := []struct {
		name      string
		apply     func(Light)
		wantCut   float32
		wantOuter float32
	}{
		{"inner raises outer", func(l Light) { l.SetOuterCutOff(15); l.SetCutOff(20) }, 20, 20},
		{"outer lowers inner", func(l Light) { l.SetCutOff(10); l.SetOuterCutOff(5) }, 5, 5},
		{"clamped above", func(l Light) { l.SetOuterCutOff(60); l.SetCutOff(45) }, 30, 30},
		{"clamped below", func(l Light) { l.SetCutOff(-5); l.SetOuterCutOff(-1) }, 0, 0},
		{"independent within range", func(l Light) { l.SetCutOff(3); l.SetOuterCutOff(25) }, 3, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLight()
			tt.apply(l)
			if l.CutOff() > l.OuterCutOff() {
				t.Fatalf("cutoff %v exceeds outer %v", l.CutOff(), l.OuterCutOff())
			}
			if l.CutOff() != tt.wantCut || l.OuterCutOff() != tt.wantOuter {
				t.Fatalf("got %v/%v, want %v/%v", l.CutOff(), l.OuterCutOff(), tt.wantCut, tt.wantOuter)
			}
		})
	}
}

func TestSpotConeOptionOrders(t *testing.T) {
	l := NewLight(WithSpotCone(20, 8))
	if l.CutOff() != 8 || l.OuterCutOff() != 20 {
		t.Fatalf("got %v/%v", l.CutOff(), l.OuterCutOff())
	}
}

func TestKindNextWraps(t *testing.T) {
	if KindSpot.Next() != KindPoint || KindPoint.Next() != KindSpot {
		t.Fatalf("kind cycle broken")
	}
}

func TestDataCosines(t *testing.T) {
	l := NewLight(WithSpotCone(0, 30), WithColor(2, 0.5, -1))
	d := l.Data(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0, -1, 0})
	if d.CutOffCos != 1 {
		t.Fatalf("cos(0) = %v", d.CutOffCos)
	}
	if math.Abs(float64(d.OuterCutOffCos)-math.Sqrt(3)/2) > 1e-6 {
		t.Fatalf("cos(30) = %v", d.OuterCutOffCos)
	}
	if d.Color != (mgl32.Vec3{1, 0.5, 0}) {
		t.Fatalf("color should be clamped, got %v", d.Color)
	}
	if d.Position != (mgl32.Vec3{1, 2, 3}) || d.Direction != (mgl32.Vec3{0, -1, 0}) {
		t.Fatalf("position/direction not carried: %+v", d)
	}
}

func TestMarshalLightBuffer(t *testing.T) {
	g := NewGPULight(NewLight(WithKind(KindPoint)).Data(mgl32.Vec3{4, 5, 6}, mgl32.Vec3{}), true)
	if g.Size() != 64 {
		t.Fatalf("GPULight size = %d", g.Size())
	}
	h := GPULightHeader{}
	if h.Size() != 16 {
		t.Fatalf("header size = %d", h.Size())
	}

	lights := []GPULight{g, g, g, g, g, g}
	buf := MarshalLightBuffer([3]float32{0.1, 0.1, 0.1}, lights)
	if len(buf) != LightBufferSize {
		t.Fatalf("buffer length = %d", len(buf))
	}
	if n := binary.LittleEndian.Uint32(buf[12:16]); n != MaxGPULights {
		t.Fatalf("light count = %d, want %d", n, MaxGPULights)
	}
	if k := binary.LittleEndian.Uint32(buf[16+12 : 16+16]); k != uint32(KindPoint) {
		t.Fatalf("kind = %d", k)
	}
	if x := math.Float32frombits(binary.LittleEndian.Uint32(buf[16:20])); x != 4 {
		t.Fatalf("position.x = %v", x)
	}
	if e := binary.LittleEndian.Uint32(buf[16+60 : 16+64]); e != 1 {
		t.Fatalf("enabled = %d", e)
	}

	short := MarshalLightBuffer([3]float32{}, lights[:1])
	for i := 16 + 64; i < len(short); i++ {
		if short[i] != 0 {
			t.Fatalf("unused slot byte %d = %d", i, short[i])
		}
	}
}
