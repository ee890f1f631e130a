package game_object

import (
	"errors"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-lumen/common"
	"github.com/Carmen-Shannon/oxy-lumen/engine/light"
	"github.com/Carmen-Shannon/oxy-lumen/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-4

func approx(a, b mgl32.Vec3) bool {
	return a.ApproxEqualThreshold(b, eps)
}

func TestLightObjectDefaults(t *testing.T) {
	l := NewLightObject(1, common.PickColorFromID(10))
	if l.Light().Kind() != light.KindSpot {
		t.Fatalf("kind = %v", l.Light().Kind())
	}
	if l.Position() != (mgl32.Vec3{0, 3, 0}) {
		t.Fatalf("position = %v", l.Position())
	}
	if !approx(l.WorldPosition(), mgl32.Vec3{0, 3, 0}) {
		t.Fatalf("world position = %v", l.WorldPosition())
	}
	// (0,-3,0)·0.15 - (0,8,0)·0.15
	if !approx(l.WorldDirection(), mgl32.Vec3{0, -1.65, 0}) {
		t.Fatalf("world direction = %v", l.WorldDirection())
	}
	if l.Mesh().Empty() {
		t.Fatalf("fallback marker mesh missing")
	}
	if p := l.Pose(light.KindPoint); p.Scale != 0.1 || p.BaseAngle != 180 {
		t.Fatalf("point pose = %+v", p)
	}
}

func TestRotateByAndReset(t *testing.T) {
	l := NewLightObject(1, common.PickColorFromID(10))
	l.RotateBy(1, 0.5)
	if r := l.Rotation(); r != [2]float32{10, 20} {
		t.Fatalf("rotation = %v, want [10 20]", r)
	}
	l.RotateBy(-0.5, 0)
	if r := l.Rotation(); r != [2]float32{10, 10} {
		t.Fatalf("rotation = %v, want [10 10]", r)
	}
	l.Reset()
	if r := l.Rotation(); r != [2]float32{0, 0} {
		t.Fatalf("rotation after reset = %v", r)
	}
}

func TestOffsetsArePerKind(t *testing.T) {
	l := NewLightObject(1, common.PickColorFromID(10))
	l.RotateBy(1, 1)
	l.SwitchKind(light.KindPoint)
	if r := l.Rotation(); r != [2]float32{} {
		t.Fatalf("point offsets should start at zero, got %v", r)
	}
	l.SetRotation(200, -45)
	if r := l.Rotation(); r != [2]float32{90, -45} {
		t.Fatalf("clamped rotation = %v", r)
	}
	l.SwitchKind(light.KindSpot)
	if r := l.Rotation(); r != [2]float32{20, 20} {
		t.Fatalf("spot offsets lost: %v", r)
	}
}

func TestRotationTurnsDirection(t *testing.T) {
	l := NewLightObject(1, common.PickColorFromID(10))
	l.SetRotation(90, 0)
	// 90° about X maps -Y to -Z
	if !approx(l.WorldDirection(), mgl32.Vec3{0, 0, -1.65}) {
		t.Fatalf("direction = %v", l.WorldDirection())
	}
	if !approx(l.WorldPosition(), mgl32.Vec3{0, 3, 0}) {
		t.Fatalf("rotation moved the light: %v", l.WorldPosition())
	}
}

func TestSetPositionClamps(t *testing.T) {
	l := NewLightObject(1, common.PickColorFromID(10))
	l.SetPosition(mgl32.Vec3{-20, 4, 11})
	if l.Position() != (mgl32.Vec3{-10, 4, 10}) {
		t.Fatalf("position = %v", l.Position())
	}
}

func TestSwitchKindLoadFailureKeepsGeometry(t *testing.T) {
	spot := model.Cone(1, 2, 5)
	source := func(kind light.Kind) (*model.Mesh, error) {
		if kind == light.KindPoint {
			return nil, errors.New("missing file")
		}
		return spot, nil
	}
	l := NewLightObject(3, common.PickColorFromID(30), WithKindMeshSource(source))
	before := l.Mesh().VertexCount()
	l.SetPanelPositioned(true)

	l.SwitchKind(light.KindPoint)

	if l.Light().Kind() != light.KindPoint {
		t.Fatalf("kind switch should still happen")
	}
	if l.Mesh().VertexCount() != before || before != spot.VertexCount() {
		t.Fatalf("geometry changed: %d -> %d", before, l.Mesh().VertexCount())
	}
	if l.PanelPositioned() {
		t.Fatalf("panel position flag should be cleared")
	}
}

func TestTogglePanel(t *testing.T) {
	l := NewLightObject(1, common.PickColorFromID(10))
	l.SetPanelPositioned(true)
	l.TogglePanel()
	if !l.PanelOpen() || l.PanelPositioned() {
		t.Fatalf("open=%v positioned=%v", l.PanelOpen(), l.PanelPositioned())
	}
	l.TogglePanel()
	if l.PanelOpen() {
		t.Fatalf("panel should be closed")
	}
}

func TestLightDraw(t *testing.T) {
	pc := common.PickColorFromID(20)
	l := NewLightObject(2, pc)

	recs := l.Draw(false, nil)
	if len(recs) != 2 {
		t.Fatalf("spot records = %d, want marker and arrow", len(recs))
	}
	if recs[0].Mode != model.DrawWireframe || recs[0].Color != (mgl32.Vec4{1, 1, 1, 1}) {
		t.Fatalf("marker record = %+v", recs[0])
	}
	if recs[1].Mode != model.DrawFill || recs[1].Color != (mgl32.Vec4{1, 0, 1, 1}) {
		t.Fatalf("arrow record = %+v", recs[1])
	}

	pick := l.Draw(true, nil)
	for _, r := range pick {
		if r.Color != pc.Vec4() || r.Mode != model.DrawFill || r.Lit {
			t.Fatalf("pick record = %+v", r)
		}
	}

	l.Light().SetEnabled(false)
	l.SwitchKind(light.KindPoint)
	if n := len(l.Draw(false, nil)); n != 1 {
		t.Fatalf("point records = %d, want 1", n)
	}
}

func TestFocalObjectLoad(t *testing.T) {
	tri := model.NewMesh(
		model.WithPositions([]float32{0, 0, 0, 1, 0, 0, 0, 1, 0}),
		model.WithIndices([]uint32{0, 1, 2}),
	)
	source := func(path string) (*model.Mesh, error) {
		if path == "ok.obj" {
			return tri, nil
		}
		return nil, errors.New("nope")
	}
	f := NewFocalObject(WithMeshSource(source))

	if err := f.Load(""); err != nil {
		t.Fatalf("empty path should be a no-op: %v", err)
	}
	if err := f.Load("ok.obj"); err != nil {
		t.Fatalf("load: %v", err)
	}
	if f.Mesh().VertexCount() != 3 || f.Path() != "ok.obj" {
		t.Fatalf("mesh not replaced")
	}
	if err := f.Load("bad.obj"); err == nil {
		t.Fatalf("expected error")
	}
	if f.Mesh().VertexCount() != 3 || f.Path() != "ok.obj" {
		t.Fatalf("failed load must keep previous geometry")
	}
}

func TestFocalDraw(t *testing.T) {
	f := NewFocalObject(WithFocalScale(2))
	recs := f.Draw(false, nil)
	if len(recs) != 1 || !recs[0].Lit || recs[0].Transform != mgl32.Scale3D(2, 2, 2) {
		t.Fatalf("normal record = %+v", recs)
	}
	pick := f.Draw(true, nil)
	if pick[0].Lit || pick[0].Color != common.NoPickColor.Vec4() {
		t.Fatalf("pick record = %+v", pick[0])
	}
}

func TestDecorations(t *testing.T) {
	g := NewAxisGizmo(5)
	if g.PartCount() != 6 || len(g.Draw(false, nil)) != 6 {
		t.Fatalf("gizmo parts = %d", g.PartCount())
	}
	if len(g.Draw(true, nil)) != 0 {
		t.Fatalf("decorations must not appear in the pick pass")
	}
	grid := NewGrid(4, mgl32.Vec3{0.3, 0.3, 0.3})
	if recs := grid.Draw(false, nil); len(recs) != 1 || recs[0].Mode != model.DrawLines {
		t.Fatalf("grid records = %+v", recs)
	}
	if math.Abs(float64(g.Color().X()-1)) > eps {
		t.Fatalf("first gizmo part should be red")
	}
}
