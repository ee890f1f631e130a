package scene

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-lumen/common"
	"github.com/Carmen-Shannon/oxy-lumen/engine/game_object"
	"github.com/Carmen-Shannon/oxy-lumen/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

func TestOdometerSequence(t *testing.T) {
	var o pickColorOdometer
	seen := map[common.PickColor]bool{}
	var colors []common.PickColor
	for i := 0; i < 700; i++ {
		c := o.next()
		if c == common.NoPickColor {
			t.Fatalf("issue %d returned the nothing color", i)
		}
		if seen[c] {
			t.Fatalf("issue %d repeated %v", i, c)
		}
		seen[c] = true
		colors = append(colors, c)
	}
	checks := map[int]common.PickColor{
		0:   {0, 0, 10},
		1:   {0, 0, 20},
		24:  {0, 0, 250},
		25:  {0, 10, 0},
		26:  {0, 10, 10},
		675: {10, 0, 0},
	}
	for i, want := range checks {
		if colors[i] != want {
			t.Fatalf("color %d = %v, want %v", i+1, colors[i], want)
		}
	}
}

func TestOdometerNeverIssuesBlack(t *testing.T) {
	o := pickColorOdometer{rgb: [3]int{250, 250, 250}}
	if c := o.next(); c != (common.PickColor{0, 0, 10}) {
		t.Fatalf("after full rollover got %v", c)
	}
}

func TestAddLightCapacity(t *testing.T) {
	s := NewScene("test")
	ids := map[int]bool{}
	for i := 0; i < DefaultMaxLights; i++ {
		l, err := s.AddLight()
		if err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
		if ids[l.ID()] {
			t.Fatalf("duplicate id %d", l.ID())
		}
		ids[l.ID()] = true
	}
	if _, ok := ids[1]; !ok {
		t.Fatalf("first identity should be 1, got %v", ids)
	}

	l, err := s.AddLight()
	if !errors.Is(err, ErrLightCapacity) || l != nil {
		t.Fatalf("5th add: light %v err %v", l, err)
	}
	if s.LightCount() != DefaultMaxLights {
		t.Fatalf("count = %d", s.LightCount())
	}
}

func TestWithMaxLights(t *testing.T) {
	s := NewScene("test", WithMaxLights(1))
	if _, err := s.AddLight(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddLight(); !errors.Is(err, ErrLightCapacity) {
		t.Fatalf("err = %v", err)
	}
}

func TestResolveIdentityByPickColor(t *testing.T) {
	s := NewScene("test")
	a, _ := s.AddLight()
	b, _ := s.AddLight()

	if i := s.ResolveIdentityByPickColor(b.PickColor()); i != 1 || s.LightIDAt(i) != b.ID() {
		t.Fatalf("resolve b = %d", i)
	}
	if i := s.ResolveIdentityByPickColor(a.PickColor()); i != 0 {
		t.Fatalf("resolve a = %d", i)
	}
	if i := s.ResolveIdentityByPickColor(common.NoPickColor); i != NotFound {
		t.Fatalf("background resolved to %d", i)
	}
	if i := s.ResolveIdentityByPickColor(common.PickColor{255, 255, 255}); i != NotFound {
		t.Fatalf("unknown color resolved to %d", i)
	}
	if s.LightIDAt(5) != NotFound || s.LightIDAt(-1) != NotFound {
		t.Fatalf("out of range index should be NotFound")
	}
}

func TestDeferredRemoval(t *testing.T) {
	s := NewScene("test")
	a, _ := s.AddLight()
	b, _ := s.AddLight()
	c, _ := s.AddLight()

	s.RemoveLight(b.ID())
	s.RemoveLight(999)
	if s.LightCount() != 3 {
		t.Fatalf("removal must wait for the draw pass")
	}
	if p := s.PendingRemovals(); len(p) != 1 || p[0] != b.ID() {
		t.Fatalf("pending = %v", p)
	}

	pass := s.DrawPass(false, mgl32.Vec3{})
	if len(pass.Lights) != 3 {
		t.Fatalf("the pass that requested removal still sees all lights, got %d", len(pass.Lights))
	}
	if s.LightCount() != 2 {
		t.Fatalf("count after pass = %d", s.LightCount())
	}
	if s.Light(b.ID()) != nil || s.Light(a.ID()) == nil || s.Light(c.ID()) == nil {
		t.Fatalf("wrong light removed")
	}
	if s.LightIDAt(1) != c.ID() {
		t.Fatalf("order not kept")
	}

	next := s.DrawPass(false, mgl32.Vec3{})
	if len(next.Lights) != 2 {
		t.Fatalf("next pass lights = %d", len(next.Lights))
	}

	d, _ := s.AddLight()
	if d.ID() <= c.ID() {
		t.Fatalf("identities must not be reused: %d", d.ID())
	}
	if d.PickColor() == b.PickColor() {
		t.Fatalf("pick colors must not be reused")
	}
}

func TestDrawPassContents(t *testing.T) {
	s := NewScene("test", WithDecorations(game_object.NewAxisGizmo(5)))
	on, _ := s.AddLight()
	off, _ := s.AddLight()
	off.Light().SetEnabled(false)
	off.SwitchKind(1)

	pass := s.DrawPass(false, mgl32.Vec3{1, 2, 3})
	if len(pass.Lights) != 1 {
		t.Fatalf("only lights that are on contribute, got %d", len(pass.Lights))
	}
	if pass.Lights[0].Position != on.WorldPosition() {
		t.Fatalf("light data position = %v", pass.Lights[0].Position)
	}
	// spot: marker+arrow, point: marker, focal, gizmo: 6 parts
	if len(pass.Records) != 2+1+1+6 {
		t.Fatalf("records = %d", len(pass.Records))
	}
	if pass.Eye != (mgl32.Vec3{1, 2, 3}) {
		t.Fatalf("eye = %v", pass.Eye)
	}

	pick := s.DrawPass(true, mgl32.Vec3{})
	if len(pick.Records) != 2+1+1 {
		t.Fatalf("pick records = %d", len(pick.Records))
	}
	for _, r := range pick.Records {
		if r.Mode != model.DrawFill || r.Lit {
			t.Fatalf("pick record = %+v", r)
		}
	}

	s.SetDecorationsEnabled(false)
	if n := len(s.DrawPass(false, mgl32.Vec3{}).Records); n != 4 {
		t.Fatalf("records without decorations = %d", n)
	}
}

func TestRotateAndToggleByID(t *testing.T) {
	s := NewScene("test")
	l, _ := s.AddLight()
	if !s.RotateLight(l.ID(), 0.5, 0.25) {
		t.Fatalf("rotate failed")
	}
	if r := l.Rotation(); r != [2]float32{5, 10} {
		t.Fatalf("rotation = %v", r)
	}
	if !s.TogglePanel(l.ID()) || !l.PanelOpen() {
		t.Fatalf("toggle failed")
	}
	if s.RotateLight(42, 1, 1) || s.TogglePanel(42) {
		t.Fatalf("unknown identity should report false")
	}
}

func TestLoadFocalObjectFailureKeepsMesh(t *testing.T) {
	tri := model.NewMesh(
		model.WithPositions([]float32{0, 0, 0, 1, 0, 0, 0, 1, 0}),
		model.WithIndices([]uint32{0, 1, 2}),
	)
	focal := game_object.NewFocalObject(game_object.WithFocalMesh(tri))
	s := NewScene("test", WithFocalObject(focal))
	if err := s.LoadFocalObject("missing.obj"); err == nil {
		t.Fatalf("expected error without a mesh source")
	}
	if s.FocalObject().Mesh().VertexCount() != 3 {
		t.Fatalf("focal mesh lost")
	}
}
