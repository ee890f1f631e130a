package overlay

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-lumen/common"
	"github.com/Carmen-Shannon/oxy-lumen/engine/game_object"
	"github.com/Carmen-Shannon/oxy-lumen/engine/light"
	"github.com/Carmen-Shannon/oxy-lumen/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
)

func press(o Overlay, key int) {
	o.HandleKey(key, true)
	o.HandleKey(key, false)
}

func TestAddLightUntilCapacity(t *testing.T) {
	sc := scene.NewScene("test", scene.WithMaxLights(2))
	o := NewOverlay(sc)
	for i := 0; i < 3; i++ {
		press(o, common.KeyN)
	}
	o.Update()
	if sc.LightCount() != 2 {
		t.Fatalf("light count = %d, want 2", sc.LightCount())
	}
}

func TestHeldKeyQueuesOnce(t *testing.T) {
	sc := scene.NewScene("test")
	o := NewOverlay(sc)
	o.HandleKey(common.KeyN, true)
	o.HandleKey(common.KeyN, true)
	o.HandleKey(common.KeyN, false)
	o.Update()
	if sc.LightCount() != 1 {
		t.Fatalf("light count = %d, want 1", sc.LightCount())
	}
}

func TestOnlyPanelEditsCapturePointer(t *testing.T) {
	sc := scene.NewScene("test")
	o := NewOverlay(sc)
	a, _ := sc.AddLight()

	o.HandleKey(common.KeyLeft, true)
	if o.CapturesPointer() {
		t.Fatalf("an edit key with no open panel should not capture the pointer")
	}
	o.HandleKey(common.KeyLeft, false)

	sc.TogglePanel(a.ID())
	for _, key := range []int{common.KeyN, common.KeyG, common.KeyH, common.KeyMinus} {
		o.HandleKey(key, true)
		if o.CapturesPointer() {
			t.Fatalf("key %d does not edit a panel and should not capture the pointer", key)
		}
		o.HandleKey(key, false)
	}

	o.HandleKey(common.KeyLeft, true)
	if !o.CapturesPointer() {
		t.Fatalf("a held panel edit key should capture the pointer")
	}
	o.HandleKey(common.KeyLeft, false)
	if o.CapturesPointer() {
		t.Fatalf("capture should end on release")
	}
}

func TestReleaseKeysEndsCapture(t *testing.T) {
	sc := scene.NewScene("test")
	o := NewOverlay(sc)
	a, _ := sc.AddLight()
	sc.TogglePanel(a.ID())

	o.HandleKey(common.KeyUp, true)
	if !o.CapturesPointer() {
		t.Fatalf("held edit key should capture the pointer")
	}
	o.ReleaseKeys()
	if o.CapturesPointer() {
		t.Fatalf("capture should end after ReleaseKeys")
	}

	// a fresh press after the lost release queues again
	o.HandleKey(common.KeyUp, true)
	o.HandleKey(common.KeyUp, false)
	o.Update()
	if got := a.Position(); got != (mgl32.Vec3{0, 3 + 2*PositionStep, 0}) {
		t.Fatalf("position = %v", got)
	}
}

func TestUnboundKeyIgnored(t *testing.T) {
	o := NewOverlay(scene.NewScene("test"))
	o.HandleKey(common.KeyEsc, true)
	if o.CapturesPointer() {
		t.Fatalf("unbound key should not capture the pointer")
	}
}

func TestPanelCommandsOnlyTouchOpenPanels(t *testing.T) {
	sc := scene.NewScene("test")
	o := NewOverlay(sc)
	a, _ := sc.AddLight()
	b, _ := sc.AddLight()
	sc.TogglePanel(a.ID())

	press(o, common.KeyK)
	press(o, common.KeyO)
	o.Update()

	if a.Light().Kind() != light.KindPoint || a.Light().Enabled() {
		t.Fatalf("open light: kind %v enabled %v", a.Light().Kind(), a.Light().Enabled())
	}
	if b.Light().Kind() != light.KindSpot || !b.Light().Enabled() {
		t.Fatalf("closed light was edited: kind %v enabled %v", b.Light().Kind(), b.Light().Enabled())
	}
	if got := len(o.Panels()); got != 1 {
		t.Fatalf("panels = %d, want 1", got)
	}
}

func TestRemoveOpenIsDeferredToDrawPass(t *testing.T) {
	sc := scene.NewScene("test")
	o := NewOverlay(sc)
	a, _ := sc.AddLight()
	b, _ := sc.AddLight()
	sc.AddLight()
	sc.TogglePanel(a.ID())
	sc.TogglePanel(b.ID())

	press(o, common.KeyDelete)
	o.Update()
	if sc.LightCount() != 3 {
		t.Fatalf("removal must wait for the draw pass, count = %d", sc.LightCount())
	}
	sc.DrawPass(false, [3]float32{})
	if sc.LightCount() != 1 {
		t.Fatalf("light count = %d, want 1", sc.LightCount())
	}
}

func TestResetRotation(t *testing.T) {
	sc := scene.NewScene("test")
	o := NewOverlay(sc)
	a, _ := sc.AddLight()
	a.SetRotation(30, -40)
	sc.TogglePanel(a.ID())

	press(o, common.KeyR)
	o.Update()
	if r := a.Rotation(); r != [2]float32{} {
		t.Fatalf("rotation = %v, want zero", r)
	}
}

func TestCutOffStepsKeepOrder(t *testing.T) {
	sc := scene.NewScene("test")
	o := NewOverlay(sc)
	a, _ := sc.AddLight()
	sc.TogglePanel(a.ID())

	for i := 0; i < 100; i++ {
		o.Queue(CommandCutOffUp)
	}
	o.Update()
	p := o.Panels()[0]
	inner, outer := p.CutOff()
	if outer != light.MaxCutOff || inner > outer {
		t.Fatalf("after widening inner=%v outer=%v", inner, outer)
	}

	for i := 0; i < 100; i++ {
		o.Queue(CommandCutOffDown)
	}
	o.Update()
	inner, outer = p.CutOff()
	if inner != 0 || inner > outer {
		t.Fatalf("after narrowing inner=%v outer=%v", inner, outer)
	}
}

func TestToggleDecorations(t *testing.T) {
	sc := scene.NewScene("test")
	o := NewOverlay(sc)
	press(o, common.KeyG)
	o.Update()
	if sc.DecorationsEnabled() {
		t.Fatalf("decorations should be off")
	}
	press(o, common.KeyG)
	o.Update()
	if !sc.DecorationsEnabled() {
		t.Fatalf("decorations should be on")
	}
}

func TestReloadFocal(t *testing.T) {
	calls := 0
	o := NewOverlay(scene.NewScene("test"), WithReloader(func() error {
		calls++
		return errors.New("missing")
	}))
	press(o, common.KeyL)
	o.Update()
	if calls != 1 {
		t.Fatalf("reloader calls = %d, want 1", calls)
	}
}

func TestPanelAccessors(t *testing.T) {
	sc := scene.NewScene("test")
	o := NewOverlay(sc)
	a, _ := sc.AddLight()
	sc.TogglePanel(a.ID())
	p := o.Panels()[0]

	if p.LightID() != a.ID() {
		t.Fatalf("panel id = %d, want %d", p.LightID(), a.ID())
	}
	p.SetPosition([3]float32{50, -50, 3})
	if got := p.Position(); got != [3]float32{10, -10, 3} {
		t.Fatalf("position = %v", got)
	}
	p.SetRotation(120, -5)
	if got := p.Rotation(); got != [2]float32{90, -5} {
		t.Fatalf("rotation = %v", got)
	}
	p.SetAttenuation(0.5, 0.25)
	if l, q := p.Attenuation(); l != 0.5 || q != 0.25 {
		t.Fatalf("attenuation = %v %v", l, q)
	}
	if p.Positioned() {
		t.Fatalf("new panel should not be positioned")
	}
	p.MarkPositioned()
	if !p.Positioned() {
		t.Fatalf("panel should be positioned")
	}
	p.Close()
	if len(o.Panels()) != 0 {
		t.Fatalf("panel should be closed")
	}
}

func TestMoveKeysStepPositionWithinLimit(t *testing.T) {
	sc := scene.NewScene("test")
	o := NewOverlay(sc)
	a, _ := sc.AddLight()
	sc.TogglePanel(a.ID())
	start := a.Position()

	tests := []struct {
		key  int
		want mgl32.Vec3
	}{
		{common.KeyRight, mgl32.Vec3{PositionStep, 0, 0}},
		{common.KeyLeft, mgl32.Vec3{-PositionStep, 0, 0}},
		{common.KeyUp, mgl32.Vec3{0, PositionStep, 0}},
		{common.KeyDown, mgl32.Vec3{0, -PositionStep, 0}},
		{common.KeyPageUp, mgl32.Vec3{0, 0, PositionStep}},
		{common.KeyPageDown, mgl32.Vec3{0, 0, -PositionStep}},
	}
	for _, tt := range tests {
		before := a.Position()
		press(o, tt.key)
		o.Update()
		if got := a.Position().Sub(before); !got.ApproxEqual(tt.want) {
			t.Fatalf("key %d moved by %v, want %v", tt.key, got, tt.want)
		}
	}
	if got := a.Position(); !got.ApproxEqual(start) {
		t.Fatalf("round trip position = %v, want %v", got, start)
	}

	for i := 0; i < 100; i++ {
		o.Queue(CommandMoveXUp)
		o.Queue(CommandMoveZDown)
	}
	o.Update()
	got := a.Position()
	if got.X() != game_object.PositionLimit || got.Z() != -game_object.PositionLimit {
		t.Fatalf("position = %v, want clamped to %v", got, game_object.PositionLimit)
	}
}

func TestRotateKeysStepSliders(t *testing.T) {
	sc := scene.NewScene("test")
	o := NewOverlay(sc)
	a, _ := sc.AddLight()
	sc.TogglePanel(a.ID())

	press(o, common.KeyW)
	press(o, common.KeyW)
	press(o, common.KeyA)
	o.Update()
	if got := a.Rotation(); got != [2]float32{2 * RotationStep, -RotationStep} {
		t.Fatalf("rotation = %v", got)
	}

	press(o, common.KeyS)
	press(o, common.KeyD)
	press(o, common.KeyD)
	o.Update()
	if got := a.Rotation(); got != [2]float32{RotationStep, RotationStep} {
		t.Fatalf("rotation = %v", got)
	}

	for i := 0; i < 50; i++ {
		o.Queue(CommandRotateXUp)
		o.Queue(CommandRotateZDown)
	}
	o.Update()
	if got := a.Rotation(); got != [2]float32{game_object.RotationLimit, -game_object.RotationLimit} {
		t.Fatalf("rotation = %v, want clamped", got)
	}
}

func TestCycleLightColor(t *testing.T) {
	sc := scene.NewScene("test")
	o := NewOverlay(sc)
	a, _ := sc.AddLight()
	sc.TogglePanel(a.ID())

	press(o, common.KeyC)
	o.Update()
	if got := a.Light().Color(); !got.ApproxEqual(Palette[1]) {
		t.Fatalf("color = %v, want %v", got, Palette[1])
	}

	a.Light().SetColor(mgl32.Vec3{0.1, 0.2, 0.3})
	press(o, common.KeyC)
	o.Update()
	if got := a.Light().Color(); !got.ApproxEqual(Palette[0]) {
		t.Fatalf("off-palette color should restart the cycle, got %v", got)
	}

	for range Palette {
		o.Queue(CommandCycleColor)
	}
	o.Update()
	if got := a.Light().Color(); !got.ApproxEqual(Palette[0]) {
		t.Fatalf("full cycle color = %v, want %v", got, Palette[0])
	}
}

func TestAttenuationSteps(t *testing.T) {
	sc := scene.NewScene("test")
	o := NewOverlay(sc)
	a, _ := sc.AddLight()
	sc.TogglePanel(a.ID())
	p := o.Panels()[0]
	p.SetAttenuation(0.1, 0.01)

	press(o, common.KeyPeriod)
	press(o, common.KeyApostrophe)
	o.Update()
	linear, quadratic := p.Attenuation()
	if !mgl32.FloatEqual(linear, 0.1+LinearStep) || !mgl32.FloatEqual(quadratic, 0.01+QuadraticStep) {
		t.Fatalf("after raising linear=%v quadratic=%v", linear, quadratic)
	}

	press(o, common.KeyComma)
	press(o, common.KeySemicolon)
	o.Update()
	linear, quadratic = p.Attenuation()
	if !mgl32.FloatEqual(linear, 0.1) || !mgl32.FloatEqual(quadratic, 0.01) {
		t.Fatalf("after lowering linear=%v quadratic=%v", linear, quadratic)
	}

	for i := 0; i < 100; i++ {
		o.Queue(CommandLinearDown)
		o.Queue(CommandQuadraticDown)
	}
	o.Update()
	if linear, quadratic = p.Attenuation(); linear != 0 || quadratic != 0 {
		t.Fatalf("attenuation should floor at zero, got %v %v", linear, quadratic)
	}
}

func TestFocalScaleAndColorNeedNoPanel(t *testing.T) {
	sc := scene.NewScene("test")
	o := NewOverlay(sc)
	f := sc.FocalObject()

	press(o, common.KeyEqual)
	o.Update()
	if !mgl32.FloatEqual(f.Scale(), ScaleStep) {
		t.Fatalf("scale = %v, want %v", f.Scale(), ScaleStep)
	}
	press(o, common.KeyMinus)
	press(o, common.KeyMinus)
	o.Update()
	if !mgl32.FloatEqual(f.Scale(), 1/ScaleStep) {
		t.Fatalf("scale = %v, want %v", f.Scale(), 1/ScaleStep)
	}

	for i := 0; i < 500; i++ {
		o.Queue(CommandFocalShrink)
	}
	o.Update()
	if f.Scale() <= 0 {
		t.Fatalf("scale must stay positive, got %v", f.Scale())
	}

	start := f.Color()
	press(o, common.KeyV)
	o.Update()
	if f.Color() == start {
		t.Fatalf("focal color did not change from %v", start)
	}
	if got := f.Color(); !got.ApproxEqual(nextColor(start)) {
		t.Fatalf("focal color = %v, want %v", got, nextColor(start))
	}
}

func TestEveryCommandHasBindingAndName(t *testing.T) {
	bound := map[Command]bool{}
	for key, cmd := range DefaultBindings() {
		bound[cmd] = true
		if _, ok := keyNames[key]; !ok {
			t.Fatalf("key %d for %s has no help label", key, cmd)
		}
	}
	for cmd := CommandAddLight; cmd < commandCount; cmd++ {
		if !bound[cmd] {
			t.Fatalf("%s has no default key", cmd)
		}
		if cmd.String() == "none" {
			t.Fatalf("command %d has no name", cmd)
		}
	}
}

func TestHelpDoesNotPanic(t *testing.T) {
	o := NewOverlay(scene.NewScene("test"))
	o.Queue(CommandHelp)
	o.Update()
}
