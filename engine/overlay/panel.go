package overlay

import (
	"github.com/Carmen-Shannon/oxy-lumen/engine/game_object"
	"github.com/Carmen-Shannon/oxy-lumen/engine/light"
	"github.com/go-gl/mathgl/mgl32"
)

// Panel is the control surface of one light whose panel is open. Every setter
// forwards to the light, which clamps values into their legal ranges.
type Panel struct {
	light  game_object.LightObject
	remove func(id int)
}

// LightID returns the identity of the light this panel controls.
func (p Panel) LightID() int {
	return p.light.ID()
}

// Color returns the light color.
func (p Panel) Color() mgl32.Vec3 {
	return p.light.Color()
}

// SetColor sets the light color.
func (p Panel) SetColor(c mgl32.Vec3) {
	p.light.SetColor(c)
}

// Position returns the light position.
func (p Panel) Position() mgl32.Vec3 {
	return p.light.Position()
}

// SetPosition moves the light, clamped to ±10 per axis.
func (p Panel) SetPosition(pos mgl32.Vec3) {
	p.light.SetPosition(pos)
}

// Rotation returns the current kind's rotation offsets in degrees.
func (p Panel) Rotation() [2]float32 {
	return p.light.Rotation()
}

// SetRotation sets the current kind's rotation offsets, clamped to ±90 degrees.
func (p Panel) SetRotation(x, z float32) {
	p.light.SetRotation(x, z)
}

// Kind returns the light kind.
func (p Panel) Kind() light.Kind {
	return p.light.Light().Kind()
}

// SetKind switches the light kind.
func (p Panel) SetKind(k light.Kind) {
	p.light.SwitchKind(k)
}

// Enabled reports whether the light is on.
func (p Panel) Enabled() bool {
	return p.light.Light().Enabled()
}

// SetEnabled switches the light on or off.
func (p Panel) SetEnabled(on bool) {
	p.light.Light().SetEnabled(on)
}

// CutOff returns the inner and outer spot cone angles in degrees.
func (p Panel) CutOff() (inner, outer float32) {
	l := p.light.Light()
	return l.CutOff(), l.OuterCutOff()
}

// SetCutOff sets the inner cone angle; the outer angle follows when needed.
func (p Panel) SetCutOff(deg float32) {
	p.light.Light().SetCutOff(deg)
}

// SetOuterCutOff sets the outer cone angle; the inner angle follows when needed.
func (p Panel) SetOuterCutOff(deg float32) {
	p.light.Light().SetOuterCutOff(deg)
}

// Attenuation returns the point light attenuation coefficients.
func (p Panel) Attenuation() (linear, quadratic float32) {
	l := p.light.Light()
	return l.Linear(), l.Quadratic()
}

// SetAttenuation sets the point light attenuation coefficients.
func (p Panel) SetAttenuation(linear, quadratic float32) {
	l := p.light.Light()
	l.SetLinear(linear)
	l.SetQuadratic(quadratic)
}

// ResetRotation zeroes the current kind's rotation offsets.
func (p Panel) ResetRotation() {
	p.light.Reset()
}

// Positioned reports whether the panel has been placed on screen.
func (p Panel) Positioned() bool {
	return p.light.PanelPositioned()
}

// MarkPositioned records that the panel has been placed on screen.
func (p Panel) MarkPositioned() {
	p.light.SetPanelPositioned(true)
}

// Close hides the panel.
func (p Panel) Close() {
	if p.light.PanelOpen() {
		p.light.TogglePanel()
	}
}

// Remove schedules the light for removal at the end of the next draw pass.
func (p Panel) Remove() {
	p.remove(p.light.ID())
}
