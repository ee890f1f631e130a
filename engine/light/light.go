package light

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// Kind identifies the kind of light source.
type Kind int

const (
	// KindSpot is a directional cone, modeled as a flashlight. Attenuates with the
	// angle from the cone axis between the cutoff and outer cutoff angles.
	KindSpot Kind = iota

	// KindPoint is an omnidirectional bulb. Attenuates with distance using the
	// linear and quadratic coefficients.
	KindPoint

	// KindCount is the number of light kinds.
	KindCount
)

// MaxCutOff is the largest cone angle in degrees a spotlight may use.
const MaxCutOff float32 = 30

func (k Kind) String() string {
	switch k {
	case KindSpot:
		return "spotlight"
	case KindPoint:
		return "point light"
	default:
		return "unknown"
	}
}

// Next returns the following kind, wrapping around after the last one.
func (k Kind) Next() Kind {
	return (k + 1) % KindCount
}

// Data is the per-frame lighting record handed to the renderer.
// Cutoff angles are pre-converted to cosines.
type Data struct {
	Position       mgl32.Vec3
	Direction      mgl32.Vec3
	Color          mgl32.Vec3
	Kind           Kind
	Intensity      float32
	Linear         float32
	Quadratic      float32
	CutOffCos      float32
	OuterCutOffCos float32
}

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	mu *sync.Mutex

	kind        Kind
	color       mgl32.Vec3
	intensity   float32
	linear      float32
	quadratic   float32
	cutOff      float32 // degrees
	outerCutOff float32 // degrees
	enabled     bool
}

// Light holds the lighting attributes of a light entity.
//
// The spotlight cone always satisfies 0 <= CutOff() <= OuterCutOff() <= MaxCutOff;
// the setters clamp their input and push the other bound when needed.
// Position and direction are not stored here: they are derived from the owning
// entity's transform every time Data is requested.
type Light interface {
	// Kind returns the kind of light source.
	//
	// Returns:
	//   - Kind: spotlight or point light
	Kind() Kind

	// SetKind changes the kind of light source.
	//
	// Parameters:
	//   - kind: the new kind
	SetKind(kind Kind)

	// Color returns the RGB color of the light.
	//
	// Returns:
	//   - mgl32.Vec3: color in [0, 1]
	Color() mgl32.Vec3

	// SetColor sets the RGB color of the light. Components are clamped to [0, 1].
	//
	// Parameters:
	//   - color: the new color
	SetColor(color mgl32.Vec3)

	// Intensity returns the scalar intensity multiplier.
	Intensity() float32

	// SetIntensity sets the intensity multiplier. Negative values are clamped to 0.
	SetIntensity(intensity float32)

	// Linear returns the linear attenuation coefficient used by point lights.
	Linear() float32

	// SetLinear sets the linear attenuation coefficient. Negative values are clamped to 0.
	SetLinear(linear float32)

	// Quadratic returns the quadratic attenuation coefficient used by point lights.
	Quadratic() float32

	// SetQuadratic sets the quadratic attenuation coefficient. Negative values are clamped to 0.
	SetQuadratic(quadratic float32)

	// CutOff returns the inner cone angle in degrees.
	CutOff() float32

	// SetCutOff sets the inner cone angle in degrees, clamped to [0, MaxCutOff].
	// The outer cutoff is raised to match when it would fall below the new value.
	//
	// Parameters:
	//   - deg: inner cone angle in degrees
	SetCutOff(deg float32)

	// OuterCutOff returns the outer cone angle in degrees.
	OuterCutOff() float32

	// SetOuterCutOff sets the outer cone angle in degrees, clamped to [0, MaxCutOff].
	// The inner cutoff is lowered to match when it would exceed the new value.
	//
	// Parameters:
	//   - deg: outer cone angle in degrees
	SetOuterCutOff(deg float32)

	// Enabled returns whether the light contributes to the lit pass.
	// Disabled lights are still drawn as markers.
	Enabled() bool

	// SetEnabled switches the light on or off.
	SetEnabled(enabled bool)

	// Data assembles the per-frame lighting record.
	//
	// Parameters:
	//   - position: the derived world-space position
	//   - direction: the derived world-space direction
	//
	// Returns:
	//   - Data: the lighting record with cutoffs converted to cosines
	Data(position, direction mgl32.Vec3) Data
}

var _ Light = &lightImpl{}

// NewLight creates a Light with the editor defaults: spotlight, magenta (1, 0, 1),
// intensity 1, linear 0.09, quadratic 0.032, cutoff 10.5° and outer cutoff 12.5°, on.
//
// Parameters:
//   - options: functional options to configure the light
//
// Returns:
//   - Light: the newly created light
func NewLight(options ...LightBuilderOption) Light {
	l := &lightImpl{
		mu:          &sync.Mutex{},
		kind:        KindSpot,
		color:       mgl32.Vec3{1, 0, 1},
		intensity:   1.0,
		linear:      0.09,
		quadratic:   0.032,
		cutOff:      10.5,
		outerCutOff: 12.5,
		enabled:     true,
	}
	for _, option := range options {
		option(l)
	}
	return l
}

func (l *lightImpl) Kind() Kind {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.kind
}

func (l *lightImpl) SetKind(kind Kind) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if kind < 0 || kind >= KindCount {
		return
	}
	l.kind = kind
}

func (l *lightImpl) Color() mgl32.Vec3 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.color
}

func (l *lightImpl) SetColor(color mgl32.Vec3) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.color = clampColor(color)
}

func (l *lightImpl) Intensity() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.intensity
}

func (l *lightImpl) SetIntensity(intensity float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.intensity = max(intensity, 0)
}

func (l *lightImpl) Linear() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.linear
}

func (l *lightImpl) SetLinear(linear float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.linear = max(linear, 0)
}

func (l *lightImpl) Quadratic() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.quadratic
}

func (l *lightImpl) SetQuadratic(quadratic float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.quadratic = max(quadratic, 0)
}

func (l *lightImpl) CutOff() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cutOff
}

func (l *lightImpl) SetCutOff(deg float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cutOff = mgl32.Clamp(deg, 0, MaxCutOff)
	if l.outerCutOff < l.cutOff {
		l.outerCutOff = l.cutOff
	}
}

func (l *lightImpl) OuterCutOff() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.outerCutOff
}

func (l *lightImpl) SetOuterCutOff(deg float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.outerCutOff = mgl32.Clamp(deg, 0, MaxCutOff)
	if l.cutOff > l.outerCutOff {
		l.cutOff = l.outerCutOff
	}
}

func (l *lightImpl) Enabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = enabled
}

func (l *lightImpl) Data(position, direction mgl32.Vec3) Data {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Data{
		Position:       position,
		Direction:      direction,
		Color:          l.color,
		Kind:           l.kind,
		Intensity:      l.intensity,
		Linear:         l.linear,
		Quadratic:      l.quadratic,
		CutOffCos:      cosDeg(l.cutOff),
		OuterCutOffCos: cosDeg(l.outerCutOff),
	}
}
