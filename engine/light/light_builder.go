package light

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// LightBuilderOption is a function that configures a Light instance during construction.
type LightBuilderOption func(*lightImpl)

// WithKind is an option builder that sets the kind of the light.
//
// Parameters:
//   - kind: spotlight or point light
//
// Returns:
//   - LightBuilderOption: a function that applies the kind option to a lightImpl
func WithKind(kind Kind) LightBuilderOption {
	return func(l *lightImpl) {
		if kind >= 0 && kind < KindCount {
			l.kind = kind
		}
	}
}

// WithColor is an option builder that sets the RGB color of the light.
//
// Parameters:
//   - r: the red color component
//   - g: the green color component
//   - b: the blue color component
//
// Returns:
//   - LightBuilderOption: a function that applies the color option to a lightImpl
func WithColor(r, g, b float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.color = clampColor(mgl32.Vec3{r, g, b})
	}
}

// WithIntensity is an option builder that sets the scalar intensity multiplier.
//
// Parameters:
//   - intensity: the intensity value
//
// Returns:
//   - LightBuilderOption: a function that applies the intensity option to a lightImpl
func WithIntensity(intensity float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.intensity = max(intensity, 0)
	}
}

// WithAttenuation is an option builder that sets the point light attenuation coefficients.
//
// Parameters:
//   - linear: the linear coefficient
//   - quadratic: the quadratic coefficient
//
// Returns:
//   - LightBuilderOption: a function that applies the attenuation option to a lightImpl
func WithAttenuation(linear, quadratic float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.linear = max(linear, 0)
		l.quadratic = max(quadratic, 0)
	}
}

// WithSpotCone is an option builder that sets the spotlight cone angles in degrees.
// Both angles are clamped to [0, MaxCutOff] and ordered so the inner angle never
// exceeds the outer one.
//
// Parameters:
//   - cutOff: the inner cone angle in degrees
//   - outerCutOff: the outer cone angle in degrees
//
// Returns:
//   - LightBuilderOption: a function that applies the cone option to a lightImpl
func WithSpotCone(cutOff, outerCutOff float32) LightBuilderOption {
	return func(l *lightImpl) {
		inner := mgl32.Clamp(cutOff, 0, MaxCutOff)
		outer := mgl32.Clamp(outerCutOff, 0, MaxCutOff)
		if inner > outer {
			inner, outer = outer, inner
		}
		l.cutOff, l.outerCutOff = inner, outer
	}
}

// WithEnabled is an option builder that switches the light on or off.
//
// Parameters:
//   - enabled: true to light the scene
//
// Returns:
//   - LightBuilderOption: a function that applies the enabled option to a lightImpl
func WithEnabled(enabled bool) LightBuilderOption {
	return func(l *lightImpl) {
		l.enabled = enabled
	}
}

func clampColor(c mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		mgl32.Clamp(c[0], 0, 1),
		mgl32.Clamp(c[1], 0, 1),
		mgl32.Clamp(c[2], 0, 1),
	}
}

// cosDeg converts an angle in degrees to the cosine of that angle in radians.
func cosDeg(deg float32) float32 {
	return float32(math.Cos(float64(deg) * math.Pi / 180.0))
}
