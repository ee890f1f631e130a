package game_object

import (
	"github.com/Carmen-Shannon/oxy-lumen/common"
	"github.com/Carmen-Shannon/oxy-lumen/engine/light"
	"github.com/Carmen-Shannon/oxy-lumen/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

// FocalObjectBuilderOption is a functional option for configuring a FocalObject during construction.
type FocalObjectBuilderOption func(*focalObjectImpl)

// LightObjectBuilderOption is a functional option for configuring a LightObject during construction.
type LightObjectBuilderOption func(*lightObjectImpl)

// WithMeshSource sets the function the FocalObject loads meshes through.
//
// Parameters:
//   - source: usually a loader's Load method
//
// Returns:
//   - FocalObjectBuilderOption: functional option to set the mesh source
func WithMeshSource(source MeshSource) FocalObjectBuilderOption {
	return func(f *focalObjectImpl) {
		f.source = source
	}
}

// WithFocalMesh sets the initial geometry of the FocalObject.
//
// Parameters:
//   - m: the mesh to draw
//
// Returns:
//   - FocalObjectBuilderOption: functional option to set the mesh
func WithFocalMesh(m *model.Mesh) FocalObjectBuilderOption {
	return func(f *focalObjectImpl) {
		f.mesh = m
	}
}

// WithFocalColor sets the base color of the FocalObject.
//
// Parameters:
//   - color: RGB in [0, 1]
//
// Returns:
//   - FocalObjectBuilderOption: functional option to set the color
func WithFocalColor(color mgl32.Vec3) FocalObjectBuilderOption {
	return func(f *focalObjectImpl) {
		f.color = color
	}
}

// WithFocalScale sets the uniform scale of the FocalObject.
//
// Parameters:
//   - scale: positive scale factor
//
// Returns:
//   - FocalObjectBuilderOption: functional option to set the scale
func WithFocalScale(scale float32) FocalObjectBuilderOption {
	return func(f *focalObjectImpl) {
		if scale > 0 {
			f.scale = scale
		}
	}
}

// WithKindMeshSource sets the function that supplies marker meshes per light kind.
//
// Parameters:
//   - source: the kind mesh source
//
// Returns:
//   - LightObjectBuilderOption: functional option to set the kind mesh source
func WithKindMeshSource(source KindMeshSource) LightObjectBuilderOption {
	return func(l *lightObjectImpl) {
		l.kindMesh = source
	}
}

// WithLight sets the lighting record owned by the LightObject.
//
// Parameters:
//   - lt: the light record
//
// Returns:
//   - LightObjectBuilderOption: functional option to set the light record
func WithLight(lt light.Light) LightObjectBuilderOption {
	return func(l *lightObjectImpl) {
		l.light = lt
	}
}

// WithLightPosition sets the initial world position of the LightObject.
//
// Parameters:
//   - pos: the world position
//
// Returns:
//   - LightObjectBuilderOption: functional option to set the position
func WithLightPosition(pos mgl32.Vec3) LightObjectBuilderOption {
	return func(l *lightObjectImpl) {
		l.position = common.ClampVec3(pos, -PositionLimit, PositionLimit)
	}
}

// WithArrowMesh overrides the spotlight direction marker.
//
// Parameters:
//   - m: the arrow mesh
//
// Returns:
//   - LightObjectBuilderOption: functional option to set the arrow mesh
func WithArrowMesh(m *model.Mesh) LightObjectBuilderOption {
	return func(l *lightObjectImpl) {
		l.arrow = m
	}
}
