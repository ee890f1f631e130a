package scene

import (
	"github.com/Carmen-Shannon/oxy-lumen/engine/game_object"
	"github.com/go-gl/mathgl/mgl32"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithMaxLights sets the light capacity.
//
// Parameters:
//   - n: the maximum number of lights, values below 1 are ignored
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithMaxLights(n int) SceneBuilderOption {
	return func(s *scene) {
		if n > 0 {
			s.maxLights = n
		}
	}
}

// WithFocalObject sets the central object.
//
// Parameters:
//   - f: the focal object
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithFocalObject(f game_object.FocalObject) SceneBuilderOption {
	return func(s *scene) {
		s.focal = f
	}
}

// WithDecorations adds static helper geometry.
//
// Parameters:
//   - decorations: the decoration objects, drawn in the order given
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithDecorations(decorations ...game_object.DecorationObject) SceneBuilderOption {
	return func(s *scene) {
		s.decorations = append(s.decorations, decorations...)
	}
}

// WithDecorationsEnabled sets whether decorations are drawn initially. Defaults to true.
//
// Parameters:
//   - enabled: true to draw decorations
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithDecorationsEnabled(enabled bool) SceneBuilderOption {
	return func(s *scene) {
		s.decorationsEnabled = enabled
	}
}

// WithKindMeshSource sets where new lights get their per-kind marker meshes.
//
// Parameters:
//   - source: the kind mesh source
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithKindMeshSource(source game_object.KindMeshSource) SceneBuilderOption {
	return func(s *scene) {
		s.kindMesh = source
	}
}

// WithAmbientColor sets the ambient light color.
//
// Parameters:
//   - color: RGB in [0, 1]
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithAmbientColor(color mgl32.Vec3) SceneBuilderOption {
	return func(s *scene) {
		s.ambient = color
	}
}
