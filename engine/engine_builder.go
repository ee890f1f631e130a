package engine

import (
	"github.com/Carmen-Shannon/oxy-lumen/engine/camera"
	"github.com/Carmen-Shannon/oxy-lumen/engine/interaction"
	"github.com/Carmen-Shannon/oxy-lumen/engine/loader"
	"github.com/Carmen-Shannon/oxy-lumen/engine/overlay"
	"github.com/Carmen-Shannon/oxy-lumen/engine/profiler"
	"github.com/Carmen-Shannon/oxy-lumen/engine/renderer"
	"github.com/Carmen-Shannon/oxy-lumen/engine/scene"
	"github.com/Carmen-Shannon/oxy-lumen/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithProfiler replaces the default profiler.
func WithProfiler(p *profiler.Profiler) EngineBuilderOption {
	return func(e *engine) {
		e.profiler = p
	}
}

// WithWindow sets the window the engine draws into and reads input from.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithRenderer sets the renderer the engine submits frames to.
//
// Parameters:
//   - r: a Renderer created for the engine's window surface
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithCamera sets the camera rig.
func WithCamera(c camera.Camera) EngineBuilderOption {
	return func(e *engine) {
		e.camera = c
	}
}

// WithScene sets the edited scene.
//
// Parameters:
//   - s: the Scene to edit
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithScene(s scene.Scene) EngineBuilderOption {
	return func(e *engine) {
		e.scene = s
	}
}

// WithLoader sets the mesh loader used to reload the central object.
func WithLoader(l loader.Loader) EngineBuilderOption {
	return func(e *engine) {
		e.loader = l
	}
}

// WithOverlay replaces the default keyboard overlay.
func WithOverlay(o overlay.Overlay) EngineBuilderOption {
	return func(e *engine) {
		e.overlay = o
	}
}

// WithMachineOptions passes options to the default interaction machine.
//
// Parameters:
//   - options: interaction machine options such as the double-click window
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithMachineOptions(options ...interaction.MachineBuilderOption) EngineBuilderOption {
	return func(e *engine) {
		e.machineOptions = append(e.machineOptions, options...)
	}
}

// WithFocalPath sets the mesh file Run loads as the central object.
//
// Parameters:
//   - path: an .obj, .gltf or .glb file
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithFocalPath(path string) EngineBuilderOption {
	return func(e *engine) {
		e.focalPath = path
	}
}

// WithRenderFrameLimit sets an optional frame rate cap in frames per second.
// Pass 0 to uncap the loop (default).
//
// Parameters:
//   - fps: maximum frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.SetRenderFrameLimit(fps)
	}
}

// WithInitialLights sets how many lights Run adds before the loop starts. Lights the
// scene already holds count toward the total. The default is 1.
//
// Parameters:
//   - n: the number of lights to start with (0 = none)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithInitialLights(n int) EngineBuilderOption {
	return func(e *engine) {
		e.initialLights = max(n, 0)
	}
}
