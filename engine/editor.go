package engine

import (
	"fmt"
	"log"
	"time"

	"github.com/Carmen-Shannon/oxy-lumen/engine/camera"
	"github.com/Carmen-Shannon/oxy-lumen/engine/config"
	"github.com/Carmen-Shannon/oxy-lumen/engine/game_object"
	"github.com/Carmen-Shannon/oxy-lumen/engine/interaction"
	"github.com/Carmen-Shannon/oxy-lumen/engine/light"
	"github.com/Carmen-Shannon/oxy-lumen/engine/loader"
	"github.com/Carmen-Shannon/oxy-lumen/engine/model"
	"github.com/Carmen-Shannon/oxy-lumen/engine/renderer"
	"github.com/Carmen-Shannon/oxy-lumen/engine/scene"
	"github.com/Carmen-Shannon/oxy-lumen/engine/window"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	gridHalfExtent = 10
	gizmoScale     = 2
)

var gridColor = mgl32.Vec3{0.35, 0.35, 0.35}

// NewFromConfig builds a ready-to-run editor from a configuration: the window, the
// renderer on its surface, the mesh loader, the camera rig and a scene with the
// configured marker meshes and decorations. The mesh files named in the
// configuration are loaded in parallel before returning.
//
// Parameters:
//   - cfg: the editor configuration
//   - options: further engine options, applied after the configured parts
//
// Returns:
//   - Engine: the assembled editor
//   - error: an error if the window or renderer cannot be created
func NewFromConfig(cfg config.Config, options ...EngineBuilderOption) (Engine, error) {
	win, err := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
	)
	if err != nil {
		return nil, err
	}

	rend, err := renderer.NewRenderer(win.SurfaceDescriptor(), win.Width(), win.Height())
	if err != nil {
		win.Close()
		return nil, fmt.Errorf("engine: create renderer: %w", err)
	}

	ld := loader.NewLoader()
	preloadMeshes(ld, cfg.Meshes)

	e, err := NewEngine(append([]EngineBuilderOption{
		WithWindow(win),
		WithRenderer(rend),
		WithLoader(ld),
		WithCamera(cameraFromConfig(cfg.Camera)),
		WithScene(sceneFromConfig(cfg, ld)),
		WithFocalPath(cfg.Meshes.Focal),
		WithInitialLights(cfg.Scene.InitialLights),
		WithMachineOptions(
			interaction.WithDoubleClickWindow(time.Duration(cfg.Input.DoubleClickMs)*time.Millisecond),
			interaction.WithCorrectionFactor(cfg.Input.CorrectionFactor),
		),
	}, options...)...)
	if err != nil {
		rend.Release()
		win.Close()
		return nil, err
	}
	return e, nil
}

// preloadMeshes warms the loader cache with every configured mesh.
func preloadMeshes(ld loader.Loader, meshes config.Meshes) {
	var paths []string
	for _, p := range []string{meshes.Focal, meshes.Spot, meshes.Point} {
		if p != "" {
			paths = append(paths, p)
		}
	}
	for _, r := range ld.Preload(paths...) {
		if r.Err != nil {
			log.Printf("engine: preload %s: %v", r.Path, r.Err)
		}
	}
}

func cameraFromConfig(c config.Camera) camera.Camera {
	ctrl := camera.NewCameraController(
		camera.WithInitialPosition(c.Position),
		camera.WithTarget(c.Target),
	)
	return camera.NewCamera(
		camera.WithController(ctrl),
		camera.WithFov(c.Fov),
		camera.WithZoomSmoothing(c.ZoomSmoothing),
	)
}

func sceneFromConfig(cfg config.Config, ld loader.Loader) scene.Scene {
	focal := game_object.NewFocalObject(game_object.WithMeshSource(ld.Load))
	return scene.NewScene("editor",
		scene.WithMaxLights(cfg.Scene.MaxLights),
		scene.WithAmbientColor(cfg.Scene.Ambient),
		scene.WithFocalObject(focal),
		scene.WithKindMeshSource(kindMeshSource(ld, cfg.Meshes)),
		scene.WithDecorations(
			game_object.NewAxisGizmo(gizmoScale),
			game_object.NewGrid(gridHalfExtent, gridColor),
		),
		scene.WithDecorationsEnabled(cfg.Scene.Decorations),
	)
}

// kindMeshSource loads the configured marker mesh for a light kind, falling back to
// the procedural marker when no file is configured.
func kindMeshSource(ld loader.Loader, meshes config.Meshes) game_object.KindMeshSource {
	return func(kind light.Kind) (*model.Mesh, error) {
		path := meshes.Spot
		if kind == light.KindPoint {
			path = meshes.Point
		}
		if path == "" {
			return game_object.FallbackKindMesh(kind)
		}
		return ld.Load(path)
	}
}
