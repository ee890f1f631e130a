package engine

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-lumen/common"
	"github.com/Carmen-Shannon/oxy-lumen/engine/camera"
	"github.com/Carmen-Shannon/oxy-lumen/engine/game_object"
	"github.com/Carmen-Shannon/oxy-lumen/engine/interaction"
	"github.com/Carmen-Shannon/oxy-lumen/engine/loader"
	"github.com/Carmen-Shannon/oxy-lumen/engine/overlay"
	"github.com/Carmen-Shannon/oxy-lumen/engine/profiler"
	"github.com/Carmen-Shannon/oxy-lumen/engine/renderer"
	"github.com/Carmen-Shannon/oxy-lumen/engine/scene"
	"github.com/Carmen-Shannon/oxy-lumen/engine/window"
)

// inputKind tags a queued pointer event.
type inputKind int

const (
	inputMove inputKind = iota
	inputPress
	inputRelease
	inputScroll
)

// inputEvent is a pointer event captured by a window callback and replayed into the
// interaction machine at the start of the next frame.
type inputEvent struct {
	kind   inputKind
	button int
	x, y   float64
}

type engine struct {
	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window   window.Window
	renderer renderer.Renderer
	camera   camera.Camera
	scene    scene.Scene
	machine  interaction.Machine
	overlay  overlay.Overlay
	loader   loader.Loader

	machineOptions []interaction.MachineBuilderOption
	focalPath      string
	initialLights  int

	profiler         *profiler.Profiler
	profilingEnabled bool

	events []inputEvent

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
	lastFrame        time.Time
}

// Engine is the editor's frame loop. Each frame it:
//  1. replays the input captured while polling window events,
//  2. applies queued overlay commands,
//  3. feeds pointer events through the interaction machine,
//  4. advances the camera zoom spring,
//  5. runs one scene draw pass,
//  6. answers a pending pick readback or renders and presents,
//  7. ticks the profiler.
//
// Everything runs on the goroutine that called Run, which stays locked to its OS thread.
type Engine interface {
	// Window returns the Window the engine is drawing into.
	//
	// Returns:
	//   - window.Window: the engine's window
	Window() window.Window

	// Scene returns the edited scene.
	Scene() scene.Scene

	// Camera returns the camera rig.
	Camera() camera.Camera

	// Machine returns the pointer interaction state machine.
	Machine() interaction.Machine

	// Overlay returns the keyboard editor overlay.
	Overlay() overlay.Overlay

	// Loader returns the mesh loader.
	Loader() loader.Loader

	// EnableProfiler turns on per-interval frame statistics logging.
	EnableProfiler()

	// DisableProfiler turns off frame statistics logging.
	DisableProfiler()

	// SetRenderFrameLimit caps the frame rate. A non-positive fps removes the cap.
	//
	// Parameters:
	//   - fps: the maximum frames per second
	SetRenderFrameLimit(fps float64)

	// Frame runs one iteration of the loop.
	//
	// Returns:
	//   - error: an error if the frame failed; the loop logs it and continues
	Frame() error

	// Run loads the central object and adds the initial lights, then drives Frame from
	// the window message loop until the window closes or Quit is called.
	//
	// Returns:
	//   - error: the central object load error, if any; the loop still runs
	Run() error

	// Quit stops the loop at the next frame. Safe to call from any goroutine.
	Quit()

	// Release frees the renderer and closes the window.
	Release()
}

var _ Engine = &engine{}

// NewEngine wires the editor from its parts. A window and a renderer are required;
// every other part gets a default when not supplied.
//
// Parameters:
//   - options: functional options to configure the engine
//
// Returns:
//   - Engine: the new engine
//   - error: an error if a required part is missing
func NewEngine(options ...EngineBuilderOption) (Engine, error) {
	e := &engine{
		quitChannel:   make(chan struct{}),
		profiler:      profiler.NewProfiler(),
		initialLights: 1,
	}
	for _, opt := range options {
		opt(e)
	}

	if e.window == nil {
		return nil, errors.New("engine: a window is required")
	}
	if e.renderer == nil {
		return nil, errors.New("engine: a renderer is required")
	}
	if e.camera == nil {
		e.camera = camera.NewCamera()
	}
	if e.loader == nil {
		e.loader = loader.NewLoader()
	}
	if e.scene == nil {
		focal := game_object.NewFocalObject(game_object.WithMeshSource(e.loader.Load))
		e.scene = scene.NewScene("default", scene.WithFocalObject(focal))
	}
	if e.overlay == nil {
		e.overlay = overlay.NewOverlay(e.scene, overlay.WithReloader(e.reloadFocal))
	}
	if e.machine == nil {
		opts := append([]interaction.MachineBuilderOption{
			interaction.WithViewport(e.window.Width(), e.window.Height()),
		}, e.machineOptions...)
		e.machine = interaction.NewMachine(e.camera, e.scene, opts...)
	}

	e.bindWindow()
	return e, nil
}

// bindWindow routes window callbacks into the engine.
func (e *engine) bindWindow() {
	e.window.SetResizeCallback(func(width, height int) {
		e.renderer.Resize(width, height)
		e.machine.SetViewport(width, height)
	})
	e.window.SetKeyDownCallback(func(key int) {
		e.overlay.HandleKey(key, true)
	})
	e.window.SetKeyUpCallback(func(key int) {
		e.overlay.HandleKey(key, false)
	})
	e.window.SetFocusCallback(func(focused bool) {
		if !focused {
			e.overlay.ReleaseKeys()
		}
	})
	e.window.SetMouseMoveCallback(func(x, y float64) {
		x, y = e.toFramebuffer(x, y)
		e.events = append(e.events, inputEvent{kind: inputMove, x: x, y: y})
	})
	e.window.SetMouseDownCallback(func(button int, x, y float64) {
		x, y = e.toFramebuffer(x, y)
		e.events = append(e.events,
			inputEvent{kind: inputMove, x: x, y: y},
			inputEvent{kind: inputPress, button: button},
		)
	})
	e.window.SetMouseUpCallback(func(button int, x, y float64) {
		e.events = append(e.events, inputEvent{kind: inputRelease, button: button})
	})
	e.window.SetScrollCallback(func(delta float32) {
		e.events = append(e.events, inputEvent{kind: inputScroll, y: float64(delta)})
	})
	e.window.SetUpdateCallback(func() {
		select {
		case <-e.quitChannel:
			if err := e.window.Close(); err != nil {
				log.Printf("engine: close window: %v", err)
			}
			return
		default:
		}
		if err := e.Frame(); err != nil {
			log.Printf("engine: frame skipped: %v", err)
		}
	})
}

// toFramebuffer converts a cursor position from window coordinates to the framebuffer
// pixels the viewport and pick target use.
func (e *engine) toFramebuffer(x, y float64) (float64, float64) {
	sx, sy := e.window.CursorScale()
	return x * sx, y * sy
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Scene() scene.Scene {
	return e.scene
}

func (e *engine) Camera() camera.Camera {
	return e.camera
}

func (e *engine) Machine() interaction.Machine {
	return e.machine
}

func (e *engine) Overlay() overlay.Overlay {
	return e.overlay
}

func (e *engine) Loader() loader.Loader {
	return e.loader
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
}

func (e *engine) Frame() error {
	e.throttle()

	// Overlay commands apply before pointer input.
	e.overlay.Update()
	e.replayInput()
	e.camera.Update()

	width, height := e.window.Width(), e.window.Height()
	frame := renderer.Frame{
		View:       e.camera.ViewMatrix(),
		Projection: e.camera.ProjectionMatrix(width, height),
		Eye:        e.camera.Position(),
	}

	picking := e.machine.AwaitingPickReadback()
	pass := e.scene.DrawPass(picking, frame.Eye)
	frame.Records = pass.Records
	frame.Lights = pass.Lights
	frame.Ambient = pass.Ambient

	var err error
	if picking {
		x, y := e.machine.CursorPos()
		var c common.PickColor
		c, err = e.renderer.RenderPick(frame, int(x), int(y))
		if err != nil {
			c = common.NoPickColor
		}
		e.machine.CompletePickReadback(c)
	} else {
		err = e.renderer.Render(frame)
	}

	if e.profilingEnabled {
		e.profiler.Tick(profiler.FrameStats{
			Records: len(frame.Records),
			Lights:  e.scene.LightCount(),
			Picked:  picking,
		})
	}
	return err
}

// replayInput drains the queued pointer events into the interaction machine.
func (e *engine) replayInput() {
	e.machine.SetPointerCaptured(e.overlay.CapturesPointer())
	e.machine.SetRollModifier(e.window.IsKeyDown(common.KeyLeftControl) || e.window.IsKeyDown(common.KeyRightControl))

	for _, ev := range e.events {
		switch ev.kind {
		case inputMove:
			e.machine.Move(ev.x, ev.y)
		case inputPress:
			e.machine.Press(ev.button)
		case inputRelease:
			e.machine.Release(ev.button)
		case inputScroll:
			e.machine.Scroll(ev.y)
		}
	}
	e.events = e.events[:0]
}

// throttle sleeps off the rest of the frame budget when a frame limit is set.
func (e *engine) throttle() {
	if e.renderFrameLimit > 0 && !e.lastFrame.IsZero() {
		if wait := e.renderFrameLimit - time.Since(e.lastFrame); wait > 0 {
			time.Sleep(wait)
		}
	}
	e.lastFrame = time.Now()
}

// reloadFocal drops the cached central mesh and loads it from disk again.
func (e *engine) reloadFocal() error {
	path := common.Coalesce(e.scene.FocalObject().Path(), e.focalPath)
	if path == "" {
		return errors.New("no central object loaded")
	}
	e.loader.Evict(path)
	return e.scene.LoadFocalObject(path)
}

func (e *engine) Run() error {
	var err error
	if e.focalPath != "" {
		err = e.scene.LoadFocalObject(e.focalPath)
	}
	e.addInitialLights()
	e.window.ProcessMessages()
	e.signalQuit()
	return err
}

// addInitialLights tops the scene up to the configured number of lights.
func (e *engine) addInitialLights() {
	for e.scene.LightCount() < e.initialLights {
		if _, err := e.scene.AddLight(); err != nil {
			log.Printf("engine: initial light: %v", err)
			return
		}
	}
}

func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel exactly once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
	})
}

func (e *engine) Release() {
	e.renderer.Release()
	if e.window.IsRunning() {
		if err := e.window.Close(); err != nil {
			log.Printf("engine: close window: %v", err)
		}
	}
}
