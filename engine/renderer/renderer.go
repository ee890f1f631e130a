package renderer

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-lumen/common"
	"github.com/Carmen-Shannon/oxy-lumen/engine/light"
	"github.com/Carmen-Shannon/oxy-lumen/engine/model"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// Frame is everything the renderer needs to draw one frame.
type Frame struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Eye        mgl32.Vec3
	Ambient    mgl32.Vec3
	Records    []model.DrawRecord
	Lights     []light.Data
}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backend RendererBackend
	meshes  *meshCache

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	presentMode          PresentMode
	sampleCount          MSAASampleCount
	clearColor           wgpu.Color
}

// Renderer draws editor frames and answers pick readbacks.
//
// Mesh buffers are uploaded on first use and re-uploaded whenever the mesh revision
// changes, so entities may swap or edit their geometry freely between frames.
type Renderer interface {
	// Render draws the frame to the window surface and presents it.
	//
	// Parameters:
	//   - frame: the frame to draw
	//
	// Returns:
	//   - error: an error if the frame could not be drawn; the frame is skipped
	Render(frame Frame) error

	// RenderPick draws the frame's pick records into the offscreen pick target and
	// reads back the color under (x, y). Nothing is presented.
	//
	// Parameters:
	//   - frame: a frame built in pick mode
	//   - x, y: the cursor position in framebuffer pixels
	//
	// Returns:
	//   - common.PickColor: the color under the cursor, or common.NoPickColor
	//   - error: an error if the readback failed
	RenderPick(frame Frame, x, y int) (common.PickColor, error)

	// Resize reconfigures the surface and render targets.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// Release frees every GPU resource.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates the WebGPU device for a window surface and compiles the pipelines.
//
// Parameters:
//   - surfaceDescriptor: the window's surface descriptor
//   - width, height: the initial framebuffer size
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the new renderer
//   - error: an error if device or pipeline creation fails
func NewRenderer(surfaceDescriptor *wgpu.SurfaceDescriptor, width, height int, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		mu:          &sync.Mutex{},
		presentMode: PresentModeVSync,
		sampleCount: MSAA4x,
		clearColor:  wgpu.Color{R: 0.1, G: 0.1, B: 0.1, A: 1.0},
	}
	for _, option := range options {
		option(r)
	}

	backend, err := newWGPURendererBackend(surfaceDescriptor, r.forceFallbackAdapter, r.sampleCount, r.clearColor)
	if err != nil {
		return nil, err
	}
	backend.SetPresentMode(r.presentMode)
	backend.ConfigureSurface(width, height)
	if err := backend.CreatePipelines(); err != nil {
		backend.Release()
		return nil, err
	}

	r.backend = backend
	r.meshes = newMeshCache(backend)
	return r, nil
}

func (r *renderer) Render(frame Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, calls, buffers, err := r.prepare(frame, false)
	if err != nil {
		return err
	}
	defer r.meshes.endFrame()
	return r.backend.DrawFrame(u, calls, buffers)
}

func (r *renderer) RenderPick(frame Frame, x, y int) (common.PickColor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, calls, buffers, err := r.prepare(frame, true)
	if err != nil {
		return common.NoPickColor, err
	}
	defer r.meshes.endFrame()
	return r.backend.DrawPick(u, calls, buffers, x, y)
}

// prepare plans the draws and resolves their mesh buffers. Caller must hold the mutex.
func (r *renderer) prepare(frame Frame, pickMode bool) (frameUniforms, []drawCall, []*meshBuffers, error) {
	calls, draws := planDraws(frame.Records, pickMode)
	buffers := make([]*meshBuffers, len(calls))
	for i, call := range calls {
		b, err := r.meshes.get(call.mesh)
		if err != nil {
			return frameUniforms{}, nil, nil, fmt.Errorf("renderer: %w", err)
		}
		buffers[i] = b
	}
	viewProj := common.WebGPUClipCorrection.Mul4(frame.Projection).Mul4(frame.View)
	u := frameUniformsFor(viewProj, frame.Eye, frame.Ambient, frame.Lights, draws)
	return u, calls, buffers, nil
}

func (r *renderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.meshes.clear()
	r.backend.Release()
}
