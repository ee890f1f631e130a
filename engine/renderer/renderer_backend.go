package renderer

import "github.com/Carmen-Shannon/oxy-lumen/common"

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	PresentModeUncapped
)

// MSAASampleCount controls the number of samples used for multisample anti-aliasing
// of the presented frame. The pick target is never multisampled.
type MSAASampleCount uint32

const (
	// MSAAOff disables multisample anti-aliasing (sample count 1).
	MSAAOff MSAASampleCount = 1

	// MSAA4x enables 4× multisample anti-aliasing. This is the default.
	MSAA4x MSAASampleCount = 4
)

// frameUniforms is everything uploaded once per frame before drawing.
type frameUniforms struct {
	camera []byte
	lights []byte
	draws  []byte
}

// RendererBackend is the GPU API behind the Renderer.
type RendererBackend interface {
	wgpuRendererBackend
}

// wgpuRendererBackend is the set of GPU operations the Renderer drives.
type wgpuRendererBackend interface {
	meshUploader

	// ConfigureSurface (re)creates the surface, depth and pick targets for a new size.
	ConfigureSurface(width, height int)

	// SetPresentMode sets how frames are delivered to the display. Takes effect on the
	// next ConfigureSurface.
	SetPresentMode(mode PresentMode)

	// CreatePipelines compiles the shader module and every pipeline kind.
	CreatePipelines() error

	// DrawFrame uploads the uniforms, encodes the calls into the swapchain texture and presents.
	DrawFrame(u frameUniforms, calls []drawCall, buffers []*meshBuffers) error

	// DrawPick encodes the calls into the offscreen pick target and reads back the
	// pixel at (x, y). Nothing is presented.
	DrawPick(u frameUniforms, calls []drawCall, buffers []*meshBuffers, x, y int) (common.PickColor, error)

	// Release frees every GPU object the backend owns.
	Release()
}
