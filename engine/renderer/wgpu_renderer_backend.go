package renderer

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/Carmen-Shannon/oxy-lumen/common"
	"github.com/Carmen-Shannon/oxy-lumen/engine/camera"
	"github.com/Carmen-Shannon/oxy-lumen/engine/light"
	"github.com/Carmen-Shannon/oxy-lumen/engine/model"
	"github.com/cogentcore/webgpu/wgpu"
)

const (
	depthFormat = wgpu.TextureFormatDepth24Plus
	pickFormat  = wgpu.TextureFormatRGBA8Unorm

	// pickRowPitch is the bytes-per-row of the readback copy; WebGPU requires a multiple of 256.
	pickRowPitch = 256

	drawUniformSize = 80
	vertexStride    = 24
)

var errNoDrawSlots = errors.New("draw uniform buffer has no slots")

type wgpuRendererBackendImpl struct {
	mu     *sync.Mutex
	device *wgpu.Device
	queue  *wgpu.Queue

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface

	surfaceFormat wgpu.TextureFormat
	presentMode   wgpu.PresentMode
	sampleCount   MSAASampleCount
	clearColor    wgpu.Color
	width         int
	height        int

	msaaTexture  *wgpu.Texture
	msaaView     *wgpu.TextureView
	depthTexture *wgpu.Texture
	depthView    *wgpu.TextureView

	pickTexture      *wgpu.Texture
	pickView         *wgpu.TextureView
	pickDepthTexture *wgpu.Texture
	pickDepthView    *wgpu.TextureView
	pickReadback     *wgpu.Buffer

	shader       *wgpu.ShaderModule
	frameLayout  *wgpu.BindGroupLayout
	drawLayout   *wgpu.BindGroupLayout
	pipeLayout   *wgpu.PipelineLayout
	pipelines    [pipelineCount]*wgpu.RenderPipeline
	cameraBuffer *wgpu.Buffer
	lightBuffer  *wgpu.Buffer
	frameGroup   *wgpu.BindGroup

	drawBuffer *wgpu.Buffer
	drawGroup  *wgpu.BindGroup
	drawSlots  int
}

var _ RendererBackend = &wgpuRendererBackendImpl{}

// newWGPURendererBackend creates the instance, surface, adapter, device and queue.
func newWGPURendererBackend(surfaceDescriptor *wgpu.SurfaceDescriptor, forceFallbackAdapter bool, sampleCount MSAASampleCount, clear wgpu.Color) (*wgpuRendererBackendImpl, error) {
	runtime.LockOSThread()
	if surfaceDescriptor == nil {
		return nil, errors.New("renderer: nil surface descriptor")
	}

	b := &wgpuRendererBackendImpl{
		mu:          &sync.Mutex{},
		instance:    wgpu.CreateInstance(nil),
		presentMode: wgpu.PresentModeFifo,
		sampleCount: sampleCount,
		clearColor:  clear,
	}
	b.surface = b.instance.CreateSurface(surfaceDescriptor)

	a, err := b.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    b.surface,
	})
	if err != nil {
		return nil, fmt.Errorf("renderer: request adapter: %w", err)
	}
	b.adapter = a

	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{Label: "Editor Device"})
	if err != nil {
		return nil, fmt.Errorf("renderer: request device: %w", err)
	}
	b.device = d
	b.queue = d.GetQueue()

	capabilities := b.surface.GetCapabilities(b.adapter)
	if len(capabilities.Formats) == 0 {
		return nil, errors.New("renderer: surface reports no formats")
	}
	b.surfaceFormat = capabilities.Formats[0]
	return b, nil
}

func (b *wgpuRendererBackendImpl) SetPresentMode(mode PresentMode) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch mode {
	case PresentModeUncapped:
		b.presentMode = wgpu.PresentModeImmediate
	default:
		b.presentMode = wgpu.PresentModeFifo
	}
}

func (b *wgpuRendererBackendImpl) ConfigureSurface(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if width <= 0 || height <= 0 {
		return
	}
	b.width, b.height = width, height

	capabilities := b.surface.GetCapabilities(b.adapter)
	b.surface.Configure(b.adapter, b.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      b.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: b.presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})

	b.releaseTargets()

	count := uint32(b.sampleCount)
	if count > 1 {
		b.msaaTexture, b.msaaView = b.createTarget("MSAA Texture", b.surfaceFormat, count, wgpu.TextureUsageRenderAttachment)
	}
	b.depthTexture, b.depthView = b.createTarget("Depth Texture", depthFormat, count, wgpu.TextureUsageRenderAttachment)

	b.pickTexture, b.pickView = b.createTarget("Pick Texture", pickFormat, 1, wgpu.TextureUsageRenderAttachment|wgpu.TextureUsageCopySrc)
	b.pickDepthTexture, b.pickDepthView = b.createTarget("Pick Depth Texture", depthFormat, 1, wgpu.TextureUsageRenderAttachment)
}

// createTarget makes a full-surface 2D texture and its view. Caller must hold the mutex.
func (b *wgpuRendererBackendImpl) createTarget(label string, format wgpu.TextureFormat, samples uint32, usage wgpu.TextureUsage) (*wgpu.Texture, *wgpu.TextureView) {
	tex, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: label,
		Size: wgpu.Extent3D{
			Width:              uint32(b.width),
			Height:             uint32(b.height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   samples,
		Dimension:     wgpu.TextureDimension2D,
		Format:        format,
		Usage:         usage,
	})
	if err != nil {
		panic(fmt.Sprintf("renderer: create %s: %v", label, err))
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		panic(fmt.Sprintf("renderer: create %s view: %v", label, err))
	}
	return tex, view
}

func (b *wgpuRendererBackendImpl) CreatePipelines() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	code, err := buildSceneShader()
	if err != nil {
		return err
	}
	b.shader, err = b.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "Scene Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: code},
	})
	if err != nil {
		return fmt.Errorf("renderer: compile shader: %w", err)
	}

	b.frameLayout, err = b.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "Frame Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: 80,
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: light.LightBufferSize,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("renderer: frame layout: %w", err)
	}

	b.drawLayout, err = b.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "Draw Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:             wgpu.BufferBindingTypeUniform,
					HasDynamicOffset: true,
					MinBindingSize:   drawUniformSize,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("renderer: draw layout: %w", err)
	}

	b.pipeLayout, err = b.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "Scene Pipeline Layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{b.frameLayout, b.drawLayout},
	})
	if err != nil {
		return fmt.Errorf("renderer: pipeline layout: %w", err)
	}

	for kind := pipelineKind(0); kind < pipelineCount; kind++ {
		p, err := b.createPipeline(kind, pipelineConfigs[kind])
		if err != nil {
			return fmt.Errorf("renderer: %s pipeline: %w", kind, err)
		}
		b.pipelines[kind] = p
	}

	b.cameraBuffer, err = b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Camera Uniform Buffer",
		Size:  80,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return err
	}
	b.lightBuffer, err = b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Light Uniform Buffer",
		Size:  light.LightBufferSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return err
	}
	b.frameGroup, err = b.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Frame Bind Group",
		Layout: b.frameLayout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: b.cameraBuffer, Size: wgpu.WholeSize},
			{Binding: 1, Buffer: b.lightBuffer, Size: wgpu.WholeSize},
		},
	})
	if err != nil {
		return err
	}

	b.pickReadback, err = b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Pick Readback Buffer",
		Size:  pickRowPitch,
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return err
	}

	return b.ensureDrawSlots(64)
}

// createPipeline builds one render pipeline. Caller must hold the mutex.
func (b *wgpuRendererBackendImpl) createPipeline(kind pipelineKind, cfg pipelineConfig) (*wgpu.RenderPipeline, error) {
	format := b.surfaceFormat
	samples := uint32(b.sampleCount)
	if cfg.offscreen {
		format = pickFormat
		samples = 1
	}

	return b.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  kind.String() + " Render Pipeline",
		Layout: b.pipeLayout,
		Vertex: wgpu.VertexState{
			Module:     b.shader,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: vertexStride,
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes: []wgpu.VertexAttribute{
						{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
						{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     b.shader,
			EntryPoint: cfg.fragmentEntry,
			Targets: []wgpu.ColorTargetState{
				{Format: format, WriteMask: wgpu.ColorWriteMaskAll},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  cfg.topology,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  cfg.cullMode,
		},
		Multisample: wgpu.MultisampleState{
			Count: samples,
			Mask:  0xFFFFFFFF,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            depthFormat,
			DepthWriteEnabled: true,
			DepthCompare:      wgpu.CompareFunctionLess,
			StencilFront:      wgpu.StencilFaceState{Compare: wgpu.CompareFunctionAlways},
			StencilBack:       wgpu.StencilFaceState{Compare: wgpu.CompareFunctionAlways},
		},
	})
}

// ensureDrawSlots grows the dynamic-offset draw buffer to hold n draws. Caller must hold the mutex.
func (b *wgpuRendererBackendImpl) ensureDrawSlots(n int) error {
	if n <= b.drawSlots {
		return nil
	}
	slots := max(n, b.drawSlots*2, 1)

	buf, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Draw Uniform Buffer",
		Size:  uint64(slots * DrawUniformStride),
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("renderer: grow draw buffer to %d slots: %w", slots, err)
	}
	group, err := b.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Draw Bind Group",
		Layout: b.drawLayout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: buf, Offset: 0, Size: drawUniformSize},
		},
	})
	if err != nil {
		buf.Release()
		return err
	}

	if b.drawGroup != nil {
		b.drawGroup.Release()
	}
	if b.drawBuffer != nil {
		b.drawBuffer.Release()
	}
	b.drawBuffer, b.drawGroup, b.drawSlots = buf, group, slots
	return nil
}

func (b *wgpuRendererBackendImpl) upload(m *model.Mesh) (*meshBuffers, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := &meshBuffers{indexCount: uint32(m.IndexCount())}
	var err error
	if out.vertex, err = b.createFilledBuffer(m.Name()+" Vertex Buffer", m.VertexData(), wgpu.BufferUsageVertex); err != nil {
		return nil, err
	}
	if out.index, err = b.createFilledBuffer(m.Name()+" Index Buffer", m.IndexData(), wgpu.BufferUsageIndex); err != nil {
		b.release(out)
		return nil, err
	}
	wire, wireCount := m.WireIndexData()
	if wireCount > 0 {
		if out.wire, err = b.createFilledBuffer(m.Name()+" Wire Index Buffer", wire, wgpu.BufferUsageIndex); err != nil {
			b.release(out)
			return nil, err
		}
		out.wireCount = uint32(wireCount)
	}
	return out, nil
}

// createFilledBuffer creates a buffer and writes data into it. Caller must hold the mutex.
func (b *wgpuRendererBackendImpl) createFilledBuffer(label string, data []byte, usage wgpu.BufferUsage) (*wgpu.Buffer, error) {
	// Buffer sizes must be a multiple of 4 and non-zero.
	size := max((len(data)+3)&^3, 4)
	buf, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label,
		Size:  uint64(size),
		Usage: usage | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, err
	}
	if len(data) > 0 {
		b.queue.WriteBuffer(buf, 0, data)
	}
	return buf, nil
}

func (b *wgpuRendererBackendImpl) release(mb *meshBuffers) {
	for _, buf := range []*wgpu.Buffer{mb.vertex, mb.index, mb.wire} {
		if buf != nil {
			buf.Release()
		}
	}
	mb.vertex, mb.index, mb.wire = nil, nil, nil
}

// writeUniforms uploads the per-frame and per-draw uniforms. Caller must hold the mutex.
func (b *wgpuRendererBackendImpl) writeUniforms(u frameUniforms, calls int) error {
	if err := b.ensureDrawSlots(calls); err != nil {
		return err
	}
	if b.drawSlots == 0 {
		return errNoDrawSlots
	}
	b.queue.WriteBuffer(b.cameraBuffer, 0, u.camera)
	b.queue.WriteBuffer(b.lightBuffer, 0, u.lights)
	if len(u.draws) > 0 {
		b.queue.WriteBuffer(b.drawBuffer, 0, u.draws)
	}
	return nil
}

// encodeCalls records the planned draws into pass. Caller must hold the mutex.
func (b *wgpuRendererBackendImpl) encodeCalls(pass *wgpu.RenderPassEncoder, calls []drawCall, buffers []*meshBuffers) {
	pass.SetBindGroup(0, b.frameGroup, nil)
	current := pipelineKind(-1)
	for i, call := range calls {
		mb := buffers[i]
		cfg := pipelineConfigs[call.pipeline]

		index, count := mb.index, mb.indexCount
		if cfg.wireIndices {
			index, count = mb.wire, mb.wireCount
		}
		if index == nil || count == 0 {
			continue
		}

		if call.pipeline != current {
			pass.SetPipeline(b.pipelines[call.pipeline])
			current = call.pipeline
		}
		pass.SetBindGroup(1, b.drawGroup, []uint32{uint32(call.slot * DrawUniformStride)})
		pass.SetVertexBuffer(0, mb.vertex, 0, wgpu.WholeSize)
		pass.SetIndexBuffer(index, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
		pass.DrawIndexed(count, 1, 0, 0, 0)
	}
}

func (b *wgpuRendererBackendImpl) DrawFrame(u frameUniforms, calls []drawCall, buffers []*meshBuffers) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.writeUniforms(u, len(calls)); err != nil {
		return err
	}

	surfaceTexture, err := b.surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("renderer: acquire surface texture: %w", err)
	}
	defer surfaceTexture.Release()
	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		return err
	}
	defer view.Release()

	encoder, err := b.device.CreateCommandEncoder(nil)
	if err != nil {
		return err
	}
	defer encoder.Release()

	color := wgpu.RenderPassColorAttachment{
		View:       view,
		LoadOp:     wgpu.LoadOpClear,
		StoreOp:    wgpu.StoreOpStore,
		ClearValue: b.clearColor,
	}
	if b.msaaView != nil {
		color.View = b.msaaView
		color.ResolveTarget = view
		color.StoreOp = wgpu.StoreOpDiscard
	}

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{color},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            b.depthView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpDiscard,
			DepthClearValue: 1.0,
		},
	})
	b.encodeCalls(pass, calls, buffers)
	pass.End()
	pass.Release()

	commandBuffer, err := encoder.Finish(nil)
	if err != nil {
		return err
	}
	defer commandBuffer.Release()
	b.queue.Submit(commandBuffer)
	b.surface.Present()
	return nil
}

func (b *wgpuRendererBackendImpl) DrawPick(u frameUniforms, calls []drawCall, buffers []*meshBuffers, x, y int) (common.PickColor, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return common.NoPickColor, nil
	}
	if err := b.writeUniforms(u, len(calls)); err != nil {
		return common.NoPickColor, err
	}

	encoder, err := b.device.CreateCommandEncoder(nil)
	if err != nil {
		return common.NoPickColor, err
	}
	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       b.pickView,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: wgpu.Color{R: 0, G: 0, B: 0, A: 1},
			},
		},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            b.pickDepthView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpDiscard,
			DepthClearValue: 1.0,
		},
	})
	b.encodeCalls(pass, calls, buffers)
	pass.End()
	pass.Release()

	err = encoder.CopyTextureToBuffer(
		&wgpu.ImageCopyTexture{
			Texture:  b.pickTexture,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{X: uint32(x), Y: uint32(y)},
			Aspect:   wgpu.TextureAspectAll,
		},
		&wgpu.ImageCopyBuffer{
			Buffer: b.pickReadback,
			Layout: wgpu.TextureDataLayout{
				Offset:       0,
				BytesPerRow:  pickRowPitch,
				RowsPerImage: 1,
			},
		},
		&wgpu.Extent3D{Width: 1, Height: 1, DepthOrArrayLayers: 1},
	)
	if err != nil {
		return common.NoPickColor, fmt.Errorf("renderer: copy pick pixel: %w", err)
	}

	commandBuffer, err := encoder.Finish(nil)
	if err != nil {
		return common.NoPickColor, err
	}
	defer commandBuffer.Release()
	b.queue.Submit(commandBuffer)

	var status wgpu.BufferMapAsyncStatus
	if err := b.pickReadback.MapAsync(wgpu.MapModeRead, 0, pickRowPitch, func(s wgpu.BufferMapAsyncStatus) {
		status = s
	}); err != nil {
		return common.NoPickColor, fmt.Errorf("renderer: map pick buffer: %w", err)
	}
	b.device.Poll(true, nil)
	if status != wgpu.BufferMapAsyncStatusSuccess {
		return common.NoPickColor, fmt.Errorf("renderer: map pick buffer: status %d", status)
	}
	defer b.pickReadback.Unmap()

	return decodePickPixel(b.pickReadback.GetMappedRange(0, 4)), nil
}

// decodePickPixel reads an RGBA8Unorm texel.
func decodePickPixel(texel []byte) common.PickColor {
	if len(texel) < 3 {
		return common.NoPickColor
	}
	return common.PickColor{texel[0], texel[1], texel[2]}
}

// releaseTargets frees the size-dependent textures. Caller must hold the mutex.
func (b *wgpuRendererBackendImpl) releaseTargets() {
	for _, v := range []*wgpu.TextureView{b.msaaView, b.depthView, b.pickView, b.pickDepthView} {
		if v != nil {
			v.Release()
		}
	}
	for _, t := range []*wgpu.Texture{b.msaaTexture, b.depthTexture, b.pickTexture, b.pickDepthTexture} {
		if t != nil {
			t.Release()
		}
	}
	b.msaaView, b.depthView, b.pickView, b.pickDepthView = nil, nil, nil, nil
	b.msaaTexture, b.depthTexture, b.pickTexture, b.pickDepthTexture = nil, nil, nil, nil
}

func (b *wgpuRendererBackendImpl) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.releaseTargets()
	for i, p := range b.pipelines {
		if p != nil {
			p.Release()
			b.pipelines[i] = nil
		}
	}
	for _, g := range []*wgpu.BindGroup{b.frameGroup, b.drawGroup} {
		if g != nil {
			g.Release()
		}
	}
	for _, buf := range []*wgpu.Buffer{b.cameraBuffer, b.lightBuffer, b.drawBuffer, b.pickReadback} {
		if buf != nil {
			buf.Release()
		}
	}
	if b.pipeLayout != nil {
		b.pipeLayout.Release()
	}
	for _, l := range []*wgpu.BindGroupLayout{b.frameLayout, b.drawLayout} {
		if l != nil {
			l.Release()
		}
	}
	if b.shader != nil {
		b.shader.Release()
	}
	if b.queue != nil {
		b.queue.Release()
	}
	if b.device != nil {
		b.device.Release()
	}
	if b.adapter != nil {
		b.adapter.Release()
	}
	if b.surface != nil {
		b.surface.Release()
	}
	if b.instance != nil {
		b.instance.Release()
	}
	b.frameGroup, b.drawGroup = nil, nil
	b.cameraBuffer, b.lightBuffer, b.drawBuffer, b.pickReadback = nil, nil, nil, nil
	b.drawSlots = 0
}

// frameUniformsFor packs the camera, lights and per-draw uniforms of a frame.
func frameUniformsFor(viewProj [16]float32, eye, ambient [3]float32, lights []light.Data, draws []byte) frameUniforms {
	cam := camera.NewGPUCameraUniform(viewProj, eye)
	packed := make([]light.GPULight, 0, len(lights))
	for _, d := range lights {
		packed = append(packed, light.NewGPULight(d, true))
	}
	return frameUniforms{
		camera: cam.Marshal(),
		lights: light.MarshalLightBuffer(ambient, packed),
		draws:  draws,
	}
}
