package renderer

import (
	_ "embed"
	"errors"
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/oxy-flycam/engine/camera"
	"github.com/Carmen-Shannon/oxy-flycam/engine/model"
	"github.com/cogentcore/webgpu/wgpu"
)

//go:embed assets/box.wgsl
var boxShaderBody string

// boxShaderSource assembles the box shader from the shared struct definitions and its body.
func boxShaderSource() string {
	return camera.GPUCameraUniformSource + "\n" + model.GPUVertexSource + "\n" + boxShaderBody
}

// initialInstanceCapacity is the number of instances the instance buffer holds before it first grows.
const initialInstanceCapacity = 16

var errSurfaceNotConfigured = errors.New("surface is not configured")

type wgpuRendererBackendImpl struct {
	device *wgpu.Device
	queue  *wgpu.Queue

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface

	surfaceFormat    *wgpu.TextureFormat
	msaaTexture      *wgpu.Texture
	msaaTextureView  *wgpu.TextureView
	depthTexture     *wgpu.Texture
	depthTextureView *wgpu.TextureView

	presentMode wgpu.PresentMode
	sampleCount MSAASampleCount
	clearColor  wgpu.Color

	// Box pipeline resources
	pipeline         *wgpu.RenderPipeline
	pipelineLayout   *wgpu.PipelineLayout
	shaderModule     *wgpu.ShaderModule
	cameraLayout     *wgpu.BindGroupLayout
	cameraBindGroup  *wgpu.BindGroup
	cameraBuffer     *wgpu.Buffer
	vertexBuffer     *wgpu.Buffer
	indexBuffer      *wgpu.Buffer
	indexCount       uint32
	instanceBuffer   *wgpu.Buffer
	instanceCapacity int
	instanceCount    uint32
}

var _ RendererBackend = &wgpuRendererBackendImpl{}

func newWGPURendererBackend(surfaceDescriptor *wgpu.SurfaceDescriptor, cfg backendConfig) (wgpuRendererBackend, error) {
	if surfaceDescriptor == nil {
		return nil, errors.New("surface descriptor is nil")
	}

	runtime.LockOSThread()
	w := &wgpuRendererBackendImpl{
		instance:    wgpu.CreateInstance(nil),
		sampleCount: cfg.sampleCount,
		clearColor: wgpu.Color{
			R: cfg.clearColor[0], G: cfg.clearColor[1], B: cfg.clearColor[2], A: cfg.clearColor[3],
		},
	}
	w.SetPresentMode(cfg.presentMode)
	w.surface = w.instance.CreateSurface(surfaceDescriptor)

	a, err := w.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: cfg.forceFallbackAdapter,
		CompatibleSurface:    w.surface,
	})
	if err != nil {
		w.Release()
		return nil, fmt.Errorf("failed to request adapter: %w", err)
	}
	w.adapter = a

	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Main Device",
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: wgpu.DefaultLimits(),
		},
	})
	if err != nil {
		w.Release()
		return nil, fmt.Errorf("failed to request device: %w", err)
	}
	w.device = d
	w.queue = d.GetQueue()

	return w, nil
}

func (b *wgpuRendererBackendImpl) ConfigureSurface(width, height int) {
	// A minimized window reports a zero-sized framebuffer; keep the previous configuration.
	if width <= 0 || height <= 0 {
		return
	}

	capabilities := b.surface.GetCapabilities(b.adapter)
	b.surfaceFormat = &capabilities.Formats[0]

	b.surface.Configure(b.adapter, b.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      *b.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: b.presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})

	b.releaseAttachments()

	count := uint32(b.sampleCount)
	if count > 1 {
		// The render pass draws into the MSAA texture and resolves into the swapchain view.
		msaaTexture, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
			Label: "MSAA Texture",
			Size: wgpu.Extent3D{
				Width:              uint32(width),
				Height:             uint32(height),
				DepthOrArrayLayers: 1,
			},
			MipLevelCount: 1,
			SampleCount:   count,
			Dimension:     wgpu.TextureDimension2D,
			Format:        *b.surfaceFormat,
			Usage:         wgpu.TextureUsageRenderAttachment,
		})
		if err != nil {
			panic(err)
		}
		b.msaaTexture = msaaTexture
		b.msaaTextureView, err = msaaTexture.CreateView(nil)
		if err != nil {
			panic(err)
		}
	}

	// Depth texture sample count must match the color attachment.
	depthTexture, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "Depth Texture",
		Size: wgpu.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   count,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatDepth24Plus,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		panic(err)
	}
	b.depthTexture = depthTexture
	b.depthTextureView, err = depthTexture.CreateView(nil)
	if err != nil {
		panic(err)
	}
}

func (b *wgpuRendererBackendImpl) SetPresentMode(mode PresentMode) {
	switch mode {
	case PresentModeVSync:
		b.presentMode = wgpu.PresentModeFifo
	case PresentModeUncapped:
		fallthrough
	default:
		b.presentMode = wgpu.PresentModeImmediate
	}
}

func (b *wgpuRendererBackendImpl) InitBoxPipeline() error {
	if b.surfaceFormat == nil {
		return errSurfaceNotConfigured
	}

	vertices, indices := model.BoxMesh()
	vertexData := model.MarshalVertices(vertices)
	indexData := model.MarshalIndices(indices)

	var err error
	b.vertexBuffer, err = b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Box Vertex Buffer",
		Size:  uint64(len(vertexData)),
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("failed to create vertex buffer: %w", err)
	}
	b.queue.WriteBuffer(b.vertexBuffer, 0, vertexData)

	b.indexBuffer, err = b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Box Index Buffer",
		Size:  uint64(len(indexData)),
		Usage: wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("failed to create index buffer: %w", err)
	}
	b.queue.WriteBuffer(b.indexBuffer, 0, indexData)
	b.indexCount = uint32(len(indices))

	if err := b.growInstanceBuffer(initialInstanceCapacity); err != nil {
		return err
	}

	var uniform camera.GPUCameraUniform
	b.cameraBuffer, err = b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Camera Uniform Buffer",
		Size:  uint64(uniform.Size()),
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("failed to create camera buffer: %w", err)
	}

	b.cameraLayout, err = b.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "Camera Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: uint64(uniform.Size()),
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create camera bind group layout: %w", err)
	}

	b.cameraBindGroup, err = b.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Camera Bind Group",
		Layout: b.cameraLayout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  b.cameraBuffer,
				Offset:  0,
				Size:    wgpu.WholeSize,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create camera bind group: %w", err)
	}

	b.shaderModule, err = b.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "Box Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: boxShaderSource(),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create box shader: %w", err)
	}

	b.pipelineLayout, err = b.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "Box Pipeline Layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{b.cameraLayout},
	})
	if err != nil {
		return fmt.Errorf("failed to create box pipeline layout: %w", err)
	}

	var vertex model.GPUVertex
	var inst model.GPUInstance
	b.pipeline, err = b.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "Box Render Pipeline",
		Layout: b.pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     b.shaderModule,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: uint64(vertex.Size()),
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes: []wgpu.VertexAttribute{
						{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
						{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
					},
				},
				{
					ArrayStride: uint64(inst.Size()),
					StepMode:    wgpu.VertexStepModeInstance,
					Attributes: []wgpu.VertexAttribute{
						{Format: wgpu.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 2},
						{Format: wgpu.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 3},
						{Format: wgpu.VertexFormatFloat32x4, Offset: 32, ShaderLocation: 4},
						{Format: wgpu.VertexFormatFloat32x4, Offset: 48, ShaderLocation: 5},
						{Format: wgpu.VertexFormatFloat32x4, Offset: 64, ShaderLocation: 6},
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     b.shaderModule,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    *b.surfaceFormat,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeBack,
		},
		Multisample: wgpu.MultisampleState{
			Count: uint32(b.sampleCount),
			Mask:  0xFFFFFFFF,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            wgpu.TextureFormatDepth24Plus,
			DepthWriteEnabled: true,
			DepthCompare:      wgpu.CompareFunctionLess,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create box render pipeline: %w", err)
	}

	return nil
}

// growInstanceBuffer replaces the instance buffer with one holding at least capacity instances.
func (b *wgpuRendererBackendImpl) growInstanceBuffer(capacity int) error {
	var inst model.GPUInstance
	buf, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Box Instance Buffer",
		Size:  uint64(capacity * inst.Size()),
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("failed to create instance buffer: %w", err)
	}
	if b.instanceBuffer != nil {
		b.instanceBuffer.Release()
	}
	b.instanceBuffer = buf
	b.instanceCapacity = capacity
	return nil
}

func (b *wgpuRendererBackendImpl) WriteCamera(u camera.GPUCameraUniform) {
	if b.cameraBuffer == nil {
		return
	}
	b.queue.WriteBuffer(b.cameraBuffer, 0, u.Marshal())
}

func (b *wgpuRendererBackendImpl) WriteInstances(instances []model.GPUInstance) error {
	if len(instances) > b.instanceCapacity {
		if err := b.growInstanceBuffer(max(len(instances), b.instanceCapacity*2)); err != nil {
			return err
		}
	}
	b.instanceCount = uint32(len(instances))
	if len(instances) > 0 {
		b.queue.WriteBuffer(b.instanceBuffer, 0, model.MarshalInstances(instances))
	}
	return nil
}

func (b *wgpuRendererBackendImpl) DrawFrame() error {
	if b.depthTextureView == nil || b.pipeline == nil {
		return errSurfaceNotConfigured
	}

	surfaceTexture, err := b.surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("failed to acquire surface texture: %w", err)
	}
	defer surfaceTexture.Release()

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		return fmt.Errorf("failed to create surface view: %w", err)
	}
	defer view.Release()

	encoder, err := b.device.CreateCommandEncoder(nil)
	if err != nil {
		return fmt.Errorf("failed to create command encoder: %w", err)
	}
	defer encoder.Release()

	// With MSAA the pass draws into the MSAA view and resolves into the swapchain view.
	colorAttachment := wgpu.RenderPassColorAttachment{
		View:       view,
		LoadOp:     wgpu.LoadOpClear,
		StoreOp:    wgpu.StoreOpStore,
		ClearValue: b.clearColor,
	}
	if b.msaaTextureView != nil {
		colorAttachment.View = b.msaaTextureView
		colorAttachment.ResolveTarget = view
		colorAttachment.StoreOp = wgpu.StoreOpDiscard
	}

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{colorAttachment},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            b.depthTextureView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpDiscard,
			DepthClearValue: 1.0,
		},
	})
	if b.instanceCount > 0 {
		pass.SetPipeline(b.pipeline)
		pass.SetBindGroup(0, b.cameraBindGroup, nil)
		pass.SetVertexBuffer(0, b.vertexBuffer, 0, wgpu.WholeSize)
		pass.SetVertexBuffer(1, b.instanceBuffer, 0, wgpu.WholeSize)
		pass.SetIndexBuffer(b.indexBuffer, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
		pass.DrawIndexed(b.indexCount, b.instanceCount, 0, 0, 0)
	}
	pass.End()

	commandBuffer, err := encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("failed to finish command encoder: %w", err)
	}
	defer commandBuffer.Release()

	b.queue.Submit(commandBuffer)
	b.surface.Present()
	return nil
}

// releaseAttachments frees the size-dependent render targets.
func (b *wgpuRendererBackendImpl) releaseAttachments() {
	if b.msaaTextureView != nil {
		b.msaaTextureView.Release()
		b.msaaTextureView = nil
	}
	if b.msaaTexture != nil {
		b.msaaTexture.Release()
		b.msaaTexture = nil
	}
	if b.depthTextureView != nil {
		b.depthTextureView.Release()
		b.depthTextureView = nil
	}
	if b.depthTexture != nil {
		b.depthTexture.Release()
		b.depthTexture = nil
	}
}

func (b *wgpuRendererBackendImpl) Release() {
	b.releaseAttachments()

	if b.pipeline != nil {
		b.pipeline.Release()
		b.pipeline = nil
	}
	if b.pipelineLayout != nil {
		b.pipelineLayout.Release()
		b.pipelineLayout = nil
	}
	if b.shaderModule != nil {
		b.shaderModule.Release()
		b.shaderModule = nil
	}
	if b.cameraBindGroup != nil {
		b.cameraBindGroup.Release()
		b.cameraBindGroup = nil
	}
	if b.cameraLayout != nil {
		b.cameraLayout.Release()
		b.cameraLayout = nil
	}
	for _, buf := range []**wgpu.Buffer{&b.cameraBuffer, &b.vertexBuffer, &b.indexBuffer, &b.instanceBuffer} {
		if *buf != nil {
			(*buf).Release()
			*buf = nil
		}
	}
	if b.queue != nil {
		b.queue.Release()
		b.queue = nil
	}
	if b.device != nil {
		b.device.Release()
		b.device = nil
	}
	if b.adapter != nil {
		b.adapter.Release()
		b.adapter = nil
	}
	if b.surface != nil {
		b.surface.Release()
		b.surface = nil
	}
	if b.instance != nil {
		b.instance.Release()
		b.instance = nil
	}
}
