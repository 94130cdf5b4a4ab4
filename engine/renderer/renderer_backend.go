package renderer

import (
	"github.com/Carmen-Shannon/oxy-flycam/engine/camera"
	"github.com/Carmen-Shannon/oxy-flycam/engine/model"
)

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// MSAASampleCount controls the number of samples used for multisample anti-aliasing (MSAA).
// WebGPU guarantees support for 1 (off) and 4.
type MSAASampleCount uint32

const (
	// MSAAOff disables multisample anti-aliasing (sample count 1).
	MSAAOff MSAASampleCount = 1

	// MSAA4x enables 4× multisample anti-aliasing. This is the default.
	MSAA4x MSAASampleCount = 4
)

// RendererBackend is the top-level backend interface for the Renderer.
// It embeds the concrete backend interface for the selected GPU API.
type RendererBackend interface {
	wgpuRendererBackend
}

// backendConfig collects the pre-creation settings a backend needs.
type backendConfig struct {
	forceFallbackAdapter bool
	presentMode          PresentMode
	sampleCount          MSAASampleCount
	clearColor           [4]float64
}

// wgpuRendererBackend is the contract of the WebGPU backend.
type wgpuRendererBackend interface {
	// ConfigureSurface (re)configures the swapchain and recreates size-dependent attachments.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	ConfigureSurface(width, height int)

	// SetPresentMode sets the surface present mode. Takes effect on the next ConfigureSurface.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// InitBoxPipeline creates the box mesh buffers, the camera uniform and the render pipeline.
	//
	// Returns:
	//   - error: an error if any GPU resource could not be created
	InitBoxPipeline() error

	// WriteCamera uploads the camera uniform.
	//
	// Parameters:
	//   - u: the packed camera uniform
	WriteCamera(u camera.GPUCameraUniform)

	// WriteInstances uploads box instances, growing the instance buffer when needed.
	//
	// Parameters:
	//   - instances: the instances to draw next frame
	//
	// Returns:
	//   - error: an error if the instance buffer could not be grown
	WriteInstances(instances []model.GPUInstance) error

	// DrawFrame acquires the swapchain texture, draws the boxes and presents.
	//
	// Returns:
	//   - error: an error if the frame could not be encoded
	DrawFrame() error

	// Release frees every GPU object owned by the backend.
	Release()
}
