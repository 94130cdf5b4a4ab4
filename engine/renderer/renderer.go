package renderer

import (
	"errors"
	"fmt"
	"log"

	"github.com/Carmen-Shannon/oxy-flycam/engine/camera"
	"github.com/Carmen-Shannon/oxy-flycam/engine/model"
	"github.com/Carmen-Shannon/oxy-flycam/engine/window"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	backendType RendererBackendType
	backend     RendererBackend

	// Pre-creation config collected from builder options
	config backendConfig
}

// Renderer draws the box field from the point of view of a camera.
//
// The frame sequence is UpdateCamera, UpdateInstances, DrawFrame. All calls must happen on the
// thread that created the window.
type Renderer interface {
	// Resize configures the underlying backend to handle a new surface size.
	// A zero width or height (minimized window) is ignored.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// SetPresentMode sets the surface present mode which controls how frames are delivered to the display.
	// A call to Resize is required after changing this for the new mode to take effect.
	//
	// Parameters:
	//   - mode: the PresentMode to use (VSync or Uncapped)
	SetPresentMode(mode PresentMode)

	// UpdateCamera uploads the camera uniform used by the next frame.
	//
	// Parameters:
	//   - u: the packed camera uniform
	UpdateCamera(u camera.GPUCameraUniform)

	// UpdateInstances uploads the box instances drawn by the next frame.
	//
	// Parameters:
	//   - instances: the visible box instances
	//
	// Returns:
	//   - error: an error if the instance buffer could not be grown
	UpdateInstances(instances []model.GPUInstance) error

	// DrawFrame renders and presents one frame.
	//
	// Returns:
	//   - error: an error if the swapchain texture could not be acquired or the frame could not be encoded
	DrawFrame() error

	// Release frees every GPU resource. The renderer must not be used afterwards.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer drawing into the given window.
//
// Parameters:
//   - backendType: the type of rendering backend to use (e.g., WGPU)
//   - win: the window providing the surface descriptor and initial size
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: a ready renderer
//   - error: an error if the GPU device or the box pipeline could not be created
func NewRenderer(backendType RendererBackendType, win window.Window, options ...RendererBuilderOption) (Renderer, error) {
	if win == nil {
		return nil, errors.New("renderer requires a window")
	}

	r := &renderer{
		backendType: backendType,
		config: backendConfig{
			presentMode: PresentModeVSync,
			sampleCount: MSAA4x,
			clearColor:  [4]float64{0.1, 0.1, 0.1, 1.0},
		},
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	var err error
	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend, err = newWGPURendererBackend(win.SurfaceDescriptor(), r.config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer backend: %w", err)
	}

	r.backend.ConfigureSurface(win.Width(), win.Height())
	if err := r.backend.InitBoxPipeline(); err != nil {
		r.backend.Release()
		return nil, fmt.Errorf("failed to create box pipeline: %w", err)
	}

	log.Printf("[Renderer] Ready (%dx%d, MSAA %dx)", win.Width(), win.Height(), r.config.sampleCount)
	return r, nil
}

func (r *renderer) Resize(width, height int) {
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *renderer) UpdateCamera(u camera.GPUCameraUniform) {
	r.backend.WriteCamera(u)
}

func (r *renderer) UpdateInstances(instances []model.GPUInstance) error {
	return r.backend.WriteInstances(instances)
}

func (r *renderer) DrawFrame() error {
	return r.backend.DrawFrame()
}

func (r *renderer) Release() {
	r.backend.Release()
}
