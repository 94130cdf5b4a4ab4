package engine

import (
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-flycam/engine/clock"
	"github.com/Carmen-Shannon/oxy-flycam/engine/profiler"
)

// EventSource is the part of a window the frame loop drives.
// window.Window satisfies it.
type EventSource interface {
	// PollEvents dispatches pending input events and reports whether the window is still open.
	PollEvents() bool

	// RequestClose asks the window to close.
	RequestClose()

	// SetResizeCallback sets the function called when the framebuffer is resized.
	SetResizeCallback(callback func(width, height int))
}

// engine implements the Engine interface.
// Runs the whole frame on the calling goroutine, which must be the one that created the window.
type engine struct {
	running  bool
	quitOnce sync.Once

	window EventSource
	clock  *clock.FrameClock
	sleep  func(time.Duration)

	profiler         *profiler.Profiler
	profilingEnabled bool

	tickCallback   func(deltaTime float32)
	renderCallback func(deltaTime float32)
	resizeCallback func(width, height int)

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
	frames           uint64
}

// Engine is the main entry point for the engine.
// It owns the frame loop: each frame polls window events, measures the elapsed time, runs the
// tick callback, runs the render callback and ticks the profiler, in that order.
type Engine interface {
	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickCallback registers the function called once per frame before rendering.
	// Use this for input processing and camera movement.
	//
	// Parameters:
	//   - callback: function receiving the frame delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderCallback registers the function called once per frame after the tick callback.
	// Use this for GPU buffer updates and drawing.
	//
	// Parameters:
	//   - callback: function receiving the frame delta time in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetResizeCallback registers the function called when the window framebuffer is resized.
	//
	// Parameters:
	//   - callback: function receiving the new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetRenderFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Step runs a single frame.
	//
	// Returns:
	//   - bool: false once the window has closed or Quit was called
	Step() bool

	// Run runs frames until the window closes or Quit is called.
	Run()

	// Quit stops the loop after the current frame and asks the window to close.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()

	// Frames returns the number of completed frames.
	//
	// Returns:
	//   - uint64: the frame count
	Frames() uint64
}

// NewEngine creates a new Engine instance with the provided options.
// A window must be supplied with WithWindow.
//
// Parameters:
//   - options: functional options for engine configuration (window, profiling, frame limit, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		running:          true,
		clock:            clock.NewFrameClock(),
		sleep:            time.Sleep,
		profilingEnabled: false,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.profiler == nil {
		e.profiler = profiler.NewProfiler()
	}

	if e.window != nil {
		e.window.SetResizeCallback(func(width, height int) {
			if e.resizeCallback != nil {
				e.resizeCallback(width, height)
			}
		})
	}

	return e
}

func (e *engine) Step() bool {
	if !e.running {
		return false
	}
	if e.window == nil || !e.window.PollEvents() {
		e.Quit()
		return false
	}

	frameStart := time.Now()
	dt := e.clock.Tick()

	if e.tickCallback != nil {
		e.tickCallback(dt)
	}
	if !e.running {
		return false
	}

	if e.renderCallback != nil {
		e.renderCallback(dt)
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick()
	}

	e.frames++

	if e.renderFrameLimit > 0 {
		if remaining := e.renderFrameLimit - time.Since(frameStart); remaining > 0 {
			e.sleep(remaining)
		}
	}

	return e.running
}

func (e *engine) Run() {
	log.Printf("[Engine] Frame loop started")
	for e.Step() {
	}
	log.Printf("[Engine] Frame loop stopped after %d frames", e.frames)
}

// Quit stops the frame loop and asks the window to close.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		e.running = false
		if e.window != nil {
			e.window.RequestClose()
		}
	})
}

func (e *engine) Frames() uint64 {
	return e.frames
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetTickCallback registers the function called each frame before rendering.
func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

// SetRenderCallback registers the function called each frame after the tick callback.
func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}

func (e *engine) SetResizeCallback(callback func(width, height int)) {
	e.resizeCallback = callback
}

// SetRenderFrameLimit sets an optional frame rate cap.
// Pass 0 to uncap the loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
}
