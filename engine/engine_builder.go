package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxy-flycam/engine/clock"
	"github.com/Carmen-Shannon/oxy-flycam/engine/profiler"
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

// WithProfiler replaces the default profiler, e.g. to attach a camera pose source.
//
// Parameters:
//   - p: the profiler to tick each frame
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiler(p *profiler.Profiler) EngineBuilderOption {
	return func(e *engine) {
		e.profiler = p
	}
}

// WithWindow sets the window whose events drive the frame loop.
//
// Parameters:
//   - w: the window, usually a window.Window
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w EventSource) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithClock sets the clock measuring frame delta time.
//
// Parameters:
//   - c: the frame clock
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithClock(c *clock.FrameClock) EngineBuilderOption {
	return func(e *engine) {
		if c != nil {
			e.clock = c
		}
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

// withSleep replaces time.Sleep for the frame limiter.
func withSleep(sleep func(time.Duration)) EngineBuilderOption {
	return func(e *engine) {
		e.sleep = sleep
	}
}
