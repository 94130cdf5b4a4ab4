package profiler

import (
	"time"

	"github.com/Carmen-Shannon/oxy-flycam/engine/camera"
)

// ProfilerBuilderOption is a functional option for configuring a Profiler.
type ProfilerBuilderOption func(p *Profiler)

// WithInterval sets how often statistics are logged. Non-positive values are ignored.
//
// Parameters:
//   - interval: the reporting interval
//
// Returns:
//   - ProfilerBuilderOption: option function to apply
func WithInterval(interval time.Duration) ProfilerBuilderOption {
	return func(p *Profiler) {
		if interval > 0 {
			p.updateInterval = interval
		}
	}
}

// WithCamera adds the camera's position, yaw, pitch and field of view to every report.
//
// Parameters:
//   - cam: the camera to observe
//
// Returns:
//   - ProfilerBuilderOption: option function to apply
func WithCamera(cam camera.Camera) ProfilerBuilderOption {
	return func(p *Profiler) {
		p.pose = cam
	}
}

// WithTimeSource replaces the wall clock, mainly for tests.
//
// Parameters:
//   - now: function returning the current time
//
// Returns:
//   - ProfilerBuilderOption: option function to apply
func WithTimeSource(now func() time.Time) ProfilerBuilderOption {
	return func(p *Profiler) {
		if now != nil {
			p.now = now
		}
	}
}
