package camera

import "github.com/go-gl/mathgl/mgl32"

// Projection holds the perspective parameters that, together with a camera's Zoom,
// define the projection transform.
type Projection struct {
	// Aspect is the viewport width divided by its height.
	Aspect float32
	// Near is the near clipping plane distance (must be > 0).
	Near float32
	// Far is the far clipping plane distance (must be > Near).
	Far float32
}

// DefaultProjection returns a square-viewport projection with clip planes at 0.1 and 100.
//
// Returns:
//   - Projection: the default projection parameters
func DefaultProjection() Projection {
	return Projection{
		Aspect: 1.0,
		Near:   0.1,
		Far:    100.0,
	}
}

// WithViewport returns a copy of p with Aspect recomputed from a viewport size.
// A zero or negative height leaves Aspect unchanged, which covers minimized windows.
//
// Parameters:
//   - width, height: the viewport size in pixels
//
// Returns:
//   - Projection: the updated projection
func (p Projection) WithViewport(width, height int) Projection {
	if width <= 0 || height <= 0 {
		return p
	}
	p.Aspect = float32(width) / float32(height)
	return p
}

// Matrix returns the OpenGL-convention perspective matrix for a vertical field of view in degrees.
//
// Parameters:
//   - fovDegrees: the vertical field of view in degrees
//
// Returns:
//   - mgl32.Mat4: the projection matrix (column-major)
func (p Projection) Matrix(fovDegrees float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(fovDegrees), p.Aspect, p.Near, p.Far)
}

// ProjectionMatrix returns the perspective matrix using the camera's Zoom as field of view.
//
// Parameters:
//   - cam: the camera providing the zoom
//   - p: the projection parameters
//
// Returns:
//   - mgl32.Mat4: the projection matrix (column-major)
func ProjectionMatrix(cam Camera, p Projection) mgl32.Mat4 {
	return p.Matrix(cam.Zoom())
}

// ViewProjectionMatrix returns projection * view for the camera.
//
// Parameters:
//   - cam: the camera
//   - p: the projection parameters
//
// Returns:
//   - mgl32.Mat4: the combined matrix (column-major)
func ViewProjectionMatrix(cam Camera, p Projection) mgl32.Mat4 {
	return ProjectionMatrix(cam, p).Mul4(cam.ViewMatrix())
}
