package model

import (
	"github.com/Carmen-Shannon/oxy-flycam/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

// boxRotationAxis is the axis every box in the field turns around.
var boxRotationAxis = mgl32.Vec3{0.5, 1, 0}.Normalize()

// boxPalette tints boxes by index.
var boxPalette = [...][4]float32{
	{0.90, 0.55, 0.25, 1},
	{0.30, 0.65, 0.90, 1},
	{0.55, 0.85, 0.40, 1},
	{0.85, 0.35, 0.55, 1},
	{0.95, 0.85, 0.35, 1},
}

// Box is one unit box placed in the world.
type Box struct {
	Position mgl32.Vec3
	Rotation float32 // radians around the shared axis; ignored when Spinning
	Spinning bool    // rotate by the elapsed time in seconds
	Color    [4]float32
}

// BoxField is a static set of boxes the camera flies through.
type BoxField struct {
	Boxes []Box

	boundingRadius float32
}

// NewBoxField creates a field from the given boxes.
//
// Parameters:
//   - boxes: the boxes to place
//
// Returns:
//   - *BoxField: the field
func NewBoxField(boxes ...Box) *BoxField {
	vertices, _ := BoxMesh()
	return &BoxField{
		Boxes:          boxes,
		boundingRadius: ComputeBoundingRadius(vertices),
	}
}

// DefaultBoxField returns the classic ten-box scene. Every third box spins; the others are
// turned by a fixed multiple of their index.
//
// Returns:
//   - *BoxField: the field
func DefaultBoxField() *BoxField {
	positions := []mgl32.Vec3{
		{0, 0, 0},
		{2, 5, -15},
		{-1.5, -2.2, -2.5},
		{-3.8, -2, -12.3},
		{2.4, -0.4, -3.5},
		{-1.7, 3, -7.5},
		{1.3, -2, -2.5},
		{1.5, 2, -2.5},
		{1.5, 0.2, -1.5},
		{-1.3, 1, -1.5},
	}

	boxes := make([]Box, len(positions))
	for i, p := range positions {
		boxes[i] = Box{
			Position: p,
			Rotation: 20 * float32(i) * mgl32.DegToRad(50),
			Spinning: i%3 == 0,
			Color:    boxPalette[i%len(boxPalette)],
		}
	}
	return NewBoxField(boxes...)
}

// BoundingRadius returns the radius of the sphere enclosing a single box.
//
// Returns:
//   - float32: the bounding sphere radius
func (f *BoxField) BoundingRadius() float32 {
	return f.boundingRadius
}

// ModelMatrix returns the model matrix of a box at the given time.
//
// Parameters:
//   - b: the box
//   - elapsed: seconds since the scene started
//
// Returns:
//   - mgl32.Mat4: translation followed by rotation
func (b Box) ModelMatrix(elapsed float32) mgl32.Mat4 {
	angle := b.Rotation
	if b.Spinning {
		angle = elapsed
	}
	return mgl32.Translate3D(b.Position.X(), b.Position.Y(), b.Position.Z()).
		Mul4(mgl32.HomogRotate3D(angle, boxRotationAxis))
}

// Instances builds the per-instance data of every box whose bounding sphere intersects the
// frustum. A nil frustum disables culling.
//
// Parameters:
//   - elapsed: seconds since the scene started
//   - frustum: the view frustum to cull against, or nil
//
// Returns:
//   - []GPUInstance: the visible instances in field order
func (f *BoxField) Instances(elapsed float32, frustum *camera.Frustum) []GPUInstance {
	instances := make([]GPUInstance, 0, len(f.Boxes))
	for _, b := range f.Boxes {
		if frustum != nil && !frustum.ContainsSphere(b.Position, f.boundingRadius) {
			continue
		}
		instances = append(instances, GPUInstance{
			Model: b.ModelMatrix(elapsed),
			Color: b.Color,
		})
	}
	return instances
}
