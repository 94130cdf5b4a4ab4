package camera

import "github.com/go-gl/mathgl/mgl32"

// Plane is a plane n·p + d = 0 with a unit normal pointing into the frustum.
type Plane struct {
	Normal   mgl32.Vec3
	Distance float32
}

// Frustum holds the six clipping planes of a view-projection transform.
type Frustum struct {
	Planes [6]Plane // Left, Right, Bottom, Top, Near, Far
}

// Frustum plane indices.
const (
	FrustumLeft = iota
	FrustumRight
	FrustumBottom
	FrustumTop
	FrustumNear
	FrustumFar
)

// NewFrustum extracts normalized frustum planes from an OpenGL-convention
// view-projection matrix using the Gribb/Hartmann method.
//
// Reference: https://www8.cs.umu.se/kurser/5DV051/HT12/lab/plane_extraction.pdf
//
// Parameters:
//   - viewProj: the combined projection * view matrix
//
// Returns:
//   - Frustum: the extracted frustum
func NewFrustum(viewProj mgl32.Mat4) Frustum {
	r0, r1, r2, r3 := viewProj.Row(0), viewProj.Row(1), viewProj.Row(2), viewProj.Row(3)

	var f Frustum
	f.Planes[FrustumLeft] = newPlane(r3.Add(r0))
	f.Planes[FrustumRight] = newPlane(r3.Sub(r0))
	f.Planes[FrustumBottom] = newPlane(r3.Add(r1))
	f.Planes[FrustumTop] = newPlane(r3.Sub(r1))
	f.Planes[FrustumNear] = newPlane(r3.Add(r2))
	f.Planes[FrustumFar] = newPlane(r3.Sub(r2))
	return f
}

func newPlane(v mgl32.Vec4) Plane {
	p := Plane{Normal: v.Vec3(), Distance: v.W()}
	if l := p.Normal.Len(); l > 0 {
		p.Normal = p.Normal.Mul(1 / l)
		p.Distance /= l
	}
	return p
}

// ContainsSphere reports whether a sphere is at least partially inside the frustum.
//
// Parameters:
//   - center: sphere center in world space
//   - radius: sphere radius
//
// Returns:
//   - bool: false only if the sphere lies entirely outside one of the planes
func (f Frustum) ContainsSphere(center mgl32.Vec3, radius float32) bool {
	for _, p := range f.Planes {
		if p.Normal.Dot(center)+p.Distance < -radius {
			return false
		}
	}
	return true
}
