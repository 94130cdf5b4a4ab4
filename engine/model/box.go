package model

import "github.com/go-gl/mathgl/mgl32"

// boxFace describes one face of the unit box: its outward normal and two in-plane axes with
// u × v = normal, so the face winds counter-clockwise when seen from outside.
type boxFace struct {
	normal, u, v mgl32.Vec3
}

var boxFaces = [6]boxFace{
	{normal: mgl32.Vec3{1, 0, 0}, u: mgl32.Vec3{0, 1, 0}, v: mgl32.Vec3{0, 0, 1}},
	{normal: mgl32.Vec3{-1, 0, 0}, u: mgl32.Vec3{0, 0, 1}, v: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{0, 1, 0}, u: mgl32.Vec3{0, 0, 1}, v: mgl32.Vec3{1, 0, 0}},
	{normal: mgl32.Vec3{0, -1, 0}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 0, 1}},
	{normal: mgl32.Vec3{0, 0, 1}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{0, 0, -1}, u: mgl32.Vec3{0, 1, 0}, v: mgl32.Vec3{1, 0, 0}},
}

// BoxMesh builds a unit box centered on the origin with flat per-face normals.
// Faces wind counter-clockwise when viewed from outside.
//
// Returns:
//   - []GPUVertex: 24 vertices, four per face
//   - []uint32: 36 triangle-list indices
func BoxMesh() ([]GPUVertex, []uint32) {
	vertices := make([]GPUVertex, 0, 24)
	indices := make([]uint32, 0, 36)

	for _, f := range boxFaces {
		center := f.normal.Mul(0.5)
		u, v := f.u.Mul(0.5), f.v.Mul(0.5)
		base := uint32(len(vertices))
		corners := [4]mgl32.Vec3{
			center.Sub(u).Sub(v),
			center.Add(u).Sub(v),
			center.Add(u).Add(v),
			center.Sub(u).Add(v),
		}
		for _, c := range corners {
			vertices = append(vertices, GPUVertex{Position: c, Normal: f.normal})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	return vertices, indices
}
