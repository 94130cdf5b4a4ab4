package model

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/chewxy/math32"
)

// GPUVertexSource is the canonical WGSL definition of the VertexInput and InstanceInput structs
// for the box pipeline. Matches GPUVertex and GPUInstance layouts exactly.
//
//go:embed assets/vertex.wgsl
var GPUVertexSource string

// GPUVertex is the GPU-aligned representation of a single box vertex.
// Size: 24 bytes (no padding required).
type GPUVertex struct {
	Position [3]float32 // offset  0: vertex position in model space (12 bytes)
	Normal   [3]float32 // offset 12: outward face normal (12 bytes)
}

// Size returns the size of the GPUVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 24-byte buffer ready for GPU upload.
func (g *GPUVertex) Marshal() []byte {
	buf := make([]byte, 24)
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Position[i]))
		binary.LittleEndian.PutUint32(buf[12+i*4:], math.Float32bits(g.Normal[i]))
	}
	return buf
}

// GPUInstance is the per-instance vertex data for one box: its model matrix and tint.
// Size: 80 bytes.
type GPUInstance struct {
	Model [16]float32 // offset  0: column-major model matrix, four vec4 attributes (64 bytes)
	Color [4]float32  // offset 64: RGBA tint (16 bytes)
}

// Size returns the size of the GPUInstance struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUInstance) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUInstance struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 80-byte buffer ready for GPU upload.
func (g *GPUInstance) Marshal() []byte {
	buf := make([]byte, 80)
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Model[i]))
	}
	for i := range 4 {
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(g.Color[i]))
	}
	return buf
}

// MarshalVertices packs a vertex slice back to back.
//
// Parameters:
//   - vertices: the vertices to pack
//
// Returns:
//   - []byte: the packed vertex data
func MarshalVertices(vertices []GPUVertex) []byte {
	buf := make([]byte, 0, len(vertices)*24)
	for i := range vertices {
		buf = append(buf, vertices[i].Marshal()...)
	}
	return buf
}

// MarshalInstances packs an instance slice back to back.
//
// Parameters:
//   - instances: the instances to pack
//
// Returns:
//   - []byte: the packed instance data
func MarshalInstances(instances []GPUInstance) []byte {
	buf := make([]byte, 0, len(instances)*80)
	for i := range instances {
		buf = append(buf, instances[i].Marshal()...)
	}
	return buf
}

// MarshalIndices packs 32-bit indices little-endian.
//
// Parameters:
//   - indices: the indices to pack
//
// Returns:
//   - []byte: the packed index data
func MarshalIndices(indices []uint32) []byte {
	buf := make([]byte, len(indices)*4)
	for i, idx := range indices {
		binary.LittleEndian.PutUint32(buf[i*4:], idx)
	}
	return buf
}

// ComputeBoundingRadius calculates the bounding sphere radius from a slice of vertex positions.
// The radius is the maximum distance from the origin across all vertices in the slice.
//
// Parameters:
//   - vertices: the vertex data to compute the bounding radius from
//
// Returns:
//   - float32: the maximum distance from the origin
func ComputeBoundingRadius(vertices []GPUVertex) float32 {
	var maxDistSq float32
	for _, v := range vertices {
		p := v.Position
		distSq := p[0]*p[0] + p[1]*p[1] + p[2]*p[2]
		if distSq > maxDistSq {
			maxDistSq = distSq
		}
	}
	return math32.Sqrt(maxDistSq)
}
