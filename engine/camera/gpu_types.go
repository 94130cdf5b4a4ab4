package camera

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// GPUCameraUniformSource is the canonical WGSL definition of the CameraUniform struct.
// Matches GPUCameraUniform layout exactly (144 bytes).
//
//go:embed assets/camera_uniform.wgsl
var GPUCameraUniformSource string

// webgpuDepthCorrection remaps OpenGL clip-space depth [-w, w] to the WebGPU range [0, w].
var webgpuDepthCorrection = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// GPUCameraUniform is the GPU-aligned representation of the camera uniform buffer.
// Matches the WGSL CameraUniform struct layout exactly (see GPUCameraUniformSource).
type GPUCameraUniform struct {
	ViewProj [16]float32 // offset   0: WebGPU clip-space view-projection (mat4x4<f32>)
	View     [16]float32 // offset  64: world-to-camera matrix (mat4x4<f32>)
	Position [3]float32  // offset 128: world-space eye position (vec3<f32>)
	_pad     float32     // offset 140: padding to 144 bytes
}

// NewGPUCameraUniform packs the camera's current transforms for upload.
// The projection uses the camera's Zoom as field of view and is corrected to WebGPU depth range.
//
// Parameters:
//   - cam: the camera to read
//   - p: the projection parameters
//
// Returns:
//   - GPUCameraUniform: the packed uniform
func NewGPUCameraUniform(cam Camera, p Projection) GPUCameraUniform {
	view := cam.ViewMatrix()
	viewProj := webgpuDepthCorrection.Mul4(ProjectionMatrix(cam, p)).Mul4(view)
	return GPUCameraUniform{
		ViewProj: viewProj,
		View:     view,
		Position: cam.Position(),
	}
}

// Size returns the size of the GPUCameraUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (144)
func (g *GPUCameraUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUCameraUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.ViewProj[i]))
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(g.View[i]))
	}
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[128+i*4:], math.Float32bits(g.Position[i]))
	}
	binary.LittleEndian.PutUint32(buf[140:], 0) // _pad
	return buf
}
