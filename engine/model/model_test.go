package model

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-flycam/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxMesh_Shape(t *testing.T) {
	vertices, indices := BoxMesh()
	require.Len(t, vertices, 24)
	require.Len(t, indices, 36)

	for _, v := range vertices {
		for i := range 3 {
			assert.InDelta(t, 0.5, math.Abs(float64(v.Position[i])), 1e-6)
		}
		assert.InDelta(t, 1.0, mgl32.Vec3(v.Normal).Len(), 1e-6)
	}
	for _, idx := range indices {
		assert.Less(t, idx, uint32(len(vertices)))
	}
}

func TestBoxMesh_OutwardWinding(t *testing.T) {
	vertices, indices := BoxMesh()
	for i := 0; i < len(indices); i += 3 {
		a := mgl32.Vec3(vertices[indices[i]].Position)
		b := mgl32.Vec3(vertices[indices[i+1]].Position)
		c := mgl32.Vec3(vertices[indices[i+2]].Position)
		n := b.Sub(a).Cross(c.Sub(a))
		assert.Greater(t, n.Dot(vertices[indices[i]].Normal), float32(0), "triangle %d faces inward", i/3)
	}
}

func TestComputeBoundingRadius(t *testing.T) {
	vertices, _ := BoxMesh()
	assert.InDelta(t, math.Sqrt(0.75), ComputeBoundingRadius(vertices), 1e-6)
	assert.Equal(t, float32(0), ComputeBoundingRadius(nil))
}

func TestGPUInstance_Marshal(t *testing.T) {
	inst := GPUInstance{Model: mgl32.Translate3D(1, 2, 3), Color: [4]float32{0.1, 0.2, 0.3, 1}}
	require.Equal(t, 80, inst.Size())

	buf := inst.Marshal()
	require.Len(t, buf, 80)
	f32At := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
	}
	assert.Equal(t, float32(1), f32At(48))
	assert.Equal(t, float32(2), f32At(52))
	assert.Equal(t, float32(3), f32At(56))
	assert.Equal(t, float32(0.3), f32At(72))

	assert.Len(t, MarshalInstances([]GPUInstance{inst, inst}), 160)
}

func TestGPUVertex_Marshal(t *testing.T) {
	v := GPUVertex{Position: [3]float32{1, 2, 3}, Normal: [3]float32{0, 0, -1}}
	require.Equal(t, 24, v.Size())
	buf := v.Marshal()
	assert.Equal(t, float32(3), math.Float32frombits(binary.LittleEndian.Uint32(buf[8:])))
	assert.Equal(t, float32(-1), math.Float32frombits(binary.LittleEndian.Uint32(buf[20:])))

	vertices, indices := BoxMesh()
	assert.Len(t, MarshalVertices(vertices), 24*24)
	assert.Len(t, MarshalIndices(indices), 36*4)
}

func TestDefaultBoxField(t *testing.T) {
	f := DefaultBoxField()
	require.Len(t, f.Boxes, 10)
	assert.InDelta(t, math.Sqrt(0.75), f.BoundingRadius(), 1e-6)

	for i, b := range f.Boxes {
		assert.Equal(t, i%3 == 0, b.Spinning, "box %d", i)
	}
	assert.Len(t, f.Instances(0, nil), 10)
}

func TestBox_ModelMatrix(t *testing.T) {
	spinning := Box{Position: mgl32.Vec3{1, 2, 3}, Spinning: true}
	fixed := Box{Position: mgl32.Vec3{1, 2, 3}, Rotation: 0.7}

	assert.True(t, fixed.ModelMatrix(0).ApproxEqual(fixed.ModelMatrix(5)))
	assert.False(t, spinning.ModelMatrix(0).ApproxEqual(spinning.ModelMatrix(1)))

	origin := spinning.ModelMatrix(2.5).Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.True(t, origin.Vec3().ApproxEqual(mgl32.Vec3{1, 2, 3}))
}

func TestBoxField_InstancesCulled(t *testing.T) {
	f := NewBoxField(
		Box{Position: mgl32.Vec3{0, 0, 0}},
		Box{Position: mgl32.Vec3{0, 0, 20}},
		Box{Position: mgl32.Vec3{0, 0, -500}},
	)
	cam := camera.NewCamera(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 1, 0})
	frustum := camera.NewFrustum(camera.ViewProjectionMatrix(cam, camera.DefaultProjection()))

	instances := f.Instances(0, &frustum)
	require.Len(t, instances, 1)
	assert.Equal(t, float32(0), instances[0].Model[14])
}
