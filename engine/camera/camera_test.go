package camera

import (
	"math/rand/v2"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-5

func assertVec3InDelta(t *testing.T, want, got mgl32.Vec3, delta float64) {
	t.Helper()
	for i := range 3 {
		assert.InDelta(t, want[i], got[i], delta, "component %d of %v", i, got)
	}
}

func TestNewCamera_Defaults(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 1, 0})

	assert.Equal(t, mgl32.Vec3{0, 0, 3}, cam.Position())
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, cam.WorldUp())
	assert.Equal(t, DefaultYaw, cam.Yaw())
	assert.Equal(t, DefaultPitch, cam.Pitch())
	assert.Equal(t, DefaultZoom, cam.Zoom())
	assert.Equal(t, DefaultMoveSpeed, cam.MoveSpeed())
	assert.Equal(t, DefaultMouseSensitivity, cam.MouseSensitivity())
	assert.False(t, cam.GroundLocked())

	assertVec3InDelta(t, mgl32.Vec3{0, 0, -1}, cam.Front(), eps)
	assertVec3InDelta(t, mgl32.Vec3{1, 0, 0}, cam.Right(), eps)
	assertVec3InDelta(t, mgl32.Vec3{0, 1, 0}, cam.Up(), eps)
}

func TestNewCameraFromScalars_MatchesVectorForm(t *testing.T) {
	a := NewCamera(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0, 1, 0}, WithYaw(30), WithPitch(-20))
	b := NewCameraFromScalars(1, 2, 3, 0, 1, 0, WithYaw(30), WithPitch(-20))

	assert.Equal(t, a.Position(), b.Position())
	assert.Equal(t, a.Front(), b.Front())
	assert.Equal(t, a.Right(), b.Right())
	assert.Equal(t, a.Up(), b.Up())
	assert.Equal(t, a.ViewMatrix(), b.ViewMatrix())
}

func TestNewCameraFromConfig(t *testing.T) {
	t.Run("zero tuning values fall back to defaults", func(t *testing.T) {
		cam := NewCameraFromConfig(Config{Position: mgl32.Vec3{1, 1, 1}})

		assert.Equal(t, mgl32.Vec3{0, 1, 0}, cam.WorldUp())
		assert.Equal(t, DefaultMoveSpeed, cam.MoveSpeed())
		assert.Equal(t, DefaultMouseSensitivity, cam.MouseSensitivity())
		assert.Equal(t, DefaultZoom, cam.Zoom())
		// Yaw 0 is taken as given: the camera looks down +X.
		assert.Equal(t, float32(0), cam.Yaw())
		assertVec3InDelta(t, mgl32.Vec3{1, 0, 0}, cam.Front(), eps)
	})

	t.Run("explicit record", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MoveSpeed = 10
		cfg.MouseSensitivity = 0.5
		cfg.Zoom = 30
		cam := NewCameraFromConfig(cfg)

		assert.Equal(t, float32(10), cam.MoveSpeed())
		assert.Equal(t, float32(0.5), cam.MouseSensitivity())
		assert.Equal(t, float32(30), cam.Zoom())
	})

	t.Run("zoom is clamped at construction", func(t *testing.T) {
		assert.Equal(t, MaxZoom, NewCamera(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, WithZoom(90)).Zoom())
		assert.Equal(t, MinZoom, NewCamera(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, WithZoom(0.25)).Zoom())
	})
}

func TestProcessKeyboard_ForwardScenario(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 1, 0})

	cam.ProcessKeyboard(Forward, 1.0)

	assertVec3InDelta(t, mgl32.Vec3{0, 0, 0.5}, cam.Position(), eps)
}

func TestProcessKeyboard_Directions(t *testing.T) {
	tests := []struct {
		direction Movement
		want      mgl32.Vec3
	}{
		{Forward, mgl32.Vec3{0, 0, -2.5}},
		{Backward, mgl32.Vec3{0, 0, 2.5}},
		{Left, mgl32.Vec3{-2.5, 0, 0}},
		{Right, mgl32.Vec3{2.5, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.direction.String(), func(t *testing.T) {
			cam := NewCamera(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
			front := cam.Front()

			cam.ProcessKeyboard(tt.direction, 1.0)

			assertVec3InDelta(t, tt.want, cam.Position(), eps)
			assert.Equal(t, front, cam.Front(), "movement must not change orientation")
		})
	}
}

func TestProcessKeyboard_ZeroDeltaAndUnknownDirection(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{4, 5, 6}, mgl32.Vec3{0, 1, 0})

	cam.ProcessKeyboard(Forward, 0)
	assert.Equal(t, mgl32.Vec3{4, 5, 6}, cam.Position())

	cam.ProcessKeyboard(Movement(42), 1.0)
	assert.Equal(t, mgl32.Vec3{4, 5, 6}, cam.Position())
}

func TestProcessKeyboard_LinearInElapsedTime(t *testing.T) {
	a := NewCamera(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0, 1, 0}, WithYaw(17), WithPitch(23))
	b := NewCamera(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0, 1, 0}, WithYaw(17), WithPitch(23))

	const dt = 0.016
	a.ProcessKeyboard(Forward, dt)
	a.ProcessKeyboard(Forward, dt)
	b.ProcessKeyboard(Forward, 2*dt)

	assertVec3InDelta(t, b.Position(), a.Position(), eps)
}

func TestProcessKeyboard_GroundLock(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{0, 1.7, 0}, mgl32.Vec3{0, 1, 0}, WithPitch(45), WithGroundLock(true))
	require.True(t, cam.GroundLocked())

	cam.ProcessKeyboard(Forward, 1.0)
	cam.ProcessKeyboard(Backward, 0.5)
	cam.ProcessKeyboard(Left, 0.25)

	assert.Equal(t, float32(1.7), cam.Position().Y())
	assert.NotEqual(t, float32(0), cam.Position().Z())
}

func TestProcessMouseMovement_YawScenario(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 1, 0})

	cam.ProcessMouseMovement(10, 0, true)

	assert.InDelta(t, -89.0, cam.Yaw(), eps)
	assert.Equal(t, float32(0), cam.Pitch())
	yaw := mgl32.DegToRad(-89)
	assertVec3InDelta(t, mgl32.Vec3{math32.Cos(yaw), 0, math32.Sin(yaw)}, cam.Front(), eps)
}

func TestProcessMouseMovement_PitchSaturates(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})

	// 950 * 0.1 = 95 degrees before clamping.
	cam.ProcessMouseMovement(0, 950, true)
	assert.Equal(t, MaxPitch, cam.Pitch())

	for range 10 {
		cam.ProcessMouseMovement(0, 100, true)
		assert.Equal(t, MaxPitch, cam.Pitch())
	}

	cam.ProcessMouseMovement(0, -5000, true)
	assert.Equal(t, MinPitch, cam.Pitch())
}

func TestProcessMouseMovement_Unconstrained(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})

	cam.ProcessMouseMovement(0, 950, false)

	assert.InDelta(t, 95.0, cam.Pitch(), eps)
}

func TestProcessMouseMovement_YawIsNeverClamped(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})

	cam.ProcessMouseMovement(3600, 0, true)

	assert.InDelta(t, 270.0, cam.Yaw(), 1e-3)
	// -90 + 360 degrees points the same way as the default.
	assertVec3InDelta(t, mgl32.Vec3{0, 0, -1}, cam.Front(), 1e-4)
}

func TestProcessMouseMovement_PitchAlwaysInRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	cam := NewCamera(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})

	for range 1000 {
		x := (rng.Float32() - 0.5) * 2000
		y := (rng.Float32() - 0.5) * 2000
		cam.ProcessMouseMovement(x, y, true)
		require.GreaterOrEqual(t, cam.Pitch(), MinPitch)
		require.LessOrEqual(t, cam.Pitch(), MaxPitch)
	}
}

func TestProcessMouseScroll(t *testing.T) {
	t.Run("large delta clamps to minimum", func(t *testing.T) {
		cam := NewCamera(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
		cam.ProcessMouseScroll(100)
		assert.Equal(t, MinZoom, cam.Zoom())
	})

	t.Run("negative delta clamps to maximum", func(t *testing.T) {
		cam := NewCamera(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
		cam.ProcessMouseScroll(-3)
		assert.Equal(t, MaxZoom, cam.Zoom())
	})

	t.Run("small delta narrows the lens", func(t *testing.T) {
		cam := NewCamera(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
		cam.ProcessMouseScroll(5)
		assert.Equal(t, float32(40), cam.Zoom())
	})

	t.Run("random sequences stay in range", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(3, 4))
		cam := NewCamera(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
		for range 1000 {
			cam.ProcessMouseScroll((rng.Float32() - 0.5) * 40)
			require.GreaterOrEqual(t, cam.Zoom(), MinZoom)
			require.LessOrEqual(t, cam.Zoom(), MaxZoom)
		}
	})
}

func TestBasis_OrthonormalAcrossAngles(t *testing.T) {
	for yaw := float32(-360); yaw <= 360; yaw += 15 {
		for pitch := float32(-85); pitch <= 85; pitch += 5 {
			cam := NewCamera(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, WithYaw(yaw), WithPitch(pitch))
			f, r, u := cam.Front(), cam.Right(), cam.Up()

			assert.InDelta(t, 1.0, f.Len(), eps, "front yaw=%v pitch=%v", yaw, pitch)
			assert.InDelta(t, 1.0, r.Len(), eps, "right yaw=%v pitch=%v", yaw, pitch)
			assert.InDelta(t, 1.0, u.Len(), eps, "up yaw=%v pitch=%v", yaw, pitch)
			assert.InDelta(t, 0.0, f.Dot(r), eps, "front.right yaw=%v pitch=%v", yaw, pitch)
			assert.InDelta(t, 0.0, f.Dot(u), eps, "front.up yaw=%v pitch=%v", yaw, pitch)
			assert.InDelta(t, 0.0, r.Dot(u), eps, "right.up yaw=%v pitch=%v", yaw, pitch)
		}
	}
}

func TestBasis_RecomputedAfterReorientation(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})

	cam.ProcessMouseMovement(123, -456, true)

	want := NewCamera(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, WithYaw(cam.Yaw()), WithPitch(cam.Pitch()))
	assert.Equal(t, want.Front(), cam.Front())
	assert.Equal(t, want.Right(), cam.Right())
	assert.Equal(t, want.Up(), cam.Up())
}

func TestViewMatrix(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 1, 0})

	first := cam.ViewMatrix()
	second := cam.ViewMatrix()
	assert.Equal(t, first, second)

	origin := first.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 0.0, origin.X(), eps)
	assert.InDelta(t, 0.0, origin.Y(), eps)
	assert.InDelta(t, -3.0, origin.Z(), eps)
	assert.InDelta(t, 1.0, origin.W(), eps)

	want := mgl32.LookAtV(cam.Position(), cam.Position().Add(cam.Front()), cam.WorldUp())
	assert.Equal(t, want, first)
}

func TestMovementString(t *testing.T) {
	assert.Equal(t, "forward", Forward.String())
	assert.Equal(t, "backward", Backward.String())
	assert.Equal(t, "left", Left.String())
	assert.Equal(t, "right", Right.String())
	assert.Equal(t, "unknown", Movement(-1).String())
}
