package camera

import "github.com/go-gl/mathgl/mgl32"

// Default tuning values applied by DefaultConfig.
const (
	DefaultYaw              float32 = -90.0
	DefaultPitch            float32 = 0.0
	DefaultZoom             float32 = 45.0
	DefaultMoveSpeed        float32 = 2.5
	DefaultMouseSensitivity float32 = 0.1
)

// Angle and lens limits, in degrees.
const (
	MaxPitch float32 = 89.0
	MinPitch float32 = -MaxPitch
	MinZoom  float32 = 1.0
	MaxZoom  float32 = 45.0
)

// Config is the construction record for a Camera.
// Yaw and Pitch are taken as given, so start from DefaultConfig rather than a zero value
// when the default look direction (-Z) is wanted. Zero MoveSpeed, MouseSensitivity, Zoom
// and WorldUp fall back to their defaults.
type Config struct {
	// Position is the initial world-space eye position.
	Position mgl32.Vec3
	// WorldUp is the fixed reference up direction. It is never renormalized, callers must supply a unit vector.
	WorldUp mgl32.Vec3
	// Yaw is the initial heading in degrees.
	Yaw float32
	// Pitch is the initial elevation in degrees.
	Pitch float32
	// MoveSpeed is the translation speed in world units per second.
	MoveSpeed float32
	// MouseSensitivity scales raw pointer deltas into degrees.
	MouseSensitivity float32
	// Zoom is the initial field-of-view proxy in degrees, clamped to [MinZoom, MaxZoom].
	Zoom float32
	// GroundLocked keeps the eye at its construction height while moving.
	GroundLocked bool
}

// DefaultConfig returns the configuration of a camera at the origin looking down -Z with +Y up.
//
// Returns:
//   - Config: the default configuration record
func DefaultConfig() Config {
	return Config{
		Position:         mgl32.Vec3{0, 0, 0},
		WorldUp:          mgl32.Vec3{0, 1, 0},
		Yaw:              DefaultYaw,
		Pitch:            DefaultPitch,
		MoveSpeed:        DefaultMoveSpeed,
		MouseSensitivity: DefaultMouseSensitivity,
		Zoom:             DefaultZoom,
	}
}
