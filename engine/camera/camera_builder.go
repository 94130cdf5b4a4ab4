package camera

// CameraBuilderOption is a functional option applied to the construction Config of a Camera.
type CameraBuilderOption func(*Config)

// WithYaw overrides the initial yaw.
//
// Parameters:
//   - yaw: heading in degrees (-90 looks down -Z)
//
// Returns:
//   - CameraBuilderOption: a function that sets the initial yaw
func WithYaw(yaw float32) CameraBuilderOption {
	return func(c *Config) {
		c.Yaw = yaw
	}
}

// WithPitch overrides the initial pitch.
//
// Parameters:
//   - pitch: elevation in degrees (0 is level)
//
// Returns:
//   - CameraBuilderOption: a function that sets the initial pitch
func WithPitch(pitch float32) CameraBuilderOption {
	return func(c *Config) {
		c.Pitch = pitch
	}
}

// WithMoveSpeed sets the translation speed.
//
// Parameters:
//   - speed: world units per second
//
// Returns:
//   - CameraBuilderOption: a function that sets the move speed
func WithMoveSpeed(speed float32) CameraBuilderOption {
	return func(c *Config) {
		c.MoveSpeed = speed
	}
}

// WithMouseSensitivity sets the pointer delta multiplier.
//
// Parameters:
//   - sensitivity: degrees per device unit
//
// Returns:
//   - CameraBuilderOption: a function that sets the mouse sensitivity
func WithMouseSensitivity(sensitivity float32) CameraBuilderOption {
	return func(c *Config) {
		c.MouseSensitivity = sensitivity
	}
}

// WithZoom sets the initial field-of-view proxy. The value is clamped to [MinZoom, MaxZoom].
//
// Parameters:
//   - zoom: degrees
//
// Returns:
//   - CameraBuilderOption: a function that sets the initial zoom
func WithZoom(zoom float32) CameraBuilderOption {
	return func(c *Config) {
		c.Zoom = zoom
	}
}

// WithGroundLock keeps the camera at its construction height while it moves,
// turning the free-flying camera into a walking one.
func WithGroundLock(locked bool) CameraBuilderOption {
	return func(c *Config) {
		c.GroundLocked = locked
	}
}
