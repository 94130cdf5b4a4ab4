package camera

import (
	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// cameraImpl holds the free-flying camera state.
// front, right and up are always derived from yaw, pitch and worldUp by updateCameraVectors.
// A camera is owned by the frame loop that created it and is not safe for concurrent use.
type cameraImpl struct {
	position mgl32.Vec3
	worldUp  mgl32.Vec3

	// Euler angles in degrees, no roll.
	yaw   float32
	pitch float32

	// Derived basis.
	front mgl32.Vec3
	right mgl32.Vec3
	up    mgl32.Vec3

	zoom float32

	moveSpeed        float32
	mouseSensitivity float32

	groundLocked bool
	groundHeight float32
}

// Camera is a free-flying first-person viewpoint driven by discrete keyboard,
// pointer and scroll input. It produces a view matrix on demand.
type Camera interface {
	// Position returns the world-space eye position.
	//
	// Returns:
	//   - mgl32.Vec3: the eye position
	Position() mgl32.Vec3

	// Front returns the unit look direction.
	//
	// Returns:
	//   - mgl32.Vec3: the front vector
	Front() mgl32.Vec3

	// Right returns the unit right vector, front x worldUp normalized.
	//
	// Returns:
	//   - mgl32.Vec3: the right vector
	Right() mgl32.Vec3

	// Up returns the camera-local unit up vector, right x front normalized.
	//
	// Returns:
	//   - mgl32.Vec3: the local up vector
	Up() mgl32.Vec3

	// WorldUp returns the fixed reference up direction supplied at construction.
	//
	// Returns:
	//   - mgl32.Vec3: the world up reference
	WorldUp() mgl32.Vec3

	// Yaw returns the heading in degrees. It is never wrapped.
	//
	// Returns:
	//   - float32: yaw in degrees
	Yaw() float32

	// Pitch returns the elevation in degrees.
	//
	// Returns:
	//   - float32: pitch in degrees
	Pitch() float32

	// Zoom returns the field-of-view proxy in degrees, always within [MinZoom, MaxZoom].
	//
	// Returns:
	//   - float32: zoom in degrees
	Zoom() float32

	// MoveSpeed returns the translation speed in world units per second.
	//
	// Returns:
	//   - float32: the move speed
	MoveSpeed() float32

	// MouseSensitivity returns the pointer delta multiplier.
	//
	// Returns:
	//   - float32: degrees per device unit
	MouseSensitivity() float32

	// GroundLocked reports whether movement keeps the eye at its construction height.
	//
	// Returns:
	//   - bool: true if the camera is ground locked
	GroundLocked() bool

	// ViewMatrix returns the look-at transform from Position toward Position+Front with WorldUp as reference.
	// It has no side effects and may be called any number of times per frame.
	//
	// Returns:
	//   - mgl32.Mat4: the world-to-camera matrix (column-major)
	ViewMatrix() mgl32.Mat4

	// ProcessKeyboard translates the camera along front or right by MoveSpeed * deltaTime.
	// deltaTime must be non-negative; zero is a no-op. Orientation is unchanged.
	//
	// Parameters:
	//   - direction: the movement direction
	//   - deltaTime: seconds elapsed since the previous frame
	ProcessKeyboard(direction Movement, deltaTime float32)

	// ProcessMouseMovement adds scaled pointer deltas to yaw and pitch and recomputes the basis.
	// yOffset is up-positive: a positive value raises the look direction.
	//
	// Parameters:
	//   - xOffset: horizontal pointer delta in device units
	//   - yOffset: vertical pointer delta in device units, up-positive
	//   - constrainPitch: clamp pitch to [MinPitch, MaxPitch] when true
	ProcessMouseMovement(xOffset, yOffset float32, constrainPitch bool)

	// ProcessMouseScroll narrows the field of view by yOffset degrees, clamped to [MinZoom, MaxZoom].
	//
	// Parameters:
	//   - yOffset: scroll delta, positive zooms in
	ProcessMouseScroll(yOffset float32)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a Camera from a position and world up vector.
// Yaw and pitch default to -90 and 0 degrees, so the camera looks down -Z.
//
// Parameters:
//   - position: initial eye position
//   - worldUp: reference up direction, expected to be unit length
//   - options: functional options overriding the remaining defaults
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(position, worldUp mgl32.Vec3, options ...CameraBuilderOption) Camera {
	cfg := DefaultConfig()
	cfg.Position = position
	cfg.WorldUp = worldUp
	for _, option := range options {
		option(&cfg)
	}
	return NewCameraFromConfig(cfg)
}

// NewCameraFromScalars is the scalar form of NewCamera.
//
// Parameters:
//   - posX, posY, posZ: initial eye position
//   - upX, upY, upZ: reference up direction
//   - options: functional options overriding the remaining defaults
//
// Returns:
//   - Camera: the newly created camera
func NewCameraFromScalars(posX, posY, posZ, upX, upY, upZ float32, options ...CameraBuilderOption) Camera {
	return NewCamera(mgl32.Vec3{posX, posY, posZ}, mgl32.Vec3{upX, upY, upZ}, options...)
}

// NewCameraFromConfig creates a Camera from an explicit configuration record.
// Zero MoveSpeed, MouseSensitivity, Zoom and WorldUp take their defaults; Yaw and Pitch are used as given.
//
// Parameters:
//   - cfg: the construction record
//
// Returns:
//   - Camera: the newly created camera
func NewCameraFromConfig(cfg Config) Camera {
	c := &cameraImpl{
		position:         cfg.Position,
		worldUp:          common.Coalesce(cfg.WorldUp, mgl32.Vec3{0, 1, 0}),
		yaw:              cfg.Yaw,
		pitch:            cfg.Pitch,
		zoom:             common.Clamp(common.Coalesce(cfg.Zoom, DefaultZoom), MinZoom, MaxZoom),
		moveSpeed:        common.Coalesce(cfg.MoveSpeed, DefaultMoveSpeed),
		mouseSensitivity: common.Coalesce(cfg.MouseSensitivity, DefaultMouseSensitivity),
		groundLocked:     cfg.GroundLocked,
		groundHeight:     cfg.Position.Y(),
	}
	c.updateCameraVectors()
	return c
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	return c.position
}

func (c *cameraImpl) Front() mgl32.Vec3 {
	return c.front
}

func (c *cameraImpl) Right() mgl32.Vec3 {
	return c.right
}

func (c *cameraImpl) Up() mgl32.Vec3 {
	return c.up
}

func (c *cameraImpl) WorldUp() mgl32.Vec3 {
	return c.worldUp
}

func (c *cameraImpl) Yaw() float32 {
	return c.yaw
}

func (c *cameraImpl) Pitch() float32 {
	return c.pitch
}

func (c *cameraImpl) Zoom() float32 {
	return c.zoom
}

func (c *cameraImpl) MoveSpeed() float32 {
	return c.moveSpeed
}

func (c *cameraImpl) MouseSensitivity() float32 {
	return c.mouseSensitivity
}

func (c *cameraImpl) GroundLocked() bool {
	return c.groundLocked
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.worldUp)
}

func (c *cameraImpl) ProcessKeyboard(direction Movement, deltaTime float32) {
	velocity := c.moveSpeed * deltaTime
	switch direction {
	case Forward:
		c.position = c.position.Add(c.front.Mul(velocity))
	case Backward:
		c.position = c.position.Sub(c.front.Mul(velocity))
	case Left:
		c.position = c.position.Sub(c.right.Mul(velocity))
	case Right:
		c.position = c.position.Add(c.right.Mul(velocity))
	default:
		return
	}
	if c.groundLocked {
		c.position[1] = c.groundHeight
	}
}

func (c *cameraImpl) ProcessMouseMovement(xOffset, yOffset float32, constrainPitch bool) {
	c.yaw += xOffset * c.mouseSensitivity
	c.pitch += yOffset * c.mouseSensitivity

	// Looking straight up or down makes front parallel to worldUp and right degenerate.
	if constrainPitch {
		c.pitch = common.Clamp(c.pitch, MinPitch, MaxPitch)
	}
	c.updateCameraVectors()
}

func (c *cameraImpl) ProcessMouseScroll(yOffset float32) {
	c.zoom = common.Clamp(c.zoom-yOffset, MinZoom, MaxZoom)
}

// updateCameraVectors rebuilds front, right and up from yaw, pitch and worldUp.
// up is right × front, never worldUp itself.
func (c *cameraImpl) updateCameraVectors() {
	yaw := mgl32.DegToRad(c.yaw)
	pitch := mgl32.DegToRad(c.pitch)

	front := mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}
	c.front = front.Normalize()
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}
