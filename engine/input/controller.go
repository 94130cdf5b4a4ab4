package input

import (
	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/Carmen-Shannon/oxy-flycam/engine/camera"
)

// movementOrder fixes the order in which held directions are applied each frame.
var movementOrder = [...]camera.Movement{camera.Forward, camera.Backward, camera.Left, camera.Right}

// Bindings maps key codes to camera movement directions.
type Bindings map[uint32]camera.Movement

// DefaultBindings returns the WASD layout.
//
// Returns:
//   - Bindings: W forward, S backward, A left, D right
func DefaultBindings() Bindings {
	return Bindings{
		common.KeyW: camera.Forward,
		common.KeyS: camera.Backward,
		common.KeyA: camera.Left,
		common.KeyD: camera.Right,
	}
}

// freeFlyControllerImpl translates raw window events into camera operations.
type freeFlyControllerImpl struct {
	cam camera.Camera

	bindings       Bindings
	held           map[uint32]bool
	pointer        *PointerTracker
	invertY        bool
	constrainPitch bool
}

// FreeFlyController is the input collaborator of a Camera. Window callbacks feed it key,
// pointer and scroll events; the frame loop calls Update once per frame with the elapsed time.
// It is driven from the frame thread only.
type FreeFlyController interface {
	// Camera returns the camera this controller drives.
	//
	// Returns:
	//   - camera.Camera: the controlled camera
	Camera() camera.Camera

	// KeyDown marks a key as held.
	//
	// Parameters:
	//   - keyCode: the virtual key code
	KeyDown(keyCode uint32)

	// KeyUp marks a key as released.
	//
	// Parameters:
	//   - keyCode: the virtual key code
	KeyUp(keyCode uint32)

	// Pressed reports whether a key is currently held.
	//
	// Parameters:
	//   - keyCode: the virtual key code
	//
	// Returns:
	//   - bool: true if the key is held
	Pressed(keyCode uint32) bool

	// PointerMoved forwards an absolute cursor position. The resulting delta is applied to the
	// camera immediately; the first sample after a reset only primes the tracker.
	//
	// Parameters:
	//   - x, y: cursor position in window coordinates
	PointerMoved(x, y float64)

	// Scrolled forwards a vertical scroll delta to the camera zoom.
	//
	// Parameters:
	//   - delta: scroll offset, positive zooms in
	Scrolled(delta float32)

	// ResetPointer re-arms the pointer tracker's first-sample latch.
	ResetPointer()

	// ReleaseAll clears held keys, e.g. when the window loses focus.
	ReleaseAll()

	// Update issues one movement per held direction using the frame's elapsed time.
	//
	// Parameters:
	//   - deltaTime: seconds since the previous frame, non-negative
	Update(deltaTime float32)
}

var _ FreeFlyController = &freeFlyControllerImpl{}

// NewFreeFlyController creates a controller for cam with WASD bindings, pitch clamping
// enabled and the conventional (non-inverted) vertical look.
//
// Parameters:
//   - cam: the camera to drive
//   - options: functional options to configure the controller
//
// Returns:
//   - FreeFlyController: the newly created controller
func NewFreeFlyController(cam camera.Camera, options ...FreeFlyControllerOption) FreeFlyController {
	c := &freeFlyControllerImpl{
		cam:            cam,
		bindings:       DefaultBindings(),
		held:           make(map[uint32]bool),
		constrainPitch: true,
	}
	for _, option := range options {
		option(c)
	}
	c.pointer = NewPointerTracker(c.invertY)
	return c
}

func (c *freeFlyControllerImpl) Camera() camera.Camera {
	return c.cam
}

func (c *freeFlyControllerImpl) KeyDown(keyCode uint32) {
	c.held[keyCode] = true
}

func (c *freeFlyControllerImpl) KeyUp(keyCode uint32) {
	delete(c.held, keyCode)
}

func (c *freeFlyControllerImpl) Pressed(keyCode uint32) bool {
	return c.held[keyCode]
}

func (c *freeFlyControllerImpl) PointerMoved(x, y float64) {
	xOffset, yOffset, ok := c.pointer.Move(x, y)
	if !ok {
		return
	}
	c.cam.ProcessMouseMovement(xOffset, yOffset, c.constrainPitch)
}

func (c *freeFlyControllerImpl) Scrolled(delta float32) {
	c.cam.ProcessMouseScroll(delta)
}

func (c *freeFlyControllerImpl) ResetPointer() {
	c.pointer.Reset()
}

func (c *freeFlyControllerImpl) ReleaseAll() {
	clear(c.held)
}

func (c *freeFlyControllerImpl) Update(deltaTime float32) {
	var active [len(movementOrder)]bool
	for key := range c.held {
		if m, ok := c.bindings[key]; ok && int(m) >= 0 && int(m) < len(active) {
			active[m] = true
		}
	}
	// Two keys bound to the same direction still move the camera once per frame.
	for _, m := range movementOrder {
		if active[m] {
			c.cam.ProcessKeyboard(m, deltaTime)
		}
	}
}
