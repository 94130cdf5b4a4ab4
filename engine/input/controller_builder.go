package input

import "maps"

// FreeFlyControllerOption is a functional option for configuring a FreeFlyController.
type FreeFlyControllerOption func(*freeFlyControllerImpl)

// WithBindings replaces the default WASD key bindings.
//
// Parameters:
//   - bindings: key code to movement direction map (copied)
//
// Returns:
//   - FreeFlyControllerOption: functional option to set the bindings
func WithBindings(bindings Bindings) FreeFlyControllerOption {
	return func(c *freeFlyControllerImpl) {
		c.bindings = maps.Clone(bindings)
	}
}

// WithInvertY flips the vertical look direction so that moving the pointer up looks down.
//
// Parameters:
//   - invert: true for inverted look
//
// Returns:
//   - FreeFlyControllerOption: functional option to set vertical inversion
func WithInvertY(invert bool) FreeFlyControllerOption {
	return func(c *freeFlyControllerImpl) {
		c.invertY = invert
	}
}

// WithConstrainPitch selects whether pointer look clamps pitch to [-89, 89] degrees.
//
// Parameters:
//   - constrain: true to clamp pitch
//
// Returns:
//   - FreeFlyControllerOption: functional option to set pitch clamping
func WithConstrainPitch(constrain bool) FreeFlyControllerOption {
	return func(c *freeFlyControllerImpl) {
		c.constrainPitch = constrain
	}
}
