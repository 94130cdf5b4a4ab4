package camera

// Movement selects the direction of a keyboard-driven translation.
type Movement int

const (
	// Forward moves along the camera's front vector.
	Forward Movement = iota
	// Backward moves against the camera's front vector.
	Backward
	// Left moves against the camera's right vector.
	Left
	// Right moves along the camera's right vector.
	Right
)

func (m Movement) String() string {
	switch m {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}
