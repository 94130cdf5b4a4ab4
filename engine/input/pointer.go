package input

// PointerTracker converts absolute cursor positions into relative look deltas.
// The first sample after construction or Reset only latches the position, so a cursor
// that appears far from the window center does not snap the view.
type PointerTracker struct {
	lastX, lastY float64
	primed       bool
	invertY      bool
}

// NewPointerTracker creates a tracker.
//
// Parameters:
//   - invertY: when true, moving the pointer up lowers the view
//
// Returns:
//   - *PointerTracker: the newly created tracker
func NewPointerTracker(invertY bool) *PointerTracker {
	return &PointerTracker{invertY: invertY}
}

// Move records a cursor position in window coordinates (Y grows downward) and returns the
// delta since the previous sample. yOffset is up-positive: moving the pointer toward the top
// of the window yields a positive yOffset unless the tracker inverts Y.
//
// Parameters:
//   - x, y: cursor position in screen units
//
// Returns:
//   - xOffset, yOffset: the look delta, zero on the first sample
//   - ok: false when the sample only primed the tracker
func (p *PointerTracker) Move(x, y float64) (xOffset, yOffset float32, ok bool) {
	if !p.primed {
		p.lastX, p.lastY = x, y
		p.primed = true
		return 0, 0, false
	}

	xOffset = float32(x - p.lastX)
	yOffset = float32(p.lastY - y)
	p.lastX, p.lastY = x, y

	if p.invertY {
		yOffset = -yOffset
	}
	return xOffset, yOffset, true
}

// Reset re-arms the first-sample latch. Call it when the cursor is captured or released.
func (p *PointerTracker) Reset() {
	p.primed = false
}
