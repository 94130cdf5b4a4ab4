package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointerTracker_FirstSampleLatches(t *testing.T) {
	p := NewPointerTracker(false)

	_, _, ok := p.Move(400, 300)
	assert.False(t, ok)

	x, y, ok := p.Move(410, 290)
	assert.True(t, ok)
	assert.Equal(t, float32(10), x)
	assert.Equal(t, float32(10), y, "moving toward the top of the window is up-positive")
}

func TestPointerTracker_InvertY(t *testing.T) {
	p := NewPointerTracker(true)
	p.Move(0, 0)

	x, y, ok := p.Move(-5, -20)
	assert.True(t, ok)
	assert.Equal(t, float32(-5), x)
	assert.Equal(t, float32(-20), y)
}

func TestPointerTracker_Reset(t *testing.T) {
	p := NewPointerTracker(false)
	p.Move(0, 0)
	p.Move(1, 1)

	p.Reset()
	_, _, ok := p.Move(1000, 1000)
	assert.False(t, ok)

	x, y, ok := p.Move(1001, 1000)
	assert.True(t, ok)
	assert.Equal(t, float32(1), x)
	assert.Equal(t, float32(0), y)
}
