package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyCode(t *testing.T) {
	code, ok := KeyCode("w")
	assert.True(t, ok)
	assert.Equal(t, uint32(KeyW), code)

	code, ok = KeyCode(" Space ")
	assert.True(t, ok)
	assert.Equal(t, uint32(KeySpace), code)

	code, ok = KeyCode("Up")
	assert.True(t, ok)
	assert.Equal(t, uint32(KeyUp), code)

	_, ok = KeyCode("F13")
	assert.False(t, ok)
}
