package common

import "strings"

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW     = 87  // W key (ASCII)
	KeyA     = 65  // A key (ASCII)
	KeyS     = 83  // S key (ASCII)
	KeyD     = 68  // D key (ASCII)
	KeyQ     = 81  // Q key (ASCII)
	KeyE     = 69  // E key (ASCII)
	KeyI     = 73  // I key (ASCII)
	KeyJ     = 74  // J key (ASCII)
	KeyK     = 75  // K key (ASCII)
	KeyL     = 76  // L key (ASCII)
	KeyC     = 67  // C key (ASCII)
	KeySpace = 32  // Spacebar (ASCII)
	KeyEsc   = 256 // Escape key (GLFW)

	KeyRight = 262 // Right arrow (GLFW)
	KeyLeft  = 263 // Left arrow (GLFW)
	KeyDown  = 264 // Down arrow (GLFW)
	KeyUp    = 265 // Up arrow (GLFW)
)

// keyNames maps the names accepted in configuration files to key codes.
var keyNames = map[string]uint32{
	"W":     KeyW,
	"A":     KeyA,
	"S":     KeyS,
	"D":     KeyD,
	"Q":     KeyQ,
	"E":     KeyE,
	"I":     KeyI,
	"J":     KeyJ,
	"K":     KeyK,
	"L":     KeyL,
	"C":     KeyC,
	"SPACE": KeySpace,
	"ESC":   KeyEsc,
	"RIGHT": KeyRight,
	"LEFT":  KeyLeft,
	"DOWN":  KeyDown,
	"UP":    KeyUp,
}

// KeyCode resolves a key name such as "w", "Space" or "Up" to its key code.
// Matching is case-insensitive.
//
// Parameters:
//   - name: the key name
//
// Returns:
//   - uint32: the key code
//   - bool: false if the name is unknown
func KeyCode(name string) (uint32, bool) {
	code, ok := keyNames[strings.ToUpper(strings.TrimSpace(name))]
	return code, ok
}
