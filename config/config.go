// Package config loads the application configuration of the flycam demo from TOML or YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/Carmen-Shannon/oxy-flycam/engine/camera"
	"github.com/Carmen-Shannon/oxy-flycam/engine/input"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mitchellh/go-homedir"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnsupportedFormat is returned for configuration files that are neither TOML nor YAML.
	ErrUnsupportedFormat = errors.New("unsupported config format")
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("invalid config")
)

// Format identifies a configuration file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// AppConfig is the root configuration record.
type AppConfig struct {
	Window     WindowConfig     `toml:"window" yaml:"window"`
	Camera     CameraConfig     `toml:"camera" yaml:"camera"`
	Projection ProjectionConfig `toml:"projection" yaml:"projection"`
	Input      InputConfig      `toml:"input" yaml:"input"`
	Profiling  bool             `toml:"profiling" yaml:"profiling"`
}

// WindowConfig describes the demo window.
type WindowConfig struct {
	Title  string `toml:"title" yaml:"title"`
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
	VSync  bool   `toml:"vsync" yaml:"vsync"`
}

// CameraConfig mirrors camera.Config with file-friendly types.
type CameraConfig struct {
	Position         [3]float32 `toml:"position" yaml:"position"`
	WorldUp          [3]float32 `toml:"world_up" yaml:"world_up"`
	Yaw              float32    `toml:"yaw" yaml:"yaw"`
	Pitch            float32    `toml:"pitch" yaml:"pitch"`
	MoveSpeed        float32    `toml:"move_speed" yaml:"move_speed"`
	MouseSensitivity float32    `toml:"mouse_sensitivity" yaml:"mouse_sensitivity"`
	Zoom             float32    `toml:"zoom" yaml:"zoom"`
	GroundLocked     bool       `toml:"ground_locked" yaml:"ground_locked"`
}

// ProjectionConfig holds the clip plane distances. Aspect comes from the window.
type ProjectionConfig struct {
	Near float32 `toml:"near" yaml:"near"`
	Far  float32 `toml:"far" yaml:"far"`
}

// InputConfig holds look behavior and key names for the four movement directions.
type InputConfig struct {
	InvertY        bool   `toml:"invert_y" yaml:"invert_y"`
	ConstrainPitch bool   `toml:"constrain_pitch" yaml:"constrain_pitch"`
	Forward        string `toml:"forward" yaml:"forward"`
	Backward       string `toml:"backward" yaml:"backward"`
	Left           string `toml:"left" yaml:"left"`
	Right          string `toml:"right" yaml:"right"`
}

// Default returns the configuration used when no file is given. Fields missing from a
// loaded file keep these values.
//
// Returns:
//   - AppConfig: the default configuration
func Default() AppConfig {
	cam := camera.DefaultConfig()
	proj := camera.DefaultProjection()
	return AppConfig{
		Window: WindowConfig{
			Title:  "Oxy Flycam - Flying Camera Boxes",
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Camera: CameraConfig{
			Position:         [3]float32{0, 0, 3},
			WorldUp:          cam.WorldUp,
			Yaw:              cam.Yaw,
			Pitch:            cam.Pitch,
			MoveSpeed:        cam.MoveSpeed,
			MouseSensitivity: cam.MouseSensitivity,
			Zoom:             cam.Zoom,
		},
		Projection: ProjectionConfig{
			Near: proj.Near,
			Far:  proj.Far,
		},
		Input: InputConfig{
			ConstrainPitch: true,
			Forward:        "W",
			Backward:       "S",
			Left:           "A",
			Right:          "D",
		},
	}
}

// FormatFromPath picks the encoding from a file extension.
//
// Parameters:
//   - path: the file path
//
// Returns:
//   - Format: the detected format
//   - error: ErrUnsupportedFormat for unknown extensions
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads, decodes and validates a configuration file. A leading "~" in path expands to
// the user's home directory.
//
// Parameters:
//   - path: a .toml, .yaml or .yml file
//
// Returns:
//   - AppConfig: the decoded configuration layered over Default
//   - error: read, decode or validation error
func Load(path string) (AppConfig, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return AppConfig{}, fmt.Errorf("failed to expand config path: %w", err)
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return AppConfig{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return AppConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data, format)
	if err != nil {
		return AppConfig{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates configuration data. Unknown fields are rejected.
//
// Parameters:
//   - data: the encoded configuration
//   - format: the encoding of data
//
// Returns:
//   - AppConfig: the decoded configuration layered over Default
//   - error: decode or validation error
func Parse(data []byte, format Format) (AppConfig, error) {
	cfg := Default()

	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return AppConfig{}, fmt.Errorf("failed to decode toml: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return AppConfig{}, fmt.Errorf("failed to decode yaml: %w", err)
		}
	default:
		return AppConfig{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks every field and returns all problems joined, each wrapping ErrInvalidConfig.
//
// Returns:
//   - error: nil if the configuration is usable
func (c AppConfig) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		invalid("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	if l := mgl32.Vec3(c.Camera.WorldUp).Len(); math32.Abs(l-1) > 1e-3 {
		invalid("camera.world_up must be a unit vector, got length %.4f", l)
	}
	if math32.Abs(c.Camera.Pitch) >= 90 {
		invalid("camera.pitch must lie strictly between -90 and 90, got %.2f", c.Camera.Pitch)
	}
	if c.Camera.MoveSpeed <= 0 {
		invalid("camera.move_speed must be positive, got %.3f", c.Camera.MoveSpeed)
	}
	if c.Camera.MouseSensitivity <= 0 {
		invalid("camera.mouse_sensitivity must be positive, got %.3f", c.Camera.MouseSensitivity)
	}
	if c.Camera.Zoom < camera.MinZoom || c.Camera.Zoom > camera.MaxZoom {
		invalid("camera.zoom must lie in [%.0f, %.0f], got %.2f", camera.MinZoom, camera.MaxZoom, c.Camera.Zoom)
	}

	if c.Projection.Near <= 0 {
		invalid("projection.near must be positive, got %.3f", c.Projection.Near)
	}
	if c.Projection.Far <= c.Projection.Near {
		invalid("projection.far (%.3f) must exceed projection.near (%.3f)", c.Projection.Far, c.Projection.Near)
	}

	if _, err := c.Input.Bindings(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// CameraConfig converts the camera section into a camera construction record.
//
// Returns:
//   - camera.Config: the construction record
func (c AppConfig) CameraConfig() camera.Config {
	return camera.Config{
		Position:         c.Camera.Position,
		WorldUp:          c.Camera.WorldUp,
		Yaw:              c.Camera.Yaw,
		Pitch:            c.Camera.Pitch,
		MoveSpeed:        c.Camera.MoveSpeed,
		MouseSensitivity: c.Camera.MouseSensitivity,
		Zoom:             c.Camera.Zoom,
		GroundLocked:     c.Camera.GroundLocked,
	}
}

// CameraProjection returns the projection parameters for the configured window size.
//
// Returns:
//   - camera.Projection: the projection parameters
func (c AppConfig) CameraProjection() camera.Projection {
	return camera.Projection{
		Aspect: 1,
		Near:   c.Projection.Near,
		Far:    c.Projection.Far,
	}.WithViewport(c.Window.Width, c.Window.Height)
}

// Bindings resolves the configured key names.
//
// Returns:
//   - input.Bindings: the key bindings
//   - error: ErrInvalidConfig wrapped for unknown or duplicated key names
func (i InputConfig) Bindings() (input.Bindings, error) {
	named := []struct {
		name string
		m    camera.Movement
	}{
		{i.Forward, camera.Forward},
		{i.Backward, camera.Backward},
		{i.Left, camera.Left},
		{i.Right, camera.Right},
	}

	b := make(input.Bindings, len(named))
	for _, n := range named {
		code, ok := common.KeyCode(n.name)
		if !ok {
			return nil, fmt.Errorf("%w: input.%s: unknown key %q", ErrInvalidConfig, n.m, n.name)
		}
		if prev, dup := b[code]; dup {
			return nil, fmt.Errorf("%w: input.%s: key %q already bound to %s", ErrInvalidConfig, n.m, n.name, prev)
		}
		b[code] = n.m
	}
	return b, nil
}
