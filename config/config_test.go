package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/Carmen-Shannon/oxy-flycam/engine/camera"
	"github.com/Carmen-Shannon/oxy-flycam/engine/input"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cam := camera.NewCameraFromConfig(cfg.CameraConfig())
	assert.Equal(t, mgl32.Vec3{0, 0, 3}, cam.Position())
	assert.Equal(t, camera.DefaultYaw, cam.Yaw())

	bindings, err := cfg.Input.Bindings()
	require.NoError(t, err)
	assert.Equal(t, input.DefaultBindings(), bindings)
}

func TestLoad_TOML(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "flycam.toml"))
	require.NoError(t, err)

	assert.True(t, cfg.Profiling)
	assert.Equal(t, "Flycam Test", cfg.Window.Title)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.True(t, cfg.Window.VSync, "unset fields keep their defaults")

	cc := cfg.CameraConfig()
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, cc.Position)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, cc.WorldUp)
	assert.Equal(t, float32(-45), cc.Yaw)
	assert.Equal(t, float32(5), cc.MoveSpeed)
	assert.Equal(t, camera.DefaultMouseSensitivity, cc.MouseSensitivity)
	assert.True(t, cc.GroundLocked)

	proj := cfg.CameraProjection()
	assert.InDelta(t, 800.0/600.0, proj.Aspect, 1e-6)
	assert.Equal(t, float32(0.1), proj.Near)
	assert.Equal(t, float32(500), proj.Far)

	assert.True(t, cfg.Input.InvertY)
	bindings, err := cfg.Input.Bindings()
	require.NoError(t, err)
	assert.Equal(t, input.Bindings{
		common.KeyUp:    camera.Forward,
		common.KeyDown:  camera.Backward,
		common.KeyLeft:  camera.Left,
		common.KeyRight: camera.Right,
	}, bindings)
}

func TestLoad_YAML(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "flycam.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 1920, cfg.Window.Width)
	assert.Equal(t, [3]float32{0, 1.7, 10}, cfg.Camera.Position)
	assert.Equal(t, float32(-10), cfg.Camera.Pitch)
	assert.Equal(t, float32(30), cfg.Camera.Zoom)
	assert.False(t, cfg.Input.ConstrainPitch)
	assert.Equal(t, "W", cfg.Input.Forward)
}

func TestLoad_ExpandsHomeDirectory(t *testing.T) {
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "flycam.yaml"), []byte("profiling: true\n"), 0o644))

	cfg, err := Load("~/flycam.yaml")
	require.NoError(t, err)
	assert.True(t, cfg.Profiling)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("unsupported extension", func(t *testing.T) {
		_, err := Load("flycam.json")
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.toml")
		require.NoError(t, os.WriteFile(path, []byte("[camera]\nzoom = 90.0\n"), 0o644))

		_, err := Load(path)
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.Contains(t, err.Error(), "camera.zoom")
	})
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("[camera]\nroll = 10.0\n"), FormatTOML)
	assert.Error(t, err)

	_, err = Parse([]byte("camera:\n  roll: 10\n"), FormatYAML)
	assert.Error(t, err)
}

func TestParse_EmptyDocumentYieldsDefaults(t *testing.T) {
	cfg, err := Parse(nil, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Parse([]byte(""), FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AppConfig)
		field  string
	}{
		{"window size", func(c *AppConfig) { c.Window.Height = 0 }, "window size"},
		{"world up length", func(c *AppConfig) { c.Camera.WorldUp = [3]float32{0, 2, 0} }, "camera.world_up"},
		{"pitch at singularity", func(c *AppConfig) { c.Camera.Pitch = 90 }, "camera.pitch"},
		{"move speed", func(c *AppConfig) { c.Camera.MoveSpeed = 0 }, "camera.move_speed"},
		{"sensitivity", func(c *AppConfig) { c.Camera.MouseSensitivity = -1 }, "camera.mouse_sensitivity"},
		{"zoom", func(c *AppConfig) { c.Camera.Zoom = 0.5 }, "camera.zoom"},
		{"near", func(c *AppConfig) { c.Projection.Near = 0 }, "projection.near"},
		{"far", func(c *AppConfig) { c.Projection.Far = 0.05 }, "projection.far"},
		{"unknown key", func(c *AppConfig) { c.Input.Forward = "F13" }, "unknown key"},
		{"duplicate key", func(c *AppConfig) { c.Input.Left = "w" }, "already bound"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Camera.MoveSpeed = 0
	cfg.Projection.Near = -1

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "camera.move_speed")
	assert.Contains(t, err.Error(), "projection.near")
}
