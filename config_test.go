package wobble

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, "Wobble", cfg.Window.Title)
	assert.Equal(t, float32(75), cfg.Camera.FovDegrees)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfigMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wobble.toml")
	data := `
[window]
width = 640
title = "Test"

[camera]
fov_degrees = 60.0

[log]
level = "debug"
development = true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Window.Width)
	// unset keys keep their defaults
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, "Test", cfg.Window.Title)
	assert.Equal(t, float32(60), cfg.Camera.FovDegrees)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
}

func TestLoadConfigRejectsMalformedToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window\nwidth=1"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestFovRadians(t *testing.T) {
	cfg := CameraConfig{FovDegrees: 180}
	assert.InDelta(t, 3.14159265, float64(cfg.FovRadians()), 1e-5)
}
