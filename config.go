package wobble

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
)

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type CameraConfig struct {
	FovDegrees float32 `toml:"fov_degrees"`
	Near       float32 `toml:"near"`
	Far        float32 `toml:"far"`
}

type Config struct {
	Window    WindowConfig `toml:"window"`
	Camera    CameraConfig `toml:"camera"`
	Log       LogConfig    `toml:"log"`
	ShaderDir string       `toml:"shader_dir"`
}

func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "Wobble",
		},
		Camera: CameraConfig{
			FovDegrees: 75,
			Near:       0.1,
			Far:        1000,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig reads a TOML config, layering it over the defaults. A missing
// file is not an error; the defaults simply apply.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, nil
}

// FovRadians converts the configured field of view for CameraComponent.
func (c CameraConfig) FovRadians() float32 {
	return mgl32.DegToRad(c.FovDegrees)
}
