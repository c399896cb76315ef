package config

import (
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all settings loaded from config.yaml.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Camera  CameraConfig  `yaml:"camera"`
	Render  RenderConfig  `yaml:"render"`
	Level   LevelConfig   `yaml:"level"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
}

type CameraConfig struct {
	FieldOfView   float64 `yaml:"field_of_view"` // degrees
	FarPlane      float64 `yaml:"far_plane"`
	MoveSpeed     float64 `yaml:"move_speed"`
	RotationSpeed float64 `yaml:"rotation_speed"`
	HeadBob       bool    `yaml:"head_bob"`
}

type RenderConfig struct {
	UseMipmap    bool `yaml:"use_mipmap"`
	UseFiltering bool `yaml:"use_filtering"`
	Workers      int  `yaml:"workers"` // 0 = CPU count
}

type LevelConfig struct {
	Path string `yaml:"path"`
}

// LoadConfig reads and parses the YAML configuration file.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// MustLoadConfig loads the configuration and panics on failure.
func MustLoadConfig(filename string) *Config {
	cfg, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return cfg
}

// applyDefaults fills in zero values with usable defaults so a sparse config
// file still produces a valid setup.
func (c *Config) applyDefaults() {
	if c.Display.ScreenWidth <= 0 {
		c.Display.ScreenWidth = 800
	}
	if c.Display.ScreenHeight <= 0 {
		c.Display.ScreenHeight = 600
	}
	if c.Display.WindowTitle == "" {
		c.Display.WindowTitle = "wallcaster"
	}
	if c.Camera.FieldOfView <= 0 {
		c.Camera.FieldOfView = 90
	}
	if c.Camera.FarPlane <= 0 {
		c.Camera.FarPlane = 100
	}
	if c.Camera.MoveSpeed <= 0 {
		c.Camera.MoveSpeed = 0.12
	}
	if c.Camera.RotationSpeed <= 0 {
		c.Camera.RotationSpeed = 0.035
	}
	if c.Level.Path == "" {
		c.Level.Path = "assets/levels/demo.yaml"
	}
}

// GetScreenWidth returns the screen width in pixels.
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

// GetScreenHeight returns the screen height in pixels.
func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

// GetFOV returns the field of view in radians.
func (c *Config) GetFOV() float64 {
	return c.Camera.FieldOfView * math.Pi / 180
}

// GetMoveSpeed returns the camera movement speed in world units per frame.
func (c *Config) GetMoveSpeed() float64 {
	return c.Camera.MoveSpeed
}

// GetRotSpeed returns the camera rotation speed in radians per frame.
func (c *Config) GetRotSpeed() float64 {
	return c.Camera.RotationSpeed
}
