package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Carmen-Shannon/oxy-lumen/common"
	"github.com/Carmen-Shannon/oxy-lumen/engine/light"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the editor looks for its configuration when no path is given.
const DefaultPath = "oxy-lumen.yaml"

// Window holds the initial window settings.
type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Camera holds the initial camera rig settings.
type Camera struct {
	Position      [3]float32 `yaml:"position,flow"`
	Target        [3]float32 `yaml:"target,flow"`
	Fov           float32    `yaml:"fov"`
	ZoomSmoothing int        `yaml:"zoom_smoothing_fps"`
}

// Meshes holds the mesh paths for the central object and the light markers.
// An empty marker path selects the built-in procedural marker.
type Meshes struct {
	Focal string `yaml:"focal"`
	Spot  string `yaml:"spot"`
	Point string `yaml:"point"`
}

// Scene holds scene registry settings.
type Scene struct {
	MaxLights     int        `yaml:"max_lights"`
	InitialLights int        `yaml:"initial_lights"`
	Decorations   bool       `yaml:"decorations"`
	Ambient       [3]float32 `yaml:"ambient,flow"`
}

// Input holds pointer interaction settings.
type Input struct {
	DoubleClickMs    int     `yaml:"double_click_ms"`
	CorrectionFactor float32 `yaml:"correction_factor"`
}

// Config is the editor configuration file.
type Config struct {
	Window Window `yaml:"window"`
	Camera Camera `yaml:"camera"`
	Meshes Meshes `yaml:"meshes"`
	Scene  Scene  `yaml:"scene"`
	Input  Input  `yaml:"input"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Window: Window{Title: "oxy-lumen", Width: 1920, Height: 1080},
		Camera: Camera{
			Position:      [3]float32{0, 1, 10},
			Fov:           70,
			ZoomSmoothing: 60,
		},
		Scene: Scene{
			MaxLights:     4,
			InitialLights: 1,
			Decorations:   true,
			Ambient:       [3]float32{0.1, 0.1, 0.1},
		},
		Input: Input{DoubleClickMs: 250, CorrectionFactor: 10},
	}
}

// Load reads a configuration file. Keys missing from the file keep their default
// values and a missing file yields Default().
//
// Parameters:
//   - path: the YAML file to read
//
// Returns:
//   - Config: the loaded configuration
//   - error: error if the file exists but cannot be read or parsed
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// Save writes cfg as YAML, creating parent directories as needed.
//
// Parameters:
//   - path: the destination file
//   - cfg: the configuration to write
//
// Returns:
//   - error: error if the file cannot be written
func Save(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("config: create %s: %w", dir, err)
		}
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// normalize replaces out-of-range values with their defaults.
func (c *Config) normalize() {
	def := Default()
	c.Window.Title = common.Coalesce(c.Window.Title, def.Window.Title)
	if c.Window.Width <= 0 {
		c.Window.Width = def.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = def.Window.Height
	}
	if c.Camera.Fov < 10 || c.Camera.Fov > 100 {
		c.Camera.Fov = def.Camera.Fov
	}
	if c.Camera.Position == c.Camera.Target {
		// the orbit needs a nonzero radius
		for i := range c.Camera.Position {
			c.Camera.Position[i] = c.Camera.Target[i] + def.Camera.Position[i] - def.Camera.Target[i]
		}
	}
	if c.Scene.MaxLights <= 0 || c.Scene.MaxLights > light.MaxGPULights {
		c.Scene.MaxLights = def.Scene.MaxLights
	}
	if c.Scene.InitialLights < 0 {
		c.Scene.InitialLights = def.Scene.InitialLights
	}
	c.Scene.InitialLights = min(c.Scene.InitialLights, c.Scene.MaxLights)
	if c.Input.DoubleClickMs <= 0 {
		c.Input.DoubleClickMs = def.Input.DoubleClickMs
	}
	if c.Input.CorrectionFactor <= 0 {
		c.Input.CorrectionFactor = def.Input.CorrectionFactor
	}
}
