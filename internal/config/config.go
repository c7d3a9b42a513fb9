package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"orbit-renderer/internal/scene"
)

// Config holds all configurable render and scene settings.
type Config struct {
	// Target
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Background uint32 `json:"background"`

	// Projection
	FOVDegrees float64 `json:"fov_degrees"`
	Near       float64 `json:"near"`
	Far        float64 `json:"far"`

	// Noise
	Seed    int64 `json:"seed"`
	Octaves int   `json:"octaves"`

	// Mesh: path to a Wavefront OBJ; empty means the generated UV sphere.
	Mesh string `json:"mesh"`

	// Scene table; empty means the stock seven-body scene.
	Instances []scene.Instance `json:"instances"`

	// Execution
	Workers int `json:"workers"`

	// Sequence export
	Frames      int    `json:"frames"`
	OutputDir   string `json:"output_dir"`
	Format      string `json:"format"` // "webp" or "tga"
	Supersample int    `json:"supersample"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Width     int
	Height    int
	Mesh      string
	Workers   int
	Frames    int
	OutputDir string
	Format    string
}

// Resolve fills empty fields with defaults. CLI flags take priority when
// non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Mesh != "" {
		c.Mesh = flags.Mesh
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}

	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.Background == 0 {
		c.Background = 0x333355
	}
	if c.FOVDegrees <= 0 {
		c.FOVDegrees = 45
	}
	if c.Near <= 0 {
		c.Near = 0.1
	}
	if c.Far <= 0 {
		c.Far = 1000
	}
	if c.Seed == 0 {
		c.Seed = 1337
	}
	if c.Octaves <= 0 {
		c.Octaves = 1
	}
	if len(c.Instances) == 0 {
		c.Instances = scene.DefaultInstances()
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Frames <= 0 {
		c.Frames = 120
	}
	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.Format == "" {
		c.Format = "webp"
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
}
