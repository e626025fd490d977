package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Inputs
	ModelPath   string `json:"model"`
	TexturePath string `json:"texture"`
	OutputDir   string `json:"output_dir"`

	// Render settings
	RenderSize  int    `json:"render_size"`
	Supersample int    `json:"supersample"`
	Frames      int    `json:"frames"`
	Format      string `json:"format"`     // webp or png
	Mode        string `json:"mode"`       // wireframe, vertex, filled, filled-wire, textured, textured-wire
	Background  string `json:"background"` // hex AARRGGBB
	Workers     int    `json:"workers"`
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
	Model       string
	Texture     string
	OutputDir   string
	Size        int
	Supersample int
	Frames      int
	Format      string
	Mode        string
	Workers     int
}

// Resolve fills in any empty fields with defaults. CLI flags take priority
// when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.Model != "" {
		c.ModelPath = flags.Model
	}
	if flags.Texture != "" {
		c.TexturePath = flags.Texture
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Size > 0 {
		c.RenderSize = flags.Size
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Mode != "" {
		c.Mode = flags.Mode
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	// Defaults
	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.RenderSize <= 0 {
		c.RenderSize = 512
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Frames <= 0 {
		c.Frames = 12
	}
	if c.Format == "" {
		c.Format = "webp"
	}
	if c.Mode == "" {
		if c.TexturePath != "" {
			c.Mode = "textured"
		} else {
			c.Mode = "filled"
		}
	}
	if c.Background == "" {
		c.Background = "00000000"
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// BackgroundColor parses the background hex string into a packed AARRGGBB
// color.
func (c *Config) BackgroundColor() (uint32, error) {
	s := strings.TrimPrefix(c.Background, "#")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("config: background %q: %w", c.Background, err)
	}
	if len(s) <= 6 {
		// RRGGBB shorthand is opaque
		v |= 0xFF000000
	}
	return uint32(v), nil
}
