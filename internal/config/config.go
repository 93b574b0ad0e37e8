package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"robot-renderer/internal/output"
	"robot-renderer/internal/robot"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the scene, render and animation settings.
type Config struct {
	// Scene
	BodyWidth *float64 `json:"body_width" toml:"body_width"`
	Ground    *bool    `json:"ground" toml:"ground"`

	// Render settings
	Width       int    `json:"width" toml:"width"`
	Height      int    `json:"height" toml:"height"`
	Supersample int    `json:"supersample" toml:"supersample"`
	Slices      int    `json:"slices" toml:"slices"`
	Stacks      int    `json:"stacks" toml:"stacks"`
	Format      string `json:"format" toml:"format"`
	OutputDir   string `json:"output_dir" toml:"output_dir"`
	Workers     int    `json:"workers" toml:"workers"`

	// Controls
	AngleStep    float64  `json:"angle_step" toml:"angle_step"`
	CannonStep   float64  `json:"cannon_step" toml:"cannon_step"`
	CannonPeriod Duration `json:"cannon_period" toml:"cannon_period"`
}

// Duration is a time.Duration written as a string such as "10ms".
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Load reads a JSON or TOML config file, chosen by extension.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir   string
	Format      string
	Width       int
	Height      int
	Supersample int
	Workers     int
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	// Defaults
	// Zero and negative scales are drawn as given
	if c.BodyWidth == nil {
		w := robot.DefaultBodyWidth
		c.BodyWidth = &w
	}
	if c.Ground == nil {
		on := true
		c.Ground = &on
	}
	if c.Width <= 0 {
		c.Width = 650
	}
	if c.Height <= 0 {
		c.Height = 500
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Slices <= 0 {
		c.Slices = 100
	}
	if c.Stacks <= 0 {
		c.Stacks = 100
	}
	if c.Format == "" {
		c.Format = string(output.WebP)
	}
	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.AngleStep == 0 {
		c.AngleStep = 2
	}
	if c.CannonStep == 0 {
		c.CannonStep = 5
	}
	if c.CannonPeriod <= 0 {
		c.CannonPeriod = Duration(10 * time.Millisecond)
	}
}

// MinCannonPeriod is the shortest accepted cannon tick. The loop runs every
// missed tick when it catches up, so shorter periods stall a frame.
const MinCannonPeriod = time.Millisecond

// Validate checks values Resolve cannot default.
func (c *Config) Validate() error {
	if _, err := output.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if p := time.Duration(c.CannonPeriod); p < MinCannonPeriod {
		return fmt.Errorf("config: cannon_period %v is below %v", p, MinCannonPeriod)
	}
	return nil
}

// RootScale returns the body width, falling back to the default.
func (c *Config) RootScale() float64 {
	if c.BodyWidth == nil {
		return robot.DefaultBodyWidth
	}
	return *c.BodyWidth
}

// OutputFormat returns the parsed output format, falling back to WebP.
func (c *Config) OutputFormat() output.Format {
	f, err := output.ParseFormat(c.Format)
	if err != nil {
		return output.WebP
	}
	return f
}

// GroundEnabled reports whether the ground plane is drawn.
func (c *Config) GroundEnabled() bool {
	return c.Ground == nil || *c.Ground
}
