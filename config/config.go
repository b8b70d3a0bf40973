// Package config loads and validates the game settings file.
package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Window WindowConfig `yaml:"window"`
	Square SquareConfig `yaml:"square"`
	HUD    HUDConfig    `yaml:"hud"`
	Timing TimingConfig `yaml:"timing"`
}

type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	MaxFPS     int    `yaml:"max_fps"`
	Background string `yaml:"background"`
}

type SquareConfig struct {
	Size               float64      `yaml:"size"`
	Push               float64      `yaml:"push"`
	Friction           float64      `yaml:"friction"`
	Velocity           VectorConfig `yaml:"velocity"`
	Color              string       `yaml:"color"`
	ReleaseStopsThrust bool         `yaml:"release_stops_thrust"`
}

type VectorConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type HUDConfig struct {
	Color    string  `yaml:"color"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	FontSize float64 `yaml:"font_size"`
}

type TimingConfig struct {
	Mode         string  `yaml:"mode"`
	MaxFrameStep float64 `yaml:"max_frame_step"`
}

const (
	TimingMeasured = "measured"
	TimingFixed    = "fixed"
)

// Parse decodes data on top of the defaults. It does not validate: callers
// apply their overrides first and then call Validate.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}

// Marshal encodes cfg back to YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 {
		errs = append(errs, fmt.Errorf("window.width must be positive, got %d", c.Window.Width))
	}
	if c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window.height must be positive, got %d", c.Window.Height))
	}
	if c.Window.MaxFPS <= 0 {
		errs = append(errs, fmt.Errorf("window.max_fps must be positive, got %d", c.Window.MaxFPS))
	}
	if _, err := ParseColor(c.Window.Background); err != nil {
		errs = append(errs, fmt.Errorf("window.background: %w", err))
	}

	if c.Square.Size <= 0 {
		errs = append(errs, fmt.Errorf("square.size must be positive, got %g", c.Square.Size))
	} else if c.Square.Size >= float64(c.Window.Width) || c.Square.Size >= float64(c.Window.Height) {
		errs = append(errs, fmt.Errorf("square.size %g does not fit a %dx%d window", c.Square.Size, c.Window.Width, c.Window.Height))
	}
	if c.Square.Push < 0 {
		errs = append(errs, fmt.Errorf("square.push must not be negative, got %g", c.Square.Push))
	}
	if c.Square.Friction <= 0 || c.Square.Friction > 1 {
		errs = append(errs, fmt.Errorf("square.friction must be in (0, 1], got %g", c.Square.Friction))
	}
	if _, err := ParseColor(c.Square.Color); err != nil {
		errs = append(errs, fmt.Errorf("square.color: %w", err))
	}

	if _, err := ParseColor(c.HUD.Color); err != nil {
		errs = append(errs, fmt.Errorf("hud.color: %w", err))
	}
	if c.HUD.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("hud.font_size must be positive, got %g", c.HUD.FontSize))
	}

	switch c.Timing.Mode {
	case TimingMeasured, TimingFixed:
	default:
		errs = append(errs, fmt.Errorf("timing.mode must be %q or %q, got %q", TimingMeasured, TimingFixed, c.Timing.Mode))
	}
	if c.Timing.MaxFrameStep <= 0 {
		errs = append(errs, fmt.Errorf("timing.max_frame_step must be positive, got %g", c.Timing.MaxFrameStep))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
}
