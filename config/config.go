// Package config loads engine and service tuning parameters from a TOML
// file, falling back to the engine's hardcoded defaults for any field the
// file leaves unset.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/driftmap/dyng/layout"
)

// Cooling mirrors layout.Cooling in TOML-friendly form.
type Cooling struct {
	Iterations       *uint    `toml:"iterations"`
	StartTemperature *float64 `toml:"start_temperature"`
	AnnealRate       *float64 `toml:"anneal_rate"`
}

// Config holds every tunable the engine and its HTTP service expose.
type Config struct {
	Canvas struct {
		Width  *float64 `toml:"width"`
		Height *float64 `toml:"height"`
	} `toml:"canvas"`

	Tolerance *float64 `toml:"tolerance"`
	Workers   *int     `toml:"workers"`

	FirstCooling     Cooling `toml:"first_cooling"`
	SecondCooling    Cooling `toml:"second_cooling"`
	ToleranceCooling Cooling `toml:"tolerance_cooling"`

	Server struct {
		Port      *int     `toml:"port"`
		FrameRate *float64 `toml:"frame_rate"`
	} `toml:"server"`
}

// Defaults returns the engine's hardcoded defaults, matching
// layout.NewForceDirectedLayout and layout.DefaultToleranceCooling.
func Defaults() *Config {
	var c Config
	width, height := 1000.0, 1000.0
	c.Canvas.Width = &width
	c.Canvas.Height = &height

	tolerance := 0.04
	c.Tolerance = &tolerance
	workers := 1
	c.Workers = &workers

	fd := layout.NewForceDirectedLayout()
	c.FirstCooling = coolingFrom(fd.FirstCooling)
	c.SecondCooling = coolingFrom(fd.SecondCooling)
	c.ToleranceCooling = coolingFrom(layout.DefaultToleranceCooling())

	port := 8080
	frameRate := 30.0
	c.Server.Port = &port
	c.Server.FrameRate = &frameRate
	return &c
}

func coolingFrom(cl layout.Cooling) Cooling {
	iterations := cl.Iterations
	start := float64(cl.StartTemperature)
	// The anneal function itself can't round-trip through TOML; only its
	// effective per-step rate at the configured start temperature can be
	// recorded, so Load reconstructs a fresh exponential anneal from it.
	var rate float64
	if start != 0 {
		rate = float64(cl.Anneal(cl.StartTemperature)) / start
	}
	return Cooling{Iterations: &iterations, StartTemperature: &start, AnnealRate: &rate}
}

func (c Cooling) toLayout(fallback layout.Cooling) layout.Cooling {
	out := fallback
	if c.Iterations != nil {
		out.Iterations = *c.Iterations
	}
	if c.StartTemperature != nil {
		out.StartTemperature = float32(*c.StartTemperature)
	}
	if c.AnnealRate != nil {
		rate := float32(*c.AnnealRate)
		out.Anneal = func(t float32) float32 { return t * rate }
	}
	return out
}

// Load reads path and overlays it on top of Defaults(). A missing file is
// not an error if path is empty; otherwise any read or parse failure is
// wrapped with call-site context.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	var overlay Config
	if err := toml.Unmarshal(data, &overlay); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	mergeInto(cfg, &overlay)
	return cfg, nil
}

func mergeInto(base, overlay *Config) {
	if overlay.Canvas.Width != nil {
		base.Canvas.Width = overlay.Canvas.Width
	}
	if overlay.Canvas.Height != nil {
		base.Canvas.Height = overlay.Canvas.Height
	}
	if overlay.Tolerance != nil {
		base.Tolerance = overlay.Tolerance
	}
	if overlay.Workers != nil {
		base.Workers = overlay.Workers
	}
	if overlay.Server.Port != nil {
		base.Server.Port = overlay.Server.Port
	}
	if overlay.Server.FrameRate != nil {
		base.Server.FrameRate = overlay.Server.FrameRate
	}
	base.FirstCooling = mergeCooling(base.FirstCooling, overlay.FirstCooling)
	base.SecondCooling = mergeCooling(base.SecondCooling, overlay.SecondCooling)
	base.ToleranceCooling = mergeCooling(base.ToleranceCooling, overlay.ToleranceCooling)
}

func mergeCooling(base, overlay Cooling) Cooling {
	if overlay.Iterations != nil {
		base.Iterations = overlay.Iterations
	}
	if overlay.StartTemperature != nil {
		base.StartTemperature = overlay.StartTemperature
	}
	if overlay.AnnealRate != nil {
		base.AnnealRate = overlay.AnnealRate
	}
	return base
}

// NewForceDirectedLayout builds a layout.ForceDirectedLayout from c's
// cooling schedules, leaving every other field at its package default.
func (c *Config) NewForceDirectedLayout() *layout.ForceDirectedLayout {
	fd := layout.NewForceDirectedLayout()
	fd.FirstCooling = c.FirstCooling.toLayout(fd.FirstCooling)
	fd.SecondCooling = c.SecondCooling.toLayout(fd.SecondCooling)
	return fd
}

// ToleranceCoolingSchedule builds a layout.Cooling for the tolerance
// refinement pass from c, falling back to layout.DefaultToleranceCooling.
func (c *Config) ToleranceCoolingSchedule() layout.Cooling {
	return c.ToleranceCooling.toLayout(layout.DefaultToleranceCooling())
}
