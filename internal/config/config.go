package config

import (
	"errors"
	"fmt"

	"github.com/OCharnyshevich/voxelcore/pkg/world/gen"
)

// Config holds world generation and pipeline settings.
type Config struct {
	Seed         int64   `json:"seed"`
	ChunkSize    int     `json:"chunk_size"`
	ChunkHeight  int     `json:"chunk_height"`
	MaxHeight    float64 `json:"max_height"`
	LightFalloff float32 `json:"light_falloff"`
	Generator    string  `json:"generator"` // "curve", "simple" or "flat"

	Curve  gen.CurveConfig  `json:"curve"`
	Simple gen.SimpleConfig `json:"simple"`

	Workers int `json:"workers"` // region build concurrency
	Radius  int `json:"radius"`  // region radius in chunks around (0,0)
	OriginY int `json:"origin_y"`
}

// World is the world-scoped slice of the configuration that every chunk
// shares.
type World struct {
	MaxHeight    float64
	LightFalloff float32
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ChunkSize:    16,
		ChunkHeight:  16,
		MaxHeight:    16,
		LightFalloff: 0.1,
		Generator:    gen.KindCurve,
		Curve:        gen.DefaultCurveConfig(),
		Simple:       gen.DefaultSimpleConfig(),
		Workers:      4,
		Radius:       2,
		OriginY:      128,
	}
}

// World returns the world-scoped constants.
func (c *Config) World() World {
	return World{MaxHeight: c.MaxHeight, LightFalloff: c.LightFalloff}
}

// Params returns the generator parameters.
func (c *Config) Params() gen.Params {
	return gen.Params{
		MaxHeight: c.MaxHeight,
		Curve:     c.Curve,
		Simple:    c.Simple,
	}
}

// Validate checks values the pipeline cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.ChunkSize <= 0 {
		errs = append(errs, fmt.Errorf("chunk_size must be positive, got %d", c.ChunkSize))
	}
	if c.ChunkHeight <= 0 {
		errs = append(errs, fmt.Errorf("chunk_height must be positive, got %d", c.ChunkHeight))
	}
	if c.LightFalloff <= 0 || c.LightFalloff >= 1 {
		errs = append(errs, fmt.Errorf("light_falloff must be in (0,1), got %v", c.LightFalloff))
	}
	if c.Workers <= 0 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %d", c.Workers))
	}
	if c.Radius < 0 {
		errs = append(errs, fmt.Errorf("radius must not be negative, got %d", c.Radius))
	}
	switch c.Generator {
	case gen.KindCurve:
		if err := c.Curve.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("curve: %w", err))
		}
	case gen.KindSimple, gen.KindFlat:
	default:
		errs = append(errs, fmt.Errorf("unknown generator %q", c.Generator))
	}
	return errors.Join(errs...)
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["chunk-size"] {
		cfg.ChunkSize = fromFile.ChunkSize
	}
	if !explicitFlags["chunk-height"] {
		cfg.ChunkHeight = fromFile.ChunkHeight
	}
	if !explicitFlags["max-height"] {
		cfg.MaxHeight = fromFile.MaxHeight
	}
	if !explicitFlags["light-falloff"] {
		cfg.LightFalloff = fromFile.LightFalloff
	}
	if !explicitFlags["generator"] {
		cfg.Generator = fromFile.Generator
	}
	if !explicitFlags["workers"] {
		cfg.Workers = fromFile.Workers
	}
	if !explicitFlags["radius"] {
		cfg.Radius = fromFile.Radius
	}
	if !explicitFlags["origin-y"] {
		cfg.OriginY = fromFile.OriginY
	}
	// Curves and noise tuning have no flags.
	cfg.Curve = fromFile.Curve
	cfg.Simple = fromFile.Simple
}
