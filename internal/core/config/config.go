// Package config loads the world description: toroidal bounds, logging and
// the catalog of named polygons entities are built from.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/torus/internal/core/observability/log"
	"github.com/zeusync/torus/internal/core/systems/physics"
)

var ErrInvalidConfig = errors.New("invalid configuration")

const (
	DefaultWidth         = 200.0
	DefaultHeight        = 200.0
	DefaultWrapTolerance = 0.1
	DefaultConcurrency   = 4
)

type Config struct {
	World  World      `json:"world" yaml:"world"`
	Log    Log        `json:"log" yaml:"log"`
	Shapes []ShapeDef `json:"shapes,omitempty" yaml:"shapes,omitempty"`
}

type World struct {
	Width         float64 `json:"width" yaml:"width"`
	Height        float64 `json:"height" yaml:"height"`
	WrapTolerance float64 `json:"wrap_tolerance" yaml:"wrap_tolerance"`
	Concurrency   int     `json:"concurrency" yaml:"concurrency"`
}

type Log struct {
	Level    string   `json:"level" yaml:"level"`
	Encoding string   `json:"encoding" yaml:"encoding"`
	Outputs  []string `json:"outputs,omitempty" yaml:"outputs,omitempty"`
}

// ShapeDef is a named local-space polygon, points given as [x, y] pairs.
type ShapeDef struct {
	Name   string       `json:"name" yaml:"name"`
	Points [][2]float64 `json:"points" yaml:"points"`
}

// Vertices converts the raw pairs to vectors.
func (d ShapeDef) Vertices() []physics.Vec2 {
	out := make([]physics.Vec2, len(d.Points))
	for i, p := range d.Points {
		out[i] = physics.V2(p[0], p[1])
	}
	return out
}

// Default returns a valid configuration with no shapes.
func Default() *Config {
	return &Config{
		World: World{
			Width:         DefaultWidth,
			Height:        DefaultHeight,
			WrapTolerance: DefaultWrapTolerance,
			Concurrency:   DefaultConcurrency,
		},
		Log: Log{
			Level:    "info",
			Encoding: "json",
		},
	}
}

// Load decodes YAML from r over the defaults and validates the result.
func Load(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile is Load over the file at path.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func (c *Config) Bounds() physics.Bounds {
	return physics.Bounds{Width: c.World.Width, Height: c.World.Height}
}

func (c *Config) LogOptions() (log.Options, error) {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.Options{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return log.Options{Level: level, Encoding: c.Log.Encoding, Outputs: c.Log.Outputs}, nil
}

func (c *Config) Validate() error {
	if err := c.Bounds().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.World.WrapTolerance < 0 || math.IsNaN(c.World.WrapTolerance) {
		return fmt.Errorf("%w: wrap_tolerance %v", ErrInvalidConfig, c.World.WrapTolerance)
	}
	if c.World.Concurrency < 1 {
		return fmt.Errorf("%w: concurrency %d", ErrInvalidConfig, c.World.Concurrency)
	}
	if _, err := c.LogOptions(); err != nil {
		return err
	}
	switch c.Log.Encoding {
	case "json", "console":
	default:
		return fmt.Errorf("%w: log encoding %q", ErrInvalidConfig, c.Log.Encoding)
	}

	seen := make(map[string]struct{}, len(c.Shapes))
	for i, s := range c.Shapes {
		if s.Name == "" {
			return fmt.Errorf("%w: shape #%d has no name", ErrInvalidConfig, i)
		}
		if _, ok := seen[s.Name]; ok {
			return fmt.Errorf("%w: shape %q defined twice", ErrInvalidConfig, s.Name)
		}
		seen[s.Name] = struct{}{}
		if len(s.Points) < 3 {
			return fmt.Errorf("%w: shape %q has %d points, need at least 3", ErrInvalidConfig, s.Name, len(s.Points))
		}
	}
	return nil
}
