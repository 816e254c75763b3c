package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/torus/internal/core/systems/collision"
	"github.com/zeusync/torus/internal/core/systems/physics"
)

// Scenario lists bodies to place in the world and test against each other.
type Scenario struct {
	Bodies []Body `yaml:"bodies"`
}

// Body places one catalog shape. Scale defaults to [1, 1] and wrap_around
// to true when omitted.
type Body struct {
	Name       string      `yaml:"name"`
	Shape      string      `yaml:"shape"`
	Position   [2]float64  `yaml:"position"`
	Rotation   float64     `yaml:"rotation"`
	Scale      *[2]float64 `yaml:"scale,omitempty"`
	WrapAround *bool       `yaml:"wrap_around,omitempty"`
}

type placed struct {
	name  string
	shape *collision.Shape
}

func LoadScenario(r io.Reader) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	return &s, nil
}

func LoadScenarioFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadScenario(f)
}

func (b Body) transform(w *collision.World, wrap bool) physics.Transform2D {
	pos := physics.V2(b.Position[0], b.Position[1])
	if wrap {
		pos = w.Wrap(pos)
	}
	scale := physics.V2(1, 1)
	if b.Scale != nil {
		scale = physics.V2(b.Scale[0], b.Scale[1])
	}
	return physics.Transform2D{Position: pos, Rotation: b.Rotation, Scale: scale}
}

// Place creates one shape per body. Wrap-around bodies have their position
// canonicalized into the world domain first.
func (s *Scenario) Place(w *collision.World) ([]placed, error) {
	out := make([]placed, 0, len(s.Bodies))
	for i, b := range s.Bodies {
		name := b.Name
		if name == "" {
			name = fmt.Sprintf("%s#%d", b.Shape, i)
		}
		wrap := b.WrapAround == nil || *b.WrapAround

		shape, err := w.NewShapeFromCatalog(b.Shape,
			collision.WithWrapAround(wrap),
			collision.WithTransform(b.transform(w, wrap)),
		)
		if err != nil {
			return nil, fmt.Errorf("body %q: %w", name, err)
		}
		out = append(out, placed{name: name, shape: shape})
	}
	return out, nil
}
