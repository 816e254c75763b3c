package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/torus/internal/core/observability/log"
	"github.com/zeusync/torus/internal/core/systems/physics"
)

const sample = `
world:
  width: 100
  height: 80
  wrap_tolerance: 0.25
log:
  level: debug
  encoding: console
shapes:
  - name: ship
    points: [[0, 1], [-0.6, -0.8], [0.6, -0.8]]
  - name: bullet
    points: [[-0.1, -0.1], [0.1, -0.1], [0.1, 0.1], [-0.1, 0.1]]
`

func TestLoad(t *testing.T) {
	c, err := Load(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, physics.Bounds{Width: 100, Height: 80}, c.Bounds())
	assert.Equal(t, 0.25, c.World.WrapTolerance)
	assert.Equal(t, DefaultConcurrency, c.World.Concurrency)
	require.Len(t, c.Shapes, 2)
	assert.Equal(t, "ship", c.Shapes[0].Name)
	assert.Equal(t, []physics.Vec2{{X: 0, Y: 1}, {X: -0.6, Y: -0.8}, {X: 0.6, Y: -0.8}}, c.Shapes[0].Vertices())

	opts, err := c.LogOptions()
	require.NoError(t, err)
	assert.Equal(t, log.LevelDebug, opts.Level)
	assert.Equal(t, "console", opts.Encoding)
}

func TestLoadEmptyUsesDefaults(t *testing.T) {
	c, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadRejects(t *testing.T) {
	tests := map[string]string{
		"zero width":      "world: {width: 0, height: 10}",
		"negative height": "world: {width: 10, height: -1}",
		"tolerance":       "world: {width: 10, height: 10, wrap_tolerance: -1}",
		"concurrency":     "world: {width: 10, height: 10, concurrency: 0}",
		"log level":       "log: {level: chatty}",
		"encoding":        "log: {encoding: xml}",
		"unnamed shape":   "shapes: [{points: [[0,0],[1,0],[0,1]]}]",
		"two points":      "shapes: [{name: a, points: [[0,0],[1,0]]}]",
		"duplicate": `shapes:
  - {name: a, points: [[0,0],[1,0],[0,1]]}
  - {name: a, points: [[0,0],[2,0],[0,2]]}`,
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(doc))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadUnknownField(t *testing.T) {
	_, err := Load(strings.NewReader("world: {widht: 10}"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, c.Shapes, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
