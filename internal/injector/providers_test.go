package injector

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/torus/internal/core/config"
	"github.com/zeusync/torus/internal/core/systems/physics"
)

func TestInitializeAppDefaults(t *testing.T) {
	app, err := InitializeApp("")
	require.NoError(t, err)

	assert.Equal(t, physics.Bounds{Width: config.DefaultWidth, Height: config.DefaultHeight}, app.World.Bounds())
	assert.Zero(t, app.World.Catalog().Len())
	assert.NotNil(t, app.Logger)
}

func TestInitializeAppFromFile(t *testing.T) {
	doc := `
world: {width: 64, height: 48}
log: {level: warn, outputs: [stderr]}
shapes:
  - name: tri
    points: [[0, 1], [-1, -1], [1, -1]]
`
	path := filepath.Join(t.TempDir(), "world.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	app, err := InitializeApp(path)
	require.NoError(t, err)
	assert.Equal(t, physics.Bounds{Width: 64, Height: 48}, app.World.Bounds())
	assert.Equal(t, []string{"tri"}, app.World.Catalog().Names())

	s, err := app.World.NewShapeFromCatalog("tri")
	require.NoError(t, err)
	assert.Equal(t, 3, s.Polygon().Len())
}

func TestInitializeAppBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.yaml")
	require.NoError(t, os.WriteFile(path, []byte("world: {width: -5}"), 0o600))

	_, err := InitializeApp(path)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
