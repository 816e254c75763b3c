package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/torus/internal/core/config"
	"github.com/zeusync/torus/internal/core/observability/log"
	"github.com/zeusync/torus/internal/core/systems/collision"
)

// App is everything a process needs to run collision queries.
type App struct {
	Config *config.Config
	Logger *log.Logger
	World  *collision.World
}

var ProviderSet = wire.NewSet(
	ProvideConfig,
	ProvideLogger,
	ProvideCatalog,
	ProvideWorld,
	wire.Struct(new(App), "*"),
)

// ProvideConfig loads path, or returns the defaults when path is empty.
func ProvideConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadFile(path)
}

func ProvideLogger(cfg *config.Config) (*log.Logger, error) {
	opts, err := cfg.LogOptions()
	if err != nil {
		return nil, err
	}
	return log.New(opts)
}

func ProvideCatalog(cfg *config.Config, logger *log.Logger) (*collision.Catalog, error) {
	return collision.NewCatalogFromConfig(cfg.Shapes, logger)
}

func ProvideWorld(cfg *config.Config, logger *log.Logger, catalog *collision.Catalog) (*collision.World, error) {
	return collision.NewWorld(cfg.Bounds(),
		collision.WithLogger(logger),
		collision.WithCatalog(catalog),
		collision.WithWrapTolerance(cfg.World.WrapTolerance),
		collision.WithConcurrency(cfg.World.Concurrency),
	)
}
