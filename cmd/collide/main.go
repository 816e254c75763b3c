package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/zeusync/torus/internal/core/observability/log"
	"github.com/zeusync/torus/internal/core/systems/collision"
	"github.com/zeusync/torus/internal/injector"
)

var (
	configPath   = flag.String("config", "", "world configuration (yaml); defaults apply when empty")
	scenarioPath = flag.String("scenario", "", "bodies to test (yaml)")
	isDebug      = flag.Bool("debug", false, "Enable debug log output")
)

func main() {
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "collide:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	if *scenarioPath == "" {
		return errors.New("-scenario is required")
	}

	app, err := injector.InitializeApp(*configPath)
	if err != nil {
		return err
	}
	logger := app.Logger
	defer func() { _ = logger.Sync() }()

	if *isDebug {
		logger.SetLevel(log.LevelDebug)
	}

	scenario, err := LoadScenarioFile(*scenarioPath)
	if err != nil {
		logger.Error("Read scenario fail", log.Error(err))
		return err
	}

	bodies, err := scenario.Place(app.World)
	if err != nil {
		logger.Error("Place bodies fail", log.Error(err))
		return err
	}

	overlaps, err := report(ctx, app.World, bodies, logger)
	if err != nil {
		logger.Error("Collision check fail", log.Error(err))
		return err
	}
	logger.Info("Collision check done", log.Int("bodies", len(bodies)), log.Int("overlaps", overlaps))
	return nil
}

// report checks every pair of bodies and logs each overlap.
func report(ctx context.Context, w *collision.World, bodies []placed, logger log.Log) (int, error) {
	names := make(map[uuid.UUID]string, len(bodies))
	shapes := make([]*collision.Shape, len(bodies))
	for i, b := range bodies {
		names[b.shape.ID()] = b.name
		shapes[i] = b.shape
	}

	pairs := collision.AllPairs(shapes)
	contacts, err := w.CheckPairs(ctx, pairs)
	if err != nil {
		return 0, err
	}

	overlaps := 0
	for i, c := range contacts {
		if !c.Overlapping {
			continue
		}
		overlaps++
		logger.Info("Overlap",
			log.String("body", names[pairs[i].A.ID()]),
			log.String("other", names[pairs[i].B.ID()]),
			log.Float64("resolution_x", c.Resolution.X),
			log.Float64("resolution_y", c.Resolution.Y),
			log.Float64("depth", c.Resolution.Length()),
		)
	}
	return overlaps, nil
}
