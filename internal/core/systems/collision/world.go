// Package collision answers narrow-phase overlap queries between convex
// polygons living in a toroidal world.
package collision

import (
	"fmt"
	"math"

	"github.com/zeusync/torus/internal/core/observability/log"
	"github.com/zeusync/torus/internal/core/systems/physics"
)

const (
	// DefaultWrapTolerance is how much shorter the wrapped path must be before
	// a query switches to the wrapped image of the other shape.
	DefaultWrapTolerance = 0.1
	DefaultConcurrency   = 4
)

// World owns the toroidal bounds every Shape created from it is tested in.
type World struct {
	bounds        physics.Bounds
	wrapTolerance float64
	concurrency   int
	catalog       *Catalog
	logger        log.Log
}

type Option func(*World)

func WithLogger(logger log.Log) Option {
	return func(w *World) { w.logger = logger }
}

func WithWrapTolerance(tolerance float64) Option {
	return func(w *World) { w.wrapTolerance = tolerance }
}

// WithConcurrency bounds the number of goroutines CheckPairs uses.
func WithConcurrency(n int) Option {
	return func(w *World) { w.concurrency = n }
}

func WithCatalog(c *Catalog) Option {
	return func(w *World) { w.catalog = c }
}

func NewWorld(bounds physics.Bounds, opts ...Option) (*World, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}

	w := &World{
		bounds:        bounds,
		wrapTolerance: DefaultWrapTolerance,
		concurrency:   DefaultConcurrency,
		logger:        log.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}

	if w.wrapTolerance < 0 || math.IsNaN(w.wrapTolerance) {
		return nil, fmt.Errorf("collision: wrap tolerance %v must be >= 0", w.wrapTolerance)
	}
	if w.concurrency < 1 {
		w.concurrency = 1
	}
	if w.catalog == nil {
		w.catalog = NewCatalog(w.logger)
	}

	w.logger.Info("Collision world created",
		log.Float64("width", bounds.Width),
		log.Float64("height", bounds.Height),
		log.Float64("wrap_tolerance", w.wrapTolerance),
		log.Int("shapes", w.catalog.Len()),
	)
	return w, nil
}

func (w *World) Bounds() physics.Bounds { return w.bounds }

func (w *World) Catalog() *Catalog { return w.catalog }

// Wrap canonicalizes p into the world's domain.
func (w *World) Wrap(p physics.Vec2) physics.Vec2 { return w.bounds.Wrap(p) }

// frame picks the positions a query is evaluated at. When either shape
// wraps and the wrapped path is meaningfully shorter than the direct one,
// self is moved to the origin and other to the nearest image of itself.
// Only copies are returned.
func (w *World) frame(self, other physics.Vec2, wrapAround bool) (selfPos, otherPos physics.Vec2, wrapped bool) {
	if !wrapAround {
		return self, other, false
	}
	direct := physics.Distance2V(self, other)
	displacement := w.bounds.ShortestDisplacement(self, other)
	if math.Abs(displacement.Length()-direct) > w.wrapTolerance {
		return physics.Vec2{}, displacement, true
	}
	return self, other, false
}
