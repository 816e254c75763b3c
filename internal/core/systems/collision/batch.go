package collision

import (
	"context"
	"time"

	"github.com/zeusync/torus/internal/core/observability/log"
	"github.com/zeusync/torus/pkg/concurrent"
)

// Pair is one query: A is the querying shape, so a resolution pushes A away from B.
type Pair struct {
	A, B *Shape
}

// CheckPairs runs CheckCollision for every pair concurrently. Results line
// up with pairs by index. The first error stops the batch.
func (w *World) CheckPairs(ctx context.Context, pairs []Pair) ([]Contact, error) {
	start := time.Now()
	contacts, err := concurrent.ParallelMap(ctx, pairs, w.concurrency, func(p Pair) (Contact, error) {
		return p.A.CheckCollision(p.B)
	})
	if err != nil {
		return nil, err
	}

	overlaps := 0
	for _, c := range contacts {
		if c.Overlapping {
			overlaps++
		}
	}
	w.logger.Debug("Collision batch done",
		log.Int("pairs", len(pairs)),
		log.Int("overlaps", overlaps),
		log.Duration("took", time.Since(start)),
	)
	return contacts, nil
}

// AllPairs returns every unordered pair of shapes once, in input order.
func AllPairs(shapes []*Shape) []Pair {
	if len(shapes) < 2 {
		return nil
	}
	pairs := make([]Pair, 0, len(shapes)*(len(shapes)-1)/2)
	for i := 0; i < len(shapes); i++ {
		for j := i + 1; j < len(shapes); j++ {
			pairs = append(pairs, Pair{A: shapes[i], B: shapes[j]})
		}
	}
	return pairs
}
