package concurrent

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ForEach runs action for every element of items with at most limit
// goroutines in flight. The first error cancels ctx for the remaining
// actions and is returned once all started actions have finished.
func ForEach[T any](ctx context.Context, items []T, limit int, action func(ctx context.Context, idx int, item T) error) error {
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for idx, item := range items {
		if gctx.Err() != nil {
			break
		}
		idx, item := idx, item
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return action(gctx, idx, item)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	// gctx is always done after Wait; only the caller's ctx matters here.
	return ctx.Err()
}

// ParallelMap applies mapFn to each element with at most workers goroutines,
// preserving order. It stops at the first error.
func ParallelMap[T any, R any](ctx context.Context, in []T, workers int, mapFn func(T) (R, error)) ([]R, error) {
	out := make([]R, len(in))
	err := ForEach(ctx, in, workers, func(_ context.Context, idx int, v T) error {
		r, err := mapFn(v)
		if err != nil {
			return err
		}
		out[idx] = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
