package concurrent

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Concurrent runs action for each element in its own goroutine, at most limit
// at a time. A limit <= 0 means no limit. The context passed to action is
// canceled on the first error, which is returned.
func Concurrent[T any](ctx context.Context, in []T, limit int, action func(context.Context, T) error) error {
	errGroup, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		errGroup.SetLimit(limit)
	}

	for _, value := range in {
		value := value
		errGroup.Go(func() error {
			return action(ctx, value)
		})
	}

	return errGroup.Wait()
}

// ParallelMap applies mapFn to each element with at most workers goroutines,
// preserving order. On error the partial results are discarded.
func ParallelMap[T any, R any](ctx context.Context, in []T, workers int, mapFn func(context.Context, T) (R, error)) ([]R, error) {
	out := make([]R, len(in))
	errGroup, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		errGroup.SetLimit(workers)
	}

	for idx, value := range in {
		idx, value := idx, value
		errGroup.Go(func() error {
			r, err := mapFn(ctx, value)
			if err != nil {
				return err
			}
			out[idx] = r
			return nil
		})
	}

	if err := errGroup.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
