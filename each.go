package throng

import (
	"context"

	"github.com/nkamat/throng/internal/fanout"
)

// Each runs fn once per item under the configured concurrency limit and
// waits for all of them. There is no early stop: every item's work runs
// unless a genuine error triggers fail-fast or ctx is cancelled.
//
// The adapter itself is returned so calls can be chained; per-item results
// are discarded.
func (it *Iter[T]) Each(ctx context.Context, fn WorkFunc[T], opts ...Option) (*Iter[T], error) {
	items, set := it.resolve(opts)

	_, err := fanout.Run(ctx, items, set.Limit, func(ctx context.Context, item T) (struct{}, error) {
		return struct{}{}, fn(ctx, item)
	}, nil, set.Logger)
	if err != nil {
		return it, err
	}
	return it, nil
}

// Map applies fn to every item concurrently and returns the outputs in
// source order, regardless of completion order: each task is tagged with
// its source index and the outputs are reassembled by that tag after the
// fan-out completes.
//
// On the first genuine error the remaining tasks are cancelled and the
// error is returned; Map never returns a partial result.
func Map[T, R any](ctx context.Context, it *Iter[T], fn MapFunc[T, R], opts ...Option) ([]R, error) {
	items, set := it.resolve(opts)

	results, err := fanout.Run(ctx, items, set.Limit, fanout.Func[T, R](fn), nil, set.Logger)
	if err != nil {
		return nil, err
	}

	// Results come back slotted by source index; unwrap in order.
	out := make([]R, len(results))
	for _, r := range results {
		out[r.Index] = r.Value
	}
	return out, nil
}

// FilterMap applies fn to every item concurrently and keeps, in source
// order, the outputs for which fn reported keep=true.
func FilterMap[T, R any](ctx context.Context, it *Iter[T], fn func(ctx context.Context, item T) (R, bool, error), opts ...Option) ([]R, error) {
	type kept struct {
		value R
		keep  bool
	}

	items, set := it.resolve(opts)

	results, err := fanout.Run(ctx, items, set.Limit, func(ctx context.Context, item T) (kept, error) {
		value, keep, err := fn(ctx, item)
		return kept{value: value, keep: keep}, err
	}, nil, set.Logger)
	if err != nil {
		return nil, err
	}

	out := make([]R, 0, len(results))
	for _, r := range results {
		if r.Value.keep {
			out = append(out, r.Value.value)
		}
	}
	return out, nil
}

// FlatMap applies fn to every item concurrently and concatenates the
// resulting slices in source order.
func FlatMap[T, R any](ctx context.Context, it *Iter[T], fn func(ctx context.Context, item T) ([]R, error), opts ...Option) ([]R, error) {
	groups, err := Map(ctx, it, fn, opts...)
	if err != nil {
		return nil, err
	}

	out := make([]R, 0, len(groups))
	for _, group := range groups {
		out = append(out, group...)
	}
	return out, nil
}
