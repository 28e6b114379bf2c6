package throng

import (
	"cmp"
	"context"
	"sort"
)

// Select returns, in source order, the items for which pred holds. The
// predicate runs concurrently under the configured limit; dropping the
// non-matching items is a sequential combine step on the collected flags.
func (it *Iter[T]) Select(ctx context.Context, pred Predicate[T], opts ...Option) ([]T, error) {
	// Snapshot the source once so the flags line up with the items even
	// when the adapter is backed by a changing FromFunc source.
	items := it.source()
	snap := &Iter[T]{source: func() []T { return items }, tier: it.tier}

	keeps, err := Map(ctx, snap, MapFunc[T, bool](pred), opts...)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(items))
	for i, keep := range keeps {
		if keep {
			out = append(out, items[i])
		}
	}
	return out, nil
}

// Reject returns, in source order, the items for which pred does not hold.
func (it *Iter[T]) Reject(ctx context.Context, pred Predicate[T], opts ...Option) ([]T, error) {
	return it.Select(ctx, func(ctx context.Context, item T) (bool, error) {
		ok, err := pred(ctx, item)
		return !ok, err
	}, opts...)
}

// Compact returns the items with zero values removed, preserving order.
// Purely synchronous; there is no user work function to parallelize.
func Compact[T comparable](it *Iter[T]) []T {
	var zero T
	items := it.Items()
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item != zero {
			out = append(out, item)
		}
	}
	return out
}

// Uniq returns the items with duplicates removed, keeping the first
// occurrence of each value. Purely synchronous.
func Uniq[T comparable](it *Iter[T]) []T {
	items := it.Items()
	seen := make(map[T]bool, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}

// Sort returns a sorted copy of the items using less. The comparison is
// synchronous; use SortBy when the sort key is expensive to compute and
// worth extracting concurrently.
func (it *Iter[T]) Sort(less func(a, b T) bool) []T {
	items := it.Items()
	out := make([]T, len(items))
	copy(out, items)
	sort.Slice(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out
}

// SortBy returns the items sorted by a key extracted with fn. Key
// extraction fans out under the configured limit; the sort itself is a
// sequential combine step over the materialized keys.
func SortBy[T any, K cmp.Ordered](ctx context.Context, it *Iter[T], fn MapFunc[T, K], opts ...Option) ([]T, error) {
	items := it.source()
	snap := &Iter[T]{source: func() []T { return items }, tier: it.tier}

	keys, err := Map(ctx, snap, fn, opts...)
	if err != nil {
		return nil, err
	}

	out := make([]T, len(items))
	copy(out, items)
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return keys[order[i]] < keys[order[j]]
	})

	sorted := make([]T, len(out))
	for pos, idx := range order {
		sorted[pos] = out[idx]
	}
	return sorted, nil
}
