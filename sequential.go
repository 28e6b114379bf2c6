package throng

import (
	"context"
	"iter"
)

// The operations in this file deliberately bypass the executor: their
// semantics require strictly ordered short-circuiting, which concurrent
// execution cannot honor without breaking the "stop at the first false"
// contract.

// TakeWhile returns the longest prefix of items for which pred holds,
// evaluating the predicate strictly in order and stopping at the first
// item that fails it.
func (it *Iter[T]) TakeWhile(ctx context.Context, pred Predicate[T]) ([]T, error) {
	items := it.source()
	out := make([]T, 0, len(items))
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ok, err := pred(ctx, item)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		out = append(out, item)
	}
	return out, nil
}

// First returns the first item, or the zero value and false when the
// collection is empty.
func (it *Iter[T]) First() (T, bool) {
	items := it.source()
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return items[0], true
}

// Take returns a copy of the first n items, or all of them when the
// collection is shorter.
func (it *Iter[T]) Take(n int) []T {
	items := it.source()
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}
	out := make([]T, n)
	copy(out, items[:n])
	return out
}

// Lazy returns a pull-based view of the items for use with range-over-func
// loops. Iteration is strictly sequential and stops as soon as the loop
// body does.
func (it *Iter[T]) Lazy() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range it.source() {
			if !yield(item) {
				return
			}
		}
	}
}

// FindSeq returns the lowest-index item satisfying pred, testing items
// strictly in order with no concurrency. It is the positional-first
// alternative to Find for callers that need the earliest match rather
// than the fastest one.
func (it *Iter[T]) FindSeq(ctx context.Context, pred Predicate[T]) (T, int, error) {
	var zero T
	for i, item := range it.source() {
		if err := ctx.Err(); err != nil {
			return zero, -1, err
		}
		ok, err := pred(ctx, item)
		if err != nil {
			return zero, -1, err
		}
		if ok {
			return item, i, nil
		}
	}
	return zero, -1, nil
}
