package throng

import (
	"context"

	"github.com/nkamat/throng/internal/fanout"
	"github.com/nkamat/throng/internal/quorum"
)

// Any reports whether pred holds for at least one item. Tests run
// concurrently; the first successful test fires early termination, so with
// a large enough collection not every item's test runs to completion.
//
// An empty collection yields false.
func (it *Iter[T]) Any(ctx context.Context, pred Predicate[T], opts ...Option) (bool, error) {
	items, set := it.resolve(opts)

	stop := fanout.NewSignal()
	found := quorum.NewFlag(stop)

	_, err := fanout.Run(ctx, items, set.Limit, func(ctx context.Context, item T) (struct{}, error) {
		ok, err := pred(ctx, item)
		if err != nil {
			return struct{}{}, err
		}
		if ok {
			found.Raise()
		}
		return struct{}{}, nil
	}, stop, set.Logger)
	if err != nil {
		return false, err
	}
	return found.Raised(), nil
}

// All reports whether pred holds for every item. The shared slot records
// "found a counterexample"; the first failing test fires early termination
// and the final answer is the slot's negation.
//
// An empty collection yields true.
func (it *Iter[T]) All(ctx context.Context, pred Predicate[T], opts ...Option) (bool, error) {
	items, set := it.resolve(opts)

	stop := fanout.NewSignal()
	counterexample := quorum.NewFlag(stop)

	_, err := fanout.Run(ctx, items, set.Limit, func(ctx context.Context, item T) (struct{}, error) {
		ok, err := pred(ctx, item)
		if err != nil {
			return struct{}{}, err
		}
		if !ok {
			counterexample.Raise()
		}
		return struct{}{}, nil
	}, stop, set.Logger)
	if err != nil {
		return false, err
	}
	return !counterexample.Raised(), nil
}

// None reports whether pred holds for no item. Defined as the negation of
// Any; there is no separate implementation.
func (it *Iter[T]) None(ctx context.Context, pred Predicate[T], opts ...Option) (bool, error) {
	any, err := it.Any(ctx, pred, opts...)
	if err != nil {
		return false, err
	}
	return !any, nil
}

// One reports whether pred holds for exactly one item. Matches increment a
// saturating counter; early termination fires as soon as the count exceeds
// one, because the answer is then already false. Cancellation may race the
// counter past one before every observer sees it, so the final answer is
// count == 1, never count >= 1.
func (it *Iter[T]) One(ctx context.Context, pred Predicate[T], opts ...Option) (bool, error) {
	items, set := it.resolve(opts)

	stop := fanout.NewSignal()
	matches := quorum.NewCounter(1, stop)

	_, err := fanout.Run(ctx, items, set.Limit, func(ctx context.Context, item T) (struct{}, error) {
		ok, err := pred(ctx, item)
		if err != nil {
			return struct{}{}, err
		}
		if ok {
			matches.Incr()
		}
		return struct{}{}, nil
	}, stop, set.Logger)
	if err != nil {
		return false, err
	}
	return matches.Count() == 1, nil
}

// Include reports whether target is a member of the collection, expressed
// as Any with an equality test.
func Include[T comparable](ctx context.Context, it *Iter[T], target T, opts ...Option) (bool, error) {
	return it.Any(ctx, func(_ context.Context, item T) (bool, error) {
		return item == target, nil
	}, opts...)
}

// Find returns some item satisfying pred, or the zero value and false when
// none does. Tests race concurrently and the first successful one wins the
// result slot, so the returned match is whichever satisfying element's test
// completed fastest, not necessarily the lowest-index one. Callers that
// need positional-first semantics should use FindSeq.
func (it *Iter[T]) Find(ctx context.Context, pred Predicate[T], opts ...Option) (T, bool, error) {
	var zero T

	items, set := it.resolve(opts)

	stop := fanout.NewSignal()
	slot := quorum.NewSlot[T](stop)

	_, err := fanout.Run(ctx, items, set.Limit, func(ctx context.Context, item T) (struct{}, error) {
		ok, err := pred(ctx, item)
		if err != nil {
			return struct{}{}, err
		}
		if ok {
			slot.Put(-1, item)
		}
		return struct{}{}, nil
	}, stop, set.Logger)
	if err != nil {
		return zero, false, err
	}

	value, _, found := slot.Get()
	if !found {
		return zero, false, nil
	}
	return value, true, nil
}

// FindIndex returns the source index of some item satisfying pred, or -1
// when none does. Like Find, the winning index is decided by completion
// order, not position.
func (it *Iter[T]) FindIndex(ctx context.Context, pred Predicate[T], opts ...Option) (int, error) {
	items, set := it.resolve(opts)

	// Fan out over indices so the work function can tag its CAS with the
	// source position of the match.
	indices := make([]int, len(items))
	for i := range indices {
		indices[i] = i
	}

	stop := fanout.NewSignal()
	slot := quorum.NewSlot[struct{}](stop)

	_, err := fanout.Run(ctx, indices, set.Limit, func(ctx context.Context, index int) (struct{}, error) {
		ok, err := pred(ctx, items[index])
		if err != nil {
			return struct{}{}, err
		}
		if ok {
			slot.Put(index, struct{}{})
		}
		return struct{}{}, nil
	}, stop, set.Logger)
	if err != nil {
		return -1, err
	}

	_, index, found := slot.Get()
	if !found {
		return -1, nil
	}
	return index, nil
}
