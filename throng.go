package throng

import (
	"context"
)

// Source supplies the iterable collection for an adapter.
// Implement it on an owner type to make that type's backing collection the
// subject of the operations, instead of passing a materialized slice.
type Source[T any] interface {
	// Items returns the collection to process. It is called once at the
	// start of every operation; the returned slice is treated as read-only
	// for the duration of that operation.
	Items() []T
}

// Iter is a concurrent-operation adapter over an iterable collection.
//
// An Iter wraps any source of items and exposes the operation library
// (Each, Map, the predicates, the searches) on top of the bounded fan-out
// engine. The zero value is not usable; construct with New, FromFunc or
// FromSource.
//
// Options passed at construction form the adapter tier of the settings
// chain; options passed to individual operations form the call-site tier.
type Iter[T any] struct {
	source func() []T
	tier   Settings
}

// New creates an adapter over a materialized slice.
func New[T any](items []T, opts ...Option) *Iter[T] {
	return FromFunc(func() []T { return items }, opts...)
}

// FromFunc creates an adapter whose items are supplied by fn.
// fn is invoked once per operation, so a changing underlying collection is
// observed consistently within a single operation.
func FromFunc[T any](fn func() []T, opts ...Option) *Iter[T] {
	return &Iter[T]{
		source: fn,
		tier:   applyOptions(opts),
	}
}

// FromSource creates an adapter backed by an owner type's collection.
func FromSource[T any](src Source[T], opts ...Option) *Iter[T] {
	return FromFunc(src.Items, opts...)
}

// Items resolves and returns the current source collection.
func (it *Iter[T]) Items() []T {
	return it.source()
}

// Len returns the current number of items in the source.
func (it *Iter[T]) Len() int {
	return len(it.source())
}

// resolve snapshots the source and merges the settings tiers for one
// operation: process default, then adapter tier, then call-site options.
func (it *Iter[T]) resolve(opts []Option) ([]T, Settings) {
	return it.source(), Resolve(it.tier, applyOptions(opts))
}

// Predicate is a per-item test. It may block (the typical use is I/O) and
// should return promptly once ctx is cancelled; a test interrupted by
// cancellation contributes nothing to the operation's answer.
type Predicate[T any] func(ctx context.Context, item T) (bool, error)

// WorkFunc is a per-item unit of work with no produced value.
type WorkFunc[T any] func(ctx context.Context, item T) error

// MapFunc is a per-item transform producing one output value.
type MapFunc[T, R any] func(ctx context.Context, item T) (R, error)
