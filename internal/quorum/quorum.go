// Package quorum provides the shared result state for short-circuiting
// operations: small atomic slots that racing tasks update via
// compare-and-swap, each wired to an early-stop signal that fires the
// instant the final answer is known.
//
// Every slot tolerates writes that arrive after cancellation has started
// propagating; once set, a slot's answer never changes for the remainder
// of the operation.
package quorum

import (
	"sync/atomic"

	"github.com/nkamat/throng/internal/fanout"
)

// Flag is a first-writer-wins boolean slot. Raising it fires the stop
// signal; it can never be lowered again within the same operation.
//
// Any-style predicates raise it on the first matching item; all-style
// predicates raise it on the first counterexample and negate the answer.
type Flag struct {
	set  atomic.Bool
	stop *fanout.Signal
}

// NewFlag creates an unraised flag wired to stop.
func NewFlag(stop *fanout.Signal) *Flag {
	return &Flag{stop: stop}
}

// Raise sets the flag and fires the stop signal. Only the first caller
// actually raises it; the return value reports whether this caller won.
func (f *Flag) Raise() bool {
	if f.set.CompareAndSwap(false, true) {
		f.stop.Fire()
		return true
	}
	return false
}

// Raised reports whether the flag has been raised.
func (f *Flag) Raised() bool {
	return f.set.Load()
}

// Counter is a saturating match counter for one-style predicates. The stop
// signal fires as soon as the count exceeds the threshold, because at that
// point the answer can no longer be "exactly threshold". Cancellation is
// allowed to race past the threshold, so readers must compare for equality,
// never >=.
type Counter struct {
	n         atomic.Int64
	threshold int64
	stop      *fanout.Signal
}

// NewCounter creates a counter that fires stop once the count exceeds
// threshold.
func NewCounter(threshold int64, stop *fanout.Signal) *Counter {
	return &Counter{threshold: threshold, stop: stop}
}

// Incr records one match and returns the new count.
func (c *Counter) Incr() int64 {
	v := c.n.Add(1)
	if v > c.threshold {
		c.stop.Fire()
	}
	return v
}

// Count returns the current match count.
func (c *Counter) Count() int64 {
	return c.n.Load()
}

// slotEntry pairs a found value with the source index it came from
type slotEntry[T any] struct {
	index int
	value T
}

// Slot is a single-assignment reference for find-style searches. The first
// task to Put wins, regardless of its source index: the recorded match is
// whichever satisfying element's test completed fastest, not necessarily
// the lowest-index one.
type Slot[T any] struct {
	entry atomic.Pointer[slotEntry[T]]
	stop  *fanout.Signal
}

// NewSlot creates an empty slot wired to stop.
func NewSlot[T any](stop *fanout.Signal) *Slot[T] {
	return &Slot[T]{stop: stop}
}

// Put records a found value via CAS and fires the stop signal. Returns true
// for the single winning writer.
func (s *Slot[T]) Put(index int, value T) bool {
	if s.entry.CompareAndSwap(nil, &slotEntry[T]{index: index, value: value}) {
		s.stop.Fire()
		return true
	}
	return false
}

// Get returns the recorded value, its source index, and whether the slot
// has been written.
func (s *Slot[T]) Get() (T, int, bool) {
	if e := s.entry.Load(); e != nil {
		return e.value, e.index, true
	}
	var zero T
	return zero, -1, false
}
