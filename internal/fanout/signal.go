package fanout

import (
	"sync/atomic"
)

// Signal is a one-shot early-stop signal shared between an executor run and
// the coordinator driving it. Firing is idempotent and safe from any number
// of racing tasks; the first CompareAndSwap wins and closes the done
// channel, every later Fire is a no-op.
type Signal struct {
	fired atomic.Bool
	done  chan struct{}
}

// NewSignal creates an unfired signal.
func NewSignal() *Signal {
	return &Signal{
		done: make(chan struct{}),
	}
}

// Fire fires the signal. Returns true for the single caller that actually
// fired it, false for everyone who lost the race or fired after.
func (s *Signal) Fire() bool {
	if s.fired.CompareAndSwap(false, true) {
		close(s.done)
		return true
	}
	return false
}

// Fired reports whether the signal has fired.
func (s *Signal) Fired() bool {
	return s.fired.Load()
}

// Done returns a channel closed when the signal fires.
func (s *Signal) Done() <-chan struct{} {
	return s.done
}
