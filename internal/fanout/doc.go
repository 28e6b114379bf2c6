// Package fanout implements the bounded task fan-out executor at the heart
// of the engine.
//
// Run launches one goroutine per input item, gated by a counting semaphore
// so that at most the configured limit of tasks is in flight at any moment,
// and blocks until every dispatched task has reached a terminal state.
//
// # Key Properties
//
//   - Bounded concurrency: never more than limit simultaneous tasks
//   - Index-tagged results: completions are unordered, the Index tag lets
//     callers reassemble source order
//   - Early termination: a Signal stops dispatch and cancels in-flight
//     tasks the moment a coordinator knows the final answer
//   - Fail-fast: the first genuine task error cancels all siblings and is
//     surfaced to the caller; later errors lose the race and are dropped
//   - Cancellation is not failure: tasks stopped by early termination or
//     fail-fast end as StateCancelled and never appear as errors
//   - Zero goroutine leaks: Run joins every task it started
//
// # Basic Usage
//
//	results, err := fanout.Run(ctx, items, 8,
//	    func(ctx context.Context, item string) (int, error) {
//	        return fetch(ctx, item)
//	    }, nil, logger)
//
// # Early Termination
//
// Predicate-style callers pair Run with a Signal and fire it from inside
// the work function once the answer is determined:
//
//	stop := fanout.NewSignal()
//	results, err := fanout.Run(ctx, items, 8, work, stop, logger)
//
// # Concurrency Guarantees
//
// Each task writes only its own result slot, so result collection needs no
// locking; the executor's only shared state is the semaphore's slot count
// and the one-shot stop signal, both updated with atomic operations.
package fanout
