package fanout

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nkamat/throng/internal/util"
)

// State is the terminal state of a task
type State int32

const (
	// StatePending means the task was never dispatched
	StatePending State = iota
	// StateCompleted means the task's work function returned without error
	StateCompleted
	// StateCancelled means the task was stopped by early termination or
	// fail-fast before (or while) running; not a failure
	StateCancelled
	// StateFailed means the task's work function returned a genuine error
	StateFailed
)

// String returns a human-readable state name
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateCompleted:
		return "completed"
	case StateCancelled:
		return "cancelled"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Func is the unit of work executed once per item.
// It must respect ctx cancellation; a Func interrupted by cancellation is
// recorded as cancelled, not failed.
type Func[In, Out any] func(ctx context.Context, item In) (Out, error)

// Result is the outcome of a single task, tagged with the source index of
// its item. The executor itself makes no ordering guarantee among
// completions; callers that need order use the Index tag.
type Result[Out any] struct {
	// Index is the item's position in the input sequence
	Index int

	// Value is the work function's output (zero unless StateCompleted)
	Value Out

	// State is the task's terminal state
	State State

	// Err is the genuine error for StateFailed results
	Err error

	// Duration is how long the task ran
	Duration time.Duration
}

// firstError records the first genuine task error via CAS so that
// concurrent failures race safely; the winner triggers fail-fast.
type firstError struct {
	index int
	err   error
}

// Run executes work once per item with at most limit tasks in flight.
//
// A counting semaphore of capacity limit gates dispatch: one slot is
// acquired before a task starts and released when it finishes, success or
// failure. Run blocks until every dispatched task has reached a terminal
// state.
//
// If stop is non-nil and fires, Run stops dispatching new tasks and cancels
// the in-flight ones; tasks that observe the cancellation end as
// StateCancelled and Run returns a nil error, because early termination
// means the caller's answer is already known. A genuine error from any task
// takes the same cancellation path but is surfaced to the caller, wrapped
// with the failing item's index; the first error wins when several occur
// concurrently.
//
// A limit <= 0 or an empty item sequence returns immediately with an empty
// result set and no tasks spawned.
func Run[In, Out any](ctx context.Context, items []In, limit int, work Func[In, Out], stop *Signal, logger *slog.Logger) ([]Result[Out], error) {
	if logger == nil {
		logger = slog.Default()
	}

	n := len(items)
	if n == 0 || limit <= 0 {
		logger.Debug("fan-out skipped", "items", n, "limit", limit)
		return []Result[Out]{}, nil
	}
	if limit > n {
		// No point holding more slots than items
		limit = n
	}

	logger.Debug("starting fan-out", "items", n, "limit", limit, "early_stop", stop != nil)
	started := time.Now()

	// runCtx is cancelled on early stop or the first genuine error; tasks
	// observe it as their work context.
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Translate the early-stop signal into context cancellation for
	// in-flight tasks.
	if stop != nil {
		watchDone := make(chan struct{})
		defer close(watchDone)
		go func() {
			select {
			case <-stop.Done():
				cancel()
			case <-watchDone:
			}
		}()
	}

	var firstErr atomic.Pointer[firstError]
	fail := func(index int, err error) {
		if firstErr.CompareAndSwap(nil, &firstError{index: index, err: err}) {
			logger.Debug("task failed, cancelling siblings", "index", index, "error", err)
			cancel()
		}
	}

	// Results are slotted by task index; each goroutine writes only its own
	// slot, so no lock is needed. Slots of never-dispatched tasks keep
	// StatePending until the final sweep below.
	results := make([]Result[Out], n)
	for i := range results {
		results[i].Index = i
	}

	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup

	var stopCh <-chan struct{}
	if stop != nil {
		stopCh = stop.Done()
	}

dispatch:
	for i := range items {
		// Acquire a slot before dispatching; stop dispatching entirely once
		// the answer is known or a sibling failed.
		select {
		case <-stopCh:
			break dispatch
		case <-runCtx.Done():
			break dispatch
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(index int, item In) {
			defer wg.Done()
			defer func() { <-sem }()

			// The slot may have been acquired just as the run was stopped
			if runCtx.Err() != nil {
				results[index].State = StateCancelled
				return
			}

			taskStart := time.Now()
			value, err := work(runCtx, item)
			results[index].Duration = time.Since(taskStart)

			switch {
			case err == nil:
				results[index].Value = value
				results[index].State = StateCompleted
			case isCancellation(err, runCtx):
				results[index].State = StateCancelled
			default:
				results[index].State = StateFailed
				results[index].Err = err
				fail(index, err)
			}
		}(i, items[i])
	}

	wg.Wait()

	// Tasks never dispatched because dispatch stopped early are cancelled,
	// not pending, from the caller's point of view.
	for i := range results {
		if results[i].State == StatePending {
			results[i].State = StateCancelled
		}
	}

	summary := Summarize(results)
	logger.Debug("fan-out finished",
		"items", n,
		"completed", summary.Completed,
		"cancelled", summary.Cancelled,
		"failed", summary.Failed,
		"duration", time.Since(started))

	// Early termination is a success path even when it races with other
	// outcomes: the coordinator only fires once the answer is known.
	if stop != nil && stop.Fired() {
		return results, nil
	}

	if fe := firstErr.Load(); fe != nil {
		return results, util.WrapItemError(fe.index, fe.err)
	}

	// The caller's own context cancellation is not an answer; report it.
	if err := ctx.Err(); err != nil {
		return results, err
	}

	return results, nil
}

// isCancellation reports whether a task error is a cooperative-cancellation
// outcome rather than a genuine failure.
func isCancellation(err error, runCtx context.Context) bool {
	if errors.Is(err, util.ErrCancelled) {
		return true
	}
	if errors.Is(err, context.Canceled) && runCtx.Err() != nil {
		return true
	}
	return false
}
