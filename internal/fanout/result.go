package fanout

import (
	"fmt"
	"strings"
	"time"
)

// CountCompleted returns the number of tasks that ran to completion
func CountCompleted[Out any](results []Result[Out]) int {
	count := 0
	for _, r := range results {
		if r.State == StateCompleted {
			count++
		}
	}
	return count
}

// CountCancelled returns the number of tasks stopped by early termination
// or fail-fast
func CountCancelled[Out any](results []Result[Out]) int {
	count := 0
	for _, r := range results {
		if r.State == StateCancelled {
			count++
		}
	}
	return count
}

// CountFailed returns the number of tasks that ended with a genuine error
func CountFailed[Out any](results []Result[Out]) int {
	count := 0
	for _, r := range results {
		if r.State == StateFailed {
			count++
		}
	}
	return count
}

// Completed returns only the results of tasks that ran to completion,
// in index order.
func Completed[Out any](results []Result[Out]) []Result[Out] {
	filtered := make([]Result[Out], 0, len(results))
	for _, r := range results {
		if r.State == StateCompleted {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Values unwraps completed results into a value slice, in index order.
func Values[Out any](results []Result[Out]) []Out {
	values := make([]Out, 0, len(results))
	for _, r := range results {
		if r.State == StateCompleted {
			values = append(values, r.Value)
		}
	}
	return values
}

// Errors extracts the errors of all failed tasks
func Errors[Out any](results []Result[Out]) []error {
	errs := make([]error, 0)
	for _, r := range results {
		if r.State == StateFailed && r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errs
}

// MaxDuration returns the longest task duration among all results
func MaxDuration[Out any](results []Result[Out]) time.Duration {
	var max time.Duration
	for _, r := range results {
		if r.Duration > max {
			max = r.Duration
		}
	}
	return max
}

// Summary aggregates the task states of one fan-out run
type Summary struct {
	Total     int
	Completed int
	Cancelled int
	Failed    int
}

// Summarize creates a summary of the results
func Summarize[Out any](results []Result[Out]) Summary {
	return Summary{
		Total:     len(results),
		Completed: CountCompleted(results),
		Cancelled: CountCancelled(results),
		Failed:    CountFailed(results),
	}
}

// String returns a human-readable string representation of the summary
func (s Summary) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total: %d, ", s.Total))
	sb.WriteString(fmt.Sprintf("Completed: %d, ", s.Completed))
	sb.WriteString(fmt.Sprintf("Cancelled: %d, ", s.Cancelled))
	sb.WriteString(fmt.Sprintf("Failed: %d", s.Failed))
	return sb.String()
}
