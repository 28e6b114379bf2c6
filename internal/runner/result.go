package runner

import (
	"fmt"
	"strings"
	"time"
)

// CountSuccessful returns the number of successful results (no error)
func CountSuccessful(results []Result) int {
	count := 0
	for _, r := range results {
		if r.Err == nil {
			count++
		}
	}
	return count
}

// CountFailed returns the number of failed results (has error)
func CountFailed(results []Result) int {
	count := 0
	for _, r := range results {
		if r.Err != nil {
			count++
		}
	}
	return count
}

// FilterSuccessful returns only the successful results
func FilterSuccessful(results []Result) []Result {
	filtered := make([]Result, 0, len(results))
	for _, r := range results {
		if r.Err == nil {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// FilterFailed returns only the failed results
func FilterFailed(results []Result) []Result {
	filtered := make([]Result, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Errors extracts all errors from results
func Errors(results []Result) []error {
	errs := make([]error, 0)
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("item %q: %w", r.Item, r.Err))
		}
	}
	return errs
}

// HasErrors returns true if any results contain errors
func HasErrors(results []Result) bool {
	for _, r := range results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// AverageDuration calculates the average duration of all results
func AverageDuration(results []Result) time.Duration {
	if len(results) == 0 {
		return 0
	}

	var total time.Duration
	for _, r := range results {
		total += r.Duration
	}
	return total / time.Duration(len(results))
}

// MaxDuration returns the maximum duration among all results
func MaxDuration(results []Result) time.Duration {
	var max time.Duration
	for _, r := range results {
		if r.Duration > max {
			max = r.Duration
		}
	}
	return max
}

// Summary provides a summary of a run
type Summary struct {
	Total       int
	Successful  int
	Failed      int
	AvgDuration time.Duration
	MaxDuration time.Duration
}

// Summarize creates a summary of the results
func Summarize(results []Result) Summary {
	return Summary{
		Total:       len(results),
		Successful:  CountSuccessful(results),
		Failed:      CountFailed(results),
		AvgDuration: AverageDuration(results),
		MaxDuration: MaxDuration(results),
	}
}

// String returns a human-readable string representation of the summary
func (s Summary) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total: %d, ", s.Total))
	sb.WriteString(fmt.Sprintf("Successful: %d, ", s.Successful))
	sb.WriteString(fmt.Sprintf("Failed: %d", s.Failed))
	if s.Total > 0 {
		sb.WriteString(fmt.Sprintf(", Avg: %s", s.AvgDuration.Round(time.Millisecond)))
		sb.WriteString(fmt.Sprintf(", Max: %s", s.MaxDuration.Round(time.Millisecond)))
	}
	return sb.String()
}
