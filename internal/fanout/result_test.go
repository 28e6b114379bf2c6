package fanout

import (
	"errors"
	"testing"
	"time"
)

func sampleResults() []Result[int] {
	return []Result[int]{
		{Index: 0, Value: 10, State: StateCompleted, Duration: 10 * time.Millisecond},
		{Index: 1, State: StateCancelled, Duration: time.Millisecond},
		{Index: 2, State: StateFailed, Err: errors.New("boom"), Duration: 5 * time.Millisecond},
		{Index: 3, Value: 40, State: StateCompleted, Duration: 30 * time.Millisecond},
	}
}

func TestCounts(t *testing.T) {
	results := sampleResults()

	if got := CountCompleted(results); got != 2 {
		t.Errorf("CountCompleted = %d, want 2", got)
	}
	if got := CountCancelled(results); got != 1 {
		t.Errorf("CountCancelled = %d, want 1", got)
	}
	if got := CountFailed(results); got != 1 {
		t.Errorf("CountFailed = %d, want 1", got)
	}
}

func TestValues(t *testing.T) {
	values := Values(sampleResults())

	if len(values) != 2 {
		t.Fatalf("expected 2 values, got %d", len(values))
	}
	if values[0] != 10 || values[1] != 40 {
		t.Errorf("Values = %v, want [10 40]", values)
	}
}

func TestCompleted(t *testing.T) {
	completed := Completed(sampleResults())

	if len(completed) != 2 {
		t.Fatalf("expected 2 completed results, got %d", len(completed))
	}
	for _, r := range completed {
		if r.State != StateCompleted {
			t.Errorf("result %d state = %s, want completed", r.Index, r.State)
		}
	}
}

func TestErrors(t *testing.T) {
	errs := Errors(sampleResults())

	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
	if errs[0].Error() != "boom" {
		t.Errorf("unexpected error %v", errs[0])
	}
}

func TestMaxDuration(t *testing.T) {
	if got := MaxDuration(sampleResults()); got != 30*time.Millisecond {
		t.Errorf("MaxDuration = %s, want 30ms", got)
	}
	if got := MaxDuration([]Result[int]{}); got != 0 {
		t.Errorf("MaxDuration(empty) = %s, want 0", got)
	}
}

func TestSummarize(t *testing.T) {
	summary := Summarize(sampleResults())

	if summary.Total != 4 {
		t.Errorf("Total = %d, want 4", summary.Total)
	}
	if summary.Completed != 2 {
		t.Errorf("Completed = %d, want 2", summary.Completed)
	}
	if summary.Cancelled != 1 {
		t.Errorf("Cancelled = %d, want 1", summary.Cancelled)
	}
	if summary.Failed != 1 {
		t.Errorf("Failed = %d, want 1", summary.Failed)
	}

	s := summary.String()
	if s != "Total: 4, Completed: 2, Cancelled: 1, Failed: 1" {
		t.Errorf("unexpected summary string %q", s)
	}
}
