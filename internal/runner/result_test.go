package runner

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func sampleResults() []Result {
	return []Result{
		{Index: 0, Item: "a", Output: "ok", Duration: 10 * time.Millisecond},
		{Index: 1, Item: "b", Err: errors.New("exit status 1"), Duration: 20 * time.Millisecond},
		{Index: 2, Item: "c", Output: "ok", Duration: 30 * time.Millisecond},
		{Index: 3, Item: "d", Err: errors.New("exit status 2"), Duration: 40 * time.Millisecond},
	}
}

func TestCountSuccessful(t *testing.T) {
	if got := CountSuccessful(sampleResults()); got != 2 {
		t.Errorf("CountSuccessful = %d, want 2", got)
	}
	if got := CountSuccessful(nil); got != 0 {
		t.Errorf("CountSuccessful(nil) = %d, want 0", got)
	}
}

func TestCountFailed(t *testing.T) {
	if got := CountFailed(sampleResults()); got != 2 {
		t.Errorf("CountFailed = %d, want 2", got)
	}
}

func TestFilterSuccessful(t *testing.T) {
	got := FilterSuccessful(sampleResults())
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2", len(got))
	}
	for _, r := range got {
		if r.Err != nil {
			t.Errorf("item %q has an error: %v", r.Item, r.Err)
		}
	}
}

func TestFilterFailed(t *testing.T) {
	got := FilterFailed(sampleResults())
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2", len(got))
	}
	for _, r := range got {
		if r.Err == nil {
			t.Errorf("item %q has no error", r.Item)
		}
	}
}

func TestErrors(t *testing.T) {
	errs := Errors(sampleResults())
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2", len(errs))
	}
	if !strings.Contains(errs[0].Error(), `"b"`) {
		t.Errorf("error does not name the item: %v", errs[0])
	}
}

func TestHasErrors(t *testing.T) {
	if !HasErrors(sampleResults()) {
		t.Error("HasErrors = false, want true")
	}
	clean := []Result{{Item: "a"}, {Item: "b"}}
	if HasErrors(clean) {
		t.Error("HasErrors on clean results = true, want false")
	}
}

func TestAverageDuration(t *testing.T) {
	if got := AverageDuration(sampleResults()); got != 25*time.Millisecond {
		t.Errorf("AverageDuration = %s, want 25ms", got)
	}
	if got := AverageDuration(nil); got != 0 {
		t.Errorf("AverageDuration(nil) = %s, want 0", got)
	}
}

func TestMaxDuration(t *testing.T) {
	if got := MaxDuration(sampleResults()); got != 40*time.Millisecond {
		t.Errorf("MaxDuration = %s, want 40ms", got)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleResults())
	if s.Total != 4 || s.Successful != 2 || s.Failed != 2 {
		t.Errorf("Summarize = %+v", s)
	}
	if s.AvgDuration != 25*time.Millisecond || s.MaxDuration != 40*time.Millisecond {
		t.Errorf("Summarize durations = %+v", s)
	}
}

func TestSummaryString(t *testing.T) {
	s := Summarize(sampleResults())
	str := s.String()
	for _, want := range []string{"Total: 4", "Successful: 2", "Failed: 2", "Avg:", "Max:"} {
		if !strings.Contains(str, want) {
			t.Errorf("summary %q missing %q", str, want)
		}
	}

	empty := Summarize(nil)
	if strings.Contains(empty.String(), "Avg:") {
		t.Errorf("empty summary should omit durations: %q", empty.String())
	}
}
