package throng

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func rangeItems(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func TestAny(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		pred  func(int) bool
		want  bool
	}{
		{
			name:  "match present",
			items: rangeItems(20),
			pred:  func(n int) bool { return n > 5 },
			want:  true,
		},
		{
			name:  "no match",
			items: rangeItems(10),
			pred:  func(n int) bool { return n > 100 },
			want:  false,
		},
		{
			name:  "empty input",
			items: nil,
			pred:  func(n int) bool { return true },
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := New(tt.items, WithLimit(2))
			got, err := it.Any(context.Background(), func(ctx context.Context, n int) (bool, error) {
				return tt.pred(n), nil
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Any = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAny_EarlyTerminationLiveness(t *testing.T) {
	// items 1..20, limit 2, pred n > 5: the answer is known well before
	// the collection is exhausted, so some work must observe cancellation.
	items := rangeItems(20)
	it := New(items, WithLimit(2))

	var completed atomic.Int32

	got, err := it.Any(context.Background(), func(ctx context.Context, n int) (bool, error) {
		select {
		case <-time.After(2 * time.Millisecond):
		case <-ctx.Done():
			return false, ctx.Err()
		}
		completed.Add(1)
		return n > 5, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Error("Any = false, want true")
	}
	if int(completed.Load()) >= len(items) {
		t.Errorf("expected early termination, but all %d completed", completed.Load())
	}
}

func TestAll(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		pred  func(int) bool
		want  bool
	}{
		{
			name:  "all hold",
			items: rangeItems(10),
			pred:  func(n int) bool { return n > 0 },
			want:  true,
		},
		{
			name:  "counterexample",
			items: rangeItems(10),
			pred:  func(n int) bool { return n != 7 },
			want:  false,
		},
		{
			name:  "empty input",
			items: nil,
			pred:  func(n int) bool { return false },
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := New(tt.items, WithLimit(3))
			got, err := it.All(context.Background(), func(ctx context.Context, n int) (bool, error) {
				return tt.pred(n), nil
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("All = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNone(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		pred  func(int) bool
		want  bool
	}{
		{
			name:  "no match",
			items: rangeItems(10),
			pred:  func(n int) bool { return n > 100 },
			want:  true,
		},
		{
			name:  "match present",
			items: rangeItems(10),
			pred:  func(n int) bool { return n == 4 },
			want:  false,
		},
		{
			name:  "empty input",
			items: nil,
			pred:  func(n int) bool { return true },
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := New(tt.items, WithLimit(2))
			got, err := it.None(context.Background(), func(ctx context.Context, n int) (bool, error) {
				return tt.pred(n), nil
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("None = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOne(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		pred  func(int) bool
		want  bool
	}{
		{
			name:  "exactly one match",
			items: rangeItems(10),
			pred:  func(n int) bool { return n == 4 },
			want:  true,
		},
		{
			name: "several matches",
			// pred matches 6..10; the counter races past 1 and the answer
			// must be count == 1, never count >= 1
			items: rangeItems(10),
			pred:  func(n int) bool { return n > 5 },
			want:  false,
		},
		{
			name:  "no match",
			items: rangeItems(10),
			pred:  func(n int) bool { return n > 100 },
			want:  false,
		},
		{
			name:  "empty input",
			items: nil,
			pred:  func(n int) bool { return true },
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := New(tt.items, WithLimit(2))
			got, err := it.One(context.Background(), func(ctx context.Context, n int) (bool, error) {
				return tt.pred(n), nil
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("One = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInclude(t *testing.T) {
	it := New([]string{"alpha", "beta", "gamma"}, WithLimit(2))

	got, err := Include(context.Background(), it, "beta")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Error("Include(beta) = false, want true")
	}

	got, err = Include(context.Background(), it, "delta")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got {
		t.Error("Include(delta) = true, want false")
	}
}

func TestFind(t *testing.T) {
	items := rangeItems(50)
	it := New(items, WithLimit(4))

	value, found, err := it.Find(context.Background(), func(ctx context.Context, n int) (bool, error) {
		return n%10 == 0, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found {
		t.Fatal("Find found nothing")
	}
	// The winner is whichever satisfying test finished first; it must
	// satisfy the predicate but need not be the lowest value.
	if value%10 != 0 {
		t.Errorf("Find returned %d, which does not satisfy the predicate", value)
	}
}

func TestFind_NoMatch(t *testing.T) {
	it := New(rangeItems(10), WithLimit(2))

	value, found, err := it.Find(context.Background(), func(ctx context.Context, n int) (bool, error) {
		return false, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Errorf("Find on no match = (%d, true), want (0, false)", value)
	}
	if value != 0 {
		t.Errorf("Find should return the zero value, got %d", value)
	}
}

func TestFindIndex(t *testing.T) {
	items := []string{"a", "b", "needle", "d", "needle"}
	it := New(items, WithLimit(2))

	index, err := it.FindIndex(context.Background(), func(ctx context.Context, s string) (bool, error) {
		return s == "needle", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if index != 2 && index != 4 {
		t.Errorf("FindIndex = %d, want an index of a satisfying element", index)
	}
}

func TestFindIndex_NoMatch(t *testing.T) {
	it := New([]string{"a", "b"}, WithLimit(2))

	index, err := it.FindIndex(context.Background(), func(ctx context.Context, s string) (bool, error) {
		return false, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if index != -1 {
		t.Errorf("FindIndex = %d, want -1", index)
	}
}

func TestPredicate_ErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	it := New(rangeItems(10), WithLimit(2))

	_, err := it.Any(context.Background(), func(ctx context.Context, n int) (bool, error) {
		if n == 3 {
			return false, boom
		}
		return false, nil
	})
	if !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}
}

func TestPredicate_MatchesSequentialSemantics(t *testing.T) {
	// The boolean answers must agree with a plain sequential evaluation
	// for every limit.
	items := rangeItems(25)
	pred := func(n int) bool { return n%7 == 0 }

	seqAny, seqAll, seqNone := false, true, true
	matches := 0
	for _, n := range items {
		if pred(n) {
			seqAny = true
			seqNone = false
			matches++
		} else {
			seqAll = false
		}
	}
	seqOne := matches == 1

	for _, limit := range []int{1, 3, 25} {
		it := New(items, WithLimit(limit))
		p := func(ctx context.Context, n int) (bool, error) { return pred(n), nil }

		if got, _ := it.Any(context.Background(), p); got != seqAny {
			t.Errorf("limit %d: Any = %v, want %v", limit, got, seqAny)
		}
		if got, _ := it.All(context.Background(), p); got != seqAll {
			t.Errorf("limit %d: All = %v, want %v", limit, got, seqAll)
		}
		if got, _ := it.None(context.Background(), p); got != seqNone {
			t.Errorf("limit %d: None = %v, want %v", limit, got, seqNone)
		}
		if got, _ := it.One(context.Background(), p); got != seqOne {
			t.Errorf("limit %d: One = %v, want %v", limit, got, seqOne)
		}
	}
}
