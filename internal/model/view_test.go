package model

import (
	"testing"
	"time"
)

var testNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func sampleCountdowns() []Countdown {
	return []Countdown{
		{ID: 1, Title: "expired high", TargetDate: testNow.Add(-2 * time.Hour), Priority: PriorityHigh},
		{ID: 2, Title: "soon medium", TargetDate: testNow.Add(time.Hour), Priority: PriorityMedium},
		{ID: 3, Title: "later high", TargetDate: testNow.Add(48 * time.Hour), Priority: PriorityHigh},
		{ID: 4, Title: "expired medium", TargetDate: testNow.Add(-5 * time.Hour), Priority: PriorityMedium},
		{ID: 5, Title: "middle low", TargetDate: testNow.Add(5 * time.Hour), Priority: PriorityLow},
	}
}

func ids(countdowns []Countdown) []int64 {
	out := make([]int64, 0, len(countdowns))
	for _, c := range countdowns {
		out = append(out, c.ID)
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestView(t *testing.T) {
	tests := []struct {
		filter   Filter
		expected []int64
	}{
		{FilterAll, []int64{2, 5, 3, 4, 1}},
		{FilterActive, []int64{2, 5, 3}},
		{FilterExpired, []int64{4, 1}},
		{FilterHigh, []int64{3, 1}},
		{FilterMedium, []int64{2, 4}},
		{FilterLow, []int64{5}},
	}

	for _, test := range tests {
		result := ids(View(sampleCountdowns(), test.filter, testNow))
		if !equalIDs(result, test.expected) {
			t.Errorf("View(%s) = %v, expected %v", test.filter, result, test.expected)
		}
	}
}

func TestView_HighReturnsOnlyHigh(t *testing.T) {
	view := View(sampleCountdowns(), FilterHigh, testNow)

	if len(view) != 2 {
		t.Fatalf("Expected 2 high priority countdowns, got %d", len(view))
	}
	for _, c := range view {
		if c.Priority != PriorityHigh {
			t.Errorf("Expected priority high, got %s for %d", c.Priority, c.ID)
		}
	}
}

func TestView_DoesNotMutateInput(t *testing.T) {
	input := sampleCountdowns()
	View(input, FilterAll, testNow)

	if !equalIDs(ids(input), []int64{1, 2, 3, 4, 5}) {
		t.Errorf("View reordered its input: %v", ids(input))
	}
}

func TestSortForDisplay_Idempotent(t *testing.T) {
	view := View(sampleCountdowns(), FilterAll, testNow)
	first := ids(view)

	SortForDisplay(view, testNow)
	if !equalIDs(ids(view), first) {
		t.Errorf("Sorting a sorted view changed order: %v -> %v", first, ids(view))
	}
}

func TestSortForDisplay_TieBreaksByID(t *testing.T) {
	target := testNow.Add(time.Hour)
	countdowns := []Countdown{
		{ID: 30, TargetDate: target},
		{ID: 10, TargetDate: target},
		{ID: 20, TargetDate: target},
	}

	SortForDisplay(countdowns, testNow)
	if !equalIDs(ids(countdowns), []int64{10, 20, 30}) {
		t.Errorf("Expected ties ordered by id, got %v", ids(countdowns))
	}
}

func TestSortForDisplay_ExpiryBoundary(t *testing.T) {
	countdowns := []Countdown{
		{ID: 1, TargetDate: testNow},
		{ID: 2, TargetDate: testNow.Add(time.Millisecond)},
	}

	SortForDisplay(countdowns, testNow)
	if !equalIDs(ids(countdowns), []int64{2, 1}) {
		t.Errorf("Countdown at now should sort as expired, got %v", ids(countdowns))
	}
}

func TestParseFilter(t *testing.T) {
	for _, f := range Filters() {
		parsed, err := ParseFilter(string(f))
		if err != nil {
			t.Errorf("ParseFilter(%s) returned error %v", f, err)
		}
		if parsed != f {
			t.Errorf("ParseFilter(%s) = %s", f, parsed)
		}
	}

	parsed, err := ParseFilter("soon")
	if err == nil {
		t.Error("Expected error for unknown filter, got nil")
	}
	if parsed != FilterAll {
		t.Errorf("Unknown filter should fall back to all, got %s", parsed)
	}
}

func TestComputeStats(t *testing.T) {
	stats := ComputeStats(sampleCountdowns(), testNow)
	expected := Stats{Total: 5, Active: 3, Expired: 2, High: 2, Medium: 2, Low: 1}

	if stats != expected {
		t.Errorf("ComputeStats() = %+v, expected %+v", stats, expected)
	}
}
