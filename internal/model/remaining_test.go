package model

import (
	"testing"
	"time"
)

func TestTimeRemaining(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		delta    time.Duration
		expected Remaining
	}{
		{"one of each", 90061000 * time.Millisecond, Remaining{Days: 1, Hours: 1, Minutes: 1, Seconds: 1}},
		{"past", -1000 * time.Millisecond, Remaining{Expired: true}},
		{"exactly now", 0, Remaining{Expired: true}},
		{"sub-second floors to zero", 999 * time.Millisecond, Remaining{}},
		{"just under a minute", 59999 * time.Millisecond, Remaining{Seconds: 59}},
		{"whole day", 24 * time.Hour, Remaining{Days: 1}},
		{"many days", 400*24*time.Hour + 23*time.Hour + 59*time.Minute + 59*time.Second, Remaining{Days: 400, Hours: 23, Minutes: 59, Seconds: 59}},
	}

	for _, test := range tests {
		result := TimeRemaining(now.Add(test.delta), now)
		if result != test.expected {
			t.Errorf("%s: TimeRemaining() = %+v, expected %+v", test.name, result, test.expected)
		}
	}
}

func TestRemaining_Clock(t *testing.T) {
	tests := []struct {
		remaining Remaining
		expected  string
	}{
		{Remaining{Expired: true}, "00:00:00"},
		{Remaining{Hours: 1, Minutes: 2, Seconds: 3}, "01:02:03"},
		{Remaining{Days: 5, Hours: 23, Minutes: 59, Seconds: 59}, "23:59:59"},
	}

	for _, test := range tests {
		if result := test.remaining.Clock(); result != test.expected {
			t.Errorf("Clock() for %+v = %s, expected %s", test.remaining, result, test.expected)
		}
	}
}

func TestCountdown_IsExpired(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	if (Countdown{TargetDate: now}).IsExpired(now) != true {
		t.Error("Countdown at now should be expired")
	}
	if (Countdown{TargetDate: now.Add(time.Millisecond)}).IsExpired(now) != false {
		t.Error("Countdown in the future should not be expired")
	}
}

func TestTimeRemaining_FarFuture(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	target := time.Date(9999, 12, 31, 12, 0, 0, 0, time.UTC)

	result := TimeRemaining(target, now)
	if result.Expired {
		t.Fatal("Far-future target should not be expired")
	}
	if result.Days != 2912151 {
		t.Errorf("Expected 2912151 days, got %d", result.Days)
	}
	if result.Hours != 0 || result.Minutes != 0 || result.Seconds != 0 {
		t.Errorf("Expected whole days, got %+v", result)
	}
}

func TestTimeRemaining_AgreesWithIsExpired(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		delta time.Duration
	}{
		{"500 microseconds ahead", 500 * time.Microsecond},
		{"one millisecond ahead", time.Millisecond},
		{"1.5 milliseconds ahead", 1500 * time.Microsecond},
		{"500 microseconds behind", -500 * time.Microsecond},
	}

	for _, test := range tests {
		c := Countdown{ID: 1, Title: "edge", TargetDate: now.Add(test.delta)}
		if got, want := c.IsExpired(now), TimeRemaining(c.TargetDate, now).Expired; got != want {
			t.Errorf("%s: IsExpired() = %v, calculator Expired = %v", test.name, got, want)
		}
	}

	c := Countdown{ID: 1, Title: "edge", TargetDate: now.Add(500 * time.Microsecond)}
	if !c.IsExpired(now) {
		t.Error("A target less than a millisecond ahead should count as expired")
	}
}
