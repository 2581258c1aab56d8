package model

import (
	"fmt"
	"sort"
	"time"
)

// Filter selects which countdowns are visible
type Filter string

const (
	FilterAll     Filter = "all"
	FilterActive  Filter = "active"
	FilterExpired Filter = "expired"
	FilterHigh    Filter = "high"
	FilterMedium  Filter = "medium"
	FilterLow     Filter = "low"
)

// Filters returns all filters in the order they are offered in the UI
func Filters() []Filter {
	return []Filter{FilterAll, FilterActive, FilterExpired, FilterHigh, FilterMedium, FilterLow}
}

// ParseFilter converts a stored or user supplied value into a Filter
func ParseFilter(s string) (Filter, error) {
	for _, f := range Filters() {
		if string(f) == s {
			return f, nil
		}
	}
	return FilterAll, fmt.Errorf("unknown filter: %q", s)
}

// String returns the string representation of Filter
func (f Filter) String() string {
	return string(f)
}

// Match reports whether c passes the filter at now
func (f Filter) Match(c Countdown, now time.Time) bool {
	switch f {
	case FilterActive:
		return !c.IsExpired(now)
	case FilterExpired:
		return c.IsExpired(now)
	case FilterHigh:
		return c.Priority == PriorityHigh
	case FilterMedium:
		return c.Priority == PriorityMedium
	case FilterLow:
		return c.Priority == PriorityLow
	default:
		return true
	}
}

// ApplyFilter returns the countdowns matching f, in input order
func ApplyFilter(countdowns []Countdown, f Filter, now time.Time) []Countdown {
	filtered := make([]Countdown, 0, len(countdowns))
	for _, c := range countdowns {
		if f.Match(c, now) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// SortForDisplay orders countdowns in place: active before expired, then by
// ascending target, then by id.
func SortForDisplay(countdowns []Countdown, now time.Time) {
	sort.SliceStable(countdowns, func(i, j int) bool {
		return displayLess(countdowns[i], countdowns[j], now)
	})
}

func displayLess(a, b Countdown, now time.Time) bool {
	aExpired, bExpired := a.IsExpired(now), b.IsExpired(now)
	if aExpired != bExpired {
		return !aExpired
	}
	if !a.TargetDate.Equal(b.TargetDate) {
		return a.TargetDate.Before(b.TargetDate)
	}
	return a.ID < b.ID
}

// View returns a filtered and sorted copy of countdowns
func View(countdowns []Countdown, f Filter, now time.Time) []Countdown {
	view := ApplyFilter(countdowns, f, now)
	SortForDisplay(view, now)
	return view
}

// Stats summarizes a collection for the header panel
type Stats struct {
	Total   int
	Active  int
	Expired int
	High    int
	Medium  int
	Low     int
}

// ComputeStats counts countdowns by expiry state and priority
func ComputeStats(countdowns []Countdown, now time.Time) Stats {
	stats := Stats{Total: len(countdowns)}
	for _, c := range countdowns {
		if c.IsExpired(now) {
			stats.Expired++
		} else {
			stats.Active++
		}
		switch c.Priority {
		case PriorityHigh:
			stats.High++
		case PriorityMedium:
			stats.Medium++
		case PriorityLow:
			stats.Low++
		}
	}
	return stats
}
