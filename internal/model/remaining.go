package model

import (
	"fmt"
	"time"
)

// Millisecond boundaries for the remaining-time breakdown
const (
	msPerSecond = int64(1000)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

// Remaining is the time left until a target, or Expired
type Remaining struct {
	Expired bool
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// MillisUntil returns target-now in whole Unix milliseconds. It does not go
// through time.Duration, so targets centuries away do not saturate.
func MillisUntil(target, now time.Time) int64 {
	return target.UnixMilli() - now.UnixMilli()
}

// TimeRemaining breaks target-now into days, hours, minutes and seconds using
// floor division of the millisecond delta. A delta of zero or less is Expired.
func TimeRemaining(target, now time.Time) Remaining {
	delta := MillisUntil(target, now)
	if delta <= 0 {
		return Remaining{Expired: true}
	}

	return Remaining{
		Days:    delta / msPerDay,
		Hours:   (delta % msPerDay) / msPerHour,
		Minutes: (delta % msPerHour) / msPerMinute,
		Seconds: (delta % msPerMinute) / msPerSecond,
	}
}

// Clock returns the sub-day part formatted as hh:mm:ss
func (r Remaining) Clock() string {
	if r.Expired {
		return "00:00:00"
	}
	return fmt.Sprintf("%02d:%02d:%02d", r.Hours, r.Minutes, r.Seconds)
}
