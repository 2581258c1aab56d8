package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Priority ranks a countdown for filtering and display
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// DefaultPriority is used when the form leaves the priority empty
const DefaultPriority = PriorityMedium

// Input layout used by the date and time entries
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Validation errors surfaced to the user
var (
	ErrEmptyTitle        = errors.New("title is empty")
	ErrMissingDate       = errors.New("target date is missing")
	ErrInvalidDate       = errors.New("target date or time is malformed")
	ErrTargetNotInFuture = errors.New("target time must be in the future")
	ErrInvalidPriority   = errors.New("invalid priority")
)

// String returns the string representation of Priority
func (p Priority) String() string {
	return string(p)
}

// IsValid reports whether p is one of the known priorities
func (p Priority) IsValid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// Priorities returns all priorities in display order
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// Countdown is a single persisted countdown record. JSON keys follow the
// format the collection is stored in.
type Countdown struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	TargetDate time.Time `json:"targetDate"`
	Priority   Priority  `json:"priority"`
	CreatedAt  time.Time `json:"createdAt"`
}

// IsExpired reports whether the target is at or before now, compared at
// millisecond precision like TimeRemaining
func (c Countdown) IsExpired(now time.Time) bool {
	return MillisUntil(c.TargetDate, now) <= 0
}

// Remaining returns the time left until the target as seen at now
func (c Countdown) Remaining(now time.Time) Remaining {
	return TimeRemaining(c.TargetDate, now)
}

// CountdownInput is what the form submits for create and edit
type CountdownInput struct {
	Title    string    `validate:"required"`
	Target   time.Time `validate:"required"`
	Priority Priority  `validate:"omitempty,oneof=high medium low"`
}

var validate = validator.New()

// Normalize trims the title and fills the default priority
func (in CountdownInput) Normalize() CountdownInput {
	in.Title = strings.TrimSpace(in.Title)
	if in.Priority == "" {
		in.Priority = DefaultPriority
	}
	return in
}

// Validate checks the input against now. The returned error wraps one of the
// package's validation errors.
func (in CountdownInput) Validate(now time.Time) error {
	in = in.Normalize()

	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) || len(verrs) == 0 {
			return fmt.Errorf("validate countdown: %w", err)
		}
		switch verrs[0].Field() {
		case "Title":
			return fmt.Errorf("validate countdown: %w", ErrEmptyTitle)
		case "Target":
			return fmt.Errorf("validate countdown: %w", ErrMissingDate)
		case "Priority":
			return fmt.Errorf("validate countdown: %w: %q", ErrInvalidPriority, in.Priority)
		default:
			return fmt.Errorf("validate countdown: %w", err)
		}
	}

	if MillisUntil(in.Target, now) <= 0 {
		return fmt.Errorf("validate countdown: %w", ErrTargetNotInFuture)
	}
	return nil
}

// ParseTarget combines the date and time entries into an instant in loc.
// An empty clock defaults to midnight.
func ParseTarget(date, clock string, loc *time.Location) (time.Time, error) {
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)
	if date == "" {
		return time.Time{}, ErrMissingDate
	}
	if clock == "" {
		clock = "00:00"
	}
	if loc == nil {
		loc = time.Local
	}

	target, err := time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+clock, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q %q: %v", ErrInvalidDate, date, clock, err)
	}
	return target, nil
}

// FormatTargetParts splits a target back into the form's date and time text
func FormatTargetParts(target time.Time) (date, clock string) {
	return target.Format(DateLayout), target.Format(TimeLayout)
}
