package schedule

import "time"

// Status is the urgency classification of a bill derived from its next due
// date.
type Status string

const (
	StatusNormal   Status = "normal"
	StatusDueToday Status = "due-today"
	StatusOverdue  Status = "overdue"
)

// Classify derives a bill's status from its paid state and next due date.
// Paid bills and bills without a due date are always normal. Otherwise the
// due date's calendar day is compared to asOf's calendar day in loc: a due
// date anywhere on "today" classifies as due-today, never overdue, no matter
// the hour.
func Classify(isPaid bool, nextDueDate *time.Time, asOf time.Time, loc *time.Location) Status {
	if isPaid || nextDueDate == nil {
		return StatusNormal
	}

	due := Midnight(*nextDueDate, loc)
	today := Midnight(asOf, loc)

	switch {
	case due.Before(today):
		return StatusOverdue
	case due.Equal(today):
		return StatusDueToday
	default:
		return StatusNormal
	}
}
