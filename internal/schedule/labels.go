package schedule

import "fmt"

// OrdinalSuffix returns the English ordinal suffix for a day of the month.
// Days 11-13 always take "th" regardless of their trailing digit.
func OrdinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// ScheduleLabel returns the human-readable description of a bill's
// recurrence, identical across list and detail views.
func ScheduleLabel(recurrenceType string, recurrenceDays int) string {
	switch recurrenceType {
	case "fixed_date":
		return fmt.Sprintf("Due Day: %d%s of each month", recurrenceDays, OrdinalSuffix(recurrenceDays))
	case "interval":
		if recurrenceDays == 1 {
			return "Due every: 1 day"
		}
		return fmt.Sprintf("Due every: %d days", recurrenceDays)
	default:
		return "One-time bill"
	}
}

// BadgeLabel returns the short badge text for a recurrence type.
func BadgeLabel(recurrenceType string) string {
	switch recurrenceType {
	case "fixed_date":
		return "Monthly"
	case "interval":
		return "Interval"
	default:
		return "One-time"
	}
}
