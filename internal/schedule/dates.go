package schedule

import (
	"fmt"
	"time"
)

// ParseLocalDate parses a date-only string (YYYY-MM-DD) as entered by a user
// and anchors it at noon in loc. Anchoring at noon rather than midnight keeps
// the calendar date stable under conversion for every realistic UTC offset
// (-12:00 to +14:00); a midnight anchor shifts the visible date backward in
// any positive-offset zone.
func ParseLocalDate(dateOnly string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", dateOnly, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", dateOnly, err)
	}
	return d.Add(12 * time.Hour), nil
}
