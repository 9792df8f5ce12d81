// Package schedule implements the bill recurrence and status model: due-date
// advancement for each recurrence variant, the urgency classifier, and the
// display-label rules shared by every bill view.
//
// All calendar math happens in an explicit *time.Location so the application
// timezone can be configured and tests can pin a zone.
package schedule

import "time"

// NextFixedDate returns the next occurrence of dueDay (day of month, 1-31)
// on or after referenceDate, comparing calendar dates only. When dueDay does
// not exist in the target month (e.g. 31 in April) the result clamps to the
// last day of that month.
func NextFixedDate(dueDay int, referenceDate time.Time, loc *time.Location) time.Time {
	referenceDate = referenceDate.In(loc)

	year := referenceDate.Year()
	month := referenceDate.Month()

	if dueDay < referenceDate.Day() {
		// Due day already passed this month, roll to the next one.
		month++
		if month > 12 {
			month = 1
			year++
		}
	}

	nextDue := time.Date(year, month, dueDay, 0, 0, 0, 0, loc)
	if nextDue.Day() != dueDay {
		// time.Date normalized an overflowing day into the following month;
		// clamp to the last day of the intended month instead.
		nextDue = time.Date(year, month, 1, 0, 0, 0, 0, loc).AddDate(0, 1, -1)
	}
	return nextDue
}

// NextFixedDateAfterPayment returns the occurrence of dueDay in the month
// after paymentDate, clamped to month length the same way as NextFixedDate.
// Paying a fixed-date bill always advances it one month, even when the
// payment lands before the due day.
func NextFixedDateAfterPayment(dueDay int, paymentDate time.Time, loc *time.Location) time.Time {
	paymentDate = paymentDate.In(loc)

	nextMonth := paymentDate.AddDate(0, 1, 0)
	nextDue := time.Date(nextMonth.Year(), nextMonth.Month(), dueDay, 0, 0, 0, 0, loc)

	monthDiff := int(nextDue.Month()) - int(paymentDate.Month())
	if monthDiff < 0 {
		monthDiff += 12
	}
	if monthDiff > 1 {
		// Overflowed past the target month (e.g. due day 31 after a January
		// payment); clamp to the last day of the target month.
		nextDue = time.Date(nextMonth.Year(), nextMonth.Month(), 1, 0, 0, 0, 0, loc).AddDate(0, 1, -1)
	}
	return nextDue
}

// NextInterval returns the first due date of an interval bill that has no
// payments yet. The anchor itself is the first occurrence.
func NextInterval(anchor time.Time, loc *time.Location) time.Time {
	return Midnight(anchor, loc)
}

// NextIntervalAfterPayment returns the due date that follows a payment on an
// every-N-days bill: intervalDays after the payment date.
func NextIntervalAfterPayment(intervalDays int, paymentDate time.Time, loc *time.Location) time.Time {
	return Midnight(paymentDate, loc).AddDate(0, 0, intervalDays)
}

// Midnight strips the time-of-day from t in the given location.
func Midnight(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
