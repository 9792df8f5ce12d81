package schedule

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int, loc *time.Location) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func TestNextFixedDate(t *testing.T) {
	loc := time.UTC

	tests := []struct {
		name   string
		dueDay int
		ref    time.Time
		want   time.Time
	}{
		{"due_day_ahead_in_month", 15, date(2024, time.March, 10, loc), date(2024, time.March, 15, loc)},
		{"due_day_is_today", 15, date(2024, time.March, 15, loc), date(2024, time.March, 15, loc)},
		{"due_day_passed_rolls_to_next_month", 15, date(2024, time.March, 20, loc), date(2024, time.April, 15, loc)},
		{"december_rolls_to_january", 5, date(2024, time.December, 10, loc), date(2025, time.January, 5, loc)},
		{"day_31_clamps_in_april", 31, date(2024, time.April, 1, loc), date(2024, time.April, 30, loc)},
		{"day_30_clamps_in_february", 30, date(2024, time.February, 1, loc), date(2024, time.February, 29, loc)},
		{"day_29_in_non_leap_february", 29, date(2023, time.February, 1, loc), date(2023, time.February, 28, loc)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextFixedDate(tt.dueDay, tt.ref, loc)
			if !got.Equal(tt.want) {
				t.Errorf("NextFixedDate(%d, %s) = %s, want %s", tt.dueDay, tt.ref, got, tt.want)
			}
		})
	}
}

func TestNextFixedDateIgnoresTimeOfDay(t *testing.T) {
	loc := time.UTC
	// Late on the due day itself still counts as this month's occurrence.
	ref := time.Date(2024, time.March, 15, 23, 30, 0, 0, loc)
	got := NextFixedDate(15, ref, loc)
	if want := date(2024, time.March, 15, loc); !got.Equal(want) {
		t.Errorf("NextFixedDate(15, %s) = %s, want %s", ref, got, want)
	}
}

func TestNextFixedDateAfterPayment(t *testing.T) {
	loc := time.UTC

	tests := []struct {
		name    string
		dueDay  int
		payment time.Time
		want    time.Time
	}{
		{"advances_one_month", 15, date(2024, time.March, 15, loc), date(2024, time.April, 15, loc)},
		{"early_payment_still_advances", 15, date(2024, time.March, 2, loc), date(2024, time.April, 15, loc)},
		{"december_payment_rolls_year", 10, date(2024, time.December, 10, loc), date(2025, time.January, 10, loc)},
		{"day_31_after_january_payment_clamps_to_feb", 31, date(2024, time.January, 31, loc), date(2024, time.February, 29, loc)},
		{"day_31_after_march_payment_clamps_to_april", 31, date(2024, time.March, 31, loc), date(2024, time.April, 30, loc)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextFixedDateAfterPayment(tt.dueDay, tt.payment, loc)
			if !got.Equal(tt.want) {
				t.Errorf("NextFixedDateAfterPayment(%d, %s) = %s, want %s", tt.dueDay, tt.payment, got, tt.want)
			}
		})
	}
}

func TestNextInterval(t *testing.T) {
	loc := time.UTC

	t.Run("anchor_is_first_occurrence", func(t *testing.T) {
		anchor := time.Date(2024, time.June, 1, 9, 45, 0, 0, loc)
		got := NextInterval(anchor, loc)
		if want := date(2024, time.June, 1, loc); !got.Equal(want) {
			t.Errorf("NextInterval(%s) = %s, want %s", anchor, got, want)
		}
	})

	t.Run("after_payment_adds_interval", func(t *testing.T) {
		payment := date(2024, time.June, 1, loc)
		got := NextIntervalAfterPayment(14, payment, loc)
		if want := date(2024, time.June, 15, loc); !got.Equal(want) {
			t.Errorf("NextIntervalAfterPayment(14, %s) = %s, want %s", payment, got, want)
		}
	})

	t.Run("interval_crosses_month_boundary", func(t *testing.T) {
		payment := date(2024, time.June, 25, loc)
		got := NextIntervalAfterPayment(10, payment, loc)
		if want := date(2024, time.July, 5, loc); !got.Equal(want) {
			t.Errorf("NextIntervalAfterPayment(10, %s) = %s, want %s", payment, got, want)
		}
	})
}

func TestMidnight(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}

	// 2024-03-15 01:30 UTC is still March 14 in New York.
	utc := time.Date(2024, time.March, 15, 1, 30, 0, 0, time.UTC)
	got := Midnight(utc, ny)
	if got.Year() != 2024 || got.Month() != time.March || got.Day() != 14 {
		t.Errorf("Midnight(%s, New_York) = %s, want March 14", utc, got)
	}
	if got.Hour() != 0 || got.Minute() != 0 {
		t.Errorf("expected midnight, got %s", got)
	}
}
