package calendar

import (
	"testing"
	"time"
)

func TestISOWeekKnownDates(t *testing.T) {
	tests := []struct {
		date time.Time
		want int
	}{
		// Dec 31, 2024 is a Tuesday in ISO week 1 of 2025.
		{time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), 1},
		// Jan 1, 2024 is a Monday in ISO week 1 of 2024.
		{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 1},
		// Jan 1, 2023 is a Sunday, still in ISO week 52 of 2022.
		{time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), 52},
		// Dec 28 is always in the last ISO week of its year.
		{time.Date(2024, 12, 28, 0, 0, 0, 0, time.UTC), 52},
		{time.Date(2026, 12, 28, 0, 0, 0, 0, time.UTC), 53},
		// Mid-year sanity check.
		{time.Date(2024, 10, 29, 0, 0, 0, 0, time.UTC), 44},
	}

	for _, tt := range tests {
		if got := ISOWeek(tt.date); got != tt.want {
			t.Errorf("ISOWeek(%s) = %d, want %d", tt.date.Format("2006-01-02"), got, tt.want)
		}
		if got := ISOWeekOrdinal(tt.date); got != tt.want {
			t.Errorf("ISOWeekOrdinal(%s) = %d, want %d", tt.date.Format("2006-01-02"), got, tt.want)
		}
	}
}

func TestWeekAlgorithmsAgree(t *testing.T) {
	// Both derivations implement the same ISO-8601 definition; they
	// must agree for every day across leap and non-leap years,
	// including the Dec 29 - Jan 4 band where the ISO week belongs to
	// the adjacent calendar year.
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)

	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		a := ISOWeek(d)
		b := ISOWeekOrdinal(d)
		if a != b {
			t.Errorf("%s: ISOWeek = %d, ISOWeekOrdinal = %d", d.Format("2006-01-02"), a, b)
		}
	}
}

func TestWeekAgainstStdlib(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		_, want := d.ISOWeek()
		if got := ISOWeek(d); got != want {
			t.Errorf("ISOWeek(%s) = %d, stdlib says %d", d.Format("2006-01-02"), got, want)
		}
	}
}

func TestWeekIgnoresTimeOfDayAndZone(t *testing.T) {
	// Week numbers depend only on the calendar date, not on the clock
	// time or the location's UTC offset.
	loc := time.FixedZone("UTC-8", -8*3600)
	midnight := time.Date(2024, 12, 31, 0, 0, 0, 0, loc)
	lateEvening := time.Date(2024, 12, 31, 23, 45, 0, 0, loc)

	if ISOWeek(midnight) != ISOWeek(lateEvening) {
		t.Error("ISOWeek changed with time of day")
	}
	if ISOWeekOrdinal(midnight) != ISOWeekOrdinal(lateEvening) {
		t.Error("ISOWeekOrdinal changed with time of day")
	}
	if got := ISOWeek(lateEvening); got != 1 {
		t.Errorf("ISOWeek = %d, want 1", got)
	}
}
