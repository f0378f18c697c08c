package calendar

import "time"

// Two ISO-8601 week-number derivations live here. They implement the
// same definition (week 1 contains the year's first Thursday, weeks run
// Monday through Sunday) by different routes and are used by different
// views, so both are kept as independent functions. The cross-check
// test asserts they agree for every date.

// ISOWeek returns the ISO-8601 week number of the given date using the
// Thursday-shift ceiling derivation: move the date to the Thursday of
// its ISO week, then count seven-day blocks from January 1 of the
// Thursday's year. Used by the single-week view.
func ISOWeek(date time.Time) int {
	d := utcMidnight(date)

	dayNum := int(d.Weekday())
	if dayNum == 0 {
		dayNum = 7
	}
	d = d.AddDate(0, 0, 4-dayNum)

	yearStart := time.Date(d.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	days := int(d.Sub(yearStart) / (24 * time.Hour))

	// ceil((days+1) / 7)
	return (days + 7) / 7
}

// ISOWeekOrdinal returns the ISO-8601 week number of the given date by
// the first-Thursday ordinal derivation: find the Thursday of the same
// ISO week, find the first Thursday on or after January 1 of that
// Thursday's year, and count whole weeks between them. Used by the
// two-month navigator.
func ISOWeekOrdinal(date time.Time) int {
	d := utcMidnight(date)

	dayNr := (int(d.Weekday()) + 6) % 7
	thursday := d.AddDate(0, 0, -dayNr+3)

	jan1 := time.Date(thursday.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	firstThursday := jan1
	if jan1.Weekday() != time.Thursday {
		offset := (int(time.Thursday) - int(jan1.Weekday()) + 7) % 7
		firstThursday = jan1.AddDate(0, 0, offset)
	}

	return 1 + int(thursday.Sub(firstThursday)/(7*24*time.Hour))
}

// utcMidnight rebuilds the date's calendar components at UTC midnight,
// so day arithmetic never picks up daylight-saving drift from the
// source location.
func utcMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
