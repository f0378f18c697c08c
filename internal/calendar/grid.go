package calendar

import "time"

// maxGridCells caps grid generation at six full weeks. Guards against
// date-arithmetic runaway; a well-formed month never reaches it.
const maxGridCells = 42

// Cell is one date slot in a month grid. Out-of-month cells are
// leading/trailing filler from the adjacent months; they are dimmed in
// display but remain selectable.
type Cell struct {
	Date    time.Time `json:"date"`
	InMonth bool      `json:"in_month"`
}

// MonthGrid builds the Sunday-anchored grid of calendar days for the
// given month. The first cell is the most recent Sunday on or before
// the 1st; cells are appended one day at a time until a complete
// trailing week past the end of the month has been emitted. The result
// length is a multiple of 7 (5 or 6 rows depending on month shape),
// never more than maxGridCells.
func MonthGrid(year int, month time.Month, loc *time.Location) []Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)

	cur := first.AddDate(0, 0, -int(first.Weekday()))
	cells := make([]Cell, 0, maxGridCells)

	for !cur.After(last) || cur.Weekday() != time.Sunday {
		cells = append(cells, Cell{Date: cur, InMonth: cur.Month() == month})
		if len(cells) >= maxGridCells {
			break
		}
		cur = cur.AddDate(0, 0, 1)
	}

	return cells
}

// Weeks splits grid cells into rows of seven for rendering.
func Weeks(cells []Cell) [][]Cell {
	var weeks [][]Cell
	for i := 0; i < len(cells); i += 7 {
		end := i + 7
		if end > len(cells) {
			end = len(cells)
		}
		weeks = append(weeks, cells[i:end])
	}
	return weeks
}

// WeekDays returns the seven days of the Sunday-anchored week
// containing the given date, normalized to midnight.
func WeekDays(date time.Time) [7]time.Time {
	start := StartOfDay(date).AddDate(0, 0, -int(date.Weekday()))

	var days [7]time.Time
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// StartOfDay truncates a time to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
