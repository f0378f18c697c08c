package calendar

import (
	"sort"
	"strings"
	"time"

	"github.com/dukerupert/orchard/internal/model"
)

// EventsOnDate returns the events whose start falls on the given
// calendar date, sorted ascending by start time. The match compares the
// date portion of the stored start string against the date's local
// YYYY-MM-DD form; no timezone conversion happens. The sort is stable,
// so events sharing a start keep their insertion order.
func EventsOnDate(events []model.CalendarEvent, date time.Time) []model.CalendarEvent {
	key := date.Format(model.DateLayout)

	var matched []model.CalendarEvent
	for _, e := range events {
		if strings.HasPrefix(e.Start, key) {
			matched = append(matched, e)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Start < matched[j].Start
	})
	return matched
}
