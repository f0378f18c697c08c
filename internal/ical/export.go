// Package ical serializes the event collection as an iCalendar feed.
package ical

import (
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/dukerupert/orchard/internal/model"
)

const prodID = "-//orchard//calendar//EN"

// Export renders the events as a VCALENDAR document. Start and end are
// stored as local wall-clock strings, so they are interpreted in the
// given location. Events whose start does not parse are skipped; the
// collection is never validated beyond that.
func Export(events []model.CalendarEvent, loc *time.Location) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(prodID)

	for _, e := range events {
		start, err := time.ParseInLocation(model.TimeLayout, e.Start, loc)
		if err != nil {
			continue
		}

		ve := cal.AddEvent(e.ID)
		ve.SetDtStampTime(time.Now())
		ve.SetStartAt(start)
		if end, err := time.ParseInLocation(model.TimeLayout, e.End, loc); err == nil {
			ve.SetEndAt(end)
		}
		ve.SetSummary(e.Title)
		if e.Category != "" {
			ve.SetProperty(ics.ComponentPropertyCategories, e.Category)
		}
		if e.URL != "" {
			ve.SetProperty(ics.ComponentPropertyUrl, e.URL)
		}
		if e.Color != "" {
			ve.SetProperty(ics.ComponentProperty("COLOR"), e.Color)
		}
	}

	return cal.Serialize()
}
