// Package view implements the navigation-bar date arithmetic: stepping
// the current date backward and forward per view, and formatting the
// heading label. The page controller owning the (view, date) state is
// the client; these are pure helpers it calls through the API.
package view

import (
	"time"

	"github.com/dukerupert/orchard/internal/calendar"
	"github.com/dukerupert/orchard/internal/model"
)

// Navigate steps the date by the view's unit: a day, a week, a
// calendar month, or a year. step is typically -1 or +1.
func Navigate(v model.ViewType, date time.Time, step int) time.Time {
	switch v {
	case model.ViewDay:
		return date.AddDate(0, 0, step)
	case model.ViewWeek:
		return date.AddDate(0, 0, 7*step)
	case model.ViewMonth:
		return date.AddDate(0, step, 0)
	case model.ViewYear:
		return date.AddDate(step, 0, 0)
	}
	return date
}

// Title renders the navigation-bar heading for the view and date.
func Title(v model.ViewType, date time.Time) string {
	switch v {
	case model.ViewDay:
		return date.Format("January 2, 2006")
	case model.ViewWeek:
		days := calendar.WeekDays(date)
		return days[0].Format("Jan 2") + " – " + days[6].Format("Jan 2, 2006")
	case model.ViewMonth:
		return date.Format("January 2006")
	case model.ViewYear:
		return date.Format("2006")
	}
	return date.Format(model.DateLayout)
}
