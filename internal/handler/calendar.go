package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dukerupert/orchard/internal/calendar"
	"github.com/dukerupert/orchard/internal/fruit"
	"github.com/dukerupert/orchard/internal/model"
	"github.com/dukerupert/orchard/internal/store"
	"github.com/dukerupert/orchard/internal/view"
)

// CalendarHandler serves the derived views: month grids, week strips,
// year overviews, the mini navigator, and the fruit image of the day.
type CalendarHandler struct {
	events *store.EventStore
	loc    *time.Location
	logger *slog.Logger
}

func NewCalendarHandler(events *store.EventStore, loc *time.Location, logger *slog.Logger) *CalendarHandler {
	return &CalendarHandler{events: events, loc: loc, logger: logger}
}

type dayCell struct {
	Date    string                `json:"date"`
	InMonth bool                  `json:"in_month"`
	Today   bool                  `json:"today"`
	Events  []model.CalendarEvent `json:"events"`
}

type weekRow struct {
	Number int       `json:"number"`
	Days   []dayCell `json:"days"`
}

type monthView struct {
	Year  int       `json:"year"`
	Month int       `json:"month"`
	Title string    `json:"title"`
	Weeks []weekRow `json:"weeks"`
}

func eventsOn(events []model.CalendarEvent, date time.Time) []model.CalendarEvent {
	matched := calendar.EventsOnDate(events, date)
	if matched == nil {
		matched = []model.CalendarEvent{}
	}
	return matched
}

func (h *CalendarHandler) monthView(date time.Time, events []model.CalendarEvent) monthView {
	cells := calendar.MonthGrid(date.Year(), date.Month(), h.loc)
	today := calendar.StartOfDay(time.Now().In(h.loc))

	mv := monthView{
		Year:  date.Year(),
		Month: int(date.Month()),
		Title: date.Format("January 2006"),
	}
	for _, row := range calendar.Weeks(cells) {
		wr := weekRow{Number: calendar.ISOWeekOrdinal(row[0].Date)}
		for _, cell := range row {
			wr.Days = append(wr.Days, dayCell{
				Date:    cell.Date.Format(model.DateLayout),
				InMonth: cell.InMonth,
				Today:   cell.Date.Equal(today),
				Events:  eventsOn(events, cell.Date),
			})
		}
		mv.Weeks = append(mv.Weeks, wr)
	}
	return mv
}

// Month renders the 42-cell-capped grid for the month containing ?date=.
func (h *CalendarHandler) Month(w http.ResponseWriter, r *http.Request) {
	date, err := dateParam(r, h.loc)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
		return
	}
	writeJSON(w, http.StatusOK, h.monthView(date, h.events.List()))
}

type weekView struct {
	Number int       `json:"number"`
	Title  string    `json:"title"`
	Days   []dayCell `json:"days"`
}

// Week renders the Sunday-anchored week containing ?date=, numbered
// with the Thursday-shift algorithm.
func (h *CalendarHandler) Week(w http.ResponseWriter, r *http.Request) {
	date, err := dateParam(r, h.loc)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
		return
	}

	events := h.events.List()
	days := calendar.WeekDays(date)
	today := calendar.StartOfDay(time.Now().In(h.loc))

	wv := weekView{
		Number: calendar.ISOWeek(date),
		Title:  view.Title(model.ViewWeek, date),
	}
	for _, day := range days {
		wv.Days = append(wv.Days, dayCell{
			Date:    day.Format(model.DateLayout),
			InMonth: true,
			Today:   day.Equal(today),
			Events:  eventsOn(events, day),
		})
	}
	writeJSON(w, http.StatusOK, wv)
}

type yearView struct {
	Year   int         `json:"year"`
	Title  string      `json:"title"`
	Months []monthView `json:"months"`
}

func (h *CalendarHandler) Year(w http.ResponseWriter, r *http.Request) {
	date, err := dateParam(r, h.loc)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
		return
	}

	events := h.events.List()
	yv := yearView{Year: date.Year(), Title: date.Format("2006")}
	for m := time.January; m <= time.December; m++ {
		first := time.Date(date.Year(), m, 1, 0, 0, 0, 0, h.loc)
		yv.Months = append(yv.Months, h.monthView(first, events))
	}
	writeJSON(w, http.StatusOK, yv)
}

type navigatorView struct {
	Current monthView `json:"current"`
	Next    monthView `json:"next"`
}

// Navigator renders the two-month mini calendar shown in the sidebar.
func (h *CalendarHandler) Navigator(w http.ResponseWriter, r *http.Request) {
	date, err := dateParam(r, h.loc)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
		return
	}

	events := h.events.List()
	first := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, h.loc)
	writeJSON(w, http.StatusOK, navigatorView{
		Current: h.monthView(first, events),
		Next:    h.monthView(first.AddDate(0, 1, 0), events),
	})
}

func (h *CalendarHandler) Title(w http.ResponseWriter, r *http.Request) {
	date, err := dateParam(r, h.loc)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
		return
	}
	v, err := model.ParseViewType(r.URL.Query().Get("view"))
	if err != nil {
		v = model.ViewMonth
	}
	writeJSON(w, http.StatusOK, map[string]string{"title": view.Title(v, date)})
}

type navigateRequest struct {
	View      string `json:"view"`
	Date      string `json:"date"`
	Direction string `json:"direction"`
}

// Navigate steps the anchor date forward or back one unit of the
// current view, or snaps it back to today.
func (h *CalendarHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	var req navigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	v, err := model.ParseViewType(req.View)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown view"})
		return
	}

	date, err := time.ParseInLocation(model.DateLayout, req.Date, h.loc)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
		return
	}

	var next time.Time
	switch req.Direction {
	case "prev":
		next = view.Navigate(v, date, -1)
	case "next":
		next = view.Navigate(v, date, 1)
	case "today":
		next = calendar.StartOfDay(time.Now().In(h.loc))
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "direction must be prev, next, or today"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"date":  next.Format(model.DateLayout),
		"title": view.Title(v, next),
	})
}

// ImageOfDay resolves the fruit image shown for a date, honoring any
// photo attached to that date's events.
func (h *CalendarHandler) ImageOfDay(w http.ResponseWriter, r *http.Request) {
	date, err := dateParam(r, h.loc)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
		return
	}
	writeJSON(w, http.StatusOK, fruit.Resolve(date, h.events.List()))
}

func (h *CalendarHandler) Fruits(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, fruit.Roster())
}
