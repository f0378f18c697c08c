package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dukerupert/orchard/internal/calendar"
	"github.com/dukerupert/orchard/internal/ical"
	"github.com/dukerupert/orchard/internal/model"
	"github.com/dukerupert/orchard/internal/store"
	ws "github.com/dukerupert/orchard/internal/websocket"
)

type EventHandler struct {
	events *store.EventStore
	hub    *ws.Hub
	loc    *time.Location
	logger *slog.Logger
}

func NewEventHandler(events *store.EventStore, hub *ws.Hub, loc *time.Location, logger *slog.Logger) *EventHandler {
	return &EventHandler{events: events, hub: hub, loc: loc, logger: logger}
}

type eventRequest struct {
	UID      int64  `json:"uid"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Color    string `json:"color"`
	Photo    string `json:"photo"`
	URL      string `json:"url"`
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	// A save needs title, start, and end. Nothing else is validated;
	// in particular end may precede start, matching how the widget has
	// always behaved.
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" || req.Start == "" || req.End == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "title, start, and end are required"})
		return
	}

	event := model.CalendarEvent{
		UID:      req.UID,
		Title:    req.Title,
		Category: req.Category,
		Start:    req.Start,
		End:      req.End,
		Color:    req.Color,
		Photo:    req.Photo,
		URL:      req.URL,
	}
	id := h.events.Add(event)

	created, _ := h.events.Get(id)
	h.hub.Broadcast(ws.NewMessage("event", "created", id, nil))
	writeJSON(w, http.StatusCreated, created)
}

// List returns the whole collection in insertion order, or the events
// bound to a single date when ?date=YYYY-MM-DD is given.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events := h.events.List()

	if r.URL.Query().Get("date") != "" {
		date, err := dateParam(r, h.loc)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
			return
		}
		events = calendar.EventsOnDate(events, date)
	}

	if events == nil {
		events = []model.CalendarEvent{}
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	event, ok := h.events.Get(r.PathValue("id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "event not found"})
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := h.events.Get(id); !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "event not found"})
		return
	}

	var patch model.EventPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	h.events.Update(id, patch)

	updated, _ := h.events.Get(id)
	h.hub.Broadcast(ws.NewMessage("event", "updated", id, nil))
	writeJSON(w, http.StatusOK, updated)
}

func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := h.events.Get(id); !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "event not found"})
		return
	}

	h.events.Delete(id)
	h.hub.Broadcast(ws.NewMessage("event", "deleted", id, nil))
	w.WriteHeader(http.StatusNoContent)
}

// gridEvent is the projection the grid calendar library consumes: the
// event color becomes the border, the background stays transparent.
type gridEvent struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Start           string `json:"start"`
	End             string `json:"end"`
	BorderColor     string `json:"borderColor"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
}

func (h *EventHandler) Grid(w http.ResponseWriter, r *http.Request) {
	events := h.events.List()

	out := make([]gridEvent, 0, len(events))
	for _, e := range events {
		out = append(out, gridEvent{
			ID:              e.ID,
			Title:           e.Title,
			Start:           e.Start,
			End:             e.End,
			BorderColor:     e.Color,
			BackgroundColor: "transparent",
			TextColor:       "#000",
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// ExportICS serves the collection as an iCalendar feed.
func (h *EventHandler) ExportICS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="orchard.ics"`)
	if _, err := w.Write([]byte(ical.Export(h.events.List(), h.loc))); err != nil {
		h.logger.Error("write ics export", "error", err)
	}
}
