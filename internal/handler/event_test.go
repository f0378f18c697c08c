package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dukerupert/orchard/internal/kv"
	"github.com/dukerupert/orchard/internal/model"
	"github.com/dukerupert/orchard/internal/store"
	ws "github.com/dukerupert/orchard/internal/websocket"
)

func setupHandlers(t *testing.T) (*http.ServeMux, *store.EventStore) {
	t.Helper()
	kvStore, err := kv.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("open kv: %v", err)
	}
	t.Cleanup(func() { kvStore.Close() })

	logger := slog.Default()
	settings := store.NewSettingsStore()
	events := store.NewEventStore(kvStore, settings, logger)
	hub := ws.NewHub(logger)

	eh := NewEventHandler(events, hub, time.UTC, logger)
	sh := NewSettingsHandler(settings, hub, logger)
	ch := NewCalendarHandler(events, time.UTC, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/events", eh.List)
	mux.HandleFunc("POST /api/events", eh.Create)
	mux.HandleFunc("GET /api/events/grid", eh.Grid)
	mux.HandleFunc("GET /api/events/export", eh.ExportICS)
	mux.HandleFunc("GET /api/events/{id}", eh.Get)
	mux.HandleFunc("PUT /api/events/{id}", eh.Update)
	mux.HandleFunc("DELETE /api/events/{id}", eh.Delete)
	mux.HandleFunc("GET /api/settings", sh.Get)
	mux.HandleFunc("PUT /api/settings", sh.Update)
	mux.HandleFunc("GET /api/calendar/month", ch.Month)
	mux.HandleFunc("GET /api/calendar/week", ch.Week)
	mux.HandleFunc("GET /api/calendar/year", ch.Year)
	mux.HandleFunc("GET /api/calendar/navigator", ch.Navigator)
	mux.HandleFunc("GET /api/calendar/title", ch.Title)
	mux.HandleFunc("POST /api/calendar/navigate", ch.Navigate)
	mux.HandleFunc("GET /api/calendar/image-of-day", ch.ImageOfDay)
	mux.HandleFunc("GET /api/fruits", ch.Fruits)

	return mux, events
}

func doRequest(t *testing.T, mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestListEventsReturnsSamples(t *testing.T) {
	mux, _ := setupHandlers(t)

	rec := doRequest(t, mux, "GET", "/api/events", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var events []model.CalendarEvent
	if err := json.Unmarshal(rec.Body.Bytes(), &events); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("len = %d, want 3", len(events))
	}
}

func TestListEventsFilteredByDate(t *testing.T) {
	mux, _ := setupHandlers(t)

	rec := doRequest(t, mux, "GET", "/api/events?date=2024-10-29", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var events []model.CalendarEvent
	if err := json.Unmarshal(rec.Body.Bytes(), &events); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len = %d, want 2", len(events))
	}
	for _, e := range events {
		if !strings.HasPrefix(e.Start, "2024-10-29") {
			t.Errorf("event %q starts %q, want 2024-10-29", e.Title, e.Start)
		}
	}
}

func TestListEventsRejectsBadDate(t *testing.T) {
	mux, _ := setupHandlers(t)

	rec := doRequest(t, mux, "GET", "/api/events?date=yesterday", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCreateEvent(t *testing.T) {
	mux, events := setupHandlers(t)

	body := `{"title":"Dentist","category":"appointment","start":"2026-02-05T09:00","end":"2026-02-05T10:00","color":"#ff0000"}`
	rec := doRequest(t, mux, "POST", "/api/events", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var created model.CalendarEvent
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == "" {
		t.Error("created event has no id")
	}
	if created.Title != "Dentist" {
		t.Errorf("title = %q, want Dentist", created.Title)
	}

	if len(events.List()) != 4 {
		t.Errorf("store has %d events, want 4", len(events.List()))
	}
}

func TestCreateEventRequiresFields(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing title", `{"start":"2026-02-05T09:00","end":"2026-02-05T10:00"}`},
		{"blank title", `{"title":"   ","start":"2026-02-05T09:00","end":"2026-02-05T10:00"}`},
		{"missing start", `{"title":"Dentist","end":"2026-02-05T10:00"}`},
		{"missing end", `{"title":"Dentist","start":"2026-02-05T09:00"}`},
		{"bad json", `{"title":`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mux, _ := setupHandlers(t)
			rec := doRequest(t, mux, "POST", "/api/events", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestCreateEventAllowsEndBeforeStart(t *testing.T) {
	mux, _ := setupHandlers(t)

	body := `{"title":"Backwards","start":"2026-02-05T10:00","end":"2026-02-05T09:00"}`
	rec := doRequest(t, mux, "POST", "/api/events", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
}

func TestGetEvent(t *testing.T) {
	mux, _ := setupHandlers(t)

	rec := doRequest(t, mux, "GET", "/api/events/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var event model.CalendarEvent
	if err := json.Unmarshal(rec.Body.Bytes(), &event); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if event.Title != "Team Meeting" {
		t.Errorf("title = %q, want Team Meeting", event.Title)
	}
}

func TestGetEventNotFound(t *testing.T) {
	mux, _ := setupHandlers(t)

	rec := doRequest(t, mux, "GET", "/api/events/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestUpdateEvent(t *testing.T) {
	mux, events := setupHandlers(t)

	rec := doRequest(t, mux, "PUT", "/api/events/1", `{"title":"Standup","color":"#00ff00"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	event, ok := events.Get("1")
	if !ok {
		t.Fatal("event vanished")
	}
	if event.Title != "Standup" || event.Color != "#00ff00" {
		t.Errorf("patch not applied: %+v", event)
	}
	if event.Start != "2024-10-29T10:00" {
		t.Errorf("start changed to %q, want untouched", event.Start)
	}
}

func TestUpdateEventNotFound(t *testing.T) {
	mux, _ := setupHandlers(t)

	rec := doRequest(t, mux, "PUT", "/api/events/nope", `{"title":"x"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestDeleteEvent(t *testing.T) {
	mux, events := setupHandlers(t)

	rec := doRequest(t, mux, "DELETE", "/api/events/1", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if _, ok := events.Get("1"); ok {
		t.Error("event still present after delete")
	}
}

func TestDeleteEventNotFound(t *testing.T) {
	mux, _ := setupHandlers(t)

	rec := doRequest(t, mux, "DELETE", "/api/events/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestGridProjection(t *testing.T) {
	mux, _ := setupHandlers(t)

	rec := doRequest(t, mux, "GET", "/api/events/grid", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var projected []gridEvent
	if err := json.Unmarshal(rec.Body.Bytes(), &projected); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(projected) != 3 {
		t.Fatalf("len = %d, want 3", len(projected))
	}

	first := projected[0]
	if first.BorderColor != "#3788d8" {
		t.Errorf("borderColor = %q, want event color", first.BorderColor)
	}
	if first.BackgroundColor != "transparent" {
		t.Errorf("backgroundColor = %q, want transparent", first.BackgroundColor)
	}
	if first.TextColor != "#000" {
		t.Errorf("textColor = %q, want #000", first.TextColor)
	}
}

func TestExportICS(t *testing.T) {
	mux, _ := setupHandlers(t)

	rec := doRequest(t, mux, "GET", "/api/events/export", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/calendar") {
		t.Errorf("content type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "BEGIN:VCALENDAR") {
		t.Error("body is not an iCalendar document")
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	mux, _ := setupHandlers(t)

	rec := doRequest(t, mux, "GET", "/api/settings", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var settings model.Settings
	if err := json.Unmarshal(rec.Body.Bytes(), &settings); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if settings.LoggedIn {
		t.Error("default loggedin should be false")
	}

	rec = doRequest(t, mux, "PUT", "/api/settings", `{"weeknumbers":false}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &settings); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if settings.WeekNumbers {
		t.Error("weeknumbers not updated")
	}
	if !settings.DayNavigator {
		t.Error("untouched toggle changed")
	}
}
