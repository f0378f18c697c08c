package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dukerupert/orchard/internal/config"
	"github.com/dukerupert/orchard/internal/handler"
	"github.com/dukerupert/orchard/internal/kv"
	"github.com/dukerupert/orchard/internal/middleware"
	"github.com/dukerupert/orchard/internal/store"
	ws "github.com/dukerupert/orchard/internal/websocket"
)

type Server struct {
	hub       *ws.Hub
	eventH    *handler.EventHandler
	settingsH *handler.SettingsHandler
	calendarH *handler.CalendarHandler
	basicAuth *config.BasicAuthConfig
	logger    *slog.Logger
}

func New(kvStore kv.Store, loc *time.Location, basicAuth *config.BasicAuthConfig, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))

	settingsStore := store.NewSettingsStore()
	eventStore := store.NewEventStore(kvStore, settingsStore, logger.With("component", "store"))

	return &Server{
		hub:       hub,
		eventH:    handler.NewEventHandler(eventStore, hub, loc, logger.With("component", "event")),
		settingsH: handler.NewSettingsHandler(settingsStore, hub, logger.With("component", "settings")),
		calendarH: handler.NewCalendarHandler(eventStore, loc, logger.With("component", "calendar")),
		basicAuth: basicAuth,
		logger:    logger,
	}
}

// Hub exposes the broadcast hub so background notifiers can push to
// connected clients.
func (s *Server) Hub() *ws.Hub {
	return s.hub
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.healthHandler)

	// Event API routes
	mux.HandleFunc("POST /api/events", s.eventH.Create)
	mux.HandleFunc("GET /api/events", s.eventH.List)
	mux.HandleFunc("GET /api/events/grid", s.eventH.Grid)
	mux.HandleFunc("GET /api/events/export", s.eventH.ExportICS)
	mux.HandleFunc("GET /api/events/{id}", s.eventH.Get)
	mux.HandleFunc("PUT /api/events/{id}", s.eventH.Update)
	mux.HandleFunc("DELETE /api/events/{id}", s.eventH.Delete)

	// Settings API routes
	mux.HandleFunc("GET /api/settings", s.settingsH.Get)
	mux.HandleFunc("PUT /api/settings", s.settingsH.Update)

	// Calendar view routes
	mux.HandleFunc("GET /api/calendar/month", s.calendarH.Month)
	mux.HandleFunc("GET /api/calendar/week", s.calendarH.Week)
	mux.HandleFunc("GET /api/calendar/year", s.calendarH.Year)
	mux.HandleFunc("GET /api/calendar/navigator", s.calendarH.Navigator)
	mux.HandleFunc("GET /api/calendar/title", s.calendarH.Title)
	mux.HandleFunc("POST /api/calendar/navigate", s.calendarH.Navigate)
	mux.HandleFunc("GET /api/calendar/image-of-day", s.calendarH.ImageOfDay)
	mux.HandleFunc("GET /api/fruits", s.calendarH.Fruits)

	// WebSocket route
	mux.HandleFunc("GET /ws", ws.HandleWebSocket(s.hub))

	var h http.Handler = mux
	if s.basicAuth != nil && s.basicAuth.Username != "" {
		h = middleware.BasicAuth(s.basicAuth.Username, s.basicAuth.PasswordHash)(h)
	}
	return middleware.RequestLogger(s.logger.With("component", "http"))(h)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
