package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dukerupert/orchard/internal/model"
	"github.com/dukerupert/orchard/internal/store"
	ws "github.com/dukerupert/orchard/internal/websocket"
)

type SettingsHandler struct {
	settings *store.SettingsStore
	hub      *ws.Hub
	logger   *slog.Logger
}

func NewSettingsHandler(settings *store.SettingsStore, hub *ws.Hub, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{settings: settings, hub: hub, logger: logger}
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.settings.Current())
}

func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch model.SettingsPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	updated := h.settings.Update(patch)
	h.hub.Broadcast(ws.NewMessage("settings", "updated", "", nil))
	writeJSON(w, http.StatusOK, updated)
}
