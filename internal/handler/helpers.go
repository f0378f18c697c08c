package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dukerupert/orchard/internal/model"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// dateParam reads the "date" query parameter as YYYY-MM-DD in the
// given location, defaulting to today when absent.
func dateParam(r *http.Request, loc *time.Location) (time.Time, error) {
	s := r.URL.Query().Get("date")
	if s == "" {
		now := time.Now().In(loc)
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc), nil
	}
	return time.ParseInLocation(model.DateLayout, s, loc)
}
