package store

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dukerupert/orchard/internal/kv"
	"github.com/dukerupert/orchard/internal/model"
)

// EventStore holds the event collection in memory, in insertion order,
// and mirrors it wholesale to durable storage after each mutation while
// the session is not authenticated. Authenticated sessions are assumed
// to sync elsewhere and skip the mirror.
type EventStore struct {
	mu       sync.RWMutex
	events   []model.CalendarEvent
	kv       kv.Store
	settings *SettingsStore
	logger   *slog.Logger
}

// NewEventStore loads the stored event collection, falling back to the
// sample dataset when nothing is stored or the stored JSON does not
// parse.
func NewEventStore(kvStore kv.Store, settings *SettingsStore, logger *slog.Logger) *EventStore {
	s := &EventStore{
		kv:       kvStore,
		settings: settings,
		logger:   logger,
	}
	s.events = s.load()
	return s
}

func (s *EventStore) load() []model.CalendarEvent {
	raw, ok, err := s.kv.Get(kv.EventsKey)
	if err != nil {
		s.logger.Error("read stored events", "error", err)
		return SampleEvents()
	}
	if !ok {
		return SampleEvents()
	}

	var events []model.CalendarEvent
	if err := json.Unmarshal([]byte(raw), &events); err != nil {
		s.logger.Warn("stored events are malformed, using sample data", "error", err)
		return SampleEvents()
	}
	return events
}

// Add appends a new event and returns its freshly assigned id. Any id
// on the input is ignored.
func (s *EventStore) Add(e model.CalendarEvent) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = uuid.NewString()
	s.events = append(s.events, e)
	s.persistLocked()
	return e.ID
}

// Get returns the event with the given id, or false if absent.
func (s *EventStore) Get(id string) (model.CalendarEvent, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.events {
		if e.ID == id {
			return e, true
		}
	}
	return model.CalendarEvent{}, false
}

// Update merges the patch into the event with the given id. Unknown ids
// are a silent no-op.
func (s *EventStore) Update(id string, patch model.EventPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID == id {
			patch.Apply(&s.events[i])
			s.persistLocked()
			return
		}
	}
}

// Delete removes the event with the given id. Unknown ids are a silent
// no-op.
func (s *EventStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			s.persistLocked()
			return
		}
	}
}

// List returns a snapshot of the collection in insertion order.
func (s *EventStore) List() []model.CalendarEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.CalendarEvent, len(s.events))
	copy(out, s.events)
	return out
}

// persistLocked mirrors the whole collection to durable storage. The
// write is best-effort: failures are logged and never surfaced to the
// caller. Callers must hold s.mu.
func (s *EventStore) persistLocked() {
	if s.settings.Current().LoggedIn {
		return
	}

	data, err := json.Marshal(s.events)
	if err != nil {
		s.logger.Error("marshal events", "error", err)
		return
	}
	if err := s.kv.Set(kv.EventsKey, string(data)); err != nil {
		s.logger.Error("persist events", "error", err)
	}
}

// SampleEvents is the dataset a fresh install starts with.
func SampleEvents() []model.CalendarEvent {
	return []model.CalendarEvent{
		{
			ID:       "1",
			UID:      1,
			Title:    "Team Meeting",
			Category: model.CategoryMeeting,
			Start:    "2024-10-29T10:00",
			End:      "2024-10-29T11:00",
			Color:    "#3788d8",
		},
		{
			ID:       "2",
			UID:      1,
			Title:    "Client Call",
			Category: model.CategoryPhone,
			Start:    "2024-10-29T14:00",
			End:      "2024-10-29T15:00",
			Color:    "#00ccff",
		},
		{
			ID:    "3",
			UID:   1,
			Title: "Lunch Break",
			Start: "2024-10-30T12:00",
			End:   "2024-10-30T13:00",
			Color: "#34a853",
		},
	}
}
