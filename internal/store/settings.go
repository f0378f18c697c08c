package store

import (
	"sync"

	"github.com/dukerupert/orchard/internal/model"
)

// SettingsStore holds the session-scoped settings. It is constructed
// once per process with the fixed defaults and mutated in place via
// partial merges; nothing is persisted.
type SettingsStore struct {
	mu       sync.RWMutex
	settings model.Settings
}

func NewSettingsStore() *SettingsStore {
	return &SettingsStore{settings: model.DefaultSettings()}
}

// Current returns a copy of the settings.
func (s *SettingsStore) Current() model.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Update merges the patch and returns the resulting settings.
func (s *SettingsStore) Update(patch model.SettingsPatch) model.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	patch.Apply(&s.settings)
	return s.settings
}
