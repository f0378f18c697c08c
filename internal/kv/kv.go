// Package kv provides the durable key-value storage the event
// collection is mirrored to. Two backends exist: a SQLite table
// (default) and a diskv directory, selected by configuration.
package kv

// Store is a durable string key-value store.
type Store interface {
	// Get returns the value for key. The second return is false when
	// the key has never been written.
	Get(key string) (string, bool, error)
	// Set writes the value for key, replacing any prior value.
	Set(key, value string) error
	Close() error
}

// EventsKey is the single key the whole event collection is stored
// under, as a JSON-encoded array.
const EventsKey = "calendar-events"
