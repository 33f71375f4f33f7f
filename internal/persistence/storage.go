// internal/persistence/storage.go
package persistence

import "errors"

// ErrNotFound is returned when no session matches the request.
var ErrNotFound = errors.New("session not found")

// Storage defines the interface for session persistence
type Storage interface {
	Save(rec *SessionRecord) error
	Load(id string) (*SessionRecord, error)
	Latest() (*SessionRecord, error)
	List() ([]Summary, error)
	Delete(id string) error
	Close() error
}
