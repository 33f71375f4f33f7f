// internal/persistence/json_store.go
package persistence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// JSONStore keeps every saved session in one local JSON file.
type JSONStore struct {
	filePath string
	mutex    sync.RWMutex
	data     *JSONData
}

// JSONData represents the structure of the JSON file
type JSONData struct {
	Sessions map[string]*SessionRecord `json:"sessions"`
}

// NewJSONStore opens filePath, creating it when missing.
func NewJSONStore(filePath string) (*JSONStore, error) {
	store := &JSONStore{
		filePath: filePath,
		data:     &JSONData{Sessions: make(map[string]*SessionRecord)},
	}

	if _, err := os.Stat(filePath); err == nil {
		if err := store.loadFromFile(); err != nil {
			return nil, fmt.Errorf("failed to load JSON store: %w", err)
		}
	} else {
		if dir := filepath.Dir(filePath); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create save directory: %w", err)
			}
		}
		if err := store.saveToFile(); err != nil {
			return nil, fmt.Errorf("failed to create JSON store file: %w", err)
		}
	}

	return store, nil
}

func (js *JSONStore) loadFromFile() error {
	js.mutex.Lock()
	defer js.mutex.Unlock()

	file, err := os.ReadFile(js.filePath)
	if err != nil {
		return err
	}
	data := &JSONData{}
	if err := json.Unmarshal(file, data); err != nil {
		return err
	}
	if data.Sessions == nil {
		data.Sessions = make(map[string]*SessionRecord)
	}
	js.data = data
	return nil
}

// saveToFile writes through a temp file so a crash never leaves half a file behind.
func (js *JSONStore) saveToFile() error {
	js.mutex.RLock()
	data, err := json.MarshalIndent(js.data, "", "  ")
	js.mutex.RUnlock()
	if err != nil {
		return err
	}

	tmp := js.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, js.filePath)
}

// Save stores rec under its ID, replacing an older save with the same ID.
func (js *JSONStore) Save(rec *SessionRecord) error {
	if rec == nil || rec.ID == "" {
		return fmt.Errorf("save session: missing id")
	}
	js.mutex.Lock()
	prev, existed := js.data.Sessions[rec.ID]
	js.data.Sessions[rec.ID] = rec
	js.mutex.Unlock()

	if err := js.saveToFile(); err != nil {
		// Memory must not hold a save the file does not.
		js.mutex.Lock()
		if existed {
			js.data.Sessions[rec.ID] = prev
		} else {
			delete(js.data.Sessions, rec.ID)
		}
		js.mutex.Unlock()
		return fmt.Errorf("save session %s: %w", rec.ID, err)
	}
	return nil
}

// Load returns the session saved under id.
func (js *JSONStore) Load(id string) (*SessionRecord, error) {
	js.mutex.RLock()
	defer js.mutex.RUnlock()

	rec, exists := js.data.Sessions[id]
	if !exists {
		return nil, fmt.Errorf("load session %s: %w", id, ErrNotFound)
	}
	return rec, nil
}

// Latest returns the most recently saved session.
func (js *JSONStore) Latest() (*SessionRecord, error) {
	js.mutex.RLock()
	defer js.mutex.RUnlock()

	var latest *SessionRecord
	for _, rec := range js.data.Sessions {
		if latest == nil || rec.SavedAt.After(latest.SavedAt) {
			latest = rec
		}
	}
	if latest == nil {
		return nil, ErrNotFound
	}
	return latest, nil
}

// List returns all saves, newest first.
func (js *JSONStore) List() ([]Summary, error) {
	js.mutex.RLock()
	defer js.mutex.RUnlock()

	out := make([]Summary, 0, len(js.data.Sessions))
	for _, rec := range js.data.Sessions {
		out = append(out, Summary{ID: rec.ID, SavedAt: rec.SavedAt, HallIndex: rec.HallIndex})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SavedAt.After(out[j].SavedAt) })
	return out, nil
}

// Delete removes the session saved under id.
func (js *JSONStore) Delete(id string) error {
	js.mutex.Lock()
	if _, exists := js.data.Sessions[id]; !exists {
		js.mutex.Unlock()
		return fmt.Errorf("delete session %s: %w", id, ErrNotFound)
	}
	delete(js.data.Sessions, id)
	js.mutex.Unlock()

	return js.saveToFile()
}

// Close is a no-op; every change is already on disk.
func (js *JSONStore) Close() error {
	return nil
}
