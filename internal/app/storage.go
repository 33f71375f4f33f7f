// internal/app/storage.go
package app

import (
	"fmt"

	"go-rune-halls/internal/persistence"
)

// OpenStorage picks the save backend for a front end: PostgreSQL when dsn is set,
// otherwise a JSON file at path.
func OpenStorage(path, dsn string) (persistence.Storage, error) {
	if dsn != "" {
		store, err := persistence.NewPostgresStore(dsn)
		if err != nil {
			return nil, fmt.Errorf("open postgres store: %w", err)
		}
		return store, nil
	}
	store, err := persistence.NewJSONStore(path)
	if err != nil {
		return nil, fmt.Errorf("open json store: %w", err)
	}
	return store, nil
}
