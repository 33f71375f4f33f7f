package persistence

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-rune-halls/internal/component"
	"go-rune-halls/pkg/grid"
)

func sampleRecord(id string, savedAt time.Time) *SessionRecord {
	return &SessionRecord{
		ID:              id,
		SavedAt:         savedAt,
		HallIndex:       1,
		RemainingMillis: 12500,
		Hero: HeroRecord{
			Position:  grid.Position{X: 3, Y: 4},
			Lives:     2,
			Inventory: map[component.EnchantmentKind]int{component.Reveal: 1},
		},
		Halls: []HallRecord{{
			Name: "earth", Width: 8, Height: 8,
			Objects: []ObjectRecord{{Name: "chest", Width: 1, Height: 1, TopLeft: grid.Position{X: 2, Y: 2}}},
			Monsters: []MonsterRecord{
				{Kind: component.Wizard, Mode: component.WizardIndecisive, Position: grid.Position{X: 5, Y: 5}},
			},
			Rune: &RuneRecord{Position: grid.Position{X: 2, Y: 2}, Hidden: true},
		}},
	}
}

func storageSuite(t *testing.T, store Storage) {
	t.Helper()
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	_, err := store.Latest()
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Save(sampleRecord("a", base)))
	require.NoError(t, store.Save(sampleRecord("b", base.Add(time.Minute))))

	got, err := store.Load("a")
	require.NoError(t, err)
	assert.Equal(t, 1, got.HallIndex)
	assert.Equal(t, 12500*time.Millisecond, got.Remaining())
	assert.Equal(t, grid.Position{X: 3, Y: 4}, got.Hero.Position)
	assert.Equal(t, 1, got.Hero.Inventory[component.Reveal])
	require.Len(t, got.Halls, 1)
	assert.True(t, got.Halls[0].Rune.Hidden)
	assert.Equal(t, component.WizardIndecisive, got.Halls[0].Monsters[0].Mode)

	latest, err := store.Latest()
	require.NoError(t, err)
	assert.Equal(t, "b", latest.ID)

	list, err := store.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID)

	require.NoError(t, store.Delete("b"))
	assert.ErrorIs(t, store.Delete("b"), ErrNotFound)
	_, err = store.Load("b")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Error(t, store.Save(&SessionRecord{}))
}

func TestJSONStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saves", "sessions.json")
	store, err := NewJSONStore(path)
	require.NoError(t, err)
	storageSuite(t, store)
	require.NoError(t, store.Close())

	reopened, err := NewJSONStore(path)
	require.NoError(t, err)
	got, err := reopened.Load("a")
	require.NoError(t, err)
	assert.Equal(t, "earth", got.Halls[0].Name)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestJSONStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewJSONStore(path)
	assert.Error(t, err)
}

func TestJSONStoreFailedWriteKeepsMemoryInSync(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	store, err := NewJSONStore(path)
	require.NoError(t, err)
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, store.Save(sampleRecord("kept", base)))

	// A directory where the temp file goes makes every write fail.
	require.NoError(t, os.Mkdir(path+".tmp", 0o755))

	assert.Error(t, store.Save(sampleRecord("lost", base.Add(time.Minute))))
	_, err = store.Load("lost")
	assert.ErrorIs(t, err, ErrNotFound)
	latest, err := store.Latest()
	require.NoError(t, err)
	assert.Equal(t, "kept", latest.ID)

	changed := sampleRecord("kept", base)
	changed.HallIndex = 0
	assert.Error(t, store.Save(changed))
	got, err := store.Load("kept")
	require.NoError(t, err)
	assert.Equal(t, 1, got.HallIndex)
}

func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("RUNE_HALLS_TEST_DSN")
	if dsn == "" {
		t.Skip("RUNE_HALLS_TEST_DSN not set")
	}
	store, err := NewPostgresStore(dsn)
	require.NoError(t, err)
	defer store.Close()

	_, err = store.db.Exec(`DELETE FROM rune_hall_sessions`)
	require.NoError(t, err)
	storageSuite(t, store)
}
