package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-rune-halls/pkg/grid"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	c := DefaultCatalog()
	require.NoError(t, c.Validate())
	assert.Len(t, c.Halls, 4)
	assert.Equal(t, 6, c.Halls[0].MinObjects)
	obj, ok := c.Object("statue")
	require.True(t, ok)
	assert.Equal(t, 2, obj.Width)
	assert.Equal(t, 2, obj.Height)
}

func TestDefaultCatalogIsACopy(t *testing.T) {
	c := DefaultCatalog()
	c.Halls[0].MinObjects = 99
	assert.Equal(t, 6, DefaultHalls[0].MinObjects)
}

func TestParseCatalogOverridesSections(t *testing.T) {
	data := []byte(`
halls:
  - name: Tiny
    width: 10
    height: 10
    min_objects: 1
    start: {x: 5, y: 5}
monster_table:
  - id: archer
    weight: 3
`)
	c, err := ParseCatalog(data)
	require.NoError(t, err)
	require.Len(t, c.Halls, 1)
	assert.Equal(t, "Tiny", c.Halls[0].Name)
	assert.Equal(t, grid.Position{X: 5, Y: 5}, c.Halls[0].Start)
	assert.Equal(t, []SpawnEntry{{ID: "archer", Weight: 3}}, c.MonsterTable)
	// Untouched sections keep their defaults.
	assert.Equal(t, DefaultObjects, c.Objects)
	assert.Equal(t, DefaultEnchantmentTable, c.EnchantmentTable)
}

func TestParseCatalogRejectsInvalidHalls(t *testing.T) {
	_, err := ParseCatalog([]byte(`
halls:
  - name: Broken
    width: 4
    height: 4
    start: {x: 9, y: 0}
`))
	assert.Error(t, err)

	_, err = ParseCatalog([]byte(`objects: [{id: a, width: 0, height: 1}]`))
	assert.Error(t, err)

	_, err = ParseCatalog([]byte(`halls: [`))
	assert.Error(t, err)
}

func TestLoadCatalogFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("objects:\n  - {id: crate, name: Crate, width: 1, height: 1}\n"), 0o644))

	c, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, c.Objects, 1)
	assert.Equal(t, "crate", c.Objects[0].ID)

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidateStartMustBeWalkable(t *testing.T) {
	tests := []struct {
		name   string
		height int
		start  grid.Position
		ok     bool
	}{
		{"top margin", 8, grid.Position{X: 3, Y: 0}, false},
		{"bottom margin", 8, grid.Position{X: 3, Y: 7}, false},
		{"first walkable row", 8, grid.Position{X: 3, Y: 1}, true},
		{"last walkable row", 8, grid.Position{X: 3, Y: 6}, true},
		{"too short for margins", 2, grid.Position{X: 3, Y: 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultCatalog()
			c.Halls = []HallDefinition{{Name: "h", Width: 8, Height: tt.height, MinObjects: 1, Start: tt.start}}
			err := c.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
