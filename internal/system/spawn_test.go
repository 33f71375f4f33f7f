package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-rune-halls/internal/component"
	"go-rune-halls/internal/config"
	"go-rune-halls/internal/defs"
	"go-rune-halls/internal/entity"
	"go-rune-halls/internal/event"
	"go-rune-halls/internal/logging"
	"go-rune-halls/internal/utils"
	"go-rune-halls/pkg/grid"
)

func TestSpawnSystemMonsterCadence(t *testing.T) {
	w := newWorld(t, 16, 12, grid.Position{X: 0, Y: 1})
	s := NewSpawnSystem(w.bus, utils.NewPRNGService(5), defs.DefaultCatalog(), logging.Nop())

	for i := 0; i < config.MonsterSpawnInterval-1; i++ {
		require.Nil(t, s.Update(w.hall, w.hero, 50*time.Second, 100*time.Second))
	}
	assert.Empty(t, w.hall.Monsters())

	m := s.Update(w.hall, w.hero, 50*time.Second, 100*time.Second)
	require.NotNil(t, m)
	assert.Equal(t, []*entity.Monster{m}, w.hall.Monsters())
	assert.Equal(t, 1, w.rec.Count(event.MonsterSpawned))

	hero := w.hero.Position()
	assert.NotEqual(t, hero, m.Position)
	for _, n := range hero.Neighbors() {
		assert.NotEqual(t, n, m.Position)
	}
	monster, _ := s.Counters()
	assert.Equal(t, 0, monster)
}

func TestSpawnedWizardModeFollowsClock(t *testing.T) {
	w := newWorld(t, 16, 12, grid.Position{X: 0, Y: 1})
	s := NewSpawnSystem(w.bus, utils.NewPRNGService(5), defs.DefaultCatalog(), logging.Nop())

	m := s.SpawnMonster(w.hall, w.hero, component.Wizard, WizardModeFor(10*time.Second, 100*time.Second))
	require.NotNil(t, m)
	mode, ok := WizardModeOf(m.Behavior())
	require.True(t, ok)
	assert.Equal(t, component.WizardHelpful, mode)

	last, _ := w.rec.Last(event.MonsterSpawned)
	assert.Equal(t, "wizard_helpful", last.Data.(event.MonsterSpawnedData).Strategy)
}

func TestSpawnSystemEnchantmentLifetime(t *testing.T) {
	w := newWorld(t, 16, 12, grid.Position{X: 0, Y: 1})
	catalog := defs.DefaultCatalog()
	catalog.MonsterTable = []defs.SpawnEntry{{ID: "archer", Weight: 1}}
	s := NewSpawnSystem(w.bus, utils.NewPRNGService(5), catalog, logging.Nop())

	for i := 0; i < config.EnchantmentSpawnInterval; i++ {
		s.Update(w.hall, w.hero, 0, 0)
	}
	require.Len(t, w.hall.Enchantments(), 1)
	e := w.hall.Enchantments()[0]
	assert.Equal(t, config.EnchantmentLifetime-1, e.TTL)

	for i := 0; i < config.EnchantmentLifetime-2; i++ {
		s.Update(w.hall, w.hero, 0, 0)
	}
	assert.Len(t, w.hall.Enchantments(), 1)
	s.Update(w.hall, w.hero, 0, 0)
	assert.Empty(t, w.hall.Enchantments())
	assert.Nil(t, w.hall.OccupantAt(e.Position))
}

func TestSpawnFailsWhenHallIsFull(t *testing.T) {
	w := newWorld(t, 3, 3, grid.Position{X: 1, Y: 1})
	s := NewSpawnSystem(w.bus, utils.NewPRNGService(5), defs.DefaultCatalog(), logging.Nop())
	assert.Nil(t, s.SpawnMonster(w.hall, w.hero, component.Archer, ""))
	assert.Nil(t, s.SpawnEnchantment(w.hall, w.hero, component.ExtraLife))
	assert.Nil(t, s.SpawnEnchantment(w.hall, w.hero, "bogus"))
	assert.Equal(t, 0, w.rec.Count(event.MonsterSpawned))
}
