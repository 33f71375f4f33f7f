package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-rune-halls/internal/component"
	"go-rune-halls/internal/config"
	"go-rune-halls/internal/event"
	"go-rune-halls/internal/logging"
	"go-rune-halls/pkg/grid"
)

func give(t *testing.T, w *world, kind component.EnchantmentKind) {
	t.Helper()
	require.True(t, w.hero.CollectEnchantment(component.NewEnchantment(kind, grid.Position{}, 1)))
}

func TestUseWithoutInventoryDoesNothing(t *testing.T) {
	w := newWorld(t, 10, 10, grid.Position{X: 1, Y: 1})
	s := NewEnchantmentSystem(w.bus, logging.Nop())
	assert.False(t, s.Use(component.CloakOfProtection, grid.None, w.hall, w.hero))
	assert.False(t, s.Use(component.ExtraTime, grid.None, w.hall, w.hero))
	assert.False(t, w.hero.HasEffect(component.CloakOfProtection))
}

func TestUseCloak(t *testing.T) {
	w := newWorld(t, 10, 10, grid.Position{X: 1, Y: 1})
	s := NewEnchantmentSystem(w.bus, logging.Nop())
	give(t, w, component.CloakOfProtection)

	require.True(t, s.Use(component.CloakOfProtection, grid.None, w.hall, w.hero))
	assert.True(t, w.hero.HasEffect(component.CloakOfProtection))
	assert.Equal(t, 1, w.rec.Count(event.Invisibility))
	assert.Equal(t, 0, w.hero.Inventory().Count(component.CloakOfProtection))

	for i := 0; i < config.CloakDuration; i++ {
		s.Update(w.hall, w.hero)
	}
	assert.False(t, w.hero.HasEffect(component.CloakOfProtection))
}

func TestUseRevealShowsHintUntilExpiry(t *testing.T) {
	w := newWorld(t, 10, 10, grid.Position{X: 1, Y: 1})
	s := NewEnchantmentSystem(w.bus, logging.Nop())
	give(t, w, component.Reveal)

	assert.False(t, s.Use(component.Reveal, grid.None, w.hall, w.hero), "no rune yet")
	assert.Equal(t, 1, w.hero.Inventory().Count(component.Reveal))

	require.True(t, w.hall.AddObject(component.NewDungeonObject("chest", 1, 1, ""), grid.Position{X: 6, Y: 6}))
	w.hall.SetRune(&component.Rune{})
	require.True(t, s.Use(component.Reveal, grid.None, w.hall, w.hero))
	_, _, shown := w.hall.HintRegion()
	assert.True(t, shown)

	for i := 0; i < config.RevealDuration; i++ {
		s.Update(w.hall, w.hero)
	}
	_, _, shown = w.hall.HintRegion()
	assert.False(t, shown)
}

func TestUseLuringGemDistractsFighters(t *testing.T) {
	w := newWorld(t, 16, 12, grid.Position{X: 0, Y: 1})
	s := NewEnchantmentSystem(w.bus, logging.Nop())
	m := w.spawn(t, component.Fighter, "", grid.Position{X: 10, Y: 5})
	give(t, w, component.LuringGem)

	require.True(t, s.Use(component.LuringGem, grid.Right, w.hall, w.hero))
	last, ok := w.rec.Last(event.Distraction)
	require.True(t, ok)
	assert.Equal(t, grid.Position{X: 4, Y: 1}, last.Data.(event.DistractionData).Target)

	target, lured := m.Behavior().(*FighterBehavior).LureTarget()
	assert.True(t, lured)
	assert.Equal(t, grid.Position{X: 4, Y: 1}, target)
}

func TestThrowTargetStopsAtEdge(t *testing.T) {
	w := newWorld(t, 6, 6, grid.Position{X: 4, Y: 2})
	assert.Equal(t, grid.Position{X: 5, Y: 2}, ThrowTarget(w.hall, grid.Position{X: 4, Y: 2}, grid.Right))
	assert.Equal(t, grid.Position{X: 4, Y: 1}, ThrowTarget(w.hall, grid.Position{X: 4, Y: 2}, grid.Up))
	assert.Equal(t, grid.Position{X: 4, Y: 2}, ThrowTarget(w.hall, grid.Position{X: 4, Y: 2}, grid.None))
}
