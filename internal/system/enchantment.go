// internal/system/enchantment.go
package system

import (
	"time"

	"github.com/rs/zerolog"

	"go-rune-halls/internal/component"
	"go-rune-halls/internal/config"
	"go-rune-halls/internal/entity"
	"go-rune-halls/internal/event"
	"go-rune-halls/pkg/grid"
)

// EnchantmentSystem runs the hero's timed effects and applies stored enchantments
// when the player uses them.
type EnchantmentSystem struct {
	events event.Publisher
	log    zerolog.Logger
}

func NewEnchantmentSystem(events event.Publisher, log zerolog.Logger) *EnchantmentSystem {
	return &EnchantmentSystem{events: events, log: log}
}

// Update ticks every active effect and cleans up after the ones that ended.
func (s *EnchantmentSystem) Update(hall *entity.Hall, hero *entity.Hero) {
	for _, kind := range hero.TickEffects() {
		if kind == component.Reveal && hall != nil {
			hall.HideHint()
		}
		s.log.Debug().Str("effect", string(kind)).Msg("effect ended")
	}
}

// Use consumes one stored enchantment of kind. dir aims the luring gem. Returns false
// when the hero holds none or the effect cannot apply, in which case nothing is spent.
func (s *EnchantmentSystem) Use(kind component.EnchantmentKind, dir grid.Direction, hall *entity.Hall, hero *entity.Hero) bool {
	if hero == nil || hall == nil || hero.IsDead() || !kind.Storable() {
		return false
	}
	if hero.Inventory().Count(kind) == 0 {
		return false
	}

	switch kind {
	case component.CloakOfProtection:
		hero.TakeFromInventory(kind)
		hero.ApplyEffect(kind, config.CloakDuration)
		publish(s.events, event.Invisibility, event.InvisibilityData{
			Duration: time.Duration(config.CloakDuration) * config.TickDuration,
		})
	case component.Reveal:
		if !hall.ShowHint() {
			return false
		}
		hero.TakeFromInventory(kind)
		hero.ApplyEffect(kind, config.RevealDuration)
	case component.LuringGem:
		hero.TakeFromInventory(kind)
		target := ThrowTarget(hall, hero.Position(), dir)
		publish(s.events, event.Distraction, event.DistractionData{Target: target})
	}
	s.log.Debug().Str("enchantment", string(kind)).Msg("enchantment used")
	return true
}

// ThrowTarget walks from origin in dir for up to LureThrowRange walkable cells.
func ThrowTarget(hall *entity.Hall, origin grid.Position, dir grid.Direction) grid.Position {
	target := origin
	for i := 0; i < config.LureThrowRange; i++ {
		next := target.Step(dir)
		if next == target || !hall.IsWalkable(next) {
			break
		}
		target = next
	}
	return target
}
