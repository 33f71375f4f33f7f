// internal/system/fighter.go
package system

import (
	"go-rune-halls/internal/component"
	"go-rune-halls/internal/config"
	"go-rune-halls/internal/entity"
	"go-rune-halls/internal/event"
	"go-rune-halls/pkg/grid"
)

// FighterBehavior stabs an adjacent hero. A hit costs a long cooldown, a miss a
// short one. While a lure is set the fighter walks to it instead of stabbing.
type FighterBehavior struct {
	events   event.Publisher
	cooldown int

	lure    *grid.Position
	lureAge int
}

func NewFighterBehavior(events event.Publisher) *FighterBehavior {
	return &FighterBehavior{events: events}
}

func (b *FighterBehavior) Name() string { return string(component.Fighter) }

func (b *FighterBehavior) Topics() []event.Type {
	return []event.Type{event.Distraction}
}

// OnEvent sets the lure from a Distraction.
func (b *FighterBehavior) OnEvent(e event.Event) {
	if e.Type != event.Distraction {
		return
	}
	if data, ok := e.Data.(event.DistractionData); ok {
		target := data.Target
		b.lure = &target
		b.lureAge = 0
	}
}

// LureTarget is read by the hall to step the fighter.
func (b *FighterBehavior) LureTarget() (grid.Position, bool) {
	if b.lure == nil {
		return grid.Position{}, false
	}
	return *b.lure, true
}

// Cooldown returns the ticks left before the next stab attempt.
func (b *FighterBehavior) Cooldown() int { return b.cooldown }

func (b *FighterBehavior) Act(hall *entity.Hall, hero *entity.Hero, self *entity.Monster) {
	if b.lure != nil {
		b.lureAge++
		if self.Position.Distance(*b.lure) <= config.LureArrivalDistance || b.lureAge >= config.LureTimeout {
			b.lure = nil
			b.lureAge = 0
		}
		return
	}

	if b.cooldown > 0 {
		b.cooldown--
	}
	if b.cooldown > 0 || hero == nil || hero.IsDead() {
		return
	}

	target := hero.Position()
	if self.Position.Distance(target) <= config.FighterReach {
		publish(b.events, event.HeroStabbed, event.HitData{Attacker: self.Position, Target: target})
		b.cooldown = config.FighterHitCooldown
		return
	}
	b.cooldown = config.FighterMissCooldown
}
