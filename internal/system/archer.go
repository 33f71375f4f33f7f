// internal/system/archer.go
package system

import (
	"go-rune-halls/internal/component"
	"go-rune-halls/internal/config"
	"go-rune-halls/internal/entity"
	"go-rune-halls/internal/event"
)

// ArcherBehavior shoots once per interval. The shot lands when the hero is within
// range and not cloaked.
type ArcherBehavior struct {
	events event.Publisher
	timer  int
}

func NewArcherBehavior(events event.Publisher) *ArcherBehavior {
	return &ArcherBehavior{events: events}
}

func (b *ArcherBehavior) Name() string { return string(component.Archer) }

func (b *ArcherBehavior) Act(hall *entity.Hall, hero *entity.Hero, self *entity.Monster) {
	if hero == nil || hero.IsDead() {
		return
	}
	b.timer++
	if b.timer < config.ArcherShotInterval {
		return
	}
	b.timer = 0

	target := hero.Position()
	hit := self.Position.Distance(target) <= config.ArcherRange &&
		!hero.HasEffect(component.CloakOfProtection)

	publish(b.events, event.ArcherArrowShot, event.ArrowShotData{From: self.Position, Hit: hit})
	if !hit {
		return
	}
	data := event.HitData{Attacker: self.Position, Target: target}
	publish(b.events, event.ArcherHitHero, data)
	publish(b.events, event.HeroHitByArrow, data)
}
