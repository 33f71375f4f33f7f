// internal/entity/hero.go
package entity

import (
	"sync"

	"go-rune-halls/internal/component"
	"go-rune-halls/internal/config"
	"go-rune-halls/internal/event"
	"go-rune-halls/pkg/grid"
)

// HeroTopics are the topics a hero reacts to.
var HeroTopics = []event.Type{event.HeroHitByArrow, event.HeroStabbed, event.AddLives}

// Hero is the player character. Position and lives are each guarded by their own
// lock because either may be mutated from a timer-originated event while the tick
// goroutine moves the hero.
type Hero struct {
	posMu sync.Mutex
	pos   grid.Position

	lifeMu sync.Mutex
	lives  int
	dead   bool

	stateMu   sync.RWMutex
	effects   map[component.EnchantmentKind]*component.StatusEffect
	inventory component.Inventory

	events event.Publisher
}

// NewHero creates a hero with the starting number of lives.
func NewHero(pos grid.Position, events event.Publisher) *Hero {
	return &Hero{
		pos:       pos,
		lives:     config.HeroStartLives,
		effects:   make(map[component.EnchantmentKind]*component.StatusEffect),
		inventory: make(component.Inventory),
		events:    events,
	}
}

func (h *Hero) OccupantKind() component.OccupantKind { return component.OccupantHero }

// SetPublisher replaces the bus the hero reports to.
func (h *Hero) SetPublisher(p event.Publisher) {
	h.events = p
}

// Position returns the current cell.
func (h *Hero) Position() grid.Position {
	h.posMu.Lock()
	defer h.posMu.Unlock()
	return h.pos
}

// SetPosition teleports the hero without any walkability check.
func (h *Hero) SetPosition(p grid.Position) {
	h.posMu.Lock()
	h.pos = p
	h.posMu.Unlock()
}

// Move steps one cell in dir if the hall allows it. Returns whether the hero moved.
// Dead heroes do not move.
func (h *Hero) Move(dir grid.Direction, hall *Hall) bool {
	if dir == grid.None || hall == nil || h.IsDead() {
		return false
	}
	h.posMu.Lock()
	defer h.posMu.Unlock()
	target := h.pos.Step(dir)
	if !hall.CanHeroEnter(target) {
		return false
	}
	h.pos = target
	return true
}

// Lives returns the remaining lives.
func (h *Hero) Lives() int {
	h.lifeMu.Lock()
	defer h.lifeMu.Unlock()
	return h.lives
}

// IsDead reports whether the hero has died. Once true it stays true.
func (h *Hero) IsDead() bool {
	h.lifeMu.Lock()
	defer h.lifeMu.Unlock()
	return h.dead
}

// DecreaseLife removes one life. Reaching zero sets the death flag and publishes
// HeroDead exactly once; later calls are no-ops.
func (h *Hero) DecreaseLife() {
	h.lifeMu.Lock()
	if h.dead {
		h.lifeMu.Unlock()
		return
	}
	if h.lives > 0 {
		h.lives--
	}
	died := h.lives == 0
	if died {
		h.dead = true
	}
	h.lifeMu.Unlock()

	if died && h.events != nil {
		h.events.Dispatch(event.Event{Type: event.HeroDead, Data: h.Position()})
	}
}

// AddLives grants extra lives. Ignored after death.
func (h *Hero) AddLives(n int) {
	if n <= 0 {
		return
	}
	h.lifeMu.Lock()
	defer h.lifeMu.Unlock()
	if h.dead {
		return
	}
	h.lives += n
}

// Restore sets lives and clears the death flag, used when loading or starting a run.
func (h *Hero) Restore(lives int) {
	h.lifeMu.Lock()
	defer h.lifeMu.Unlock()
	if lives < 0 {
		lives = 0
	}
	h.lives = lives
	h.dead = lives == 0
}

// ApplyEffect starts (or refreshes) a timed effect lasting ticks.
func (h *Hero) ApplyEffect(kind component.EnchantmentKind, ticks int) {
	h.stateMu.Lock()
	defer h.stateMu.Unlock()
	h.effects[kind] = &component.StatusEffect{Kind: kind, Timer: ticks}
}

// RevokeEffect ends an effect early.
func (h *Hero) RevokeEffect(kind component.EnchantmentKind) {
	h.stateMu.Lock()
	defer h.stateMu.Unlock()
	delete(h.effects, kind)
}

// HasEffect reports whether kind is active.
func (h *Hero) HasEffect(kind component.EnchantmentKind) bool {
	h.stateMu.RLock()
	defer h.stateMu.RUnlock()
	_, ok := h.effects[kind]
	return ok
}

// EffectRemaining returns the ticks left on kind, or 0.
func (h *Hero) EffectRemaining(kind component.EnchantmentKind) int {
	h.stateMu.RLock()
	defer h.stateMu.RUnlock()
	if e, ok := h.effects[kind]; ok {
		return e.Timer
	}
	return 0
}

// TickEffects advances every active effect by one tick and returns the kinds that ended.
func (h *Hero) TickEffects() []component.EnchantmentKind {
	h.stateMu.Lock()
	defer h.stateMu.Unlock()
	var expired []component.EnchantmentKind
	for _, kind := range component.EnchantmentKinds {
		e, ok := h.effects[kind]
		if !ok {
			continue
		}
		if e.Tick() {
			delete(h.effects, kind)
			expired = append(expired, kind)
		}
	}
	return expired
}

// ClearEffects drops all timed effects, used on hall transitions.
func (h *Hero) ClearEffects() {
	h.stateMu.Lock()
	defer h.stateMu.Unlock()
	h.effects = make(map[component.EnchantmentKind]*component.StatusEffect)
}

// Inventory returns a copy of the stored enchantments.
func (h *Hero) Inventory() component.Inventory {
	h.stateMu.RLock()
	defer h.stateMu.RUnlock()
	return h.inventory.Clone()
}

// SetInventory replaces the stored enchantments.
func (h *Hero) SetInventory(inv component.Inventory) {
	h.stateMu.Lock()
	defer h.stateMu.Unlock()
	if inv == nil {
		inv = make(component.Inventory)
	}
	h.inventory = inv.Clone()
}

// TakeFromInventory consumes one stored enchantment of kind.
func (h *Hero) TakeFromInventory(kind component.EnchantmentKind) bool {
	h.stateMu.Lock()
	defer h.stateMu.Unlock()
	return h.inventory.Take(kind)
}

// CollectEnchantment applies a pickup. Instant kinds publish their effect; storable
// kinds go to the inventory. Returns false for already-collected enchantments.
func (h *Hero) CollectEnchantment(e *component.Enchantment) bool {
	if e == nil || e.Collected || h.IsDead() {
		return false
	}
	e.Collected = true

	switch e.Kind {
	case component.ExtraTime:
		h.publish(event.AddTime, event.AddTimeData{Amount: config.ExtraTimeAmount})
	case component.ExtraLife:
		h.publish(event.AddLives, event.AddLivesData{Count: config.ExtraLifeAmount})
	default:
		h.stateMu.Lock()
		h.inventory.Add(e.Kind)
		h.stateMu.Unlock()
	}
	return true
}

// OnEvent reacts to damage and life pickups.
func (h *Hero) OnEvent(e event.Event) {
	switch e.Type {
	case event.HeroHitByArrow, event.HeroStabbed:
		h.DecreaseLife()
	case event.AddLives:
		if data, ok := e.Data.(event.AddLivesData); ok {
			h.AddLives(data.Count)
		}
	}
}

// Subscribe registers the hero for HeroTopics.
func (h *Hero) Subscribe(d *event.Dispatcher) {
	for _, t := range HeroTopics {
		d.Subscribe(t, h)
	}
}

// Unsubscribe removes the hero from HeroTopics.
func (h *Hero) Unsubscribe(d *event.Dispatcher) {
	for _, t := range HeroTopics {
		d.Unsubscribe(t, h)
	}
}

func (h *Hero) publish(t event.Type, data interface{}) {
	if h.events != nil {
		h.events.Dispatch(event.Event{Type: t, Data: data})
	}
}
