// internal/system/spawn.go
package system

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/zyedidia/generic/mapset"

	"go-rune-halls/internal/component"
	"go-rune-halls/internal/config"
	"go-rune-halls/internal/defs"
	"go-rune-halls/internal/entity"
	"go-rune-halls/internal/event"
	"go-rune-halls/internal/utils"
	"go-rune-halls/pkg/grid"
)

// SpawnSystem periodically drops monsters and enchantments into the active hall
// and ages the enchantments already there.
type SpawnSystem struct {
	events           event.Publisher
	rng              *utils.PRNGService
	log              zerolog.Logger
	monsterTable     []defs.SpawnEntry
	enchantmentTable []defs.SpawnEntry

	monsterTimer     int
	enchantmentTimer int
}

func NewSpawnSystem(events event.Publisher, rng *utils.PRNGService, catalog *defs.Catalog, log zerolog.Logger) *SpawnSystem {
	return &SpawnSystem{
		events:           events,
		rng:              rng,
		log:              log,
		monsterTable:     catalog.MonsterTable,
		enchantmentTable: catalog.EnchantmentTable,
	}
}

// Reset zeroes both spawn counters, used when a hall starts.
func (s *SpawnSystem) Reset() {
	s.monsterTimer = 0
	s.enchantmentTimer = 0
}

// Counters exposes the tick counters.
func (s *SpawnSystem) Counters() (monster, enchantment int) {
	return s.monsterTimer, s.enchantmentTimer
}

// Update advances both counters by one tick, spawning when a threshold is hit, then
// ages the hall's enchantments. It returns the monster spawned this tick, if any.
func (s *SpawnSystem) Update(hall *entity.Hall, hero *entity.Hero, remaining, starting time.Duration) *entity.Monster {
	var spawned *entity.Monster

	s.monsterTimer++
	if s.monsterTimer >= config.MonsterSpawnInterval {
		s.monsterTimer = 0
		kind := component.MonsterKind(s.rng.ChooseWeighted(s.monsterTable))
		spawned = s.SpawnMonster(hall, hero, kind, WizardModeFor(remaining, starting))
	}

	s.enchantmentTimer++
	if s.enchantmentTimer >= config.EnchantmentSpawnInterval {
		s.enchantmentTimer = 0
		kind := component.EnchantmentKind(s.rng.ChooseWeighted(s.enchantmentTable))
		s.SpawnEnchantment(hall, hero, kind)
	}

	for _, e := range hall.AgeEnchantments() {
		s.log.Debug().Str("kind", string(e.Kind)).Str("pos", e.Position.String()).Msg("enchantment expired")
	}
	return spawned
}

// SpawnMonster places a monster of kind on a random free cell away from the hero.
func (s *SpawnSystem) SpawnMonster(hall *entity.Hall, hero *entity.Hero, kind component.MonsterKind, mode component.WizardMode) *entity.Monster {
	pos, ok := hall.RandomFreeCell(s.avoidSet(hero))
	if !ok {
		s.log.Debug().Str("kind", string(kind)).Msg("no free cell for monster")
		return nil
	}
	behavior, err := NewBehavior(kind, mode, hall, s.events)
	if err != nil {
		s.log.Error().Err(err).Msg("monster spawn")
		return nil
	}
	m := entity.NewMonster(kind, pos, behavior)
	if !hall.AddMonster(m) {
		return nil
	}
	s.log.Debug().Str("kind", string(kind)).Str("strategy", behavior.Name()).Str("pos", pos.String()).Msg("monster spawned")
	publish(s.events, event.MonsterSpawned, event.MonsterSpawnedData{
		Kind:     string(kind),
		Strategy: behavior.Name(),
		Position: pos,
	})
	return m
}

// SpawnEnchantment places an enchantment of kind with the standard lifetime.
func (s *SpawnSystem) SpawnEnchantment(hall *entity.Hall, hero *entity.Hero, kind component.EnchantmentKind) *component.Enchantment {
	if !kind.Valid() {
		s.log.Error().Str("kind", string(kind)).Msg("unknown enchantment kind")
		return nil
	}
	pos, ok := hall.RandomFreeCell(s.avoidSet(hero))
	if !ok {
		return nil
	}
	e := component.NewEnchantment(kind, pos, config.EnchantmentLifetime)
	if !hall.AddEnchantment(e) {
		return nil
	}
	s.log.Debug().Str("kind", string(kind)).Str("pos", pos.String()).Msg("enchantment spawned")
	return e
}

// avoidSet keeps spawns off the hero's cell and its direct neighbours.
func (s *SpawnSystem) avoidSet(hero *entity.Hero) *mapset.Set[grid.Position] {
	avoid := mapset.New[grid.Position]()
	if hero == nil {
		return &avoid
	}
	p := hero.Position()
	avoid.Put(p)
	for _, n := range p.Neighbors() {
		avoid.Put(n)
	}
	return &avoid
}
