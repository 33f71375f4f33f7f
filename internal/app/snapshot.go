// internal/app/snapshot.go
package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"go-rune-halls/internal/component"
	"go-rune-halls/internal/entity"
	"go-rune-halls/internal/persistence"
	"go-rune-halls/internal/state"
	"go-rune-halls/internal/system"
)

var (
	// ErrNotPlaying is returned when a save is requested outside play mode.
	ErrNotPlaying = errors.New("session is not in play mode")
	// ErrInvalidRecord wraps every reason a saved session cannot be installed.
	ErrInvalidRecord = errors.New("invalid session record")
)

// Snapshot captures the running game. Behaviour internals such as cooldowns are not
// kept; monsters get fresh strategies on load.
func (s *Session) Snapshot() (*persistence.SessionRecord, error) {
	if s.Mode() != component.ModePlay {
		return nil, ErrNotPlaying
	}

	rec := &persistence.SessionRecord{
		ID:              uuid.NewString(),
		SavedAt:         time.Now().UTC(),
		HallIndex:       s.active,
		RemainingMillis: s.timer.Remaining().Milliseconds(),
		Hero:            snapshotHero(s.hero),
		Halls:           make([]persistence.HallRecord, len(s.halls)),
	}
	for i, hall := range s.halls {
		rec.Halls[i] = snapshotHall(hall)
	}
	return rec, nil
}

func snapshotHero(hero *entity.Hero) persistence.HeroRecord {
	out := persistence.HeroRecord{
		Position: hero.Position(),
		Lives:    hero.Lives(),
	}
	if inv := hero.Inventory(); len(inv) > 0 {
		out.Inventory = map[component.EnchantmentKind]int(inv)
	}
	for _, kind := range component.EnchantmentKinds {
		if ticks := hero.EffectRemaining(kind); ticks > 0 {
			if out.Effects == nil {
				out.Effects = make(map[component.EnchantmentKind]int)
			}
			out.Effects[kind] = ticks
		}
	}
	return out
}

func snapshotHall(hall *entity.Hall) persistence.HallRecord {
	out := persistence.HallRecord{
		Name:   hall.Name,
		Width:  hall.Width(),
		Height: hall.Height(),
	}
	for _, obj := range hall.Objects() {
		out.Objects = append(out.Objects, persistence.ObjectRecord{
			Name: obj.Name, Width: obj.Width, Height: obj.Height, Icon: obj.Icon, TopLeft: obj.TopLeft,
		})
	}
	for _, m := range hall.Monsters() {
		mr := persistence.MonsterRecord{Kind: m.Kind, Position: m.Position}
		if mode, ok := system.WizardModeOf(m.Behavior()); ok {
			mr.Mode = mode
		}
		out.Monsters = append(out.Monsters, mr)
	}
	for _, e := range hall.Enchantments() {
		out.Enchantments = append(out.Enchantments, persistence.EnchantmentRecord{
			Kind: e.Kind, Position: e.Position, TTL: e.TTL,
		})
	}
	if r := hall.Rune(); r != nil {
		out.Rune = &persistence.RuneRecord{
			Position:  r.Position,
			Revealed:  r.Revealed,
			Collected: r.Collected,
			Hidden:    r.IsHidden(),
		}
	}
	return out
}

// Restore installs rec and resumes play in its active hall. The record is fully
// validated first; on error the running game is left untouched.
func (s *Session) Restore(rec *persistence.SessionRecord) error {
	if rec == nil {
		return fmt.Errorf("%w: empty record", ErrInvalidRecord)
	}
	if len(rec.Halls) != len(s.catalog.Halls) {
		return fmt.Errorf("%w: %d halls, catalogue has %d", ErrInvalidRecord, len(rec.Halls), len(s.catalog.Halls))
	}
	if rec.HallIndex < 0 || rec.HallIndex >= len(rec.Halls) {
		return fmt.Errorf("%w: hall index %d out of range", ErrInvalidRecord, rec.HallIndex)
	}
	if rec.RemainingMillis <= 0 {
		return fmt.Errorf("%w: no time remaining", ErrInvalidRecord)
	}
	if rec.Hero.Lives <= 0 {
		return fmt.Errorf("%w: hero has no lives", ErrInvalidRecord)
	}

	halls := make([]*entity.Hall, len(rec.Halls))
	for i, hr := range rec.Halls {
		hall, err := s.restoreHall(i, hr)
		if err != nil {
			return fmt.Errorf("%w: hall %d: %v", ErrInvalidRecord, i, err)
		}
		halls[i] = hall
	}

	active := halls[rec.HallIndex]
	// Play puts the hero on the start cell even when it lies in a margin row.
	onStart := rec.Hero.Position == active.Start() && active.OccupantAt(active.Start()) == nil
	if !onStart && (!active.IsWithinBounds(rec.Hero.Position) || !active.CanHeroEnter(rec.Hero.Position)) {
		return fmt.Errorf("%w: hero at %s cannot stand there", ErrInvalidRecord, rec.Hero.Position)
	}
	hero := entity.NewHero(rec.Hero.Position, s.bus)
	hero.Restore(rec.Hero.Lives)
	inv := make(component.Inventory, len(rec.Hero.Inventory))
	for kind, n := range rec.Hero.Inventory {
		if !kind.Storable() || n < 0 {
			return fmt.Errorf("%w: inventory entry %q", ErrInvalidRecord, kind)
		}
		if n > 0 {
			inv[kind] = n
		}
	}
	hero.SetInventory(inv)
	for kind, ticks := range rec.Hero.Effects {
		if !kind.Valid() {
			return fmt.Errorf("%w: effect %q", ErrInvalidRecord, kind)
		}
		hero.ApplyEffect(kind, ticks)
	}

	// Leave the current mode against the old world before swapping it out.
	s.sm.SetState(nil)
	s.halls = halls
	s.active = rec.HallIndex
	s.hero = hero
	s.over = false
	s.result = ""
	s.status = ""
	s.log.Info().Str("id", rec.ID).Int("hall", rec.HallIndex).Msg("session restored")
	s.sm.SetState(state.NewResumedPlayState(s, rec.Remaining()))
	return nil
}

func (s *Session) restoreHall(i int, hr persistence.HallRecord) (*entity.Hall, error) {
	def := s.catalog.Halls[i]
	if hr.Width != def.Width || hr.Height != def.Height {
		return nil, fmt.Errorf("size %dx%d does not match %dx%d", hr.Width, hr.Height, def.Width, def.Height)
	}
	hall := entity.NewHall(def, s.rng, s.bus)
	hall.Index = i

	for _, or := range hr.Objects {
		obj := component.NewDungeonObject(or.Name, or.Width, or.Height, or.Icon)
		if !hall.AddObject(obj, or.TopLeft) {
			return nil, fmt.Errorf("object %q at %s does not fit", or.Name, or.TopLeft)
		}
	}

	// The rune goes in before monsters and enchantments so a revealed rune keeps its cell.
	if rr := hr.Rune; rr != nil {
		switch {
		case rr.Collected:
			hall.SetRune(&component.Rune{Position: rr.Position, Collected: true})
		case rr.Hidden:
			obj := hall.ObjectAt(rr.Position)
			if obj == nil || obj.TopLeft != rr.Position {
				return nil, fmt.Errorf("no object hides the rune at %s", rr.Position)
			}
			r := &component.Rune{}
			r.HideUnder(obj)
			hall.SetRune(r)
		case !rr.Revealed:
			// Only a hall without objects has nowhere to hide its rune.
			if hall.ObjectCount() > 0 {
				return nil, fmt.Errorf("rune is neither hidden nor revealed")
			}
			hall.SetRune(&component.Rune{})
		default:
			if !hall.IsFree(rr.Position) {
				return nil, fmt.Errorf("rune cell %s is taken", rr.Position)
			}
			hall.SetRune(&component.Rune{Position: rr.Position, Revealed: true})
		}
	}

	for _, mr := range hr.Monsters {
		behavior, err := system.NewBehavior(mr.Kind, mr.Mode, hall, s.bus)
		if err != nil {
			return nil, err
		}
		if !hall.AddMonster(entity.NewMonster(mr.Kind, mr.Position, behavior)) {
			return nil, fmt.Errorf("monster at %s does not fit", mr.Position)
		}
	}
	for _, er := range hr.Enchantments {
		if !er.Kind.Valid() {
			return nil, fmt.Errorf("unknown enchantment %q", er.Kind)
		}
		if !hall.AddEnchantment(component.NewEnchantment(er.Kind, er.Position, er.TTL)) {
			return nil, fmt.Errorf("enchantment at %s does not fit", er.Position)
		}
	}
	return hall, nil
}

// SaveTo snapshots the game into store and returns the new save's ID.
func (s *Session) SaveTo(store persistence.Storage) (string, error) {
	rec, err := s.Snapshot()
	if err != nil {
		return "", err
	}
	if err := store.Save(rec); err != nil {
		s.log.Error().Err(err).Msg("save failed")
		return "", err
	}
	s.status = "Game saved."
	s.log.Info().Str("id", rec.ID).Msg("session saved")
	return rec.ID, nil
}

// LoadFrom restores the save with the given ID, or the newest one when id is empty.
func (s *Session) LoadFrom(store persistence.Storage, id string) error {
	var (
		rec *persistence.SessionRecord
		err error
	)
	if id == "" {
		rec, err = store.Latest()
	} else {
		rec, err = store.Load(id)
	}
	if err == nil {
		err = s.Restore(rec)
	}
	if err != nil {
		s.log.Error().Err(err).Msg("load failed")
		s.status = "Load failed."
		return err
	}
	return nil
}
