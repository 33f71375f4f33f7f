// internal/state/play_state.go
package state

import (
	"time"

	"github.com/rs/zerolog"

	"go-rune-halls/internal/component"
	"go-rune-halls/internal/entity"
	"go-rune-halls/internal/event"
	"go-rune-halls/internal/input"
	"go-rune-halls/internal/interfaces"
	"go-rune-halls/internal/system"
)

// PlayState runs the simulation of the active hall and walks the hero through the
// hall sequence as runes are collected.
type PlayState struct {
	ctx interfaces.GameContext
	log zerolog.Logger

	spawner      *system.SpawnSystem
	enchantments *system.EnchantmentSystem

	paused   bool
	starting time.Duration

	resume    bool
	remaining time.Duration
}

// NewPlayState starts play at the active hall with a fresh clock.
func NewPlayState(ctx interfaces.GameContext) *PlayState {
	log := ctx.Logger().With().Str("component", "play").Logger()
	return &PlayState{
		ctx:          ctx,
		log:          log,
		spawner:      system.NewSpawnSystem(ctx.Bus(), ctx.RNG(), ctx.Catalog(), log),
		enchantments: system.NewEnchantmentSystem(ctx.Bus(), log),
	}
}

// NewResumedPlayState continues a loaded session: the hall, hero and monsters are
// kept as they are and the clock restarts from remaining.
func NewResumedPlayState(ctx interfaces.GameContext, remaining time.Duration) *PlayState {
	p := NewPlayState(ctx)
	p.resume = true
	p.remaining = remaining
	return p
}

func (p *PlayState) Mode() component.Mode { return component.ModePlay }

func (p *PlayState) Enter() {
	bus := p.ctx.Bus()
	bus.Subscribe(event.RuneCollected, p)
	timer := p.ctx.Timer()
	for _, t := range timer.Topics() {
		bus.Subscribe(t, timer)
	}
	p.ctx.Hero().Subscribe(bus)

	if p.resume {
		p.enterHall(p.ctx.ActiveHallIndex(), p.remaining, false)
	} else {
		p.enterHall(p.ctx.ActiveHallIndex(), 0, true)
	}
}

func (p *PlayState) Exit() {
	if hall := p.activeHall(); hall != nil {
		p.leaveHall(hall)
	}
	timer := p.ctx.Timer()
	timer.Stop()
	timer.Resume()
	p.ctx.Queue().Clear()

	bus := p.ctx.Bus()
	bus.Unsubscribe(event.RuneCollected, p)
	for _, t := range timer.Topics() {
		bus.Unsubscribe(t, timer)
	}
	p.ctx.Hero().Unsubscribe(bus)
}

// IsPaused reports the mode-level pause flag.
func (p *PlayState) IsPaused() bool { return p.paused }

// StartingTime is the clock the active hall started with.
func (p *PlayState) StartingTime() time.Duration { return p.starting }

// SetPaused pauses or resumes the simulation and the clock together.
func (p *PlayState) SetPaused(paused bool) {
	p.paused = paused
	if paused {
		p.ctx.Timer().Pause()
	} else {
		p.ctx.Timer().Resume()
	}
}

func (p *PlayState) Update() {
	if p.paused {
		return
	}
	hall := p.activeHall()
	if hall == nil {
		return
	}
	hero := p.ctx.Hero()
	for _, m := range hall.Update(hero) {
		system.Detach(p.ctx.Bus(), m)
	}

	// A collected rune may have moved us to the next hall.
	hall = p.activeHall()
	if m := p.spawner.Update(hall, hero, p.ctx.Timer().Remaining(), p.starting); m != nil {
		system.Attach(p.ctx.Bus(), m)
	}
	p.enchantments.Update(hall, hero)
}

func (p *PlayState) HandleAction(a input.Action) {
	switch a.Kind {
	case input.TogglePause:
		p.SetPaused(!p.paused)
		return
	case input.Quit:
		p.ctx.Bus().Notify(event.GameOver, event.GameOverData{Reason: event.ReasonAbandoned})
		return
	}
	if p.paused {
		return
	}

	hall := p.activeHall()
	hero := p.ctx.Hero()
	if hall == nil || hero.IsDead() {
		return
	}
	switch a.Kind {
	case input.Move:
		hero.Move(a.Dir, hall)
	case input.Click:
		if hall.EnchantmentAt(a.Cell) != nil {
			hall.CollectEnchantmentAt(hero, a.Cell)
		} else if hall.ObjectAt(a.Cell) != nil {
			hall.SearchObject(hero, a.Cell)
		}
	case input.Use:
		p.enchantments.Use(a.Enchantment, a.Dir, hall, hero)
	}
}

// OnEvent advances to the next hall when the active hall's rune is collected.
func (p *PlayState) OnEvent(e event.Event) {
	if e.Type != event.RuneCollected {
		return
	}
	data, ok := e.Data.(event.RuneData)
	current := p.ctx.ActiveHallIndex()
	if ok && data.HallIndex != current {
		return
	}

	next := current + 1
	if next >= len(p.ctx.Halls()) {
		p.log.Info().Msg("last rune collected")
		p.ctx.Bus().Notify(event.GameCompleted, nil)
		return
	}
	p.leaveHall(p.ctx.Halls()[current])
	p.ctx.SetActiveHallIndex(next)
	p.enterHall(next, 0, true)
}

func (p *PlayState) activeHall() *entity.Hall {
	halls := p.ctx.Halls()
	i := p.ctx.ActiveHallIndex()
	if i < 0 || i >= len(halls) {
		return nil
	}
	return halls[i]
}

// enterHall makes halls[i] live. A fresh entry places the hero at the start, hides a
// new rune and starts the hall's full clock; a resumed one keeps everything as is.
func (p *PlayState) enterHall(i int, remaining time.Duration, fresh bool) {
	hall := p.ctx.Halls()[i]
	hero := p.ctx.Hero()
	hall.Index = i
	hall.SetPublisher(p.ctx.Bus())
	hall.SetHero(hero)

	if fresh {
		hero.SetPosition(hall.Start())
		hero.ClearEffects()
		hall.HideHint()
		if r := hall.Rune(); r == nil || r.Collected {
			hall.SetRune(&component.Rune{})
		}
	}
	for _, m := range hall.Monsters() {
		system.Attach(p.ctx.Bus(), m)
	}

	p.starting = hall.StartingTime()
	if fresh {
		remaining = p.starting
	}
	p.spawner.Reset()

	timer := p.ctx.Timer()
	timer.Stop()
	p.ctx.Queue().Clear()
	timer.Start(remaining)
	if p.paused {
		timer.Pause()
	}
	p.log.Info().Str("hall", hall.Name).Int("index", i).Dur("time", remaining).Msg("hall entered")
}

// leaveHall drops the hall's monsters and enchantments and their subscriptions.
func (p *PlayState) leaveHall(hall *entity.Hall) {
	for _, m := range hall.ClearTransient() {
		system.Detach(p.ctx.Bus(), m)
	}
	hall.SetHero(nil)
}
