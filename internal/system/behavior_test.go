package system

import (
	"testing"

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

type world struct {
	bus  *event.Dispatcher
	rec  *event.Recorder
	hall *entity.Hall
	hero *entity.Hero
}

func newWorld(t *testing.T, w, h int, heroAt grid.Position) *world {
	t.Helper()
	bus := event.NewDispatcher(logging.Nop())
	rec := event.NewRecorder(0)
	rec.SubscribeTo(bus, event.Topics...)
	hall := entity.NewHall(defs.HallDefinition{Name: "test", Width: w, Height: h, Start: grid.Position{X: 0, Y: 1}}, utils.NewPRNGService(11), bus)
	hero := entity.NewHero(heroAt, bus)
	hero.Subscribe(bus)
	hall.SetHero(hero)
	return &world{bus: bus, rec: rec, hall: hall, hero: hero}
}

func (w *world) spawn(t *testing.T, kind component.MonsterKind, mode component.WizardMode, at grid.Position) *entity.Monster {
	t.Helper()
	b, err := NewBehavior(kind, mode, w.hall, w.bus)
	require.NoError(t, err)
	m := entity.NewMonster(kind, at, b)
	require.True(t, w.hall.AddMonster(m))
	Attach(w.bus, m)
	return m
}

func act(w *world, m *entity.Monster, n int) {
	for i := 0; i < n; i++ {
		m.Behavior().Act(w.hall, w.hero, m)
	}
}

func TestArcherHitsWithinRange(t *testing.T) {
	w := newWorld(t, 10, 10, grid.Position{X: 1, Y: 1})
	m := w.spawn(t, component.Archer, "", grid.Position{X: 4, Y: 1})

	act(w, m, config.ArcherShotInterval-1)
	assert.Equal(t, 0, w.rec.Count(event.ArcherArrowShot))

	act(w, m, 1)
	assert.Equal(t, 1, w.rec.Count(event.ArcherArrowShot))
	assert.Equal(t, 1, w.rec.Count(event.ArcherHitHero))
	assert.Equal(t, 1, w.rec.Count(event.HeroHitByArrow))
	assert.Equal(t, config.HeroStartLives-1, w.hero.Lives())

	act(w, m, config.ArcherShotInterval)
	assert.Equal(t, config.HeroStartLives-2, w.hero.Lives())
}

func TestArcherMissesOutOfRange(t *testing.T) {
	w := newWorld(t, 10, 10, grid.Position{X: 1, Y: 1})
	m := w.spawn(t, component.Archer, "", grid.Position{X: 6, Y: 1})

	act(w, m, config.ArcherShotInterval)
	shot, ok := w.rec.Last(event.ArcherArrowShot)
	require.True(t, ok)
	assert.False(t, shot.Data.(event.ArrowShotData).Hit)
	assert.Equal(t, 0, w.rec.Count(event.ArcherHitHero))
	assert.Equal(t, config.HeroStartLives, w.hero.Lives())
}

func TestArcherCannotSeeCloakedHero(t *testing.T) {
	w := newWorld(t, 10, 10, grid.Position{X: 1, Y: 1})
	m := w.spawn(t, component.Archer, "", grid.Position{X: 2, Y: 1})
	w.hero.ApplyEffect(component.CloakOfProtection, config.CloakDuration)

	act(w, m, config.ArcherShotInterval*3)
	assert.Equal(t, 3, w.rec.Count(event.ArcherArrowShot))
	assert.Equal(t, 0, w.rec.Count(event.HeroHitByArrow))
	assert.Equal(t, config.HeroStartLives, w.hero.Lives())
}

func TestFighterHitCooldown(t *testing.T) {
	w := newWorld(t, 10, 10, grid.Position{X: 1, Y: 1})
	w.hero.AddLives(10)
	m := w.spawn(t, component.Fighter, "", grid.Position{X: 2, Y: 1})

	act(w, m, 1)
	require.Equal(t, 1, w.rec.Count(event.HeroStabbed))

	act(w, m, config.FighterHitCooldown-1)
	assert.Equal(t, 1, w.rec.Count(event.HeroStabbed))

	act(w, m, 1)
	assert.Equal(t, 2, w.rec.Count(event.HeroStabbed))
}

func TestFighterMissCooldown(t *testing.T) {
	w := newWorld(t, 10, 10, grid.Position{X: 1, Y: 1})
	m := w.spawn(t, component.Fighter, "", grid.Position{X: 5, Y: 5})

	act(w, m, 1)
	assert.Equal(t, 0, w.rec.Count(event.HeroStabbed))

	w.hero.SetPosition(grid.Position{X: 5, Y: 4})
	act(w, m, config.FighterMissCooldown-1)
	assert.Equal(t, 0, w.rec.Count(event.HeroStabbed))

	act(w, m, 1)
	assert.Equal(t, 1, w.rec.Count(event.HeroStabbed))
}

func TestFighterLureSuppressesStab(t *testing.T) {
	w := newWorld(t, 10, 10, grid.Position{X: 1, Y: 1})
	m := w.spawn(t, component.Fighter, "", grid.Position{X: 2, Y: 1})
	fighter := m.Behavior().(*FighterBehavior)

	w.bus.Notify(event.Distraction, event.DistractionData{Target: grid.Position{X: 6, Y: 1}})
	target, ok := fighter.LureTarget()
	require.True(t, ok)
	assert.Equal(t, grid.Position{X: 6, Y: 1}, target)

	act(w, m, 5)
	assert.Equal(t, 0, w.rec.Count(event.HeroStabbed))

	require.True(t, w.hall.MoveMonster(m, grid.Position{X: 6, Y: 1}))
	act(w, m, 1)
	_, ok = fighter.LureTarget()
	assert.False(t, ok)
}

func TestFighterLureTimesOut(t *testing.T) {
	w := newWorld(t, 10, 10, grid.Position{X: 1, Y: 1})
	m := w.spawn(t, component.Fighter, "", grid.Position{X: 8, Y: 8})
	fighter := m.Behavior().(*FighterBehavior)
	fighter.OnEvent(event.Event{Type: event.Distraction, Data: event.DistractionData{Target: grid.Position{X: 0, Y: 8}}})

	act(w, m, config.LureTimeout-1)
	_, ok := fighter.LureTarget()
	assert.True(t, ok)
	act(w, m, 1)
	_, ok = fighter.LureTarget()
	assert.False(t, ok)
}

func TestFighterWalksToLureThroughHall(t *testing.T) {
	w := newWorld(t, 10, 10, grid.Position{X: 1, Y: 8})
	m := w.spawn(t, component.Fighter, "", grid.Position{X: 2, Y: 3})
	w.bus.Notify(event.Distraction, event.DistractionData{Target: grid.Position{X: 4, Y: 3}})

	for i := 0; i < config.LureStepInterval*2; i++ {
		w.hall.Update(w.hero)
	}
	assert.Equal(t, grid.Position{X: 4, Y: 3}, m.Position)
	w.hall.Update(w.hero)
	_, ok := m.Behavior().(*FighterBehavior).LureTarget()
	assert.False(t, ok)
}

func TestChallengingWizardTeleportsHiddenRune(t *testing.T) {
	w := newWorld(t, 10, 10, grid.Position{X: 1, Y: 1})
	obj := component.NewDungeonObject("chest", 1, 1, "")
	require.True(t, w.hall.AddObject(obj, grid.Position{X: 5, Y: 5}))
	r := &component.Rune{}
	w.hall.SetRune(r)
	require.True(t, r.IsHidden())
	m := w.spawn(t, component.Wizard, component.WizardChallenging, grid.Position{X: 8, Y: 8})

	act(w, m, config.WizardChallengeInterval-1)
	assert.Equal(t, 0, w.rec.Count(event.RuneTeleported))

	act(w, m, 1)
	assert.Equal(t, 1, w.rec.Count(event.RuneTeleported))
	assert.True(t, r.Revealed)
	assert.NotEqual(t, w.hero.Position(), r.Position)
	assert.Equal(t, r, w.hall.OccupantAt(r.Position))

	act(w, m, config.WizardChallengeInterval)
	assert.Equal(t, 1, w.rec.Count(event.RuneTeleported))
}

func TestHelpfulWizardMovesHeroThenLeaves(t *testing.T) {
	w := newWorld(t, 10, 10, grid.Position{X: 1, Y: 1})
	m := w.spawn(t, component.Wizard, component.WizardHelpful, grid.Position{X: 8, Y: 8})

	act(w, m, config.WizardHelpfulDelay-1)
	assert.Equal(t, grid.Position{X: 1, Y: 1}, w.hero.Position())
	assert.False(t, m.IsMarkedForRemoval())

	act(w, m, 1)
	assert.NotEqual(t, grid.Position{X: 1, Y: 1}, w.hero.Position())
	assert.True(t, w.hall.IsWalkable(w.hero.Position()))
	assert.True(t, m.IsMarkedForRemoval())

	moved := w.hero.Position()
	act(w, m, config.WizardHelpfulDelay*2)
	assert.Equal(t, moved, w.hero.Position())
}

func TestIndecisiveWizardLeaves(t *testing.T) {
	w := newWorld(t, 10, 10, grid.Position{X: 1, Y: 1})
	m := w.spawn(t, component.Wizard, component.WizardIndecisive, grid.Position{X: 8, Y: 8})

	act(w, m, config.WizardIndecisiveLife-1)
	assert.False(t, m.IsMarkedForRemoval())
	act(w, m, 1)
	assert.True(t, m.IsMarkedForRemoval())
}

func TestDetachedWizardIgnoresTeleport(t *testing.T) {
	w := newWorld(t, 10, 10, grid.Position{X: 1, Y: 1})
	obj := component.NewDungeonObject("chest", 1, 1, "")
	require.True(t, w.hall.AddObject(obj, grid.Position{X: 5, Y: 5}))
	r := &component.Rune{}
	w.hall.SetRune(r)
	m := w.spawn(t, component.Wizard, component.WizardIndecisive, grid.Position{X: 8, Y: 8})
	assert.Equal(t, 2, w.bus.ListenerCount(event.RuneTeleported))

	Detach(w.bus, m)
	w.bus.Notify(event.RuneTeleported, event.RuneData{})
	assert.True(t, r.IsHidden())
}

func TestWizardModeFor(t *testing.T) {
	assert.Equal(t, component.WizardHelpful, WizardModeFor(20, 100))
	assert.Equal(t, component.WizardChallenging, WizardModeFor(80, 100))
	assert.Equal(t, component.WizardIndecisive, WizardModeFor(50, 100))
	assert.Equal(t, component.WizardIndecisive, WizardModeFor(30, 100))
	assert.Equal(t, component.WizardIndecisive, WizardModeFor(5, 0))
}

func TestNewBehaviorRejectsUnknown(t *testing.T) {
	_, err := NewBehavior("dragon", "", nil, nil)
	assert.Error(t, err)
	_, err = NewBehavior(component.Wizard, "moody", nil, nil)
	assert.Error(t, err)

	b, err := NewBehavior(component.Wizard, component.WizardHelpful, nil, nil)
	require.NoError(t, err)
	mode, ok := WizardModeOf(b)
	assert.True(t, ok)
	assert.Equal(t, component.WizardHelpful, mode)
	_, ok = WizardModeOf(NewArcherBehavior(nil))
	assert.False(t, ok)
}
