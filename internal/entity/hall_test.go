package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/mapset"

	"go-rune-halls/internal/component"
	"go-rune-halls/internal/config"
	"go-rune-halls/internal/defs"
	"go-rune-halls/internal/event"
	"go-rune-halls/internal/logging"
	"go-rune-halls/internal/utils"
	"go-rune-halls/pkg/grid"
)

func newTestHall(w, h, min int) (*Hall, *event.Dispatcher, *event.Recorder) {
	d := event.NewDispatcher(logging.Nop())
	rec := event.NewRecorder(0)
	rec.SubscribeTo(d, event.Topics...)
	def := defs.HallDefinition{Name: "test", Width: w, Height: h, MinObjects: min, Start: grid.Position{X: 0, Y: 1}}
	return NewHall(def, utils.NewPRNGService(3), d), d, rec
}

type countingBehavior struct {
	acts  int
	lure  *grid.Position
	leave bool
}

func (b *countingBehavior) Act(hall *Hall, hero *Hero, self *Monster) {
	b.acts++
	if b.leave {
		self.MarkForRemoval()
	}
}

func (b *countingBehavior) Name() string { return "counting" }

func (b *countingBehavior) LureTarget() (grid.Position, bool) {
	if b.lure == nil {
		return grid.Position{}, false
	}
	return *b.lure, true
}

func TestCellOutOfBounds(t *testing.T) {
	h, _, _ := newTestHall(4, 4, 0)
	_, ok := h.Cell(grid.Position{X: -1, Y: 0})
	assert.False(t, ok)
	_, ok = h.Cell(grid.Position{X: 4, Y: 0})
	assert.False(t, ok)
	c, ok := h.Cell(grid.Position{X: 3, Y: 3})
	require.True(t, ok)
	assert.True(t, c.IsEmpty())
	assert.Nil(t, h.OccupantAt(grid.Position{X: 9, Y: 9}))
}

func TestAddObjectClaimsFootprint(t *testing.T) {
	h, _, _ := newTestHall(6, 6, 1)
	statue := component.NewDungeonObject("statue", 2, 2, "")
	require.True(t, h.AddObject(statue, grid.Position{X: 1, Y: 1}))

	for _, p := range statue.Footprint() {
		assert.Equal(t, statue, h.OccupantAt(p), p.String())
		assert.Equal(t, statue, h.ObjectAt(p))
	}
	assert.Equal(t, 1, h.ObjectCount())
	assert.True(t, h.IsRequirementMet())
}

func TestAddObjectConflictLeavesGridUnchanged(t *testing.T) {
	h, _, _ := newTestHall(6, 6, 0)
	chest := component.NewDungeonObject("chest", 1, 1, "")
	require.True(t, h.AddObject(chest, grid.Position{X: 2, Y: 2}))

	overlapping := component.NewDungeonObject("statue", 2, 2, "")
	assert.False(t, h.AddObject(overlapping, grid.Position{X: 1, Y: 1}))
	assert.Nil(t, h.OccupantAt(grid.Position{X: 1, Y: 1}))
	assert.Nil(t, h.OccupantAt(grid.Position{X: 2, Y: 1}))
	assert.Equal(t, chest, h.OccupantAt(grid.Position{X: 2, Y: 2}))

	edge := component.NewDungeonObject("table", 2, 1, "")
	assert.False(t, h.AddObject(edge, grid.Position{X: 5, Y: 0}))
	assert.Nil(t, h.OccupantAt(grid.Position{X: 5, Y: 0}))
	assert.Equal(t, 1, h.ObjectCount())
}

func TestAddObjectRejectsHeroCell(t *testing.T) {
	h, d, _ := newTestHall(6, 6, 0)
	hero := NewHero(grid.Position{X: 2, Y: 2}, d)
	h.SetHero(hero)
	assert.False(t, h.AddObject(component.NewDungeonObject("chest", 1, 1, ""), grid.Position{X: 2, Y: 2}))
	assert.Equal(t, hero, h.OccupantAt(grid.Position{X: 2, Y: 2}))
}

func TestRemoveObjectByAnyCoveredCell(t *testing.T) {
	h, _, _ := newTestHall(6, 6, 0)
	table := component.NewDungeonObject("table", 2, 1, "")
	require.True(t, h.AddObject(table, grid.Position{X: 1, Y: 1}))

	assert.True(t, h.RemoveObject(grid.Position{X: 2, Y: 1}))
	assert.Nil(t, h.OccupantAt(grid.Position{X: 1, Y: 1}))
	assert.Nil(t, h.OccupantAt(grid.Position{X: 2, Y: 1}))
	assert.Equal(t, 0, h.ObjectCount())
	assert.False(t, h.RemoveObject(grid.Position{X: 2, Y: 1}))
}

func TestRemovingHidingObjectRevealsRune(t *testing.T) {
	h, d, _ := newTestHall(10, 10, 1)
	obj := component.NewDungeonObject("chest", 1, 1, "")
	require.True(t, h.AddObject(obj, grid.Position{X: 0, Y: 0}))
	h.SetHero(NewHero(grid.Position{X: 5, Y: 5}, d))

	r := &component.Rune{}
	h.SetRune(r)
	require.Equal(t, obj, r.HiddenUnder)
	assert.True(t, r.IsHidden())

	require.True(t, h.RemoveObject(grid.Position{X: 0, Y: 0}))
	assert.True(t, r.Revealed)
	assert.Equal(t, grid.Position{X: 0, Y: 0}, r.Position)
	assert.Equal(t, r, h.OccupantAt(grid.Position{X: 0, Y: 0}))
}

func TestSetRuneWithoutObjectsStaysNowhere(t *testing.T) {
	h, _, _ := newTestHall(5, 5, 0)
	r := &component.Rune{}
	h.SetRune(r)
	assert.Nil(t, r.HiddenUnder)
	assert.False(t, r.Revealed)
	for _, p := range h.FreeCells(nil) {
		assert.NotEqual(t, r, h.OccupantAt(p))
	}
}

func TestSetRuneReplacesRevealedRune(t *testing.T) {
	h, _, _ := newTestHall(5, 5, 0)
	old := &component.Rune{Revealed: true, Position: grid.Position{X: 1, Y: 1}}
	h.SetRune(old)
	require.Equal(t, old, h.OccupantAt(grid.Position{X: 1, Y: 1}))

	next := &component.Rune{Revealed: true, Position: grid.Position{X: 3, Y: 3}}
	h.SetRune(next)
	assert.Nil(t, h.OccupantAt(grid.Position{X: 1, Y: 1}))
	assert.Equal(t, next, h.OccupantAt(grid.Position{X: 3, Y: 3}))
}

func TestRelocateObjectLeavesRuneBehind(t *testing.T) {
	h, _, _ := newTestHall(8, 8, 0)
	obj := component.NewDungeonObject("chest", 1, 1, "")
	require.True(t, h.AddObject(obj, grid.Position{X: 2, Y: 2}))
	r := &component.Rune{}
	h.SetRune(r)

	blocker := component.NewDungeonObject("barrel", 1, 1, "")
	require.True(t, h.AddObject(blocker, grid.Position{X: 5, Y: 5}))
	assert.False(t, h.RelocateObject(grid.Position{X: 2, Y: 2}, grid.Position{X: 5, Y: 5}))
	assert.True(t, r.IsHidden())

	require.True(t, h.RelocateObject(grid.Position{X: 2, Y: 2}, grid.Position{X: 4, Y: 4}))
	assert.Equal(t, obj, h.OccupantAt(grid.Position{X: 4, Y: 4}))
	assert.Equal(t, r, h.OccupantAt(grid.Position{X: 2, Y: 2}))
	assert.True(t, r.Revealed)
}

func TestMonsterAndEnchantmentPlacement(t *testing.T) {
	h, _, _ := newTestHall(5, 5, 0)
	m := NewMonster(component.Archer, grid.Position{X: 2, Y: 2}, nil)
	require.True(t, h.AddMonster(m))
	assert.False(t, h.AddMonster(NewMonster(component.Fighter, grid.Position{X: 2, Y: 2}, nil)))
	assert.Equal(t, m, h.MonsterAt(grid.Position{X: 2, Y: 2}))

	e := component.NewEnchantment(component.Reveal, grid.Position{X: 2, Y: 2}, 10)
	assert.False(t, h.AddEnchantment(e))
	e.Position = grid.Position{X: 3, Y: 2}
	require.True(t, h.AddEnchantment(e))

	assert.True(t, h.RemoveMonster(m))
	assert.False(t, h.RemoveMonster(m))
	assert.Nil(t, h.OccupantAt(grid.Position{X: 2, Y: 2}))
	assert.True(t, h.RemoveEnchantment(e))
	assert.Nil(t, h.OccupantAt(grid.Position{X: 3, Y: 2}))
}

func TestFreeCellsRespectMarginHeroAndAvoid(t *testing.T) {
	h, d, _ := newTestHall(3, 4, 0)
	h.SetHero(NewHero(grid.Position{X: 0, Y: 1}, d))
	avoid := mapset.New[grid.Position]()
	avoid.Put(grid.Position{X: 1, Y: 1})

	cells := h.FreeCells(&avoid)
	assert.ElementsMatch(t, []grid.Position{
		{X: 2, Y: 1},
		{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2},
	}, cells)
}

func TestUpdateRunsBehaviorsAndDropsMarked(t *testing.T) {
	h, d, _ := newTestHall(6, 6, 0)
	hero := NewHero(grid.Position{X: 0, Y: 1}, d)
	stay := &countingBehavior{}
	leave := &countingBehavior{leave: true}
	a := NewMonster(component.Archer, grid.Position{X: 3, Y: 3}, stay)
	b := NewMonster(component.Wizard, grid.Position{X: 4, Y: 4}, leave)
	require.True(t, h.AddMonster(a))
	require.True(t, h.AddMonster(b))

	removed := h.Update(hero)
	assert.Equal(t, []*Monster{b}, removed)
	assert.Equal(t, 1, stay.acts)
	assert.Equal(t, 1, leave.acts)
	assert.Equal(t, []*Monster{a}, h.Monsters())
	assert.Nil(t, h.OccupantAt(grid.Position{X: 4, Y: 4}))
}

func TestLureStepIsThrottled(t *testing.T) {
	h, d, _ := newTestHall(8, 6, 0)
	hero := NewHero(grid.Position{X: 0, Y: 1}, d)
	target := grid.Position{X: 6, Y: 3}
	b := &countingBehavior{lure: &target}
	m := NewMonster(component.Fighter, grid.Position{X: 2, Y: 3}, b)
	require.True(t, h.AddMonster(m))

	for i := 0; i < config.LureStepInterval-1; i++ {
		h.Update(hero)
	}
	assert.Equal(t, grid.Position{X: 2, Y: 3}, m.Position)
	h.Update(hero)
	assert.Equal(t, grid.Position{X: 3, Y: 3}, m.Position)
	assert.Equal(t, m, h.OccupantAt(grid.Position{X: 3, Y: 3}))
	assert.Nil(t, h.OccupantAt(grid.Position{X: 2, Y: 3}))
}

func TestHeroWalksOntoRuneAndCollects(t *testing.T) {
	h, d, rec := newTestHall(6, 6, 0)
	h.Index = 2
	hero := NewHero(grid.Position{X: 1, Y: 2}, d)
	h.SetHero(hero)
	r := &component.Rune{Revealed: true, Position: grid.Position{X: 2, Y: 2}}
	h.SetRune(r)

	require.True(t, hero.Move(grid.Right, h))
	h.Update(hero)
	assert.True(t, r.Collected)
	assert.Equal(t, 1, rec.Count(event.RuneCollected))
	last, _ := rec.Last(event.RuneCollected)
	assert.Equal(t, 2, last.Data.(event.RuneData).HallIndex)

	assert.False(t, h.CollectRune())
	assert.Equal(t, 1, rec.Count(event.RuneCollected))
}

func TestSearchObjectRequiresAdjacency(t *testing.T) {
	h, d, rec := newTestHall(8, 8, 0)
	obj := component.NewDungeonObject("chest", 1, 1, "")
	require.True(t, h.AddObject(obj, grid.Position{X: 4, Y: 4}))
	h.SetRune(&component.Rune{})
	hero := NewHero(grid.Position{X: 1, Y: 1}, d)
	h.SetHero(hero)

	assert.False(t, h.SearchObject(hero, grid.Position{X: 4, Y: 4}))
	hero.SetPosition(grid.Position{X: 3, Y: 3})
	assert.True(t, h.SearchObject(hero, grid.Position{X: 4, Y: 4}))
	assert.Equal(t, 1, rec.Count(event.RuneCollected))
}

func TestRelocateRuneAvoidsHero(t *testing.T) {
	h, d, _ := newTestHall(2, 3, 0)
	hero := NewHero(grid.Position{X: 0, Y: 1}, d)
	h.SetHero(hero)
	obj := component.NewDungeonObject("chest", 1, 1, "")
	require.True(t, h.AddObject(obj, grid.Position{X: 0, Y: 0}))
	r := &component.Rune{}
	h.SetRune(r)

	require.True(t, h.RelocateRuneToRandomEmpty())
	assert.Equal(t, grid.Position{X: 1, Y: 1}, r.Position)
	assert.Nil(t, r.HiddenUnder)
	assert.Equal(t, r, h.OccupantAt(grid.Position{X: 1, Y: 1}))
}

func TestAgeEnchantmentsRemovesExpired(t *testing.T) {
	h, _, _ := newTestHall(5, 5, 0)
	e := component.NewEnchantment(component.ExtraTime, grid.Position{X: 1, Y: 1}, 2)
	require.True(t, h.AddEnchantment(e))
	assert.Empty(t, h.AgeEnchantments())
	assert.Equal(t, []*component.Enchantment{e}, h.AgeEnchantments())
	assert.Nil(t, h.OccupantAt(grid.Position{X: 1, Y: 1}))
}

func TestStartingTimeScalesWithObjects(t *testing.T) {
	h, _, _ := newTestHall(8, 8, 0)
	assert.Equal(t, config.MinStartingTime, h.StartingTime())
	for x := 0; x < 3; x++ {
		require.True(t, h.AddObject(component.NewDungeonObject("chest", 1, 1, ""), grid.Position{X: x, Y: 0}))
	}
	assert.Equal(t, 15*time.Second, h.StartingTime())
}

func TestHintRegionContainsRune(t *testing.T) {
	h, _, _ := newTestHall(16, 12, 0)
	r := &component.Rune{Revealed: true, Position: grid.Position{X: 15, Y: 10}}
	h.SetRune(r)
	require.True(t, h.ShowHint())
	tl, size, ok := h.HintRegion()
	require.True(t, ok)
	assert.True(t, r.Position.X >= tl.X && r.Position.X < tl.X+size)
	assert.True(t, r.Position.Y >= tl.Y && r.Position.Y < tl.Y+size)
	h.HideHint()
	_, _, ok = h.HintRegion()
	assert.False(t, ok)
}

func TestClearTransient(t *testing.T) {
	h, _, _ := newTestHall(5, 5, 0)
	m := NewMonster(component.Archer, grid.Position{X: 1, Y: 1}, nil)
	require.True(t, h.AddMonster(m))
	require.True(t, h.AddEnchantment(component.NewEnchantment(component.CloakOfProtection, grid.Position{X: 2, Y: 2}, 5)))

	assert.Equal(t, []*Monster{m}, h.ClearTransient())
	assert.Empty(t, h.Monsters())
	assert.Empty(t, h.Enchantments())
	assert.Nil(t, h.OccupantAt(grid.Position{X: 2, Y: 2}))
}
