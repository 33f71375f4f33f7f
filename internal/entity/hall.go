// internal/entity/hall.go
package entity

import (
	"time"

	"github.com/zyedidia/generic/mapset"

	"go-rune-halls/internal/component"
	"go-rune-halls/internal/config"
	"go-rune-halls/internal/defs"
	"go-rune-halls/internal/event"
	"go-rune-halls/internal/utils"
	"go-rune-halls/pkg/grid"
	mathutil "go-rune-halls/pkg/utils"
)

// Hall is one level: a fixed grid of cells plus the objects, monsters, enchantments
// and rune that live in it. The grid is the single source of truth for what is where.
// A hall is only touched from the tick goroutine.
type Hall struct {
	Name  string
	Index int

	width      int
	height     int
	minObjects int
	start      grid.Position
	cells      [][]*Cell // [y][x]

	objects      []*component.DungeonObject
	monsters     []*Monster
	enchantments []*component.Enchantment
	rune         *component.Rune
	hero         *Hero // weak; queries only

	hint     *grid.Position
	lureTick int

	rng    *utils.PRNGService
	events event.Publisher
}

// NewHall builds an empty hall from its definition.
func NewHall(def defs.HallDefinition, rng *utils.PRNGService, events event.Publisher) *Hall {
	width, height := def.Width, def.Height
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	h := &Hall{
		Name:       def.Name,
		width:      width,
		height:     height,
		minObjects: def.MinObjects,
		start:      def.Start,
		rng:        rng,
		events:     events,
	}
	h.cells = make([][]*Cell, height)
	for y := 0; y < height; y++ {
		h.cells[y] = make([]*Cell, width)
		for x := 0; x < width; x++ {
			h.cells[y][x] = &Cell{Pos: grid.Position{X: x, Y: y}}
		}
	}
	return h
}

// Definition returns the static description of the hall.
func (h *Hall) Definition() defs.HallDefinition {
	return defs.HallDefinition{Name: h.Name, Width: h.width, Height: h.height, MinObjects: h.minObjects, Start: h.start}
}

func (h *Hall) Width() int           { return h.width }
func (h *Hall) Height() int          { return h.height }
func (h *Hall) MinObjects() int      { return h.minObjects }
func (h *Hall) Start() grid.Position { return h.start }
func (h *Hall) Hero() *Hero          { return h.hero }

// Rune returns the hall's rune, or nil before one is set.
func (h *Hall) Rune() *component.Rune { return h.rune }

// SetHero records the hero currently inside the hall.
func (h *Hall) SetHero(hero *Hero) { h.hero = hero }

// SetPublisher replaces the bus used for RuneCollected.
func (h *Hall) SetPublisher(p event.Publisher) { h.events = p }

// IsWithinBounds reports whether p is a cell of the hall.
func (h *Hall) IsWithinBounds(p grid.Position) bool {
	return p.X >= 0 && p.X < h.width && p.Y >= 0 && p.Y < h.height
}

// IsWalkable reports whether p lies inside the area the hero may move in,
// which excludes the top and bottom margin rows.
func (h *Hall) IsWalkable(p grid.Position) bool {
	if !h.IsWithinBounds(p) {
		return false
	}
	if h.height > 2*config.VerticalMargin {
		return p.Y >= config.VerticalMargin && p.Y < h.height-config.VerticalMargin
	}
	return true
}

// Cell returns the cell at p, or false when p is out of bounds.
func (h *Hall) Cell(p grid.Position) (*Cell, bool) {
	if !h.IsWithinBounds(p) {
		return nil, false
	}
	return h.cells[p.Y][p.X], true
}

// OccupantAt reports the cell's occupant, falling back to the hero when the cell
// is otherwise empty and the hero stands there.
func (h *Hall) OccupantAt(p grid.Position) component.Occupant {
	c, ok := h.Cell(p)
	if !ok {
		return nil
	}
	if !c.IsEmpty() {
		return c.Occupant()
	}
	if h.hero != nil && h.hero.Position() == p {
		return h.hero
	}
	return nil
}

// IsFree reports whether p is in bounds, holds nothing and is not the hero's cell.
func (h *Hall) IsFree(p grid.Position) bool {
	c, ok := h.Cell(p)
	if !ok || !c.IsEmpty() {
		return false
	}
	return h.hero == nil || h.hero.Position() != p
}

// CanHeroEnter reports whether the hero may step onto p.
func (h *Hall) CanHeroEnter(p grid.Position) bool {
	if !h.IsWalkable(p) {
		return false
	}
	c := h.cells[p.Y][p.X]
	if c.IsEmpty() {
		return true
	}
	if r, ok := c.Occupant().(*component.Rune); ok {
		return !r.Collected
	}
	return false
}

// FreeCells lists the walkable free cells in row-major order, skipping any in avoid.
func (h *Hall) FreeCells(avoid *mapset.Set[grid.Position]) []grid.Position {
	var out []grid.Position
	for y := 0; y < h.height; y++ {
		for x := 0; x < h.width; x++ {
			p := grid.Position{X: x, Y: y}
			if !h.IsWalkable(p) || !h.IsFree(p) {
				continue
			}
			if avoid != nil && avoid.Has(p) {
				continue
			}
			out = append(out, p)
		}
	}
	return out
}

// RandomFreeCell picks a free walkable cell outside avoid.
func (h *Hall) RandomFreeCell(avoid *mapset.Set[grid.Position]) (grid.Position, bool) {
	cells := h.FreeCells(avoid)
	if len(cells) == 0 {
		return grid.Position{}, false
	}
	return cells[h.rng.Intn(len(cells))], true
}

// Objects returns the placed objects in placement order.
func (h *Hall) Objects() []*component.DungeonObject {
	return append([]*component.DungeonObject(nil), h.objects...)
}

// ObjectCount returns the number of placed objects.
func (h *Hall) ObjectCount() int { return len(h.objects) }

// ObjectAt returns the object whose footprint covers p.
func (h *Hall) ObjectAt(p grid.Position) *component.DungeonObject {
	c, ok := h.Cell(p)
	if !ok {
		return nil
	}
	obj, _ := c.Occupant().(*component.DungeonObject)
	return obj
}

// canClaim reports whether every cell in cells is free or already held by self.
func (h *Hall) canClaim(cells []grid.Position, self component.Occupant) bool {
	for _, p := range cells {
		c, ok := h.Cell(p)
		if !ok {
			return false
		}
		if !c.IsEmpty() && c.Occupant() != self {
			return false
		}
		if h.hero != nil && h.hero.Position() == p {
			return false
		}
	}
	return true
}

// AddObject places obj with its top-left at topLeft. Either every covered cell is
// claimed or none is.
func (h *Hall) AddObject(obj *component.DungeonObject, topLeft grid.Position) bool {
	if obj == nil {
		return false
	}
	footprint := obj.FootprintAt(topLeft)
	if !h.canClaim(footprint, nil) {
		return false
	}
	obj.TopLeft = topLeft
	for _, p := range footprint {
		h.cells[p.Y][p.X].set(obj)
	}
	h.objects = append(h.objects, obj)
	return true
}

// RemoveObject removes the object covering p. If the rune was hidden under it the
// rune is revealed at p.
func (h *Hall) RemoveObject(p grid.Position) bool {
	obj := h.ObjectAt(p)
	if obj == nil {
		return false
	}
	for _, fp := range obj.Footprint() {
		h.cells[fp.Y][fp.X].clearIf(obj)
	}
	h.objects = removeItem(h.objects, obj)

	if h.rune != nil && h.rune.HiddenUnder == obj && !h.rune.Collected {
		h.rune.RevealAt(p)
		h.cells[p.Y][p.X].set(h.rune)
	}
	return true
}

// RelocateObject moves the object covering from so its top-left lands on topLeft.
// A rune hidden under it is left behind on the first vacated cell.
func (h *Hall) RelocateObject(from, topLeft grid.Position) bool {
	obj := h.ObjectAt(from)
	if obj == nil {
		return false
	}
	old := obj.Footprint()
	next := obj.FootprintAt(topLeft)
	if !h.canClaim(next, obj) {
		return false
	}
	for _, p := range old {
		h.cells[p.Y][p.X].clear()
	}
	obj.TopLeft = topLeft
	for _, p := range next {
		h.cells[p.Y][p.X].set(obj)
	}

	if h.rune != nil && h.rune.HiddenUnder == obj && !h.rune.Collected {
		for _, p := range old {
			if h.cells[p.Y][p.X].IsEmpty() {
				h.rune.RevealAt(p)
				h.cells[p.Y][p.X].set(h.rune)
				return true
			}
		}
		h.rune.Position = obj.TopLeft
	}
	return true
}

// Monsters returns the live monsters in spawn order.
func (h *Hall) Monsters() []*Monster {
	return append([]*Monster(nil), h.monsters...)
}

// MonsterAt returns the monster standing on p.
func (h *Hall) MonsterAt(p grid.Position) *Monster {
	c, ok := h.Cell(p)
	if !ok {
		return nil
	}
	m, _ := c.Occupant().(*Monster)
	return m
}

// AddMonster places m on its recorded position.
func (h *Hall) AddMonster(m *Monster) bool {
	if m == nil || !h.IsFree(m.Position) {
		return false
	}
	h.cells[m.Position.Y][m.Position.X].set(m)
	h.monsters = append(h.monsters, m)
	return true
}

// RemoveMonster drops m and clears its cell.
func (h *Hall) RemoveMonster(m *Monster) bool {
	before := len(h.monsters)
	h.monsters = removeItem(h.monsters, m)
	if len(h.monsters) == before {
		return false
	}
	if c, ok := h.Cell(m.Position); ok {
		c.clearIf(m)
	}
	return true
}

// MoveMonster steps m onto to when that cell is free.
func (h *Hall) MoveMonster(m *Monster, to grid.Position) bool {
	if m == nil || m.Position == to || !h.IsFree(to) {
		return false
	}
	if c, ok := h.Cell(m.Position); ok {
		c.clearIf(m)
	}
	m.Position = to
	h.cells[to.Y][to.X].set(m)
	return true
}

// Enchantments returns the live enchantments in spawn order.
func (h *Hall) Enchantments() []*component.Enchantment {
	return append([]*component.Enchantment(nil), h.enchantments...)
}

// EnchantmentAt returns the enchantment lying on p.
func (h *Hall) EnchantmentAt(p grid.Position) *component.Enchantment {
	c, ok := h.Cell(p)
	if !ok {
		return nil
	}
	e, _ := c.Occupant().(*component.Enchantment)
	return e
}

// AddEnchantment places e on its recorded position.
func (h *Hall) AddEnchantment(e *component.Enchantment) bool {
	if e == nil || !h.IsFree(e.Position) {
		return false
	}
	h.cells[e.Position.Y][e.Position.X].set(e)
	h.enchantments = append(h.enchantments, e)
	return true
}

// RemoveEnchantment drops e and clears its cell.
func (h *Hall) RemoveEnchantment(e *component.Enchantment) bool {
	before := len(h.enchantments)
	h.enchantments = removeItem(h.enchantments, e)
	if len(h.enchantments) == before {
		return false
	}
	if c, ok := h.Cell(e.Position); ok {
		c.clearIf(e)
	}
	return true
}

// SetRune installs r as the hall's rune. A revealed rune is put on the grid; an
// unhidden one is tucked under a random object, or stays nowhere if there is none.
func (h *Hall) SetRune(r *component.Rune) {
	if old := h.rune; old != nil && old.IsOnGrid() {
		if c, ok := h.Cell(old.Position); ok {
			c.clearIf(old)
		}
	}
	h.rune = r
	if r == nil || r.Collected {
		return
	}

	if r.Revealed {
		if c, ok := h.Cell(r.Position); ok && c.IsEmpty() {
			c.set(r)
			return
		}
		if p, ok := h.RandomFreeCell(nil); ok {
			r.RevealAt(p)
			h.cells[p.Y][p.X].set(r)
		}
		return
	}
	if r.HiddenUnder == nil && len(h.objects) > 0 {
		r.HideUnder(h.objects[h.rng.Intn(len(h.objects))])
	}
}

// HideRune tucks the current rune under obj, lifting it off the grid if needed.
func (h *Hall) HideRune(obj *component.DungeonObject) bool {
	if h.rune == nil || h.rune.Collected || obj == nil {
		return false
	}
	if h.rune.IsOnGrid() {
		if c, ok := h.Cell(h.rune.Position); ok {
			c.clearIf(h.rune)
		}
	}
	h.rune.HideUnder(obj)
	return true
}

// RevealRuneAt puts the rune on the grid at p.
func (h *Hall) RevealRuneAt(p grid.Position) bool {
	if h.rune == nil || h.rune.Collected || !h.IsFree(p) {
		return false
	}
	if h.rune.IsOnGrid() {
		if c, ok := h.Cell(h.rune.Position); ok {
			c.clearIf(h.rune)
		}
	}
	h.rune.RevealAt(p)
	h.cells[p.Y][p.X].set(h.rune)
	return true
}

// RelocateRuneToRandomEmpty moves the uncollected rune to a random free cell that
// the hero does not stand on. The rune is visible afterwards.
func (h *Hall) RelocateRuneToRandomEmpty() bool {
	if h.rune == nil || h.rune.Collected {
		return false
	}
	p, ok := h.RandomFreeCell(nil)
	if !ok {
		return false
	}
	return h.RevealRuneAt(p)
}

// CollectRune marks the rune collected, clears its cell and publishes RuneCollected.
// Only the first call has an effect.
func (h *Hall) CollectRune() bool {
	r := h.rune
	if r == nil || r.Collected {
		return false
	}
	if r.IsOnGrid() {
		if c, ok := h.Cell(r.Position); ok {
			c.clearIf(r)
		}
	}
	r.Collected = true
	r.HiddenUnder = nil
	h.hint = nil
	if h.events != nil {
		h.events.Dispatch(event.Event{
			Type: event.RuneCollected,
			Data: event.RuneData{HallIndex: h.Index, Position: r.Position},
		})
	}
	return true
}

// SearchObject lets the hero inspect the object covering p. Collects the rune when
// the object is adjacent to the hero and hides it.
func (h *Hall) SearchObject(hero *Hero, p grid.Position) bool {
	obj := h.ObjectAt(p)
	if obj == nil || hero == nil || h.rune == nil || h.rune.HiddenUnder != obj {
		return false
	}
	if !hero.Position().IsAdjacent(p) {
		return false
	}
	return h.CollectRune()
}

// Update runs one tick: lure steps, every behaviour, then the hero's cell. Monsters
// marked for removal are dropped at the end and returned.
func (h *Hall) Update(hero *Hero) []*Monster {
	h.hero = hero

	h.lureTick++
	stepLures := h.lureTick >= config.LureStepInterval
	if stepLures {
		h.lureTick = 0
	}

	for _, m := range h.Monsters() {
		if m.IsMarkedForRemoval() || m.Behavior() == nil {
			continue
		}
		if stepLures {
			h.stepTowardLure(m)
		}
		m.Behavior().Act(h, hero, m)
	}

	if hero != nil && !hero.IsDead() {
		h.interact(hero)
	}

	var removed []*Monster
	for _, m := range h.Monsters() {
		if m.IsMarkedForRemoval() {
			h.RemoveMonster(m)
			removed = append(removed, m)
		}
	}
	return removed
}

func (h *Hall) stepTowardLure(m *Monster) {
	lured, ok := m.Behavior().(Lured)
	if !ok {
		return
	}
	target, ok := lured.LureTarget()
	if !ok || target == m.Position {
		return
	}
	passable := func(p grid.Position) bool { return h.IsFree(p) }
	next := grid.NextStep(m.Position, target, passable, config.PathSearchLimit)
	h.MoveMonster(m, next)
}

func (h *Hall) interact(hero *Hero) {
	c, ok := h.Cell(hero.Position())
	if !ok {
		return
	}
	switch o := c.Occupant().(type) {
	case *component.Rune:
		if o == h.rune {
			h.CollectRune()
		}
	case *component.Enchantment:
		if hero.CollectEnchantment(o) {
			h.RemoveEnchantment(o)
		}
	}
}

// CollectEnchantmentAt picks up the enchantment at p for hero.
func (h *Hall) CollectEnchantmentAt(hero *Hero, p grid.Position) bool {
	e := h.EnchantmentAt(p)
	if e == nil || hero == nil || !hero.CollectEnchantment(e) {
		return false
	}
	h.RemoveEnchantment(e)
	return true
}

// AgeEnchantments ages every uncollected enchantment by one tick and removes the
// expired ones, returning them.
func (h *Hall) AgeEnchantments() []*component.Enchantment {
	var expired []*component.Enchantment
	for _, e := range h.Enchantments() {
		if e.Age() {
			h.RemoveEnchantment(e)
			expired = append(expired, e)
		}
	}
	return expired
}

// IsRequirementMet reports whether enough objects are placed to start playing.
func (h *Hall) IsRequirementMet() bool {
	return len(h.objects) >= h.minObjects
}

// StartingTime is the clock a hall starts with: a fixed amount per placed object.
func (h *Hall) StartingTime() time.Duration {
	d := time.Duration(len(h.objects)) * config.TimePerObject
	if d < config.MinStartingTime {
		return config.MinStartingTime
	}
	return d
}

// ShowHint marks a region of RevealRegionSize cells around the rune.
func (h *Hall) ShowHint() bool {
	if h.rune == nil || h.rune.Collected {
		return false
	}
	size := config.RevealRegionSize
	p := h.rune.Position
	x := p.X - h.rng.Intn(size)
	y := p.Y - h.rng.Intn(size)
	x = mathutil.Clamp(x, 0, max(h.width-size, 0))
	y = mathutil.Clamp(y, 0, max(h.height-size, 0))
	h.hint = &grid.Position{X: x, Y: y}
	return true
}

// HideHint clears the reveal region.
func (h *Hall) HideHint() { h.hint = nil }

// HintRegion returns the top-left and side of the reveal region, if shown.
func (h *Hall) HintRegion() (grid.Position, int, bool) {
	if h.hint == nil {
		return grid.Position{}, 0, false
	}
	return *h.hint, config.RevealRegionSize, true
}

// ClearTransient removes every monster and enchantment and returns the monsters,
// so their owners can release subscriptions.
func (h *Hall) ClearTransient() []*Monster {
	removed := h.Monsters()
	for _, m := range removed {
		h.RemoveMonster(m)
	}
	for _, e := range h.Enchantments() {
		h.RemoveEnchantment(e)
	}
	h.hint = nil
	h.lureTick = 0
	return removed
}

func removeItem[T comparable](items []T, target T) []T {
	for i, it := range items {
		if it == target {
			return append(items[:i:i], items[i+1:]...)
		}
	}
	return items
}
