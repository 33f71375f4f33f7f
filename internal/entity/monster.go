// internal/entity/monster.go
package entity

import (
	"go-rune-halls/internal/component"
	"go-rune-halls/pkg/grid"
)

// Behavior is the per-monster decision logic, invoked once per hall update.
type Behavior interface {
	Act(hall *Hall, hero *Hero, self *Monster)
	Name() string
}

// Lured is implemented by behaviours that can be drawn toward a lure cell.
// The hall performs the throttled step; the behaviour owns the target.
type Lured interface {
	LureTarget() (grid.Position, bool)
}

// Monster is a single-cell hostile (or not so hostile) occupant.
type Monster struct {
	Kind     component.MonsterKind
	Position grid.Position
	behavior Behavior
	marked   bool
}

// NewMonster creates a monster with its behaviour attached.
func NewMonster(kind component.MonsterKind, pos grid.Position, behavior Behavior) *Monster {
	return &Monster{Kind: kind, Position: pos, behavior: behavior}
}

func (m *Monster) OccupantKind() component.OccupantKind { return component.OccupantMonster }

// Behavior returns the attached strategy (may be nil after load until re-attached).
func (m *Monster) Behavior() Behavior {
	return m.behavior
}

// SetBehavior swaps the strategy at runtime.
func (m *Monster) SetBehavior(b Behavior) {
	m.behavior = b
}

// MarkForRemoval asks the hall to drop the monster at the end of the current update.
func (m *Monster) MarkForRemoval() {
	m.marked = true
}

// IsMarkedForRemoval reports whether the monster is leaving.
func (m *Monster) IsMarkedForRemoval() bool {
	return m.marked
}
