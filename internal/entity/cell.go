// internal/entity/cell.go
package entity

import (
	"go-rune-halls/internal/component"
	"go-rune-halls/pkg/grid"
)

// Cell is one grid slot of a hall. It holds at most one occupant.
type Cell struct {
	Pos      grid.Position
	occupant component.Occupant
}

// Occupant returns what sits in the cell, or nil.
func (c *Cell) Occupant() component.Occupant {
	return c.occupant
}

// Kind returns the occupant's tag.
func (c *Cell) Kind() component.OccupantKind {
	return component.KindOf(c.occupant)
}

// IsEmpty reports whether nothing occupies the cell.
func (c *Cell) IsEmpty() bool {
	return c.occupant == nil
}

func (c *Cell) set(o component.Occupant) {
	c.occupant = o
}

func (c *Cell) clear() {
	c.occupant = nil
}

// clearIf empties the cell only when it still holds o.
func (c *Cell) clearIf(o component.Occupant) {
	if c.occupant == o {
		c.occupant = nil
	}
}
