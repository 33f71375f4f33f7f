// internal/component/rune.go
package component

import "go-rune-halls/pkg/grid"

// Rune is the collectible that completes a hall. While HiddenUnder is set the rune
// is not on the grid and its Position mirrors the covering object's top-left.
type Rune struct {
	Position    grid.Position
	Collected   bool
	Revealed    bool
	HiddenUnder *DungeonObject
}

func (r *Rune) OccupantKind() OccupantKind { return OccupantRune }

// IsHidden reports whether the rune currently sits under an object.
func (r *Rune) IsHidden() bool {
	return r.HiddenUnder != nil && !r.Revealed
}

// IsOnGrid reports whether the rune occupies its own cell.
func (r *Rune) IsOnGrid() bool {
	return r.Revealed && !r.Collected
}

// HideUnder attaches the rune to obj without touching the grid.
func (r *Rune) HideUnder(obj *DungeonObject) {
	r.HiddenUnder = obj
	r.Revealed = false
	r.Position = obj.TopLeft
}

// RevealAt detaches the rune from its object and moves it to p.
func (r *Rune) RevealAt(p grid.Position) {
	r.HiddenUnder = nil
	r.Revealed = true
	r.Position = p
}
