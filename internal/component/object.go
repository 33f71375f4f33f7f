// internal/component/object.go
package component

import "go-rune-halls/pkg/grid"

// DungeonObject is a static placeable with a rectangular footprint.
type DungeonObject struct {
	Name    string
	Width   int
	Height  int
	Icon    string // render-only asset key
	TopLeft grid.Position
}

// NewDungeonObject creates an unplaced object. Footprint sides are at least one cell.
func NewDungeonObject(name string, width, height int, icon string) *DungeonObject {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &DungeonObject{Name: name, Width: width, Height: height, Icon: icon}
}

func (o *DungeonObject) OccupantKind() OccupantKind { return OccupantObject }

// FootprintAt lists the cells the object would cover with its top-left at origin.
func (o *DungeonObject) FootprintAt(origin grid.Position) []grid.Position {
	cells := make([]grid.Position, 0, o.Width*o.Height)
	for dy := 0; dy < o.Height; dy++ {
		for dx := 0; dx < o.Width; dx++ {
			cells = append(cells, grid.Position{X: origin.X + dx, Y: origin.Y + dy})
		}
	}
	return cells
}

// Footprint lists the cells currently covered.
func (o *DungeonObject) Footprint() []grid.Position {
	return o.FootprintAt(o.TopLeft)
}

// Covers reports whether p lies inside the current footprint.
func (o *DungeonObject) Covers(p grid.Position) bool {
	return p.X >= o.TopLeft.X && p.X < o.TopLeft.X+o.Width &&
		p.Y >= o.TopLeft.Y && p.Y < o.TopLeft.Y+o.Height
}

// Clone returns an unplaced copy with the same definition.
func (o *DungeonObject) Clone() *DungeonObject {
	return NewDungeonObject(o.Name, o.Width, o.Height, o.Icon)
}
