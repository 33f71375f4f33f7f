// pkg/grid/position.go
package grid

import (
	"fmt"
	"math"

	"go-rune-halls/pkg/utils"
)

// Position is a cell coordinate. X grows to the right, Y grows downwards.
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Direction is one of the four orthogonal steps.
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Directions lists the orthogonal directions in a stable order.
// Neighbour iteration and path expansion rely on this order.
var Directions = []Direction{Up, Down, Left, Right}

// Delta returns the unit offset for the direction.
func (d Direction) Delta() Position {
	switch d {
	case Up:
		return Position{0, -1}
	case Down:
		return Position{0, 1}
	case Left:
		return Position{-1, 0}
	case Right:
		return Position{1, 0}
	}
	return Position{}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// Add returns the sum of two positions.
func (p Position) Add(other Position) Position {
	return Position{X: p.X + other.X, Y: p.Y + other.Y}
}

// Subtract returns the difference of two positions.
func (p Position) Subtract(other Position) Position {
	return Position{X: p.X - other.X, Y: p.Y - other.Y}
}

// Step returns the adjacent position in direction d.
func (p Position) Step(d Direction) Position {
	return p.Add(d.Delta())
}

// Scale multiplies the position vector by a scalar.
func (p Position) Scale(factor int) Position {
	return Position{X: p.X * factor, Y: p.Y * factor}
}

// Distance is the Euclidean distance between cell centres.
func (p Position) Distance(to Position) float64 {
	dx := float64(p.X - to.X)
	dy := float64(p.Y - to.Y)
	return math.Hypot(dx, dy)
}

// Manhattan is the taxicab distance, used as the A* heuristic.
func (p Position) Manhattan(to Position) int {
	return utils.Abs(p.X-to.X) + utils.Abs(p.Y-to.Y)
}

// IsAdjacent reports whether other is one of the 8 surrounding cells.
func (p Position) IsAdjacent(other Position) bool {
	if p == other {
		return false
	}
	return utils.Abs(p.X-other.X) <= 1 && utils.Abs(p.Y-other.Y) <= 1
}

// Neighbors returns the four orthogonal neighbours in Directions order.
// Bounds are the caller's concern.
func (p Position) Neighbors() []Position {
	result := make([]Position, 0, len(Directions))
	for _, d := range Directions {
		result = append(result, p.Step(d))
	}
	return result
}

// StepToward returns the orthogonal direction that reduces the larger axis gap first.
// Returns None when p == target.
func (p Position) StepToward(target Position) Direction {
	dx := target.X - p.X
	dy := target.Y - p.Y
	if dx == 0 && dy == 0 {
		return None
	}
	if utils.Abs(dx) >= utils.Abs(dy) {
		if dx > 0 {
			return Right
		}
		return Left
	}
	if dy > 0 {
		return Down
	}
	return Up
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
