// internal/input/action.go
package input

import (
	"fmt"

	"go-rune-halls/internal/component"
	"go-rune-halls/pkg/grid"
)

// Kind enumerates the discrete actions a driver can produce.
type Kind int

const (
	None Kind = iota
	Move
	Click
	Use
	Relocate
	TogglePause
	Start
	AutoFill
	SelectHall
	SelectObject
	Quit
)

var kindNames = map[Kind]string{
	None:         "none",
	Move:         "move",
	Click:        "click",
	Use:          "use",
	Relocate:     "relocate",
	TogglePause:  "pause",
	Start:        "start",
	AutoFill:     "autofill",
	SelectHall:   "select_hall",
	SelectObject: "select_object",
	Quit:         "quit",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Action is one input event, polled once per tick by the session.
type Action struct {
	Kind        Kind
	Dir         grid.Direction
	Cell        grid.Position
	To          grid.Position
	Enchantment component.EnchantmentKind
	Index       int
}

func MoveAction(dir grid.Direction) Action { return Action{Kind: Move, Dir: dir} }
func ClickAction(p grid.Position) Action   { return Action{Kind: Click, Cell: p} }
func PauseAction() Action                  { return Action{Kind: TogglePause} }
func StartAction() Action                  { return Action{Kind: Start} }
func AutoFillAction() Action               { return Action{Kind: AutoFill} }
func QuitAction() Action                   { return Action{Kind: Quit} }

// UseAction spends a stored enchantment; dir aims the luring gem.
func UseAction(kind component.EnchantmentKind, dir grid.Direction) Action {
	return Action{Kind: Use, Enchantment: kind, Dir: dir}
}

// RelocateAction drags the object covering from so its top-left lands on to.
func RelocateAction(from, to grid.Position) Action {
	return Action{Kind: Relocate, Cell: from, To: to}
}

// SelectHallAction picks the hall edited in build mode.
func SelectHallAction(i int) Action { return Action{Kind: SelectHall, Index: i} }

// SelectObjectAction picks the catalogue object placed by clicks in build mode.
func SelectObjectAction(i int) Action { return Action{Kind: SelectObject, Index: i} }
