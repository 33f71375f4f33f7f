// cmd/tui/keys.go
package main

import (
	"github.com/gdamore/tcell/v2"

	"go-rune-halls/internal/component"
	"go-rune-halls/internal/input"
	"go-rune-halls/pkg/grid"
)

// command is a driver-level request that is not a session action.
type command int

const (
	cmdNone command = iota
	cmdExit
	cmdSave
	cmdLoad
)

var arrowDirs = map[tcell.Key]grid.Direction{
	tcell.KeyUp:    grid.Up,
	tcell.KeyDown:  grid.Down,
	tcell.KeyLeft:  grid.Left,
	tcell.KeyRight: grid.Right,
}

var runeDirs = map[rune]grid.Direction{
	'w': grid.Up, 'k': grid.Up,
	's': grid.Down, 'j': grid.Down,
	'a': grid.Left, 'h': grid.Left,
	'd': grid.Right, 'l': grid.Right,
}

// controller keeps the keyboard-side state: the build cursor, a marked object for
// relocation and the direction the hero last moved in.
type controller struct {
	cursor grid.Position
	marked *grid.Position
	facing grid.Direction
}

func newController() *controller {
	return &controller{cursor: grid.Position{X: 1, Y: 1}, facing: grid.Right}
}

func direction(ev *tcell.EventKey) (grid.Direction, bool) {
	if d, ok := arrowDirs[ev.Key()]; ok {
		return d, true
	}
	if ev.Key() == tcell.KeyRune {
		d, ok := runeDirs[ev.Rune()]
		return d, ok
	}
	return grid.None, false
}

// handleKey maps one key press in the given mode to session actions and/or a
// driver command. hallIndex is the active hall, used for Tab cycling.
func (c *controller) handleKey(ev *tcell.EventKey, mode component.Mode, hallIndex int, w, h int) ([]input.Action, command) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return nil, cmdExit
	case tcell.KeyEscape:
		return []input.Action{input.QuitAction()}, cmdNone
	case tcell.KeyEnter:
		return []input.Action{input.StartAction()}, cmdNone
	}

	switch mode {
	case component.ModeMainMenu:
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return nil, cmdExit
			case 'L':
				return nil, cmdLoad
			}
		}
	case component.ModeBuild:
		return c.buildKey(ev, hallIndex, w, h), cmdNone
	case component.ModePlay:
		return c.playKey(ev)
	}
	return nil, cmdNone
}

func (c *controller) buildKey(ev *tcell.EventKey, hallIndex int, w, h int) []input.Action {
	if d, ok := direction(ev); ok {
		next := c.cursor.Step(d)
		if next.X >= 0 && next.Y >= 0 && next.X < w && next.Y < h {
			c.cursor = next
		}
		return nil
	}
	switch ev.Key() {
	case tcell.KeyTab:
		c.marked = nil
		return []input.Action{input.SelectHallAction(hallIndex + 1)}
	case tcell.KeyBacktab:
		c.marked = nil
		return []input.Action{input.SelectHallAction(hallIndex - 1)}
	case tcell.KeyRune:
	default:
		return nil
	}

	switch r := ev.Rune(); {
	case r == ' ':
		return []input.Action{input.ClickAction(c.cursor)}
	case r == 'f':
		return []input.Action{input.AutoFillAction()}
	case r == 'm':
		if c.marked == nil {
			from := c.cursor
			c.marked = &from
			return nil
		}
		from := *c.marked
		c.marked = nil
		return []input.Action{input.RelocateAction(from, c.cursor)}
	case r >= '1' && r <= '9':
		return []input.Action{input.SelectObjectAction(int(r - '1'))}
	}
	return nil
}

func (c *controller) playKey(ev *tcell.EventKey) ([]input.Action, command) {
	if d, ok := direction(ev); ok {
		c.facing = d
		return []input.Action{input.MoveAction(d)}, cmdNone
	}
	if ev.Key() != tcell.KeyRune {
		return nil, cmdNone
	}
	switch ev.Rune() {
	case 'p', ' ':
		return []input.Action{input.PauseAction()}, cmdNone
	case 'r':
		return []input.Action{input.UseAction(component.Reveal, c.facing)}, cmdNone
	case 'c':
		return []input.Action{input.UseAction(component.CloakOfProtection, c.facing)}, cmdNone
	case 'g':
		return []input.Action{input.UseAction(component.LuringGem, c.facing)}, cmdNone
	case 'S':
		return nil, cmdSave
	case 'L':
		return nil, cmdLoad
	}
	return nil, cmdNone
}

// handleClick maps a mouse press on hall cell p.
func (c *controller) handleClick(p grid.Position, mode component.Mode) []input.Action {
	switch mode {
	case component.ModeBuild:
		c.cursor = p
		return []input.Action{input.ClickAction(p)}
	case component.ModePlay:
		return []input.Action{input.ClickAction(p)}
	}
	return nil
}
