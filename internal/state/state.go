// internal/state/state.go
package state

import (
	"errors"

	"go-rune-halls/internal/component"
	"go-rune-halls/internal/input"
)

// ErrRequirementsNotMet is reported when play is requested before every hall has
// enough objects.
var ErrRequirementsNotMet = errors.New("not every hall meets its object minimum")

// State is one mode of the game.
type State interface {
	Mode() component.Mode
	Enter()
	Update()
	HandleAction(a input.Action)
	Exit()
}

// StateMachine holds the current mode. Transitions requested while a state is
// running are applied once that call returns.
type StateMachine struct {
	current State
	pending State
	busy    bool
}

// NewStateMachine creates a machine with no initial state.
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState exits the current state, installs newState and enters it.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Request schedules a transition. Outside of Update/HandleAction it applies at once.
func (sm *StateMachine) Request(next State) {
	if !sm.busy {
		sm.SetState(next)
		return
	}
	sm.pending = next
}

// Current returns the active state.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Mode returns the active mode, or the main menu when nothing is installed.
func (sm *StateMachine) Mode() component.Mode {
	if sm.current == nil {
		return component.ModeMainMenu
	}
	return sm.current.Mode()
}

// Update runs one tick of the current state.
func (sm *StateMachine) Update() {
	sm.run(func(s State) { s.Update() })
}

// HandleAction forwards one input action to the current state.
func (sm *StateMachine) HandleAction(a input.Action) {
	sm.run(func(s State) { s.HandleAction(a) })
}

func (sm *StateMachine) run(fn func(State)) {
	if sm.current == nil {
		return
	}
	sm.busy = true
	fn(sm.current)
	sm.busy = false

	if next := sm.pending; next != nil {
		sm.pending = nil
		sm.SetState(next)
	}
}
