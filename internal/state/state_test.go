package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-rune-halls/internal/component"
	"go-rune-halls/internal/input"
)

// fakeState records its lifecycle into a shared log and can request a
// transition from inside Update or HandleAction.
type fakeState struct {
	name string
	mode component.Mode
	log  *[]string
	sm   *StateMachine
	next State
}

func (f *fakeState) Mode() component.Mode { return f.mode }
func (f *fakeState) Enter()               { *f.log = append(*f.log, f.name+".enter") }
func (f *fakeState) Exit()                { *f.log = append(*f.log, f.name+".exit") }

func (f *fakeState) Update() {
	*f.log = append(*f.log, f.name+".update")
	if f.next != nil {
		f.sm.Request(f.next)
		*f.log = append(*f.log, f.name+".after-request")
	}
}

func (f *fakeState) HandleAction(input.Action) {
	*f.log = append(*f.log, f.name+".action")
	if f.next != nil {
		f.sm.Request(f.next)
		*f.log = append(*f.log, f.name+".after-request")
	}
}

func TestStateMachineTransitions(t *testing.T) {
	tests := []struct {
		name string
		run  func(sm *StateMachine, a, b *fakeState)
		want []string
		mode component.Mode
	}{
		{
			name: "request outside a call applies at once",
			run:  func(sm *StateMachine, a, b *fakeState) { sm.Request(b) },
			want: []string{"a.exit", "b.enter"},
			mode: component.ModePlay,
		},
		{
			name: "request during update waits for it to return",
			run: func(sm *StateMachine, a, b *fakeState) {
				a.next = b
				sm.Update()
			},
			want: []string{"a.update", "a.after-request", "a.exit", "b.enter"},
			mode: component.ModePlay,
		},
		{
			name: "request during action waits for it to return",
			run: func(sm *StateMachine, a, b *fakeState) {
				a.next = b
				sm.HandleAction(input.StartAction())
			},
			want: []string{"a.action", "a.after-request", "a.exit", "b.enter"},
			mode: component.ModePlay,
		},
		{
			name: "no request keeps the state",
			run:  func(sm *StateMachine, a, b *fakeState) { sm.Update() },
			want: []string{"a.update"},
			mode: component.ModeBuild,
		},
		{
			name: "clearing exits the current state",
			run:  func(sm *StateMachine, a, b *fakeState) { sm.SetState(nil) },
			want: []string{"a.exit"},
			mode: component.ModeMainMenu,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var log []string
			sm := NewStateMachine()
			a := &fakeState{name: "a", mode: component.ModeBuild, log: &log, sm: sm}
			b := &fakeState{name: "b", mode: component.ModePlay, log: &log, sm: sm}
			sm.SetState(a)
			log = log[:0]

			tt.run(sm, a, b)
			assert.Equal(t, tt.want, log)
			assert.Equal(t, tt.mode, sm.Mode())
		})
	}
}

func TestStateMachineWithoutState(t *testing.T) {
	sm := NewStateMachine()
	assert.Nil(t, sm.Current())
	assert.Equal(t, component.ModeMainMenu, sm.Mode())
	assert.NotPanics(t, func() {
		sm.Update()
		sm.HandleAction(input.QuitAction())
	})
}
