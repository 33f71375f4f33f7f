// internal/system/behavior.go
package system

import (
	"fmt"

	"go-rune-halls/internal/component"
	"go-rune-halls/internal/entity"
	"go-rune-halls/internal/event"
)

// Subscriber is a behaviour that listens on the bus while its monster is alive.
type Subscriber interface {
	event.Listener
	Topics() []event.Type
}

// Attach subscribes the monster's behaviour to its topics, if it has any.
func Attach(d *event.Dispatcher, m *entity.Monster) {
	if s, ok := m.Behavior().(Subscriber); ok {
		for _, t := range s.Topics() {
			d.Subscribe(t, s)
		}
	}
}

// Detach undoes Attach. Safe to call for behaviours that never subscribed.
func Detach(d *event.Dispatcher, m *entity.Monster) {
	if s, ok := m.Behavior().(Subscriber); ok {
		for _, t := range s.Topics() {
			d.Unsubscribe(t, s)
		}
	}
}

// NewBehavior builds a fresh strategy for a monster kind. mode only matters for wizards.
func NewBehavior(kind component.MonsterKind, mode component.WizardMode, hall *entity.Hall, events event.Publisher) (entity.Behavior, error) {
	switch kind {
	case component.Archer:
		return NewArcherBehavior(events), nil
	case component.Fighter:
		return NewFighterBehavior(events), nil
	case component.Wizard:
		return NewWizardBehavior(mode, hall, events)
	}
	return nil, fmt.Errorf("unknown monster kind %q", kind)
}

// WizardModeOf returns the sub-strategy of a wizard behaviour.
func WizardModeOf(b entity.Behavior) (component.WizardMode, bool) {
	if w, ok := b.(interface{ Mode() component.WizardMode }); ok {
		return w.Mode(), true
	}
	return "", false
}

func publish(p event.Publisher, t event.Type, data interface{}) {
	if p != nil {
		p.Dispatch(event.Event{Type: t, Data: data})
	}
}
