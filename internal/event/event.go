// internal/event/event.go
package event

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// Type names a topic.
type Type string

// Event is one notification on a topic.
type Event struct {
	Type Type
	Data interface{}
}

// Listener receives events for the topics it was subscribed to.
// Implementations must be comparable (pointer receivers) so Unsubscribe can find them.
type Listener interface {
	OnEvent(event Event)
}

// Publisher is the narrow view of the bus handed to behaviours and entities.
type Publisher interface {
	Dispatch(event Event)
}

// Dispatcher is a synchronous publish/subscribe bus scoped to one session.
// Listeners run on the caller's goroutine in registration order.
type Dispatcher struct {
	mu        sync.RWMutex
	listeners map[Type][]Listener
	log       zerolog.Logger
}

// NewDispatcher creates an empty bus.
func NewDispatcher(log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		listeners: make(map[Type][]Listener),
		log:       log,
	}
}

// Subscribe appends listener to the topic's delivery list.
func (d *Dispatcher) Subscribe(eventType Type, listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe removes one registration of listener from the topic.
func (d *Dispatcher) Unsubscribe(eventType Type, listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	listeners, exists := d.listeners[eventType]
	if !exists {
		return
	}
	for i, l := range listeners {
		if l == listener {
			updated := make([]Listener, 0, len(listeners)-1)
			updated = append(updated, listeners[:i]...)
			updated = append(updated, listeners[i+1:]...)
			d.listeners[eventType] = updated
			break
		}
	}
}

// UnsubscribeAll clears a topic.
func (d *Dispatcher) UnsubscribeAll(eventType Type) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.listeners, eventType)
}

// ListenerCount returns how many registrations a topic has.
func (d *Dispatcher) ListenerCount(eventType Type) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.listeners[eventType])
}

// Dispatch delivers event to every listener of its topic. Unknown topics are a no-op.
// A panicking listener is logged and skipped; later listeners still run.
func (d *Dispatcher) Dispatch(event Event) {
	d.mu.RLock()
	listeners := d.listeners[event.Type]
	d.mu.RUnlock()

	for _, listener := range listeners {
		d.deliver(listener, event)
	}
}

// Notify is shorthand for Dispatch(Event{Type: t, Data: data}).
func (d *Dispatcher) Notify(t Type, data interface{}) {
	d.Dispatch(Event{Type: t, Data: data})
}

func (d *Dispatcher) deliver(listener Listener, event Event) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error().
				Str("topic", string(event.Type)).
				Str("listener", fmt.Sprintf("%T", listener)).
				Interface("panic", r).
				Msg("listener panicked")
		}
	}()
	listener.OnEvent(event)
}
