// internal/event/queue.go
package event

import "sync"

// Queue carries events from background goroutines to the tick goroutine.
// Post is safe for any number of producers; Drain must only be called by the
// single consumer that owns the Dispatcher.
type Queue struct {
	mu      sync.Mutex
	pending []Event
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Post enqueues an event. It never blocks on listeners.
func (q *Queue) Post(event Event) {
	q.mu.Lock()
	q.pending = append(q.pending, event)
	q.mu.Unlock()
}

// Dispatch lets a Queue stand in for a Publisher on background goroutines.
func (q *Queue) Dispatch(event Event) {
	q.Post(event)
}

// Len returns the number of undelivered events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Drain delivers all pending events to p in FIFO order and returns how many were delivered.
// Events posted while draining wait for the next call.
func (q *Queue) Drain(p Publisher) int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, ev := range batch {
		p.Dispatch(ev)
	}
	return len(batch)
}

// Clear drops everything pending, used when the owning hall or session is torn down.
func (q *Queue) Clear() {
	q.mu.Lock()
	q.pending = nil
	q.mu.Unlock()
}
