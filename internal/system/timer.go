// internal/system/timer.go
package system

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"go-rune-halls/internal/config"
	"go-rune-halls/internal/event"
)

// CountdownTimer is a per-hall clock ticking on its own goroutine. It reports through
// a publisher, normally an event.Queue drained by the tick loop, so no listener runs
// on the timer goroutine.
type CountdownTimer struct {
	mu        sync.Mutex
	remaining time.Duration
	expired   bool

	paused atomic.Bool

	interval time.Duration
	events   event.Publisher
	log      zerolog.Logger

	runMu  sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewCountdownTimer(events event.Publisher, log zerolog.Logger) *CountdownTimer {
	return &CountdownTimer{interval: config.TimerInterval, events: events, log: log}
}

// Topics lists what the timer listens to.
func (t *CountdownTimer) Topics() []event.Type {
	return []event.Type{event.AddTime}
}

// OnEvent extends the clock on AddTime.
func (t *CountdownTimer) OnEvent(e event.Event) {
	if e.Type != event.AddTime {
		return
	}
	if data, ok := e.Data.(event.AddTimeData); ok {
		t.AddTime(data.Amount)
	}
}

// Start resets the clock to d and launches the ticking goroutine if it is not running.
func (t *CountdownTimer) Start(d time.Duration) {
	t.Reset(d)

	t.runMu.Lock()
	defer t.runMu.Unlock()
	if t.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	t.done = make(chan struct{})
	go func(done chan struct{}) {
		defer close(done)
		t.Run(ctx)
	}(t.done)
}

// Run ticks once per interval until ctx is cancelled.
func (t *CountdownTimer) Run(ctx context.Context) error {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			t.Tick()
		}
	}
}

// Stop halts the goroutine and waits for it to exit. Safe to call more than once.
func (t *CountdownTimer) Stop() {
	t.runMu.Lock()
	cancel, done := t.cancel, t.done
	t.cancel, t.done = nil, nil
	t.runMu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

// Reset sets the remaining time and clears the expired flag.
func (t *CountdownTimer) Reset(d time.Duration) {
	if d < 0 {
		d = 0
	}
	t.mu.Lock()
	t.remaining = d
	t.expired = false
	t.mu.Unlock()
}

// Tick consumes one interval. While paused or after expiry it does nothing.
// Reaching zero publishes TimeExpired exactly once.
func (t *CountdownTimer) Tick() {
	if t.paused.Load() {
		return
	}

	t.mu.Lock()
	if t.expired {
		t.mu.Unlock()
		return
	}
	t.remaining -= t.interval
	if t.remaining < 0 {
		t.remaining = 0
	}
	remaining := t.remaining
	expired := remaining == 0
	t.expired = expired
	t.mu.Unlock()

	publish(t.events, event.TimerTick, event.TimerTickData{Remaining: remaining})
	if expired {
		t.log.Info().Msg("time expired")
		publish(t.events, event.TimeExpired, nil)
	}
}

// AddTime extends the clock. Ignored once the timer has expired.
func (t *CountdownTimer) AddTime(d time.Duration) {
	if d <= 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.expired {
		return
	}
	t.remaining += d
}

func (t *CountdownTimer) Pause()         { t.paused.Store(true) }
func (t *CountdownTimer) Resume()        { t.paused.Store(false) }
func (t *CountdownTimer) IsPaused() bool { return t.paused.Load() }

// Remaining returns the time left.
func (t *CountdownTimer) Remaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}

// IsExpired reports whether the clock ran out.
func (t *CountdownTimer) IsExpired() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.expired
}

// IsRunning reports whether the ticking goroutine is alive.
func (t *CountdownTimer) IsRunning() bool {
	t.runMu.Lock()
	defer t.runMu.Unlock()
	return t.cancel != nil
}
