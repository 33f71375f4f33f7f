// internal/app/session.go
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"go-rune-halls/internal/component"
	"go-rune-halls/internal/config"
	"go-rune-halls/internal/defs"
	"go-rune-halls/internal/entity"
	"go-rune-halls/internal/event"
	"go-rune-halls/internal/input"
	"go-rune-halls/internal/interfaces"
	"go-rune-halls/internal/state"
	"go-rune-halls/internal/system"
	"go-rune-halls/internal/utils"
)

var (
	_ interfaces.GameContext = (*Session)(nil)
	_ interfaces.View        = (*Session)(nil)
)

// Options configures a new session.
type Options struct {
	Catalog *defs.Catalog
	Seed    int64
	Logger  zerolog.Logger
}

// Session owns one game: the bus, the timer, the hero, the halls and the mode
// machine. Its methods are meant for a single tick goroutine.
type Session struct {
	log     zerolog.Logger
	bus     *event.Dispatcher
	queue   *event.Queue
	catalog *defs.Catalog
	rng     *utils.PRNGService

	hero   *entity.Hero
	halls  []*entity.Hall
	active int
	timer  *system.CountdownTimer
	sm     *state.StateMachine

	status string
	result event.GameOverReason
	over   bool
}

// NewSession creates a session sitting in the main menu.
func NewSession(opts Options) *Session {
	catalog := opts.Catalog
	if catalog == nil {
		catalog = defs.DefaultCatalog()
	}
	s := &Session{
		log:     opts.Logger,
		bus:     event.NewDispatcher(opts.Logger.With().Str("component", "bus").Logger()),
		queue:   event.NewQueue(),
		catalog: catalog,
		rng:     utils.NewPRNGService(opts.Seed),
		sm:      state.NewStateMachine(),
	}
	s.timer = system.NewCountdownTimer(s.queue, opts.Logger.With().Str("component", "timer").Logger())

	listener := &sessionListener{session: s}
	for _, t := range sessionTopics {
		s.bus.Subscribe(t, listener)
	}

	s.newRun()
	s.sm.SetState(state.NewMenuState(s))
	return s
}

// newRun builds empty halls from the catalogue and a fresh hero.
func (s *Session) newRun() {
	s.halls = make([]*entity.Hall, len(s.catalog.Halls))
	for i, def := range s.catalog.Halls {
		hall := entity.NewHall(def, s.rng, s.bus)
		hall.Index = i
		s.halls[i] = hall
	}
	s.active = 0
	start := s.halls[0].Start()
	s.hero = entity.NewHero(start, s.bus)
	s.over = false
	s.result = ""
	s.status = ""
}

func (s *Session) Bus() *event.Dispatcher        { return s.bus }
func (s *Session) Queue() *event.Queue           { return s.queue }
func (s *Session) Logger() zerolog.Logger        { return s.log }
func (s *Session) Catalog() *defs.Catalog        { return s.catalog }
func (s *Session) RNG() *utils.PRNGService       { return s.rng }
func (s *Session) Hero() *entity.Hero            { return s.hero }
func (s *Session) Halls() []*entity.Hall         { return s.halls }
func (s *Session) ActiveHallIndex() int          { return s.active }
func (s *Session) Timer() *system.CountdownTimer { return s.timer }

func (s *Session) SetActiveHallIndex(i int) {
	if i >= 0 && i < len(s.halls) {
		s.active = i
	}
}

// ActiveHall returns the hall being edited or played.
func (s *Session) ActiveHall() *entity.Hall {
	if s.active < 0 || s.active >= len(s.halls) {
		return nil
	}
	return s.halls[s.active]
}

// Mode returns the current mode.
func (s *Session) Mode() component.Mode { return s.sm.Mode() }

// State returns the current mode object, for front ends that show mode details.
func (s *Session) State() state.State { return s.sm.Current() }

// Remaining returns the time left on the active hall's clock.
func (s *Session) Remaining() time.Duration { return s.timer.Remaining() }

// IsPaused reports whether play is paused.
func (s *Session) IsPaused() bool {
	if p, ok := s.sm.Current().(*state.PlayState); ok {
		return p.IsPaused()
	}
	return false
}

// Status is a one-line description of the last notable outcome.
func (s *Session) Status() string { return s.status }

// Result returns why the last run ended, or "" while one is in progress.
func (s *Session) Result() event.GameOverReason { return s.result }

// Update runs one tick: timer events queued since the last tick are delivered
// first, then the current mode updates.
func (s *Session) Update() {
	s.queue.Drain(s.bus)
	s.sm.Update()
}

// HandleAction feeds one input action to the current mode.
func (s *Session) HandleAction(a input.Action) {
	s.sm.HandleAction(a)
}

// Run drives the session at the configured tick rate until ctx is done. Actions
// received on the channel are applied before the next tick; afterTick, if set, runs
// on the same goroutine after every tick so front ends can draw.
func (s *Session) Run(ctx context.Context, actions <-chan input.Action, afterTick func()) error {
	ticker := time.NewTicker(config.TickDuration)
	defer ticker.Stop()
	defer s.Close()

	var pending []input.Action
	for {
		select {
		case <-ctx.Done():
			return nil
		case a, ok := <-actions:
			if !ok {
				actions = nil
				continue
			}
			pending = append(pending, a)
		case <-ticker.C:
			for _, a := range pending {
				s.HandleAction(a)
			}
			pending = pending[:0]
			s.Update()
			if afterTick != nil {
				afterTick()
			}
		}
	}
}

// Close leaves the current mode, which stops the timer.
func (s *Session) Close() {
	s.sm.SetState(nil)
}

var sessionTopics = []event.Type{
	event.StartGame,
	event.SwitchToPlayMode,
	event.GameCompleted,
	event.TimeExpired,
	event.HeroDead,
	event.GameOver,
}

// sessionListener turns lifecycle topics into mode transitions.
type sessionListener struct {
	session *Session
}

func (l *sessionListener) OnEvent(e event.Event) {
	s := l.session
	switch e.Type {
	case event.StartGame:
		s.newRun()
		s.log.Info().Msg("new game")
		s.sm.Request(state.NewBuildState(s))
	case event.SwitchToPlayMode:
		s.sm.Request(state.NewPlayState(s))
	case event.GameCompleted:
		s.bus.Notify(event.GameOver, event.GameOverData{Reason: event.ReasonCompleted})
	case event.TimeExpired:
		if s.Mode() == component.ModePlay {
			s.bus.Notify(event.GameOver, event.GameOverData{Reason: event.ReasonTimeExpired})
		}
	case event.HeroDead:
		if s.Mode() == component.ModePlay {
			s.bus.Notify(event.GameOver, event.GameOverData{Reason: event.ReasonHeroDead})
		}
	case event.GameOver:
		if s.over {
			return
		}
		reason := event.ReasonAbandoned
		if data, ok := e.Data.(event.GameOverData); ok {
			reason = data.Reason
		}
		s.over = true
		s.result = reason
		s.status = gameOverStatus(reason)
		s.log.Info().Str("reason", string(reason)).Msg("game over")
		s.sm.Request(state.NewMenuState(s))
	}
}

func gameOverStatus(reason event.GameOverReason) string {
	switch reason {
	case event.ReasonCompleted:
		return "All runes collected. You win!"
	case event.ReasonHeroDead:
		return "The hero has fallen."
	case event.ReasonTimeExpired:
		return "Time ran out."
	}
	return "Game abandoned."
}
