// internal/state/menu_state.go
package state

import (
	"github.com/rs/zerolog"

	"go-rune-halls/internal/component"
	"go-rune-halls/internal/event"
	"go-rune-halls/internal/input"
	"go-rune-halls/internal/interfaces"
)

// MenuState is the idle entry screen. Starting a game is announced on the bus;
// the session builds fresh halls and moves to build mode.
type MenuState struct {
	ctx interfaces.GameContext
	log zerolog.Logger
}

func NewMenuState(ctx interfaces.GameContext) *MenuState {
	return &MenuState{ctx: ctx, log: ctx.Logger().With().Str("component", "menu").Logger()}
}

func (m *MenuState) Mode() component.Mode { return component.ModeMainMenu }

func (m *MenuState) Enter() {
	m.log.Info().Msg("main menu")
}

func (m *MenuState) Update() {}

func (m *MenuState) HandleAction(a input.Action) {
	if a.Kind == input.Start {
		m.ctx.Bus().Notify(event.StartGame, nil)
	}
}

func (m *MenuState) Exit() {}
