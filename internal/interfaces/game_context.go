// internal/interfaces/game_context.go
package interfaces

import (
	"github.com/rs/zerolog"

	"go-rune-halls/internal/defs"
	"go-rune-halls/internal/entity"
	"go-rune-halls/internal/event"
	"go-rune-halls/internal/system"
	"go-rune-halls/internal/utils"
)

// GameContext is what a mode needs from the session that owns it.
type GameContext interface {
	Bus() *event.Dispatcher
	Queue() *event.Queue
	Logger() zerolog.Logger
	Catalog() *defs.Catalog
	RNG() *utils.PRNGService

	Hero() *entity.Hero
	Halls() []*entity.Hall
	ActiveHallIndex() int
	SetActiveHallIndex(i int)
	Timer() *system.CountdownTimer
}
