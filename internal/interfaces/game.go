package interfaces

import (
	"time"

	"go-rune-halls/internal/component"
	"go-rune-halls/internal/entity"
)

// View is the read-only surface renderers and front ends draw from.
type View interface {
	Mode() component.Mode
	ActiveHall() *entity.Hall
	Hero() *entity.Hero
	Remaining() time.Duration
	IsPaused() bool
	Status() string
}
