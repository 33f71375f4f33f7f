// internal/event/types.go
package event

import (
	"time"

	"go-rune-halls/pkg/grid"
)

const (
	StartGame        Type = "START_GAME"
	SwitchToPlayMode Type = "SWITCH_TO_PLAY_MODE"
	GameCompleted    Type = "GAME_COMPLETED"
	TimeExpired      Type = "TIME_EXPIRED"
	GameOver         Type = "GAME_OVER"
	AddTime          Type = "ADD_TIME"
	TimerTick        Type = "TIMER_TICK"
	HeroHitByArrow   Type = "HERO_HIT_BY_ARROW"
	HeroStabbed      Type = "HERO_STABBED"
	RuneCollected    Type = "RUNE_COLLECTED"
	RuneTeleported   Type = "RUNE_TELEPORTED"
	HeroDead         Type = "HERO_DEAD"
	AddLives         Type = "ADD_LIVES"
	Distraction      Type = "DISTRACTION"
	Invisibility     Type = "INVISIBILITY"
	MonsterSpawned   Type = "MONSTER_SPAWNED"
	ArcherArrowShot  Type = "ARCHER_ARROW_SHOT"
	ArcherHitHero    Type = "ARCHER_HIT_HERO"
)

// Topics is the closed list of topics the core produces or consumes.
var Topics = []Type{
	StartGame, SwitchToPlayMode, GameCompleted, TimeExpired, GameOver, AddTime, TimerTick,
	HeroHitByArrow, HeroStabbed, RuneCollected, RuneTeleported, HeroDead, AddLives,
	Distraction, Invisibility, MonsterSpawned, ArcherArrowShot, ArcherHitHero,
}

// GameOverReason says why a run ended.
type GameOverReason string

const (
	ReasonHeroDead    GameOverReason = "hero_dead"
	ReasonTimeExpired GameOverReason = "time_expired"
	ReasonCompleted   GameOverReason = "completed"
	ReasonAbandoned   GameOverReason = "abandoned"
)

// TimerTickData is the payload of TimerTick.
type TimerTickData struct {
	Remaining time.Duration
}

// AddTimeData is the payload of AddTime.
type AddTimeData struct {
	Amount time.Duration
}

// AddLivesData is the payload of AddLives.
type AddLivesData struct {
	Count int
}

// HitData is the payload of HeroHitByArrow, HeroStabbed and ArcherHitHero.
type HitData struct {
	Attacker grid.Position
	Target   grid.Position
}

// ArrowShotData is the payload of ArcherArrowShot.
type ArrowShotData struct {
	From grid.Position
	Hit  bool
}

// RuneData is the payload of RuneCollected and RuneTeleported.
type RuneData struct {
	HallIndex int
	Position  grid.Position
}

// DistractionData is the payload of Distraction.
type DistractionData struct {
	Target grid.Position
}

// InvisibilityData is the payload of Invisibility.
type InvisibilityData struct {
	Duration time.Duration
}

// MonsterSpawnedData is the payload of MonsterSpawned.
type MonsterSpawnedData struct {
	Kind     string
	Strategy string
	Position grid.Position
}

// GameOverData is the payload of GameOver.
type GameOverData struct {
	Reason GameOverReason
}
