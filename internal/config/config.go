// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	TicksPerSecond = 60
	TickDuration   = time.Second / TicksPerSecond

	ScreenWidth  = 1024
	ScreenHeight = 768
	CellSize     = 40
	HUDHeight    = 64

	// Play loop cadence, in ticks.
	MonsterSpawnInterval     = 8 * TicksPerSecond
	EnchantmentSpawnInterval = 12 * TicksPerSecond
	EnchantmentLifetime      = 6 * TicksPerSecond
	LureStepInterval         = TicksPerSecond

	// Monster behaviour, in ticks unless noted.
	ArcherShotInterval      = TicksPerSecond
	ArcherRange             = 4.0 // cells
	FighterHitCooldown      = 3 * TicksPerSecond
	FighterMissCooldown     = TicksPerSecond
	FighterReach            = 1.0 // cells
	LureArrivalDistance     = 0.1 // cells
	LureTimeout             = 10 * TicksPerSecond
	WizardChallengeInterval = 3 * TicksPerSecond
	WizardHelpfulDelay      = TicksPerSecond
	WizardIndecisiveLife    = 2 * TicksPerSecond
	WizardHelpfulBelow      = 0.30 // fraction of starting time remaining
	WizardChallengeAbove    = 0.70

	// Hero.
	HeroStartLives   = 3
	VerticalMargin   = 1
	CloakDuration    = 20 * TicksPerSecond
	RevealDuration   = 10 * TicksPerSecond
	RevealRegionSize = 4
	LureThrowRange   = 4

	// Enchantment effects.
	ExtraTimeAmount = 5 * time.Second
	ExtraLifeAmount = 1

	// Countdown.
	TimerInterval   = time.Second
	TimePerObject   = 5 * time.Second
	MinStartingTime = 5 * time.Second

	PathSearchLimit = 512
)

var (
	BackgroundColor   = color.RGBA{20, 20, 30, 255}
	FloorColor        = color.RGBA{70, 60, 50, 255}
	FloorAltColor     = color.RGBA{78, 66, 55, 255}
	MarginColor       = color.RGBA{40, 35, 30, 255}
	GridLineColor     = color.RGBA{30, 25, 20, 255}
	ObjectColor       = color.RGBA{140, 110, 80, 255}
	ObjectStrokeColor = color.RGBA{200, 170, 120, 255}
	HeroColor         = color.RGBA{50, 205, 50, 255}
	CloakedHeroColor  = color.RGBA{50, 205, 50, 110}
	ArcherColor       = color.RGBA{220, 60, 60, 255}
	FighterColor      = color.RGBA{230, 140, 40, 255}
	WizardColor       = color.RGBA{150, 80, 230, 255}
	RuneColor         = color.RGBA{255, 215, 0, 255}
	RevealColor       = color.RGBA{255, 215, 0, 70}
	LureColor         = color.RGBA{0, 220, 220, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TextDarkColor     = color.RGBA{20, 20, 30, 255}
	BuildModeColor    = color.RGBA{70, 130, 180, 220}
	PlayModeColor     = color.RGBA{220, 60, 60, 220}
	PauseColor        = color.RGBA{70, 130, 180, 220}
	PlayColor         = color.RGBA{50, 205, 50, 220}
	EnchantmentColors = map[string]color.RGBA{
		"extra_time": {100, 180, 255, 255},
		"reveal":     {255, 240, 120, 255},
		"cloak":      {160, 160, 200, 255},
		"luring_gem": {0, 220, 220, 255},
		"extra_life": {255, 90, 120, 255},
	}
)
