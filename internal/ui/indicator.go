// internal/ui/indicator.go
package ui

import (
	"image/color"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-rune-halls/internal/component"
	"go-rune-halls/internal/config"
	"go-rune-halls/internal/utils"
)

// ModeIndicatorRL is a coloured dot showing build or play mode.
type ModeIndicatorRL struct {
	X, Y       float32
	Radius     float32
	LastChange time.Time
	mode       component.Mode
}

func NewModeIndicatorRL(x, y, radius float32) *ModeIndicatorRL {
	return &ModeIndicatorRL{X: x, Y: y, Radius: radius}
}

// Draw pulses briefly whenever the mode changes.
func (i *ModeIndicatorRL) Draw(mode component.Mode) {
	if mode != i.mode {
		i.mode = mode
		i.LastChange = time.Now()
	}
	scale := utils.PulseScale(time.Since(i.LastChange).Seconds())
	currentRadius := i.Radius * float32(scale)

	c := ModeColor(mode)
	rlColor := rl.NewColor(c.R, c.G, c.B, c.A)
	rl.DrawCircleV(rl.NewVector2(i.X, i.Y), currentRadius, rlColor)
	rl.DrawCircleLines(int32(i.X), int32(i.Y), currentRadius, rl.White)
}

// ModeColor is the indicator colour of a mode.
func ModeColor(mode component.Mode) color.RGBA {
	switch mode {
	case component.ModeBuild:
		return config.BuildModeColor
	case component.ModePlay:
		return config.PlayModeColor
	}
	return config.MarginColor
}
