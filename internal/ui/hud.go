// internal/ui/hud.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-rune-halls/internal/component"
	"go-rune-halls/internal/config"
	"go-rune-halls/internal/interfaces"
	"go-rune-halls/internal/utils"
)

// HUD is the ebiten top bar: mode, hall, countdown, lives and pause state.
type HUD struct {
	fontFace font.Face
}

func NewHUD(face font.Face) *HUD {
	return &HUD{fontFace: face}
}

func (h *HUD) Draw(screen *ebiten.Image, view interfaces.View, hallNumber int) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.HUDHeight, config.MarginColor, false)

	mode := view.Mode()
	mc := ModeColor(mode)
	vector.DrawFilledCircle(screen, 24, config.HUDHeight/2, 10, mc, true)
	text.Draw(screen, mode.String(), h.fontFace, 42, config.HUDHeight/2+5, config.TextLightColor)

	if hall := view.ActiveHall(); hall != nil && mode != component.ModeMainMenu {
		label := fmt.Sprintf("%s  %s  objects %d/%d", utils.Roman(hallNumber), hall.Name, hall.ObjectCount(), hall.MinObjects())
		text.Draw(screen, label, h.fontFace, 140, config.HUDHeight/2+5, config.TextLightColor)
	}

	if mode != component.ModePlay {
		if status := view.Status(); status != "" {
			text.Draw(screen, status, h.fontFace, config.ScreenWidth/2, config.HUDHeight/2+5, config.RuneColor)
		}
		return
	}

	text.Draw(screen, utils.FormatClock(view.Remaining()), h.fontFace, config.ScreenWidth/2, config.HUDHeight/2+5, config.TextLightColor)

	if hero := view.Hero(); hero != nil {
		for i := 0; i < max(hero.Lives(), config.HeroStartLives); i++ {
			x := float32(config.ScreenWidth - 30 - i*24)
			fill := config.MarginColor
			if i < hero.Lives() {
				fill = config.ArcherColor
			}
			vector.DrawFilledCircle(screen, x, config.HUDHeight/2, 8, fill, true)
			vector.StrokeCircle(screen, x, config.HUDHeight/2, 8, 1, config.TextLightColor, true)
		}
	}

	if view.IsPaused() {
		cx := float32(config.ScreenWidth - 150)
		cy := float32(config.HUDHeight / 2)
		vector.DrawFilledRect(screen, cx-8, cy-10, 5, 20, config.PauseColor, false)
		vector.DrawFilledRect(screen, cx+3, cy-10, 5, 20, config.PauseColor, false)
	}
}
