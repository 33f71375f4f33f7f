// internal/ui/hall_indicator.go
package ui

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-rune-halls/internal/config"
	"go-rune-halls/internal/utils"
)

// HallIndicator shows the hall number in roman numerals and the countdown under it.
type HallIndicator struct {
	X, Y             float32
	FontSize         float32
	Color            rl.Color
	OutlineColor     rl.Color
	OutlineThickness int32
}

func NewHallIndicator(x, y, fontSize float32) *HallIndicator {
	c := config.RuneColor
	return &HallIndicator{
		X:                x,
		Y:                y,
		FontSize:         fontSize,
		Color:            rl.NewColor(c.R, c.G, c.B, c.A),
		OutlineColor:     rl.Black,
		OutlineThickness: 2,
	}
}

// Draw shows hall number (1-based) and the time left. The clock turns red in the
// last five seconds.
func (i *HallIndicator) Draw(hallNumber int, remaining time.Duration, font rl.Font) {
	if hallNumber <= 0 {
		return
	}
	i.drawOutlined(utils.Roman(hallNumber), i.Y, i.Color, font)

	clock := rl.White
	if remaining <= 5*time.Second {
		clock = rl.Red
	}
	i.drawOutlined(utils.FormatClock(remaining), i.Y+i.FontSize, clock, font)
}

func (i *HallIndicator) drawOutlined(text string, y float32, textColor rl.Color, font rl.Font) {
	textSize := rl.MeasureTextEx(font, text, i.FontSize, 1)
	textX := i.X - textSize.X/2

	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			rl.DrawTextEx(font, text, rl.NewVector2(textX+float32(dx), y+float32(dy)), i.FontSize, 1, i.OutlineColor)
		}
	}
	rl.DrawTextEx(font, text, rl.NewVector2(textX, y), i.FontSize, 1, textColor)
}
