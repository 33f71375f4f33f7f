// internal/ui/lives_indicator.go
package ui

import (
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	LivesCols          = 5
	LivesCircleRadius  = 8.0
	LivesCircleSpacing = 4.0
)

// LivesIndicator draws the hero's lives as a row of circles.
type LivesIndicator struct {
	Position rl.Vector2
}

func NewLivesIndicator(x, y float32) *LivesIndicator {
	return &LivesIndicator{Position: rl.NewVector2(x, y)}
}

// Draw fills one circle per life. Lives above the starting count are blue.
func (i *LivesIndicator) Draw(lives, startLives int) {
	slots := max(lives, startLives)
	for j := 0; j < slots; j++ {
		row := j / LivesCols
		col := j % LivesCols
		x := i.Position.X + float32(col*(LivesCircleRadius*2+LivesCircleSpacing))
		y := i.Position.Y + float32(row*(LivesCircleRadius*2+LivesCircleSpacing))

		color := rl.Black
		switch {
		case j < lives && j >= startLives:
			color = rl.Blue
		case j < lives:
			color = rl.Red
		}
		rl.DrawCircle(int32(x+LivesCircleRadius), int32(y+LivesCircleRadius), LivesCircleRadius, color)
		rl.DrawCircleLines(int32(x+LivesCircleRadius), int32(y+LivesCircleRadius), LivesCircleRadius, rl.White)
	}

	label := strconv.Itoa(lives)
	rl.DrawText(label, int32(i.Position.X)-int32(rl.MeasureText(label, 20))-8, int32(i.Position.Y)-2, 20, rl.White)
}
