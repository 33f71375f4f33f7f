// cmd/game/keys.go
package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-rune-halls/internal/app"
	"go-rune-halls/internal/component"
	"go-rune-halls/internal/input"
	"go-rune-halls/internal/ui"
	"go-rune-halls/internal/utils"
	"go-rune-halls/pkg/grid"
)

// moveRepeat is how many ticks a held direction key waits between steps.
const moveRepeat = 8

var moveKeys = map[grid.Direction][]ebiten.Key{
	grid.Up:    {ebiten.KeyW, ebiten.KeyArrowUp},
	grid.Down:  {ebiten.KeyS, ebiten.KeyArrowDown},
	grid.Left:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	grid.Right: {ebiten.KeyD, ebiten.KeyArrowRight},
}

var objectKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4,
	ebiten.Key5, ebiten.Key6, ebiten.Key7, ebiten.Key8,
}

// keyboard turns ebiten input into session actions.
type keyboard struct {
	dragFrom *grid.Position
}

func newKeyboard() *keyboard {
	return &keyboard{}
}

func (k *keyboard) justPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

func (k *keyboard) poll(s *app.Session, layout utils.Layout, panel *ui.InfoPanel) []input.Action {
	var out []input.Action
	if k.justPressed(ebiten.KeyEscape) {
		out = append(out, input.QuitAction())
	}
	if k.justPressed(ebiten.KeyEnter) {
		out = append(out, input.StartAction())
	}

	switch s.Mode() {
	case component.ModeBuild:
		out = append(out, k.pollBuild(s, layout)...)
	case component.ModePlay:
		out = append(out, k.pollPlay(layout, panel)...)
	}
	return out
}

func (k *keyboard) pollBuild(s *app.Session, layout utils.Layout) []input.Action {
	var out []input.Action
	if k.justPressed(ebiten.KeyTab) {
		out = append(out, input.SelectHallAction(s.ActiveHallIndex()+1))
	}
	if k.justPressed(ebiten.KeyF) {
		out = append(out, input.AutoFillAction())
	}
	for i, key := range objectKeys {
		if k.justPressed(key) {
			out = append(out, input.SelectObjectAction(i))
		}
	}

	x, y := ebiten.CursorPosition()
	cell := layout.ScreenToCell(float64(x), float64(y))
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		out = append(out, input.ClickAction(cell))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		from := cell
		k.dragFrom = &from
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) && k.dragFrom != nil {
		if *k.dragFrom != cell {
			out = append(out, input.RelocateAction(*k.dragFrom, cell))
		}
		k.dragFrom = nil
	}
	return out
}

func (k *keyboard) pollPlay(layout utils.Layout, panel *ui.InfoPanel) []input.Action {
	var out []input.Action
	if k.justPressed(ebiten.KeyP) || k.justPressed(ebiten.KeySpace) {
		out = append(out, input.PauseAction())
	}

	for _, dir := range grid.Directions {
		for _, key := range moveKeys[dir] {
			d := inpututil.KeyPressDuration(key)
			if d == 1 || (d > 1 && d%moveRepeat == 0) {
				panel.Facing = dir
				out = append(out, input.MoveAction(dir))
				break
			}
		}
	}

	if k.justPressed(ebiten.KeyR) {
		out = append(out, input.UseAction(component.Reveal, panel.Facing))
	}
	if k.justPressed(ebiten.KeyC) {
		out = append(out, input.UseAction(component.CloakOfProtection, panel.Facing))
	}
	if k.justPressed(ebiten.KeyG) {
		out = append(out, input.UseAction(component.LuringGem, panel.Facing))
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if !panel.Contains(x, y) {
			out = append(out, input.ClickAction(layout.ScreenToCell(float64(x), float64(y))))
		}
	}
	return out
}
