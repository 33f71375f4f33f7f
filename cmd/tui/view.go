// cmd/tui/view.go
package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gdamore/tcell/v2"

	"go-rune-halls/internal/app"
	"go-rune-halls/internal/component"
	"go-rune-halls/internal/config"
	"go-rune-halls/internal/entity"
	"go-rune-halls/internal/state"
	"go-rune-halls/internal/utils"
	"go-rune-halls/pkg/grid"
	"go-rune-halls/pkg/render"
)

const (
	hallTop  = 2 // rows above the grid
	hallLeft = 1
	cellCols = 2 // terminal columns per hall cell
)

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func drawText(scr tcell.Screen, x, y int, style tcell.Style, s string) {
	for i, r := range []rune(s) {
		scr.SetContent(x+i, y, r, nil, style)
	}
}

// screenToCell maps a terminal position back to a hall cell.
func screenToCell(x, y int) grid.Position {
	return grid.Position{X: (x - hallLeft) / cellCols, Y: y - hallTop}
}

type view struct {
	scr  tcell.Screen
	ctrl *controller
	log  *messageLog
}

func (v *view) draw(s *app.Session) {
	v.scr.Clear()
	base := tcell.StyleDefault.Background(rgb(config.BackgroundColor)).Foreground(rgb(config.TextLightColor))

	switch s.Mode() {
	case component.ModeMainMenu:
		v.drawMenu(s, base)
	default:
		v.drawHeader(s, base)
		if hall := s.ActiveHall(); hall != nil {
			v.drawHall(s, hall, base)
			v.drawFooter(s, hall, base)
		}
	}
	v.scr.Show()
}

func (v *view) drawMenu(s *app.Session, base tcell.Style) {
	lines := []string{
		"R U N E   H A L L S",
		"",
		"Enter  new game",
		"L      load last save",
		"q      quit",
	}
	if st := s.Status(); st != "" {
		lines = append(lines, "", st)
	}
	for i, l := range lines {
		drawText(v.scr, 4, 2+i, base, l)
	}
}

func (v *view) drawHeader(s *app.Session, base tcell.Style) {
	hall := s.ActiveHall()
	name := ""
	if hall != nil {
		name = fmt.Sprintf("%s %s  objects %d/%d", utils.Roman(s.ActiveHallIndex()+1), hall.Name, hall.ObjectCount(), hall.MinObjects())
	}
	header := fmt.Sprintf("[%s] %s", s.Mode(), name)
	if s.Mode() == component.ModePlay {
		hero := s.Hero()
		header += fmt.Sprintf("  time %s  lives %s", utils.FormatClock(s.Remaining()), strings.Repeat("♥", hero.Lives()))
		if s.IsPaused() {
			header += "  PAUSED"
		}
	}
	drawText(v.scr, 0, 0, base.Bold(true), header)
	if st := s.Status(); st != "" {
		drawText(v.scr, 0, 1, base.Foreground(rgb(config.RuneColor)), st)
	}
}

func (v *view) drawHall(s *app.Session, hall *entity.Hall, base tcell.Style) {
	hint, hintSize, hinted := hall.HintRegion()
	for y := 0; y < hall.Height(); y++ {
		for x := 0; x < hall.Width(); x++ {
			p := grid.Position{X: x, Y: y}
			bg := config.FloorColor
			if !hall.IsWalkable(p) {
				bg = config.MarginColor
			}
			if hinted && x >= hint.X && x < hint.X+hintSize && y >= hint.Y && y < hint.Y+hintSize {
				bg = render.DarkenColor(config.RuneColor)
			}
			glyph, fg := cellGlyph(hall, p, s.Mode())
			style := base.Background(rgb(bg)).Foreground(rgb(fg))
			if s.Mode() == component.ModeBuild && p == v.ctrl.cursor {
				style = style.Reverse(true)
			}
			if v.ctrl.marked != nil && p == *v.ctrl.marked {
				style = style.Underline(true)
			}
			v.scr.SetContent(hallLeft+x*cellCols, hallTop+y, glyph, nil, style)
			v.scr.SetContent(hallLeft+x*cellCols+1, hallTop+y, ' ', nil, style)
		}
	}
}

func cellGlyph(hall *entity.Hall, p grid.Position, mode component.Mode) (rune, color.RGBA) {
	occ := hall.OccupantAt(p)
	switch o := occ.(type) {
	case *component.DungeonObject:
		return []rune(strings.ToLower(o.Name))[0], config.ObjectStrokeColor
	case *component.Rune:
		return '*', config.RuneColor
	case *component.Enchantment:
		return []rune(render.Glyph(string(o.Kind)))[0], render.EnchantmentColor(o.Kind)
	case *entity.Monster:
		return []rune(render.Glyph(string(o.Kind)))[0], render.MonsterColor(o.Kind)
	case *entity.Hero:
		if mode != component.ModePlay {
			break
		}
		if o.HasEffect(component.CloakOfProtection) {
			return '@', config.CloakedHeroColor
		}
		return '@', config.HeroColor
	}
	if p == hall.Start() {
		return '^', config.HeroColor
	}
	return '.', config.GridLineColor
}

func (v *view) drawFooter(s *app.Session, hall *entity.Hall, base tcell.Style) {
	y := hallTop + hall.Height() + 1
	switch st := s.State().(type) {
	case *state.BuildState:
		obj := st.SelectedObject()
		drawText(v.scr, 0, y, base, fmt.Sprintf("placing: %s (%dx%d)", obj.Name, obj.Width, obj.Height))
		if err := st.Err(); err != nil {
			drawText(v.scr, 40, y, base.Foreground(rgb(config.ArcherColor)), err.Error())
		}
		drawText(v.scr, 0, y+1, base, "arrows: cursor  space: place/remove  m: move  f: autofill  1-9: object  tab: hall  enter: play")
	case *state.PlayState:
		inv := s.Hero().Inventory()
		drawText(v.scr, 0, y, base, fmt.Sprintf("reveal %d  cloak %d  gem %d  facing %s",
			inv.Count(component.Reveal), inv.Count(component.CloakOfProtection), inv.Count(component.LuringGem), v.ctrl.facing))
		drawText(v.scr, 0, y+1, base, "arrows/wasd: move  click: search  r/c/g: use  p: pause  S: save  L: load  esc: give up")
	}
	for i, line := range v.log.lines() {
		drawText(v.scr, 0, y+3+i, base.Dim(true), line)
	}
}
