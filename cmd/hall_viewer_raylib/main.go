// cmd/hall_viewer_raylib/main.go
package main

import (
	"flag"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"go-rune-halls/internal/app"
	"go-rune-halls/internal/component"
	"go-rune-halls/internal/config"
	"go-rune-halls/internal/defs"
	"go-rune-halls/internal/entity"
	"go-rune-halls/internal/input"
	"go-rune-halls/internal/logging"
	"go-rune-halls/internal/persistence"
	"go-rune-halls/internal/ui"
	"go-rune-halls/internal/utils"
	"go-rune-halls/pkg/grid"
	"go-rune-halls/pkg/render"
)

// moveRepeat is how many frames a held direction key waits between steps.
const moveRepeat = 8

var moveKeys = map[int32]grid.Direction{
	rl.KeyUp: grid.Up, rl.KeyW: grid.Up,
	rl.KeyDown: grid.Down, rl.KeyS: grid.Down,
	rl.KeyLeft: grid.Left, rl.KeyA: grid.Left,
	rl.KeyRight: grid.Right, rl.KeyD: grid.Right,
}

type viewer struct {
	session *app.Session
	store   persistence.Storage
	log     zerolog.Logger
	font    rl.Font

	newGame  *ui.Button
	load     *ui.Button
	save     *ui.Button
	play     *ui.Button
	pause    *ui.PauseButtonRL
	mode     *ui.ModeIndicatorRL
	lives    *ui.LivesIndicator
	hallInfo *ui.HallIndicator

	facing grid.Direction
	held   int
}

func newViewer(session *app.Session, store persistence.Storage, log zerolog.Logger) *viewer {
	font := rl.GetFontDefault()
	v := &viewer{
		session:  session,
		store:    store,
		log:      log,
		font:     font,
		newGame:  ui.NewButton(rl.NewRectangle(12, 12, 120, 40), "New game", font),
		load:     ui.NewButton(rl.NewRectangle(140, 12, 90, 40), "Load", font),
		save:     ui.NewButton(rl.NewRectangle(238, 12, 90, 40), "Save", font),
		play:     ui.NewButton(rl.NewRectangle(336, 12, 90, 40), "Play", font),
		pause:    ui.NewPauseButtonRL(config.ScreenWidth-40, 32, 12, config.PauseColor, config.PlayColor),
		mode:     ui.NewModeIndicatorRL(config.ScreenWidth-80, 32, 10),
		lives:    ui.NewLivesIndicator(config.ScreenWidth/2+80, 24),
		hallInfo: ui.NewHallIndicator(config.ScreenWidth/2, 4, 24),
		facing:   grid.Right,
	}
	if store == nil {
		v.load.Disabled = true
		v.save.Disabled = true
	}
	return v
}

func (v *viewer) layout() (utils.Layout, *entity.Hall) {
	hall := v.session.ActiveHall()
	if hall == nil {
		return utils.Layout{}, nil
	}
	return utils.LayoutFor(hall.Width(), hall.Height(), config.ScreenWidth, config.ScreenHeight, config.HUDHeight, config.CellSize), hall
}

// update polls raylib input, feeds the session and ticks it once.
func (v *viewer) update() {
	mouse := rl.GetMousePosition()
	mode := v.session.Mode()
	v.save.Disabled = v.store == nil || mode != component.ModePlay
	v.play.Disabled = mode != component.ModeBuild

	var acts []input.Action
	switch {
	case v.newGame.IsClicked(mouse):
		acts = append(acts, input.StartAction())
	case v.play.IsClicked(mouse):
		acts = append(acts, input.StartAction())
	case v.load.IsClicked(mouse):
		if err := v.session.LoadFrom(v.store, ""); err != nil {
			v.log.Warn().Err(err).Msg("load")
		}
	case v.save.IsClicked(mouse):
		if _, err := v.session.SaveTo(v.store); err != nil {
			v.log.Warn().Err(err).Msg("save refused")
		}
	case mode == component.ModePlay && v.pause.IsClicked(mouse):
		acts = append(acts, input.PauseAction())
	case rl.IsMouseButtonPressed(rl.MouseLeftButton) && mouse.Y > config.HUDHeight:
		if l, hall := v.layout(); hall != nil {
			p := l.ScreenToCell(float64(mouse.X), float64(mouse.Y))
			if hall.IsWithinBounds(p) {
				acts = append(acts, input.ClickAction(p))
			}
		}
	}

	if rl.IsKeyPressed(rl.KeyEscape) {
		acts = append(acts, input.QuitAction())
	}
	switch mode {
	case component.ModeBuild:
		if rl.IsKeyPressed(rl.KeyTab) {
			acts = append(acts, input.SelectHallAction(v.session.ActiveHallIndex()+1))
		}
		if rl.IsKeyPressed(rl.KeyF) {
			acts = append(acts, input.AutoFillAction())
		}
	case component.ModePlay:
		acts = append(acts, v.playKeys()...)
	}

	for _, a := range acts {
		v.session.HandleAction(a)
	}
	v.session.Update()
	v.pause.SetPaused(v.session.IsPaused())
}

func (v *viewer) playKeys() []input.Action {
	var acts []input.Action
	if rl.IsKeyPressed(rl.KeyP) || rl.IsKeyPressed(rl.KeySpace) {
		acts = append(acts, input.PauseAction())
	}

	moved := false
	for key, d := range moveKeys {
		if !rl.IsKeyDown(key) {
			continue
		}
		moved = true
		if v.held%moveRepeat == 0 {
			v.facing = d
			acts = append(acts, input.MoveAction(d))
		}
		break
	}
	if moved {
		v.held++
	} else {
		v.held = 0
	}

	uses := map[int32]component.EnchantmentKind{
		rl.KeyR: component.Reveal,
		rl.KeyC: component.CloakOfProtection,
		rl.KeyG: component.LuringGem,
	}
	for key, kind := range uses {
		if rl.IsKeyPressed(key) {
			acts = append(acts, input.UseAction(kind, v.facing))
		}
	}
	return acts
}

func rlColor(c color.RGBA) rl.Color { return rl.NewColor(c.R, c.G, c.B, c.A) }

func (v *viewer) draw() {
	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(rlColor(config.BackgroundColor))

	mode := v.session.Mode()
	if mode != component.ModeMainMenu {
		v.drawHall(mode)
	}

	mouse := rl.GetMousePosition()
	v.newGame.Draw(mouse)
	v.load.Draw(mouse)
	if mode == component.ModeBuild {
		v.play.Draw(mouse)
	}
	if mode == component.ModePlay {
		v.save.Draw(mouse)
		v.pause.Draw()
		v.lives.Draw(v.session.Hero().Lives(), config.HeroStartLives)
		v.hallInfo.Draw(v.session.ActiveHallIndex()+1, v.session.Remaining(), v.font)
	}
	v.mode.Draw(mode)

	if status := v.session.Status(); status != "" {
		rl.DrawText(status, 12, config.ScreenHeight-28, 20, rlColor(config.TextLightColor))
	}
}

func (v *viewer) drawHall(mode component.Mode) {
	l, hall := v.layout()
	if hall == nil {
		return
	}
	size := int32(l.CellSize)
	cell := func(p grid.Position) (int32, int32) {
		x, y := l.CellToScreen(p)
		return int32(x), int32(y)
	}

	for y := 0; y < hall.Height(); y++ {
		for x := 0; x < hall.Width(); x++ {
			p := grid.Position{X: x, Y: y}
			fill := config.FloorColor
			if (x+y)%2 == 1 {
				fill = config.FloorAltColor
			}
			px, py := cell(p)
			rl.DrawRectangle(px, py, size, size, rlColor(fill))
		}
	}

	if origin, side, ok := hall.HintRegion(); ok {
		px, py := cell(origin)
		rl.DrawRectangle(px, py, size*int32(side), size*int32(side), rlColor(config.RevealColor))
	}

	for _, obj := range hall.Objects() {
		px, py := cell(obj.TopLeft)
		w, h := size*int32(obj.Width), size*int32(obj.Height)
		rl.DrawRectangle(px+2, py+2, w-4, h-4, rlColor(config.ObjectColor))
		rl.DrawRectangleLines(px+2, py+2, w-4, h-4, rlColor(config.ObjectStrokeColor))
	}

	if mode != component.ModePlay {
		return
	}

	if r := hall.Rune(); r != nil && r.IsOnGrid() {
		cx, cy := l.CellCenter(r.Position)
		rl.DrawPoly(rl.NewVector2(float32(cx), float32(cy)), 4, float32(l.CellSize)/3, 0, rlColor(config.RuneColor))
	}
	for _, e := range hall.Enchantments() {
		v.drawToken(l, e.Position, render.EnchantmentColor(e.Kind), render.Glyph(string(e.Kind)))
	}
	for _, m := range hall.Monsters() {
		v.drawToken(l, m.Position, render.MonsterColor(m.Kind), render.Glyph(string(m.Kind)))
	}

	hero := v.session.Hero()
	heroColor := config.HeroColor
	if hero.HasEffect(component.CloakOfProtection) {
		heroColor = config.CloakedHeroColor
	}
	cx, cy := l.CellCenter(hero.Position())
	rl.DrawCircle(int32(cx), int32(cy), float32(l.CellSize)*0.4, rlColor(heroColor))
}

func (v *viewer) drawToken(l utils.Layout, p grid.Position, fill color.RGBA, glyph string) {
	cx, cy := l.CellCenter(p)
	radius := float32(l.CellSize) * 0.38
	rl.DrawCircle(int32(cx), int32(cy), radius, rlColor(fill))
	rl.DrawCircleLines(int32(cx), int32(cy), radius, rlColor(render.LightenColor(fill)))
	w := rl.MeasureText(glyph, 20)
	rl.DrawText(glyph, int32(cx)-w/2, int32(cy)-10, 20, rlColor(render.TextColorFor(fill)))
}

func main() {
	catalogPath := flag.String("config", "", "YAML catalogue overriding the built-in halls and objects")
	savePath := flag.String("save-file", "saves/sessions.json", "JSON save file")
	dsn := flag.String("dsn", "", "PostgreSQL connection string; overrides -save-file")
	logLevel := flag.String("log-level", "info", "log level")
	seed := flag.Int64("seed", 0, "random seed, 0 for time based")
	flag.Parse()

	log := logging.Console(*logLevel)

	catalog := defs.DefaultCatalog()
	if *catalogPath != "" {
		c, err := defs.LoadCatalog(*catalogPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *catalogPath).Msg("catalogue")
		}
		catalog = c
	}

	var store persistence.Storage
	if s, err := app.OpenStorage(*savePath, *dsn); err != nil {
		log.Error().Err(err).Msg("saving disabled")
	} else {
		store = s
		defer store.Close()
	}

	session := app.NewSession(app.Options{Catalog: catalog, Seed: *seed, Logger: log})
	defer session.Close()

	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Rune Halls | raylib")
	defer rl.CloseWindow()
	rl.SetExitKey(0)
	rl.SetTargetFPS(config.TicksPerSecond)

	v := newViewer(session, store, log)
	for !rl.WindowShouldClose() {
		v.update()
		v.draw()
	}
}
