// cmd/game/main.go
package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/rs/zerolog"
	"golang.org/x/image/font/basicfont"

	"go-rune-halls/internal/app"
	"go-rune-halls/internal/component"
	"go-rune-halls/internal/config"
	"go-rune-halls/internal/defs"
	"go-rune-halls/internal/input"
	"go-rune-halls/internal/logging"
	"go-rune-halls/internal/persistence"
	"go-rune-halls/internal/ui"
	"go-rune-halls/pkg/render"
)

type AppGame struct {
	session  *app.Session
	store    persistence.Storage
	log      zerolog.Logger
	renderer *render.HallRenderer
	hud      *ui.HUD
	panel    *ui.InfoPanel
	keys     *keyboard
}

func (a *AppGame) Update() error {
	if a.session.Mode() == component.ModePlay {
		a.panel.Show()
	} else {
		a.panel.Hide()
	}
	if act := a.panel.Update(a.session.Hero()); act.Kind != input.None {
		a.session.HandleAction(act)
	}

	for _, act := range a.keys.poll(a.session, a.renderer.Layout(a.session.ActiveHall()), a.panel) {
		a.session.HandleAction(act)
	}
	a.handleSaveKeys()

	a.session.Update()
	return nil
}

func (a *AppGame) handleSaveKeys() {
	if a.store == nil {
		return
	}
	if a.keys.justPressed(ebiten.KeyF5) {
		if _, err := a.session.SaveTo(a.store); err != nil {
			a.log.Warn().Err(err).Msg("save refused")
		}
	}
	if a.keys.justPressed(ebiten.KeyF9) {
		_ = a.session.LoadFrom(a.store, "")
	}
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.renderer.Draw(screen, a.session)
	a.hud.Draw(screen, a.session, a.session.ActiveHallIndex()+1)
	a.panel.Draw(screen, a.session.Hero(), a.session.Status())

	if a.session.Mode() == component.ModeMainMenu {
		face := basicfont.Face7x13
		lines := []string{
			"RUNE HALLS",
			"Enter: new game    F9: load last save",
			"Build: click to place/remove, right-drag to move, F autofill, Tab next hall, 1-8 object",
			"Play: arrows/WASD move, click to search, R reveal, C cloak, G gem, P pause, F5 save",
		}
		for i, l := range lines {
			text.Draw(screen, l, face, 60, config.ScreenHeight/2-40+i*22, config.TextLightColor)
		}
	}
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	catalogPath := flag.String("config", "", "YAML catalogue overriding the built-in halls and objects")
	savePath := flag.String("save-file", "saves/sessions.json", "JSON save file")
	dsn := flag.String("dsn", "", "PostgreSQL connection string; overrides -save-file")
	logLevel := flag.String("log-level", "info", "log level")
	pprofAddr := flag.String("pprof", "localhost:6060", "pprof listen address, empty to disable")
	seed := flag.Int64("seed", 0, "random seed, 0 for time based")
	flag.Parse()

	log := logging.Console(*logLevel)

	if *pprofAddr != "" {
		go func() {
			log.Info().Err(http.ListenAndServe(*pprofAddr, nil)).Msg("pprof stopped")
		}()
	}

	catalog := defs.DefaultCatalog()
	if *catalogPath != "" {
		c, err := defs.LoadCatalog(*catalogPath)
		if err != nil {
			log.Fatal().Err(err).Msg("catalogue")
		}
		catalog = c
	}

	store, err := app.OpenStorage(*savePath, *dsn)
	if err != nil {
		log.Error().Err(err).Msg("saving disabled")
		store = nil
	} else {
		defer store.Close()
	}

	session := app.NewSession(app.Options{Catalog: catalog, Seed: *seed, Logger: log})
	defer session.Close()

	game := &AppGame{
		session:  session,
		store:    store,
		log:      log,
		renderer: render.NewHallRenderer(config.ScreenWidth, config.ScreenHeight, config.CellSize),
		hud:      ui.NewHUD(basicfont.Face7x13),
		panel:    ui.NewInfoPanel(basicfont.Face7x13),
		keys:     newKeyboard(),
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Rune Halls")
	ebiten.SetTPS(config.TicksPerSecond)
	if err := ebiten.RunGame(game); err != nil {
		log.Error().Err(err).Msg("game loop")
		os.Exit(1)
	}
}
