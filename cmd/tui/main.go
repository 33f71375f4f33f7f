// cmd/tui/main.go
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"go-rune-halls/internal/app"
	"go-rune-halls/internal/defs"
	"go-rune-halls/internal/input"
	"go-rune-halls/internal/logging"
	"go-rune-halls/internal/persistence"
)

func main() {
	catalogPath := flag.String("config", "", "YAML catalogue overriding the built-in halls and objects")
	savePath := flag.String("save-file", "saves/sessions.json", "JSON save file")
	dsn := flag.String("dsn", "", "PostgreSQL connection string; overrides -save-file")
	logPath := flag.String("log-file", filepath.Join(os.TempDir(), "rune-halls-tui.log"), "log file (the terminal is taken by the game)")
	logLevel := flag.String("log-level", "info", "log level")
	seed := flag.Int64("seed", 0, "random seed, 0 for time based")
	flag.Parse()

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		console := logging.Console("info")
		console.Fatal().Err(err).Msg("log file")
	}
	defer logFile.Close()
	log := logging.New(logFile, *logLevel)

	if err := run(log, *catalogPath, *savePath, *dsn, *seed); err != nil {
		log.Error().Err(err).Msg("tui")
		os.Exit(1)
	}
}

func run(log zerolog.Logger, catalogPath, savePath, dsn string, seed int64) error {
	catalog := defs.DefaultCatalog()
	if catalogPath != "" {
		c, err := defs.LoadCatalog(catalogPath)
		if err != nil {
			return err
		}
		catalog = c
	}

	var store persistence.Storage
	if s, err := app.OpenStorage(savePath, dsn); err != nil {
		log.Error().Err(err).Msg("saving disabled")
	} else {
		store = s
		defer store.Close()
	}

	scr, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := scr.Init(); err != nil {
		return err
	}
	var finiOnce sync.Once
	fini := func() { finiOnce.Do(scr.Fini) }
	defer fini()
	scr.EnableMouse()

	session := app.NewSession(app.Options{Catalog: catalog, Seed: seed, Logger: log})
	ctrl := newController()
	v := &view{scr: scr, ctrl: ctrl, log: newMessageLog(session.Bus())}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	events := make(chan tcell.Event, 64)

	// PollEvent blocks, so this goroutine only ends once the screen is finalised.
	g.Go(func() error {
		for {
			ev := scr.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	// Simulation, input translation and drawing all run on the tick goroutine.
	g.Go(func() error {
		defer fini()
		return session.Run(ctx, nil, func() {
		drain:
			for {
				select {
				case ev := <-events:
					if handleEvent(session, store, ctrl, scr, ev) == cmdExit {
						cancel()
						return
					}
				default:
					break drain
				}
			}
			v.draw(session)
		})
	})

	return g.Wait()
}

// handleEvent applies one terminal event to the session.
func handleEvent(s *app.Session, store persistence.Storage, ctrl *controller, scr tcell.Screen, ev tcell.Event) command {
	var (
		acts []input.Action
		cmd  command
	)
	mode := s.Mode()
	switch ev := ev.(type) {
	case *tcell.EventKey:
		w, h := 0, 0
		if hall := s.ActiveHall(); hall != nil {
			w, h = hall.Width(), hall.Height()
		}
		acts, cmd = ctrl.handleKey(ev, mode, s.ActiveHallIndex(), w, h)
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			acts = ctrl.handleClick(screenToCell(x, y), mode)
		}
	case *tcell.EventResize:
		scr.Sync()
	}
	for _, a := range acts {
		s.HandleAction(a)
	}
	runCommand(s, store, cmd)
	return cmd
}

func runCommand(s *app.Session, store persistence.Storage, cmd command) {
	if store == nil || cmd == cmdNone || cmd == cmdExit {
		return
	}
	switch cmd {
	case cmdSave:
		_, _ = s.SaveTo(store)
	case cmdLoad:
		_ = s.LoadFrom(store, "")
	}
}
