// internal/state/build_state.go
package state

import (
	"sort"

	"github.com/ojrac/opensimplex-go"
	"github.com/rs/zerolog"

	"go-rune-halls/internal/component"
	"go-rune-halls/internal/defs"
	"go-rune-halls/internal/entity"
	"go-rune-halls/internal/event"
	"go-rune-halls/internal/input"
	"go-rune-halls/internal/interfaces"
	"go-rune-halls/pkg/grid"
)

// noiseScale spreads the simplex field so neighbouring cells differ.
const noiseScale = 0.35

// BuildState lets the player furnish every hall before playing.
type BuildState struct {
	ctx interfaces.GameContext
	log zerolog.Logger

	hallIndex   int
	objectIndex int
	lastErr     error
}

func NewBuildState(ctx interfaces.GameContext) *BuildState {
	return &BuildState{ctx: ctx, log: ctx.Logger().With().Str("component", "build").Logger()}
}

func (b *BuildState) Mode() component.Mode { return component.ModeBuild }

func (b *BuildState) Enter() {
	b.hallIndex = 0
	b.ctx.SetActiveHallIndex(0)
	b.log.Info().Int("halls", len(b.ctx.Halls())).Msg("build mode")
}

func (b *BuildState) Update() {}

func (b *BuildState) Exit() {}

// Hall returns the hall being edited.
func (b *BuildState) Hall() *entity.Hall {
	halls := b.ctx.Halls()
	if b.hallIndex < 0 || b.hallIndex >= len(halls) {
		return nil
	}
	return halls[b.hallIndex]
}

// SelectedObject returns the catalogue entry placed by clicks.
func (b *BuildState) SelectedObject() defs.ObjectDefinition {
	objects := b.ctx.Catalog().Objects
	return objects[b.objectIndex%len(objects)]
}

// Err returns the reason the last start attempt failed.
func (b *BuildState) Err() error { return b.lastErr }

func (b *BuildState) HandleAction(a input.Action) {
	switch a.Kind {
	case input.SelectHall:
		b.selectHall(a.Index)
	case input.SelectObject:
		if n := len(b.ctx.Catalog().Objects); n > 0 {
			b.objectIndex = ((a.Index % n) + n) % n
		}
	case input.Click:
		b.Toggle(a.Cell)
	case input.Relocate:
		if hall := b.Hall(); hall != nil && !b.coversStart(hall, a.To, hall.ObjectAt(a.Cell)) {
			hall.RelocateObject(a.Cell, a.To)
		}
	case input.AutoFill:
		if hall := b.Hall(); hall != nil {
			b.AutoFill(hall)
		}
	case input.Start:
		if err := b.StartPlay(); err != nil {
			b.log.Info().Err(err).Msg("cannot start")
		}
	case input.Quit:
		b.ctx.Bus().Notify(event.GameOver, event.GameOverData{Reason: event.ReasonAbandoned})
	}
}

func (b *BuildState) selectHall(i int) {
	n := len(b.ctx.Halls())
	if n == 0 {
		return
	}
	b.hallIndex = ((i % n) + n) % n
	b.ctx.SetActiveHallIndex(b.hallIndex)
}

// Toggle removes the object at p, or places the selected object there.
func (b *BuildState) Toggle(p grid.Position) bool {
	hall := b.Hall()
	if hall == nil {
		return false
	}
	if hall.ObjectAt(p) != nil {
		return hall.RemoveObject(p)
	}
	return b.Place(hall, b.SelectedObject(), p)
}

// Place puts a new object from def at topLeft, keeping the hero's start cell clear.
func (b *BuildState) Place(hall *entity.Hall, def defs.ObjectDefinition, topLeft grid.Position) bool {
	obj := component.NewDungeonObject(def.Name, def.Width, def.Height, def.Icon)
	if b.coversStart(hall, topLeft, obj) {
		return false
	}
	if !hall.AddObject(obj, topLeft) {
		b.log.Debug().Str("object", def.ID).Str("at", topLeft.String()).Msg("placement rejected")
		return false
	}
	return true
}

func (b *BuildState) coversStart(hall *entity.Hall, topLeft grid.Position, obj *component.DungeonObject) bool {
	if obj == nil {
		return false
	}
	for _, p := range obj.FootprintAt(topLeft) {
		if p == hall.Start() {
			return true
		}
	}
	return false
}

// AutoFill places random catalogue objects on the cells with the highest simplex
// noise until the hall meets its minimum. Returns how many were placed.
func (b *BuildState) AutoFill(hall *entity.Hall) int {
	noise := opensimplex.NewNormalized(b.ctx.RNG().Int63())
	start := hall.Start()

	type candidate struct {
		pos   grid.Position
		value float64
	}
	var candidates []candidate
	for y := 0; y < hall.Height(); y++ {
		for x := 0; x < hall.Width(); x++ {
			p := grid.Position{X: x, Y: y}
			if !hall.IsWalkable(p) || p.IsAdjacent(start) || p == start {
				continue
			}
			candidates = append(candidates, candidate{pos: p, value: noise.Eval2(float64(x)*noiseScale, float64(y)*noiseScale)})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].value > candidates[j].value })

	objects := b.ctx.Catalog().Objects
	placed := 0
	for _, c := range candidates {
		if hall.IsRequirementMet() {
			break
		}
		def := objects[b.ctx.RNG().Intn(len(objects))]
		if b.Place(hall, def, c.pos) {
			placed++
		}
	}
	b.log.Debug().Str("hall", hall.Name).Int("placed", placed).Msg("auto fill")
	return placed
}

// StartPlay announces the switch to play mode once every hall is furnished.
func (b *BuildState) StartPlay() error {
	for i, hall := range b.ctx.Halls() {
		if !hall.IsRequirementMet() {
			b.lastErr = ErrRequirementsNotMet
			b.selectHall(i)
			return b.lastErr
		}
	}
	b.lastErr = nil
	b.ctx.SetActiveHallIndex(0)
	b.ctx.Bus().Notify(event.SwitchToPlayMode, nil)
	return nil
}
