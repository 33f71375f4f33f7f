// pkg/render/hall_renderer.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-rune-halls/internal/component"
	"go-rune-halls/internal/config"
	"go-rune-halls/internal/entity"
	"go-rune-halls/internal/interfaces"
	"go-rune-halls/internal/utils"
	"go-rune-halls/pkg/grid"
)

// HallRenderer draws the active hall. The floor is rendered once per hall into an
// offscreen image; everything that moves is drawn on top each frame.
type HallRenderer struct {
	screenWidth  int
	screenHeight int
	cellSize     float64
	fillImg      *ebiten.Image
	fillVs       []ebiten.Vertex
	fillIs       []uint16
	fontFace     font.Face

	floorImage *ebiten.Image
	floorFor   *entity.Hall
	layout     utils.Layout
}

func NewHallRenderer(screenWidth, screenHeight int, cellSize float64) *HallRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	return &HallRenderer{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		cellSize:     cellSize,
		fillImg:      fillImg,
		fillVs:       make([]ebiten.Vertex, 0, 8),
		fillIs:       make([]uint16, 0, 12),
		fontFace:     basicfont.Face7x13,
		floorImage:   ebiten.NewImage(screenWidth, screenHeight),
	}
}

// Layout returns the cell layout used for hall, for mapping clicks back to cells.
func (r *HallRenderer) Layout(hall *entity.Hall) utils.Layout {
	if hall == nil {
		return utils.Layout{CellSize: r.cellSize}
	}
	return utils.LayoutFor(hall.Width(), hall.Height(), r.screenWidth, r.screenHeight, config.HUDHeight, r.cellSize)
}

// renderFloor pre-renders the tiles of hall.
func (r *HallRenderer) renderFloor(hall *entity.Hall) {
	r.floorImage.Clear()
	r.layout = r.Layout(hall)
	r.floorFor = hall

	for y := 0; y < hall.Height(); y++ {
		for x := 0; x < hall.Width(); x++ {
			p := grid.Position{X: x, Y: y}
			fill := config.FloorColor
			switch {
			case !hall.IsWalkable(p):
				fill = config.MarginColor
			case (x+y)%2 == 1:
				fill = config.FloorAltColor
			}
			px, py := r.layout.CellToScreen(p)
			vector.DrawFilledRect(r.floorImage, float32(px), float32(py), float32(r.cellSize), float32(r.cellSize), fill, false)
			vector.StrokeRect(r.floorImage, float32(px), float32(py), float32(r.cellSize), float32(r.cellSize), 1, config.GridLineColor, false)
		}
	}
	start := hall.Start()
	sx, sy := r.layout.CellToScreen(start)
	vector.StrokeRect(r.floorImage, float32(sx)+2, float32(sy)+2, float32(r.cellSize)-4, float32(r.cellSize)-4, 2, config.HeroColor, true)
}

// Draw paints the hall of view plus every occupant.
func (r *HallRenderer) Draw(screen *ebiten.Image, view interfaces.View) {
	screen.Fill(config.BackgroundColor)
	hall := view.ActiveHall()
	if hall == nil {
		return
	}
	if hall != r.floorFor {
		r.renderFloor(hall)
	}
	screen.DrawImage(r.floorImage, nil)

	r.drawHint(screen, hall)
	for _, obj := range hall.Objects() {
		r.drawObject(screen, obj)
	}
	if rn := hall.Rune(); rn != nil && rn.IsOnGrid() {
		r.drawRune(screen, rn.Position)
	}
	for _, e := range hall.Enchantments() {
		r.drawToken(screen, e.Position, EnchantmentColor(e.Kind), Glyph(string(e.Kind)), 0.3)
	}
	for _, m := range hall.Monsters() {
		r.drawToken(screen, m.Position, MonsterColor(m.Kind), Glyph(string(m.Kind)), 0.4)
		if lured, ok := m.Behavior().(entity.Lured); ok {
			if target, active := lured.LureTarget(); active {
				r.drawLure(screen, target)
			}
		}
	}
	if hero := view.Hero(); hero != nil && view.Mode() == component.ModePlay {
		heroColor := config.HeroColor
		if hero.HasEffect(component.CloakOfProtection) {
			heroColor = config.CloakedHeroColor
		}
		r.drawToken(screen, hero.Position(), heroColor, "@", 0.42)
	}
}

func (r *HallRenderer) drawHint(screen *ebiten.Image, hall *entity.Hall) {
	origin, size, ok := hall.HintRegion()
	if !ok {
		return
	}
	px, py := r.layout.CellToScreen(origin)
	side := float32(size) * float32(r.cellSize)
	vector.DrawFilledRect(screen, float32(px), float32(py), side, side, config.RevealColor, false)
}

func (r *HallRenderer) drawObject(screen *ebiten.Image, obj *component.DungeonObject) {
	px, py := r.layout.CellToScreen(obj.TopLeft)
	w := float32(obj.Width) * float32(r.cellSize)
	h := float32(obj.Height) * float32(r.cellSize)
	vector.DrawFilledRect(screen, float32(px)+3, float32(py)+3, w-6, h-6, config.ObjectColor, true)
	vector.StrokeRect(screen, float32(px)+3, float32(py)+3, w-6, h-6, 2, config.ObjectStrokeColor, true)

	label := obj.Name
	if len(label) > 3 {
		label = label[:3]
	}
	r.drawLabel(screen, label, float64(px)+float64(w)/2, float64(py)+float64(h)/2, TextColorFor(config.ObjectColor))
}

// drawRune paints a diamond through the vertex path, like the old hex tiles.
func (r *HallRenderer) drawRune(screen *ebiten.Image, p grid.Position) {
	cx, cy := r.layout.CellCenter(p)
	half := float32(r.cellSize) * 0.38
	x, y := float32(cx), float32(cy)

	path := vector.Path{}
	path.MoveTo(x, y-half)
	path.LineTo(x+half, y)
	path.LineTo(x, y+half)
	path.LineTo(x-half, y)
	path.Close()

	fill := config.RuneColor
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	for i := range r.fillVs {
		r.fillVs[i].ColorR = float32(fill.R) / 255
		r.fillVs[i].ColorG = float32(fill.G) / 255
		r.fillVs[i].ColorB = float32(fill.B) / 255
		r.fillVs[i].ColorA = float32(fill.A) / 255
	}
	screen.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (r *HallRenderer) drawToken(screen *ebiten.Image, p grid.Position, fill color.RGBA, glyph string, radiusFactor float64) {
	cx, cy := r.layout.CellCenter(p)
	radius := float32(r.cellSize * radiusFactor)
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), radius, fill, true)
	vector.StrokeCircle(screen, float32(cx), float32(cy), radius, 1.5, LightenColor(fill), true)
	r.drawLabel(screen, glyph, cx, cy, TextColorFor(fill))
}

func (r *HallRenderer) drawLure(screen *ebiten.Image, p grid.Position) {
	cx, cy := r.layout.CellCenter(p)
	arm := float32(r.cellSize) * 0.25
	x, y := float32(cx), float32(cy)
	vector.StrokeLine(screen, x-arm, y-arm, x+arm, y+arm, 2, config.LureColor, true)
	vector.StrokeLine(screen, x-arm, y+arm, x+arm, y-arm, 2, config.LureColor, true)
}

func (r *HallRenderer) drawLabel(screen *ebiten.Image, label string, cx, cy float64, clr color.Color) {
	bounds := text.BoundString(r.fontFace, label)
	x := int(cx) - bounds.Dx()/2
	y := int(cy) + bounds.Dy()/2
	text.Draw(screen, label, r.fontFace, x, y, clr)
}
