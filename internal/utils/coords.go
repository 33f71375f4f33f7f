// internal/utils/coords.go
package utils

import (
	"math"

	"go-rune-halls/pkg/grid"
)

// Layout maps hall cells to screen pixels. Every front end draws the grid through one.
type Layout struct {
	OriginX, OriginY float64
	CellSize         float64
}

// LayoutFor centres a width x height hall in the screen area below top.
func LayoutFor(width, height, screenW, screenH, top int, cellSize float64) Layout {
	w := float64(width) * cellSize
	h := float64(height) * cellSize
	return Layout{
		OriginX:  math.Floor((float64(screenW) - w) / 2),
		OriginY:  float64(top) + math.Floor((float64(screenH-top)-h)/2),
		CellSize: cellSize,
	}
}

// CellToScreen returns the top-left pixel of cell p.
func (l Layout) CellToScreen(p grid.Position) (float64, float64) {
	return l.OriginX + float64(p.X)*l.CellSize, l.OriginY + float64(p.Y)*l.CellSize
}

// CellCenter returns the centre pixel of cell p.
func (l Layout) CellCenter(p grid.Position) (float64, float64) {
	x, y := l.CellToScreen(p)
	return x + l.CellSize/2, y + l.CellSize/2
}

// ScreenToCell returns the cell under pixel (x, y). The result may be out of bounds.
func (l Layout) ScreenToCell(x, y float64) grid.Position {
	return grid.Position{
		X: int(math.Floor((x - l.OriginX) / l.CellSize)),
		Y: int(math.Floor((y - l.OriginY) / l.CellSize)),
	}
}

// Lerp does a standard linear interpolation
func Lerp(from, to float64, t float64) float64 {
	return from + (to-from)*t
}

// PulseScale is the click feedback used by HUD buttons: 1.3 right after a click,
// settling back to 1.
func PulseScale(elapsedSeconds float64) float64 {
	return 1.0 + 0.3*math.Exp(-elapsedSeconds*8)
}
