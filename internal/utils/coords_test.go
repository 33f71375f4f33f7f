package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-rune-halls/pkg/grid"
)

func TestLayoutRoundTrip(t *testing.T) {
	l := LayoutFor(10, 8, 800, 600, 40, 32)
	assert.Equal(t, 240.0, l.OriginX)
	assert.Equal(t, 40.0+152.0, l.OriginY)

	for _, p := range []grid.Position{{X: 0, Y: 0}, {X: 9, Y: 7}, {X: 3, Y: 5}} {
		x, y := l.CellCenter(p)
		assert.Equal(t, p, l.ScreenToCell(x, y))
	}
	assert.Equal(t, grid.Position{X: -1, Y: -1}, l.ScreenToCell(l.OriginX-1, l.OriginY-1))
}

func TestPulseScale(t *testing.T) {
	assert.InDelta(t, 1.3, PulseScale(0), 1e-9)
	assert.InDelta(t, 1.0, PulseScale(10), 1e-6)
	assert.InDelta(t, 5.0, Lerp(0, 10, 0.5), 1e-9)
}
