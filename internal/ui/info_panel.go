// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-rune-halls/internal/component"
	"go-rune-halls/internal/config"
	"go-rune-halls/internal/entity"
	"go-rune-halls/internal/input"
	"go-rune-halls/pkg/grid"
)

const (
	panelHeight    = 70
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 18
	slotWidth      = 130
	slotHeight     = 36
)

// slotKinds are the inventory items the panel offers, in display order.
var slotKinds = []component.EnchantmentKind{component.Reveal, component.CloakOfProtection, component.LuringGem}

// ItemButton is one inventory slot.
type ItemButton struct {
	Rect image.Rectangle
	Kind component.EnchantmentKind
}

// InfoPanel slides up from the bottom in play mode and lists the hero's inventory.
// Clicking a slot uses that enchantment; the luring gem is thrown toward Facing.
type InfoPanel struct {
	IsVisible bool
	Facing    grid.Direction
	fontFace  font.Face
	currentY  float64
	targetY   float64
	buttons   []ItemButton
}

func NewInfoPanel(face font.Face) *InfoPanel {
	return &InfoPanel{
		fontFace: face,
		Facing:   grid.Right,
		currentY: config.ScreenHeight,
		targetY:  config.ScreenHeight,
	}
}

func (p *InfoPanel) Show() {
	p.IsVisible = true
	p.targetY = config.ScreenHeight - panelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = config.ScreenHeight
}

// Update animates the panel and returns the action for a clicked slot, if any.
func (p *InfoPanel) Update(hero *entity.Hero) input.Action {
	if p.currentY != p.targetY {
		diff := p.targetY - p.currentY
		if math.Abs(diff) < animationSpeed {
			p.currentY = p.targetY
		} else if diff > 0 {
			p.currentY += animationSpeed
		} else {
			p.currentY -= animationSpeed
		}
		if p.currentY >= config.ScreenHeight {
			p.IsVisible = false
		}
	}

	if !p.IsVisible || hero == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return input.Action{}
	}
	cursorX, cursorY := ebiten.CursorPosition()
	click := image.Point{X: cursorX, Y: cursorY}
	inv := hero.Inventory()
	for _, b := range p.buttons {
		if click.In(b.Rect) && inv.Count(b.Kind) > 0 {
			return input.UseAction(b.Kind, p.Facing)
		}
	}
	return input.Action{}
}

// Contains reports whether a screen point lies on the panel, so clicks there are not
// also sent to the hall.
func (p *InfoPanel) Contains(x, y int) bool {
	return p.IsVisible && float64(y) >= p.currentY
}

func (p *InfoPanel) Draw(screen *ebiten.Image, hero *entity.Hero, status string) {
	if !p.IsVisible && p.currentY >= config.ScreenHeight {
		return
	}

	panelRect := image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		config.ScreenWidth-panelMargin,
		int(p.currentY)+panelHeight-panelMargin,
	)
	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), bgColor, true)
	borderColor := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), 2, borderColor, true)

	if hero == nil {
		return
	}
	inv := hero.Inventory()
	p.buttons = p.buttons[:0]
	x := panelRect.Min.X + 15
	y := panelRect.Min.Y + (panelRect.Dy()-slotHeight)/2
	for _, kind := range slotKinds {
		rect := image.Rect(x, y, x+slotWidth, y+slotHeight)
		p.buttons = append(p.buttons, ItemButton{Rect: rect, Kind: kind})
		p.drawSlot(screen, rect, kind, inv.Count(kind), hero.EffectRemaining(kind))
		x += slotWidth + 10
	}

	if status != "" {
		text.Draw(screen, status, p.fontFace, x+10, panelRect.Min.Y+panelRect.Dy()/2+lineHeight/4, config.TextLightColor)
	}
}

func (p *InfoPanel) drawSlot(screen *ebiten.Image, rect image.Rectangle, kind component.EnchantmentKind, count, activeTicks int) {
	btnColor := color.RGBA{R: 60, G: 60, B: 70, A: 255}
	if count > 0 {
		if c, ok := config.EnchantmentColors[string(kind)]; ok {
			btnColor = color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: 255}
		}
	}
	vector.DrawFilledRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), btnColor, true)

	label := fmt.Sprintf("%s x%d", kind, count)
	if activeTicks > 0 {
		label = fmt.Sprintf("%s %ds", kind, (activeTicks+config.TicksPerSecond-1)/config.TicksPerSecond)
	}
	bounds := text.BoundString(p.fontFace, label)
	textX := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	textY := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, label, p.fontFace, textX, textY, color.White)
}
