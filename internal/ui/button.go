// internal/ui/button.go
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Button is a clickable labelled rectangle.
type Button struct {
	Rect       rl.Rectangle
	Text       string
	TextColor  rl.Color
	BgColor    rl.Color
	HoverColor rl.Color
	Font       rl.Font
	FontSize   float32
	Disabled   bool
}

// NewButton creates a new button.
func NewButton(rect rl.Rectangle, text string, font rl.Font) *Button {
	return &Button{
		Rect:       rect,
		Text:       text,
		TextColor:  rl.Black,
		BgColor:    rl.LightGray,
		HoverColor: rl.Gray,
		Font:       font,
		FontSize:   20,
	}
}

// IsClicked reports a left click on an enabled button this frame.
func (b *Button) IsClicked(mousePos rl.Vector2) bool {
	return !b.Disabled && b.Contains(mousePos) && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

// Contains reports whether the point is over the button.
func (b *Button) Contains(mousePos rl.Vector2) bool {
	return rl.CheckCollisionPointRec(mousePos, b.Rect)
}

func (b *Button) Draw(mousePos rl.Vector2) {
	bgColor := b.BgColor
	switch {
	case b.Disabled:
		bgColor = rl.DarkGray
	case b.Contains(mousePos):
		bgColor = b.HoverColor
	}

	rl.DrawRectangleRec(b.Rect, bgColor)
	rl.DrawRectangleLinesEx(b.Rect, 2, rl.DarkGray)

	textSize := rl.MeasureTextEx(b.Font, b.Text, b.FontSize, 1)
	textX := b.Rect.X + (b.Rect.Width-textSize.X)/2
	textY := b.Rect.Y + (b.Rect.Height-textSize.Y)/2

	rl.DrawTextEx(b.Font, b.Text, rl.NewVector2(textX, textY), b.FontSize, 1, b.TextColor)
}
