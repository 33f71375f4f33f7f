// pkg/render/color.go
package render

import (
	"image/color"

	"go-rune-halls/internal/component"
	"go-rune-halls/internal/config"
)

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor brightens each channel by 40, used for outlines.
func LightenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, int(c.R)+40)),
		G: uint8(min(255, int(c.G)+40)),
		B: uint8(min(255, int(c.B)+40)),
		A: 255,
	}
}

// TextColorFor picks dark text on bright fills and light text on dark ones.
func TextColorFor(fill color.RGBA) color.RGBA {
	if (int(fill.R)+int(fill.G)+int(fill.B))/3 > 128 {
		return config.TextDarkColor
	}
	return config.TextLightColor
}

// MonsterColor returns the palette entry for a monster kind.
func MonsterColor(kind component.MonsterKind) color.RGBA {
	switch kind {
	case component.Archer:
		return config.ArcherColor
	case component.Fighter:
		return config.FighterColor
	case component.Wizard:
		return config.WizardColor
	}
	return config.TextLightColor
}

// EnchantmentColor returns the palette entry for an enchantment kind.
func EnchantmentColor(kind component.EnchantmentKind) color.RGBA {
	if c, ok := config.EnchantmentColors[string(kind)]; ok {
		return c
	}
	return config.TextLightColor
}

// Glyph is the one-letter label drawn on monsters and enchantments.
func Glyph(kind string) string {
	switch kind {
	case string(component.Archer):
		return "A"
	case string(component.Fighter):
		return "F"
	case string(component.Wizard):
		return "W"
	case string(component.ExtraTime):
		return "T"
	case string(component.Reveal):
		return "R"
	case string(component.CloakOfProtection):
		return "C"
	case string(component.LuringGem):
		return "G"
	case string(component.ExtraLife):
		return "+"
	}
	return "?"
}
