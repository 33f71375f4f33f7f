package defs

import "go-rune-halls/pkg/grid"

// HallDefinition describes one level of the dungeon.
type HallDefinition struct {
	Name       string        `yaml:"name" json:"name"`
	Width      int           `yaml:"width" json:"width"`
	Height     int           `yaml:"height" json:"height"`
	MinObjects int           `yaml:"min_objects" json:"min_objects"`
	Start      grid.Position `yaml:"start" json:"start"`
}

// DefaultHalls is the built-in hall sequence, played in order.
var DefaultHalls = []HallDefinition{
	{Name: "Hall of Earth", Width: 16, Height: 12, MinObjects: 6, Start: grid.Position{X: 0, Y: 1}},
	{Name: "Hall of Air", Width: 16, Height: 12, MinObjects: 9, Start: grid.Position{X: 0, Y: 1}},
	{Name: "Hall of Water", Width: 16, Height: 12, MinObjects: 13, Start: grid.Position{X: 0, Y: 1}},
	{Name: "Hall of Fire", Width: 16, Height: 12, MinObjects: 17, Start: grid.Position{X: 0, Y: 1}},
}
