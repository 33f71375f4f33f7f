// internal/defs/objects.go
package defs

// ObjectDefinition holds the static data of a placeable dungeon object.
type ObjectDefinition struct {
	ID     string `yaml:"id" json:"id"`
	Name   string `yaml:"name" json:"name"`
	Width  int    `yaml:"width" json:"width"`
	Height int    `yaml:"height" json:"height"`
	Icon   string `yaml:"icon" json:"icon"`
}

// DefaultObjects is the built-in object catalogue.
var DefaultObjects = []ObjectDefinition{
	{ID: "chest", Name: "Chest", Width: 1, Height: 1, Icon: "chest.png"},
	{ID: "barrel", Name: "Barrel", Width: 1, Height: 1, Icon: "barrel.png"},
	{ID: "skull", Name: "Skull", Width: 1, Height: 1, Icon: "skull.png"},
	{ID: "pillar", Name: "Pillar", Width: 1, Height: 2, Icon: "pillar.png"},
	{ID: "table", Name: "Table", Width: 2, Height: 1, Icon: "table.png"},
	{ID: "bookshelf", Name: "Bookshelf", Width: 2, Height: 1, Icon: "bookshelf.png"},
	{ID: "cauldron", Name: "Cauldron", Width: 1, Height: 1, Icon: "cauldron.png"},
	{ID: "statue", Name: "Statue", Width: 2, Height: 2, Icon: "statue.png"},
}
