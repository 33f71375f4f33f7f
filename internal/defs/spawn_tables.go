// internal/defs/spawn_tables.go
package defs

// SpawnEntry is one row of a weighted spawn table.
// ID names a monster or enchantment kind; Weight is its relative chance.
type SpawnEntry struct {
	ID     string `yaml:"id" json:"id"`
	Weight int    `yaml:"weight" json:"weight"`
}

// DefaultMonsterTable spawns every monster kind with equal chance.
var DefaultMonsterTable = []SpawnEntry{
	{ID: "archer", Weight: 1},
	{ID: "fighter", Weight: 1},
	{ID: "wizard", Weight: 1},
}

// DefaultEnchantmentTable spawns every enchantment kind with equal chance.
var DefaultEnchantmentTable = []SpawnEntry{
	{ID: "extra_time", Weight: 1},
	{ID: "reveal", Weight: 1},
	{ID: "cloak", Weight: 1},
	{ID: "luring_gem", Weight: 1},
	{ID: "extra_life", Weight: 1},
}
