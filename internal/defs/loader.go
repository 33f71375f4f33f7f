// internal/defs/loader.go
package defs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"go-rune-halls/internal/config"
)

// Catalog is the full set of level data a session is built from.
type Catalog struct {
	Objects          []ObjectDefinition `yaml:"objects"`
	Halls            []HallDefinition   `yaml:"halls"`
	MonsterTable     []SpawnEntry       `yaml:"monster_table"`
	EnchantmentTable []SpawnEntry       `yaml:"enchantment_table"`
}

// DefaultCatalog returns a fresh copy of the built-in data.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Objects:          append([]ObjectDefinition(nil), DefaultObjects...),
		Halls:            append([]HallDefinition(nil), DefaultHalls...),
		MonsterTable:     append([]SpawnEntry(nil), DefaultMonsterTable...),
		EnchantmentTable: append([]SpawnEntry(nil), DefaultEnchantmentTable...),
	}
}

// LoadCatalog reads a YAML file. Sections missing from the file keep their defaults.
func LoadCatalog(path string) (*Catalog, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return ParseCatalog(file)
}

// ParseCatalog decodes YAML catalog data over the defaults and validates the result.
func ParseCatalog(data []byte) (*Catalog, error) {
	var parsed Catalog
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}

	catalog := DefaultCatalog()
	if len(parsed.Objects) > 0 {
		catalog.Objects = parsed.Objects
	}
	if len(parsed.Halls) > 0 {
		catalog.Halls = parsed.Halls
	}
	if len(parsed.MonsterTable) > 0 {
		catalog.MonsterTable = parsed.MonsterTable
	}
	if len(parsed.EnchantmentTable) > 0 {
		catalog.EnchantmentTable = parsed.EnchantmentTable
	}

	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return catalog, nil
}

// Validate checks that halls and objects are usable.
func (c *Catalog) Validate() error {
	if len(c.Halls) == 0 {
		return fmt.Errorf("catalog has no halls")
	}
	if len(c.Objects) == 0 {
		return fmt.Errorf("catalog has no objects")
	}
	seen := make(map[string]bool, len(c.Objects))
	for _, obj := range c.Objects {
		if obj.ID == "" {
			return fmt.Errorf("object %q has no id", obj.Name)
		}
		if seen[obj.ID] {
			return fmt.Errorf("duplicate object id %q", obj.ID)
		}
		seen[obj.ID] = true
		if obj.Width < 1 || obj.Height < 1 {
			return fmt.Errorf("object %q has an empty footprint", obj.ID)
		}
	}
	for i, hall := range c.Halls {
		if hall.Width < 1 || hall.Height < 1 {
			return fmt.Errorf("hall %d (%s) has invalid size %dx%d", i, hall.Name, hall.Width, hall.Height)
		}
		if hall.MinObjects < 0 {
			return fmt.Errorf("hall %d (%s) has a negative object minimum", i, hall.Name)
		}
		if hall.Start.X < 0 || hall.Start.Y < 0 || hall.Start.X >= hall.Width || hall.Start.Y >= hall.Height {
			return fmt.Errorf("hall %d (%s) start %v is outside the hall", i, hall.Name, hall.Start)
		}
		if hall.Height > 2*config.VerticalMargin &&
			(hall.Start.Y < config.VerticalMargin || hall.Start.Y >= hall.Height-config.VerticalMargin) {
			return fmt.Errorf("hall %d (%s) start %v is in a margin row", i, hall.Name, hall.Start)
		}
	}
	return nil
}

// Object looks up an object definition by id.
func (c *Catalog) Object(id string) (ObjectDefinition, bool) {
	for _, obj := range c.Objects {
		if obj.ID == id {
			return obj, true
		}
	}
	return ObjectDefinition{}, false
}
