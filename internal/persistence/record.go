// internal/persistence/record.go
package persistence

import (
	"time"

	"go-rune-halls/internal/component"
	"go-rune-halls/pkg/grid"
)

// SessionRecord is everything needed to resume a game in play mode.
type SessionRecord struct {
	ID              string       `json:"id"`
	SavedAt         time.Time    `json:"saved_at"`
	HallIndex       int          `json:"hall_index"`
	RemainingMillis int64        `json:"remaining_ms"`
	Hero            HeroRecord   `json:"hero"`
	Halls           []HallRecord `json:"halls"`
}

// Remaining converts the stored clock back to a duration.
func (r *SessionRecord) Remaining() time.Duration {
	return time.Duration(r.RemainingMillis) * time.Millisecond
}

// HeroRecord holds the hero's state. Effects map kind to ticks left.
type HeroRecord struct {
	Position  grid.Position                     `json:"position"`
	Lives     int                               `json:"lives"`
	Inventory map[component.EnchantmentKind]int `json:"inventory,omitempty"`
	Effects   map[component.EnchantmentKind]int `json:"effects,omitempty"`
}

// HallRecord is one hall's contents. Name and size identify the definition it was
// built from and are checked on load.
type HallRecord struct {
	Name         string              `json:"name"`
	Width        int                 `json:"width"`
	Height       int                 `json:"height"`
	Objects      []ObjectRecord      `json:"objects"`
	Monsters     []MonsterRecord     `json:"monsters,omitempty"`
	Enchantments []EnchantmentRecord `json:"enchantments,omitempty"`
	Rune         *RuneRecord         `json:"rune,omitempty"`
}

type ObjectRecord struct {
	Name    string        `json:"name"`
	Width   int           `json:"width"`
	Height  int           `json:"height"`
	Icon    string        `json:"icon"`
	TopLeft grid.Position `json:"top_left"`
}

// MonsterRecord stores the monster kind; Mode is only set for wizards.
type MonsterRecord struct {
	Kind     component.MonsterKind `json:"kind"`
	Mode     component.WizardMode  `json:"mode,omitempty"`
	Position grid.Position         `json:"position"`
}

type EnchantmentRecord struct {
	Kind     component.EnchantmentKind `json:"kind"`
	Position grid.Position             `json:"position"`
	TTL      int                       `json:"ttl"`
}

// RuneRecord stores the rune. A hidden rune's Position is the top-left of the
// object covering it.
type RuneRecord struct {
	Position  grid.Position `json:"position"`
	Revealed  bool          `json:"revealed"`
	Collected bool          `json:"collected"`
	Hidden    bool          `json:"hidden"`
}

// Summary is the listing entry for a stored session.
type Summary struct {
	ID        string    `json:"id"`
	SavedAt   time.Time `json:"saved_at"`
	HallIndex int       `json:"hall_index"`
}
