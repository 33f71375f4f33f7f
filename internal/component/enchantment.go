// internal/component/enchantment.go
package component

import "go-rune-halls/pkg/grid"

// EnchantmentKind identifies an enchantment variant.
type EnchantmentKind string

const (
	ExtraTime         EnchantmentKind = "extra_time"
	Reveal            EnchantmentKind = "reveal"
	CloakOfProtection EnchantmentKind = "cloak"
	LuringGem         EnchantmentKind = "luring_gem"
	ExtraLife         EnchantmentKind = "extra_life"
)

// EnchantmentKinds lists every variant in a stable order.
var EnchantmentKinds = []EnchantmentKind{ExtraTime, Reveal, CloakOfProtection, LuringGem, ExtraLife}

// Valid reports whether k names a known variant.
func (k EnchantmentKind) Valid() bool {
	for _, known := range EnchantmentKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Storable kinds go to the hero's inventory instead of applying on pickup.
func (k EnchantmentKind) Storable() bool {
	return k == Reveal || k == CloakOfProtection || k == LuringGem
}

// Enchantment is a single-cell pickup with a limited lifetime in ticks.
type Enchantment struct {
	Kind      EnchantmentKind
	Position  grid.Position
	Collected bool
	TTL       int
}

// NewEnchantment creates an uncollected enchantment.
func NewEnchantment(kind EnchantmentKind, pos grid.Position, ttl int) *Enchantment {
	return &Enchantment{Kind: kind, Position: pos, TTL: ttl}
}

func (e *Enchantment) OccupantKind() OccupantKind { return OccupantEnchantment }

// Age consumes one tick of lifetime and reports whether the enchantment expired.
// Collected enchantments never expire.
func (e *Enchantment) Age() bool {
	if e.Collected {
		return false
	}
	if e.TTL > 0 {
		e.TTL--
	}
	return e.TTL <= 0
}
