// internal/component/occupant.go
package component

// OccupantKind tags what sits in a cell.
type OccupantKind int

const (
	OccupantNone OccupantKind = iota
	OccupantObject
	OccupantMonster
	OccupantRune
	OccupantEnchantment
	OccupantHero
)

func (k OccupantKind) String() string {
	switch k {
	case OccupantObject:
		return "object"
	case OccupantMonster:
		return "monster"
	case OccupantRune:
		return "rune"
	case OccupantEnchantment:
		return "enchantment"
	case OccupantHero:
		return "hero"
	}
	return "none"
}

// Occupant is anything that can fill a cell slot. Callers switch on OccupantKind and
// type-assert to the concrete pointer.
type Occupant interface {
	OccupantKind() OccupantKind
}

// KindOf returns OccupantNone for a nil occupant.
func KindOf(o Occupant) OccupantKind {
	if o == nil {
		return OccupantNone
	}
	return o.OccupantKind()
}
