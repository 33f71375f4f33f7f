// internal/component/status_effect.go
package component

// StatusEffect is a timed, revocable state on the hero.
type StatusEffect struct {
	Kind  EnchantmentKind
	Timer int // ticks left
}

// Tick consumes one tick and reports whether the effect ran out.
func (e *StatusEffect) Tick() bool {
	if e.Timer > 0 {
		e.Timer--
	}
	return e.Timer <= 0
}
