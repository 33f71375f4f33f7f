// internal/component/monster.go
package component

// MonsterKind is the type tag of a monster.
type MonsterKind string

const (
	Archer  MonsterKind = "archer"
	Fighter MonsterKind = "fighter"
	Wizard  MonsterKind = "wizard"
)

// MonsterKinds lists every variant in a stable order.
var MonsterKinds = []MonsterKind{Archer, Fighter, Wizard}

// Valid reports whether k names a known variant.
func (k MonsterKind) Valid() bool {
	return k == Archer || k == Fighter || k == Wizard
}

// WizardMode selects one of the wizard sub-strategies.
type WizardMode string

const (
	WizardChallenging WizardMode = "challenging"
	WizardHelpful     WizardMode = "helpful"
	WizardIndecisive  WizardMode = "indecisive"
)
