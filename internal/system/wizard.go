// internal/system/wizard.go
package system

import (
	"fmt"
	"time"

	"go-rune-halls/internal/component"
	"go-rune-halls/internal/config"
	"go-rune-halls/internal/entity"
	"go-rune-halls/internal/event"
)

// WizardModeFor picks the sub-strategy for a wizard spawned with remaining time left
// out of starting.
func WizardModeFor(remaining, starting time.Duration) component.WizardMode {
	if starting <= 0 {
		return component.WizardIndecisive
	}
	ratio := float64(remaining) / float64(starting)
	switch {
	case ratio < config.WizardHelpfulBelow:
		return component.WizardHelpful
	case ratio > config.WizardChallengeAbove:
		return component.WizardChallenging
	}
	return component.WizardIndecisive
}

// NewWizardBehavior builds the sub-strategy for mode.
func NewWizardBehavior(mode component.WizardMode, hall *entity.Hall, events event.Publisher) (entity.Behavior, error) {
	base := wizard{hall: hall, events: events}
	switch mode {
	case component.WizardChallenging:
		return &ChallengingWizard{wizard: base}, nil
	case component.WizardHelpful:
		return &HelpfulWizard{wizard: base}, nil
	case component.WizardIndecisive:
		return &IndecisiveWizard{wizard: base}, nil
	}
	return nil, fmt.Errorf("unknown wizard mode %q", mode)
}

// wizard is shared by every sub-strategy: each wizard moves the rune when the
// teleport topic fires.
type wizard struct {
	hall   *entity.Hall
	events event.Publisher
	ticks  int
}

func (w *wizard) Topics() []event.Type {
	return []event.Type{event.RuneTeleported}
}

func (w *wizard) OnEvent(e event.Event) {
	if e.Type != event.RuneTeleported || w.hall == nil {
		return
	}
	w.hall.RelocateRuneToRandomEmpty()
}

// ChallengingWizard keeps moving a still-hidden rune.
type ChallengingWizard struct {
	wizard
}

func (w *ChallengingWizard) Name() string              { return "wizard_challenging" }
func (w *ChallengingWizard) Mode() component.WizardMode { return component.WizardChallenging }

func (w *ChallengingWizard) Act(hall *entity.Hall, hero *entity.Hero, self *entity.Monster) {
	w.ticks++
	if w.ticks < config.WizardChallengeInterval {
		return
	}
	w.ticks = 0

	r := hall.Rune()
	if r == nil || r.Collected || !r.IsHidden() {
		return
	}
	publish(w.events, event.RuneTeleported, event.RuneData{HallIndex: hall.Index, Position: r.Position})
}

// HelpfulWizard teleports the hero once to a random free cell, then leaves.
type HelpfulWizard struct {
	wizard
	done bool
}

func (w *HelpfulWizard) Name() string              { return "wizard_helpful" }
func (w *HelpfulWizard) Mode() component.WizardMode { return component.WizardHelpful }

func (w *HelpfulWizard) Act(hall *entity.Hall, hero *entity.Hero, self *entity.Monster) {
	if w.done {
		return
	}
	w.ticks++
	if w.ticks < config.WizardHelpfulDelay {
		return
	}
	w.done = true
	if hero != nil && !hero.IsDead() {
		if p, ok := hall.RandomFreeCell(nil); ok {
			hero.SetPosition(p)
		}
	}
	self.MarkForRemoval()
}

// IndecisiveWizard vanishes after a short while without doing anything.
type IndecisiveWizard struct {
	wizard
}

func (w *IndecisiveWizard) Name() string              { return "wizard_indecisive" }
func (w *IndecisiveWizard) Mode() component.WizardMode { return component.WizardIndecisive }

func (w *IndecisiveWizard) Act(hall *entity.Hall, hero *entity.Hero, self *entity.Monster) {
	w.ticks++
	if w.ticks >= config.WizardIndecisiveLife {
		self.MarkForRemoval()
	}
}
