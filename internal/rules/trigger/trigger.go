// Package trigger implements the combat trigger dispatch mechanism.
//
// Skills and weapons register triggers against combat events. Dispatch walks
// an explicit ordered list of sources and fires at most one trigger per
// call: the first trigger whose event subscription, attack-type filter, and
// roll validator all match.
package trigger

import (
	"github.com/KirkDiggler/tactics-engine/internal/rules/dice"
)

// Event identifies a combat phase boundary a trigger can subscribe to.
type Event string

// Combat events
const (
	EventHitRoll    Event = "HIT_ROLL"
	EventDefendRoll Event = "DEFEND_ROLL"
	EventAttackHit  Event = "ATTACK_HIT"
	EventAttackMiss Event = "ATTACK_MISS"
)

// Context carries the mutable state a firing trigger may act on.
type Context struct {
	// Roll is the attribute roll the current phase is built around.
	// Triggers dispatched on HIT_ROLL/DEFEND_ROLL see the raw roll before
	// attribute bonuses are added and may adjust its modifier.
	Roll *dice.AttributeResult

	// BonusDamage accumulates extra damage granted by triggers.
	BonusDamage int

	// AttackType is the selected attack's type tag ("melee" or "ranged").
	AttackType string
}

// Trigger is one registered hook.
type Trigger struct {
	// Name labels the trigger in combat narration.
	Name string

	// Events is the set of events this trigger subscribes to.
	Events []Event

	// AttackTypes optionally filters by attack type. Empty means any.
	AttackTypes []string

	// Validator optionally gates firing on the current roll.
	Validator func(roll *dice.AttributeResult) bool

	// Apply performs the trigger's effect.
	Apply func(tc *Context)
}

func (t *Trigger) subscribes(ev Event) bool {
	for _, e := range t.Events {
		if e == ev {
			return true
		}
	}
	return false
}

func (t *Trigger) matchesAttackType(attackType string) bool {
	if len(t.AttackTypes) == 0 {
		return true
	}
	for _, at := range t.AttackTypes {
		if at == attackType {
			return true
		}
	}
	return false
}

// Source is one ordered provider of triggers (a skill, a weapon).
type Source struct {
	// OwnerName names the creature the source belongs to, for narration.
	OwnerName string

	// Label names the source itself (skill name, weapon name).
	Label string

	// Triggers are consulted in registration order.
	Triggers []Trigger

	// SuppressOnFumble skips this source entirely when the relevant roll
	// is a fumble. Skill sources set this; weapon sources do not.
	SuppressOnFumble bool
}

// Fired describes the single trigger that fired during one dispatch.
type Fired struct {
	OwnerName string
	Label     string
	Trigger   string
}

// Dispatch consults sources in order and fires the first matching trigger.
// It returns nil when nothing fired.
func Dispatch(ev Event, tc *Context, sources []Source) *Fired {
	for _, src := range sources {
		if src.SuppressOnFumble && tc.Roll != nil && tc.Roll.Fumble {
			continue
		}
		for i := range src.Triggers {
			tr := &src.Triggers[i]
			if !tr.subscribes(ev) {
				continue
			}
			if !tr.matchesAttackType(tc.AttackType) {
				continue
			}
			if tr.Validator != nil && !tr.Validator(tc.Roll) {
				continue
			}
			if tr.Apply != nil {
				tr.Apply(tc)
			}
			return &Fired{
				OwnerName: src.OwnerName,
				Label:     src.Label,
				Trigger:   tr.Name,
			}
		}
	}
	return nil
}
