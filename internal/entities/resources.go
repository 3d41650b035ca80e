package entities

import (
	"github.com/KirkDiggler/tactics-engine/internal/rules/dice"
)

// fortuneSaveThreshold is the d6 result that lets a single fortune point
// cancel lethal damage.
const fortuneSaveThreshold = 5

// TurnResources is a creature's mutable per-turn ledger. All Use operations
// return false instead of erroring when the budget is exhausted or the
// creature is dead.
type TurnResources struct {
	RemainingMovement     int `json:"remaining_movement"`
	RemainingActions      int `json:"remaining_actions"`
	RemainingQuickActions int `json:"remaining_quick_actions"`
	RemainingVitality     int `json:"remaining_vitality"`
	RemainingMana         int `json:"remaining_mana"`
	RemainingFortune      int `json:"remaining_fortune"`

	// HasMovedWhileEngaged records disengage movement this turn.
	HasMovedWhileEngaged bool `json:"has_moved_while_engaged"`

	pushedCreatures map[string]bool
}

// NewTurnResources creates a full ledger from the creature's maximums.
func NewTurnResources(c *Creature) TurnResources {
	return TurnResources{
		RemainingMovement:     c.Attributes.Movement,
		RemainingActions:      c.MaxActions,
		RemainingQuickActions: c.MaxQuickActions,
		RemainingVitality:     c.MaxVitality,
		RemainingMana:         c.MaxMana,
		RemainingFortune:      c.MaxFortune,
	}
}

func (r *TurnResources) startTurn(c *Creature) {
	r.pushedCreatures = make(map[string]bool)
	r.HasMovedWhileEngaged = false

	if r.RemainingVitality <= 0 {
		return
	}

	r.RemainingMovement = c.Attributes.Movement
	r.RemainingActions = c.MaxActions
	r.RemainingQuickActions = c.MaxQuickActions
}

func (r *TurnResources) endTurn() {
	r.RemainingMovement = 0
	r.RemainingActions = 0
	r.RemainingQuickActions = 0
}

// UseAction spends one action.
func (c *Creature) UseAction() bool {
	if c.IsDead() || c.Resources.RemainingActions <= 0 {
		return false
	}
	c.Resources.RemainingActions--
	return true
}

// UseQuickAction spends one quick action.
func (c *Creature) UseQuickAction() bool {
	if c.IsDead() || c.Resources.RemainingQuickActions <= 0 {
		return false
	}
	c.Resources.RemainingQuickActions--
	return true
}

// UseMovement spends tiles of movement.
func (c *Creature) UseMovement(tiles int) bool {
	if c.IsDead() || tiles < 0 || c.Resources.RemainingMovement < tiles {
		return false
	}
	c.Resources.RemainingMovement -= tiles
	return true
}

// SetRemainingMovement overrides the movement budget, clamped to the
// creature's maximum and to zero.
func (c *Creature) SetRemainingMovement(tiles int) {
	if tiles < 0 {
		tiles = 0
	}
	if tiles > c.Attributes.Movement {
		tiles = c.Attributes.Movement
	}
	c.Resources.RemainingMovement = tiles
}

// MovementUsed reports how many tiles the creature has spent this turn.
func (c *Creature) MovementUsed() int {
	used := c.Attributes.Movement - c.Resources.RemainingMovement
	if used < 0 {
		return 0
	}
	return used
}

// UseMana spends mana points.
func (c *Creature) UseMana(points int) bool {
	if c.IsDead() || points < 0 || c.Resources.RemainingMana < points {
		return false
	}
	c.Resources.RemainingMana -= points
	return true
}

// UseFortune spends fortune points.
func (c *Creature) UseFortune(points int) bool {
	if c.IsDead() || points < 0 || c.Resources.RemainingFortune < points {
		return false
	}
	c.Resources.RemainingFortune -= points
	return true
}

// Heal restores vitality up to the creature's maximum. Dead creatures
// cannot be healed back; revival is a separate concern.
func (c *Creature) Heal(points int) int {
	if c.IsDead() || points <= 0 {
		return 0
	}
	healed := points
	if c.Resources.RemainingVitality+healed > c.MaxVitality {
		healed = c.MaxVitality - c.Resources.RemainingVitality
	}
	c.Resources.RemainingVitality += healed
	return healed
}

// RecordPushedCreature notes that this creature pushed the target this turn.
func (c *Creature) RecordPushedCreature(targetID string) {
	if c.Resources.pushedCreatures == nil {
		c.Resources.pushedCreatures = make(map[string]bool)
	}
	c.Resources.pushedCreatures[targetID] = true
}

// CanPushCreature reports pushback eligibility: the pusher must be at least
// the target's size and must not have pushed this target yet this turn.
func (c *Creature) CanPushCreature(target *Creature) bool {
	if target == nil || c.Size < target.Size {
		return false
	}
	return !c.Resources.pushedCreatures[target.ID]
}

// DamageOutcome describes how a TakeDamage call resolved.
type DamageOutcome struct {
	// Applied is the vitality actually lost. Zero when a fortune save
	// negated the damage entirely.
	Applied int

	// FortuneSaved is true when fortune negated lethal damage.
	FortuneSaved bool

	// FortuneSpent counts the fortune points consumed by the save.
	FortuneSpent int

	// SaveRoll is the d6 rolled for the save, 0 when no save happened.
	SaveRoll int

	// Died is true when vitality reached zero.
	Died bool
}

// TakeDamage applies wounds to the creature. Damage that would drop
// vitality to zero allows a last-chance fortune save: spend one fortune
// point and roll a d6; on 5+ the damage is negated entirely, otherwise a
// second fortune point (when available) negates it instead. A successful
// save leaves vitality untouched, not partially reduced.
func (c *Creature) TakeDamage(damage int, roller *dice.Provider) (*DamageOutcome, error) {
	outcome := &DamageOutcome{}
	if damage <= 0 || c.IsDead() {
		return outcome, nil
	}

	if damage < c.Resources.RemainingVitality {
		c.Resources.RemainingVitality -= damage
		outcome.Applied = damage
		return outcome, nil
	}

	// Lethal: try the fortune save.
	if c.UseFortune(1) {
		outcome.FortuneSpent = 1
		roll, err := roller.RollD6()
		if err != nil {
			return nil, err
		}
		outcome.SaveRoll = roll

		if roll >= fortuneSaveThreshold {
			outcome.FortuneSaved = true
			return outcome, nil
		}
		if c.UseFortune(1) {
			outcome.FortuneSpent = 2
			outcome.FortuneSaved = true
			return outcome, nil
		}
	}

	outcome.Applied = c.Resources.RemainingVitality
	c.Resources.RemainingVitality = 0
	outcome.Died = true
	return outcome, nil
}
