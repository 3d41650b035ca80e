package combat

import (
	"fmt"

	"github.com/KirkDiggler/tactics-engine/internal/entities"
	"github.com/KirkDiggler/tactics-engine/internal/rules/equipment"
)

// BasicValidator is the default attack validator: no self-attacks, no
// friendly fire, target inside the weapon's long range. Campaign layers with
// richer rules (line of sight, taunts) supply their own Validator.
type BasicValidator struct{}

// NewBasicValidator creates the default attack validator.
func NewBasicValidator() *BasicValidator {
	return &BasicValidator{}
}

var _ Validator = (*BasicValidator)(nil)

// Validate implements Validator.
func (v *BasicValidator) Validate(attacker, target *entities.Creature, weapon *entities.Item, _ []*entities.Creature, _ GameMap) ValidationResult {
	if attacker.ID == target.ID {
		return ValidationResult{Reason: "cannot attack yourself"}
	}
	if !attacker.IsEnemyOf(target) {
		return ValidationResult{Reason: "cannot attack an ally"}
	}

	attackerPos, ok := attacker.Position()
	if !ok {
		return ValidationResult{Reason: "attacker is not on the map"}
	}
	targetPos, ok := target.Position()
	if !ok {
		return ValidationResult{Reason: "target is not on the map"}
	}

	distance := entities.TileDistance(attackerPos, targetPos)
	maxRange := equipment.AttackRange(attacker, equipment.RangeLong)
	if weapon != nil && weapon.AttackFor(distance) == nil && distance > 1 {
		// No range band covers the distance and the unarmed fallback
		// cannot reach either.
		return ValidationResult{Reason: fmt.Sprintf("target is out of range (%d > %d)", distance, maxRange)}
	}
	if distance > maxRange && distance > 1 {
		return ValidationResult{Reason: fmt.Sprintf("target is out of range (%d > %d)", distance, maxRange)}
	}

	return ValidationResult{IsValid: true}
}
