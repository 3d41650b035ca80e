package combat

import (
	"github.com/KirkDiggler/tactics-engine/internal/entities"
	"github.com/KirkDiggler/tactics-engine/internal/rules/equipment"
)

// Resolution constants. backAttackBonus applies only when the attacker stood
// in the target's back arc both now and at the target's turn start.
const (
	backAttackBonus = 2

	// rangedDifficulty is the total a ranged attribute test must reach.
	rangedDifficulty = 10

	// lightingPenalty applies when the target's tile is below lit.
	lightingPenalty = -1
)

// rangePenalty grows with distance in three-tile steps.
func rangePenalty(distance int) int {
	switch {
	case distance <= 3:
		return 0
	case distance <= 6:
		return -1
	case distance <= 9:
		return -2
	default:
		return -3
	}
}

// agilityPenalty applies when the target is nimbler than the attacker.
func agilityPenalty(attacker, target *entities.Creature) int {
	if target.Attributes.Agility > attacker.Attributes.Agility {
		return -1
	}
	return 0
}

// movementPenalty charges the attacker for moving before shooting: -1 for up
// to half its movement, -2 beyond half.
func movementPenalty(attacker *entities.Creature) int {
	used := attacker.MovementUsed()
	if used == 0 {
		return 0
	}
	if used*2 <= attacker.Attributes.Movement {
		return -1
	}
	return -2
}

// elevationBonus grants +1 when the creature stands exactly one level above
// the other combatant.
func elevationBonus(m GameMap, above, below *entities.Creature) int {
	abovePos, ok := above.Position()
	if !ok {
		return 0
	}
	belowPos, ok := below.Position()
	if !ok {
		return 0
	}
	if m.HeightAt(abovePos.X, abovePos.Y) == m.HeightAt(belowPos.X, belowPos.Y)+1 {
		return 1
	}
	return 0
}

// meleeTieBreak settles an exact total tie: higher agility wins; at equal
// agility the side without a shield loses, and the attacker wins when shield
// status is also equal.
func meleeTieBreak(res *resolution) bool {
	attackerAgility := res.attacker.Attributes.Agility
	targetAgility := res.target.Attributes.Agility
	if attackerAgility != targetAgility {
		return attackerAgility > targetAgility
	}

	attackerShield := equipment.HasShield(res.attacker, false)
	targetShield := equipment.HasShield(res.target, res.backAttack)
	if attackerShield != targetShield {
		return attackerShield
	}
	return true
}
