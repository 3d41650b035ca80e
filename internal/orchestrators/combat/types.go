package combat

import (
	"context"

	"github.com/KirkDiggler/tactics-engine/internal/entities"
)

// Service defines the interface for combat resolution
type Service interface {
	// ExecuteAttack runs one full combat resolution between attacker and
	// target.
	ExecuteAttack(ctx context.Context, input *ExecuteAttackInput) (*ExecuteAttackOutput, error)
}

// ExecuteAttackInput carries one attack order from the turn layer.
type ExecuteAttackInput struct {
	Attacker *entities.Creature
	Target   *entities.Creature

	// Roster is every creature in the encounter; redirect and back-arc
	// queries read it.
	Roster []*entities.Creature

	// Map answers terrain and occupancy queries.
	Map GameMap
}

// ExecuteAttackOutput is the resolution result.
type ExecuteAttackOutput struct {
	// Success is true for every fully validated resolution, including
	// misses. False only when validation failed.
	Success bool

	// Damage is the wound count applied to the final target.
	Damage int

	// TargetDefeated is true when the final target died.
	TargetDefeated bool

	// Redirected is true when a ranged miss struck a bystander instead.
	// FinalTargetID then names the creature the later phases resolved
	// against.
	Redirected    bool
	FinalTargetID string

	// FailureReason holds the validation failure for UI display.
	FailureReason string

	// Log is the combat narration emitted during this resolution.
	Log []string
}

// ValidationResult is the external validator's verdict.
type ValidationResult struct {
	IsValid bool
	Reason  string
}

// Validator approves an attack before any die is rolled: range, line of
// sight, friend or foe. Implemented by the campaign layer.
type Validator interface {
	Validate(attacker, target *entities.Creature, weapon *entities.Item, roster []*entities.Creature, m GameMap) ValidationResult
}

// GameMap is the map query surface the pipeline needs. The tilemap package
// provides the in-repo implementation.
type GameMap interface {
	HeightAt(x, y int) int
	LightAt(x, y int, viewer *entities.Creature) entities.LightLevel
	InBounds(x, y int) bool

	// TerrainFree ignores creatures; IsFree also requires the footprint to
	// be unoccupied by anyone but ignore.
	TerrainFree(x, y, w, h int) bool
	IsFree(x, y, w, h int, ignore *entities.Creature) bool

	MoveCreature(c *entities.Creature, x, y int) error
}

// MessageSink receives combat narration, fire-and-forget. The core never
// depends on what the sink does with a line.
type MessageSink interface {
	Send(category, text string)
}

// MessageCategoryCombat tags combat narration lines.
const MessageCategoryCombat = "COMBAT"
