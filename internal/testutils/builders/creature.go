// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/tactics-engine/internal/entities"
)

// CreatureBuilder provides a fluent interface for building test Creature
// instances
type CreatureBuilder struct {
	creature *entities.Creature
}

// NewCreatureBuilder creates a new builder with minimal defaults
func NewCreatureBuilder() *CreatureBuilder {
	return &CreatureBuilder{
		creature: &entities.Creature{
			ID:   "creature-test-123",
			Name: "Test Creature",
			Kind: entities.CreatureKindMonster,
			Attributes: entities.Attributes{
				Movement: 6,
				Combat:   3,
				Ranged:   3,
				Strength: 2,
				Agility:  3,
			},
			Size:         1,
			Group:        "test-group",
			Footprint:    entities.Footprint{Width: 1, Height: 1},
			NaturalArmor: 3,
			MaxVitality:  10,
			MaxActions:   1,
		},
	}
}

// WithID sets the creature ID
func (b *CreatureBuilder) WithID(id string) *CreatureBuilder {
	b.creature.ID = id
	return b
}

// WithName sets the creature name
func (b *CreatureBuilder) WithName(name string) *CreatureBuilder {
	b.creature.Name = name
	return b
}

// WithKind sets the creature kind
func (b *CreatureBuilder) WithKind(kind entities.CreatureKind) *CreatureBuilder {
	b.creature.Kind = kind
	return b
}

// WithGroup sets the faction group
func (b *CreatureBuilder) WithGroup(group string) *CreatureBuilder {
	b.creature.Group = group
	return b
}

// WithAttributes sets the base attributes
func (b *CreatureBuilder) WithAttributes(attrs entities.Attributes) *CreatureBuilder {
	b.creature.Attributes = attrs
	return b
}

// WithSize sets the size class
func (b *CreatureBuilder) WithSize(size int) *CreatureBuilder {
	b.creature.Size = size
	return b
}

// WithVitality sets the maximum vitality
func (b *CreatureBuilder) WithVitality(vitality int) *CreatureBuilder {
	b.creature.MaxVitality = vitality
	return b
}

// WithFortune sets the maximum fortune
func (b *CreatureBuilder) WithFortune(fortune int) *CreatureBuilder {
	b.creature.MaxFortune = fortune
	return b
}

// WithMainHand equips an item in the main hand
func (b *CreatureBuilder) WithMainHand(item *entities.Item) *CreatureBuilder {
	b.creature.MainHand = item
	return b
}

// WithOffHand equips an item in the off hand
func (b *CreatureBuilder) WithOffHand(item *entities.Item) *CreatureBuilder {
	b.creature.OffHand = item
	return b
}

// WithArmor equips armor
func (b *CreatureBuilder) WithArmor(item *entities.Item) *CreatureBuilder {
	b.creature.ArmorSlot = item
	return b
}

// WithFacing sets the facing direction
func (b *CreatureBuilder) WithFacing(facing entities.Facing) *CreatureBuilder {
	b.creature.Facing = facing
	return b
}

// Build returns the creature with a full resource ledger
func (b *CreatureBuilder) Build() *entities.Creature {
	c := b.creature
	b.creature = nil
	c.Resources = entities.NewTurnResources(c)
	return c
}
