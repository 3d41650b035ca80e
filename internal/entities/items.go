// Package entities provides the core data structures for the tactics engine:
// creatures, their turn resources, and the closed set of item variants.
package entities

import (
	"github.com/KirkDiggler/tactics-engine/internal/rules/trigger"
)

// ItemKind discriminates the closed set of item variants.
type ItemKind string

// Item kinds
const (
	ItemKindWeapon ItemKind = "weapon"
	ItemKindShield ItemKind = "shield"
	ItemKindArmor  ItemKind = "armor"
	ItemKindGear   ItemKind = "gear"
)

// AttackType tags an attack definition as melee or ranged.
type AttackType string

// Attack types
const (
	AttackTypeMelee  AttackType = "melee"
	AttackTypeRanged AttackType = "ranged"
)

// Attack is one attack definition owned by a weapon. Exactly one attack
// applies per combat resolution, selected by the distance to the target
// falling inside [MinRange, Range].
type Attack struct {
	Name string     `json:"name"`
	Type AttackType `json:"type"`

	// MinRange..Range is the distance band in tiles.
	MinRange int `json:"min_range"`
	Range    int `json:"range"`

	ToHitModifier  int `json:"to_hit_modifier"`
	DamageModifier int `json:"damage_modifier"`

	// ArmorModifier shifts the defender's effective armor (negative values
	// represent armor-piercing attacks).
	ArmorModifier int `json:"armor_modifier"`

	// AddStrength adds the attacker's strength to damage.
	AddStrength bool `json:"add_strength"`

	// ShieldBreaking attacks may break the defender's shield on any hit.
	ShieldBreaking bool `json:"shield_breaking"`

	// BreaksShieldsOnCritical breaks the defender's shield automatically
	// when the attacker rolls a critical hit.
	BreaksShieldsOnCritical bool `json:"breaks_shields_on_critical"`

	// Triggers are the attack's combat hooks, consulted after skill hooks.
	Triggers []trigger.Trigger `json:"-"`
}

// InBand reports whether the given tile distance falls inside the attack's
// range band.
func (a *Attack) InBand(distance int) bool {
	return distance >= a.MinRange && distance <= a.Range
}

// Item is the common shape over all item variants. Kind-specific fields are
// meaningful only for the matching Kind; consumers switch exhaustively on
// Kind instead of downcasting.
type Item struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Kind ItemKind `json:"kind"`

	// TwoHanded weapons occupy both hand slots.
	TwoHanded bool `json:"two_handed,omitempty"`

	// Weapon fields.

	// Attacks holds the weapon's attack definitions.
	Attacks []Attack `json:"attacks,omitempty"`

	// Ranged marks the weapon as a ranged weapon with the two range fields
	// below; melee weapons use Reach.
	Ranged      bool `json:"ranged,omitempty"`
	NormalRange int  `json:"normal_range,omitempty"`
	LongRange   int  `json:"long_range,omitempty"`
	Reach       int  `json:"reach,omitempty"`

	// Shield fields.

	// BlockValue is the d6 threshold a block roll must reach.
	BlockValue int `json:"block_value,omitempty"`

	// Armor fields.
	ArmorValue int `json:"armor_value,omitempty"`

	// Breakage state, shared by weapons and shields.
	Breakable bool `json:"breakable,omitempty"`
	Broken    bool `json:"broken,omitempty"`

	// BreakChance is the d6 threshold for non-automatic break rolls.
	BreakChance int `json:"break_chance,omitempty"`
}

// IsWeapon reports whether the item is a weapon variant.
func (i *Item) IsWeapon() bool {
	return i != nil && i.Kind == ItemKindWeapon
}

// IsShield reports whether the item is a shield variant.
func (i *Item) IsShield() bool {
	return i != nil && i.Kind == ItemKindShield
}

// IsArmor reports whether the item is an armor variant.
func (i *Item) IsArmor() bool {
	return i != nil && i.Kind == ItemKindArmor
}

// MeleeReach returns the weapon's melee reach, defaulting to 1 tile.
func (i *Item) MeleeReach() int {
	if i == nil || i.Reach <= 0 {
		return 1
	}
	return i.Reach
}

// AttackFor selects the attack whose range band contains the distance.
// Returns nil when no band matches.
func (i *Item) AttackFor(distance int) *Attack {
	if i == nil {
		return nil
	}
	for idx := range i.Attacks {
		if i.Attacks[idx].InBand(distance) {
			return &i.Attacks[idx]
		}
	}
	return nil
}

// Skill is a creature ability that may register combat triggers.
type Skill struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Triggers []trigger.Trigger `json:"-"`
}
