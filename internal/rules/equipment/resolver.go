// Package equipment answers capability queries over a creature's equipped
// items: effective armor, the weapon that fights, attack ranges, and shield
// availability. It also owns the equip validation rules.
package equipment

import (
	"github.com/KirkDiggler/tactics-engine/internal/entities"
	"github.com/KirkDiggler/tactics-engine/internal/errors"
)

// RangeKind selects the normal or long range of a ranged weapon.
type RangeKind string

// Range kinds
const (
	RangeNormal RangeKind = "normal"
	RangeLong   RangeKind = "long"
)

// EffectiveArmor returns the equipped armor's value, or the supplied
// natural-armor fallback when no armor is worn.
func EffectiveArmor(c *entities.Creature, naturalDefault int) int {
	if c.ArmorSlot.IsArmor() {
		return c.ArmorSlot.ArmorValue
	}
	return naturalDefault
}

// MainWeapon returns the weapon the creature fights with: the main hand if
// it holds a weapon, else an off-hand weapon (a shield is not a weapon),
// else the unarmed fallback.
func MainWeapon(c *entities.Creature) *entities.Item {
	if c.MainHand.IsWeapon() {
		return c.MainHand
	}
	if c.OffHand.IsWeapon() {
		return c.OffHand
	}
	return c.UnarmedWeapon()
}

// AttackRange returns the reach of the creature's current weapon: melee
// reach for melee weapons, the selected range field for ranged weapons.
func AttackRange(c *entities.Creature, kind RangeKind) int {
	w := MainWeapon(c)
	if !w.Ranged {
		return w.MeleeReach()
	}
	if kind == RangeLong {
		return w.LongRange
	}
	return w.NormalRange
}

// HasShield reports whether a shield can help. Shields never help against
// attacks from behind.
func HasShield(c *entities.Creature, isBackAttack bool) bool {
	if isBackAttack {
		return false
	}
	return c.OffHand.IsShield()
}

// ShieldBlockValue returns the shield's block rating, or 0 when no shield
// applies.
func ShieldBlockValue(c *entities.Creature, isBackAttack bool) int {
	if !HasShield(c, isBackAttack) {
		return 0
	}
	return c.OffHand.BlockValue
}

// Slot names an equipment slot.
type Slot string

// Equipment slots
const (
	SlotMainHand Slot = "main_hand"
	SlotOffHand  Slot = "off_hand"
	SlotArmor    Slot = "armor"
)

// ValidateEquip checks whether the item may go into the slot given what the
// creature already wears. Violations are rejected with a named reason; the
// construction-from-preset path auto-corrects instead.
func ValidateEquip(c *entities.Creature, slot Slot, item *entities.Item) error {
	if item == nil {
		return errors.InvalidArgument("item is required")
	}

	vb := errors.NewValidationBuilder()
	switch slot {
	case SlotMainHand:
		if !item.IsWeapon() {
			vb.InvalidField("MainHand", "only weapons go in the main hand")
		}
		if item.TwoHanded && c.OffHand != nil {
			vb.InvalidField("MainHand", "two-handed weapon requires an empty off hand")
		}
		if c.OffHand != nil && c.OffHand.TwoHanded {
			vb.InvalidField("MainHand", "off hand already holds a two-handed weapon")
		}
	case SlotOffHand:
		if !item.IsWeapon() && !item.IsShield() {
			vb.InvalidField("OffHand", "only weapons and shields go in the off hand")
		}
		if item.TwoHanded && c.MainHand != nil {
			vb.InvalidField("OffHand", "two-handed weapon requires an empty main hand")
		}
		if c.MainHand != nil && c.MainHand.TwoHanded {
			vb.InvalidField("OffHand", "main hand already holds a two-handed weapon")
		}
	case SlotArmor:
		if !item.IsArmor() {
			vb.InvalidField("Armor", "only armor goes in the armor slot")
		}
	default:
		vb.InvalidField("Slot", "unknown slot")
	}

	return vb.Build()
}

// Equip validates and places the item into the slot, returning any
// displaced item to the caller.
func Equip(c *entities.Creature, slot Slot, item *entities.Item) (*entities.Item, error) {
	if err := ValidateEquip(c, slot, item); err != nil {
		return nil, err
	}

	var displaced *entities.Item
	switch slot {
	case SlotMainHand:
		displaced = c.MainHand
		c.MainHand = item
	case SlotOffHand:
		displaced = c.OffHand
		c.OffHand = item
	case SlotArmor:
		displaced = c.ArmorSlot
		c.ArmorSlot = item
	}
	return displaced, nil
}
