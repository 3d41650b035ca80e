package entities

import (
	"github.com/KirkDiggler/tactics-engine/internal/errors"
)

// CreaturePreset is the data shape creatures are constructed from. Presets
// are content: an unknown id or an inconsistent preset is a data bug and
// fails loudly.
type CreaturePreset struct {
	ID           string
	Name         string
	Kind         CreatureKind
	Attributes   Attributes
	Size         int
	Footprint    Footprint
	NaturalArmor int

	MaxVitality     int
	MaxMana         int
	MaxFortune      int
	MaxActions      int
	MaxQuickActions int

	MainHand  *Item
	OffHand   *Item
	ArmorSlot *Item

	Inventory      []*Item
	NaturalWeapons []*Item
	Skills         []Skill
}

// NewCreatureFromPreset builds a creature from a preset, assigning the given
// id and faction group. Equip conflicts in preset data are auto-corrected:
// an item that cannot share hands with a two-handed weapon moves to the
// inventory instead of rejecting the whole preset. Live equips go through
// the equipment validator and are rejected instead.
func NewCreatureFromPreset(preset *CreaturePreset, id, group string) (*Creature, error) {
	if preset == nil {
		return nil, errors.InvalidArgument("preset is required")
	}
	if id == "" {
		return nil, errors.InvalidArgument("creature id is required")
	}
	if preset.MaxVitality <= 0 {
		return nil, errors.Internalf("preset %s has no vitality", preset.ID).
			WithMeta("preset_id", preset.ID)
	}

	c := &Creature{
		ID:              id,
		Name:            preset.Name,
		Kind:            preset.Kind,
		Attributes:      preset.Attributes,
		Size:            preset.Size,
		Group:           group,
		Footprint:       preset.Footprint,
		NaturalArmor:    preset.NaturalArmor,
		MainHand:        cloneItem(preset.MainHand),
		OffHand:         cloneItem(preset.OffHand),
		ArmorSlot:       cloneItem(preset.ArmorSlot),
		MaxVitality:     preset.MaxVitality,
		MaxMana:         preset.MaxMana,
		MaxFortune:      preset.MaxFortune,
		MaxActions:      preset.MaxActions,
		MaxQuickActions: preset.MaxQuickActions,
		Skills:          append([]Skill(nil), preset.Skills...),
	}
	if c.Footprint.Width <= 0 {
		c.Footprint.Width = 1
	}
	if c.Footprint.Height <= 0 {
		c.Footprint.Height = 1
	}
	for _, it := range preset.Inventory {
		c.Inventory = append(c.Inventory, cloneItem(it))
	}
	for _, it := range preset.NaturalWeapons {
		c.NaturalWeapons = append(c.NaturalWeapons, cloneItem(it))
	}

	// Construction-time auto-correction of two-handed conflicts. The live
	// equip path rejects these combinations instead.
	if c.MainHand != nil && c.MainHand.TwoHanded && c.OffHand != nil {
		c.Inventory = append(c.Inventory, c.OffHand)
		c.OffHand = nil
	}
	if c.OffHand != nil && c.OffHand.TwoHanded && c.MainHand != nil {
		c.Inventory = append(c.Inventory, c.MainHand)
		c.MainHand = nil
	}

	c.Resources = NewTurnResources(c)
	return c, nil
}

func cloneItem(it *Item) *Item {
	if it == nil {
		return nil
	}
	clone := *it
	clone.Attacks = append([]Attack(nil), it.Attacks...)
	return &clone
}
