package entities

import (
	"github.com/KirkDiggler/tactics-engine/internal/errors"
)

// Built-in preset catalog. Real campaigns load presets as content; this
// catalog covers the simulator and tests.

// Preset ids
const (
	PresetSwordsman  = "swordsman"
	PresetArcher     = "archer"
	PresetGoblin     = "goblin"
	PresetOgre       = "ogre"
	PresetDireWolf   = "dire_wolf"
	PresetShieldmaid = "shieldmaid"
)

// NewLongsword creates a one-handed melee weapon.
func NewLongsword() *Item {
	return &Item{
		ID:        "longsword",
		Name:      "Longsword",
		Kind:      ItemKindWeapon,
		Breakable: true,
		Attacks: []Attack{{
			Name:           "slash",
			Type:           AttackTypeMelee,
			MinRange:       1,
			Range:          1,
			DamageModifier: 2,
			AddStrength:    true,
		}},
	}
}

// NewGreataxe creates a two-handed melee weapon that threatens shields.
func NewGreataxe() *Item {
	return &Item{
		ID:        "greataxe",
		Name:      "Greataxe",
		Kind:      ItemKindWeapon,
		TwoHanded: true,
		Breakable: true,
		Attacks: []Attack{{
			Name:                    "hew",
			Type:                    AttackTypeMelee,
			MinRange:                1,
			Range:                   1,
			DamageModifier:          3,
			AddStrength:             true,
			BreaksShieldsOnCritical: true,
		}},
	}
}

// NewShortbow creates a ranged weapon with no point-blank band.
func NewShortbow() *Item {
	return &Item{
		ID:          "shortbow",
		Name:        "Shortbow",
		Kind:        ItemKindWeapon,
		TwoHanded:   true,
		Ranged:      true,
		NormalRange: 8,
		LongRange:   12,
		Breakable:   true,
		Attacks: []Attack{{
			Name:           "loose arrow",
			Type:           AttackTypeRanged,
			MinRange:       2,
			Range:          12,
			DamageModifier: 2,
		}},
	}
}

// NewRoundShield creates a shield.
func NewRoundShield() *Item {
	return &Item{
		ID:          "round_shield",
		Name:        "Round Shield",
		Kind:        ItemKindShield,
		BlockValue:  5,
		Breakable:   true,
		BreakChance: 5,
	}
}

// NewChainMail creates body armor.
func NewChainMail() *Item {
	return &Item{
		ID:         "chain_mail",
		Name:       "Chain Mail",
		Kind:       ItemKindArmor,
		ArmorValue: 4,
	}
}

// NewClaws creates a natural weapon.
func NewClaws() *Item {
	return &Item{
		ID:   "claws",
		Name: "Claws",
		Kind: ItemKindWeapon,
		Attacks: []Attack{{
			Name:           "rake",
			Type:           AttackTypeMelee,
			MinRange:       1,
			Range:          1,
			DamageModifier: 1,
			AddStrength:    true,
		}},
	}
}

var presetCatalog = map[string]func() *CreaturePreset{
	PresetSwordsman: func() *CreaturePreset {
		return &CreaturePreset{
			ID:   PresetSwordsman,
			Name: "Swordsman",
			Kind: CreatureKindHero,
			Attributes: Attributes{
				Movement: 5, Combat: 5, Ranged: 2,
				Strength: 3, Agility: 3, Courage: 4, Intelligence: 2,
			},
			Size:            2,
			NaturalArmor:    2,
			MaxVitality:     8,
			MaxMana:         0,
			MaxFortune:      2,
			MaxActions:      1,
			MaxQuickActions: 1,
			MainHand:        NewLongsword(),
			OffHand:         NewRoundShield(),
			ArmorSlot:       NewChainMail(),
		}
	},
	PresetArcher: func() *CreaturePreset {
		return &CreaturePreset{
			ID:   PresetArcher,
			Name: "Archer",
			Kind: CreatureKindHero,
			Attributes: Attributes{
				Movement: 6, Combat: 3, Ranged: 5,
				Strength: 2, Agility: 4, Courage: 3, Intelligence: 3,
			},
			Size:            2,
			NaturalArmor:    2,
			MaxVitality:     6,
			MaxMana:         0,
			MaxFortune:      1,
			MaxActions:      1,
			MaxQuickActions: 1,
			MainHand:        NewShortbow(),
		}
	},
	PresetShieldmaid: func() *CreaturePreset {
		return &CreaturePreset{
			ID:   PresetShieldmaid,
			Name: "Shieldmaid",
			Kind: CreatureKindHero,
			Attributes: Attributes{
				Movement: 5, Combat: 4, Ranged: 2,
				Strength: 3, Agility: 4, Courage: 5, Intelligence: 3,
			},
			Size:            2,
			NaturalArmor:    2,
			MaxVitality:     7,
			MaxMana:         2,
			MaxFortune:      2,
			MaxActions:      1,
			MaxQuickActions: 1,
			MainHand:        NewLongsword(),
			OffHand:         NewRoundShield(),
			ArmorSlot:       NewChainMail(),
			Skills: []Skill{{
				ID:   "shield_wall",
				Name: "Shield Wall",
			}},
		}
	},
	PresetGoblin: func() *CreaturePreset {
		return &CreaturePreset{
			ID:   PresetGoblin,
			Name: "Goblin",
			Kind: CreatureKindMonster,
			Attributes: Attributes{
				Movement: 6, Combat: 3, Ranged: 3,
				Strength: 2, Agility: 4, Courage: 2, Intelligence: 2,
			},
			Size:            1,
			NaturalArmor:    2,
			MaxVitality:     3,
			MaxActions:      1,
			MaxQuickActions: 1,
			MainHand:        NewLongsword(),
		}
	},
	PresetOgre: func() *CreaturePreset {
		return &CreaturePreset{
			ID:   PresetOgre,
			Name: "Ogre",
			Kind: CreatureKindMonster,
			Attributes: Attributes{
				Movement: 4, Combat: 4, Ranged: 1,
				Strength: 5, Agility: 2, Courage: 4, Intelligence: 1,
			},
			Size:            3,
			Footprint:       Footprint{Width: 2, Height: 2},
			NaturalArmor:    3,
			MaxVitality:     10,
			MaxActions:      1,
			MaxQuickActions: 1,
			MainHand:        NewGreataxe(),
		}
	},
	PresetDireWolf: func() *CreaturePreset {
		return &CreaturePreset{
			ID:   PresetDireWolf,
			Name: "Dire Wolf",
			Kind: CreatureKindMonster,
			Attributes: Attributes{
				Movement: 8, Combat: 4, Ranged: 0,
				Strength: 3, Agility: 5, Courage: 3, Intelligence: 1,
			},
			Size:            2,
			NaturalArmor:    3,
			MaxVitality:     5,
			MaxActions:      1,
			MaxQuickActions: 1,
			NaturalWeapons:  []*Item{NewClaws()},
		}
	},
}

// PresetByID looks up a built-in preset. Unknown ids are a content bug.
func PresetByID(id string) (*CreaturePreset, error) {
	factory, ok := presetCatalog[id]
	if !ok {
		return nil, errors.NotFoundf("unknown creature preset: %s", id).
			WithMeta("preset_id", id)
	}
	return factory(), nil
}
