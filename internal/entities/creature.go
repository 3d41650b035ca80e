package entities

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// CreatureKind distinguishes player-controlled heroes from monsters. Heroes
// drop a fumbled weapon to the ground instead of merely breaking it.
type CreatureKind string

// Creature kinds
const (
	CreatureKindHero    CreatureKind = "hero"
	CreatureKindMonster CreatureKind = "monster"
)

// Attributes are a creature's base attribute scores.
type Attributes struct {
	Movement     int `json:"movement"`
	Combat       int `json:"combat"`
	Ranged       int `json:"ranged"`
	Strength     int `json:"strength"`
	Agility      int `json:"agility"`
	Courage      int `json:"courage"`
	Intelligence int `json:"intelligence"`
}

// StatusEffect is an active condition on a creature.
type StatusEffect string

// Status effects
const (
	StatusKnockedDown StatusEffect = "knocked_down"
)

// Creature is a combatant on the map. It owns its turn-resource ledger and
// its equipment slots; combat rules read it through accessors and mutate it
// through the resource operations in resources.go.
type Creature struct {
	ID   string       `json:"id"`
	Name string       `json:"name"`
	Kind CreatureKind `json:"kind"`

	Attributes Attributes `json:"attributes"`

	// Size gates pushback and knockdown eligibility.
	Size int `json:"size"`

	// Group determines friend or foe.
	Group string `json:"group"`

	Footprint Footprint `json:"footprint"`

	// NaturalArmor is the armor fallback when no armor is equipped.
	NaturalArmor int `json:"natural_armor"`

	// Equipment slots.
	MainHand  *Item `json:"main_hand,omitempty"`
	OffHand   *Item `json:"off_hand,omitempty"`
	ArmorSlot *Item `json:"armor,omitempty"`

	Inventory      []*Item `json:"inventory,omitempty"`
	NaturalWeapons []*Item `json:"natural_weapons,omitempty"`
	Skills         []Skill `json:"skills,omitempty"`

	// Maximum resource values; the ledger refills to these at turn start.
	MaxVitality     int `json:"max_vitality"`
	MaxMana         int `json:"max_mana"`
	MaxFortune      int `json:"max_fortune"`
	MaxActions      int `json:"max_actions"`
	MaxQuickActions int `json:"max_quick_actions"`

	Resources TurnResources `json:"resources"`

	// Facing is the compass direction the creature looks toward.
	Facing Facing `json:"facing"`

	// position is nil while the creature is off-map.
	position *Position

	activeEffects map[StatusEffect]bool

	// behindAtTurnStart holds the ids of creatures that were inside this
	// creature's back arc when its current turn started.
	behindAtTurnStart map[string]bool
}

// Ensure Creature satisfies the toolkit entity contract.
var _ core.Entity = (*Creature)(nil)

// GetID implements core.Entity.
func (c *Creature) GetID() string {
	return c.ID
}

// GetType implements core.Entity.
func (c *Creature) GetType() string {
	return string(c.Kind)
}

// Position returns the creature's tile position. ok is false while the
// creature is off-map.
func (c *Creature) Position() (Position, bool) {
	if c.position == nil {
		return Position{}, false
	}
	return *c.position, true
}

// SetPosition places the creature on a tile.
func (c *Creature) SetPosition(p Position) {
	c.position = &Position{X: p.X, Y: p.Y}
}

// ClearPosition removes the creature from the map.
func (c *Creature) ClearPosition() {
	c.position = nil
}

// IsDead reports whether the creature's vitality is exhausted.
func (c *Creature) IsDead() bool {
	return c.Resources.RemainingVitality <= 0
}

// IsEnemyOf reports whether the other creature belongs to a different group.
func (c *Creature) IsEnemyOf(other *Creature) bool {
	return other != nil && c.Group != other.Group
}

// IsBehind reports whether the given position lies inside the creature's
// back arc (the opposite facing plus 45 degrees to either side). Off-map
// creatures have no back arc.
func (c *Creature) IsBehind(p Position) bool {
	pos, ok := c.Position()
	if !ok {
		return false
	}
	if pos == p {
		return false
	}
	dir := DirectionTo(pos, p)
	return arcDistance(dir, c.Facing.Opposite()) <= 1
}

// WasBehindAtTurnStart reports whether the attacker was inside this
// creature's back arc when its current turn started.
func (c *Creature) WasBehindAtTurnStart(attackerID string) bool {
	return c.behindAtTurnStart[attackerID]
}

// AddStatusEffect applies a status effect to the creature.
func (c *Creature) AddStatusEffect(effect StatusEffect) {
	if c.activeEffects == nil {
		c.activeEffects = make(map[StatusEffect]bool)
	}
	c.activeEffects[effect] = true
}

// HasStatusEffect reports whether the effect is active.
func (c *Creature) HasStatusEffect(effect StatusEffect) bool {
	return c.activeEffects[effect]
}

// UnarmedWeapon returns the creature's natural weapon fallback. Creatures
// without natural weapons fight with fists.
func (c *Creature) UnarmedWeapon() *Item {
	for _, w := range c.NaturalWeapons {
		if w.IsWeapon() && !w.Broken {
			return w
		}
	}
	return fistsWeapon()
}

func fistsWeapon() *Item {
	return &Item{
		ID:   "fists",
		Name: "Fists",
		Kind: ItemKindWeapon,
		Attacks: []Attack{{
			Name:     "punch",
			Type:     AttackTypeMelee,
			MinRange: 1,
			Range:    1,
		}},
	}
}

// StartTurn refills the creature's per-turn resources, clears per-turn
// bookkeeping, and snapshots which roster creatures currently stand in its
// back arc. Dead creatures stay inert.
func (c *Creature) StartTurn(roster []*Creature) {
	c.behindAtTurnStart = make(map[string]bool)
	for _, other := range roster {
		if other == nil || other.ID == c.ID {
			continue
		}
		if pos, ok := other.Position(); ok && c.IsBehind(pos) {
			c.behindAtTurnStart[other.ID] = true
		}
	}

	if c.activeEffects != nil {
		delete(c.activeEffects, StatusKnockedDown)
	}

	c.Resources.startTurn(c)
}

// EndTurn zeroes the creature's movement, actions, and quick actions.
func (c *Creature) EndTurn() {
	c.Resources.endTurn()
}
