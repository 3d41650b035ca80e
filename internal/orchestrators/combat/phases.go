package combat

import (
	"github.com/KirkDiggler/tactics-engine/internal/entities"
	"github.com/KirkDiggler/tactics-engine/internal/errors"
	"github.com/KirkDiggler/tactics-engine/internal/rules/dice"
	"github.com/KirkDiggler/tactics-engine/internal/rules/equipment"
	"github.com/KirkDiggler/tactics-engine/internal/rules/trigger"
)

// resolveMeleeToHit runs the opposed melee roll. Raw rolls dispatch their
// triggers before any bonus is added, so triggers see and may modify the
// bare dice.
func (o *orchestrator) resolveMeleeToHit(res *resolution) error {
	attackRoll, err := o.dice.AttributeRoll(0)
	if err != nil {
		return err
	}
	res.attackRoll = attackRoll
	o.dispatchTriggers(trigger.EventHitRoll, res, attackRoll)

	if attackRoll.Fumble {
		o.handleFumble(res, res.attacker, res.weapon)
		res.hit = false
		return nil
	}

	defendWeapon := equipment.MainWeapon(res.target)
	defendAttack := meleeDefenseAttack(defendWeapon)

	defendRoll, err := o.dice.AttributeRoll(0)
	if err != nil {
		return err
	}
	res.defendRoll = defendRoll
	o.dispatchDefenderTriggers(trigger.EventDefendRoll, res, defendWeapon, defendAttack, defendRoll)

	if defendRoll.Fumble {
		o.handleFumble(res, res.target, defendWeapon)
	}

	attackerTotal := attackRoll.Total() + res.attack.ToHitModifier + res.attacker.Attributes.Combat
	if res.backAttack {
		attackerTotal += backAttackBonus
		res.logf("%s strikes %s from behind", res.attacker.Name, res.target.Name)
	}
	attackerTotal += elevationBonus(res.gameMap, res.attacker, res.target)

	defenderTotal := defendRoll.Total() + res.target.Attributes.Combat
	if defendAttack != nil {
		defenderTotal += defendAttack.ToHitModifier
	}
	defenderTotal += elevationBonus(res.gameMap, res.target, res.attacker)

	switch {
	case attackRoll.CriticalSuccess && !defendRoll.CriticalSuccess:
		// A double critical hits outright unless the defense matches it.
		res.hit = true
	case attackerTotal > defenderTotal:
		res.hit = true
	case attackerTotal < defenderTotal:
		res.hit = false
	default:
		res.hit = meleeTieBreak(res)
	}

	res.logf("%s attacks %s (%d vs %d)", res.attacker.Name, res.target.Name, attackerTotal, defenderTotal)
	return nil
}

// meleeDefenseAttack picks the melee attack a weapon defends with.
func meleeDefenseAttack(w *entities.Item) *entities.Attack {
	for i := range w.Attacks {
		if w.Attacks[i].Type == entities.AttackTypeMelee {
			return &w.Attacks[i]
		}
	}
	return nil
}

// resolveRangedToHit runs the single ranged attribute test against a fixed
// difficulty. A miss whose dice include a 1 may redirect into a bystander.
func (o *orchestrator) resolveRangedToHit(res *resolution) error {
	modifier := res.attacker.Attributes.Ranged + res.attack.ToHitModifier
	modifier += rangePenalty(res.distance)
	modifier += agilityPenalty(res.attacker, res.target)
	modifier += movementPenalty(res.attacker)
	if res.backAttack {
		modifier += backAttackBonus
	}

	targetPos, _ := res.target.Position()
	if res.gameMap.LightAt(targetPos.X, targetPos.Y, res.attacker) < entities.LightLit {
		modifier += lightingPenalty
	}

	roll, err := o.dice.AttributeRoll(modifier)
	if err != nil {
		return err
	}
	res.attackRoll = roll
	o.dispatchTriggers(trigger.EventHitRoll, res, roll)

	// Long shots cannot critical no matter what the dice show.
	if res.distance*2 > res.attack.Range {
		roll.CriticalHit = false
		roll.CriticalSuccess = false
	}

	if roll.Fumble {
		o.handleFumble(res, res.attacker, res.weapon)
		res.hit = false
		return nil
	}

	res.hit = roll.CriticalSuccess || roll.Total() >= rangedDifficulty
	res.logf("%s shoots at %s (%d against %d)", res.attacker.Name, res.target.Name, roll.Total(), rangedDifficulty)

	if !res.hit && roll.HasFace(1) {
		return o.redirectMiss(res)
	}
	return nil
}

// redirectMiss sends an errant shot into a random bystander standing next to
// the target: an enemy of the target at least its size. When one exists the
// resolution continues against it as a hit.
func (o *orchestrator) redirectMiss(res *resolution) error {
	var candidates []*entities.Creature
	targetPos, _ := res.target.Position()
	for _, c := range res.roster {
		if c == nil || c.ID == res.target.ID || c.ID == res.attacker.ID || c.IsDead() {
			continue
		}
		pos, ok := c.Position()
		if !ok {
			continue
		}
		if entities.TileDistance(targetPos, pos) != 1 {
			continue
		}
		if !c.IsEnemyOf(res.target) || c.Size < res.target.Size {
			continue
		}
		candidates = append(candidates, c)
	}
	if len(candidates) == 0 {
		return nil
	}

	face, err := o.dice.RollDie(len(candidates))
	if err != nil {
		return err
	}
	newTarget := candidates[(face-1)%len(candidates)]

	res.target = newTarget
	res.redirected = true
	res.hit = true
	res.backAttack = o.isBackAttack(res)
	res.logf("The shot goes wide and strikes %s", newTarget.Name)
	return nil
}

// handleFumble breaks the fumbler's weapon, makes heroes drop it, and ends
// the fumbler's turn on the spot.
func (o *orchestrator) handleFumble(res *resolution, c *entities.Creature, weapon *entities.Item) {
	res.logf("%s fumbles", c.Name)

	if weapon.Breakable && !weapon.Broken {
		weapon.Broken = true
		res.logf("%s's %s breaks", c.Name, weapon.Name)
	}
	if c.Kind == entities.CreatureKindHero {
		if c.MainHand == weapon {
			c.MainHand = nil
			res.logf("%s drops the %s", c.Name, weapon.Name)
		} else if c.OffHand == weapon {
			c.OffHand = nil
			res.logf("%s drops the %s", c.Name, weapon.Name)
		}
	}

	c.EndTurn()
}

// resolvePushback shoves the target one tile away from the attacker. The
// straight-line destination wins outright when open; otherwise one of the
// two diagonal escapes is rolled for. Terrain closing every escape turns the
// shove into extra damage instead.
func (o *orchestrator) resolvePushback(res *resolution) error {
	if !res.attacker.CanPushCreature(res.target) {
		return nil
	}

	attackerPos, _ := res.attacker.Position()
	targetPos, _ := res.target.Position()
	dir := entities.DirectionTo(attackerPos, targetPos)
	fp := res.target.Footprint

	candidates := []entities.Facing{dir, dir.Rotate(-1), dir.Rotate(1)}

	var valid []entities.Position
	straightValid := false
	creatureBlocked := false
	for i, d := range candidates {
		off := d.Offset()
		dest := entities.Position{X: targetPos.X + off.X, Y: targetPos.Y + off.Y}
		if !res.gameMap.InBounds(dest.X, dest.Y) || !res.gameMap.TerrainFree(dest.X, dest.Y, fp.Width, fp.Height) {
			continue
		}
		if !res.gameMap.IsFree(dest.X, dest.Y, fp.Width, fp.Height, res.target) {
			creatureBlocked = true
			continue
		}
		if i == 0 {
			straightValid = true
		}
		valid = append(valid, dest)
	}

	if len(valid) == 0 {
		if !creatureBlocked {
			// Pinned against terrain: the shove lands as extra damage and
			// does not count as a push.
			res.bonusDamage++
			res.logf("%s is slammed against the terrain", res.target.Name)
		}
		return nil
	}

	dest := valid[0]
	if !straightValid && len(valid) > 1 {
		face, err := o.dice.RollD6()
		if err != nil {
			return err
		}
		dest = valid[(face-1)%len(valid)]
	}

	if err := res.gameMap.MoveCreature(res.target, dest.X, dest.Y); err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal, "pushback move failed")
	}
	res.attacker.RecordPushedCreature(res.target.ID)
	res.logf("%s pushes %s back", res.attacker.Name, res.target.Name)
	return nil
}

// resolveBlock rolls the target's shield against the hit and applies the
// shield-breaking side effects. Breakage is evaluated whenever the target
// carries a shield, even when it cannot block the hit (back attack,
// defender fumble, unblockable double critical). chip reports the 1 wound
// that slips through a shield that is broken, or breaks, while blocking.
func (o *orchestrator) resolveBlock(res *resolution) (chip bool, err error) {
	if !res.target.OffHand.IsShield() {
		return false, nil
	}
	shield := res.target.OffHand

	defenderFumbled := res.defendRoll != nil && res.defendRoll.Fumble
	if !res.backAttack && !defenderFumbled && !res.attackRoll.CriticalSuccess {
		required := shield.BlockValue
		if res.attackRoll.CriticalHit {
			required++
		}
		face, rerr := o.dice.RollD6()
		if rerr != nil {
			return false, rerr
		}
		res.blocked = face >= required
	}

	wasBroken := shield.Broken
	broke, err := o.evaluateShieldBreak(res, shield)
	if err != nil {
		return false, err
	}
	if broke {
		res.logf("%s's %s is smashed apart", res.target.Name, shield.Name)
	}

	chip = res.blocked && (wasBroken || broke)
	return chip, nil
}

// evaluateShieldBreak applies the shield-breaking side effects of the hit.
// A flagged critical or a giant attacker breaks the shield outright; an
// outsized attacker or a shield-breaking attack alone still qualifies the
// shield for its own break-chance roll.
func (o *orchestrator) evaluateShieldBreak(res *resolution, shield *entities.Item) (bool, error) {
	if shield.Broken {
		return false, nil
	}

	outsized := res.attacker.Size > 2 && res.attacker.Size > res.target.Size
	automatic := res.attack.BreaksShieldsOnCritical && res.attackRoll.CriticalHit
	if outsized && (res.attacker.Size > 3 || res.attack.ShieldBreaking) {
		automatic = true
	}
	if automatic {
		shield.Broken = true
		return true, nil
	}

	if !outsized && !res.attack.ShieldBreaking {
		return false, nil
	}
	if !shield.Breakable {
		return false, nil
	}
	face, err := o.dice.RollD6()
	if err != nil {
		return false, err
	}
	if face >= shield.BreakChance {
		shield.Broken = true
		return true, nil
	}
	return false, nil
}

// resolveDamage rolls the wound dice against the target's effective armor
// and returns the wound count.
func (o *orchestrator) resolveDamage(res *resolution) (int, error) {
	damage := res.attack.DamageModifier
	switch {
	case res.attackRoll.CriticalSuccess:
		damage += 2
	case res.attackRoll.CriticalHit:
		damage += 1
	}
	damage += res.bonusDamage
	if res.attack.AddStrength {
		damage += res.attacker.Attributes.Strength
	}

	armorShift := 0
	if damage <= 0 {
		// A feeble hit still rolls one die, against hardened armor.
		damage = 1
		armorShift = 1
	}

	armor := equipment.EffectiveArmor(res.target, res.target.NaturalArmor)
	armor += res.attack.ArmorModifier + armorShift
	armor = clampArmor(armor)

	faces, err := o.dice.RollXd6(damage)
	if err != nil {
		return 0, err
	}
	wounds := 0
	for _, f := range faces {
		if f >= armor {
			wounds++
		}
	}
	res.logf("%s hits %s for %d wounds", res.attacker.Name, res.target.Name, wounds)
	return wounds, nil
}

// clampArmor keeps the wound threshold on the d6 faces that leave both
// sides a chance.
func clampArmor(armor int) int {
	if armor < 2 {
		return 2
	}
	if armor > 6 {
		return 6
	}
	return armor
}

// dispatchDefenderTriggers consults the defender's skills and defending
// weapon for a defend-phase trigger.
func (o *orchestrator) dispatchDefenderTriggers(ev trigger.Event, res *resolution, weapon *entities.Item, attack *entities.Attack, roll *dice.AttributeResult) {
	tc := &trigger.Context{
		Roll:       roll,
		AttackType: string(res.attack.Type),
	}

	sources := make([]trigger.Source, 0, len(res.target.Skills)+1)
	for _, skill := range res.target.Skills {
		sources = append(sources, trigger.Source{
			OwnerName:        res.target.Name,
			Label:            skill.Name,
			Triggers:         skill.Triggers,
			SuppressOnFumble: true,
		})
	}
	if attack != nil {
		sources = append(sources, trigger.Source{
			OwnerName: res.target.Name,
			Label:     weapon.Name,
			Triggers:  attack.Triggers,
		})
	}

	if fired := trigger.Dispatch(ev, tc, sources); fired != nil {
		res.logf("%s's %s triggers %s", fired.OwnerName, fired.Label, fired.Trigger)
	}
}
