package trigger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/tactics-engine/internal/rules/dice"
	"github.com/KirkDiggler/tactics-engine/internal/rules/trigger"
)

func plainRoll(faces ...int) *dice.AttributeResult {
	return &dice.AttributeResult{Dice: faces}
}

func fumbleRoll() *dice.AttributeResult {
	return &dice.AttributeResult{Dice: []int{1, 1}, Fumble: true}
}

func TestDispatch_FirstMatchWins(t *testing.T) {
	var fired []string
	mk := func(name string) trigger.Trigger {
		return trigger.Trigger{
			Name:   name,
			Events: []trigger.Event{trigger.EventAttackHit},
			Apply:  func(_ *trigger.Context) { fired = append(fired, name) },
		}
	}

	sources := []trigger.Source{
		{OwnerName: "Brakk", Label: "Frenzy", Triggers: []trigger.Trigger{mk("first")}, SuppressOnFumble: true},
		{OwnerName: "Brakk", Label: "Axe", Triggers: []trigger.Trigger{mk("second")}},
	}

	result := trigger.Dispatch(trigger.EventAttackHit, &trigger.Context{Roll: plainRoll(3, 4)}, sources)

	assert.NotNil(t, result)
	assert.Equal(t, "first", result.Trigger)
	assert.Equal(t, []string{"first"}, fired, "only the first matching trigger fires")
}

func TestDispatch_EventFilter(t *testing.T) {
	sources := []trigger.Source{
		{Label: "Axe", Triggers: []trigger.Trigger{{
			Name:   "cleave",
			Events: []trigger.Event{trigger.EventAttackMiss},
		}}},
	}

	result := trigger.Dispatch(trigger.EventAttackHit, &trigger.Context{Roll: plainRoll(3, 4)}, sources)
	assert.Nil(t, result)
}

func TestDispatch_AttackTypeFilter(t *testing.T) {
	sources := []trigger.Source{
		{Label: "Longbow", Triggers: []trigger.Trigger{{
			Name:        "pinning shot",
			Events:      []trigger.Event{trigger.EventAttackHit},
			AttackTypes: []string{"ranged"},
		}}},
	}

	tc := &trigger.Context{Roll: plainRoll(3, 4), AttackType: "melee"}
	assert.Nil(t, trigger.Dispatch(trigger.EventAttackHit, tc, sources))

	tc.AttackType = "ranged"
	assert.NotNil(t, trigger.Dispatch(trigger.EventAttackHit, tc, sources))
}

func TestDispatch_RollValidator(t *testing.T) {
	sources := []trigger.Source{
		{Label: "Duelist", SuppressOnFumble: true, Triggers: []trigger.Trigger{{
			Name:      "riposte",
			Events:    []trigger.Event{trigger.EventHitRoll},
			Validator: func(roll *dice.AttributeResult) bool { return roll.CriticalHit },
		}}},
	}

	tc := &trigger.Context{Roll: plainRoll(3, 4)}
	assert.Nil(t, trigger.Dispatch(trigger.EventHitRoll, tc, sources))

	tc.Roll = &dice.AttributeResult{Dice: []int{6, 2}, CriticalHit: true}
	assert.NotNil(t, trigger.Dispatch(trigger.EventHitRoll, tc, sources))
}

func TestDispatch_FumbleSuppressesSkillsNotWeapons(t *testing.T) {
	hit := trigger.Trigger{
		Name:   "bonus",
		Events: []trigger.Event{trigger.EventHitRoll},
	}

	sources := []trigger.Source{
		{Label: "Frenzy", Triggers: []trigger.Trigger{hit}, SuppressOnFumble: true},
		{Label: "Axe", Triggers: []trigger.Trigger{hit}},
	}

	result := trigger.Dispatch(trigger.EventHitRoll, &trigger.Context{Roll: fumbleRoll()}, sources)

	assert.NotNil(t, result, "weapon triggers still run on a fumble")
	assert.Equal(t, "Axe", result.Label)
}

func TestDispatch_TriggerCanModifyRoll(t *testing.T) {
	sources := []trigger.Source{
		{Label: "Blessed Blade", Triggers: []trigger.Trigger{{
			Name:   "blessing",
			Events: []trigger.Event{trigger.EventHitRoll},
			Apply:  func(tc *trigger.Context) { tc.Roll.Modifier += 2 },
		}}},
	}

	roll := plainRoll(3, 4)
	trigger.Dispatch(trigger.EventHitRoll, &trigger.Context{Roll: roll}, sources)

	assert.Equal(t, 9, roll.Total())
}

func TestDispatch_BonusDamageAccumulates(t *testing.T) {
	sources := []trigger.Source{
		{Label: "Mighty Blow", SuppressOnFumble: true, Triggers: []trigger.Trigger{{
			Name:   "mighty blow",
			Events: []trigger.Event{trigger.EventAttackHit},
			Apply:  func(tc *trigger.Context) { tc.BonusDamage += 1 },
		}}},
	}

	tc := &trigger.Context{Roll: plainRoll(5, 4)}
	trigger.Dispatch(trigger.EventAttackHit, tc, sources)

	assert.Equal(t, 1, tc.BonusDamage)
}
