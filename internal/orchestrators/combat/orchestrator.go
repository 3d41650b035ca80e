// Package combat implements the combat resolution pipeline: validation,
// weapon selection by range, to-hit, pushback, block, damage, and the side
// effects in between. Phases run strictly in that order; one resolution
// mutates creature state in place and cannot be rolled back once the action
// cost is committed.
package combat

//go:generate mockgen -destination=mock/mock_service.go -package=combatmock github.com/KirkDiggler/tactics-engine/internal/orchestrators/combat Service

import (
	"context"
	"fmt"
	"log/slog"

	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/tactics-engine/internal/entities"
	"github.com/KirkDiggler/tactics-engine/internal/errors"
	"github.com/KirkDiggler/tactics-engine/internal/rules/dice"
	"github.com/KirkDiggler/tactics-engine/internal/rules/equipment"
	"github.com/KirkDiggler/tactics-engine/internal/rules/trigger"
)

// Event topics published on the bus at phase boundaries. Observers
// (animation, UI) subscribe to these; the pipeline never waits on them.
const (
	TopicAttackResolved = "combat.attack_resolved"
	TopicCreatureDied   = "combat.creature_died"
)

// Config holds the dependencies for the combat orchestrator
type Config struct {
	// Roller feeds all randomness. Nil falls back to the toolkit default.
	Roller toolkitdice.Roller

	// Validator approves attacks before any roll.
	Validator Validator

	// MessageSink receives combat narration.
	MessageSink MessageSink

	// EventBus receives phase-boundary notifications.
	EventBus events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Validator == nil {
		vb.RequiredField("Validator")
	}
	if c.MessageSink == nil {
		vb.RequiredField("MessageSink")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}

	return vb.Build()
}

type orchestrator struct {
	dice      *dice.Provider
	validator Validator
	sink      MessageSink
	bus       events.EventBus
}

// NewOrchestrator creates a new combat orchestrator with the provided
// dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		dice:      dice.NewProvider(cfg.Roller),
		validator: cfg.Validator,
		sink:      cfg.MessageSink,
		bus:       cfg.EventBus,
	}, nil
}

// resolution is the per-call combat event data: constructed once, passed
// through every phase. target may be swapped once by the ranged redirect
// step, surfaced as a tagged result rather than silent mutation.
type resolution struct {
	attacker *entities.Creature
	target   *entities.Creature
	roster   []*entities.Creature
	gameMap  GameMap

	weapon   *entities.Item
	attack   *entities.Attack
	distance int

	backAttack bool

	attackRoll *dice.AttributeResult
	defendRoll *dice.AttributeResult

	hit         bool
	redirected  bool
	blocked     bool
	bonusDamage int

	log []string
}

func (r *resolution) logf(format string, args ...interface{}) {
	r.log = append(r.log, fmt.Sprintf(format, args...))
}

// ExecuteAttack runs one full combat resolution. Validation failures return
// a clean unsuccessful output without consuming the attacker's action; every
// other path consumes exactly one action.
func (o *orchestrator) ExecuteAttack(ctx context.Context, input *ExecuteAttackInput) (*ExecuteAttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Attacker == nil || input.Target == nil {
		return nil, errors.InvalidArgument("attacker and target are required")
	}
	if input.Map == nil {
		return nil, errors.InvalidArgument("map is required")
	}

	res := &resolution{
		attacker: input.Attacker,
		target:   input.Target,
		roster:   input.Roster,
		gameMap:  input.Map,
	}

	// Validating
	if reason, ok := o.validate(res); !ok {
		res.logf("%s cannot attack %s: %s", res.attacker.Name, res.target.Name, reason)
		out := &ExecuteAttackOutput{
			Success:       false,
			FailureReason: reason,
			FinalTargetID: res.target.ID,
			Log:           res.log,
		}
		o.flush(res)
		return out, nil
	}

	// The action cost is committed as soon as validation passes; hit,
	// miss, and fumble all cost the same single action.
	res.attacker.UseAction()

	// WeaponSelection
	o.selectWeapon(res)

	// ToHit
	var err error
	if res.attack.Type == entities.AttackTypeMelee {
		err = o.resolveMeleeToHit(res)
	} else {
		err = o.resolveRangedToHit(res)
	}
	if err != nil {
		return nil, err
	}

	out := &ExecuteAttackOutput{Success: true, FinalTargetID: res.target.ID}

	if !res.hit {
		o.dispatchTriggers(trigger.EventAttackMiss, res, res.attackRoll)
		res.logf("%s misses %s", res.attacker.Name, res.target.Name)
		out.Redirected = res.redirected
		out.Log = res.log
		o.flush(res)
		o.publishResolved(ctx, res, out)
		return out, nil
	}

	// Triggers(Hit)
	o.dispatchTriggers(trigger.EventAttackHit, res, res.attackRoll)

	// Double criticals knock the target down unless it outsizes the
	// attacker.
	if res.attackRoll.CriticalSuccess && res.target.Size <= res.attacker.Size {
		res.target.AddStatusEffect(entities.StatusKnockedDown)
		res.logf("%s is knocked down", res.target.Name)
	}

	// Pushback
	if res.attack.Type == entities.AttackTypeMelee {
		if err := o.resolvePushback(res); err != nil {
			return nil, err
		}
	}

	// Block
	chip, err := o.resolveBlock(res)
	if err != nil {
		return nil, err
	}

	// Damage
	if res.blocked {
		res.logf("%s blocks the attack", res.target.Name)
		if chip {
			// A ruined shield lets a sliver of the blow through.
			outcome, derr := res.target.TakeDamage(1, o.dice)
			if derr != nil {
				return nil, derr
			}
			out.Damage = outcome.Applied
			out.TargetDefeated = outcome.Died
			res.logf("A wound slips past %s's ruined shield", res.target.Name)
		}
	} else {
		wounds, derr := o.resolveDamage(res)
		if derr != nil {
			return nil, derr
		}

		outcome, derr := res.target.TakeDamage(wounds, o.dice)
		if derr != nil {
			return nil, derr
		}
		if outcome.FortuneSaved {
			res.logf("%s's fortune turns the killing blow aside", res.target.Name)
		}
		out.Damage = outcome.Applied
		out.TargetDefeated = outcome.Died
	}

	if out.TargetDefeated {
		res.logf("%s is slain by %s", res.target.Name, res.attacker.Name)
		o.publishDeath(ctx, res)
	}

	out.Redirected = res.redirected
	out.FinalTargetID = res.target.ID
	out.Log = res.log
	o.flush(res)
	o.publishResolved(ctx, res, out)
	return out, nil
}

// validate runs the Validating state: both combatants on the map, attacker
// has an action, target alive, external validator approves.
func (o *orchestrator) validate(res *resolution) (string, bool) {
	if _, ok := res.attacker.Position(); !ok {
		return "attacker is not on the map", false
	}
	if _, ok := res.target.Position(); !ok {
		return "target is not on the map", false
	}
	if res.attacker.IsDead() {
		return "attacker is dead", false
	}
	if res.target.IsDead() {
		return "target is already dead", false
	}
	if res.attacker.Resources.RemainingActions <= 0 {
		return "no action remaining", false
	}

	verdict := o.validator.Validate(res.attacker, res.target, equipment.MainWeapon(res.attacker), res.roster, res.gameMap)
	if !verdict.IsValid {
		return verdict.Reason, false
	}
	return "", true
}

// selectWeapon picks the attack whose range band contains the distance,
// falling back to the unarmed attack when the weapon has no matching band.
func (o *orchestrator) selectWeapon(res *resolution) {
	attackerPos, _ := res.attacker.Position()
	targetPos, _ := res.target.Position()
	res.distance = entities.TileDistance(attackerPos, targetPos)

	res.weapon = equipment.MainWeapon(res.attacker)
	res.attack = res.weapon.AttackFor(res.distance)
	if res.attack == nil {
		res.weapon = res.attacker.UnarmedWeapon()
		res.attack = res.weapon.AttackFor(res.distance)
		if res.attack == nil {
			// Fists always cover adjacent tiles; anything beyond is an
			// unarmed flail that cannot reach, treated as reach 1.
			res.attack = &res.weapon.Attacks[0]
		}
		res.logf("%s has no weapon for this range and fights unarmed", res.attacker.Name)
	}

	res.backAttack = o.isBackAttack(res)
}

// isBackAttack requires the attacker to be inside the target's back arc both
// now and when the target's current turn started.
func (o *orchestrator) isBackAttack(res *resolution) bool {
	pos, ok := res.attacker.Position()
	if !ok {
		return false
	}
	return res.target.IsBehind(pos) && res.target.WasBehindAtTurnStart(res.attacker.ID)
}

// dispatchTriggers fires at most one trigger for the event: attacker skills
// first (suppressed on fumble), then the selected weapon.
func (o *orchestrator) dispatchTriggers(ev trigger.Event, res *resolution, roll *dice.AttributeResult) {
	tc := &trigger.Context{
		Roll:       roll,
		AttackType: string(res.attack.Type),
	}

	sources := make([]trigger.Source, 0, len(res.attacker.Skills)+1)
	for _, skill := range res.attacker.Skills {
		sources = append(sources, trigger.Source{
			OwnerName:        res.attacker.Name,
			Label:            skill.Name,
			Triggers:         skill.Triggers,
			SuppressOnFumble: true,
		})
	}
	sources = append(sources, trigger.Source{
		OwnerName: res.attacker.Name,
		Label:     res.weapon.Name,
		Triggers:  res.attack.Triggers,
	})

	if fired := trigger.Dispatch(ev, tc, sources); fired != nil {
		res.logf("%s's %s triggers %s", fired.OwnerName, fired.Label, fired.Trigger)
	}
	res.bonusDamage += tc.BonusDamage
}

// flush forwards the narration to the message sink, fire-and-forget.
func (o *orchestrator) flush(res *resolution) {
	for _, line := range res.log {
		o.sink.Send(MessageCategoryCombat, line)
	}
}

func (o *orchestrator) publishResolved(ctx context.Context, res *resolution, out *ExecuteAttackOutput) {
	evt := events.NewGameEvent(TopicAttackResolved, res.attacker, res.target)
	evt.Context().Set("hit", res.hit)
	evt.Context().Set("damage", out.Damage)
	evt.Context().Set("redirected", res.redirected)
	if err := o.bus.Publish(ctx, evt); err != nil {
		slog.Warn("Failed to publish attack resolution",
			"attacker_id", res.attacker.ID,
			"target_id", res.target.ID,
			"error", err,
		)
	}
}

func (o *orchestrator) publishDeath(ctx context.Context, res *resolution) {
	evt := events.NewGameEvent(TopicCreatureDied, res.attacker, res.target)
	if err := o.bus.Publish(ctx, evt); err != nil {
		slog.Warn("Failed to publish creature death",
			"target_id", res.target.ID,
			"error", err,
		)
	}
}
