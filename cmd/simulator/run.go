package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/tactics-engine/internal/entities"
	"github.com/KirkDiggler/tactics-engine/internal/orchestrators/combat"
	"github.com/KirkDiggler/tactics-engine/internal/pkg/clock"
	"github.com/KirkDiggler/tactics-engine/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/tactics-engine/internal/redis"
	combatlog "github.com/KirkDiggler/tactics-engine/internal/repositories/combat_log"
	"github.com/KirkDiggler/tactics-engine/internal/rules/dice"
	"github.com/KirkDiggler/tactics-engine/internal/rules/equipment"
	"github.com/KirkDiggler/tactics-engine/internal/tilemap"
)

var (
	seed      int64
	rounds    int
	redisAddr string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a skirmish between two warbands",
	Long:  `Pits a hero warband against a monster warband for a number of rounds and prints the resulting combat log.`,
	RunE:  runSkirmish,
}

func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	runCmd.Flags().IntVar(&rounds, "rounds", 10, "maximum number of rounds")
	runCmd.Flags().StringVar(&redisAddr, "redis", "", "redis address for log storage (empty uses in-memory)")
}

var heroPresets = []string{entities.PresetSwordsman, entities.PresetArcher, entities.PresetShieldmaid}
var monsterPresets = []string{entities.PresetGoblin, entities.PresetOgre, entities.PresetDireWolf}

func runSkirmish(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logRepo, err := newLogRepository()
	if err != nil {
		return err
	}

	ids := idgen.NewSequential("creature")
	encounterID := fmt.Sprintf("skirmish-%d", seed)

	grid, err := tilemap.New(20, 12)
	if err != nil {
		return err
	}

	var roster []*entities.Creature
	heroes, err := spawnWarband(grid, ids, heroPresets, "heroes", 1)
	if err != nil {
		return err
	}
	monsters, err := spawnWarband(grid, ids, monsterPresets, "monsters", 17)
	if err != nil {
		return err
	}
	roster = append(roster, heroes...)
	roster = append(roster, monsters...)

	bus := events.NewBus()
	bus.SubscribeFunc(combat.TopicCreatureDied, 0, func(_ context.Context, e events.Event) error {
		if target := e.Target(); target != nil {
			slog.Info("Creature died", "creature_id", target.GetID())
		}
		return nil
	})

	svc, err := combat.NewOrchestrator(&combat.Config{
		Roller:      dice.NewSeeded(seed),
		Validator:   combat.NewBasicValidator(),
		MessageSink: combatlog.NewSink(logRepo, encounterID),
		EventBus:    bus,
	})
	if err != nil {
		return err
	}

	slog.Info("Starting skirmish", "seed", seed, "rounds", rounds, "encounter_id", encounterID)

	for round := 1; round <= rounds; round++ {
		if allDead(heroes) || allDead(monsters) {
			break
		}
		for _, c := range roster {
			if c.IsDead() {
				continue
			}
			takeTurn(ctx, svc, grid, c, roster)
		}
	}

	return printLog(ctx, logRepo, encounterID, roster)
}

func newLogRepository() (combatlog.Repository, error) {
	if redisAddr == "" {
		return combatlog.NewInMemoryRepository(clock.New()), nil
	}

	client, err := redisclient.NewClient(redisAddr, nil)
	if err != nil {
		return nil, err
	}
	return combatlog.NewRedisRepository(&combatlog.Config{
		Client: client,
		Clock:  clock.New(),
	})
}

func spawnWarband(grid *tilemap.Grid, ids idgen.Generator, presetIDs []string, group string, column int) ([]*entities.Creature, error) {
	warband := make([]*entities.Creature, 0, len(presetIDs))
	for i, presetID := range presetIDs {
		preset, err := entities.PresetByID(presetID)
		if err != nil {
			return nil, err
		}
		c, err := entities.NewCreatureFromPreset(preset, ids.Generate(), group)
		if err != nil {
			return nil, err
		}
		if group == "monsters" {
			c.Facing = entities.FacingWest
		} else {
			c.Facing = entities.FacingEast
		}
		if err := grid.Place(c, column, 2+i*3); err != nil {
			return nil, err
		}
		warband = append(warband, c)
	}
	return warband, nil
}

// takeTurn is a deliberately simple turn brain: walk toward the nearest
// living enemy and attack once in range.
func takeTurn(ctx context.Context, svc combat.Service, grid *tilemap.Grid, c *entities.Creature, roster []*entities.Creature) {
	c.StartTurn(roster)
	defer c.EndTurn()

	target := nearestEnemy(c, roster)
	if target == nil {
		return
	}

	reach := equipment.AttackRange(c, equipment.RangeLong)
	for distanceTo(c, target) > reach && c.Resources.RemainingMovement > 0 {
		if !stepToward(grid, c, target) {
			break
		}
	}

	if distanceTo(c, target) > reach {
		return
	}

	out, err := svc.ExecuteAttack(ctx, &combat.ExecuteAttackInput{
		Attacker: c,
		Target:   target,
		Roster:   roster,
		Map:      grid,
	})
	if err != nil {
		slog.Error("Attack resolution failed",
			"attacker_id", c.ID,
			"target_id", target.ID,
			"error", err,
		)
		return
	}
	if !out.Success {
		slog.Debug("Attack rejected", "attacker_id", c.ID, "reason", out.FailureReason)
	}
}

func nearestEnemy(c *entities.Creature, roster []*entities.Creature) *entities.Creature {
	var nearest *entities.Creature
	best := 0
	for _, other := range roster {
		if other.IsDead() || !c.IsEnemyOf(other) {
			continue
		}
		if _, ok := other.Position(); !ok {
			continue
		}
		d := distanceTo(c, other)
		if nearest == nil || d < best {
			nearest = other
			best = d
		}
	}
	return nearest
}

func distanceTo(a, b *entities.Creature) int {
	pa, okA := a.Position()
	pb, okB := b.Position()
	if !okA || !okB {
		return int(^uint(0) >> 1)
	}
	return entities.TileDistance(pa, pb)
}

// stepToward moves one tile toward the target, trying the diagonal first,
// then each axis.
func stepToward(grid *tilemap.Grid, c, target *entities.Creature) bool {
	from, ok := c.Position()
	if !ok {
		return false
	}
	to, ok := target.Position()
	if !ok {
		return false
	}

	dx := step(to.X - from.X)
	dy := step(to.Y - from.Y)

	attempts := []entities.Position{
		{X: from.X + dx, Y: from.Y + dy},
		{X: from.X + dx, Y: from.Y},
		{X: from.X, Y: from.Y + dy},
	}
	for _, dest := range attempts {
		if dest == from {
			continue
		}
		if !grid.IsFree(dest.X, dest.Y, c.Footprint.Width, c.Footprint.Height, c) {
			continue
		}
		if err := grid.MoveCreature(c, dest.X, dest.Y); err != nil {
			continue
		}
		c.UseMovement(1)
		c.Facing = entities.DirectionTo(from, dest)
		return true
	}
	return false
}

func step(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func allDead(warband []*entities.Creature) bool {
	for _, c := range warband {
		if !c.IsDead() {
			return false
		}
	}
	return true
}

func printLog(ctx context.Context, repo combatlog.Repository, encounterID string, roster []*entities.Creature) error {
	out, err := repo.Get(ctx, combatlog.GetInput{EncounterID: encounterID})
	if err != nil {
		return err
	}

	for _, entry := range out.Entries {
		fmt.Printf("[%s] %s\n", entry.Category, entry.Text)
	}

	fmt.Println("--- survivors ---")
	for _, c := range roster {
		if c.IsDead() {
			continue
		}
		fmt.Printf("%s (%s): %d vitality\n", c.Name, c.Group, c.Resources.RemainingVitality)
	}
	return nil
}
