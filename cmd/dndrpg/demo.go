package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/ThiagoRibas-dev/dnd-text-game/internal/engine"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/engine/rules"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/entities"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/orchestrators/combat"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/pkg/clock"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/pkg/idgen"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/pkg/rng"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/redis"
	contentrepo "github.com/ThiagoRibas-dev/dnd-text-game/internal/repositories/content"
)

var demoSeed int64

// demoConfig is the process environment for the demo command
type demoConfig struct {
	// RedisAddr, when set, mirrors the authored content through the
	// Redis-backed index instead of the in-memory one
	RedisAddr string `env:"DNDRPG_REDIS_ADDR"`
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted encounter and print the explain traces",
	Long:  `Runs a short scripted fight between a fighter and an orc, exercising buffs, stacking, gates, damage reduction, zones, and the round clock. Every ruling is printed with its full derivation.`,
	RunE:  runDemo,
}

func init() {
	demoCmd.Flags().Int64Var(&demoSeed, "seed", 0, "dice seed; the same seed replays the same fight (0 seeds from the clock)")
}

func runDemo(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	var cfg demoConfig
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}

	repo := contentrepo.NewMemoryRepository()
	if cfg.RedisAddr != "" {
		client, err := redis.NewClient(cfg.RedisAddr, nil)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		repo, err = contentrepo.NewRedisRepository(&contentrepo.RedisConfig{Client: client})
		if err != nil {
			return fmt.Errorf("failed to create redis repository: %w", err)
		}
	}

	if err := seedContent(ctx, repo); err != nil {
		return fmt.Errorf("failed to seed content: %w", err)
	}

	state := entities.NewGameState()
	fighter, orc := seedEntities(state)

	if demoSeed == 0 {
		demoSeed = clock.New().Now().UnixNano()
	}
	roller := rng.NewSeeded(demoSeed)
	eng, err := rules.NewEngine(&rules.Config{
		Repository:  repo,
		Roller:      roller,
		IDGenerator: idgen.NewSequential("demo"),
		State:       state,
		Logger:      slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})),
	})
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	svc, err := combat.NewOrchestrator(&combat.Config{Engine: eng})
	if err != nil {
		return fmt.Errorf("failed to create orchestrator: %w", err)
	}

	fmt.Printf("=== %s vs %s (seed %d) ===\n\n", fighter.Name, orc.Name, demoSeed)

	section("Opening stats")
	explain(ctx, svc, fighter.ID, "ac")
	explain(ctx, svc, fighter.ID, "abilities.str.score")

	section("Divine Power (BAB becomes level, +6 STR, temp HP)")
	cast(ctx, svc, fighter.ID, fighter.ID, "divine_power")
	explain(ctx, svc, fighter.ID, "combat.bab")
	explain(ctx, svc, fighter.ID, "abilities.str.score")

	section("Longsword attack against the orc (DR 5/magic)")
	attack(ctx, svc, eng, roller, fighter, orc)

	section("Grease under the orc")
	cast(ctx, svc, fighter.ID, orc.ID, "grease")
	move(ctx, eng, orc, entities.Position{X: 9, Y: 5})

	section("Two rounds pass")
	advanced, err := svc.AdvanceTime(ctx, &combat.AdvanceTimeInput{Rounds: 2})
	if err != nil {
		return err
	}
	printTrace(advanced.Trace)
	for _, id := range advanced.Expired {
		fmt.Printf("  expired: %s\n", id)
	}

	section("Antimagic field over the fighter")
	cast(ctx, svc, fighter.ID, fighter.ID, "antimagic_field")
	explain(ctx, svc, fighter.ID, "abilities.str.score")
	move(ctx, eng, fighter, entities.Position{X: 0, Y: 9})
	explain(ctx, svc, fighter.ID, "abilities.str.score")

	fmt.Printf("\n%s: %d/%d HP    %s: %d/%d HP\n",
		fighter.Name, fighter.HPCurrent, fighter.HPMax,
		orc.Name, orc.HPCurrent, orc.HPMax)

	return nil
}

func attack(ctx context.Context, svc combat.Service, eng engine.Engine, roller interface {
	Roll(int) (int, error)
}, attacker, target *entities.Entity) {
	strScore, err := eng.ResolveStat(ctx, &engine.ResolveStatInput{EntityID: attacker.ID, Path: "abilities.str.score"})
	if err != nil {
		fmt.Printf("  error: %v\n", err)
		return
	}
	strMod := (int(strScore.Value) - 10) / 2

	dmgRoll, err := roller.Roll(8)
	if err != nil {
		fmt.Printf("  error: %v\n", err)
		return
	}

	out, err := svc.Attack(ctx, &combat.AttackInput{
		AttackerID: attacker.ID,
		TargetID:   target.ID,
		Attack:     longsword,
		Damage: []engine.DamagePacket{
			{Amount: float64(dmgRoll + strMod), Kind: "slashing"},
		},
	})
	if err != nil {
		fmt.Printf("  error: %v\n", err)
		return
	}
	printTrace(out.Trace)
	if out.Hit {
		fmt.Printf("  -> hit for %d (x%d)\n", out.DamageDealt, out.Multiplier)
	} else {
		fmt.Println("  -> miss")
	}
}

func cast(ctx context.Context, svc combat.Service, casterID, targetID, effectID string) {
	out, err := svc.CastEffect(ctx, &combat.CastEffectInput{
		CasterID: casterID,
		TargetID: targetID,
		EffectID: effectID,
	})
	if err != nil {
		fmt.Printf("  error: %v\n", err)
		return
	}
	printTrace(out.Trace)
	if !out.Applied {
		fmt.Println("  -> resisted")
	}
}

func explain(ctx context.Context, svc combat.Service, entityID, path string) {
	out, err := svc.Explain(ctx, &combat.ExplainInput{EntityID: entityID, Path: path})
	if err != nil {
		fmt.Printf("  error: %v\n", err)
		return
	}
	printTrace(out.Trace)
	fmt.Printf("  %s %s = %g\n", entityID, path, out.Value)
}

func move(ctx context.Context, eng engine.Engine, ent *entities.Entity, to entities.Position) {
	out, err := eng.MoveEntity(ctx, &engine.MoveEntityInput{EntityID: ent.ID, To: to})
	if err != nil {
		fmt.Printf("  error: %v\n", err)
		return
	}
	printTrace(out.Trace)
	if !out.Moved {
		fmt.Printf("  -> %s is stuck\n", ent.Name)
	}
}

func section(title string) {
	fmt.Printf("\n--- %s ---\n", title)
}

func printTrace(t *engine.Trace) {
	if t == nil {
		return
	}
	for _, e := range t.Entries {
		fmt.Printf("  [%s] %s\n", e.Kind, e.Message)
	}
}
