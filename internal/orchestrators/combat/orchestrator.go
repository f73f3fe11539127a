// Package combat is the orchestration layer between a game loop and the
// rules engine: it sequences gate resolution, damage delivery, and rider
// effects into whole player-visible actions.
package combat

//go:generate mockgen -destination=mock/mock_service.go -package=combatmock github.com/ThiagoRibas-dev/dnd-text-game/internal/orchestrators/combat Service

import (
	"context"
	"log/slog"

	"github.com/ThiagoRibas-dev/dnd-text-game/internal/engine"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/errors"
)

// Service defines the combat operations exposed to the game loop
type Service interface {
	Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error)
	CastEffect(ctx context.Context, input *CastEffectInput) (*CastEffectOutput, error)
	AdvanceTime(ctx context.Context, input *AdvanceTimeInput) (*AdvanceTimeOutput, error)
	Explain(ctx context.Context, input *ExplainInput) (*ExplainOutput, error)
}

// Config holds the dependencies for the combat orchestrator
type Config struct {
	Engine engine.Engine
	Logger *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}

	return vb.Build()
}

type orchestrator struct {
	engine engine.Engine
	log    *slog.Logger
}

var _ Service = (*orchestrator)(nil)

// NewOrchestrator creates a new combat orchestrator with the provided
// dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	return &orchestrator{
		engine: cfg.Engine,
		log:    log,
	}, nil
}

// Attack resolves the to-hit gates and, on a hit, delivers the weapon's
// damage with the critical multiplier and attaches any rider effects
func (o *orchestrator) Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error) {
	if input == nil || input.AttackerID == "" || input.TargetID == "" {
		return nil, errors.InvalidArgument("attacker id and target id are required")
	}

	o.log.Info("attack requested",
		"attacker_id", input.AttackerID,
		"target_id", input.TargetID,
		"kind", input.Attack.Kind)

	resolved, err := o.engine.ResolveAttack(ctx, &engine.ResolveAttackInput{
		AttackerID: input.AttackerID,
		TargetID:   input.TargetID,
		Attack:     input.Attack,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve attack")
	}

	out := &AttackOutput{
		Hit:        resolved.Hit,
		Critical:   resolved.Critical,
		Multiplier: resolved.Multiplier,
		Gates:      resolved.Results,
		Trace:      resolved.Trace,
	}
	if !resolved.Hit {
		return out, nil
	}

	if len(input.Damage) > 0 {
		packets := make([]engine.DamagePacket, len(input.Damage))
		for i, p := range input.Damage {
			packets[i] = p
			packets[i].Amount = p.Amount * float64(resolved.Multiplier)
			packets[i].Tags = append(append([]string{}, p.Tags...), input.Attack.Tags...)
		}

		damaged, err := o.engine.ApplyDamage(ctx, &engine.ApplyDamageInput{
			SourceID: input.AttackerID,
			TargetID: input.TargetID,
			Packets:  packets,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to apply damage")
		}
		out.DamageDealt = damaged.TotalApplied
		appendTrace(out.Trace, damaged.Trace)
	}

	for _, effectID := range input.RiderEffectIDs {
		attached, err := o.engine.AttachEffect(ctx, &engine.AttachEffectInput{
			EffectID: effectID,
			SourceID: input.AttackerID,
			TargetID: input.TargetID,
		})
		if err != nil {
			o.log.Warn("rider effect failed",
				"effect_id", effectID,
				"target_id", input.TargetID,
				"error", err)
			continue
		}
		appendTrace(out.Trace, attached.Trace)
	}

	o.log.Info("attack resolved",
		"attacker_id", input.AttackerID,
		"target_id", input.TargetID,
		"hit", out.Hit,
		"critical", out.Critical,
		"damage", out.DamageDealt)

	return out, nil
}

// CastEffect attaches an authored effect to a target, letting the
// engine resolve SR and saving throws
func (o *orchestrator) CastEffect(ctx context.Context, input *CastEffectInput) (*CastEffectOutput, error) {
	if input == nil || input.EffectID == "" || input.TargetID == "" {
		return nil, errors.InvalidArgument("effect id and target id are required")
	}

	o.log.Info("cast requested",
		"effect_id", input.EffectID,
		"caster_id", input.CasterID,
		"target_id", input.TargetID)

	attached, err := o.engine.AttachEffect(ctx, &engine.AttachEffectInput{
		EffectID: input.EffectID,
		SourceID: input.CasterID,
		TargetID: input.TargetID,
		Choices:  input.Choices,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to attach effect")
	}

	return &CastEffectOutput{
		Applied:    attached.Applied,
		InstanceID: attached.InstanceID,
		Gates:      attached.Gates,
		Trace:      attached.Trace,
	}, nil
}

// AdvanceTime runs the round scheduler
func (o *orchestrator) AdvanceTime(ctx context.Context, input *AdvanceTimeInput) (*AdvanceTimeOutput, error) {
	if input == nil || input.Rounds < 1 {
		return nil, errors.InvalidArgument("rounds must be at least 1")
	}

	advanced, err := o.engine.Advance(ctx, &engine.AdvanceInput{Rounds: input.Rounds})
	if err != nil {
		return nil, errors.Wrap(err, "failed to advance time")
	}

	o.log.Info("time advanced",
		"round", advanced.Round,
		"expired", len(advanced.Expired))

	return &AdvanceTimeOutput{
		Round:   advanced.Round,
		Expired: advanced.Expired,
		Trace:   advanced.Trace,
	}, nil
}

// Explain derives a stat and returns the full stacking trace behind it
func (o *orchestrator) Explain(ctx context.Context, input *ExplainInput) (*ExplainOutput, error) {
	if input == nil || input.EntityID == "" || input.Path == "" {
		return nil, errors.InvalidArgument("entity id and path are required")
	}

	resolved, err := o.engine.ResolveStat(ctx, &engine.ResolveStatInput{
		EntityID: input.EntityID,
		Path:     input.Path,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve stat")
	}

	return &ExplainOutput{
		Value: resolved.Value,
		Trace: resolved.Trace,
	}, nil
}

func appendTrace(dst, src *engine.Trace) {
	if dst == nil || src == nil {
		return
	}
	dst.Entries = append(dst.Entries, src.Entries...)
}
