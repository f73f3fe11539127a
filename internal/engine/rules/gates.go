package rules

import (
	"context"

	"github.com/ThiagoRibas-dev/dnd-text-game/internal/content"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/engine"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/entities"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/errors"
)

// resolveSRGate rolls caster level against the target's spell
// resistance. Not applicable when the target has none or the ability
// type is not subject to SR; the effect then applies unchecked.
func (e *rulesEngine) resolveSRGate(target *entities.Entity, casterLevel int, abilityType content.AbilityType, trace *engine.Trace) (bool, engine.GateResult) {
	if abilityType != content.AbilitySpell && abilityType != content.AbilitySpellLike {
		return false, engine.GateResult{}
	}

	sr := int(e.resolveStatValue(target, "sr", trace))
	if sr <= 0 {
		return false, engine.GateResult{}
	}

	roll := e.d20()
	total := roll + casterLevel
	passed := roll == 20 || total >= sr
	trace.Roll(roll, "caster level check: %d + %d = %d vs SR %d", roll, casterLevel, total, sr)

	res := engine.GateResult{
		Gate:    "sr",
		Natural: roll,
		Total:   total,
		Against: sr,
		Passed:  passed,
	}
	trace.Gate(float64(total), "spell resistance %s", passFail(passed, "penetrated", "holds"))
	return true, res
}

// resolveSaveGate rolls the declared save. A natural 1 always fails, a
// natural 20 always succeeds.
func (e *rulesEngine) resolveSaveGate(target, source *entities.Entity, save content.SaveConfig, casterLevel int, trace *engine.Trace) engine.GateResult {
	env := e.evalEnv(source, casterLevel, 0, nil, false)
	dc, err := e.exprs.eval(save.DC, env)
	if err != nil {
		trace.Warn("save DC formula failed, using 10: %v", err)
		dc = 10
	}

	// on.save.pre hooks may adjust the roll
	bonus := e.resolveStatValue(target, "saves."+string(save.Type), trace)
	for _, f := range e.hooks.dispatch(content.ScopeSavePre, hookEvent{subjectID: target.ID}) {
		if f.action.Kind != content.ActionModifyRoll {
			continue
		}
		if adj, aerr := e.exprs.eval(f.action.Bonus, e.evalEnv(target, 0, 0, nil, false)); aerr == nil {
			bonus += adj
			trace.Modifier(adj, "%s adjusts the save", f.ownerName)
		}
	}

	roll := e.d20()
	total := roll + int(bonus)
	passed := roll != 1 && (roll == 20 || total >= int(dc))
	trace.Roll(roll, "%s save: %d + %d = %d vs DC %d", save.Type, roll, int(bonus), total, int(dc))

	res := engine.GateResult{
		Gate:    "save",
		Natural: roll,
		Total:   total,
		Against: int(dc),
		Passed:  passed,
		Branch:  string(save.Effect),
	}
	trace.Gate(float64(total), "%s save %s", save.Type, passFail(passed, "succeeds", "fails"))

	e.hooks.dispatch(content.ScopeSavePost, hookEvent{subjectID: target.ID})
	return res
}

// ResolveSR exposes the SR gate at the engine boundary
func (e *rulesEngine) ResolveSR(_ context.Context, input *engine.ResolveSRInput) (*engine.ResolveSROutput, error) {
	if input == nil || input.TargetID == "" {
		return nil, errors.InvalidArgument("target id is required")
	}
	target, err := e.entity(input.TargetID)
	if err != nil {
		return nil, err
	}

	trace := engine.NewTrace()
	applicable, res := e.resolveSRGate(target, input.CasterLevel, input.AbilityType, trace)
	return &engine.ResolveSROutput{Applicable: applicable, Result: res, Trace: trace}, nil
}

// ResolveSave exposes the save gate at the engine boundary
func (e *rulesEngine) ResolveSave(_ context.Context, input *engine.ResolveSaveInput) (*engine.ResolveSaveOutput, error) {
	if input == nil || input.EntityID == "" {
		return nil, errors.InvalidArgument("entity id is required")
	}
	target, err := e.entity(input.EntityID)
	if err != nil {
		return nil, err
	}
	source := target
	if input.SourceID != "" {
		if src, srcErr := e.entity(input.SourceID); srcErr == nil {
			source = src
		}
	}

	trace := engine.NewTrace()
	res := e.resolveSaveGate(target, source, input.Save, source.Level(), trace)
	return &engine.ResolveSaveOutput{Result: res, Trace: trace}, nil
}

// ResolveAttack resolves one attack roll: miss chance first, then the
// d20 against the declared AC, then threat confirmation. A natural 1
// always misses; a natural 20 always hits and threatens; a natural 20
// on the confirmation roll always confirms.
func (e *rulesEngine) ResolveAttack(_ context.Context, input *engine.ResolveAttackInput) (*engine.ResolveAttackOutput, error) {
	if input == nil || input.AttackerID == "" || input.TargetID == "" {
		return nil, errors.InvalidArgument("attacker id and target id are required")
	}
	attacker, err := e.entity(input.AttackerID)
	if err != nil {
		return nil, err
	}
	target, err := e.entity(input.TargetID)
	if err != nil {
		return nil, err
	}

	trace := engine.NewTrace()
	out := &engine.ResolveAttackOutput{Multiplier: 1, Trace: trace}
	cfg := input.Attack

	// concealment is rolled before the attack roll can matter
	concealment := int(e.resolveStatValue(target, "concealment", trace))
	if concealment <= 0 && e.hasConditionTag(target.ID, "invisible") {
		concealment = 50
	}
	if concealment > 0 {
		roll := e.roll(100)
		missed := roll <= concealment
		trace.Roll(roll, "miss chance %d%%: rolled %d", concealment, roll)
		out.Results = append(out.Results, engine.GateResult{
			Gate:    "miss_chance",
			Natural: roll,
			Total:   roll,
			Against: concealment,
			Passed:  !missed,
		})
		if missed {
			trace.Gate(float64(roll), "attack lost to concealment")
			return out, nil
		}
	}

	bonus := e.attackBonus(attacker, cfg.Kind, trace)
	acType := cfg.AC
	if acType == "" {
		acType = content.ACNormal
	}
	if cfg.Kind == content.AttackTouch || cfg.Kind == content.AttackRay {
		acType = content.ACTouch
	}
	ac := e.resolveAC(target, acType, trace)

	// on.attack.pre hooks adjust the roll or force a miss
	forcedMiss := false
	for _, f := range e.hooks.dispatch(content.ScopeAttackPre, hookEvent{subjectID: attacker.ID, tags: cfg.Tags}) {
		switch f.action.Kind {
		case content.ActionModifyRoll:
			if adj, aerr := e.exprs.eval(f.action.Bonus, e.evalEnv(attacker, 0, 0, nil, false)); aerr == nil {
				bonus += int(adj)
				trace.Modifier(adj, "%s adjusts the attack", f.ownerName)
			}
		case content.ActionSetOutcome:
			if f.action.Outcome == "miss" {
				forcedMiss = true
				trace.Gate(0, "%s forces a miss", f.ownerName)
			}
		}
	}

	roll := e.d20()
	total := roll + bonus
	hit := !forcedMiss && roll != 1 && (roll == 20 || total >= ac)
	trace.Roll(roll, "attack roll: %d + %d = %d vs AC %d", roll, bonus, total, ac)

	out.Results = append(out.Results, engine.GateResult{
		Gate:    "attack",
		Natural: roll,
		Total:   total,
		Against: ac,
		Passed:  hit,
	})
	out.Hit = hit
	trace.Gate(float64(total), "attack %s", passFail(hit, "hits", "misses"))

	if !hit {
		return out, nil
	}

	threatMin := cfg.ThreatRangeMin
	if threatMin == 0 {
		threatMin = 20
	}
	if roll >= threatMin {
		out.Threat = true
		confirm := e.d20()
		confirmTotal := confirm + bonus
		confirmed := confirm == 20 || confirmTotal >= ac
		trace.Roll(confirm, "confirmation roll: %d + %d = %d vs AC %d", confirm, bonus, confirmTotal, ac)
		out.Results = append(out.Results, engine.GateResult{
			Gate:    "confirm",
			Natural: confirm,
			Total:   confirmTotal,
			Against: ac,
			Passed:  confirmed,
		})
		if confirmed {
			out.Critical = true
			out.Multiplier = cfg.CritMultiplier
			if out.Multiplier < 2 {
				out.Multiplier = 2
			}
			trace.Gate(float64(confirmTotal), "critical confirmed (x%d)", out.Multiplier)
		} else {
			trace.Gate(float64(confirmTotal), "critical not confirmed")
		}
	}

	e.hooks.dispatch(content.ScopeAttackPost, hookEvent{subjectID: attacker.ID, tags: cfg.Tags})
	return out, nil
}

func passFail(ok bool, pass, fail string) string {
	if ok {
		return pass
	}
	return fail
}
