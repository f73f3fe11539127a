package rules

import (
	"context"

	"github.com/ThiagoRibas-dev/dnd-text-game/internal/content"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/engine"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/entities"
)

// opRun carries the execution context through one operation list,
// including nested save branches
type opRun struct {
	// inst is the effect instance executing the operations; nil for
	// instantaneous effects, zone triggers, and scheduled tasks
	inst *effectInstance

	source *entities.Entity
	target *entities.Entity

	casterLevel int
	choices     map[string]float64

	// damageScale is the save-gate outcome: 1, 0.5 on a passed half
	// save, 0 on a passed partial save (modifiers land, damage does not)
	damageScale float64

	// injured flips once a damage operation in this run deals physical
	// damage; requires_injury riders check it
	injured bool
}

func (e *rulesEngine) runOperations(ctx context.Context, ops []content.Operation, source, target *entities.Entity, casterLevel int, choices map[string]float64, damageScale float64, trace *engine.Trace) {
	run := &opRun{
		source:      source,
		target:      target,
		casterLevel: casterLevel,
		choices:     choices,
		damageScale: damageScale,
	}
	e.execOperations(ctx, ops, run, trace)
}

func (e *rulesEngine) runOperationsForInstance(ctx context.Context, inst *effectInstance, ops []content.Operation, source, target *entities.Entity, damageScale float64, trace *engine.Trace) {
	run := &opRun{
		inst:        inst,
		source:      source,
		target:      target,
		casterLevel: inst.casterLevel,
		choices:     inst.choices,
		damageScale: damageScale,
	}
	e.execOperations(ctx, ops, run, trace)
}

func (e *rulesEngine) execOperations(ctx context.Context, ops []content.Operation, run *opRun, trace *engine.Trace) {
	for _, op := range ops {
		if op.RequiresInjury && !run.injured {
			trace.Info("%s skipped, no injury dealt", op.Kind)
			continue
		}
		e.execOperation(ctx, op, run, trace)
	}
}

func (e *rulesEngine) execOperation(ctx context.Context, op content.Operation, run *opRun, trace *engine.Trace) {
	switch op.Kind {
	case content.OpDamage:
		e.opDamage(ctx, op.Damage, run, trace)
	case content.OpHeal:
		e.opHeal(op.Heal, run, trace)
	case content.OpConditionApply:
		out, err := e.ApplyCondition(ctx, &engine.ApplyConditionInput{
			ConditionID: op.Condition.ConditionID,
			SourceID:    run.source.ID,
			TargetID:    run.target.ID,
			Duration:    op.Condition.Duration,
		})
		if err != nil {
			trace.Warn("condition %s not applied: %v", op.Condition.ConditionID, err)
			return
		}
		mergeTrace(trace, out.Trace)
	case content.OpConditionRemove:
		out, err := e.RemoveCondition(ctx, &engine.RemoveConditionInput{
			TargetID:    run.target.ID,
			ConditionID: op.Condition.ConditionID,
		})
		if err != nil {
			trace.Warn("condition %s not removed: %v", op.Condition.ConditionID, err)
			return
		}
		mergeTrace(trace, out.Trace)
	case content.OpResourceCreate:
		owner := ""
		if run.inst != nil {
			owner = run.inst.id
		}
		if _, err := e.createPool(ctx, run.target, op.Resource.ResourceID, owner, run.casterLevel, trace); err != nil {
			trace.Warn("resource %s not created: %v", op.Resource.ResourceID, err)
		}
	case content.OpResourceSpend:
		e.opResourceSpend(op.Resource, run, trace)
	case content.OpResourceRestore:
		e.opResourceRestore(op.Resource, run, trace)
	case content.OpTempHP:
		e.opTempHP(op.TempHP, run, trace)
	case content.OpZoneCreate:
		out, err := e.CreateZone(ctx, &engine.CreateZoneInput{
			ZoneID:   op.Zone.ZoneID,
			SourceID: run.source.ID,
			Center:   run.target.Position,
		})
		if err != nil {
			trace.Warn("zone %s not created: %v", op.Zone.ZoneID, err)
			return
		}
		mergeTrace(trace, out.Trace)
		if op.Zone.Radius > 0 {
			if zone, ok := e.zones[out.InstanceID]; ok {
				zone.radius = op.Zone.Radius
			}
		}
	case content.OpSave:
		res := e.resolveSaveGate(run.target, run.source, op.Save.Save, run.casterLevel, trace)
		if res.Passed {
			e.execOperations(ctx, op.Save.OnSuccess, run, trace)
		} else {
			e.execOperations(ctx, op.Save.OnFail, run, trace)
		}
	case content.OpAttach:
		out, err := e.AttachEffect(ctx, &engine.AttachEffectInput{
			EffectID: op.Attach.EffectID,
			SourceID: run.source.ID,
			TargetID: run.target.ID,
			Choices:  run.choices,
		})
		if err != nil {
			trace.Warn("effect %s not attached: %v", op.Attach.EffectID, err)
			return
		}
		mergeTrace(trace, out.Trace)
	case content.OpDetach:
		for _, inst := range e.instancesFor(run.target.ID) {
			if inst.defID == op.Detach.EffectID {
				e.detachInstance(ctx, inst.id, trace)
			}
		}
	case content.OpMove:
		out, err := e.MoveEntity(ctx, &engine.MoveEntityInput{
			EntityID: run.target.ID,
			To:       entities.Position{X: op.Move.X, Y: op.Move.Y},
		})
		if err != nil {
			trace.Warn("move failed: %v", err)
			return
		}
		mergeTrace(trace, out.Trace)
	case content.OpTransform:
		if run.inst == nil {
			trace.Warn("transform outside a lasting effect has nothing to revert, skipped")
			return
		}
		run.inst.modifiers = append(run.inst.modifiers, op.Transform.Modifiers...)
		trace.Info("%s overlays %d stat replacements on %s", run.inst.name, len(op.Transform.Modifiers), run.target.Name)
	case content.OpDispel:
		e.opDispel(ctx, op.Dispel, run, trace)
	case content.OpSuppress:
		for _, inst := range e.instancesFor(run.target.ID) {
			if inst.defID != op.Suppress.EffectID {
				continue
			}
			inst.manualSuppress = !op.Suppress.Unsuppress
			if op.Suppress.Unsuppress {
				trace.Info("%s resumes", inst.name)
			} else {
				trace.Info("%s suppressed", inst.name)
			}
		}
	case content.OpSchedule:
		due := e.sched.round + op.Schedule.DelayRounds
		e.sched.add(scheduledTask{
			due:         due,
			seq:         e.nextSeq(),
			sourceID:    run.source.ID,
			targetID:    run.target.ID,
			casterLevel: run.casterLevel,
			choices:     run.choices,
			ops:         op.Schedule.Operations,
		})
		trace.Info("%d operations deferred to round %d", len(op.Schedule.Operations), due)
	default:
		trace.Warn("unknown operation kind %q skipped", op.Kind)
		e.log.Warn("unknown operation kind", "kind", op.Kind)
	}
}

func (e *rulesEngine) opDamage(ctx context.Context, op *content.DamageOp, run *opRun, trace *engine.Trace) {
	if run.damageScale == 0 {
		trace.Info("damage negated by the save")
		return
	}

	env := e.evalEnv(run.source, run.casterLevel, run.source.Level(), run.choices, false)
	var packets []engine.DamagePacket
	for _, spec := range op.Packets {
		amount, err := e.exprs.eval(spec.Amount, env)
		if err != nil {
			trace.Warn("damage formula failed for %s packet: %v", spec.Kind, err)
			continue
		}
		packets = append(packets, engine.DamagePacket{
			Amount: amount * run.damageScale,
			Kind:   spec.Kind,
			Tags:   spec.Tags,
		})
	}
	if len(packets) == 0 {
		return
	}

	out := e.applyPackets(ctx, run.source, run.target, packets, trace)
	if out.PhysicalApplied > 0 {
		run.injured = true
	}
}

func (e *rulesEngine) opHeal(op *content.HealOp, run *opRun, trace *engine.Trace) {
	env := e.evalEnv(run.source, run.casterLevel, run.source.Level(), run.choices, false)
	amount, err := e.exprs.eval(op.Amount, env)
	if err != nil {
		trace.Warn("heal formula failed: %v", err)
		return
	}

	healed := int(amount)
	if healed < 0 {
		healed = 0
	}
	if op.Nonlethal {
		run.target.Nonlethal -= healed
		if run.target.Nonlethal < 0 {
			run.target.Nonlethal = 0
		}
		trace.Info("%s recovers %d nonlethal, %d remain", run.target.Name, healed, run.target.Nonlethal)
		return
	}

	run.target.HPCurrent += healed
	if run.target.HPCurrent > run.target.HPMax {
		run.target.HPCurrent = run.target.HPMax
	}
	trace.Info("%s heals %d, now %d/%d", run.target.Name, healed, run.target.HPCurrent, run.target.HPMax)
}

func (e *rulesEngine) opResourceSpend(op *content.ResourceOp, run *opRun, trace *engine.Trace) {
	amount := 1
	if !op.Amount.IsZero() {
		env := e.evalEnv(run.target, run.casterLevel, 0, run.choices, false)
		v, err := e.exprs.eval(op.Amount, env)
		if err != nil {
			trace.Warn("spend formula failed for %s: %v", op.ResourceID, err)
			return
		}
		amount = int(v)
	}

	pool, ok := e.pools[poolKey(run.target.ID, op.ResourceID)]
	if !ok {
		trace.Warn("no %s pool on %s to spend", op.ResourceID, run.target.Name)
		return
	}
	if pool.current < amount {
		trace.Info("%s has %d, cannot spend %d", pool.name, pool.current, amount)
		return
	}
	pool.current -= amount
	trace.Info("%s spends %d, %d remain", pool.name, amount, pool.current)
}

func (e *rulesEngine) opResourceRestore(op *content.ResourceOp, run *opRun, trace *engine.Trace) {
	pool, ok := e.pools[poolKey(run.target.ID, op.ResourceID)]
	if !ok {
		trace.Warn("no %s pool on %s to restore", op.ResourceID, run.target.Name)
		return
	}

	if op.Amount.IsZero() {
		pool.current = pool.capacity
		trace.Info("%s restored to full (%d)", pool.name, pool.capacity)
		return
	}

	env := e.evalEnv(run.target, run.casterLevel, 0, run.choices, false)
	amount, err := e.exprs.eval(op.Amount, env)
	if err != nil {
		trace.Warn("restore formula failed for %s: %v", op.ResourceID, err)
		return
	}
	pool.current += int(amount)
	if pool.current > pool.capacity {
		pool.current = pool.capacity
	}
	trace.Info("%s restored to %d/%d", pool.name, pool.current, pool.capacity)
}

// opTempHP grants temporary hit points tied to the executing instance.
// Temp HP is a separate buffer; it never touches current or max HP.
func (e *rulesEngine) opTempHP(op *content.TempHPOp, run *opRun, trace *engine.Trace) {
	env := e.evalEnv(run.source, run.casterLevel, run.source.Level(), run.choices, false)
	amount, err := e.exprs.eval(op.Amount, env)
	if err != nil {
		trace.Warn("temp HP formula failed: %v", err)
		return
	}
	granted := int(amount)
	if granted <= 0 {
		return
	}

	instanceID := ""
	if run.inst != nil {
		instanceID = run.inst.id
	}
	run.target.TempHP = append(run.target.TempHP, entities.TempHPGrant{
		InstanceID: instanceID,
		Remaining:  granted,
	})
	trace.Info("%s gains %d temporary HP", run.target.Name, granted)
}

// opDispel rolls d20 + caster level against 11 + the instance's caster
// level, per eligible instance. Only magical instances are eligible.
func (e *rulesEngine) opDispel(ctx context.Context, op *content.DispelOp, run *opRun, trace *engine.Trace) {
	for _, inst := range e.instancesFor(run.target.ID) {
		if op.EffectID != "" {
			if inst.defID != op.EffectID {
				continue
			}
		} else if inst.abilityType != content.AbilitySpell {
			continue
		}

		roll := e.d20()
		total := roll + run.casterLevel
		dc := 11 + inst.casterLevel
		trace.Roll(roll, "dispel check vs %s: %d + %d = %d vs %d", inst.name, roll, run.casterLevel, total, dc)
		if total >= dc {
			trace.Info("%s dispelled", inst.name)
			e.detachInstance(ctx, inst.id, trace)
		} else {
			trace.Info("%s resists the dispel", inst.name)
		}
	}
}

func mergeTrace(dst, src *engine.Trace) {
	if dst == nil || src == nil {
		return
	}
	dst.Entries = append(dst.Entries, src.Entries...)
}
