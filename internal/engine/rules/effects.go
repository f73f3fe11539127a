package rules

import (
	"context"
	"sort"

	"github.com/ThiagoRibas-dev/dnd-text-game/internal/content"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/engine"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/errors"
)

// effectInstance is the runtime form of an effect blueprint on one
// target. It references its definition by id only; the definition is
// never pointed at, so content reloads cannot dangle.
type effectInstance struct {
	id    string
	defID string
	name  string

	abilityType    content.AbilityType
	casterLevel    int
	initiatorLevel int
	stacking       content.StackingPolicy

	sourceID string
	targetID string
	choices  map[string]float64

	// modifiers are owned by the instance; transform operations may
	// extend them after attach
	modifiers []content.Modifier
	dr        []content.DREntry
	onRemove  []content.Operation

	remainingRounds int
	permanent       bool

	manualSuppress  bool
	zoneSuppressors map[string]struct{}

	seq int
}

func (i *effectInstance) ownerID() string        { return i.id }
func (i *effectInstance) ownerName() string      { return i.name }
func (i *effectInstance) suppressedNow() bool    { return i.suppressed() }
func (i *effectInstance) protectsEntity() string { return i.targetID }

func (i *effectInstance) suppressed() bool {
	return i.manualSuppress || len(i.zoneSuppressors) > 0
}

// instancesFor returns an entity's effect instances in registration
// order
func (e *rulesEngine) instancesFor(entityID string) []*effectInstance {
	var out []*effectInstance
	for _, inst := range e.instances {
		if inst.targetID == entityID {
			out = append(out, inst)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}

// AttachEffect runs the effect's gates and, if admitted, creates the
// instance, registers its modifiers and hooks, and executes its
// on-attach operations.
func (e *rulesEngine) AttachEffect(ctx context.Context, input *engine.AttachEffectInput) (*engine.AttachEffectOutput, error) {
	if input == nil || input.EffectID == "" || input.TargetID == "" {
		return nil, errors.InvalidArgument("effect id and target id are required")
	}

	trace := engine.NewTrace()
	out := &engine.AttachEffectOutput{Trace: trace}

	def, err := e.repo.GetEffect(ctx, input.EffectID)
	if err != nil {
		return nil, err
	}

	target, err := e.entity(input.TargetID)
	if err != nil {
		return nil, err
	}

	source := target
	if input.SourceID != "" {
		if src, srcErr := e.entity(input.SourceID); srcErr == nil {
			source = src
		}
	}

	casterLevel := def.CasterLevel
	if casterLevel == 0 {
		casterLevel = source.Level()
	}

	trace.Info("attaching %s from %s to %s", def.Name, source.Name, target.Name)

	// immunity to the effect's tags refuses it outright
	for _, tag := range def.Tags {
		for _, im := range target.Immunities {
			if im == tag {
				trace.Info("%s is immune to %s effects", target.Name, tag)
				return out, nil
			}
		}
	}

	// SR gate: once per effect use regardless of what follows
	if def.Gates.SRApplies {
		applicable, res := e.resolveSRGate(target, casterLevel, def.AbilityType, trace)
		if applicable {
			out.Gates = append(out.Gates, res)
			if !res.Passed {
				trace.Gate(float64(res.Total), "spell resistance stops %s", def.Name)
				return out, nil
			}
		}
	}

	// incoming.effect hooks may refuse the attachment
	fired := e.hooks.dispatch(content.ScopeIncomingEffect, hookEvent{
		subjectID:   target.ID,
		tags:        def.Tags,
		abilityType: def.AbilityType,
	})
	for _, f := range fired {
		if f.action.Kind == content.ActionSetOutcome && f.action.Outcome == "negate" {
			trace.Gate(0, "%s negates %s", f.ownerName, def.Name)
			return out, nil
		}
	}

	// save gate
	damageScale := 1.0
	if def.Gates.Save != nil {
		res := e.resolveSaveGate(target, source, *def.Gates.Save, casterLevel, trace)
		out.Gates = append(out.Gates, res)
		if res.Passed {
			switch def.Gates.Save.Effect {
			case content.SaveNegates:
				trace.Gate(float64(res.Total), "save negates %s", def.Name)
				return out, nil
			case content.SaveHalf:
				damageScale = 0.5
			case content.SavePartial:
				damageScale = 0
			}
		}
	}

	// a non-stacking duplicate refreshes its duration to the longer of
	// the two instead of attaching twice
	env := e.evalEnv(source, casterLevel, source.Level(), input.Choices, false)
	rounds, permanent := e.durationRounds(def.Duration, env, trace)
	for _, existing := range e.instancesFor(target.ID) {
		if existing.defID != def.ID {
			continue
		}
		if !permanent && !existing.permanent && rounds > existing.remainingRounds {
			existing.remainingRounds = rounds
		}
		trace.Info("%s already active on %s, duration refreshed", def.Name, target.Name)
		out.InstanceID = existing.id
		out.Applied = true
		return out, nil
	}

	if def.Duration.Unit == content.DurationInstant {
		// instantaneous effects leave no instance behind
		e.runOperations(ctx, def.OnAttach, source, target, casterLevel, input.Choices, damageScale, trace)
		out.Applied = true
		return out, nil
	}

	inst := &effectInstance{
		id:              "eff_" + e.idgen.Generate(),
		defID:           def.ID,
		name:            def.Name,
		abilityType:     def.AbilityType,
		casterLevel:     casterLevel,
		initiatorLevel:  source.Level(),
		stacking:        def.Stacking,
		sourceID:        source.ID,
		targetID:        target.ID,
		choices:         input.Choices,
		modifiers:       append([]content.Modifier(nil), def.Modifiers...),
		dr:              append([]content.DREntry(nil), def.DR...),
		onRemove:        def.OnRemove,
		remainingRounds: rounds,
		permanent:       permanent,
		zoneSuppressors: make(map[string]struct{}),
		seq:             e.nextSeq(),
	}
	e.instances[inst.id] = inst
	e.hooks.register(inst, def.Hooks, e.nextSeq)

	e.runOperationsForInstance(ctx, inst, def.OnAttach, source, target, damageScale, trace)

	// entering play inside an antimagic zone suppresses immediately
	e.reevaluateZoneSuppression(trace)

	if permanent {
		trace.Info("%s attached to %s (no expiry)", def.Name, target.Name)
	} else {
		trace.Info("%s attached to %s for %d rounds", def.Name, target.Name, rounds)
	}
	e.log.Info("effect attached",
		"effect_id", def.ID,
		"instance_id", inst.id,
		"target", engine.EntityRef(target),
		"rounds", rounds,
	)

	out.InstanceID = inst.id
	out.Applied = true
	return out, nil
}

// DetachEffect removes an instance: modifiers and hooks go away, owned
// temp HP and pools are reclaimed, and on-remove operations run. One
// detach reverts everything the instance granted atomically. Detaching
// an unknown instance is a no-op.
func (e *rulesEngine) DetachEffect(ctx context.Context, input *engine.DetachEffectInput) (*engine.DetachEffectOutput, error) {
	if input == nil || input.InstanceID == "" {
		return nil, errors.InvalidArgument("instance id is required")
	}

	trace := engine.NewTrace()
	out := &engine.DetachEffectOutput{Trace: trace}

	if detached := e.detachInstance(ctx, input.InstanceID, trace); !detached {
		trace.Info("instance %s already detached", input.InstanceID)
		return out, nil
	}
	out.Detached = true
	return out, nil
}

func (e *rulesEngine) detachInstance(ctx context.Context, instanceID string, trace *engine.Trace) bool {
	inst, ok := e.instances[instanceID]
	if !ok {
		return false
	}

	delete(e.instances, instanceID)
	e.hooks.unregisterOwner(instanceID)

	// reclaim temp HP the instance granted
	if target, ok := e.state.Get(inst.targetID); ok {
		kept := target.TempHP[:0]
		for _, g := range target.TempHP {
			if g.InstanceID == instanceID {
				if g.Remaining > 0 {
					trace.Info("%s: %d temporary HP expire", inst.name, g.Remaining)
				}
				continue
			}
			kept = append(kept, g)
		}
		target.TempHP = kept
	}

	// destroy pools the instance created
	for key, pool := range e.pools {
		if pool.ownerInstance == instanceID {
			trace.Info("%s: pool %s dissolves with %d remaining", inst.name, pool.name, pool.current)
			delete(e.pools, key)
		}
	}

	if len(inst.onRemove) > 0 {
		source, _ := e.state.Get(inst.sourceID)
		if target, ok := e.state.Get(inst.targetID); ok {
			if source == nil {
				source = target
			}
			e.runOperations(ctx, inst.onRemove, source, target, inst.casterLevel, inst.choices, 1.0, trace)
		}
	}

	trace.Info("%s detached from %s", inst.name, inst.targetID)
	e.log.Info("effect detached", "instance_id", instanceID, "effect_id", inst.defID, "target_id", inst.targetID)
	return true
}

// SuppressInstance manually suppresses an instance: its modifiers and
// hooks stop contributing but its duration keeps ticking
func (e *rulesEngine) SuppressInstance(_ context.Context, input *engine.SuppressInstanceInput) (*engine.SuppressInstanceOutput, error) {
	if input == nil || input.InstanceID == "" {
		return nil, errors.InvalidArgument("instance id is required")
	}
	trace := engine.NewTrace()
	inst, ok := e.instances[input.InstanceID]
	if !ok {
		return nil, errors.NotFoundf("effect instance not found: %s", input.InstanceID)
	}
	inst.manualSuppress = true
	trace.Info("%s suppressed", inst.name)
	return &engine.SuppressInstanceOutput{Trace: trace}, nil
}

// UnsuppressInstance lifts a manual suppression; the same instance
// resumes, nothing re-attaches
func (e *rulesEngine) UnsuppressInstance(_ context.Context, input *engine.UnsuppressInstanceInput) (*engine.UnsuppressInstanceOutput, error) {
	if input == nil || input.InstanceID == "" {
		return nil, errors.InvalidArgument("instance id is required")
	}
	trace := engine.NewTrace()
	inst, ok := e.instances[input.InstanceID]
	if !ok {
		return nil, errors.NotFoundf("effect instance not found: %s", input.InstanceID)
	}
	inst.manualSuppress = false
	trace.Info("%s resumes", inst.name)
	return &engine.UnsuppressInstanceOutput{Trace: trace}, nil
}

// durationRounds snapshots a duration spec into rounds at attach time
func (e *rulesEngine) durationRounds(d content.DurationSpec, env map[string]any, trace *engine.Trace) (rounds int, permanent bool) {
	switch d.Unit {
	case content.DurationPermanent, content.DurationUntilRemoved:
		return 0, true
	case content.DurationInstant:
		return 0, false
	}

	amount, err := e.exprs.eval(d.Amount, env)
	if err != nil {
		trace.Warn("duration formula failed, defaulting to 1 round: %v", err)
		return 1, false
	}

	switch d.Unit {
	case content.DurationMinutes:
		rounds = int(amount) * 10
	case content.DurationHours:
		rounds = int(amount) * 600
	default:
		rounds = int(amount)
	}
	if rounds < 1 {
		rounds = 1
	}
	return rounds, false
}
