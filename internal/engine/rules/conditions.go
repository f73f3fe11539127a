package rules

import (
	"context"
	"sort"

	"github.com/ThiagoRibas-dev/dnd-text-game/internal/content"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/engine"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/errors"
)

// conditionInstance is one applied status condition
type conditionInstance struct {
	id     string
	condID string
	name   string

	precedence int
	tags       []string
	implies    []string
	modifiers  []content.Modifier

	sourceID string
	targetID string

	remainingRounds int
	permanent       bool

	seq int
}

func (c *conditionInstance) ownerID() string        { return c.id }
func (c *conditionInstance) ownerName() string      { return c.name }
func (c *conditionInstance) suppressedNow() bool    { return false }
func (c *conditionInstance) protectsEntity() string { return c.targetID }

// conditionsFor returns an entity's conditions in registration order
func (e *rulesEngine) conditionsFor(entityID string) []*conditionInstance {
	var out []*conditionInstance
	for _, c := range e.conditions {
		if c.targetID == entityID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}

// hasConditionTag reports whether any active condition on the entity
// carries the tag (prone, invisible, ...)
func (e *rulesEngine) hasConditionTag(entityID, tag string) bool {
	for _, c := range e.conditionsFor(entityID) {
		for _, t := range c.tags {
			if t == tag {
				return true
			}
		}
	}
	return false
}

// ApplyCondition applies a status condition. A condition implied by a
// higher-precedence active condition is not separately applied;
// re-applying from the same source refreshes the duration to the longer
// of the two.
func (e *rulesEngine) ApplyCondition(ctx context.Context, input *engine.ApplyConditionInput) (*engine.ApplyConditionOutput, error) {
	if input == nil || input.ConditionID == "" || input.TargetID == "" {
		return nil, errors.InvalidArgument("condition id and target id are required")
	}

	trace := engine.NewTrace()
	out := &engine.ApplyConditionOutput{Trace: trace}

	def, err := e.repo.GetCondition(ctx, input.ConditionID)
	if err != nil {
		return nil, err
	}
	target, err := e.entity(input.TargetID)
	if err != nil {
		return nil, err
	}

	// subsumed by a higher-precedence condition already present
	for _, active := range e.conditionsFor(target.ID) {
		if active.precedence <= def.Precedence {
			continue
		}
		for _, implied := range active.implies {
			if implied == def.ID {
				trace.Info("%s already implied by %s, not applied", def.Name, active.name)
				return out, nil
			}
		}
	}

	duration := def.DefaultDuration
	if input.Duration != nil {
		duration = *input.Duration
	}
	env := e.evalEnv(target, 0, 0, nil, false)
	rounds, permanent := e.durationRounds(duration, env, trace)

	if !def.AllowMultiple {
		for _, active := range e.conditionsFor(target.ID) {
			if active.condID != def.ID || active.sourceID != input.SourceID {
				continue
			}
			if !permanent && !active.permanent && rounds > active.remainingRounds {
				active.remainingRounds = rounds
			}
			trace.Info("%s already on %s, duration refreshed", def.Name, target.Name)
			out.InstanceID = active.id
			return out, nil
		}
	}

	cond := &conditionInstance{
		id:              "cond_" + e.idgen.Generate(),
		condID:          def.ID,
		name:            def.Name,
		precedence:      def.Precedence,
		tags:            def.Tags,
		implies:         def.Implies,
		modifiers:       def.Modifiers,
		sourceID:        input.SourceID,
		targetID:        target.ID,
		remainingRounds: rounds,
		permanent:       permanent,
		seq:             e.nextSeq(),
	}
	e.conditions[cond.id] = cond
	e.hooks.register(cond, def.Hooks, e.nextSeq)

	trace.Info("%s applied to %s", def.Name, target.Name)
	e.log.Info("condition applied",
		"condition_id", def.ID,
		"instance_id", cond.id,
		"target", engine.EntityRef(target),
	)

	out.InstanceID = cond.id
	out.Applied = true
	return out, nil
}

// RemoveCondition removes instances of a condition from a target,
// optionally narrowed to one source
func (e *rulesEngine) RemoveCondition(_ context.Context, input *engine.RemoveConditionInput) (*engine.RemoveConditionOutput, error) {
	if input == nil || input.ConditionID == "" || input.TargetID == "" {
		return nil, errors.InvalidArgument("condition id and target id are required")
	}

	trace := engine.NewTrace()
	out := &engine.RemoveConditionOutput{Trace: trace}

	for _, cond := range e.conditionsFor(input.TargetID) {
		if cond.condID != input.ConditionID {
			continue
		}
		if input.SourceID != "" && cond.sourceID != input.SourceID {
			continue
		}
		e.removeConditionInstance(cond.id, trace)
		out.Removed++
	}
	if out.Removed == 0 {
		trace.Info("%s not present on %s", input.ConditionID, input.TargetID)
	}
	return out, nil
}

func (e *rulesEngine) removeConditionInstance(id string, trace *engine.Trace) {
	cond, ok := e.conditions[id]
	if !ok {
		return
	}
	delete(e.conditions, id)
	e.hooks.unregisterOwner(id)
	trace.Info("%s removed from %s", cond.name, cond.targetID)
	e.log.Info("condition removed", "condition_id", cond.condID, "instance_id", id, "target_id", cond.targetID)
}
