package rules

import (
	"context"
	"sort"

	"github.com/ThiagoRibas-dev/dnd-text-game/internal/content"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/engine"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/entities"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/errors"
)

// scheduledTask is a deferred operation list, due on a round
type scheduledTask struct {
	due int
	seq int

	sourceID    string
	targetID    string
	casterLevel int
	choices     map[string]float64

	ops []content.Operation
}

// scheduler owns the round counter and the deferred task queue
type scheduler struct {
	round int
	tasks []scheduledTask
}

func newScheduler() *scheduler {
	return &scheduler{}
}

func (s *scheduler) add(task scheduledTask) {
	s.tasks = append(s.tasks, task)
}

// due pops every task due on or before the round, in schedule order
func (s *scheduler) takeDue(round int) []scheduledTask {
	var ready []scheduledTask
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.due <= round {
			ready = append(ready, t)
		} else {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
	sort.Slice(ready, func(i, j int) bool { return ready[i].seq < ready[j].seq })
	return ready
}

// Advance moves game time forward round by round. Each round runs
// turn-start hooks, due scheduled tasks, duration ticks (suppressed
// instances tick too), turn-end hooks, and per-round resource
// refreshes. Instances whose duration reaches zero detach with their
// full revert semantics.
func (e *rulesEngine) Advance(ctx context.Context, input *engine.AdvanceInput) (*engine.AdvanceOutput, error) {
	if input == nil || input.Rounds < 1 {
		return nil, errors.InvalidArgument("rounds must be at least 1")
	}

	trace := engine.NewTrace()
	out := &engine.AdvanceOutput{Trace: trace}

	for i := 0; i < input.Rounds; i++ {
		e.sched.round++
		trace.Info("round %d", e.sched.round)

		for _, ent := range e.state.All() {
			e.runScheduledHooks(ctx, content.ScopeTurnStart, ent, trace)
		}

		for _, task := range e.sched.takeDue(e.sched.round) {
			target, ok := e.state.Get(task.targetID)
			if !ok {
				trace.Warn("scheduled target %s is gone, task dropped", task.targetID)
				continue
			}
			source := target
			if src, ok := e.state.Get(task.sourceID); ok {
				source = src
			}
			trace.Info("deferred operations fire on %s", target.Name)
			e.runOperations(ctx, task.ops, source, target, task.casterLevel, task.choices, 1.0, trace)
		}

		out.Expired = append(out.Expired, e.tickDurations(ctx, trace)...)

		for _, ent := range e.state.All() {
			e.runScheduledHooks(ctx, content.ScopeTurnEnd, ent, trace)
		}

		for _, pool := range e.allPoolsOrdered() {
			if pool.cadence == content.RefreshPerRound {
				e.refreshPool(pool, trace)
			}
		}
	}

	out.Round = e.sched.round
	e.log.Info("time advanced", "round", out.Round, "expired", len(out.Expired))
	return out, nil
}

// runScheduledHooks fires one entity's turn-boundary hooks. Zone-owned
// hooks only fire for current occupants; effect and condition hooks
// already filter to their own bearer.
func (e *rulesEngine) runScheduledHooks(ctx context.Context, scope content.HookScope, ent *entities.Entity, trace *engine.Trace) {
	for _, f := range e.hooks.dispatch(scope, hookEvent{subjectID: ent.ID}) {
		if zone, ok := e.zones[f.ownerID]; ok && !zone.contains(ent.Position) {
			continue
		}
		if f.action.Kind != content.ActionRunOperations {
			continue
		}

		source := ent
		casterLevel := 0
		switch {
		case e.instances[f.ownerID] != nil:
			inst := e.instances[f.ownerID]
			casterLevel = inst.casterLevel
			if src, ok := e.state.Get(inst.sourceID); ok {
				source = src
			}
		case e.zones[f.ownerID] != nil:
			zone := e.zones[f.ownerID]
			casterLevel = zone.casterLevel
			if src, ok := e.state.Get(zone.sourceID); ok {
				source = src
			}
		}

		e.runOperations(ctx, f.action.Operations, source, ent, casterLevel, nil, 1.0, trace)
	}
}

// tickDurations counts every timed instance down one round and detaches
// what expires. Suppression does not pause the clock.
func (e *rulesEngine) tickDurations(ctx context.Context, trace *engine.Trace) []string {
	var expired []string

	for _, inst := range e.allInstancesOrdered() {
		if inst.permanent {
			continue
		}
		inst.remainingRounds--
		if inst.remainingRounds <= 0 {
			trace.Info("%s expires", inst.name)
			e.detachInstance(ctx, inst.id, trace)
			expired = append(expired, inst.id)
		}
	}

	for _, cond := range e.allConditionsOrdered() {
		if cond.permanent {
			continue
		}
		cond.remainingRounds--
		if cond.remainingRounds <= 0 {
			trace.Info("%s expires", cond.name)
			e.removeConditionInstance(cond.id, trace)
			expired = append(expired, cond.id)
		}
	}

	for _, zone := range e.zonesOrdered() {
		if zone.permanent {
			continue
		}
		zone.remainingRounds--
		if zone.remainingRounds <= 0 {
			e.removeZone(zone.id, trace)
			expired = append(expired, zone.id)
		}
	}

	return expired
}

func (e *rulesEngine) allInstancesOrdered() []*effectInstance {
	out := make([]*effectInstance, 0, len(e.instances))
	for _, inst := range e.instances {
		out = append(out, inst)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}

func (e *rulesEngine) allConditionsOrdered() []*conditionInstance {
	out := make([]*conditionInstance, 0, len(e.conditions))
	for _, c := range e.conditions {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}
