package rules

import (
	"context"
	"math"

	"github.com/ThiagoRibas-dev/dnd-text-game/internal/content"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/engine"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/entities"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/errors"
)

// KindNonlethal damage accumulates on its own counter instead of
// reducing hit points
const KindNonlethal = "nonlethal"

var physicalKinds = map[string]bool{
	"slashing":    true,
	"piercing":    true,
	"bludgeoning": true,
}

func isPhysical(kind string) bool {
	return physicalKinds[kind]
}

// absorbs reports whether an absorption kind list covers a packet kind
func absorbs(kinds []string, kind string) bool {
	for _, k := range kinds {
		switch {
		case k == "any":
			return true
		case k == "physical" && isPhysical(kind):
			return true
		case k == kind:
			return true
		}
	}
	return false
}

// packetMatches narrows a fired hook action to individual packets; the
// dispatch only matched against the aggregate event
func packetMatches(m content.HookMatch, p engine.DamagePacket) bool {
	if len(m.DamageKinds) > 0 {
		found := false
		for _, k := range m.DamageKinds {
			if k == p.Kind {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if len(m.Tags) > 0 && !overlaps(m.Tags, p.Tags) {
		return false
	}
	return true
}

// ApplyDamage runs the fixed damage pipeline: immunity, hook
// conversion, resistance, DR, ablative pools, vulnerability, apply,
// post hooks. DR is subtracted once from the summed physical total of
// the whole delivery, not per packet.
func (e *rulesEngine) ApplyDamage(ctx context.Context, input *engine.ApplyDamageInput) (*engine.ApplyDamageOutput, error) {
	if input == nil || input.TargetID == "" {
		return nil, errors.InvalidArgument("target id is required")
	}
	if len(input.Packets) == 0 {
		return nil, errors.InvalidArgument("at least one damage packet is required")
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

	trace := engine.NewTrace()
	return e.applyPacketsDepth(ctx, source, target, input.Packets, trace, 0), nil
}

func (e *rulesEngine) applyPackets(ctx context.Context, source, target *entities.Entity, packets []engine.DamagePacket, trace *engine.Trace) *engine.ApplyDamageOutput {
	return e.applyPacketsDepth(ctx, source, target, packets, trace, 0)
}

func (e *rulesEngine) applyPacketsDepth(ctx context.Context, source, target *entities.Entity, packets []engine.DamagePacket, trace *engine.Trace, depth int) *engine.ApplyDamageOutput {
	out := &engine.ApplyDamageOutput{Trace: trace}

	work := make([]engine.DamagePacket, len(packets))
	copy(work, packets)

	var kinds, tags []string
	for _, p := range work {
		kinds = append(kinds, p.Kind)
		tags = append(tags, p.Tags...)
	}

	remaining := func() float64 {
		total := 0.0
		for _, p := range work {
			total += p.Amount
		}
		return total
	}
	record := func(stage, detail string) {
		out.Stages = append(out.Stages, engine.DamageStage{Stage: stage, Detail: detail, Remaining: remaining()})
	}

	// stage 1: immunity negates matching packets entirely
	kept := work[:0]
	for _, p := range work {
		if e.resolveStatValue(target, "immunity."+p.Kind, trace) > 0 {
			trace.Damage(p.Amount, "%s is immune to %s, %.0f negated", target.Name, p.Kind, p.Amount)
			continue
		}
		kept = append(kept, p)
	}
	work = kept
	record("immunity", "")

	// one dispatch feeds the hook-driven stages: conversion and caps
	// now, pool routing during absorption, reflection after apply
	fired := e.hooks.dispatch(content.ScopeIncomingDamage, hookEvent{
		subjectID:   target.ID,
		damageKinds: kinds,
		tags:        tags,
	})
	hookEnv := e.evalEnv(target, 0, 0, nil, false)

	// stage 2: type conversion, applied once before resistance math
	for _, f := range fired {
		switch f.action.Kind {
		case content.ActionConvert:
			for i := range work {
				if !packetMatches(f.match, work[i]) {
					continue
				}
				trace.Damage(work[i].Amount, "%s converts %s to %s", f.ownerName, work[i].Kind, f.action.ConvertTo)
				work[i].Kind = f.action.ConvertTo
			}
		case content.ActionMultiply:
			factor, err := e.exprs.eval(f.action.Factor, hookEnv)
			if err != nil {
				trace.Warn("%s: multiply factor failed: %v", f.ownerName, err)
				continue
			}
			for i := range work {
				if packetMatches(f.match, work[i]) {
					work[i].Amount *= factor
					trace.Damage(work[i].Amount, "%s multiplies %s damage by %.2g", f.ownerName, work[i].Kind, factor)
				}
			}
		case content.ActionCap:
			limit, err := e.exprs.eval(f.action.Limit, hookEnv)
			if err != nil {
				trace.Warn("%s: cap limit failed: %v", f.ownerName, err)
				continue
			}
			for i := range work {
				if packetMatches(f.match, work[i]) && work[i].Amount > limit {
					trace.Damage(limit, "%s caps %s damage at %.0f", f.ownerName, work[i].Kind, limit)
					work[i].Amount = limit
				}
			}
		}
	}
	record("conversion", "")

	// stage 3a: energy resistance, per packet
	for i := range work {
		if isPhysical(work[i].Kind) || work[i].Kind == KindNonlethal {
			continue
		}
		resist := e.resolveStatValue(target, "resist."+work[i].Kind, trace)
		if resist <= 0 {
			continue
		}
		absorbed := math.Min(resist, work[i].Amount)
		work[i].Amount -= absorbed
		trace.Damage(absorbed, "resist %s %d absorbs %.0f", work[i].Kind, int(resist), absorbed)
	}
	record("resistance", "")

	// stage 3b: DR, once against the summed physical total
	if dr := e.bestDR(target, tags, work); dr > 0 {
		left := float64(dr)
		for i := range work {
			if !isPhysical(work[i].Kind) || left <= 0 {
				continue
			}
			cut := math.Min(left, work[i].Amount)
			work[i].Amount -= cut
			left -= cut
		}
		trace.Damage(float64(dr), "DR %d reduces the physical total", dr)
	}
	record("dr", "")

	// stage 3c: ablative pools in drain order, honoring per-hit caps
	for _, pool := range e.absorbingPools(target.ID) {
		drained := e.drainPool(pool, work, pool.absorption.Kinds, trace)
		out.PoolAbsorbed += drained
	}
	for _, f := range fired {
		if f.action.Kind != content.ActionAbsorbIntoPool {
			continue
		}
		pool, ok := e.pools[poolKey(target.ID, f.action.PoolID)]
		if !ok || pool.current <= 0 {
			continue
		}
		absorbKinds := f.match.DamageKinds
		if len(absorbKinds) == 0 {
			absorbKinds = []string{"any"}
		}
		out.PoolAbsorbed += e.drainPool(pool, work, absorbKinds, trace)
	}
	record("pools", "")

	// stage 4: vulnerability multiplies what remains of a matching kind
	for i := range work {
		if work[i].Amount <= 0 {
			continue
		}
		if e.resolveStatValue(target, "vulnerability."+work[i].Kind, trace) > 0 {
			work[i].Amount *= 1.5
			trace.Damage(work[i].Amount, "%s is vulnerable to %s, half again", target.Name, work[i].Kind)
		}
	}
	record("vulnerability", "")

	// stage 5: apply. Temporary HP is consumed before real HP;
	// nonlethal accumulates on its own counter. Final amounts floor at
	// zero, damage never heals.
	lethal := 0.0
	physical := 0.0
	nonlethal := 0.0
	for _, p := range work {
		if p.Amount <= 0 {
			continue
		}
		if p.Kind == KindNonlethal {
			nonlethal += p.Amount
			continue
		}
		lethal += p.Amount
		if isPhysical(p.Kind) {
			physical += p.Amount
		}
	}

	out.NonlethalApplied = int(math.Floor(nonlethal))
	target.Nonlethal += out.NonlethalApplied

	toApply := int(math.Floor(lethal))
	out.PhysicalApplied = int(math.Floor(physical))

	keptGrants := target.TempHP[:0]
	for _, g := range target.TempHP {
		if toApply > 0 && g.Remaining > 0 {
			used := g.Remaining
			if used > toApply {
				used = toApply
			}
			g.Remaining -= used
			toApply -= used
			out.TempHPAbsorbed += used
			trace.Damage(float64(used), "temporary HP absorbs %d", used)
		}
		if g.Remaining > 0 {
			keptGrants = append(keptGrants, g)
		}
	}
	target.TempHP = keptGrants

	if toApply > 0 {
		target.HPCurrent -= toApply
		trace.Damage(float64(toApply), "%s takes %d, now %d/%d", target.Name, toApply, target.HPCurrent, target.HPMax)
	}
	out.TotalApplied = toApply + out.TempHPAbsorbed
	record("apply", "")

	if out.NonlethalApplied > 0 {
		trace.Damage(nonlethal, "%s takes %d nonlethal, %d accumulated", target.Name, out.NonlethalApplied, target.Nonlethal)
	}

	// stage 7: post hooks, reactive effects like fire shield. Reflected
	// damage runs the pipeline on the attacker but never re-reflects.
	if depth == 0 && out.TotalApplied > 0 && source != nil && source.ID != target.ID {
		for _, f := range fired {
			if f.action.Kind != content.ActionReflect {
				continue
			}
			factor, err := e.exprs.eval(f.action.Factor, hookEnv)
			if err != nil {
				trace.Warn("%s: reflect factor failed: %v", f.ownerName, err)
				continue
			}
			back := math.Floor(float64(out.TotalApplied) * factor)
			if back <= 0 {
				continue
			}
			kind := f.action.ConvertTo
			if kind == "" && len(packets) > 0 {
				kind = packets[0].Kind
			}
			trace.Damage(back, "%s reflects %.0f %s back at %s", f.ownerName, back, kind, source.Name)
			e.applyPacketsDepth(ctx, target, source, []engine.DamagePacket{{Amount: back, Kind: kind}}, trace, depth+1)
		}
		for _, f := range fired {
			if f.action.Kind == content.ActionRunOperations {
				e.runOperations(ctx, f.action.Operations, target, source, target.Level(), nil, 1.0, trace)
			}
		}
	}

	e.log.Info("damage applied",
		"target", engine.EntityRef(target),
		"total", out.TotalApplied,
		"physical", out.PhysicalApplied,
		"temp_hp", out.TempHPAbsorbed,
	)
	return out
}

// bestDR picks the single strongest damage reduction the attack does
// not bypass. Entity-innate entries and entries granted by active,
// non-suppressed instances compete; only the winner applies.
func (e *rulesEngine) bestDR(target *entities.Entity, attackTags []string, work []engine.DamagePacket) int {
	hasPhysical := false
	bypass := append([]string(nil), attackTags...)
	for _, p := range work {
		if isPhysical(p.Kind) && p.Amount > 0 {
			hasPhysical = true
			bypass = append(bypass, p.Kind)
		}
	}
	if !hasPhysical {
		return 0
	}

	entries := append([]content.DREntry(nil), target.DR...)
	for _, inst := range e.instancesFor(target.ID) {
		if !inst.suppressed() {
			entries = append(entries, inst.dr...)
		}
	}

	best := 0
	for _, entry := range entries {
		if overlaps(entry.BypassTags, bypass) {
			continue
		}
		if entry.Amount > best {
			best = entry.Amount
		}
	}
	return best
}

// drainPool absorbs matching packet damage into an ablative pool, up to
// its per-hit cap and current value, mutating the packets in place
func (e *rulesEngine) drainPool(pool *resourcePool, work []engine.DamagePacket, kinds []string, trace *engine.Trace) int {
	budget := pool.current
	if pool.absorption != nil && pool.absorption.PerHitCap > 0 && pool.absorption.PerHitCap < budget {
		budget = pool.absorption.PerHitCap
	}

	drained := 0
	for i := range work {
		if budget <= 0 {
			break
		}
		if work[i].Amount <= 0 || !absorbs(kinds, work[i].Kind) {
			continue
		}
		take := math.Min(float64(budget), work[i].Amount)
		work[i].Amount -= take
		budget -= int(math.Ceil(take))
		drained += int(math.Ceil(take))
	}
	if drained > 0 {
		if drained > pool.current {
			drained = pool.current
		}
		pool.current -= drained
		trace.Damage(float64(drained), "%s absorbs %d, %d remain", pool.name, drained, pool.current)
	}
	return drained
}
