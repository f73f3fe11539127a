package rules

import (
	"math"
	"sort"

	"github.com/ThiagoRibas-dev/dnd-text-game/internal/content"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/engine"
)

// contribution is one evaluated modifier touching a target path
type contribution struct {
	op        content.Operator
	bonusType content.BonusType
	sourceKey string
	policy    content.StackingPolicy
	value     float64
	// seq is the global registration order; the stage order tie-breaks
	// ("last registered wins", "latest") and mul/div ordering depend on it
	seq    int
	source string
}

// resolveStack computes the effective value of a path from its base and
// every active contribution, in the fixed stage order:
//
//  1. set/replace (last registered wins; multiples are a conflict warning)
//  2. additive partition by bonus type; named non-dodge types keep the
//     single highest signed contribution, dodge sums, untyped
//     stacks across distinct source keys and applies the declared policy
//     within one. The bonus-type filter runs first, then the source-key
//     filter within its survivors.
//  3. sum survivors into the base
//  4. mul/div in registration order
//  5. min/max clamps
//  6. cap/clamp final hard bound
//
// The order is load-bearing; reordering stages changes outcomes.
func resolveStack(base float64, contribs []contribution, trace *engine.Trace) float64 {
	sort.SliceStable(contribs, func(i, j int) bool { return contribs[i].seq < contribs[j].seq })

	value := base

	// stage 1: set/replace
	var sets []contribution
	for _, c := range contribs {
		if c.op == content.OperatorSet || c.op == content.OperatorReplace {
			sets = append(sets, c)
		}
	}
	if len(sets) > 0 {
		if len(sets) > 1 {
			trace.Warn("stacking conflict: %d set/replace modifiers on one path, last registered wins", len(sets))
		}
		winner := sets[len(sets)-1]
		value = winner.value
		trace.Stacking(winner.value, "%s sets value", winner.source)
	}

	// stage 2: additive partition
	additive := make([]contribution, 0, len(contribs))
	for _, c := range contribs {
		switch c.op {
		case content.OperatorAdd:
			additive = append(additive, c)
		case content.OperatorSub:
			c.value = -c.value
			additive = append(additive, c)
		}
	}
	value += sumAdditive(additive, trace)

	// stage 4: mul/div in registration order
	for _, c := range contribs {
		switch c.op {
		case content.OperatorMul:
			value *= c.value
			trace.Stacking(c.value, "%s multiplies", c.source)
		case content.OperatorDiv:
			if c.value == 0 {
				trace.Warn("%s divides by zero, skipped", c.source)
				continue
			}
			value /= c.value
			trace.Stacking(c.value, "%s divides", c.source)
		}
	}

	// stage 5: min/max clamps
	for _, c := range contribs {
		switch c.op {
		case content.OperatorMax:
			if value < c.value {
				trace.Stacking(c.value, "%s raises to floor", c.source)
				value = c.value
			}
		case content.OperatorMin:
			if value > c.value {
				trace.Stacking(c.value, "%s lowers to ceiling", c.source)
				value = c.value
			}
		}
	}

	// stage 6: cap/clamp final bound
	for _, c := range contribs {
		switch c.op {
		case content.OperatorCap:
			if value > c.value {
				trace.Stacking(c.value, "%s caps value", c.source)
				value = c.value
			}
		case content.OperatorClamp:
			clamped := math.Min(math.Max(value, 0), c.value)
			if clamped != value {
				trace.Stacking(c.value, "%s clamps value", c.source)
				value = clamped
			}
		}
	}

	return value
}

// sumAdditive applies the bonus-type filter, then the source-key filter
// within the survivors, and sums what remains
func sumAdditive(additive []contribution, trace *engine.Trace) float64 {
	byType := make(map[content.BonusType][]contribution)
	var typeOrder []content.BonusType
	for _, c := range additive {
		if _, ok := byType[c.bonusType]; !ok {
			typeOrder = append(typeOrder, c.bonusType)
		}
		byType[c.bonusType] = append(byType[c.bonusType], c)
	}

	total := 0.0
	for _, bt := range typeOrder {
		group := byType[bt]
		var survivors []contribution

		switch {
		case bt == content.BonusDodge || bt == content.BonusUntyped:
			// dodge always stacks; untyped stacks across source keys
			survivors = group
		default:
			// named non-stacking: one survivor per type, the highest
			// signed value, so a penalty only lands when no bonus of
			// the same type exceeds it
			bestIdx := 0
			for i, c := range group {
				if c.value > group[bestIdx].value {
					bestIdx = i
				}
			}
			for i, c := range group {
				if i != bestIdx {
					trace.Stacking(c.value, "%s dropped: %s bonus does not stack", c.source, bt)
				}
			}
			survivors = append(survivors, group[bestIdx])
		}

		total += filterSourceKeys(survivors, trace)
	}
	return total
}

// filterSourceKeys keeps one contribution per repeated source key, by
// the declared policy (highest by default, latest when the effect says
// no_stack_latest), and sums the result. A missing source key never
// collides.
func filterSourceKeys(survivors []contribution, trace *engine.Trace) float64 {
	byKey := make(map[string][]contribution)
	var keyOrder []string
	var noKey []contribution
	for _, c := range survivors {
		if c.sourceKey == "" {
			noKey = append(noKey, c)
			continue
		}
		if _, ok := byKey[c.sourceKey]; !ok {
			keyOrder = append(keyOrder, c.sourceKey)
		}
		byKey[c.sourceKey] = append(byKey[c.sourceKey], c)
	}

	total := 0.0
	for _, c := range noKey {
		total += c.value
		trace.Stacking(c.value, "%s applies", c.source)
	}
	for _, key := range keyOrder {
		group := byKey[key]
		winner := group[0]
		for _, c := range group[1:] {
			latest := c.policy == content.StackingLatest || winner.policy == content.StackingLatest
			if latest {
				if c.seq > winner.seq {
					trace.Stacking(winner.value, "%s dropped: source key %q keeps latest", winner.source, key)
					winner = c
				} else {
					trace.Stacking(c.value, "%s dropped: source key %q keeps latest", c.source, key)
				}
				continue
			}
			if c.value > winner.value {
				trace.Stacking(winner.value, "%s dropped: source key %q keeps highest", winner.source, key)
				winner = c
			} else {
				trace.Stacking(c.value, "%s dropped: source key %q keeps highest", c.source, key)
			}
		}
		total += winner.value
		trace.Stacking(winner.value, "%s applies", winner.source)
	}
	return total
}
