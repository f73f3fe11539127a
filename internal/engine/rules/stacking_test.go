package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ThiagoRibas-dev/dnd-text-game/internal/content"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/engine"
)

func TestResolveStack_NamedTypeKeepsHighest(t *testing.T) {
	contribs := []contribution{
		{op: content.OperatorAdd, bonusType: content.BonusEnhancement, value: 2, seq: 1, source: "bull's strength"},
		{op: content.OperatorAdd, bonusType: content.BonusEnhancement, value: 4, seq: 2, source: "belt of giant strength"},
	}

	got := resolveStack(10, contribs, engine.NewTrace())
	assert.Equal(t, 14.0, got, "only the +4 enhancement should survive")
}

func TestResolveStack_NamedTypeOneSurvivorOverSignedValues(t *testing.T) {
	contribs := []contribution{
		{op: content.OperatorAdd, bonusType: content.BonusEnhancement, value: 4, seq: 1, source: "bull's strength"},
		{op: content.OperatorSub, bonusType: content.BonusEnhancement, value: 2, seq: 2, source: "ray of enfeeblement"},
	}

	got := resolveStack(10, contribs, engine.NewTrace())
	assert.Equal(t, 14.0, got, "the +4 outranks the -2 within one type, nothing stacks under it")
}

func TestResolveStack_NamedTypeAllPenaltiesKeepsLeast(t *testing.T) {
	contribs := []contribution{
		{op: content.OperatorSub, bonusType: content.BonusMorale, value: 2, seq: 1, source: "crushing despair"},
		{op: content.OperatorSub, bonusType: content.BonusMorale, value: 1, seq: 2, source: "dirge"},
	}

	got := resolveStack(0, contribs, engine.NewTrace())
	assert.Equal(t, -1.0, got, "highest signed value wins, so only the -1 applies")
}

func TestResolveStack_DodgeAlwaysStacks(t *testing.T) {
	contribs := []contribution{
		{op: content.OperatorAdd, bonusType: content.BonusDodge, value: 1, seq: 1, source: "dodge feat"},
		{op: content.OperatorAdd, bonusType: content.BonusDodge, value: 1, seq: 2, source: "mobility stance"},
		{op: content.OperatorAdd, bonusType: content.BonusDodge, value: 2, seq: 3, source: "haste"},
	}

	got := resolveStack(10, contribs, engine.NewTrace())
	assert.Equal(t, 14.0, got)
}

func TestResolveStack_UntypedStacksAcrossSourceKeys(t *testing.T) {
	contribs := []contribution{
		{op: content.OperatorAdd, bonusType: content.BonusUntyped, sourceKey: "feat:weapon_focus", value: 1, seq: 1, source: "weapon focus"},
		{op: content.OperatorAdd, bonusType: content.BonusUntyped, sourceKey: "feat:greater_weapon_focus", value: 1, seq: 2, source: "greater weapon focus"},
		{op: content.OperatorAdd, bonusType: content.BonusUntyped, value: 2, seq: 3, source: "inspire courage"},
	}

	got := resolveStack(0, contribs, engine.NewTrace())
	assert.Equal(t, 4.0, got)
}

func TestResolveStack_SameSourceKeyKeepsHighest(t *testing.T) {
	contribs := []contribution{
		{op: content.OperatorAdd, sourceKey: "spell:magic_weapon", value: 1, seq: 1, source: "magic weapon"},
		{op: content.OperatorAdd, sourceKey: "spell:magic_weapon", value: 3, seq: 2, source: "greater magic weapon"},
	}

	got := resolveStack(0, contribs, engine.NewTrace())
	assert.Equal(t, 3.0, got)
}

func TestResolveStack_SameSourceKeyKeepsLatest(t *testing.T) {
	contribs := []contribution{
		{op: content.OperatorAdd, sourceKey: "stance", policy: content.StackingLatest, value: 5, seq: 1, source: "iron guard"},
		{op: content.OperatorAdd, sourceKey: "stance", policy: content.StackingLatest, value: 2, seq: 2, source: "blood in the water"},
	}

	got := resolveStack(0, contribs, engine.NewTrace())
	assert.Equal(t, 2.0, got, "latest registration wins even when smaller")
}

func TestResolveStack_SetAppliesBeforeAdditives(t *testing.T) {
	contribs := []contribution{
		{op: content.OperatorAdd, bonusType: content.BonusEnhancement, value: 4, seq: 1, source: "enhancement"},
		{op: content.OperatorSet, value: 13, seq: 2, source: "polymorph"},
	}

	got := resolveStack(18, contribs, engine.NewTrace())
	assert.Equal(t, 17.0, got, "set replaces the base, additives still land on top")
}

func TestResolveStack_SetConflictLastRegisteredWins(t *testing.T) {
	trace := engine.NewTrace()
	contribs := []contribution{
		{op: content.OperatorSet, value: 13, seq: 1, source: "polymorph"},
		{op: content.OperatorSet, value: 22, seq: 2, source: "shapechange"},
	}

	got := resolveStack(10, contribs, trace)
	assert.Equal(t, 22.0, got)
	assert.Equal(t, 1, trace.Count(engine.EntryWarning), "the conflict is surfaced in the trace")
}

func TestResolveStack_StageOrder(t *testing.T) {
	// (10 + 2) * 2 raised to floor 30, capped at 28
	contribs := []contribution{
		{op: content.OperatorCap, value: 28, seq: 1, source: "hard cap"},
		{op: content.OperatorMax, value: 30, seq: 2, source: "floor"},
		{op: content.OperatorMul, value: 2, seq: 3, source: "doubling"},
		{op: content.OperatorAdd, value: 2, seq: 4, source: "flat"},
	}

	got := resolveStack(10, contribs, engine.NewTrace())
	assert.Equal(t, 28.0, got, "additive, then multiply, then floor, then cap")
}

func TestResolveStack_DivByZeroSkipped(t *testing.T) {
	trace := engine.NewTrace()
	contribs := []contribution{
		{op: content.OperatorDiv, value: 0, seq: 1, source: "broken content"},
	}

	got := resolveStack(12, contribs, trace)
	assert.Equal(t, 12.0, got)
	assert.Equal(t, 1, trace.Count(engine.EntryWarning))
}

func TestResolveStack_MinLowersToCeiling(t *testing.T) {
	contribs := []contribution{
		{op: content.OperatorAdd, value: 20, seq: 1, source: "huge bonus"},
		{op: content.OperatorMin, value: 15, seq: 2, source: "ceiling"},
	}

	got := resolveStack(0, contribs, engine.NewTrace())
	assert.Equal(t, 15.0, got)
}
