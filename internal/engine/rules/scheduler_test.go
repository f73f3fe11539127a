package rules

import (
	"strings"

	"github.com/ThiagoRibas-dev/dnd-text-game/internal/content"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/engine"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/entities"
)

func (s *RulesSuite) advance(eng engine.Engine, rounds int) *engine.AdvanceOutput {
	out, err := eng.Advance(s.ctx, &engine.AdvanceInput{Rounds: rounds})
	s.Require().NoError(err)
	return out
}

func (s *RulesSuite) TestDurationExpiryRevertsModifiers() {
	fighter := s.addFighter()
	s.Require().NoError(s.repo.PutEffect(s.ctx, &content.EffectDefinition{
		ID:          "bulls_strength",
		Name:        "Bull's Strength",
		AbilityType: content.AbilitySpell,
		Duration:    content.DurationSpec{Unit: content.DurationRounds, Amount: content.Lit(2)},
		Modifiers: []content.Modifier{
			{TargetPath: "abilities.str.score", Operator: content.OperatorAdd, Value: content.Lit(4), BonusType: "enhancement"},
		},
	}))
	eng := s.newEngine()

	attach, err := eng.AttachEffect(s.ctx, &engine.AttachEffectInput{EffectID: "bulls_strength", SourceID: fighter.ID, TargetID: fighter.ID})
	s.Require().NoError(err)
	s.Equal(22.0, s.resolveStat(eng, fighter.ID, "abilities.str.score"))

	out := s.advance(eng, 1)
	s.Empty(out.Expired)
	s.Equal(22.0, s.resolveStat(eng, fighter.ID, "abilities.str.score"))

	out = s.advance(eng, 1)
	s.Equal([]string{attach.InstanceID}, out.Expired)
	s.Equal(18.0, s.resolveStat(eng, fighter.ID, "abilities.str.score"))
}

func (s *RulesSuite) TestConditionDurationExpires() {
	fighter := s.addFighter()
	s.Require().NoError(s.repo.PutCondition(s.ctx, &content.ConditionDefinition{
		ID: "dazed", Name: "Dazed", Precedence: 5,
		DefaultDuration: content.DurationSpec{Unit: content.DurationRounds, Amount: content.Lit(1)},
	}))
	eng := s.newEngine()

	_, err := eng.ApplyCondition(s.ctx, &engine.ApplyConditionInput{ConditionID: "dazed", SourceID: fighter.ID, TargetID: fighter.ID})
	s.Require().NoError(err)

	s.advance(eng, 1)

	removed, err := eng.RemoveCondition(s.ctx, &engine.RemoveConditionInput{ConditionID: "dazed", TargetID: fighter.ID})
	s.Require().NoError(err)
	s.Equal(0, removed.Removed, "the round already took it")
}

func (s *RulesSuite) putAntimagicField() {
	s.Require().NoError(s.repo.PutZone(s.ctx, &content.ZoneDefinition{
		ID:          "antimagic_field",
		Name:        "Antimagic Field",
		AbilityType: content.AbilitySpell,
		Duration:    content.DurationSpec{Unit: content.DurationPermanent},
		Radius:      2,
		Suppresses:  []content.AbilityType{content.AbilitySpell, content.AbilitySupernatural, content.AbilitySpellLike},
	}))
}

func (s *RulesSuite) TestAntimagicSuppressesAndReleasesOnExit() {
	fighter := s.addFighter()
	s.putBullsStrength()
	s.putAntimagicField()
	eng := s.newEngine()

	_, err := eng.AttachEffect(s.ctx, &engine.AttachEffectInput{EffectID: "bulls_strength", SourceID: fighter.ID, TargetID: fighter.ID})
	s.Require().NoError(err)
	s.Equal(22.0, s.resolveStat(eng, fighter.ID, "abilities.str.score"))

	_, err = eng.CreateZone(s.ctx, &engine.CreateZoneInput{ZoneID: "antimagic_field", Center: fighter.Position})
	s.Require().NoError(err)
	s.Equal(18.0, s.resolveStat(eng, fighter.ID, "abilities.str.score"))

	moved, err := eng.MoveEntity(s.ctx, &engine.MoveEntityInput{EntityID: fighter.ID, To: entities.Position{X: 5, Y: 5}})
	s.Require().NoError(err)
	s.True(moved.Moved)
	s.Equal(22.0, s.resolveStat(eng, fighter.ID, "abilities.str.score"), "the same instance resumes, nothing re-attaches")
}

func (s *RulesSuite) TestAntimagicSuppressionTraceFollowsAttachOrder() {
	fighter := s.addFighter()
	s.putBullsStrength()
	s.putAntimagicField()
	s.Require().NoError(s.repo.PutEffect(s.ctx, &content.EffectDefinition{
		ID:          "cats_grace",
		Name:        "Cat's Grace",
		AbilityType: content.AbilitySpell,
		Duration:    content.DurationSpec{Unit: content.DurationMinutes, Amount: content.Expr("caster_level")},
		Modifiers: []content.Modifier{
			{TargetPath: "abilities.dex.score", Operator: content.OperatorAdd, BonusType: content.BonusEnhancement, Value: content.Lit(4)},
		},
	}))
	eng := s.newEngine()

	_, err := eng.AttachEffect(s.ctx, &engine.AttachEffectInput{EffectID: "bulls_strength", SourceID: fighter.ID, TargetID: fighter.ID})
	s.Require().NoError(err)
	_, err = eng.AttachEffect(s.ctx, &engine.AttachEffectInput{EffectID: "cats_grace", SourceID: fighter.ID, TargetID: fighter.ID})
	s.Require().NoError(err)

	zone, err := eng.CreateZone(s.ctx, &engine.CreateZoneInput{ZoneID: "antimagic_field", Center: fighter.Position})
	s.Require().NoError(err)

	var suppressed []string
	for _, entry := range zone.Trace.Entries {
		if strings.Contains(entry.Message, "suppressed by") {
			suppressed = append(suppressed, entry.Message)
		}
	}
	s.Equal([]string{
		"Bull's Strength suppressed by Antimagic Field",
		"Cat's Grace suppressed by Antimagic Field",
	}, suppressed, "suppression entries follow attach order")
}

func (s *RulesSuite) TestSuppressedDurationsStillTick() {
	fighter := s.addFighter()
	s.putAntimagicField()
	s.Require().NoError(s.repo.PutEffect(s.ctx, &content.EffectDefinition{
		ID:          "bulls_strength",
		Name:        "Bull's Strength",
		AbilityType: content.AbilitySpell,
		Duration:    content.DurationSpec{Unit: content.DurationRounds, Amount: content.Lit(2)},
		Modifiers: []content.Modifier{
			{TargetPath: "abilities.str.score", Operator: content.OperatorAdd, Value: content.Lit(4), BonusType: "enhancement"},
		},
	}))
	eng := s.newEngine()

	attach, err := eng.AttachEffect(s.ctx, &engine.AttachEffectInput{EffectID: "bulls_strength", SourceID: fighter.ID, TargetID: fighter.ID})
	s.Require().NoError(err)
	_, err = eng.CreateZone(s.ctx, &engine.CreateZoneInput{ZoneID: "antimagic_field", Center: fighter.Position})
	s.Require().NoError(err)

	out := s.advance(eng, 2)
	s.Contains(out.Expired, attach.InstanceID)

	// stepping out now changes nothing; the spell ran out while held down
	_, err = eng.MoveEntity(s.ctx, &engine.MoveEntityInput{EntityID: fighter.ID, To: entities.Position{X: 5, Y: 5}})
	s.Require().NoError(err)
	s.Equal(18.0, s.resolveStat(eng, fighter.ID, "abilities.str.score"))
}

func (s *RulesSuite) putProne() {
	s.Require().NoError(s.repo.PutCondition(s.ctx, &content.ConditionDefinition{
		ID: "prone", Name: "Prone", Precedence: 4,
		DefaultDuration: content.DurationSpec{Unit: content.DurationRounds, Amount: content.Lit(10)},
	}))
}

func (s *RulesSuite) putGrease() {
	s.Require().NoError(s.repo.PutZone(s.ctx, &content.ZoneDefinition{
		ID:          "grease",
		Name:        "Grease",
		AbilityType: content.AbilitySpell,
		Duration:    content.DurationSpec{Unit: content.DurationRounds, Amount: content.Lit(3)},
		MoveThrough: &content.MoveThroughConfig{
			Skill: "balance",
			DC:    content.Lit(10),
			OnFail: []content.Operation{
				{Kind: content.OpConditionApply, Condition: &content.ConditionOp{ConditionID: "prone"}},
			},
		},
		Hooks: []content.RuleHook{
			{Scope: content.ScopeTurnEnd, Actions: []content.HookAction{
				{Kind: content.ActionRunOperations, Operations: []content.Operation{
					{Kind: content.OpSave, Save: &content.SaveOp{
						Save: content.SaveConfig{Type: content.SaveReflex, DC: content.Lit(10), Effect: content.SaveNone},
						OnFail: []content.Operation{
							{Kind: content.OpConditionApply, Condition: &content.ConditionOp{ConditionID: "prone"}},
						},
					}},
				}},
			}},
		},
	}))
}

func (s *RulesSuite) TestGreaseBlocksMoveOnFailedBalance() {
	fighter := s.addFighter()
	s.putProne()
	s.putGrease()
	// balance rides dex: 2 + 2 fails DC 10, 19 + 2 clears it
	eng := s.newEngine(2, 19)

	_, err := eng.CreateZone(s.ctx, &engine.CreateZoneInput{ZoneID: "grease", Center: entities.Position{X: 3, Y: 3}})
	s.Require().NoError(err)
	moved, err := eng.MoveEntity(s.ctx, &engine.MoveEntityInput{EntityID: fighter.ID, To: entities.Position{X: 3, Y: 3}})
	s.Require().NoError(err)
	s.True(moved.Moved, "walking in is free, getting out is not")

	moved, err = eng.MoveEntity(s.ctx, &engine.MoveEntityInput{EntityID: fighter.ID, To: entities.Position{X: 5, Y: 5}})
	s.Require().NoError(err)
	s.False(moved.Moved)
	s.Equal(entities.Position{X: 3, Y: 3}, fighter.Position)

	removed, err := eng.RemoveCondition(s.ctx, &engine.RemoveConditionInput{ConditionID: "prone", TargetID: fighter.ID})
	s.Require().NoError(err)
	s.Equal(1, removed.Removed)

	moved, err = eng.MoveEntity(s.ctx, &engine.MoveEntityInput{EntityID: fighter.ID, To: entities.Position{X: 5, Y: 5}})
	s.Require().NoError(err)
	s.True(moved.Moved)
}

func (s *RulesSuite) TestGreaseTurnEndSaveOnlyHitsOccupants() {
	fighter := s.addFighter()
	cleric := s.addCleric()
	cleric.Position = entities.Position{X: 8, Y: 8}
	s.putProne()
	s.putGrease()
	// fighter's reflex is 1 + 2 dex; a 2 fails the DC 10 save
	eng := s.newEngine(2)

	_, err := eng.CreateZone(s.ctx, &engine.CreateZoneInput{ZoneID: "grease", Center: fighter.Position})
	s.Require().NoError(err)

	s.advance(eng, 1)

	removed, err := eng.RemoveCondition(s.ctx, &engine.RemoveConditionInput{ConditionID: "prone", TargetID: fighter.ID})
	s.Require().NoError(err)
	s.Equal(1, removed.Removed)

	removed, err = eng.RemoveCondition(s.ctx, &engine.RemoveConditionInput{ConditionID: "prone", TargetID: cleric.ID})
	s.Require().NoError(err)
	s.Equal(0, removed.Removed, "the cleric is nowhere near the grease")
}

func (s *RulesSuite) TestZoneDurationExpires() {
	fighter := s.addFighter()
	s.putProne()
	s.putGrease()
	// if the zone were still there, this 1 would fail the exit check
	eng := s.newEngine(1)

	_, err := eng.CreateZone(s.ctx, &engine.CreateZoneInput{ZoneID: "grease", Center: entities.Position{X: 3, Y: 3}})
	s.Require().NoError(err)

	s.advance(eng, 3)

	_, err = eng.MoveEntity(s.ctx, &engine.MoveEntityInput{EntityID: fighter.ID, To: entities.Position{X: 3, Y: 3}})
	s.Require().NoError(err)
	moved, err := eng.MoveEntity(s.ctx, &engine.MoveEntityInput{EntityID: fighter.ID, To: entities.Position{X: 5, Y: 5}})
	s.Require().NoError(err)
	s.True(moved.Moved, "nothing is left to check against")
}

func (s *RulesSuite) TestScheduledOperationsFireOnTheirRound() {
	cleric := s.addCleric()
	orc := s.addOrc()
	s.Require().NoError(s.repo.PutEffect(s.ctx, &content.EffectDefinition{
		ID:          "delayed_blast",
		Name:        "Delayed Blast",
		AbilityType: content.AbilitySpell,
		Duration:    content.DurationSpec{Unit: content.DurationInstant},
		OnAttach: []content.Operation{
			{Kind: content.OpSchedule, Schedule: &content.ScheduleOp{
				DelayRounds: 2,
				Operations: []content.Operation{
					{Kind: content.OpDamage, Damage: &content.DamageOp{Packets: []content.DamageSpec{
						{Amount: content.Lit(10), Kind: "fire"},
					}}},
				},
			}},
		},
	}))
	eng := s.newEngine()

	_, err := eng.AttachEffect(s.ctx, &engine.AttachEffectInput{EffectID: "delayed_blast", SourceID: cleric.ID, TargetID: orc.ID})
	s.Require().NoError(err)
	s.Equal(30, orc.HPCurrent)

	s.advance(eng, 1)
	s.Equal(30, orc.HPCurrent, "round one passes quietly")

	s.advance(eng, 1)
	s.Equal(20, orc.HPCurrent)
}

func (s *RulesSuite) TestPerRoundPoolIncrementsEachRound() {
	fighter := s.addFighter()
	s.Require().NoError(s.repo.PutResource(s.ctx, &content.ResourceDefinition{
		ID:            "focus",
		Name:          "Focus",
		Capacity:      content.Lit(5),
		Cadence:       content.RefreshPerRound,
		Behavior:      content.RefreshIncrementBy,
		RefreshAmount: content.Lit(1),
	}))
	eng := s.newEngine()

	created, err := eng.CreateResource(s.ctx, &engine.CreateResourceInput{EntityID: fighter.ID, ResourceID: "focus"})
	s.Require().NoError(err)
	s.Equal(5, created.Current)

	spent, err := eng.SpendResource(s.ctx, &engine.SpendResourceInput{EntityID: fighter.ID, ResourceID: "focus", Amount: 3})
	s.Require().NoError(err)
	s.Equal(2, spent.Current)

	s.advance(eng, 2)

	probe, err := eng.RestoreResource(s.ctx, &engine.RestoreResourceInput{EntityID: fighter.ID, ResourceID: "focus"})
	s.Require().NoError(err)
	s.Equal(4, probe.Current, "one point back per round, clamped at capacity")
}
