package rules

import (
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/content"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/engine"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/entities"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/errors"
)

func (s *RulesSuite) damage(eng engine.Engine, sourceID, targetID string, packets ...engine.DamagePacket) *engine.ApplyDamageOutput {
	out, err := eng.ApplyDamage(s.ctx, &engine.ApplyDamageInput{
		SourceID: sourceID,
		TargetID: targetID,
		Packets:  packets,
	})
	s.Require().NoError(err)
	return out
}

func (s *RulesSuite) TestDRReducesPhysicalDamage() {
	fighter := s.addFighter()
	orc := s.addOrc()
	orc.DR = []content.DREntry{{Amount: 5, BypassTags: []string{"silver"}}}
	eng := s.newEngine()

	out := s.damage(eng, fighter.ID, orc.ID, engine.DamagePacket{Amount: 12, Kind: "slashing"})
	s.Equal(7, out.TotalApplied)
	s.Equal(7, out.PhysicalApplied)
	s.Equal(23, orc.HPCurrent)
}

func (s *RulesSuite) TestDRBypassedBySilverWeapon() {
	fighter := s.addFighter()
	orc := s.addOrc()
	orc.DR = []content.DREntry{{Amount: 5, BypassTags: []string{"silver"}}}
	eng := s.newEngine()

	out := s.damage(eng, fighter.ID, orc.ID, engine.DamagePacket{Amount: 12, Kind: "slashing", Tags: []string{"silver"}})
	s.Equal(12, out.TotalApplied)
}

func (s *RulesSuite) TestDRBypassedByDamageKind() {
	fighter := s.addFighter()
	orc := s.addOrc()
	orc.DR = []content.DREntry{{Amount: 5, BypassTags: []string{"bludgeoning"}}}
	eng := s.newEngine()

	out := s.damage(eng, fighter.ID, orc.ID, engine.DamagePacket{Amount: 12, Kind: "bludgeoning"})
	s.Equal(12, out.TotalApplied)
}

func (s *RulesSuite) TestDRAppliesOncePerAttackNotPerPacket() {
	fighter := s.addFighter()
	orc := s.addOrc()
	orc.DR = []content.DREntry{{Amount: 5}}
	eng := s.newEngine()

	out := s.damage(eng, fighter.ID, orc.ID,
		engine.DamagePacket{Amount: 6, Kind: "slashing"},
		engine.DamagePacket{Amount: 6, Kind: "piercing"},
	)
	s.Equal(7, out.TotalApplied)
}

func (s *RulesSuite) TestDRDoesNotTouchEnergyDamage() {
	fighter := s.addFighter()
	orc := s.addOrc()
	orc.DR = []content.DREntry{{Amount: 5}}
	eng := s.newEngine()

	out := s.damage(eng, fighter.ID, orc.ID,
		engine.DamagePacket{Amount: 6, Kind: "slashing"},
		engine.DamagePacket{Amount: 6, Kind: "fire"},
	)
	s.Equal(7, out.TotalApplied, "DR eats the slashing, the fire rides through")
	s.Equal(1, out.PhysicalApplied)
}

func (s *RulesSuite) TestImmunityDropsPacketBeforeEverything() {
	fighter := s.addFighter()
	orc := s.addOrc()
	orc.Immunities = []string{"fire"}
	eng := s.newEngine()

	out := s.damage(eng, fighter.ID, orc.ID, engine.DamagePacket{Amount: 10, Kind: "fire"})
	s.Equal(0, out.TotalApplied)
	s.Equal(30, orc.HPCurrent)
}

func (s *RulesSuite) TestEnergyResistanceSubtractsPerPacket() {
	fighter := s.addFighter()
	orc := s.addOrc()
	orc.Resistances = map[string]int{"cold": 5}
	eng := s.newEngine()

	out := s.damage(eng, fighter.ID, orc.ID,
		engine.DamagePacket{Amount: 8, Kind: "cold"},
		engine.DamagePacket{Amount: 4, Kind: "cold"},
	)
	s.Equal(3, out.TotalApplied, "each packet is resisted on its own")
}

func (s *RulesSuite) TestVulnerabilityMultipliesByHalfAgain() {
	fighter := s.addFighter()
	orc := s.addOrc()
	orc.Vulnerabilities = []string{"fire"}
	eng := s.newEngine()

	out := s.damage(eng, fighter.ID, orc.ID, engine.DamagePacket{Amount: 10, Kind: "fire"})
	s.Equal(15, out.TotalApplied)
}

func (s *RulesSuite) TestTemporaryHPConsumedBeforeReal() {
	fighter := s.addFighter()
	orc := s.addOrc()
	orc.TempHP = []entities.TempHPGrant{{InstanceID: "g1", Remaining: 6}}
	eng := s.newEngine()

	out := s.damage(eng, fighter.ID, orc.ID, engine.DamagePacket{Amount: 10, Kind: "slashing"})
	s.Equal(10, out.TotalApplied)
	s.Equal(6, out.TempHPAbsorbed)
	s.Equal(26, orc.HPCurrent)
	s.Empty(orc.TempHP, "spent grants are dropped")
}

func (s *RulesSuite) TestNonlethalAccumulatesSeparately() {
	fighter := s.addFighter()
	orc := s.addOrc()
	eng := s.newEngine()

	out := s.damage(eng, fighter.ID, orc.ID, engine.DamagePacket{Amount: 7, Kind: "nonlethal"})
	s.Equal(7, out.NonlethalApplied)
	s.Equal(0, out.TotalApplied)
	s.Equal(7, orc.Nonlethal)
	s.Equal(30, orc.HPCurrent)
}

func (s *RulesSuite) TestStoneskinPoolAbsorbsWithPerHitCap() {
	cleric := s.addCleric()
	fighter := s.addFighter()
	s.Require().NoError(s.repo.PutResource(s.ctx, &content.ResourceDefinition{
		ID:             "stoneskin_pool",
		Name:           "Stoneskin",
		Capacity:       content.Expr("10 * min(caster_level, 10)"),
		FreezeOnAttach: true,
		Absorption:     &content.AbsorptionSpec{Kinds: []string{"physical"}, PerHitCap: 10},
	}))
	s.Require().NoError(s.repo.PutEffect(s.ctx, &content.EffectDefinition{
		ID:          "stoneskin",
		Name:        "Stoneskin",
		AbilityType: content.AbilitySpell,
		Duration:    content.DurationSpec{Unit: content.DurationMinutes, Amount: content.Expr("10 * caster_level")},
		OnAttach: []content.Operation{
			{Kind: content.OpResourceCreate, Resource: &content.ResourceOp{ResourceID: "stoneskin_pool"}},
		},
	}))
	eng := s.newEngine()

	attach, err := eng.AttachEffect(s.ctx, &engine.AttachEffectInput{EffectID: "stoneskin", SourceID: cleric.ID, TargetID: cleric.ID})
	s.Require().NoError(err)
	s.Require().True(attach.Applied)

	out := s.damage(eng, fighter.ID, cleric.ID, engine.DamagePacket{Amount: 25, Kind: "slashing"})
	s.Equal(10, out.PoolAbsorbed, "the per-hit cap limits one attack's drain")
	s.Equal(15, out.TotalApplied)
	s.Equal(30, cleric.HPCurrent)

	// capacity froze at 70 for caster level 7; 60 remains
	probe, err := eng.RestoreResource(s.ctx, &engine.RestoreResourceInput{EntityID: cleric.ID, ResourceID: "stoneskin_pool"})
	s.Require().NoError(err)
	s.Equal(60, probe.Current)

	// the pool dies with the spell
	_, err = eng.DetachEffect(s.ctx, &engine.DetachEffectInput{InstanceID: attach.InstanceID})
	s.Require().NoError(err)
	_, err = eng.RestoreResource(s.ctx, &engine.RestoreResourceInput{EntityID: cleric.ID, ResourceID: "stoneskin_pool"})
	s.True(errors.IsNotFound(err))
}

func (s *RulesSuite) TestPoolIgnoresNonMatchingKinds() {
	cleric := s.addCleric()
	fighter := s.addFighter()
	s.Require().NoError(s.repo.PutResource(s.ctx, &content.ResourceDefinition{
		ID:         "stoneskin_pool",
		Name:       "Stoneskin",
		Capacity:   content.Lit(70),
		Absorption: &content.AbsorptionSpec{Kinds: []string{"physical"}, PerHitCap: 10},
	}))
	s.Require().NoError(s.repo.PutEffect(s.ctx, &content.EffectDefinition{
		ID:          "stoneskin",
		Name:        "Stoneskin",
		AbilityType: content.AbilitySpell,
		Duration:    content.DurationSpec{Unit: content.DurationMinutes, Amount: content.Lit(70)},
		OnAttach: []content.Operation{
			{Kind: content.OpResourceCreate, Resource: &content.ResourceOp{ResourceID: "stoneskin_pool"}},
		},
	}))
	eng := s.newEngine()

	_, err := eng.AttachEffect(s.ctx, &engine.AttachEffectInput{EffectID: "stoneskin", SourceID: cleric.ID, TargetID: cleric.ID})
	s.Require().NoError(err)

	out := s.damage(eng, fighter.ID, cleric.ID, engine.DamagePacket{Amount: 12, Kind: "fire"})
	s.Equal(0, out.PoolAbsorbed)
	s.Equal(12, out.TotalApplied)
}

func (s *RulesSuite) TestInjuryRiderNegatedByDR() {
	fighter := s.addFighter()
	orc := s.addOrc()
	orc.DR = []content.DREntry{{Amount: 15}}
	s.Require().NoError(s.repo.PutCondition(s.ctx, &content.ConditionDefinition{
		ID: "poisoned", Name: "Poisoned", Precedence: 3,
		DefaultDuration: content.DurationSpec{Unit: content.DurationRounds, Amount: content.Lit(10)},
	}))
	s.Require().NoError(s.repo.PutEffect(s.ctx, &content.EffectDefinition{
		ID:          "venomed_strike",
		Name:        "Venomed Strike",
		AbilityType: content.AbilityExtraordinary,
		Duration:    content.DurationSpec{Unit: content.DurationInstant},
		OnAttach: []content.Operation{
			{Kind: content.OpDamage, Damage: &content.DamageOp{Packets: []content.DamageSpec{
				{Amount: content.Lit(8), Kind: "piercing"},
			}}},
			{Kind: content.OpConditionApply, RequiresInjury: true, Condition: &content.ConditionOp{ConditionID: "poisoned"}},
		},
	}))
	eng := s.newEngine()

	_, err := eng.AttachEffect(s.ctx, &engine.AttachEffectInput{EffectID: "venomed_strike", SourceID: fighter.ID, TargetID: orc.ID})
	s.Require().NoError(err)
	s.Equal(30, orc.HPCurrent, "DR 15 swallows the bite")

	removed, err := eng.RemoveCondition(s.ctx, &engine.RemoveConditionInput{ConditionID: "poisoned", TargetID: orc.ID})
	s.Require().NoError(err)
	s.Equal(0, removed.Removed, "no injury, no poison")
}

func (s *RulesSuite) TestInjuryRiderFiresWhenDamageLands() {
	fighter := s.addFighter()
	orc := s.addOrc()
	s.Require().NoError(s.repo.PutCondition(s.ctx, &content.ConditionDefinition{
		ID: "poisoned", Name: "Poisoned", Precedence: 3,
		DefaultDuration: content.DurationSpec{Unit: content.DurationRounds, Amount: content.Lit(10)},
	}))
	s.Require().NoError(s.repo.PutEffect(s.ctx, &content.EffectDefinition{
		ID:          "venomed_strike",
		Name:        "Venomed Strike",
		AbilityType: content.AbilityExtraordinary,
		Duration:    content.DurationSpec{Unit: content.DurationInstant},
		OnAttach: []content.Operation{
			{Kind: content.OpDamage, Damage: &content.DamageOp{Packets: []content.DamageSpec{
				{Amount: content.Lit(8), Kind: "piercing"},
			}}},
			{Kind: content.OpConditionApply, RequiresInjury: true, Condition: &content.ConditionOp{ConditionID: "poisoned"}},
		},
	}))
	eng := s.newEngine()

	_, err := eng.AttachEffect(s.ctx, &engine.AttachEffectInput{EffectID: "venomed_strike", SourceID: fighter.ID, TargetID: orc.ID})
	s.Require().NoError(err)
	s.Equal(22, orc.HPCurrent)

	removed, err := eng.RemoveCondition(s.ctx, &engine.RemoveConditionInput{ConditionID: "poisoned", TargetID: orc.ID})
	s.Require().NoError(err)
	s.Equal(1, removed.Removed)
}

func (s *RulesSuite) TestFireShieldReflectsWithoutLooping() {
	cleric := s.addCleric()
	fighter := s.addFighter()
	s.Require().NoError(s.repo.PutEffect(s.ctx, &content.EffectDefinition{
		ID:          "fire_shield",
		Name:        "Fire Shield",
		AbilityType: content.AbilitySpell,
		Duration:    content.DurationSpec{Unit: content.DurationRounds, Amount: content.Expr("caster_level")},
		Hooks: []content.RuleHook{
			{Scope: content.ScopeIncomingDamage, Actions: []content.HookAction{
				{Kind: content.ActionReflect, Factor: content.Lit(0.5), ConvertTo: "fire"},
			}},
		},
	}))
	eng := s.newEngine()

	_, err := eng.AttachEffect(s.ctx, &engine.AttachEffectInput{EffectID: "fire_shield", SourceID: cleric.ID, TargetID: cleric.ID})
	s.Require().NoError(err)

	out := s.damage(eng, fighter.ID, cleric.ID, engine.DamagePacket{Amount: 10, Kind: "slashing"})
	s.Equal(10, out.TotalApplied)
	s.Equal(35, cleric.HPCurrent)
	s.Equal(39, fighter.HPCurrent, "half comes back as fire, once")
}

func (s *RulesSuite) TestHookConvertsFireToColdBeforeResistance() {
	cleric := s.addCleric()
	fighter := s.addFighter()
	cleric.Resistances = map[string]int{"cold": 5}
	s.Require().NoError(s.repo.PutEffect(s.ctx, &content.EffectDefinition{
		ID:          "frost_mantle",
		Name:        "Frost Mantle",
		AbilityType: content.AbilitySupernatural,
		Duration:    content.DurationSpec{Unit: content.DurationMinutes, Amount: content.Lit(10)},
		Hooks: []content.RuleHook{
			{Scope: content.ScopeIncomingDamage, Match: content.HookMatch{DamageKinds: []string{"fire"}}, Actions: []content.HookAction{
				{Kind: content.ActionConvert, ConvertTo: "cold"},
			}},
		},
	}))
	eng := s.newEngine()

	_, err := eng.AttachEffect(s.ctx, &engine.AttachEffectInput{EffectID: "frost_mantle", SourceID: cleric.ID, TargetID: cleric.ID})
	s.Require().NoError(err)

	out := s.damage(eng, fighter.ID, cleric.ID, engine.DamagePacket{Amount: 10, Kind: "fire"})
	s.Equal(5, out.TotalApplied, "conversion lands before the cold resistance")
}

func (s *RulesSuite) TestHookCapsMatchingDamage() {
	cleric := s.addCleric()
	fighter := s.addFighter()
	s.Require().NoError(s.repo.PutEffect(s.ctx, &content.EffectDefinition{
		ID:          "flame_ward",
		Name:        "Flame Ward",
		AbilityType: content.AbilitySupernatural,
		Duration:    content.DurationSpec{Unit: content.DurationMinutes, Amount: content.Lit(10)},
		Hooks: []content.RuleHook{
			{Scope: content.ScopeIncomingDamage, Match: content.HookMatch{DamageKinds: []string{"fire"}}, Actions: []content.HookAction{
				{Kind: content.ActionCap, Limit: content.Lit(10)},
			}},
		},
	}))
	eng := s.newEngine()

	_, err := eng.AttachEffect(s.ctx, &engine.AttachEffectInput{EffectID: "flame_ward", SourceID: cleric.ID, TargetID: cleric.ID})
	s.Require().NoError(err)

	out := s.damage(eng, fighter.ID, cleric.ID,
		engine.DamagePacket{Amount: 25, Kind: "fire"},
		engine.DamagePacket{Amount: 4, Kind: "slashing"},
	)
	s.Equal(14, out.TotalApplied, "only the fire is capped")
}
