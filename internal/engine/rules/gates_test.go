package rules

import (
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/content"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/engine"
)

func (s *RulesSuite) TestAttackNaturalOneAlwaysMisses() {
	fighter := s.addFighter()
	orc := s.addOrc()
	eng := s.newEngine(1)

	out, err := eng.ResolveAttack(s.ctx, &engine.ResolveAttackInput{
		AttackerID: fighter.ID,
		TargetID:   orc.ID,
		Attack:     content.AttackConfig{Kind: content.AttackMelee},
	})
	s.Require().NoError(err)
	s.False(out.Hit)
	s.Equal(1, out.Results[0].Natural)
}

func (s *RulesSuite) TestAttackHitsOnExactAC() {
	fighter := s.addFighter()
	orc := s.addOrc()
	// BAB 5 + str 4 = +9 against AC 16
	eng := s.newEngine(7)

	out, err := eng.ResolveAttack(s.ctx, &engine.ResolveAttackInput{
		AttackerID: fighter.ID,
		TargetID:   orc.ID,
		Attack:     content.AttackConfig{Kind: content.AttackMelee},
	})
	s.Require().NoError(err)
	s.True(out.Hit)
	s.False(out.Threat)
	s.Equal(16, out.Results[0].Total)
	s.Equal(16, out.Results[0].Against)
}

func (s *RulesSuite) TestAttackThreatNotConfirmed() {
	fighter := s.addFighter()
	orc := s.addOrc()
	eng := s.newEngine(19, 2)

	out, err := eng.ResolveAttack(s.ctx, &engine.ResolveAttackInput{
		AttackerID: fighter.ID,
		TargetID:   orc.ID,
		Attack:     content.AttackConfig{Kind: content.AttackMelee, ThreatRangeMin: 19, CritMultiplier: 2},
	})
	s.Require().NoError(err)
	s.True(out.Hit)
	s.True(out.Threat)
	s.False(out.Critical)
	s.Equal(1, out.Multiplier)
	s.Len(out.Results, 2)
}

func (s *RulesSuite) TestAttackCriticalConfirmed() {
	fighter := s.addFighter()
	orc := s.addOrc()
	eng := s.newEngine(19, 12)

	out, err := eng.ResolveAttack(s.ctx, &engine.ResolveAttackInput{
		AttackerID: fighter.ID,
		TargetID:   orc.ID,
		Attack:     content.AttackConfig{Kind: content.AttackMelee, ThreatRangeMin: 19, CritMultiplier: 3},
	})
	s.Require().NoError(err)
	s.True(out.Critical)
	s.Equal(3, out.Multiplier)
}

func (s *RulesSuite) TestAttackNaturalTwentyAutoHitsAndConfirms() {
	fighter := s.addFighter()
	orc := s.addOrc()
	orc.ArmorBonus = 40 // unhittable by the numbers
	eng := s.newEngine(20, 20)

	out, err := eng.ResolveAttack(s.ctx, &engine.ResolveAttackInput{
		AttackerID: fighter.ID,
		TargetID:   orc.ID,
		Attack:     content.AttackConfig{Kind: content.AttackMelee},
	})
	s.Require().NoError(err)
	s.True(out.Hit)
	s.True(out.Threat)
	s.True(out.Critical)
	s.Equal(2, out.Multiplier)
}

func (s *RulesSuite) TestTouchAttackIgnoresArmor() {
	fighter := s.addFighter()
	orc := s.addOrc()
	// touch AC is 11; a 2 still lands with +9
	eng := s.newEngine(2)

	out, err := eng.ResolveAttack(s.ctx, &engine.ResolveAttackInput{
		AttackerID: fighter.ID,
		TargetID:   orc.ID,
		Attack:     content.AttackConfig{Kind: content.AttackTouch},
	})
	s.Require().NoError(err)
	s.True(out.Hit)
	s.Equal(11, out.Results[0].Against)
}

func (s *RulesSuite) TestConcealmentIsRolledBeforeTheAttack() {
	fighter := s.addFighter()
	orc := s.addOrc()
	s.Require().NoError(s.repo.PutCondition(s.ctx, &content.ConditionDefinition{
		ID: "invisible", Name: "Invisible", Precedence: 2, Tags: []string{"invisible"},
		DefaultDuration: content.DurationSpec{Unit: content.DurationRounds, Amount: content.Lit(10)},
	}))
	eng := s.newEngine(30)

	_, err := eng.ApplyCondition(s.ctx, &engine.ApplyConditionInput{ConditionID: "invisible", SourceID: orc.ID, TargetID: orc.ID})
	s.Require().NoError(err)

	out, err := eng.ResolveAttack(s.ctx, &engine.ResolveAttackInput{
		AttackerID: fighter.ID,
		TargetID:   orc.ID,
		Attack:     content.AttackConfig{Kind: content.AttackMelee},
	})
	s.Require().NoError(err)
	s.False(out.Hit)
	s.Len(out.Results, 1, "the attack roll never happens")
	s.Equal("miss_chance", out.Results[0].Gate)
}

func (s *RulesSuite) TestConcealmentPassedThenNormalAttack() {
	fighter := s.addFighter()
	orc := s.addOrc()
	s.Require().NoError(s.repo.PutCondition(s.ctx, &content.ConditionDefinition{
		ID: "invisible", Name: "Invisible", Precedence: 2, Tags: []string{"invisible"},
		DefaultDuration: content.DurationSpec{Unit: content.DurationRounds, Amount: content.Lit(10)},
	}))
	eng := s.newEngine(60, 7)

	_, err := eng.ApplyCondition(s.ctx, &engine.ApplyConditionInput{ConditionID: "invisible", SourceID: orc.ID, TargetID: orc.ID})
	s.Require().NoError(err)

	out, err := eng.ResolveAttack(s.ctx, &engine.ResolveAttackInput{
		AttackerID: fighter.ID,
		TargetID:   orc.ID,
		Attack:     content.AttackConfig{Kind: content.AttackMelee},
	})
	s.Require().NoError(err)
	s.True(out.Hit)
	s.Len(out.Results, 2)
}

func (s *RulesSuite) TestSaveBoundaries() {
	orc := s.addOrc()
	save := content.SaveConfig{Type: content.SaveFortitude, DC: content.Lit(15), Effect: content.SaveNone}

	// fort bonus is 3 base + 1 con
	cases := []struct {
		name   string
		roll   int
		dc     content.Formula
		passed bool
	}{
		{"meets DC", 11, content.Lit(15), true},
		{"one short", 10, content.Lit(15), false},
		{"natural 1 always fails", 1, content.Lit(2), false},
		{"natural 20 always succeeds", 20, content.Lit(50), true},
	}
	for _, tc := range cases {
		eng := s.newEngine(tc.roll)
		save.DC = tc.dc
		out, err := eng.ResolveSave(s.ctx, &engine.ResolveSaveInput{EntityID: orc.ID, Save: save})
		s.Require().NoError(err, tc.name)
		s.Equal(tc.passed, out.Result.Passed, tc.name)
	}
}

func (s *RulesSuite) TestSRNotApplicableToExtraordinary() {
	orc := s.addOrc()
	orc.SpellResistance = 15
	eng := s.newEngine()

	out, err := eng.ResolveSR(s.ctx, &engine.ResolveSRInput{
		TargetID:    orc.ID,
		CasterLevel: 5,
		AbilityType: content.AbilityExtraordinary,
	})
	s.Require().NoError(err)
	s.False(out.Applicable)
}

func (s *RulesSuite) TestSRCheck() {
	orc := s.addOrc()
	orc.SpellResistance = 15

	eng := s.newEngine(9)
	out, err := eng.ResolveSR(s.ctx, &engine.ResolveSRInput{TargetID: orc.ID, CasterLevel: 5, AbilityType: content.AbilitySpell})
	s.Require().NoError(err)
	s.True(out.Applicable)
	s.False(out.Result.Passed, "9+5 falls short of SR 15")

	eng = s.newEngine(10)
	out, err = eng.ResolveSR(s.ctx, &engine.ResolveSRInput{TargetID: orc.ID, CasterLevel: 5, AbilityType: content.AbilitySpell})
	s.Require().NoError(err)
	s.True(out.Result.Passed)

	orc.SpellResistance = 40
	eng = s.newEngine(20)
	out, err = eng.ResolveSR(s.ctx, &engine.ResolveSRInput{TargetID: orc.ID, CasterLevel: 5, AbilityType: content.AbilitySpellLike})
	s.Require().NoError(err)
	s.True(out.Result.Passed, "natural 20 penetrates regardless")
}

func (s *RulesSuite) putHoldPerson() {
	s.Require().NoError(s.repo.PutEffect(s.ctx, &content.EffectDefinition{
		ID:          "hold_person",
		Name:        "Hold Person",
		AbilityType: content.AbilitySpell,
		Gates: content.GateConfig{
			SRApplies: true,
			Save:      &content.SaveConfig{Type: content.SaveWill, DC: content.Lit(16), Effect: content.SaveNegates},
		},
		Duration: content.DurationSpec{Unit: content.DurationRounds, Amount: content.Lit(7)},
	}))
}

func (s *RulesSuite) TestAttachSRRolledExactlyOnce() {
	cleric := s.addCleric()
	orc := s.addOrc()
	orc.SpellResistance = 15
	s.putHoldPerson()
	eng := s.newEngine(4)

	out, err := eng.AttachEffect(s.ctx, &engine.AttachEffectInput{EffectID: "hold_person", SourceID: cleric.ID, TargetID: orc.ID})
	s.Require().NoError(err)
	s.False(out.Applied, "4+7 cannot beat SR 15")
	s.Len(out.Gates, 1)
	s.Equal("sr", out.Gates[0].Gate)
	s.Equal(1, out.Trace.Count(engine.EntryRoll), "SR is checked once and nothing else rolls")
}

func (s *RulesSuite) TestAttachSRPenetratedThenSaveFails() {
	cleric := s.addCleric()
	orc := s.addOrc()
	orc.SpellResistance = 15
	s.putHoldPerson()
	// SR roll is a natural 20, the will save a natural 1
	eng := s.newEngine(20, 1)

	out, err := eng.AttachEffect(s.ctx, &engine.AttachEffectInput{EffectID: "hold_person", SourceID: cleric.ID, TargetID: orc.ID})
	s.Require().NoError(err)
	s.True(out.Applied)
	s.Len(out.Gates, 2)
	s.Equal(2, out.Trace.Count(engine.EntryRoll))
}

func (s *RulesSuite) TestAttachSaveNegates() {
	cleric := s.addCleric()
	orc := s.addOrc()
	s.putHoldPerson()
	// no SR on this target; the natural 20 save negates outright
	eng := s.newEngine(20)

	out, err := eng.AttachEffect(s.ctx, &engine.AttachEffectInput{EffectID: "hold_person", SourceID: cleric.ID, TargetID: orc.ID})
	s.Require().NoError(err)
	s.False(out.Applied)
	s.Empty(out.InstanceID)
}

func (s *RulesSuite) TestSaveForHalfScalesDamage() {
	cleric := s.addCleric()
	orc := s.addOrc()
	s.Require().NoError(s.repo.PutEffect(s.ctx, &content.EffectDefinition{
		ID:          "flame_strike",
		Name:        "Flame Strike",
		AbilityType: content.AbilitySpell,
		Gates: content.GateConfig{
			Save: &content.SaveConfig{Type: content.SaveReflex, DC: content.Lit(15), Effect: content.SaveHalf},
		},
		Duration: content.DurationSpec{Unit: content.DurationInstant},
		OnAttach: []content.Operation{
			{Kind: content.OpDamage, Damage: &content.DamageOp{Packets: []content.DamageSpec{
				{Amount: content.Lit(10), Kind: "fire"},
			}}},
		},
	}))

	// reflex bonus is 1 base + 1 dex; 18+2 saves for half
	eng := s.newEngine(18)
	out, err := eng.AttachEffect(s.ctx, &engine.AttachEffectInput{EffectID: "flame_strike", SourceID: cleric.ID, TargetID: orc.ID})
	s.Require().NoError(err)
	s.True(out.Applied)
	s.Equal(25, orc.HPCurrent)

	// 3+2 fails, full damage
	eng = s.newEngine(3)
	_, err = eng.AttachEffect(s.ctx, &engine.AttachEffectInput{EffectID: "flame_strike", SourceID: cleric.ID, TargetID: orc.ID})
	s.Require().NoError(err)
	s.Equal(15, orc.HPCurrent)
}

func (s *RulesSuite) TestSaveForPartialKeepsModifiersDropsDamage() {
	cleric := s.addCleric()
	orc := s.addOrc()
	s.Require().NoError(s.repo.PutEffect(s.ctx, &content.EffectDefinition{
		ID:          "icy_grip",
		Name:        "Icy Grip",
		AbilityType: content.AbilitySpell,
		Gates: content.GateConfig{
			Save: &content.SaveConfig{Type: content.SaveFortitude, DC: content.Lit(15), Effect: content.SavePartial},
		},
		Duration: content.DurationSpec{Unit: content.DurationRounds, Amount: content.Lit(3)},
		Modifiers: []content.Modifier{
			{TargetPath: "speed", Operator: content.OperatorSub, Value: content.Lit(10)},
		},
		OnAttach: []content.Operation{
			{Kind: content.OpDamage, Damage: &content.DamageOp{Packets: []content.DamageSpec{
				{Amount: content.Lit(8), Kind: "cold"},
			}}},
		},
	}))

	// 19+4 passes: the slow still lands, the cold damage does not
	eng := s.newEngine(19)
	out, err := eng.AttachEffect(s.ctx, &engine.AttachEffectInput{EffectID: "icy_grip", SourceID: cleric.ID, TargetID: orc.ID})
	s.Require().NoError(err)
	s.True(out.Applied)
	s.Equal(30, orc.HPCurrent)
	s.Equal(-10.0, s.resolveStat(eng, orc.ID, "speed"))
}
