package main

import (
	"context"

	"github.com/ThiagoRibas-dev/dnd-text-game/internal/content"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/entities"
	contentrepo "github.com/ThiagoRibas-dev/dnd-text-game/internal/repositories/content"
)

// longsword threatens on 19-20 for double damage
var longsword = content.AttackConfig{
	Kind:           content.AttackMelee,
	ThreatRangeMin: 19,
	CritMultiplier: 2,
}

// seedContent writes the demo's authored blueprints into the index
func seedContent(ctx context.Context, repo contentrepo.Repository) error {
	conditions := []*content.ConditionDefinition{
		{
			ID: "prone", Name: "Prone", Precedence: 4,
			Modifiers: []content.Modifier{
				{TargetPath: "combat.attack", Operator: content.OperatorAdd, Value: content.Lit(-4)},
			},
			DefaultDuration: content.DurationSpec{Unit: content.DurationRounds, Amount: content.Lit(1)},
		},
	}
	for _, def := range conditions {
		if err := repo.PutCondition(ctx, def); err != nil {
			return err
		}
	}

	effects := []*content.EffectDefinition{
		{
			ID:          "divine_power",
			Name:        "Divine Power",
			AbilityType: content.AbilitySpell,
			Duration:    content.DurationSpec{Unit: content.DurationRounds, Amount: content.Expr("caster_level")},
			Modifiers: []content.Modifier{
				{TargetPath: "combat.bab", Operator: content.OperatorMax, Value: content.Expr("level")},
				{TargetPath: "abilities.str.score", Operator: content.OperatorAdd, Value: content.Lit(6), BonusType: "enhancement"},
			},
			OnAttach: []content.Operation{
				{Kind: content.OpTempHP, TempHP: &content.TempHPOp{Amount: content.Expr("caster_level")}},
			},
		},
		{
			ID:          "grease",
			Name:        "Grease",
			AbilityType: content.AbilitySpell,
			Duration:    content.DurationSpec{Unit: content.DurationInstant},
			OnAttach: []content.Operation{
				{Kind: content.OpZoneCreate, Zone: &content.ZoneOp{ZoneID: "grease_zone"}},
			},
		},
		{
			ID:          "antimagic_field",
			Name:        "Antimagic Field",
			AbilityType: content.AbilitySpell,
			Duration:    content.DurationSpec{Unit: content.DurationInstant},
			OnAttach: []content.Operation{
				{Kind: content.OpZoneCreate, Zone: &content.ZoneOp{ZoneID: "antimagic_zone"}},
			},
		},
	}
	for _, def := range effects {
		if err := repo.PutEffect(ctx, def); err != nil {
			return err
		}
	}

	zones := []*content.ZoneDefinition{
		{
			ID:          "grease_zone",
			Name:        "Grease",
			AbilityType: content.AbilitySpell,
			Duration:    content.DurationSpec{Unit: content.DurationRounds, Amount: content.Lit(3)},
			Radius:      1,
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
		},
		{
			ID:          "antimagic_zone",
			Name:        "Antimagic Field",
			AbilityType: content.AbilitySpell,
			Duration:    content.DurationSpec{Unit: content.DurationMinutes, Amount: content.Lit(10)},
			Radius:      2,
			Suppresses: []content.AbilityType{
				content.AbilitySpell,
				content.AbilitySupernatural,
				content.AbilitySpellLike,
			},
		},
	}
	for _, def := range zones {
		if err := repo.PutZone(ctx, def); err != nil {
			return err
		}
	}

	return nil
}

// seedEntities places the two combatants on the grid
func seedEntities(state *entities.GameState) (fighter, orc *entities.Entity) {
	fighter = &entities.Entity{
		ID:              "tordek",
		Type:            entities.TypeCharacter,
		Name:            "Tordek",
		Abilities:       entities.AbilityScores{Str: 18, Dex: 14, Con: 16, Int: 10, Wis: 12, Cha: 8},
		Classes:         map[string]int{"fighter": 7},
		HitDice:         7,
		HPMax:           61,
		HPCurrent:       61,
		BaseAttackBonus: 7,
		Saves:           entities.BaseSaves{Fortitude: 5, Reflex: 2, Will: 2},
		ArmorBonus:      6,
		Position:        entities.Position{X: 0, Y: 0},
	}
	orc = &entities.Entity{
		ID:              "orc",
		Type:            entities.TypeMonster,
		Name:            "Orc Veteran",
		Abilities:       entities.AbilityScores{Str: 17, Dex: 12, Con: 13, Int: 8, Wis: 10, Cha: 6},
		HitDice:         5,
		HPMax:           35,
		HPCurrent:       35,
		BaseAttackBonus: 4,
		Saves:           entities.BaseSaves{Fortitude: 4, Reflex: 1, Will: 1},
		ArmorBonus:      4,
		NaturalArmor:    1,
		DR:              []content.DREntry{{Amount: 5, BypassTags: []string{"magic"}}},
		Position:        entities.Position{X: 8, Y: 5},
	}
	state.Add(fighter)
	state.Add(orc)
	return fighter, orc
}
