package rules

import (
	"context"
	"strings"

	"github.com/ThiagoRibas-dev/dnd-text-game/internal/content"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/engine"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/entities"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/errors"
)

// skillAbility maps skill checks to their key ability
var skillAbility = map[string]string{
	"balance":       "dex",
	"tumble":        "dex",
	"hide":          "dex",
	"move_silently": "dex",
	"jump":          "str",
	"climb":         "str",
	"swim":          "str",
	"concentration": "con",
	"spot":          "wis",
	"listen":        "wis",
	"search":        "int",
	"bluff":         "cha",
	"intimidate":    "cha",
}

// evalEnv builds the expression environment for formulas evaluated
// against a bearer. casterLevel is the instance's snapshot, zero when
// no magical source is involved. baseAbilities breaks the cycle when
// the path being derived is itself an ability score.
func (e *rulesEngine) evalEnv(bearer *entities.Entity, casterLevel, initiatorLevel int, choices map[string]float64, baseAbilities bool) map[string]any {
	level := 0.0
	hd := 0.0
	if bearer != nil {
		level = float64(bearer.Level())
		hd = float64(bearer.HitDice)
	}
	cl := float64(casterLevel)
	if cl == 0 {
		cl = level
	}
	il := float64(initiatorLevel)
	if il == 0 {
		il = level
	}

	return map[string]any{
		"level":           level,
		"caster_level":    cl,
		"initiator_level": il,
		"hd":              hd,
		"ability_mod": func(name string) float64 {
			if bearer == nil {
				return 0
			}
			if baseAbilities {
				score, _ := bearer.Abilities.Score(name)
				return float64(entities.AbilityModifier(score))
			}
			return float64(e.abilityMod(bearer, name))
		},
		"class_level": func(name string) float64 {
			if bearer == nil {
				return 0
			}
			return float64(bearer.ClassLevel(name))
		},
		"choice": func(name string) float64 {
			return choices[name]
		},
	}
}

// baseValue is what a path is worth before any modifier touches it
func (e *rulesEngine) baseValue(ent *entities.Entity, path string) float64 {
	switch path {
	case "combat.bab":
		return float64(ent.BaseAttackBonus)
	case "sr":
		return float64(ent.SpellResistance)
	case "combat.attack", "combat.damage", "concealment", "speed":
		return 0
	}

	switch {
	case strings.HasPrefix(path, "abilities."):
		parts := strings.Split(path, ".")
		if len(parts) == 3 && parts[2] == "score" {
			score, _ := ent.Abilities.Score(parts[1])
			return float64(score)
		}
		return 0
	case strings.HasPrefix(path, "saves."):
		name := strings.TrimPrefix(path, "saves.")
		switch name {
		case "fortitude":
			return float64(ent.Saves.Fortitude + e.abilityMod(ent, "con"))
		case "reflex":
			return float64(ent.Saves.Reflex + e.abilityMod(ent, "dex"))
		case "will":
			return float64(ent.Saves.Will + e.abilityMod(ent, "wis"))
		}
		return 0
	case strings.HasPrefix(path, "resist."):
		return float64(ent.Resistances[strings.TrimPrefix(path, "resist.")])
	case strings.HasPrefix(path, "immunity."):
		kind := strings.TrimPrefix(path, "immunity.")
		for _, im := range ent.Immunities {
			if im == kind {
				return 1
			}
		}
		return 0
	case strings.HasPrefix(path, "vulnerability."):
		kind := strings.TrimPrefix(path, "vulnerability.")
		for _, v := range ent.Vulnerabilities {
			if v == kind {
				return 1
			}
		}
		return 0
	case strings.HasPrefix(path, "checks."):
		skill := strings.TrimPrefix(path, "checks.")
		if ability, ok := skillAbility[skill]; ok {
			return float64(e.abilityMod(ent, ability))
		}
		return 0
	}
	return 0
}

// gatherContribs collects every active, non-suppressed modifier on a
// path of an entity, with its value evaluated
func (e *rulesEngine) gatherContribs(ent *entities.Entity, path string, trace *engine.Trace) []contribution {
	meta := e.paths.resolve(path)
	if meta == nil {
		trace.Warn("unknown target path %q, modifiers skipped", path)
		return nil
	}

	baseAbilities := strings.HasPrefix(path, "abilities.")
	var contribs []contribution

	collect := func(mods []content.Modifier, policy content.StackingPolicy, source string, casterLevel, initiatorLevel int, choices map[string]float64, seq int) {
		for _, m := range mods {
			if m.TargetPath != path {
				continue
			}
			if !meta.allows(m.Operator) {
				trace.Warn("%s: operator %s not allowed on %q, skipped", source, m.Operator, path)
				continue
			}
			if meta.requireBonusType && (m.Operator == content.OperatorAdd || m.Operator == content.OperatorSub) && m.BonusType == content.BonusUntyped {
				trace.Warn("%s: additive modifier on %q requires a bonus type, skipped", source, path)
				continue
			}
			env := e.evalEnv(ent, casterLevel, initiatorLevel, choices, baseAbilities)
			v, err := e.exprs.eval(m.Value, env)
			if err != nil {
				trace.Warn("%s: %v", source, err)
				e.log.Warn("modifier formula failed", "source", source, "path", path, "error", err)
				continue
			}
			trace.Modifier(v, "%s %s %s (%s)", source, m.Operator, path, bonusLabel(m.BonusType))
			contribs = append(contribs, contribution{
				op:        m.Operator,
				bonusType: m.BonusType,
				sourceKey: m.SourceKey,
				policy:    policy,
				value:     v,
				seq:       seq,
				source:    source,
			})
		}
	}

	for _, inst := range e.instancesFor(ent.ID) {
		if inst.suppressed() {
			continue
		}
		collect(inst.modifiers, inst.stacking, inst.name, inst.casterLevel, inst.initiatorLevel, inst.choices, inst.seq)
	}
	for _, cond := range e.conditionsFor(ent.ID) {
		collect(cond.modifiers, content.StackingHighest, cond.name, 0, 0, nil, cond.seq)
	}

	return contribs
}

// resolveStatValue derives the effective value of a path on an entity.
// A path already being derived (a formula referencing its own path)
// falls back to the base value instead of recursing.
func (e *rulesEngine) resolveStatValue(ent *entities.Entity, path string, trace *engine.Trace) float64 {
	key := ent.ID + "/" + path
	if e.resolving[key] {
		return e.baseValue(ent, path)
	}
	e.resolving[key] = true
	defer delete(e.resolving, key)

	base := e.baseValue(ent, path)
	contribs := e.gatherContribs(ent, path, trace)
	if len(contribs) == 0 {
		return base
	}
	return resolveStack(base, contribs, trace)
}

// abilityMod is the effective ability modifier, after modifiers on the
// score path
func (e *rulesEngine) abilityMod(ent *entities.Entity, name string) int {
	score := e.resolveStatValue(ent, "abilities."+strings.ToLower(name)+".score", engine.NewTrace())
	return entities.AbilityModifier(int(score))
}

// resolveAC derives the armor class of the requested type. Touch AC
// drops armor, shield, and natural contributions; flat-footed drops
// dexterity and dodge.
func (e *rulesEngine) resolveAC(ent *entities.Entity, acType content.ACType, trace *engine.Trace) int {
	contribs := e.gatherContribs(ent, "ac", trace)

	// base AC pieces participate in stacking like typed contributions
	synth := []contribution{
		{op: content.OperatorAdd, bonusType: content.BonusArmor, value: float64(ent.ArmorBonus), seq: -4, source: "armor"},
		{op: content.OperatorAdd, bonusType: content.BonusShield, value: float64(ent.ShieldBonus), seq: -3, source: "shield"},
		{op: content.OperatorAdd, bonusType: content.BonusNaturalArmor, value: float64(ent.NaturalArmor), seq: -2, source: "natural armor"},
	}
	contribs = append(synth, contribs...)

	dexMod := e.abilityMod(ent, "dex")

	filtered := contribs[:0]
	for _, c := range contribs {
		switch acType {
		case content.ACTouch:
			if c.bonusType == content.BonusArmor || c.bonusType == content.BonusShield || c.bonusType == content.BonusNaturalArmor {
				trace.Stacking(c.value, "%s excluded from touch AC", c.source)
				continue
			}
		case content.ACFlatFooted:
			if c.bonusType == content.BonusDodge {
				trace.Stacking(c.value, "%s excluded from flat-footed AC", c.source)
				continue
			}
		}
		filtered = append(filtered, c)
	}

	base := 10.0
	if acType != content.ACFlatFooted {
		base += float64(dexMod)
		trace.Modifier(float64(dexMod), "dexterity modifier")
	}

	return int(resolveStack(base, filtered, trace))
}

// attackBonus composes the attack bonus for a delivery kind: effective
// BAB, the key ability modifier, and modifiers on combat.attack
func (e *rulesEngine) attackBonus(attacker *entities.Entity, kind content.AttackKind, trace *engine.Trace) int {
	bab := e.resolveStatValue(attacker, "combat.bab", trace)
	trace.Modifier(bab, "base attack bonus")

	ability := "str"
	if kind == content.AttackRanged || kind == content.AttackRay {
		ability = "dex"
	}
	mod := e.abilityMod(attacker, ability)
	trace.Modifier(float64(mod), "%s modifier", ability)

	extra := e.resolveStatValue(attacker, "combat.attack", trace)

	return int(bab) + mod + int(extra)
}

// ResolveStat derives one target path with its full stacking trace.
// The AC paths route through the armor class composition; everything
// else is base value plus stacked modifiers.
func (e *rulesEngine) ResolveStat(_ context.Context, input *engine.ResolveStatInput) (*engine.ResolveStatOutput, error) {
	if input == nil || input.EntityID == "" || input.Path == "" {
		return nil, errors.InvalidArgument("entity id and path are required")
	}
	ent, err := e.entity(input.EntityID)
	if err != nil {
		return nil, err
	}

	trace := engine.NewTrace()
	var value float64
	switch input.Path {
	case "ac", "ac.normal":
		value = float64(e.resolveAC(ent, content.ACNormal, trace))
	case "ac.touch":
		value = float64(e.resolveAC(ent, content.ACTouch, trace))
	case "ac.flat_footed":
		value = float64(e.resolveAC(ent, content.ACFlatFooted, trace))
	default:
		value = e.resolveStatValue(ent, input.Path, trace)
	}
	return &engine.ResolveStatOutput{Value: value, Trace: trace}, nil
}

func bonusLabel(bt content.BonusType) string {
	if bt == content.BonusUntyped {
		return "untyped"
	}
	return string(bt)
}
