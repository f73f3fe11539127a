// Package entities holds the live runtime state the rules engine reads
// and mutates: entities, their ability scores, hit points, and grid
// positions. Nothing here serializes itself; persistence is owned
// elsewhere.
package entities

import (
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/ThiagoRibas-dev/dnd-text-game/internal/content"
)

// Entity types
const (
	TypeCharacter = "character"
	TypeMonster   = "monster"
)

// Position is a square on the encounter grid
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// AbilityScores are the six base scores before any modifiers
type AbilityScores struct {
	Str int `json:"str"`
	Dex int `json:"dex"`
	Con int `json:"con"`
	Int int `json:"int"`
	Wis int `json:"wis"`
	Cha int `json:"cha"`
}

// Score returns the named base score
func (a AbilityScores) Score(name string) (int, bool) {
	switch strings.ToLower(name) {
	case "str", "strength":
		return a.Str, true
	case "dex", "dexterity":
		return a.Dex, true
	case "con", "constitution":
		return a.Con, true
	case "int", "intelligence":
		return a.Int, true
	case "wis", "wisdom":
		return a.Wis, true
	case "cha", "charisma":
		return a.Cha, true
	default:
		return 0, false
	}
}

// AbilityModifier converts a score to its modifier, rounding toward
// negative infinity so a score of 9 gives -1, not 0
func AbilityModifier(score int) int {
	mod := (score - 10) / 2
	if score < 10 && (score-10)%2 != 0 {
		mod--
	}
	return mod
}

// BaseSaves are the class-granted base saving throw bonuses
type BaseSaves struct {
	Fortitude int `json:"fortitude"`
	Reflex    int `json:"reflex"`
	Will      int `json:"will"`
}

// TempHPGrant is a block of temporary hit points tied to the effect
// instance that granted it. Damage consumes grants before real HP;
// detaching the instance removes whatever remains.
type TempHPGrant struct {
	InstanceID string `json:"instance_id"`
	Remaining  int    `json:"remaining"`
}

// Entity is one creature in the encounter. Base fields are what the
// creature is before effects; the engine derives effective values by
// running active modifiers over them. Cross-references to effect,
// condition, and resource instances live in the engine's managers,
// keyed by this entity's id.
type Entity struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`

	Abilities AbilityScores  `json:"abilities"`
	Classes   map[string]int `json:"classes,omitempty"`
	HitDice   int            `json:"hit_dice"`

	HPMax     int `json:"hp_max"`
	HPCurrent int `json:"hp_current"`
	Nonlethal int `json:"nonlethal"`

	BaseAttackBonus int       `json:"base_attack_bonus"`
	Saves           BaseSaves `json:"saves"`

	ArmorBonus   int `json:"armor_bonus"`
	ShieldBonus  int `json:"shield_bonus"`
	NaturalArmor int `json:"natural_armor"`

	SpellResistance int `json:"spell_resistance,omitempty"`

	DR              []content.DREntry `json:"dr,omitempty"`
	Resistances     map[string]int    `json:"resistances,omitempty"`
	Immunities      []string          `json:"immunities,omitempty"`
	Vulnerabilities []string          `json:"vulnerabilities,omitempty"`

	TempHP []TempHPGrant `json:"temp_hp,omitempty"`

	Position Position `json:"position"`
}

var _ core.Entity = (*Entity)(nil)

// GetID implements core.Entity
func (e *Entity) GetID() string { return e.ID }

// GetType implements core.Entity
func (e *Entity) GetType() string { return e.Type }

// Level is the character level: total class levels, or hit dice for
// creatures without classes
func (e *Entity) Level() int {
	total := 0
	for _, lv := range e.Classes {
		total += lv
	}
	if total == 0 {
		return e.HitDice
	}
	return total
}

// ClassLevel returns levels in one class
func (e *Entity) ClassLevel(class string) int {
	return e.Classes[strings.ToLower(class)]
}

// TempHPTotal sums all remaining temporary hit points
func (e *Entity) TempHPTotal() int {
	total := 0
	for _, g := range e.TempHP {
		total += g.Remaining
	}
	return total
}
