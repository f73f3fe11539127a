package content

// Operator is how a modifier combines with a target path's value
type Operator string

// Modifier operators, applied by the stacking resolver in a fixed stage
// order: set/replace, then additives, then mul/div, then min/max, then
// cap/clamp.
const (
	OperatorSet     Operator = "set"
	OperatorReplace Operator = "replace"
	OperatorAdd     Operator = "add"
	OperatorSub     Operator = "sub"
	OperatorMul     Operator = "mul"
	OperatorDiv     Operator = "div"
	OperatorMin     Operator = "min"
	OperatorMax     Operator = "max"
	OperatorCap     Operator = "cap"
	OperatorClamp   Operator = "clamp"
)

// BonusType classifies an additive modifier for stacking purposes.
// Named types other than dodge keep only the highest contribution;
// dodge always stacks; untyped stacks across distinct source keys.
type BonusType string

// Standard bonus types
const (
	BonusUntyped      BonusType = ""
	BonusEnhancement  BonusType = "enhancement"
	BonusMorale       BonusType = "morale"
	BonusLuck         BonusType = "luck"
	BonusInsight      BonusType = "insight"
	BonusSacred       BonusType = "sacred"
	BonusProfane      BonusType = "profane"
	BonusCompetence   BonusType = "competence"
	BonusCircumstance BonusType = "circumstance"
	BonusDeflection   BonusType = "deflection"
	BonusDodge        BonusType = "dodge"
	BonusArmor        BonusType = "armor"
	BonusShield       BonusType = "shield"
	BonusNaturalArmor BonusType = "natural"
	BonusResistance   BonusType = "resistance"
	BonusSize         BonusType = "size"
	BonusAlchemical   BonusType = "alchemical"
	BonusRacial       BonusType = "racial"
	BonusInherent     BonusType = "inherent"
)

// StackingPolicy decides the tie-break when two untyped contributions
// share a source key
type StackingPolicy string

// Stacking policies
const (
	StackingHighest StackingPolicy = "no_stack_highest"
	StackingLatest  StackingPolicy = "no_stack_latest"
)

// Modifier is a single adjustment to one target path, owned by exactly
// one effect or condition instance and living exactly as long as it does.
type Modifier struct {
	TargetPath string    `json:"target_path"`
	Operator   Operator  `json:"operator"`
	BonusType  BonusType `json:"bonus_type,omitempty"`
	SourceKey  string    `json:"source_key,omitempty"`
	Value      Formula   `json:"value"`
}
