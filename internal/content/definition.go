package content

// AbilityType classifies an effect for suppression purposes: antimagic
// suppresses Supernatural, Spell-like, and Spell abilities but never
// Extraordinary ones.
type AbilityType string

// Ability types
const (
	AbilityExtraordinary AbilityType = "Ex"
	AbilitySupernatural  AbilityType = "Su"
	AbilitySpellLike     AbilityType = "Sp"
	AbilitySpell         AbilityType = "Spell"
)

// Magical reports whether the ability type is subject to antimagic and
// spell resistance rules
func (a AbilityType) Magical() bool {
	return a == AbilitySupernatural || a == AbilitySpellLike || a == AbilitySpell
}

// DurationUnit is the time unit of a duration spec
type DurationUnit string

// Duration units
const (
	DurationInstant      DurationUnit = "instant"
	DurationRounds       DurationUnit = "rounds"
	DurationMinutes      DurationUnit = "minutes"
	DurationHours        DurationUnit = "hours"
	DurationPermanent    DurationUnit = "permanent"
	DurationUntilRemoved DurationUnit = "until_removed"
)

// DurationSpec is an authored duration. Amount is evaluated once at
// attach time and the result snapshotted onto the instance.
type DurationSpec struct {
	Unit   DurationUnit `json:"unit"`
	Amount Formula      `json:"amount,omitempty"`
}

// Timed reports whether the duration counts down
func (d DurationSpec) Timed() bool {
	return d.Unit == DurationRounds || d.Unit == DurationMinutes || d.Unit == DurationHours
}

// SaveType is the saving throw rolled
type SaveType string

// Save types
const (
	SaveFortitude SaveType = "fortitude"
	SaveReflex    SaveType = "reflex"
	SaveWill      SaveType = "will"
)

// SaveEffect is what a successful save does to the effect's operations
type SaveEffect string

// Save outcomes
const (
	SaveNegates SaveEffect = "negates"
	SaveHalf    SaveEffect = "half"
	SavePartial SaveEffect = "partial"
	SaveNone    SaveEffect = "none"
)

// SaveConfig declares a saving throw gate
type SaveConfig struct {
	Type   SaveType   `json:"type"`
	DC     Formula    `json:"dc"`
	Effect SaveEffect `json:"effect"`
}

// AttackKind is the delivery mode of an attack gate
type AttackKind string

// Attack kinds
const (
	AttackMelee  AttackKind = "melee"
	AttackRanged AttackKind = "ranged"
	AttackTouch  AttackKind = "touch"
	AttackRay    AttackKind = "ray"
)

// ACType selects which armor class the attack targets
type ACType string

// AC types
const (
	ACNormal     ACType = "normal"
	ACTouch      ACType = "touch"
	ACFlatFooted ACType = "flat_footed"
)

// AttackConfig declares an attack gate
type AttackConfig struct {
	Kind AttackKind `json:"kind"`
	AC   ACType     `json:"ac"`
	// ThreatRangeMin is the lowest natural d20 roll that threatens a
	// critical (20 for most weapons, 19 for a longsword)
	ThreatRangeMin int `json:"threat_range_min,omitempty"`
	CritMultiplier int `json:"crit_multiplier,omitempty"`
	// Tags are carried onto the attack's damage packets (e.g. "silver",
	// "magic") for DR bypass matching
	Tags []string `json:"tags,omitempty"`
}

// GateConfig bundles the admission checks an effect use must pass before
// its operations apply
type GateConfig struct {
	Attack *AttackConfig `json:"attack,omitempty"`
	Save   *SaveConfig   `json:"save,omitempty"`
	// SRApplies subjects the effect to spell resistance; only honored
	// for Spell and Spell-like ability types
	SRApplies bool `json:"sr_applies,omitempty"`
}

// DREntry is one damage reduction grant: a flat amount subtracted once
// from the summed physical damage of an attack unless the attack carries
// a bypass. An empty bypass set means nothing bypasses (DR x/-).
type DREntry struct {
	Amount int `json:"amount"`
	// BypassTags lists attack tags that defeat this DR: materials
	// ("silver", "cold_iron", "adamantine"), alignments ("good",
	// "evil"), "magic", or weapon kinds ("bludgeoning", "slashing")
	BypassTags []string `json:"bypass_tags,omitempty"`
}

// EffectDefinition is the immutable blueprint of an effect (spell, feat
// benefit, special attack). Instances reference it by id only; it is
// shared across all of them and may be hot-reloaded without touching
// live instances.
type EffectDefinition struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	AbilityType AbilityType `json:"ability_type"`
	// CasterLevel feeds the caster_level symbol in this effect's
	// formulas; zero means use the source entity's level
	CasterLevel int `json:"caster_level,omitempty"`

	Stacking StackingPolicy `json:"stacking,omitempty"`
	Gates    GateConfig     `json:"gates,omitempty"`
	Duration DurationSpec   `json:"duration"`

	Modifiers []Modifier  `json:"modifiers,omitempty"`
	Hooks     []RuleHook  `json:"hooks,omitempty"`
	DR        []DREntry   `json:"dr,omitempty"`
	OnAttach  []Operation `json:"on_attach,omitempty"`
	OnRemove  []Operation `json:"on_remove,omitempty"`
	Tags      []string    `json:"tags,omitempty"`
}

// ConditionDefinition is the immutable blueprint of a status condition
type ConditionDefinition struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// Precedence orders conditions; unique per condition id. A condition
	// implied by a higher-precedence active one is not separately
	// applied.
	Precedence int `json:"precedence"`
	// Implies lists lower-precedence condition ids this one subsumes
	Implies []string `json:"implies,omitempty"`
	// AllowMultiple permits several instances from the same source
	AllowMultiple bool `json:"allow_multiple,omitempty"`

	Tags            []string     `json:"tags,omitempty"`
	Modifiers       []Modifier   `json:"modifiers,omitempty"`
	Hooks           []RuleHook   `json:"hooks,omitempty"`
	DefaultDuration DurationSpec `json:"default_duration,omitempty"`
}

// RefreshCadence is when a resource pool refreshes
type RefreshCadence string

// Refresh cadences
const (
	RefreshPerRound     RefreshCadence = "per_round"
	RefreshPerEncounter RefreshCadence = "per_encounter"
	RefreshPerDay       RefreshCadence = "per_day"
)

// RefreshBehavior is what a refresh does to the pool
type RefreshBehavior string

// Refresh behaviors
const (
	RefreshResetToCap  RefreshBehavior = "reset_to_cap"
	RefreshIncrementBy RefreshBehavior = "increment_by"
)

// AbsorptionSpec makes a resource pool ablative: incoming damage of the
// listed kinds drains the pool before hit points. "any" matches every
// kind; "physical" matches the physical subtypes.
type AbsorptionSpec struct {
	Kinds []string `json:"kinds"`
	// PerHitCap limits how much one attack can drain; zero is unlimited
	PerHitCap int `json:"per_hit_cap,omitempty"`
	// DrainOrder sorts pools when several absorb the same packet;
	// lower drains first
	DrainOrder int `json:"drain_order,omitempty"`
}

// ResourceDefinition is the immutable blueprint of a countable pool
// (spell slots, ablative HP pools, per-day uses)
type ResourceDefinition struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Capacity Formula `json:"capacity"`
	// FreezeOnAttach snapshots capacity when the pool is created instead
	// of recomputing it from the formula on refresh
	FreezeOnAttach bool `json:"freeze_on_attach,omitempty"`

	Cadence       RefreshCadence  `json:"cadence,omitempty"`
	Behavior      RefreshBehavior `json:"behavior,omitempty"`
	RefreshAmount Formula         `json:"refresh_amount,omitempty"`

	Absorption *AbsorptionSpec `json:"absorption,omitempty"`
}

// MoveThroughConfig is a skill check a zone demands from entities moving
// through it
type MoveThroughConfig struct {
	Skill  string      `json:"skill"`
	DC     Formula     `json:"dc"`
	OnFail []Operation `json:"on_fail,omitempty"`
}

// ZoneDefinition is the immutable blueprint of an area effect
type ZoneDefinition struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	AbilityType AbilityType  `json:"ability_type"`
	Duration    DurationSpec `json:"duration"`
	// Radius in squares; zero covers only the center square
	Radius int `json:"radius,omitempty"`

	// Suppresses lists ability types whose instances are suppressed on
	// entities inside the zone (antimagic)
	Suppresses []AbilityType `json:"suppresses,omitempty"`

	Hooks       []RuleHook         `json:"hooks,omitempty"`
	OnEnter     []Operation        `json:"on_enter,omitempty"`
	MoveThrough *MoveThroughConfig `json:"move_through,omitempty"`
	Tags        []string           `json:"tags,omitempty"`
}
