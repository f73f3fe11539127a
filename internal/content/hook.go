package content

// HookScope names the dispatch point a rule hook listens on
type HookScope string

// Hook scopes (closed set)
const (
	ScopeIncomingEffect HookScope = "incoming.effect"
	ScopeIncomingDamage HookScope = "incoming.damage"
	ScopeAttackPre      HookScope = "on.attack.pre"
	ScopeAttackPost     HookScope = "on.attack.post"
	ScopeSavePre        HookScope = "on.save.pre"
	ScopeSavePost       HookScope = "on.save.post"
	ScopeTurnStart      HookScope = "scheduler.turn.start"
	ScopeTurnEnd        HookScope = "scheduler.turn.end"
)

// HookMatch narrows which events a hook fires on. Empty fields match
// everything.
type HookMatch struct {
	// DamageKinds filters incoming.damage by packet kind
	DamageKinds []string `json:"damage_kinds,omitempty"`
	// Tags filters by packet or effect tags
	Tags []string `json:"tags,omitempty"`
	// AbilityTypes filters incoming.effect by the effect's ability type
	AbilityTypes []AbilityType `json:"ability_types,omitempty"`
}

// HookActionKind discriminates the HookAction variant
type HookActionKind string

// Hook action kinds. Damage-affecting actions (convert, multiply, cap,
// absorb_into_pool, reflect) are declarative: dispatch returns them as
// results and the calling pipeline stage applies them, so hooks never
// mutate entity state mid-dispatch.
const (
	ActionConvert        HookActionKind = "convert"
	ActionMultiply       HookActionKind = "multiply"
	ActionCap            HookActionKind = "cap"
	ActionAbsorbIntoPool HookActionKind = "absorb_into_pool"
	ActionReflect        HookActionKind = "reflect"
	ActionSetOutcome     HookActionKind = "set_outcome"
	ActionModifyRoll     HookActionKind = "modify_roll"
	ActionReroll         HookActionKind = "reroll"
	ActionRunOperations  HookActionKind = "run_operations"
)

// HookAction is one typed action in a hook's ordered action list
type HookAction struct {
	Kind HookActionKind `json:"kind"`

	// ConvertTo is the damage kind packets become (convert)
	ConvertTo string `json:"convert_to,omitempty"`
	// Factor scales matching damage (multiply) or sets the reflected
	// fraction (reflect)
	Factor Formula `json:"factor,omitempty"`
	// Limit caps matching damage (cap)
	Limit Formula `json:"limit,omitempty"`
	// PoolID routes matching damage into an absorption pool
	PoolID string `json:"pool_id,omitempty"`
	// Outcome forces a gate result: "miss", "negate" (set_outcome)
	Outcome string `json:"outcome,omitempty"`
	// Bonus adjusts an in-flight roll total (modify_roll)
	Bonus Formula `json:"bonus,omitempty"`
	// Operations run against the event's subject (run_operations,
	// scheduler scopes)
	Operations []Operation `json:"operations,omitempty"`
}

// RuleHook is a scoped listener owned by the effect or zone instance
// that registered it; it is removed when that instance detaches.
type RuleHook struct {
	Scope    HookScope    `json:"scope"`
	Match    HookMatch    `json:"match,omitempty"`
	Priority int          `json:"priority,omitempty"`
	Actions  []HookAction `json:"actions"`
}
