package content

// OperationKind discriminates the Operation variant
type OperationKind string

// Operation kinds. The execution switch in the rules engine handles every
// kind; an unknown kind is a content authoring error, skipped and logged.
const (
	OpDamage          OperationKind = "damage"
	OpHeal            OperationKind = "heal"
	OpConditionApply  OperationKind = "condition.apply"
	OpConditionRemove OperationKind = "condition.remove"
	OpResourceCreate  OperationKind = "resource.create"
	OpResourceSpend   OperationKind = "resource.spend"
	OpResourceRestore OperationKind = "resource.restore"
	OpTempHP          OperationKind = "temp_hp"
	OpZoneCreate      OperationKind = "zone.create"
	OpSave            OperationKind = "save"
	OpAttach          OperationKind = "attach"
	OpDetach          OperationKind = "detach"
	OpMove            OperationKind = "move"
	OpTransform       OperationKind = "transform"
	OpDispel          OperationKind = "dispel"
	OpSuppress        OperationKind = "suppress"
	OpSchedule        OperationKind = "schedule"
)

// DamageSpec is one authored damage packet: an amount formula, a damage
// kind (slashing, piercing, bludgeoning, fire, cold, acid, electricity,
// sonic, force, negative, positive, nonlethal) and free-form tags such as
// "silver" or "magic" that DR bypass and hooks match on.
type DamageSpec struct {
	Amount Formula  `json:"amount"`
	Kind   string   `json:"kind"`
	Tags   []string `json:"tags,omitempty"`
}

// DamageOp delivers packets through the damage pipeline
type DamageOp struct {
	Packets []DamageSpec `json:"packets"`
}

// HealOp restores hit points, or clears nonlethal damage when Nonlethal
// is set
type HealOp struct {
	Amount    Formula `json:"amount"`
	Nonlethal bool    `json:"nonlethal,omitempty"`
}

// ConditionOp applies or removes a condition on the target
type ConditionOp struct {
	ConditionID string        `json:"condition_id"`
	Duration    *DurationSpec `json:"duration,omitempty"`
}

// ResourceOp creates, spends, or restores a resource pool on the target.
// For resource.create the definition id is instantiated as a pool owned
// by the executing effect instance, so it is destroyed on detach.
type ResourceOp struct {
	ResourceID string  `json:"resource_id"`
	Amount     Formula `json:"amount,omitempty"`
}

// TempHPOp grants temporary hit points tied to the executing instance;
// the unconsumed remainder is removed when the instance detaches
type TempHPOp struct {
	Amount Formula `json:"amount"`
}

// ZoneOp creates a zone instance centered on the target's square
type ZoneOp struct {
	ZoneID string `json:"zone_id"`
	Radius int    `json:"radius,omitempty"`
}

// SaveOp rolls a saving throw on the target and branches
type SaveOp struct {
	Save      SaveConfig  `json:"save"`
	OnFail    []Operation `json:"on_fail,omitempty"`
	OnSuccess []Operation `json:"on_success,omitempty"`
}

// AttachOp attaches another effect to the target
type AttachOp struct {
	EffectID string `json:"effect_id"`
}

// DetachOp detaches instances of an effect from the target
type DetachOp struct {
	EffectID string `json:"effect_id"`
}

// MoveOp relocates the target to a grid square
type MoveOp struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// TransformOp overlays stat replacements on the target for the life of
// the executing instance; they revert when it detaches
type TransformOp struct {
	Modifiers []Modifier `json:"modifiers"`
}

// DispelOp removes magical effect instances from the target. When
// EffectID is set only instances of that effect are eligible; otherwise
// every Spell-type instance is. A dispel check (d20 + caster level vs
// 11 + instance caster level) is rolled per eligible instance.
type DispelOp struct {
	EffectID string `json:"effect_id,omitempty"`
}

// SuppressOp toggles suppression on instances of an effect
type SuppressOp struct {
	EffectID   string `json:"effect_id"`
	Unsuppress bool   `json:"unsuppress,omitempty"`
}

// ScheduleOp defers operations by a number of rounds
type ScheduleOp struct {
	DelayRounds int         `json:"delay_rounds"`
	Operations  []Operation `json:"operations"`
}

// Operation is a closed tagged variant: Kind selects which payload field
// is set. Operations are pure data executed by the owning managers.
type Operation struct {
	Kind OperationKind `json:"kind"`

	// RequiresInjury marks a rider (e.g. weapon poison) that only fires
	// when the triggering attack actually dealt physical damage
	RequiresInjury bool `json:"requires_injury,omitempty"`

	Damage    *DamageOp    `json:"damage,omitempty"`
	Heal      *HealOp      `json:"heal,omitempty"`
	Condition *ConditionOp `json:"condition,omitempty"`
	Resource  *ResourceOp  `json:"resource,omitempty"`
	TempHP    *TempHPOp    `json:"temp_hp,omitempty"`
	Zone      *ZoneOp      `json:"zone,omitempty"`
	Save      *SaveOp      `json:"save,omitempty"`
	Attach    *AttachOp    `json:"attach,omitempty"`
	Detach    *DetachOp    `json:"detach,omitempty"`
	Move      *MoveOp      `json:"move,omitempty"`
	Transform *TransformOp `json:"transform,omitempty"`
	Dispel    *DispelOp    `json:"dispel,omitempty"`
	Suppress  *SuppressOp  `json:"suppress,omitempty"`
	Schedule  *ScheduleOp  `json:"schedule,omitempty"`
}
