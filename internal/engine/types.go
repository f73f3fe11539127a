package engine

import (
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/content"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/entities"
)

// DamagePacket is one resolved packet of incoming damage. Amount may be
// fractional until the pipeline floors the final result.
type DamagePacket struct {
	Amount float64  `json:"amount"`
	Kind   string   `json:"kind"`
	Tags   []string `json:"tags,omitempty"`
}

// AttachEffectInput attaches an effect blueprint to a target
type AttachEffectInput struct {
	EffectID string
	SourceID string
	TargetID string
	// Choices binds author-declared choice variables for this use
	Choices map[string]float64
}

// AttachEffectOutput reports what attaching did
type AttachEffectOutput struct {
	// InstanceID is empty when a gate refused the effect entirely
	InstanceID string
	Applied    bool
	Gates      []GateResult
	Trace      *Trace
}

// DetachEffectInput removes an effect instance
type DetachEffectInput struct {
	InstanceID string
}

// DetachEffectOutput reports the detach; Detached is false when the
// instance was already gone (detach is idempotent)
type DetachEffectOutput struct {
	Detached bool
	Trace    *Trace
}

// ApplyConditionInput applies a status condition
type ApplyConditionInput struct {
	ConditionID string
	SourceID    string
	TargetID    string
	// Duration overrides the condition's default duration
	Duration *content.DurationSpec
}

// ApplyConditionOutput reports the application
type ApplyConditionOutput struct {
	InstanceID string
	// Applied is false when a higher-precedence condition already
	// implies this one, or a duplicate merely refreshed
	Applied bool
	Trace   *Trace
}

// RemoveConditionInput removes a condition by id and optional source
type RemoveConditionInput struct {
	TargetID    string
	ConditionID string
	// SourceID narrows removal to instances from one source; empty
	// removes all instances of the condition
	SourceID string
}

// RemoveConditionOutput reports the removal
type RemoveConditionOutput struct {
	Removed int
	Trace   *Trace
}

// CreateResourceInput instantiates a resource pool on an entity
type CreateResourceInput struct {
	EntityID   string
	ResourceID string
}

// CreateResourceOutput reports the created pool
type CreateResourceOutput struct {
	Capacity int
	Current  int
	Trace    *Trace
}

// SpendResourceInput spends from a pool
type SpendResourceInput struct {
	EntityID   string
	ResourceID string
	Amount     int
}

// SpendResourceOutput reports the spend. OK is false when the pool had
// insufficient current value; state is then unchanged.
type SpendResourceOutput struct {
	OK      bool
	Current int
	Trace   *Trace
}

// RestoreResourceInput restores into a pool, clamped at capacity
type RestoreResourceInput struct {
	EntityID   string
	ResourceID string
	Amount     int
}

// RestoreResourceOutput reports the restore
type RestoreResourceOutput struct {
	Current int
	Trace   *Trace
}

// RefreshResourcesInput fires a refresh boundary. EntityID empty means
// every entity. The scheduler calls this for per_round; encounter and
// day boundaries are signaled by the caller.
type RefreshResourcesInput struct {
	EntityID string
	Cadence  content.RefreshCadence
}

// RefreshResourcesOutput lists the pools refreshed
type RefreshResourcesOutput struct {
	Refreshed []string
	Trace     *Trace
}

// ResolveAttackInput rolls an attack against a target
type ResolveAttackInput struct {
	AttackerID string
	TargetID   string
	Attack     content.AttackConfig
}

// ResolveAttackOutput is the structured attack result
type ResolveAttackOutput struct {
	Hit      bool
	Threat   bool
	Critical bool
	// Multiplier is the damage multiplier to apply (1, or the weapon's
	// crit multiplier on a confirmed critical)
	Multiplier int
	Results    []GateResult
	Trace      *Trace
}

// ResolveSaveInput rolls a saving throw
type ResolveSaveInput struct {
	EntityID string
	SourceID string
	Save     content.SaveConfig
}

// ResolveSaveOutput is the structured save result
type ResolveSaveOutput struct {
	Result GateResult
	Trace  *Trace
}

// ResolveSRInput checks caster level against spell resistance
type ResolveSRInput struct {
	CasterID    string
	TargetID    string
	CasterLevel int
	AbilityType content.AbilityType
}

// ResolveSROutput is the structured SR result. Applicable is false when
// the target has no SR or the ability type is not subject to it; the
// effect then applies without a check.
type ResolveSROutput struct {
	Applicable bool
	Result     GateResult
	Trace      *Trace
}

// ApplyDamageInput delivers resolved packets to a target
type ApplyDamageInput struct {
	SourceID string
	TargetID string
	Packets  []DamagePacket
}

// ApplyDamageOutput is the stage-by-stage outcome
type ApplyDamageOutput struct {
	// TotalApplied is the final HP loss after every stage
	TotalApplied int
	// PhysicalApplied is the physical portion that got through; riders
	// conditioned on injury check this
	PhysicalApplied  int
	NonlethalApplied int
	TempHPAbsorbed   int
	PoolAbsorbed     int
	Stages           []DamageStage
	Trace            *Trace
}

// AdvanceInput moves game time forward
type AdvanceInput struct {
	Rounds int
}

// AdvanceOutput reports what time's passage did
type AdvanceOutput struct {
	Round int
	// Expired lists instance ids detached by duration expiry
	Expired []string
	Trace   *Trace
}

// CreateZoneInput places a zone instance on the grid
type CreateZoneInput struct {
	ZoneID   string
	SourceID string
	Center   entities.Position
}

// CreateZoneOutput reports the created zone
type CreateZoneOutput struct {
	InstanceID string
	Trace      *Trace
}

// MoveEntityInput relocates an entity, triggering zone move-through
// checks and suppression re-evaluation
type MoveEntityInput struct {
	EntityID string
	To       entities.Position
}

// MoveEntityOutput reports the move
type MoveEntityOutput struct {
	Moved bool
	Trace *Trace
}

// SuppressInstanceInput manually suppresses an effect instance
type SuppressInstanceInput struct {
	InstanceID string
}

// SuppressInstanceOutput reports the suppression
type SuppressInstanceOutput struct {
	Trace *Trace
}

// UnsuppressInstanceInput lifts a manual suppression
type UnsuppressInstanceInput struct {
	InstanceID string
}

// UnsuppressInstanceOutput reports the unsuppression
type UnsuppressInstanceOutput struct {
	Trace *Trace
}

// ResolveStatInput computes the effective value of a target path on an
// entity, with the full stacking derivation in the trace
type ResolveStatInput struct {
	EntityID string
	Path     string
}

// ResolveStatOutput is the derived value
type ResolveStatOutput struct {
	Value float64
	Trace *Trace
}
