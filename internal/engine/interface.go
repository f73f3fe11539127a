// Package engine defines the boundary the rules-resolution core exposes
// to the rest of the game: effect lifecycle, conditions, resources,
// gates, the damage pipeline, and the time scheduler. Every operation
// returns a structured trace for the explain feature.
package engine

import "context"

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/ThiagoRibas-dev/dnd-text-game/internal/engine Engine

// Engine is the rules-resolution core. Implementations are synchronous
// and single-threaded: one call fully resolves before returning.
type Engine interface {
	// Effect lifecycle
	AttachEffect(ctx context.Context, input *AttachEffectInput) (*AttachEffectOutput, error)
	DetachEffect(ctx context.Context, input *DetachEffectInput) (*DetachEffectOutput, error)
	SuppressInstance(ctx context.Context, input *SuppressInstanceInput) (*SuppressInstanceOutput, error)
	UnsuppressInstance(ctx context.Context, input *UnsuppressInstanceInput) (*UnsuppressInstanceOutput, error)

	// Conditions
	ApplyCondition(ctx context.Context, input *ApplyConditionInput) (*ApplyConditionOutput, error)
	RemoveCondition(ctx context.Context, input *RemoveConditionInput) (*RemoveConditionOutput, error)

	// Resources
	CreateResource(ctx context.Context, input *CreateResourceInput) (*CreateResourceOutput, error)
	SpendResource(ctx context.Context, input *SpendResourceInput) (*SpendResourceOutput, error)
	RestoreResource(ctx context.Context, input *RestoreResourceInput) (*RestoreResourceOutput, error)
	RefreshResources(ctx context.Context, input *RefreshResourcesInput) (*RefreshResourcesOutput, error)

	// Gates
	ResolveAttack(ctx context.Context, input *ResolveAttackInput) (*ResolveAttackOutput, error)
	ResolveSave(ctx context.Context, input *ResolveSaveInput) (*ResolveSaveOutput, error)
	ResolveSR(ctx context.Context, input *ResolveSRInput) (*ResolveSROutput, error)

	// Damage pipeline
	ApplyDamage(ctx context.Context, input *ApplyDamageInput) (*ApplyDamageOutput, error)

	// Time and space
	Advance(ctx context.Context, input *AdvanceInput) (*AdvanceOutput, error)
	CreateZone(ctx context.Context, input *CreateZoneInput) (*CreateZoneOutput, error)
	MoveEntity(ctx context.Context, input *MoveEntityInput) (*MoveEntityOutput, error)

	// Derived stats
	ResolveStat(ctx context.Context, input *ResolveStatInput) (*ResolveStatOutput, error)
}
