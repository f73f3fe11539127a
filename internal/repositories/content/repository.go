// Package content provides the content index: read access to authored
// definitions by id. The rules engine resolves every blueprint reference
// through this interface, so definitions can be reloaded without
// touching live instances.
package content

import (
	"context"

	"github.com/ThiagoRibas-dev/dnd-text-game/internal/content"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/errors"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=contentmock github.com/ThiagoRibas-dev/dnd-text-game/internal/repositories/content Repository

// Repository is the content index boundary
type Repository interface {
	GetEffect(ctx context.Context, id string) (*content.EffectDefinition, error)
	GetCondition(ctx context.Context, id string) (*content.ConditionDefinition, error)
	GetResource(ctx context.Context, id string) (*content.ResourceDefinition, error)
	GetZone(ctx context.Context, id string) (*content.ZoneDefinition, error)

	PutEffect(ctx context.Context, def *content.EffectDefinition) error
	PutCondition(ctx context.Context, def *content.ConditionDefinition) error
	PutResource(ctx context.Context, def *content.ResourceDefinition) error
	PutZone(ctx context.Context, def *content.ZoneDefinition) error
}

var durationUnits = []string{
	string(content.DurationInstant),
	string(content.DurationRounds),
	string(content.DurationMinutes),
	string(content.DurationHours),
	string(content.DurationPermanent),
	string(content.DurationUntilRemoved),
}

// validateDefinition applies the checks every definition kind shares
// before it is stored. An empty duration unit is fine; the engine
// snapshots it as a one-round duration.
func validateDefinition(kind, id string, unit content.DurationUnit) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", id, vb)
	if unit != "" {
		errors.ValidateEnum("duration.unit", string(unit), durationUnits, vb)
	}
	if err := vb.Build(); err != nil {
		return errors.Wrapf(err, "invalid %s definition", kind)
	}
	return nil
}
