package content

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/ThiagoRibas-dev/dnd-text-game/internal/content"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/errors"
)

// cloneDefinition copies a definition through its JSON form, the same
// encoding the redis repository round-trips, so a caller mutating the
// returned value never alters the stored blueprint.
func cloneDefinition[T any](def *T) (*T, error) {
	raw, err := json.Marshal(def)
	if err != nil {
		return nil, errors.Wrap(err, "failed to copy definition")
	}
	out := new(T)
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, errors.Wrap(err, "failed to copy definition")
	}
	return out, nil
}

// memoryRepository keeps definitions in process memory. It is the
// default index for demos and tests.
type memoryRepository struct {
	mu         sync.RWMutex
	effects    map[string]*content.EffectDefinition
	conditions map[string]*content.ConditionDefinition
	resources  map[string]*content.ResourceDefinition
	zones      map[string]*content.ZoneDefinition
}

// NewMemoryRepository creates an empty in-memory content index
func NewMemoryRepository() Repository {
	return &memoryRepository{
		effects:    make(map[string]*content.EffectDefinition),
		conditions: make(map[string]*content.ConditionDefinition),
		resources:  make(map[string]*content.ResourceDefinition),
		zones:      make(map[string]*content.ZoneDefinition),
	}
}

func (r *memoryRepository) GetEffect(_ context.Context, id string) (*content.EffectDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.effects[id]
	if !ok {
		return nil, errors.NotFoundf("effect definition not found: %s", id).
			WithMeta("definition_id", id)
	}
	return cloneDefinition(def)
}

func (r *memoryRepository) GetCondition(_ context.Context, id string) (*content.ConditionDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.conditions[id]
	if !ok {
		return nil, errors.NotFoundf("condition definition not found: %s", id).
			WithMeta("definition_id", id)
	}
	return cloneDefinition(def)
}

func (r *memoryRepository) GetResource(_ context.Context, id string) (*content.ResourceDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.resources[id]
	if !ok {
		return nil, errors.NotFoundf("resource definition not found: %s", id).
			WithMeta("definition_id", id)
	}
	return cloneDefinition(def)
}

func (r *memoryRepository) GetZone(_ context.Context, id string) (*content.ZoneDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.zones[id]
	if !ok {
		return nil, errors.NotFoundf("zone definition not found: %s", id).
			WithMeta("definition_id", id)
	}
	return cloneDefinition(def)
}

func (r *memoryRepository) PutEffect(_ context.Context, def *content.EffectDefinition) error {
	if def == nil {
		return errors.InvalidArgument("effect definition is required")
	}
	if err := validateDefinition("effect", def.ID, def.Duration.Unit); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.effects[def.ID] = def
	return nil
}

func (r *memoryRepository) PutCondition(_ context.Context, def *content.ConditionDefinition) error {
	if def == nil {
		return errors.InvalidArgument("condition definition is required")
	}
	if err := validateDefinition("condition", def.ID, def.DefaultDuration.Unit); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conditions[def.ID] = def
	return nil
}

func (r *memoryRepository) PutResource(_ context.Context, def *content.ResourceDefinition) error {
	if def == nil {
		return errors.InvalidArgument("resource definition is required")
	}
	if err := validateDefinition("resource", def.ID, ""); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resources[def.ID] = def
	return nil
}

func (r *memoryRepository) PutZone(_ context.Context, def *content.ZoneDefinition) error {
	if def == nil {
		return errors.InvalidArgument("zone definition is required")
	}
	if err := validateDefinition("zone", def.ID, def.Duration.Unit); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.zones[def.ID] = def
	return nil
}
