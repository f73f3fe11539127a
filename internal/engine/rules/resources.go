package rules

import (
	"context"
	"sort"

	"github.com/ThiagoRibas-dev/dnd-text-game/internal/content"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/engine"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/entities"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/errors"
)

// resourcePool is the live state of one resource on one entity.
// Capacity is recomputed from the definition's formula on refresh
// unless frozen; current persists across recomputation.
type resourcePool struct {
	key      string
	defID    string
	name     string
	entityID string

	capacity int
	current  int
	frozen   bool

	cadence       content.RefreshCadence
	behavior      content.RefreshBehavior
	refreshAmount content.Formula
	capacityF     content.Formula

	absorption *content.AbsorptionSpec

	// ownerInstance ties an effect-created pool (stoneskin) to its
	// instance; empty for innate pools
	ownerInstance string

	seq int
}

func poolKey(entityID, resourceID string) string {
	return entityID + "/" + resourceID
}

// poolsFor returns an entity's pools in creation order
func (e *rulesEngine) poolsFor(entityID string) []*resourcePool {
	var out []*resourcePool
	for _, p := range e.pools {
		if p.entityID == entityID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}

// absorbingPools returns an entity's ablative pools in drain order
func (e *rulesEngine) absorbingPools(entityID string) []*resourcePool {
	var out []*resourcePool
	for _, p := range e.poolsFor(entityID) {
		if p.absorption != nil && p.current > 0 {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].absorption.DrainOrder < out[j].absorption.DrainOrder
	})
	return out
}

func (e *rulesEngine) createPool(ctx context.Context, ent *entities.Entity, resourceID, ownerInstance string, casterLevel int, trace *engine.Trace) (*resourcePool, error) {
	def, err := e.repo.GetResource(ctx, resourceID)
	if err != nil {
		return nil, err
	}

	env := e.evalEnv(ent, casterLevel, 0, nil, false)
	capacity, err := e.exprs.eval(def.Capacity, env)
	if err != nil {
		trace.Warn("capacity formula failed for %s: %v", def.ID, err)
		capacity = 0
	}

	key := poolKey(ent.ID, def.ID)
	if existing, ok := e.pools[key]; ok {
		// re-creating tops the pool back up to capacity
		existing.capacity = int(capacity)
		existing.current = existing.capacity
		trace.Info("%s pool refilled to %d", def.Name, existing.current)
		return existing, nil
	}

	pool := &resourcePool{
		key:           key,
		defID:         def.ID,
		name:          def.Name,
		entityID:      ent.ID,
		capacity:      int(capacity),
		current:       int(capacity),
		frozen:        def.FreezeOnAttach,
		cadence:       def.Cadence,
		behavior:      def.Behavior,
		refreshAmount: def.RefreshAmount,
		capacityF:     def.Capacity,
		absorption:    def.Absorption,
		ownerInstance: ownerInstance,
		seq:           e.nextSeq(),
	}
	e.pools[key] = pool
	trace.Info("%s pool created on %s: %d/%d", def.Name, ent.Name, pool.current, pool.capacity)
	return pool, nil
}

// CreateResource instantiates an innate resource pool on an entity
func (e *rulesEngine) CreateResource(ctx context.Context, input *engine.CreateResourceInput) (*engine.CreateResourceOutput, error) {
	if input == nil || input.EntityID == "" || input.ResourceID == "" {
		return nil, errors.InvalidArgument("entity id and resource id are required")
	}
	ent, err := e.entity(input.EntityID)
	if err != nil {
		return nil, err
	}

	trace := engine.NewTrace()
	pool, err := e.createPool(ctx, ent, input.ResourceID, "", 0, trace)
	if err != nil {
		return nil, err
	}
	return &engine.CreateResourceOutput{Capacity: pool.capacity, Current: pool.current, Trace: trace}, nil
}

// SpendResource spends from a pool. Insufficient current value is a
// normal outcome, not an error: OK is false and the pool is unchanged.
func (e *rulesEngine) SpendResource(_ context.Context, input *engine.SpendResourceInput) (*engine.SpendResourceOutput, error) {
	if input == nil || input.EntityID == "" || input.ResourceID == "" {
		return nil, errors.InvalidArgument("entity id and resource id are required")
	}
	if input.Amount < 0 {
		return nil, errors.InvalidArgumentf("spend amount must be non-negative, got %d", input.Amount)
	}

	trace := engine.NewTrace()
	pool, ok := e.pools[poolKey(input.EntityID, input.ResourceID)]
	if !ok {
		return nil, errors.NotFoundf("resource pool not found: %s on %s", input.ResourceID, input.EntityID)
	}

	if pool.current < input.Amount {
		trace.Info("%s has %d, cannot spend %d", pool.name, pool.current, input.Amount)
		return &engine.SpendResourceOutput{OK: false, Current: pool.current, Trace: trace}, nil
	}

	pool.current -= input.Amount
	trace.Info("%s spends %d, %d remain", pool.name, input.Amount, pool.current)
	return &engine.SpendResourceOutput{OK: true, Current: pool.current, Trace: trace}, nil
}

// RestoreResource restores into a pool, clamped at capacity
func (e *rulesEngine) RestoreResource(_ context.Context, input *engine.RestoreResourceInput) (*engine.RestoreResourceOutput, error) {
	if input == nil || input.EntityID == "" || input.ResourceID == "" {
		return nil, errors.InvalidArgument("entity id and resource id are required")
	}

	trace := engine.NewTrace()
	pool, ok := e.pools[poolKey(input.EntityID, input.ResourceID)]
	if !ok {
		return nil, errors.NotFoundf("resource pool not found: %s on %s", input.ResourceID, input.EntityID)
	}

	pool.current += input.Amount
	if pool.current > pool.capacity {
		pool.current = pool.capacity
	}
	trace.Info("%s restored to %d/%d", pool.name, pool.current, pool.capacity)
	return &engine.RestoreResourceOutput{Current: pool.current, Trace: trace}, nil
}

// RefreshResources fires a refresh boundary for one entity or everyone.
// The scheduler drives per_round; encounter and day boundaries come
// from the caller.
func (e *rulesEngine) RefreshResources(_ context.Context, input *engine.RefreshResourcesInput) (*engine.RefreshResourcesOutput, error) {
	if input == nil || input.Cadence == "" {
		return nil, errors.InvalidArgument("cadence is required")
	}

	trace := engine.NewTrace()
	out := &engine.RefreshResourcesOutput{Trace: trace}

	for _, pool := range e.allPoolsOrdered() {
		if input.EntityID != "" && pool.entityID != input.EntityID {
			continue
		}
		if pool.cadence != input.Cadence {
			continue
		}
		e.refreshPool(pool, trace)
		out.Refreshed = append(out.Refreshed, pool.key)
	}
	return out, nil
}

func (e *rulesEngine) allPoolsOrdered() []*resourcePool {
	out := make([]*resourcePool, 0, len(e.pools))
	for _, p := range e.pools {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}

func (e *rulesEngine) refreshPool(pool *resourcePool, trace *engine.Trace) {
	ent, ok := e.state.Get(pool.entityID)
	if !ok {
		return
	}

	if !pool.frozen {
		env := e.evalEnv(ent, 0, 0, nil, false)
		if capacity, err := e.exprs.eval(pool.capacityF, env); err == nil {
			pool.capacity = int(capacity)
		} else {
			trace.Warn("capacity recompute failed for %s: %v", pool.defID, err)
		}
	}

	switch pool.behavior {
	case content.RefreshIncrementBy:
		env := e.evalEnv(ent, 0, 0, nil, false)
		amount, err := e.exprs.eval(pool.refreshAmount, env)
		if err != nil {
			trace.Warn("refresh formula failed for %s: %v", pool.defID, err)
			return
		}
		pool.current += int(amount)
		if pool.current > pool.capacity {
			pool.current = pool.capacity
		}
	default:
		pool.current = pool.capacity
	}
	trace.Info("%s refreshed to %d/%d", pool.name, pool.current, pool.capacity)
}
