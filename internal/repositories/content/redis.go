package content

import (
	"context"
	"encoding/json"

	goredis "github.com/redis/go-redis/v9"

	"github.com/ThiagoRibas-dev/dnd-text-game/internal/content"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/errors"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/redis"
)

// Key prefixes for content definitions
const (
	effectKeyPrefix    = "content:effect:"
	conditionKeyPrefix = "content:condition:"
	resourceKeyPrefix  = "content:resource:"
	zoneKeyPrefix      = "content:zone:"
)

// RedisConfig holds dependencies for the Redis content index
type RedisConfig struct {
	Client redis.Client
}

// Validate ensures all required dependencies are present
func (c *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}

	return vb.Build()
}

// redisRepository stores definitions as JSON in Redis, one key per
// definition. Writing a key replaces the definition atomically, which
// is what makes content hot-reload safe for live instances that only
// hold ids.
type redisRepository struct {
	client redis.Client
}

// NewRedisRepository creates a Redis-backed content index
func NewRedisRepository(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func getJSON[T any](ctx context.Context, client redis.Client, key, id, kind string) (*T, error) {
	data, err := client.Get(ctx, key).Result()
	if err != nil {
		if err == goredis.Nil {
			return nil, errors.NotFoundf("%s definition not found: %s", kind, id).
				WithMeta("definition_id", id)
		}
		return nil, errors.Wrapf(err, "failed to get %s definition", kind).
			WithMeta("definition_id", id)
	}

	var def T
	if err := json.Unmarshal([]byte(data), &def); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal %s definition", kind).
			WithMeta("definition_id", id)
	}
	return &def, nil
}

func putJSON(ctx context.Context, client redis.Client, key, kind string, def any) error {
	data, err := json.Marshal(def)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %s definition", kind)
	}

	if err := client.Set(ctx, key, data, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to store %s definition", kind)
	}
	return nil
}

func (r *redisRepository) GetEffect(ctx context.Context, id string) (*content.EffectDefinition, error) {
	return getJSON[content.EffectDefinition](ctx, r.client, effectKeyPrefix+id, id, "effect")
}

func (r *redisRepository) GetCondition(ctx context.Context, id string) (*content.ConditionDefinition, error) {
	return getJSON[content.ConditionDefinition](ctx, r.client, conditionKeyPrefix+id, id, "condition")
}

func (r *redisRepository) GetResource(ctx context.Context, id string) (*content.ResourceDefinition, error) {
	return getJSON[content.ResourceDefinition](ctx, r.client, resourceKeyPrefix+id, id, "resource")
}

func (r *redisRepository) GetZone(ctx context.Context, id string) (*content.ZoneDefinition, error) {
	return getJSON[content.ZoneDefinition](ctx, r.client, zoneKeyPrefix+id, id, "zone")
}

func (r *redisRepository) PutEffect(ctx context.Context, def *content.EffectDefinition) error {
	if def == nil {
		return errors.InvalidArgument("effect definition is required")
	}
	if err := validateDefinition("effect", def.ID, def.Duration.Unit); err != nil {
		return err
	}
	return putJSON(ctx, r.client, effectKeyPrefix+def.ID, "effect", def)
}

func (r *redisRepository) PutCondition(ctx context.Context, def *content.ConditionDefinition) error {
	if def == nil {
		return errors.InvalidArgument("condition definition is required")
	}
	if err := validateDefinition("condition", def.ID, def.DefaultDuration.Unit); err != nil {
		return err
	}
	return putJSON(ctx, r.client, conditionKeyPrefix+def.ID, "condition", def)
}

func (r *redisRepository) PutResource(ctx context.Context, def *content.ResourceDefinition) error {
	if def == nil {
		return errors.InvalidArgument("resource definition is required")
	}
	if err := validateDefinition("resource", def.ID, ""); err != nil {
		return err
	}
	return putJSON(ctx, r.client, resourceKeyPrefix+def.ID, "resource", def)
}

func (r *redisRepository) PutZone(ctx context.Context, def *content.ZoneDefinition) error {
	if def == nil {
		return errors.InvalidArgument("zone definition is required")
	}
	if err := validateDefinition("zone", def.ID, def.Duration.Unit); err != nil {
		return err
	}
	return putJSON(ctx, r.client, zoneKeyPrefix+def.ID, "zone", def)
}
