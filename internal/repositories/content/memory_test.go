package content_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThiagoRibas-dev/dnd-text-game/internal/content"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/errors"
	contentrepo "github.com/ThiagoRibas-dev/dnd-text-game/internal/repositories/content"
)

func TestMemoryRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := contentrepo.NewMemoryRepository()

	def := &content.EffectDefinition{
		ID:          "bulls_strength",
		Name:        "Bull's Strength",
		AbilityType: content.AbilitySpell,
		Duration:    content.DurationSpec{Unit: content.DurationMinutes, Amount: content.Expr("caster_level")},
	}
	require.NoError(t, repo.PutEffect(ctx, def))

	got, err := repo.GetEffect(ctx, "bulls_strength")
	require.NoError(t, err)
	assert.Equal(t, "Bull's Strength", got.Name)
}

func TestMemoryRepositoryGetCopiesTheDefinition(t *testing.T) {
	ctx := context.Background()
	repo := contentrepo.NewMemoryRepository()

	require.NoError(t, repo.PutEffect(ctx, &content.EffectDefinition{
		ID:   "bulls_strength",
		Name: "Bull's Strength",
		Modifiers: []content.Modifier{
			{TargetPath: "abilities.str.score", Operator: content.OperatorAdd, Value: content.Lit(4)},
		},
	}))

	first, err := repo.GetEffect(ctx, "bulls_strength")
	require.NoError(t, err)
	first.Name = "mangled"
	first.Modifiers[0].Value = content.Lit(40)

	second, err := repo.GetEffect(ctx, "bulls_strength")
	require.NoError(t, err)
	assert.Equal(t, "Bull's Strength", second.Name, "the stored blueprint is untouched")
	assert.Equal(t, content.Lit(4), second.Modifiers[0].Value)
}

func TestMemoryRepositoryNotFound(t *testing.T) {
	ctx := context.Background()
	repo := contentrepo.NewMemoryRepository()

	_, err := repo.GetEffect(ctx, "missing")
	assert.True(t, errors.IsNotFound(err))

	_, err = repo.GetCondition(ctx, "missing")
	assert.True(t, errors.IsNotFound(err))

	_, err = repo.GetResource(ctx, "missing")
	assert.True(t, errors.IsNotFound(err))

	_, err = repo.GetZone(ctx, "missing")
	assert.True(t, errors.IsNotFound(err))
}

func TestMemoryRepositoryRejectsEmptyID(t *testing.T) {
	ctx := context.Background()
	repo := contentrepo.NewMemoryRepository()

	err := repo.PutEffect(ctx, &content.EffectDefinition{})
	assert.True(t, errors.IsInvalidArgument(err))

	err = repo.PutZone(ctx, nil)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestMemoryRepositoryRejectsUnknownDurationUnit(t *testing.T) {
	ctx := context.Background()
	repo := contentrepo.NewMemoryRepository()

	err := repo.PutEffect(ctx, &content.EffectDefinition{
		ID:       "bulls_strength",
		Duration: content.DurationSpec{Unit: "fortnights", Amount: content.Lit(2)},
	})
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestMemoryRepositoryReplaceKeepsID(t *testing.T) {
	ctx := context.Background()
	repo := contentrepo.NewMemoryRepository()

	require.NoError(t, repo.PutCondition(ctx, &content.ConditionDefinition{ID: "prone", Precedence: 10}))
	require.NoError(t, repo.PutCondition(ctx, &content.ConditionDefinition{ID: "prone", Precedence: 12}))

	got, err := repo.GetCondition(ctx, "prone")
	require.NoError(t, err)
	assert.Equal(t, 12, got.Precedence)
}
