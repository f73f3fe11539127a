package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ThiagoRibas-dev/dnd-text-game/internal/engine"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/entities"
)

func TestEntityRef(t *testing.T) {
	ent := &entities.Entity{ID: "orc-1", Type: entities.TypeMonster, Name: "Orc Veteran"}
	assert.Equal(t, "monster/orc-1", engine.EntityRef(ent))
}
