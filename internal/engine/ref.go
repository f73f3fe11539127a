package engine

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityRef renders a stable "type/id" identity for any toolkit entity.
// Log attributes and trace subjects use it so runtime entities and
// anything else implementing core.Entity print the same way.
func EntityRef(ent core.Entity) string {
	return fmt.Sprintf("%s/%s", ent.GetType(), ent.GetID())
}
