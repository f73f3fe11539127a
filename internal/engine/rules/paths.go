package rules

import (
	"strings"

	"github.com/ThiagoRibas-dev/dnd-text-game/internal/content"
)

// pathMeta describes one entry of the closed target path registry
type pathMeta struct {
	// requireBonusType forces additive modifiers on this path to carry
	// a bonus type (AC is the canonical case)
	requireBonusType bool
	// allowedOps restricts operators; empty allows all
	allowedOps []content.Operator
}

func (m *pathMeta) allows(op content.Operator) bool {
	if len(m.allowedOps) == 0 {
		return true
	}
	for _, a := range m.allowedOps {
		if a == op {
			return true
		}
	}
	return false
}

type prefixEntry struct {
	prefix string
	meta   *pathMeta
}

// pathRegistry is the closed set of mutable facets modifiers may
// target. Exact entries are consulted first, then prefix entries.
// Unknown paths are an authoring error: the modifier is skipped and
// logged, never fatal.
type pathRegistry struct {
	exact    map[string]*pathMeta
	prefixes []prefixEntry
}

func newPathRegistry() *pathRegistry {
	numeric := &pathMeta{}
	return &pathRegistry{
		exact: map[string]*pathMeta{
			"combat.bab":    numeric,
			"combat.attack": numeric,
			"combat.damage": numeric,
			"ac":            {requireBonusType: true},
			"sr":            numeric,
			"speed":         numeric,
			"concealment":   numeric,
		},
		prefixes: []prefixEntry{
			{prefix: "abilities.", meta: numeric},
			{prefix: "saves.", meta: numeric},
			{prefix: "resist.", meta: numeric},
			{prefix: "immunity.", meta: numeric},
			{prefix: "vulnerability.", meta: numeric},
			{prefix: "checks.", meta: numeric},
		},
	}
}

// resolve returns the metadata for a path, or nil for an unknown path
func (r *pathRegistry) resolve(path string) *pathMeta {
	if m, ok := r.exact[path]; ok {
		return m
	}
	for _, p := range r.prefixes {
		if strings.HasPrefix(path, p.prefix) {
			return p.meta
		}
	}
	return nil
}
