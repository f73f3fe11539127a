package combat

import (
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/content"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/engine"
)

// AttackInput is one full attack: the gate configuration plus the
// damage the weapon deals on a hit. Packet amounts are already rolled
// or fixed; criticals multiply them.
type AttackInput struct {
	AttackerID string
	TargetID   string
	Attack     content.AttackConfig
	Damage     []engine.DamagePacket
	// RiderEffectIDs are attached to the target after a hit (weapon
	// poison, flaming burst); each resolves its own gates
	RiderEffectIDs []string
}

// AttackOutput is the resolved attack and, when it hit, the applied
// damage
type AttackOutput struct {
	Hit        bool
	Critical   bool
	Multiplier int
	// DamageDealt is the target's final HP loss; zero on a miss
	DamageDealt int
	Gates       []engine.GateResult
	Trace       *engine.Trace
}

// CastEffectInput attaches an authored effect, resolving its gates
type CastEffectInput struct {
	CasterID string
	TargetID string
	EffectID string
	Choices  map[string]float64
}

// CastEffectOutput reports the cast
type CastEffectOutput struct {
	Applied    bool
	InstanceID string
	Gates      []engine.GateResult
	Trace      *engine.Trace
}

// AdvanceTimeInput moves the encounter clock forward
type AdvanceTimeInput struct {
	Rounds int
}

// AdvanceTimeOutput reports the rounds passed and what expired
type AdvanceTimeOutput struct {
	Round   int
	Expired []string
	Trace   *engine.Trace
}

// ExplainInput asks for a stat with its full derivation
type ExplainInput struct {
	EntityID string
	Path     string
}

// ExplainOutput is the stat value and the trace that produced it
type ExplainOutput struct {
	Value float64
	Trace *engine.Trace
}
