package engine

import "fmt"

// EntryKind classifies a trace entry
type EntryKind string

// Trace entry kinds
const (
	EntryRoll     EntryKind = "roll"
	EntryModifier EntryKind = "modifier"
	EntryStacking EntryKind = "stacking"
	EntryGate     EntryKind = "gate"
	EntryDamage   EntryKind = "damage"
	EntryWarning  EntryKind = "warning"
	EntryInfo     EntryKind = "info"
)

// Entry is one line of the explain trace
type Entry struct {
	Kind    EntryKind `json:"kind"`
	Message string    `json:"message"`
	Value   float64   `json:"value,omitempty"`
}

// Trace is the ordered record of everything a resolution consulted and
// decided: rolls, modifiers, stacking choices, gate outcomes, damage
// stages. The external explain feature renders it verbatim.
type Trace struct {
	Entries []Entry `json:"entries"`
}

// NewTrace creates an empty trace
func NewTrace() *Trace {
	return &Trace{}
}

func (t *Trace) add(kind EntryKind, value float64, format string, args ...any) {
	if t == nil {
		return
	}
	t.Entries = append(t.Entries, Entry{Kind: kind, Message: fmt.Sprintf(format, args...), Value: value})
}

// Roll records a die roll
func (t *Trace) Roll(value int, format string, args ...any) {
	t.add(EntryRoll, float64(value), format, args...)
}

// Modifier records a consulted modifier contribution
func (t *Trace) Modifier(value float64, format string, args ...any) {
	t.add(EntryModifier, value, format, args...)
}

// Stacking records a stacking decision (kept/dropped and why)
func (t *Trace) Stacking(value float64, format string, args ...any) {
	t.add(EntryStacking, value, format, args...)
}

// Gate records a gate outcome
func (t *Trace) Gate(value float64, format string, args ...any) {
	t.add(EntryGate, value, format, args...)
}

// Damage records a damage pipeline stage
func (t *Trace) Damage(value float64, format string, args ...any) {
	t.add(EntryDamage, value, format, args...)
}

// Warn records a non-fatal problem (authoring conflict, missing id,
// skipped operation)
func (t *Trace) Warn(format string, args ...any) {
	t.add(EntryWarning, 0, format, args...)
}

// Info records a lifecycle event
func (t *Trace) Info(format string, args ...any) {
	t.add(EntryInfo, 0, format, args...)
}

// Count returns how many entries of the given kind were recorded
func (t *Trace) Count(kind EntryKind) int {
	n := 0
	for _, e := range t.Entries {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// GateResult is the structured outcome of one admission check
type GateResult struct {
	// Gate names the check: "attack", "confirm", "miss_chance", "save", "sr"
	Gate string `json:"gate"`
	// Natural is the raw die result before modifiers
	Natural int `json:"natural"`
	// Total is the modified result compared against the target number
	Total int `json:"total"`
	// Against is the AC, DC, or SR compared against
	Against int  `json:"against"`
	Passed  bool `json:"passed"`
	// Branch is the save policy branch taken: negates, half, partial, none
	Branch string `json:"branch,omitempty"`
}

// DamageStage is one pipeline stage's effect on the running totals
type DamageStage struct {
	Stage     string  `json:"stage"`
	Detail    string  `json:"detail,omitempty"`
	Remaining float64 `json:"remaining"`
}
