// Package content defines the immutable blueprint types that authored game
// content is loaded into: effect, condition, resource, and zone definitions,
// plus the modifier, operation, and rule-hook payloads they carry. Blueprints
// hold no behavior; the rules engine interprets them.
package content

import (
	"encoding/json"
	"strconv"
)

// Formula is a numeric value that content may author either as a literal
// or as an expression string ("caster_level * 5", "ability_mod('str')").
// Literals skip the expression engine entirely.
type Formula struct {
	Literal *float64 `json:"literal,omitempty"`
	Source  string   `json:"source,omitempty"`
}

// Lit builds a literal formula
func Lit(v float64) Formula {
	return Formula{Literal: &v}
}

// Expr builds an expression formula
func Expr(source string) Formula {
	return Formula{Source: source}
}

// IsZero reports whether the formula is unset
func (f Formula) IsZero() bool {
	return f.Literal == nil && f.Source == ""
}

// String returns the authored form
func (f Formula) String() string {
	if f.Literal != nil {
		return strconv.FormatFloat(*f.Literal, 'g', -1, 64)
	}
	return f.Source
}

// UnmarshalJSON accepts a bare number or an expression string
func (f *Formula) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		f.Literal = &n
		f.Source = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	f.Literal = nil
	f.Source = s
	return nil
}

// MarshalJSON emits the compact authored form
func (f Formula) MarshalJSON() ([]byte, error) {
	if f.Literal != nil {
		return json.Marshal(*f.Literal)
	}
	return json.Marshal(f.Source)
}
