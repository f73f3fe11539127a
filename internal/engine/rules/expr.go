// Package rules implements the rules-resolution core behind the engine
// boundary: formula evaluation, modifier stacking, effect/condition/
// resource/zone lifecycle, rule-hook dispatch, the SR/save/attack gates,
// the damage pipeline, and the round scheduler. The components are
// mutually recursive, so they live in one package.
package rules

import (
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ThiagoRibas-dev/dnd-text-game/internal/content"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/errors"
)

// compileEnv is the typed prototype the compiler checks formulas
// against. Any identifier not present here (and not an expr builtin
// like min/max/floor/ceil) is rejected at compile time.
var compileEnv = map[string]any{
	"level":           float64(0),
	"caster_level":    float64(0),
	"initiator_level": float64(0),
	"hd":              float64(0),
	"ability_mod":     func(name string) float64 { return 0 },
	"class_level":     func(name string) float64 { return 0 },
	"choice":          func(name string) float64 { return 0 },
}

// exprCache compiles formula text once and caches the program by exact
// source text. Programs are pure; evaluation never mutates them, so the
// same cached program serves every instance of the same formula.
type exprCache struct {
	mu       sync.RWMutex
	programs map[string]*vm.Program
}

func newExprCache() *exprCache {
	return &exprCache{programs: make(map[string]*vm.Program)}
}

// compile returns the cached program for source, compiling on first use
func (c *exprCache) compile(source string) (*vm.Program, error) {
	c.mu.RLock()
	program, ok := c.programs[source]
	c.mu.RUnlock()
	if ok {
		return program, nil
	}

	program, err := expr.Compile(source, expr.Env(compileEnv))
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeParseError,
			"failed to compile formula %q", source)
	}

	c.mu.Lock()
	c.programs[source] = program
	c.mu.Unlock()
	return program, nil
}

// eval evaluates a formula against the given environment. Literals skip
// compilation entirely. Evaluation is pure: the same formula and env
// always produce the same value.
func (c *exprCache) eval(f content.Formula, env map[string]any) (float64, error) {
	if f.Literal != nil {
		return *f.Literal, nil
	}
	if f.Source == "" {
		return 0, nil
	}

	program, err := c.compile(f.Source)
	if err != nil {
		return 0, err
	}

	out, err := expr.Run(program, env)
	if err != nil {
		return 0, errors.WrapWithCodef(err, errors.CodeEvaluationError,
			"failed to evaluate formula %q", f.Source)
	}

	switch v := out.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	default:
		return 0, errors.EvaluationErrorf("formula %q produced non-numeric %T", f.Source, out)
	}
}
