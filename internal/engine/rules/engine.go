package rules

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/ThiagoRibas-dev/dnd-text-game/internal/engine"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/entities"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/errors"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/pkg/idgen"
	contentrepo "github.com/ThiagoRibas-dev/dnd-text-game/internal/repositories/content"
)

// Config holds the dependencies for the rules engine
type Config struct {
	Repository  contentrepo.Repository
	Roller      dice.Roller
	IDGenerator idgen.Generator
	State       *entities.GameState
	Logger      *slog.Logger
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.State == nil {
		vb.RequiredField("State")
	}

	return vb.Build()
}

// rulesEngine implements engine.Engine. It owns every instance
// collection; hooks and operations never mutate them directly, they go
// through the owning manager methods here.
type rulesEngine struct {
	repo   contentrepo.Repository
	roller dice.Roller
	idgen  idgen.Generator
	state  *entities.GameState
	log    *slog.Logger

	exprs *exprCache
	paths *pathRegistry
	hooks *hookRegistry
	sched *scheduler

	instances  map[string]*effectInstance
	conditions map[string]*conditionInstance
	pools      map[string]*resourcePool
	zones      map[string]*zoneInstance

	// seq is the global registration counter ordering every stacking
	// and dispatch tie-break
	seq int

	// resolving guards stat derivation against modifier formulas that
	// reference the path being derived
	resolving map[string]bool
}

var _ engine.Engine = (*rulesEngine)(nil)

// NewEngine creates the rules-resolution core
func NewEngine(cfg *Config) (engine.Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	return &rulesEngine{
		repo:       cfg.Repository,
		roller:     cfg.Roller,
		idgen:      cfg.IDGenerator,
		state:      cfg.State,
		log:        log,
		exprs:      newExprCache(),
		paths:      newPathRegistry(),
		hooks:      newHookRegistry(),
		sched:      newScheduler(),
		instances:  make(map[string]*effectInstance),
		conditions: make(map[string]*conditionInstance),
		pools:      make(map[string]*resourcePool),
		zones:      make(map[string]*zoneInstance),
		resolving:  make(map[string]bool),
	}, nil
}

func (e *rulesEngine) nextSeq() int {
	e.seq++
	return e.seq
}

func (e *rulesEngine) entity(id string) (*entities.Entity, error) {
	ent, ok := e.state.Get(id)
	if !ok {
		return nil, errors.NotFoundf("entity not found: %s", id).WithMeta("entity_id", id)
	}
	return ent, nil
}

func (e *rulesEngine) d20() int {
	return e.roll(20)
}

func (e *rulesEngine) roll(size int) int {
	v, err := e.roller.Roll(size)
	if err != nil {
		// the rollers in use only fail on size < 1, which is a
		// programming error here
		e.log.Error("roll failed", "size", size, "error", err)
		return 1
	}
	return v
}
