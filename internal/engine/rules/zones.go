package rules

import (
	"context"
	"sort"

	"github.com/ThiagoRibas-dev/dnd-text-game/internal/content"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/engine"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/entities"
	"github.com/ThiagoRibas-dev/dnd-text-game/internal/errors"
)

// zoneInstance is one placed area effect
type zoneInstance struct {
	id    string
	defID string
	name  string

	sourceID    string
	casterLevel int

	center entities.Position
	radius int

	suppresses  []content.AbilityType
	hooks       []content.RuleHook
	onEnter     []content.Operation
	moveThrough *content.MoveThroughConfig
	tags        []string

	remainingRounds int
	permanent       bool

	seq int
}

func (z *zoneInstance) ownerID() string   { return z.id }
func (z *zoneInstance) ownerName() string { return z.name }

// zones themselves are never suppressed; antimagic acts on what is
// inside them
func (z *zoneInstance) suppressedNow() bool    { return false }
func (z *zoneInstance) protectsEntity() string { return "" }

func (z *zoneInstance) contains(p entities.Position) bool {
	dx := p.X - z.center.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - z.center.Y
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx <= z.radius
	}
	return dy <= z.radius
}

func (e *rulesEngine) zonesOrdered() []*zoneInstance {
	out := make([]*zoneInstance, 0, len(e.zones))
	for _, z := range e.zones {
		out = append(out, z)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}

// CreateZone places a zone on the grid and immediately runs on-enter
// operations and suppression for anything already inside
func (e *rulesEngine) CreateZone(ctx context.Context, input *engine.CreateZoneInput) (*engine.CreateZoneOutput, error) {
	if input == nil || input.ZoneID == "" {
		return nil, errors.InvalidArgument("zone id is required")
	}

	trace := engine.NewTrace()

	def, err := e.repo.GetZone(ctx, input.ZoneID)
	if err != nil {
		return nil, err
	}

	casterLevel := 0
	var source *entities.Entity
	if input.SourceID != "" {
		if src, srcErr := e.entity(input.SourceID); srcErr == nil {
			source = src
			casterLevel = src.Level()
		}
	}

	env := e.evalEnv(source, casterLevel, 0, nil, false)
	rounds, permanent := e.durationRounds(def.Duration, env, trace)

	zone := &zoneInstance{
		id:              "zone_" + e.idgen.Generate(),
		defID:           def.ID,
		name:            def.Name,
		sourceID:        input.SourceID,
		casterLevel:     casterLevel,
		center:          input.Center,
		radius:          def.Radius,
		suppresses:      def.Suppresses,
		hooks:           def.Hooks,
		onEnter:         def.OnEnter,
		moveThrough:     def.MoveThrough,
		tags:            def.Tags,
		remainingRounds: rounds,
		permanent:       permanent,
		seq:             e.nextSeq(),
	}
	e.zones[zone.id] = zone
	e.hooks.register(zone, def.Hooks, e.nextSeq)

	trace.Info("%s covers (%d,%d) radius %d", def.Name, input.Center.X, input.Center.Y, def.Radius)
	e.log.Info("zone created", "zone_id", def.ID, "instance_id", zone.id)

	for _, ent := range e.state.All() {
		if zone.contains(ent.Position) {
			e.enterZone(ctx, zone, ent, trace)
		}
	}
	e.reevaluateZoneSuppression(trace)

	return &engine.CreateZoneOutput{InstanceID: zone.id, Trace: trace}, nil
}

func (e *rulesEngine) removeZone(id string, trace *engine.Trace) {
	zone, ok := e.zones[id]
	if !ok {
		return
	}
	delete(e.zones, id)
	e.hooks.unregisterOwner(id)
	trace.Info("%s dissipates", zone.name)
	e.log.Info("zone removed", "zone_id", zone.defID, "instance_id", id)
	e.reevaluateZoneSuppression(trace)
}

func (e *rulesEngine) enterZone(ctx context.Context, zone *zoneInstance, ent *entities.Entity, trace *engine.Trace) {
	if len(zone.onEnter) == 0 {
		return
	}
	trace.Info("%s enters %s", ent.Name, zone.name)
	source := ent
	if src, ok := e.state.Get(zone.sourceID); ok {
		source = src
	}
	e.runOperations(ctx, zone.onEnter, source, ent, zone.casterLevel, nil, 1.0, trace)
}

// MoveEntity relocates an entity. Leaving or entering zones triggers
// move-through checks, on-enter operations, and suppression
// re-evaluation, which is how antimagic releases an ability the moment
// its bearer steps out.
func (e *rulesEngine) MoveEntity(ctx context.Context, input *engine.MoveEntityInput) (*engine.MoveEntityOutput, error) {
	if input == nil || input.EntityID == "" {
		return nil, errors.InvalidArgument("entity id is required")
	}

	trace := engine.NewTrace()
	ent, err := e.entity(input.EntityID)
	if err != nil {
		return nil, err
	}

	from := ent.Position
	out := &engine.MoveEntityOutput{Trace: trace}

	// zones being crossed or left may demand a skill check
	for _, zone := range e.zonesOrdered() {
		if zone.moveThrough == nil || !zone.contains(from) {
			continue
		}
		if !e.passMoveThrough(ctx, zone, ent, trace) {
			trace.Info("%s fails to move through %s", ent.Name, zone.name)
			return out, nil
		}
	}

	ent.Position = input.To
	out.Moved = true
	trace.Info("%s moves to (%d,%d)", ent.Name, input.To.X, input.To.Y)

	for _, zone := range e.zonesOrdered() {
		if zone.contains(input.To) && !zone.contains(from) {
			e.enterZone(ctx, zone, ent, trace)
		}
	}
	e.reevaluateZoneSuppression(trace)

	return out, nil
}

// passMoveThrough rolls the zone's skill check; failure runs the
// authored on-fail operations and blocks the move
func (e *rulesEngine) passMoveThrough(ctx context.Context, zone *zoneInstance, ent *entities.Entity, trace *engine.Trace) bool {
	cfg := zone.moveThrough
	source := ent
	if src, ok := e.state.Get(zone.sourceID); ok {
		source = src
	}

	env := e.evalEnv(source, zone.casterLevel, 0, nil, false)
	dc, err := e.exprs.eval(cfg.DC, env)
	if err != nil {
		trace.Warn("%s: move-through DC failed: %v", zone.name, err)
		return true
	}

	bonus := e.resolveStatValue(ent, "checks."+cfg.Skill, trace)
	roll := e.d20()
	total := roll + int(bonus)
	trace.Roll(roll, "%s %s check: %d + %d = %d vs DC %d", ent.Name, cfg.Skill, roll, int(bonus), total, int(dc))

	if total >= int(dc) {
		return true
	}
	e.runOperations(ctx, cfg.OnFail, source, ent, zone.casterLevel, nil, 1.0, trace)
	return false
}

// reevaluateZoneSuppression recomputes which instances each
// suppressing zone is holding down. Suppression marks carry the zone's
// id, so a suppressed instance resumes the instant no zone covers it;
// durations tick throughout and nothing ever re-attaches.
func (e *rulesEngine) reevaluateZoneSuppression(trace *engine.Trace) {
	for _, inst := range e.allInstancesOrdered() {
		ent, ok := e.state.Get(inst.targetID)
		if !ok {
			continue
		}

		for _, zone := range e.zonesOrdered() {
			suppressing := false
			if zone.contains(ent.Position) {
				for _, at := range zone.suppresses {
					if at == inst.abilityType {
						suppressing = true
						break
					}
				}
			}

			_, marked := inst.zoneSuppressors[zone.id]
			switch {
			case suppressing && !marked:
				inst.zoneSuppressors[zone.id] = struct{}{}
				trace.Info("%s suppressed by %s", inst.name, zone.name)
			case !suppressing && marked:
				delete(inst.zoneSuppressors, zone.id)
				if !inst.suppressed() {
					trace.Info("%s resumes outside %s", inst.name, zone.name)
				}
			}
		}

		// drop marks from zones that no longer exist
		for zoneID := range inst.zoneSuppressors {
			if _, ok := e.zones[zoneID]; !ok {
				delete(inst.zoneSuppressors, zoneID)
			}
		}
	}
}
