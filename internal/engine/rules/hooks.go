package rules

import (
	"sort"

	"github.com/ThiagoRibas-dev/dnd-text-game/internal/content"
)

// hookOwner is whoever registered a hook: an effect instance, a
// condition instance, or a zone. Hooks die with their owner.
type hookOwner interface {
	ownerID() string
	ownerName() string
	// suppressedNow gates dispatch: suppressed owners contribute nothing
	suppressedNow() bool
	// protectsEntity is the entity whose events the hook listens on;
	// empty listens on everything (zones filter by occupancy instead)
	protectsEntity() string
}

// hookEvent is the in-flight event a dispatch matches hooks against
type hookEvent struct {
	subjectID   string
	damageKinds []string
	tags        []string
	abilityType content.AbilityType
}

// firedAction is one matched hook action, returned declaratively for
// the calling stage to apply
type firedAction struct {
	ownerID   string
	ownerName string
	// match is the owning hook's predicate; packet-level stages narrow
	// by it again since dispatch only saw the aggregate event
	match  content.HookMatch
	action content.HookAction
}

type registeredHook struct {
	owner hookOwner
	hook  content.RuleHook
	seq   int
}

// hookRegistry is the scoped listener registry. Dispatch never mutates
// entity state; it returns the matched actions in (priority, seq) order
// and the caller applies them.
type hookRegistry struct {
	byScope map[content.HookScope][]registeredHook
}

func newHookRegistry() *hookRegistry {
	return &hookRegistry{byScope: make(map[content.HookScope][]registeredHook)}
}

func (r *hookRegistry) register(owner hookOwner, hooks []content.RuleHook, seq func() int) {
	for _, h := range hooks {
		r.byScope[h.Scope] = append(r.byScope[h.Scope], registeredHook{
			owner: owner,
			hook:  h,
			seq:   seq(),
		})
	}
}

func (r *hookRegistry) unregisterOwner(ownerID string) {
	for scope, hooks := range r.byScope {
		kept := hooks[:0]
		for _, h := range hooks {
			if h.owner.ownerID() != ownerID {
				kept = append(kept, h)
			}
		}
		r.byScope[scope] = kept
	}
}

func (r *hookRegistry) dispatch(scope content.HookScope, ev hookEvent) []firedAction {
	hooks := r.byScope[scope]
	if len(hooks) == 0 {
		return nil
	}

	matched := make([]registeredHook, 0, len(hooks))
	for _, h := range hooks {
		if h.owner.suppressedNow() {
			continue
		}
		if p := h.owner.protectsEntity(); p != "" && p != ev.subjectID {
			continue
		}
		if !matches(h.hook.Match, ev) {
			continue
		}
		matched = append(matched, h)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].hook.Priority != matched[j].hook.Priority {
			return matched[i].hook.Priority < matched[j].hook.Priority
		}
		return matched[i].seq < matched[j].seq
	})

	var fired []firedAction
	for _, h := range matched {
		for _, a := range h.hook.Actions {
			fired = append(fired, firedAction{
				ownerID:   h.owner.ownerID(),
				ownerName: h.owner.ownerName(),
				match:     h.hook.Match,
				action:    a,
			})
		}
	}
	return fired
}

func matches(m content.HookMatch, ev hookEvent) bool {
	if len(m.DamageKinds) > 0 && !overlaps(m.DamageKinds, ev.damageKinds) {
		return false
	}
	if len(m.Tags) > 0 && !overlaps(m.Tags, ev.tags) {
		return false
	}
	if len(m.AbilityTypes) > 0 {
		found := false
		for _, at := range m.AbilityTypes {
			if at == ev.abilityType {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func overlaps(want, have []string) bool {
	for _, w := range want {
		for _, h := range have {
			if w == h {
				return true
			}
		}
	}
	return false
}
