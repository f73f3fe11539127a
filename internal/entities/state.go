package entities

// GameState is the set of live entities in the current encounter. The
// rules engine reads and mutates it; it never serializes it.
type GameState struct {
	entities map[string]*Entity
	order    []string
}

// NewGameState creates an empty encounter state
func NewGameState() *GameState {
	return &GameState{entities: make(map[string]*Entity)}
}

// Add registers an entity; re-adding the same id replaces it in place
func (s *GameState) Add(e *Entity) {
	if _, ok := s.entities[e.ID]; !ok {
		s.order = append(s.order, e.ID)
	}
	s.entities[e.ID] = e
}

// Get looks an entity up by id
func (s *GameState) Get(id string) (*Entity, bool) {
	e, ok := s.entities[id]
	return e, ok
}

// All returns entities in insertion order (stable iteration keeps the
// roll sequence reproducible)
func (s *GameState) All() []*Entity {
	out := make([]*Entity, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.entities[id])
	}
	return out
}

// Remove drops an entity from the encounter
func (s *GameState) Remove(id string) {
	if _, ok := s.entities[id]; !ok {
		return
	}
	delete(s.entities, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
