package entities

// OwnershipState is one player's owned/done flags keyed by item name.
// Missing entries read as false.
type OwnershipState struct {
	PlayerID string          `json:"-"`
	Owned    map[string]bool `json:"owned"`
	Done     map[string]bool `json:"done"`
}

// NewOwnershipState returns an empty state for the player
func NewOwnershipState(playerID string) *OwnershipState {
	return &OwnershipState{
		PlayerID: playerID,
		Owned:    make(map[string]bool),
		Done:     make(map[string]bool),
	}
}

// IsOwned reports whether the item is owned
func (s *OwnershipState) IsOwned(name string) bool {
	return s != nil && s.Owned[name]
}

// IsDone reports whether the item's target essence has been obtained
func (s *OwnershipState) IsDone(name string) bool {
	return s != nil && s.Done[name]
}

// Set records the flags for one item. Done implies owned.
func (s *OwnershipState) Set(name string, owned, done bool) {
	if done {
		owned = true
	}
	if s.Owned == nil {
		s.Owned = make(map[string]bool)
	}
	if s.Done == nil {
		s.Done = make(map[string]bool)
	}
	s.Owned[name] = owned
	s.Done[name] = done
}

// Clone returns a deep copy so that callers can hand out an immutable snapshot
func (s *OwnershipState) Clone() *OwnershipState {
	out := NewOwnershipState(s.PlayerID)
	for k, v := range s.Owned {
		out.Owned[k] = v
	}
	for k, v := range s.Done {
		out.Done[k] = v
	}
	return out
}

// PoolFilter describes which items a query excludes
type PoolFilter struct {
	ExcludeUnowned bool
	ExcludeDone    bool
}

// Admits reports whether the item survives the filter under the given state
func (f PoolFilter) Admits(state *OwnershipState, name string) bool {
	if f.ExcludeUnowned && !state.IsOwned(name) {
		return false
	}
	if f.ExcludeDone && state.IsDone(name) {
		return false
	}
	return true
}
