package planner

import "sync"

// searchGenerations counts ownership changes per player. A search may only
// be cached when no change landed between its ownership snapshot and the
// cache write.
type searchGenerations struct {
	mu       sync.Mutex
	byPlayer map[string]uint64
}

func newSearchGenerations() *searchGenerations {
	return &searchGenerations{byPlayer: make(map[string]uint64)}
}

// current returns the player's generation; read it before the snapshot
func (g *searchGenerations) current(playerID string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.byPlayer[playerID]
}

// bump marks the player's cached search stale. Callers delete the cache
// entry after bumping so that any write ordered before the bump is removed.
func (g *searchGenerations) bump(playerID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.byPlayer[playerID]++
}

// writeIfCurrent runs write only while the player is still at generation.
// It reports false without calling write when the generation moved.
func (g *searchGenerations) writeIfCurrent(playerID string, generation uint64, write func() error) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.byPlayer[playerID] != generation {
		return false, nil
	}
	return true, write()
}
