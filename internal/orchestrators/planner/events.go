package planner

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/essence-api/internal/entities"
	searchcache "github.com/KirkDiggler/essence-api/internal/repositories/search_cache"
)

const (
	// EventOwnershipUpdated fires after a player's ownership state changes
	EventOwnershipUpdated = "essence.ownership.updated"

	// EntityTypePlayer is the entity type of event sources
	EntityTypePlayer = "player"

	// wholeState targets events that replace or clear the entire state
	wholeState = "*"
)

// playerEntity lets a player ID act as an event source
type playerEntity struct {
	id string
}

func (p playerEntity) GetID() string   { return p.id }
func (p playerEntity) GetType() string { return EntityTypePlayer }

var _ core.Entity = playerEntity{}

// publishOwnershipUpdated announces a change. Failures are logged since the
// write has already happened.
func (o *orchestrator) publishOwnershipUpdated(ctx context.Context, playerID, itemName string) {
	target := entities.Item{Name: itemName}
	event := events.NewGameEvent(EventOwnershipUpdated, playerEntity{id: playerID}, target)
	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish ownership update",
			"player_id", playerID,
			"item", itemName,
			"error", err)
	}
}

// invalidateSearch drops the player's cached search; plans computed
// against the old ownership state are stale.
func (o *orchestrator) invalidateSearch(ctx context.Context, event events.Event) error {
	if event.Source() == nil {
		return nil
	}
	playerID := event.Source().GetID()
	o.generations.bump(playerID)

	out, err := o.searchCache.Delete(ctx, searchcache.DeleteInput{PlayerID: playerID})
	if err != nil {
		slog.Warn("Failed to invalidate cached search",
			"player_id", playerID,
			"error", err)
		return nil
	}
	if out.Deleted {
		slog.Info("Cached search invalidated", "player_id", playerID)
	}
	return nil
}
