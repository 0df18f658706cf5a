// Package searchcache keeps each player's most recent plan search
package searchcache

import (
	"context"
	"time"

	"github.com/KirkDiggler/essence-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=searchcachemock github.com/KirkDiggler/essence-api/internal/repositories/search_cache Repository

// DefaultTTL is used when PutInput.TTL is zero
const DefaultTTL = 30 * time.Minute

// Search is a completed recommendation for one player and target item
type Search struct {
	SearchID string
	PlayerID string
	ItemName string

	// Filter and TopN are the query parameters the plans were computed with
	Filter entities.PoolFilter
	TopN   int

	Plans []entities.FarmPlan

	CreatedAt time.Time
	ExpiresAt time.Time
}

// Repository stores at most one search per player
type Repository interface {
	Put(ctx context.Context, input PutInput) (*PutOutput, error)
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// PutInput replaces the player's cached search
type PutInput struct {
	Search *Search
	TTL    time.Duration
}

// PutOutput returns the stored search with its timestamps set
type PutOutput struct {
	Search *Search
}

// GetInput contains parameters for reading a player's search
type GetInput struct {
	PlayerID string
}

// GetOutput contains the cached search
type GetOutput struct {
	Search *Search
}

// DeleteInput contains parameters for dropping a player's search
type DeleteInput struct {
	PlayerID string
}

// DeleteOutput reports whether anything was removed
type DeleteOutput struct {
	Deleted bool
}

const (
	errSearchNil     = "search cannot be nil"
	errPlayerIDEmpty = "player ID cannot be empty"
	errNotFound      = "no cached search for player"
)
