// Package ownership persists each player's owned and done flags
package ownership

import (
	"context"

	"github.com/KirkDiggler/essence-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=ownershipmock github.com/KirkDiggler/essence-api/internal/repositories/ownership Repository

// Repository stores one OwnershipState per player.
// A player with nothing stored reads as an empty state, never NotFound.
type Repository interface {
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput contains parameters for loading a player's state
type GetInput struct {
	PlayerID string
}

// GetOutput contains the loaded state
type GetOutput struct {
	State *entities.OwnershipState
}

// SaveInput replaces the player's whole state
type SaveInput struct {
	State *entities.OwnershipState
}

// SaveOutput contains the result of saving a state
type SaveOutput struct {
	// Entries is how many items carry at least one flag
	Entries int
}

// DeleteInput contains parameters for clearing a player's state
type DeleteInput struct {
	PlayerID string
}

// DeleteOutput contains the result of clearing a player's state
type DeleteOutput struct{}

const (
	errPlayerIDEmpty = "player ID cannot be empty"
	errStateNil      = "state cannot be nil"
)

// flaggedNames lists every item with owned or done set, done implying owned
func flaggedNames(state *entities.OwnershipState) map[string]bool {
	out := make(map[string]bool, len(state.Owned))
	for name, owned := range state.Owned {
		if owned {
			out[name] = state.Done[name]
		}
	}
	for name, done := range state.Done {
		if done {
			out[name] = true
		}
	}
	return out
}
