package ownership

import (
	"context"
	"strings"

	gocache "github.com/patrickmn/go-cache"

	"github.com/KirkDiggler/essence-api/internal/entities"
	"github.com/KirkDiggler/essence-api/internal/errors"
)

type memoryRepository struct {
	states *gocache.Cache
}

// NewMemoryRepository keeps states in process. Nothing expires and nothing
// survives a restart.
func NewMemoryRepository() Repository {
	return &memoryRepository{states: gocache.New(gocache.NoExpiration, 0)}
}

var _ Repository = (*memoryRepository)(nil)

func (r *memoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if strings.TrimSpace(input.PlayerID) == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	cached, ok := r.states.Get(input.PlayerID)
	if !ok {
		return &GetOutput{State: entities.NewOwnershipState(input.PlayerID)}, nil
	}
	return &GetOutput{State: cached.(*entities.OwnershipState).Clone()}, nil
}

func (r *memoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if input.State == nil {
		return nil, errors.InvalidArgument(errStateNil)
	}
	if strings.TrimSpace(input.State.PlayerID) == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	flagged := flaggedNames(input.State)
	stored := entities.NewOwnershipState(input.State.PlayerID)
	for name, done := range flagged {
		stored.Set(name, true, done)
	}
	r.states.Set(stored.PlayerID, stored, gocache.NoExpiration)

	return &SaveOutput{Entries: len(flagged)}, nil
}

func (r *memoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if strings.TrimSpace(input.PlayerID) == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}
	r.states.Delete(input.PlayerID)
	return &DeleteOutput{}, nil
}
