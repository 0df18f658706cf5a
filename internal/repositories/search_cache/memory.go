package searchcache

import (
	"context"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/KirkDiggler/essence-api/internal/errors"
	"github.com/KirkDiggler/essence-api/internal/pkg/clock"
)

// MemoryConfig holds the configuration for the in-process repository
type MemoryConfig struct {
	Clock clock.Clock

	// CleanupInterval is how often go-cache purges expired entries
	CleanupInterval time.Duration
}

// Validate ensures all required dependencies are provided
func (c *MemoryConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Clock == nil {
		vb.RequiredField("clock")
	}
	if c.CleanupInterval < 0 {
		vb.Field("cleanup_interval", "must not be negative")
	}
	return vb.Build()
}

type memoryRepository struct {
	cache *gocache.Cache
	clock clock.Clock
}

// NewMemoryRepository keeps searches in a go-cache map. Expiry is checked
// against the configured clock as well as go-cache's own timer.
func NewMemoryRepository(cfg *MemoryConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	interval := cfg.CleanupInterval
	if interval == 0 {
		interval = 10 * time.Minute
	}

	return &memoryRepository{
		cache: gocache.New(DefaultTTL, interval),
		clock: cfg.Clock,
	}, nil
}

var _ Repository = (*memoryRepository)(nil)

func (r *memoryRepository) Put(_ context.Context, input PutInput) (*PutOutput, error) {
	if input.Search == nil {
		return nil, errors.InvalidArgument(errSearchNil)
	}
	if strings.TrimSpace(input.Search.PlayerID) == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	search := *input.Search
	search.CreatedAt = r.clock.Now()
	search.ExpiresAt = search.CreatedAt.Add(ttl)

	stored := search
	r.cache.Set(search.PlayerID, &stored, ttl)

	return &PutOutput{Search: &search}, nil
}

func (r *memoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if strings.TrimSpace(input.PlayerID) == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	cached, ok := r.cache.Get(input.PlayerID)
	if !ok {
		return nil, errors.NotFound(errNotFound).WithMeta("player_id", input.PlayerID)
	}

	search := *cached.(*Search)
	if r.clock.Now().After(search.ExpiresAt) {
		r.cache.Delete(input.PlayerID)
		return nil, errors.NotFound("cached search has expired").WithMeta("player_id", input.PlayerID)
	}

	return &GetOutput{Search: &search}, nil
}

func (r *memoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if strings.TrimSpace(input.PlayerID) == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	_, found := r.cache.Get(input.PlayerID)
	r.cache.Delete(input.PlayerID)
	return &DeleteOutput{Deleted: found}, nil
}
