package searchcache

import (
	"context"
	"encoding/json"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/essence-api/internal/errors"
	"github.com/KirkDiggler/essence-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/essence-api/internal/redis"
)

// KeyPrefix starts every cached search key: search_cache:{player_id}
const KeyPrefix = "search_cache:"

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a Redis repository that stores searches as
// JSON with a key TTL
func NewRedisRepository(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
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

	data, err := json.Marshal(&search)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal search")
	}

	if err := r.client.Set(ctx, searchKey(search.PlayerID), data, ttl).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to store search in Redis")
	}

	return &PutOutput{Search: &search}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if strings.TrimSpace(input.PlayerID) == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	key := searchKey(input.PlayerID)
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound(errNotFound).WithMeta("player_id", input.PlayerID)
		}
		return nil, errors.Wrap(err, "failed to get search from Redis")
	}

	var search Search
	if err := json.Unmarshal(data, &search); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal search")
	}

	// the key TTL and the clock can disagree; the clock wins
	if r.clock.Now().After(search.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFound("cached search has expired").WithMeta("player_id", input.PlayerID)
	}

	return &GetOutput{Search: &search}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if strings.TrimSpace(input.PlayerID) == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	n, err := r.client.Del(ctx, searchKey(input.PlayerID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete search from Redis")
	}
	return &DeleteOutput{Deleted: n > 0}, nil
}

func searchKey(playerID string) string {
	return KeyPrefix + playerID
}
