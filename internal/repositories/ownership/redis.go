package ownership

import (
	"context"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/essence-api/internal/entities"
	"github.com/KirkDiggler/essence-api/internal/errors"
	redisclient "github.com/KirkDiggler/essence-api/internal/redis"
)

const (
	// Key patterns: ownership:{player_id}:owned and ownership:{player_id}:done.
	// The braces keep both keys in one cluster slot.
	keyPrefix   = "ownership:{"
	ownedSuffix = "}:owned"
	doneSuffix  = "}:done"
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a Redis-backed ownership repository. Each
// player has two sets holding the owned and done item names.
func NewRedisRepository(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if strings.TrimSpace(input.PlayerID) == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	pipe := r.client.Pipeline()
	ownedCmd := pipe.SMembers(ctx, ownedKey(input.PlayerID))
	doneCmd := pipe.SMembers(ctx, doneKey(input.PlayerID))
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to load ownership for %s", input.PlayerID)
	}

	state := entities.NewOwnershipState(input.PlayerID)
	for _, name := range ownedCmd.Val() {
		state.Set(name, true, false)
	}
	for _, name := range doneCmd.Val() {
		state.Set(name, true, true)
	}

	return &GetOutput{State: state}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.State == nil {
		return nil, errors.InvalidArgument(errStateNil)
	}
	if strings.TrimSpace(input.State.PlayerID) == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	flagged := flaggedNames(input.State)
	owned := make([]interface{}, 0, len(flagged))
	var done []interface{}
	for name, isDone := range flagged {
		owned = append(owned, name)
		if isDone {
			done = append(done, name)
		}
	}

	oKey, dKey := ownedKey(input.State.PlayerID), doneKey(input.State.PlayerID)
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, oKey, dKey)
		if len(owned) > 0 {
			pipe.SAdd(ctx, oKey, owned...)
		}
		if len(done) > 0 {
			pipe.SAdd(ctx, dKey, done...)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save ownership for %s", input.State.PlayerID)
	}

	return &SaveOutput{Entries: len(flagged)}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if strings.TrimSpace(input.PlayerID) == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	if err := r.client.Del(ctx, ownedKey(input.PlayerID), doneKey(input.PlayerID)).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete ownership for %s", input.PlayerID)
	}
	return &DeleteOutput{}, nil
}

func ownedKey(playerID string) string {
	return keyPrefix + playerID + ownedSuffix
}

func doneKey(playerID string) string {
	return keyPrefix + playerID + doneSuffix
}
