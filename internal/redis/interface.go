package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the stores are written against.
// Both *redis.Client and *redis.ClusterClient satisfy it.
type Client interface {
	redis.UniversalClient
}

// Nil is returned by reads of a missing key
var Nil = redis.Nil
