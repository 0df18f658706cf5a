// Package redis wraps the go-redis client so repositories depend on a
// small interface that miniredis can stand in for during tests.
package redis

import (
	"crypto/tls"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/essence-api/internal/errors"
)

// Config configures the Redis connection used by the stores
type Config struct {
	// Addrs is one endpoint for a single instance or several for a cluster
	Addrs []string

	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	UseTLS          bool
}

// Validate ensures the config can produce a client
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if len(c.Addrs) == 0 {
		vb.RequiredField("addrs")
	}
	for i, addr := range c.Addrs {
		if strings.TrimSpace(addr) == "" {
			vb.Fieldf("addrs", "endpoint %d is empty", i)
		}
	}
	if c.PoolSize < 0 {
		vb.Field("pool_size", "must not be negative")
	}
	return vb.Build()
}

// ParseAddrs splits a comma separated endpoint list
func ParseAddrs(raw string) []string {
	var addrs []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			addrs = append(addrs, part)
		}
	}
	return addrs
}

// NewClient returns a single-instance client for one address and a
// cluster client for several. go-redis connects lazily.
func NewClient(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("redis: config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "redis: invalid config")
	}

	var tlsConfig *tls.Config
	if cfg.UseTLS {
		tlsConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	if len(cfg.Addrs) == 1 {
		return redis.NewClient(&redis.Options{
			Addr:            cfg.Addrs[0],
			PoolSize:        cfg.PoolSize,
			MinIdleConns:    cfg.MinIdleConns,
			ConnMaxIdleTime: cfg.ConnMaxIdleTime,
			MaxRetries:      cfg.MaxRetries,
			TLSConfig:       tlsConfig,
		}), nil
	}

	return redis.NewClusterClient(&redis.ClusterOptions{
		Addrs:           cfg.Addrs,
		PoolSize:        cfg.PoolSize,
		MinIdleConns:    cfg.MinIdleConns,
		ConnMaxIdleTime: cfg.ConnMaxIdleTime,
		MaxRetries:      cfg.MaxRetries,
		TLSConfig:       tlsConfig,
	}), nil
}
