package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/essence-api/internal/catalog"
	"github.com/KirkDiggler/essence-api/internal/engine/essence"
	"github.com/KirkDiggler/essence-api/internal/errors"
	"github.com/KirkDiggler/essence-api/internal/orchestrators/planner"
	"github.com/KirkDiggler/essence-api/internal/pkg/clock"
	"github.com/KirkDiggler/essence-api/internal/pkg/idgen"
	"github.com/KirkDiggler/essence-api/internal/redis"
	"github.com/KirkDiggler/essence-api/internal/repositories/ownership"
	searchcache "github.com/KirkDiggler/essence-api/internal/repositories/search_cache"
)

// Storage backends
const (
	StoreRedis  = "redis"
	StoreMySQL  = "mysql"
	StoreMemory = "memory"
)

// serverConfig is everything the server flags control
type serverConfig struct {
	Port              int
	Store             string
	RedisAddr         string
	MySQLDSN          string
	CatalogPath       string
	TopN              int
	MaxBaseCandidates int
	SearchTTL         time.Duration
	RateLimit         float64
}

// Validate checks the flag combination
func (c *serverConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("port", c.Port, 1, 65535, vb)
	errors.ValidateEnum("store", c.Store, []string{StoreRedis, StoreMySQL, StoreMemory}, vb)
	if c.Store == StoreRedis && len(redis.ParseAddrs(c.RedisAddr)) == 0 {
		vb.Field("redis-addr", "is required for the redis store")
	}
	if c.Store == StoreMySQL {
		errors.ValidateRequired("mysql-dsn", c.MySQLDSN, vb)
	}
	if c.TopN < 1 {
		vb.Field("top-n", "must be at least 1")
	}
	if c.MaxBaseCandidates < 1 {
		vb.Field("max-base-candidates", "must be at least 1")
	}
	if c.SearchTTL <= 0 {
		vb.Field("search-ttl", "must be positive")
	}
	if c.RateLimit < 0 {
		vb.Field("rate-limit", "must not be negative")
	}

	return vb.Build()
}

// loadCatalog reads the catalog file or falls back to the built-in catalog
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Builtin(), nil
	}
	return catalog.LoadFile(path)
}

// stores are the repositories picked by --store plus their shutdown hooks
type stores struct {
	ownership   ownership.Repository
	searchCache searchcache.Repository
	closers     []func() error
}

func (s *stores) Close() {
	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil {
			slog.Warn("Failed to close store", "error", err)
		}
	}
}

func openStores(ctx context.Context, cfg *serverConfig, clk clock.Clock) (*stores, error) {
	out := &stores{}

	switch cfg.Store {
	case StoreRedis:
		client, err := redis.NewClient(&redis.Config{Addrs: redis.ParseAddrs(cfg.RedisAddr)})
		if err != nil {
			return nil, err
		}
		out.closers = append(out.closers, client.Close)

		if err := client.Ping(ctx).Err(); err != nil {
			out.Close()
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to reach redis")
		}

		out.ownership, err = ownership.NewRedisRepository(&ownership.RedisConfig{Client: client})
		if err != nil {
			out.Close()
			return nil, err
		}
		out.searchCache, err = searchcache.NewRedisRepository(&searchcache.RedisConfig{Client: client, Clock: clk})
		if err != nil {
			out.Close()
			return nil, err
		}

	case StoreMySQL:
		repo, closeDB, err := ownership.NewMySQLRepository(ctx, &ownership.MySQLConfig{
			DSN:          cfg.MySQLDSN,
			CreateSchema: true,
		})
		if err != nil {
			return nil, err
		}
		out.ownership = repo
		out.closers = append(out.closers, closeDB)

		out.searchCache, err = searchcache.NewMemoryRepository(&searchcache.MemoryConfig{Clock: clk})
		if err != nil {
			out.Close()
			return nil, err
		}

	default:
		out.ownership = ownership.NewMemoryRepository()
		var err error
		out.searchCache, err = searchcache.NewMemoryRepository(&searchcache.MemoryConfig{Clock: clk})
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// newPlanner wires the orchestrator over the chosen stores
func newPlanner(cfg *serverConfig, cat *catalog.Catalog, st *stores) (planner.Service, error) {
	return planner.NewOrchestrator(&planner.Config{
		Catalog:           cat,
		OwnershipRepo:     st.ownership,
		SearchCache:       st.searchCache,
		IDGenerator:       idgen.NewUUID("search"),
		EventBus:          events.NewBus(),
		Roller:            essence.ToolkitRoller{},
		TopN:              cfg.TopN,
		MaxBaseCandidates: cfg.MaxBaseCandidates,
		SearchTTL:         cfg.SearchTTL,
	})
}
