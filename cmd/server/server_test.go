package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/essence-api/internal/orchestrators/planner"
	"github.com/KirkDiggler/essence-api/internal/pkg/clock"
	"github.com/KirkDiggler/essence-api/internal/testutils"
)

func validConfig() serverConfig {
	return serverConfig{
		Port:              50051,
		Store:             StoreMemory,
		TopN:              5,
		MaxBaseCandidates: 3,
		SearchTTL:         time.Minute,
	}
}

func TestServerConfigValidate(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())

	testCases := []struct {
		name   string
		mutate func(*serverConfig)
		field  string
	}{
		{name: "bad port", mutate: func(c *serverConfig) { c.Port = 0 }, field: "port"},
		{name: "bad store", mutate: func(c *serverConfig) { c.Store = "disk" }, field: "store"},
		{name: "redis without addr", mutate: func(c *serverConfig) { c.Store = StoreRedis; c.RedisAddr = " , " }, field: "redis-addr"},
		{name: "mysql without dsn", mutate: func(c *serverConfig) { c.Store = StoreMySQL }, field: "mysql-dsn"},
		{name: "zero top-n", mutate: func(c *serverConfig) { c.TopN = 0 }, field: "top-n"},
		{name: "zero base candidates", mutate: func(c *serverConfig) { c.MaxBaseCandidates = 0 }, field: "max-base-candidates"},
		{name: "zero ttl", mutate: func(c *serverConfig) { c.SearchTTL = 0 }, field: "search-ttl"},
		{name: "negative rate", mutate: func(c *serverConfig) { c.RateLimit = -1 }, field: "rate-limit"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestMemoryStoresServePlanner(t *testing.T) {
	cfg := validConfig()
	ctx := context.Background()

	st, err := openStores(ctx, &cfg, clock.New())
	require.NoError(t, err)
	defer st.Close()

	svc, err := newPlanner(&cfg, testutils.FixtureCatalog(), st)
	require.NoError(t, err)

	rec, err := svc.RecommendPlans(ctx, &planner.RecommendPlansInput{PlayerID: "p1", ItemName: testutils.ItemA})
	require.NoError(t, err)
	assert.Len(t, rec.Plans, 3)
	assert.NotEmpty(t, rec.SearchID)

	last, err := svc.GetLastSearch(ctx, &planner.GetLastSearchInput{PlayerID: "p1"})
	require.NoError(t, err)
	assert.Equal(t, rec.SearchID, last.Search.SearchID)
}

func TestRedisStores(t *testing.T) {
	_, mr, cleanup := testutils.CreateTestRedisServer(t)
	defer cleanup()

	cfg := validConfig()
	cfg.Store = StoreRedis
	cfg.RedisAddr = mr.Addr()

	st, err := openStores(context.Background(), &cfg, clock.New())
	require.NoError(t, err)
	defer st.Close()
	assert.NotNil(t, st.ownership)
	assert.NotNil(t, st.searchCache)
}

func TestRateLimitInterceptor(t *testing.T) {
	info := &grpc.UnaryServerInfo{FullMethod: "/essence.api.v1alpha1.PlannerService/ListItems"}
	handler := func(ctx context.Context, req any) (any, error) { return "ok", nil }

	limited := rateLimitInterceptor(1)
	resp, err := limited(context.Background(), nil, info, handler)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)

	_, err = limited(context.Background(), nil, info, handler)
	require.Error(t, err)
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))

	open := rateLimitInterceptor(0)
	for i := 0; i < 10; i++ {
		_, err := open(context.Background(), nil, info, handler)
		require.NoError(t, err)
	}
}

func TestLoadCatalogDefaultsToBuiltin(t *testing.T) {
	cat, err := loadCatalog("")
	require.NoError(t, err)
	assert.NotEmpty(t, cat.Names())

	_, err = loadCatalog("/nonexistent/catalog.yaml")
	assert.Error(t, err)
}
