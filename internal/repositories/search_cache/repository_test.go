package searchcache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/essence-api/internal/entities"
	"github.com/KirkDiggler/essence-api/internal/errors"
	"github.com/KirkDiggler/essence-api/internal/pkg/clock"
	searchcache "github.com/KirkDiggler/essence-api/internal/repositories/search_cache"
	"github.com/KirkDiggler/essence-api/internal/testutils"
)

type RepositoryTestSuite struct {
	suite.Suite
	newRepo func(t *testing.T, c clock.Clock) (searchcache.Repository, func())
	repo    searchcache.Repository
	clock   *clock.Fixed
	cleanup func()
	ctx     context.Context
	search  *searchcache.Search
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{newRepo: func(t *testing.T, c clock.Clock) (searchcache.Repository, func()) {
		client, cleanup := testutils.CreateTestRedisClient(t)
		repo, err := searchcache.NewRedisRepository(&searchcache.RedisConfig{Client: client, Clock: c})
		require.NoError(t, err)
		return repo, cleanup
	}})
}

func TestMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{newRepo: func(t *testing.T, c clock.Clock) (searchcache.Repository, func()) {
		repo, err := searchcache.NewMemoryRepository(&searchcache.MemoryConfig{Clock: c})
		require.NoError(t, err)
		return repo, func() {}
	}})
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewFixed(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.repo, s.cleanup = s.newRepo(s.T(), s.clock)

	items := testutils.FixtureItems()
	s.search = &searchcache.Search{
		SearchID: "search_1",
		PlayerID: "player-1",
		ItemName: testutils.ItemA,
		Filter:   entities.PoolFilter{ExcludeDone: true},
		TopN:     5,
		Plans: []entities.FarmPlan{{
			Dungeon: testutils.FixtureDungeon,
			Filter: entities.NarrowingFilter{
				Dungeon:        testutils.FixtureDungeon,
				BaseCandidates: []entities.AttributeCode{1, 2},
				FixedSlot:      entities.FixedSlotBonus,
				FixedValue:     5,
			},
			Matched: []entities.Item{items[0], items[1]},
			Score:   entities.PlanScore{MatchCount: 2, NegCandidates: -2},
		}},
	}
}

func (s *RepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RepositoryTestSuite) TestPutThenGet() {
	put, err := s.repo.Put(s.ctx, searchcache.PutInput{Search: s.search, TTL: time.Minute})
	s.Require().NoError(err)
	s.Equal(s.clock.Now(), put.Search.CreatedAt)
	s.Equal(s.clock.Now().Add(time.Minute), put.Search.ExpiresAt)
	s.True(s.search.CreatedAt.IsZero(), "input is not modified")

	got, err := s.repo.Get(s.ctx, searchcache.GetInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Equal("search_1", got.Search.SearchID)
	s.Equal(testutils.ItemA, got.Search.ItemName)
	s.Equal(s.search.Filter, got.Search.Filter)
	s.Require().Len(got.Search.Plans, 1)
	s.True(got.Search.Plans[0].Filter.Equal(&s.search.Plans[0].Filter))
	s.Equal(s.search.Plans[0].Matched, got.Search.Plans[0].Matched)
	s.True(put.Search.ExpiresAt.Equal(got.Search.ExpiresAt))
}

func (s *RepositoryTestSuite) TestPutDefaultsTTL() {
	put, err := s.repo.Put(s.ctx, searchcache.PutInput{Search: s.search})
	s.Require().NoError(err)
	s.Equal(searchcache.DefaultTTL, put.Search.ExpiresAt.Sub(put.Search.CreatedAt))
}

func (s *RepositoryTestSuite) TestPutReplaces() {
	_, err := s.repo.Put(s.ctx, searchcache.PutInput{Search: s.search})
	s.Require().NoError(err)

	next := *s.search
	next.SearchID = "search_2"
	next.ItemName = testutils.ItemB
	_, err = s.repo.Put(s.ctx, searchcache.PutInput{Search: &next})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, searchcache.GetInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Equal("search_2", got.Search.SearchID)
}

func (s *RepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, searchcache.GetInput{PlayerID: "nobody"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestGetExpiredByClock() {
	_, err := s.repo.Put(s.ctx, searchcache.PutInput{Search: s.search, TTL: time.Hour})
	s.Require().NoError(err)

	s.clock.Advance(2 * time.Hour)

	_, err = s.repo.Get(s.ctx, searchcache.GetInput{PlayerID: "player-1"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestDelete() {
	_, err := s.repo.Put(s.ctx, searchcache.PutInput{Search: s.search})
	s.Require().NoError(err)

	out, err := s.repo.Delete(s.ctx, searchcache.DeleteInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.True(out.Deleted)

	out, err = s.repo.Delete(s.ctx, searchcache.DeleteInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.False(out.Deleted)

	_, err = s.repo.Get(s.ctx, searchcache.GetInput{PlayerID: "player-1"})
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestValidation() {
	_, err := s.repo.Put(s.ctx, searchcache.PutInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Put(s.ctx, searchcache.PutInput{Search: &searchcache.Search{}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, searchcache.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Delete(s.ctx, searchcache.DeleteInput{PlayerID: "  "})
	s.True(errors.IsInvalidArgument(err))
}
