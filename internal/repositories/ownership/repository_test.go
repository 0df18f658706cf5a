package ownership_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/essence-api/internal/entities"
	"github.com/KirkDiggler/essence-api/internal/errors"
	"github.com/KirkDiggler/essence-api/internal/repositories/ownership"
	"github.com/KirkDiggler/essence-api/internal/testutils"
)

// RepositoryTestSuite runs the same behaviour against every backend
type RepositoryTestSuite struct {
	suite.Suite
	newRepo func(t *testing.T) (ownership.Repository, func())
	repo    ownership.Repository
	cleanup func()
	ctx     context.Context
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{newRepo: func(t *testing.T) (ownership.Repository, func()) {
		client, cleanup := testutils.CreateTestRedisClient(t)
		repo, err := ownership.NewRedisRepository(&ownership.RedisConfig{Client: client})
		require.NoError(t, err)
		return repo, cleanup
	}})
}

func TestMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{newRepo: func(t *testing.T) (ownership.Repository, func()) {
		return ownership.NewMemoryRepository(), func() {}
	}})
}

func TestMySQLRepository(t *testing.T) {
	dsn := os.Getenv("ESSENCE_MYSQL_DSN")
	if dsn == "" {
		t.Skip("ESSENCE_MYSQL_DSN not set")
	}

	suite.Run(t, &RepositoryTestSuite{newRepo: func(t *testing.T) (ownership.Repository, func()) {
		repo, closeDB, err := ownership.NewMySQLRepository(context.Background(), &ownership.MySQLConfig{
			DSN:          dsn,
			CreateSchema: true,
		})
		require.NoError(t, err)
		return repo, func() { _ = closeDB() }
	}})
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo, s.cleanup = s.newRepo(s.T())
	// MySQL keeps rows between tests
	_, err := s.repo.Delete(s.ctx, ownership.DeleteInput{PlayerID: "player-1"})
	s.Require().NoError(err)
}

func (s *RepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RepositoryTestSuite) TestGetUnknownPlayerIsEmpty() {
	out, err := s.repo.Get(s.ctx, ownership.GetInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Equal("player-1", out.State.PlayerID)
	s.Empty(out.State.Owned)
	s.Empty(out.State.Done)
}

func (s *RepositoryTestSuite) TestSaveAndGet() {
	state := entities.NewOwnershipState("player-1")
	state.Set("Sword-A", true, false)
	state.Set("Sword-B", false, true)
	state.Set("Sword-C", false, false)

	saved, err := s.repo.Save(s.ctx, ownership.SaveInput{State: state})
	s.Require().NoError(err)
	s.Equal(2, saved.Entries)

	out, err := s.repo.Get(s.ctx, ownership.GetInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.True(out.State.IsOwned("Sword-A"))
	s.False(out.State.IsDone("Sword-A"))
	s.True(out.State.IsOwned("Sword-B"), "done implies owned")
	s.True(out.State.IsDone("Sword-B"))
	s.False(out.State.IsOwned("Sword-C"))
}

func (s *RepositoryTestSuite) TestSaveReplacesPreviousState() {
	first := entities.NewOwnershipState("player-1")
	first.Set("Sword-A", true, true)
	_, err := s.repo.Save(s.ctx, ownership.SaveInput{State: first})
	s.Require().NoError(err)

	second := entities.NewOwnershipState("player-1")
	second.Set("Sword-B", true, false)
	_, err = s.repo.Save(s.ctx, ownership.SaveInput{State: second})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, ownership.GetInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.False(out.State.IsOwned("Sword-A"))
	s.False(out.State.IsDone("Sword-A"))
	s.True(out.State.IsOwned("Sword-B"))
}

func (s *RepositoryTestSuite) TestReturnedStateIsDetached() {
	state := entities.NewOwnershipState("player-1")
	state.Set("Sword-A", true, false)
	_, err := s.repo.Save(s.ctx, ownership.SaveInput{State: state})
	s.Require().NoError(err)

	state.Set("Sword-Z", true, true)
	out, err := s.repo.Get(s.ctx, ownership.GetInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.False(out.State.IsOwned("Sword-Z"))

	out.State.Set("Sword-Y", true, true)
	again, err := s.repo.Get(s.ctx, ownership.GetInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.False(again.State.IsOwned("Sword-Y"))
}

func (s *RepositoryTestSuite) TestDelete() {
	state := entities.NewOwnershipState("player-1")
	state.Set("Sword-A", true, true)
	_, err := s.repo.Save(s.ctx, ownership.SaveInput{State: state})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, ownership.DeleteInput{PlayerID: "player-1"})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, ownership.GetInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Empty(out.State.Owned)
}

func (s *RepositoryTestSuite) TestPlayersAreIsolated() {
	state := entities.NewOwnershipState("player-1")
	state.Set("Sword-A", true, false)
	_, err := s.repo.Save(s.ctx, ownership.SaveInput{State: state})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, ownership.GetInput{PlayerID: "player-2"})
	s.Require().NoError(err)
	s.False(out.State.IsOwned("Sword-A"))
}

func (s *RepositoryTestSuite) TestValidation() {
	testCases := []struct {
		name string
		call func() error
	}{
		{name: "get without player", call: func() error {
			_, err := s.repo.Get(s.ctx, ownership.GetInput{PlayerID: " "})
			return err
		}},
		{name: "save nil state", call: func() error {
			_, err := s.repo.Save(s.ctx, ownership.SaveInput{})
			return err
		}},
		{name: "save without player", call: func() error {
			_, err := s.repo.Save(s.ctx, ownership.SaveInput{State: entities.NewOwnershipState("")})
			return err
		}},
		{name: "delete without player", call: func() error {
			_, err := s.repo.Delete(s.ctx, ownership.DeleteInput{})
			return err
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.call()
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}
