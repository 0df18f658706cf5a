package ownership_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/essence-api/internal/entities"
	"github.com/KirkDiggler/essence-api/internal/errors"
	"github.com/KirkDiggler/essence-api/internal/repositories/ownership"
	"github.com/KirkDiggler/essence-api/internal/testutils"
)

func TestNewRedisRepositoryRequiresClient(t *testing.T) {
	_, err := ownership.NewRedisRepository(&ownership.RedisConfig{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = ownership.NewRedisRepository(nil)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestRedisRepositoryKeyLayout(t *testing.T) {
	client, mr, cleanup := testutils.CreateTestRedisServer(t)
	defer cleanup()

	repo, err := ownership.NewRedisRepository(&ownership.RedisConfig{Client: client})
	require.NoError(t, err)

	state := entities.NewOwnershipState("p1")
	state.Set("Sword-A", true, false)
	state.Set("Sword-B", true, true)
	_, err = repo.Save(context.Background(), ownership.SaveInput{State: state})
	require.NoError(t, err)

	owned, err := mr.Members("ownership:{p1}:owned")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Sword-A", "Sword-B"}, owned)

	done, err := mr.Members("ownership:{p1}:done")
	require.NoError(t, err)
	assert.Equal(t, []string{"Sword-B"}, done)

	_, err = repo.Delete(context.Background(), ownership.DeleteInput{PlayerID: "p1"})
	require.NoError(t, err)
	assert.False(t, mr.Exists("ownership:{p1}:owned"))
}

func TestMySQLConfigValidate(t *testing.T) {
	cfg := &ownership.MySQLConfig{MaxOpenConns: -1}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dsn")
	assert.Contains(t, err.Error(), "max_open_conns")

	_, _, err = ownership.NewMySQLRepository(context.Background(), &ownership.MySQLConfig{})
	assert.True(t, errors.IsInvalidArgument(err))
}
