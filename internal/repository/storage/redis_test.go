package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/repository"
	"github.com/rocketscienceinc/tictactoe-local/testing/suite"
)

func TestNewRedisStorage(t *testing.T) {
	t.Run("Connects to a running server", func(t *testing.T) {
		ctx, st := suite.New(t)

		// When: connecting to the container
		client, err := NewRedisStorage(ctx, st.Addr)

		// Then: the client is ready to store games
		require.NoError(t, err)
		t.Cleanup(func() {
			_ = client.Close()
		})

		gameRepo := repository.NewGameRepository(client, 0)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, "session-1", entity.NewGame(entity.DefaultPlayers())))

		game, err := gameRepo.GetByID(ctx, "session-1")
		require.NoError(t, err)
		require.Equal(t, entity.DefaultPlayers(), game.Players)
	})

	t.Run("Fails when nothing listens", func(t *testing.T) {
		client, err := NewRedisStorage(context.Background(), "127.0.0.1:1")

		require.Error(t, err)
		require.Nil(t, client)
	})
}
