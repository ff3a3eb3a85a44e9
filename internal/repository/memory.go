package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

type memGame struct {
	mu    sync.RWMutex
	games map[string]*entity.Game
}

// NewMemoryGameRepository - process-local storage, games live until the server stops.
func NewMemoryGameRepository() GameRepository {
	return &memGame{
		games: make(map[string]*entity.Game),
	}
}

func (that *memGame) CreateOrUpdate(_ context.Context, sessionID string, game *entity.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.games[sessionID] = game.Clone()

	return nil
}

func (that *memGame) GetByID(_ context.Context, sessionID string) (*entity.Game, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	game, ok := that.games[sessionID]
	if !ok {
		return nil, ErrGameNotFound
	}

	return game.Clone(), nil
}

func (that *memGame) DeleteByID(_ context.Context, sessionID string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[sessionID]; !ok {
		return ErrGameNotFound
	}

	delete(that.games, sessionID)

	return nil
}
