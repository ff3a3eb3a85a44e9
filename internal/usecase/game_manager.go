package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/metrics"
	"github.com/rocketscienceinc/tictactoe-local/internal/repository"
	"github.com/rocketscienceinc/tictactoe-local/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, sessionID string, game *entity.Game) error
	GetByID(ctx context.Context, sessionID string) (*entity.Game, error)
	DeleteByID(ctx context.Context, sessionID string) error
}

// GameManager - runs one game per browser session.
type GameManager struct {
	logger   *slog.Logger
	metrics  *metrics.Metrics
	gameRepo gameRepo
	locks    *sessionLocks

	defaultPlayers entity.Players
}

func NewGameManager(logger *slog.Logger, m *metrics.Metrics, gameRepo gameRepo, defaultPlayers entity.Players) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		metrics:  m,
		gameRepo: gameRepo,
		locks:    newSessionLocks(),

		defaultPlayers: defaultPlayers,
	}
}

// GetOrCreateGame - returns the session's game, starting a new one on first use.
func (that *GameManager) GetOrCreateGame(ctx context.Context, sessionID string) (entity.GameState, error) {
	defer that.locks.lock(sessionID)()

	game, err := that.getOrCreateGame(ctx, sessionID)
	if err != nil {
		return entity.GameState{}, err
	}

	return game.State(), nil
}

// SelectSquare - rejected moves are not errors, the unchanged state is returned.
func (that *GameManager) SelectSquare(ctx context.Context, sessionID string, row, col int) (entity.GameState, error) {
	defer that.locks.lock(sessionID)()

	log := that.logger.With("method", "SelectSquare", "row", row, "col", col)

	game, err := that.getOrCreateGame(ctx, sessionID)
	if err != nil {
		return entity.GameState{}, err
	}

	if err = tictactoe.SelectSquare(game, row, col); err != nil {
		if isRejectedMove(err) {
			log.Debug("move ignored", "reason", err)
			that.metrics.Moves.WithLabelValues(metrics.ResultRejected).Inc()

			return game.State(), nil
		}

		return entity.GameState{}, fmt.Errorf("failed make turn: %w", err)
	}

	if err = that.updateGame(ctx, sessionID, game); err != nil {
		return entity.GameState{}, err
	}

	that.metrics.Moves.WithLabelValues(metrics.ResultAccepted).Inc()

	state := game.State()
	if state.Status != entity.StatusOngoing {
		that.metrics.FinishedGames.WithLabelValues(state.Status).Inc()
		log.Info("game finished", "status", state.Status, "winner", state.Winner)
	}

	return state, nil
}

// RenamePlayer - names must not be blank once trimmed.
func (that *GameManager) RenamePlayer(ctx context.Context, sessionID string, mark entity.Mark, name string) (entity.GameState, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entity.GameState{}, apperror.ErrEmptyName
	}

	defer that.locks.lock(sessionID)()

	game, err := that.getOrCreateGame(ctx, sessionID)
	if err != nil {
		return entity.GameState{}, err
	}

	if err = tictactoe.RenamePlayer(game, mark, name); err != nil {
		return entity.GameState{}, err
	}

	if err = that.updateGame(ctx, sessionID, game); err != nil {
		return entity.GameState{}, err
	}

	that.metrics.Renames.Inc()

	return game.State(), nil
}

// Restart - clears the board, player names are kept.
func (that *GameManager) Restart(ctx context.Context, sessionID string) (entity.GameState, error) {
	defer that.locks.lock(sessionID)()

	game, err := that.getOrCreateGame(ctx, sessionID)
	if err != nil {
		return entity.GameState{}, err
	}

	tictactoe.Restart(game)

	if err = that.updateGame(ctx, sessionID, game); err != nil {
		return entity.GameState{}, err
	}

	that.metrics.Restarts.Inc()
	that.logger.Info("game restarted")

	return game.State(), nil
}

func (that *GameManager) getOrCreateGame(ctx context.Context, sessionID string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, sessionID)
	if err == nil {
		return game, nil
	}

	if !errors.Is(err, repository.ErrGameNotFound) {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	game = entity.NewGame(that.defaultPlayers)
	if err = that.gameRepo.CreateOrUpdate(ctx, sessionID, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Debug("new game created")

	return game, nil
}

func (that *GameManager) updateGame(ctx context.Context, sessionID string, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, sessionID, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func isRejectedMove(err error) bool {
	return errors.Is(err, apperror.ErrCellOccupied) ||
		errors.Is(err, apperror.ErrGameFinished) ||
		errors.Is(err, apperror.ErrInvalidCell)
}
