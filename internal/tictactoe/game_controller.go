package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

// SelectSquare - places the active player's mark on the square.
// A rejected move leaves the game untouched.
func SelectSquare(game *entity.Game, row, col int) error {
	square := entity.Square{Row: row, Col: col}

	if err := validateMove(game, square); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	turn := entity.Turn{
		Square: square,
		Player: game.ActivePlayer(),
	}

	game.Turns = append([]entity.Turn{turn}, game.Turns...)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(game *entity.Game, square entity.Square) error {
	if !square.IsValid() {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrInvalidCell, square.Row, square.Col)
	}

	// a draw leaves no free square, so only a win needs its own check
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if game.IsOccupied(square) {
		return apperror.ErrCellOccupied
	}

	return nil
}

// Restart - clears the history, player names are kept.
func Restart(game *entity.Game) {
	game.Turns = []entity.Turn{}
}

// RenamePlayer - changes a display name at any point of the game.
func RenamePlayer(game *entity.Game, mark entity.Mark, name string) error {
	if err := game.Players.Rename(mark, name); err != nil {
		return fmt.Errorf("failed to rename player: %w", err)
	}

	return nil
}
