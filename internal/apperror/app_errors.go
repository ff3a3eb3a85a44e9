package apperror

import "errors"

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidCell  = errors.New("invalid cell")
	ErrUnknownMark  = errors.New("unknown player mark")
	ErrEmptyName    = errors.New("player name is empty")
)
