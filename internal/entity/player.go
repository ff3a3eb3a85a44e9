package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
)

const (
	DefaultPlayerXName = "Player 1"
	DefaultPlayerOName = "Player 2"
)

// Players - display names by mark. They survive restarts.
type Players struct {
	X string `json:"X"`
	O string `json:"O"`
}

func DefaultPlayers() Players {
	return Players{
		X: DefaultPlayerXName,
		O: DefaultPlayerOName,
	}
}

func (that Players) Name(mark Mark) string {
	switch mark {
	case PlayerX:
		return that.X
	case PlayerO:
		return that.O
	default:
		return ""
	}
}

func (that *Players) Rename(mark Mark, name string) error {
	switch mark {
	case PlayerX:
		that.X = name
	case PlayerO:
		that.O = name
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownMark, mark)
	}

	return nil
}

// ParseMark - accepts "X" or "O".
func ParseMark(value string) (Mark, error) {
	switch mark := Mark(value); mark {
	case PlayerX, PlayerO:
		return mark, nil
	default:
		return EmptyCell, fmt.Errorf("%w: %q", apperror.ErrUnknownMark, value)
	}
}
