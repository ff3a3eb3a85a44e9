package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
)

// turnsOf builds a newest-first history from moves listed in play order.
func turnsOf(moves ...Turn) []Turn {
	turns := make([]Turn, 0, len(moves))
	for _, move := range moves {
		turns = append([]Turn{move}, turns...)
	}

	return turns
}

func turn(row, col int, player Mark) Turn {
	return Turn{Square: Square{Row: row, Col: col}, Player: player}
}

// drawMoves fills the board in play order without completing a line:
//
//	X O X
//	X O O
//	O X X
func drawMoves() []Turn {
	return []Turn{
		turn(0, 0, PlayerX), turn(0, 1, PlayerO), turn(0, 2, PlayerX),
		turn(1, 1, PlayerO), turn(1, 0, PlayerX), turn(2, 0, PlayerO),
		turn(2, 1, PlayerX), turn(1, 2, PlayerO), turn(2, 2, PlayerX),
	}
}

func TestDeriveActivePlayer(t *testing.T) {
	t.Run("X starts an empty game", func(t *testing.T) {
		assert.Equal(t, PlayerX, DeriveActivePlayer(nil))
	})

	t.Run("Alternates with every recorded turn", func(t *testing.T) {
		// Given: the moves of a full game
		moves := drawMoves()

		for n := 0; n <= len(moves); n++ {
			// When: deriving the active player after n turns
			active := DeriveActivePlayer(turnsOf(moves[:n]...))

			// Then: X moves on even counts, O on odd counts
			if n%2 == 0 {
				assert.Equal(t, PlayerX, active, "after %d turns", n)
			} else {
				assert.Equal(t, PlayerO, active, "after %d turns", n)
			}
		}
	})
}

func TestDeriveBoard(t *testing.T) {
	t.Run("Empty history gives an empty board", func(t *testing.T) {
		assert.Equal(t, Board{}, DeriveBoard(nil))
	})

	t.Run("Every turn occupies exactly one cell", func(t *testing.T) {
		moves := drawMoves()

		for n := 0; n <= len(moves); n++ {
			// Given: the first n turns
			board := DeriveBoard(turnsOf(moves[:n]...))

			// Then: n cells are occupied
			occupied := 0
			for _, row := range board {
				for _, cell := range row {
					if cell != EmptyCell {
						occupied++
					}
				}
			}
			assert.Equal(t, n, occupied)
		}
	})

	t.Run("Places marks at their coordinates", func(t *testing.T) {
		// Given: two turns
		turns := turnsOf(turn(0, 2, PlayerX), turn(2, 1, PlayerO))

		// When: projecting the board
		board := DeriveBoard(turns)

		// Then: the marks are on their squares and the rest is empty
		expected := Board{
			{EmptyCell, EmptyCell, PlayerX},
			{EmptyCell, EmptyCell, EmptyCell},
			{EmptyCell, PlayerO, EmptyCell},
		}
		assert.Equal(t, expected, board)
	})

	t.Run("Does not share state between calls", func(t *testing.T) {
		turns := turnsOf(turn(1, 1, PlayerX))

		first := DeriveBoard(turns)
		first[0][0] = PlayerO

		assert.Equal(t, EmptyCell, DeriveBoard(turns)[0][0])
	})
}

func TestDeriveWinner(t *testing.T) {
	players := Players{X: "Alice", O: "Bob"}

	t.Run("Top row wins for X", func(t *testing.T) {
		// Given: X completes row 0
		turns := turnsOf(
			turn(0, 0, PlayerX), turn(1, 1, PlayerO),
			turn(0, 1, PlayerX), turn(1, 2, PlayerO),
			turn(0, 2, PlayerX),
		)

		// When: deriving the winner
		name, ok := DeriveWinner(DeriveBoard(turns), players)

		// Then: X's display name is returned
		require.True(t, ok)
		assert.Equal(t, "Alice", name)
	})

	t.Run("Every line is detected", func(t *testing.T) {
		for _, combo := range WinCombos {
			// Given: a board where O holds one line
			var board Board
			for _, square := range combo {
				board[square.Row][square.Col] = PlayerO
			}

			// When: deriving the winner
			name, ok := DeriveWinner(board, players)

			// Then: O wins
			require.True(t, ok)
			assert.Equal(t, "Bob", name)
		}
	})

	t.Run("No winner on a drawn board", func(t *testing.T) {
		name, ok := DeriveWinner(DeriveBoard(turnsOf(drawMoves()...)), players)

		assert.False(t, ok)
		assert.Empty(t, name)
	})

	t.Run("Earliest line in the table wins", func(t *testing.T) {
		// Given: X holds the top row and O holds the bottom row
		board := Board{
			{PlayerX, PlayerX, PlayerX},
			{EmptyCell, EmptyCell, EmptyCell},
			{PlayerO, PlayerO, PlayerO},
		}

		// Then: the top row is reported
		assert.Equal(t, PlayerX, DeriveWinningMark(board))
	})

	t.Run("Reflects renamed players", func(t *testing.T) {
		board := Board{{PlayerO, PlayerO, PlayerO}}
		renamed := players
		require.NoError(t, renamed.Rename(PlayerO, "Carol"))

		name, _ := DeriveWinner(board, renamed)

		assert.Equal(t, "Carol", name)
	})
}

func TestGame_Status(t *testing.T) {
	t.Run("New game is ongoing", func(t *testing.T) {
		game := NewGame(DefaultPlayers())

		assert.Equal(t, StatusOngoing, game.Status())
		assert.False(t, game.IsFinished())
		assert.False(t, game.IsDraw())
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		game := &Game{Turns: turnsOf(drawMoves()...), Players: DefaultPlayers()}

		_, won := game.Winner()

		assert.Equal(t, StatusDraw, game.Status())
		assert.True(t, game.IsDraw())
		assert.False(t, won)
	})

	t.Run("Line completed on the ninth turn is a win", func(t *testing.T) {
		// Given: X completes the left column with the last free square
		//
		//	X O X
		//	X O O
		//	X X O
		game := &Game{
			Turns: turnsOf(
				turn(0, 0, PlayerX), turn(0, 1, PlayerO),
				turn(0, 2, PlayerX), turn(1, 1, PlayerO),
				turn(1, 0, PlayerX), turn(1, 2, PlayerO),
				turn(2, 1, PlayerX), turn(2, 2, PlayerO),
				turn(2, 0, PlayerX),
			),
			Players: DefaultPlayers(),
		}

		// Then: the win takes precedence over the draw
		name, won := game.Winner()
		assert.True(t, won)
		assert.Equal(t, DefaultPlayerXName, name)
		assert.Equal(t, StatusWon, game.Status())
		assert.False(t, game.IsDraw())
	})
}

func TestGame_StateIsPure(t *testing.T) {
	// Given: a game in progress
	game := &Game{
		Turns:   turnsOf(turn(0, 0, PlayerX), turn(1, 1, PlayerO)),
		Players: DefaultPlayers(),
	}

	// When: taking two snapshots
	first := game.State()
	second := game.State()

	// Then: they are identical
	assert.Equal(t, first, second)
	assert.Equal(t, PlayerX, first.ActivePlayer)
	assert.Equal(t, StatusOngoing, first.Status)

	// And: mutating a snapshot does not reach the game
	first.Turns[0].Player = PlayerX
	assert.Equal(t, PlayerO, game.Turns[0].Player)
}

func TestGame_Clone(t *testing.T) {
	game := &Game{Turns: turnsOf(turn(0, 0, PlayerX)), Players: DefaultPlayers()}

	clone := game.Clone()
	clone.Turns[0].Square.Row = 2
	clone.Players.X = "Changed"

	assert.Equal(t, 0, game.Turns[0].Square.Row)
	assert.Equal(t, DefaultPlayerXName, game.Players.X)
}

func TestPlayers(t *testing.T) {
	t.Run("Rename updates a single mark", func(t *testing.T) {
		players := DefaultPlayers()

		require.NoError(t, players.Rename(PlayerX, "Alice"))

		assert.Equal(t, "Alice", players.Name(PlayerX))
		assert.Equal(t, DefaultPlayerOName, players.Name(PlayerO))
	})

	t.Run("Rename rejects an unknown mark", func(t *testing.T) {
		players := DefaultPlayers()

		err := players.Rename("Z", "Zed")

		require.ErrorIs(t, err, apperror.ErrUnknownMark)
		assert.Equal(t, DefaultPlayers(), players)
	})

	t.Run("ParseMark", func(t *testing.T) {
		mark, err := ParseMark("O")
		require.NoError(t, err)
		assert.Equal(t, PlayerO, mark)

		_, err = ParseMark("x")
		assert.ErrorIs(t, err, apperror.ErrUnknownMark)
	})
}
