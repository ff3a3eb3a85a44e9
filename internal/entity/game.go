package entity

const (
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusDraw    = "draw"

	BoardSize = 3
	MaxTurns  = BoardSize * BoardSize
)

type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

// Square - board coordinates, both in [0, BoardSize).
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Square) IsValid() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

// Turn - a single mark placed on the board.
type Turn struct {
	Square Square `json:"square"`
	Player Mark   `json:"player"`
}

type Board [BoardSize][BoardSize]Mark

// WinCombos - rows top to bottom, columns left to right, then both diagonals.
// The order decides which line is reported first.
var WinCombos = [8][3]Square{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// DeriveActivePlayer - X opens the game, afterwards the marks alternate.
func DeriveActivePlayer(turns []Turn) Mark {
	if len(turns) > 0 && turns[0].Player == PlayerX {
		return PlayerO
	}

	return PlayerX
}

// DeriveBoard - projects the turn history onto an empty board.
func DeriveBoard(turns []Turn) Board {
	var board Board

	for _, turn := range turns {
		board[turn.Square.Row][turn.Square.Col] = turn.Player
	}

	return board
}

// DeriveWinningMark - returns the mark of the first completed line, or EmptyCell.
func DeriveWinningMark(board Board) Mark {
	for _, combo := range WinCombos {
		a := board[combo[0].Row][combo[0].Col]
		b := board[combo[1].Row][combo[1].Col]
		c := board[combo[2].Row][combo[2].Col]

		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}

// DeriveWinner - display name of the winning player.
func DeriveWinner(board Board, players Players) (string, bool) {
	mark := DeriveWinningMark(board)
	if mark == EmptyCell {
		return "", false
	}

	return players.Name(mark), true
}

// Game - the turn history, newest first, and the names of both players.
type Game struct {
	Turns   []Turn  `json:"turns"`
	Players Players `json:"players"`
}

func NewGame(players Players) *Game {
	return &Game{
		Turns:   []Turn{},
		Players: players,
	}
}

func (that *Game) ActivePlayer() Mark {
	return DeriveActivePlayer(that.Turns)
}

func (that *Game) Board() Board {
	return DeriveBoard(that.Turns)
}

func (that *Game) Winner() (string, bool) {
	return DeriveWinner(that.Board(), that.Players)
}

// IsDraw - a full board without a completed line.
func (that *Game) IsDraw() bool {
	if len(that.Turns) < MaxTurns {
		return false
	}

	_, won := that.Winner()

	return !won
}

// Status - a winning line takes precedence over a full board.
func (that *Game) Status() string {
	switch {
	case DeriveWinningMark(that.Board()) != EmptyCell:
		return StatusWon
	case len(that.Turns) >= MaxTurns:
		return StatusDraw
	default:
		return StatusOngoing
	}
}

func (that *Game) IsFinished() bool {
	return that.Status() != StatusOngoing
}

func (that *Game) IsOccupied(square Square) bool {
	return that.Board()[square.Row][square.Col] != EmptyCell
}

// Clone - deep copy, so stored games don't share the turn slice.
func (that *Game) Clone() *Game {
	turns := make([]Turn, len(that.Turns))
	copy(turns, that.Turns)

	return &Game{
		Turns:   turns,
		Players: that.Players,
	}
}

// GameState - everything the presentation layer renders.
type GameState struct {
	Board        Board   `json:"board"`
	ActivePlayer Mark    `json:"active_player"`
	Winner       string  `json:"winner,omitempty"`
	WinningMark  Mark    `json:"winning_mark,omitempty"`
	IsDraw       bool    `json:"is_draw"`
	Status       string  `json:"status"`
	Turns        []Turn  `json:"turns"`
	Players      Players `json:"players"`
}

func (that *Game) State() GameState {
	board := that.Board()
	winner, _ := DeriveWinner(board, that.Players)

	turns := make([]Turn, len(that.Turns))
	copy(turns, that.Turns)

	return GameState{
		Board:        board,
		ActivePlayer: that.ActivePlayer(),
		Winner:       winner,
		WinningMark:  DeriveWinningMark(board),
		IsDraw:       that.IsDraw(),
		Status:       that.Status(),
		Turns:        turns,
		Players:      that.Players,
	}
}
