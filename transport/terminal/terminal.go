package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/tictactoe"
)

const helpText = `commands:
  <row> <col>        place a mark, rows and columns count from 0
  name <X|O> <name>  rename a player
  restart            start a new game
  quit               leave`

// Session - a single game played on one terminal. It owns its game.
type Session struct {
	logger *slog.Logger
	out    *termenv.Output
	game   *entity.Game
}

func New(logger *slog.Logger, w io.Writer, players entity.Players) *Session {
	return &Session{
		logger: logger.With("component", "terminal"),
		out:    termenv.NewOutput(w),
		game:   entity.NewGame(players),
	}
}

// Run - reads commands until quit, EOF or ctx is canceled.
func (that *Session) Run(ctx context.Context, r io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines, readErr := readLines(ctx, r)

	that.println(helpText)
	that.render()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read command: %w", err)
				}
				return nil
			}

			quit, err := that.handle(strings.Fields(line))
			if err != nil {
				that.println(that.out.String(err.Error()).Foreground(termenv.ANSIRed).String())
			}

			if quit {
				return nil
			}

			that.render()
		}
	}
}

// readLines - scans r in the background so a blocked read never holds up cancellation.
// The error channel receives exactly one value once lines is closed.
func readLines(ctx context.Context, r io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errCh := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errCh <- nil
				return
			}
		}

		errCh <- scanner.Err()
	}()

	return lines, errCh
}

func (that *Session) handle(fields []string) (bool, error) {
	if len(fields) == 0 {
		return false, nil
	}

	switch fields[0] {
	case "quit", "exit":
		return true, nil
	case "restart", "rematch":
		tictactoe.Restart(that.game)
		return false, nil
	case "name":
		return false, that.rename(fields[1:])
	case "help":
		that.println(helpText)
		return false, nil
	default:
		return false, that.selectSquare(fields)
	}
}

func (that *Session) selectSquare(fields []string) error {
	if len(fields) != 2 {
		return errors.New("expected <row> <col>")
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return fmt.Errorf("invalid row %q", fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Errorf("invalid col %q", fields[1])
	}

	// rejected moves are silently ignored
	if err = tictactoe.SelectSquare(that.game, row, col); err != nil {
		that.logger.Debug("move ignored", "reason", err)
	}

	return nil
}

func (that *Session) rename(fields []string) error {
	if len(fields) < 2 {
		return errors.New("expected name <X|O> <name>")
	}

	mark, err := entity.ParseMark(strings.ToUpper(fields[0]))
	if err != nil {
		return err
	}

	name := strings.TrimSpace(strings.Join(fields[1:], " "))
	if name == "" {
		return apperror.ErrEmptyName
	}

	return tictactoe.RenamePlayer(that.game, mark, name)
}

func (that *Session) render() {
	state := that.game.State()

	var players []string
	for _, mark := range []entity.Mark{entity.PlayerX, entity.PlayerO} {
		label := fmt.Sprintf("%s (%s)", state.Players.Name(mark), mark)
		if mark == state.ActivePlayer && state.Status == entity.StatusOngoing {
			label = that.out.String("> " + label).Bold().Foreground(termenv.ANSIYellow).String()
		}
		players = append(players, label)
	}
	that.println(strings.Join(players, "   "))

	for row, cells := range state.Board {
		marks := make([]string, len(cells))
		for col, mark := range cells {
			marks[col] = cellText(mark)
		}

		that.println(" " + strings.Join(marks, " | "))
		if row < entity.BoardSize-1 {
			that.println("---+---+---")
		}
	}

	for _, turn := range state.Turns {
		that.println(fmt.Sprintf("  %s selected %d,%d", turn.Player, turn.Square.Row, turn.Square.Col))
	}

	switch state.Status {
	case entity.StatusWon:
		that.println(that.out.String("Game Over! " + state.Winner + " Won!").Bold().String())
	case entity.StatusDraw:
		that.println(that.out.String("Game Over! It's a draw").Bold().String())
	}
}

func cellText(mark entity.Mark) string {
	if mark == entity.EmptyCell {
		return " "
	}

	return string(mark)
}

func (that *Session) println(line string) {
	_, _ = fmt.Fprintln(that.out, line)
}
