package terminal

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

func runSession(t *testing.T, input string) (*Session, string) {
	t.Helper()

	var out bytes.Buffer
	session := New(slog.New(slog.NewTextHandler(io.Discard, nil)), &out, entity.DefaultPlayers())

	require.NoError(t, session.Run(context.Background(), strings.NewReader(input)))

	return session, out.String()
}

func TestSession_Run(t *testing.T) {
	t.Run("Plays a game to a win", func(t *testing.T) {
		// Given: X completes the top row
		input := "0 0\n1 1\n0 1\n1 2\n0 2\n2 2\n"

		// When: running the session
		session, out := runSession(t, input)

		// Then: the win is reported and the last command was ignored
		assert.Contains(t, out, "Game Over! Player 1 Won!")
		assert.Len(t, session.game.Turns, 5)
		assert.Equal(t, entity.StatusWon, session.game.Status())
	})

	t.Run("Rename persists across restart", func(t *testing.T) {
		session, out := runSession(t, "name x Alice Smith\n1 1\nrestart\n")

		assert.Equal(t, "Alice Smith", session.game.Players.X)
		assert.Empty(t, session.game.Turns)
		assert.Contains(t, out, "Alice Smith (X)")
	})

	t.Run("Occupied square is ignored", func(t *testing.T) {
		session, _ := runSession(t, "1 1\n1 1\n")

		assert.Len(t, session.game.Turns, 1)
		assert.Equal(t, entity.PlayerO, session.game.ActivePlayer())
	})

	t.Run("Reports malformed commands", func(t *testing.T) {
		session, out := runSession(t, "a b\nname Z Zed\nname O\n")

		assert.Contains(t, out, `invalid row "a"`)
		assert.Contains(t, out, "unknown player mark")
		assert.Contains(t, out, "expected name <X|O> <name>")
		assert.Empty(t, session.game.Turns)
	})

	t.Run("Stops on quit", func(t *testing.T) {
		session, _ := runSession(t, "0 0\nquit\n1 1\n")

		assert.Len(t, session.game.Turns, 1)
	})

	t.Run("Draw", func(t *testing.T) {
		_, out := runSession(t, "0 0\n0 1\n0 2\n1 1\n1 0\n2 0\n2 1\n1 2\n2 2\n")

		assert.Contains(t, out, "Game Over! It's a draw")
	})
}

func TestSession_RunStopsOnCancel(t *testing.T) {
	// Given: a session waiting on input that never arrives
	reader, writer := io.Pipe()
	t.Cleanup(func() {
		_ = writer.Close()
	})

	var out bytes.Buffer
	session := New(slog.New(slog.NewTextHandler(io.Discard, nil)), &out, entity.DefaultPlayers())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- session.Run(ctx, reader)
	}()

	// When: the context is canceled
	cancel()

	// Then: Run returns without reading another line
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
