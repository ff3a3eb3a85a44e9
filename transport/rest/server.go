package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type gameManager interface {
	GetOrCreateGame(ctx context.Context, sessionID string) (entity.GameState, error)
	SelectSquare(ctx context.Context, sessionID string, row, col int) (entity.GameState, error)
	RenamePlayer(ctx context.Context, sessionID string, mark entity.Mark, name string) (entity.GameState, error)
	Restart(ctx context.Context, sessionID string) (entity.GameState, error)
}

type Server struct {
	logger      *slog.Logger
	gameManager gameManager
	gatherer    prometheus.Gatherer

	sessionTTL time.Duration
}

// New - sessionTTL sets the cookie lifetime and should match the storage TTL, zero means 24h.
func New(logger *slog.Logger, gameManager gameManager, gatherer prometheus.Gatherer, sessionTTL time.Duration) *Server {
	if sessionTTL <= 0 {
		sessionTTL = defaultSessionTTL
	}

	return &Server{
		logger:      logger.With("component", "rest"),
		gameManager: gameManager,
		gatherer:    gatherer,

		sessionTTL: sessionTTL,
	}
}

// Router - browser pages, the JSON API, ping and metrics.
func (that *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/ping", pingHandler)
	r.Handle("/metrics", promhttp.HandlerFor(that.gatherer, promhttp.HandlerOpts{}))

	r.Group(func(r chi.Router) {
		r.Use(that.sessionMiddleware)

		r.Get("/", that.handlePage)
		r.Post("/squares", that.handleSelectSquareForm)
		r.Post("/players/{mark}", that.handleRenameForm)
		r.Post("/restart", that.handleRestartForm)

		r.Route("/api", func(r chi.Router) {
			r.Get("/game", that.handleGetGame)
			r.Post("/game/squares", that.handleSelectSquare)
			r.Post("/game/restart", that.handleRestart)
			r.Put("/players/{mark}", that.handleRename)
		})
	})

	return r
}

// Start - serves until ctx is canceled, then shuts down gracefully.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}

		return nil
	}
}
