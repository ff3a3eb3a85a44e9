package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "tictactoe"

const (
	ResultAccepted = "accepted"
	ResultRejected = "rejected"
)

// Metrics - counters for the game events a session produces.
type Metrics struct {
	Moves         *prometheus.CounterVec
	FinishedGames *prometheus.CounterVec
	Restarts      prometheus.Counter
	Renames       prometheus.Counter
}

// New - creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Moves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "moves_total",
				Help:      "Square selections by result.",
			},
			[]string{"result"},
		),
		FinishedGames: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "finished_games_total",
				Help:      "Games that ended, by outcome.",
			},
			[]string{"outcome"},
		),
		Restarts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "restarts_total",
			Help:      "Games restarted.",
		}),
		Renames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renames_total",
			Help:      "Player renames.",
		}),
	}

	reg.MustRegister(m.Moves, m.FinishedGames, m.Restarts, m.Renames)

	return m
}
