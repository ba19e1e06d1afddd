package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LoginAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "login_attempts_total",
			Help: "Total number of login attempts by outcome",
		},
		[]string{"result"},
	)

	RegistrationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "registrations_total",
			Help: "Total number of registered users",
		},
	)

	SessionsMintedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sessions_minted_total",
			Help: "Total number of session cookies minted",
		},
	)

	SessionsClearedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sessions_cleared_total",
			Help: "Total number of session cookies cleared on logout",
		},
	)
)
