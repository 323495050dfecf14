package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters exposed on /metrics
var (
	BattlesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pokemon_battles_total",
		Help: "Total number of battles resolved",
	})

	EliminationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pokemon_eliminations_total",
		Help: "Total number of pokemon eliminated by losing at level 1",
	})
)
