package collector

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	commandDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "npusnap_command_duration_seconds",
			Help:    "Time taken by individual diagnostic commands",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 180},
		},
		[]string{"label"},
	)

	commandTimeouts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "npusnap_command_timeouts_total",
			Help: "Total number of diagnostic commands killed on timeout",
		},
	)
)
