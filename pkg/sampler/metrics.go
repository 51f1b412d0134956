package sampler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ljwobker/npusnap/pkg/defaults"
)

var (
	roundDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "npusnap_round_duration_seconds",
			Help:    "Time taken to complete one full sampling round",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300},
		},
	)

	roundsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "npusnap_rounds_total",
			Help: "Total number of sampling rounds by status",
		},
		[]string{"status"}, // success or error
	)

	snapshotBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "npusnap_snapshot_bytes",
			Help: "Compressed size of the last written snapshot",
		},
	)

	snapshotCommandCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "npusnap_snapshot_commands",
			Help: "Number of captured commands in the last snapshot",
		},
	)
)

// serveMetrics starts a /metrics listener and returns a stop function.
// Long-running infinite samplers are effectively small daemons; exposing
// collection health avoids guessing from log files.
func serveMetrics(addr string) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: defaults.MetricsReadHeaderTimeout,
	}

	go func() {
		slog.Info("serving metrics", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Warn("metrics listener failed", slog.String("error", err.Error()))
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), defaults.MetricsShutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
