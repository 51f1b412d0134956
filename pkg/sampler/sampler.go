package sampler

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/time/rate"

	"github.com/ljwobker/npusnap/pkg/cmdtable"
	"github.com/ljwobker/npusnap/pkg/collector"
	"github.com/ljwobker/npusnap/pkg/defaults"
	apperrors "github.com/ljwobker/npusnap/pkg/errors"
	"github.com/ljwobker/npusnap/pkg/index"
	"github.com/ljwobker/npusnap/pkg/serializer"
	"github.com/ljwobker/npusnap/pkg/snapshot"
)

// ServiceStater captures systemd unit states to fold into a snapshot.
// Implemented by collector.ServiceStateCollector.
type ServiceStater interface {
	Collect(ctx context.Context) (map[string]string, error)
}

// Config holds the sampling loop parameters.
type Config struct {
	// Interval is the spacing between round starts. Zero or negative
	// means rounds run back to back.
	Interval time.Duration

	// Runs is the number of rounds to execute; 0 means run forever.
	Runs int

	// OutputDir receives snapshot files; created if missing.
	OutputDir string

	// Label is prepended to snapshot filenames.
	Label string

	// Format selects the snapshot serialization (default json.xz).
	Format serializer.Format

	// Version is the tool version recorded in snapshot metadata.
	Version string

	// SkipClear skips the one-time counter clear before the first round.
	SkipClear bool

	// MetricsAddr, when non-empty, serves Prometheus metrics during
	// sampling (e.g. ":9464").
	MetricsAddr string
}

// Sampler drives repeated sampling rounds: clear counters once, then run the
// show table, stamp and serialize a snapshot, and pace the next round.
type Sampler struct {
	cfg      Config
	profile  *cmdtable.Profile
	runner   collector.Runner
	services ServiceStater
	idx      *index.DB
}

// Option customizes a Sampler.
type Option func(*Sampler)

// WithServiceStater folds systemd unit states into every snapshot.
func WithServiceStater(s ServiceStater) Option {
	return func(sm *Sampler) { sm.services = s }
}

// WithIndex records every written snapshot in the given index.
func WithIndex(db *index.DB) Option {
	return func(sm *Sampler) { sm.idx = db }
}

// New creates a Sampler. A nil runner gets the production ExecRunner; a nil
// profile gets the built-in default.
func New(cfg Config, profile *cmdtable.Profile, runner collector.Runner, opts ...Option) *Sampler {
	if profile == nil {
		profile = cmdtable.DefaultProfile()
	}
	if runner == nil {
		runner = &collector.ExecRunner{}
	}
	if cfg.Format == "" {
		cfg.Format = serializer.FormatJSONXZ
	}
	s := &Sampler{
		cfg:     cfg,
		profile: profile,
		runner:  runner,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes the sampling loop until the configured run count is reached,
// the context is canceled, or a command times out.
func (s *Sampler) Run(ctx context.Context) error {
	if err := os.MkdirAll(s.cfg.OutputDir, defaults.DirPerm); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal,
			fmt.Sprintf("failed to create output directory %s", s.cfg.OutputDir), err)
	}
	slog.Info("using output directory", slog.String("dir", s.cfg.OutputDir))

	if s.cfg.MetricsAddr != "" {
		stop := serveMetrics(s.cfg.MetricsAddr)
		defer stop()
	}

	if !s.cfg.SkipClear {
		if err := s.clearCounters(ctx); err != nil {
			return err
		}
	}

	show := s.profile.ShowTable()
	limiter := rate.NewLimiter(rate.Every(s.cfg.Interval), 1)

	for run := 0; ; run++ {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}

		if err := s.round(ctx, show); err != nil {
			roundsTotal.WithLabelValues("error").Inc()
			return err
		}
		roundsTotal.WithLabelValues("success").Inc()

		if s.cfg.Runs > 0 && run+1 >= s.cfg.Runs {
			slog.Info("sampling complete", slog.Int("runs", run+1))
			return nil
		}
	}
}

// clearCounters runs the clear table once so subsequent snapshots show
// deltas from a known zero point. Missing binaries are skipped by the
// runner; a timeout is still fatal.
func (s *Sampler) clearCounters(ctx context.Context) error {
	clearTable := s.profile.ClearTable()
	if len(clearTable) == 0 {
		return nil
	}
	slog.Info("clearing drop counters", slog.Int("commands", len(clearTable)))
	if _, err := s.runner.Run(ctx, clearTable); err != nil {
		return fmt.Errorf("failed to clear counters: %w", err)
	}
	return nil
}

// round executes one sampling round and writes one snapshot file.
func (s *Sampler) round(ctx context.Context, show cmdtable.Table) error {
	start := time.Now()
	defer func() {
		roundDuration.Observe(time.Since(start).Seconds())
	}()

	out, err := s.runner.Run(ctx, show)
	if err != nil {
		return err
	}

	if s.services != nil {
		states, err := s.services.Collect(ctx)
		if err != nil {
			// service state is supplementary; never fail a round over it
			slog.Warn("failed to collect service states", slog.String("error", err.Error()))
		} else {
			for k, v := range states {
				out[k] = v
			}
		}
	}

	snap := snapshot.New(s.cfg.Version, s.cfg.Label)
	snap.Outputs = out
	snap.Stamp()

	path := filepath.Join(s.cfg.OutputDir, snap.Filename()+s.cfg.Format.Extension())
	slog.Info("writing snapshot",
		slog.String("path", path),
		slog.Int("commands", len(out)))

	if err := s.write(ctx, snap, path); err != nil {
		return err
	}

	if fi, err := os.Stat(path); err == nil {
		snapshotBytes.Set(float64(fi.Size()))
		s.record(snap, path, fi.Size())
	}
	snapshotCommandCount.Set(float64(len(out)))
	return nil
}

func (s *Sampler) write(ctx context.Context, snap *snapshot.Snapshot, path string) error {
	w, err := serializer.NewFileWriter(s.cfg.Format, path)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, "failed to open snapshot file", err)
	}
	if err := w.Serialize(ctx, snap); err != nil {
		_ = w.Close()
		return apperrors.Wrap(apperrors.ErrCodeInternal, "failed to serialize snapshot", err)
	}
	if err := w.Close(); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, "failed to finalize snapshot file", err)
	}
	return nil
}

// record appends the written snapshot to the local index, if configured.
func (s *Sampler) record(snap *snapshot.Snapshot, path string, size int64) {
	if s.idx == nil {
		return
	}
	_, err := s.idx.Record(index.Entry{
		File:      filepath.Base(path),
		Host:      snap.Metadata.Hostname,
		Label:     snap.Metadata.Label,
		Created:   snap.Metadata.Created,
		SizeBytes: size,
		Commands:  len(snap.Outputs),
	})
	if err != nil {
		slog.Warn("failed to index snapshot", slog.String("error", err.Error()))
	}
}
