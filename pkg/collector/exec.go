package collector

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/ljwobker/npusnap/pkg/cmdtable"
	"github.com/ljwobker/npusnap/pkg/defaults"
	apperrors "github.com/ljwobker/npusnap/pkg/errors"
)

// ExecRunner runs diagnostic commands as subprocesses. All commands of a
// table are launched concurrently and each is bounded by Timeout.
//
// Error semantics match the collection discipline this tool inherits:
//   - a binary that does not resolve (fixed vs. distributed hardware
//     variant) is logged at debug and skipped; its label is absent from
//     the result
//   - a command that exceeds Timeout is killed and aborts the whole run
//     with a TIMEOUT error; partial results are discarded
//   - a nonzero exit is not an error; whatever stdout was produced is
//     captured (vendor tools exit nonzero for absent hardware)
type ExecRunner struct {
	// Timeout bounds each command. Zero means defaults.CommandTimeout.
	Timeout time.Duration
}

// Run executes all commands in the table and returns captured output keyed
// by label.
func (r *ExecRunner) Run(ctx context.Context, table cmdtable.Table) (map[string]string, error) {
	if err := table.Validate(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "invalid command table", err)
	}

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = defaults.CommandTimeout
	}

	out := make(map[string]string, len(table))
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)

	for label, argv := range table {
		label, argv := label, argv
		g.Go(func() error {
			text, ok, err := runOne(gctx, label, argv, timeout)
			if err != nil || !ok {
				return err
			}
			mu.Lock()
			out[label] = text
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// runOne executes a single command. ok is false when the command was skipped.
func runOne(ctx context.Context, label string, argv []string, timeout time.Duration) (text string, ok bool, err error) {
	path, err := exec.LookPath(argv[0])
	if err != nil {
		// likely because fixed vs. distributed
		slog.Debug("command not present on this system, skipping",
			slog.String("label", label),
			slog.String("binary", argv[0]))
		return "", false, nil
	}

	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	cmd := exec.CommandContext(cctx, path, argv[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	commandDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())

	if errors.Is(cctx.Err(), context.DeadlineExceeded) {
		commandTimeouts.Inc()
		return "", false, apperrors.Wrap(apperrors.ErrCodeTimeout,
			fmt.Sprintf("command %q timed out after %s", label, timeout), cctx.Err())
	}
	if ctx.Err() != nil {
		return "", false, ctx.Err()
	}
	if runErr != nil {
		slog.Debug("command exited with error, capturing partial output",
			slog.String("label", label),
			slog.String("error", runErr.Error()),
			slog.Int("stderr_bytes", stderr.Len()))
	}

	return scrubUTF8(stdout.Bytes()), true, nil
}

// scrubUTF8 decodes raw process output as UTF-8, replacing invalid byte
// sequences. Vendor diagnostic tools occasionally emit raw hardware register
// dumps that are not valid text; the snapshot must still be valid JSON.
func scrubUTF8(b []byte) string {
	clean, _, err := transform.Bytes(unicode.UTF8.NewDecoder(), b)
	if err != nil {
		return string(b)
	}
	return string(clean)
}
