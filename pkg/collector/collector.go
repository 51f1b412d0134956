package collector

import (
	"context"

	"github.com/ljwobker/npusnap/pkg/cmdtable"
)

// Runner executes a table of diagnostic commands and returns their captured
// stdout keyed by command label. Implementations decide how commands that
// cannot run are reported; see ExecRunner for the production semantics.
type Runner interface {
	Run(ctx context.Context, table cmdtable.Table) (map[string]string, error)
}
