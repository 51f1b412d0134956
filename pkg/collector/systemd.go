package collector

import (
	"context"
	"fmt"

	"github.com/coreos/go-systemd/v22/dbus"

	"github.com/ljwobker/npusnap/pkg/defaults"
)

// ServiceStatePrefix namespaces systemd-derived entries in the snapshot
// output map so they cannot collide with diagnostic command labels.
const ServiceStatePrefix = "systemd:"

// ServiceStateCollector captures coarse state for named systemd units on the
// device (e.g. the NPU driver daemon) so a snapshot records whether platform
// services were healthy when the counters were read.
type ServiceStateCollector struct {
	Units []string
}

// Collect returns one entry per requested unit, keyed
// "systemd:<unit>", with a single-line load/active/sub state summary.
func (s *ServiceStateCollector) Collect(ctx context.Context) (map[string]string, error) {
	if len(s.Units) == 0 {
		return map[string]string{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.ServiceStateTimeout)
	defer cancel()

	conn, err := dbus.NewSystemdConnectionContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to systemd: %w", err)
	}
	defer conn.Close()

	statuses, err := conn.ListUnitsByNamesContext(ctx, s.Units)
	if err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}

	out := make(map[string]string, len(statuses))
	for _, st := range statuses {
		out[ServiceStatePrefix+st.Name] = fmt.Sprintf("load=%s active=%s sub=%s",
			st.LoadState, st.ActiveState, st.SubState)
	}
	return out, nil
}
