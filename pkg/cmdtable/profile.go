package cmdtable

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	apperrors "github.com/ljwobker/npusnap/pkg/errors"
)

// Profile describes a device model's sampling surface: the base show commands
// plus the card/NPU fan-out used to enumerate per-ASIC drop counters. Any XR
// CLI command can be translated to its shell equivalent with "describe".
type Profile struct {
	// Name identifies the profile (e.g. "distributed", "fixed").
	Name string `yaml:"name"`

	// Cards is the number of line card slots to probe. Commands for slots
	// that are not populated fail to resolve and are skipped at run time.
	Cards int `yaml:"cards"`

	// NPUsPerCard is the number of NPU instances per line card.
	NPUsPerCard int `yaml:"npusPerCard"`

	// Commands are the base show commands, label -> argv.
	Commands map[string][]string `yaml:"commands"`
}

// DefaultProfile returns the built-in distributed-system profile: the base
// show commands plus an 18-slot by 4-NPU drop-counter fan-out. Nonexistent
// card/NPU combinations return safely on the device.
func DefaultProfile() *Profile {
	return &Profile{
		Name:        "distributed",
		Cards:       18,
		NPUsPerCard: 4,
		Commands: map[string][]string{
			TimestampLabel: {"date", "+%s"},                       // XR: show clock
			VersionLabel:   {"show_version"},                      // XR: show version
			"showIntf":     {"show_interface", "-a"},              // XR: show interface
			"showInv":      {"show_inventory", "-e"},              // XR: show inventory
			HostnameLabel:  {"cat", "/etc/hostname"},              // no direct XR equivalent
			"showNpuSlice": {"show_slicemgr", "-I", "0xff", "-n", "A"}, // XR: show contr npu slice info
			"showPolMapInt": {
				"qos_ma_show_stats", "-i", "Bundle-Ether21", "-p", "0x1", "-q", "0x2",
			},
		},
	}
}

// LoadProfile reads a device profile from a YAML file. Fields left empty in
// the file inherit from the default profile, so a fixed-system profile only
// needs to override the fan-out dimensions.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeNotFound, fmt.Sprintf("failed to read profile %s", path), err)
	}

	p := DefaultProfile()
	p.Name = ""
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, fmt.Sprintf("failed to parse profile %s", path), err)
	}
	if p.Name == "" {
		p.Name = "custom"
	}

	if err := p.Validate(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, fmt.Sprintf("invalid profile %s", path), err)
	}
	return p, nil
}

// Validate checks the profile for obvious misconfiguration.
func (p *Profile) Validate() error {
	if p.Cards < 0 {
		return fmt.Errorf("cards must be >= 0, got %d", p.Cards)
	}
	if p.NPUsPerCard < 0 {
		return fmt.Errorf("npusPerCard must be >= 0, got %d", p.NPUsPerCard)
	}
	if p.Cards > 0 && p.NPUsPerCard == 0 {
		return fmt.Errorf("npusPerCard must be > 0 when cards > 0")
	}
	if len(p.Commands) == 0 {
		return fmt.Errorf("profile has no commands")
	}
	return Table(p.Commands).Validate()
}

// ShowTable builds the full per-round command table: the base show commands
// plus one drop-counter command per (card, NPU) tuple.
func (p *Profile) ShowTable() Table {
	t := Table(p.Commands).Clone()
	for card := 0; card < p.Cards; card++ {
		for npu := 0; npu < p.NPUsPerCard; npu++ {
			// shell equivalent of "show controller npu stats" for all
			// drop counters on one ASIC
			t[fmt.Sprintf("npu_drops%d_%d", card, npu)] = []string{
				"ofa_npu_stats_show",
				"-v", "a", "-t", "e", "-p", "0xffffffff", "-s", "0x0", "-d", "A",
				"-i", fmt.Sprintf("0x%d", npu),
				"-n", strconv.Itoa(256 * card),
			}
		}
	}
	return t
}

// ClearTable builds the one-shot counter-clear table, one command per
// (card, NPU) tuple. It is executed once before the first sampling round so
// that subsequent snapshots show deltas from a known zero point.
func (p *Profile) ClearTable() Table {
	t := make(Table, p.Cards*p.NPUsPerCard)
	for card := 0; card < p.Cards; card++ {
		for npu := 0; npu < p.NPUsPerCard; npu++ {
			t[fmt.Sprintf("clear_command_%d_%d", card, npu)] = []string{
				"npd_npu_driver_clear",
				"-c", "s",
				"-i", fmt.Sprintf("0x%d", npu),
				"-n", strconv.Itoa(256 * card),
			}
		}
	}
	return t
}
