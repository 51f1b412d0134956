// Package cmdtable defines the tables of vendor diagnostic commands sampled
// by npusnap.
//
// A Table maps a command label to the argv of its shell invocation. Profiles
// describe a device model: the base show commands plus the card/NPU fan-out
// that enumerates drop-counter commands for every possible (slot, ASIC)
// combination. Commands for hardware that is not present simply fail to
// resolve and are skipped at collection time, so a single profile covers a
// whole product family.
//
// Profiles can be loaded from YAML to adapt the sampler to other platforms:
//
//	name: fixed
//	cards: 1
//	npusPerCard: 4
//	commands:
//	  timestamp: [date, "+%s"]
//	  showVersion: [show_version]
package cmdtable
