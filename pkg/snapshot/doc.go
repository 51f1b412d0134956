// Package snapshot defines the document written once per sampling round: a
// flat map of command label to captured output, wrapped with a small typed
// header (schema version, round ID, device hostname, sampled clock, software
// version).
//
// Snapshot filenames are derived from device-reported facts rather than the
// collection host, so archives from many routers sort and group correctly:
//
//	<label><hostname>_cmds_<yymmdd-HHMMSS>.json.xz
package snapshot
