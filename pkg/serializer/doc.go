// Package serializer provides utilities for serializing snapshot data.
//
// Supported formats:
//   - json: indented JSON
//   - json.xz: indented JSON compressed with xz (the snapshot default)
//   - yaml: YAML
//   - table: tab-aligned text for types implementing Tabular
//
// Usage:
//
//	w, err := serializer.NewFileWriter(serializer.FormatJSONXZ, path)
//	if err != nil { ... }
//	defer w.Close() // important: finalizes the file handle
//	if err := w.Serialize(ctx, snap); err != nil { ... }
package serializer
