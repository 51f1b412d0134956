package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/ulikunitz/xz"
	"gopkg.in/yaml.v3"
)

// Format represents the output format type.
type Format string

const (
	// FormatJSON outputs indented JSON.
	FormatJSON Format = "json"
	// FormatJSONXZ outputs indented JSON compressed with xz. This is the
	// snapshot default: drop-counter dumps compress extremely well.
	FormatJSONXZ Format = "json.xz"
	// FormatYAML outputs YAML.
	FormatYAML Format = "yaml"
	// FormatTable outputs a human-readable table; the value must implement
	// the Tabular interface.
	FormatTable Format = "table"
)

// IsUnknown reports whether f is not a supported format.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatJSONXZ, FormatYAML, FormatTable:
		return false
	default:
		return true
	}
}

// Extension returns the filename extension for the format, including the
// leading dot.
func (f Format) Extension() string {
	switch f {
	case FormatJSONXZ:
		return ".json.xz"
	case FormatYAML:
		return ".yaml"
	case FormatTable:
		return ".txt"
	default:
		return ".json"
	}
}

// SupportedFormats returns a list of all supported output formats.
func SupportedFormats() []string {
	return []string{
		string(FormatJSON),
		string(FormatJSONXZ),
		string(FormatYAML),
		string(FormatTable),
	}
}

// Tabular is implemented by types that can render themselves as a table.
type Tabular interface {
	TableHeader() []string
	TableRows() [][]string
}

// Writer serializes values to an io.Writer in a configured format.
// Close must be called when using NewFileWriter to flush and release the file.
type Writer struct {
	format Format
	output io.Writer
	closer io.Closer
}

// NewWriter creates a Writer with the specified format and destination.
// If output is nil, os.Stdout is used. An unknown format falls back to JSON.
func NewWriter(format Format, output io.Writer) *Writer {
	if output == nil {
		output = os.Stdout
	}
	if format.IsUnknown() {
		slog.Warn("unknown format, defaulting to JSON", "format", format)
		format = FormatJSON
	}
	return &Writer{
		format: format,
		output: output,
	}
}

// NewStdoutWriter creates a Writer that outputs to stdout.
func NewStdoutWriter(format Format) *Writer {
	return NewWriter(format, os.Stdout)
}

// NewFileWriter creates a Writer that outputs to the given path, creating or
// truncating the file. Call Close when done.
func NewFileWriter(format Format, path string) (*Writer, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	w := NewWriter(format, file)
	w.closer = file
	return w, nil
}

// Close releases any resources associated with the Writer. It is safe to
// call on stdout-based writers.
func (w *Writer) Close() error {
	if w.closer != nil {
		return w.closer.Close()
	}
	return nil
}

// Serialize writes the value in the configured format. Context is accepted
// for interface symmetry with slower sinks; local writes do not use it.
func (w *Writer) Serialize(_ context.Context, v any) error {
	switch w.format {
	case FormatJSON:
		return writeJSON(w.output, v)
	case FormatJSONXZ:
		return writeJSONXZ(w.output, v)
	case FormatYAML:
		return writeYAML(w.output, v)
	case FormatTable:
		return writeTable(w.output, v)
	default:
		return fmt.Errorf("unsupported format: %s", w.format)
	}
}

func writeJSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to serialize to JSON: %w", err)
	}
	return nil
}

func writeJSONXZ(out io.Writer, v any) error {
	xzw, err := xz.NewWriter(out)
	if err != nil {
		return fmt.Errorf("failed to create xz writer: %w", err)
	}
	if err := writeJSON(xzw, v); err != nil {
		_ = xzw.Close()
		return err
	}
	if err := xzw.Close(); err != nil {
		return fmt.Errorf("failed to finalize xz stream: %w", err)
	}
	return nil
}

func writeYAML(out io.Writer, v any) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to serialize to YAML: %w", err)
	}
	return encoder.Close()
}

func writeTable(out io.Writer, v any) error {
	tab, ok := v.(Tabular)
	if !ok {
		return fmt.Errorf("type %T does not support table output", v)
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	header := tab.TableHeader()
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	underline := make([]string, len(header))
	for i, h := range header {
		underline[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(tw, strings.Join(underline, "\t"))

	for _, row := range tab.TableRows() {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// DecodeJSONXZ decompresses an xz stream from r and unmarshals the contained
// JSON document into v. Used to read snapshot files back for verification.
func DecodeJSONXZ(r io.Reader, v any) error {
	xzr, err := xz.NewReader(r)
	if err != nil {
		return fmt.Errorf("failed to open xz stream: %w", err)
	}
	if err := json.NewDecoder(xzr).Decode(v); err != nil {
		return fmt.Errorf("failed to decode JSON: %w", err)
	}
	return nil
}
