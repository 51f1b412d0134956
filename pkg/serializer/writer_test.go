package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type testConfig struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

type testTable []testConfig

func (t testTable) TableHeader() []string { return []string{"NAME", "VALUE"} }

func (t testTable) TableRows() [][]string {
	rows := make([][]string, 0, len(t))
	for _, c := range t {
		rows = append(rows, []string{c.Name, "x"})
	}
	return rows
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	data := []testConfig{
		{Name: "test1", Value: 123},
		{Name: "test2", Value: 456},
	}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testConfig
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	if len(result) != 2 || result[0].Name != "test1" || result[0].Value != 123 {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_SerializeJSONXZ(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSONXZ, &buf)

	data := testConfig{Name: "compressed", Value: 7}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	// Output must not be plain JSON.
	if strings.Contains(buf.String(), "compressed") {
		t.Error("Expected compressed output, found plaintext")
	}

	var result testConfig
	if err := DecodeJSONXZ(bytes.NewReader(buf.Bytes()), &result); err != nil {
		t.Fatalf("DecodeJSONXZ failed: %v", err)
	}
	if result != data {
		t.Errorf("Roundtrip mismatch: got %+v, want %+v", result, data)
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	data := []testConfig{{Name: "test1", Value: 123}}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testConfig
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}
	if len(result) != 1 || result[0].Name != "test1" {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := testTable{{Name: "alpha", Value: 1}}
	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "NAME") || !strings.Contains(out, "alpha") {
		t.Errorf("Expected table output, got:\n%s", out)
	}
}

func TestWriter_SerializeTable_Unsupported(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	if err := writer.Serialize(context.Background(), testConfig{}); err == nil {
		t.Error("Expected error for non-Tabular value")
	}
}

func TestWriter_UnknownFormatFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter("invalid", &buf)

	if err := writer.Serialize(context.Background(), testConfig{Name: "x"}); err != nil {
		t.Fatalf("Serialize should fall back to JSON: %v", err)
	}
	if !json.Valid(buf.Bytes()) {
		t.Error("Expected valid JSON output after fallback")
	}
}

func TestNewFileWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	writer, err := NewFileWriter(FormatJSON, path)
	if err != nil {
		t.Fatalf("NewFileWriter failed: %v", err)
	}

	if err := writer.Serialize(context.Background(), testConfig{Name: "f"}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !json.Valid(data) {
		t.Error("Expected valid JSON in file")
	}
}

func TestFormat_Extension(t *testing.T) {
	tests := map[Format]string{
		FormatJSON:   ".json",
		FormatJSONXZ: ".json.xz",
		FormatYAML:   ".yaml",
		FormatTable:  ".txt",
	}
	for f, want := range tests {
		if got := f.Extension(); got != want {
			t.Errorf("%s.Extension() = %q, want %q", f, got, want)
		}
	}
}

func TestFormat_IsUnknown(t *testing.T) {
	for _, s := range SupportedFormats() {
		if Format(s).IsUnknown() {
			t.Errorf("%q should be known", s)
		}
	}
	if !Format("jsonxz").IsUnknown() {
		t.Error("jsonxz should be unknown")
	}
}
