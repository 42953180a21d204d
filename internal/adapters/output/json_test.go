// internal/adapters/output/json_test.go
package output

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"qrpayload/internal/testutil"
)

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// what fn wrote.
func captureStdout(t *testing.T, fn func() error) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = old

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read pipe: %v", err)
	}
	testutil.AssertNoError(t, fnErr, "captured function")
	return string(data)
}

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"detect", "detect"},
		{"office wifi", "office_wifi"},
		{"a/b:c", "a_b_c"},
		{"Already-Safe_123", "Already-Safe_123"},
		{"", "result"},
	}

	for _, tt := range tests {
		testutil.AssertEqual(t, sanitizeLabel(tt.input), tt.expected, tt.input)
	}
}

func TestWriteJSONReport(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteJSONReport(dir, "batch run", map[string]string{"k": "v"})
	testutil.AssertNoError(t, err, "write report")
	testutil.AssertTrue(t, strings.HasPrefix(filepath.Base(path), "qrpayload_batch_run_"), "filename prefix")
	testutil.AssertTrue(t, strings.HasSuffix(path, ".json"), "json extension")

	data, err := os.ReadFile(path)
	testutil.AssertNoError(t, err, "read report back")

	var got map[string]string
	testutil.AssertNoError(t, json.Unmarshal(data, &got), "valid json")
	testutil.AssertEqual(t, got["k"], "v", "round-tripped value")
	testutil.AssertContains(t, string(data), "  \"k\"", "indented output")
}

func TestWriteJSONReport_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "reports")

	path, err := WriteJSONReport(dir, "detect", []int{1, 2})
	testutil.AssertNoError(t, err, "write into missing dir")

	_, err = os.Stat(path)
	testutil.AssertNoError(t, err, "file exists")
}

func TestWriteJSONStdout(t *testing.T) {
	out := captureStdout(t, func() error {
		return WriteJSONStdout(map[string]string{"type": "wifi"}, false)
	})
	testutil.AssertEqual(t, strings.TrimSpace(out), `{"type":"wifi"}`, "compact json")

	out = captureStdout(t, func() error {
		return WriteJSONStdout(map[string]string{"type": "wifi"}, true)
	})
	testutil.AssertContains(t, out, "  \"type\": \"wifi\"", "pretty json")
}
