// internal/adapters/batch/batch_test.go
package batch

import (
	"os"
	"path/filepath"
	"testing"

	"qrpayload/internal/testutil"
)

func writeTempYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "payloads.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp yaml: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeTempYAML(t, `
payloads:
  - name: office-wifi
    type: wifi
    fields:
      ssid: CorpNet
      encryption: WPA
      password: hunter2
  - name: homepage
    type: url
    fields:
      url: example.com
`)

	f, err := Load(path)
	testutil.AssertNoError(t, err, "load batch file")
	testutil.AssertEqual(t, len(f.Payloads), 2, "entry count")
	testutil.AssertEqual(t, f.Payloads[0].Name, "office-wifi", "first entry name")
	testutil.AssertEqual(t, f.Payloads[0].Fields["ssid"], "CorpNet", "field value")
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		testutil.AssertError(t, err, "missing file")
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := Load(writeTempYAML(t, "payloads: [unclosed"))
		testutil.AssertError(t, err, "unparseable yaml")
	})

	t.Run("empty payloads list", func(t *testing.T) {
		_, err := Load(writeTempYAML(t, "payloads: []"))
		testutil.AssertError(t, err, "empty list rejected")
	})

	t.Run("no payloads key", func(t *testing.T) {
		_, err := Load(writeTempYAML(t, "other: true"))
		testutil.AssertError(t, err, "missing payloads key rejected")
	})
}

func TestEncode(t *testing.T) {
	f := &File{Payloads: []Entry{
		{
			Name:   "office-wifi",
			Type:   "wifi",
			Fields: map[string]string{"ssid": "CorpNet", "encryption": "WPA", "password": "hunter2"},
		},
		{
			Name:   "call-me",
			Type:   "phone",
			Fields: map[string]string{"phone": "+1234"},
		},
	}}

	results := Encode(f)
	testutil.AssertEqual(t, len(results), 2, "result count")

	testutil.AssertTrue(t, results[0].OK(), "wifi entry ok")
	testutil.AssertEqual(t, results[0].Encoded, "WIFI:T:WPA;S:CorpNet;P:hunter2;;", "wifi encoding")

	testutil.AssertTrue(t, results[1].OK(), "phone entry ok")
	testutil.AssertEqual(t, results[1].Encoded, "tel:+1234", "phone encoding")
}

func TestEncode_BadEntries(t *testing.T) {
	f := &File{Payloads: []Entry{
		{Name: "bad-type", Type: "hologram", Fields: map[string]string{"x": "y"}},
		{Name: "no-fields", Type: "url"},
		{Name: "missing-required", Type: "wifi", Fields: map[string]string{"ssid": "Net"}},
		{Name: "still-fine", Type: "text", Fields: map[string]string{"text": "hello"}},
	}}

	results := Encode(f)
	testutil.AssertEqual(t, len(results), 4, "one result per entry")

	testutil.AssertFalse(t, results[0].OK(), "unknown type fails validation")
	testutil.AssertFalse(t, results[1].OK(), "missing fields map fails validation")
	testutil.AssertFalse(t, results[2].OK(), "empty generator output reported")
	testutil.AssertEqual(t, results[2].Err, "generator produced no output (missing required fields?)", "degrade message")

	testutil.AssertTrue(t, results[3].OK(), "bad entries do not abort the batch")
	testutil.AssertEqual(t, results[3].Encoded, "hello", "text encoding")
}
