// internal/adapters/output/table_test.go
package output

import (
	"testing"

	"qrpayload/internal/adapters/batch"
	"qrpayload/internal/testutil"
	"qrpayload/pkg/payload"
)

func TestDetectionTable(t *testing.T) {
	res := payload.DetectDataType("WIFI:T:WPA;S:CorpNet;P:hunter2;;")

	out := captureStdout(t, func() error {
		return DetectionTable(res)
	})

	testutil.AssertContains(t, out, "Type:", "type header")
	testutil.AssertContains(t, out, "wifi", "detected type")
	testutil.AssertContains(t, out, "FIELD", "column header")
	testutil.AssertContains(t, out, "ssid", "field name")
	testutil.AssertContains(t, out, "CorpNet", "field value")
}

func TestDetectionTable_NoFields(t *testing.T) {
	res := payload.DetectDataType("")

	out := captureStdout(t, func() error {
		return DetectionTable(res)
	})

	testutil.AssertContains(t, out, "text", "empty input is text")
	testutil.AssertContains(t, out, "No fields extracted.", "empty field note")
}

func TestBatchTable(t *testing.T) {
	results := []batch.Result{
		{Name: "office-wifi", Type: "wifi", Encoded: "WIFI:T:WPA;S:CorpNet;P:hunter2;;"},
		{Type: "url", Err: "generator produced no output (missing required fields?)"},
	}

	out := captureStdout(t, func() error {
		return BatchTable(results)
	})

	testutil.AssertContains(t, out, "NAME", "header row")
	testutil.AssertContains(t, out, "office-wifi", "named entry")
	testutil.AssertContains(t, out, "ok", "ok status")
	testutil.AssertContains(t, out, "failed", "failed status")
	testutil.AssertContains(t, out, "-", "unnamed entry placeholder")
}
