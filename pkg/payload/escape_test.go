// pkg/payload/escape_test.go
package payload

import (
	"testing"

	"qrpayload/internal/testutil"
)

func TestEscapeVCard(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"plain", "test", "test"},
		{"semicolon", "test;value", `test\;value`},
		{"comma", "a,b", `a\,b`},
		{"backslash", `test\value`, `test\\value`},
		{"all specials", `a,b;c\d`, `a\,b\;c\\d`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, EscapeVCard(tt.input), tt.expected, "vcard escape")
		})
	}
}

func TestEscapeWiFi(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"plain", "MyNet", "MyNet"},
		{"semicolon and quote", `pass;123"`, `pass\;123\"`},
		{"colon", "a:b", `a\:b`},
		{"single quote", "it's", `it\'s`},
		{"comma", "a,b", `a\,b`},
		{"backslash", `a\b`, `a\\b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, EscapeWiFi(tt.input), tt.expected, "wifi escape")
		})
	}
}

func TestEscapeICal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"plain", "Meeting", "Meeting"},
		{"comma and semicolon", "Room 4, floor 2; wing B", `Room 4\, floor 2\; wing B`},
		{"backslash", `C:\temp`, `C:\\temp`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, EscapeICal(tt.input), tt.expected, "ical escape")
		})
	}
}

// Escaping is deliberately not idempotent: a second pass escapes the
// backslashes the first pass inserted.
func TestEscapeVCard_NotIdempotent(t *testing.T) {
	once := EscapeVCard("a;b")
	twice := EscapeVCard(once)

	testutil.AssertEqual(t, once, `a\;b`, "single pass")
	testutil.AssertEqual(t, twice, `a\\\;b`, "double pass")
	testutil.AssertNotEqual(t, once, twice, "passes must differ")
}
