// internal/platform/logx/logx_test.go
package logx

import (
	"testing"

	"qrpayload/internal/testutil"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"dbg", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"inf", LevelInfo},
		{"", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"err", LevelError},
		{"error", LevelError},
		{"  error  ", LevelError},
		{"nonsense", LevelInfo},
	}

	for _, tt := range tests {
		t.Run("level "+tt.input, func(t *testing.T) {
			testutil.AssertEqual(t, parseLevel(tt.input), tt.expected, "parsed level")
		})
	}
}

func TestFieldMap(t *testing.T) {
	t.Run("pairs", func(t *testing.T) {
		m := fieldMap("a", 1, "b", "two")
		testutil.AssertEqual(t, len(m), 2, "field count")
		testutil.AssertEqual(t, m["a"], 1, "int value")
		testutil.AssertEqual(t, m["b"], "two", "string value")
	})

	t.Run("empty is nil", func(t *testing.T) {
		testutil.AssertTrue(t, fieldMap() == nil, "no fields")
	})

	t.Run("trailing key kept visible", func(t *testing.T) {
		m := fieldMap("a", 1, "dangling")
		testutil.AssertEqual(t, m["dangling"], "(missing)", "trailing key")
	})

	t.Run("non-string key skipped", func(t *testing.T) {
		m := fieldMap(42, "value", "b", 2)
		testutil.AssertEqual(t, len(m), 1, "only valid pairs kept")
		testutil.AssertEqual(t, m["b"], 2, "valid pair survives")
	})
}

func TestConstructors(t *testing.T) {
	testutil.AssertTrue(t, New() != nil, "New")
	testutil.AssertTrue(t, NewWithLevel(LevelDebug) != nil, "NewWithLevel")
	testutil.AssertTrue(t, NewSilent() != nil, "NewSilent")

	l := NewSilent().With("component", "test")
	testutil.AssertTrue(t, l != nil, "With returns a logger")

	// nil errors must be a no-op, not a panic
	l.Err(nil, "k", "v")
}
