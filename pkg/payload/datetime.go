// pkg/payload/datetime.go
package payload

import (
	"strings"
	"time"

	"qrpayload/internal/platform/errors"
	"qrpayload/internal/platform/logx"
)

// dlog emits the single diagnostic line this package can produce (a
// swallowed timestamp parse failure). Level comes from the environment.
var dlog = logx.New()

// icalCompactLayout is the iCalendar compact UTC timestamp form.
// The trailing Z is a literal, timestamps are always rendered in UTC.
const icalCompactLayout = "20060102T150405Z"

// instantLayouts are the accepted input shapes for event instants,
// tried in order.
var instantLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	icalCompactLayout,
	"20060102T150405",
}

// icalTimestampFromTime renders an instant as YYYYMMDDTHHMMSSZ (UTC).
func icalTimestampFromTime(t time.Time) string {
	return t.UTC().Format(icalCompactLayout)
}

// icalTimestamp parses an ISO-like instant string and renders it in the
// compact iCal form. Unparseable input yields "" - the failure is logged
// for diagnostics but never propagated, generators degrade instead of
// failing.
func icalTimestamp(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	t, err := parseInstant(s)
	if err != nil {
		dlog.Debug("discarding unparseable timestamp", "value", s)
		return ""
	}
	return icalTimestampFromTime(t)
}

func parseInstant(s string) (time.Time, error) {
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Errorf("unrecognized instant %q", s)
}

// isoFromICalTimestamp converts a compact iCal timestamp back to the
// YYYY-MM-DDTHH:MM:SS[Z] form. Text that does not parse is returned
// unchanged.
func isoFromICalTimestamp(s string) string {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(icalCompactLayout, s); err == nil {
		return t.UTC().Format("2006-01-02T15:04:05Z")
	}
	if t, err := time.Parse("20060102T150405", s); err == nil {
		return t.Format("2006-01-02T15:04:05")
	}
	return s
}
