// pkg/payload/event.go
package payload

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateEventData wraps a VEVENT block inside a VCALENDAR envelope.
// SUMMARY/LOCATION/DTSTART/DTEND are presence-gated (an instant that does
// not parse drops its line); UID and DTSTAMP are always emitted.
func GenerateEventData(p EventPayload) string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"BEGIN:VEVENT",
		"UID:" + uuid.NewString(),
	}

	if p.Title != "" {
		lines = append(lines, "SUMMARY:"+EscapeICal(p.Title))
	}
	if p.Location != "" {
		lines = append(lines, "LOCATION:"+EscapeICal(p.Location))
	}
	if ts := icalTimestamp(p.StartTime); ts != "" {
		lines = append(lines, "DTSTART:"+ts)
	}
	if ts := icalTimestamp(p.EndTime); ts != "" {
		lines = append(lines, "DTEND:"+ts)
	}
	lines = append(lines, "DTSTAMP:"+icalTimestampFromTime(time.Now()))

	lines = append(lines, "END:VEVENT", "END:VCALENDAR")
	return strings.Join(lines, "\n")
}
