// pkg/payload/escape.go
package payload

import "strings"

// Escaping alphabets per target format. The backslash is listed first:
// each character is substituted globally over the accumulating string, so
// escaping `\` after the others would explode the backslashes inserted for
// them. Backslash-first gives the conventional non-exploding behavior.
// Escaping is NOT idempotent; a second pass double-escapes.
var (
	vcardEscapeSet = []string{`\`, `,`, `;`}
	wifiEscapeSet  = []string{`\`, `;`, `,`, `:`, `"`, `'`}
	icalEscapeSet  = []string{`\`, `,`, `;`}
)

// EscapeVCard backslash-escapes the vCard special characters `\`, `,`, `;`.
func EscapeVCard(value string) string {
	return escapeSet(value, vcardEscapeSet)
}

// EscapeWiFi backslash-escapes the WIFI config special characters
// `\`, `;`, `,`, `:`, `"`, `'`.
func EscapeWiFi(value string) string {
	return escapeSet(value, wifiEscapeSet)
}

// EscapeICal backslash-escapes the iCalendar special characters `\`, `,`, `;`.
func EscapeICal(value string) string {
	return escapeSet(value, icalEscapeSet)
}

func escapeSet(value string, set []string) string {
	if value == "" {
		return ""
	}
	for _, c := range set {
		value = strings.ReplaceAll(value, c, `\`+c)
	}
	return value
}
