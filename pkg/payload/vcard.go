// pkg/payload/vcard.go
package payload

import (
	"fmt"
	"strings"
)

// phone kinds carried by a vCard, in emission order
var vcardPhoneKinds = []struct {
	kind  string // parameter token (lowercase form)
	field func(VCardPayload) string
}{
	{"work", func(p VCardPayload) string { return p.PhoneWork }},
	{"home", func(p VCardPayload) string { return p.PhonePrivate }},
	{"cell", func(p VCardPayload) string { return p.PhoneMobile }},
}

// GenerateVCardData serializes a contact card in one of the three vCard
// dialects. Every line is presence-gated; no field is strictly required,
// an empty payload still yields a valid BEGIN/VERSION/END envelope. All
// textual values pass through the vCard escaper.
func GenerateVCardData(p VCardPayload) string {
	version := p.Version
	switch version {
	case "2", "3", "4":
	default:
		version = "3"
	}

	lines := []string{"BEGIN:VCARD"}
	switch version {
	case "2":
		lines = append(lines, "VERSION:2.1")
	case "4":
		lines = append(lines, "VERSION:4.0")
	default:
		lines = append(lines, "VERSION:3.0")
	}

	first := EscapeVCard(p.FirstName)
	last := EscapeVCard(p.LastName)
	if first != "" || last != "" {
		lines = append(lines, fmt.Sprintf("N:%s;%s", last, first))
		lines = append(lines, "FN:"+strings.TrimSpace(first+" "+last))
	}

	if p.Organization != "" {
		lines = append(lines, "ORG:"+EscapeVCard(p.Organization))
	}
	if p.Position != "" {
		lines = append(lines, "TITLE:"+EscapeVCard(p.Position))
	}

	for _, pk := range vcardPhoneKinds {
		if number := pk.field(p); number != "" {
			lines = append(lines, telLine(version, pk.kind, EscapeVCard(number)))
		}
	}

	if p.Email != "" {
		email := EscapeVCard(p.Email)
		switch version {
		case "2":
			lines = append(lines, "EMAIL;INTERNET:"+email)
		case "4":
			lines = append(lines, "EMAIL;TYPE=work:"+email)
		default:
			lines = append(lines, "EMAIL:"+email)
		}
	}

	if p.Website != "" {
		website := EscapeVCard(p.Website)
		if version == "4" {
			lines = append(lines, "URL;TYPE=work:"+website)
		} else {
			lines = append(lines, "URL:"+website)
		}
	}

	if adr := adrLine(version, p); adr != "" {
		lines = append(lines, adr)
	}

	lines = append(lines, "END:VCARD")
	return strings.Join(lines, "\n")
}

// telLine renders one TEL line in the version-specific parameter syntax.
func telLine(version, kind, number string) string {
	switch version {
	case "2":
		return fmt.Sprintf("TEL;%s;VOICE:%s", strings.ToUpper(kind), number)
	case "4":
		return fmt.Sprintf("TEL;TYPE=%s,voice;VALUE=uri:tel:%s", kind, number)
	default:
		return fmt.Sprintf("TEL;TYPE=%s,VOICE:%s", strings.ToUpper(kind), number)
	}
}

// adrLine renders the ADR line, or "" when no address component is set.
// The two empty leading components are the post-office box and extended
// address, which this payload does not carry.
func adrLine(version string, p VCardPayload) string {
	if p.Street == "" && p.City == "" && p.State == "" && p.Zipcode == "" && p.Country == "" {
		return ""
	}
	fields := strings.Join([]string{
		EscapeVCard(p.Street),
		EscapeVCard(p.City),
		EscapeVCard(p.State),
		EscapeVCard(p.Zipcode),
		EscapeVCard(p.Country),
	}, ";")
	switch version {
	case "2":
		return "ADR;WORK:;;" + fields
	case "4":
		return "ADR;TYPE=work:;;" + fields
	default:
		return "ADR;TYPE=WORK:;;" + fields
	}
}
