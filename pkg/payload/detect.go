// pkg/payload/detect.go
package payload

import (
	"net/url"
	"regexp"
	"strings"
)

// DetectDataType classifies a raw string into one of the nine payload
// types and extracts its fields best-effort. Dispatch is ordered,
// first match wins; the order is part of the contract because the
// prefixes overlap (a vCard body may contain mailto: or geo: substrings,
// so the vCard check must run first). Anything unrecognized, including
// the empty string, falls back to text.
func DetectDataType(raw string) DetectionResult {
	switch {
	case hasPrefixFold(raw, "BEGIN:VCARD"):
		return DetectionResult{Type: TypeVCard, Data: parseVCard(raw)}

	case strings.HasPrefix(raw, "http://"), strings.HasPrefix(raw, "https://"):
		return DetectionResult{Type: TypeURL, Data: &URLPayload{URL: raw}}

	case strings.HasPrefix(raw, "mailto:"):
		return DetectionResult{Type: TypeEmail, Data: parseEmail(raw)}

	case strings.HasPrefix(raw, "tel:"):
		return DetectionResult{Type: TypePhone, Data: &PhonePayload{Phone: strings.TrimPrefix(raw, "tel:")}}

	case hasPrefixFold(raw, "SMSTO:"), hasPrefixFold(raw, "sms:"):
		return DetectionResult{Type: TypeSMS, Data: parseSMS(raw)}

	case strings.HasPrefix(raw, "WIFI:"):
		return DetectionResult{Type: TypeWifi, Data: parseWifi(raw)}

	case strings.HasPrefix(raw, "geo:"):
		return DetectionResult{Type: TypeLocation, Data: parseLocation(raw)}

	case strings.Contains(raw, "BEGIN:VCALENDAR"), strings.Contains(raw, "BEGIN:VEVENT"):
		return DetectionResult{Type: TypeEvent, Data: parseEvent(raw)}

	default:
		return DetectionResult{Type: TypeText, Data: &TextPayload{Text: raw}}
	}
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// parseEmail splits a mailto URI into address and query; the query yields
// subject/body/cc/bcc, each defaulting to "".
func parseEmail(raw string) *EmailPayload {
	rest := strings.TrimPrefix(raw, "mailto:")
	addr, query, _ := strings.Cut(rest, "?")
	p := &EmailPayload{Address: addr}
	for _, pair := range strings.Split(query, "&") {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		switch k {
		case "subject":
			p.Subject = decodeQueryComponent(v)
		case "body":
			p.Body = decodeQueryComponent(v)
		case "cc":
			p.CC = decodeQueryComponent(v)
		case "bcc":
			p.BCC = decodeQueryComponent(v)
		}
	}
	return p
}

// decodeQueryComponent percent-decodes a query value. PathUnescape keeps
// literal + signs (mailto queries are not form-encoded). Values that fail
// to decode are kept raw.
func decodeQueryComponent(s string) string {
	if decoded, err := url.PathUnescape(s); err == nil {
		return decoded
	}
	return s
}

// parseSMS handles both the SMSTO:phone:message and sms:phone?body=...
// forms.
func parseSMS(raw string) *SMSPayload {
	if hasPrefixFold(raw, "SMSTO:") {
		rest := raw[len("SMSTO:"):]
		phone, message, _ := strings.Cut(rest, ":")
		return &SMSPayload{Phone: phone, Message: message}
	}
	rest := raw[len("sms:"):]
	phone, query, _ := strings.Cut(rest, "?")
	p := &SMSPayload{Phone: phone}
	for _, pair := range strings.Split(query, "&") {
		k, v, ok := strings.Cut(pair, "=")
		if ok && k == "body" {
			p.Message = decodeQueryComponent(v)
		}
	}
	return p
}

// WIFI segment extractors. Best-effort: values stop at the next
// semicolon, matching what camera apps and common readers do.
var (
	wifiTypeRe   = regexp.MustCompile(`T:([^;]*);`)
	wifiSSIDRe   = regexp.MustCompile(`S:([^;]*);`)
	wifiPassRe   = regexp.MustCompile(`P:([^;]*);`)
	wifiHiddenRe = regexp.MustCompile(`H:(true|false);`)
)

// parseWifi extracts the T/S/P/H segments. The encryption value is
// lowercased and forced into {nopass, wep, wpa}; unknown schemes degrade
// to nopass. Hidden defaults to false when absent.
func parseWifi(raw string) *WifiPayload {
	p := &WifiPayload{Encryption: "nopass"}
	if m := wifiTypeRe.FindStringSubmatch(raw); m != nil {
		switch enc := strings.ToLower(m[1]); enc {
		case "nopass", "wep", "wpa":
			p.Encryption = enc
		}
	}
	if m := wifiSSIDRe.FindStringSubmatch(raw); m != nil {
		p.SSID = m[1]
	}
	if m := wifiPassRe.FindStringSubmatch(raw); m != nil {
		p.Password = m[1]
	}
	if m := wifiHiddenRe.FindStringSubmatch(raw); m != nil {
		p.Hidden = m[1] == "true"
	}
	return p
}

// parseLocation keeps the raw coordinate substrings; it does not coerce
// them to numbers.
func parseLocation(raw string) *LocationPayload {
	rest := strings.TrimPrefix(raw, "geo:")
	lat, lng, _ := strings.Cut(rest, ",")
	return &LocationPayload{Latitude: lat, Longitude: lng}
}

// VEVENT line extractors. DTSTART/DTEND may carry parameters before the
// colon (DTSTART;TZID=...), values stop at end of line.
var (
	eventSummaryRe  = regexp.MustCompile(`SUMMARY:(.*)`)
	eventLocationRe = regexp.MustCompile(`LOCATION:(.*)`)
	eventStartRe    = regexp.MustCompile(`DTSTART[^:\n]*:(.*)`)
	eventEndRe      = regexp.MustCompile(`DTEND[^:\n]*:(.*)`)
)

func parseEvent(raw string) *EventPayload {
	p := &EventPayload{}
	if m := eventSummaryRe.FindStringSubmatch(raw); m != nil {
		p.Title = strings.TrimRight(m[1], "\r")
	}
	if m := eventLocationRe.FindStringSubmatch(raw); m != nil {
		p.Location = strings.TrimRight(m[1], "\r")
	}
	if m := eventStartRe.FindStringSubmatch(raw); m != nil {
		p.StartTime = isoFromICalTimestamp(strings.TrimRight(m[1], "\r"))
	}
	if m := eventEndRe.FindStringSubmatch(raw); m != nil {
		p.EndTime = isoFromICalTimestamp(strings.TrimRight(m[1], "\r"))
	}
	return p
}

// parseVCard scans the card line by line. Known quirks it preserves:
// the N line wins over FN for names (FN is split on the first space only
// when N yielded nothing), and a bare untyped TEL line is captured as the
// mobile number only while no typed phone has been seen.
func parseVCard(raw string) *VCardPayload {
	p := &VCardPayload{Version: "3"}

	var nFound bool
	var fnValue string

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		upper := strings.ToUpper(line)
		switch {
		case strings.HasPrefix(upper, "VERSION:"):
			switch strings.TrimSpace(line[len("VERSION:"):]) {
			case "2.1":
				p.Version = "2"
			case "3.0":
				p.Version = "3"
			case "4.0":
				p.Version = "4"
			default:
				p.Version = "3"
			}

		case strings.HasPrefix(upper, "N:"):
			parts := strings.Split(line[len("N:"):], ";")
			if len(parts) > 0 {
				p.LastName = parts[0]
			}
			if len(parts) > 1 {
				p.FirstName = parts[1]
			}
			if p.LastName != "" || p.FirstName != "" {
				nFound = true
			}

		case strings.HasPrefix(upper, "FN:"):
			fnValue = line[len("FN:"):]

		case strings.HasPrefix(upper, "ORG:"):
			p.Organization = line[len("ORG:"):]

		case strings.HasPrefix(upper, "TITLE:"):
			p.Position = line[len("TITLE:"):]

		case strings.HasPrefix(upper, "TEL;"), strings.HasPrefix(upper, "TEL:"):
			parseVCardTel(p, line)

		case strings.HasPrefix(upper, "EMAIL;"), strings.HasPrefix(upper, "EMAIL:"):
			if _, value, ok := strings.Cut(line, ":"); ok {
				p.Email = value
			}

		case strings.HasPrefix(upper, "URL;"), strings.HasPrefix(upper, "URL:"):
			if _, value, ok := strings.Cut(line, ":"); ok {
				p.Website = value
			}

		case strings.HasPrefix(upper, "ADR;"), strings.HasPrefix(upper, "ADR:"):
			parseVCardAdr(p, line)
		}
	}

	if !nFound && fnValue != "" {
		first, rest, _ := strings.Cut(fnValue, " ")
		p.FirstName = first
		p.LastName = rest
	}

	return p
}

func parseVCardTel(p *VCardPayload, line string) {
	params, value, ok := strings.Cut(line, ":")
	if !ok {
		return
	}
	// v4 carries the number as a tel: URI value
	value = strings.TrimPrefix(value, "tel:")
	upper := strings.ToUpper(params)
	switch {
	case strings.Contains(upper, "WORK"):
		p.PhoneWork = value
	case strings.Contains(upper, "HOME"):
		p.PhonePrivate = value
	case strings.Contains(upper, "CELL"), strings.Contains(upper, "MOBILE"):
		p.PhoneMobile = value
	default:
		if p.PhoneWork == "" && p.PhonePrivate == "" && p.PhoneMobile == "" {
			p.PhoneMobile = value
		}
	}
}

func parseVCardAdr(p *VCardPayload, line string) {
	_, value, ok := strings.Cut(line, ":")
	if !ok {
		return
	}
	// value is ";;street;city;state;zip;country" - the first two
	// components (PO box, extended address) are not carried
	parts := strings.Split(value, ";")
	if len(parts) < 7 {
		return
	}
	p.Street = parts[2]
	p.City = parts[3]
	p.State = parts[4]
	p.Zipcode = parts[5]
	p.Country = parts[6]
}
