// pkg/payload/generate.go
package payload

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Generators never fail: a missing required field degrades to "" rather
// than an error. Domain-level validation (is this a real email address?)
// is the caller's job; the generators only shape strings.

// GenerateTextData returns the text verbatim.
func GenerateTextData(p TextPayload) string {
	return p.Text
}

// GenerateURLData returns the URL, prepending https:// when no scheme
// prefix is present.
func GenerateURLData(p URLPayload) string {
	u := strings.TrimSpace(p.URL)
	if u == "" {
		return ""
	}
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	return "https://" + u
}

// GenerateEmailData builds a mailto URI with a percent-encoded query of
// the present-only subject/body/cc/bcc fields, in that order.
func GenerateEmailData(p EmailPayload) string {
	if p.Address == "" {
		return ""
	}
	var params []string
	appendParam := func(key, value string) {
		if value != "" {
			params = append(params, key+"="+encodeQueryComponent(value))
		}
	}
	appendParam("subject", p.Subject)
	appendParam("body", p.Body)
	appendParam("cc", p.CC)
	appendParam("bcc", p.BCC)

	out := "mailto:" + p.Address
	if len(params) > 0 {
		out += "?" + strings.Join(params, "&")
	}
	return out
}

// encodeQueryComponent percent-encodes a mailto query value. Spaces must
// come out as %20, not the form-encoding +.
func encodeQueryComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// GeneratePhoneData builds a tel URI.
func GeneratePhoneData(p PhonePayload) string {
	if p.Phone == "" {
		return ""
	}
	return "tel:" + p.Phone
}

// GenerateSMSData builds an SMSTO string; the message part may be empty.
func GenerateSMSData(p SMSPayload) string {
	if p.Phone == "" {
		return ""
	}
	return "SMSTO:" + p.Phone + ":" + p.Message
}

// GenerateWifiData builds a WIFI config string. SSID and password run
// through the WiFi escaper; the encryption value is passed through as
// given (normalization happens on detection, not here).
func GenerateWifiData(p WifiPayload) string {
	if p.SSID == "" || p.Encryption == "" {
		return ""
	}
	hidden := ""
	if p.Hidden {
		hidden = "H:true;"
	}
	ssid := EscapeWiFi(p.SSID)
	if p.Encryption == "nopass" {
		return fmt.Sprintf("WIFI:T:nopass;S:%s;;%s;", ssid, hidden)
	}
	return fmt.Sprintf("WIFI:T:%s;S:%s;P:%s;%s;", p.Encryption, ssid, EscapeWiFi(p.Password), hidden)
}

// GenerateLocationData builds a geo URI. Both coordinates must parse as
// numbers; anything else degrades to "".
func GenerateLocationData(p LocationPayload) string {
	lat := strings.TrimSpace(p.Latitude)
	lng := strings.TrimSpace(p.Longitude)
	if !isNumeric(lat) || !isNumeric(lng) {
		return ""
	}
	return "geo:" + lat + "," + lng
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
