// pkg/payload/types.go

// Package payload encodes structured data into the text formats that QR
// readers understand (mailto/tel/sms/geo URIs, WIFI config strings, vCard
// and iCalendar blocks) and classifies raw strings back into those shapes.
// It produces and consumes strings only; rendering the QR symbol itself is
// the job of whatever library consumes the encoded payload.
package payload

import (
	"qrpayload/internal/platform/errors"
)

// PayloadType classifies the kind of data carried by an encoded string.
type PayloadType string

const (
	// TypeText is free-form text (also the detection fallback)
	TypeText PayloadType = "text"

	// TypeURL is a web address
	TypeURL PayloadType = "url"

	// TypeEmail is a mailto URI with optional subject/body/cc/bcc
	TypeEmail PayloadType = "email"

	// TypePhone is a tel URI
	TypePhone PayloadType = "phone"

	// TypeSMS is an SMS draft (SMSTO or sms URI)
	TypeSMS PayloadType = "sms"

	// TypeWifi is a WIFI network config string
	TypeWifi PayloadType = "wifi"

	// TypeVCard is a vCard contact card (2.1 / 3.0 / 4.0)
	TypeVCard PayloadType = "vcard"

	// TypeLocation is a geo URI coordinate pair
	TypeLocation PayloadType = "location"

	// TypeEvent is an iCalendar VEVENT block
	TypeEvent PayloadType = "event"
)

// IsValid verifies the payload type belongs to the closed set.
func (t PayloadType) IsValid() bool {
	switch t {
	case TypeText, TypeURL, TypeEmail, TypePhone, TypeSMS,
		TypeWifi, TypeVCard, TypeLocation, TypeEvent:
		return true
	default:
		return false
	}
}

// String returns the string representation of the type.
func (t PayloadType) String() string {
	return string(t)
}

// Payload is the interface every typed payload implements.
type Payload interface {
	// Type returns the payload's classification tag
	Type() PayloadType

	// ToMap converts the payload to a string->string map for serialization
	ToMap() map[string]string

	// FromMap loads the payload from a string->string field map
	FromMap(m map[string]string) error
}

// DetectionResult is the outcome of classifying a raw string.
type DetectionResult struct {
	Type PayloadType `json:"type"`
	Data Payload     `json:"parsedData"`
}

// New returns an empty payload of the given type, ready for FromMap.
func New(t PayloadType) (Payload, error) {
	switch t {
	case TypeText:
		return &TextPayload{}, nil
	case TypeURL:
		return &URLPayload{}, nil
	case TypeEmail:
		return &EmailPayload{}, nil
	case TypePhone:
		return &PhonePayload{}, nil
	case TypeSMS:
		return &SMSPayload{}, nil
	case TypeWifi:
		return &WifiPayload{}, nil
	case TypeVCard:
		return &VCardPayload{}, nil
	case TypeLocation:
		return &LocationPayload{}, nil
	case TypeEvent:
		return &EventPayload{}, nil
	default:
		return nil, errors.Wrapf(errors.ErrUnsupportedType, "payload type %q", t)
	}
}

// Generate dispatches a payload to its matching generator.
// Like the generators themselves it never fails; unknown payloads yield "".
func Generate(p Payload) string {
	switch v := p.(type) {
	case *TextPayload:
		return GenerateTextData(*v)
	case *URLPayload:
		return GenerateURLData(*v)
	case *EmailPayload:
		return GenerateEmailData(*v)
	case *PhonePayload:
		return GeneratePhoneData(*v)
	case *SMSPayload:
		return GenerateSMSData(*v)
	case *WifiPayload:
		return GenerateWifiData(*v)
	case *VCardPayload:
		return GenerateVCardData(*v)
	case *LocationPayload:
		return GenerateLocationData(*v)
	case *EventPayload:
		return GenerateEventData(*v)
	default:
		return ""
	}
}
