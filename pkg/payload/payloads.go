// pkg/payload/payloads.go
package payload

// TextPayload carries free-form text.
type TextPayload struct {
	Text string `json:"text"`
}

// Type implements Payload
func (p *TextPayload) Type() PayloadType { return TypeText }

// ToMap implements Payload
func (p *TextPayload) ToMap() map[string]string {
	m := make(map[string]string)
	setIfNotEmpty(m, "text", p.Text)
	return m
}

// FromMap implements Payload
func (p *TextPayload) FromMap(m map[string]string) error {
	p.Text = getString(m, "text", "")
	return nil
}

// URLPayload carries a web address.
type URLPayload struct {
	URL string `json:"url"`
}

// Type implements Payload
func (p *URLPayload) Type() PayloadType { return TypeURL }

// ToMap implements Payload
func (p *URLPayload) ToMap() map[string]string {
	m := make(map[string]string)
	setIfNotEmpty(m, "url", p.URL)
	return m
}

// FromMap implements Payload
func (p *URLPayload) FromMap(m map[string]string) error {
	p.URL = getString(m, "url", "")
	return nil
}

// EmailPayload carries mailto content. Only Address is required for
// generation; the query fields are present-gated.
type EmailPayload struct {
	Address string `json:"address"`
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body,omitempty"`
	CC      string `json:"cc,omitempty"`
	BCC     string `json:"bcc,omitempty"`
}

// Type implements Payload
func (p *EmailPayload) Type() PayloadType { return TypeEmail }

// ToMap implements Payload
func (p *EmailPayload) ToMap() map[string]string {
	m := make(map[string]string)
	setIfNotEmpty(m, "address", p.Address)
	setIfNotEmpty(m, "subject", p.Subject)
	setIfNotEmpty(m, "body", p.Body)
	setIfNotEmpty(m, "cc", p.CC)
	setIfNotEmpty(m, "bcc", p.BCC)
	return m
}

// FromMap implements Payload
func (p *EmailPayload) FromMap(m map[string]string) error {
	p.Address = getString(m, "address", "")
	p.Subject = getString(m, "subject", "")
	p.Body = getString(m, "body", "")
	p.CC = getString(m, "cc", "")
	p.BCC = getString(m, "bcc", "")
	return nil
}

// PhonePayload carries a telephone number.
type PhonePayload struct {
	Phone string `json:"phone"`
}

// Type implements Payload
func (p *PhonePayload) Type() PayloadType { return TypePhone }

// ToMap implements Payload
func (p *PhonePayload) ToMap() map[string]string {
	m := make(map[string]string)
	setIfNotEmpty(m, "phone", p.Phone)
	return m
}

// FromMap implements Payload
func (p *PhonePayload) FromMap(m map[string]string) error {
	p.Phone = getString(m, "phone", "")
	return nil
}

// SMSPayload carries an SMS draft.
type SMSPayload struct {
	Phone   string `json:"phone"`
	Message string `json:"message,omitempty"`
}

// Type implements Payload
func (p *SMSPayload) Type() PayloadType { return TypeSMS }

// ToMap implements Payload
func (p *SMSPayload) ToMap() map[string]string {
	m := make(map[string]string)
	setIfNotEmpty(m, "phone", p.Phone)
	setIfNotEmpty(m, "message", p.Message)
	return m
}

// FromMap implements Payload
func (p *SMSPayload) FromMap(m map[string]string) error {
	p.Phone = getString(m, "phone", "")
	p.Message = getString(m, "message", "")
	return nil
}

// WifiPayload carries network credentials. Encryption is one of
// nopass/WEP/WPA; detection lowercases it and forces unknown values to
// nopass, generation passes it through.
type WifiPayload struct {
	SSID       string `json:"ssid"`
	Encryption string `json:"encryption"`
	Password   string `json:"password,omitempty"`
	Hidden     bool   `json:"hidden"`
}

// Type implements Payload
func (p *WifiPayload) Type() PayloadType { return TypeWifi }

// ToMap implements Payload
func (p *WifiPayload) ToMap() map[string]string {
	m := make(map[string]string)
	setIfNotEmpty(m, "ssid", p.SSID)
	setIfNotEmpty(m, "encryption", p.Encryption)
	setIfNotEmpty(m, "password", p.Password)
	setBool(m, "hidden", p.Hidden)
	return m
}

// FromMap implements Payload
func (p *WifiPayload) FromMap(m map[string]string) error {
	p.SSID = getString(m, "ssid", "")
	p.Encryption = getString(m, "encryption", "")
	p.Password = getString(m, "password", "")
	p.Hidden = getBool(m, "hidden", false)
	return nil
}

// VCardPayload carries a contact card. Version selects the serialization
// dialect: "2" -> 2.1, "3" -> 3.0, "4" -> 4.0 (default "3").
type VCardPayload struct {
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	Organization string `json:"organization,omitempty"`
	Position     string `json:"position,omitempty"`
	PhoneWork    string `json:"phoneWork,omitempty"`
	PhonePrivate string `json:"phonePrivate,omitempty"`
	PhoneMobile  string `json:"phoneMobile,omitempty"`
	Email        string `json:"email,omitempty"`
	Website      string `json:"website,omitempty"`
	Street       string `json:"street,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	Zipcode      string `json:"zipcode,omitempty"`
	Country      string `json:"country,omitempty"`
	Version      string `json:"version,omitempty"`
}

// Type implements Payload
func (p *VCardPayload) Type() PayloadType { return TypeVCard }

// ToMap implements Payload
func (p *VCardPayload) ToMap() map[string]string {
	m := make(map[string]string)
	setIfNotEmpty(m, "firstName", p.FirstName)
	setIfNotEmpty(m, "lastName", p.LastName)
	setIfNotEmpty(m, "organization", p.Organization)
	setIfNotEmpty(m, "position", p.Position)
	setIfNotEmpty(m, "phoneWork", p.PhoneWork)
	setIfNotEmpty(m, "phonePrivate", p.PhonePrivate)
	setIfNotEmpty(m, "phoneMobile", p.PhoneMobile)
	setIfNotEmpty(m, "email", p.Email)
	setIfNotEmpty(m, "website", p.Website)
	setIfNotEmpty(m, "street", p.Street)
	setIfNotEmpty(m, "city", p.City)
	setIfNotEmpty(m, "state", p.State)
	setIfNotEmpty(m, "zipcode", p.Zipcode)
	setIfNotEmpty(m, "country", p.Country)
	setIfNotEmpty(m, "version", p.Version)
	return m
}

// FromMap implements Payload
func (p *VCardPayload) FromMap(m map[string]string) error {
	p.FirstName = getString(m, "firstName", "")
	p.LastName = getString(m, "lastName", "")
	p.Organization = getString(m, "organization", "")
	p.Position = getString(m, "position", "")
	p.PhoneWork = getString(m, "phoneWork", "")
	p.PhonePrivate = getString(m, "phonePrivate", "")
	p.PhoneMobile = getString(m, "phoneMobile", "")
	p.Email = getString(m, "email", "")
	p.Website = getString(m, "website", "")
	p.Street = getString(m, "street", "")
	p.City = getString(m, "city", "")
	p.State = getString(m, "state", "")
	p.Zipcode = getString(m, "zipcode", "")
	p.Country = getString(m, "country", "")
	p.Version = getString(m, "version", "")
	return nil
}

// LocationPayload carries a coordinate pair. Values are decimal-degree
// strings; generation rejects anything that does not parse as a number.
// Detection keeps the raw substrings.
type LocationPayload struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

// Type implements Payload
func (p *LocationPayload) Type() PayloadType { return TypeLocation }

// ToMap implements Payload
func (p *LocationPayload) ToMap() map[string]string {
	m := make(map[string]string)
	setIfNotEmpty(m, "latitude", p.Latitude)
	setIfNotEmpty(m, "longitude", p.Longitude)
	return m
}

// FromMap implements Payload
func (p *LocationPayload) FromMap(m map[string]string) error {
	p.Latitude = getString(m, "latitude", "")
	p.Longitude = getString(m, "longitude", "")
	return nil
}

// EventPayload carries a calendar event. StartTime and EndTime are
// ISO-like instant strings (RFC 3339, date-only and the compact iCal form
// are all accepted); detection reports them as YYYY-MM-DDTHH:MM:SS[Z].
type EventPayload struct {
	Title     string `json:"title,omitempty"`
	Location  string `json:"location,omitempty"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
}

// Type implements Payload
func (p *EventPayload) Type() PayloadType { return TypeEvent }

// ToMap implements Payload
func (p *EventPayload) ToMap() map[string]string {
	m := make(map[string]string)
	setIfNotEmpty(m, "title", p.Title)
	setIfNotEmpty(m, "location", p.Location)
	setIfNotEmpty(m, "startTime", p.StartTime)
	setIfNotEmpty(m, "endTime", p.EndTime)
	return m
}

// FromMap implements Payload
func (p *EventPayload) FromMap(m map[string]string) error {
	p.Title = getString(m, "title", "")
	p.Location = getString(m, "location", "")
	p.StartTime = getString(m, "startTime", "")
	p.EndTime = getString(m, "endTime", "")
	return nil
}

// Map helpers shared by the Payload implementations

func setIfNotEmpty(m map[string]string, key, value string) {
	if value != "" {
		m[key] = value
	}
}

func setBool(m map[string]string, key string, value bool) {
	if value {
		m[key] = "true"
	} else {
		m[key] = "false"
	}
}

func getString(m map[string]string, key, def string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}

func getBool(m map[string]string, key string, def bool) bool {
	v, ok := m[key]
	if !ok {
		return def
	}
	switch v {
	case "true", "1", "yes", "y":
		return true
	default:
		return false
	}
}
