// internal/adapters/batch/batch.go
package batch

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"qrpayload/internal/platform/errors"
	"qrpayload/pkg/payload"
)

// File is the on-disk shape of a batch payload file:
//
//	payloads:
//	  - name: office-wifi
//	    type: wifi
//	    fields:
//	      ssid: CorpNet
//	      encryption: WPA
//	      password: hunter2
type File struct {
	Payloads []Entry `yaml:"payloads" validate:"required,min=1"`
}

// Entry describes one payload to encode. Name is an optional label
// carried through to the results.
type Entry struct {
	Name   string            `yaml:"name"`
	Type   string            `yaml:"type" validate:"required,oneof=text url email phone sms wifi vcard location event"`
	Fields map[string]string `yaml:"fields" validate:"required"`
}

// Result pairs an entry with its encoded string. An entry that failed
// validation carries the reason in Err instead; one bad entry never
// aborts the batch.
type Result struct {
	Name    string `json:"name,omitempty"`
	Type    string `json:"type"`
	Encoded string `json:"encoded,omitempty"`
	Err     string `json:"error,omitempty"`
}

// OK reports whether the entry was encoded.
func (r Result) OK() bool {
	return r.Err == ""
}

var validate = validator.New()

// Load reads and parses a batch file. Shape problems (no payloads at
// all, unparseable YAML) are fatal here; per-entry problems are reported
// later by Encode.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read batch file")
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "parse batch file")
	}
	if err := validate.StructPartial(&f, "Payloads"); err != nil {
		return nil, errors.Wrap(err, "batch file needs a non-empty payloads list")
	}
	return &f, nil
}

// Encode validates each entry and runs it through the matching
// generator. Invalid entries are recorded and skipped.
func Encode(f *File) []Result {
	results := make([]Result, 0, len(f.Payloads))
	for _, e := range f.Payloads {
		results = append(results, encodeEntry(e))
	}
	return results
}

func encodeEntry(e Entry) Result {
	r := Result{Name: e.Name, Type: e.Type}

	if err := validate.Struct(e); err != nil {
		r.Err = err.Error()
		return r
	}

	p, err := payload.New(payload.PayloadType(e.Type))
	if err != nil {
		r.Err = err.Error()
		return r
	}
	if err := p.FromMap(e.Fields); err != nil {
		r.Err = err.Error()
		return r
	}

	r.Encoded = payload.Generate(p)
	if r.Encoded == "" {
		r.Err = "generator produced no output (missing required fields?)"
	}
	return r
}
