// internal/platform/config/config.go
package config

import (
	"os"
	"strings"

	"github.com/spf13/pflag"

	"qrpayload/internal/platform/errors"
)

// Mode is the operation the CLI was asked to run.
type Mode string

const (
	// ModeEncode builds one payload from --type and --field pairs
	ModeEncode Mode = "encode"

	// ModeDetect classifies a raw string
	ModeDetect Mode = "detect"

	// ModeBatch encodes every entry of a YAML batch file
	ModeBatch Mode = "batch"
)

type Config struct {
	// Encode inputs
	Type   string
	Fields map[string]string

	// Detect input
	Detect string

	// Batch input
	BatchFile string

	// Outputs
	JSON   bool
	OutDir string

	// UX
	Quiet        bool
	Verbose      bool
	PrintVersion bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Fields: map[string]string{},
		OutDir: "",
		JSON:   false,
	}
}

// Load initializes the configuration: ENV -> defaults, then FLAGS
// (flags take priority). args is os.Args[1:]; tests pass their own.
func Load(args []string) (Config, error) {
	cfg := DefaultConfig()

	loadFromEnv(&cfg)

	if err := loadFromFlags(&cfg, args); err != nil {
		return cfg, err
	}

	normalize(&cfg)

	return cfg, nil
}

// loadFromEnv loads configuration from environment variables.
func loadFromEnv(cfg *Config) {
	if v := getenv("QRPAYLOAD_OUT_DIR", ""); v != "" {
		cfg.OutDir = v
	}
	if v := getenv("QRPAYLOAD_JSON", ""); v != "" {
		cfg.JSON = parseBool(v)
	}
	if v := getenv("QRPAYLOAD_QUIET", ""); v != "" {
		cfg.Quiet = parseBool(v)
	}
}

// loadFromFlags parses CLI flags over a fresh flag set.
func loadFromFlags(cfg *Config, args []string) error {
	fs := pflag.NewFlagSet("qrpayload", pflag.ContinueOnError)

	fs.StringVarP(&cfg.Type, "type", "t", cfg.Type, "Payload type to encode (text, url, email, phone, sms, wifi, vcard, location, event)")
	fs.StringToStringVarP(&cfg.Fields, "field", "f", cfg.Fields, "Payload field as key=value (repeatable)")
	fs.StringVarP(&cfg.Detect, "detect", "d", cfg.Detect, "Raw string to classify instead of encoding")
	fs.StringVarP(&cfg.BatchFile, "batch", "b", cfg.BatchFile, "YAML file with payloads to encode in bulk")

	fs.BoolVar(&cfg.JSON, "json", cfg.JSON, "Emit machine-readable JSON to stdout")
	fs.StringVar(&cfg.OutDir, "out", cfg.OutDir, "Directory to also write a JSON report into")

	fs.BoolVarP(&cfg.Quiet, "quiet", "q", cfg.Quiet, "Quiet mode (result only, no presenter output)")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Verbose mode (debug logging)")
	fs.BoolVarP(&cfg.PrintVersion, "version", "v", false, "Print version and exit")

	return fs.Parse(args)
}

func normalize(c *Config) {
	c.Type = strings.ToLower(strings.TrimSpace(c.Type))
	c.BatchFile = strings.TrimSpace(c.BatchFile)
	c.OutDir = strings.TrimSpace(c.OutDir)
	if c.Fields == nil {
		c.Fields = map[string]string{}
	}
}

// Mode resolves which operation was requested. Exactly one of
// --type, --detect and --batch must be set.
func (c Config) Mode() (Mode, error) {
	set := 0
	var mode Mode
	if c.Type != "" {
		set++
		mode = ModeEncode
	}
	if c.Detect != "" {
		set++
		mode = ModeDetect
	}
	if c.BatchFile != "" {
		set++
		mode = ModeBatch
	}
	switch set {
	case 1:
		return mode, nil
	case 0:
		return "", errors.Wrap(errors.ErrInvalidInput, "one of --type, --detect or --batch is required")
	default:
		return "", errors.Wrap(errors.ErrInvalidInput, "--type, --detect and --batch are mutually exclusive")
	}
}

// Helpers

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok {
		return v
	}
	return def
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	default:
		return false
	}
}
