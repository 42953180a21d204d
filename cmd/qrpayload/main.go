// Package main implements the qrpayload CLI: encode structured data into
// QR-ready payload strings, or classify a raw payload string back into
// structured fields.
package main

import (
	"fmt"
	"os"
	"time"

	"qrpayload/internal/adapters/batch"
	"qrpayload/internal/adapters/output"
	"qrpayload/internal/platform/config"
	"qrpayload/internal/platform/logx"
	"qrpayload/internal/platform/ui"
	"qrpayload/pkg/payload"
)

var (
	// Filled via -ldflags at build time
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: configuration load failed: %v\n", err)
		os.Exit(2)
	}

	if cfg.PrintVersion {
		fmt.Printf("qrpayload %s (commit %s, built %s)\n", version, commit, date)
		os.Exit(0)
	}

	logLevel := logx.LevelInfo
	if cfg.Verbose {
		logLevel = logx.LevelDebug
	}
	if cfg.Quiet {
		logLevel = logx.LevelError
	}
	logger := logx.NewWithLevel(logLevel)

	mode, err := cfg.Mode()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Usage: qrpayload --type wifi --field ssid=MyNet --field encryption=WPA")
		fmt.Fprintln(os.Stderr, "       qrpayload --detect 'WIFI:T:WPA;S:MyNet;P:secret;;'")
		fmt.Fprintln(os.Stderr, "       qrpayload --batch payloads.yaml")
		os.Exit(2)
	}

	presenter := ui.NewPresenter(cfg.Quiet || cfg.JSON)
	presenter.Header(version)

	if err := run(mode, cfg, logger, presenter); err != nil {
		presenter.Error(err.Error())
		logger.Err(err, "mode", string(mode))
		os.Exit(1)
	}
}

func run(mode config.Mode, cfg config.Config, logger logx.Logger, presenter ui.Presenter) error {
	switch mode {
	case config.ModeEncode:
		return runEncode(cfg, logger)
	case config.ModeDetect:
		return runDetect(cfg, logger, presenter)
	case config.ModeBatch:
		return runBatch(cfg, logger, presenter)
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
}

// runEncode builds a single payload from --type and --field pairs and
// prints the encoded string to stdout.
func runEncode(cfg config.Config, logger logx.Logger) error {
	p, err := payload.New(payload.PayloadType(cfg.Type))
	if err != nil {
		return err
	}
	if err := p.FromMap(cfg.Fields); err != nil {
		return err
	}

	encoded := payload.Generate(p)
	logger.Debug("encoded payload", "type", cfg.Type, "bytes", len(encoded))

	if encoded == "" {
		return fmt.Errorf("no output for type %q: required fields missing or invalid", cfg.Type)
	}

	if cfg.JSON {
		return output.WriteJSONStdout(map[string]string{
			"type":    cfg.Type,
			"encoded": encoded,
		}, true)
	}
	fmt.Println(encoded)
	return nil
}

// runDetect classifies a raw string and reports the extracted fields.
func runDetect(cfg config.Config, logger logx.Logger, presenter ui.Presenter) error {
	res := payload.DetectDataType(cfg.Detect)
	logger.Debug("classified input", "type", string(res.Type))

	if cfg.OutDir != "" {
		path, err := output.WriteJSONReport(cfg.OutDir, "detect", res)
		if err != nil {
			return err
		}
		presenter.Info("report written to " + path)
	}

	if cfg.JSON {
		return output.WriteJSONStdout(res, true)
	}
	return output.DetectionTable(res)
}

// runBatch encodes every entry of a YAML batch file.
func runBatch(cfg config.Config, logger logx.Logger, presenter ui.Presenter) error {
	start := time.Now()

	f, err := batch.Load(cfg.BatchFile)
	if err != nil {
		return err
	}
	logger.Debug("batch file loaded", "file", cfg.BatchFile, "entries", len(f.Payloads))

	results := batch.Encode(f)

	ok, failed := 0, 0
	for _, r := range results {
		if r.OK() {
			ok++
		} else {
			failed++
			presenter.Warning(fmt.Sprintf("entry %q (%s): %s", r.Name, r.Type, r.Err))
		}
	}

	if cfg.OutDir != "" {
		path, err := output.WriteJSONReport(cfg.OutDir, "batch", results)
		if err != nil {
			return err
		}
		presenter.Info("report written to " + path)
	}

	if cfg.JSON {
		if err := output.WriteJSONStdout(results, true); err != nil {
			return err
		}
	} else {
		if err := output.BatchTable(results); err != nil {
			return err
		}
	}

	presenter.Summary(ok, failed, time.Since(start))

	if failed > 0 && ok == 0 {
		return fmt.Errorf("all %d batch entries failed", failed)
	}
	return nil
}
