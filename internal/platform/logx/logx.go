// internal/platform/logx/logx.go
package logx

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger is the project-wide logging interface. The implementation is a
// thin zerolog wrapper; callers pass fields as alternating key/value
// pairs.
type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Err(err error, kv ...any)
	With(kv ...any) Logger
}

type zlogger struct {
	zl zerolog.Logger
}

// New creates a logger with the level taken from QRPAYLOAD_LOG_LEVEL.
func New() Logger {
	return NewWithLevel(parseLevel(os.Getenv("QRPAYLOAD_LOG_LEVEL")))
}

// NewWithLevel creates a logger with a specific log level.
func NewWithLevel(lvl Level) Logger {
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	zl := zerolog.New(w).Level(zerologLevel(lvl)).With().Timestamp().Logger()
	return &zlogger{zl: zl}
}

// NewSilent creates a logger that only outputs errors (silent mode for
// pipe-friendly CLI output).
func NewSilent() Logger {
	return NewWithLevel(LevelError)
}

func (l *zlogger) Debug(msg string, kv ...any) { l.zl.Debug().Fields(fieldMap(kv...)).Msg(msg) }
func (l *zlogger) Info(msg string, kv ...any)  { l.zl.Info().Fields(fieldMap(kv...)).Msg(msg) }
func (l *zlogger) Warn(msg string, kv ...any)  { l.zl.Warn().Fields(fieldMap(kv...)).Msg(msg) }

func (l *zlogger) Err(err error, kv ...any) {
	if err == nil {
		return
	}
	l.zl.Error().Err(err).Fields(fieldMap(kv...)).Msg("")
}

func (l *zlogger) With(kv ...any) Logger {
	return &zlogger{zl: l.zl.With().Fields(fieldMap(kv...)).Logger()}
}

// fieldMap folds alternating key/value pairs into a zerolog field map.
// A trailing key without a value is kept visible rather than dropped.
func fieldMap(kv ...any) map[string]any {
	if len(kv) == 0 {
		return nil
	}
	out := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		if i+1 < len(kv) {
			out[key] = kv[i+1]
		} else {
			out[key] = "(missing)"
		}
	}
	return out
}

func zerologLevel(lvl Level) zerolog.Level {
	switch lvl {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func parseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "dbg":
		return LevelDebug
	case "info", "inf", "":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "err", "error":
		return LevelError
	default:
		return LevelInfo
	}
}
