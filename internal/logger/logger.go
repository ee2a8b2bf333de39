// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors used by the
// scim-owner binaries.
//
// The terminal client owns stdout for its UI, so [NewClientLogger] writes to
// a file instead. The stub server logs JSON to stdout via [NewLogger].
// Request handlers obtain their request-scoped logger via [FromRequest].
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultClientLogFile is the log file name used when the client is given no
// explicit path. It is created next to the executable.
const DefaultClientLogFile = "scim-owner.log"

// Logger embeds zerolog.Logger, so the whole zerolog API is available on it.
type Logger struct {
	zerolog.Logger
}

var setupOnce sync.Once

// setup applies the process-wide zerolog settings: debug level and a "func"
// caller field holding the function name instead of file:line.
func setup() {
	setupOnce.Do(func() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
			return runtime.FuncForPC(pc).Name()
		}
		zerolog.CallerFieldName = "func"
	})
}

// New returns a JSON logger writing to w. Every entry carries a "role" field,
// a timestamp and the calling function.
func New(w io.Writer, role string) *Logger {
	setup()

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewLogger returns a JSON logger writing to stdout.
func NewLogger(role string) *Logger {
	return New(os.Stdout, role)
}

// NewClientLogger opens path for appending and returns a logger writing to it
// along with the function that closes the file. An empty path selects
// [DefaultClientLogFile] next to the executable.
//
// When the file cannot be opened the logger discards everything: falling back
// to stdout would corrupt the terminal UI.
func NewClientLogger(role, path string) (*Logger, func() error) {
	if path == "" {
		execPath, err := os.Executable()
		if err != nil {
			execPath = "."
		}
		path = filepath.Join(filepath.Dir(execPath), DefaultClientLogFile)
	}

	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return New(io.Discard, role), func() error { return nil }
	}

	return New(logFile, role), logFile.Close
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithLevel returns a copy of the logger filtering below level ("debug",
// "info", "warn", ...). An unknown or empty level leaves the logger as is.
func (l *Logger) WithLevel(level string) *Logger {
	if level == "" {
		return l
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		l.Warn().Str("level", level).Msg("unknown log level, keeping current level")
		return l
	}

	return &Logger{l.Level(lvl)}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to the request context by zerolog's
// WithContext, or zerolog's default logger.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx. It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
