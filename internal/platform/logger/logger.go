// Package logger builds the service logger from the configured
// environment.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New returns the logger for the named service. Development gets a
// human-readable console writer at debug level; every other
// environment logs structured JSON at info.
func New(serviceName, environment string) zerolog.Logger {
	var w io.Writer = os.Stdout
	level := zerolog.InfoLevel
	if strings.EqualFold(environment, "development") {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
		level = zerolog.DebugLevel
	}
	return zerolog.New(w).Level(level).With().
		Str("service", serviceName).
		Timestamp().
		Logger()
}
