// Package logger wraps zerolog with the constructors used across the
// application. Handlers log unexpected failures here with full detail while
// HTTP responses stay generic.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

type Logger struct {
	zerolog.Logger
}

// New returns a JSON logger writing to stdout, tagged with the component
// name so log lines from different parts of the app can be filtered.
func New(component string) *Logger {
	base := zerolog.New(os.Stdout).With().
		Str("component", component).
		Timestamp().
		Logger()
	return &Logger{base}
}

// Nop returns a logger that discards everything; used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}
