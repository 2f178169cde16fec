package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns the service logger at the given level, falling back to
// info when the level string does not parse.
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(os.Stdout).
		Level(lvl).
		With().
		Timestamp().
		Caller().
		Logger()
}
