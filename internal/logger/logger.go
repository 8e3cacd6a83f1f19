package logger

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New returns the application logger. Plain JSON output unless LOG_PRETTY is
// set, in which case a console writer is used.
func New() zerolog.Logger {
	if os.Getenv("LOG_PRETTY") == "true" {
		return log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
