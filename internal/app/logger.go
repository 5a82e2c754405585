package app

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogger configures the global zerolog logger. Output goes to stderr so
// command output on stdout stays machine-readable.
func SetupLogger(level string, jsonOutput bool) error {
	return setupLogger(os.Stderr, level, jsonOutput)
}

func setupLogger(w io.Writer, level string, jsonOutput bool) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return errors.Errorf("unknown log level %q", level)
	}
	zerolog.SetGlobalLevel(lvl)

	if !jsonOutput {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	return nil
}
