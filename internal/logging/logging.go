package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Setup configures the global level and returns a logger writing to w.
//   - level: trace, debug, info, warn, error (defaults to info)
//   - format: "pretty" for console output, anything else for JSON lines
func Setup(level, format string, w io.Writer) zerolog.Logger {
	if format == "pretty" {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	return zerolog.New(w).
		With().
		Timestamp().
		Logger()
}
