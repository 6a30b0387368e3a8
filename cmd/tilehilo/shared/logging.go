package shared

import (
	"os"

	"github.com/charmbracelet/log"
)

// SetupLogger configures the process logger. The debug flag wins over
// the configured level; an unparseable level falls back to info.
func SetupLogger(level string, debug bool) *log.Logger {
	lvl := log.InfoLevel
	if parsed, err := log.ParseLevel(level); err == nil {
		lvl = parsed
	}
	if debug {
		lvl = log.DebugLevel
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
	})
}
