package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// Log is disabled until Init runs, so library code can log unconditionally.
var Log = zerolog.Nop()

// Init routes diagnostics to stderr, keeping stdout clear for generation
// output. Verbose lowers the threshold to debug.
func Init(verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	Log = zerolog.New(writer).With().Timestamp().Logger()
}
