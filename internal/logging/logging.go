// Package logging builds the debug logger passed through the CLI.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w when debug is set,
// and a no-op logger otherwise.
func New(w io.Writer, debug bool) zerolog.Logger {
	if !debug {
		return zerolog.Nop()
	}
	cw := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.TimeOnly,
	}
	return zerolog.New(cw).Level(zerolog.DebugLevel).With().Timestamp().Str("app", "tp").Logger()
}
