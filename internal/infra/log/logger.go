package log

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger создаёт настроенный zerolog. В dev-окружении — человекочитаемый
// вывод и debug-уровень, иначе JSON и info.
func NewLogger(appEnv string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	level := zerolog.InfoLevel
	var out io.Writer = os.Stdout
	if appEnv == "dev" {
		level = zerolog.DebugLevel
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).With().Timestamp().Logger().Level(level)
}
