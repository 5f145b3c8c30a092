package logger

import (
	"io"
	"os"
	"time"

	"github.com/abdulmoeez1225/Todo-Challenge-With-Docker/internal/platform/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New builds the service logger for env and installs it as log.Logger.
func New(env, service string) zerolog.Logger {
	l := newLogger(os.Stdout, env, service)
	log.Logger = l
	return l
}

func newLogger(out io.Writer, env, service string) zerolog.Logger {
	zerolog.TimestampFieldName = "timestamp"

	w := out
	level := zerolog.InfoLevel
	switch env {
	case config.EnvLocal:
		level = zerolog.TraceLevel
		consoleWriter := zerolog.NewConsoleWriter()
		consoleWriter.TimeFormat = time.DateTime
		consoleWriter.Out = out
		w = consoleWriter
	case config.EnvDev:
		level = zerolog.DebugLevel
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Caller().
		Str("service", service).
		Int("pid", os.Getpid()).
		Logger()
}
