package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/adanyl0v/go-kanban/internal/config"
)

var globalLogger zerolog.Logger

func InitDefaultLogger() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	zerolog.TimestampFieldName = "timestamp"

	globalLogger = zerolog.New(os.Stdout).
		With().
		Timestamp().
		Caller().
		Int("pid", os.Getpid()).
		Logger()

	globalLogger.Info().Msg("initialized default logger")
}

func MustInitApplicationLogger() {
	cfg := config.Global()

	w, err := newLogWriter(cfg.Env, cfg.Log)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Str("env", cfg.Env).
			Msg("unknown env")
		panic(err)
	}

	globalLogger = globalLogger.Output(w)
	globalLogger.Info().
		Str("file", cfg.Log.File).
		Msg("initialized application logger")
}

// newLogWriter sets the global level for env and returns the stdout
// writer, tee'd into a rotating file when one is configured.
func newLogWriter(env string, cfg config.LogConfig) (io.Writer, error) {
	w := io.Writer(os.Stdout)
	switch env {
	case config.EnvDev:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case config.EnvProd:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case config.EnvLocal:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)

		consoleWriter := zerolog.NewConsoleWriter()
		consoleWriter.TimeFormat = time.DateTime
		consoleWriter.Out = os.Stdout
		w = consoleWriter
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}

	if cfg.File == "" {
		return w, nil
	}

	fileWriter := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	}
	return zerolog.MultiLevelWriter(w, fileWriter), nil
}
