package main

import (
	"context"
	"fmt"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-kanban/internal/board"
	"github.com/adanyl0v/go-kanban/internal/cli"
	"github.com/adanyl0v/go-kanban/internal/config"
)

func main() {
	inv, err := cli.ParseInvocation(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}

	cfg, err := config.NewBoardEnvReader().Read()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitConfigError)
	}

	logger := newLogger(cfg.Env)
	b := board.New(logger, board.NewClient(cfg.APIURL, cfg.RequestTimeout))

	err = cli.Execute(context.Background(), b, inv, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(cli.ExitCode(err))
}

// newLogger writes to stderr so that the rendered board stays alone
// on stdout.
func newLogger(env string) zerolog.Logger {
	level := zerolog.WarnLevel
	if env == config.EnvDev || env == config.EnvLocal {
		level = zerolog.DebugLevel
	}

	consoleWriter := zerolog.NewConsoleWriter()
	consoleWriter.Out = os.Stderr
	consoleWriter.TimeFormat = time.DateTime
	return zerolog.New(consoleWriter).
		Level(level).
		With().
		Timestamp().
		Logger()
}
