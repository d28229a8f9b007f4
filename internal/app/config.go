package app

import (
	"errors"

	_ "github.com/joho/godotenv/autoload"

	"github.com/adanyl0v/go-kanban/internal/config"
)

func MustReadEnv() {
	cfg, err := config.NewEnvReader().Read()
	if err == nil && len(cfg.HTTP.CORSAllowedOrigins) == 0 {
		err = errors.New("CORS_ALLOWED_ORIGINS must not be empty")
	}
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to read env")
		panic(err)
	}
	globalLogger.Info().
		Str("env", cfg.Env).
		Str("http_port", cfg.HTTP.Port).
		Str("postgres_host", cfg.Postgres.Host).
		Int("migration_max_attempts", cfg.Migration.MaxAttempts).
		Msg("read env")

	config.SetGlobal(cfg)
}
