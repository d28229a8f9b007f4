package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adanyl0v/go-kanban/internal/config"
	"github.com/adanyl0v/go-kanban/internal/migrations"
)

var globalPostgresPool *pgxpool.Pool

func MustConnectPostgres() {
	cfg := config.Global().Postgres
	connURL := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.Username, cfg.Password, cfg.Host,
		cfg.Port, cfg.Database, cfg.SSLMode)

	poolCfg, err := pgxpool.ParseConfig(connURL)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to parse postgres config")
		panic(err)
	}
	poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	// The pool connects lazily, so a database that is still starting
	// up is reported by the migration loop instead of here.
	globalPostgresPool, err = pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to create postgres pool")
		panic(err)
	}
	globalLogger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Msg("created postgres pool")
}

// MustMigratePostgres applies the schema, retrying at a fixed interval
// until the attempts run out.
func MustMigratePostgres() {
	cfg := config.Global()

	err := retry(cfg.Migration.MaxAttempts, cfg.Migration.RetryInterval, func(attempt int) error {
		err := migratePostgres(cfg.Postgres.PingTimeout, cfg.Migration.VersionTable)
		if err != nil {
			globalLogger.Warn().
				Err(err).
				Int("attempt", attempt).
				Int("max_attempts", cfg.Migration.MaxAttempts).
				Msg("migration attempt failed")
		}
		return err
	})
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to migrate postgres")
		panic(err)
	}
	globalLogger.Info().Msg("migrated postgres")
}

func migratePostgres(pingTimeout time.Duration, versionTable string) error {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	err := globalPostgresPool.Ping(ctx)
	if err != nil {
		return fmt.Errorf("ping: %w", err)
	}

	conn, err := globalPostgresPool.Acquire(context.Background())
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	return migrations.Migrate(context.Background(), globalLogger, conn.Conn(), versionTable)
}

// retry calls fn until it succeeds or maxAttempts calls have failed,
// sleeping interval between attempts. Attempts are numbered from 1.
func retry(maxAttempts int, interval time.Duration, fn func(attempt int) error) error {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = fn(attempt)
		if err == nil {
			return nil
		}
		if attempt < maxAttempts {
			time.Sleep(interval)
		}
	}
	return fmt.Errorf("giving up after %d attempts: %w", maxAttempts, err)
}

func DisconnectPostgres() {
	globalPostgresPool.Close()
	globalLogger.Info().Msg("disconnected from postgres")
}
