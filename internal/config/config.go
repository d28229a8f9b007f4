package config

import "time"

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

var globalConfig *Config

func Global() *Config {
	return globalConfig
}

func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

type Config struct {
	Env       string `env:"ENV" env-required:"true"`
	Log       LogConfig
	HTTP      HTTPConfig
	Postgres  PostgresConfig
	Migration MigrationConfig
}

// LogConfig enables an additional rotating log file when File is set.
type LogConfig struct {
	File       string `env:"LOG_FILE"`
	MaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" env-default:"100"`
	MaxBackups int    `env:"LOG_MAX_BACKUPS" env-default:"30"`
	MaxAgeDays int    `env:"LOG_MAX_AGE_DAYS" env-default:"90"`
}

type HTTPConfig struct {
	Host               string        `env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port               string        `env:"HTTP_PORT" env-default:"5000"`
	ShutdownTimeout    time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" env-default:"http://localhost:3000" env-separator:","`
}

type PostgresConfig struct {
	Host           string        `env:"POSTGRES_HOST" env-required:"true"`
	Port           int           `env:"POSTGRES_PORT" env-default:"5432"`
	Username       string        `env:"POSTGRES_USERNAME" env-required:"true"`
	Password       string        `env:"POSTGRES_PASSWORD" env-required:"true"`
	Database       string        `env:"POSTGRES_DATABASE" env-required:"true"`
	SSLMode        string        `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	ConnectTimeout time.Duration `env:"POSTGRES_CONNECT_TIMEOUT" env-default:"10s"`
	PingTimeout    time.Duration `env:"POSTGRES_PING_TIMEOUT" env-default:"10s"`
}

// MigrationConfig bounds the startup migration loop. The database is
// often still booting when the API container starts.
type MigrationConfig struct {
	MaxAttempts   int           `env:"MIGRATION_MAX_ATTEMPTS" env-default:"15"`
	RetryInterval time.Duration `env:"MIGRATION_RETRY_INTERVAL" env-default:"2s"`
	VersionTable  string        `env:"MIGRATION_VERSION_TABLE" env-default:"schema_version"`
}

// BoardConfig configures the board client.
type BoardConfig struct {
	Env            string        `env:"ENV" env-default:"prod"`
	APIURL         string        `env:"KANBAN_API_URL" env-default:"http://localhost:5000"`
	RequestTimeout time.Duration `env:"KANBAN_REQUEST_TIMEOUT" env-default:"10s"`
}
