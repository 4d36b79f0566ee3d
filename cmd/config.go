package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort   string `env:"HTTP_PORT"   envDefault:"8080"`
	DBHost     string `env:"DB_HOST"     envDefault:"localhost"`
	DBPort     string `env:"DB_PORT"     envDefault:"5432"`
	DBUser     string `env:"DB_USER"     envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME"     envDefault:"wholesale"`
	DBSslMode  string `env:"DB_SSLMODE"  envDefault:"disable"`

	LockTimeout       time.Duration `env:"LOCK_TIMEOUT"        envDefault:"2s"`
	ConflictRetries   uint64        `env:"CONFLICT_RETRIES"    envDefault:"3"`
	ConflictRetryWait time.Duration `env:"CONFLICT_RETRY_WAIT" envDefault:"20ms"`

	KafkaHost              string `env:"KAFKA_HOST"`
	KafkaOrderChangedTopic string `env:"KAFKA_ORDER_CHANGED_TOPIC" envDefault:"wholesale.order-changed"`

	ServiceName          string `env:"SERVICE_NAME"           envDefault:"wholesale"`
	OTLPEndpoint         string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	LogLevel             string `env:"LOG_LEVEL"              envDefault:"info"`
	ReorderAlertSchedule string `env:"REORDER_ALERT_SCHEDULE" envDefault:"0 */15 * * * *"`
}

// LoadConfig reads variables from the process environment. A .env file in
// the working directory, when present, fills in variables that are not set.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// DSN builds the PostgreSQL connection string.
func (c Config) DSN() string {
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPassword),
		Host:   c.DBHost + ":" + c.DBPort,
		Path:   "/" + c.DBName,
	}
	q := dsn.Query()
	q.Set("sslmode", c.DBSslMode)
	dsn.RawQuery = q.Encode()
	return dsn.String()
}
