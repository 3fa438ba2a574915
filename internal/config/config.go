package config

import (
	"io"
	"log/slog"

	"github.com/caarlos0/env/v11"

	"perfcore/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Its variables carry their
	// own names (DATABASE_URL, PSQL_*).
	Psql configs.Postgres

	// Seed configures synthetic data generation. Environment variables
	// prefixed with SEED_ will populate this struct.
	Seed configs.Seed `envPrefix:"SEED_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// NewLogger builds the application logger writing to w. Every record carries
// the deployment environment.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	return c.Log.NewSlog(w).With(slog.String("env", c.Env))
}
