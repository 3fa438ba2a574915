package configs

// Postgres holds configuration for connecting to a PostgreSQL database. URL
// is read from DATABASE_URL without a prefix so the same variable serves the
// server and the seed command. An empty URL means no database is configured.
type Postgres struct {
	// URL is a PostgreSQL connection string accepted by pgxpool.ParseConfig.
	URL string `env:"DATABASE_URL"`
	// RunMigrations controls whether database migrations are executed on
	// startup.
	RunMigrations bool `env:"PSQL_RUN_MIGRATIONS" envDefault:"false"`
	// MaxConns caps the pool size. Zero keeps the pgxpool default.
	MaxConns int32 `env:"PSQL_MAX_CONNS" envDefault:"0"`
}

// Enabled reports whether a database connection string was supplied.
func (c Postgres) Enabled() bool {
	return c.URL != ""
}
