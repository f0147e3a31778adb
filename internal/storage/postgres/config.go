package postgres

import "time"

// Config holds Postgres connection settings
type Config struct {
	// URL is the connection URL (e.g. postgres://localhost:5432/roster)
	URL string

	// Pool settings
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// DefaultConfig returns sensible defaults for Postgres configuration
func DefaultConfig() Config {
	return Config{
		URL:             "postgres://localhost:5432/roster",
		MaxConns:        20,
		MinConns:        2,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
	}
}
