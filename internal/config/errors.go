package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing.
var (
	// ErrMissingTokenSignKey indicates that no JWT signing secret was
	// supplied by any configuration source. The service refuses to start
	// rather than fall back to a well-known development key.
	ErrMissingTokenSignKey = errors.New("token sign key is required")

	// ErrMissingDatabaseDSN indicates that no database connection string
	// was supplied by any configuration source.
	ErrMissingDatabaseDSN = errors.New("database DSN is required")
)
