// Package migrations embeds the catalog schema (users and videos tables)
// and applies it with goose at startup.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var schemaFS embed.FS

// Migrate brings the database up to the latest embedded schema version.
// It runs once from NewStorages before any repository touches the tables.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(schemaFS)

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("selecting goose dialect: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("applying catalog schema migrations: %w", err)
	}

	return nil
}
