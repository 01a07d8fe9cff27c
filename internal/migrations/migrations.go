package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

// The schema ships inside the binary; there is no separate migrate
// step to forget at deploy time.
//
//go:embed *.sql
var migrationFS embed.FS

// Run brings db up to the latest schema version. Already-applied
// migrations are skipped, so calling it on every start is safe.
func Run(db *sql.DB) error {
	goose.SetBaseFS(migrationFS)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("setting dialect: %w", err)
	}
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}
