package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-scim-owner/internal/logger"
	"github.com/MKhiriev/go-scim-owner/migrations"
)

// DB is the local SQLite connection that holds the credential record.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate creates or upgrades the kv_store table. It is safe to call on
// every start.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB); err != nil {
		db.logger.Err(err).Str("func", "DB.Migrate").Msg("schema migration failed")
		return fmt.Errorf("migrate local database: %w", err)
	}

	db.logger.Debug().Str("func", "DB.Migrate").Msg("local database schema is up to date")
	return nil
}
