package sqlite

import (
	"database/sql"
	"embed"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

//go:embed sql/*.sql
var sqlFiles embed.FS

// Migrate creates or upgrades the report archive tables
func Migrate(db *sql.DB) error {
	return sqlmigrator.New(db, darwin.SqliteDialect{}).Migrate(sqlFiles, "sql")
}
