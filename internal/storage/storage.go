package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/schema"

	"github.com/goliatone/go-coursebuilder/internal/lessonplan"
	"github.com/goliatone/go-coursebuilder/internal/worksheet"
)

// Dialect resolves the bun dialect for a driver name. Supported drivers are
// sqlite3 and postgres.
func Dialect(driver string) (schema.Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", "sqlite", "sqlite3":
		return sqlitedialect.New(), nil
	case "postgres", "pg", "pgx":
		return pgdialect.New(), nil
	default:
		return nil, fmt.Errorf("storage: unsupported driver %q", driver)
	}
}

// NewDB wraps an already-open *sql.DB into a bun.DB with the dialect matching
// the driver name.
func NewDB(sqldb *sql.DB, driver string) (*bun.DB, error) {
	dialect, err := Dialect(driver)
	if err != nil {
		return nil, err
	}
	return bun.NewDB(sqldb, dialect), nil
}

// Migrate creates the builder document tables when they do not exist yet.
func Migrate(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*worksheet.Document)(nil),
		(*lessonplan.Document)(nil),
	}
	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("storage: create table for %T: %w", model, err)
		}
	}
	return nil
}
