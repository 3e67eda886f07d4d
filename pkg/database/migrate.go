package database

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
)

//go:embed schema.sql
var schemaSQL string

// Migrate applies the idempotent schema. Every statement uses IF NOT EXISTS,
// so it is safe to run on each start.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		slog.Error("schema migration failed", "err", err)
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
