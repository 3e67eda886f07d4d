package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lib/pq"

	"github.com/Alijeyrad/agrolytics_backend/config"
)

// InitializeDatabase creates the configured application database if it does
// not exist, connecting through the maintenance 'postgres' database.
func InitializeDatabase(ctx context.Context, c config.DatabaseConfig) error {
	cfg := FromCentralConfig(c)
	if cfg.DBName == "" {
		return fmt.Errorf("no database name configured")
	}

	admin := cfg
	admin.DBName = "postgres"

	conn, err := openSQLDB(admin)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres database: %w", err)
	}
	defer conn.Close()

	var exists bool
	err = conn.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)`, cfg.DBName,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}
	if exists {
		slog.Info("database already exists", "dbname", cfg.DBName)
		return nil
	}

	if _, err := conn.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(cfg.DBName)); err != nil {
		return fmt.Errorf("failed to create database %q: %w", cfg.DBName, err)
	}

	slog.Info("database created", "dbname", cfg.DBName)
	return nil
}
