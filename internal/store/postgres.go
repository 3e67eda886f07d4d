package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type PostgresStore struct {
	db *sqlx.DB
}

func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

var _ ReportStore = (*PostgresStore)(nil)

func (s *PostgresStore) Create(ctx context.Context, rec *Record) error {
	query := `
		INSERT INTO reports (user_id, title, report_type, date_from, date_to, data, farm_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err := s.db.QueryRowxContext(ctx, query,
		rec.UserID, rec.Title, rec.ReportType, rec.DateFrom, rec.DateTo, string(rec.Data), rec.FarmID,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		slog.Error("failed to insert report", "user_id", rec.UserID, "report_type", rec.ReportType, "err", err)
		return fmt.Errorf("failed to insert report: %w", err)
	}

	return nil
}

func (s *PostgresStore) Get(ctx context.Context, id uuid.UUID, userID string) (*Record, error) {
	query := `
		SELECT id, user_id, title, report_type, date_from, date_to, data, farm_id, created_at
		FROM reports
		WHERE id = $1 AND user_id = $2`

	var rec Record
	if err := s.db.GetContext(ctx, &rec, query, id, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		slog.Error("failed to get report", "report_id", id, "err", err)
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	return &rec, nil
}

func (s *PostgresStore) List(ctx context.Context, userID string, limit, offset int) ([]Summary, error) {
	query := `
		SELECT id, title, report_type, date_from, date_to, created_at
		FROM reports
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	summaries := []Summary{}
	if err := s.db.SelectContext(ctx, &summaries, query, userID, limit, offset); err != nil {
		slog.Error("failed to list reports", "user_id", userID, "err", err)
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	return summaries, nil
}
