// Package store persists generated reports. Reports are append-only: there is
// no update or delete.
package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type ReportStore interface {
	// Create inserts rec and fills ID and CreatedAt from the database write.
	Create(ctx context.Context, rec *Record) error
	// Get returns ErrNotFound when the report does not exist or belongs to another user.
	Get(ctx context.Context, id uuid.UUID, userID string) (*Record, error)
	List(ctx context.Context, userID string, limit, offset int) ([]Summary, error)
}

// Record is one row of the reports table. Data holds the full report document.
type Record struct {
	ID         uuid.UUID       `db:"id" json:"id"`
	UserID     string          `db:"user_id" json:"user_id"`
	Title      string          `db:"title" json:"title"`
	ReportType string          `db:"report_type" json:"report_type"`
	DateFrom   time.Time       `db:"date_from" json:"date_from"`
	DateTo     time.Time       `db:"date_to" json:"date_to"`
	Data       json.RawMessage `db:"data" json:"data"`
	FarmID     uuid.NullUUID   `db:"farm_id" json:"farm_id"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
}

// Summary is the list projection of a Record, without the document body.
type Summary struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Title      string    `db:"title" json:"title"`
	ReportType string    `db:"report_type" json:"type"`
	DateFrom   time.Time `db:"date_from" json:"dateFrom"`
	DateTo     time.Time `db:"date_to" json:"dateTo"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}
