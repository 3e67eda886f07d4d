package telemetry

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Scope narrows every telemetry read to one owner, an inclusive date range
// and, optionally, a set of farms.
type Scope struct {
	OwnerID string
	From    time.Time
	To      time.Time
	FarmIDs []uuid.UUID
}

// Gateway is the read contract of the telemetry store. Implementations must be
// safe for concurrent use; the report service issues its reads in parallel.
type Gateway interface {
	Farms(ctx context.Context, scope Scope) ([]Farm, error)
	Fields(ctx context.Context, scope Scope) ([]Field, error)
	SoilAnalyses(ctx context.Context, scope Scope) ([]SoilAnalysis, error)
	CropObservations(ctx context.Context, scope Scope) ([]CropObservation, error)
	WeatherRecords(ctx context.Context, scope Scope) ([]WeatherRecord, error)
	FinancialRecords(ctx context.Context, scope Scope) ([]FinancialRecord, error)
}
