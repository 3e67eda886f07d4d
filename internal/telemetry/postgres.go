package telemetry

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/samber/lo"
)

const (
	farmsQuery = `
		SELECT fa.id, fa.owner_id, fa.name, fa.area_ha, fa.location, fa.created_at
		FROM farms fa`

	fieldsQuery = `
		SELECT f.id, f.farm_id, f.name, f.area_ha,
			COALESCE(f.crop_type, '') AS crop_type,
			COALESCE(f.irrigation_type, '') AS irrigation_type
		FROM fields f
		JOIN farms fa ON fa.id = f.farm_id`

	soilQuery = `
		SELECT s.id, s.field_id, f.farm_id, s.analysis_date, s.ph,
			s.nitrogen, s.phosphorus, s.potassium, s.organic_matter
		FROM soil_analyses s
		JOIN fields f ON f.id = s.field_id
		JOIN farms fa ON fa.id = f.farm_id`

	cropQuery = `
		SELECT c.id, c.field_id, f.farm_id, c.observed_on, c.ndvi, c.evi, c.ndwi,
			COALESCE(c.health_status, '') AS health_status
		FROM crop_monitoring c
		JOIN fields f ON f.id = c.field_id
		JOIN farms fa ON fa.id = f.farm_id`

	weatherQuery = `
		SELECT w.id, w.farm_id, w.recorded_on, w.temperature, w.precipitation, w.humidity
		FROM weather_records w
		JOIN farms fa ON fa.id = w.farm_id`

	financialQuery = `
		SELECT r.id, r.farm_id, r.entry_date, r.kind, COALESCE(r.category, '') AS category, r.amount
		FROM financial_records r
		JOIN farms fa ON fa.id = r.farm_id`
)

// PostgresGateway reads telemetry from the operational PostgreSQL database.
type PostgresGateway struct {
	db *sqlx.DB
}

func NewPostgresGateway(db *sqlx.DB) *PostgresGateway {
	return &PostgresGateway{db: db}
}

var _ Gateway = (*PostgresGateway)(nil)

func (g *PostgresGateway) Farms(ctx context.Context, scope Scope) ([]Farm, error) {
	query, args := scopedQuery(farmsQuery, "", "fa.name, fa.id", scope)
	var farms []Farm
	if err := g.db.SelectContext(ctx, &farms, query, args...); err != nil {
		slog.Error("failed to list farms", "owner_id", scope.OwnerID, "err", err)
		return nil, fmt.Errorf("failed to list farms: %w", err)
	}
	return farms, nil
}

func (g *PostgresGateway) Fields(ctx context.Context, scope Scope) ([]Field, error) {
	query, args := scopedQuery(fieldsQuery, "", "f.name, f.id", scope)
	var fields []Field
	if err := g.db.SelectContext(ctx, &fields, query, args...); err != nil {
		slog.Error("failed to list fields", "owner_id", scope.OwnerID, "err", err)
		return nil, fmt.Errorf("failed to list fields: %w", err)
	}
	return fields, nil
}

func (g *PostgresGateway) SoilAnalyses(ctx context.Context, scope Scope) ([]SoilAnalysis, error) {
	query, args := scopedQuery(soilQuery, "s.analysis_date", "s.analysis_date, s.id", scope)
	var records []SoilAnalysis
	if err := g.db.SelectContext(ctx, &records, query, args...); err != nil {
		slog.Error("failed to list soil analyses", "owner_id", scope.OwnerID, "err", err)
		return nil, fmt.Errorf("failed to list soil analyses: %w", err)
	}
	return records, nil
}

func (g *PostgresGateway) CropObservations(ctx context.Context, scope Scope) ([]CropObservation, error) {
	query, args := scopedQuery(cropQuery, "c.observed_on", "c.observed_on, c.id", scope)
	var records []CropObservation
	if err := g.db.SelectContext(ctx, &records, query, args...); err != nil {
		slog.Error("failed to list crop observations", "owner_id", scope.OwnerID, "err", err)
		return nil, fmt.Errorf("failed to list crop observations: %w", err)
	}
	return records, nil
}

func (g *PostgresGateway) WeatherRecords(ctx context.Context, scope Scope) ([]WeatherRecord, error) {
	query, args := scopedQuery(weatherQuery, "w.recorded_on", "w.recorded_on, w.id", scope)
	var records []WeatherRecord
	if err := g.db.SelectContext(ctx, &records, query, args...); err != nil {
		slog.Error("failed to list weather records", "owner_id", scope.OwnerID, "err", err)
		return nil, fmt.Errorf("failed to list weather records: %w", err)
	}
	return records, nil
}

func (g *PostgresGateway) FinancialRecords(ctx context.Context, scope Scope) ([]FinancialRecord, error) {
	query, args := scopedQuery(financialQuery, "r.entry_date", "r.entry_date, r.id", scope)
	var records []FinancialRecord
	if err := g.db.SelectContext(ctx, &records, query, args...); err != nil {
		slog.Error("failed to list financial records", "owner_id", scope.OwnerID, "err", err)
		return nil, fmt.Errorf("failed to list financial records: %w", err)
	}
	return records, nil
}

// scopedQuery appends the owner, date and farm filters to base. Placeholders are
// numbered in the order owner, from, to, farm ids.
func scopedQuery(base, dateColumn, orderBy string, scope Scope) (string, []any) {
	var sb strings.Builder
	sb.WriteString(base)

	args := []any{scope.OwnerID}
	sb.WriteString("\n\t\tWHERE fa.owner_id = $1")

	if dateColumn != "" {
		args = append(args, scope.From, scope.To)
		fmt.Fprintf(&sb, " AND %s BETWEEN $%d AND $%d", dateColumn, len(args)-1, len(args))
	}

	if len(scope.FarmIDs) > 0 {
		ids := lo.Map(scope.FarmIDs, func(id uuid.UUID, _ int) string { return id.String() })
		args = append(args, pq.Array(ids))
		fmt.Fprintf(&sb, " AND fa.id = ANY($%d::uuid[])", len(args))
	}

	if orderBy != "" {
		sb.WriteString(" ORDER BY " + orderBy)
	}

	return sb.String(), args
}
