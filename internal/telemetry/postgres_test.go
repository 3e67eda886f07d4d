package telemetry

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockGateway(t *testing.T) (*PostgresGateway, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewPostgresGateway(sqlx.NewDb(db, "postgres")), mock
}

func testScope() Scope {
	return Scope{
		OwnerID: "user-1",
		From:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		To:      time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestScopedQuery_DateRangeWithoutFarmFilter(t *testing.T) {
	q, args := scopedQuery(soilQuery, "s.analysis_date", "s.analysis_date, s.id", testScope())

	assert.Contains(t, q, "WHERE fa.owner_id = $1 AND s.analysis_date BETWEEN $2 AND $3")
	assert.NotContains(t, q, "ANY(")
	assert.Contains(t, q, "ORDER BY s.analysis_date, s.id")
	assert.Len(t, args, 3)
}

func TestScopedQuery_FarmFilterWithoutDates(t *testing.T) {
	scope := testScope()
	scope.FarmIDs = []uuid.UUID{uuid.New(), uuid.New()}

	q, args := scopedQuery(farmsQuery, "", "fa.name, fa.id", scope)

	assert.Contains(t, q, "WHERE fa.owner_id = $1 AND fa.id = ANY($2::uuid[])")
	assert.NotContains(t, q, "BETWEEN")
	assert.Len(t, args, 2)
}

func TestScopedQuery_AllFilters(t *testing.T) {
	scope := testScope()
	scope.FarmIDs = []uuid.UUID{uuid.New()}

	q, args := scopedQuery(weatherQuery, "w.recorded_on", "w.recorded_on", scope)

	assert.Contains(t, q, "w.recorded_on BETWEEN $2 AND $3 AND fa.id = ANY($4::uuid[])")
	assert.Len(t, args, 4)
}

func TestPostgresGateway_SoilAnalyses(t *testing.T) {
	gw, mock := newMockGateway(t)
	scope := testScope()

	id, fieldID, farmID := uuid.New(), uuid.New(), uuid.New()
	sampled := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"id", "field_id", "farm_id", "analysis_date", "ph",
		"nitrogen", "phosphorus", "potassium", "organic_matter",
	}).AddRow(id.String(), fieldID.String(), farmID.String(), sampled, 6.8, 25.0, 18.0, 120.0, 3.1)

	mock.ExpectQuery(regexp.QuoteMeta("FROM soil_analyses s")).
		WithArgs(scope.OwnerID, scope.From, scope.To).
		WillReturnRows(rows)

	records, err := gw.SoilAnalyses(context.Background(), scope)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, id, records[0].ID)
	assert.Equal(t, farmID, records[0].FarmID)
	assert.InDelta(t, 6.8, records[0].PH, 1e-9)
	assert.InDelta(t, 3.1, records[0].OrganicMatter, 1e-9)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGateway_FieldsWithFarmFilter(t *testing.T) {
	gw, mock := newMockGateway(t)
	scope := testScope()
	farmID := uuid.New()
	scope.FarmIDs = []uuid.UUID{farmID}

	rows := sqlmock.NewRows([]string{"id", "farm_id", "name", "area_ha", "crop_type", "irrigation_type"}).
		AddRow(uuid.NewString(), farmID.String(), "North", 5.0, "maize", "drip").
		AddRow(uuid.NewString(), farmID.String(), "South", 5.0, "maize", "flood")

	mock.ExpectQuery(regexp.QuoteMeta("fa.id = ANY($2::uuid[])")).
		WithArgs(scope.OwnerID, sqlmock.AnyArg()).
		WillReturnRows(rows)

	fields, err := gw.Fields(context.Background(), scope)
	require.NoError(t, err)
	require.Len(t, fields, 2)
	assert.Equal(t, "drip", fields[0].IrrigationType)
	assert.Equal(t, "flood", fields[1].IrrigationType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGateway_WrapsQueryErrors(t *testing.T) {
	gw, mock := newMockGateway(t)
	scope := testScope()

	mock.ExpectQuery(regexp.QuoteMeta("FROM weather_records w")).
		WillReturnError(errors.New("connection reset by peer"))

	_, err := gw.WeatherRecords(context.Background(), scope)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list weather records")
	assert.Contains(t, err.Error(), "connection reset by peer")
}
