package telemetry

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ============================================================================
// FARM STRUCTURE
// ============================================================================

type Farm struct {
	ID           uuid.UUID `json:"id" db:"id"`
	OwnerID      string    `json:"owner_id" db:"owner_id"`
	Name         string    `json:"name" db:"name"`
	AreaHectares float64   `json:"area_ha" db:"area_ha"`
	Location     *string   `json:"location,omitempty" db:"location"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type Field struct {
	ID             uuid.UUID `json:"id" db:"id"`
	FarmID         uuid.UUID `json:"farm_id" db:"farm_id"`
	Name           string    `json:"name" db:"name"`
	AreaHectares   float64   `json:"area_ha" db:"area_ha"`
	CropType       string    `json:"crop_type" db:"crop_type"`
	IrrigationType string    `json:"irrigation_type" db:"irrigation_type"`
}

// ============================================================================
// TIME-SERIES OBSERVATIONS
// ============================================================================

// SoilAnalysis is a single soil sample. Nutrients are in ppm, organic matter in percent.
type SoilAnalysis struct {
	ID            uuid.UUID `json:"id" db:"id"`
	FieldID       uuid.UUID `json:"field_id" db:"field_id"`
	FarmID        uuid.UUID `json:"farm_id" db:"farm_id"`
	AnalysisDate  time.Time `json:"analysis_date" db:"analysis_date"`
	PH            float64   `json:"ph" db:"ph"`
	Nitrogen      float64   `json:"nitrogen" db:"nitrogen"`
	Phosphorus    float64   `json:"phosphorus" db:"phosphorus"`
	Potassium     float64   `json:"potassium" db:"potassium"`
	OrganicMatter float64   `json:"organic_matter" db:"organic_matter"`
}

// CropObservation is a vegetation-index reading for a field.
type CropObservation struct {
	ID           uuid.UUID `json:"id" db:"id"`
	FieldID      uuid.UUID `json:"field_id" db:"field_id"`
	FarmID       uuid.UUID `json:"farm_id" db:"farm_id"`
	ObservedOn   time.Time `json:"observed_on" db:"observed_on"`
	NDVI         float64   `json:"ndvi" db:"ndvi"`
	EVI          float64   `json:"evi" db:"evi"`
	NDWI         float64   `json:"ndwi" db:"ndwi"`
	HealthStatus string    `json:"health_status" db:"health_status"`
}

// WeatherRecord is a daily observation at farm level.
type WeatherRecord struct {
	ID            uuid.UUID `json:"id" db:"id"`
	FarmID        uuid.UUID `json:"farm_id" db:"farm_id"`
	RecordedOn    time.Time `json:"recorded_on" db:"recorded_on"`
	Temperature   float64   `json:"temperature" db:"temperature"`
	Precipitation float64   `json:"precipitation" db:"precipitation"`
	Humidity      float64   `json:"humidity" db:"humidity"`
}

type EntryKind string

const (
	EntryRevenue EntryKind = "revenue"
	EntryExpense EntryKind = "expense"
)

type FinancialRecord struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	FarmID    uuid.UUID       `json:"farm_id" db:"farm_id"`
	EntryDate time.Time       `json:"entry_date" db:"entry_date"`
	Kind      EntryKind       `json:"kind" db:"kind"`
	Category  string          `json:"category" db:"category"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
}
