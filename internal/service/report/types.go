package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Alijeyrad/agrolytics_backend/internal/analytics"
	"github.com/Alijeyrad/agrolytics_backend/internal/chart"
	"github.com/Alijeyrad/agrolytics_backend/internal/recommendation"
)

// ---------------------------------------------------------------------------
// Report types
// ---------------------------------------------------------------------------

type ReportType string

const (
	TypeComprehensive        ReportType = "comprehensive"
	TypeFarmSummary          ReportType = "farm_summary"
	TypeSoilAnalysis         ReportType = "soil_analysis"
	TypeCropMonitoring       ReportType = "crop_monitoring"
	TypeWeatherAnalysis      ReportType = "weather_analysis"
	TypeIrrigationEfficiency ReportType = "irrigation_efficiency"
	TypeYieldPrediction      ReportType = "yield_prediction"
	TypeFinancialSummary     ReportType = "financial_summary"
)

// ReportTypes lists every supported view.
var ReportTypes = []ReportType{
	TypeComprehensive,
	TypeFarmSummary,
	TypeSoilAnalysis,
	TypeCropMonitoring,
	TypeWeatherAnalysis,
	TypeIrrigationEfficiency,
	TypeYieldPrediction,
	TypeFinancialSummary,
}

func (t ReportType) Valid() bool {
	for _, rt := range ReportTypes {
		if t == rt {
			return true
		}
	}
	return false
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// Request is the raw generation request. Dates are YYYY-MM-DD or RFC3339.
type Request struct {
	UserID     string   `json:"userId" validate:"required"`
	ReportType string   `json:"reportType" validate:"required"`
	StartDate  string   `json:"startDate" validate:"required"`
	EndDate    string   `json:"endDate" validate:"required"`
	FarmIDs    []string `json:"farmIds,omitempty" validate:"omitempty,dive,uuid"`
	Title      string   `json:"title,omitempty" validate:"max=200"`
	Options    Options  `json:"options,omitempty"`
}

type Options struct {
	// IncludeCharts defaults to true.
	IncludeCharts *bool `json:"includeCharts,omitempty"`
}

func (o Options) charts() bool {
	return o.IncludeCharts == nil || *o.IncludeCharts
}

// Report is a persisted report as returned to callers.
type Report struct {
	ID        uuid.UUID  `json:"id"`
	UserID    string     `json:"-"`
	Title     string     `json:"title"`
	Type      ReportType `json:"type"`
	Data      Document   `json:"data"`
	CreatedAt time.Time  `json:"createdAt"`
}

// ---------------------------------------------------------------------------
// Document
// ---------------------------------------------------------------------------

// Document is the full report body. The envelope is shared by every view;
// Details carries the view-specific part.
type Document struct {
	ReportType        ReportType                     `json:"reportType"`
	Summary           Summary                        `json:"summary"`
	Farms             []FarmReport                   `json:"farms"`
	Analytics         Analytics                      `json:"analytics"`
	Recommendations   recommendation.Recommendations `json:"recommendations"`
	Charts            []chart.Chart                  `json:"charts"`
	Details           Details                        `json:"details"`
	DegradedDomains   []string                       `json:"degradedDomains,omitempty"`
	ThresholdsVersion string                         `json:"thresholdsVersion"`
}

type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Summary struct {
	TotalFarms  int       `json:"totalFarms"`
	TotalFields int       `json:"totalFields"`
	TotalArea   float64   `json:"totalArea"`
	Period      Period    `json:"period"`
	GeneratedAt time.Time `json:"generatedAt"`
}

type FarmReport struct {
	ID                 uuid.UUID                  `json:"id"`
	Name               string                     `json:"name"`
	AreaHectares       float64                    `json:"area"`
	FieldCount         int                        `json:"fieldCount"`
	SoilScore          float64                    `json:"soilScore"`
	CropScore          float64                    `json:"cropScore"`
	OverallHealth      analytics.HealthAssessment `json:"overallHealth"`
	WeatherImpactScore float64                    `json:"weatherImpactScore"`
}

// Analytics always serializes the four agronomic domains; a domain the view
// did not compute is written as {}. Financial appears only when computed.
type Analytics struct {
	Soil       *analytics.SoilAnalytics
	Crop       *analytics.CropAnalytics
	Weather    *analytics.WeatherAnalytics
	Irrigation *analytics.IrrigationAnalytics
	Financial  *analytics.FinancialAnalytics
}

type analyticsJSON struct {
	Soil       any `json:"soil"`
	Crop       any `json:"crop"`
	Weather    any `json:"weather"`
	Irrigation any `json:"irrigation"`
	Financial  any `json:"financial,omitempty"`
}

func orEmpty[T any](v *T) any {
	if v == nil {
		return struct{}{}
	}
	return v
}

func (a Analytics) MarshalJSON() ([]byte, error) {
	out := analyticsJSON{
		Soil:       orEmpty(a.Soil),
		Crop:       orEmpty(a.Crop),
		Weather:    orEmpty(a.Weather),
		Irrigation: orEmpty(a.Irrigation),
	}
	if a.Financial != nil {
		out.Financial = a.Financial
	}
	return json.Marshal(out)
}

func (a *Analytics) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var err error
	if a.Soil, err = decodeDomain[analytics.SoilAnalytics](raw["soil"]); err != nil {
		return fmt.Errorf("soil: %w", err)
	}
	if a.Crop, err = decodeDomain[analytics.CropAnalytics](raw["crop"]); err != nil {
		return fmt.Errorf("crop: %w", err)
	}
	if a.Weather, err = decodeDomain[analytics.WeatherAnalytics](raw["weather"]); err != nil {
		return fmt.Errorf("weather: %w", err)
	}
	if a.Irrigation, err = decodeDomain[analytics.IrrigationAnalytics](raw["irrigation"]); err != nil {
		return fmt.Errorf("irrigation: %w", err)
	}
	if a.Financial, err = decodeDomain[analytics.FinancialAnalytics](raw["financial"]); err != nil {
		return fmt.Errorf("financial: %w", err)
	}
	return nil
}

// decodeDomain returns nil for a missing, null or empty-object domain.
func decodeDomain[T any](raw json.RawMessage) (*T, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, err
	}
	if len(probe) == 0 {
		return nil, nil
	}
	v := new(T)
	if err := json.Unmarshal(raw, v); err != nil {
		return nil, err
	}
	return v, nil
}

// UnmarshalJSON restores the concrete Details variant from reportType.
func (d *Document) UnmarshalJSON(data []byte) error {
	type plain Document
	aux := struct {
		*plain
		Details json.RawMessage `json:"details"`
	}{plain: (*plain)(d)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	details, err := decodeDetails(d.ReportType, aux.Details)
	if err != nil {
		return fmt.Errorf("details: %w", err)
	}
	d.Details = details
	return nil
}
