package report

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/Alijeyrad/agrolytics_backend/internal/analytics"
)

// Details is the view-specific part of a Document. Each report type has
// exactly one variant.
type Details interface {
	ReportType() ReportType
}

type ComprehensiveDetails struct {
	OverallHealth      analytics.HealthAssessment `json:"overallHealth"`
	YieldProjection    analytics.YieldProjection  `json:"yieldProjection"`
	WeatherImpactScore float64                    `json:"weatherImpactScore"`
}

type FieldSummary struct {
	ID               uuid.UUID                  `json:"id"`
	Name             string                     `json:"name"`
	AreaHectares     float64                    `json:"area"`
	CropType         string                     `json:"cropType"`
	IrrigationType   string                     `json:"irrigationType"`
	SoilScore        float64                    `json:"soilScore"`
	CropScore        float64                    `json:"cropScore"`
	OverallHealth    analytics.HealthAssessment `json:"overallHealth"`
	SoilSamples      int                        `json:"soilSamples"`
	CropObservations int                        `json:"cropObservations"`
}

type FarmSummaryDetails struct {
	Farm   FarmReport     `json:"farm"`
	Fields []FieldSummary `json:"fields"`
}

// FieldScore is one field's average score for a single domain.
type FieldScore struct {
	FieldID   uuid.UUID `json:"fieldId"`
	FieldName string    `json:"fieldName"`
	Score     float64   `json:"score"`
	Records   int       `json:"records"`
}

type SoilDetails struct {
	AverageSoilScore float64      `json:"averageSoilScore"`
	Fields           []FieldScore `json:"fields"`
}

type CropDetails struct {
	AverageCropScore float64      `json:"averageCropScore"`
	Fields           []FieldScore `json:"fields"`
}

type WeatherDetails struct {
	ImpactScore  float64          `json:"impactScore"`
	ImpactOnCrop analytics.Impact `json:"impactOnCrops"`
}

type IrrigationDetails struct {
	TotalWaterUsage float64                     `json:"totalWaterUsage"`
	Fields          []analytics.FieldWaterUsage `json:"fields"`
}

type YieldDetails struct {
	Overall analytics.YieldProjection            `json:"overall"`
	ByCrop  map[string]analytics.YieldProjection `json:"byCrop"`
}

type FinancialDetails struct {
	NetProfitPerHectare float64         `json:"netProfitPerHectare"`
	ProfitMargin        float64         `json:"profitMargin"`
	ProfitTrend         analytics.Trend `json:"profitTrend"`
}

func (ComprehensiveDetails) ReportType() ReportType { return TypeComprehensive }
func (FarmSummaryDetails) ReportType() ReportType   { return TypeFarmSummary }
func (SoilDetails) ReportType() ReportType          { return TypeSoilAnalysis }
func (CropDetails) ReportType() ReportType          { return TypeCropMonitoring }
func (WeatherDetails) ReportType() ReportType       { return TypeWeatherAnalysis }
func (IrrigationDetails) ReportType() ReportType    { return TypeIrrigationEfficiency }
func (YieldDetails) ReportType() ReportType         { return TypeYieldPrediction }
func (FinancialDetails) ReportType() ReportType     { return TypeFinancialSummary }

func decodeDetails(t ReportType, raw json.RawMessage) (Details, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	switch t {
	case TypeComprehensive:
		return decodeAs[ComprehensiveDetails](raw)
	case TypeFarmSummary:
		return decodeAs[FarmSummaryDetails](raw)
	case TypeSoilAnalysis:
		return decodeAs[SoilDetails](raw)
	case TypeCropMonitoring:
		return decodeAs[CropDetails](raw)
	case TypeWeatherAnalysis:
		return decodeAs[WeatherDetails](raw)
	case TypeIrrigationEfficiency:
		return decodeAs[IrrigationDetails](raw)
	case TypeYieldPrediction:
		return decodeAs[YieldDetails](raw)
	case TypeFinancialSummary:
		return decodeAs[FinancialDetails](raw)
	default:
		return nil, fmt.Errorf("unknown report type %q", t)
	}
}

func decodeAs[T Details](raw json.RawMessage) (Details, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}
