package analytics

import (
	"strings"

	"github.com/samber/lo"

	"github.com/Alijeyrad/agrolytics_backend/internal/telemetry"
)

const unknownLabel = "unknown"

type CropAnalyzer interface {
	Analyze(records []telemetry.CropObservation, areaHectares float64) CropAnalytics
}

// CropPerformanceAnalyzer reduces vegetation-index observations.
type CropPerformanceAnalyzer struct {
	t         Thresholds
	projector *YieldProjector
}

func NewCropPerformanceAnalyzer(t Thresholds, projector *YieldProjector) *CropPerformanceAnalyzer {
	return &CropPerformanceAnalyzer{t: t, projector: projector}
}

// Analyze takes the total cultivated area of the scope so the yield
// projection covers every field, observed or not.
func (a *CropPerformanceAnalyzer) Analyze(records []telemetry.CropObservation, areaHectares float64) CropAnalytics {
	avgNDVI := meanBy(records, func(r telemetry.CropObservation) float64 { return ClampIndex(r.NDVI) })

	return CropAnalytics{
		AverageNDVI: round3(avgNDVI),
		AverageEVI:  round3(meanBy(records, func(r telemetry.CropObservation) float64 { return ClampIndex(r.EVI) })),
		AverageNDWI: round3(meanBy(records, func(r telemetry.CropObservation) float64 { return ClampIndex(r.NDWI) })),
		HealthDistribution: lo.CountValuesBy(records, func(r telemetry.CropObservation) string {
			status := strings.ToLower(strings.TrimSpace(r.HealthStatus))
			if status == "" {
				return unknownLabel
			}
			return status
		}),
		GrowthStages: lo.CountValuesBy(records, func(r telemetry.CropObservation) string {
			return string(a.GrowthStage(r.NDVI))
		}),
		YieldProjections: a.projector.Project(avgNDVI, areaHectares, len(records)),
		ObservationCount: len(records),
	}
}

func (a *CropPerformanceAnalyzer) GrowthStage(ndvi float64) GrowthStage {
	v := ClampIndex(ndvi)
	for _, b := range a.t.Crop.GrowthStages {
		if v < b.Below {
			return b.Stage
		}
	}
	return StageMaturity
}
