package analytics

import (
	"slices"

	"github.com/samber/lo"

	"github.com/Alijeyrad/agrolytics_backend/internal/telemetry"
)

type SoilAnalyzer interface {
	Analyze(records []telemetry.SoilAnalysis) SoilAnalytics
}

// SoilHealthAnalyzer reduces soil samples to pH and nutrient aggregates.
type SoilHealthAnalyzer struct {
	t Thresholds
}

func NewSoilHealthAnalyzer(t Thresholds) *SoilHealthAnalyzer {
	return &SoilHealthAnalyzer{t: t}
}

func (a *SoilHealthAnalyzer) Analyze(records []telemetry.SoilAnalysis) SoilAnalytics {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(x, y telemetry.SoilAnalysis) int {
		return x.AnalysisDate.Compare(y.AnalysisDate)
	})

	series := func(f func(telemetry.SoilAnalysis) float64) []float64 {
		return lo.Map(sorted, func(r telemetry.SoilAnalysis, _ int) float64 { return f(r) })
	}
	level := func(values []float64) NutrientLevel {
		return NutrientLevel{
			Average: round2(mean(values)),
			Trend:   ComputeTrend(values, a.t.Trend.Soil),
		}
	}

	ph := series(func(r telemetry.SoilAnalysis) float64 { return r.PH })
	organic := series(func(r telemetry.SoilAnalysis) float64 { return r.OrganicMatter })

	return SoilAnalytics{
		AveragePh: round2(mean(ph)),
		PhTrend:   ComputeTrend(ph, a.t.Trend.Soil),
		NutrientLevels: NutrientLevels{
			Nitrogen:   level(series(func(r telemetry.SoilAnalysis) float64 { return r.Nitrogen })),
			Phosphorus: level(series(func(r telemetry.SoilAnalysis) float64 { return r.Phosphorus })),
			Potassium:  level(series(func(r telemetry.SoilAnalysis) float64 { return r.Potassium })),
		},
		AverageOrganicMatter: round2(mean(organic)),
		OrganicMatterTrend:   ComputeTrend(organic, a.t.Trend.Soil),
		HealthDistribution: lo.CountValuesBy(sorted, func(r telemetry.SoilAnalysis) string {
			return string(a.PhClass(r.PH))
		}),
		SampleCount: len(sorted),
	}
}

// PhClass buckets a pH reading; the bands are nested so the narrowest match wins.
func (a *SoilHealthAnalyzer) PhClass(ph float64) HealthStatus {
	r := a.t.Soil
	switch {
	case r.PhExcellent.Contains(ph):
		return HealthExcellent
	case r.PhGood.Contains(ph):
		return HealthGood
	case r.PhFair.Contains(ph):
		return HealthFair
	default:
		return HealthPoor
	}
}
