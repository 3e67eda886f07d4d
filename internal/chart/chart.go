// Package chart converts analytics into renderer-agnostic chart descriptors.
package chart

import (
	"slices"

	"github.com/samber/lo"

	"github.com/Alijeyrad/agrolytics_backend/internal/analytics"
)

type Type string

const (
	TypeBar  Type = "bar"
	TypeLine Type = "line"
	TypePie  Type = "pie"
)

type Series struct {
	Name string    `json:"name"`
	Data []float64 `json:"data"`
}

// Chart is one visualization. len(Series[i].Data) == len(Labels) for every series.
type Chart struct {
	Type   Type     `json:"type"`
	Title  string   `json:"title"`
	Labels []string `json:"labels"`
	Series []Series `json:"series"`
}

// Distribution renders a label->count map with labels in lexical order so
// output is stable across runs.
func Distribution(kind Type, title, seriesName string, counts map[string]int) Chart {
	labels := lo.Keys(counts)
	slices.Sort(labels)

	return Chart{
		Type:   kind,
		Title:  title,
		Labels: labels,
		Series: []Series{{
			Name: seriesName,
			Data: lo.Map(labels, func(l string, _ int) float64 { return float64(counts[l]) }),
		}},
	}
}

func SoilNutrients(s analytics.SoilAnalytics) Chart {
	return Chart{
		Type:   TypeBar,
		Title:  "Average soil nutrients (ppm)",
		Labels: []string{"nitrogen", "phosphorus", "potassium"},
		Series: []Series{{
			Name: "average",
			Data: []float64{
				s.NutrientLevels.Nitrogen.Average,
				s.NutrientLevels.Phosphorus.Average,
				s.NutrientLevels.Potassium.Average,
			},
		}},
	}
}

func SoilHealth(s analytics.SoilAnalytics) Chart {
	return Distribution(TypePie, "Soil pH health distribution", "samples", s.HealthDistribution)
}

var stageOrder = []analytics.GrowthStage{
	analytics.StageDormant,
	analytics.StageEmergence,
	analytics.StageVegetative,
	analytics.StageReproductive,
	analytics.StageMaturity,
}

// GrowthStages keeps the agronomic stage order and includes zero counts.
func GrowthStages(c analytics.CropAnalytics) Chart {
	labels := lo.Map(stageOrder, func(s analytics.GrowthStage, _ int) string { return string(s) })
	return Chart{
		Type:   TypeBar,
		Title:  "Growth stage distribution",
		Labels: labels,
		Series: []Series{{
			Name: "observations",
			Data: lo.Map(labels, func(l string, _ int) float64 { return float64(c.GrowthStages[l]) }),
		}},
	}
}

func CropHealth(c analytics.CropAnalytics) Chart {
	return Distribution(TypePie, "Crop health distribution", "observations", c.HealthDistribution)
}

func YieldScenarios(y analytics.YieldProjection) Chart {
	return Chart{
		Type:   TypeBar,
		Title:  "Yield projection (" + y.Unit + ")",
		Labels: []string{"pessimistic", "realistic", "optimistic"},
		Series: []Series{{
			Name: "yield",
			Data: []float64{y.Pessimistic, y.Realistic, y.Optimistic},
		}},
	}
}

func WeatherEvents(w analytics.WeatherAnalytics) Chart {
	return Chart{
		Type:   TypeBar,
		Title:  "Extreme weather days",
		Labels: []string{"heat", "cold", "heavyRain"},
		Series: []Series{{
			Name: "days",
			Data: []float64{float64(w.HeatWaveDays), float64(w.ColdDays), float64(w.HeavyRainDays)},
		}},
	}
}

func IrrigationSystems(i analytics.IrrigationAnalytics) Chart {
	return Distribution(TypePie, "Irrigation systems", "fields", i.SystemDistribution)
}

func FieldWaterUsage(i analytics.IrrigationAnalytics) Chart {
	return Chart{
		Type:   TypeBar,
		Title:  "Estimated water usage per field (liters/day)",
		Labels: lo.Map(i.FieldUsage, func(u analytics.FieldWaterUsage, _ int) string { return u.FieldName }),
		Series: []Series{
			{Name: "litersPerDay", Data: lo.Map(i.FieldUsage, func(u analytics.FieldWaterUsage, _ int) float64 { return u.LitersPerDay })},
			{Name: "efficiency", Data: lo.Map(i.FieldUsage, func(u analytics.FieldWaterUsage, _ int) float64 { return u.Efficiency })},
		},
	}
}

func CostBreakdown(f analytics.FinancialAnalytics) Chart {
	labels := lo.Keys(f.CostBreakdown)
	slices.Sort(labels)

	return Chart{
		Type:   TypePie,
		Title:  "Cost breakdown",
		Labels: labels,
		Series: []Series{{
			Name: "costs",
			Data: lo.Map(labels, func(l string, _ int) float64 { return f.CostBreakdown[l] }),
		}},
	}
}

// ScorePoint is one labelled group of health scores.
type ScorePoint struct {
	Label string
	Soil  float64
	Crop  float64
}

func HealthScores(title string, points []ScorePoint) Chart {
	return Chart{
		Type:   TypeBar,
		Title:  title,
		Labels: lo.Map(points, func(p ScorePoint, _ int) string { return p.Label }),
		Series: []Series{
			{Name: "soil", Data: lo.Map(points, func(p ScorePoint, _ int) float64 { return p.Soil })},
			{Name: "crop", Data: lo.Map(points, func(p ScorePoint, _ int) float64 { return p.Crop })},
		},
	}
}
