package analytics

import (
	"strings"

	"github.com/samber/lo"

	"github.com/Alijeyrad/agrolytics_backend/internal/telemetry"
)

type IrrigationAnalyzer interface {
	Analyze(fields []telemetry.Field) IrrigationAnalytics
}

// IrrigationEfficiencyAnalyzer estimates efficiency and water usage from each
// field's configured irrigation system.
type IrrigationEfficiencyAnalyzer struct {
	r IrrigationRules
}

func NewIrrigationEfficiencyAnalyzer(t Thresholds) *IrrigationEfficiencyAnalyzer {
	return &IrrigationEfficiencyAnalyzer{r: t.Irrigation}
}

func (a *IrrigationEfficiencyAnalyzer) Analyze(fields []telemetry.Field) IrrigationAnalytics {
	usage := lo.Map(fields, func(f telemetry.Field, _ int) FieldWaterUsage {
		system := normalizeSystem(f.IrrigationType)
		return FieldWaterUsage{
			FieldID:        f.ID.String(),
			FieldName:      f.Name,
			IrrigationType: system,
			AreaHectares:   Finite(f.AreaHectares),
			Efficiency:     a.Efficiency(system),
			LitersPerDay:   round2(a.WaterUsage(f)),
		}
	})

	return IrrigationAnalytics{
		AverageEfficiency:  round2(meanBy(usage, func(u FieldWaterUsage) float64 { return u.Efficiency })),
		TotalWaterUsage:    round2(SumBy(usage, func(u FieldWaterUsage) float64 { return u.LitersPerDay })),
		WaterUsageTrend:    TrendStable,
		SystemDistribution: lo.CountValuesBy(usage, func(u FieldWaterUsage) string { return u.IrrigationType }),
		FieldUsage:         usage,
	}
}

func (a *IrrigationEfficiencyAnalyzer) Efficiency(system string) float64 {
	if e, ok := a.r.Efficiency[normalizeSystem(system)]; ok {
		return e
	}
	return a.r.DefaultEfficiency
}

// WaterUsage is liters per day: area x base rate x system multiplier.
func (a *IrrigationEfficiencyAnalyzer) WaterUsage(f telemetry.Field) float64 {
	multiplier, ok := a.r.WaterMultiplier[normalizeSystem(f.IrrigationType)]
	if !ok {
		multiplier = a.r.DefaultMultiplier
	}
	return Finite(f.AreaHectares) * a.r.LitersPerHectarePerDay * multiplier
}

func normalizeSystem(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return unknownLabel
	}
	return s
}
