// Package recommendation turns computed analytics into tiered action lists.
package recommendation

import (
	"github.com/samber/lo"

	"github.com/Alijeyrad/agrolytics_backend/internal/analytics"
)

type Tier string

const (
	TierImmediate Tier = "immediate"
	TierShortTerm Tier = "shortTerm"
	TierLongTerm  Tier = "longTerm"
)

// Recommendations always marshals all three tiers as arrays.
type Recommendations struct {
	Immediate []string `json:"immediate"`
	ShortTerm []string `json:"shortTerm"`
	LongTerm  []string `json:"longTerm"`
}

func Empty() Recommendations {
	return Recommendations{
		Immediate: []string{},
		ShortTerm: []string{},
		LongTerm:  []string{},
	}
}

func (r *Recommendations) add(tier Tier, action string) {
	switch tier {
	case TierImmediate:
		r.Immediate = append(r.Immediate, action)
	case TierShortTerm:
		r.ShortTerm = append(r.ShortTerm, action)
	case TierLongTerm:
		r.LongTerm = append(r.LongTerm, action)
	}
}

// Total is the number of actions across all tiers.
func (r Recommendations) Total() int {
	return len(r.Immediate) + len(r.ShortTerm) + len(r.LongTerm)
}

// Input carries whichever analytics a report view computed. Nil domains are
// not evaluated.
type Input struct {
	Soil       *analytics.SoilAnalytics
	Crop       *analytics.CropAnalytics
	Weather    *analytics.WeatherAnalytics
	Irrigation *analytics.IrrigationAnalytics
	Yield      *analytics.YieldProjection
	Financial  *analytics.FinancialAnalytics
}

type Engine interface {
	Generate(in Input) Recommendations
}

type RuleEngine struct {
	r analytics.RecommendationRules
}

func NewRuleEngine(t analytics.Thresholds) *RuleEngine {
	return &RuleEngine{r: t.Recommendation}
}

var _ Engine = (*RuleEngine)(nil)

func (e *RuleEngine) Generate(in Input) Recommendations {
	out := Empty()

	if in.Soil != nil && in.Soil.SampleCount > 0 {
		e.soil(&out, in.Soil)
	}
	if in.Crop != nil && in.Crop.ObservationCount > 0 {
		e.crop(&out, in.Crop)
	}
	if in.Weather != nil && in.Weather.RecordCount > 0 {
		e.weather(&out, in.Weather)
	}
	if in.Irrigation != nil && len(in.Irrigation.FieldUsage) > 0 {
		e.irrigation(&out, in.Irrigation)
	}
	if in.Yield != nil {
		e.yield(&out, in.Yield)
	}
	if in.Financial != nil && in.Financial.EntryCount > 0 {
		e.financial(&out, in.Financial)
	}

	out.Immediate = lo.Uniq(out.Immediate)
	out.ShortTerm = lo.Uniq(out.ShortTerm)
	out.LongTerm = lo.Uniq(out.LongTerm)
	return out
}

func (e *RuleEngine) soil(out *Recommendations, s *analytics.SoilAnalytics) {
	if s.AveragePh < e.r.AcidicPh {
		out.add(TierImmediate, ActionApplyLime)
	}
	if s.AveragePh > e.r.AlkalinePh {
		out.add(TierShortTerm, ActionApplySulfur)
	}
	if s.NutrientLevels.Nitrogen.Average < e.r.LowNitrogen {
		out.add(TierShortTerm, ActionNitrogen)
	}
	if s.NutrientLevels.Phosphorus.Average < e.r.LowPhosphorus {
		out.add(TierShortTerm, ActionPhosphorus)
	}
	if s.NutrientLevels.Potassium.Average < e.r.LowPotassium {
		out.add(TierShortTerm, ActionPotassium)
	}
}

func (e *RuleEngine) crop(out *Recommendations, c *analytics.CropAnalytics) {
	if c.AverageNDVI < e.r.CriticalNDVI {
		out.add(TierImmediate, ActionInvestigateCrop)
	}
	if c.AverageNDVI < e.r.LowNDVI {
		out.add(TierShortTerm, ActionMonitorCrop)
	}
}

func (e *RuleEngine) weather(out *Recommendations, w *analytics.WeatherAnalytics) {
	if w.HeatWaveDays > e.r.HeatWaveDays {
		out.add(TierImmediate, ActionHeatStress)
	}
	if w.HeavyRainDays > e.r.HeavyRainDays {
		out.add(TierImmediate, ActionDrainage)
	}
	if w.TemperatureTrend == analytics.TrendIncreasing {
		out.add(TierShortTerm, ActionPlanIrrigation)
	}
	if w.TotalPrecipitation < e.r.DroughtPrecip {
		out.add(TierShortTerm, ActionDroughtVarieties)
	}
	if w.ImpactOnCrops == analytics.ImpactNegative {
		out.add(TierImmediate, ActionProtectCrops)
	}
}

func (e *RuleEngine) irrigation(out *Recommendations, i *analytics.IrrigationAnalytics) {
	if i.AverageEfficiency < e.r.CriticalEfficiency {
		out.add(TierImmediate, ActionUpgradeIrrigation)
	}
	if i.AverageEfficiency < e.r.LowEfficiency {
		out.add(TierShortTerm, ActionIrrigationSchedule)
	}
	out.add(TierLongTerm, ActionSmartIrrigation)
}

func (e *RuleEngine) yield(out *Recommendations, y *analytics.YieldProjection) {
	if y.Confidence < e.r.LowConfidence {
		out.add(TierShortTerm, ActionCollectData)
	}
	if y.Realistic < y.Optimistic*e.r.YieldGapRatio {
		out.add(TierLongTerm, ActionOptimizePractices)
	}
}

func (e *RuleEngine) financial(out *Recommendations, f *analytics.FinancialAnalytics) {
	if f.ProfitMargin < e.r.LowMarginPercent {
		out.add(TierImmediate, ActionReviewCosts)
	}
	if f.CostPerHectare > e.r.HighCostPerHectare {
		out.add(TierShortTerm, ActionInputPricing)
	}
	if f.ProfitTrend == analytics.TrendIncreasing {
		out.add(TierLongTerm, ActionExpansion)
	}
}
