package recommendation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/agrolytics_backend/internal/analytics"
)

func newEngine() *RuleEngine {
	return NewRuleEngine(analytics.DefaultThresholds())
}

func healthySoil() *analytics.SoilAnalytics {
	return &analytics.SoilAnalytics{
		AveragePh: 6.8,
		NutrientLevels: analytics.NutrientLevels{
			Nitrogen:   analytics.NutrientLevel{Average: 30},
			Phosphorus: analytics.NutrientLevel{Average: 25},
			Potassium:  analytics.NutrientLevel{Average: 180},
		},
		SampleCount: 4,
	}
}

func irrigationWith(efficiency float64) *analytics.IrrigationAnalytics {
	return &analytics.IrrigationAnalytics{
		AverageEfficiency: efficiency,
		FieldUsage:        []analytics.FieldWaterUsage{{FieldName: "A1", Efficiency: efficiency}},
	}
}

func TestGenerate_EmptyInputYieldsEmptyArrays(t *testing.T) {
	got := newEngine().Generate(Input{})

	require.NotNil(t, got.Immediate)
	require.NotNil(t, got.ShortTerm)
	require.NotNil(t, got.LongTerm)
	assert.Zero(t, got.Total())

	raw, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"immediate":[],"shortTerm":[],"longTerm":[]}`, string(raw))
}

func TestGenerate_Soil(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(s *analytics.SoilAnalytics)
		immediate []string
		shortTerm []string
	}{
		{
			name:      "healthy soil",
			mutate:    func(*analytics.SoilAnalytics) {},
			immediate: []string{},
			shortTerm: []string{},
		},
		{
			name:      "acidic",
			mutate:    func(s *analytics.SoilAnalytics) { s.AveragePh = 5.2 },
			immediate: []string{ActionApplyLime},
			shortTerm: []string{},
		},
		{
			name:      "alkaline",
			mutate:    func(s *analytics.SoilAnalytics) { s.AveragePh = 8.4 },
			immediate: []string{},
			shortTerm: []string{ActionApplySulfur},
		},
		{
			name: "all nutrients low",
			mutate: func(s *analytics.SoilAnalytics) {
				s.NutrientLevels.Nitrogen.Average = 10
				s.NutrientLevels.Phosphorus.Average = 5
				s.NutrientLevels.Potassium.Average = 60
			},
			immediate: []string{},
			shortTerm: []string{ActionNitrogen, ActionPhosphorus, ActionPotassium},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			soil := healthySoil()
			tt.mutate(soil)

			got := newEngine().Generate(Input{Soil: soil})

			assert.Equal(t, tt.immediate, got.Immediate)
			assert.Equal(t, tt.shortTerm, got.ShortTerm)
			assert.Empty(t, got.LongTerm)
		})
	}
}

func TestGenerate_SoilWithoutSamplesIsSkipped(t *testing.T) {
	// Zero averages from an empty sample set are missing data, not a deficiency.
	got := newEngine().Generate(Input{Soil: &analytics.SoilAnalytics{}})

	assert.Zero(t, got.Total())
}

func TestGenerate_Crop(t *testing.T) {
	e := newEngine()

	critical := e.Generate(Input{Crop: &analytics.CropAnalytics{AverageNDVI: 0.2, ObservationCount: 3}})
	assert.Equal(t, []string{ActionInvestigateCrop}, critical.Immediate)
	assert.Equal(t, []string{ActionMonitorCrop}, critical.ShortTerm)

	low := e.Generate(Input{Crop: &analytics.CropAnalytics{AverageNDVI: 0.45, ObservationCount: 3}})
	assert.Empty(t, low.Immediate)
	assert.Equal(t, []string{ActionMonitorCrop}, low.ShortTerm)

	fine := e.Generate(Input{Crop: &analytics.CropAnalytics{AverageNDVI: 0.7, ObservationCount: 3}})
	assert.Zero(t, fine.Total())
}

func TestGenerate_HeatWaveScenario(t *testing.T) {
	got := newEngine().Generate(Input{Weather: &analytics.WeatherAnalytics{
		AvgTemperature:       31,
		TotalPrecipitation:   20,
		ExtremeWeatherEvents: 6,
		HeatWaveDays:         6,
		TemperatureTrend:     analytics.TrendIncreasing,
		ImpactOnCrops:        analytics.ImpactNegative,
		RecordCount:          10,
	}})

	assert.Equal(t, []string{ActionHeatStress, ActionProtectCrops}, got.Immediate)
	assert.Equal(t, []string{ActionPlanIrrigation, ActionDroughtVarieties}, got.ShortTerm)
}

func TestGenerate_HeavyRain(t *testing.T) {
	got := newEngine().Generate(Input{Weather: &analytics.WeatherAnalytics{
		TotalPrecipitation: 260,
		HeavyRainDays:      4,
		ImpactOnCrops:      analytics.ImpactNegative,
		RecordCount:        12,
	}})

	assert.Equal(t, []string{ActionDrainage, ActionProtectCrops}, got.Immediate)
	assert.Empty(t, got.ShortTerm)
}

func TestGenerate_Irrigation(t *testing.T) {
	tests := []struct {
		efficiency float64
		immediate  []string
		shortTerm  []string
	}{
		{50, []string{ActionUpgradeIrrigation}, []string{ActionIrrigationSchedule}},
		{75, []string{}, []string{ActionIrrigationSchedule}},
		{90, []string{}, []string{}},
	}

	for _, tt := range tests {
		got := newEngine().Generate(Input{Irrigation: irrigationWith(tt.efficiency)})

		assert.Equal(t, tt.immediate, got.Immediate, "efficiency %v", tt.efficiency)
		assert.Equal(t, tt.shortTerm, got.ShortTerm, "efficiency %v", tt.efficiency)
		assert.Equal(t, []string{ActionSmartIrrigation}, got.LongTerm)
	}
}

func TestGenerate_IrrigationAndFinancialWithoutDataAreSkipped(t *testing.T) {
	got := newEngine().Generate(Input{
		Irrigation: &analytics.IrrigationAnalytics{SystemDistribution: map[string]int{}},
		Financial:  &analytics.FinancialAnalytics{},
	})

	assert.Zero(t, got.Total())
	assert.Equal(t, []string{}, got.Immediate)
	assert.Equal(t, []string{}, got.LongTerm)
}

func TestGenerate_Yield(t *testing.T) {
	e := newEngine()

	got := e.Generate(Input{Yield: &analytics.YieldProjection{Optimistic: 1000, Realistic: 700, Pessimistic: 500, Confidence: 60}})
	assert.Equal(t, []string{ActionCollectData}, got.ShortTerm)
	assert.Equal(t, []string{ActionOptimizePractices}, got.LongTerm)

	got = e.Generate(Input{Yield: &analytics.YieldProjection{Optimistic: 1200, Realistic: 1000, Pessimistic: 800, Confidence: 90}})
	assert.Zero(t, got.Total())
}

func TestGenerate_Financial(t *testing.T) {
	got := newEngine().Generate(Input{Financial: &analytics.FinancialAnalytics{
		ProfitMargin:   12,
		CostPerHectare: 520,
		ProfitTrend:    analytics.TrendIncreasing,
		EntryCount:     6,
	}})

	assert.Equal(t, []string{ActionReviewCosts}, got.Immediate)
	assert.Equal(t, []string{ActionInputPricing}, got.ShortTerm)
	assert.Equal(t, []string{ActionExpansion}, got.LongTerm)
}

func TestGenerate_AllDomainsKeepTableOrder(t *testing.T) {
	soil := healthySoil()
	soil.AveragePh = 5.0

	got := newEngine().Generate(Input{
		Soil:       soil,
		Crop:       &analytics.CropAnalytics{AverageNDVI: 0.1, ObservationCount: 2},
		Weather:    &analytics.WeatherAnalytics{HeatWaveDays: 7, TotalPrecipitation: 80, ImpactOnCrops: analytics.ImpactNegative, RecordCount: 9},
		Irrigation: irrigationWith(55),
	})

	assert.Equal(t, []string{
		ActionApplyLime,
		ActionInvestigateCrop,
		ActionHeatStress,
		ActionProtectCrops,
		ActionUpgradeIrrigation,
	}, got.Immediate)
	assert.Equal(t, []string{ActionMonitorCrop, ActionIrrigationSchedule}, got.ShortTerm)
	assert.Equal(t, []string{ActionSmartIrrigation}, got.LongTerm)
}
