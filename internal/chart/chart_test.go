package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/agrolytics_backend/internal/analytics"
)

func TestDistribution_SortsLabels(t *testing.T) {
	c := Distribution(TypePie, "Systems", "fields", map[string]int{"sprinkler": 2, "drip": 1, "flood": 4})

	assert.Equal(t, TypePie, c.Type)
	assert.Equal(t, []string{"drip", "flood", "sprinkler"}, c.Labels)
	require.Len(t, c.Series, 1)
	assert.Equal(t, []float64{1, 4, 2}, c.Series[0].Data)
}

func TestDistribution_EmptyMap(t *testing.T) {
	c := Distribution(TypePie, "Empty", "n", map[string]int{})

	assert.Empty(t, c.Labels)
	require.Len(t, c.Series, 1)
	assert.Empty(t, c.Series[0].Data)
}

func TestGrowthStages_FixedOrderWithZeros(t *testing.T) {
	c := GrowthStages(analytics.CropAnalytics{GrowthStages: map[string]int{"maturity": 3, "dormant": 1}})

	assert.Equal(t, []string{"dormant", "emergence", "vegetative", "reproductive", "maturity"}, c.Labels)
	assert.Equal(t, []float64{1, 0, 0, 0, 3}, c.Series[0].Data)
}

func TestYieldScenarios(t *testing.T) {
	c := YieldScenarios(analytics.YieldProjection{Optimistic: 6000, Realistic: 5000, Pessimistic: 4000, Unit: "kg"})

	assert.Equal(t, "Yield projection (kg)", c.Title)
	assert.Equal(t, []float64{4000, 5000, 6000}, c.Series[0].Data)
}

func TestSeriesMatchLabels(t *testing.T) {
	charts := []Chart{
		SoilNutrients(analytics.SoilAnalytics{}),
		WeatherEvents(analytics.WeatherAnalytics{HeatWaveDays: 2}),
		FieldWaterUsage(analytics.IrrigationAnalytics{FieldUsage: []analytics.FieldWaterUsage{
			{FieldName: "north", LitersPerDay: 30, Efficiency: 90},
			{FieldName: "south", LitersPerDay: 60, Efficiency: 60},
		}}),
		CostBreakdown(analytics.FinancialAnalytics{CostBreakdown: map[string]float64{"seed": 10, "labor": 20}}),
		HealthScores("Farms", []ScorePoint{{Label: "a", Soil: 70, Crop: 50}}),
	}

	for _, c := range charts {
		for _, s := range c.Series {
			assert.Len(t, s.Data, len(c.Labels), "chart %q series %q", c.Title, s.Name)
		}
	}
}
