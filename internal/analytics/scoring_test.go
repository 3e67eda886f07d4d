package analytics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alijeyrad/agrolytics_backend/internal/telemetry"
)

func TestScorer_SoilHealthScore(t *testing.T) {
	s := NewScorer(DefaultThresholds())

	tests := []struct {
		name string
		ph   float64
		om   float64
		want float64
	}{
		{"excellent ph rich soil", 7.0, 3.5, 100},
		{"good ph mid organic", 6.2, 2.0, 85},
		{"fair ph low organic", 5.6, 1.0, 70},
		{"poor ph no organic", 4.0, 0.2, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.SoilHealthScore(telemetry.SoilAnalysis{PH: tt.ph, OrganicMatter: tt.om})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScorer_CropHealthScore(t *testing.T) {
	s := NewScorer(DefaultThresholds())

	tests := []struct {
		ndvi float64
		want float64
	}{
		{0.75, 90},
		{0.55, 70},
		{0.35, 50},
		{0.15, 30},
		{0.05, 10},
		{-0.8, 10},
		{3.0, 90},
		{math.NaN(), 10},
	}

	for _, tt := range tests {
		got := s.CropHealthScore(telemetry.CropObservation{NDVI: tt.ndvi})
		assert.Equal(t, tt.want, got, "ndvi %v", tt.ndvi)
	}
}

func TestScorer_AveragesOnEmptyInput(t *testing.T) {
	s := NewScorer(DefaultThresholds())

	assert.Zero(t, s.AverageSoilScore(nil))
	assert.Zero(t, s.AverageCropScore(nil))
}

func TestScorer_OverallHealth(t *testing.T) {
	s := NewScorer(DefaultThresholds())

	tests := []struct {
		soil, crop float64
		want       HealthStatus
	}{
		{100, 90, HealthExcellent},
		{70, 50, HealthGood},
		{50, 30, HealthFair},
		{30, 10, HealthPoor},
		{10, 10, HealthCritical},
		{0, 0, HealthCritical},
	}

	for _, tt := range tests {
		got := s.OverallHealth(tt.soil, tt.crop)
		assert.Equal(t, tt.want, got.Status, "soil=%v crop=%v", tt.soil, tt.crop)
		assert.GreaterOrEqual(t, got.Score, 0.0)
		assert.LessOrEqual(t, got.Score, 100.0)
	}
}

func TestScorer_WeatherImpactScore(t *testing.T) {
	s := NewScorer(DefaultThresholds())

	tests := []struct {
		name                string
		temp, precip, humid float64
		want                float64
	}{
		{"ideal", 20, 100, 55, 100},
		{"acceptable", 28, 180, 75, 70},
		{"hostile", 40, 5, 95, 0},
		{"cold and wet", 2, 400, 10, 0},
		{"neutral gap", 32, 20, 30, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.WeatherImpactScore(tt.temp, tt.precip, tt.humid)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 100.0)
		})
	}
}
