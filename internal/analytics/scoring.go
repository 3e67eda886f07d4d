package analytics

import (
	"github.com/Alijeyrad/agrolytics_backend/internal/telemetry"
)

// Scorer computes composite 0-100 health scores. All results are clamped.
type Scorer struct {
	t Thresholds
}

func NewScorer(t Thresholds) *Scorer {
	return &Scorer{t: t}
}

func (s *Scorer) SoilHealthScore(rec telemetry.SoilAnalysis) float64 {
	r := s.t.Soil
	score := r.BaseScore

	switch {
	case r.PhExcellent.Contains(rec.PH):
		score += r.PhExcellentBonus
	case r.PhGood.Contains(rec.PH):
		score += r.PhGoodBonus
	case r.PhFair.Contains(rec.PH):
		score += r.PhFairBonus
	}

	score += ladder(r.OrganicMatterBonus, rec.OrganicMatter, 0)

	return ClampScore(score)
}

func (s *Scorer) CropHealthScore(rec telemetry.CropObservation) float64 {
	ndvi := ClampIndex(rec.NDVI)
	return ClampScore(ladder(s.t.Crop.ScoreByNDVI, ndvi, s.t.Crop.ScoreFloor))
}

// AverageSoilScore is the arithmetic mean over records, 0 when there are none.
func (s *Scorer) AverageSoilScore(records []telemetry.SoilAnalysis) float64 {
	return round2(meanBy(records, s.SoilHealthScore))
}

// AverageCropScore is the arithmetic mean over records, 0 when there are none.
func (s *Scorer) AverageCropScore(records []telemetry.CropObservation) float64 {
	return round2(meanBy(records, s.CropHealthScore))
}

func (s *Scorer) OverallHealth(soilScore, cropScore float64) HealthAssessment {
	score := ClampScore((soilScore + cropScore) / 2)
	return HealthAssessment{
		Score:  round2(score),
		Status: s.Classify(score),
	}
}

func (s *Scorer) Classify(score float64) HealthStatus {
	for _, step := range s.t.Health {
		if score >= step.Min {
			return step.Status
		}
	}
	return HealthCritical
}

func (s *Scorer) WeatherImpactScore(temperature, precipitation, humidity float64) float64 {
	r := s.t.Weather
	score := r.BaseScore

	switch {
	case r.TempBest.Contains(temperature):
		score += r.TempBestBonus
	case r.TempGood.Contains(temperature):
		score += r.TempGoodBonus
	case temperature < r.ColdTemperature || temperature > r.HeatTemperature:
		score += r.TempPenalty
	}

	switch {
	case r.PrecipBest.Contains(precipitation):
		score += r.PrecipBestBonus
	case r.PrecipGood.Contains(precipitation):
		score += r.PrecipGoodBonus
	case precipitation < r.PrecipDryBelow || precipitation > r.PrecipWetAbove:
		score += r.PrecipPenalty
	}

	switch {
	case r.HumidityBest.Contains(humidity):
		score += r.HumidityBestBonus
	case humidity < r.HumidityDryBelow || humidity > r.HumidityWetAbove:
		score += r.HumidityPenalty
	}

	return ClampScore(score)
}
