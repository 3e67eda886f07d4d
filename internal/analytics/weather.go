package analytics

import (
	"slices"

	"github.com/samber/lo"

	"github.com/Alijeyrad/agrolytics_backend/internal/telemetry"
)

type WeatherAnalyzer interface {
	Analyze(records []telemetry.WeatherRecord) WeatherAnalytics
}

// WeatherImpactAnalyzer aggregates daily observations and judges their effect on crops.
type WeatherImpactAnalyzer struct {
	t      Thresholds
	scorer *Scorer
}

func NewWeatherImpactAnalyzer(t Thresholds, scorer *Scorer) *WeatherImpactAnalyzer {
	return &WeatherImpactAnalyzer{t: t, scorer: scorer}
}

func (a *WeatherImpactAnalyzer) Analyze(records []telemetry.WeatherRecord) WeatherAnalytics {
	r := a.t.Weather

	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(x, y telemetry.WeatherRecord) int {
		return x.RecordedOn.Compare(y.RecordedOn)
	})

	temps := lo.Map(sorted, func(w telemetry.WeatherRecord, _ int) float64 { return w.Temperature })
	humidity := lo.Map(sorted, func(w telemetry.WeatherRecord, _ int) float64 { return w.Humidity })

	avgTemp := mean(temps)
	avgHumidity := mean(humidity)
	totalPrecip := SumBy(sorted, func(w telemetry.WeatherRecord) float64 { return w.Precipitation })

	extreme := lo.CountBy(sorted, func(w telemetry.WeatherRecord) bool {
		return w.Temperature > r.HeatTemperature || w.Temperature < r.ColdTemperature || w.Precipitation > r.HeavyRain
	})

	out := WeatherAnalytics{
		AvgTemperature:       round2(avgTemp),
		TotalPrecipitation:   round2(totalPrecip),
		AvgHumidity:          round2(avgHumidity),
		ExtremeWeatherEvents: extreme,
		HeatWaveDays:         lo.CountBy(sorted, func(w telemetry.WeatherRecord) bool { return w.Temperature > r.HeatTemperature }),
		ColdDays:             lo.CountBy(sorted, func(w telemetry.WeatherRecord) bool { return w.Temperature < r.ColdTemperature }),
		HeavyRainDays:        lo.CountBy(sorted, func(w telemetry.WeatherRecord) bool { return w.Precipitation > r.HeavyRain }),
		TemperatureTrend:     ComputeTrend(temps, a.t.Trend.Temperature),
		HumidityTrend:        ComputeTrend(humidity, a.t.Trend.Humidity),
		ImpactOnCrops:        ImpactNeutral,
		RecordCount:          len(sorted),
	}

	if len(sorted) == 0 {
		return out
	}

	out.ImpactScore = a.scorer.WeatherImpactScore(avgTemp, totalPrecip, avgHumidity)
	out.ImpactOnCrops = a.impact(extreme, avgTemp, totalPrecip)
	return out
}

func (a *WeatherImpactAnalyzer) impact(extremeEvents int, avgTemp, totalPrecip float64) Impact {
	r := a.t.Weather
	switch {
	case extremeEvents > r.NegativeExtremeEvents || avgTemp > r.NegativeAvgTemp || totalPrecip > r.NegativeTotalPrecip:
		return ImpactNegative
	case r.PositiveTemp.Contains(avgTemp) && r.PositivePrecip.Contains(totalPrecip):
		return ImpactPositive
	default:
		return ImpactNeutral
	}
}
