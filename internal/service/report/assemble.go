package report

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/Alijeyrad/agrolytics_backend/internal/analytics"
	"github.com/Alijeyrad/agrolytics_backend/internal/chart"
	"github.com/Alijeyrad/agrolytics_backend/internal/recommendation"
	"github.com/Alijeyrad/agrolytics_backend/internal/telemetry"
)

// Analyzers bundles the domain components the assembler depends on.
type Analyzers struct {
	Soil       analytics.SoilAnalyzer
	Crop       analytics.CropAnalyzer
	Weather    analytics.WeatherAnalyzer
	Irrigation analytics.IrrigationAnalyzer
	Financial  analytics.FinancialAnalyzer
	Scorer     *analytics.Scorer
}

func NewAnalyzers(t analytics.Thresholds) Analyzers {
	scorer := analytics.NewScorer(t)
	return Analyzers{
		Soil:       analytics.NewSoilHealthAnalyzer(t),
		Crop:       analytics.NewCropPerformanceAnalyzer(t, analytics.NewYieldProjector(t)),
		Weather:    analytics.NewWeatherImpactAnalyzer(t, scorer),
		Irrigation: analytics.NewIrrigationEfficiencyAnalyzer(t),
		Financial:  analytics.NewLedgerAnalyzer(t),
		Scorer:     scorer,
	}
}

// assembler turns fetched telemetry into a Document. It performs no I/O.
type assembler struct {
	an      Analyzers
	rec     recommendation.Engine
	version string
}

func (a *assembler) assemble(p params, tel *telemetryData, now time.Time) Document {
	doc := Document{
		ReportType:        p.Type,
		Summary:           summarize(p, tel, now),
		Farms:             []FarmReport{},
		Recommendations:   recommendation.Empty(),
		Charts:            []chart.Chart{},
		DegradedDomains:   tel.Degraded,
		ThresholdsVersion: a.version,
	}

	switch p.Type {
	case TypeComprehensive, TypeFarmSummary:
		a.overview(&doc, tel)
	case TypeSoilAnalysis:
		a.soil(&doc, tel)
	case TypeCropMonitoring:
		a.crop(&doc, tel)
	case TypeYieldPrediction:
		a.yield(&doc, tel)
	case TypeWeatherAnalysis:
		a.weather(&doc, tel)
	case TypeIrrigationEfficiency:
		a.irrigation(&doc, tel)
	case TypeFinancialSummary:
		a.financial(&doc, tel)
	}

	if !p.Options.charts() {
		doc.Charts = []chart.Chart{}
	}
	return doc
}

func summarize(p params, tel *telemetryData, now time.Time) Summary {
	return Summary{
		TotalFarms:  len(tel.Farms),
		TotalFields: len(tel.Fields),
		TotalArea:   round2(analytics.SumBy(tel.Farms, func(f telemetry.Farm) float64 { return f.AreaHectares })),
		Period:      p.period(),
		GeneratedAt: now,
	}
}

// overview serves both comprehensive and farm_summary; the gateway has
// already narrowed farm_summary to its single farm.
func (a *assembler) overview(doc *Document, tel *telemetryData) {
	soil := a.an.Soil.Analyze(tel.Soil)
	crop := a.an.Crop.Analyze(tel.Crop, cultivatedArea(tel))
	weather := a.an.Weather.Analyze(tel.Weather)
	irrigation := a.an.Irrigation.Analyze(tel.Fields)

	doc.Analytics = Analytics{Soil: &soil, Crop: &crop, Weather: &weather, Irrigation: &irrigation}
	doc.Farms = a.farmReports(tel)
	doc.Recommendations = a.rec.Generate(recommendation.Input{
		Soil:       &soil,
		Crop:       &crop,
		Weather:    &weather,
		Irrigation: &irrigation,
		Yield:      &crop.YieldProjections,
	})

	if doc.ReportType == TypeFarmSummary && len(doc.Farms) > 0 {
		doc.Details = FarmSummaryDetails{
			Farm:   doc.Farms[0],
			Fields: a.fieldSummaries(tel),
		}
	} else {
		sc := a.an.Scorer
		doc.Details = ComprehensiveDetails{
			OverallHealth:      sc.OverallHealth(sc.AverageSoilScore(tel.Soil), sc.AverageCropScore(tel.Crop)),
			YieldProjection:    crop.YieldProjections,
			WeatherImpactScore: weather.ImpactScore,
		}
	}

	doc.Charts = []chart.Chart{
		chart.SoilNutrients(soil),
		chart.SoilHealth(soil),
		chart.CropHealth(crop),
		chart.GrowthStages(crop),
		chart.YieldScenarios(crop.YieldProjections),
		chart.WeatherEvents(weather),
		chart.IrrigationSystems(irrigation),
		chart.HealthScores("Farm health scores", lo.Map(doc.Farms, func(f FarmReport, _ int) chart.ScorePoint {
			return chart.ScorePoint{Label: f.Name, Soil: f.SoilScore, Crop: f.CropScore}
		})),
	}
}

func (a *assembler) soil(doc *Document, tel *telemetryData) {
	soil := a.an.Soil.Analyze(tel.Soil)

	doc.Analytics = Analytics{Soil: &soil}
	doc.Recommendations = a.rec.Generate(recommendation.Input{Soil: &soil})
	doc.Details = SoilDetails{
		AverageSoilScore: a.an.Scorer.AverageSoilScore(tel.Soil),
		Fields:           fieldScores(tel.Fields, tel.Soil, func(r telemetry.SoilAnalysis) uuid.UUID { return r.FieldID }, a.an.Scorer.AverageSoilScore),
	}
	doc.Charts = []chart.Chart{chart.SoilNutrients(soil), chart.SoilHealth(soil)}
}

func (a *assembler) crop(doc *Document, tel *telemetryData) {
	crop := a.an.Crop.Analyze(tel.Crop, cultivatedArea(tel))

	doc.Analytics = Analytics{Crop: &crop}
	doc.Recommendations = a.rec.Generate(recommendation.Input{Crop: &crop})
	doc.Details = CropDetails{
		AverageCropScore: a.an.Scorer.AverageCropScore(tel.Crop),
		Fields:           fieldScores(tel.Fields, tel.Crop, func(r telemetry.CropObservation) uuid.UUID { return r.FieldID }, a.an.Scorer.AverageCropScore),
	}
	doc.Charts = []chart.Chart{chart.CropHealth(crop), chart.GrowthStages(crop)}
}

func (a *assembler) yield(doc *Document, tel *telemetryData) {
	crop := a.an.Crop.Analyze(tel.Crop, cultivatedArea(tel))

	doc.Analytics = Analytics{Crop: &crop}
	doc.Recommendations = a.rec.Generate(recommendation.Input{Crop: &crop, Yield: &crop.YieldProjections})
	doc.Details = YieldDetails{
		Overall: crop.YieldProjections,
		ByCrop:  a.yieldByCrop(tel.Fields, tel.Crop),
	}
	doc.Charts = []chart.Chart{chart.YieldScenarios(crop.YieldProjections)}
}

func (a *assembler) weather(doc *Document, tel *telemetryData) {
	weather := a.an.Weather.Analyze(tel.Weather)

	doc.Analytics = Analytics{Weather: &weather}
	doc.Recommendations = a.rec.Generate(recommendation.Input{Weather: &weather})
	doc.Details = WeatherDetails{ImpactScore: weather.ImpactScore, ImpactOnCrop: weather.ImpactOnCrops}
	doc.Charts = []chart.Chart{chart.WeatherEvents(weather)}
}

func (a *assembler) irrigation(doc *Document, tel *telemetryData) {
	irrigation := a.an.Irrigation.Analyze(tel.Fields)

	doc.Analytics = Analytics{Irrigation: &irrigation}
	doc.Recommendations = a.rec.Generate(recommendation.Input{Irrigation: &irrigation})
	doc.Details = IrrigationDetails{TotalWaterUsage: irrigation.TotalWaterUsage, Fields: irrigation.FieldUsage}
	doc.Charts = []chart.Chart{chart.IrrigationSystems(irrigation), chart.FieldWaterUsage(irrigation)}
}

func (a *assembler) financial(doc *Document, tel *telemetryData) {
	area := cultivatedArea(tel)
	fin := a.an.Financial.Analyze(tel.Financial, area)

	var perHectare float64
	if area > 0 {
		perHectare = round2(fin.NetProfit / area)
	}

	doc.Analytics = Analytics{Financial: &fin}
	doc.Recommendations = a.rec.Generate(recommendation.Input{Financial: &fin})
	doc.Details = FinancialDetails{
		NetProfitPerHectare: perHectare,
		ProfitMargin:        fin.ProfitMargin,
		ProfitTrend:         fin.ProfitTrend,
	}
	doc.Charts = []chart.Chart{chart.CostBreakdown(fin)}
}

// ---------------------------------------------------------------------------
// Per-farm and per-field breakdowns
// ---------------------------------------------------------------------------

func (a *assembler) farmReports(tel *telemetryData) []FarmReport {
	sc := a.an.Scorer
	fields := lo.GroupBy(tel.Fields, func(f telemetry.Field) uuid.UUID { return f.FarmID })
	soil := lo.GroupBy(tel.Soil, func(r telemetry.SoilAnalysis) uuid.UUID { return r.FarmID })
	crop := lo.GroupBy(tel.Crop, func(r telemetry.CropObservation) uuid.UUID { return r.FarmID })
	weather := lo.GroupBy(tel.Weather, func(r telemetry.WeatherRecord) uuid.UUID { return r.FarmID })

	return lo.Map(tel.Farms, func(f telemetry.Farm, _ int) FarmReport {
		soilScore := sc.AverageSoilScore(soil[f.ID])
		cropScore := sc.AverageCropScore(crop[f.ID])
		return FarmReport{
			ID:                 f.ID,
			Name:               f.Name,
			AreaHectares:       analytics.Finite(f.AreaHectares),
			FieldCount:         len(fields[f.ID]),
			SoilScore:          soilScore,
			CropScore:          cropScore,
			OverallHealth:      sc.OverallHealth(soilScore, cropScore),
			WeatherImpactScore: a.an.Weather.Analyze(weather[f.ID]).ImpactScore,
		}
	})
}

func (a *assembler) fieldSummaries(tel *telemetryData) []FieldSummary {
	sc := a.an.Scorer
	soil := lo.GroupBy(tel.Soil, func(r telemetry.SoilAnalysis) uuid.UUID { return r.FieldID })
	crop := lo.GroupBy(tel.Crop, func(r telemetry.CropObservation) uuid.UUID { return r.FieldID })

	return lo.Map(tel.Fields, func(f telemetry.Field, _ int) FieldSummary {
		soilScore := sc.AverageSoilScore(soil[f.ID])
		cropScore := sc.AverageCropScore(crop[f.ID])
		return FieldSummary{
			ID:               f.ID,
			Name:             f.Name,
			AreaHectares:     analytics.Finite(f.AreaHectares),
			CropType:         f.CropType,
			IrrigationType:   f.IrrigationType,
			SoilScore:        soilScore,
			CropScore:        cropScore,
			OverallHealth:    sc.OverallHealth(soilScore, cropScore),
			SoilSamples:      len(soil[f.ID]),
			CropObservations: len(crop[f.ID]),
		}
	})
}

func fieldScores[T any](fields []telemetry.Field, records []T, fieldOf func(T) uuid.UUID, score func([]T) float64) []FieldScore {
	byField := lo.GroupBy(records, fieldOf)
	return lo.Map(fields, func(f telemetry.Field, _ int) FieldScore {
		return FieldScore{
			FieldID:   f.ID,
			FieldName: f.Name,
			Score:     score(byField[f.ID]),
			Records:   len(byField[f.ID]),
		}
	})
}

func (a *assembler) yieldByCrop(fields []telemetry.Field, records []telemetry.CropObservation) map[string]analytics.YieldProjection {
	groups := lo.GroupBy(fields, func(f telemetry.Field) string {
		if c := strings.ToLower(strings.TrimSpace(f.CropType)); c != "" {
			return c
		}
		return "unknown"
	})
	byField := lo.GroupBy(records, func(r telemetry.CropObservation) uuid.UUID { return r.FieldID })

	out := make(map[string]analytics.YieldProjection, len(groups))
	for cropType, group := range groups {
		area := analytics.SumBy(group, func(f telemetry.Field) float64 { return f.AreaHectares })
		obs := lo.FlatMap(group, func(f telemetry.Field, _ int) []telemetry.CropObservation { return byField[f.ID] })
		out[cropType] = a.an.Crop.Analyze(obs, area).YieldProjections
	}
	return out
}

// cultivatedArea is the summed field area, falling back to farm area when
// the scope has no fields.
func cultivatedArea(tel *telemetryData) float64 {
	if area := analytics.SumBy(tel.Fields, func(f telemetry.Field) float64 { return f.AreaHectares }); area > 0 {
		return area
	}
	return analytics.SumBy(tel.Farms, func(f telemetry.Farm) float64 { return f.AreaHectares })
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
