package analytics

type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

type HealthStatus string

const (
	HealthExcellent HealthStatus = "excellent"
	HealthGood      HealthStatus = "good"
	HealthFair      HealthStatus = "fair"
	HealthPoor      HealthStatus = "poor"
	HealthCritical  HealthStatus = "critical"
)

type GrowthStage string

const (
	StageDormant      GrowthStage = "dormant"
	StageEmergence    GrowthStage = "emergence"
	StageVegetative   GrowthStage = "vegetative"
	StageReproductive GrowthStage = "reproductive"
	StageMaturity     GrowthStage = "maturity"
)

type Impact string

const (
	ImpactPositive Impact = "positive"
	ImpactNeutral  Impact = "neutral"
	ImpactNegative Impact = "negative"
)

// ============================================================================
// DOMAIN RESULTS
// ============================================================================

type NutrientLevel struct {
	Average float64 `json:"average"`
	Trend   Trend   `json:"trend"`
}

type NutrientLevels struct {
	Nitrogen   NutrientLevel `json:"nitrogen"`
	Phosphorus NutrientLevel `json:"phosphorus"`
	Potassium  NutrientLevel `json:"potassium"`
}

type SoilAnalytics struct {
	AveragePh            float64        `json:"averagePh"`
	PhTrend              Trend          `json:"phTrend"`
	NutrientLevels       NutrientLevels `json:"nutrientLevels"`
	AverageOrganicMatter float64        `json:"averageOrganicMatter"`
	OrganicMatterTrend   Trend          `json:"organicMatterTrend"`
	HealthDistribution   map[string]int `json:"healthDistribution"`
	SampleCount          int            `json:"sampleCount"`
}

type CropAnalytics struct {
	AverageNDVI        float64         `json:"averageNdvi"`
	AverageEVI         float64         `json:"averageEvi"`
	AverageNDWI        float64         `json:"averageNdwi"`
	HealthDistribution map[string]int  `json:"healthDistribution"`
	GrowthStages       map[string]int  `json:"growthStages"`
	YieldProjections   YieldProjection `json:"yieldProjections"`
	ObservationCount   int             `json:"observationCount"`
}

type WeatherAnalytics struct {
	AvgTemperature       float64 `json:"avgTemperature"`
	TotalPrecipitation   float64 `json:"totalPrecipitation"`
	AvgHumidity          float64 `json:"avgHumidity"`
	ExtremeWeatherEvents int     `json:"extremeWeatherEvents"`
	HeatWaveDays         int     `json:"heatWaveDays"`
	ColdDays             int     `json:"coldDays"`
	HeavyRainDays        int     `json:"heavyRainDays"`
	TemperatureTrend     Trend   `json:"temperatureTrend"`
	HumidityTrend        Trend   `json:"humidityTrend"`
	ImpactScore          float64 `json:"impactScore"`
	ImpactOnCrops        Impact  `json:"impactOnCrops"`
	RecordCount          int     `json:"recordCount"`
}

type FieldWaterUsage struct {
	FieldID        string  `json:"fieldId"`
	FieldName      string  `json:"fieldName"`
	IrrigationType string  `json:"irrigationType"`
	AreaHectares   float64 `json:"areaHa"`
	Efficiency     float64 `json:"efficiency"`
	LitersPerDay   float64 `json:"litersPerDay"`
}

type IrrigationAnalytics struct {
	AverageEfficiency  float64           `json:"averageEfficiency"`
	TotalWaterUsage    float64           `json:"totalWaterUsage"`
	WaterUsageTrend    Trend             `json:"waterUsageTrend"`
	SystemDistribution map[string]int    `json:"systemDistribution"`
	FieldUsage         []FieldWaterUsage `json:"fieldUsage"`
}

type YieldProjection struct {
	Optimistic  float64 `json:"optimistic"`
	Realistic   float64 `json:"realistic"`
	Pessimistic float64 `json:"pessimistic"`
	Confidence  float64 `json:"confidence"`
	Unit        string  `json:"unit"`
}

type FinancialAnalytics struct {
	TotalRevenue      float64            `json:"totalRevenue"`
	TotalCosts        float64            `json:"totalCosts"`
	NetProfit         float64            `json:"netProfit"`
	ProfitMargin      float64            `json:"profitMargin"`
	CostPerHectare    float64            `json:"costPerHectare"`
	RevenuePerHectare float64            `json:"revenuePerHectare"`
	ProfitTrend       Trend              `json:"profitTrend"`
	CostBreakdown     map[string]float64 `json:"costBreakdown"`
	EntryCount        int                `json:"entryCount"`
}

type HealthAssessment struct {
	Score  float64      `json:"score"`
	Status HealthStatus `json:"status"`
}
