package analytics

// Band is a closed interval [Min, Max].
type Band struct {
	Min float64
	Max float64
}

func (b Band) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// Step awards Value when the input is at least Min. Ladders of steps are
// evaluated top-down and the first match wins.
type Step struct {
	Min   float64
	Value float64
}

func ladder(steps []Step, v, fallback float64) float64 {
	for _, s := range steps {
		if v >= s.Min {
			return s.Value
		}
	}
	return fallback
}

// Thresholds is the single table of tunable rule constants used by every
// analyzer, the scorer, the yield projector and the recommendation engine.
// Bump Version whenever a value changes so stored reports stay traceable.
type Thresholds struct {
	Version        string
	Soil           SoilRules
	Crop           CropRules
	Weather        WeatherRules
	Irrigation     IrrigationRules
	Yield          YieldRules
	Trend          TrendRules
	Health         []HealthStep
	Recommendation RecommendationRules
}

type SoilRules struct {
	PhExcellent Band
	PhGood      Band
	PhFair      Band

	BaseScore          float64
	PhExcellentBonus   float64
	PhGoodBonus        float64
	PhFairBonus        float64
	OrganicMatterBonus []Step
}

type CropRules struct {
	ScoreByNDVI []Step
	ScoreFloor  float64
	// GrowthStages are upper bounds (exclusive); ndvi at or above the last
	// bound is Maturity.
	GrowthStages []StageBound
}

type StageBound struct {
	Below float64
	Stage GrowthStage
}

type WeatherRules struct {
	HeatTemperature float64
	ColdTemperature float64
	HeavyRain       float64

	NegativeExtremeEvents int
	NegativeAvgTemp       float64
	NegativeTotalPrecip   float64
	PositiveTemp          Band
	PositivePrecip        Band

	BaseScore         float64
	TempBest          Band
	TempBestBonus     float64
	TempGood          Band
	TempGoodBonus     float64
	TempPenalty       float64
	PrecipBest        Band
	PrecipBestBonus   float64
	PrecipGood        Band
	PrecipGoodBonus   float64
	PrecipDryBelow    float64
	PrecipWetAbove    float64
	PrecipPenalty     float64
	HumidityBest      Band
	HumidityBestBonus float64
	HumidityDryBelow  float64
	HumidityWetAbove  float64
	HumidityPenalty   float64
}

type IrrigationRules struct {
	Efficiency             map[string]float64
	DefaultEfficiency      float64
	LitersPerHectarePerDay float64
	WaterMultiplier        map[string]float64
	DefaultMultiplier      float64
}

type YieldRules struct {
	BaseKgPerHectare    float64
	Multiplier          Band
	OptimisticFactor    float64
	PessimisticFactor   float64
	ConfidenceBase      float64
	ConfidencePerSample float64
	ConfidenceSampleCap float64
	ConfidenceNDVIBand  Band
	ConfidenceNDVIBonus float64
	ConfidenceMax       float64
}

type TrendRules struct {
	Temperature float64
	Humidity    float64
	Soil        float64
	Profit      float64
}

type HealthStep struct {
	Min    float64
	Status HealthStatus
}

type RecommendationRules struct {
	AcidicPh           float64
	AlkalinePh         float64
	LowNitrogen        float64
	LowPhosphorus      float64
	LowPotassium       float64
	CriticalNDVI       float64
	LowNDVI            float64
	HeatWaveDays       int
	HeavyRainDays      int
	DroughtPrecip      float64
	CriticalEfficiency float64
	LowEfficiency      float64
	LowConfidence      float64
	YieldGapRatio      float64
	LowMarginPercent   float64
	HighCostPerHectare float64
}

const ThresholdsVersion = "2024.1"

// DefaultThresholds returns a fresh copy of the production rule table.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Version: ThresholdsVersion,
		Soil: SoilRules{
			PhExcellent:      Band{Min: 6.5, Max: 7.5},
			PhGood:           Band{Min: 6.0, Max: 8.0},
			PhFair:           Band{Min: 5.5, Max: 8.5},
			BaseScore:        50,
			PhExcellentBonus: 30,
			PhGoodBonus:      20,
			PhFairBonus:      10,
			OrganicMatterBonus: []Step{
				{Min: 3, Value: 20},
				{Min: 2, Value: 15},
				{Min: 1, Value: 10},
			},
		},
		Crop: CropRules{
			ScoreByNDVI: []Step{
				{Min: 0.7, Value: 90},
				{Min: 0.5, Value: 70},
				{Min: 0.3, Value: 50},
				{Min: 0.1, Value: 30},
			},
			ScoreFloor: 10,
			GrowthStages: []StageBound{
				{Below: 0.2, Stage: StageDormant},
				{Below: 0.4, Stage: StageEmergence},
				{Below: 0.6, Stage: StageVegetative},
				{Below: 0.8, Stage: StageReproductive},
			},
		},
		Weather: WeatherRules{
			HeatTemperature:       35,
			ColdTemperature:       5,
			HeavyRain:             50,
			NegativeExtremeEvents: 5,
			NegativeAvgTemp:       30,
			NegativeTotalPrecip:   200,
			PositiveTemp:          Band{Min: 15, Max: 25},
			PositivePrecip:        Band{Min: 50, Max: 150},
			BaseScore:             50,
			TempBest:              Band{Min: 15, Max: 25},
			TempBestBonus:         20,
			TempGood:              Band{Min: 10, Max: 30},
			TempGoodBonus:         10,
			TempPenalty:           -20,
			PrecipBest:            Band{Min: 50, Max: 150},
			PrecipBestBonus:       20,
			PrecipGood:            Band{Min: 25, Max: 200},
			PrecipGoodBonus:       10,
			PrecipDryBelow:        10,
			PrecipWetAbove:        300,
			PrecipPenalty:         -20,
			HumidityBest:          Band{Min: 40, Max: 70},
			HumidityBestBonus:     10,
			HumidityDryBelow:      20,
			HumidityWetAbove:      90,
			HumidityPenalty:       -10,
		},
		Irrigation: IrrigationRules{
			Efficiency: map[string]float64{
				"drip":      90,
				"sprinkler": 75,
				"flood":     60,
				"manual":    50,
			},
			DefaultEfficiency:      50,
			LitersPerHectarePerDay: 10,
			WaterMultiplier: map[string]float64{
				"drip":      0.6,
				"sprinkler": 0.8,
				"flood":     1.2,
				"manual":    1.0,
			},
			DefaultMultiplier: 1.0,
		},
		Yield: YieldRules{
			BaseKgPerHectare:    1000,
			Multiplier:          Band{Min: 0.5, Max: 1.5},
			OptimisticFactor:    1.2,
			PessimisticFactor:   0.8,
			ConfidenceBase:      50,
			ConfidencePerSample: 2,
			ConfidenceSampleCap: 30,
			ConfidenceNDVIBand:  Band{Min: 0.3, Max: 0.8},
			ConfidenceNDVIBonus: 20,
			ConfidenceMax:       95,
		},
		Trend: TrendRules{
			Temperature: 2,
			Humidity:    5,
			Soil:        2,
			Profit:      100,
		},
		Health: []HealthStep{
			{Min: 80, Status: HealthExcellent},
			{Min: 60, Status: HealthGood},
			{Min: 40, Status: HealthFair},
			{Min: 20, Status: HealthPoor},
		},
		Recommendation: RecommendationRules{
			AcidicPh:           6.0,
			AlkalinePh:         8.0,
			LowNitrogen:        20,
			LowPhosphorus:      15,
			LowPotassium:       100,
			CriticalNDVI:       0.3,
			LowNDVI:            0.5,
			HeatWaveDays:       5,
			HeavyRainDays:      3,
			DroughtPrecip:      50,
			CriticalEfficiency: 60,
			LowEfficiency:      80,
			LowConfidence:      70,
			YieldGapRatio:      0.8,
			LowMarginPercent:   20,
			HighCostPerHectare: 400,
		},
	}
}
