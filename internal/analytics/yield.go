package analytics

import (
	"math"

	"github.com/samber/lo"
)

const yieldUnit = "kg"

// YieldProjector derives yield scenarios from vegetation-index statistics.
type YieldProjector struct {
	r YieldRules
}

func NewYieldProjector(t Thresholds) *YieldProjector {
	return &YieldProjector{r: t.Yield}
}

// Project returns pessimistic <= realistic <= optimistic in kilograms and a
// confidence figure in [ConfidenceBase, ConfidenceMax].
func (p *YieldProjector) Project(avgNDVI, areaHectares float64, observations int) YieldProjection {
	avgNDVI = Finite(avgNDVI)
	area := math.Max(Finite(areaHectares), 0)
	count := max(observations, 0)

	multiplier := lo.Clamp(avgNDVI, p.r.Multiplier.Min, p.r.Multiplier.Max)
	base := area * p.r.BaseKgPerHectare * multiplier

	confidence := p.r.ConfidenceBase + math.Min(p.r.ConfidenceSampleCap, float64(count)*p.r.ConfidencePerSample)
	if p.r.ConfidenceNDVIBand.Contains(avgNDVI) {
		confidence += p.r.ConfidenceNDVIBonus
	}

	return YieldProjection{
		Optimistic:  math.Round(base * p.r.OptimisticFactor),
		Realistic:   math.Round(base),
		Pessimistic: math.Round(base * p.r.PessimisticFactor),
		Confidence:  math.Min(confidence, p.r.ConfidenceMax),
		Unit:        yieldUnit,
	}
}
