package analytics

import (
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/Alijeyrad/agrolytics_backend/internal/telemetry"
)

type FinancialAnalyzer interface {
	Analyze(records []telemetry.FinancialRecord, areaHectares float64) FinancialAnalytics
}

// LedgerAnalyzer summarizes revenue and expense entries. Sums are carried in
// decimal and only converted to float for the report.
type LedgerAnalyzer struct {
	t Thresholds
}

func NewLedgerAnalyzer(t Thresholds) *LedgerAnalyzer {
	return &LedgerAnalyzer{t: t}
}

func (a *LedgerAnalyzer) Analyze(records []telemetry.FinancialRecord, areaHectares float64) FinancialAnalytics {
	revenue, costs := decimal.Zero, decimal.Zero
	breakdown := make(map[string]decimal.Decimal)

	for _, r := range records {
		switch r.Kind {
		case telemetry.EntryRevenue:
			revenue = revenue.Add(r.Amount)
		case telemetry.EntryExpense:
			costs = costs.Add(r.Amount)
			category := strings.ToLower(strings.TrimSpace(r.Category))
			if category == "" {
				category = "other"
			}
			breakdown[category] = breakdown[category].Add(r.Amount)
		}
	}

	profit := revenue.Sub(costs)
	hundred := decimal.NewFromInt(100)

	margin := decimal.Zero
	if revenue.IsPositive() {
		margin = profit.Div(revenue).Mul(hundred)
	}

	costPerHa, revenuePerHa := decimal.Zero, decimal.Zero
	if areaHectares > 0 {
		area := decimal.NewFromFloat(areaHectares)
		costPerHa = costs.Div(area)
		revenuePerHa = revenue.Div(area)
	}

	return FinancialAnalytics{
		TotalRevenue:      revenue.Round(2).InexactFloat64(),
		TotalCosts:        costs.Round(2).InexactFloat64(),
		NetProfit:         profit.Round(2).InexactFloat64(),
		ProfitMargin:      margin.Round(2).InexactFloat64(),
		CostPerHectare:    costPerHa.Round(2).InexactFloat64(),
		RevenuePerHectare: revenuePerHa.Round(2).InexactFloat64(),
		ProfitTrend:       ComputeTrend(monthlyProfit(records), a.t.Trend.Profit),
		CostBreakdown: lo.MapValues(breakdown, func(v decimal.Decimal, _ string) float64 {
			return v.Round(2).InexactFloat64()
		}),
		EntryCount: len(records),
	}
}

// monthlyProfit returns net profit per calendar month in chronological order.
func monthlyProfit(records []telemetry.FinancialRecord) []float64 {
	byMonth := make(map[string]decimal.Decimal)
	for _, r := range records {
		key := r.EntryDate.Format("2006-01")
		switch r.Kind {
		case telemetry.EntryRevenue:
			byMonth[key] = byMonth[key].Add(r.Amount)
		case telemetry.EntryExpense:
			byMonth[key] = byMonth[key].Sub(r.Amount)
		}
	}

	months := lo.Keys(byMonth)
	slices.Sort(months)

	return lo.Map(months, func(m string, _ int) float64 {
		return byMonth[m].InexactFloat64()
	})
}
