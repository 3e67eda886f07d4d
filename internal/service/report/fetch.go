package report

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/Alijeyrad/agrolytics_backend/internal/telemetry"
)

type domain string

const (
	domainFarms     domain = "farms"
	domainFields    domain = "fields"
	domainSoil      domain = "soil"
	domainCrop      domain = "crop"
	domainWeather   domain = "weather"
	domainFinancial domain = "financial"
)

// fetchPlan lists the telemetry each view reads. Nothing else is queried.
var fetchPlan = map[ReportType][]domain{
	TypeComprehensive:        {domainFarms, domainFields, domainSoil, domainCrop, domainWeather},
	TypeFarmSummary:          {domainFarms, domainFields, domainSoil, domainCrop, domainWeather},
	TypeSoilAnalysis:         {domainFarms, domainFields, domainSoil},
	TypeCropMonitoring:       {domainFarms, domainFields, domainCrop},
	TypeYieldPrediction:      {domainFarms, domainFields, domainCrop},
	TypeWeatherAnalysis:      {domainFarms, domainWeather},
	TypeIrrigationEfficiency: {domainFarms, domainFields},
	TypeFinancialSummary:     {domainFarms, domainFields, domainFinancial},
}

// telemetryData is the fan-in result. Domains not in the plan stay nil.
type telemetryData struct {
	Farms     []telemetry.Farm
	Fields    []telemetry.Field
	Soil      []telemetry.SoilAnalysis
	Crop      []telemetry.CropObservation
	Weather   []telemetry.WeatherRecord
	Financial []telemetry.FinancialRecord

	// Degraded names the domains whose fetch failed under the degrade policy.
	Degraded []string
}

// fetch runs the plan's queries concurrently. Each query gets its own
// deadline; the first fatal failure cancels the rest. Under the degrade
// policy a failed domain other than farms is left empty and recorded.
func (s *reportService) fetch(ctx context.Context, p params) (*telemetryData, error) {
	scope := telemetry.Scope{OwnerID: p.UserID, From: p.From, To: p.To, FarmIDs: p.FarmIDs}
	data := &telemetryData{}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)

	run := func(d domain, query func(ctx context.Context) error) {
		g.Go(func() error {
			fctx, cancel := context.WithTimeout(gctx, s.cfg.FetchTimeout())
			defer cancel()

			fctx, span := tracer.Start(fctx, "telemetry."+string(d),
				trace.WithAttributes(attribute.String("report.type", string(p.Type))))
			defer span.End()

			err := query(fctx)
			if err == nil {
				return nil
			}

			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())

			if d != domainFarms && s.cfg.DegradeOnFetchError() {
				slog.Warn("telemetry fetch failed, degrading domain",
					"domain", d, "report_type", p.Type, "user_id", p.UserID, "err", err)
				mu.Lock()
				data.Degraded = append(data.Degraded, string(d))
				mu.Unlock()
				return nil
			}

			return fmt.Errorf("%w: %s: %w", ErrTelemetryUnavailable, d, err)
		})
	}

	for _, d := range fetchPlan[p.Type] {
		switch d {
		case domainFarms:
			run(d, func(ctx context.Context) (err error) {
				data.Farms, err = s.gateway.Farms(ctx, scope)
				return err
			})
		case domainFields:
			run(d, func(ctx context.Context) (err error) {
				data.Fields, err = s.gateway.Fields(ctx, scope)
				return err
			})
		case domainSoil:
			run(d, func(ctx context.Context) (err error) {
				data.Soil, err = s.gateway.SoilAnalyses(ctx, scope)
				return err
			})
		case domainCrop:
			run(d, func(ctx context.Context) (err error) {
				data.Crop, err = s.gateway.CropObservations(ctx, scope)
				return err
			})
		case domainWeather:
			run(d, func(ctx context.Context) (err error) {
				data.Weather, err = s.gateway.WeatherRecords(ctx, scope)
				return err
			})
		case domainFinancial:
			run(d, func(ctx context.Context) (err error) {
				data.Financial, err = s.gateway.FinancialRecords(ctx, scope)
				return err
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.Sort(data.Degraded)
	return data, nil
}
