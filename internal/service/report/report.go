package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/Alijeyrad/agrolytics_backend/config"
	"github.com/Alijeyrad/agrolytics_backend/internal/analytics"
	"github.com/Alijeyrad/agrolytics_backend/internal/recommendation"
	"github.com/Alijeyrad/agrolytics_backend/internal/store"
	"github.com/Alijeyrad/agrolytics_backend/internal/telemetry"
)

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Generate validates req, computes the requested view and persists it.
	// The returned id and createdAt come from the store.
	Generate(ctx context.Context, req Request) (*Report, error)
	Get(ctx context.Context, id uuid.UUID, userID string) (*Report, error)
	List(ctx context.Context, userID string, limit, offset int) ([]store.Summary, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type reportService struct {
	gateway   telemetry.Gateway
	store     store.ReportStore
	assembler *assembler
	events    Publisher
	cfg       config.ReportConfig
	metrics   instruments
	now       func() time.Time
}

// New wires the service. events may be nil, in which case no events are
// published.
func New(
	gateway telemetry.Gateway,
	reports store.ReportStore,
	thresholds analytics.Thresholds,
	recommender recommendation.Engine,
	events Publisher,
	cfg config.ReportConfig,
) Service {
	return &reportService{
		gateway: gateway,
		store:   reports,
		assembler: &assembler{
			an:      NewAnalyzers(thresholds),
			rec:     recommender,
			version: thresholds.Version,
		},
		events:  events,
		cfg:     cfg,
		metrics: newInstruments(),
		now:     time.Now,
	}
}

func (s *reportService) Generate(ctx context.Context, req Request) (*Report, error) {
	p, err := validate(req)
	if err != nil {
		return nil, err
	}

	start := s.now()
	ctx, span := tracer.Start(ctx, "report.Generate", trace.WithAttributes(
		attribute.String("report.type", string(p.Type)),
		attribute.String("report.user_id", p.UserID),
		attribute.Int("report.farm_filter", len(p.FarmIDs)),
	))
	defer span.End()

	rep, err := s.generate(ctx, p, start)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.metrics.failures.Add(ctx, 1, metric.WithAttributes(
			attribute.String("report_type", string(p.Type)),
			attribute.String("reason", failureReason(err)),
		))
		return nil, err
	}

	typeAttr := metric.WithAttributes(attribute.String("report_type", string(p.Type)))
	s.metrics.generated.Add(ctx, 1, typeAttr)
	s.metrics.duration.Record(ctx, float64(time.Since(start).Microseconds())/1000, typeAttr)
	span.SetAttributes(attribute.String("report.id", rep.ID.String()))

	publishGenerated(s.events, rep)

	slog.Info("report generated",
		"report_id", rep.ID, "report_type", rep.Type, "user_id", p.UserID,
		"degraded", rep.Data.DegradedDomains)

	return rep, nil
}

func (s *reportService) generate(ctx context.Context, p params, now time.Time) (*Report, error) {
	tel, err := s.fetch(ctx, p)
	if err != nil {
		return nil, err
	}
	if p.Type == TypeFarmSummary && len(tel.Farms) == 0 {
		return nil, ErrFarmNotFound
	}

	doc := s.assembler.assemble(p, tel, now.UTC())

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}

	rec := &store.Record{
		UserID:     p.UserID,
		Title:      p.Title,
		ReportType: string(p.Type),
		DateFrom:   p.From,
		DateTo:     p.To,
		Data:       data,
		FarmID:     p.firstFarm(),
	}
	if err := s.store.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	return &Report{
		ID:        rec.ID,
		UserID:    rec.UserID,
		Title:     rec.Title,
		Type:      p.Type,
		Data:      doc,
		CreatedAt: rec.CreatedAt,
	}, nil
}

func (s *reportService) Get(ctx context.Context, id uuid.UUID, userID string) (*Report, error) {
	if userID == "" {
		return nil, invalid("userId", ErrUserRequired)
	}

	rec, err := s.store.Get(ctx, id, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("get report: %w", err)
	}

	return fromRecord(rec)
}

func (s *reportService) List(ctx context.Context, userID string, limit, offset int) ([]store.Summary, error) {
	if userID == "" {
		return nil, invalid("userId", ErrUserRequired)
	}

	def, maximum := s.cfg.ListLimits()
	if limit <= 0 {
		limit = def
	}
	limit = min(limit, maximum)
	offset = max(offset, 0)

	summaries, err := s.store.List(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return summaries, nil
}

// fromRecord decodes a stored row back into a typed Report.
func fromRecord(rec *store.Record) (*Report, error) {
	var doc Document
	if err := json.Unmarshal(rec.Data, &doc); err != nil {
		return nil, fmt.Errorf("decode report %s: %w", rec.ID, err)
	}

	return &Report{
		ID:        rec.ID,
		UserID:    rec.UserID,
		Title:     rec.Title,
		Type:      ReportType(rec.ReportType),
		Data:      doc,
		CreatedAt: rec.CreatedAt,
	}, nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrTelemetryUnavailable):
		return "upstream"
	case errors.Is(err, ErrPersistence):
		return "persistence"
	case errors.Is(err, ErrFarmNotFound):
		return "not_found"
	default:
		return "internal"
	}
}
