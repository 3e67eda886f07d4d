package app

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/Alijeyrad/agrolytics_backend/config"
	"github.com/Alijeyrad/agrolytics_backend/internal/analytics"
	"github.com/Alijeyrad/agrolytics_backend/internal/recommendation"
	"github.com/Alijeyrad/agrolytics_backend/internal/service/report"
	"github.com/Alijeyrad/agrolytics_backend/internal/store"
	"github.com/Alijeyrad/agrolytics_backend/internal/telemetry"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideThresholds,
		ProvideTelemetryGateway,
		ProvideReportStore,
		ProvideRecommendationEngine,
		ProvideEventPublisher,
		ProvideReportService,
	),
)

// ProvideThresholds applies config overrides to the default rule table. An
// override is folded into Version so stored reports record it.
func ProvideThresholds(cfg *config.Config) analytics.Thresholds {
	t := analytics.DefaultThresholds()
	if p := cfg.Report.ProfitTrendThreshold; p > 0 && p != t.Trend.Profit {
		t.Trend.Profit = p
		t.Version = fmt.Sprintf("%s+profit=%g", t.Version, p)
	}
	return t
}

func ProvideTelemetryGateway(db *sqlx.DB) telemetry.Gateway {
	return telemetry.NewPostgresGateway(db)
}

// ProvideReportStore fronts Postgres with the Redis cache unless the TTL is zero.
func ProvideReportStore(db *sqlx.DB, rdb *redis.Client, cfg *config.Config) store.ReportStore {
	pg := store.NewPostgresStore(db)
	if ttl := cfg.Report.CacheTTL(); ttl > 0 {
		return store.NewCachedStore(pg, rdb, ttl)
	}
	return pg
}

func ProvideRecommendationEngine(t analytics.Thresholds) recommendation.Engine {
	return recommendation.NewRuleEngine(t)
}

// ProvideEventPublisher keeps a nil *nats.Conn from becoming a non-nil Publisher.
func ProvideEventPublisher(nc *nats.Conn) report.Publisher {
	if nc == nil {
		return nil
	}
	return nc
}

type reportParams struct {
	fx.In

	Cfg         *config.Config
	Gateway     telemetry.Gateway
	Store       store.ReportStore
	Thresholds  analytics.Thresholds
	Recommender recommendation.Engine
	Events      report.Publisher
}

func ProvideReportService(p reportParams) report.Service {
	slog.Info("report service configured",
		"thresholds_version", p.Thresholds.Version,
		"fetch_timeout", p.Cfg.Report.FetchTimeout(),
		"fetch_failure_policy", p.Cfg.Report.FetchFailurePolicy,
		"cache_ttl", p.Cfg.Report.CacheTTL(),
	)
	return report.New(p.Gateway, p.Store, p.Thresholds, p.Recommender, p.Events, p.Cfg.Report)
}
