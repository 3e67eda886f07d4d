package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/Alijeyrad/agrolytics_backend/config"
	"github.com/Alijeyrad/agrolytics_backend/internal/api/http/handler"
	"github.com/Alijeyrad/agrolytics_backend/internal/service/report"
	"github.com/Alijeyrad/agrolytics_backend/pkg/database"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg       *config.Config
	DB        *sqlx.DB
	ReportSvc report.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	reportH := handler.NewReportHandler(r.p.ReportSvc)

	api := app.Group("/api/v1")
	r.registerReportRoutes(api, reportH)
}

// MetricsPath is where the Prometheus handler is mounted.
func MetricsPath(cfg *config.Config) string {
	if cfg.Observability.Metrics.Path == "" {
		return "/metrics"
	}
	return cfg.Observability.Metrics.Path
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return database.Ping(c.Context(), r.p.DB) == nil },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		app.Get(MetricsPath(r.p.Cfg), adaptor.HTTPHandler(promhttp.Handler()))
	}
}
