package http

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/gofiber/fiber/v3/middleware/helmet"
	"github.com/gofiber/fiber/v3/middleware/logger"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/Alijeyrad/agrolytics_backend/config"
	"github.com/Alijeyrad/agrolytics_backend/internal/api/http/handler"
	"github.com/Alijeyrad/agrolytics_backend/internal/api/http/middleware"
	"github.com/Alijeyrad/agrolytics_backend/internal/api/http/router"
	"github.com/Alijeyrad/agrolytics_backend/pkg/observability"
)

// Module provides the HTTP Server to the fx graph.
var Module = fx.Module("http", fx.Provide(NewServer))

type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Cfg       *config.Config
	Redis     *redis.Client
	Router    *router.Router
	OTel      *observability.Provider `optional:"true"`
}

func NewServer(p Params) *fiber.App {
	timeout := time.Duration(p.Cfg.Server.TimeoutSeconds) * time.Second
	app := fiber.New(fiber.Config{
		AppName:         "agrolytics",
		ReadTimeout:     timeout,
		WriteTimeout:    timeout,
		StructValidator: handler.NewValidator(),
	})

	if p.OTel != nil && p.Cfg.Observability.Tracing.Enabled {
		app.Use(observability.FiberMiddleware(p.Cfg.Observability.ServiceName,
			healthcheck.LivenessEndpoint,
			healthcheck.ReadinessEndpoint,
			healthcheck.StartupEndpoint,
			router.MetricsPath(p.Cfg),
		))
	}

	configureGlobalMiddleware(app, p.Cfg, p.Redis)

	p.Router.Register(app)

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			addr := fmt.Sprintf(":%d", p.Cfg.Server.Port)
			go func() {
				if err := app.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true}); err != nil {
					slog.Error("HTTP server error", "err", err)
				}
			}()
			slog.Info("HTTP server listening", "addr", addr)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})

	return app
}

func configureGlobalMiddleware(app *fiber.App, cfg *config.Config, rdb *redis.Client) {
	app.Use(middleware.RequestID())
	app.Use(recoverer.New())

	if cfg.Server.Environment == "production" {
		app.Use(helmet.New(helmetConfig(cfg.Server.Headers)))
	}
	if cfg.Server.CORS.Enabled {
		app.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.Server.CORS.AllowOrigins,
			AllowMethods:     cfg.Server.CORS.AllowMethods,
			AllowHeaders:     cfg.Server.CORS.AllowHeaders,
			ExposeHeaders:    cfg.Server.CORS.ExposeHeaders,
			AllowCredentials: cfg.Server.CORS.AllowCredentials,
			MaxAge:           cfg.Server.CORS.MaxAgeSeconds,
		}))
	}
	if cfg.Server.RateLimit.Enabled {
		app.Use(middleware.NewLimiterWithRedis(rdb, cfg.Server.RateLimit))
	}

	app.Use(logger.New(logger.Config{
		Format: "${ip} - [${time}] [req_id=${locals:requestid}] ${method} ${url} ${status} ${latency}\n",
	}))
}

// helmetConfig overrides helmet defaults with any header set in config.
func helmetConfig(h config.HeadersConfig) helmet.Config {
	c := helmet.ConfigDefault
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&c.XSSProtection, h.XSSProtection)
	set(&c.ContentTypeNosniff, h.ContentTypeNosniff)
	set(&c.XFrameOptions, h.XFrameOptions)
	set(&c.ReferrerPolicy, h.ReferrerPolicy)
	set(&c.CrossOriginEmbedderPolicy, h.CrossOriginEmbedderPolicy)
	set(&c.CrossOriginOpenerPolicy, h.CrossOriginOpenerPolicy)
	set(&c.CrossOriginResourcePolicy, h.CrossOriginResourcePolicy)
	set(&c.OriginAgentCluster, h.OriginAgentCluster)
	set(&c.XDNSPrefetchControl, h.XDNSPrefetchControl)
	set(&c.XDownloadOptions, h.XDownloadOptions)
	set(&c.XPermittedCrossDomain, h.XPermittedCrossDomain)
	return c
}
