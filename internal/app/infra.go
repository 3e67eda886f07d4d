package app

import (
	"context"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/Alijeyrad/agrolytics_backend/config"
	"github.com/Alijeyrad/agrolytics_backend/pkg/database"
	"github.com/Alijeyrad/agrolytics_backend/pkg/observability"
	redispkg "github.com/Alijeyrad/agrolytics_backend/pkg/redis"
	s3pkg "github.com/Alijeyrad/agrolytics_backend/pkg/s3"
)

// InfraModule provides all infrastructure dependencies.
var InfraModule = fx.Module("infra",
	fx.Provide(ProvideDB),
	fx.Provide(ProvideRedis),
	fx.Provide(ProvideOTel),
	fx.Provide(ProvideS3Client),
	fx.Provide(ProvideNatsClient),
)

func ProvideDB(lc fx.Lifecycle, cfg *config.Config) (*sqlx.DB, error) {
	db, err := database.NewSQLX(cfg.Database)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if !cfg.Database.Migrations.AutoMigrate {
				return nil
			}
			slog.Info("applying database schema")
			return database.Migrate(ctx, db)
		},
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing main database connection")
			return db.Close()
		},
	})
	return db, nil
}

func ProvideRedis(lc fx.Lifecycle, cfg *config.Config) (*redis.Client, error) {
	rdb, err := redispkg.NewRedisFromCentral(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing Redis connection")
			return rdb.Close()
		},
	})
	return rdb, nil
}

// ProvideS3Client returns nil when archiving is disabled.
func ProvideS3Client(cfg *config.Config) (*s3pkg.Client, error) {
	if !cfg.Archive.Enabled {
		return nil, nil
	}
	return s3pkg.New(context.Background(), cfg.S3)
}

// ProvideNatsClient returns nil when no NATS URL is configured; report
// events are then not published.
func ProvideNatsClient(lc fx.Lifecycle, cfg *config.Config) (*nats.Conn, error) {
	if cfg.Nats.URL == "" {
		slog.Info("nats disabled, report events will not be published")
		return nil, nil
	}

	nc, err := nats.Connect(cfg.Nats.URL,
		nats.Name("agrolytics"),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				slog.Warn("nats disconnected", "err", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			slog.Info("nats reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("draining NATS connection")
			return nc.Drain()
		},
	})
	return nc, nil
}

func ProvideOTel(lc fx.Lifecycle, cfg *config.Config) (*observability.Provider, error) {
	if !cfg.Observability.Enabled {
		return nil, nil
	}
	provider, err := observability.InitTelemetry(context.Background(), observability.ConfigFrom(cfg))
	if err != nil {
		return nil, err
	}
	slog.Info("observability initialized",
		"tracing", cfg.Observability.Tracing.Enabled,
		"metrics", cfg.Observability.Metrics.Enabled,
	)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("shutting down observability providers")
			return provider.Shutdown(ctx)
		},
	})
	return provider, nil
}
