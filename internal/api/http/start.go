package http

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/Alijeyrad/agrolytics_backend/config"
	"github.com/Alijeyrad/agrolytics_backend/internal/api/http/router"
	"github.com/Alijeyrad/agrolytics_backend/internal/app"
)

// Start runs the API server with the archive worker until SIGINT/SIGTERM.
func Start(cfg *config.Config, timeout time.Duration) {
	fx.New(
		fx.Supply(cfg),
		app.InfraModule,
		app.ServiceModule,
		app.WorkerModule,
		router.Module,
		Module,

		// NewServer registers the listen hook; invoking it forces construction.
		fx.Invoke(func(*fiber.App) {}),

		fx.StopTimeout(timeout),
		fx.WithLogger(func() fxevent.Logger { return fxevent.NopLogger }),
	).Run()
}
