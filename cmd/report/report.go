package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/Alijeyrad/agrolytics_backend/config"
	"github.com/Alijeyrad/agrolytics_backend/internal/app"
	svcreport "github.com/Alijeyrad/agrolytics_backend/internal/service/report"
	"github.com/Alijeyrad/agrolytics_backend/pkg/logs"
)

func NewReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate and inspect analytics reports",
	}

	cmd.AddCommand(NewGenerateCommand())
	cmd.AddCommand(NewGetCommand())

	return cmd
}

// withService starts the infra and service modules, hands the report
// service to fn and stops the graph afterwards.
func withService(cmd *cobra.Command, fn func(ctx context.Context, svc svcreport.Service) error) error {
	cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	// Logs go to stderr so stdout stays a clean JSON document.
	cfg.Logging.Output.Stderr = true
	slog.SetDefault(logs.New(cfg))

	var svc svcreport.Service
	fxApp := fx.New(
		fx.Supply(cfg),
		app.InfraModule,
		app.ServiceModule,
		fx.Populate(&svc),
		fx.WithLogger(func() fxevent.Logger { return fxevent.NopLogger }),
	)

	ctx := cmd.Context()
	if err := fxApp.Start(ctx); err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}
	defer func() {
		if err := fxApp.Stop(context.Background()); err != nil {
			slog.Warn("shutdown failed", "err", err)
		}
	}()

	return fn(ctx, svc)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
