package system

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/Alijeyrad/agrolytics_backend/config"
	"github.com/Alijeyrad/agrolytics_backend/pkg/database"
)

func NewMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the telemetry and reports schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			db, err := database.NewSQLX(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to connect: %w", err)
			}
			defer db.Close()

			timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
			if timeout <= 0 {
				timeout = time.Minute
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			if err := database.Migrate(ctx, db); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Migrations executed successfully.")
			return nil
		},
	}

	return cmd
}
