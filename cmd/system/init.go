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

func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the application database if it does not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			fmt.Fprintln(cmd.OutOrStdout(), "Initializing database...")
			if err := database.InitializeDatabase(ctx, cfg.Database); err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Database initialized successfully.")
			return nil
		},
	}

	return cmd
}
