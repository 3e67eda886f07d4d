package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/Alijeyrad/agrolytics_backend/cmd/http"
	reportcmd "github.com/Alijeyrad/agrolytics_backend/cmd/report"
	systemcmd "github.com/Alijeyrad/agrolytics_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "agrolytics",
	Short: "Agronomic analytics and report generation for farms.",
	Long: `Agrolytics turns farm telemetry (soil samples, vegetation indices, weather
and ledger entries) into scored, persisted analytics reports with
prioritized recommendations.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
	rootCmd.AddCommand(reportcmd.NewReportCommand())
}
