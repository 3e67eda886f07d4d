package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	svcreport "github.com/Alijeyrad/agrolytics_backend/internal/service/report"
)

func NewGenerateCommand() *cobra.Command {
	var (
		req      svcreport.Request
		noCharts bool
	)

	types := make([]string, len(svcreport.ReportTypes))
	for i, t := range svcreport.ReportTypes {
		types[i] = string(t)
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate, persist and print a report",
		Example: `  agrolytics report generate --type soil_analysis --user u-42 --from 2024-06-01 --to 2024-06-30
  agrolytics report generate --type farm_summary --user u-42 --farm 6f1c... --from 2024-01-01 --to 2024-12-31`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if noCharts {
				off := false
				req.Options.IncludeCharts = &off
			}
			return withService(cmd, func(ctx context.Context, svc svcreport.Service) error {
				rep, err := svc.Generate(ctx, req)
				if err != nil {
					return fmt.Errorf("generate report: %w", err)
				}
				return printJSON(cmd.OutOrStdout(), rep)
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.ReportType, "type", "", "report type: "+strings.Join(types, ", "))
	f.StringVar(&req.UserID, "user", "", "owner user id")
	f.StringVar(&req.StartDate, "from", "", "period start, YYYY-MM-DD")
	f.StringVar(&req.EndDate, "to", "", "period end, YYYY-MM-DD")
	f.StringSliceVar(&req.FarmIDs, "farm", nil, "farm id filter (repeatable)")
	f.StringVar(&req.Title, "title", "", "report title")
	f.BoolVar(&noCharts, "no-charts", false, "omit chart payloads")

	for _, name := range []string{"type", "user", "from", "to"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}
