package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	svcreport "github.com/Alijeyrad/agrolytics_backend/internal/service/report"
)

func NewGetCommand() *cobra.Command {
	var id, userID string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print a stored report",
		RunE: func(cmd *cobra.Command, args []string) error {
			reportID, err := uuid.Parse(id)
			if err != nil {
				return fmt.Errorf("invalid report id %q: %w", id, err)
			}
			return withService(cmd, func(ctx context.Context, svc svcreport.Service) error {
				rep, err := svc.Get(ctx, reportID, userID)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), rep)
			})
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "report id")
	cmd.Flags().StringVar(&userID, "user", "", "owner user id")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
