// Package dashboard holds the ticket-counts summary command.
package dashboard

import (
	"fmt"

	"github.com/spf13/cobra"

	"deskline/internal/interfaces/cli/app"
)

func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show ticket counts by status",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			defer a.Close()

			if _, err := a.Sessions.Require(); err != nil {
				return err
			}

			result, err := a.DashboardCounts.Execute(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total:              %d\n", result.Counts.Total)
			fmt.Fprintf(out, "Pending:            %d\n", result.Counts.Pending)
			fmt.Fprintf(out, "In progress:        %d\n", result.Counts.InProgress)
			fmt.Fprintf(out, "Under verification: %d\n", result.Counts.UnderVerification)
			fmt.Fprintf(out, "Completed:          %d\n", result.Counts.Completed)
			if result.FromMirror {
				fmt.Fprintln(out, "Warning: counts derived from the last saved snapshot; the server could not be reached")
			}
			return nil
		},
	}
}
