// Package catalog holds the provider and service listing commands.
package catalog

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"deskline/internal/application/catalog/usecases"
	"deskline/internal/interfaces/cli/app"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the service-provider catalog",
	}

	cmd.AddCommand(
		newProvidersCommand(),
		newServicesCommand(),
	)

	return cmd
}

func newProvidersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List service providers",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			defer a.Close()

			if _, err := a.Sessions.Require(); err != nil {
				return err
			}

			providers, err := a.ListProviders.Execute(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME")
			for _, p := range providers {
				fmt.Fprintf(w, "%d\t%s\n", p.ID, p.Name)
			}
			return w.Flush()
		},
	}
}

func newServicesCommand() *cobra.Command {
	var providerID uint

	cmd := &cobra.Command{
		Use:   "services",
		Short: "List services for one provider",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			defer a.Close()

			if _, err := a.Sessions.Require(); err != nil {
				return err
			}

			services, err := a.ListServices.Execute(cmd.Context(), usecases.ListServicesQuery{ProviderID: providerID})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME")
			for _, s := range services {
				fmt.Fprintf(w, "%d\t%s\n", s.ID, s.Name)
			}
			return w.Flush()
		},
	}

	cmd.Flags().UintVar(&providerID, "provider", 0, "Service provider id")
	return cmd
}
