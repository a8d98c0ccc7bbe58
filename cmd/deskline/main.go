package main

import (
	"os"

	"github.com/spf13/cobra"

	"deskline/internal/interfaces/cli/auth"
	"deskline/internal/interfaces/cli/catalog"
	"deskline/internal/interfaces/cli/configcmd"
	"deskline/internal/interfaces/cli/dashboard"
	"deskline/internal/interfaces/cli/profile"
	"deskline/internal/interfaces/cli/ticket"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "deskline",
		Short:         "Deskline - a terminal client for the support-ticket service",
		Long:          `Deskline is a terminal client for the support-ticket service: file, browse, and manage tickets without leaving the shell.`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(
		auth.NewLoginCommand(),
		auth.NewLogoutCommand(),
		auth.NewPasswordCommand(),
		ticket.NewCommand(),
		catalog.NewCommand(),
		profile.NewCommand(),
		dashboard.NewCommand(),
		configcmd.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
