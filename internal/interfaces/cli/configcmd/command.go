// Package configcmd holds the config init and show commands.
package configcmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"deskline/internal/infrastructure/config"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the client configuration",
	}

	cmd.AddCommand(
		newInitCommand(),
		newShowCommand(),
	)

	return cmd
}

func newInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := config.DefaultDir()
			if err := os.MkdirAll(dir, 0o700); err != nil {
				return fmt.Errorf("create config dir: %w", err)
			}

			path := filepath.Join(dir, "config.yaml")
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", path)
			}

			data, err := yaml.Marshal(config.Defaults())
			if err != nil {
				return fmt.Errorf("encode defaults: %w", err)
			}
			if err := os.WriteFile(path, data, 0o600); err != nil {
				return fmt.Errorf("write config file: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			data, err := yaml.Marshal(map[string]any{
				"api": map[string]any{
					"base_url":        cfg.API.BaseURL,
					"timeout_seconds": cfg.API.TimeoutSeconds,
				},
				"state": map[string]any{
					"dir":      cfg.State.Dir,
					"database": cfg.State.Database,
				},
				"logger": map[string]any{
					"level":       cfg.Logger.Level,
					"format":      cfg.Logger.Format,
					"output_path": cfg.Logger.OutputPath,
				},
			})
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
