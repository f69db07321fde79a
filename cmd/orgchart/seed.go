package main

import (
	"github.com/gartstein/orgchart/internal/org/config"
	"github.com/spf13/cobra"
)

func newSeedCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the role and permission catalogue",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := initLogger()
			defer syncLogger(logger)

			cfg, err := config.Load(opts.configPath, opts.envFiles...)
			if err != nil {
				return err
			}
			repo, err := openRepository(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer repo.Close()

			if err := repo.SeedRoles(cmd.Context()); err != nil {
				return err
			}
			logger.Info("Roles seeded")
			return nil
		},
	}
}
