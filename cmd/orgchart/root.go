package main

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gartstein/orgchart/internal/org/config"
	"github.com/gartstein/orgchart/internal/org/db"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
)

type rootOptions struct {
	configPath string
	envFiles   []string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "orgchart",
		Short:         "Organization service: departments, employees and reporting lines",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultPath, "path to the YAML config file")
	cmd.PersistentFlags().StringSliceVar(&opts.envFiles, "env-file", []string{".env"}, "dotenv files loaded when present")

	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newSeedCmd(opts))
	return cmd
}

// initLogger initializes a Zap production logger.
func initLogger() *zap.Logger {
	logger, _ := zap.NewProduction()
	return logger
}

func syncLogger(logger *zap.Logger) {
	if err := logger.Sync(); err != nil {
		logger.Debug("failed to sync logger", zap.Error(err))
	}
}

// openRepository connects to the configured store, retrying with exponential
// backoff while the database comes up.
func openRepository(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*db.Repository, error) {
	var repo *db.Repository
	connect := func() error {
		var err error
		if cfg.UsesSQLite() {
			repo, err = db.Open(sqlite.Open(cfg.DBPath))
		} else {
			repo, err = db.NewRepository(cfg.Database())
		}
		if err != nil {
			logger.Warn("Database not ready", zap.Error(err))
		}
		return err
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = time.Minute
	if err := backoff.Retry(connect, backoff.WithContext(policy, ctx)); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return repo, nil
}
