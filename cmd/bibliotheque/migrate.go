package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/shell/config"
)

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the events table and its indexes if they do not exist",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			logger, err := config.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}

			es, err := config.OpenEventStore(cmd.Context(), cfg, logger, nil)
			if err != nil {
				return err
			}
			defer func() { _ = es.Close() }()

			if err = es.CreateSchema(cmd.Context()); err != nil {
				return err
			}

			logger.Info("schema ready", "driver", es.Driver)

			return nil
		},
	}
}
