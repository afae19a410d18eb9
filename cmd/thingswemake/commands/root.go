// Package commands implements the thingswemake command line.
package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/budjb/things-we-make/internal/config"
)

var (
	envFile string
	cfg     *config.Config
	logger  *slog.Logger
)

// Execute runs the root command.
func Execute() error {
	root := &cobra.Command{
		Use:           "thingswemake",
		Short:         "Things We Make recipe site",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var files []string
			if envFile != "" {
				files = append(files, envFile)
			}

			var err error
			cfg, err = config.Load(files...)
			if err != nil {
				return err
			}

			logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: cfg.LogLevel,
			}))
			slog.SetDefault(logger)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", "", "environment file to load (default .env)")

	root.AddCommand(serveCmd(), categoriesCmd())
	return root.Execute()
}
