package main

import (
	"log/slog"
	"os"

	"deliverydesk/cmd"

	"github.com/spf13/cobra"
)

var (
	envFile string
	config  cmd.Config
	logger  *slog.Logger
)

// Execute runs the deliverydesk command line.
func Execute() error {
	root := &cobra.Command{
		Use:           "deliverydesk",
		Short:         "Delivery form backend",
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			var err error
			config, err = cmd.LoadConfig(envFile)
			if err != nil {
				return err
			}

			logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: config.LogLevel}))
			slog.SetDefault(logger)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	root.AddCommand(serveCmd(), catalogCmd())
	return root.Execute()
}
