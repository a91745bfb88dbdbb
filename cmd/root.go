package cmd

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"lottosync/config"
)

// Execute builds the command tree and runs the selected command
func Execute(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:   "lottosync",
		Short: "Lottery draw dataset updater",
		Long: `lottosync keeps a local JSON dataset of lottery draws up to date.
It prefers a bulk mirror of the full history and falls back to probing
a per-draw endpoint around the newest known draw.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(NewUpdateCommand())
	rootCmd.AddCommand(NewLatestCommand())
	rootCmd.AddCommand(NewStatsCommand())
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd.ExecuteContext(ctx)
}

// applyLogLevel configures the global logger from the loaded configuration
func applyLogLevel(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		log.WithField("logLevel", cfg.App.LogLevel).Warn("Unknown log level, using info")
		level = log.InfoLevel
	}
	log.SetLevel(level)
}
