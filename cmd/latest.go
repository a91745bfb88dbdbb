package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lottosync/config"
	"lottosync/repository"
	"lottosync/service"
)

// NewLatestCommand creates the latest command
func NewLatestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "latest",
		Short: "Print the most recent draw in the local dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLatest(cmd.Context())
		},
	}
}

func runLatest(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	applyLogLevel(cfg)

	statsService := service.NewStatsService(repository.NewDrawRepository(cfg.Storage.OutputPath))

	draw, err := statsService.LatestDraw(ctx)
	if err != nil {
		return err
	}
	if draw == nil {
		return fmt.Errorf("the local dataset is empty; run update first")
	}

	fmt.Printf("Draw %d (%s)\n", draw.DrawNumber, draw.Date)
	fmt.Printf("  Numbers: %v\n", draw.Numbers)
	fmt.Printf("  Bonus:   %d\n", draw.BonusNumber)
	return nil
}
