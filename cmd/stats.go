package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lottosync/config"
	"lottosync/repository"
	"lottosync/service"
)

// NewStatsCommand creates the stats command
func NewStatsCommand() *cobra.Command {
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Print number frequency statistics for the local dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			top, _ := cmd.Flags().GetInt("top")
			return runStats(cmd.Context(), top)
		},
	}

	statsCmd.Flags().Int("top", 10, "How many numbers to list (0 for all)")
	return statsCmd
}

func runStats(ctx context.Context, top int) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	applyLogLevel(cfg)

	statsService := service.NewStatsService(repository.NewDrawRepository(cfg.Storage.OutputPath))

	report, err := statsService.FrequencyReport(ctx)
	if err != nil {
		return err
	}
	if report.TotalDraws == 0 {
		fmt.Println("The local dataset is empty; run update first")
		return nil
	}

	fmt.Printf("Draws analyzed:   %d (latest draw %d)\n", report.TotalDraws, report.MaxDrawNumber)
	fmt.Printf("Distinct numbers: %d\n", report.DistinctNumbers)
	fmt.Printf("Chi-squared:      %.2f\n", report.ChiSquared)
	fmt.Println()

	frequencies := report.Frequencies
	if top > 0 && top < len(frequencies) {
		frequencies = frequencies[:top]
	}

	fmt.Printf("%4s  %6s  %5s  %6s\n", "Rank", "Number", "Count", "Share")
	for _, freq := range frequencies {
		fmt.Printf("%4d  %6d  %5d  %5.2f%%\n", freq.Rank, freq.Number, freq.Count, freq.Share)
	}
	return nil
}
