package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lottosync/config"
	"lottosync/events"
	"lottosync/fetcher"
	"lottosync/models"
	"lottosync/repository"
	"lottosync/service"
)

// NewUpdateCommand creates the update command
func NewUpdateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Fetch the newest draws and refresh the local dataset",
		Long: `Fetch the full dataset from the mirror, or fall back to probing the
per-draw endpoint around the newest known draw, and overwrite the local
dataset file with the merged result.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd.Context())
		},
	}
}

func runUpdate(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	applyLogLevel(cfg)

	client := fetcher.NewClient(cfg.Fetch)
	repo := repository.NewDrawRepository(cfg.Storage.OutputPath)

	bus := events.NewBus()
	subscribeRunSummary(bus)

	updateService := service.NewUpdateService(
		cfg,
		service.NewMirrorSource(client, cfg.Source.MirrorURL),
		service.NewIncrementalSource(client, cfg.Source.IncrementalURL),
		repo,
		bus,
	)

	if _, err := updateService.Update(ctx); err != nil {
		return err
	}
	return nil
}

// subscribeRunSummary prints a human readable summary once a run finishes
func subscribeRunSummary(bus *events.Bus) {
	bus.Subscribe(events.EventTypeDatasetUpdated, func(ctx context.Context, event events.Event) {
		updated, ok := event.(events.DatasetUpdatedEvent)
		if !ok {
			return
		}
		if updated.Source == models.UpdateSourceNone {
			fmt.Printf("No new draws found; kept %d existing draws (latest %d)\n",
				updated.Total, updated.MaxDrawNumber)
			return
		}
		fmt.Printf("Dataset updated from %s source: %d draws total, %d new, latest draw %d\n",
			updated.Source, updated.Total, updated.Added, updated.MaxDrawNumber)
	})
}
