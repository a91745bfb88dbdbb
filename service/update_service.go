package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"lottosync/config"
	"lottosync/events"
	"lottosync/models"
	"lottosync/reconcile"
)

// ErrNoDraws indicates that no source produced data and nothing was stored before
var ErrNoDraws = errors.New("no draw data available from any source")

// updateService implements the UpdateService interface
type updateService struct {
	cfg       *config.Config
	mirror    DrawSource
	probe     ProbeSource
	repo      DrawRepository
	publisher EventPublisher
}

// NewUpdateService creates a new update service
func NewUpdateService(cfg *config.Config, mirror DrawSource, probe ProbeSource, repo DrawRepository, publisher EventPublisher) UpdateService {
	return &updateService{
		cfg:       cfg,
		mirror:    mirror,
		probe:     probe,
		repo:      repo,
		publisher: publisher,
	}
}

// Update executes a full update run and reports what was persisted
func (s *updateService) Update(ctx context.Context) (*models.UpdateResult, error) {
	runID := uuid.New().String()
	logger := log.WithField("runId", runID)

	existing, err := s.repo.Load(ctx)
	if err != nil {
		return nil, s.fail(ctx, runID, fmt.Errorf("failed to load existing dataset: %w", err))
	}
	logger.WithFields(log.Fields{
		"existingDraws": len(existing),
		"maxKnown":      models.MaxDrawNumber(existing),
	}).Info("Starting dataset update")

	// The mirror publishes the complete dataset, so a successful fetch
	// replaces the stored file outright
	primary, err := s.mirror.FetchAll(ctx)
	if err != nil {
		logger.WithField("error", err).Warn("Mirror fetch failed, falling back to incremental probing")
	} else if len(primary) == 0 {
		logger.Warn("Mirror returned no draws, falling back to incremental probing")
	} else {
		result, err := s.persist(ctx, runID, models.UpdateSourceMirror, existing, primary)
		if err != nil {
			return nil, s.fail(ctx, runID, err)
		}
		logger.WithFields(log.Fields{
			"total": result.Total,
			"added": result.Added,
		}).Info("Dataset replaced from mirror")
		return result, nil
	}

	found := s.probeAround(ctx, models.MaxDrawNumber(existing))
	merged := reconcile.Merge(existing, found)

	if len(merged) == 0 {
		return nil, s.fail(ctx, runID, ErrNoDraws)
	}

	source := models.UpdateSourceIncremental
	if len(found) == 0 {
		source = models.UpdateSourceNone
		logger.Info("No new draws found, keeping existing dataset")
	}

	result, err := s.persist(ctx, runID, source, existing, merged)
	if err != nil {
		return nil, s.fail(ctx, runID, err)
	}
	logger.WithFields(log.Fields{
		"total":  result.Total,
		"added":  result.Added,
		"source": result.Source,
	}).Info("Dataset updated")
	return result, nil
}

// probeAround queries the incremental endpoint for draw numbers in a window
// around the highest known draw, one at a time in increasing order. Individual
// misses are expected near the head of the dataset and never fail the run.
func (s *updateService) probeAround(ctx context.Context, maxKnown int) []models.Draw {
	window := reconcile.Window(maxKnown, s.cfg.Source.ProbeRadius)

	found := make([]models.Draw, 0, len(window))
	for _, drawNumber := range window {
		draw, err := s.probe.FetchDraw(ctx, drawNumber)
		if err != nil {
			log.WithFields(log.Fields{
				"drawNumber": drawNumber,
				"error":      err,
			}).Debug("Probe miss")
			continue
		}
		found = append(found, *draw)
	}
	return found
}

// persist writes the draws and announces the outcome on the event bus. The
// stored file is always ordered ascending by draw number.
func (s *updateService) persist(ctx context.Context, runID string, source models.UpdateSource, existing, draws []models.Draw) (*models.UpdateResult, error) {
	reconcile.Sort(draws)
	if err := s.repo.Save(ctx, draws); err != nil {
		return nil, fmt.Errorf("failed to persist dataset: %w", err)
	}

	result := &models.UpdateResult{
		RunID:         runID,
		Source:        source,
		Total:         len(draws),
		Added:         countAdded(existing, draws),
		MaxDrawNumber: models.MaxDrawNumber(draws),
	}

	s.publisher.Emit(ctx, events.DatasetUpdatedEvent{
		RunID:         result.RunID,
		Source:        result.Source,
		Total:         result.Total,
		Added:         result.Added,
		MaxDrawNumber: result.MaxDrawNumber,
	})
	return result, nil
}

// fail announces the failed run before handing the error up
func (s *updateService) fail(ctx context.Context, runID string, err error) error {
	s.publisher.Emit(ctx, events.UpdateFailedEvent{
		RunID:  runID,
		Reason: err.Error(),
	})
	return err
}

// countAdded reports how many draw numbers appear in the new dataset but not the old
func countAdded(existing, updated []models.Draw) int {
	known := make(map[int]struct{}, len(existing))
	for _, draw := range existing {
		known[draw.DrawNumber] = struct{}{}
	}

	added := 0
	for _, draw := range updated {
		if _, ok := known[draw.DrawNumber]; !ok {
			added++
		}
	}
	return added
}
