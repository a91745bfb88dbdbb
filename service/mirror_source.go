package service

import (
	"context"
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"

	"lottosync/models"
	"lottosync/normalize"
	"lottosync/reconcile"
)

// mirrorSource implements DrawSource against the full-dataset mirror endpoint
type mirrorSource struct {
	fetcher Fetcher
	url     string
}

// NewMirrorSource creates a draw source backed by the mirror endpoint
func NewMirrorSource(fetcher Fetcher, url string) DrawSource {
	return &mirrorSource{
		fetcher: fetcher,
		url:     url,
	}
}

// FetchAll retrieves every draw the mirror currently publishes
func (s *mirrorSource) FetchAll(ctx context.Context) ([]models.Draw, error) {
	body, err := s.fetcher.Fetch(ctx, s.url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch mirror dataset: %w", err)
	}

	// Decode entries individually so one malformed record drops alone
	// instead of aborting the whole payload
	var entries []json.RawMessage
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode mirror dataset: %w", err)
	}

	draws := make([]models.Draw, 0, len(entries))
	dropped := 0
	for _, entry := range entries {
		var record normalize.MirrorRecord
		if err := json.Unmarshal(entry, &record); err != nil {
			dropped++
			log.WithField("error", err).Debug("Dropping undecodable mirror record")
			continue
		}

		draw, err := normalize.Mirror(record)
		if err != nil {
			dropped++
			log.WithField("error", err).Debug("Dropping invalid mirror record")
			continue
		}
		draws = append(draws, *draw)
	}

	if dropped > 0 {
		log.WithFields(log.Fields{
			"dropped": dropped,
			"kept":    len(draws),
		}).Warn("Mirror dataset contained invalid records")
	}

	// The keyed union collapses repeated draw numbers, the later record wins
	return reconcile.Merge(nil, draws), nil
}
