package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"lottosync/models"
	"lottosync/normalize"
)

// incrementalSource implements ProbeSource against the per-draw endpoint
type incrementalSource struct {
	fetcher Fetcher
	url     string
}

// NewIncrementalSource creates a probe source backed by the per-draw endpoint
func NewIncrementalSource(fetcher Fetcher, url string) ProbeSource {
	return &incrementalSource{
		fetcher: fetcher,
		url:     url,
	}
}

// FetchDraw retrieves a single draw by its draw number
func (s *incrementalSource) FetchDraw(ctx context.Context, drawNumber int) (*models.Draw, error) {
	body, err := s.fetcher.Fetch(ctx, s.drawURL(drawNumber))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch draw %d: %w", drawNumber, err)
	}

	var record normalize.IncrementalRecord
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, fmt.Errorf("failed to decode draw %d: %w", drawNumber, err)
	}

	draw, err := normalize.Incremental(record)
	if err != nil {
		return nil, fmt.Errorf("draw %d rejected: %w", drawNumber, err)
	}
	return draw, nil
}

// drawURL appends the draw number query parameter to the configured endpoint
func (s *incrementalSource) drawURL(drawNumber int) string {
	sep := "?"
	if strings.Contains(s.url, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%sdrawNo=%d", s.url, sep, drawNumber)
}
