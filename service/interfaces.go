package service

import (
	"context"

	"lottosync/events"
	"lottosync/models"
)

// Fetcher defines the interface for retrieving raw JSON payloads over HTTP
type Fetcher interface {
	// Fetch retrieves the body at the given URL, retrying transient failures
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// DrawSource defines the interface for a source publishing the full dataset
type DrawSource interface {
	// FetchAll retrieves every draw the source currently publishes
	FetchAll(ctx context.Context) ([]models.Draw, error)
}

// ProbeSource defines the interface for a source queried one draw at a time
type ProbeSource interface {
	// FetchDraw retrieves a single draw by its draw number
	FetchDraw(ctx context.Context, drawNumber int) (*models.Draw, error)
}

// DrawRepository defines the interface for dataset persistence
type DrawRepository interface {
	// Load reads the stored dataset, returning an empty collection when the
	// file is missing or unreadable
	Load(ctx context.Context) ([]models.Draw, error)

	// Save overwrites the stored dataset with the given draws
	Save(ctx context.Context, draws []models.Draw) error
}

// UpdateService defines the interface for dataset update runs
type UpdateService interface {
	// Update executes a full update run and reports what was persisted
	Update(ctx context.Context) (*models.UpdateResult, error)
}

// StatsService defines the interface for read-only dataset queries
type StatsService interface {
	// LatestDraw returns the draw with the highest draw number, or nil when
	// the dataset is empty
	LatestDraw(ctx context.Context) (*models.Draw, error)

	// FrequencyReport computes per-number frequencies across all stored draws
	FrequencyReport(ctx context.Context) (*models.FrequencyReport, error)
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Emit(ctx context.Context, event events.Event)
}
