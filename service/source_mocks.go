package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lottosync/events"
	"lottosync/models"
)

// MockFetcher is a mock implementation of Fetcher
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockDrawSource is a mock implementation of DrawSource
type MockDrawSource struct {
	mock.Mock
}

func (m *MockDrawSource) FetchAll(ctx context.Context) ([]models.Draw, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Draw), args.Error(1)
}

// MockProbeSource is a mock implementation of ProbeSource
type MockProbeSource struct {
	mock.Mock
}

func (m *MockProbeSource) FetchDraw(ctx context.Context, drawNumber int) (*models.Draw, error) {
	args := m.Called(ctx, drawNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Draw), args.Error(1)
}

// MockDrawRepository is a mock implementation of DrawRepository
type MockDrawRepository struct {
	mock.Mock
}

func (m *MockDrawRepository) Load(ctx context.Context) ([]models.Draw, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Draw), args.Error(1)
}

func (m *MockDrawRepository) Save(ctx context.Context, draws []models.Draw) error {
	args := m.Called(ctx, draws)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Emit(ctx context.Context, event events.Event) {
	m.Called(ctx, event)
}
