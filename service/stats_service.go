package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"lottosync/models"
)

// statsService implements the StatsService interface
type statsService struct {
	repo DrawRepository
}

// NewStatsService creates a new stats service
func NewStatsService(repo DrawRepository) StatsService {
	return &statsService{
		repo: repo,
	}
}

// LatestDraw returns the draw with the highest draw number, or nil when the
// dataset is empty
func (s *statsService) LatestDraw(ctx context.Context) (*models.Draw, error) {
	draws, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	return models.LatestDraw(draws), nil
}

// FrequencyReport computes per-number frequencies across all stored draws
func (s *statsService) FrequencyReport(ctx context.Context) (*models.FrequencyReport, error) {
	draws, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	if len(draws) == 0 {
		return &models.FrequencyReport{}, nil
	}

	totalBalls := 0
	counts := make(map[int]int)
	for _, draw := range draws {
		for _, number := range draw.Numbers {
			counts[number]++
			totalBalls++
		}
	}

	frequencies := make([]models.NumberFrequency, 0, len(counts))
	for number, count := range counts {
		frequencies = append(frequencies, models.NumberFrequency{
			Number: number,
			Count:  count,
			Share:  float64(count) / float64(totalBalls) * 100,
		})
	}

	// Most frequent first, ties broken by the lower number
	sort.Slice(frequencies, func(i, j int) bool {
		if frequencies[i].Count != frequencies[j].Count {
			return frequencies[i].Count > frequencies[j].Count
		}
		return frequencies[i].Number < frequencies[j].Number
	})
	for i := range frequencies {
		frequencies[i].Rank = i + 1
	}

	// Chi-squared statistic against a uniform spread over the numbers seen
	expected := float64(totalBalls) / float64(len(counts))
	chiSquared := 0.0
	for _, freq := range frequencies {
		chiSquared += math.Pow(float64(freq.Count)-expected, 2) / expected
	}

	return &models.FrequencyReport{
		TotalDraws:      len(draws),
		MaxDrawNumber:   models.MaxDrawNumber(draws),
		DistinctNumbers: len(counts),
		ChiSquared:      chiSquared,
		Frequencies:     frequencies,
	}, nil
}
