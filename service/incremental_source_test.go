package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"lottosync/models"
	"lottosync/normalize"
)

func TestIncrementalSource_FetchDraw(t *testing.T) {
	ctx := context.Background()

	mockFetcher := new(MockFetcher)
	source := NewIncrementalSource(mockFetcher, "http://localhost/draw")

	body := []byte(`{"status": "success", "drawNo": 1103, "date": "2024-02-17",
		"num1": 16, "num2": 5, "num3": 38, "num4": 22, "num5": 44, "num6": 31, "bonusNo": 2}`)
	mockFetcher.On("Fetch", ctx, "http://localhost/draw?drawNo=1103").Return(body, nil)

	draw, err := source.FetchDraw(ctx, 1103)

	assert.NoError(t, err)
	assert.Equal(t, &models.Draw{
		DrawNumber:  1103,
		Date:        "2024-02-17",
		Numbers:     []int{5, 16, 22, 31, 38, 44},
		BonusNumber: 2,
	}, draw)
	mockFetcher.AssertExpectations(t)
}

func TestIncrementalSource_FetchDraw_AppendsToExistingQuery(t *testing.T) {
	ctx := context.Background()

	mockFetcher := new(MockFetcher)
	source := NewIncrementalSource(mockFetcher, "http://localhost/draw?method=getLottoNumber")

	body := []byte(`{"status": "success", "drawNo": 1103, "date": "2024-02-17",
		"num1": 16, "num2": 5, "num3": 38, "num4": 22, "num5": 44, "num6": 31, "bonusNo": 2}`)
	mockFetcher.On("Fetch", ctx, "http://localhost/draw?method=getLottoNumber&drawNo=1103").Return(body, nil)

	_, err := source.FetchDraw(ctx, 1103)

	assert.NoError(t, err)
	mockFetcher.AssertExpectations(t)
}

func TestIncrementalSource_FetchDraw_RejectsFailureStatus(t *testing.T) {
	ctx := context.Background()

	mockFetcher := new(MockFetcher)
	source := NewIncrementalSource(mockFetcher, "http://localhost/draw")

	// The endpoint answers 200 with a fail status for unpublished draws
	body := []byte(`{"status": "fail"}`)
	mockFetcher.On("Fetch", ctx, "http://localhost/draw?drawNo=1104").Return(body, nil)

	draw, err := source.FetchDraw(ctx, 1104)

	assert.ErrorIs(t, err, normalize.ErrInvalidRecord)
	assert.Nil(t, draw)
}

func TestIncrementalSource_FetchDraw_FetchErrorPropagates(t *testing.T) {
	ctx := context.Background()

	mockFetcher := new(MockFetcher)
	source := NewIncrementalSource(mockFetcher, "http://localhost/draw")

	mockFetcher.On("Fetch", ctx, "http://localhost/draw?drawNo=1103").Return(nil, errors.New("connection refused"))

	draw, err := source.FetchDraw(ctx, 1103)

	assert.Error(t, err)
	assert.Nil(t, draw)
	assert.Contains(t, err.Error(), "failed to fetch draw 1103")
}

func TestIncrementalSource_FetchDraw_UndecodableBody(t *testing.T) {
	ctx := context.Background()

	mockFetcher := new(MockFetcher)
	source := NewIncrementalSource(mockFetcher, "http://localhost/draw")

	mockFetcher.On("Fetch", ctx, "http://localhost/draw?drawNo=1103").Return([]byte(`[1, 2, 3]`), nil)

	draw, err := source.FetchDraw(ctx, 1103)

	assert.Error(t, err)
	assert.Nil(t, draw)
	assert.Contains(t, err.Error(), "failed to decode draw 1103")
}
