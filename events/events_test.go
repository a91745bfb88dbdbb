package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"lottosync/models"
)

func TestBus_DeliversToSubscriber(t *testing.T) {
	bus := NewBus()

	var received []DatasetUpdatedEvent
	bus.Subscribe(EventTypeDatasetUpdated, func(ctx context.Context, event Event) {
		if updated, ok := event.(DatasetUpdatedEvent); ok {
			received = append(received, updated)
		} else {
			t.Errorf("Expected DatasetUpdatedEvent, got %T", event)
		}
	})

	testEvent := DatasetUpdatedEvent{
		RunID:         "run-1",
		Source:        models.UpdateSourceMirror,
		Total:         1100,
		Added:         3,
		MaxDrawNumber: 1100,
	}
	bus.Emit(context.Background(), testEvent)

	assert.Len(t, received, 1)
	assert.Equal(t, testEvent, received[0])
}

func TestBus_DeliversInSubscriptionOrder(t *testing.T) {
	bus := NewBus()

	var order []string
	bus.Subscribe(EventTypeUpdateFailed, func(ctx context.Context, event Event) {
		order = append(order, "first")
	})
	bus.Subscribe(EventTypeUpdateFailed, func(ctx context.Context, event Event) {
		order = append(order, "second")
	})

	bus.Emit(context.Background(), UpdateFailedEvent{RunID: "run-2", Reason: "no data"})

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestBus_IgnoresUnrelatedEventTypes(t *testing.T) {
	bus := NewBus()

	called := false
	bus.Subscribe(EventTypeDatasetUpdated, func(ctx context.Context, event Event) {
		called = true
	})

	bus.Emit(context.Background(), UpdateFailedEvent{RunID: "run-3", Reason: "no data"})

	assert.False(t, called)
}

func TestBus_RecoversFromPanickingHandler(t *testing.T) {
	bus := NewBus()

	var survived bool
	bus.Subscribe(EventTypeDatasetUpdated, func(ctx context.Context, event Event) {
		panic("handler blew up")
	})
	bus.Subscribe(EventTypeDatasetUpdated, func(ctx context.Context, event Event) {
		survived = true
	})

	assert.NotPanics(t, func() {
		bus.Emit(context.Background(), DatasetUpdatedEvent{RunID: "run-4"})
	})
	assert.True(t, survived)
}

func TestBus_EmitWithNoSubscribers(t *testing.T) {
	bus := NewBus()

	assert.NotPanics(t, func() {
		bus.Emit(context.Background(), DatasetUpdatedEvent{RunID: "run-5"})
	})
}
