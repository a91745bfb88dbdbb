package events

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"lottosync/models"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeDatasetUpdated EventType = "dataset_updated"
	EventTypeUpdateFailed   EventType = "update_failed"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// DatasetUpdatedEvent represents a dataset that was successfully persisted
type DatasetUpdatedEvent struct {
	RunID         string
	Source        models.UpdateSource
	Total         int
	Added         int
	MaxDrawNumber int
}

func (e DatasetUpdatedEvent) Type() EventType {
	return EventTypeDatasetUpdated
}

// UpdateFailedEvent represents an update run that ended without persisting anything
type UpdateFailedEvent struct {
	RunID  string
	Reason string
}

func (e UpdateFailedEvent) Type() EventType {
	return EventTypeUpdateFailed
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.handlers[eventType] == nil {
		b.handlers[eventType] = make([]Handler, 0)
	}
	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Emit publishes an event to all registered handlers. Handlers run
// synchronously in subscription order, so a run summary is fully
// printed before the process exits.
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	log.WithFields(log.Fields{
		"eventType":    event.Type(),
		"handlerCount": len(handlers),
	}).Debug("Emitting event to handlers")

	for i, handler := range handlers {
		func(h Handler, handlerIndex int) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType":    event.Type(),
						"handlerIndex": handlerIndex,
						"panic":        r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler, i)
	}
}
