package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/iyhunko/product-catalog/internal/model"
	"github.com/iyhunko/product-catalog/internal/repository"
	"github.com/iyhunko/product-catalog/internal/sqs"
)

// OutboxBatchSize caps the number of events relayed per tick.
const OutboxBatchSize = 100

// MessagePublisher sends product messages to the queue.
type MessagePublisher interface {
	PublishProductMessage(ctx context.Context, msg sqs.ProductMessage) error
}

// OutboxWorker polls the events table and processes pending events
type OutboxWorker struct {
	eventRepo    repository.Repository
	eventUpdater repository.EventStatusUpdater
	publisher    MessagePublisher
	interval     time.Duration
	stopChan     chan struct{}
	stopOnce     sync.Once
}

// NewOutboxWorker creates a new OutboxWorker
func NewOutboxWorker(eventRepo repository.Repository, eventUpdater repository.EventStatusUpdater, publisher MessagePublisher, interval time.Duration) *OutboxWorker {
	return &OutboxWorker{
		eventRepo:    eventRepo,
		eventUpdater: eventUpdater,
		publisher:    publisher,
		interval:     interval,
		stopChan:     make(chan struct{}),
	}
}

// Start begins processing events from the outbox
func (w *OutboxWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	slog.Info("Outbox worker started", slog.Duration("interval", w.interval))

	for {
		select {
		case <-ctx.Done():
			slog.Info("Outbox worker stopped by context")
			return
		case <-w.stopChan:
			slog.Info("Outbox worker stopped")
			return
		case <-ticker.C:
			w.processEvents(ctx)
		}
	}
}

// Stop stops the outbox worker. It is safe to call more than once.
func (w *OutboxWorker) Stop() {
	w.stopOnce.Do(func() { close(w.stopChan) })
}

// processEvents retrieves and processes pending events
func (w *OutboxWorker) processEvents(ctx context.Context) {
	query := repository.NewQuery().
		With(repository.StatusField, string(model.EventStatusPending)).
		WithLimit(OutboxBatchSize)
	resources, err := w.eventRepo.List(ctx, *query)
	if err != nil {
		slog.Error("Failed to retrieve pending events", slog.Any("err", err))
		return
	}

	if len(resources) == 0 {
		return
	}

	slog.Info("Processing pending events", slog.Int("count", len(resources)))

	for _, resource := range resources {
		event, ok := resource.(*model.Event)
		if !ok {
			slog.Error("Invalid event type in outbox")
			continue
		}

		status := model.EventStatusProcessed
		if err := w.processEvent(ctx, event); err != nil {
			slog.Error("Failed to process event",
				slog.String("event_id", event.ID.String()),
				slog.String("event_type", event.EventType),
				slog.Any("err", err))
			status = model.EventStatusFailed
		}

		if updateErr := w.eventUpdater.UpdateStatus(ctx, event.ID, status); updateErr != nil {
			slog.Error("Failed to update event status",
				slog.String("event_id", event.ID.String()),
				slog.String("status", string(status)),
				slog.Any("err", updateErr))
			continue
		}
		if status == model.EventStatusProcessed {
			slog.Info("Event processed successfully",
				slog.String("event_id", event.ID.String()),
				slog.String("event_type", event.EventType))
		}
	}
}

// processEvent publishes a single event to SQS
func (w *OutboxWorker) processEvent(ctx context.Context, event *model.Event) error {
	var productMsg sqs.ProductMessage
	if err := json.Unmarshal(event.EventData, &productMsg); err != nil {
		return err
	}

	return w.publisher.PublishProductMessage(ctx, productMsg)
}
