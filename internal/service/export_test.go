package service

import "context"

// ProcessEvents runs one relay pass of the outbox worker.
func (w *OutboxWorker) ProcessEvents(ctx context.Context) {
	w.processEvents(ctx)
}
