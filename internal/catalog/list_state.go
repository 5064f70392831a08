package catalog

import (
	"context"
	"log/slog"
	"slices"
	"sync"
)

// ListState holds the locally fetched collection and its loading status.
type ListState struct {
	svc Service

	mu       sync.Mutex
	status   Status
	products []Product
	err      error
	cancel   context.CancelFunc
	detached bool
}

// NewListState returns an idle list with an empty collection.
func NewListState(svc Service) *ListState {
	return &ListState{svc: svc, status: StatusIdle}
}

// Status returns the current status.
func (l *ListState) Status() Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status
}

// Products returns a copy of the collection as of the last successful fetch.
func (l *ListState) Products() []Product {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.products)
}

// Err returns the error surfaced by the last failed operation, if any.
func (l *ListState) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Empty reports whether a successful fetch returned no products.
func (l *ListState) Empty() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status == StatusReady && len(l.products) == 0
}

// Refresh re-fetches the whole collection. On failure the previous collection is kept.
func (l *ListState) Refresh(ctx context.Context) error {
	callCtx, err := l.begin(ctx, StatusLoading)
	if err != nil {
		return err
	}

	products, err := l.svc.ListProducts(callCtx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.finish() {
		return ErrDetached
	}
	if err != nil {
		l.status = StatusError
		l.err = &FetchError{Op: "list", Err: err}
		slog.Error("failed to list products", slog.Any("err", err))
		return l.err
	}
	l.products = slices.Clone(products)
	l.status = StatusReady
	l.err = nil
	return nil
}

// Remove deletes a product after the user confirms, then re-fetches the whole collection
// instead of splicing the local copy. It reports whether the remote store accepted the delete.
func (l *ListState) Remove(ctx context.Context, id string, confirmer Confirmer) (bool, error) {
	l.mu.Lock()
	previous := l.status
	l.mu.Unlock()
	if previous.InFlight() {
		return false, ErrBusy
	}

	if confirmer == nil || !confirmer.Confirm(DeletePrompt) {
		return false, nil
	}

	callCtx, err := l.begin(ctx, StatusSubmitting)
	if err != nil {
		return false, err
	}

	err = l.svc.DeleteProduct(callCtx, id)

	l.mu.Lock()
	if !l.finish() {
		l.mu.Unlock()
		return false, ErrDetached
	}
	l.status = previous
	if err != nil {
		subErr := &SubmissionError{Op: "delete", ID: id, Err: err}
		l.err = subErr
		l.mu.Unlock()
		slog.Error("failed to delete product", slog.String("product_id", id), slog.Any("err", err))
		return false, subErr
	}
	l.mu.Unlock()

	return true, l.Refresh(ctx)
}

// Detach cancels any in-flight call; its result will not be applied.
func (l *ListState) Detach() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.detached = true
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

// begin moves the list into an in-flight status unless one is already outstanding.
func (l *ListState) begin(ctx context.Context, status Status) (context.Context, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.detached {
		return nil, ErrDetached
	}
	if l.status.InFlight() {
		return nil, ErrBusy
	}
	callCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.status = status
	return callCtx, nil
}

// finish releases the in-flight call and reports whether its result may be applied.
// Must be called with mu held.
func (l *ListState) finish() bool {
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	return !l.detached
}
