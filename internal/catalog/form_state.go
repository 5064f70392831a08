package catalog

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// FormState holds the edit buffer for a single product and its submission status.
// An empty product id means the form creates a new product.
type FormState struct {
	svc Service

	mu       sync.Mutex
	id       string
	draft    Draft
	status   Status
	err      error
	saved    *Product
	cancel   context.CancelFunc
	detached bool
}

// NewFormState returns an idle form.
func NewFormState(svc Service) *FormState {
	return &FormState{svc: svc, status: StatusIdle}
}

func (f *FormState) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

func (f *FormState) Draft() Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

func (f *FormState) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// ProductID returns the id of the product being edited, or "" when creating.
func (f *FormState) ProductID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.id
}

func (f *FormState) Editing() bool {
	return f.ProductID() != ""
}

// Saved returns the product the remote store returned for a successful submission.
func (f *FormState) Saved() (Product, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saved == nil {
		return Product{}, false
	}
	return *f.saved, true
}

// Load prepares the draft. Without an id the form is ready at once with an empty draft;
// with an id the product is fetched and the draft hydrated from it.
func (f *FormState) Load(ctx context.Context, id string) error {
	f.mu.Lock()
	if f.detached {
		f.mu.Unlock()
		return ErrDetached
	}
	if f.status.InFlight() {
		f.mu.Unlock()
		return ErrBusy
	}
	f.id = id
	f.draft = Draft{}
	f.saved = nil
	f.err = nil
	if id == "" {
		f.status = StatusReady
		f.mu.Unlock()
		return nil
	}
	callCtx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.status = StatusLoading
	f.mu.Unlock()

	product, err := f.svc.GetProduct(callCtx, id)

	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.finish() {
		return ErrDetached
	}
	if err != nil {
		f.status = StatusError
		f.err = &FetchError{Op: "get", ID: id, Err: err}
		slog.Error("failed to get product", slog.String("product_id", id), slog.Any("err", err))
		return f.err
	}
	f.draft = DraftFromProduct(product)
	f.status = StatusReady
	return nil
}

// Resume makes the form ready with a draft the user already holds, such as a posted form,
// without fetching the product. The id selects create (empty) or update on Submit.
func (f *FormState) Resume(id string, draft Draft) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.detached {
		return ErrDetached
	}
	if f.status.InFlight() {
		return ErrBusy
	}
	f.id = id
	f.draft = Draft{Name: draft.Name, Price: NormalizePrice(draft.Price)}
	f.saved = nil
	f.err = nil
	f.status = StatusReady
	return nil
}

// SetField updates one draft field. Prices are stored with a period decimal separator.
func (f *FormState) SetField(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.status == StatusSubmitting {
		return ErrBusy
	}
	switch name {
	case FieldName:
		f.draft.Name = value
	case FieldPrice:
		f.draft.Price = NormalizePrice(value)
	default:
		return ErrUnknownField
	}
	return nil
}

// Submit validates the draft and creates or updates the product. Invalid drafts never reach
// the remote store. On remote failure the draft is kept so the user can retry.
func (f *FormState) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.detached {
		f.mu.Unlock()
		return ErrDetached
	}
	if f.status == StatusSubmitting {
		f.mu.Unlock()
		return ErrBusy
	}
	if f.status != StatusReady {
		f.mu.Unlock()
		return ErrNotReady
	}
	in, err := f.draft.Input()
	if err != nil {
		f.err = err
		f.mu.Unlock()
		return err
	}
	id := f.id
	callCtx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.status = StatusSubmitting
	f.err = nil
	f.mu.Unlock()

	op := "create"
	var product Product
	if id == "" {
		product, err = f.svc.CreateProduct(callCtx, in)
	} else {
		op = "update"
		product, err = f.svc.UpdateProduct(callCtx, id, in)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.finish() {
		return ErrDetached
	}
	if err != nil {
		f.status = StatusReady
		f.err = &SubmissionError{Op: op, ID: id, Err: err}
		slog.Error("failed to submit product", slog.String("op", op), slog.String("product_id", id), slog.Any("err", err))
		return f.err
	}
	f.saved = &product
	f.draft = Draft{}
	f.status = StatusDone
	return nil
}

// Detach cancels any in-flight call; its result will not be applied.
func (f *FormState) Detach() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.detached = true
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
}

// finish releases the in-flight call. Must be called with mu held.
func (f *FormState) finish() bool {
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	return !f.detached
}

// IsValidation reports whether err is a local validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
