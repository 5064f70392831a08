package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrBusy is returned when an operation is attempted while a fetch or submission is in flight.
	// The attempt is ignored, not queued.
	ErrBusy = errors.New("operation already in progress")

	// ErrNotReady is returned when a form is submitted before it finished loading.
	ErrNotReady = errors.New("form is not ready")

	// ErrUnknownField is returned by SetField for fields a draft does not have.
	ErrUnknownField = errors.New("unknown field")

	// ErrDetached is returned when a result arrives after the state was detached from its view.
	ErrDetached = errors.New("view detached")
)

// FetchError reports a failed list or get call. The held collection or draft is left as it was.
type FetchError struct {
	Op  string
	ID  string
	Err error
}

func (e *FetchError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s product %s: %v", e.Op, e.ID, e.Err)
	}
	return fmt.Sprintf("%s products: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ValidationError reports a draft rejected locally, before any remote call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s %s", e.Field, e.Message)
	}
	return e.Message
}

// SubmissionError reports a create, update or delete rejected by the remote store.
type SubmissionError struct {
	Op  string
	ID  string
	Err error
}

func (e *SubmissionError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s product %s: %v", e.Op, e.ID, e.Err)
	}
	return fmt.Sprintf("%s product: %v", e.Op, e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }
