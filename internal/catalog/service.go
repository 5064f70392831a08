// Package catalog holds the view-state core of the product catalog front-end: the list and
// form state machines and the controller that drives them against a remote product store.
package catalog

import (
	"context"
	"net/url"
)

// Service is the remote CRUD store for products.
type Service interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id string) (Product, error)
	CreateProduct(ctx context.Context, in ProductInput) (Product, error)
	UpdateProduct(ctx context.Context, id string, in ProductInput) (Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// Status is the finite state gating which operations a list or form accepts.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusLoading    Status = "loading"
	StatusReady      Status = "ready"
	StatusSubmitting Status = "submitting"
	StatusError      Status = "error"
	StatusDone       Status = "done"
)

// InFlight reports whether a remote call is outstanding.
func (s Status) InFlight() bool {
	return s == StatusLoading || s == StatusSubmitting
}

// DeletePrompt is the question a Confirmer answers before a product is deleted.
const DeletePrompt = "Deseja realmente excluir este produto?"

// Confirmer answers a yes/no question put to the user.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Navigator moves the user to another route.
type Navigator interface {
	Navigate(route string)
}

// NavigateFunc adapts a function to Navigator.
type NavigateFunc func(route string)

func (f NavigateFunc) Navigate(route string) { f(route) }

const (
	ListRoute = "/"
	NewRoute  = "/novo"
)

// EditRoute is the create-or-edit route for an existing product.
func EditRoute(id string) string {
	return "/editar/" + url.PathEscape(id)
}

// DeleteRoute is the confirmation route for deleting a product.
func DeleteRoute(id string) string {
	return "/excluir/" + url.PathEscape(id)
}
