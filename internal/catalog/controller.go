package catalog

import (
	"context"
	"log/slog"
)

// Controller orchestrates the list and form states against the remote store and owns
// every navigation and confirmation decision of the catalog views.
type Controller struct {
	svc       Service
	navigator Navigator
	confirmer Confirmer

	list *ListState
	form *FormState
}

// NewController creates a controller with a fresh list and no form.
func NewController(svc Service, navigator Navigator, confirmer Confirmer) *Controller {
	return &Controller{
		svc:       svc,
		navigator: navigator,
		confirmer: confirmer,
		list:      NewListState(svc),
	}
}

func (c *Controller) List() *ListState { return c.list }

// Form returns the current form, or nil before ShowForm.
func (c *Controller) Form() *FormState { return c.form }

// ShowList fetches the collection for the list view.
func (c *Controller) ShowList(ctx context.Context) error {
	err := c.list.Refresh(ctx)
	slog.Debug("list view refreshed", slog.String("status", string(c.list.Status())), slog.Any("err", err))
	return err
}

// ShowForm opens the create form (empty id) or the edit form for id, replacing any previous form.
func (c *Controller) ShowForm(ctx context.Context, id string) error {
	if c.form != nil {
		c.form.Detach()
	}
	c.form = NewFormState(c.svc)
	err := c.form.Load(ctx, id)
	slog.Debug("form view loaded", slog.String("product_id", id), slog.String("status", string(c.form.Status())), slog.Any("err", err))
	return err
}

// ResumeForm opens the form for id around a draft the user already typed, replacing any
// previous form. No product is fetched.
func (c *Controller) ResumeForm(id string, draft Draft) error {
	if c.form != nil {
		c.form.Detach()
	}
	c.form = NewFormState(c.svc)
	return c.form.Resume(id, draft)
}

// SetField forwards a draft edit to the open form.
func (c *Controller) SetField(name, value string) error {
	if c.form == nil {
		return ErrNotReady
	}
	return c.form.SetField(name, value)
}

// Save submits the open form and returns to the list view on success.
func (c *Controller) Save(ctx context.Context) error {
	if c.form == nil {
		return ErrNotReady
	}
	if err := c.form.Submit(ctx); err != nil {
		return err
	}
	saved, _ := c.form.Saved()
	slog.Info("product saved", slog.String("product_id", saved.ID), slog.Bool("editing", c.form.Editing()))
	c.navigate(ListRoute)
	return nil
}

// Cancel abandons the open form and returns to the list view.
func (c *Controller) Cancel() {
	if c.form != nil {
		c.form.Detach()
	}
	c.navigate(ListRoute)
}

// New navigates to the create form.
func (c *Controller) New() { c.navigate(NewRoute) }

// Edit navigates to the edit form of a product.
func (c *Controller) Edit(id string) { c.navigate(EditRoute(id)) }

// Delete removes a product after confirmation and resynchronizes the list.
func (c *Controller) Delete(ctx context.Context, id string) (bool, error) {
	removed, err := c.list.Remove(ctx, id, c.confirmer)
	if removed {
		slog.Info("product deleted", slog.String("product_id", id))
	}
	return removed, err
}

// Close detaches the views so late results are dropped.
func (c *Controller) Close() {
	c.list.Detach()
	if c.form != nil {
		c.form.Detach()
	}
}

func (c *Controller) navigate(route string) {
	if c.navigator != nil {
		c.navigator.Navigate(route)
	}
}
