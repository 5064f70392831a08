// Package web serves the server-rendered catalog pages. Every request drives its own
// catalog.Controller; navigation requests become redirects and delete confirmations come
// from the posted form.
package web

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iyhunko/product-catalog/internal/catalog"
	"github.com/iyhunko/product-catalog/internal/client"
	"github.com/iyhunko/product-catalog/internal/metrics"
	"github.com/iyhunko/product-catalog/internal/presentation"
)

const (
	viewList    = "list"
	viewForm    = "form"
	viewConfirm = "confirm"

	// ConfirmParam is the posted form field answering the delete prompt.
	ConfirmParam = "confirm"
)

// Handler renders the catalog views against a remote product store.
type Handler struct {
	svc         catalog.Service
	theme       presentation.Theme
	breakpoints presentation.Breakpoints
}

// NewHandler creates a handler rendering with the given theme and breakpoints.
func NewHandler(svc catalog.Service, theme presentation.Theme, bp presentation.Breakpoints) *Handler {
	return &Handler{svc: svc, theme: theme, breakpoints: bp}
}

// session is the controller of a single request plus what its collaborators recorded.
type session struct {
	ctr      *catalog.Controller
	redirect string
}

func (h *Handler) newSession(confirmed bool) *session {
	s := &session{}
	s.ctr = catalog.NewController(h.svc,
		catalog.NavigateFunc(func(route string) { s.redirect = route }),
		catalog.ConfirmFunc(func(string) bool { return confirmed }),
	)
	return s
}

type productView struct {
	ID        string
	Name      string
	Price     string
	EditURL   string
	DeleteURL string
}

type formView struct {
	Action  string
	Editing bool
	Name    string
	Price   string
	Field   string
}

type page struct {
	Title      string
	Path       string
	Theme      template.CSS
	Breakpoint int
	Mode       presentation.RenderMode
	Error      string
	Products   []productView
	Empty      bool
	Form       *formView
	Prompt     string
	ProductID  string
}

// List renders the collection as a table or as cards depending on the viewport.
func (h *Handler) List(c *gin.Context) {
	s := h.newSession(false)
	defer s.ctr.Close()

	code := http.StatusOK
	p := page{Title: "Lista de Produtos"}
	if err := s.ctr.ShowList(c.Request.Context()); err != nil {
		code = http.StatusBadGateway
		p.Error = "Não foi possível carregar os produtos."
	}
	h.renderList(c, code, s.ctr.List(), p)
}

// NewForm renders an empty create form.
func (h *Handler) NewForm(c *gin.Context) {
	h.showForm(c, "")
}

// EditForm renders the edit form hydrated from the stored product.
func (h *Handler) EditForm(c *gin.Context) {
	h.showForm(c, c.Param("id"))
}

func (h *Handler) showForm(c *gin.Context, id string) {
	s := h.newSession(false)
	defer s.ctr.Close()

	code := http.StatusOK
	p := page{Title: formTitle(id)}
	if err := s.ctr.ShowForm(c.Request.Context(), id); err != nil {
		code = fetchStatus(err)
		p.Error = "Não foi possível carregar o produto."
	}
	h.renderForm(c, code, id, s.ctr.Form(), p)
}

// Save submits the posted draft. Success redirects to the list; failures re-render the form
// with the draft the user typed.
func (h *Handler) Save(c *gin.Context) {
	id := c.Param("id")
	s := h.newSession(false)
	defer s.ctr.Close()

	p := page{Title: formTitle(id)}
	draft := catalog.Draft{Name: c.PostForm(catalog.FieldName), Price: c.PostForm(catalog.FieldPrice)}
	if err := s.ctr.ResumeForm(id, draft); err != nil {
		slog.Error("failed to open form", slog.String("product_id", id), slog.Any("err", err))
		p.Error = "Erro ao salvar produto."
		h.renderForm(c, http.StatusInternalServerError, id, s.ctr.Form(), p)
		return
	}

	err := s.ctr.Save(c.Request.Context())
	if err == nil {
		c.Redirect(http.StatusSeeOther, s.redirect)
		return
	}

	code := http.StatusBadGateway
	p.Error = "Erro ao salvar produto."
	var ve *catalog.ValidationError
	switch {
	case errors.As(err, &ve):
		code = http.StatusUnprocessableEntity
		p.Error = validationMessage(ve)
	case errors.Is(err, client.ErrNotFound):
		code = http.StatusNotFound
		p.Error = "Produto não encontrado."
	}
	h.renderForm(c, code, id, s.ctr.Form(), p)
}

// Cancel abandons the form and returns to the list.
func (h *Handler) Cancel(c *gin.Context) {
	s := h.newSession(false)
	s.ctr.Cancel()
	c.Redirect(http.StatusSeeOther, s.redirect)
}

// ConfirmDelete asks the user to confirm deleting a product.
func (h *Handler) ConfirmDelete(c *gin.Context) {
	id := c.Param("id")
	h.render(c, http.StatusOK, viewConfirm, page{
		Title:     "Excluir Produto",
		Prompt:    catalog.DeletePrompt,
		ProductID: id,
	})
}

// Delete removes the product when the form answered the prompt with yes and renders the
// resynchronized list.
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	s := h.newSession(c.PostForm(ConfirmParam) == "yes")
	defer s.ctr.Close()

	ctx := c.Request.Context()
	code := http.StatusOK
	p := page{Title: "Lista de Produtos"}

	removed, err := s.ctr.Delete(ctx, id)
	var subErr *catalog.SubmissionError
	switch {
	case errors.As(err, &subErr):
		code = http.StatusBadGateway
		p.Error = "Erro ao excluir produto."
		if listErr := s.ctr.ShowList(ctx); listErr != nil {
			slog.Warn("list refresh after failed delete failed", slog.Any("err", listErr))
		}
	case err != nil:
		code = http.StatusBadGateway
		p.Error = "Não foi possível carregar os produtos."
	case !removed:
		if err := s.ctr.ShowList(ctx); err != nil {
			code = http.StatusBadGateway
			p.Error = "Não foi possível carregar os produtos."
		}
	}
	h.renderList(c, code, s.ctr.List(), p)
}

// Healthz reports liveness.
func (h *Handler) Healthz(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func (h *Handler) renderList(c *gin.Context, code int, list *catalog.ListState, p page) {
	p.Path = catalog.ListRoute
	p.Mode = presentation.ModeFor(presentation.ViewportWidth(c.Request), h.breakpoints)
	p.Empty = list.Empty()
	for _, product := range list.Products() {
		p.Products = append(p.Products, productView{
			ID:        product.ID,
			Name:      product.Name,
			Price:     presentation.FormatPrice(product.Price),
			EditURL:   catalog.EditRoute(product.ID),
			DeleteURL: catalog.DeleteRoute(product.ID),
		})
	}
	h.render(c, code, viewList, p)
}

func (h *Handler) renderForm(c *gin.Context, code int, id string, form *catalog.FormState, p page) {
	fv := &formView{Action: catalog.NewRoute, Editing: id != ""}
	if fv.Editing {
		fv.Action = catalog.EditRoute(id)
	} else {
		p.Path = catalog.NewRoute
	}
	if form != nil {
		draft := form.Draft()
		fv.Name, fv.Price = draft.Name, draft.Price
		var ve *catalog.ValidationError
		if errors.As(form.Err(), &ve) {
			fv.Field = ve.Field
		}
	}
	p.Form = fv
	h.render(c, code, viewForm, p)
}

func (h *Handler) render(c *gin.Context, code int, view string, p page) {
	p.Theme = h.theme.CSSVars()
	p.Breakpoint = h.breakpoints.Medium
	mode := string(p.Mode)
	if mode == "" {
		mode = "none"
	}
	metrics.Renders.WithLabelValues(view, mode).Inc()
	c.HTML(code, view+".html", p)
}

func formTitle(id string) string {
	if id == "" {
		return "Novo Produto"
	}
	return "Editar Produto"
}

func fetchStatus(err error) int {
	if errors.Is(err, client.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}

func validationMessage(ve *catalog.ValidationError) string {
	switch {
	case ve.Field == catalog.FieldName:
		return "Informe o nome do produto."
	case ve.Field == catalog.FieldPrice && ve.Message == "is required":
		return "Informe o preço do produto."
	case ve.Field == catalog.FieldPrice && ve.Message == "must be a number":
		return "Preço inválido."
	case ve.Field == catalog.FieldPrice:
		return "O preço não pode ser negativo."
	default:
		return ve.Error()
	}
}
