package web

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/iyhunko/product-catalog/internal/catalog"
	"github.com/iyhunko/product-catalog/internal/http/middleware"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

// InitRouter registers the catalog pages on server.
func InitRouter(server *gin.Engine, h *Handler) (*gin.Engine, error) {
	tmpl, err := Templates()
	if err != nil {
		return nil, err
	}
	server.SetHTMLTemplate(tmpl)

	server.Use(middleware.Recovery(), middleware.Logger())

	server.GET("/healthz", h.Healthz)
	server.GET(catalog.ListRoute, h.List)
	server.GET(catalog.NewRoute, h.NewForm)
	server.POST(catalog.NewRoute, h.Save)
	server.GET("/editar/:id", h.EditForm)
	server.POST("/editar/:id", h.Save)
	server.GET("/excluir/:id", h.ConfirmDelete)
	server.POST("/excluir/:id", h.Delete)
	server.POST("/cancelar", h.Cancel)

	return server, nil
}
