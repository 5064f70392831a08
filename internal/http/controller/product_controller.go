package controller

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/iyhunko/product-catalog/internal/model"
	"github.com/iyhunko/product-catalog/internal/repository"
	"github.com/iyhunko/product-catalog/internal/validation"
	"github.com/shopspring/decimal"
)

// ProductService is the product use-case layer the controller drives.
type ProductService interface {
	CreateProduct(ctx context.Context, name string, price decimal.Decimal) (*model.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*model.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, name string, price decimal.Decimal) (*model.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ListProducts(ctx context.Context) ([]*model.Product, error)
}

// ProductController handles HTTP requests for product operations.
type ProductController struct {
	productService ProductService
}

// NewProductController creates a new ProductController with the given product service.
func NewProductController(productService ProductService) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

// ProductRequest represents the request body for creating or updating a product.
type ProductRequest struct {
	Name  string           `json:"nome" binding:"required"`
	Price *decimal.Decimal `json:"preco" binding:"required,gte=0"`
}

// ProductResponse represents the response body for a product.
type ProductResponse struct {
	ID        string      `json:"id"`
	Name      string      `json:"nome"`
	Price     json.Number `json:"preco"`
	CreatedAt string      `json:"created_at"`
	UpdatedAt string      `json:"updated_at"`
}

// CreateProduct handles the HTTP POST request for creating a new product.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Describe(err)})
		return
	}

	createdProduct, err := pc.productService.CreateProduct(c.Request.Context(), req.Name, *req.Price)
	if err != nil {
		pc.fail(c, "create", err)
		return
	}

	c.JSON(http.StatusCreated, toProductResponse(createdProduct))
}

// GetProduct handles the HTTP GET request for a single product.
func (pc *ProductController) GetProduct(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	product, err := pc.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		pc.fail(c, "get", err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(product))
}

// UpdateProduct handles the HTTP PUT request replacing a product's name and price.
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Describe(err)})
		return
	}

	product, err := pc.productService.UpdateProduct(c.Request.Context(), id, req.Name, *req.Price)
	if err != nil {
		pc.fail(c, "update", err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(product))
}

// DeleteProduct handles the HTTP DELETE request for deleting a product by ID.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	if err := pc.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		pc.fail(c, "delete", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListProducts handles the HTTP GET request for listing every product in creation order.
func (pc *ProductController) ListProducts(c *gin.Context) {
	products, err := pc.productService.ListProducts(c.Request.Context())
	if err != nil {
		pc.fail(c, "list", err)
		return
	}

	productResponses := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		productResponses = append(productResponses, toProductResponse(product))
	}

	c.JSON(http.StatusOK, productResponses)
}

func (pc *ProductController) fail(c *gin.Context, op string, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	slog.Error("product operation failed", slog.String("op", op), slog.Any("err", err))
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to " + op + " product"})
}

func productID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		return uuid.Nil, false
	}
	return id, true
}

func toProductResponse(product *model.Product) ProductResponse {
	return ProductResponse{
		ID:        product.ID.String(),
		Name:      product.Name,
		Price:     json.Number(product.Price.String()),
		CreatedAt: product.CreatedAt.Format(time.RFC3339),
		UpdatedAt: product.UpdatedAt.Format(time.RFC3339),
	}
}
