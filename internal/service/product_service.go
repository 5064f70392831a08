package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/iyhunko/product-catalog/internal/metrics"
	"github.com/iyhunko/product-catalog/internal/model"
	"github.com/iyhunko/product-catalog/internal/repository"
	"github.com/iyhunko/product-catalog/internal/sqs"
	"github.com/shopspring/decimal"
)

// OutboxWriter persists a product change together with its outbox event.
type OutboxWriter interface {
	CreateProductWithEvent(ctx context.Context, product *model.Product, event *model.Event) (*model.Product, error)
	UpdateProductWithEvent(ctx context.Context, product *model.Product, event *model.Event) (*model.Product, error)
	DeleteProductWithEvent(ctx context.Context, product *model.Product, event *model.Event) error
}

type ProductService struct {
	repo   repository.Repository
	outbox OutboxWriter
}

func NewProductService(repo repository.Repository, outbox OutboxWriter) *ProductService {
	return &ProductService{
		repo:   repo,
		outbox: outbox,
	}
}

func (ps *ProductService) CreateProduct(ctx context.Context, name string, price decimal.Decimal) (*model.Product, error) {
	product := &model.Product{
		Name:  name,
		Price: price,
	}
	product.InitMeta()

	event, err := productEvent(model.EventTypeProductCreated, sqs.ActionCreated, product)
	if err != nil {
		return nil, err
	}

	created, err := ps.outbox.CreateProductWithEvent(ctx, product, event)
	if err != nil {
		return nil, err
	}

	metrics.ProductsCreated.Inc()
	slog.Info("product created", slog.String("product_id", created.ID.String()))

	return created, nil
}

func (ps *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	resource, err := ps.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product, ok := resource.(*model.Product)
	if !ok {
		return nil, repository.ErrInvalidType
	}
	return product, nil
}

func (ps *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, name string, price decimal.Decimal) (*model.Product, error) {
	product, err := ps.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	product.Name = name
	product.Price = price

	event, err := productEvent(model.EventTypeProductUpdated, sqs.ActionUpdated, product)
	if err != nil {
		return nil, err
	}

	updated, err := ps.outbox.UpdateProductWithEvent(ctx, product, event)
	if err != nil {
		return nil, err
	}

	metrics.ProductsUpdated.Inc()
	slog.Info("product updated", slog.String("product_id", updated.ID.String()))

	return updated, nil
}

func (ps *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	// Find the product first to get its details for the message
	product, err := ps.GetProduct(ctx, id)
	if err != nil {
		return err
	}

	event, err := productEvent(model.EventTypeProductDeleted, sqs.ActionDeleted, product)
	if err != nil {
		return err
	}

	if err := ps.outbox.DeleteProductWithEvent(ctx, product, event); err != nil {
		return err
	}

	metrics.ProductsDeleted.Inc()
	slog.Info("product deleted", slog.String("product_id", product.ID.String()))

	return nil
}

// ListProducts returns every product in creation order.
func (ps *ProductService) ListProducts(ctx context.Context) ([]*model.Product, error) {
	resources, err := ps.repo.List(ctx, *repository.NewQuery())
	if err != nil {
		return nil, err
	}

	products := make([]*model.Product, 0, len(resources))
	for _, resource := range resources {
		product, ok := resource.(*model.Product)
		if !ok {
			return nil, repository.ErrInvalidType
		}
		products = append(products, product)
	}
	return products, nil
}

func productEvent(eventType, action string, product *model.Product) (*model.Event, error) {
	event, err := model.NewEvent(eventType, sqs.ProductMessage{
		Action:    action,
		ProductID: product.ID.String(),
		Name:      product.Name,
		Price:     product.Price,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event data: %w", err)
	}
	return event, nil
}
