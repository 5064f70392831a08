package sql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/iyhunko/product-catalog/internal/model"
	"github.com/iyhunko/product-catalog/internal/repository"
)

// TransactionalRepository provides methods to work with multiple repositories in a single transaction
type TransactionalRepository struct {
	db *sql.DB
}

// NewTransactionalRepository creates a new TransactionalRepository
func NewTransactionalRepository(db *sql.DB) *TransactionalRepository {
	return &TransactionalRepository{db: db}
}

func (tr *TransactionalRepository) within(ctx context.Context, fn func(products *ProductRepository, events *EventRepository) error) error {
	return withinTx(ctx, tr.db, func(tx *sql.Tx) error {
		return fn(&ProductRepository{db: tr.db, txn: tx}, &EventRepository{db: tr.db, txn: tx})
	})
}

// CreateProductWithEvent creates a product and an outbox event in a single transaction.
func (tr *TransactionalRepository) CreateProductWithEvent(ctx context.Context, product *model.Product, event *model.Event) (*model.Product, error) {
	var created *model.Product
	err := tr.within(ctx, func(products *ProductRepository, events *EventRepository) error {
		res, err := products.Create(ctx, product)
		if err != nil {
			return fmt.Errorf("failed to create product: %w", err)
		}
		p, ok := res.(*model.Product)
		if !ok {
			return repository.ErrInvalidType
		}
		if _, err := events.Create(ctx, event); err != nil {
			return fmt.Errorf("failed to create event: %w", err)
		}
		created = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateProductWithEvent updates a product and records an update event in a single transaction.
func (tr *TransactionalRepository) UpdateProductWithEvent(ctx context.Context, product *model.Product, event *model.Event) (*model.Product, error) {
	var updated *model.Product
	err := tr.within(ctx, func(products *ProductRepository, events *EventRepository) error {
		res, err := products.Update(ctx, product)
		if err != nil {
			return fmt.Errorf("failed to update product: %w", err)
		}
		p, ok := res.(*model.Product)
		if !ok {
			return repository.ErrInvalidType
		}
		if _, err := events.Create(ctx, event); err != nil {
			return fmt.Errorf("failed to create event: %w", err)
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteProductWithEvent deletes a product and creates a deletion event in a single transaction
func (tr *TransactionalRepository) DeleteProductWithEvent(ctx context.Context, product *model.Product, event *model.Event) error {
	return tr.within(ctx, func(products *ProductRepository, events *EventRepository) error {
		if err := products.DeleteByID(ctx, product); err != nil {
			return fmt.Errorf("failed to delete product: %w", err)
		}
		if _, err := events.Create(ctx, event); err != nil {
			return fmt.Errorf("failed to create event: %w", err)
		}
		return nil
	})
}
