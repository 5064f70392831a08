package service_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/iyhunko/product-catalog/internal/model"
	"github.com/iyhunko/product-catalog/internal/repository"
	"github.com/iyhunko/product-catalog/internal/sqs"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of repository.Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, resource repository.Resource) (repository.Resource, error) {
	args := m.Called(ctx, resource)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.Resource), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, resource repository.Resource) (repository.Resource, error) {
	args := m.Called(ctx, resource)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.Resource), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id uuid.UUID) (repository.Resource, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.Resource), args.Error(1)
}

func (m *MockRepository) DeleteByID(ctx context.Context, resource repository.Resource) error {
	args := m.Called(ctx, resource)
	return args.Error(0)
}

func (m *MockRepository) List(ctx context.Context, query repository.Query) ([]repository.Resource, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.Resource), args.Error(1)
}

// MockEventUpdater is a mock implementation of repository.EventStatusUpdater
type MockEventUpdater struct {
	mock.Mock
}

func (m *MockEventUpdater) UpdateStatus(ctx context.Context, eventID uuid.UUID, status any) error {
	args := m.Called(ctx, eventID, status)
	return args.Error(0)
}

// MockOutbox is a mock implementation of service.OutboxWriter
type MockOutbox struct {
	mock.Mock
}

func (m *MockOutbox) CreateProductWithEvent(ctx context.Context, product *model.Product, event *model.Event) (*model.Product, error) {
	args := m.Called(ctx, product, event)
	if fn, ok := args.Get(0).(func(context.Context, *model.Product, *model.Event) *model.Product); ok {
		return fn(ctx, product, event), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockOutbox) UpdateProductWithEvent(ctx context.Context, product *model.Product, event *model.Event) (*model.Product, error) {
	args := m.Called(ctx, product, event)
	if fn, ok := args.Get(0).(func(context.Context, *model.Product, *model.Event) *model.Product); ok {
		return fn(ctx, product, event), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockOutbox) DeleteProductWithEvent(ctx context.Context, product *model.Product, event *model.Event) error {
	args := m.Called(ctx, product, event)
	return args.Error(0)
}

// MockPublisher is a mock implementation of service.MessagePublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishProductMessage(ctx context.Context, msg sqs.ProductMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
