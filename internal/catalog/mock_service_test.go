package catalog_test

import (
	"context"

	"github.com/iyhunko/product-catalog/internal/catalog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockService is a mock implementation of catalog.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockService) GetProduct(ctx context.Context, id string) (catalog.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.Product), args.Error(1)
}

func (m *MockService) CreateProduct(ctx context.Context, in catalog.ProductInput) (catalog.Product, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(catalog.Product), args.Error(1)
}

func (m *MockService) UpdateProduct(ctx context.Context, id string, in catalog.ProductInput) (catalog.Product, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(catalog.Product), args.Error(1)
}

func (m *MockService) DeleteProduct(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// inputMatching matches a submission by name and numeric price value.
func inputMatching(name, p string) interface{} {
	return mock.MatchedBy(func(in catalog.ProductInput) bool {
		return in.Name == name && in.Price.Equal(price(p))
	})
}

func answer(yes bool) catalog.Confirmer {
	return catalog.ConfirmFunc(func(string) bool { return yes })
}
