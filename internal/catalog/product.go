package catalog

import (
	"errors"
	"strings"

	"github.com/iyhunko/product-catalog/internal/validation"
	"github.com/shopspring/decimal"
)

const (
	// FieldName is the draft field holding the product name.
	FieldName = "nome"
	// FieldPrice is the draft field holding the product price.
	FieldPrice = "preco"
)

// Product is a product as held by the remote store.
type Product struct {
	ID    string          `json:"id"`
	Name  string          `json:"nome"`
	Price decimal.Decimal `json:"preco"`
}

// ProductInput is a validated create/update submission.
type ProductInput struct {
	Name  string          `json:"nome" validate:"required"`
	Price decimal.Decimal `json:"preco" validate:"gte=0"`
}

// Draft is the user-editable, not yet validated representation of a product.
// Price stays a string so partial input such as "19," survives editing.
type Draft struct {
	Name  string
	Price string
}

// DraftFromProduct hydrates a draft from a fetched product.
func DraftFromProduct(p Product) Draft {
	return Draft{Name: p.Name, Price: p.Price.String()}
}

// NormalizePrice rewrites every comma decimal separator to a period.
func NormalizePrice(s string) string {
	return strings.ReplaceAll(s, ",", ".")
}

// Input validates the draft and converts it into a submission.
func (d Draft) Input() (ProductInput, error) {
	in := ProductInput{Name: strings.TrimSpace(d.Name)}
	if in.Name == "" {
		return ProductInput{}, &ValidationError{Field: FieldName, Message: "is required"}
	}

	raw := strings.TrimSpace(NormalizePrice(d.Price))
	if raw == "" {
		return ProductInput{}, &ValidationError{Field: FieldPrice, Message: "is required"}
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return ProductInput{}, &ValidationError{Field: FieldPrice, Message: "must be a number"}
	}
	if price.IsNegative() {
		return ProductInput{}, &ValidationError{Field: FieldPrice, Message: "must be at least 0"}
	}
	in.Price = price

	if err := validation.Struct(in); err != nil {
		var fe *validation.FieldError
		if errors.As(err, &fe) {
			return ProductInput{}, &ValidationError{Field: fe.Field, Message: fe.Message}
		}
		return ProductInput{}, err
	}
	return in, nil
}
