// Package validation wraps go-playground/validator with the conventions shared by the
// catalog front-end and the catalog API: JSON field names in errors and decimal support.
package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = New()

// New returns a validator that reports JSON field names and understands decimal.Decimal.
func New() *validator.Validate {
	v := validator.New()
	Configure(v)
	return v
}

// Configure applies the JSON tag naming and decimal support to an existing validator,
// such as the one behind gin's binding.
func Configure(v *validator.Validate) {
	v.RegisterTagNameFunc(jsonTagName)
	RegisterDecimal(v)
}

// RegisterDecimal lets numeric tags (gte, lte, ...) operate on decimal.Decimal fields.
func RegisterDecimal(v *validator.Validate) {
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
}

func decimalValue(field reflect.Value) interface{} {
	d, ok := field.Interface().(decimal.Decimal)
	if !ok {
		return nil
	}
	f := d.InexactFloat64()
	// Magnitudes below float64 range round to zero; keep the sign for gte/lte.
	if f == 0 && !d.IsZero() {
		return math.Copysign(math.SmallestNonzeroFloat64, float64(d.Sign()))
	}
	return f
}

func jsonTagName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

// FieldError is the first failing field of a validated struct.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Struct validates s and returns a *FieldError for the first failing field.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		fe := validationErrors[0]
		return &FieldError{Field: fe.Field(), Message: Message(fe)}
	}
	return err
}

// Describe flattens a validation failure into "field: message"; other errors pass through as text.
func Describe(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		fe := validationErrors[0]
		return (&FieldError{Field: fe.Field(), Message: Message(fe)}).Error()
	}
	var fieldErr *FieldError
	if errors.As(err, &fieldErr) {
		return fieldErr.Error()
	}
	return err.Error()
}

// Message renders a human readable message for a single failed rule.
func Message(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "gte":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", err.Param())
	case "numeric", "number":
		return "must be a number"
	default:
		return "is invalid"
	}
}
