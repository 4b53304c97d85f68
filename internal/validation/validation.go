// Package validation checks input shapes before any storage access and
// reports violations as per-field errors suitable for a 422 response body.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"catalog_service/internal/domain"

	"github.com/go-playground/validator/v10"
)

// FieldError names the offending field and what is wrong with it.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON name, not the Go struct field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateCategoryInput returns nil when input is valid.
func ValidateCategoryInput(input *domain.CategoryInput) []FieldError {
	return translate(validate.Struct(input))
}

// ValidateProductInput returns nil when input is valid. The price rules
// (presence, non-negative, at most 2 fractional digits) are checked by hand
// since the validator has no knowledge of decimal.Decimal.
func ValidateProductInput(input *domain.ProductInput) []FieldError {
	fields := translate(validate.Struct(input))

	if input.Price == nil {
		fields = append(fields, FieldError{Field: "price", Error: "is required"})
	} else {
		if input.Price.IsNegative() {
			fields = append(fields, FieldError{Field: "price", Error: "must be greater than or equal to 0"})
		}
		if input.Price.Exponent() < -2 {
			fields = append(fields, FieldError{Field: "price", Error: "must have at most 2 decimal places"})
		}
	}
	return fields
}

func translate(err error) []FieldError {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "body", Error: err.Error()}}
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Error: messageFor(fe)})
	}
	return fields
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	}
	return "is invalid"
}
